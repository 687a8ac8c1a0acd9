package asset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"diamond-gl/dgl"
	"diamond-gl/math"
)

// objCorner references one face corner. Indices are 0-based, -1 when absent.
type objCorner struct{ v, vt, vn int }

type objGroup struct {
	name     string
	material string
	faces    [][3]objCorner
}

// LoadOBJ parses a Wavefront .obj file into one mesh per object or group.
// map_Kd textures of referenced .mtl files become base color images.
func LoadOBJ(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj %q: %w", path, err)
	}
	defer f.Close()
	return ReadOBJ(f, filepath.Dir(path))
}

// ReadOBJ parses OBJ data. Material libraries are resolved against dir.
func ReadOBJ(r io.Reader, dir string) (*Model, error) {
	var (
		positions []math.Vec3
		normals   []math.Vec3
		uvs       []math.Vec2
		groups    []objGroup
	)
	model := &Model{}
	materials := map[string]int{}
	cur := objGroup{name: "default"}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) >= 4 {
				positions = append(positions, parseVec3(fields[1:4]))
			}
		case "vn":
			if len(fields) >= 4 {
				normals = append(normals, parseVec3(fields[1:4]))
			}
		case "vt":
			if len(fields) >= 3 {
				uvs = append(uvs, math.NewVec2(parseFloat(fields[1]), parseFloat(fields[2])))
			}
		case "o", "g":
			if len(cur.faces) > 0 {
				groups = append(groups, cur)
			}
			name := "default"
			if len(fields) > 1 {
				name = fields[1]
			}
			cur = objGroup{name: name, material: cur.material}
		case "usemtl":
			if len(fields) > 1 {
				cur.material = fields[1]
			}
		case "mtllib":
			for _, lib := range fields[1:] {
				if err := readMTL(filepath.Join(dir, lib), dir, model, materials); err != nil {
					dgl.Logger().Warn("skipping material library", zap.String("path", lib), zap.Error(err))
				}
			}
		case "f":
			if len(fields) < 4 {
				continue
			}
			corners := make([]objCorner, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				corners = append(corners, parseCorner(tok, len(positions), len(uvs), len(normals)))
			}
			// Fan triangulation: 0-1-2, 0-2-3, ...
			for i := 1; i+1 < len(corners); i++ {
				cur.faces = append(cur.faces, [3]objCorner{corners[0], corners[i], corners[i+1]})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan obj: %w", err)
	}
	if len(cur.faces) > 0 {
		groups = append(groups, cur)
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("obj: no faces")
	}

	for _, g := range groups {
		mesh := buildOBJMesh(g, positions, normals, uvs)
		if tex, ok := materials[g.material]; ok {
			mesh.Texture = tex
		}
		model.Meshes = append(model.Meshes, mesh)
	}
	return model, nil
}

func parseFloat(s string) float32 {
	f, _ := strconv.ParseFloat(s, 32)
	return float32(f)
}

func parseVec3(fields []string) math.Vec3 {
	return math.NewVec3(parseFloat(fields[0]), parseFloat(fields[1]), parseFloat(fields[2]))
}

// parseCorner parses "v", "v/vt", "v//vn" or "v/vt/vn". Negative indices
// count back from the end of the pools read so far.
func parseCorner(tok string, nv, nvt, nvn int) objCorner {
	index := func(s string, n int) int {
		i, err := strconv.Atoi(s)
		switch {
		case err != nil || i == 0:
			return -1
		case i < 0:
			return n + i
		}
		return i - 1
	}
	parts := strings.Split(tok, "/")
	c := objCorner{v: index(parts[0], nv), vt: -1, vn: -1}
	if len(parts) > 1 {
		c.vt = index(parts[1], nvt)
	}
	if len(parts) > 2 {
		c.vn = index(parts[2], nvn)
	}
	return c
}

// buildOBJMesh deduplicates corners into an indexed mesh.
func buildOBJMesh(g objGroup, positions, normals []math.Vec3, uvs []math.Vec2) MeshData {
	mesh := MeshData{Name: g.name, Texture: -1}
	seen := map[objCorner]uint32{}
	hasNormals := true

	for _, face := range g.faces {
		for _, c := range face {
			if idx, ok := seen[c]; ok {
				mesh.Indices = append(mesh.Indices, idx)
				continue
			}
			v := Vertex{Normal: math.Vec3Up}
			if c.v >= 0 && c.v < len(positions) {
				v.Position = positions[c.v]
			}
			if c.vn >= 0 && c.vn < len(normals) {
				v.Normal = normals[c.vn]
			} else {
				hasNormals = false
			}
			if c.vt >= 0 && c.vt < len(uvs) {
				v.UV = uvs[c.vt]
			}
			idx := uint32(len(mesh.Vertices))
			mesh.Vertices = append(mesh.Vertices, v)
			seen[c] = idx
			mesh.Indices = append(mesh.Indices, idx)
		}
	}
	if !hasNormals {
		GenerateNormals(mesh.Vertices, mesh.Indices)
	}
	return mesh
}

// GenerateNormals overwrites vertex normals with area-weighted face normals.
func GenerateNormals(vertices []Vertex, indices []uint32) {
	accum := make([]math.Vec3, len(vertices))
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		p0 := vertices[i0].Position
		n := vertices[i1].Position.Sub(p0).Cross(vertices[i2].Position.Sub(p0))
		accum[i0] = accum[i0].Add(n)
		accum[i1] = accum[i1].Add(n)
		accum[i2] = accum[i2].Add(n)
	}
	for i := range vertices {
		if accum[i] != (math.Vec3{}) {
			vertices[i].Normal = accum[i].Normalize()
		}
	}
}

// readMTL records the map_Kd image of every material in path.
func readMTL(path, dir string, model *Model, materials map[string]int) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var name string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		switch fields[0] {
		case "newmtl":
			name = fields[1]
		case "map_Kd":
			if name == "" {
				continue
			}
			img, err := LoadImage(filepath.Join(dir, fields[len(fields)-1]))
			if err != nil {
				dgl.Logger().Warn("skipping material texture", zap.String("material", name), zap.Error(err))
				continue
			}
			materials[name] = len(model.Images)
			model.Images = append(model.Images, img)
		}
	}
	return scanner.Err()
}
