package asset

import (
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"go.uber.org/zap"

	"diamond-gl/dgl"
	"diamond-gl/math"
)

// Vertex is the interleaved layout every mesh is uploaded with.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	UV       math.Vec2
}

// MeshData is one glTF primitive in client memory.
type MeshData struct {
	Name     string
	Vertices []Vertex
	// Indices is nil for non-indexed primitives.
	Indices []uint32
	// Texture indexes Model.Images, -1 when the primitive has no base color map.
	Texture int
}

// Model is the geometry and base color images of a glTF document.
type Model struct {
	Meshes []MeshData
	Images []*Image
}

// LoadModel opens a .gltf or .glb file.
func LoadModel(path string) (*Model, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}
	return ReadModel(doc, filepath.Dir(path))
}

// ReadModel extracts every mesh primitive of doc. External image URIs are
// resolved against dir. Primitives and images that fail to decode are logged
// and skipped; a document without any usable primitive is an error.
func ReadModel(doc *gltf.Document, dir string) (*Model, error) {
	log := dgl.Logger()
	model := &Model{}

	texImage := make([]int, len(doc.Textures))
	for i, gt := range doc.Textures {
		texImage[i] = -1
		if gt.Source == nil {
			continue
		}
		img, err := readImage(doc, *gt.Source, dir)
		if err != nil {
			log.Warn("skipping gltf image", zap.Int("image", *gt.Source), zap.Error(err))
			continue
		}
		if img == nil {
			continue
		}
		texImage[i] = len(model.Images)
		model.Images = append(model.Images, img)
	}

	for mi, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			mesh, err := readPrimitive(doc, gm.Name, pi, prim)
			if err != nil {
				log.Warn("skipping gltf primitive",
					zap.Int("mesh", mi), zap.Int("primitive", pi), zap.Error(err))
				continue
			}
			mesh.Texture = baseColorImage(doc, prim, texImage)
			model.Meshes = append(model.Meshes, mesh)
		}
	}
	if len(model.Meshes) == 0 {
		return nil, fmt.Errorf("gltf: no triangle primitives")
	}
	return model, nil
}

func readImage(doc *gltf.Document, index int, dir string) (*Image, error) {
	if index >= len(doc.Images) {
		return nil, fmt.Errorf("image index %d out of range", index)
	}
	img := doc.Images[index]
	name := img.Name
	if name == "" {
		name = fmt.Sprintf("gltf_img_%d", index)
	}
	switch {
	case img.BufferView != nil:
		raw, err := modeler.ReadBufferView(doc, doc.BufferViews[*img.BufferView])
		if err != nil {
			return nil, fmt.Errorf("buffer view: %w", err)
		}
		return decodeImageBytes(name, raw)
	case img.IsEmbeddedResource():
		raw, err := img.MarshalData()
		if err != nil {
			return nil, fmt.Errorf("embedded data: %w", err)
		}
		return decodeImageBytes(name, raw)
	case img.URI != "":
		return LoadImage(filepath.Join(dir, img.URI))
	}
	return nil, nil
}

func baseColorImage(doc *gltf.Document, prim *gltf.Primitive, texImage []int) int {
	if prim.Material == nil || *prim.Material >= len(doc.Materials) {
		return -1
	}
	pbr := doc.Materials[*prim.Material].PBRMetallicRoughness
	if pbr == nil || pbr.BaseColorTexture == nil {
		return -1
	}
	if idx := pbr.BaseColorTexture.Index; idx < len(texImage) {
		return texImage[idx]
	}
	return -1
}

func readPrimitive(doc *gltf.Document, meshName string, primIdx int, prim *gltf.Primitive) (MeshData, error) {
	name := fmt.Sprintf("%s_p%d", meshName, primIdx)
	if meshName == "" {
		name = fmt.Sprintf("prim_%d", primIdx)
	}
	mesh := MeshData{Name: name, Texture: -1}

	if prim.Mode != gltf.PrimitiveTriangles {
		return mesh, fmt.Errorf("unsupported primitive mode %v", prim.Mode)
	}
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return mesh, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return mesh, fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		if normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil); err != nil {
			return mesh, fmt.Errorf("normals: %w", err)
		}
	}
	var uvs [][2]float32
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		if uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil); err != nil {
			return mesh, fmt.Errorf("texture coords: %w", err)
		}
	}

	mesh.Vertices = make([]Vertex, len(positions))
	for i, p := range positions {
		v := Vertex{
			Position: math.NewVec3(p[0], p[1], p[2]),
			Normal:   math.Vec3Up,
		}
		if i < len(normals) {
			v.Normal = math.NewVec3(normals[i][0], normals[i][1], normals[i][2])
		}
		if i < len(uvs) {
			v.UV = math.NewVec2(uvs[i][0], uvs[i][1])
		}
		mesh.Vertices[i] = v
	}

	if prim.Indices != nil {
		mesh.Indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return mesh, fmt.Errorf("indices: %w", err)
		}
	}
	return mesh, nil
}
