package asset_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diamond-gl/asset"
	"diamond-gl/math"
)

const quadOBJ = `# quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
o quad
f 1/1 2/2 3/3 4/4
`

func TestReadOBJTriangulatesAndGeneratesNormals(t *testing.T) {
	model, err := asset.ReadOBJ(strings.NewReader(quadOBJ), "")
	require.NoError(t, err)
	require.Len(t, model.Meshes, 1)

	mesh := model.Meshes[0]
	assert.Equal(t, "quad", mesh.Name)
	assert.Equal(t, -1, mesh.Texture)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, mesh.Indices)
	require.Len(t, mesh.Vertices, 4)
	assert.Equal(t, math.NewVec2(1, 1), mesh.Vertices[2].UV)
	for _, v := range mesh.Vertices {
		assert.Equal(t, math.NewVec3(0, 0, 1), v.Normal)
	}
}

func TestReadOBJNegativeIndicesAndGroups(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 -1
g first
f -3//-1 -2//-1 -1//-1
g second
f 1//1 3//1 2//1
`
	model, err := asset.ReadOBJ(strings.NewReader(src), "")
	require.NoError(t, err)
	require.Len(t, model.Meshes, 2)
	assert.Equal(t, "first", model.Meshes[0].Name)
	assert.Equal(t, "second", model.Meshes[1].Name)
	assert.Equal(t, math.NewVec3(1, 0, 0), model.Meshes[0].Vertices[1].Position)
	assert.Equal(t, math.NewVec3(0, 0, -1), model.Meshes[0].Vertices[0].Normal)
	assert.Equal(t, math.NewVec3(0, 1, 0), model.Meshes[1].Vertices[1].Position)
}

func TestReadOBJWithoutFaces(t *testing.T) {
	_, err := asset.ReadOBJ(strings.NewReader("v 0 0 0\n"), "")
	require.Error(t, err)
}

func TestLoadOBJMaterialTexture(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{G: 255, A: 255})
	f, err := os.Create(filepath.Join(dir, "green.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	mtl := "newmtl leaf\nKd 0 1 0\nmap_Kd green.png\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "leaf.mtl"), []byte(mtl), 0o644))
	obj := "mtllib leaf.mtl\n" + quadOBJ + "usemtl leaf\nf 1 2 3\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "leaf.obj"), []byte(obj), 0o644))

	model, err := asset.LoadOBJ(filepath.Join(dir, "leaf.obj"))
	require.NoError(t, err)
	require.Len(t, model.Images, 1)
	assert.Equal(t, []byte{0, 255, 0, 255}, model.Images[0].Pixels)
	require.Len(t, model.Meshes, 1)
	assert.Equal(t, 0, model.Meshes[0].Texture)
	assert.Len(t, model.Meshes[0].Indices, 9)
}
