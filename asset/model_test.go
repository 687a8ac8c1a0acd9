package asset_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diamond-gl/asset"
	"diamond-gl/dgl"
	"diamond-gl/math"
)

func quadDocument(t *testing.T) *gltf.Document {
	t.Helper()
	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, [][3]float32{{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0}})
	uv := modeler.WriteTextureCoord(doc, [][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	idx := modeler.WriteIndices(doc, []uint16{0, 1, 2, 0, 2, 3})

	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))
	img, err := modeler.WriteImage(doc, "red", "image/png", &buf)
	require.NoError(t, err)

	doc.Textures = []*gltf.Texture{{Source: gltf.Index(img)}}
	doc.Materials = []*gltf.Material{{
		Name: "red",
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorTexture: &gltf.TextureInfo{Index: 0},
		},
	}}
	doc.Meshes = []*gltf.Mesh{{
		Name: "quad",
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(idx),
			Attributes: map[string]int{"POSITION": pos, "TEXCOORD_0": uv},
			Material:   gltf.Index(0),
		}},
	}}
	return doc
}

func TestReadModel(t *testing.T) {
	model, err := asset.ReadModel(quadDocument(t), "")
	require.NoError(t, err)

	require.Len(t, model.Meshes, 1)
	mesh := model.Meshes[0]
	assert.Equal(t, "quad_p0", mesh.Name)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, mesh.Indices)
	require.Len(t, mesh.Vertices, 4)
	assert.Equal(t, math.NewVec3(1, 1, 0), mesh.Vertices[2].Position)
	assert.Equal(t, math.Vec3Up, mesh.Vertices[2].Normal)
	assert.Equal(t, math.NewVec2(1, 1), mesh.Vertices[2].UV)

	require.Len(t, model.Images, 1)
	assert.Equal(t, 0, mesh.Texture)
	assert.Equal(t, []byte{255, 0, 0, 255}, model.Images[0].Pixels)
}

func TestReadModelSkipsNonTriangles(t *testing.T) {
	doc := quadDocument(t)
	doc.Meshes[0].Primitives[0].Mode = gltf.PrimitiveLines

	_, err := asset.ReadModel(doc, "")
	require.Error(t, err)
}

func TestReadModelRequiresPositions(t *testing.T) {
	doc := quadDocument(t)
	delete(doc.Meshes[0].Primitives[0].Attributes, "POSITION")

	_, err := asset.ReadModel(doc, "")
	require.Error(t, err)
}

func TestUploadMeshIndexed(t *testing.T) {
	ctx, drv := newContext(t)
	model, err := asset.ReadModel(quadDocument(t), "")
	require.NoError(t, err)

	mesh := asset.UploadMesh(ctx, model.Meshes[0])
	assert.True(t, mesh.Indexed)
	assert.Equal(t, int32(6), mesh.Count)
	assert.Equal(t, 32, mesh.Vertices.Stride())

	vbo := mesh.Vertices.Buffer().Handle()
	ebo := mesh.Indices.Buffer().Handle()
	vao := mesh.Array.Handle()
	assert.Len(t, drv.BufferContents(vbo), 4*32)
	assert.Len(t, drv.BufferContents(ebo), 6*4)

	assert.Equal(t, []any{vao, uint32(0), vbo, 0, int32(32)}, drv.Find("VertexArrayVertexBuffer")[0].Args)
	formats := drv.Find("VertexArrayAttribFormat")
	require.Len(t, formats, 3)
	assert.Equal(t, []any{vao, asset.AttribPosition, int32(3), dgl.Float, false, uint32(0)}, formats[0].Args)
	assert.Equal(t, []any{vao, asset.AttribNormal, int32(3), dgl.Float, false, uint32(12)}, formats[1].Args)
	assert.Equal(t, []any{vao, asset.AttribUV, int32(2), dgl.Float, false, uint32(24)}, formats[2].Args)
	assert.Equal(t, []any{vao, ebo}, drv.Find("VertexArrayElementBuffer")[0].Args)

	mesh.Draw(ctx, 1)
	assert.Equal(t, []any{dgl.Triangles, int32(6), dgl.UnsignedInt, 0, int32(1)}, drv.Last().Args)

	mesh.Release()
	assert.Equal(t, 0, drv.Live())
}

func TestUploadMeshArrays(t *testing.T) {
	ctx, drv := newContext(t)
	mesh := asset.UploadMesh(ctx, asset.MeshData{
		Name:     "tri",
		Vertices: make([]asset.Vertex, 3),
		Texture:  -1,
	})
	assert.False(t, mesh.Indexed)
	assert.Empty(t, drv.Find("VertexArrayElementBuffer"))

	mesh.Draw(ctx, 2)
	assert.Equal(t, "DrawArraysInstanced", drv.Last().Name)
	assert.Equal(t, []any{dgl.Triangles, int32(0), int32(3), int32(2)}, drv.Last().Args)

	mesh.Release()
	assert.Equal(t, 0, drv.Live())
}

func TestUploadModelBindsBaseColor(t *testing.T) {
	ctx, drv := newContext(t)
	model, err := asset.ReadModel(quadDocument(t), "")
	require.NoError(t, err)

	model.Meshes = append(model.Meshes, asset.MeshData{
		Name:     "plain",
		Vertices: make([]asset.Vertex, 3),
		Texture:  -1,
	})

	g := asset.UploadModel(ctx, model, asset.DefaultTextureOptions())
	require.Len(t, g.Textures, 1)
	require.Len(t, g.Meshes, 2)
	g.Draw(ctx)

	binds := drv.Find("BindTextureUnit")
	require.Len(t, binds, 2)
	assert.Equal(t, []any{uint32(0), g.Textures[0].Handle()}, binds[0].Args)
	assert.Equal(t, []any{uint32(0), uint32(0)}, binds[1].Args)
	assert.Zero(t, ctx.TextureUnit(0).Bound())
	assert.Equal(t, "DrawArraysInstanced", drv.Last().Name)

	g.Release()
	assert.Equal(t, 0, drv.Live())
}
