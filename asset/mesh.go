package asset

import (
	"unsafe"

	"go.uber.org/zap"

	"diamond-gl/dgl"
)

// Attribute locations shared by every uploaded mesh.
const (
	AttribPosition uint32 = 0
	AttribNormal   uint32 = 1
	AttribUV       uint32 = 2
)

// Mesh is a MeshData uploaded into immutable buffers.
type Mesh struct {
	Name     string
	Array    *dgl.VertexArray
	Vertices dgl.StructuredBuffer[Vertex]
	Indices  dgl.StructuredBuffer[uint32]
	Count    int32
	Indexed  bool
}

// UploadMesh copies data into new buffers and describes them with a vertex
// array using binding point 0 and the Attrib* locations.
func UploadMesh(ctx *dgl.Context, data MeshData) *Mesh {
	m := &Mesh{Name: data.Name, Indexed: data.Indices != nil}

	m.Vertices = dgl.CreateStructuredBuffer[Vertex](ctx)
	m.Vertices.Storage(len(data.Vertices), data.Vertices, 0)
	m.Count = int32(len(data.Vertices))

	m.Array = ctx.CreateVertexArray()
	binding := m.Array.Binding(0)
	binding.Attach(m.Vertices, 0)

	var v Vertex
	attribs := []struct {
		index  uint32
		size   int32
		offset uintptr
	}{
		{AttribPosition, 3, unsafe.Offsetof(v.Position)},
		{AttribNormal, 3, unsafe.Offsetof(v.Normal)},
		{AttribUV, 2, unsafe.Offsetof(v.UV)},
	}
	for _, a := range attribs {
		attr := m.Array.Attribute(a.index)
		attr.Format(a.size, dgl.Float, false, uint32(a.offset))
		attr.Binding(binding)
	}

	if m.Indexed {
		m.Indices = dgl.CreateStructuredBuffer[uint32](ctx)
		m.Indices.Storage(len(data.Indices), data.Indices, 0)
		m.Array.ElementBuffer(m.Indices.Buffer())
		m.Count = int32(len(data.Indices))
	}

	dgl.Logger().Debug("uploaded mesh",
		zap.String("name", data.Name),
		zap.Int("vertices", len(data.Vertices)),
		zap.Int("indices", len(data.Indices)))
	return m
}

// Draw binds the vertex array and issues one draw of the whole mesh.
func (m *Mesh) Draw(ctx *dgl.Context, instances int32) {
	ctx.BindVertexArray(m.Array)
	if m.Indexed {
		ctx.DrawElements(dgl.Triangles, m.Count, dgl.UnsignedInt, 0, instances)
		return
	}
	ctx.DrawArrays(dgl.Triangles, 0, m.Count, instances)
}

// Release drops the mesh's owners of its vertex array and buffers.
func (m *Mesh) Release() {
	m.Array.Release()
	m.Vertices.Release()
	if m.Indexed {
		m.Indices.Release()
	}
}

// GPUModel is a Model uploaded to one context.
type GPUModel struct {
	Meshes   []*Mesh
	Textures []*dgl.Texture
	// MeshTexture maps each mesh to its entry in Textures, -1 for none.
	MeshTexture []int
}

// UploadModel uploads every mesh and image of model.
func UploadModel(ctx *dgl.Context, model *Model, opts TextureOptions) *GPUModel {
	g := &GPUModel{}
	for _, img := range model.Images {
		g.Textures = append(g.Textures, UploadTexture(ctx, img, opts))
	}
	for _, data := range model.Meshes {
		g.Meshes = append(g.Meshes, UploadMesh(ctx, data))
		g.MeshTexture = append(g.MeshTexture, data.Texture)
	}
	return g
}

// Draw draws every mesh, binding its base color texture to unit 0. Meshes
// without one are drawn with unit 0 empty.
func (g *GPUModel) Draw(ctx *dgl.Context) {
	unit := ctx.TextureUnit(0)
	for i, m := range g.Meshes {
		var tex *dgl.Texture
		if t := g.MeshTexture[i]; t >= 0 {
			tex = g.Textures[t]
		}
		unit.Bind(tex)
		m.Draw(ctx, 1)
	}
}

func (g *GPUModel) Release() {
	for _, m := range g.Meshes {
		m.Release()
	}
	for _, t := range g.Textures {
		t.Release()
	}
}
