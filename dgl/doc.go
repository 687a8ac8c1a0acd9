// Package dgl is an ownership-safe binding over the OpenGL 4.5+ direct
// state access API.
//
// Every GPU object is created through a Context and returned as a wrapper
// (Buffer, Texture, Sampler, VertexArray, Shader, Program, Pipeline) that
// is one owner of the driver handle. Ref adds an owner and Release drops
// one; the handle is deleted when its last owner is released. Binding
// points (BufferTarget, BufferBinding, TextureUnit, ImageUnit) forward
// every bind to the driver and record it in the Context's State.
//
// The package talks to the GL through the Driver interface. Package opengl
// provides the production driver and package dgltest a recording mock.
package dgl
