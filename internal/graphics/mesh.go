package graphics

import (
	"typer3d/internal/asset"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GPUMesh is a mesh resident in a vertex array.
type GPUMesh struct {
	VAO   uint32
	VBO   uint32
	Count int32
}

// MeshCache uploads meshes on first draw. Only touched from the render thread.
type MeshCache struct {
	meshes map[*asset.Mesh]*GPUMesh
}

func NewMeshCache() *MeshCache {
	return &MeshCache{meshes: make(map[*asset.Mesh]*GPUMesh)}
}

// Get returns the uploaded form of m, uploading it if needed. Meshes without
// triangles come back with Count 0.
func (c *MeshCache) Get(m *asset.Mesh) *GPUMesh {
	if gm, ok := c.meshes[m]; ok {
		return gm
	}
	gm := uploadMesh(m.Vertices)
	c.meshes[m] = gm
	return gm
}

func (c *MeshCache) Dispose() {
	for m, gm := range c.meshes {
		gm.Delete()
		delete(c.meshes, m)
	}
}

func (gm *GPUMesh) Delete() {
	if gm.VAO != 0 {
		gl.DeleteVertexArrays(1, &gm.VAO)
	}
	if gm.VBO != 0 {
		gl.DeleteBuffers(1, &gm.VBO)
	}
}

// Draw issues the triangle list. The caller binds the program.
func (gm *GPUMesh) Draw() {
	if gm.Count == 0 {
		return
	}
	gl.BindVertexArray(gm.VAO)
	gl.DrawArrays(gl.TRIANGLES, 0, gm.Count)
}

func uploadMesh(vertices []float32) *GPUMesh {
	gm := &GPUMesh{Count: int32(len(vertices) / asset.FloatsPerVertex)}
	if gm.Count == 0 {
		return gm
	}
	gl.GenVertexArrays(1, &gm.VAO)
	gl.BindVertexArray(gm.VAO)

	gl.GenBuffers(1, &gm.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	stride := int32(asset.FloatsPerVertex * 4)
	// position
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	// normal
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	// uv
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)

	gl.BindVertexArray(0)
	return gm
}
