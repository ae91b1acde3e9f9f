package render

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/stagehand/internal/importer"
)

// MeshBuffers holds the GPU side of one cached mesh.
type MeshBuffers struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// UploadMesh copies mesh data to the GPU. Positions, normals and
// texture coordinates are interleaved into one vertex buffer; meshes
// without normals or texture coordinates get zeros.
func UploadMesh(data *importer.MeshData) *MeshBuffers {
	count := data.VertexCount()
	vertices := make([]float32, 0, count*8)
	for i := 0; i < count; i++ {
		vertices = append(vertices,
			data.Positions[i*3], data.Positions[i*3+1], data.Positions[i*3+2])
		if len(data.Normals) >= (i+1)*3 {
			vertices = append(vertices,
				data.Normals[i*3], data.Normals[i*3+1], data.Normals[i*3+2])
		} else {
			vertices = append(vertices, 0, 0, 0)
		}
		if len(data.TexCoords) >= (i+1)*2 {
			vertices = append(vertices, data.TexCoords[i*2], data.TexCoords[i*2+1])
		} else {
			vertices = append(vertices, 0, 0)
		}
	}

	mb := &MeshBuffers{indexCount: int32(len(data.Indices))}
	const stride = 8 * 4

	gl.GenVertexArrays(1, &mb.vao)
	gl.BindVertexArray(mb.vao)

	gl.GenBuffers(1, &mb.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, mb.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	// TexCoord
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &mb.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mb.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Indices)*4, unsafe.Pointer(&data.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return mb
}

// Destroy releases the GPU buffers.
func (mb *MeshBuffers) Destroy() {
	if mb.ebo != 0 {
		gl.DeleteBuffers(1, &mb.ebo)
	}
	if mb.vbo != 0 {
		gl.DeleteBuffers(1, &mb.vbo)
	}
	if mb.vao != 0 {
		gl.DeleteVertexArrays(1, &mb.vao)
	}
	*mb = MeshBuffers{}
}

// UploadTexture copies RGBA pixel data to the GPU and returns the
// texture ID.
func UploadTexture(data *importer.TextureData) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(data.Width), int32(data.Height),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(data.Pixels))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	return tex
}

// WhiteTexture creates the 1x1 white fallback texture bound for
// untextured materials.
func WhiteTexture() uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	white := []uint8{255, 255, 255, 255}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, 1, 1, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(white))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	return tex
}
