package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/stagehand/internal/assets"
	"github.com/Faultbox/stagehand/internal/scene"
	"github.com/Faultbox/stagehand/pkg/math"
)

// LightSetup is one named lighting configuration.
type LightSetup struct {
	Direction math.Vec3
	Ambient   [3]float32
	Color     [3]float32
}

// DefaultLightSetup returns the lighting used when a drawable does
// not name a setup of its own.
func DefaultLightSetup() LightSetup {
	return LightSetup{
		Direction: math.Vec3{X: 0.5, Y: 0.866, Z: 0},
		Ambient:   [3]float32{0.3, 0.3, 0.3},
		Color:     [3]float32{1, 1, 1},
	}
}

// Renderer draws drawable groups composed from a resource cache.
// GPU buffers are created lazily per global mesh and texture index
// and reused across every instance referencing them.
type Renderer struct {
	program uint32

	locModel       int32
	locViewProj    int32
	locAmbient     int32
	locDiffuse     int32
	locLightDir    int32
	locLightColor  int32
	locUseLighting int32
	locTexture     int32

	meshes   map[int]*MeshBuffers
	textures map[int]uint32
	whiteTex uint32

	lightSetups map[string]LightSetup

	log *zap.Logger
}

// NewRenderer compiles the shared program and prepares the fallback
// texture. Requires a current OpenGL context.
func NewRenderer(log *zap.Logger) (*Renderer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	program, err := CompileProgram(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	r := &Renderer{
		program:        program,
		locModel:       GetUniform(program, "uModel"),
		locViewProj:    GetUniform(program, "uViewProj"),
		locAmbient:     GetUniform(program, "uAmbient"),
		locDiffuse:     GetUniform(program, "uDiffuse"),
		locLightDir:    GetUniform(program, "uLightDir"),
		locLightColor:  GetUniform(program, "uLightColor"),
		locUseLighting: GetUniform(program, "uUseLighting"),
		locTexture:     GetUniform(program, "uTexture"),
		meshes:         make(map[int]*MeshBuffers),
		textures:       make(map[int]uint32),
		whiteTex:       WhiteTexture(),
		lightSetups:    map[string]LightSetup{scene.DefaultLightingKey: DefaultLightSetup()},
		log:            log,
	}
	return r, nil
}

// SetLightSetup registers a lighting configuration under a key that
// drawables can reference.
func (r *Renderer) SetLightSetup(key string, setup LightSetup) {
	r.lightSetups[key] = setup
}

// Draw renders every drawable in the group under the given view and
// projection.
func (r *Renderer) Draw(cache *assets.ResourceCache, group *scene.DrawableGroup, view, proj math.Mat4) {
	viewProj := proj.Mul(view)

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locViewProj, 1, false, viewProj.Ptr())
	gl.Uniform1i(r.locTexture, 0)
	gl.ActiveTexture(gl.TEXTURE0)

	for _, d := range group.Drawables() {
		mb := r.meshBuffers(cache, d.MeshID)
		if mb == nil {
			continue
		}

		model := d.Node.WorldTransform()
		gl.UniformMatrix4fv(r.locModel, 1, false, model.Ptr())

		r.applyMaterial(cache, d.MaterialID, d.LightSetupKey)

		gl.BindVertexArray(mb.vao)
		gl.DrawElements(gl.TRIANGLES, mb.indexCount, gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)
}

func (r *Renderer) applyMaterial(cache *assets.ResourceCache, materialID int, lightSetupKey string) {
	diffuse := [3]float32{1, 1, 1}
	shading := assets.ShadingFlat
	texID := assets.IDUndefined

	if materialID != assets.IDUndefined {
		mat := cache.Material(materialID)
		diffuse = mat.Diffuse
		shading = mat.Shading
		texID = mat.TextureIndex
	}

	useLighting := shading == assets.ShadingPhong && lightSetupKey != scene.NoLightKey
	setup, ok := r.lightSetups[lightSetupKey]
	if !ok {
		setup = r.lightSetups[scene.DefaultLightingKey]
	}

	gl.Uniform3fv(r.locDiffuse, 1, &diffuse[0])
	gl.Uniform3fv(r.locAmbient, 1, &setup.Ambient[0])
	gl.Uniform3f(r.locLightDir, setup.Direction.X, setup.Direction.Y, setup.Direction.Z)
	gl.Uniform3fv(r.locLightColor, 1, &setup.Color[0])
	if useLighting {
		gl.Uniform1i(r.locUseLighting, 1)
	} else {
		gl.Uniform1i(r.locUseLighting, 0)
	}

	gl.BindTexture(gl.TEXTURE_2D, r.texture(cache, texID))
}

// meshBuffers returns the GPU buffers for a global mesh index,
// uploading on first use.
func (r *Renderer) meshBuffers(cache *assets.ResourceCache, meshID int) *MeshBuffers {
	if mb, ok := r.meshes[meshID]; ok {
		return mb
	}
	mesh := cache.Mesh(meshID)
	if mesh == nil || mesh.Data.VertexCount() == 0 {
		r.meshes[meshID] = nil
		return nil
	}
	mb := UploadMesh(mesh.Data)
	r.meshes[meshID] = mb
	r.log.Debug("uploaded mesh",
		zap.Int("mesh", meshID),
		zap.Int("vertices", mesh.Data.VertexCount()))
	return mb
}

// texture returns the GPU texture for a global texture index, the
// white fallback for IDUndefined or a texture that failed to load.
func (r *Renderer) texture(cache *assets.ResourceCache, texID int) uint32 {
	if texID == assets.IDUndefined {
		return r.whiteTex
	}
	if tex, ok := r.textures[texID]; ok {
		return tex
	}
	res := cache.Texture(texID)
	if res == nil || res.Data == nil {
		r.textures[texID] = r.whiteTex
		return r.whiteTex
	}
	tex := UploadTexture(res.Data)
	r.textures[texID] = tex
	return tex
}

// Destroy releases every GPU resource the renderer created.
func (r *Renderer) Destroy() {
	for _, mb := range r.meshes {
		if mb != nil {
			mb.Destroy()
		}
	}
	for _, tex := range r.textures {
		if tex != r.whiteTex {
			gl.DeleteTextures(1, &tex)
		}
	}
	r.meshes = nil
	r.textures = nil
	if r.whiteTex != 0 {
		gl.DeleteTextures(1, &r.whiteTex)
		r.whiteTex = 0
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}
