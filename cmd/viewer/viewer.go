package main

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/stagehand/internal/assets"
	"github.com/Faultbox/stagehand/internal/attributes"
	"github.com/Faultbox/stagehand/internal/config"
	"github.com/Faultbox/stagehand/internal/importer"
	"github.com/Faultbox/stagehand/internal/logger"
	"github.com/Faultbox/stagehand/internal/physics"
	"github.com/Faultbox/stagehand/internal/render"
	"github.com/Faultbox/stagehand/internal/scene"
	"github.com/Faultbox/stagehand/pkg/math"
)

const windowTitle = "Stagehand Viewer"

type viewer struct {
	cfg *config.Config

	window    *sdl.Window
	glContext sdl.GLContext

	cache     *assets.ResourceCache
	templates *attributes.Manager
	composer  *scene.Composer
	renderer  *render.Renderer

	root      *scene.Node
	drawables scene.DrawableGroup

	world        *physics.World
	staticScenes []*physics.StaticScene

	// Orbit camera state
	yaw      float32
	pitch    float32
	distance float32
	target   math.Vec3
	dragging bool
}

func newViewer(cfg *config.Config) (*viewer, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL init: %w", err)
	}

	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_SHOWN | sdl.WINDOW_RESIZABLE)
	if cfg.Graphics.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}
	window, err := sdl.CreateWindow(
		windowTitle,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(cfg.Graphics.Width), int32(cfg.Graphics.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("creating window: %w", err)
	}

	glContext, err := window.GLCreateContext()
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("creating GL context: %w", err)
	}
	if err := gl.Init(); err != nil {
		sdl.GLDeleteContext(glContext)
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("initializing GL: %w", err)
	}
	if cfg.Graphics.VSync {
		_ = sdl.GLSetSwapInterval(1)
	}

	renderer, err := render.NewRenderer(logger.Log)
	if err != nil {
		sdl.GLDeleteContext(glContext)
		window.Destroy()
		sdl.Quit()
		return nil, err
	}

	cache := assets.NewResourceCache(logger.Log)
	v := &viewer{
		cfg:       cfg,
		window:    window,
		glContext: glContext,
		cache:     cache,
		templates: attributes.NewManager(),
		composer:  scene.NewComposer(cache, logger.Log),
		renderer:  renderer,
		root:      scene.NewRootNode(),
		world:     physics.NewWorld(),
		distance:  10,
	}
	v.world.Gravity = math.Vec3{
		X: cfg.Physics.Gravity[0],
		Y: cfg.Physics.Gravity[1],
		Z: cfg.Physics.Gravity[2],
	}

	if err := v.populate(); err != nil {
		v.Close()
		return nil, err
	}
	return v, nil
}

// populate registers the primitive templates and spawns a small demo
// arrangement: a ground quad with a cube and a sphere resting on it.
func (v *viewer) populate() error {
	for _, pt := range []importer.PrimitiveType{
		importer.PrimitiveCube,
		importer.PrimitiveQuad,
		importer.PrimitiveUVSphere,
	} {
		if _, err := v.templates.RegisterPrimitive(pt); err != nil {
			return err
		}
	}
	for _, dir := range v.cfg.Assets.TemplateDirs {
		v.loadTemplateDir(dir)
	}

	type placement struct {
		primitive importer.PrimitiveType
		transform math.Mat4
	}
	placements := []placement{
		{importer.PrimitiveQuad, math.Scale(20, 1, 20)},
		{importer.PrimitiveCube, math.Translate(-2, 0.5, 0)},
		{importer.PrimitiveUVSphere, math.Translate(2, 1, 0)},
	}

	for _, p := range placements {
		if err := v.spawn(p.primitive, p.transform); err != nil {
			return err
		}
	}

	logger.Log.Info("scene populated",
		zap.Int("drawables", v.drawables.Len()),
		zap.Int("collisionObjects", v.world.Len()))
	return nil
}

func (v *viewer) loadTemplateDir(dir string) {
	entries, err := filepathGlob(dir)
	if err != nil || len(entries) == 0 {
		return
	}
	for _, path := range entries {
		if _, err := v.templates.LoadFile(path); err != nil {
			logger.Log.Warn("skipping template", zap.String("path", path), zap.Error(err))
		}
	}
}

func (v *viewer) spawn(pt importer.PrimitiveType, transform math.Mat4) error {
	tmpl, err := v.templates.Template(pt.String())
	if err != nil {
		return err
	}

	if !v.cache.Has(tmpl.RenderAsset) {
		imp, err := importer.Primitive(pt)
		if err != nil {
			return err
		}
		info := assets.AssetInfo{
			Key:              tmpl.RenderAsset,
			Type:             assets.AssetTypePrimitive,
			RequiresLighting: tmpl.RequiresLighting,
		}
		if _, err := v.cache.Load(info, imp); err != nil {
			return fmt.Errorf("loading %q: %w", tmpl.RenderAsset, err)
		}
	}

	parent := v.root.CreateChild()
	parent.SetTransform(transform)
	if _, err := v.composer.Compose(tmpl.RenderAsset, parent, &v.drawables, tmpl.LightSetup, nil); err != nil {
		return err
	}

	params := physics.Params{
		Friction:    tmpl.Friction,
		Restitution: tmpl.Restitution,
		Margin:      tmpl.Margin,
		Scale:       tmpl.ScaleVec(),
		Placement:   transform,
	}
	static, err := physics.NewStaticScene(v.cache, tmpl.CollisionAsset, v.world, params, logger.Log)
	if err != nil {
		return err
	}
	v.staticScenes = append(v.staticScenes, static)
	return nil
}

// Run drives the event and render loop until quit.
func (v *viewer) Run() error {
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
					return nil
				}
			case *sdl.MouseButtonEvent:
				if e.Button == sdl.BUTTON_LEFT {
					v.dragging = e.Type == sdl.MOUSEBUTTONDOWN
				}
			case *sdl.MouseMotionEvent:
				if v.dragging {
					v.yaw += float32(e.XRel) * 0.01
					v.pitch += float32(e.YRel) * 0.01
					if v.pitch > 1.5 {
						v.pitch = 1.5
					}
					if v.pitch < -1.5 {
						v.pitch = -1.5
					}
				}
			case *sdl.MouseWheelEvent:
				v.distance -= float32(e.Y) * 0.5
				if v.distance < 1 {
					v.distance = 1
				}
			}
		}

		v.renderFrame()
		v.window.GLSwap()
	}
}

func (v *viewer) renderFrame() {
	w, h := v.window.GLGetDrawableSize()
	gl.Viewport(0, 0, w, h)
	gl.ClearColor(0.15, 0.15, 0.2, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	eye := v.target.Add(math.Vec3{
		X: v.distance * cos32(v.pitch) * sin32(v.yaw),
		Y: v.distance * sin32(v.pitch),
		Z: v.distance * cos32(v.pitch) * cos32(v.yaw),
	})
	view := math.LookAt(eye, v.target, math.Vec3{Y: 1})
	proj := math.Perspective(0.785398, float32(w)/float32(h), 0.1, 1000.0)

	v.renderer.Draw(v.cache, &v.drawables, view, proj)
}

// Close tears the viewer down in reverse construction order. Static
// scenes unregister from the world before GL resources go away.
func (v *viewer) Close() {
	for _, s := range v.staticScenes {
		s.Destroy()
	}
	v.staticScenes = nil
	if v.renderer != nil {
		v.renderer.Destroy()
		v.renderer = nil
	}
	if v.glContext != nil {
		sdl.GLDeleteContext(v.glContext)
		v.glContext = nil
	}
	if v.window != nil {
		v.window.Destroy()
		v.window = nil
	}
	sdl.Quit()
}
