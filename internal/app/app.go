// Package app assembles the demo scene and runs the frame loop.
package app

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/torvik/glint/internal/config"
	"github.com/torvik/glint/internal/engine/camera"
	"github.com/torvik/glint/internal/engine/controls"
	"github.com/torvik/glint/internal/engine/lighting"
	"github.com/torvik/glint/internal/engine/mesh"
	"github.com/torvik/glint/internal/engine/model"
	"github.com/torvik/glint/internal/engine/scene"
	"github.com/torvik/glint/internal/engine/screen"
	"github.com/torvik/glint/internal/engine/shader"
	"github.com/torvik/glint/internal/engine/shadow"
	"github.com/torvik/glint/internal/engine/spatial"
	"github.com/torvik/glint/internal/engine/texture"
	"github.com/torvik/glint/internal/engine/window"
	"github.com/torvik/glint/internal/logger"
)

// fieldRerollInterval is how often the cube field rescatters.
const fieldRerollInterval = 15 * time.Second

// pipScale and pipOffset place the rear-view mirror top center in
// clip space.
var (
	pipScale  = mgl32.Vec2{0.3, 0.25}
	pipOffset = mgl32.Vec2{0, 0.72}
)

// App owns the window, scene, screens, and controllers of the demo.
type App struct {
	cfg    *config.Config
	window *window.Window

	ub     *shader.UniformBuffer
	binder texture.Binder

	camera   *camera.Camera
	scene    *scene.Scene
	primary  *screen.Screen
	mirror   *screen.Screen
	objModel *model.Model

	cubes *scene.Object

	hub          *controls.Hub
	cameraCtl    *controls.CameraController
	flashlight   *controls.FlashlightController
	screenCtl    *controls.ScreenController
	sceneCtl     *controls.SceneController
	quitCtl      *controls.QuitController
	rng          *rand.Rand
	fieldElapsed time.Duration

	drawableW int32
	drawableH int32
}

// New creates the window and GL context, builds the demo scene, and
// wires the controllers.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      "glint",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.MULTISAMPLE)

	a.drawableW, a.drawableH = a.window.DrawableSize()
	a.ub = shader.NewUniformBuffer()

	if err := a.buildScene(); err != nil {
		a.Close()
		return nil, err
	}
	if err := a.buildScreens(); err != nil {
		a.Close()
		return nil, err
	}
	a.buildControllers()

	a.window.CaptureMouse(true)
	logger.Info("demo ready",
		zap.Int("objects", len(a.scene.Objects)),
		zap.Int("cubes", a.cubes.InstanceCount()),
	)
	return a, nil
}

func (a *App) buildScene() error {
	a.camera = camera.New(mgl32.Vec3{0, 3, 12})

	lights := &lighting.Lights{
		Sun: lighting.Directional{
			Direction: mgl32.Vec3{-0.4, -1, -0.3}.Normalize(),
			Ambient:   mgl32.Vec3{0.25, 0.25, 0.28},
			Diffuse:   mgl32.Vec3{0.8, 0.78, 0.72},
			Specular:  mgl32.Vec3{0.9, 0.9, 0.9},
		},
		Torch: lighting.NewSpot(
			mgl32.Vec3{0.05, 0.05, 0.05},
			mgl32.Vec3{1, 0.95, 0.85},
			mgl32.Vec3{1, 1, 1},
			12, 18),
	}
	lights.AddPoint(lighting.Point{
		Position:    mgl32.Vec3{-6, 2.5, -4},
		Attenuation: lighting.Attenuation{Constant: 1, Linear: 0.09, Quadratic: 0.032},
		Ambient:     mgl32.Vec3{0.02, 0.02, 0.06},
		Diffuse:     mgl32.Vec3{0.2, 0.3, 0.9},
		Specular:    mgl32.Vec3{0.3, 0.4, 1},
	})
	lights.AddPoint(lighting.Point{
		Position:    mgl32.Vec3{7, 2, 5},
		Attenuation: lighting.Attenuation{Constant: 1, Linear: 0.09, Quadratic: 0.032},
		Ambient:     mgl32.Vec3{0.06, 0.02, 0.02},
		Diffuse:     mgl32.Vec3{0.9, 0.3, 0.2},
		Specular:    mgl32.Vec3{1, 0.4, 0.3},
	})

	sc, err := scene.New(a.camera, lights, int32(a.cfg.Scene.ShadowResolution))
	if err != nil {
		return fmt.Errorf("creating scene: %w", err)
	}
	a.scene = sc

	r := a.cfg.Scene.FieldRadius
	sc.Bounds = shadow.Bounds{
		Min: mgl32.Vec3{-r - 3, -0.5, -r - 3},
		Max: mgl32.Vec3{r + 3, 6, r + 3},
	}

	// Ground plane, visible from below so culling stays off.
	floor := scene.NewObject(mesh.NewMesh(mesh.Square(2*r+16, 8), floorMaterial(), false))
	sc.Add(floor)

	// Instanced cube field.
	a.cubes = scene.NewObject(
		mesh.NewMesh(mesh.Cube(1), crateMaterial(), true),
		fieldTransforms(a.rng, a.cfg.Scene.CubeCount, r)...)
	sc.Add(a.cubes)

	// Showcase cube with a stencil outline.
	accent := spatial.NewTransform()
	accent.Translate(mgl32.Vec3{0, 1, 3})
	showcase := scene.NewObject(mesh.NewMesh(mesh.Cube(2), accentMaterial(), true), accent)
	showcase.SetOutline(mgl32.Vec4{1, 0.6, 0.1, 1})
	sc.Add(showcase)

	if path := a.cfg.Scene.ModelPath; path != "" {
		if err := a.loadModel(path); err != nil {
			logger.Warn("skipping model", zap.String("path", path), zap.Error(err))
		}
	}

	if dir := a.cfg.Scene.SkyboxDir; dir != "" {
		sb, err := loadSkybox(dir)
		if err != nil {
			logger.Warn("skipping skybox", zap.String("dir", dir), zap.Error(err))
		} else {
			sc.AddSkybox(sb)
		}
	}

	return nil
}

func (a *App) loadModel(path string) error {
	m, err := model.Load(path)
	if err != nil {
		return err
	}
	a.objModel = m

	placement := spatial.NewTransform()
	placement.Translate(mgl32.Vec3{-4, 0, 2})
	for _, msh := range m.Meshes {
		a.scene.Add(scene.NewObject(msh, placement))
	}
	logger.Info("model loaded", zap.String("path", path), zap.Int("meshes", len(m.Meshes)))
	return nil
}

func (a *App) buildScreens() error {
	samples := int32(a.cfg.Graphics.Samples)

	var err error
	a.primary, err = screen.New(a.drawableW, a.drawableH, samples, a.cfg.Graphics.Gamma)
	if err != nil {
		return fmt.Errorf("creating primary screen: %w", err)
	}
	a.primary.SetClearColor(mgl32.Vec4{0.05, 0.06, 0.09, 1})

	mirrorW := int32(float32(a.drawableW) * pipScale.X())
	mirrorH := int32(float32(a.drawableH) * pipScale.Y())
	a.mirror, err = screen.New(mirrorW, mirrorH, samples, false)
	if err != nil {
		return fmt.Errorf("creating mirror screen: %w", err)
	}
	a.mirror.SetClearColor(mgl32.Vec4{0.05, 0.06, 0.09, 1})

	return nil
}

func (a *App) buildControllers() {
	in := a.cfg.Input
	a.hub = controls.NewHub(time.Duration(in.PollIntervalMS) * time.Millisecond)

	a.cameraCtl = controls.NewCameraController(
		in.MoveSpeed, in.MouseSensitivity, in.ScrollSensitivity, in.InvertY)
	a.flashlight = controls.NewFlashlightController()
	a.screenCtl = controls.NewScreenController(a.cfg.Graphics.Gamma)
	a.sceneCtl = controls.NewSceneController()
	a.quitCtl = controls.NewQuitController()

	a.hub.Register(a.cameraCtl)
	a.hub.Register(a.flashlight)
	a.hub.Register(a.screenCtl)
	a.hub.Register(a.sceneCtl)
	a.hub.Register(a.quitCtl)
}

// Run drives the frame loop until quit is requested.
func (a *App) Run() error {
	logger.Info("starting frame loop")

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	for {
		now := time.Now()
		frameTime := now.Sub(lastTime)
		lastTime = now
		dt := float32(frameTime.Seconds())

		a.hub.Poll()

		a.quitCtl.Update()
		if a.quitCtl.Done {
			break
		}

		a.applyControls(dt)
		a.update(frameTime)
		a.render()
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("frames", frameCount),
				zap.Float32("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	logger.Info("frame loop finished")
	return nil
}

func (a *App) applyControls(dt float32) {
	a.cameraCtl.Apply(a.camera, dt)
	a.flashlight.Apply(a.scene.Lights.Torch, a.camera)

	a.screenCtl.Update()
	a.primary.Gamma = a.screenCtl.Gamma
	a.primary.Edges = a.screenCtl.Edges

	a.sceneCtl.Update()
	a.scene.Params.ShowNormals = a.sceneCtl.ShowNormals
}

// update advances the scene animation: the cube field slowly tumbles
// and rescatters on an interval.
func (a *App) update(dt time.Duration) {
	spin := float32(dt.Seconds()) * 12
	a.cubes.MutateAll(func(i int, t *spatial.Transform) {
		axis := mgl32.Vec3{0, 1, 0}
		if i%3 == 1 {
			axis = mgl32.Vec3{1, 0, 0}
		} else if i%3 == 2 {
			axis = mgl32.Vec3{0, 0, 1}
		}
		t.Rotate(spin, axis)
	})

	a.fieldElapsed += dt
	if a.fieldElapsed >= fieldRerollInterval {
		a.fieldElapsed = 0
		fresh := fieldTransforms(a.rng, a.cubes.InstanceCount(), a.cfg.Scene.FieldRadius)
		a.cubes.MutateAll(func(i int, t *spatial.Transform) {
			*t = fresh[i]
		})
		logger.Debug("cube field rescattered")
	}
}

func (a *App) render() {
	w, h := a.window.DrawableSize()
	if w != a.drawableW || h != a.drawableH {
		a.drawableW, a.drawableH = w, h
		a.primary.Resize(w, h)
		a.mirror.Resize(int32(float32(w)*pipScale.X()), int32(float32(h)*pipScale.Y()))
	}

	// Rear view first, then the main view, then composite both.
	mirrorScene := a.scene.Mirrored(a.camera.Invert())
	a.mirror.DrawOnFramebuffer(mirrorScene, a.ub, &a.binder)
	a.primary.DrawOnFramebuffer(a.scene, a.ub, &a.binder)

	a.mirror.DrawOnAnother(a.primary, &a.binder, pipScale, pipOffset)
	a.primary.DrawOnScreen(&a.binder, w, h)
}

// Close releases all resources in reverse creation order.
func (a *App) Close() {
	if a.mirror != nil {
		a.mirror.Destroy()
	}
	if a.primary != nil {
		a.primary.Destroy()
	}
	if a.scene != nil {
		a.scene.Destroy()
	}
	if a.objModel != nil {
		a.objModel.Destroy()
	}
	if a.ub != nil {
		a.ub.Destroy()
	}
	if a.window != nil {
		a.window.Close()
	}
}
