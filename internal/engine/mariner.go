package engine

import (
	"math"
	"runtime"

	"Mariner3D/internal/behaviour"
	"Mariner3D/internal/logger"
	"Mariner3D/internal/ocean"
	"Mariner3D/internal/renderer"
	"Mariner3D/internal/underwater"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Mouse state for the cursor callback
var lastX, lastY float64
var firstMouse bool = true

// Mariner owns the window, the camera, the ocean simulation and the
// underwater post-process pipeline, and drives them once per frame.
type Mariner struct {
	Width  int32
	Height int32

	Camera     *renderer.Camera
	Ocean      *ocean.Simulation
	Underwater *underwater.Effect
	Light      *renderer.Light

	EnableCameraInput bool

	window           *glfw.Window
	pipeline         *postPipeline
	frameTrackId     int
	onRenderCallback func(deltaTime float64, rings []ocean.LOD) // Optional hook to draw the scene into the scene target
}

// NewMariner creates the engine with an ocean of the given extent and base
// wave amplitude.
func NewMariner(oceanSize, waveAmplitude float32) *Mariner {
	logger.Init()
	logger.Log.Info("Mariner3D initializing...")

	sim := ocean.NewSimulation(oceanSize, waveAmplitude)
	return &Mariner{
		Width:             1024,
		Height:            768,
		Ocean:             sim,
		Light:             renderer.CreateSunlight(mgl32.Vec3{-0.3, -1.0, -0.5}),
		EnableCameraInput: true,
	}
}

// SetOnRenderCallback sets a hook called each frame while the scene render
// target is bound, before the underwater passes run. rings is the set of
// ocean LOD rings that survived frustum culling this frame; the hook draws
// only those.
func (m *Mariner) SetOnRenderCallback(callback func(deltaTime float64, rings []ocean.LOD)) {
	m.onRenderCallback = callback
}

// SetDebugMode toggles verbose development logging and debug rendering.
func (m *Mariner) SetDebugMode(debug bool) {
	renderer.Debug = debug
	if debug {
		logger.InitDebug()
	}
}

// SetFrustumCulling toggles culling of the ocean LOD rings.
func (m *Mariner) SetFrustumCulling(enabled bool) {
	renderer.FrustumCullingEnabled = enabled
}

// GetWindow returns the GLFW window (for advanced use)
func (m *Mariner) GetWindow() *glfw.Window {
	return m.window
}

// Run opens the window at the given position and blocks in the render loop
// until the window closes.
func (m *Mariner) Run(x, y int) {
	lastX, lastY = float64(m.Width/2), float64(m.Height/2)
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		logger.Log.Error("Could not initialize glfw", zap.Error(err))
		return
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 32)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	var err error
	m.window, err = glfw.CreateWindow(int(m.Width), int(m.Height), "Mariner3D", nil, nil)
	if err != nil {
		logger.Log.Error("Could not create glfw window", zap.Error(err))
		return
	}

	m.window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		logger.Log.Error("Could not initialize OpenGL", zap.Error(err))
		return
	}
	m.window.SetPos(x, y)

	m.Camera = renderer.NewDefaultCamera(m.Width, m.Height)
	m.Underwater = underwater.NewEffect(m.Camera, m.Ocean)
	m.Underwater.SetLight(m.Light)

	m.pipeline = newPostPipeline(m.Width, m.Height)
	defer m.pipeline.destroy()

	behaviour.GlobalManager.Add(m.Ocean)
	behaviour.GlobalManager.Add(m.Underwater)

	m.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	m.window.SetCursorPosCallback(m.mouseCallback)

	logger.Log.Info("Render loop starting",
		zap.Int32("width", m.Width), zap.Int32("height", m.Height))
	m.renderLoop()
}

func (m *Mariner) renderLoop() {
	var lastTime = glfw.GetTime()
	var lastWidth, lastHeight int32 = m.Width, m.Height

	for !m.window.ShouldClose() {
		currentTime := glfw.GetTime()
		deltaTime := currentTime - lastTime
		lastTime = currentTime

		// Track actual window size and rebuild render targets on change
		actualWidth, actualHeight := m.window.GetSize()
		m.Width, m.Height = int32(actualWidth), int32(actualHeight)
		if m.Width != lastWidth || m.Height != lastHeight {
			m.Camera.SetAspectRatio(float32(m.Width) / float32(m.Height))
			m.pipeline.resize(m.Width, m.Height)
			lastWidth, lastHeight = m.Width, m.Height
		}

		if m.EnableCameraInput {
			m.Camera.ProcessKeyboard(m.window, float32(deltaTime))
		}

		if m.frameTrackId >= 2 {
			behaviour.GlobalManager.UpdateAllFixed()
			m.frameTrackId = 0
		}
		behaviour.GlobalManager.UpdateAll()

		m.renderFrame(deltaTime)

		m.window.SwapBuffers()
		m.frameTrackId++
		glfw.PollEvents()
	}
}

// renderFrame runs the scene, mask and composite passes for every active
// eye. A degenerate frustum/plane configuration is a programming error and
// aborts loudly.
func (m *Mariner) renderFrame(deltaTime float64) {
	rings := m.visibleRings()
	eyes := m.Underwater.Eyes()
	eyeWidth := m.Width / int32(len(eyes))

	for i, eye := range eyes {
		m.pipeline.beginScene()
		if m.onRenderCallback != nil {
			m.onRenderCallback(deltaTime, rings)
		}

		if err := m.pipeline.renderEye(m.Underwater, eye, int32(i)*eyeWidth, 0, eyeWidth, m.Height); err != nil {
			logger.Log.Fatal("Horizon locator failed", zap.Error(err))
		}
	}
}

// visibleRings culls the ocean LOD rings against the camera frustum. The
// rings are centered under the camera on the sea plane, so at the surface
// every ring survives; the cull bites when the camera is far from the
// water and the inner rings leave the view entirely.
func (m *Mariner) visibleRings() []ocean.LOD {
	frame := m.Underwater.Frame()
	if !renderer.FrustumCullingEnabled {
		return frame.LODs[:]
	}

	frustum := m.Camera.CalculateFrustum()
	center := mgl32.Vec3{m.Camera.Position.X(), frame.SeaLevel, m.Camera.Position.Z()}
	visible := make([]ocean.LOD, 0, len(frame.LODs))
	for _, ring := range frame.LODs {
		radius := ring.Extent*0.5*float32(math.Sqrt2) + frame.MaxVertDisplacement
		if frustum.IntersectsSphere(center, radius) {
			visible = append(visible, ring)
		}
	}
	if renderer.Debug && len(visible) < len(frame.LODs) {
		logger.Log.Debug("Ocean rings culled",
			zap.Int("visible", len(visible)), zap.Int("total", len(frame.LODs)))
	}
	return visible
}

// Mouse callback function
func (m *Mariner) mouseCallback(w *glfw.Window, xpos, ypos float64) {
	// Only rotate while the right mouse button is held and the window is
	// focused
	if m.EnableCameraInput && w.GetAttrib(glfw.Focused) == glfw.True && w.GetMouseButton(glfw.MouseButtonRight) == glfw.Press {
		if firstMouse {
			lastX = xpos
			lastY = ypos
			firstMouse = false
			return
		}

		xoffset := xpos - lastX
		yoffset := lastY - ypos // Reversed since y-coordinates go from bottom to top
		lastX = xpos
		lastY = ypos

		m.Camera.ProcessMouseMovement(float32(xoffset), float32(yoffset), true)
	} else {
		firstMouse = true
	}
}
