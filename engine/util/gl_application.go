package util

import (
	"fmt"
	"math"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/memmaker/pyre/engine/glhf"
)

// GlApplication owns the window and the frame loop. Update and Draw run once
// per frame with the elapsed wall-clock seconds since the previous frame.
type GlApplication struct {
	Window          *glfw.Window
	TerminateFunc   func()
	UpdateFunc      func(elapsed float64)
	DrawFunc        func(elapsed float64)
	KeyHandler      func(key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey)
	MousePosHandler func(xpos float64, ypos float64)
	WindowWidth     int
	WindowHeight    int
	ticks           uint64
	lastFrameTime   float64
	FramesPerSecond float64
	FPSRunningAvg   float64
}

func (a *GlApplication) KeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if a.KeyHandler != nil {
		a.KeyHandler(key, scancode, action, mods)
	}
}

func (a *GlApplication) MousePosCallback(w *glfw.Window, xpos float64, ypos float64) {
	if a.MousePosHandler != nil {
		a.MousePosHandler(xpos, ypos)
	}
}

func (a *GlApplication) Run() {
	defer a.TerminateFunc()
	for a.RunFrame() {
	}
}

// RunFrame executes a single frame and reports whether the loop should keep
// going. Split out from Run so a caller can marshal every frame through the
// main thread.
func (a *GlApplication) RunFrame() bool {
	if a.Window.ShouldClose() {
		return false
	}
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	time := glfw.GetTime()
	elapsed := 0.0
	if a.ticks > 0 {
		elapsed = time - a.lastFrameTime
	}
	a.lastFrameTime = time

	a.UpdateFunc(elapsed)
	a.DrawFunc(elapsed)

	if elapsed > 0 {
		a.FramesPerSecond = 1.0 / elapsed
	}
	if a.ticks%60 == 0 {
		a.Window.SetTitle(fmt.Sprintf("FPS: %.0f (Avg: %.0f) / Elapsed: %.3fms", a.FramesPerSecond, a.FPSRunningAvg, elapsed*1000))
		a.FPSRunningAvg = 0
	}
	a.FPSRunningAvg = a.FPSRunningAvg + a.FramesPerSecond*(1.0/60.0)
	if math.IsInf(a.FPSRunningAvg, 0) {
		a.FPSRunningAvg = 0
	}

	a.Window.SwapBuffers()
	glfw.PollEvents()
	a.ticks++
	return true
}

func InitOpenGL(title string, width, height int) (*glfw.Window, func()) {
	glErr := glfw.Init()
	if glErr != nil {
		panic(glErr)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		panic(err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1) // enable (1) vsync

	glhf.Init()

	LogGlInfo("OpenGL version " + gl.GoStr(gl.GetString(gl.VERSION)))

	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.DEPTH_TEST)

	return win, func() {
		glfw.Terminate()
	}
}
