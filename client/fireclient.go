package client

import (
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/pyre/engine/glhf"
	"github.com/memmaker/pyre/engine/particle"
	"github.com/memmaker/pyre/engine/util"
)

// FireClient owns the window, the camera and one renderer per effect flavor.
// Every frame it assembles the shared FrameInput snapshot and hands it to
// the renderers, which run simulate and draw back to back.
type FireClient struct {
	*util.GlApplication
	camera         *util.FPSCamera
	particleShader *glhf.Shader
	atlas          *glhf.ArrayTexture
	renderers      []*ParticleRenderer
	timer          *util.Timer

	emitPosition  mgl32.Vec3
	emitDirection mgl32.Vec3
	gameTime      float64

	lastMousePosX float64
	lastMousePosY float64
	showDebugInfo bool
	frames        uint64
}

func NewFireClient(title string, width, height int, configs ...particle.Config) *FireClient {
	window, terminateFunc := util.InitOpenGL(title, width, height)
	glApp := &util.GlApplication{
		WindowWidth:   width,
		WindowHeight:  height,
		Window:        window,
		TerminateFunc: terminateFunc,
	}
	window.SetKeyCallback(glApp.KeyCallback)
	window.SetCursorPosCallback(glApp.MousePosCallback)
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	client := &FireClient{
		GlApplication: glApp,
		camera:        util.NewFPSCamera(mgl32.Vec3{0, 3, 14}, width, height, 0.08),
		timer:         util.NewTimer(),
		emitDirection: mgl32.Vec3{0, 1, 0},
	}
	client.particleShader = loadParticleShader()
	client.atlas = util.CreateProceduralAtlas(64)

	noise := particle.NewDirectionTable(time.Now().UnixNano())
	for _, cfg := range configs {
		client.renderers = append(client.renderers, NewParticleRenderer(cfg, noise, client.particleShader))
		if cfg.DebugMode {
			client.showDebugInfo = true
		}
	}

	client.camera.SetLookTarget(client.emitPosition)
	client.UpdateFunc = client.Update
	client.DrawFunc = client.Draw
	client.KeyHandler = client.handleKeyEvents
	client.MousePosHandler = client.handleMousePosEvents
	return client
}

// SetEmitPosition moves the emission origin shared by all flavors.
func (a *FireClient) SetEmitPosition(pos mgl32.Vec3) {
	a.emitPosition = pos
}

// SetAtlas replaces the procedural default, e.g. with an atlas loaded via
// util.CreateAtlasFromFiles.
func (a *FireClient) SetAtlas(atlas *glhf.ArrayTexture) {
	a.atlas = atlas
}

func (a *FireClient) Update(elapsed float64) {
	a.gameTime += elapsed

	moveDelta := float32(elapsed) * 8
	dir := [2]int{}
	if a.Window.GetKey(glfw.KeyW) == glfw.Press {
		dir[1]++
	}
	if a.Window.GetKey(glfw.KeyS) == glfw.Press {
		dir[1]--
	}
	if a.Window.GetKey(glfw.KeyA) == glfw.Press {
		dir[0]--
	}
	if a.Window.GetKey(glfw.KeyD) == glfw.Press {
		dir[0]++
	}
	if dir != [2]int{} {
		a.camera.MoveInDirection(moveDelta, dir)
	}
}

func (a *FireClient) Draw(elapsed float64) {
	stopDrawTimer := a.timer.Start("> Draw Particles")

	frame := particle.FrameInput{
		EyePosition:    a.camera.GetPosition(),
		EmitPosition:   a.emitPosition,
		EmitDirection:  a.emitDirection,
		GameTime:       float32(a.gameTime),
		TimeStep:       float32(elapsed),
		ViewProjection: a.camera.GetProjectionViewMatrix(),
	}

	a.atlas.Begin()
	for _, renderer := range a.renderers {
		renderer.Draw(frame)
	}
	a.atlas.End()

	stopDrawTimer()
	a.frames++
	if a.showDebugInfo && a.frames%300 == 0 {
		util.LogSystemInfo(a.timer.String())
		util.LogSystemInfo(a.camera.DebugAim())
	}
}

func (a *FireClient) handleKeyEvents(key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyEscape:
		a.Window.SetShouldClose(true)
	case glfw.KeyR:
		for _, renderer := range a.renderers {
			renderer.Reset()
		}
		a.gameTime = 0
	case glfw.KeyF1:
		a.showDebugInfo = !a.showDebugInfo
	}
}

func (a *FireClient) handleMousePosEvents(xpos float64, ypos float64) {
	dx := float32(xpos - a.lastMousePosX)
	dy := float32(ypos - a.lastMousePosY)
	a.lastMousePosX = xpos
	a.lastMousePosY = ypos
	a.camera.ChangeAngles(dx, dy)
}
