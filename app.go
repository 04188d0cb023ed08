package main

import (
	"github.com/faiface/mainthread"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/pyre/client"
)

func main() {
	mainthread.Run(runEffect)
}

func runEffect() {
	width := 800
	height := 600

	var fire *client.FireClient
	mainthread.Call(func() {
		fire = client.NewFireClient("Pyre", width, height, client.FlareConfig(), client.SmokeConfig())
		fire.SetEmitPosition(mgl32.Vec3{0, 0.5, 0})
	})

	running := true
	for running {
		mainthread.Call(func() {
			running = fire.RunFrame()
		})
	}
	mainthread.Call(fire.TerminateFunc)
}
