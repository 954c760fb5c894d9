// Command litcube draws a cube lit by a green and a blue directional light.
// The w and s keys tilt the cube about its X axis, a and d turn it about its Z
// axis. The window is only redrawn after input.
//
package main

import (
	"log"

	"github.com/db47h/chasecam"
	"github.com/db47h/chasecam/app"
	"github.com/db47h/chasecam/app/event"
	"github.com/db47h/chasecam/loop"
	"github.com/db47h/chasecam/scene"
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"
)

type cubeApp struct {
	w     app.Window
	o     *orientation
	view  chasecam.View
	drawn bool
	quit  bool
}

func (a *cubeApp) Init(w app.Window) error {
	a.w = w
	a.o = newOrientation()
	a.view = chasecam.View{FovY: 60, Near: 1, Far: 10}
	log.Print(app.DriverVersion())

	scene.LoadModelView(mgl32.Ident4())
	scene.EnableLights(scene.CubeLights...)
	gl.Enable(gl.DEPTH_TEST)
	return nil
}

func (a *cubeApp) Run(w app.Window) error {
	var l loop.Simple
	l.Run(a)
	return nil
}

func (a *cubeApp) Terminate() error {
	return nil
}

func (a *cubeApp) HandleEvent(ev event.Interface) {
	switch ev := ev.(type) {
	case event.KeyDown:
		if ev.Key == event.KeyEscape {
			a.quit = true
		} else {
			a.o.rotate(ev.Key)
		}
	case event.Quit, event.WindowClose:
		a.quit = true
	}
}

// ProcessEvents blocks until an event arrives once the first frame is drawn.
//
func (a *cubeApp) ProcessEvents() bool {
	return a.w.ProcessEvents(a.drawn, a) || a.quit
}

func (a *cubeApp) Update() {}

func (a *cubeApp) Draw() {
	a.drawn = true
	// the projection ignores the window aspect ratio
	scene.LoadProjection(a.view.Projection(chasecam.FrameBuffer{W: 1, H: 1}))
	scene.LoadModelView(a.o.m)
	scene.Clear(scene.Black, true)
	scene.DrawCube()
}

func main() {
	err := app.Main(new(cubeApp),
		app.Title("litcube"),
		app.Size(320, 320),
		app.VSync(true))
	if err != nil {
		log.Fatal(err)
	}
}
