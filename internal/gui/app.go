// Package gui renders the projected root system in a native window
// with an orbiting 3D camera. The terminal TUI covers the same ground
// at lower fidelity; this is the high-rate view.
package gui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/rootviz/internal/scene"
)

// Theme colors (monochrome with a green accent).
var (
	colBg      = rl.NewColor(10, 10, 10, 255)
	colPoint   = rl.NewColor(220, 255, 220, 255)
	colEdge    = rl.NewColor(0, 140, 0, 140)
	colText    = rl.NewColor(140, 140, 140, 255)
	colTextDim = rl.NewColor(60, 60, 60, 255)
)

const (
	screenW    = 1280
	screenH    = 720
	worldScale = 6.0
	rateStep   = 0.05
)

type App struct {
	Scene    *scene.Scene
	Camera   rl.Camera3D
	Running  bool
	Selected int
	Orbit    float64
	ShowHelp bool
}

func NewApp(sc *scene.Scene) *App {
	return &App{
		Scene:   sc,
		Running: true,
		Camera: rl.NewCamera3D(
			rl.NewVector3(0, 8, 30),
			rl.NewVector3(0, 0, 0),
			rl.NewVector3(0, 1, 0),
			45.0,
			rl.CameraPerspective,
		),
	}
}

// Run opens the window and blocks until it is closed.
func Run(sc *scene.Scene) error {
	rl.InitWindow(screenW, screenH, "rootviz")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)

	app := NewApp(sc)
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		if err := app.Update(); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) Update() error {
	dt := float64(rl.GetFrameTime())
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.Scene.Reset()
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		a.Selected = (a.Selected + 1) % len(a.Scene.Planes())
	}
	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK) {
		a.Scene.SetRate(a.Selected, a.Scene.Rate(a.Selected)+rateStep)
	}
	if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ) {
		a.Scene.SetRate(a.Selected, a.Scene.Rate(a.Selected)-rateStep)
	}
	if rl.IsKeyPressed(rl.KeyH) {
		a.ShowHelp = !a.ShowHelp
	}

	// Orbit the camera slowly; left/right steer it.
	if rl.IsKeyDown(rl.KeyLeft) {
		a.Orbit -= dt
	}
	if rl.IsKeyDown(rl.KeyRight) {
		a.Orbit += dt
	}
	a.Orbit += dt * 0.1
	radius := 30.0
	a.Camera.Position = rl.NewVector3(
		float32(radius*math.Sin(a.Orbit)),
		8,
		float32(radius*math.Cos(a.Orbit)),
	)

	if a.Running {
		a.Scene.Advance(dt)
	}

	frame, err := a.Scene.Frame()
	if err != nil {
		return err
	}
	a.draw(frame)
	return nil
}

func (a *App) draw(f *scene.Frame) {
	rl.BeginDrawing()
	rl.ClearBackground(colBg)

	rl.BeginMode3D(a.Camera)
	rl.DrawGrid(10, 4)

	for _, e := range f.Edges {
		rl.DrawLine3D(vec3(f.Points[e.A]), vec3(f.Points[e.B]), colEdge)
	}
	for _, p := range f.Points {
		rl.DrawSphere(vec3(p), 0.12, colPoint)
	}
	rl.EndMode3D()

	a.drawHUD(f)
	rl.EndDrawing()
}

func (a *App) drawHUD(f *scene.Frame) {
	rl.DrawText("E8 ROOT SYSTEM", 20, 20, 20, colText)
	rl.DrawText(fmt.Sprintf("%d roots / %d edges", len(f.Points), len(f.Edges)), 20, 46, 16, colTextDim)

	y := int32(80)
	for k, p := range a.Scene.Planes() {
		line := fmt.Sprintf("plane (%d,%d)  rate %+.2f  angle %+.2f",
			p.I, p.J, a.Scene.Rate(k), f.Angles[k])
		col := colTextDim
		if k == a.Selected {
			col = colText
			line = "> " + line
		}
		rl.DrawText(line, 20, y, 16, col)
		y += 22
	}

	if !a.Running {
		rl.DrawText("PAUSED", screenW-120, 20, 20, colText)
	}
	if a.ShowHelp {
		rl.DrawText("SPACE pause  R reset  TAB plane  UP/DOWN rate  LEFT/RIGHT orbit  Q quit",
			20, screenH-40, 16, colTextDim)
	} else {
		rl.DrawText("H for help", 20, screenH-40, 16, colTextDim)
	}
}

// vec3 maps a projected point to world space; 2D frames lie in the
// z=0 plane.
func vec3(p []float64) rl.Vector3 {
	z := 0.0
	if len(p) > 2 {
		z = p[2]
	}
	return rl.NewVector3(
		float32(p[0]*worldScale),
		float32(p[1]*worldScale),
		float32(z*worldScale),
	)
}
