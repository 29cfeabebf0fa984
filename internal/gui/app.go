package gui

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/bars3d/internal/session"
)

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
)

const (
	rotateSpeed = 0.005 // radians per pixel of drag
	panSpeed    = 0.02
	zoomFactor  = 0.9 // per wheel notch
	maxHistory  = 200
)

// App is the native window host of one session. Screen pixels are the
// session's viewport.
type App struct {
	Session   *session.Session
	Camera    rl.Camera3D
	Running   bool
	Telemetry []float64 // scale history of the last picked bar
	Selected  int
	log       *slog.Logger
}

// Run opens a resizable window and blocks until it is closed.
func Run(s *session.Session, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}
	cfg := s.Config()
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Viewport.Width), int32(cfg.Viewport.Height), "bars3d")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FPS))
	rl.SetExitKey(0)

	app := NewApp(s, log)
	app.resize()
	return app.RunLoop()
}

func NewApp(s *session.Session, log *slog.Logger) *App {
	return &App{
		Session:   s,
		Running:   true,
		Telemetry: make([]float64, 0, maxHistory),
		log:       log,
	}
}

func (a *App) RunLoop() error {
	for !rl.WindowShouldClose() {
		quit, err := a.Update()
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
		a.Draw()
	}
	return nil
}

// Update handles input and advances the session by one frame.
func (a *App) Update() (bool, error) {
	s := a.Session
	if rl.IsKeyPressed(rl.KeyQ) {
		return true, nil
	}
	if rl.IsWindowResized() {
		a.resize()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		if err := s.Reset(); err != nil {
			return false, err
		}
		a.resize()
		a.Telemetry = a.Telemetry[:0]
	}

	a.handleMouse()

	var err error
	if a.Running {
		err = s.Tick()
		a.record()
	} else {
		err = s.Refresh()
	}
	a.Camera = toCamera(s.Camera)
	return false, err
}

// handleMouse orbits on left drag, pans on right drag and zooms on the
// wheel. A left press picks immediately, as a pointer-down would.
func (a *App) handleMouse() {
	orbit := a.Session.Orbit
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		pos := rl.GetMousePosition()
		res := a.Session.PointerDown(float64(pos.X), float64(pos.Y))
		a.log.Debug("pick", "result", res.Kind)
		if res.Mesh != nil {
			for i, b := range a.Session.Chart.Bars {
				if b.Mesh == res.Mesh {
					a.selectBar(i)
				}
			}
		}
	}
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		d := rl.GetMouseDelta()
		if d.X != 0 || d.Y != 0 {
			orbit.Rotate(-float64(d.X)*rotateSpeed, float64(d.Y)*rotateSpeed)
		}
	}
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		d := rl.GetMouseDelta()
		orbit.Pan(-float64(d.X)*panSpeed, float64(d.Y)*panSpeed)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		if wheel > 0 {
			orbit.Zoom(zoomFactor)
		} else {
			orbit.Zoom(1 / zoomFactor)
		}
	}
}

func (a *App) resize() {
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	a.Session.Resize(float64(w), float64(h))
}

func (a *App) selectBar(i int) {
	if i != a.Selected {
		a.Telemetry = a.Telemetry[:0]
	}
	a.Selected = i
}

func (a *App) record() {
	bars := a.Session.Chart.Bars
	if a.Selected < 0 || a.Selected >= len(bars) {
		return
	}
	a.Telemetry = append(a.Telemetry, bars[a.Selected].Scale())
	if len(a.Telemetry) > maxHistory {
		a.Telemetry = a.Telemetry[1:]
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	rl.BeginMode3D(a.Camera)
	drawScene(a.Session.Scene)
	rl.EndMode3D()

	a.drawLabels()
	a.DrawHUD()

	rl.EndDrawing()
}

const labelSize = 20

// drawLabels draws each label centred on its projected position.
func (a *App) drawLabels() {
	for _, l := range a.Session.Chart.Labels {
		w := rl.MeasureText(l.Text, labelSize)
		rl.DrawText(l.Text, int32(l.X)-w/2, int32(l.Y)-labelSize/2, labelSize, ColSelect)
	}
}

func (a *App) DrawHUD() {
	s := a.Session
	sh := int32(rl.GetScreenHeight())
	rl.DrawText("bars3d", 30, 30, 24, ColSelect)
	rl.DrawText(fmt.Sprintf(":: %s", s.Variant()), 130, 34, 16, ColText)

	status, col := "RUNNING", ColSelect
	if !a.Running {
		status, col = "PAUSED", ColTextDim
	}
	rl.DrawText(status, int32(rl.GetScreenWidth())-120, 30, 16, col)
	rl.DrawText(fmt.Sprintf("t %.2f  frame %d  last %s", s.Time(), s.Frames(), s.LastResult().Kind), 30, 60, 14, ColText)

	a.DrawTelemetry()

	rl.DrawText("[CLICK] PICK  [DRAG] ORBIT  [WHEEL] ZOOM  [SPACE] PAUSE  [R] RESET  [Q] QUIT", 30, sh-40, 14, ColTextDim)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), 30, sh-20, 14, ColTextDim)
}

// DrawTelemetry plots the selected bar's scale history.
func (a *App) DrawTelemetry() {
	if len(a.Telemetry) < 2 {
		return
	}

	rectX, rectY := float32(30), float32(rl.GetScreenHeight()-120)
	width, height := float32(400), float32(60)

	minVal, maxVal := a.Telemetry[0], a.Telemetry[0]
	for _, v := range a.Telemetry {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	points := make([]rl.Vector2, len(a.Telemetry))
	for i, val := range a.Telemetry {
		px := rectX + float32(i)/float32(len(a.Telemetry))*width
		norm := (val - minVal) / (maxVal - minVal)
		py := rectY + height - float32(norm)*height
		points[i] = rl.NewVector2(px, py)
	}

	rl.DrawLineStrip(points, ColAccent)
	name := a.Session.Chart.Bars[a.Selected].Mesh.Name
	rl.DrawText(fmt.Sprintf("%s %.2f", name, a.Telemetry[len(a.Telemetry)-1]), int32(rectX+width+10), int32(rectY+height-10), 14, ColText)
}
