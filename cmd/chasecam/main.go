// Command chasecam is a first person camera demo: the w, a, s and d keys move
// a target point and the camera chases it with a damped spring. Dragging with
// the left mouse button looks around, Home resets the camera and Escape quits.
//
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/db47h/chasecam"
	"github.com/db47h/chasecam/app"
	"github.com/db47h/chasecam/app/event"
	"github.com/db47h/chasecam/assets"
	"github.com/db47h/chasecam/camera"
	"github.com/db47h/chasecam/config"
	"github.com/db47h/chasecam/debug"
	"github.com/db47h/chasecam/frametime"
	"github.com/db47h/chasecam/input"
	"github.com/db47h/chasecam/loop"
	"github.com/db47h/chasecam/scene"
	"github.com/db47h/chasecam/spring"
	"github.com/db47h/chasecam/text"
	"github.com/db47h/chasecam/texture"
	"github.com/db47h/ofs"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

var (
	configPath = flag.String("config", "", "YAML configuration `file`")
	assetDir   = flag.String("assets", "", "additional asset `directory`, searched first")
	fixed      = flag.Bool("fixed", false, "use a fixed timestep loop")
	fontName   = flag.String("font", "", "TrueType font in the fonts asset directory (default Go Mono)")
	verbose    = flag.Bool("v", false, "log frame statistics every second")
)

type chaseApp struct {
	cfg   *config.Config
	mgr   *assets.Manager
	w     app.Window
	in    *input.State
	cam   *camera.Camera
	view  chasecam.View
	timer *frametime.Timer
	stats debug.Timer

	grid      *scene.Grid
	points    *scene.PointList
	spin      float32
	dbg       debug.Debug
	ownFont   *text.Drawer
	crosshair *texture.Texture

	dt        time.Duration // last update timestep
	lastFrame time.Duration
	lastLog   time.Duration
}

func newApp(cfg *config.Config, mgr *assets.Manager) (*chaseApp, error) {
	f, err := spring.NewFollower(cfg.SpringParams())
	if err != nil {
		return nil, err
	}
	cam := camera.New(f)
	cam.Speed = cfg.Camera.Speed
	cam.LookFrequency = cfg.Camera.LookFrequency
	cam.LookDamping = cfg.Camera.LookDamping
	in := input.New()
	in.Sensitivity = cfg.Camera.Sensitivity
	return &chaseApp{
		cfg:  cfg,
		mgr:  mgr,
		in:   in,
		cam:  cam,
		view: chasecam.DefaultView,
	}, nil
}

func (a *chaseApp) Init(w app.Window) error {
	a.w = w
	log.Print(app.DriverVersion())

	t, err := frametime.New(app.Clock(), a.cfg.TimerOptions()...)
	if err != nil {
		return err
	}
	a.timer = t

	if err := a.mgr.Wait(); err != nil {
		log.Print(err)
	}
	a.grid = scene.NewGrid(10, scene.White)

	pc, err := a.mgr.Mesh(a.cfg.Mesh.Name)
	if err != nil {
		return err
	}
	pc = pc.Clone()
	pc.Translate(mgl32.Vec3{0, a.cfg.Mesh.YOffset, 0})
	a.points = scene.NewPointList(pc, 2)
	log.Printf("mesh %s: %d points", pc.Name, pc.Len())

	if *fontName != "" {
		a.dbg.TD, err = a.mgr.FontDrawer(*fontName, 14, text.HintingFull, texture.Linear)
		if err != nil {
			return err
		}
	} else {
		f, err := truetype.Parse(gomono.TTF)
		if err != nil {
			return errors.Wrap(err, "gomono")
		}
		a.ownFont = text.NewDrawer(truetype.NewFace(f, &truetype.Options{
			Size:       14,
			Hinting:    font.HintingFull,
			SubPixelsX: text.SubPixelsX,
		}), texture.Linear)
		a.dbg.TD = a.ownFont
	}
	a.dbg.Color = scene.White
	a.dbg.Background = scene.Color{A: 0.6}

	if a.crosshair, err = a.mgr.Texture("crosshair.png", texture.Filter(texture.Linear, texture.Linear)); err != nil {
		log.Printf("no crosshair: %v", err)
	}
	return nil
}

func (a *chaseApp) Run(w app.Window) error {
	if *fixed {
		l := loop.FixedStep{Simple: loop.Simple{Clock: app.Clock()}, DT: time.Second / 120}
		l.Run(fixedStep{a})
		return nil
	}
	l := loop.Smoothed{Simple: loop.Simple{Clock: app.Clock()}, Timer: a.timer}
	return l.Run(a)
}

func (a *chaseApp) Terminate() error {
	a.points.Delete()
	if a.ownFont != nil {
		a.ownFont.Close()
	}
	return a.mgr.Close()
}

func (a *chaseApp) ProcessEvents() bool {
	quit := a.w.ProcessEvents(false, app.HandlerFunc(a.in.Handle))
	return quit || a.in.Quit()
}

func (a *chaseApp) FrameStart(now time.Duration) {
	if a.lastFrame > 0 {
		a.stats.Add(now - a.lastFrame)
	}
	a.lastFrame = now
	if *verbose && now-a.lastLog >= time.Second {
		a.lastLog = now
		log.Printf("%.1f fps, max frame %v, dt %v", a.stats.AveragePerSecond(), a.stats.Max(), a.dt)
	}
}

func (a *chaseApp) Update(dt time.Duration) {
	a.dt = dt
	s := float32(dt.Seconds())
	if a.in.Down(event.KeyHome) {
		a.cam.Place(camera.DefaultPosition)
		a.cam.SetTarget(camera.DefaultTarget)
		a.cam.Look(0, 0)
	}
	a.cam.Update(a.in, s)
	a.spin = float32(math.Mod(float64(a.spin+a.cfg.Mesh.Spin*s), 360))
}

func (a *chaseApp) Draw() {
	fb := a.w.FrameBuffer()
	scene.Clear(scene.Black, true)
	scene.LoadProjection(a.view.Projection(*fb))
	scene.LoadModelView(a.cam.View())
	a.grid.Draw()
	a.points.Draw(a.spin, scene.White)

	p, tg := a.cam.Position(), a.cam.Target()
	a.dbg.InfoBox(fb, debug.TopLeft, []string{
		fmt.Sprintf("dt   %6.2f ms", float64(a.dt)/float64(time.Millisecond)),
		fmt.Sprintf("raw  %6.2f ms", float64(a.stats.Average())/float64(time.Millisecond)),
		fmt.Sprintf("fps  %6.1f", a.stats.AveragePerSecond()),
		fmt.Sprintf("pos  %6.2f %6.2f %6.2f", p[0], p[1], p[2]),
		fmt.Sprintf("tgt  %6.2f %6.2f %6.2f", tg[0], tg[1], tg[2]),
		fmt.Sprintf("look %6.1f %6.1f", a.cam.Yaw(), a.cam.Pitch()),
	})
	if a.crosshair != nil && a.in.Dragging() {
		debug.Crosshair(fb, a.crosshair)
	}
}

// fixedStep adapts chaseApp to loop.FixedStep.
//
type fixedStep struct {
	*chaseApp
}

func (a fixedStep) Draw(_, _ time.Duration) {
	a.chaseApp.Draw()
}

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	var ovl ofs.Overlay
	dirs := []string{"assets", "cmd/chasecam/assets"}
	if *assetDir != "" {
		dirs = append([]string{*assetDir}, dirs...)
	}
	if err := ovl.Add(false, dirs...); err != nil {
		log.Fatal(err)
	}
	mgr := assets.NewManager(&ovl,
		assets.MeshPath("meshes"),
		assets.FontPath("fonts"),
		assets.TexturePath("textures"),
		assets.FilePath("."))
	mgr.PreloadMesh(cfg.Mesh.Name)
	mgr.PreloadTexture("crosshair.png")
	if *fontName != "" {
		mgr.PreloadFont(*fontName)
	}

	a, err := newApp(cfg, mgr)
	if err != nil {
		log.Fatal(err)
	}
	err = app.Main(a,
		app.Title(cfg.Window.Title),
		app.Size(cfg.Window.Width, cfg.Window.Height),
		app.Pos(100, 100),
		app.VSync(cfg.Window.VSync))
	if err != nil {
		log.Fatal(err)
	}
}
