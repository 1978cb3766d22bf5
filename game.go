package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/kepler27b/planets/obj"
	"github.com/kepler27b/planets/physics"
	"github.com/kepler27b/planets/scenario"
	"github.com/kepler27b/planets/sim"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	frames int

	store  *sim.Store
	camera *obj.Camera
	input  *obj.Input
	params *SpawnParams

	ui        *ebitenui.UI
	bodyPanel *BodyPanel

	focus        int
	paused       bool
	showPanel    bool
	spawnOnClick bool
	debug        bool

	scenarioPath string
	watcher      *scenario.Watcher
}

func NewGame(scenarioPath string, watch, debug bool) (*Game, error) {
	sc, err := scenario.Load(scenarioPath)
	if err != nil {
		return nil, err
	}

	camera := obj.NewCamera(baseWidth, baseHeight, sc.Camera.Zoom)
	camera.SetSmooth(sc.Camera.Smoothness)

	g := &Game{
		store:        sim.NewStore(),
		camera:       camera,
		input:        obj.NewInput(camera),
		params:       NewSpawnParams(),
		debug:        debug,
		scenarioPath: scenarioPath,
	}
	g.applyScenario(sc)

	g.ui, g.bodyPanel = BuildPlanetUI(g.params, PlanetUICallbacks{
		OnSpawn:        g.spawnAtViewCenter,
		OnRemove:       g.removeBody,
		OnFocus:        g.focusBody,
		OnSpawnOnClick: func(enabled bool) { g.spawnOnClick = enabled },
	})
	g.refreshBodyList()

	if watch {
		w, err := scenario.NewWatcher(filepath.Dir(scenarioPath))
		if err != nil {
			return nil, fmt.Errorf("watch %s: %w", scenarioPath, err)
		}
		g.watcher = w
	}

	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++

	g.input.Update()
	g.pollWatcher()

	if g.input.TogglePanel {
		g.showPanel = !g.showPanel
	}
	if g.input.TogglePause {
		g.paused = !g.paused
	}
	g.camera.AdjustZoom(g.input.WheelY)

	if n := g.store.Len(); n > 0 {
		if g.input.FocusNext {
			g.focus = wrapFocus(g.focus+1, n)
		}
		if g.input.FocusPrev {
			g.focus = wrapFocus(g.focus-1, n)
		}
	}

	if g.spawnOnClick && g.input.SpawnPressed {
		g.spawnAt(g.input.MouseWorldX, g.input.MouseWorldY)
	}

	if !g.paused {
		g.store.Step()
	}

	// The store never fixes up external indices; re-wrap after any mutation.
	g.focus = wrapFocus(g.focus, g.store.Len())
	if b := g.store.At(g.focus); b != nil {
		g.camera.Update(b.Pos.X, b.Pos.Y)
	}

	if g.showPanel {
		g.ui.Update()
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.camera.Render(screen, g.drawWorld)

	if g.showPanel {
		g.ui.Draw(screen)
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Bodies: %d",
			g.frames, ebiten.ActualFPS(), g.store.Len()))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func (g *Game) spawnAtViewCenter() {
	x, y := g.camera.Center()
	g.spawnAt(x, y)
}

func (g *Game) spawnAt(x, y float64) {
	g.store.Spawn(
		physics.Vec2{X: x, Y: y},
		g.params.Radius,
		physics.Vec2{X: g.params.VelX, Y: g.params.VelY},
		g.params.Mass,
		g.params.Color(),
	)
	g.refreshBodyList()
}

func (g *Game) removeBody(index int) {
	if !g.store.Remove(index) {
		return
	}
	g.focus = wrapFocus(g.focus, g.store.Len())
	g.refreshBodyList()
}

func (g *Game) focusBody(index int) {
	g.focus = wrapFocus(index, g.store.Len())
}

func (g *Game) refreshBodyList() {
	if g.bodyPanel != nil {
		g.bodyPanel.SetBodies(g.store.Bodies())
	}
}

// applyScenario replaces the live body set with the scenario's.
func (g *Game) applyScenario(sc *scenario.Scenario) {
	g.store.Clear()
	for _, b := range sc.Build() {
		g.store.Add(b)
	}

	g.focus = 0
	g.camera.SetZoom(sc.Camera.Zoom)
	g.camera.SetSmooth(sc.Camera.Smoothness)
	if b := g.store.At(0); b != nil {
		g.camera.SnapTo(b.Pos.X, b.Pos.Y)
	}
	g.refreshBodyList()
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(name) != filepath.Base(g.scenarioPath) {
				continue
			}
			sc, err := scenario.Load(g.scenarioPath)
			if err != nil {
				log.Printf("reload %s: %v", g.scenarioPath, err)
				continue
			}
			g.applyScenario(sc)
			log.Printf("reloaded scenario %s", g.scenarioPath)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("scenario watcher: %v", err)
		default:
			return
		}
	}
}

// wrapFocus maps any index into [0, n) with modular wrap; with no bodies it
// parks the focus at 0.
func wrapFocus(i, n int) int {
	if n <= 0 {
		return 0
	}
	m := i % n
	if m < 0 {
		m += n
	}
	return m
}
