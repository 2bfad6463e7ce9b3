package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/Mairuzu0/Boost-Game/common"
	"github.com/Mairuzu0/Boost-Game/ecs"
	"github.com/Mairuzu0/Boost-Game/ecs/component"
	"github.com/Mairuzu0/Boost-Game/ecs/entity"
	"github.com/Mairuzu0/Boost-Game/ecs/system"
	"github.com/Mairuzu0/Boost-Game/levels"
	"github.com/Mairuzu0/Boost-Game/prefabs"
	"github.com/Mairuzu0/Boost-Game/rocket"
	"github.com/Mairuzu0/Boost-Game/scene"
	"github.com/Mairuzu0/Boost-Game/timer"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type Game struct {
	frames int
	muted  bool
	quit   bool

	paused  bool
	pauseUI *ebitenui.UI

	loader      *scene.Loader
	spec        *prefabs.RocketSpec
	pendingSpec *prefabs.RocketSpec
	level       *levels.Level

	world      *ecs.World
	scheduler  *ecs.Scheduler
	physics    *system.PhysicsSystem
	render     *system.RenderSystem
	controller *rocket.Controller

	watcher *prefabs.Watcher
	hud     *hud
}

// NewGame loads the level order and the rocket prefab and builds the first
// scene. startLevel picks the first scene by file name; empty means the
// first level in the order.
func NewGame(startLevel string, muted bool) (*Game, error) {
	names, err := levels.Order()
	if err != nil {
		return nil, err
	}

	start := 0
	if startLevel != "" {
		start = indexOfLevel(names, startLevel)
		if start < 0 {
			return nil, fmt.Errorf("game: unknown level %q", startLevel)
		}
	}

	loader, err := scene.NewLoader(names, start)
	if err != nil {
		return nil, err
	}

	spec, err := prefabs.LoadRocketSpec()
	if err != nil {
		return nil, err
	}

	g := &Game{
		muted:  muted,
		loader: loader,
		spec:   spec,
		render: system.NewRenderSystem(),
		hud:    newHUD(),
	}
	g.pauseUI = NewPauseUI(g)

	if err := g.loadScene(); err != nil {
		return nil, err
	}

	if common.DebugBuild {
		watcher, err := prefabs.NewWatcher(prefabs.Dir, levels.Dir)
		if err != nil {
			log.Printf("game: hot reload disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	return g, nil
}

func indexOfLevel(names []string, name string) int {
	want := strings.TrimSuffix(filepath.Base(name), ".yaml")
	for i, n := range names {
		if strings.TrimSuffix(n, ".yaml") == want {
			return i
		}
	}
	return -1
}

type sceneState struct {
	level      *levels.Level
	world      *ecs.World
	scheduler  *ecs.Scheduler
	physics    *system.PhysicsSystem
	controller *rocket.Controller
}

// loadScene builds the loader's current level in a fresh world and swaps it
// in only once every step succeeded, so a failure leaves the running scene
// and prefab untouched. Pending timers belong to the old scene and are
// dropped with it. A prefab staged by the watcher is adopted on success and
// discarded either way.
func (g *Game) loadScene() error {
	spec := g.spec
	if g.pendingSpec != nil {
		spec = g.pendingSpec
		g.pendingSpec = nil
	}

	next, err := g.buildScene(spec)
	if err != nil {
		return err
	}

	g.unloadScene()
	g.spec = spec
	g.level = next.level
	g.world = next.world
	g.scheduler = next.scheduler
	g.physics = next.physics
	g.controller = next.controller

	log.Printf("game: loaded level %d/%d %q", g.loader.Current()+1, g.loader.Len(), next.level.Name)
	return nil
}

func (g *Game) buildScene(spec *prefabs.RocketSpec) (*sceneState, error) {
	lvl, err := levels.Load(g.loader.CurrentName())
	if err != nil {
		return nil, err
	}

	world := ecs.NewWorld()
	timers := timer.NewQueue()
	physics := system.NewPhysicsSystem()

	controller, err := populateScene(world, physics, lvl, spec, timers, g.loader, g.muted)
	if err != nil {
		releaseAudio(world)
		return nil, err
	}

	seed := uint64(time.Now().UnixNano())
	scheduler := ecs.NewScheduler(
		system.NewInputSystem(),
		system.NewRocketSystem(),
		physics,
		system.NewTimerSystem(timers),
		system.NewParticleSystem(seed),
		system.NewCameraSystem(seed),
		system.NewTTLSystem(),
		system.NewAudioSystem(),
	)
	return &sceneState{
		level:      lvl,
		world:      world,
		scheduler:  scheduler,
		physics:    physics,
		controller: controller,
	}, nil
}

func populateScene(world *ecs.World, physics *system.PhysicsSystem, lvl *levels.Level, spec *prefabs.RocketSpec, timers *timer.Queue, scenes rocket.SceneLoader, muted bool) (*rocket.Controller, error) {
	if err := entity.LoadLevelToWorld(world, lvl); err != nil {
		return nil, err
	}
	rocketEntity, err := entity.NewRocketAt(world, spec, lvl.Spawn.X, lvl.Spawn.Y, muted)
	if err != nil {
		return nil, err
	}
	physics.Sync(world)
	return entity.BindRocket(world, rocketEntity, spec, timers, scenes, log.Default())
}

func releaseAudio(w *ecs.World) {
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, a *component.Audio) {
		entity.ReleaseAudio(a)
	})
}

func (g *Game) unloadScene() {
	if g.world == nil {
		return
	}
	releaseAudio(g.world)
	g.world = nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.frames++

	if g.watcher != nil {
		g.drainWatcher()
	}

	g.scheduler.Update(g.world)

	return g.applySceneRequest()
}

// applySceneRequest loads the scene the loader was asked for, if any.
func (g *Game) applySceneRequest() error {
	req, ok := g.loader.Take()
	if !ok {
		return nil
	}
	if err := g.loadScene(); err != nil {
		// A broken edit during hot reload keeps the running scene.
		if req.Kind == scene.RequestReload && g.world != nil {
			log.Printf("game: reload %q failed, keeping current scene: %v", req.Name, err)
			return nil
		}
		return fmt.Errorf("game: %s scene %q: %w", req.Kind, req.Name, err)
	}
	return nil
}

// drainWatcher reloads the rocket prefab and restarts the current level when
// a watched file changes. A prefab that fails to load keeps the old one.
func (g *Game) drainWatcher() {
	changed := false
drain:
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("game: %s changed", name)
			changed = true
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				log.Printf("game: watcher: %v", err)
			}
		default:
			break drain
		}
	}
	if !changed {
		return
	}

	spec, err := prefabs.LoadRocketSpec()
	if err != nil {
		log.Printf("game: keeping previous rocket prefab: %v", err)
	} else {
		g.pendingSpec = spec
	}
	g.loader.ReloadCurrent()
}

// Restart reloads the current level.
func (g *Game) Restart() {
	g.loader.ReloadCurrent()
	g.paused = false
}

func (g *Game) Resume() {
	g.paused = false
}

func (g *Game) Quit() {
	g.quit = true
}

func (g *Game) Close() {
	g.unloadScene()
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("game: close watcher: %v", err)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)

	if common.DebugBuild {
		system.DrawPhysicsDebug(g.physics.Space(), g.world, screen)
		system.DrawRocketDebug(g.world, screen)
	}

	g.hud.Draw(screen, hudState{
		LevelIndex: g.loader.Current(),
		LevelCount: g.loader.Len(),
		LevelName:  g.level.Name,
		State:      g.controller.State(),
		FPS:        ebiten.ActualFPS(),
		Frames:     g.frames,
	})

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
