package scenes

import (
	"image/color"
	"log"
	"sync"
	"time"

	cfg "github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/systems"
	"github.com/automoto/arena-duel/systems/factory"
	"github.com/automoto/arena-duel/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene runs the whole game: start panel, match phases and the game
// over panel all share one world so scores survive between matches.
type ArenaScene struct {
	ecs  *ecs.ECS
	opts factory.ArenaOptions
	once sync.Once

	startUI    *ui.StartUI
	gameOverUI *ui.GameOverUI

	lastUpdate time.Time
}

// NewArenaScene creates the scene; the world is built on the first update
func NewArenaScene(opts factory.ArenaOptions) *ArenaScene {
	return &ArenaScene{opts: opts}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)

	// Delayed events run on wall-clock time, independent of the tick rate.
	now := time.Now()
	if !as.lastUpdate.IsZero() {
		systems.AdvanceTime(as.ecs, now.Sub(as.lastUpdate))
	}
	as.lastUpdate = now

	switch systems.GetOrCreateMatch(as.ecs).Phase {
	case cfg.PhaseIdle:
		if as.startUI != nil {
			as.startUI.Update()
		}
	case cfg.PhaseGameOver:
		if as.gameOverUI != nil {
			as.gameOverUI.Update()
		}
	}

	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)

	switch systems.GetOrCreateMatch(as.ecs).Phase {
	case cfg.PhaseIdle:
		if as.startUI != nil {
			as.startUI.UI.Draw(screen)
		}
	case cfg.PhaseGameOver:
		if as.gameOverUI != nil {
			as.gameOverUI.UI.Draw(screen)
		}
	}
}

func (as *ArenaScene) configure() {
	// Preload sounds to avoid a hitch on the first shot
	systems.PreloadAllSFX()

	e := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first so triggers from the last frame play)
	e.AddSystem(systems.UpdateAudio)

	e.AddSystem(systems.UpdateNameEntry)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateDrop)
	e.AddSystem(systems.WithPauseCheck(systems.UpdateArena))
	e.AddSystem(systems.UpdateObjects)

	e.AddRenderer(cfg.Default, systems.DrawArena)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawMatchHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Overlay, systems.DrawPause)

	as.ecs = e
	factory.CreateArena(e, as.opts)

	as.buildUI()

	if cfg.Debug.SkipMenu || as.startUI == nil {
		systems.StartFromLobby(e)
	}
}

func (as *ArenaScene) buildUI() {
	e := as.ecs
	match := systems.GetOrCreateMatch(e)

	startUI, err := ui.NewStartUI(
		systems.GetOrCreateLobby(e),
		func() int { return systems.GetVolume(e) },
		func() string { return match.ScoreText(1) + "   " + match.ScoreText(2) },
		ui.StartActions{
			FocusName:        func(slot int) { systems.FocusNameField(e, slot) },
			CycleMode:        func() { systems.CycleGameMode(e) },
			StepVolume:       func(steps int) { systems.StepVolume(e, steps) },
			ToggleFullscreen: func() { ebiten.SetFullscreen(!ebiten.IsFullscreen()) },
			Start:            func() { systems.StartFromLobby(e) },
		},
	)
	if err != nil {
		log.Printf("Warning: start panel unavailable: %v", err)
	} else {
		as.startUI = startUI
	}

	gameOverUI, err := ui.NewGameOverUI(match,
		func() { systems.Rematch(e) },
		func() {
			systems.Restart(e)
			systems.ResetLobby(e)
			if ebiten.IsFullscreen() {
				ebiten.SetFullscreen(false)
			}
		},
	)
	if err != nil {
		log.Printf("Warning: game over panel unavailable: %v", err)
	} else {
		as.gameOverUI = gameOverUI
	}
}
