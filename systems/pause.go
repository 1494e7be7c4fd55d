package systems

import (
	cfg "github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const pauseHint = "Press P to resume"

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateMatch(ecs).Paused {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	// Draw semi-transparent overlay
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.HUD.OverlayColor,
		false,
	)

	title := "Paused"
	titleFont := fonts.Countdown.Get()
	text.Draw(screen, title, titleFont, (width-fonts.Width(titleFont, title))/2, height/2, cfg.White)

	hintFont := fonts.Small.Get()
	text.Draw(screen, pauseHint, hintFont, (width-fonts.Width(hintFont, pauseHint))/2, height/2+40, cfg.White)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetOrCreateMatch(e).Paused {
			return
		}
		system(e)
	}
}
