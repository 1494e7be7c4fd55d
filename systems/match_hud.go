package systems

import (
	"strconv"

	"github.com/automoto/arena-duel/components"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawMatchHUD renders phase-specific overlays: the countdown digit and
// the names banner shown once both players have landed.
func DrawMatchHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	match := GetOrCreateMatch(ecs)

	switch match.Phase {
	case cfg.PhaseCountdown:
		drawCountdown(screen, match)
	case cfg.PhaseReady:
		drawNamesBanner(screen, match)
	}
}

func drawCountdown(screen *ebiten.Image, match *components.MatchData) {
	face := fonts.Countdown.Get()
	s := strconv.Itoa(match.CountdownValue)
	x := cfg.C.Width/2 - fonts.Width(face, s)/2
	text.Draw(screen, s, face, x, cfg.C.Height/2, cfg.White)
}

func drawNamesBanner(screen *ebiten.Image, match *components.MatchData) {
	h := cfg.HUD
	w, bh := float32(h.BannerWidth), float32(h.BannerHeight)
	x := (float32(cfg.C.Width) - w) / 2
	y := float32(h.BannerY)

	vector.FillRect(screen, x, y, w, bh, cfg.White, false)
	vector.StrokeRect(screen, x, y, w, bh, 2, cfg.Black, false)

	face := fonts.Bold.Get()
	baseline := int(y) + 32
	text.Draw(screen, match.Name(1), face, int(x)+20, baseline, cfg.Player.Colors[0])

	right := match.Name(2)
	text.Draw(screen, right, face, int(x+w)-20-fonts.Width(face, right), baseline, cfg.Player.Colors[1])
}
