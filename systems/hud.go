package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/arena-duel/components"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD renders both players' health and shield bars, name boxes and the
// controls legend while a round is in progress.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	match := GetOrCreateMatch(ecs)
	if match.Phase != cfg.PhaseRunning && match.Phase != cfg.PhaseGameOver {
		return
	}

	for slot := 1; slot <= 2; slot++ {
		entry, ok := PlayerBySlot(ecs, slot)
		if !ok {
			continue
		}
		drawStatus(screen, slot, match.Name(slot),
			components.Health.Get(entry), components.Shield.Get(entry))
	}
	drawControls(screen, match)
}

// statusX returns the left edge of a player's status column.
func statusX(slot int) float32 {
	if slot == 1 {
		return float32(cfg.HUD.Margin)
	}
	return float32(float64(cfg.C.Width) - cfg.HUD.BarWidth - cfg.HUD.Margin)
}

func drawStatus(screen *ebiten.Image, slot int, name string, hp *components.HealthData, sh *components.ShieldData) {
	h := cfg.HUD
	x := statusX(slot)
	y := float32(h.Margin)
	bw, bh := float32(h.BarWidth), float32(h.BarHeight)
	small := fonts.Small.Get()

	drawBar(screen, x, y, bw, bh, ratio(hp.Current, hp.Max), h.HealthColor)
	drawLabel(screen, slot, fmt.Sprintf("Health: %d%%", hp.Current), small, x, y+bh-3, bw)

	sy := y + bh + float32(h.BarGap)
	shieldColor := h.ShieldColor
	if sh.Current == 0 {
		shieldColor = h.ShieldEmptyColor
	}
	drawBar(screen, x, sy, bw, bh, ratio(sh.Current, sh.Max), shieldColor)
	drawLabel(screen, slot, fmt.Sprintf("Shield: %d%%", sh.Current), small, x, sy+bh-3, bw)

	ny := y + 2*bh + 20
	nw, nh := float32(h.NameBoxWidth), float32(h.NameBoxHeight)
	vector.FillRect(screen, x, ny, nw, nh, h.NameBoxColor, false)
	vector.StrokeRect(screen, x, ny, nw, nh, 1, cfg.Black, false)
	text.Draw(screen, name, fonts.Regular.Get(), int(x)+10, int(ny+nh)-9, cfg.Player.Colors[slot-1])
}

func drawBar(screen *ebiten.Image, x, y, w, h float32, fill float32, clr color.Color) {
	vector.FillRect(screen, x, y, w*fill, h, clr, false)
	vector.StrokeRect(screen, x, y, w, h, 1, cfg.HUD.OutlineColor, false)
}

// drawLabel writes s inside a bar, left aligned for player 1 and right
// aligned for player 2.
func drawLabel(screen *ebiten.Image, slot int, s string, face font.Face, x, baseline, w float32) {
	tx := int(x) + 5
	if slot == 2 {
		tx = int(x+w) - 5 - fonts.Width(face, s)
	}
	text.Draw(screen, s, face, tx, int(baseline), cfg.White)
}

func ratio(cur, limit int) float32 {
	if limit <= 0 {
		return 0
	}
	return float32(cur) / float32(limit)
}

func drawControls(screen *ebiten.Image, match *components.MatchData) {
	h := cfg.HUD
	w, bh := float32(h.ControlsBoxWidth), float32(h.ControlsBoxHeight)
	y := float32(float64(cfg.C.Height) - h.ControlsBoxHeight - h.Margin)
	face := fonts.Small.Get()

	legends := [2]string{
		"P1: WASD | SPACE shoot | Q shield",
		"P2: Arrows | ENTER shoot | M shield",
	}
	if match.Mode == cfg.GameModeSolo {
		legends[1] = "AI Controlled"
	}

	for slot := 1; slot <= 2; slot++ {
		x := float32(h.Margin)
		if slot == 2 {
			x = float32(float64(cfg.C.Width) - h.ControlsBoxWidth - h.Margin)
		}
		vector.FillRect(screen, x, y, w, bh, h.ControlsBoxColor, false)
		vector.StrokeRect(screen, x, y, w, bh, 2, h.OutlineColor, false)

		legend := legends[slot-1]
		tx := int(x+w/2) - fonts.Width(face, legend)/2
		text.Draw(screen, legend, face, tx, int(y+bh/2)+4, cfg.White)
	}
}
