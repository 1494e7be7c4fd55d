package systems

import (
	"github.com/automoto/arena-duel/components"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawArena clears the canvas and draws players and bullets. Players stay
// hidden on the start panel and during the countdown.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.HUD.BackgroundColor)

	match := GetOrCreateMatch(ecs)
	if match.Phase == cfg.PhaseIdle || match.Phase == cfg.PhaseCountdown {
		return
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		drawPlayer(screen, e)
	})

	components.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		bullet := components.Bullet.Get(e)
		o := components.Object.Get(e)
		vector.FillRect(screen,
			float32(o.X), float32(o.Y), float32(o.W), float32(o.H),
			cfg.Bullet.Colors[bullet.Owner-1], false)
	})
}

func drawPlayer(screen *ebiten.Image, e *donburi.Entry) {
	player := components.Player.Get(e)
	shield := components.Shield.Get(e)
	o := components.Object.Get(e)

	vector.FillRect(screen,
		float32(o.X), float32(o.Y), float32(o.W), float32(o.H),
		cfg.Player.Colors[player.Slot-1], false)

	if !shield.Active || (shield.Current == 0 && !shield.Broken) {
		return
	}

	ring := cfg.HUD.ShieldRingColor
	if shield.Broken {
		ring = cfg.HUD.ShieldBrokenColor
	}
	cx, cy := rectOf(o.Object).Center()
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(o.W),
		cfg.HUD.ShieldRingWidth, ring, true)
}
