package systems

import (
	"github.com/automoto/arena-duel/components"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TryShoot fires for the player if its trigger is armed and the match is
// live, then disarms the trigger. Reports whether a bullet was spawned.
func TryShoot(e *ecs.ECS, playerEntry *donburi.Entry) bool {
	player := components.Player.Get(playerEntry)
	if !player.CanShoot || !GetOrCreateMatch(e).Live() {
		return false
	}
	Shoot(e, playerEntry)
	player.CanShoot = false
	return true
}

// Shoot spawns one bullet just outside the player's box on its facing
// side, centered on the other axis.
func Shoot(e *ecs.ECS, playerEntry *donburi.Entry) *donburi.Entry {
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	bw, bh := cfg.Bullet.Width, cfg.Bullet.Height
	cx, cy := rectOf(obj.Object).Center()

	var x, y float64
	switch player.Facing {
	case cfg.DirectionUp:
		x, y = cx-bw/2, obj.Y-bh
	case cfg.DirectionDown:
		x, y = cx-bw/2, obj.Y+obj.H
	case cfg.DirectionLeft:
		x, y = obj.X-bw, cy-bh/2
	default:
		x, y = obj.X+obj.W, cy-bh/2
	}

	dx, dy := player.Facing.Vector()
	bullet := factory.CreateBullet(e, player.Slot, x, y, bw, bh,
		dx*cfg.Bullet.Speed, dy*cfg.Bullet.Speed)

	PlaySFX(e, cfg.SoundShoot)
	return bullet
}

// ApplyHit resolves one bullet striking the player. An active shield with
// charge left takes the hit; otherwise health does.
func ApplyHit(e *ecs.ECS, playerEntry *donburi.Entry) {
	health := components.Health.Get(playerEntry)
	shield := components.Shield.Get(playerEntry)

	PlaySFX(e, cfg.SoundHit)

	if !shield.Absorbs() {
		health.Damage(cfg.Player.HitDamage)
		return
	}

	shield.Current -= cfg.Player.ShieldDrain
	if shield.Current < 0 {
		shield.Current = 0
	}
	if shield.Current == 0 {
		breakShield(e, playerEntry, shield)
	}
}

func breakShield(e *ecs.ECS, playerEntry *donburi.Entry, shield *components.ShieldData) {
	shield.Broken = true
	PlaySFX(e, cfg.SoundShieldBreak)

	Schedule(e, cfg.Player.ShieldBrokenDuration, func(e *ecs.ECS) {
		if playerEntry.Valid() {
			components.Shield.Get(playerEntry).Broken = false
		}
	})
}
