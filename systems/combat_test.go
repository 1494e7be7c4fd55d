package systems

import (
	"testing"

	"github.com/automoto/arena-duel/components"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShootSpawnsOutsideShooter(t *testing.T) {
	tests := []struct {
		facing cfg.Direction
		vx, vy float64
	}{
		{cfg.DirectionUp, 0, -10},
		{cfg.DirectionDown, 0, 10},
		{cfg.DirectionLeft, -10, 0},
		{cfg.DirectionRight, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.facing.String(), func(t *testing.T) {
			e := newTestArena(t, cfg.GameModeDuo)
			shooter := mustPlayer(t, e, 1)
			placePlayer(t, e, 1, 200, 200)
			components.Player.Get(shooter).Facing = tt.facing

			entry := Shoot(e, shooter)
			require.NotNil(t, entry)

			b := components.Bullet.Get(entry)
			assert.Equal(t, 1, b.Owner)
			assert.Equal(t, tt.vx, b.SpeedX)
			assert.Equal(t, tt.vy, b.SpeedY)

			box := rectOf(components.Object.Get(entry).Object)
			player := rectOf(playerObj(t, e, 1).Object)
			assert.False(t, box.Overlaps(player), "bullet must start outside the shooter")
		})
	}
}

func TestShootUpIsCenteredAboveShooter(t *testing.T) {
	e := newTestArena(t, cfg.GameModeDuo)
	shooter := mustPlayer(t, e, 1)
	placePlayer(t, e, 1, 200, 200)
	components.Player.Get(shooter).Facing = cfg.DirectionUp

	b := components.Object.Get(Shoot(e, shooter))
	bx, _ := rectOf(b.Object).Center()
	px, _ := rectOf(playerObj(t, e, 1).Object).Center()

	assert.Equal(t, px, bx)
	assert.Equal(t, 200.0, b.Y+b.H, "bottom edge sits on the shooter's top edge")
	assert.Contains(t, pendingSounds(e), cfg.SoundShoot)
}

func TestDefaultFacingFiresTowardOpponent(t *testing.T) {
	e := newTestArena(t, cfg.GameModeDuo)

	b1 := components.Bullet.Get(Shoot(e, mustPlayer(t, e, 1)))
	b2 := components.Bullet.Get(Shoot(e, mustPlayer(t, e, 2)))

	assert.Equal(t, 10.0, b1.SpeedX)
	assert.Equal(t, -10.0, b2.SpeedX)
}

func TestApplyHitWithoutShield(t *testing.T) {
	e := newTestArena(t, cfg.GameModeDuo)
	target := mustPlayer(t, e, 2)

	ApplyHit(e, target)

	assert.Equal(t, 90, components.Health.Get(target).Current)
	assert.Equal(t, 100, components.Shield.Get(target).Current)
	assert.Equal(t, []cfg.SoundID{cfg.SoundHit}, pendingSounds(e))
}

func TestApplyHitShieldAbsorbs(t *testing.T) {
	e := newTestArena(t, cfg.GameModeDuo)
	target := mustPlayer(t, e, 2)
	components.Shield.Get(target).Active = true

	ApplyHit(e, target)

	assert.Equal(t, 100, components.Health.Get(target).Current)
	assert.Equal(t, 90, components.Shield.Get(target).Current)
	assert.False(t, components.Shield.Get(target).Broken)
}

func TestApplyHitBreaksShieldForHalfASecond(t *testing.T) {
	e := newTestArena(t, cfg.GameModeDuo)
	target := mustPlayer(t, e, 2)
	shield := components.Shield.Get(target)
	shield.Active = true
	shield.Current = 10

	ApplyHit(e, target)

	assert.Equal(t, 0, shield.Current)
	assert.True(t, shield.Broken)
	assert.Equal(t, []cfg.SoundID{cfg.SoundHit, cfg.SoundShieldBreak}, pendingSounds(e))

	AdvanceTime(e, cfg.Player.ShieldBrokenDuration-1)
	assert.True(t, shield.Broken)

	AdvanceTime(e, 1)
	assert.False(t, shield.Broken)
}

func TestApplyHitEmptyShieldFallsThroughToHealth(t *testing.T) {
	e := newTestArena(t, cfg.GameModeDuo)
	target := mustPlayer(t, e, 2)
	shield := components.Shield.Get(target)
	shield.Active = true
	shield.Current = 0

	ApplyHit(e, target)

	assert.Equal(t, 0, shield.Current)
	assert.False(t, shield.Broken, "an already empty shield does not break again")
	assert.Equal(t, 90, components.Health.Get(target).Current)
}

func TestApplyHitClampsAtZero(t *testing.T) {
	e := newTestArena(t, cfg.GameModeDuo)
	target := mustPlayer(t, e, 1)
	components.Health.Get(target).Current = 5

	ApplyHit(e, target)
	ApplyHit(e, target)

	assert.Equal(t, 0, components.Health.Get(target).Current)
}

func TestTryShootRequiresLiveMatch(t *testing.T) {
	e := newTestArena(t, cfg.GameModeDuo)
	shooter := mustPlayer(t, e, 1)

	assert.False(t, TryShoot(e, shooter), "idle match")
	assert.Equal(t, 0, BulletCount(e))

	runToRunning(t, e, cfg.GameModeDuo)
	TogglePause(e)
	assert.False(t, TryShoot(e, shooter), "paused match")

	TogglePause(e)
	assert.True(t, TryShoot(e, shooter))
	assert.False(t, components.Player.Get(shooter).CanShoot)
	assert.False(t, TryShoot(e, shooter), "trigger is disarmed until released")
	assert.Equal(t, 1, BulletCount(e))
}
