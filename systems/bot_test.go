package systems

import (
	"testing"

	"github.com/automoto/arena-duel/components"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/stretchr/testify/assert"
)

func TestBotChasesPlayerOne(t *testing.T) {
	e := newTestArena(t, cfg.GameModeSolo)
	withConfig(t, &cfg.Bot.ShootChance, 0)
	placePlayer(t, e, 1, 100, 100)
	placePlayer(t, e, 2, 400, 300)

	UpdateBot(e)

	bot := playerObj(t, e, 2)
	assert.Equal(t, 397.0, bot.X)
	assert.Equal(t, 297.0, bot.Y)
}

func TestBotHoldsAxisWithZeroDelta(t *testing.T) {
	e := newTestArena(t, cfg.GameModeSolo)
	withConfig(t, &cfg.Bot.ShootChance, 0)
	placePlayer(t, e, 1, 100, 300)
	placePlayer(t, e, 2, 400, 300)

	UpdateBot(e)

	bot := playerObj(t, e, 2)
	assert.Equal(t, 397.0, bot.X)
	assert.Equal(t, 300.0, bot.Y)
}

func TestBotIdleInDuo(t *testing.T) {
	e := newTestArena(t, cfg.GameModeDuo)
	placePlayer(t, e, 2, 400, 300)

	UpdateBot(e)

	assert.Equal(t, 400.0, playerObj(t, e, 2).X)
}

func TestBotShootCooldown(t *testing.T) {
	e := newTestArena(t, cfg.GameModeSolo)
	runToRunning(t, e, cfg.GameModeSolo)
	withConfig(t, &cfg.Bot.ShootChance, 1)
	bot := components.Player.Get(mustPlayer(t, e, 2))

	UpdateBot(e)
	assert.Equal(t, 1, BulletCount(e))
	assert.False(t, bot.CanShoot)

	// Cooling down: more ticks, no more shots.
	for i := 0; i < 10; i++ {
		UpdateBot(e)
	}
	assert.Equal(t, 1, BulletCount(e))

	AdvanceTime(e, cfg.Bot.ShootCooldown)
	assert.True(t, bot.CanShoot)

	UpdateBot(e)
	assert.Equal(t, 2, BulletCount(e))
}

func TestBotNeverShootsWhenChanceIsZero(t *testing.T) {
	e := newTestArena(t, cfg.GameModeSolo)
	runToRunning(t, e, cfg.GameModeSolo)
	withConfig(t, &cfg.Bot.ShootChance, 0)

	for i := 0; i < 500; i++ {
		UpdateBot(e)
	}
	assert.Equal(t, 0, BulletCount(e))
}

func TestBotFiringRateIsRoughlyOnePercent(t *testing.T) {
	e := newTestArena(t, cfg.GameModeSolo)
	runToRunning(t, e, cfg.GameModeSolo)
	bot := components.Player.Get(mustPlayer(t, e, 2))

	// Re-arm every tick so only the dice decide.
	shots := 0
	const ticks = 20000
	for i := 0; i < ticks; i++ {
		bot.CanShoot = true
		UpdateBot(e)
		if !bot.CanShoot {
			shots++
		}
	}
	assert.InDelta(t, ticks*cfg.Bot.ShootChance, float64(shots), 80)
}
