package systems

import (
	"math/rand"

	"github.com/automoto/arena-duel/components"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// fallback source when a world has no Bot component
var rng = rand.New(rand.NewSource(cfg.Bot.Seed))

// UpdateBot drives player 2 in solo mode: chase player 1's center on each
// axis and occasionally pull the trigger.
func UpdateBot(e *ecs.ECS) {
	match := GetOrCreateMatch(e)
	if match.Mode != cfg.GameModeSolo {
		return
	}

	botEntry, ok := PlayerBySlot(e, 2)
	if !ok {
		return
	}
	targetEntry, ok := PlayerBySlot(e, 1)
	if !ok {
		return
	}

	obj := components.Object.Get(botEntry)
	tx, ty := rectOf(components.Object.Get(targetEntry).Object).Center()
	bx, by := rectOf(obj.Object).Center()

	step := cfg.Player.Speed * cfg.Bot.SpeedFactor
	// Axes move independently, no diagonal normalization.
	if dx := gamemath.Sign(tx - bx); dx != 0 {
		tryMove(obj.Object, dx*step, 0)
	}
	if dy := gamemath.Sign(ty - by); dy != 0 {
		tryMove(obj.Object, 0, dy*step)
	}

	if botRand(e).Float64() < cfg.Bot.ShootChance {
		botShoot(e)
	}
}

func botShoot(e *ecs.ECS) {
	botEntry, ok := PlayerBySlot(e, 2)
	if !ok {
		return
	}
	if !TryShoot(e, botEntry) {
		return
	}
	// Cooldown runs on real time, not ticks.
	Schedule(e, cfg.Bot.ShootCooldown, func(e *ecs.ECS) {
		if botEntry.Valid() {
			components.Player.Get(botEntry).CanShoot = true
		}
	})
}

func botRand(e *ecs.ECS) *rand.Rand {
	if entry, ok := components.Bot.First(e.World); ok {
		if bot := components.Bot.Get(entry); bot.Rand != nil {
			return bot.Rand
		}
	}
	return rng
}
