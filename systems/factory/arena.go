package factory

import (
	"math/rand"

	"github.com/automoto/arena-duel/archetypes"
	"github.com/automoto/arena-duel/components"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/yohamta/donburi/ecs"
)

// ArenaOptions seeds a new arena world.
type ArenaOptions struct {
	Mode   cfg.GameModeID
	Seed   int64
	Volume int
}

// DefaultArenaOptions returns the options used when no flags override them.
func DefaultArenaOptions() ArenaOptions {
	return ArenaOptions{
		Mode:   cfg.GameModeDuo,
		Seed:   cfg.Bot.Seed,
		Volume: cfg.Audio.DefaultVolume,
	}
}

// CreateArena populates a fresh world with the singletons and both
// players. The match starts idle.
func CreateArena(e *ecs.ECS, opts ArenaOptions) {
	// Cell size matches the player box so a bullet query touches few cells.
	CreateSpace(e, cfg.C.Width, cfg.C.Height, int(cfg.Player.Width), int(cfg.Player.Height))

	match := archetypes.Match.Spawn(e)
	components.Match.SetValue(match, components.MatchData{
		Phase: cfg.PhaseIdle,
		Mode:  opts.Mode,
		Names: cfg.Match.DefaultNames,
	})

	lobby := archetypes.Lobby.Spawn(e)
	components.Lobby.SetValue(lobby, components.LobbyData{Mode: opts.Mode})

	archetypes.Input.Spawn(e)

	audio := archetypes.Audio.Spawn(e)
	components.Audio.Get(audio).SetVolume(opts.Volume)

	archetypes.Timers.Spawn(e)

	bot := archetypes.Bot.Spawn(e)
	components.Bot.SetValue(bot, components.BotData{
		Rand: rand.New(rand.NewSource(opts.Seed)),
	})

	CreatePlayer(e, 1)
	CreatePlayer(e, 2)
}
