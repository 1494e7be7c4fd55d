package systems

import (
	"testing"
	"time"

	"github.com/automoto/arena-duel/components"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestArena builds a fresh idle arena with a fixed seed.
func newTestArena(t *testing.T, mode cfg.GameModeID) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateArena(e, factory.ArenaOptions{
		Mode:   mode,
		Seed:   12345,
		Volume: 50,
	})
	return e
}

// runToRunning drives a new arena through countdown, drop and the ready
// hold so the simulation tick is live.
func runToRunning(t *testing.T, e *ecs.ECS, mode cfg.GameModeID) {
	t.Helper()
	StartMatch(e, mode, "", "")
	AdvanceTime(e, time.Duration(cfg.Match.CountdownFrom)*cfg.Match.CountdownStep)
	require.Equal(t, cfg.PhaseDrop, GetOrCreateMatch(e).Phase)

	for i := 0; i < 1000 && GetOrCreateMatch(e).Phase == cfg.PhaseDrop; i++ {
		UpdateDrop(e)
	}
	require.Equal(t, cfg.PhaseReady, GetOrCreateMatch(e).Phase)

	AdvanceTime(e, cfg.Match.ReadyHold)
	require.True(t, GetOrCreateMatch(e).Live())
}

func mustPlayer(t *testing.T, e *ecs.ECS, slot int) *donburi.Entry {
	t.Helper()
	entry, ok := PlayerBySlot(e, slot)
	require.True(t, ok, "player %d missing", slot)
	return entry
}

func playerObj(t *testing.T, e *ecs.ECS, slot int) *components.ObjectData {
	t.Helper()
	return components.Object.Get(mustPlayer(t, e, slot))
}

// placePlayer moves a player's box and refreshes its cell placement.
func placePlayer(t *testing.T, e *ecs.ECS, slot int, x, y float64) {
	t.Helper()
	obj := playerObj(t, e, slot)
	obj.X, obj.Y = x, y
	obj.Update()
}

func bullets(e *ecs.ECS) []*components.ObjectData {
	var out []*components.ObjectData
	components.Bullet.Each(e.World, func(entry *donburi.Entry) {
		out = append(out, components.Object.Get(entry))
	})
	return out
}

func mustBullet(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := components.Bullet.First(e.World)
	require.True(t, ok, "no bullet")
	return entry
}

func pendingSounds(e *ecs.ECS) []cfg.SoundID {
	return GetOrCreateAudio(e).PendingSFX
}

// withConfig swaps a config value for the duration of a test.
func withConfig[T any](t *testing.T, target *T, value T) {
	t.Helper()
	old := *target
	*target = value
	t.Cleanup(func() { *target = old })
}
