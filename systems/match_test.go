package systems

import (
	"testing"
	"time"

	"github.com/automoto/arena-duel/components"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

func TestStartMatchNames(t *testing.T) {
	tests := []struct {
		name         string
		mode         cfg.GameModeID
		in1, in2     string
		want1, want2 string
	}{
		{"trimmed", cfg.GameModeDuo, "  Ana ", "\tBo\n", "Ana", "Bo"},
		{"empty falls back", cfg.GameModeDuo, "   ", "", "Player 1", "Player 2"},
		{"solo names the bot", cfg.GameModeSolo, "Ana", "Bo", "Ana", "Computer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestArena(t, tt.mode)
			StartMatch(e, tt.mode, tt.in1, tt.in2)

			match := GetOrCreateMatch(e)
			assert.Equal(t, tt.want1, match.Name(1))
			assert.Equal(t, tt.want2, match.Name(2))
			assert.Equal(t, cfg.PhaseCountdown, match.Phase)
			assert.Equal(t, tt.mode, match.Mode)
		})
	}
}

func TestStartMatchOnlyFromIdle(t *testing.T) {
	e := newTestArena(t, cfg.GameModeDuo)
	StartMatch(e, cfg.GameModeDuo, "Ana", "Bo")
	StartMatch(e, cfg.GameModeSolo, "X", "Y")

	match := GetOrCreateMatch(e)
	assert.Equal(t, "Ana", match.Name(1))
	assert.Equal(t, cfg.GameModeDuo, match.Mode)
}

func TestMatchPhaseTimeline(t *testing.T) {
	e := newTestArena(t, cfg.GameModeDuo)
	match := GetOrCreateMatch(e)

	StartMatch(e, cfg.GameModeDuo, "", "")
	assert.Equal(t, 3, match.CountdownValue)

	AdvanceTime(e, 999*time.Millisecond)
	assert.Equal(t, 3, match.CountdownValue)
	AdvanceTime(e, time.Millisecond)
	assert.Equal(t, 2, match.CountdownValue)
	AdvanceTime(e, time.Second)
	assert.Equal(t, 1, match.CountdownValue)
	assert.Equal(t, cfg.PhaseCountdown, match.Phase)
	AdvanceTime(e, time.Second)
	require.Equal(t, cfg.PhaseDrop, match.Phase)

	// 300 units at 5 per frame.
	frames := 0
	for match.Phase == cfg.PhaseDrop && frames < 1000 {
		UpdateDrop(e)
		frames++
	}
	assert.Equal(t, 60, frames)
	assert.Equal(t, cfg.PhaseReady, match.Phase)
	assert.Equal(t, 300.0, playerObj(t, e, 1).Y)
	assert.Equal(t, 300.0, playerObj(t, e, 2).Y)
	assert.False(t, match.Running)

	AdvanceTime(e, cfg.Match.ReadyHold-time.Millisecond)
	assert.False(t, match.Running)
	AdvanceTime(e, time.Millisecond)
	assert.True(t, match.Running)
	assert.Equal(t, cfg.PhaseRunning, match.Phase)
	assert.True(t, GetOrCreateAudio(e).MusicRequested)
}

func TestDropIsCappedPerPlayer(t *testing.T) {
	e := newTestArena(t, cfg.GameModeDuo)
	placePlayer(t, e, 2, 600, 150)

	StartMatch(e, cfg.GameModeDuo, "", "")
	AdvanceTime(e, 3*time.Second)

	for i := 0; i < 30; i++ {
		UpdateDrop(e)
	}
	assert.Equal(t, 150.0, playerObj(t, e, 1).Y)
	assert.Equal(t, 300.0, playerObj(t, e, 2).Y, "landed player stays on the line")
	assert.Equal(t, cfg.PhaseDrop, GetOrCreateMatch(e).Phase)

	for i := 0; i < 30; i++ {
		UpdateDrop(e)
	}
	assert.Equal(t, 300.0, playerObj(t, e, 1).Y)
	assert.Equal(t, cfg.PhaseReady, GetOrCreateMatch(e).Phase)
}

func TestCheckGameOverWinner(t *testing.T) {
	e := newTestArena(t, cfg.GameModeDuo)
	runToRunning(t, e, cfg.GameModeDuo)
	match := GetOrCreateMatch(e)
	SetPlayerName(e, 1, "Ana")

	components.Health.Get(mustPlayer(t, e, 2)).Current = 0
	assert.True(t, CheckGameOver(e))

	assert.Equal(t, cfg.PhaseGameOver, match.Phase)
	assert.False(t, match.Running)
	assert.Equal(t, [2]int{1, 0}, match.Scores)
	assert.Equal(t, "Ana wins!", match.ResultText())
	assert.Equal(t, "Player 1: 1", match.ScoreText(1))
	assert.Equal(t, "Player 2: 0", match.ScoreText(2))
}

func TestCheckGameOverDraw(t *testing.T) {
	e := newTestArena(t, cfg.GameModeDuo)
	runToRunning(t, e, cfg.GameModeDuo)
	match := GetOrCreateMatch(e)

	components.Health.Get(mustPlayer(t, e, 1)).Current = 0
	components.Health.Get(mustPlayer(t, e, 2)).Current = 0
	assert.True(t, CheckGameOver(e))

	assert.Equal(t, cfg.ResultDraw, match.Result)
	assert.Equal(t, "It's a draw!", match.ResultText())
	assert.Equal(t, [2]int{0, 0}, match.Scores)
}

func TestCheckGameOverNotYet(t *testing.T) {
	e := newTestArena(t, cfg.GameModeDuo)
	runToRunning(t, e, cfg.GameModeDuo)
	components.Health.Get(mustPlayer(t, e, 1)).Current = 10

	assert.False(t, CheckGameOver(e))
	assert.True(t, GetOrCreateMatch(e).Running)
}

func TestRematchKeepsNamesAndScores(t *testing.T) {
	e := newTestArena(t, cfg.GameModeDuo)
	StartMatch(e, cfg.GameModeDuo, "Ana", "Bo")
	finishRound(t, e, 1)
	factory.CreateBullet(e, 1, 300, 300, 10, 4, 10, 0)

	Rematch(e)

	match := GetOrCreateMatch(e)
	assert.Equal(t, cfg.PhaseCountdown, match.Phase)
	assert.Equal(t, "Ana", match.Name(1))
	assert.Equal(t, "Bo", match.Name(2))
	assert.Equal(t, [2]int{1, 0}, match.Scores)
	assert.Equal(t, cfg.ResultNone, match.Result)
	assertFreshPlayers(t, e)
}

func TestRestartClearsNamesKeepsScores(t *testing.T) {
	e := newTestArena(t, cfg.GameModeDuo)
	StartMatch(e, cfg.GameModeDuo, "Ana", "Bo")
	finishRound(t, e, 2)
	factory.CreateBullet(e, 1, 300, 300, 10, 4, 10, 0)

	Restart(e)

	match := GetOrCreateMatch(e)
	assert.Equal(t, cfg.PhaseIdle, match.Phase)
	assert.Equal(t, cfg.Match.DefaultNames, match.Names)
	assert.Equal(t, [2]int{0, 1}, match.Scores)
	assertFreshPlayers(t, e)
}

func TestResetInvalidatesScheduledTransitions(t *testing.T) {
	e := newTestArena(t, cfg.GameModeDuo)
	StartMatch(e, cfg.GameModeDuo, "", "")
	AdvanceTime(e, 1500*time.Millisecond)
	require.Equal(t, 2, GetOrCreateMatch(e).CountdownValue)

	Rematch(e)
	// The old chain would tick at 2.0s; the new one ticks at 2.5s.
	AdvanceTime(e, 600*time.Millisecond)
	assert.Equal(t, 3, GetOrCreateMatch(e).CountdownValue)

	AdvanceTime(e, 400*time.Millisecond)
	assert.Equal(t, 2, GetOrCreateMatch(e).CountdownValue)
}

func TestRestartDuringCountdownStaysIdle(t *testing.T) {
	e := newTestArena(t, cfg.GameModeDuo)
	StartMatch(e, cfg.GameModeDuo, "", "")
	AdvanceTime(e, 500*time.Millisecond)

	Restart(e)
	AdvanceTime(e, 10*time.Second)

	assert.Equal(t, cfg.PhaseIdle, GetOrCreateMatch(e).Phase)
}

func TestShieldResetSurvivesRestart(t *testing.T) {
	e := newTestArena(t, cfg.GameModeDuo)
	target := mustPlayer(t, e, 1)
	shield := components.Shield.Get(target)
	shield.Active = true
	shield.Current = 10
	ApplyHit(e, target)
	require.True(t, shield.Broken)

	Restart(e)
	assert.False(t, shield.Broken)

	// The pending reset is harmless on the fresh shield.
	AdvanceTime(e, time.Second)
	assert.False(t, shield.Broken)
	assert.Equal(t, 100, shield.Current)
}

func TestTogglePause(t *testing.T) {
	e := newTestArena(t, cfg.GameModeDuo)
	match := GetOrCreateMatch(e)

	TogglePause(e)
	assert.True(t, match.Paused)
	assert.False(t, match.Live())

	TogglePause(e)
	assert.False(t, match.Paused)
}

func TestSetPlayerName(t *testing.T) {
	e := newTestArena(t, cfg.GameModeDuo)

	SetPlayerName(e, 1, "  Zed  ")
	assert.Equal(t, "Zed", GetOrCreateMatch(e).Name(1))

	SetPlayerName(e, 1, "   ")
	assert.Equal(t, "Player 1", GetOrCreateMatch(e).Name(1))

	SetPlayerName(e, 3, "nobody")
	assert.Equal(t, cfg.Match.DefaultNames, GetOrCreateMatch(e).Names)
}

// finishRound plays to running and ends the match with winner's opponent
// out of health.
func finishRound(t *testing.T, e *ecs.ECS, winner int) {
	t.Helper()
	AdvanceTime(e, 3*time.Second)
	for i := 0; i < 1000 && GetOrCreateMatch(e).Phase == cfg.PhaseDrop; i++ {
		UpdateDrop(e)
	}
	AdvanceTime(e, cfg.Match.ReadyHold)
	require.True(t, GetOrCreateMatch(e).Live())

	loser := mustPlayer(t, e, otherSlot(winner))
	components.Health.Get(loser).Current = 0
	components.Shield.Get(loser).Current = 40
	components.Player.Get(loser).Facing = cfg.DirectionUp
	placePlayer(t, e, winner, 200, 200)
	require.True(t, CheckGameOver(e))
}

func assertFreshPlayers(t *testing.T, e *ecs.ECS) {
	t.Helper()
	assert.Equal(t, 0, BulletCount(e))
	for slot := 1; slot <= 2; slot++ {
		entry := mustPlayer(t, e, slot)
		obj := components.Object.Get(entry)
		player := components.Player.Get(entry)
		shield := components.Shield.Get(entry)

		assert.Equal(t, cfg.Player.SpawnX[slot-1], obj.X)
		assert.Equal(t, cfg.Player.SpawnY, obj.Y)
		assert.Equal(t, 100, components.Health.Get(entry).Current)
		assert.Equal(t, 100, shield.Current)
		assert.False(t, shield.Active)
		assert.False(t, shield.Broken)
		assert.True(t, player.CanShoot)
		assert.Equal(t, cfg.DefaultFacing(slot), player.Facing)
	}
}
