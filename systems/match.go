package systems

import (
	"log"
	"strings"
	"time"

	"github.com/automoto/arena-duel/components"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartMatch leaves the start panel and begins the countdown. Names are
// trimmed and fall back to the defaults; solo mode always names player 2
// after the bot.
func StartMatch(e *ecs.ECS, mode cfg.GameModeID, name1, name2 string) {
	match := GetOrCreateMatch(e)
	if match.Phase != cfg.PhaseIdle {
		return
	}

	match.Mode = mode
	match.Names[0] = cleanName(1, name1)
	match.Names[1] = cleanName(2, name2)
	if mode == cfg.GameModeSolo {
		match.Names[1] = cfg.Match.ComputerName
	}

	log.Printf("Match starting: %s vs %s (%s)", match.Names[0], match.Names[1], mode)
	beginCountdown(e)
}

// Rematch resets the arena and runs the countdown again with the same
// names, mode and scores.
func Rematch(e *ecs.ECS) {
	ResetArena(e)
	beginCountdown(e)
}

// Restart resets the arena, restores the default names and returns to the
// start panel. Scores are kept.
func Restart(e *ecs.ECS) {
	ResetArena(e)
	match := GetOrCreateMatch(e)
	match.Names = cfg.Match.DefaultNames
	match.Phase = cfg.PhaseIdle
}

// TogglePause flips the paused flag whatever the phase.
func TogglePause(e *ecs.ECS) {
	match := GetOrCreateMatch(e)
	match.Paused = !match.Paused
}

// SetPlayerName applies a live edit from a name field.
func SetPlayerName(e *ecs.ECS, slot int, raw string) {
	if slot < 1 || slot > 2 {
		return
	}
	match := GetOrCreateMatch(e)
	if slot == 2 && match.Mode == cfg.GameModeSolo && match.Phase != cfg.PhaseIdle {
		return
	}
	match.Names[slot-1] = cleanName(slot, raw)
}

func cleanName(slot int, raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return cfg.Match.DefaultNames[slot-1]
	}
	return name
}

// ResetArena puts both players back on their spawn points with full stats
// and clears every bullet. Anything already scheduled for the previous
// round is invalidated.
func ResetArena(e *ecs.ECS) {
	match := GetOrCreateMatch(e)
	match.Epoch++
	match.Running = false
	match.Paused = false
	match.Result = cfg.ResultNone
	match.CountdownValue = 0

	ClearBullets(e)
	getOrCreateInput(e).Clear()

	for slot := 1; slot <= 2; slot++ {
		if entry, ok := PlayerBySlot(e, slot); ok {
			resetPlayer(entry)
		}
	}
}

func resetPlayer(entry *donburi.Entry) {
	player := components.Player.Get(entry)
	player.Facing = cfg.DefaultFacing(player.Slot)
	player.CanShoot = true

	obj := components.Object.Get(entry)
	obj.X = player.SpawnX
	obj.Y = player.SpawnY
	obj.Update()

	health := components.Health.Get(entry)
	health.Current = health.Max

	shield := components.Shield.Get(entry)
	shield.Current = shield.Max
	shield.Active = false
	shield.Broken = false

	components.Drop.SetValue(entry, components.DropData{Landed: true})
}

// scheduleStep runs fire after delay unless the arena was reset meanwhile.
func scheduleStep(e *ecs.ECS, delay time.Duration, fire func(*ecs.ECS)) {
	epoch := GetOrCreateMatch(e).Epoch
	Schedule(e, delay, func(e *ecs.ECS) {
		if GetOrCreateMatch(e).Epoch != epoch {
			return
		}
		fire(e)
	})
}

func beginCountdown(e *ecs.ECS) {
	match := GetOrCreateMatch(e)
	match.Phase = cfg.PhaseCountdown
	match.Result = cfg.ResultNone
	match.CountdownValue = cfg.Match.CountdownFrom
	scheduleStep(e, cfg.Match.CountdownStep, countdownTick)
}

func countdownTick(e *ecs.ECS) {
	match := GetOrCreateMatch(e)
	match.CountdownValue--
	if match.CountdownValue > 0 {
		scheduleStep(e, cfg.Match.CountdownStep, countdownTick)
		return
	}
	beginDrop(e)
}

func beginDrop(e *ecs.ECS) {
	match := GetOrCreateMatch(e)
	match.Phase = cfg.PhaseDrop

	for slot := 1; slot <= 2; slot++ {
		entry, ok := PlayerBySlot(e, slot)
		if !ok {
			continue
		}
		obj := components.Object.Get(entry)
		target := cfg.Match.DropTargetY
		if obj.Y >= target {
			components.Drop.SetValue(entry, components.DropData{Landed: true})
			continue
		}
		// One tween step per frame, so the duration is in frames.
		frames := float32((target - obj.Y) / cfg.Match.DropSpeed)
		components.Drop.SetValue(entry, components.DropData{
			Tween: gween.New(float32(obj.Y), float32(target), frames, ease.Linear),
		})
	}
}

// UpdateDrop advances the entry animation one frame and hands over to
// the ready banner once both players have landed.
func UpdateDrop(e *ecs.ECS) {
	match := GetOrCreateMatch(e)
	if match.Phase != cfg.PhaseDrop {
		return
	}

	landed := 0
	total := 0
	components.Drop.Each(e.World, func(entry *donburi.Entry) {
		total++
		drop := components.Drop.Get(entry)
		if !drop.Landed && drop.Tween != nil {
			y, finished := drop.Tween.Update(1)
			obj := components.Object.Get(entry)
			obj.Y = float64(y)
			if finished {
				obj.Y = cfg.Match.DropTargetY
				drop.Landed = true
			}
			obj.Update()
		}
		if drop.Landed {
			landed++
		}
	})

	if landed == total {
		beginReady(e)
	}
}

func beginReady(e *ecs.ECS) {
	match := GetOrCreateMatch(e)
	match.Phase = cfg.PhaseReady
	scheduleStep(e, cfg.Match.ReadyHold, beginRunning)
}

func beginRunning(e *ecs.ECS) {
	match := GetOrCreateMatch(e)
	match.Phase = cfg.PhaseRunning
	match.Running = true
	GetOrCreateAudio(e).MusicRequested = true
}

// CheckGameOver ends the match once either player is out of health.
func CheckGameOver(e *ecs.ECS) bool {
	p1, ok1 := PlayerBySlot(e, 1)
	p2, ok2 := PlayerBySlot(e, 2)
	if !ok1 || !ok2 {
		return false
	}

	dead1 := components.Health.Get(p1).Dead()
	dead2 := components.Health.Get(p2).Dead()
	if !dead1 && !dead2 {
		return false
	}

	match := GetOrCreateMatch(e)
	switch {
	case dead1 && dead2:
		match.Result = cfg.ResultDraw
	case dead1:
		match.Result = cfg.ResultPlayer2
		match.Scores[1]++
	default:
		match.Result = cfg.ResultPlayer1
		match.Scores[0]++
	}
	match.Running = false
	match.Phase = cfg.PhaseGameOver

	log.Printf("Match over: %s (%s, %s)", match.ResultText(), match.ScoreText(1), match.ScoreText(2))
	return true
}

// IsMatchPlaying returns true while the simulation tick runs
func IsMatchPlaying(e *ecs.ECS) bool {
	match := GetOrCreateMatch(e)
	return match.Phase == cfg.PhaseRunning && match.Live()
}
