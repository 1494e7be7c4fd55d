package systems

import (
	"slices"

	"github.com/automoto/arena-duel/components"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable key buffers to avoid allocations
var (
	pressedKeys  []ebiten.Key
	releasedKeys []ebiten.Key
)

// UpdateInput polls the keyboard and feeds edges into HandleKeyDown and
// HandleKeyUp. Must run BEFORE UpdateArena in the system order.
func UpdateInput(e *ecs.ECS) {
	// Key edges belong to the name field while one is being edited.
	if GetOrCreateLobby(e).Focus != 0 {
		return
	}

	pressedKeys = inpututil.AppendJustPressedKeys(pressedKeys[:0])
	releasedKeys = inpututil.AppendJustReleasedKeys(releasedKeys[:0])

	for _, key := range releasedKeys {
		if id, ok := mapKey(key); ok {
			HandleKeyUp(e, id)
		}
	}
	for _, key := range pressedKeys {
		if id, ok := mapKey(key); ok {
			HandleKeyDown(e, id)
		}
	}
}

// mapKey translates a physical key. Swallowed and unbound keys map to
// nothing.
func mapKey(key ebiten.Key) (cfg.KeyID, bool) {
	if slices.Contains(cfg.Input.Swallowed, key) {
		return 0, false
	}
	id, ok := cfg.Input.Bindings[key]
	return id, ok
}

// HandleKeyDown records a held key, refreshes facing and handles the
// shoot and pause triggers.
func HandleKeyDown(e *ecs.ECS, key cfg.KeyID) {
	if key < 0 || key >= cfg.KeyCount {
		return
	}
	if key == cfg.Input.Pause {
		TogglePause(e)
		return
	}

	input := getOrCreateInput(e)
	input.Pressed[key] = true
	updateFacing(e)

	if slot, ok := shooterFor(e, key); ok {
		if entry, found := PlayerBySlot(e, slot); found {
			TryShoot(e, entry)
		}
	}
}

// HandleKeyUp releases a key. Releasing a shoot key re-arms its trigger.
func HandleKeyUp(e *ecs.ECS, key cfg.KeyID) {
	if key < 0 || key >= cfg.KeyCount || key == cfg.Input.Pause {
		return
	}

	input := getOrCreateInput(e)
	input.Pressed[key] = false
	updateFacing(e)

	if slot, ok := shooterFor(e, key); ok {
		if entry, found := PlayerBySlot(e, slot); found {
			components.Player.Get(entry).CanShoot = true
		}
	}
}

// shooterFor returns the human slot whose shoot key is key.
func shooterFor(e *ecs.ECS, key cfg.KeyID) (int, bool) {
	match := GetOrCreateMatch(e)
	for slot := 1; slot <= 2; slot++ {
		if cfg.Input.Players[slot-1].Shoot == key && isHumanSlot(match, slot) {
			return slot, true
		}
	}
	return 0, false
}

// updateFacing points each human player at the first held direction in
// up, down, left, right order. With nothing held the facing is kept.
func updateFacing(e *ecs.ECS) {
	input := getOrCreateInput(e)
	match := GetOrCreateMatch(e)

	for slot := 1; slot <= 2; slot++ {
		if !isHumanSlot(match, slot) {
			continue
		}
		entry, ok := PlayerBySlot(e, slot)
		if !ok {
			continue
		}
		if dir, held := heldDirection(input, cfg.Input.Players[slot-1]); held {
			components.Player.Get(entry).Facing = dir
		}
	}
}

func heldDirection(input *components.InputData, keys cfg.PlayerKeys) (cfg.Direction, bool) {
	switch {
	case input.Held(keys.Up):
		return cfg.DirectionUp, true
	case input.Held(keys.Down):
		return cfg.DirectionDown, true
	case input.Held(keys.Left):
		return cfg.DirectionLeft, true
	case input.Held(keys.Right):
		return cfg.DirectionRight, true
	}
	return 0, false
}
