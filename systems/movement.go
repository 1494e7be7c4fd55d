package systems

import (
	"github.com/automoto/arena-duel/components"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement applies held keys to the human-controlled players. The
// bot slot is driven by UpdateBot instead.
func UpdateMovement(e *ecs.ECS) {
	input := getOrCreateInput(e)
	match := GetOrCreateMatch(e)

	for slot := 1; slot <= 2; slot++ {
		entry, ok := PlayerBySlot(e, slot)
		if !ok {
			continue
		}
		if !isHumanSlot(match, slot) {
			components.Shield.Get(entry).Active = false
			continue
		}
		movePlayer(entry, input, cfg.Input.Players[slot-1])
	}
	updateFacing(e)
}

func movePlayer(entry *donburi.Entry, input *components.InputData, keys cfg.PlayerKeys) {
	obj := components.Object.Get(entry)
	step := cfg.Player.Speed

	if input.Held(keys.Up) {
		tryMove(obj.Object, 0, -step)
	}
	if input.Held(keys.Down) {
		tryMove(obj.Object, 0, step)
	}
	if input.Held(keys.Left) {
		tryMove(obj.Object, -step, 0)
	}
	if input.Held(keys.Right) {
		tryMove(obj.Object, step, 0)
	}

	components.Shield.Get(entry).Active = input.Held(keys.Shield)
}

// tryMove displaces obj unless the result would leave the canvas. Refused
// moves leave the object where it was.
func tryMove(obj *resolv.Object, dx, dy float64) bool {
	next := rectOf(obj).Translate(dx, dy)
	if !next.Within(float64(cfg.C.Width), float64(cfg.C.Height)) {
		return false
	}
	obj.X = next.X
	obj.Y = next.Y
	obj.Update()
	return true
}

func isHumanSlot(match *components.MatchData, slot int) bool {
	return slot == 1 || match.Mode == cfg.GameModeDuo
}
