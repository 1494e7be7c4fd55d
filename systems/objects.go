package systems

import (
	"github.com/automoto/arena-duel/archetypes"
	"github.com/automoto/arena-duel/components"
	"github.com/automoto/arena-duel/gamemath"
	"github.com/automoto/arena-duel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects refreshes every object's cell placement in the space.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}

// rectOf returns the bounding box of a resolv object.
func rectOf(obj *resolv.Object) gamemath.Rect {
	return gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

// PlayerBySlot returns the player entry for slot 1 or 2.
func PlayerBySlot(ecs *ecs.ECS, slot int) (*donburi.Entry, bool) {
	var found *donburi.Entry
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if found == nil && components.Player.Get(e).Slot == slot {
			found = e
		}
	})
	return found, found != nil
}

// GetOrCreateMatch returns the singleton match state.
func GetOrCreateMatch(ecs *ecs.ECS) *components.MatchData {
	entry, ok := components.Match.First(ecs.World)
	if !ok {
		entry = archetypes.Match.Spawn(ecs)
	}
	return components.Match.Get(entry)
}

// getOrCreateInput returns the singleton held-key state.
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = archetypes.Input.Spawn(ecs)
	}
	return components.Input.Get(entry)
}

// GetOrCreateAudio returns the singleton audio queue.
func GetOrCreateAudio(ecs *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(ecs.World)
	if !ok {
		entry = archetypes.Audio.Spawn(ecs)
	}
	return components.Audio.Get(entry)
}

func getOrCreateTimers(ecs *ecs.ECS) *components.TimersData {
	entry, ok := components.Timers.First(ecs.World)
	if !ok {
		entry = archetypes.Timers.Spawn(ecs)
	}
	return components.Timers.Get(entry)
}

func getSpace(ecs *ecs.ECS) *resolv.Space {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		return components.Space.Get(spaceEntry)
	}
	return nil
}

