package factory

import (
	"github.com/automoto/arena-duel/archetypes"
	"github.com/automoto/arena-duel/components"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player for slot (1 or 2) at its spawn point.
func CreatePlayer(ecs *ecs.ECS, slot int) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	x := cfg.Player.SpawnX[slot-1]
	y := cfg.Player.SpawnY

	obj := resolv.NewObject(x, y, cfg.Player.Width, cfg.Player.Height)
	obj.AddTags(tags.ResolvPlayer, tags.ResolvSlot(slot))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		Slot:     slot,
		Facing:   cfg.DefaultFacing(slot),
		CanShoot: true,
		SpawnX:   x,
		SpawnY:   y,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.MaxHealth,
		Max:     cfg.Player.MaxHealth,
	})
	components.Shield.SetValue(player, components.ShieldData{
		Current: cfg.Player.MaxShield,
		Max:     cfg.Player.MaxShield,
	})
	components.Drop.SetValue(player, components.DropData{Landed: true})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}
