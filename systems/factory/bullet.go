package factory

import (
	"github.com/automoto/arena-duel/archetypes"
	"github.com/automoto/arena-duel/components"
	"github.com/automoto/arena-duel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBullet spawns a projectile box owned by slot, moving by (speedX,
// speedY) each tick.
func CreateBullet(ecs *ecs.ECS, owner int, x, y, w, h, speedX, speedY float64) *donburi.Entry {
	bullet := archetypes.Bullet.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h)
	obj.AddTags(tags.ResolvBullet)
	obj.Data = bullet
	components.Object.SetValue(bullet, components.ObjectData{Object: obj})

	components.Bullet.SetValue(bullet, components.BulletData{
		Owner:  owner,
		SpeedX: speedX,
		SpeedY: speedY,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return bullet
}
