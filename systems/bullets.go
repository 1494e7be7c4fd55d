package systems

import (
	"github.com/automoto/arena-duel/components"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBullets advances every bullet, culls the ones that left the
// canvas and resolves hits on the non-owning player. Removals are applied
// after the pass so iteration never skips a bullet.
func UpdateBullets(e *ecs.ECS) {
	var toRemove []*donburi.Entry

	width := float64(cfg.C.Width)
	height := float64(cfg.C.Height)

	components.Bullet.Each(e.World, func(entry *donburi.Entry) {
		bullet := components.Bullet.Get(entry)
		obj := components.Object.Get(entry)

		obj.X += bullet.SpeedX
		obj.Y += bullet.SpeedY
		obj.Update()

		// Out of bounds bullets never hit anything.
		if obj.X < 0 || obj.X > width || obj.Y < 0 || obj.Y > height {
			toRemove = append(toRemove, entry)
			return
		}

		if target, hit := bulletTarget(entry, bullet, obj); hit {
			ApplyHit(e, target)
			toRemove = append(toRemove, entry)
		}
	})

	for _, entry := range toRemove {
		destroyBullet(e, entry)
	}
}

// bulletTarget finds the opposing player the bullet overlaps. The space
// query is a broadphase; the strict rectangle test decides.
func bulletTarget(entry *donburi.Entry, bullet *components.BulletData, obj *components.ObjectData) (*donburi.Entry, bool) {
	opponent := tags.ResolvSlot(otherSlot(bullet.Owner))

	check := obj.Check(0, 0, opponent)
	if check == nil {
		return nil, false
	}

	box := rectOf(obj.Object)
	for _, playerObj := range check.ObjectsByTags(opponent) {
		playerEntry, ok := playerObj.Data.(*donburi.Entry)
		if !ok || playerEntry == nil || !playerEntry.Valid() {
			continue
		}
		if box.Overlaps(rectOf(playerObj)) {
			return playerEntry, true
		}
	}
	return nil, false
}

func destroyBullet(e *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if space := getSpace(e); space != nil {
		obj := components.Object.Get(entry)
		if obj != nil && obj.Object != nil {
			space.Remove(obj.Object)
		}
	}
	e.World.Remove(entry.Entity())
}

// ClearBullets removes every active bullet.
func ClearBullets(e *ecs.ECS) {
	var all []*donburi.Entry
	components.Bullet.Each(e.World, func(entry *donburi.Entry) {
		all = append(all, entry)
	})
	for _, entry := range all {
		destroyBullet(e, entry)
	}
}

// BulletCount returns the number of active bullets.
func BulletCount(e *ecs.ECS) int {
	n := 0
	components.Bullet.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func otherSlot(slot int) int {
	if slot == 1 {
		return 2
	}
	return 1
}
