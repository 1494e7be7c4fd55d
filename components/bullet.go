package components

import "github.com/yohamta/donburi"

type BulletData struct {
	Owner  int // slot of the shooter
	SpeedX float64
	SpeedY float64
}

var Bullet = donburi.NewComponentType[BulletData]()
