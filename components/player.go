package components

import (
	cfg "github.com/automoto/arena-duel/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Slot     int // 1 or 2
	Facing   cfg.Direction
	CanShoot bool
	SpawnX   float64
	SpawnY   float64
}

var Player = donburi.NewComponentType[PlayerData]()
