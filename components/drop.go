package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DropData drives a player's entry animation from the top edge to the
// arena floor line.
type DropData struct {
	Tween  *gween.Tween
	Landed bool
}

var Drop = donburi.NewComponentType[DropData]()
