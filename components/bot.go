package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// BotData holds the solo-mode opponent's random source. One per world so
// a fixed seed replays the same decisions.
type BotData struct {
	Rand *rand.Rand
}

var Bot = donburi.NewComponentType[BotData]()
