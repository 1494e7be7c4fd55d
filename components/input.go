package components

import (
	cfg "github.com/automoto/arena-duel/config"
	"github.com/yohamta/donburi"
)

// InputData stores which arena keys are currently held.
// Keys outside cfg.KeyID never reach it.
type InputData struct {
	Pressed [cfg.KeyCount]bool
}

func (in *InputData) Held(k cfg.KeyID) bool {
	if k < 0 || k >= cfg.KeyCount {
		return false
	}
	return in.Pressed[k]
}

func (in *InputData) Clear() {
	in.Pressed = [cfg.KeyCount]bool{}
}

var Input = donburi.NewComponentType[InputData]()
