package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Damage lowers Current by amount, never below zero.
func (h *HealthData) Damage(amount int) {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
}

func (h *HealthData) Dead() bool {
	return h.Current <= 0
}

// ShieldData is the absorbing layer in front of health. Active follows the
// shield key; Broken is a transient flag set when the shield hits zero.
type ShieldData struct {
	Current int
	Max     int
	Active  bool
	Broken  bool
}

// Absorbs reports whether the next hit lands on the shield.
func (s *ShieldData) Absorbs() bool {
	return s.Active && s.Current > 0
}

var Health = donburi.NewComponentType[HealthData]()
var Shield = donburi.NewComponentType[ShieldData]()
