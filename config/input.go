package config

import "github.com/hajimehoshi/ebiten/v2"

// KeyID identifies one of the keys the arena reacts to. Anything that does
// not map to a KeyID is ignored by the input mapper.
type KeyID int

const (
	KeyW KeyID = iota
	KeyA
	KeyS
	KeyD
	KeyArrowUp
	KeyArrowLeft
	KeyArrowDown
	KeyArrowRight
	KeySpace
	KeyQ
	KeyEnter
	KeyM
	KeyP
	KeyCount // Must be last - used for array sizing
)

var keyNames = [KeyCount]string{
	KeyW:          "w",
	KeyA:          "a",
	KeyS:          "s",
	KeyD:          "d",
	KeyArrowUp:    "ArrowUp",
	KeyArrowLeft:  "ArrowLeft",
	KeyArrowDown:  "ArrowDown",
	KeyArrowRight: "ArrowRight",
	KeySpace:      "space",
	KeyQ:          "q",
	KeyEnter:      "Enter",
	KeyM:          "m",
	KeyP:          "p",
}

func (k KeyID) String() string {
	if k < 0 || k >= KeyCount {
		return "unknown"
	}
	return keyNames[k]
}

// PlayerKeys lists the keys one player controls. Directions are in facing
// priority order: up, down, left, right.
type PlayerKeys struct {
	Up, Down, Left, Right KeyID
	Shoot                 KeyID
	Shield                KeyID
}

// InputConfig holds all input mappings
type InputConfig struct {
	// Bindings maps physical keys to arena keys.
	Bindings map[ebiten.Key]KeyID
	// Swallowed keys are dropped before mapping.
	Swallowed []ebiten.Key
	// Players is indexed by slot-1.
	Players [2]PlayerKeys
	Pause   KeyID
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ebiten.Key]KeyID{
			ebiten.KeyW:          KeyW,
			ebiten.KeyA:          KeyA,
			ebiten.KeyS:          KeyS,
			ebiten.KeyD:          KeyD,
			ebiten.KeyArrowUp:    KeyArrowUp,
			ebiten.KeyArrowLeft:  KeyArrowLeft,
			ebiten.KeyArrowDown:  KeyArrowDown,
			ebiten.KeyArrowRight: KeyArrowRight,
			ebiten.KeySpace:      KeySpace,
			ebiten.KeyQ:          KeyQ,
			ebiten.KeyEnter:      KeyEnter,
			ebiten.KeyM:          KeyM,
			ebiten.KeyP:          KeyP,
		},
		Swallowed: []ebiten.Key{ebiten.KeyCapsLock},
		Players: [2]PlayerKeys{
			{Up: KeyW, Down: KeyS, Left: KeyA, Right: KeyD, Shoot: KeySpace, Shield: KeyQ},
			{Up: KeyArrowUp, Down: KeyArrowDown, Left: KeyArrowLeft, Right: KeyArrowRight, Shoot: KeyEnter, Shield: KeyM},
		},
		Pause: KeyP,
	}
}
