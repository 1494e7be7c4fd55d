package components

import (
	cfg "github.com/automoto/arena-duel/config"
	"github.com/yohamta/donburi"
)

// MaxNameLength caps typed player names.
const MaxNameLength = 16

// LobbyData stores the start panel state: raw name field contents, the
// selected mode and which field receives typed characters.
type LobbyData struct {
	Fields [2]string // raw text, indexed by slot-1
	Mode   cfg.GameModeID
	Focus  int // slot whose field is being edited, 0 = none
}

var Lobby = donburi.NewComponentType[LobbyData]()
