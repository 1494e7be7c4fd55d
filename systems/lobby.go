package systems

import (
	"unicode"

	"github.com/automoto/arena-duel/archetypes"
	"github.com/automoto/arena-duel/components"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable buffer for typed characters
var typedChars []rune

// UpdateNameEntry feeds typed characters into the focused name field.
// Enter, Tab and Escape end editing.
func UpdateNameEntry(e *ecs.ECS) {
	if GetOrCreateMatch(e).Phase != cfg.PhaseIdle {
		return
	}
	lobby := GetOrCreateLobby(e)
	if lobby.Focus == 0 {
		return
	}

	typedChars = ebiten.AppendInputChars(typedChars[:0])
	if len(typedChars) > 0 {
		TypeName(e, typedChars)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		EraseName(e)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeyTab) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		lobby.Focus = 0
	}
}

// GetOrCreateLobby returns the singleton start panel state
func GetOrCreateLobby(e *ecs.ECS) *components.LobbyData {
	entry, ok := components.Lobby.First(e.World)
	if !ok {
		entry = archetypes.Lobby.Spawn(e)
		components.Lobby.SetValue(entry, components.LobbyData{
			Mode: GetOrCreateMatch(e).Mode,
		})
	}
	return components.Lobby.Get(entry)
}

// FocusNameField directs typed characters to slot's field. Slot 2 cannot
// be edited in solo mode.
func FocusNameField(e *ecs.ECS, slot int) {
	lobby := GetOrCreateLobby(e)
	if slot == 2 && lobby.Mode == cfg.GameModeSolo {
		slot = 0
	}
	if slot < 0 || slot > 2 {
		slot = 0
	}
	lobby.Focus = slot
}

// TypeName appends printable characters to the focused field and pushes
// the result to the match as a live edit.
func TypeName(e *ecs.ECS, chars []rune) {
	lobby := GetOrCreateLobby(e)
	if lobby.Focus == 0 {
		return
	}
	field := []rune(lobby.Fields[lobby.Focus-1])
	for _, r := range chars {
		if !unicode.IsPrint(r) || len(field) >= components.MaxNameLength {
			continue
		}
		field = append(field, r)
	}
	lobby.Fields[lobby.Focus-1] = string(field)
	SetPlayerName(e, lobby.Focus, lobby.Fields[lobby.Focus-1])
}

// EraseName removes the last character of the focused field.
func EraseName(e *ecs.ECS) {
	lobby := GetOrCreateLobby(e)
	if lobby.Focus == 0 {
		return
	}
	field := []rune(lobby.Fields[lobby.Focus-1])
	if len(field) == 0 {
		return
	}
	lobby.Fields[lobby.Focus-1] = string(field[:len(field)-1])
	SetPlayerName(e, lobby.Focus, lobby.Fields[lobby.Focus-1])
}

// CycleGameMode switches between duo and solo.
func CycleGameMode(e *ecs.ECS) {
	lobby := GetOrCreateLobby(e)
	if lobby.Mode == cfg.GameModeDuo {
		lobby.Mode = cfg.GameModeSolo
		if lobby.Focus == 2 {
			lobby.Focus = 0
		}
	} else {
		lobby.Mode = cfg.GameModeDuo
	}
}

// StepVolume nudges the shared volume by steps of the configured size.
func StepVolume(e *ecs.ECS, steps int) {
	SetVolume(e, GetVolume(e)+steps*cfg.Audio.VolumeStep)
}

// StartFromLobby starts the match with the panel's fields and mode.
func StartFromLobby(e *ecs.ECS) {
	lobby := GetOrCreateLobby(e)
	lobby.Focus = 0
	StartMatch(e, lobby.Mode, lobby.Fields[0], lobby.Fields[1])
}

// ResetLobby empties the name fields, as when returning to the main menu.
func ResetLobby(e *ecs.ECS) {
	lobby := GetOrCreateLobby(e)
	lobby.Fields = [2]string{}
	lobby.Focus = 0
}

// GetGameModeName returns the label shown on the mode toggle.
func GetGameModeName(mode cfg.GameModeID) string {
	if mode == cfg.GameModeSolo {
		return "Solo vs Computer"
	}
	return "Two Players"
}
