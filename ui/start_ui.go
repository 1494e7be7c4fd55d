package ui

import (
	"fmt"
	"image/color"

	"github.com/automoto/arena-duel/components"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// StartActions are the core operations the start panel triggers.
type StartActions struct {
	FocusName        func(slot int)
	CycleMode        func()
	StepVolume       func(steps int)
	ToggleFullscreen func()
	Start            func()
}

// StartUI holds the ebitenui interface for the start panel
type StartUI struct {
	UI      *ebitenui.UI
	Lobby   *components.LobbyData
	Volume  func() int
	actions StartActions

	nameButtons [2]*widget.Button
	modeButton  *widget.Button
	volumeLabel *widget.Label
	scoreLabel  *widget.Label
	scores      func() string

	faces faces
}

// NewStartUI creates the start panel. volume and scores are read every
// frame so the panel mirrors the core state.
func NewStartUI(lobby *components.LobbyData, volume func() int, scores func() string, actions StartActions) (*StartUI, error) {
	f, err := loadFaces()
	if err != nil {
		return nil, fmt.Errorf("load ui fonts: %w", err)
	}
	sui := &StartUI{
		Lobby:   lobby,
		Volume:  volume,
		scores:  scores,
		actions: actions,
		faces:   f,
	}
	sui.buildUI()
	return sui, nil
}

func (sui *StartUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := centeredColumn(10)
	content.AddChild(newLabel(cfg.C.Title, &sui.faces.title, labelWhite))

	for i := 0; i < 2; i++ {
		slot := i + 1
		nameRow := row(8)
		nameRow.AddChild(newLabel(fmt.Sprintf("P%d name:", slot), &sui.faces.normal, &widget.LabelColor{
			Idle: cfg.Player.Colors[i],
		}))
		sui.nameButtons[i] = newButton("", &sui.faces.normal, buttonImage(), 260, 30, func() {
			sui.actions.FocusName(slot)
			sui.UpdateUI()
		})
		nameRow.AddChild(sui.nameButtons[i])
		content.AddChild(nameRow)
	}

	sui.modeButton = newButton("", &sui.faces.normal, buttonImage(), 340, 30, func() {
		sui.actions.CycleMode()
		sui.UpdateUI()
	})
	content.AddChild(sui.modeButton)

	volumeRow := row(8)
	volumeRow.AddChild(newButton("-", &sui.faces.normal, buttonImage(), 40, 30, func() {
		sui.actions.StepVolume(-1)
		sui.UpdateUI()
	}))
	sui.volumeLabel = newLabel("", &sui.faces.normal, labelWhite)
	volumeRow.AddChild(sui.volumeLabel)
	volumeRow.AddChild(newButton("+", &sui.faces.normal, buttonImage(), 40, 30, func() {
		sui.actions.StepVolume(1)
		sui.UpdateUI()
	}))
	content.AddChild(volumeRow)

	content.AddChild(newButton("Toggle Fullscreen", &sui.faces.normal, buttonImage(), 340, 30, func() {
		sui.actions.ToggleFullscreen()
	}))

	content.AddChild(newButton("START", &sui.faces.normal, startButtonImage(), 340, 36, func() {
		sui.actions.Start()
	}))

	sui.scoreLabel = newLabel("", &sui.faces.small, labelWhite)
	content.AddChild(sui.scoreLabel)

	content.AddChild(newLabel("Click a name field and type. P pauses during a match.", &sui.faces.small, labelWhite))

	rootContainer.AddChild(content)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// UpdateUI refreshes every widget from the lobby state
func (sui *StartUI) UpdateUI() {
	for i, b := range sui.nameButtons {
		if b == nil {
			continue
		}
		slot := i + 1
		label := sui.Lobby.Fields[i]
		if label == "" {
			label = cfg.Match.DefaultNames[i]
		}
		disabled := slot == 2 && sui.Lobby.Mode == cfg.GameModeSolo
		if disabled {
			label = cfg.Match.ComputerName
		}
		if sui.Lobby.Focus == slot {
			label = sui.Lobby.Fields[i] + "_"
		}
		if t := b.Text(); t != nil {
			t.Label = label
		}
		b.GetWidget().Disabled = disabled
	}

	if sui.modeButton != nil {
		if t := sui.modeButton.Text(); t != nil {
			t.Label = "Mode: " + systems.GetGameModeName(sui.Lobby.Mode)
		}
	}
	if sui.volumeLabel != nil {
		sui.volumeLabel.Label = fmt.Sprintf("Volume: %3d", sui.Volume())
	}
	if sui.scoreLabel != nil {
		sui.scoreLabel.Label = sui.scores()
	}
}

// Update calls the UI's Update method
func (sui *StartUI) Update() {
	sui.UI.Update()
	sui.UpdateUI()
}
