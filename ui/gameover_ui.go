package ui

import (
	"fmt"
	"image/color"

	"github.com/automoto/arena-duel/components"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// GameOverUI shows the result and the two ways out of a finished match.
type GameOverUI struct {
	UI    *ebitenui.UI
	Match *components.MatchData

	OnPlayAgain func()
	OnMainMenu  func()

	resultLabel *widget.Label
	scoreLabels [2]*widget.Label

	faces faces
}

func NewGameOverUI(match *components.MatchData, onPlayAgain, onMainMenu func()) (*GameOverUI, error) {
	f, err := loadFaces()
	if err != nil {
		return nil, fmt.Errorf("load ui fonts: %w", err)
	}
	gui := &GameOverUI{
		Match:       match,
		OnPlayAgain: onPlayAgain,
		OnMainMenu:  onMainMenu,
		faces:       f,
	}
	gui.buildUI()
	return gui, nil
}

func (gui *GameOverUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 180})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := centeredColumn(12)
	content.AddChild(newLabel("Game Over", &gui.faces.title, labelWhite))

	gui.resultLabel = newLabel("", &gui.faces.normal, &widget.LabelColor{
		Idle: color.RGBA{255, 255, 100, 255},
	})
	content.AddChild(gui.resultLabel)

	for i := range gui.scoreLabels {
		gui.scoreLabels[i] = newLabel("", &gui.faces.normal, labelWhite)
		content.AddChild(gui.scoreLabels[i])
	}

	buttons := row(10)
	buttons.AddChild(newButton("Play Again", &gui.faces.normal, startButtonImage(), 150, 36, func() {
		if gui.OnPlayAgain != nil {
			gui.OnPlayAgain()
		}
	}))
	buttons.AddChild(newButton("Main Menu", &gui.faces.normal, buttonImage(), 150, 36, func() {
		if gui.OnMainMenu != nil {
			gui.OnMainMenu()
		}
	}))
	content.AddChild(buttons)

	rootContainer.AddChild(content)

	gui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// UpdateUI copies the result and score strings into the labels
func (gui *GameOverUI) UpdateUI() {
	gui.resultLabel.Label = gui.Match.ResultText()
	for i, l := range gui.scoreLabels {
		l.Label = gui.Match.ScoreText(i + 1)
	}
}

// Update calls the UI's Update method
func (gui *GameOverUI) Update() {
	gui.UpdateUI()
	gui.UI.Update()
}
