package components

import (
	"fmt"

	cfg "github.com/automoto/arena-duel/config"
	"github.com/yohamta/donburi"
)

// MatchData stores the current match state and scores.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	Phase   cfg.MatchPhase
	Mode    cfg.GameModeID
	Running bool
	Paused  bool

	// Scores persist for the whole session, indexed by slot-1.
	Scores [2]int
	Names  [2]string
	Result cfg.MatchResult

	CountdownValue int
	// Epoch increments on every arena reset. Scheduled phase transitions
	// capture it and do nothing once it has moved on.
	Epoch int
}

var Match = donburi.NewComponentType[MatchData]()

// Live reports whether the simulation tick should run.
func (m *MatchData) Live() bool {
	return m.Running && !m.Paused
}

// Name returns the display name for slot 1 or 2.
func (m *MatchData) Name(slot int) string {
	if slot < 1 || slot > 2 {
		return ""
	}
	return m.Names[slot-1]
}

// ScoreText renders the score line shown on the game-over panel.
func (m *MatchData) ScoreText(slot int) string {
	if slot < 1 || slot > 2 {
		return ""
	}
	return fmt.Sprintf("Player %d: %d", slot, m.Scores[slot-1])
}

// ResultText renders the winner or draw line.
func (m *MatchData) ResultText() string {
	switch m.Result {
	case cfg.ResultDraw:
		return "It's a draw!"
	case cfg.ResultPlayer1:
		return m.Names[0] + " wins!"
	case cfg.ResultPlayer2:
		return m.Names[1] + " wins!"
	}
	return ""
}
