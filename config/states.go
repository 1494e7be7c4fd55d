package config

// MatchPhase represents the current phase of a match.
type MatchPhase int

const (
	PhaseIdle      MatchPhase = iota // Start panel, name entry
	PhaseCountdown                   // 3, 2, 1
	PhaseDrop                        // Players fall into the arena
	PhaseReady                       // Names banner before the fight
	PhaseRunning                     // Simulation tick active (pause is a flag)
	PhaseGameOver                    // Result shown, tick halted
)

var phaseNames = map[MatchPhase]string{
	PhaseIdle:      "idle",
	PhaseCountdown: "countdown",
	PhaseDrop:      "drop",
	PhaseReady:     "ready",
	PhaseRunning:   "running",
	PhaseGameOver:  "game-over",
}

func (p MatchPhase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// GameModeID selects who controls player 2.
type GameModeID int

const (
	GameModeDuo  GameModeID = iota // Two humans on one keyboard
	GameModeSolo                   // Player 2 is the bot
)

func (m GameModeID) String() string {
	if m == GameModeSolo {
		return "solo"
	}
	return "duo"
}

// MatchResult is the outcome of a finished match.
type MatchResult int

const (
	ResultNone MatchResult = iota
	ResultDraw
	ResultPlayer1
	ResultPlayer2
)

// Direction is a player's facing.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

var directionNames = [...]string{
	DirectionUp:    "up",
	DirectionDown:  "down",
	DirectionLeft:  "left",
	DirectionRight: "right",
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "unknown"
	}
	return directionNames[d]
}

// Vector returns the unit step for the direction.
func (d Direction) Vector() (x, y float64) {
	switch d {
	case DirectionUp:
		return 0, -1
	case DirectionDown:
		return 0, 1
	case DirectionLeft:
		return -1, 0
	}
	return 1, 0
}

// DefaultFacing returns the facing a player starts with: player 1 looks
// right, player 2 looks left.
func DefaultFacing(slot int) Direction {
	if slot == 2 {
		return DirectionLeft
	}
	return DirectionRight
}
