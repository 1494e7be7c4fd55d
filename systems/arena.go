package systems

import (
	cfg "github.com/automoto/arena-duel/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateArena is the simulation tick. It only runs while the match is
// running and not paused; game over and pause stop it by gating alone.
func UpdateArena(e *ecs.ECS) {
	match := GetOrCreateMatch(e)
	if match.Phase != cfg.PhaseRunning || !match.Live() {
		return
	}

	UpdateMovement(e)
	UpdateBot(e)
	UpdateBullets(e)
	CheckGameOver(e)
}
