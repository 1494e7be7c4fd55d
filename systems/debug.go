package systems

import (
	"fmt"
	"image/color"
	"time"

	cfg "github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/fonts"
	"github.com/automoto/arena-duel/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object and prints the match phase,
// scheduler clock and bullet count.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowCollision {
		return
	}

	if space := getSpace(ecs); space != nil {
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 255, 0, 255}
			}

			x, y := float32(obj.X), float32(obj.Y)
			vector.StrokeRect(screen, x, y, float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	match := GetOrCreateMatch(ecs)
	line := fmt.Sprintf("%s paused=%v epoch=%d t=%v bullets=%d pending=%d",
		match.Phase, match.Paused, match.Epoch, Now(ecs).Truncate(time.Millisecond), BulletCount(ecs), PendingEvents(ecs))
	text.Draw(screen, line, fonts.Small.Get(), 5, cfg.C.Height-5, cfg.White)
}
