package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Bullet = donburi.NewTag().SetName("Bullet")
)

// Resolv tags for collision queries
const (
	ResolvPlayer  = "Player"
	ResolvBullet  = "Bullet"
	ResolvPlayer1 = "Player1"
	ResolvPlayer2 = "Player2"
)

// ResolvSlot returns the resolv tag identifying the player in slot.
func ResolvSlot(slot int) string {
	if slot == 2 {
		return ResolvPlayer2
	}
	return ResolvPlayer1
}
