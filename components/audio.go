package components

import (
	cfg "github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/gamemath"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component).
// Systems only queue sound triggers here; the audio system drains the queue
// and owns the playback resources.
type AudioData struct {
	Volume         int // 0-100, applied to every channel
	PendingSFX     []cfg.SoundID
	MusicRequested bool
	MusicPlaying   bool
}

var Audio = donburi.NewComponentType[AudioData]()

// Play queues a sound trigger for the next audio pass.
func (a *AudioData) Play(id cfg.SoundID) {
	a.PendingSFX = append(a.PendingSFX, id)
}

// SetVolume clamps v into [0,100].
func (a *AudioData) SetVolume(v int) {
	a.Volume = gamemath.ClampInt(v, 0, 100)
}

// Gain is the shared playback gain derived from Volume.
func (a *AudioData) Gain() float64 {
	return float64(a.Volume) / 100
}
