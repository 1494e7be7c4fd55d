package assets

import (
	"bytes"
	"fmt"

	cfg "github.com/automoto/arena-duel/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes and caches the game's sounds
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte // Cache rendered PCM for SFX
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound effect and caches it without creating a player.
// Call this at startup to avoid a hitch on first play.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	_, err := l.pcm(id)
	return err
}

func (l *AudioLoader) pcm(id cfg.SoundID) ([]byte, error) {
	if cached, ok := l.sfxCache[id]; ok {
		return cached, nil
	}

	def, ok := cfg.Audio.SFX[id]
	if !ok {
		return nil, fmt.Errorf("no tone defined for sound %d", id)
	}
	data, err := SynthesizeTone(def, l.context.SampleRate())
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize sound %d: %w", id, err)
	}

	l.sfxCache[id] = data
	return data, nil
}

// LoadSFX returns a player for the sound effect. Each sound keeps a single
// player so a trigger restarts it instead of layering copies.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	data, err := l.pcm(id)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(data), nil
}

// LoadMusic returns a looping player for the background track.
func (l *AudioLoader) LoadMusic() (*audio.Player, error) {
	data, err := SynthesizeMusic(cfg.Audio.MusicNotes, cfg.Audio.MusicNoteTime,
		cfg.Audio.MusicGain, l.context.SampleRate())
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize music: %w", err)
	}

	loop := audio.NewInfiniteLoop(bytes.NewReader(data), int64(len(data)))

	player, err := l.context.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("failed to create music player: %w", err)
	}
	return player, nil
}
