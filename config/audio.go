package config

import "time"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundShoot
	SoundHit
	SoundShieldBreak
)

// Waveform selects the oscillator used to synthesize a sound.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// ToneDef describes a synthesized sound: a frequency sweep with a linear
// fade out.
type ToneDef struct {
	Wave      Waveform
	StartFreq float64
	EndFreq   float64
	Duration  time.Duration
	Gain      float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultVolume int // 0-100, shared by every channel
	VolumeStep    int

	SFX map[SoundID]ToneDef

	// Background music is a looped sequence of notes.
	MusicNotes    []float64 // Hz, 0 = rest
	MusicNoteTime time.Duration
	MusicGain     float64
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultVolume: 50,
		VolumeStep:    10,
		SFX: map[SoundID]ToneDef{
			SoundShoot: {
				Wave:      WaveSquare,
				StartFreq: 880,
				EndFreq:   220,
				Duration:  120 * time.Millisecond,
				Gain:      0.25,
			},
			SoundHit: {
				Wave:     WaveNoise,
				Duration: 150 * time.Millisecond,
				Gain:     0.35,
			},
			SoundShieldBreak: {
				Wave:      WaveSaw,
				StartFreq: 600,
				EndFreq:   80,
				Duration:  400 * time.Millisecond,
				Gain:      0.3,
			},
		},
		MusicNotes: []float64{
			110, 0, 165, 110, 131, 0, 147, 165,
			98, 0, 147, 98, 117, 0, 131, 147,
		},
		MusicNoteTime: 200 * time.Millisecond,
		MusicGain:     0.15,
	}
}
