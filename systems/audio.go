package systems

import (
	"log"
	"sync"

	"github.com/automoto/arena-duel/assets"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalSFXPlayers   = map[cfg.SoundID]*audio.Player{}
	globalGain         = -1.0
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX renders every sound effect at startup so the first
// trigger plays without a hitch. Failures are logged and the sound is
// skipped later.
func PreloadAllSFX() {
	initGlobalAudio()

	for id := range cfg.Audio.SFX {
		player, err := globalAudioLoader.LoadSFX(id)
		if err != nil {
			log.Printf("Warning: %v", err)
			continue
		}
		globalSFXPlayers[id] = player
	}
}

// UpdateAudio drains queued triggers, starts the music once requested and
// keeps every channel at the shared volume.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	audioData := GetOrCreateAudio(e)
	gain := audioData.Gain()
	if gain != globalGain {
		globalGain = gain
		applyGain(gain)
	}

	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]

	if audioData.MusicRequested && !audioData.MusicPlaying {
		audioData.MusicPlaying = startMusic()
	}

	if globalMusicPlayer != nil {
		if GetOrCreateMatch(e).Paused {
			PauseMusic()
		} else if audioData.MusicPlaying && !globalMusicPlayer.IsPlaying() {
			ResumeMusic()
		}
	}
}

func applyGain(gain float64) {
	for _, p := range globalSFXPlayers {
		p.SetVolume(gain)
	}
	if globalMusicPlayer != nil {
		globalMusicPlayer.SetVolume(gain)
	}
}

// playSFX restarts the sound from time zero. Missing sounds are skipped.
func playSFX(soundID cfg.SoundID) {
	player, ok := globalSFXPlayers[soundID]
	if !ok {
		p, err := globalAudioLoader.LoadSFX(soundID)
		if err != nil {
			return
		}
		if globalGain >= 0 {
			p.SetVolume(globalGain)
		}
		globalSFXPlayers[soundID] = p
		player = p
	}

	if err := player.SetPosition(0); err != nil {
		log.Printf("Warning: rewinding sound %d: %v", soundID, err)
		return
	}
	player.Play()
}

func startMusic() bool {
	if globalMusicPlayer == nil {
		player, err := globalAudioLoader.LoadMusic()
		if err != nil {
			log.Printf("Warning: %v", err)
			return false
		}
		globalMusicPlayer = player
		if globalGain >= 0 {
			globalMusicPlayer.SetVolume(globalGain)
		}
	}
	globalMusicPlayer.Play()
	return true
}

// PauseMusic pauses the current music playback
func PauseMusic() {
	if globalMusicPlayer != nil {
		globalMusicPlayer.Pause()
	}
}

// ResumeMusic resumes paused music playback
func ResumeMusic() {
	if globalMusicPlayer != nil {
		globalMusicPlayer.Play()
	}
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	GetOrCreateAudio(e).Play(sound)
}

// SetVolume changes the shared volume (0-100)
func SetVolume(e *ecs.ECS, volume int) {
	GetOrCreateAudio(e).SetVolume(volume)
}

// GetVolume returns the shared volume (0-100)
func GetVolume(e *ecs.ECS) int {
	return GetOrCreateAudio(e).Volume
}
