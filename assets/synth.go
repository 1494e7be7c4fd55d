package assets

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"time"

	cfg "github.com/automoto/arena-duel/config"
)

// bytesPerFrame is one stereo frame of signed 16-bit little-endian PCM,
// the format ebiten's audio context plays.
const bytesPerFrame = 4

// SynthesizeTone renders def as PCM at sampleRate.
func SynthesizeTone(def cfg.ToneDef, sampleRate int) ([]byte, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %d", sampleRate)
	}
	frames := durationFrames(def.Duration, sampleRate)
	if frames == 0 {
		return nil, fmt.Errorf("tone too short: %v", def.Duration)
	}

	noise := rand.New(rand.NewSource(1))
	buf := make([]byte, frames*bytesPerFrame)
	phase := 0.0

	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames)
		freq := def.StartFreq + (def.EndFreq-def.StartFreq)*t
		phase += freq / float64(sampleRate)
		phase -= math.Floor(phase)

		var v float64
		switch def.Wave {
		case cfg.WaveSquare:
			v = 1
			if phase >= 0.5 {
				v = -1
			}
		case cfg.WaveSaw:
			v = 2*phase - 1
		case cfg.WaveNoise:
			v = noise.Float64()*2 - 1
		default:
			v = math.Sin(2 * math.Pi * phase)
		}

		// Linear fade out avoids a click at the end.
		writeFrame(buf, i, v*def.Gain*(1-t))
	}
	return buf, nil
}

// SynthesizeMusic renders one loop of the note sequence. A zero note is a
// rest.
func SynthesizeMusic(notes []float64, noteTime time.Duration, gain float64, sampleRate int) ([]byte, error) {
	if len(notes) == 0 {
		return nil, fmt.Errorf("no notes to render")
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %d", sampleRate)
	}
	perNote := durationFrames(noteTime, sampleRate)
	if perNote == 0 {
		return nil, fmt.Errorf("note too short: %v", noteTime)
	}

	buf := make([]byte, len(notes)*perNote*bytesPerFrame)
	for n, freq := range notes {
		for i := 0; i < perNote; i++ {
			if freq == 0 {
				continue
			}
			t := float64(i) / float64(sampleRate)
			// Triangle wave with a short decay per note.
			p := t*freq - math.Floor(t*freq)
			v := 4*math.Abs(p-0.5) - 1
			env := math.Exp(-3 * float64(i) / float64(perNote))
			writeFrame(buf, n*perNote+i, v*gain*env)
		}
	}
	return buf, nil
}

func durationFrames(d time.Duration, sampleRate int) int {
	return int(d.Seconds() * float64(sampleRate))
}

func writeFrame(buf []byte, frame int, v float64) {
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	s := uint16(int16(v * math.MaxInt16))
	off := frame * bytesPerFrame
	binary.LittleEndian.PutUint16(buf[off:], s)
	binary.LittleEndian.PutUint16(buf[off+2:], s)
}
