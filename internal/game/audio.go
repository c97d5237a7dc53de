package game

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"econflow/internal/synth"
)

// BitDepth 0 selects oto.FormatFloat32LE.
const BitDepth = 0

// maxVoices limits simultaneous cues to avoid clipping during attack waves.
const maxVoices = 6

// AudioSystem plays procedurally generated cues.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *AudioSystem

var (
	activeVoices int32
	cueCounter   uint64
)

var sfxVolume = 0.5

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(synth.SampleRate, synth.ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

func SetSFXVolume(vol float64) {
	sfxVolume = clampF(vol, 0, 1)
}

// PlaySound plays a cue. It is a no-op when audio is not initialised yet.
func PlaySound(cue synth.Cue) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	if atomic.AddInt32(&activeVoices, 1) > maxVoices {
		atomic.AddInt32(&activeVoices, -1)
		return
	}
	seed := atomic.AddUint64(&cueCounter, 1) ^ uint64(time.Now().UnixNano())
	samples := synth.Generate(cue, seed)
	if len(samples) == 0 {
		atomic.AddInt32(&activeVoices, -1)
		return
	}
	go func() {
		defer atomic.AddInt32(&activeVoices, -1)
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
