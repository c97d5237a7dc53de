// Package synth renders the narrative's sound cues as stereo float32 PCM.
package synth

import "math"

const (
	SampleRate   = 44100
	ChannelCount = 2
	// FrameBytes is one stereo float32 frame.
	FrameBytes = 8
)

// Cue identifies a sound effect.
type Cue int

const (
	CueAdvance Cue = iota
	CueRefused
	CueProtest
	CueStrike
	CueCollapse
	CueReplicate
	CueEnd
	CueReset
)

func (c Cue) String() string {
	switch c {
	case CueAdvance:
		return "advance"
	case CueRefused:
		return "refused"
	case CueProtest:
		return "protest"
	case CueStrike:
		return "strike"
	case CueCollapse:
		return "collapse"
	case CueReplicate:
		return "replicate"
	case CueEnd:
		return "end"
	case CueReset:
		return "reset"
	}
	return "unknown"
}

// Generate renders a cue. The seed varies noise-based cues between calls.
func Generate(c Cue, seed uint64) []byte {
	switch c {
	case CueAdvance:
		return genAdvance()
	case CueRefused:
		return genRefused()
	case CueProtest:
		return genProtest(seed)
	case CueStrike:
		return genStrike()
	case CueCollapse:
		return genCollapse(seed)
	case CueReplicate:
		return genReplicate()
	case CueEnd:
		return genEnd()
	case CueReset:
		return genReset()
	}
	return nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	o := i * FrameBytes
	for ch := range ChannelCount {
		buf[o+ch*4] = byte(v)
		buf[o+ch*4+1] = byte(v >> 8)
		buf[o+ch*4+2] = byte(v >> 16)
		buf[o+ch*4+3] = byte(v >> 24)
	}
}

// softSat is a gentle saturation curve that never clips hard.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm is a two-operator FM voice.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func makeBuf(n int) []byte { return make([]byte, n*FrameBytes) }

func samples(seconds float64) int { return int(seconds * SampleRate) }

// render mixes a float buffer down to PCM.
func render(mix []float64) []byte {
	buf := makeBuf(len(mix))
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
