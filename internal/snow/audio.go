package snow

import (
	"io"
	"math"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// AudioSystem plays a procedurally generated ambient wind bed behind the
// snowfall. Entirely optional; the simulation never depends on it.
type AudioSystem struct {
	ctx    *oto.Context
	ready  chan struct{}
	player oto.Player
	muted  bool
}

var globalAudio *AudioSystem

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// StartWind begins the looping wind ambience. The player buffers until the
// context reports ready; synthesis happens in the player's read calls.
func StartWind(seed uint64) {
	if globalAudio == nil {
		return
	}
	player := globalAudio.ctx.NewPlayer(newWindReader(seed))
	player.SetVolume(windVolume)
	globalAudio.player = player
	player.Play()
}

// ToggleMute flips the wind on and off.
func ToggleMute() {
	if globalAudio == nil || globalAudio.player == nil {
		return
	}
	globalAudio.muted = !globalAudio.muted
	if globalAudio.muted {
		globalAudio.player.SetVolume(0)
	} else {
		globalAudio.player.SetVolume(windVolume)
	}
}

// StopAudio stops and releases the wind player.
func StopAudio() {
	if globalAudio == nil || globalAudio.player == nil {
		return
	}
	globalAudio.player.Close()
	globalAudio.player = nil
}

const windVolume = 0.35

// windReader synthesizes an endless wind bed: low-passed white noise with a
// slow gust swell, independently filtered per channel for width.
type windReader struct {
	rand *Rand

	lpL, lpR float64 // one-pole low-pass state
	phase    float64 // gust LFO phase
}

func newWindReader(seed uint64) *windReader {
	return &windReader{rand: NewRand(seed ^ 0x57A7E12D)}
}

// Read generates float32 LE stereo frames. Never returns io.EOF.
func (w *windReader) Read(p []byte) (int, error) {
	frames := len(p) / 8
	if frames == 0 {
		return 0, io.ErrShortBuffer
	}

	// Filter coefficient for a ~600 Hz roll-off; gust LFO at ~0.08 Hz.
	const k = 0.08
	const gustStep = 2 * math.Pi * 0.08 / SampleRate

	for i := 0; i < frames; i++ {
		w.phase += gustStep
		if w.phase > 2*math.Pi {
			w.phase -= 2 * math.Pi
		}
		gust := 0.55 + 0.45*math.Sin(w.phase)

		nl := w.rand.Float64()*2 - 1
		nr := w.rand.Float64()*2 - 1
		w.lpL += (nl - w.lpL) * k
		w.lpR += (nr - w.lpR) * k

		putStereoF32LR(p, i, w.lpL*gust, w.lpR*gust)
	}
	return frames * 8, nil
}

// putStereoF32LR writes independent left/right samples in [-1,1] as float32 LE.
func putStereoF32LR(buf []byte, i int, left, right float64) {
	l := math.Float32bits(float32(left))
	r := math.Float32bits(float32(right))
	buf[i*8] = byte(l)
	buf[i*8+1] = byte(l >> 8)
	buf[i*8+2] = byte(l >> 16)
	buf[i*8+3] = byte(l >> 24)
	buf[i*8+4] = byte(r)
	buf[i*8+5] = byte(r >> 8)
	buf[i*8+6] = byte(r >> 16)
	buf[i*8+7] = byte(r >> 24)
}
