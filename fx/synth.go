package fx

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"cannonfire/game"
	"cannonfire/vmath"
)

// SampleRate is the default rate clips are rendered at
const SampleRate = beep.SampleRate(44100)

// BytesPerFrame is one 16-bit stereo frame
const BytesPerFrame = 4

// tone is a sine oscillator with an exponential pitch glide
type tone struct {
	rate     beep.SampleRate
	from, to float64
	phase    float64
	pos      int
	size     int
}

func newTone(rate beep.SampleRate, from, to float64, d time.Duration) *tone {
	return &tone{rate: rate, from: from, to: to, size: rate.N(d)}
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.size {
			return i, i > 0
		}
		k := float64(o.pos) / float64(o.size)
		freq := o.from * math.Pow(o.to/o.from, k)
		v := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = v
		samples[i][1] = v

		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

// rumble is low-passed noise over a low sine, decaying exponentially
type rumble struct {
	rate  beep.SampleRate
	decay float64
	freq  float64
	seed  uint32
	last  float64
	pos   int
	size  int
}

func newRumble(rate beep.SampleRate, freq, decay float64, d time.Duration) *rumble {
	return &rumble{rate: rate, freq: freq, decay: decay, seed: 0x9e3779b9, size: rate.N(d)}
}

func (r *rumble) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if r.pos >= r.size {
			return i, i > 0
		}
		t := float64(r.pos) / float64(r.rate)

		r.seed = r.seed*1664525 + 1013904223
		noise := float64(r.seed)/float64(math.MaxUint32)*2 - 1
		r.last += 0.2 * (noise - r.last)

		v := math.Exp(-t*r.decay) * (0.7*r.last + 0.3*math.Sin(2*math.Pi*r.freq*t))
		samples[i][0] = v
		samples[i][1] = v
		r.pos++
	}
	return len(samples), true
}

func (r *rumble) Err() error { return nil }

// fade applies a linear attack and release to a finite streamer
type fade struct {
	s       beep.Streamer
	pos     int
	attack  int
	release int
	total   int
}

func newFade(s beep.Streamer, rate beep.SampleRate, total, attack, release time.Duration) *fade {
	return &fade{s: s, total: rate.N(total), attack: rate.N(attack), release: rate.N(release)}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.s.Stream(samples)
	for i := 0; i < n; i++ {
		g := 1.0
		if f.attack > 0 && f.pos < f.attack {
			g = float64(f.pos) / float64(f.attack)
		}
		if left := f.total - f.pos; f.release > 0 && left < f.release {
			g = math.Max(0, float64(left)/float64(f.release))
		}
		samples[i][0] *= g
		samples[i][1] *= g
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.s.Err() }

func gain(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// Clip builds the streamer for a sound clip
func Clip(clip game.SoundClip, rate beep.SampleRate) beep.Streamer {
	switch clip {
	case game.SoundFire:
		d := 180 * time.Millisecond
		thump := newFade(newTone(rate, 160, 55, d), rate, d, 2*time.Millisecond, 120*time.Millisecond)
		hiss := newFade(newRumble(rate, 0, 30, d/2), rate, d/2, time.Millisecond, 60*time.Millisecond)
		return gain(beep.Take(rate.N(d), beep.Mix(gain(thump, 0.7), gain(hiss, 0.4))), 0.8)
	case game.SoundExplosion:
		d := 700 * time.Millisecond
		boom := newFade(newRumble(rate, 55, 5, d), rate, d, 3*time.Millisecond, 250*time.Millisecond)
		return gain(boom, 0.9)
	case game.SoundTargetDestroyed:
		n1 := newFade(newTone(rate, 660, 660, 90*time.Millisecond), rate, 90*time.Millisecond, 3*time.Millisecond, 40*time.Millisecond)
		n2 := newFade(newTone(rate, 990, 990, 160*time.Millisecond), rate, 160*time.Millisecond, 3*time.Millisecond, 100*time.Millisecond)
		return gain(beep.Seq(n1, n2), 0.5)
	default:
		return nil
	}
}

// Synthesize renders a clip to 16-bit signed little-endian stereo PCM.
// Unknown clips render to nil.
func Synthesize(clip game.SoundClip, rate beep.SampleRate) []byte {
	s := Clip(clip, rate)
	if s == nil {
		return nil
	}

	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(vmath.Clamp(v, -1, 1)*math.MaxInt16)))
			}
		}
		if !ok || n == 0 {
			break
		}
	}
	return out
}

// Bank caches rendered clips
type Bank struct {
	rate  beep.SampleRate
	clips map[game.SoundClip][]byte
}

// NewBank renders every known clip at rate
func NewBank(rate beep.SampleRate) *Bank {
	b := &Bank{rate: rate, clips: make(map[game.SoundClip][]byte)}
	for _, c := range []game.SoundClip{game.SoundFire, game.SoundExplosion, game.SoundTargetDestroyed} {
		b.clips[c] = Synthesize(c, rate)
	}
	return b
}

// PCM returns the rendered clip, or nil if unknown
func (b *Bank) PCM(clip game.SoundClip) []byte {
	return b.clips[clip]
}

// Rate returns the sample rate of the bank
func (b *Bank) Rate() beep.SampleRate {
	return b.rate
}
