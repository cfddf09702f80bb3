package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// WaveType selects the oscillator wave shape.
type WaveType int

const (
	WaveSquare WaveType = iota
	WaveTriangle
	WaveSine
)

// waveSample evaluates one wave shape at a phase in [0, 1).
func waveSample(wave WaveType, phase float64) float64 {
	switch wave {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// glide is a finite streamer whose frequency moves linearly between two
// endpoints. A tone is a glide with equal endpoints.
type glide struct {
	rate     beep.SampleRate
	from     float64
	to       float64
	duration int
	position int
	wave     WaveType
	phase    float64
}

// newGlide creates a streamer sweeping from one frequency to another over
// the given duration.
func newGlide(from, to float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &glide{
		rate:     rate,
		from:     from,
		to:       to,
		duration: rate.N(d),
		wave:     wave,
	}
}

// newTone creates a fixed-frequency streamer.
func newTone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return newGlide(freq, freq, d, wave, rate)
}

func (g *glide) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.position >= g.duration {
			return i, false
		}

		t := float64(g.position) / float64(g.duration)
		freq := g.from + (g.to-g.from)*t
		val := waveSample(g.wave, g.phase)

		samples[i][0] = val
		samples[i][1] = val

		g.phase += freq / float64(g.rate)
		g.phase -= math.Floor(g.phase)
		g.position++
	}
	return len(samples), true
}

func (g *glide) Err() error { return nil }

// wail is an endless streamer whose frequency sweeps between two bounds.
// A symmetric wail rises and falls within each cycle; a ramp rises only
// and snaps back.
type wail struct {
	rate    beep.SampleRate
	cycle   int
	minFreq float64
	maxFreq float64
	ramp    bool
	wave    WaveType
	phase   float64
	pos     int
}

// newWail creates an endless frequency sweep. It never drains.
func newWail(minFreq, maxFreq float64, cycleDur time.Duration, ramp bool, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &wail{
		rate:    rate,
		cycle:   rate.N(cycleDur),
		minFreq: minFreq,
		maxFreq: maxFreq,
		ramp:    ramp,
		wave:    wave,
	}
}

func (w *wail) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		cyclePos := float64(w.pos%w.cycle) / float64(w.cycle)
		sweep := cyclePos
		if !w.ramp {
			sweep = 1 - math.Abs(2*cyclePos-1)
		}
		freq := w.minFreq + (w.maxFreq-w.minFreq)*sweep
		val := waveSample(w.wave, w.phase)

		samples[i][0] = val
		samples[i][1] = val

		w.phase += freq / float64(w.rate)
		w.phase -= math.Floor(w.phase)
		w.pos++
	}
	return len(samples), true
}

func (w *wail) Err() error { return nil }

// envelope shapes a streamer with a linear attack and release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// newEnvelope wraps a streamer with attack and release ramps and cuts it
// off after the given duration.
func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, false
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= e.total-e.release {
			vol = float64(e.total-e.position) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a streamer by a linear gain. math.Log2(0) is -Inf, so
// zero gain maps to a silent streamer instead.
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain), Silent: false}
}

// Base gains per effect, multiplied by the configured master volume. The
// square-heavy effects sit lower so they do not drown the chomps.
const (
	preludeGain    = 0.30
	sirenGain      = 0.22
	frightenedGain = 0.22
	munchGain      = 0.40
	eatGhostGain   = 0.35
	eatFruitGain   = 0.35
	deathGain      = 0.40
)

// note is one melody step.
type note struct {
	freq float64
	dur  time.Duration
}

// preludeMelody is the start-of-game jingle: an arpeggiated bar, the same
// bar a semitone up, the first bar again, and a closing chromatic run.
var preludeMelody = []note{
	// B4 B5 F#5 D#5 B5 F#5 D#5
	{493.88, 130 * time.Millisecond},
	{987.77, 130 * time.Millisecond},
	{739.99, 130 * time.Millisecond},
	{622.25, 130 * time.Millisecond},
	{987.77, 130 * time.Millisecond},
	{739.99, 130 * time.Millisecond},
	{622.25, 260 * time.Millisecond},

	// C5 C6 G5 E5 C6 G5 E5
	{523.25, 130 * time.Millisecond},
	{1046.50, 130 * time.Millisecond},
	{783.99, 130 * time.Millisecond},
	{659.25, 130 * time.Millisecond},
	{1046.50, 130 * time.Millisecond},
	{783.99, 130 * time.Millisecond},
	{659.25, 260 * time.Millisecond},

	// first bar again
	{493.88, 130 * time.Millisecond},
	{987.77, 130 * time.Millisecond},
	{739.99, 130 * time.Millisecond},
	{622.25, 130 * time.Millisecond},
	{987.77, 130 * time.Millisecond},
	{739.99, 130 * time.Millisecond},
	{622.25, 260 * time.Millisecond},

	// D#5 E5 F5, F5 F#5 G5, G5 G#5 A5, B5
	{622.25, 80 * time.Millisecond},
	{659.25, 80 * time.Millisecond},
	{698.46, 80 * time.Millisecond},
	{698.46, 80 * time.Millisecond},
	{739.99, 80 * time.Millisecond},
	{783.99, 80 * time.Millisecond},
	{783.99, 80 * time.Millisecond},
	{830.61, 80 * time.Millisecond},
	{880.00, 80 * time.Millisecond},
	{987.77, 360 * time.Millisecond},
}

// CreatePreludeSound builds the start-of-game jingle.
func CreatePreludeSound(volume float64) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(preludeMelody))
	for _, n := range preludeMelody {
		tone := newTone(n.freq, n.dur, WaveSquare, sampleRate)
		parts = append(parts, newEnvelope(tone, n.dur, 4*time.Millisecond, 25*time.Millisecond, sampleRate))
	}
	return newVolume(beep.Seq(parts...), preludeGain*volume)
}

// CreateSirenLoop builds the endless chase siren. It never drains.
func CreateSirenLoop(volume float64) beep.Streamer {
	w := newWail(425, 775, 450*time.Millisecond, false, WaveTriangle, sampleRate)
	return newVolume(w, sirenGain*volume)
}

// CreateFrightenedLoop builds the endless gulping loop heard while ghosts
// are frightened. It never drains.
func CreateFrightenedLoop(volume float64) beep.Streamer {
	w := newWail(140, 480, 135*time.Millisecond, true, WaveTriangle, sampleRate)
	return newVolume(w, frightenedGain*volume)
}

// CreateMunchSound builds one half of the dot-eating chomp. The first half
// falls in pitch, the second rises.
func CreateMunchSound(volume float64, rising bool) beep.Streamer {
	from, to := 550.0, 240.0
	if rising {
		from, to = to, from
	}
	g := newGlide(from, to, 90*time.Millisecond, WaveTriangle, sampleRate)
	shaped := newEnvelope(g, 90*time.Millisecond, 2*time.Millisecond, 20*time.Millisecond, sampleRate)
	return newVolume(shaped, munchGain*volume)
}

// CreateEatGhostSound builds the rising glissando for a captured ghost.
func CreateEatGhostSound(volume float64) beep.Streamer {
	g := newGlide(200, 950, 480*time.Millisecond, WaveTriangle, sampleRate)
	shaped := newEnvelope(g, 480*time.Millisecond, 5*time.Millisecond, 60*time.Millisecond, sampleRate)
	return newVolume(shaped, eatGhostGain*volume)
}

// CreateEatFruitSound builds the two-note chirp for collecting the bonus
// fruit.
func CreateEatFruitSound(volume float64) beep.Streamer {
	n1 := newTone(659.25, 90*time.Millisecond, WaveSquare, sampleRate)
	n1Shaped := newEnvelope(n1, 90*time.Millisecond, 2*time.Millisecond, 25*time.Millisecond, sampleRate)

	n2 := newTone(987.77, 140*time.Millisecond, WaveSquare, sampleRate)
	n2Shaped := newEnvelope(n2, 140*time.Millisecond, 2*time.Millisecond, 60*time.Millisecond, sampleRate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), eatFruitGain*volume)
}

// CreateDeathSound builds the death spiral: a long falling wail and two
// short hops.
func CreateDeathSound(volume float64) beep.Streamer {
	fall := newGlide(720, 110, 1100*time.Millisecond, WaveTriangle, sampleRate)
	fallShaped := newEnvelope(fall, 1100*time.Millisecond, 5*time.Millisecond, 80*time.Millisecond, sampleRate)

	hop := func() beep.Streamer {
		g := newGlide(110, 330, 90*time.Millisecond, WaveTriangle, sampleRate)
		return newEnvelope(g, 90*time.Millisecond, 3*time.Millisecond, 40*time.Millisecond, sampleRate)
	}

	gap := sampleRate.N(40 * time.Millisecond)
	seq := beep.Seq(fallShaped, beep.Silence(gap), hop(), beep.Silence(gap), hop())
	return newVolume(seq, deathGain*volume)
}

// GetSoundEffect returns a streamer for the given effect at the given
// master volume, or nil for effects that carry no sound of their own.
func GetSoundEffect(effect core.SoundEffect, volume float64) beep.Streamer {
	switch effect {
	case core.SoundPrelude:
		return CreatePreludeSound(volume)
	case core.SoundSiren:
		return CreateSirenLoop(volume)
	case core.SoundFrightened:
		return CreateFrightenedLoop(volume)
	case core.SoundEatDot1:
		return CreateMunchSound(volume, false)
	case core.SoundEatDot2:
		return CreateMunchSound(volume, true)
	case core.SoundEatGhost:
		return CreateEatGhostSound(volume)
	case core.SoundEatFruit:
		return CreateEatFruitSound(volume)
	case core.SoundDeath:
		return CreateDeathSound(volume)
	default:
		return nil
	}
}
