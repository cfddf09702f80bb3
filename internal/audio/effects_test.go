package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// drain streams s to exhaustion and returns the total sample count. It
// gives up after limit samples so endless streamers cannot hang a test.
func drain(t *testing.T, s beep.Streamer, limit int) (total int, finished bool) {
	t.Helper()
	buf := make([][2]float64, 512)
	for total < limit {
		n, ok := s.Stream(buf)
		total += n
		for i := 0; i < n; i++ {
			if buf[i][0] < -1.0 || buf[i][0] > 1.0 {
				t.Fatalf("sample %d out of range: %f", total-n+i, buf[i][0])
			}
		}
		if !ok {
			return total, true
		}
	}
	return total, false
}

func TestWaveShapes(t *testing.T) {
	if v := waveSample(WaveSquare, 0.1); v != 1.0 {
		t.Errorf("Expected square high phase to be 1.0, got %f", v)
	}
	if v := waveSample(WaveSquare, 0.9); v != -1.0 {
		t.Errorf("Expected square low phase to be -1.0, got %f", v)
	}
	if v := waveSample(WaveTriangle, 0.5); v != 1.0 {
		t.Errorf("Expected triangle peak at phase 0.5, got %f", v)
	}
	if v := waveSample(WaveTriangle, 0); v != -1.0 {
		t.Errorf("Expected triangle trough at phase 0, got %f", v)
	}
	if v := waveSample(WaveSine, 0.25); v < 0.999 {
		t.Errorf("Expected sine peak near phase 0.25, got %f", v)
	}
}

func TestToneDuration(t *testing.T) {
	duration := 10 * time.Millisecond
	expected := sampleRate.N(duration)

	tone := newTone(440.0, duration, WaveSine, sampleRate)

	// Request more samples than the tone holds.
	samples := make([][2]float64, expected*2)
	n, _ := tone.Stream(samples)
	if n != expected {
		t.Errorf("Expected %d samples, got %d", expected, n)
	}

	// A drained tone must report done.
	n2, ok2 := tone.Stream(make([][2]float64, 16))
	if ok2 {
		t.Error("Expected drained tone to return ok=false")
	}
	if n2 != 0 {
		t.Errorf("Expected 0 samples after drain, got %d", n2)
	}

	if tone.Err() != nil {
		t.Errorf("Expected no error, got: %v", tone.Err())
	}
}

func TestGlideStreamsFullDuration(t *testing.T) {
	duration := 50 * time.Millisecond
	expected := sampleRate.N(duration)

	g := newGlide(200, 900, duration, WaveTriangle, sampleRate)
	total, finished := drain(t, g, expected*2)

	if !finished {
		t.Error("Expected glide to finish")
	}
	if total != expected {
		t.Errorf("Expected %d samples, got %d", expected, total)
	}
}

func TestWailNeverDrains(t *testing.T) {
	w := newWail(425, 775, 50*time.Millisecond, false, WaveTriangle, sampleRate)

	// Stream well past several cycles; an endless streamer must always
	// deliver full buffers.
	buf := make([][2]float64, 512)
	for streamed := 0; streamed < sampleRate.N(300*time.Millisecond); streamed += len(buf) {
		n, ok := w.Stream(buf)
		if !ok {
			t.Fatal("Expected wail to keep streaming")
		}
		if n != len(buf) {
			t.Fatalf("Expected full buffer, got %d of %d", n, len(buf))
		}
	}
}

func TestEnvelopeAttack(t *testing.T) {
	duration := 100 * time.Millisecond
	attack := 50 * time.Millisecond

	// A square wave keeps full amplitude, so any ramp comes from the
	// envelope.
	tone := newTone(100.0, duration, WaveSquare, sampleRate)
	env := newEnvelope(tone, duration, attack, 10*time.Millisecond, sampleRate)

	samples := make([][2]float64, sampleRate.N(attack))
	n, ok := env.Stream(samples)
	if !ok {
		t.Fatal("Expected envelope to stream")
	}

	first := abs(samples[0][0])
	last := abs(samples[n-1][0])
	if first >= last {
		t.Errorf("Expected attack to ramp up, first=%f last=%f", first, last)
	}
}

func TestEnvelopeCutsOff(t *testing.T) {
	duration := 20 * time.Millisecond

	// The underlying tone is longer than the envelope; the envelope must
	// cut it off.
	tone := newTone(440.0, time.Second, WaveSine, sampleRate)
	env := newEnvelope(tone, duration, time.Millisecond, 5*time.Millisecond, sampleRate)

	total, finished := drain(t, env, sampleRate.N(time.Second))
	if !finished {
		t.Error("Expected envelope to finish")
	}
	if want := sampleRate.N(duration); total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}
}

func TestCreatePreludeSoundLength(t *testing.T) {
	sound := CreatePreludeSound(1.0)
	if sound == nil {
		t.Fatal("Expected non-nil prelude")
	}

	total, finished := drain(t, sound, sampleRate.N(10*time.Second))
	if !finished {
		t.Fatal("Expected prelude to finish")
	}

	// The jingle covers the freeze between pressing start and the first
	// round going live, a bit over four seconds.
	if total < sampleRate.N(4*time.Second) || total > sampleRate.N(4500*time.Millisecond) {
		t.Errorf("Expected prelude between 4.0s and 4.5s, got %d samples", total)
	}
}

func TestMunchHalvesDiffer(t *testing.T) {
	a := CreateMunchSound(1.0, false)
	b := CreateMunchSound(1.0, true)

	bufA := make([][2]float64, 2000)
	bufB := make([][2]float64, 2000)
	a.Stream(bufA)
	b.Stream(bufB)

	same := true
	for i := range bufA {
		if bufA[i] != bufB[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("Expected falling and rising munch halves to produce different samples")
	}
}

func TestOneShotsFinish(t *testing.T) {
	testCases := []struct {
		name  string
		sound beep.Streamer
		max   time.Duration
	}{
		{"Munch", CreateMunchSound(1.0, false), 200 * time.Millisecond},
		{"EatGhost", CreateEatGhostSound(1.0), time.Second},
		{"EatFruit", CreateEatFruitSound(1.0), time.Second},
		{"Death", CreateDeathSound(1.0), 2 * time.Second},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			total, finished := drain(t, tc.sound, sampleRate.N(tc.max))
			if !finished {
				t.Fatalf("Expected %s to finish within %v", tc.name, tc.max)
			}
			if total == 0 {
				t.Errorf("Expected %s to produce samples", tc.name)
			}
		})
	}
}

func TestGetSoundEffect(t *testing.T) {
	playable := []core.SoundEffect{
		core.SoundPrelude,
		core.SoundSiren,
		core.SoundFrightened,
		core.SoundEatDot1,
		core.SoundEatDot2,
		core.SoundEatGhost,
		core.SoundEatFruit,
		core.SoundDeath,
	}

	for _, effect := range playable {
		t.Run(effect.String(), func(t *testing.T) {
			sound := GetSoundEffect(effect, 1.0)
			if sound == nil {
				t.Fatalf("Expected non-nil streamer for %v", effect)
			}
			n, ok := sound.Stream(make([][2]float64, 100))
			if !ok || n == 0 {
				t.Errorf("Expected %v to produce samples, got n=%d ok=%v", effect, n, ok)
			}
		})
	}
}

func TestGetSoundEffectSilentKinds(t *testing.T) {
	if s := GetSoundEffect(core.SoundStopAll, 1.0); s != nil {
		t.Error("Expected nil streamer for SoundStopAll")
	}
	if s := GetSoundEffect(core.SoundEffect(999), 1.0); s != nil {
		t.Error("Expected nil streamer for unknown effect")
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	sound := CreateMunchSound(0, false)

	samples := make([][2]float64, 1000)
	n, ok := sound.Stream(samples)
	if !ok || n == 0 {
		t.Fatal("Expected silent sound to still stream samples")
	}

	for i := 0; i < n; i++ {
		if abs(samples[i][0]) > 0.001 {
			t.Fatalf("Expected silence at zero volume, got %f at sample %d", samples[i][0], i)
		}
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
