// Package audio synthesizes and plays the game's sound effects. Games emit
// sound intents each tick; the Player turns them into beep streamers on a
// fixed set of playback slots so a new sound replaces whatever its slot was
// playing.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
)

const (
	sampleRate    = beep.SampleRate(48000)
	speakerBuffer = 100 * time.Millisecond

	// numSlots matches the slot space of core.SoundRequest.
	numSlots = 3
)

// Player owns the process-wide speaker and the per-slot controls. All
// methods are safe for concurrent use.
type Player struct {
	mu      sync.Mutex
	enabled bool
	volume  float64
	mixer   *beep.Mixer
	slots   [numSlots]*beep.Ctrl
	started bool
}

// NewPlayer creates a player honoring the audio section of the game config.
// The configured volume is clamped to [0, 1].
func NewPlayer(cfg config.AudioConfig) *Player {
	volume := cfg.Volume
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	return &Player{
		enabled: cfg.Enabled,
		volume:  volume,
		mixer:   &beep.Mixer{},
	}
}

// Start opens the speaker and begins mixing. It is a no-op when audio is
// disabled or already started. A failure leaves the player permanently
// silent; callers may log it and continue without sound.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.started {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(speakerBuffer)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.started = true
	return nil
}

// Process starts and stops sounds for the drained intents, in order. It is
// a no-op until Start has succeeded.
func (p *Player) Process(requests []core.SoundRequest) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	for _, req := range requests {
		if req.Effect == core.SoundStopAll {
			p.silenceAll()
			continue
		}
		p.play(req.Slot, req.Effect)
	}
}

// play replaces whatever the slot is playing with the given effect.
// Dropping the old control's streamer makes the mixer discard it on the
// next pull.
func (p *Player) play(slot int, effect core.SoundEffect) {
	if slot < 0 || slot >= numSlots {
		return
	}
	streamer := GetSoundEffect(effect, p.volume)
	if streamer == nil {
		return
	}

	speaker.Lock()
	if old := p.slots[slot]; old != nil {
		old.Streamer = nil
	}
	ctrl := &beep.Ctrl{Streamer: streamer}
	p.slots[slot] = ctrl
	p.mixer.Add(ctrl)
	speaker.Unlock()
}

func (p *Player) silenceAll() {
	speaker.Lock()
	for i, ctrl := range p.slots {
		if ctrl != nil {
			ctrl.Streamer = nil
			p.slots[i] = nil
		}
	}
	speaker.Unlock()
}

// StopAll silences every slot immediately.
func (p *Player) StopAll() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	p.silenceAll()
}

// Close silences playback and detaches the mixer. beep provides no way to
// close the speaker itself, so the device stays open until the process
// exits.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	p.silenceAll()
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.started = false
}
