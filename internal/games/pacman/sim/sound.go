package sim

// SoundEffect enumerates everything the simulation can ask the audio layer
// to play. The simulation never produces samples; it only emits intents.
type SoundEffect int

const (
	// SoundStopAll silences every channel immediately.
	SoundStopAll SoundEffect = iota
	// SoundPrelude is the start-of-game jingle.
	SoundPrelude
	// SoundSiren is the background siren loop while ghosts hunt.
	SoundSiren
	// SoundFrightened is the background loop while ghosts are frightened.
	SoundFrightened
	// SoundEatDot1 and SoundEatDot2 alternate on each dot eaten.
	SoundEatDot1
	SoundEatDot2
	// SoundEatGhost plays when a frightened ghost is caught.
	SoundEatGhost
	// SoundEatFruit plays when the bonus fruit is collected.
	SoundEatFruit
	// SoundDeath is the death spiral.
	SoundDeath
)

func (e SoundEffect) String() string {
	switch e {
	case SoundStopAll:
		return "stop-all"
	case SoundPrelude:
		return "prelude"
	case SoundSiren:
		return "siren"
	case SoundFrightened:
		return "frightened"
	case SoundEatDot1:
		return "eat-dot-1"
	case SoundEatDot2:
		return "eat-dot-2"
	case SoundEatGhost:
		return "eat-ghost"
	case SoundEatFruit:
		return "eat-fruit"
	case SoundDeath:
		return "death"
	}
	return "unknown"
}

// Channel assignment: 0 carries music (the prelude), 1 carries the
// background loops, 2 carries one-shot effects. Starting a sound on a
// channel replaces whatever was playing there.
const (
	SoundChannelMusic  = 0
	SoundChannelLoop   = 1
	SoundChannelEffect = 2
	NumSoundChannels   = 3
)

// SoundRequest is one intent emitted during a tick. A SoundStopAll request
// ignores its channel.
type SoundRequest struct {
	Channel int
	Effect  SoundEffect
}

// playSound queues an intent for the presentation layer to drain after the
// tick.
func (s *Sim) playSound(channel int, effect SoundEffect) {
	s.sounds = append(s.sounds, SoundRequest{Channel: channel, Effect: effect})
}

func (s *Sim) stopAllSounds() {
	s.sounds = append(s.sounds, SoundRequest{Effect: SoundStopAll})
}

// DrainSounds returns the sound intents emitted since the last drain and
// clears the queue. Intents are in emission order.
func (s *Sim) DrainSounds() []SoundRequest {
	out := s.sounds
	s.sounds = nil
	return out
}
