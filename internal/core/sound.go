package core

// SoundEffect identifies one of the game's sound effects. Games emit these as
// fire-and-forget intents; an audio backend decides how (or whether) to play
// them. The zero value is reserved for "stop everything".
type SoundEffect int

const (
	SoundStopAll    SoundEffect = iota // silence all slots
	SoundPrelude                       // game-start jingle
	SoundSiren                         // looping chase siren
	SoundFrightened                    // looping frightened warble
	SoundEatDot1                       // dot crunch, first half
	SoundEatDot2                       // dot crunch, second half
	SoundEatGhost                      // ghost eaten sweep
	SoundEatFruit                      // bonus fruit chirp
	SoundDeath                         // player death sweep
)

// String returns a short name for the effect.
func (e SoundEffect) String() string {
	switch e {
	case SoundStopAll:
		return "StopAll"
	case SoundPrelude:
		return "Prelude"
	case SoundSiren:
		return "Siren"
	case SoundFrightened:
		return "Frightened"
	case SoundEatDot1:
		return "EatDot1"
	case SoundEatDot2:
		return "EatDot2"
	case SoundEatGhost:
		return "EatGhost"
	case SoundEatFruit:
		return "EatFruit"
	case SoundDeath:
		return "Death"
	default:
		return "Unknown"
	}
}

// SoundRequest asks the audio backend to start an effect in a slot.
// Starting an effect on a busy slot replaces whatever is playing there.
// A SoundStopAll request silences every slot regardless of Slot.
type SoundRequest struct {
	Slot   int // 0 = music, 1 = siren loops, 2 = one-shot effects
	Effect SoundEffect
}
