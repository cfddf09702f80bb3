package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset maps a user-supplied name to a preset. Unknown
// names give the empty preset, which leaves the config untouched.
func ParseDifficultyPreset(name string) DifficultyPreset {
	switch name {
	case "easy":
		return DifficultyEasy
	case "normal":
		return DifficultyNormal
	case "hard":
		return DifficultyHard
	}
	return ""
}

// presetGameplay holds the gameplay overrides for each preset. Hard mode
// starts a few rounds in, where the ghosts are faster to leave the house
// and the frightened window is short.
var presetGameplay = map[DifficultyPreset]PacmanGameplay{
	DifficultyEasy:   {Lives: 8, StartRound: 0},
	DifficultyNormal: {Lives: 6, StartRound: 0},
	DifficultyHard:   {Lives: 3, StartRound: 4},
}

// ApplyPacmanPreset modifies the config based on a difficulty preset.
func ApplyPacmanPreset(cfg *PacmanConfig, preset DifficultyPreset) {
	over, ok := presetGameplay[preset]
	if !ok {
		return
	}
	cfg.Gameplay.Lives = over.Lives
	cfg.Gameplay.StartRound = over.StartRound
}
