// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

// PacmanConfig contains all configuration for the Pac-Man game.
type PacmanConfig struct {
	Gameplay PacmanGameplay `yaml:"gameplay"`
	Audio    AudioConfig    `yaml:"audio"`
}

// PacmanGameplay defines the tunable game rules.
type PacmanGameplay struct {
	Lives      int  `yaml:"lives"`       // starting lives; 0 keeps the built-in default
	StartRound int  `yaml:"start_round"` // zero-based first round
	SkipIntro  bool `yaml:"skip_intro"`  // start straight into a game, no attract screen
}

// AudioConfig controls sound playback.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}
