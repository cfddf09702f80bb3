package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the default Pac-Man configuration.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Gameplay: PacmanGameplay{
			Lives:      6,
			StartRound: 0,
			SkipIntro:  false,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.7,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "pacman":
		return defaultPacmanYAML
	default:
		return nil
	}
}
