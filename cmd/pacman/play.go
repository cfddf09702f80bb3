package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/audio"
	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagRound      int
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play the game",
	Long: `Start playing. With no argument the maze chase starts directly.

Controls:
  WASD/Arrows  - Steer
  P/Esc        - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 8 lives
  normal - 6 lives
  hard   - 3 lives, starts a few rounds in

Examples:
  pacman play
  pacman play --difficulty easy
  pacman play --round 5
  pacman play --config ./my-pacman.yaml
  pacman play --mute`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagRound, "round", 0, "Starting round (1-based, 0 = first round)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "pacman"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'pacman list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size early for mode selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before creation
	if gameID == "pacman" {
		pacman.SetConfigPath(flagConfig)
		pacman.SetDifficultyPreset(flagDifficulty)
		if flagRound > 0 {
			pacman.SetStartRound(flagRound - 1)
		}

		// Show the mode selector unless flags already decided
		if flagDifficulty == "" && flagRound <= 0 {
			selection, updatedCfg, selErr := tui.RunPacmanModeSelector(cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				os.Exit(1)
			}
			cfg = updatedCfg

			// User pressed back or quit
			if selection == nil {
				return
			}

			// Apply selection
			pacman.SetDifficultyPreset(string(selection.Preset))
			if selection.StartRound >= 0 {
				pacman.SetStartRound(selection.StartRound)
			}
		}
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Seed the high score line from past runs
	if store != nil {
		if high, hsErr := store.HighScore(gameID); hsErr == nil {
			cfg.HighScore = high
		}
	}

	// Set up sound
	player := newAudioPlayer(flagConfig, flagMute)
	defer player.Close()

	// Run the game
	runErr := tui.Run(game, store, player, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// newAudioPlayer builds and starts the sound player from the audio section
// of the game config. Playback failures leave the game silent but playable.
func newAudioPlayer(configPath string, mute bool) *audio.Player {
	gameCfg, err := config.LoadPacman(configPath)
	if err != nil {
		gameCfg = config.DefaultPacmanConfig()
	}
	if mute {
		gameCfg.Audio.Enabled = false
	}

	player := audio.NewPlayer(gameCfg.Audio)
	if startErr := player.Start(); startErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: sound unavailable: %v\n", startErr)
	}
	return player
}
