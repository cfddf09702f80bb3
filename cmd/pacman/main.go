// pacman is a terminal rendition of the classic maze-chase arcade game.
//
// Usage:
//
//	pacman play              - Play the game
//	pacman menu              - Start menu to pick games interactively
//	pacman list              - List available games
//	pacman serve             - Start SSH server for remote play
//	pacman scores            - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tui-pacman/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-pacman/internal/games/pacman"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacman",
	Short: "Pac-Man - The classic maze chase in your terminal",
	Long: `Pac-Man for the terminal: clear the maze, dodge the ghosts, chase
the high score. Play locally or serve the game over SSH.

Available commands:
  play     - Play the game directly
  menu     - Interactive game picker menu
  list     - Show all available games
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  pacman play
  pacman play --difficulty hard
  pacman menu
  pacman serve --ssh :2222
  pacman scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tui-pacman/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
