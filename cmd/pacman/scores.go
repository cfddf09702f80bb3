package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var flagStats bool

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for a game.

With --stats and a game name, shows aggregated statistics for that game.
With --stats and no game name, shows a summary across all games played.

Examples:
  pacman scores
  pacman scores pacman --stats
  pacman scores --stats`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show aggregated play statistics")
}

func runScores(cmd *cobra.Command, args []string) {
	if flagStats && len(args) == 0 {
		runAllStats()
		return
	}

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

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Get top scores
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'pacman play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()

	if flagStats {
		stats, statsErr := store.GetGameStats(gameID)
		if statsErr != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", statsErr)
			os.Exit(1)
		}
		fmt.Printf("Best:         %d\n", stats.HighScore)
		fmt.Printf("Games played: %d\n", stats.GamesCount)
		fmt.Printf("Average:      %.0f\n", stats.AvgScore)
		fmt.Printf("Last played:  %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
		return
	}

	highScore, err := store.HighScore(gameID)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}

// runAllStats prints aggregated statistics for every game on record.
func runAllStats() {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println("Play statistics:")
	fmt.Println()
	fmt.Printf("  %-10s  %-8s  %-6s  %-8s  %s\n", "Game", "Best", "Games", "Average", "Last played")
	fmt.Printf("  %-10s  %-8s  %-6s  %-8s  %s\n", "----", "----", "-----", "-------", "-----------")

	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-10s  %-8d  %-6d  %-8.0f  %s\n",
			id, s.HighScore, s.GamesCount, s.AvgScore,
			s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
