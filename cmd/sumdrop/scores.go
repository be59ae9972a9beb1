package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkravets/sumdrop/internal/registry"
	"github.com/dkravets/sumdrop/internal/storage"
)

var flagRounds bool

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 high scores for the specified mode.

Examples:
  sumdrop scores sumdrop
  sumdrop scores sumdrop_timed
  sumdrop scores sumdrop --rounds`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRounds, "rounds", false, "Show recent round history instead of top scores")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := resolveGameID(args[0])

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'sumdrop list' to see available modes.")
		os.Exit(1)
	}

	// Get mode title
	g, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := g.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRounds {
		printRounds(store, gameID, title)
		return
	}

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
		fmt.Printf("Play 'sumdrop play %s' to set the first high score!\n", gameID)
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

	// Show high score
	fmt.Println()
	highScore, err := store.HighScore(gameID)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}

// printRounds shows the recent round history for a mode.
func printRounds(store *storage.Store, gameID, title string) {
	rounds, err := store.RecentRounds(gameID, 20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recent Rounds - %s\n", title)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		return
	}

	fmt.Printf("  %-10s  %-8s  %-6s  %-9s  %s\n", "Score", "Matches", "Tiles", "Duration", "Date")
	fmt.Printf("  %-10s  %-8s  %-6s  %-9s  %s\n", "-----", "-------", "-----", "--------", "----")

	for _, r := range rounds {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		durStr := fmt.Sprintf("%ds", r.DurationMs/1000)
		fmt.Printf("  %-10d  %-8d  %-6d  %-9s  %s\n", r.Score, r.Matches, r.TilesCleared, durStr, dateStr)
	}
}
