// sumdrop is a falling-tile arithmetic puzzle played in the terminal.
//
// Usage:
//
//	sumdrop list              - List available modes
//	sumdrop play [mode]       - Play (classic or timed)
//	sumdrop menu              - Start menu to pick a mode interactively
//	sumdrop serve             - Start SSH server for remote play
//	sumdrop scores <mode>     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.sumdrop/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its modes
	_ "github.com/dkravets/sumdrop/internal/game"
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
	Use:   "sumdrop",
	Short: "SumDrop - Clear number tiles by matching sum targets",
	Long: `SumDrop is a terminal puzzle game. Tiles carry numbers; pick a set
whose values add up to the target before the board fills to the top.

Available commands:
  list     - Show all available modes
  play     - Play directly (classic or timed)
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  sumdrop list
  sumdrop play classic
  sumdrop menu
  sumdrop serve --ssh :2222
  sumdrop scores sumdrop`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sumdrop/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
