package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkravets/sumdrop/internal/core"
	"github.com/dkravets/sumdrop/internal/game"
	"github.com/dkravets/sumdrop/internal/platform/tui"
	"github.com/dkravets/sumdrop/internal/registry"
	"github.com/dkravets/sumdrop/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play SumDrop",
	Long: `Start playing. Without a mode argument, a mode selector is shown.

Controls:
  Arrows/WASD  - Move cursor
  Space/Enter  - Select tile
  Mouse        - Click tiles
  P            - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Modes:
  classic - A new row is pushed up after every successful match
  timed   - A new row is pushed up on a fixed interval

Examples:
  sumdrop play
  sumdrop play classic
  sumdrop play timed
  sumdrop play classic --config ./my-rules.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules config YAML")
}

// resolveGameID maps user-friendly mode names to registry IDs.
func resolveGameID(arg string) string {
	switch arg {
	case "classic":
		return "sumdrop"
	case "timed":
		return "sumdrop_timed"
	default:
		return arg
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early for the mode selector
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

	game.SetConfigPath(flagConfig)

	var gameID string
	if len(args) == 1 {
		gameID = resolveGameID(args[0])
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'sumdrop list' to see available modes.")
			os.Exit(1)
		}
	} else {
		// Show mode selector
		selection, updatedCfg, selErr := tui.RunModeSelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}
		gameID = selection.GameID
	}

	// Create game instance
	g, err := registry.Create(gameID)
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

	// Run the game
	runErr := tui.Run(g, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
