package game

import (
	"testing"

	"github.com/dkravets/sumdrop/internal/config"
	"github.com/dkravets/sumdrop/internal/core"
)

// startRound starts a round and swaps in a hand-built grid and target so
// the match flow is fully deterministic.
func startRound(mode Mode, values [][]int, target int) *Round {
	r := NewRound(config.DefaultGameConfig(), 7)
	r.Start(mode)
	r.grid = buildGrid(values)
	r.target = target
	return r
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestRoundMatchScoresAndResolves(t *testing.T) {
	r := startRound(ModeClassic, [][]int{
		{0, 0},
		{0, 0},
		{4, 6},
	}, 10)

	if out := r.ToggleTile("r2c0"); out != OutcomePending {
		t.Fatalf("First toggle should be pending, got %v", out)
	}
	if out := r.ToggleTile("r2c1"); out != OutcomeMatch {
		t.Fatalf("Second toggle should match (4+6=10), got %v", out)
	}

	// Score is granted at match time: 2 tiles * 10 points
	if r.Score() != 20 {
		t.Errorf("Expected score 20, got %d", r.Score())
	}
	if r.Phase() != PhaseResolving {
		t.Errorf("Expected resolving phase, got %v", r.Phase())
	}

	events := r.DrainEvents()
	if !hasEvent(events, core.EventMatched) {
		t.Error("Expected an EventMatched")
	}
	if !hasEvent(events, core.EventNewHighScore) {
		t.Error("Expected an immediate EventNewHighScore")
	}

	// The matched event carries the cleared tile identities
	for _, e := range events {
		if e.Kind != core.EventMatched {
			continue
		}
		if len(e.IDs) != 2 || e.IDs[0] != "r2c0" || e.IDs[1] != "r2c1" {
			t.Errorf("EventMatched IDs = %v, want [r2c0 r2c1]", e.IDs)
		}
	}

	// Matched tiles stay visible until the resolve delay elapses
	if r.Grid().TileAt(2, 0) == nil || r.Grid().TileAt(2, 1) == nil {
		t.Fatal("Matched tiles must remain on the grid while resolving")
	}
	if len(r.ClearingIDs()) != 2 {
		t.Errorf("Expected 2 clearing IDs, got %d", len(r.ClearingIDs()))
	}

	// Clicks during resolution are ignored
	if out := r.ToggleTile("r2c0"); out != OutcomeIgnored {
		t.Errorf("Toggle while resolving should be ignored, got %v", out)
	}

	// One tick short of the delay: still resolving
	r.Tick(449)
	if r.Phase() != PhaseResolving {
		t.Fatal("Resolve delay should not have elapsed yet")
	}

	r.Tick(1)
	if r.Phase() != PhasePlaying {
		t.Fatalf("Expected playing after resolve, got %v", r.Phase())
	}

	// Matched tiles are gone; classic mode injected a fresh bottom row
	if r.Grid().TileAt(2, 0) == nil || r.Grid().TileAt(2, 1) == nil {
		t.Error("Classic mode should inject a new bottom row after the clear")
	}
	if v, _ := r.Grid().Value("r2c0"); v != 0 {
		t.Error("Original matched tile should have been removed")
	}

	// Fresh target and empty selection
	if r.Target() < 10 || r.Target() > 25 {
		t.Errorf("New target %d outside configured range", r.Target())
	}
	if r.Selection().Count() != 0 {
		t.Error("Selection should be empty after resolution")
	}

	stats := r.Stats()
	if stats.Matches != 1 || stats.TilesCleared != 2 {
		t.Errorf("Stats = %+v, want 1 match / 2 tiles", stats)
	}
}

func TestRoundBigClearEvent(t *testing.T) {
	r := startRound(ModeClassic, [][]int{
		{0, 0, 0, 0},
		{2, 3, 4, 1},
	}, 10)

	r.ToggleTile("r1c0")
	r.ToggleTile("r1c1")
	r.ToggleTile("r1c2")
	if out := r.ToggleTile("r1c3"); out != OutcomeMatch {
		t.Fatalf("Expected match on 2+3+4+1, got %v", out)
	}
	r.DrainEvents()

	r.Tick(450)
	events := r.DrainEvents()
	if !hasEvent(events, core.EventBigClear) {
		t.Fatal("Clearing 4 tiles should emit EventBigClear")
	}
	for _, e := range events {
		if e.Kind == core.EventBigClear && e.Count != 4 {
			t.Errorf("BigClear count = %d, want 4", e.Count)
		}
	}

	if r.Score() != 40 {
		t.Errorf("Expected score 40 for 4 tiles, got %d", r.Score())
	}
}

func TestRoundOverflowKeepsPlaying(t *testing.T) {
	r := startRound(ModeClassic, [][]int{
		{7, 6},
	}, 10)

	r.ToggleTile("r0c0")
	if out := r.ToggleTile("r0c1"); out != OutcomeOverflow {
		t.Fatalf("Expected overflow on 7+6 vs 10, got %v", out)
	}

	if r.Phase() != PhasePlaying {
		t.Errorf("Overflow should not change phase, got %v", r.Phase())
	}
	if r.Score() != 0 {
		t.Errorf("Overflow should not score, got %d", r.Score())
	}
	if r.Selection().Count() != 0 {
		t.Error("Overflow should hard-reset the selection")
	}
}

func TestTimedModeInjection(t *testing.T) {
	r := startRound(ModeTimed, [][]int{
		{0, 0},
		{0, 0},
		{0, 0},
		{5, 5},
	}, 10)

	before := r.Grid().OccupiedCount()

	// Cumulative ticks below the interval: no injection
	r.Tick(3000)
	r.Tick(3000)
	if r.Grid().OccupiedCount() != before {
		t.Fatal("Row injected before the interval elapsed")
	}

	// Crossing the interval injects exactly one row and resets the timer
	r.Tick(3000)
	if r.Grid().OccupiedCount() != before+2 {
		t.Errorf("Expected one injected row (+2 tiles), got %d -> %d", before, r.Grid().OccupiedCount())
	}
	if r.TimeRemainingMs() != 8000 {
		t.Errorf("Timer should reset to 8000, got %d", r.TimeRemainingMs())
	}
}

func TestClassicModeIgnoresClock(t *testing.T) {
	r := startRound(ModeClassic, [][]int{
		{0, 0},
		{5, 5},
	}, 10)

	before := r.Grid().OccupiedCount()
	r.Tick(60000)
	if r.Grid().OccupiedCount() != before {
		t.Error("Classic mode must not inject rows on the clock")
	}
}

func TestRoundPauseBlocksEverything(t *testing.T) {
	r := startRound(ModeTimed, [][]int{
		{0, 0},
		{5, 5},
	}, 10)

	r.Pause()
	if r.Phase() != PhasePaused {
		t.Fatalf("Expected paused, got %v", r.Phase())
	}

	// Clicks are ignored while paused
	if out := r.ToggleTile("r1c0"); out != OutcomeIgnored {
		t.Errorf("Toggle while paused should be ignored, got %v", out)
	}

	// The injection countdown is frozen
	remaining := r.TimeRemainingMs()
	r.Tick(5000)
	if r.TimeRemainingMs() != remaining {
		t.Error("Tick while paused must not advance the injection timer")
	}

	// Pause is idempotent; resume returns to play
	r.Pause()
	r.Resume()
	if r.Phase() != PhasePlaying {
		t.Errorf("Expected playing after resume, got %v", r.Phase())
	}

	// Resume when not paused is a no-op
	r.Resume()
	if r.Phase() != PhasePlaying {
		t.Errorf("Redundant resume changed phase to %v", r.Phase())
	}
}

func TestRoundGameOverTerminal(t *testing.T) {
	// Full board: the suppressed injection still triggers the death check
	r := startRound(ModeTimed, [][]int{
		{1, 2},
		{3, 4},
	}, 10)

	r.Tick(8000)
	if r.Phase() != PhaseGameOver {
		t.Fatalf("Expected game over with a full top row, got %v", r.Phase())
	}

	events := r.DrainEvents()
	if !hasEvent(events, core.EventGameOver) {
		t.Error("Expected an EventGameOver")
	}

	// Terminal: no further clicks or ticks have any effect
	if out := r.ToggleTile("r0c0"); out != OutcomeIgnored {
		t.Errorf("Toggle after game over should be ignored, got %v", out)
	}
	r.Tick(8000)
	if evs := r.DrainEvents(); len(evs) != 0 {
		t.Errorf("No events expected after game over, got %v", evs)
	}
	if r.Phase() != PhaseGameOver {
		t.Errorf("Game over must be terminal, got %v", r.Phase())
	}
}

func TestRoundHighScoreSeedingOnlyRaises(t *testing.T) {
	r := NewRound(config.DefaultGameConfig(), 7)
	r.SetHighScore(100)
	r.SetHighScore(50)
	if r.HighScore() != 100 {
		t.Errorf("SetHighScore must only raise, got %d", r.HighScore())
	}
}

func TestRoundResetKeepsHighScore(t *testing.T) {
	r := startRound(ModeClassic, [][]int{
		{0, 0},
		{4, 6},
	}, 10)
	r.SetHighScore(5)

	r.ToggleTile("r1c0")
	r.ToggleTile("r1c1")
	if r.HighScore() != 20 {
		t.Fatalf("Expected high score 20, got %d", r.HighScore())
	}

	r.Reset()
	if r.Score() != 0 {
		t.Errorf("Reset should zero the score, got %d", r.Score())
	}
	if r.HighScore() != 20 {
		t.Errorf("Reset should keep the high score, got %d", r.HighScore())
	}
	if r.Phase() != PhasePlaying {
		t.Errorf("Reset should restart play, got %v", r.Phase())
	}
}

func TestRoundReturnToMenu(t *testing.T) {
	r := startRound(ModeClassic, [][]int{
		{0, 0},
		{4, 6},
	}, 10)

	r.ToggleTile("r1c0")
	r.ReturnToMenu()

	if r.Phase() != PhaseIdle {
		t.Errorf("Expected idle phase, got %v", r.Phase())
	}
	if r.Selection().Count() != 0 {
		t.Error("ReturnToMenu should clear the selection")
	}
}

func TestRoundResolveWithholdsInjectionTimer(t *testing.T) {
	r := startRound(ModeTimed, [][]int{
		{0, 0},
		{0, 0},
		{4, 6},
	}, 10)

	r.ToggleTile("r2c0")
	r.ToggleTile("r2c1")
	if r.Phase() != PhaseResolving {
		t.Fatal("Expected resolving phase")
	}

	// A huge tick only finishes the resolve; the injection countdown is
	// withheld while resolving.
	r.Tick(8000)
	if r.Phase() != PhasePlaying {
		t.Fatalf("Expected playing after resolve, got %v", r.Phase())
	}
	if r.TimeRemainingMs() != 8000 {
		t.Errorf("Injection timer should be untouched during resolve, got %d", r.TimeRemainingMs())
	}
}

func TestRoundTargetRange(t *testing.T) {
	r := NewRound(config.DefaultGameConfig(), 99)
	for i := 0; i < 200; i++ {
		target := r.nextTarget()
		if target < 10 || target > 25 {
			t.Fatalf("Target %d outside [10,25]", target)
		}
	}
}
