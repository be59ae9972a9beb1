package tui

import (
	"path/filepath"
	"testing"

	"github.com/dkravets/sumdrop/internal/core"
	"github.com/dkravets/sumdrop/internal/game"
	"github.com/dkravets/sumdrop/internal/storage"
)

func testStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestHighScoreWrittenMidRound(t *testing.T) {
	store := testStore(t)
	g := game.New()
	cfg := core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24, TickRate: 60}
	m := NewModel(g, store, cfg)

	// A new high score reaches the store before game over, so quitting
	// mid-round keeps it
	m.persistEvents([]core.Event{{Kind: core.EventNewHighScore, Score: 120}})

	hs, err := store.HighScore(g.ID())
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 120 {
		t.Errorf("Stored high score = %d, want 120", hs)
	}
}

func TestGameOverSaveSkipsWrittenScore(t *testing.T) {
	store := testStore(t)
	g := game.New()
	cfg := core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24, TickRate: 60}
	m := NewModel(g, store, cfg)
	g.Reset(cfg)

	m.persistEvents([]core.Event{{Kind: core.EventNewHighScore, Score: 90}})
	m.gameState = m.game.State()
	m.gameState.Score = 90
	m.saveResults()

	scores, err := store.TopScores(g.ID(), 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected a single stored score, got %d", len(scores))
	}
	if scores[0].Score != 90 {
		t.Errorf("Stored score = %d, want 90", scores[0].Score)
	}
}

func TestHighScoreWriteOnlyRaises(t *testing.T) {
	store := testStore(t)
	g := game.New()
	cfg := core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24, TickRate: 60}
	m := NewModel(g, store, cfg)

	m.persistEvents([]core.Event{
		{Kind: core.EventNewHighScore, Score: 50},
		{Kind: core.EventNewHighScore, Score: 50},
	})

	scores, err := store.TopScores(g.ID(), 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Errorf("Repeated event at the same score should write once, got %d rows", len(scores))
	}
}
