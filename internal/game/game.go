package game

import (
	"github.com/dkravets/sumdrop/internal/config"
	"github.com/dkravets/sumdrop/internal/core"
	"github.com/dkravets/sumdrop/internal/registry"
)

// Layout constants for rendering and mouse mapping.
const (
	cellWidth  = 4 // Width of each cell including the left border
	cellHeight = 2 // Height of each cell including the top border
	hudHeight  = 3
)

// Game adapts the round state machine to the platform's tick-driven
// Game interface: it maps input actions to round operations, pushes
// elapsed milliseconds into the round each step, and renders the state.
type Game struct {
	mode  Mode
	rules config.GameConfig
	round *Round

	tick   uint64
	stepMs int // Milliseconds of round time per platform tick

	cursorRow int
	cursorCol int

	screenW  int
	screenH  int
	boardX   int
	boardY   int
	tooSmall bool

	// Big-clear banner countdown, in ticks
	flashTicks int
	flashCount int

	best int // Carried across in-process restarts
}

// Package-level config path, set by the CLI before game creation.
var configPath string

// SetConfigPath sets the rules config file path.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a classic-mode game (row injected after every match).
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewTimed creates a timed-mode game (row injected every few seconds).
func NewTimed() *Game {
	return &Game{mode: ModeTimed}
}

func init() {
	registry.Register("sumdrop", func() registry.Game {
		return New()
	})
	registry.Register("sumdrop_timed", func() registry.Game {
		return NewTimed()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeTimed {
		return "sumdrop_timed"
	}
	return "sumdrop"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeTimed {
		return "SumDrop (Timed)"
	}
	return "SumDrop"
}

// SetHighScore seeds the best score from persistence.
func (g *Game) SetHighScore(v int) {
	if v > g.best {
		g.best = v
	}
	if g.round != nil {
		g.round.SetHighScore(v)
	}
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	rules, err := config.LoadGame(configPath)
	if err != nil {
		rules = config.DefaultGameConfig()
	}
	g.rules = rules

	g.tick = 0
	g.flashTicks = 0
	g.flashCount = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.stepMs = core.Max(1, 1000/tickRate)

	g.round = NewRound(rules, cfg.Seed)
	g.round.SetHighScore(g.best)
	g.round.Start(g.mode)

	g.cursorRow = rules.Board.Rows - 1
	g.cursorCol = 0

	g.layout()
}

// layout computes the board position and checks the screen size.
func (g *Game) layout() {
	boardW := g.rules.Board.Cols*cellWidth + 1
	boardH := g.rules.Board.Rows*cellHeight + 1
	g.boardX = (g.screenW - boardW) / 2
	g.boardY = hudHeight

	minW := boardW + 2
	minH := hudHeight + boardH
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	phase := g.round.Phase()

	// Restart after game over, or start from the idle splash
	if in.Has(core.ActionRestart) && (phase == PhaseGameOver || phase == PhaseIdle) {
		g.round.Reset()
		g.cursorRow = g.rules.Board.Rows - 1
		g.cursorCol = 0
		g.flashTicks = 0
		return core.StepResult{State: g.State(), Events: g.round.DrainEvents()}
	}

	// Pause toggle
	if in.Has(core.ActionPause) {
		if phase == PhasePaused {
			g.round.Resume()
		} else {
			g.round.Pause()
		}
		phase = g.round.Phase()
	}

	// Back abandons the round to the idle splash
	if in.Has(core.ActionBack) && (phase == PhasePaused || phase == PhaseGameOver) {
		g.round.ReturnToMenu()
		phase = PhaseIdle
	}

	if phase == PhasePlaying {
		g.moveCursor(in)
		if in.Has(core.ActionSelect) {
			g.toggleAtCursor()
		}
		if in.Clicked {
			g.handleClick(in.ClickX, in.ClickY)
		}
	}

	g.round.Tick(g.stepMs)

	events := g.round.DrainEvents()
	for _, ev := range events {
		if ev.Kind == core.EventBigClear {
			g.flashTicks = 90 // ~1.5 seconds at 60 FPS
			g.flashCount = ev.Count
		}
	}
	if g.flashTicks > 0 {
		g.flashTicks--
	}

	g.best = g.round.HighScore()

	return core.StepResult{State: g.State(), Events: events}
}

// moveCursor shifts the selection cursor within grid bounds.
func (g *Game) moveCursor(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.cursorRow = core.Max(0, g.cursorRow-1)
	case in.Has(core.ActionDown):
		g.cursorRow = core.Min(g.rules.Board.Rows-1, g.cursorRow+1)
	case in.Has(core.ActionLeft):
		g.cursorCol = core.Max(0, g.cursorCol-1)
	case in.Has(core.ActionRight):
		g.cursorCol = core.Min(g.rules.Board.Cols-1, g.cursorCol+1)
	}
}

// toggleAtCursor toggles the tile under the cursor, if any.
func (g *Game) toggleAtCursor() {
	t := g.round.Grid().TileAt(g.cursorRow, g.cursorCol)
	if t == nil {
		return
	}
	g.round.ToggleTile(t.ID)
}

// handleClick maps a screen-cell click to a grid cell and toggles it.
func (g *Game) handleClick(x, y int) {
	relX := x - g.boardX
	relY := y - g.boardY
	if relX < 0 || relY < 0 {
		return
	}
	col := relX / cellWidth
	row := relY / cellHeight
	if row >= g.rules.Board.Rows || col >= g.rules.Board.Cols {
		return
	}
	g.cursorRow = row
	g.cursorCol = col
	g.toggleAtCursor()
}

// ModeName returns the injection mode as a string, for persistence.
func (g *Game) ModeName() string {
	return string(g.mode)
}

// RoundStats returns the current round's counters.
func (g *Game) RoundStats() RoundStats {
	return g.round.Stats()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.round.Score(),
		HighScore: g.round.HighScore(),
		GameOver:  g.round.Phase() == PhaseGameOver,
		Paused:    g.round.Phase() == PhasePaused || g.tooSmall,
	}
}
