package game

import (
	"math/rand"

	"github.com/dkravets/sumdrop/internal/config"
	"github.com/dkravets/sumdrop/internal/core"
)

// Mode selects the row-injection policy.
type Mode string

const (
	// ModeClassic injects a row after every successful match.
	ModeClassic Mode = "classic"
	// ModeTimed injects a row on a fixed wall-clock interval.
	ModeTimed Mode = "timed"
)

// Phase is the round lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhasePaused
	PhaseResolving
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseResolving:
		return "resolving"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// RoundStats aggregates per-round counters saved at game over.
type RoundStats struct {
	Matches      int
	TilesCleared int
	ElapsedMs    int
}

// Round is the state machine orchestrating one game: it owns the grid,
// target, selection, and score, and processes one external event at a
// time (toggle, pause/resume, timer tick) to completion.
//
// Time is pushed in from outside via Tick(deltaMs); the round never reads
// a wall clock, which keeps resolution delays and timed-mode injection
// deterministic under synthetic ticks.
type Round struct {
	rules   config.GameConfig
	rng     *rand.Rand
	factory *TileFactory

	mode  Mode
	phase Phase

	grid *Grid
	sel  *Selection

	target    int
	score     int
	highScore int

	timeRemainingMs    int // Timed mode countdown to the next injection
	resolveRemainingMs int // Countdown while matched tiles stay visible
	pendingClear       []string
	pendingCount       int

	stats  RoundStats
	events []core.Event
}

// NewRound creates a round with the given rules and RNG seed.
// The round starts in the idle phase; call Start to begin play.
func NewRound(rules config.GameConfig, seed int64) *Round {
	rng := rand.New(rand.NewSource(seed))
	return &Round{
		rules:   rules,
		rng:     rng,
		factory: NewTileFactory(rng, rules.Tiles.MinValue, rules.Tiles.MaxValue),
		phase:   PhaseIdle,
		sel:     NewSelection(),
	}
}

// SetHighScore seeds the best score from persistence. Only raises.
func (r *Round) SetHighScore(v int) {
	if v > r.highScore {
		r.highScore = v
	}
}

// Start begins a fresh round in the given mode: new grid with the bottom
// rows populated, fresh target, zero score, empty selection, timer reset.
func (r *Round) Start(mode Mode) {
	r.mode = mode
	r.grid = NewGrid(r.rules.Board.Rows, r.rules.Board.Cols, r.rules.Board.InitialRows, r.factory)
	r.sel = NewSelection()
	r.score = 0
	r.target = r.nextTarget()
	r.timeRemainingMs = r.rules.Timing.InjectIntervalMs
	r.resolveRemainingMs = 0
	r.pendingClear = nil
	r.pendingCount = 0
	r.stats = RoundStats{}
	r.phase = PhasePlaying
}

// Reset restarts the round in the same mode. High score is retained.
func (r *Round) Reset() {
	r.Start(r.mode)
}

// ReturnToMenu abandons the round and returns to the idle phase.
func (r *Round) ReturnToMenu() {
	r.phase = PhaseIdle
	r.pendingClear = nil
	r.pendingCount = 0
	r.sel.Clear()
}

// Pause suspends play. Ignored unless currently playing.
func (r *Round) Pause() {
	if r.phase == PhasePlaying {
		r.phase = PhasePaused
	}
}

// Resume continues a paused round. Ignored unless currently paused.
func (r *Round) Resume() {
	if r.phase == PhasePaused {
		r.phase = PhasePlaying
	}
}

// ToggleTile routes a tile click to the match engine. Clicks while
// paused, resolving, or after game over are ignored.
//
// On a match the cleared tiles stay on the grid (marked for the renderer
// via ClearingIDs) until the resolve delay elapses in Tick.
func (r *Round) ToggleTile(id string) Outcome {
	if r.phase != PhasePlaying {
		return OutcomeIgnored
	}

	res := r.sel.Toggle(id, r.grid, r.target)
	if res.Outcome == OutcomeMatch {
		n := len(res.Matched)
		r.pendingClear = res.Matched
		r.pendingCount = n
		r.addScore(n * r.rules.Scoring.PointsPerTile)
		r.resolveRemainingMs = r.rules.Timing.ResolveDelayMs
		r.phase = PhaseResolving
		r.emit(core.Event{Kind: core.EventMatched, Count: n, IDs: res.Matched})
	}
	return res.Outcome
}

// Tick advances round-owned timers by deltaMs. Ticks are no-ops while
// idle, paused, or after game over. While resolving, only the resolve
// countdown advances; the injection timer is withheld.
func (r *Round) Tick(deltaMs int) {
	if deltaMs <= 0 {
		return
	}

	switch r.phase {
	case PhaseResolving:
		r.stats.ElapsedMs += deltaMs
		r.resolveRemainingMs -= deltaMs
		if r.resolveRemainingMs <= 0 {
			r.finishResolve()
		}

	case PhasePlaying:
		r.stats.ElapsedMs += deltaMs
		if r.mode != ModeTimed {
			return
		}
		r.timeRemainingMs -= deltaMs
		if r.timeRemainingMs <= 0 {
			r.grid.InjectRow(r.factory)
			r.timeRemainingMs = r.rules.Timing.InjectIntervalMs
			r.checkGameOver()
		}
	}
}

// finishResolve applies the deferred effects of a match, in order:
// compaction, new target, selection reset, classic-mode injection,
// game-over check, celebration event.
func (r *Round) finishResolve() {
	cleared := r.pendingCount
	r.grid.ClearAndCompact(idSet(r.pendingClear))
	r.pendingClear = nil
	r.pendingCount = 0
	r.resolveRemainingMs = 0

	r.stats.Matches++
	r.stats.TilesCleared += cleared

	r.target = r.nextTarget()
	r.sel.Clear()

	if r.mode == ModeClassic {
		r.grid.InjectRow(r.factory)
	}

	r.phase = PhasePlaying
	r.checkGameOver()

	if cleared >= r.rules.Scoring.BigClearSize {
		r.emit(core.Event{Kind: core.EventBigClear, Count: cleared})
	}
}

// checkGameOver re-evaluates the death-row predicate after a grid
// mutation and makes game over terminal.
func (r *Round) checkGameOver() {
	if r.phase == PhaseGameOver || !r.grid.TopRowOccupied() {
		return
	}
	r.phase = PhaseGameOver
	r.emit(core.Event{Kind: core.EventGameOver, Score: r.score})
}

// addScore increments the score and reports a new high score immediately,
// not only at game over.
func (r *Round) addScore(pts int) {
	r.score += pts
	if r.score > r.highScore {
		r.highScore = r.score
		r.emit(core.Event{Kind: core.EventNewHighScore, Score: r.highScore})
	}
}

// nextTarget rolls a uniform target in [Target.Min, Target.Max].
// Targets are independent of board contents; an unsolvable target is
// resolved only by new tiles appearing.
func (r *Round) nextTarget() int {
	span := r.rules.Target.Max - r.rules.Target.Min + 1
	return r.rules.Target.Min + r.rng.Intn(span)
}

func (r *Round) emit(e core.Event) {
	r.events = append(r.events, e)
}

// DrainEvents returns and clears the events accumulated since the last
// drain.
func (r *Round) DrainEvents() []core.Event {
	evs := r.events
	r.events = nil
	return evs
}

// Phase returns the current lifecycle phase.
func (r *Round) Phase() Phase {
	return r.phase
}

// Mode returns the round's injection policy.
func (r *Round) Mode() Mode {
	return r.mode
}

// Score returns the current score.
func (r *Round) Score() int {
	return r.score
}

// HighScore returns the best score seen so far.
func (r *Round) HighScore() int {
	return r.highScore
}

// Target returns the current sum target.
func (r *Round) Target() int {
	return r.target
}

// Grid returns the live grid. Callers must not mutate it.
func (r *Round) Grid() *Grid {
	return r.grid
}

// Selection returns the live selection engine.
func (r *Round) Selection() *Selection {
	return r.sel
}

// TimeRemainingMs returns the countdown to the next timed-mode injection.
func (r *Round) TimeRemainingMs() int {
	return r.timeRemainingMs
}

// ClearingIDs returns the identities currently marked for removal while
// the round is resolving, for the renderer to highlight.
func (r *Round) ClearingIDs() map[string]bool {
	return idSet(r.pendingClear)
}

// Stats returns the per-round counters.
func (r *Round) Stats() RoundStats {
	return r.stats
}

func idSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
