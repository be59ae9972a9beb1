package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score seen so far (this process)
	GameOver  bool // Whether the game has ended
	Paused    bool // Whether the game is paused
}

// EventKind identifies a discrete game event surfaced to the platform.
type EventKind int

const (
	// EventMatched fires when a selection matched the target and tiles
	// were scheduled for clearing. Count is the number of cleared tiles
	// and IDs their identities.
	EventMatched EventKind = iota

	// EventBigClear fires after a match of BigClearSize or more tiles
	// finished resolving. The platform may celebrate.
	EventBigClear

	// EventGameOver fires once when the round ends. Score is final.
	EventGameOver

	// EventNewHighScore fires whenever the score first exceeds the
	// previous best. Score carries the new best value.
	EventNewHighScore
)

// Event is a discrete occurrence emitted by a game during a step.
type Event struct {
	Kind  EventKind
	Count int      // Cleared tile count for EventMatched/EventBigClear
	IDs   []string // Cleared tile identities for EventMatched
	Score int      // Score value for EventGameOver/EventNewHighScore
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
