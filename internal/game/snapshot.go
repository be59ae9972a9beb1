package game

// Snapshot captures the observable game state for determinism testing
// and replay.
type Snapshot struct {
	Tick            uint64
	Mode            string
	Phase           string
	Score           int
	HighScore       int
	Target          int
	SelectedCount   int
	SelectionSum    int
	Occupied        int
	TopRowOccupied  bool
	TimeRemainingMs int
	CursorRow       int
	CursorCol       int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:            g.tick,
		Mode:            string(g.mode),
		Phase:           g.round.Phase().String(),
		Score:           g.round.Score(),
		HighScore:       g.round.HighScore(),
		Target:          g.round.Target(),
		SelectedCount:   g.round.Selection().Count(),
		SelectionSum:    g.round.Selection().Sum(g.round.Grid()),
		Occupied:        g.round.Grid().OccupiedCount(),
		TopRowOccupied:  g.round.Grid().TopRowOccupied(),
		TimeRemainingMs: g.round.TimeRemainingMs(),
		CursorRow:       g.cursorRow,
		CursorCol:       g.cursorCol,
	}
}
