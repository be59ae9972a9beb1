package game

// Grid is a fixed rows×cols matrix of optional tiles. Row 0 is the death
// row: any tile reaching it ends the round. Tiles never float — after any
// clear, each column's survivors are compacted to the bottom.
//
// The grid is mutated only by InjectRow and ClearAndCompact.
type Grid struct {
	rows  int
	cols  int
	cells [][]*Tile // cells[row][col], row 0 at top
}

// NewGrid creates a grid with the bottom initialRows rows fully populated
// from the factory and all other cells empty.
func NewGrid(rows, cols, initialRows int, f *TileFactory) *Grid {
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([][]*Tile, rows),
	}
	for r := range g.cells {
		g.cells[r] = make([]*Tile, cols)
	}
	for r := rows - initialRows; r < rows; r++ {
		for c := 0; c < cols; c++ {
			t := f.New()
			g.cells[r][c] = &t
		}
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// TileAt returns the tile at (row, col), or nil if the cell is empty or
// out of bounds.
func (g *Grid) TileAt(row, col int) *Tile {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return nil
	}
	return g.cells[row][col]
}

// Value looks up a tile by identity and returns its value.
// Returns false if no tile with that ID is present.
func (g *Grid) Value(id string) (int, bool) {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if t := g.cells[r][c]; t != nil && t.ID == id {
				return t.Value, true
			}
		}
	}
	return 0, false
}

// TopRowOccupied reports whether the death row holds at least one tile.
// This is the single game-over predicate; callers re-check it after every
// injection and every post-clear compaction.
func (g *Grid) TopRowOccupied() bool {
	for c := 0; c < g.cols; c++ {
		if g.cells[0][c] != nil {
			return true
		}
	}
	return false
}

// InjectRow shifts every row up by one and places a fresh fully-populated
// row at the bottom. Injection is suppressed (no-op, returns false) when
// the death row is occupied; the caller detects that condition separately
// as game over.
func (g *Grid) InjectRow(f *TileFactory) bool {
	if g.TopRowOccupied() {
		return false
	}
	for r := 0; r < g.rows-1; r++ {
		g.cells[r] = g.cells[r+1]
	}
	bottom := make([]*Tile, g.cols)
	for c := 0; c < g.cols; c++ {
		t := f.New()
		bottom[c] = &t
	}
	g.cells[g.rows-1] = bottom
	return true
}

// ClearAndCompact removes every tile whose identity is in idsToRemove,
// then compacts each column downward preserving the relative vertical
// order of survivors. Columns are independent. Returns the number of
// tiles actually removed.
func (g *Grid) ClearAndCompact(idsToRemove map[string]bool) int {
	removed := 0
	for c := 0; c < g.cols; c++ {
		// Survivors top to bottom
		var keep []*Tile
		for r := 0; r < g.rows; r++ {
			t := g.cells[r][c]
			if t == nil {
				continue
			}
			if idsToRemove[t.ID] {
				removed++
				continue
			}
			keep = append(keep, t)
		}

		// Re-place at the bottom of the column
		for r := 0; r < g.rows; r++ {
			g.cells[r][c] = nil
		}
		base := g.rows - len(keep)
		for i, t := range keep {
			g.cells[base+i][c] = t
		}
	}
	return removed
}

// OccupiedCount returns the number of non-empty cells.
func (g *Grid) OccupiedCount() int {
	n := 0
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] != nil {
				n++
			}
		}
	}
	return n
}
