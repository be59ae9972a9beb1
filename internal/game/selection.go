package game

import "sort"

// Outcome is the per-toggle decision of the match engine.
type Outcome int

const (
	// OutcomePending means the running sum is still below the target;
	// the selection is retained.
	OutcomePending Outcome = iota

	// OutcomeOverflow means the sum exceeded the target; the selection
	// was hard-reset to empty.
	OutcomeOverflow

	// OutcomeMatch means the sum hit the target exactly. The matched IDs
	// are reported to the caller, which clears the selection after using
	// them.
	OutcomeMatch

	// OutcomeIgnored means the toggle was rejected by round policy
	// (paused, resolving, or game over).
	OutcomeIgnored
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomeOverflow:
		return "overflow"
	case OutcomeMatch:
		return "match"
	case OutcomeIgnored:
		return "ignored"
	default:
		return "unknown"
	}
}

// ToggleResult carries the outcome of a toggle plus the resulting sum and,
// on a match, the full selected ID set.
type ToggleResult struct {
	Outcome Outcome
	Sum     int
	Matched []string // Sorted; populated only on OutcomeMatch
}

// Selection tracks the player's in-progress tile selection by identity.
// Sums are always re-resolved against the live grid, so tiles that moved
// under gravity keep contributing and identities no longer present
// contribute nothing.
type Selection struct {
	ids map[string]bool
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{ids: make(map[string]bool)}
}

// Toggle flips membership of tileID, recomputes the running sum against
// the grid, and decides the outcome versus the target. On overflow the
// selection is reset to empty — a hard reset, not a rollback of the last
// toggle.
func (s *Selection) Toggle(tileID string, g *Grid, target int) ToggleResult {
	if s.ids[tileID] {
		delete(s.ids, tileID)
	} else {
		s.ids[tileID] = true
	}

	sum := s.Sum(g)
	switch {
	case sum == target && len(s.ids) > 0:
		return ToggleResult{Outcome: OutcomeMatch, Sum: sum, Matched: s.IDs()}
	case sum > target:
		s.Clear()
		return ToggleResult{Outcome: OutcomeOverflow, Sum: 0}
	default:
		return ToggleResult{Outcome: OutcomePending, Sum: sum}
	}
}

// Sum returns the total value of selected tiles still present in the grid.
func (s *Selection) Sum(g *Grid) int {
	sum := 0
	for id := range s.ids {
		if v, ok := g.Value(id); ok {
			sum += v
		}
	}
	return sum
}

// Has reports whether the given tile identity is currently selected.
func (s *Selection) Has(id string) bool {
	return s.ids[id]
}

// Count returns the number of selected identities.
func (s *Selection) Count() int {
	return len(s.ids)
}

// IDs returns the selected identities, sorted for determinism.
func (s *Selection) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = make(map[string]bool)
}
