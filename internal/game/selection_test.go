package game

import "testing"

func TestSelectionPendingThenMatch(t *testing.T) {
	g := buildGrid([][]int{
		{0, 0, 0},
		{3, 7, 5},
	})
	sel := NewSelection()

	res := sel.Toggle("r1c0", g, 15)
	if res.Outcome != OutcomePending {
		t.Fatalf("Expected pending after first toggle, got %v", res.Outcome)
	}
	if res.Sum != 3 {
		t.Errorf("Expected sum 3, got %d", res.Sum)
	}

	res = sel.Toggle("r1c1", g, 15)
	if res.Outcome != OutcomePending || res.Sum != 10 {
		t.Fatalf("Expected pending with sum 10, got %v sum %d", res.Outcome, res.Sum)
	}

	res = sel.Toggle("r1c2", g, 15)
	if res.Outcome != OutcomeMatch {
		t.Fatalf("Expected match at sum 15, got %v", res.Outcome)
	}
	if len(res.Matched) != 3 {
		t.Fatalf("Expected 3 matched IDs, got %d", len(res.Matched))
	}

	// Matched IDs are sorted and exactly the selected set
	want := []string{"r1c0", "r1c1", "r1c2"}
	for i, id := range want {
		if res.Matched[i] != id {
			t.Errorf("Matched[%d] = %q, want %q", i, res.Matched[i], id)
		}
	}
}

func TestSelectionToggleRemoves(t *testing.T) {
	g := buildGrid([][]int{
		{4, 6},
	})
	sel := NewSelection()

	sel.Toggle("r0c0", g, 20)
	res := sel.Toggle("r0c0", g, 20)
	if res.Outcome != OutcomePending {
		t.Fatalf("Deselect should leave a pending selection, got %v", res.Outcome)
	}
	if sel.Count() != 0 {
		t.Errorf("Expected empty selection after deselect, got %d", sel.Count())
	}
	if res.Sum != 0 {
		t.Errorf("Expected sum 0 after deselect, got %d", res.Sum)
	}
}

func TestSelectionOverflowHardReset(t *testing.T) {
	g := buildGrid([][]int{
		{7, 6},
	})
	sel := NewSelection()

	sel.Toggle("r0c0", g, 10)
	res := sel.Toggle("r0c1", g, 10) // 7+6 = 13 > 10
	if res.Outcome != OutcomeOverflow {
		t.Fatalf("Expected overflow, got %v", res.Outcome)
	}

	// Overflow clears everything, including previously valid picks
	if sel.Count() != 0 {
		t.Errorf("Expected empty selection after overflow, got %d tiles", sel.Count())
	}
	if sel.Sum(g) != 0 {
		t.Errorf("Expected sum 0 after overflow, got %d", sel.Sum(g))
	}
}

func TestSelectionExactSingleTile(t *testing.T) {
	g := buildGrid([][]int{
		{8, 3},
	})
	sel := NewSelection()

	res := sel.Toggle("r0c0", g, 8)
	if res.Outcome != OutcomeMatch {
		t.Fatalf("Single tile equal to target should match, got %v", res.Outcome)
	}
	if len(res.Matched) != 1 || res.Matched[0] != "r0c0" {
		t.Errorf("Matched = %v, want [r0c0]", res.Matched)
	}
}

func TestSelectionIgnoresStaleIDs(t *testing.T) {
	g := buildGrid([][]int{
		{5, 5},
	})
	sel := NewSelection()

	sel.Toggle("r0c0", g, 10)

	// Simulate the selected tile disappearing from the grid
	g.ClearAndCompact(map[string]bool{"r0c0": true})

	if sel.Sum(g) != 0 {
		t.Errorf("Sum should ignore IDs no longer on the grid, got %d", sel.Sum(g))
	}

	// The stale member must not contribute toward a match
	res := sel.Toggle("r0c1", g, 10)
	if res.Outcome != OutcomePending || res.Sum != 5 {
		t.Errorf("Expected pending with sum 5, got %v sum %d", res.Outcome, res.Sum)
	}
}
