// Package game implements the falling-tile arithmetic puzzle: a grid of
// numbered tiles grows from below while the player selects tiles summing
// to a rotating target to clear them.
package game

import (
	"fmt"
	"math/rand"
)

// Tile is a single numbered unit occupying one grid cell.
// Immutable once created; the ID is the only way to reference a specific
// tile instance across grid mutations, since values repeat freely.
type Tile struct {
	ID    string
	Value int
}

// TileFactory produces tiles with random values and unique identities.
// IDs are drawn from a monotonic sequence, so no two tiles created by the
// same factory ever collide. Values are uniform in [minValue, maxValue].
type TileFactory struct {
	rng      *rand.Rand
	seq      int
	minValue int
	maxValue int
}

// NewTileFactory creates a factory producing values in [minValue, maxValue].
func NewTileFactory(rng *rand.Rand, minValue, maxValue int) *TileFactory {
	if maxValue < minValue {
		maxValue = minValue
	}
	return &TileFactory{
		rng:      rng,
		minValue: minValue,
		maxValue: maxValue,
	}
}

// New creates a fresh tile with a unique ID and a random value.
func (f *TileFactory) New() Tile {
	f.seq++
	return Tile{
		ID:    fmt.Sprintf("t%d", f.seq),
		Value: f.minValue + f.rng.Intn(f.maxValue-f.minValue+1),
	}
}
