// Package config provides YAML-based rules loading for the game.
package config

// GameConfig contains all tunable rules for a round.
type GameConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Tiles   TilesConfig   `yaml:"tiles"`
	Target  TargetConfig  `yaml:"target"`
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Rows        int `yaml:"rows"`
	Cols        int `yaml:"cols"`
	InitialRows int `yaml:"initial_rows"` // Bottom rows populated at round start
}

// TilesConfig defines the tile value range.
type TilesConfig struct {
	MinValue int `yaml:"min_value"`
	MaxValue int `yaml:"max_value"`
}

// TargetConfig defines the sum target range.
type TargetConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// TimingConfig defines timer-driven behavior in milliseconds.
type TimingConfig struct {
	InjectIntervalMs int `yaml:"inject_interval_ms"` // Timed mode row cadence
	ResolveDelayMs   int `yaml:"resolve_delay_ms"`   // Matched tiles stay visible this long
}

// ScoringConfig defines score accounting.
type ScoringConfig struct {
	PointsPerTile int `yaml:"points_per_tile"`
	BigClearSize  int `yaml:"big_clear_size"` // Cleared-tile count that triggers a celebration
}

// Normalize fills zero-valued fields from the defaults so a partial
// YAML file only overrides what it names.
func (c *GameConfig) Normalize() {
	d := DefaultGameConfig()
	if c.Board.Rows <= 0 {
		c.Board.Rows = d.Board.Rows
	}
	if c.Board.Cols <= 0 {
		c.Board.Cols = d.Board.Cols
	}
	if c.Board.InitialRows <= 0 {
		c.Board.InitialRows = d.Board.InitialRows
	}
	if c.Board.InitialRows >= c.Board.Rows {
		c.Board.InitialRows = c.Board.Rows - 1
	}
	if c.Tiles.MinValue <= 0 {
		c.Tiles.MinValue = d.Tiles.MinValue
	}
	if c.Tiles.MaxValue < c.Tiles.MinValue {
		c.Tiles.MaxValue = d.Tiles.MaxValue
	}
	if c.Target.Min <= 0 {
		c.Target.Min = d.Target.Min
	}
	if c.Target.Max < c.Target.Min {
		c.Target.Max = d.Target.Max
	}
	if c.Timing.InjectIntervalMs <= 0 {
		c.Timing.InjectIntervalMs = d.Timing.InjectIntervalMs
	}
	if c.Timing.ResolveDelayMs <= 0 {
		c.Timing.ResolveDelayMs = d.Timing.ResolveDelayMs
	}
	if c.Scoring.PointsPerTile <= 0 {
		c.Scoring.PointsPerTile = d.Scoring.PointsPerTile
	}
	if c.Scoring.BigClearSize <= 0 {
		c.Scoring.BigClearSize = d.Scoring.BigClearSize
	}
}
