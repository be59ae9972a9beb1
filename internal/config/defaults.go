package config

import (
	_ "embed"
)

//go:embed defaults/sumdrop.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default rules.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Board: BoardConfig{
			Rows:        10,
			Cols:        6,
			InitialRows: 3,
		},
		Tiles: TilesConfig{
			MinValue: 1,
			MaxValue: 9,
		},
		Target: TargetConfig{
			Min: 10,
			Max: 25,
		},
		Timing: TimingConfig{
			InjectIntervalMs: 8000,
			ResolveDelayMs:   450,
		},
		Scoring: ScoringConfig{
			PointsPerTile: 10,
			BigClearSize:  4,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultGameYAML
}
