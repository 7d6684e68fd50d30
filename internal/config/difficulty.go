package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the known presets from easiest to hardest.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset parses a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
}

// ApplyPreset modifies the engine config based on a difficulty preset.
// Normal keeps whatever the loaded config says.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		// Words only read forwards: left to right, top to bottom.
		cfg.Engine.Orientations = []string{"horizontal", "vertical", "diagonal"}
		cfg.Engine.Width = 10
		cfg.Engine.Height = 10
	case DifficultyHard:
		cfg.Engine.Orientations = []string{
			"horizontal", "horizontalBack", "vertical", "verticalUp",
			"diagonal", "diagonalBack", "diagonalUp", "diagonalUpBack",
		}
		cfg.Engine.Width = 15
		cfg.Engine.Height = 15
		cfg.Engine.AllowedMissingWords = 0
		cfg.Engine.MaxGridGrowth = 2
	}
}
