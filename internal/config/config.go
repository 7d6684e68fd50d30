// Package config provides YAML-based configuration loading and difficulty
// presets for the word-search game.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-wordfind/internal/wordsearch"
)

// Config is the full application configuration.
type Config struct {
	Language  string          `yaml:"language" mapstructure:"language"`
	Pack      string          `yaml:"pack" mapstructure:"pack"` // default word pack for play
	Engine    EngineConfig    `yaml:"engine" mapstructure:"engine"`
	Selection SelectionConfig `yaml:"selection" mapstructure:"selection"`
	Theme     ThemeConfig     `yaml:"theme" mapstructure:"theme"`
	Storage   StorageConfig   `yaml:"storage" mapstructure:"storage"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
}

// EngineConfig defines puzzle generation parameters.
type EngineConfig struct {
	Width               int      `yaml:"width" mapstructure:"width"`
	Height              int      `yaml:"height" mapstructure:"height"`
	MaxAttempts         int      `yaml:"max_attempts" mapstructure:"max_attempts"`
	MaxGridGrowth       int      `yaml:"max_grid_growth" mapstructure:"max_grid_growth"`
	AllowedMissingWords int      `yaml:"allowed_missing_words" mapstructure:"allowed_missing_words"`
	FillBlanks          bool     `yaml:"fill_blanks" mapstructure:"fill_blanks"`
	SecretWord          string   `yaml:"secret_word" mapstructure:"secret_word"`
	AllowExtraBlanks    bool     `yaml:"allow_extra_blanks" mapstructure:"allow_extra_blanks"`
	Orientations        []string `yaml:"orientations" mapstructure:"orientations"`
}

// BuildOptions converts the engine section into options for a build.
func (e EngineConfig) BuildOptions(seed int64) (wordsearch.BuildOptions, error) {
	opts := wordsearch.BuildOptions{
		AllowedMissingWords: e.AllowedMissingWords,
		MaxGridGrowth:       e.MaxGridGrowth,
		FillBlanks:          e.FillBlanks,
		SecretWord:          e.SecretWord,
		AllowExtraBlanks:    e.AllowExtraBlanks,
		MaxAttempts:         e.MaxAttempts,
		Width:               e.Width,
		Height:              e.Height,
		Seed:                seed,
	}
	for _, name := range e.Orientations {
		o, ok := wordsearch.ParseOrientation(name)
		if !ok {
			return opts, fmt.Errorf("config: unknown orientation %q", name)
		}
		opts.Orientations = append(opts.Orientations, o)
	}
	return opts, nil
}

// SelectionConfig tunes the selection state machine.
type SelectionConfig struct {
	ReorientFromStart bool `yaml:"reorient_from_start" mapstructure:"reorient_from_start"`
}

// Rules returns the selection rules.
func (s SelectionConfig) Rules() wordsearch.Rules {
	return wordsearch.Rules{ReorientFromStart: s.ReorientFromStart}
}

// ThemeConfig holds lipgloss colors (ANSI numbers or hex) for the board.
type ThemeConfig struct {
	Letter   string `yaml:"letter" mapstructure:"letter"`
	Focus    string `yaml:"focus" mapstructure:"focus"`
	Selected string `yaml:"selected" mapstructure:"selected"`
	Found    string `yaml:"found" mapstructure:"found"`
	Solved   string `yaml:"solved" mapstructure:"solved"`
	Status   string `yaml:"status" mapstructure:"status"`
}

// StorageConfig locates the saved word-list database.
type StorageConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
	File  string `yaml:"file" mapstructure:"file"` // used while the TUI owns the terminal
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address" mapstructure:"address"`
	HostKey            string `yaml:"host_key" mapstructure:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes" mapstructure:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}
