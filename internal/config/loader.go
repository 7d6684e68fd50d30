package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/wordfind.yaml
var defaultYAML []byte

// EnvPrefix prefixes environment overrides, e.g. WORDFIND_ENGINE_WIDTH.
const EnvPrefix = "WORDFIND"

const fileName = "wordfind.yaml"

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"lang":      "language",
	"pack":      "pack",
	"db":        "storage.path",
	"log-level": "log.level",
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultYAML...)
}

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load reads the configuration.
// Search order: customPath -> ~/.wordfind/configs/wordfind.yaml -> ./configs/wordfind.yaml -> embedded default.
// The file found is merged over the embedded defaults, then WORDFIND_*
// environment variables and changed flags in flags (may be nil) override it.
func Load(customPath string, flags *pflag.FlagSet) (Config, error) {
	var cfg Config
	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewReader(defaultYAML)); err != nil {
		return cfg, fmt.Errorf("config: read defaults: %w", err)
	}

	if customPath != "" {
		v.SetConfigFile(customPath)
		if err := v.MergeInConfig(); err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
	} else if path := findConfig(); path != "" {
		// A broken user file falls back to the defaults, as with a missing one.
		v.SetConfigFile(path)
		_ = v.MergeInConfig()
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return cfg, fmt.Errorf("config: bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config: decode: %w", err)
	}
	if _, err := cfg.Engine.BuildOptions(0); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// findConfig returns the first config file found in the search path.
func findConfig() string {
	candidates := []string{filepath.Join("configs", fileName)}
	if dir := UserDir(); dir != "" {
		candidates = append([]string{filepath.Join(dir, "configs", fileName)}, candidates...)
	}
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// UserDir returns ~/.wordfind, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wordfind")
}

// UserConfigPath returns the path of the user config file.
func UserConfigPath() string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", fileName)
}

// ExpandHome replaces a leading ~ with the home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// Write saves cfg as YAML to path, creating parent directories.
func Write(cfg Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: create directory %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
