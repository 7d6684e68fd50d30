// Package packs holds the built-in word packs and loads user packs.
// Importing the package registers every embedded pack with the registry.
package packs

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-wordfind/internal/registry"
)

//go:embed packs/*.yaml
var packFS embed.FS

// file is the on-disk form of a pack.
type file struct {
	ID         string   `yaml:"id"`
	Title      string   `yaml:"title"`
	SecretWord string   `yaml:"secret_word"`
	Words      []string `yaml:"words"`
}

func init() {
	builtin, err := loadFS(packFS, "packs")
	if err != nil {
		panic(err)
	}
	for _, p := range builtin {
		registry.Register(p)
	}
}

// Parse decodes a pack from YAML. A missing id is taken from name with its
// extension stripped.
func Parse(data []byte, name string) (registry.Pack, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return registry.Pack{}, fmt.Errorf("packs: parse %s: %w", name, err)
	}
	if f.ID == "" {
		f.ID = strings.TrimSuffix(path.Base(name), path.Ext(name))
	}
	words := make([]string, 0, len(f.Words))
	for _, w := range f.Words {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return registry.Pack{}, fmt.Errorf("packs: %s has no words", name)
	}
	return registry.Pack{ID: f.ID, Title: f.Title, Words: words, SecretWord: f.SecretWord}, nil
}

func loadFS(fsys fs.FS, dir string) ([]registry.Pack, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("packs: read %s: %w", dir, err)
	}
	var out []registry.Pack
	for _, e := range entries {
		if e.IsDir() || !isYAML(e.Name()) {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("packs: read %s: %w", e.Name(), err)
		}
		p, err := Parse(data, e.Name())
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// LoadDir registers every YAML pack found in dir. A missing directory is not
// an error. It returns the IDs registered.
func LoadDir(dir string) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}
	loaded, err := loadFS(os.DirFS(filepath.Clean(dir)), ".")
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(loaded))
	for _, p := range loaded {
		if err := registry.Add(p); err != nil {
			return ids, err
		}
		ids = append(ids, p.ID)
	}
	return ids, nil
}

func isYAML(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
