// Package i18n localizes the game's announcements and interface text.
// Translations are YAML files embedded from the locales directory and
// loaded once into a go-i18n bundle.
package i18n

import (
	"embed"
	"io/fs"
	"sort"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-wordfind/internal/wordsearch"
)

//go:embed locales/*.yaml
var localeFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
)

func loadBundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

		files, _ := fs.ReadDir(localeFS, "locales")
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			data, err := localeFS.ReadFile("locales/" + f.Name())
			if err != nil {
				continue
			}
			_, _ = bundle.ParseMessageFileBytes(data, f.Name())
		}
	})
	return bundle
}

// Languages returns the tags of every embedded translation, sorted.
func Languages() []string {
	tags := loadBundle().LanguageTags()
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.String())
	}
	sort.Strings(out)
	return out
}

// Localizer translates message IDs for one language. It implements
// wordsearch.Translator.
type Localizer struct {
	lang string
	loc  *i18n.Localizer
}

var _ wordsearch.Translator = (*Localizer)(nil)

// New creates a localizer for lang. Unknown or malformed languages fall back
// to English.
func New(lang string) *Localizer {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return &Localizer{
		lang: tag.String(),
		loc:  i18n.NewLocalizer(loadBundle(), tag.String(), language.English.String()),
	}
}

// Lang returns the requested language tag.
func (l *Localizer) Lang() string {
	return l.lang
}

// Translate localizes an announcement.
func (l *Localizer) Translate(id wordsearch.MessageID, data map[string]any) string {
	return l.TData(string(id), data)
}

// T translates a message without template data.
func (l *Localizer) T(messageID string) string {
	return l.TData(messageID, nil)
}

// TData translates a message, filling its template from data. If the ID is
// unknown the ID itself is returned.
func (l *Localizer) TData(messageID string, data map[string]any) string {
	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if data != nil {
		cfg.TemplateData = data
	}
	msg, err := l.loc.Localize(cfg)
	if err != nil {
		return messageID
	}
	return msg
}
