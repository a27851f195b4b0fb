// Package announce produces localized status messages for assistive output:
// result counts while filtering, the active option's position, and selection.
package announce

import (
	"embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/popuplist/pkg/popuplist/internal"
)

//go:embed locales/*.toml
var localeFS embed.FS

var localeFiles = []string{
	"locales/active.en.toml",
	"locales/active.de.toml",
}

// Announcer renders messages for one locale. Locales without a translation
// fall back to English.
type Announcer struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// New creates an Announcer for a BCP 47 locale such as "en" or "de-AT".
// An empty locale means English.
func New(locale string) (*Announcer, error) {
	tag := language.English
	if locale != "" {
		parsed, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
		}
		tag = parsed
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, file := range localeFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	return &Announcer{
		tag:       tag,
		localizer: i18n.NewLocalizer(bundle, tag.String()),
	}, nil
}

// Tag returns the requested locale.
func (a *Announcer) Tag() language.Tag {
	return a.tag
}

// ResultCount announces how many options match the filter.
func (a *Announcer) ResultCount(count int) string {
	if count <= 0 {
		return a.localize(&i18n.LocalizeConfig{MessageID: "NoResults"})
	}
	return a.localize(&i18n.LocalizeConfig{
		MessageID:    "ResultCount",
		TemplateData: map[string]any{"Count": count},
		PluralCount:  count,
	})
}

// Position announces the active option and its one-based position.
func (a *Announcer) Position(value string, position, total int) string {
	return a.localize(&i18n.LocalizeConfig{
		MessageID: "Position",
		TemplateData: map[string]any{
			"Value":    value,
			"Position": position,
			"Total":    total,
		},
	})
}

// Selected announces a committed selection.
func (a *Announcer) Selected(value string) string {
	return a.localize(&i18n.LocalizeConfig{
		MessageID:    "Selected",
		TemplateData: map[string]any{"Value": value},
	})
}

// Collapsed announces that the popup closed.
func (a *Announcer) Collapsed() string {
	return a.localize(&i18n.LocalizeConfig{MessageID: "Collapsed"})
}

func (a *Announcer) localize(cfg *i18n.LocalizeConfig) string {
	msg, err := a.localizer.Localize(cfg)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to localize message",
			"message", cfg.MessageID,
			"locale", a.tag.String(),
			"error", err)
		return cfg.MessageID
	}
	return msg
}
