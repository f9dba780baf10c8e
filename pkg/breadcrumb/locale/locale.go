// Package locale resolves the strings drawn into page chrome (titles,
// footer hints) for the viewer's language. Messages live in embedded
// TOML files; English is the fallback for everything.
package locale

import (
	"embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/breadcrumb/pkg/breadcrumb/constants"
)

//go:embed translations/active.*.toml
var translationsFS embed.FS

// Well-known message IDs the shell resolves for its footer.
const (
	KeyHintBack = "hint_back"
	KeyHintExit = "hint_exit"
	KeyHintOpen = "hint_open"
)

// Catalog holds the loaded message bundle. Build one per process and
// hand out localizers from it; the bundle itself is read-only after
// construction.
type Catalog struct {
	bundle *i18n.Bundle
}

// NewCatalog loads every embedded message file into a bundle rooted at
// English.
func NewCatalog() (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := translationsFS.ReadDir("translations")
	if err != nil {
		return nil, fmt.Errorf("locale: read embedded translations: %w", err)
	}
	for _, entry := range entries {
		path := "translations/" + entry.Name()
		if _, err := bundle.LoadMessageFileFS(translationsFS, path); err != nil {
			return nil, fmt.Errorf("locale: load %s: %w", path, err)
		}
	}

	return &Catalog{bundle: bundle}, nil
}

// Localizer returns a localizer preferring the given language tags,
// then the APP_LANGUAGE environment variable, then English.
func (c *Catalog) Localizer(langs ...string) *i18n.Localizer {
	prefs := make([]string, 0, len(langs)+2)
	for _, lang := range langs {
		if lang != "" {
			prefs = append(prefs, lang)
		}
	}
	if v := os.Getenv(constants.LanguageEnvVar); v != "" {
		prefs = append(prefs, v)
	}
	prefs = append(prefs, language.English.String())
	return i18n.NewLocalizer(c.bundle, prefs...)
}

// Title resolves the message for key. Unknown keys fall back to the key
// itself so a missing translation shows up on screen instead of
// blanking the title.
func Title(loc *i18n.Localizer, key string) string {
	msg, err := loc.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		return key
	}
	return msg
}

// OpenHint resolves the "open page" footer hint with the target page's
// title interpolated. Falls back to the bare title.
func OpenHint(loc *i18n.Localizer, title string) string {
	msg, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID:    KeyHintOpen,
		TemplateData: map[string]string{"Page": title},
	})
	if err != nil {
		return title
	}
	return msg
}
