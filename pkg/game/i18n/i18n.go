// Package i18n provides the translated UI strings from the embedded .po catalogues.
package i18n

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"github.com/leonelquinteros/gotext"

	"minesweeper/pkg/engine/logging"
)

// DefaultLanguage is loaded when the requested one has no catalogue
const DefaultLanguage = "en"

//go:embed locales/*.po
var locales embed.FS

var (
	current  = gotext.NewPo()
	language = ""
)

// Load switches the active catalogue to lang and returns the language actually loaded
func Load(lang string) (string, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	data, err := locales.ReadFile(path.Join("locales", lang+".po"))
	if err != nil {
		logging.Log.WithField("language", lang).Warn("no translations, falling back to " + DefaultLanguage)
		lang = DefaultLanguage
		data, err = locales.ReadFile(path.Join("locales", lang+".po"))
		if err != nil {
			return "", fmt.Errorf("load %s catalogue: %w", lang, err)
		}
	}

	po := gotext.NewPo()
	po.Parse(data)
	current = po
	language = lang
	return lang, nil
}

// Language returns the loaded language, empty before Load
func Language() string {
	return language
}

// Languages lists the embedded catalogues
func Languages() []string {
	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil
	}
	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		langs = append(langs, strings.TrimSuffix(e.Name(), ".po"))
	}
	return langs
}

// T translates key, formatting it with args when given.
// Unknown keys are returned unchanged.
func T(key string, args ...any) string {
	return current.Get(key, args...)
}
