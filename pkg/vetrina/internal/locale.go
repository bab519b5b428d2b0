package internal

import (
	"embed"
	"os"
	"strings"
	"sync"

	"github.com/BrandonKowalski/vetrina/pkg/vetrina/constants"
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/active.*.toml
var localeFS embed.FS

var (
	localizerOnce sync.Once
	localizer     *i18n.Localizer
)

// T returns the chrome string for messageID in the active locale, falling
// back to English and finally to the ID itself. Total: never errors.
func T(messageID string) string {
	localizerOnce.Do(func() {
		localizer = newLocalizer(detectLocale())
	})
	return localize(localizer, messageID)
}

func newLocalizer(lang string) *i18n.Localizer {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		GetInternalLogger().Error("Failed to read locale catalog", "error", err)
		return i18n.NewLocalizer(bundle, "en")
	}
	for _, entry := range entries {
		data, err := localeFS.ReadFile("locales/" + entry.Name())
		if err != nil {
			continue
		}
		if _, err := bundle.ParseMessageFileBytes(data, entry.Name()); err != nil {
			GetInternalLogger().Error("Failed to parse locale file", "file", entry.Name(), "error", err)
		}
	}

	return i18n.NewLocalizer(bundle, lang, "en")
}

func localize(loc *i18n.Localizer, messageID string) string {
	message, err := loc.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	return message
}

// detectLocale picks the chrome language: the override env var first, then
// LANG with its encoding suffix stripped, then English.
func detectLocale() string {
	if lang := os.Getenv(constants.LocaleEnvVar); lang != "" {
		return lang
	}
	if lang := os.Getenv("LANG"); lang != "" {
		lang = strings.SplitN(lang, ".", 2)[0]
		if tag, err := language.Parse(lang); err == nil {
			return tag.String()
		}
	}
	return "en"
}
