// Package i18n localizes error messages. Message ids are apperror codes
// and template fields come from the error metadata.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

var (
	mu     sync.RWMutex
	bundle *goi18n.Bundle
)

// Init builds the bundle from the embedded locales. It is safe to call more
// than once.
func Init() error {
	b := goi18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("json", json.Unmarshal)
	for _, f := range []string{"locales/active.en.json", "locales/active.pt-BR.json"} {
		if _, err := b.LoadMessageFileFS(localeFS, f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}

	mu.Lock()
	bundle = b
	mu.Unlock()
	return nil
}

// Load adds an extra message file from disk, e.g. a locale shipped outside
// the binary.
func Load(path string) error {
	mu.Lock()
	defer mu.Unlock()
	if bundle == nil {
		return fmt.Errorf("i18n: Load called before Init")
	}
	if _, err := bundle.LoadMessageFile(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Localize renders messageID for the best match among langs (values of an
// Accept-Language header or plain tags). It returns the message and the
// locale used. ok is false when no catalog has the id.
func Localize(messageID string, data map[string]string, langs ...string) (msg, locale string, ok bool) {
	mu.RLock()
	b := bundle
	mu.RUnlock()
	if b == nil {
		return "", "", false
	}

	loc := goi18n.NewLocalizer(b, langs...)
	msg, tag, err := loc.LocalizeWithTag(&goi18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return "", "", false
	}
	return msg, tag.String(), true
}
