package i18n

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/fekuna/omnipos-shift-service/internal/apperror"
)

func TestLocalize(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	tests := []struct {
		name       string
		langs      []string
		wantLocale string
		wantPrefix string
	}{
		{"default", nil, "en", "Cash divergence of 20.00"},
		{"portuguese header", []string{"pt-BR,pt;q=0.9,en;q=0.8"}, "pt-BR", "A divergência de caixa de 20.00"},
		{"unsupported falls back", []string{"de-DE"}, "en", "Cash divergence"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, locale, ok := Localize(string(apperror.CodeDivergenceUnexplained),
				map[string]string{"divergence": "20.00", "max_divergence": "5.00"}, tt.langs...)
			if !ok {
				t.Fatal("expected a message")
			}
			if locale != tt.wantLocale {
				t.Fatalf("locale: got %q, want %q", locale, tt.wantLocale)
			}
			if !strings.HasPrefix(msg, tt.wantPrefix) {
				t.Fatalf("message %q does not start with %q", msg, tt.wantPrefix)
			}
		})
	}

	if _, _, ok := Localize("NOT_A_CODE", nil); ok {
		t.Fatal("unknown ids must report ok=false")
	}
}

func TestCatalogsMatch(t *testing.T) {
	load := func(name string) map[string]string {
		b, err := localeFS.ReadFile("locales/" + name)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		out := map[string]string{}
		if err := json.Unmarshal(b, &out); err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
		return out
	}
	en := load("active.en.json")
	pt := load("active.pt-BR.json")
	if len(en) != len(pt) {
		t.Fatalf("catalog sizes differ: en=%d pt-BR=%d", len(en), len(pt))
	}
	for id := range en {
		if _, ok := pt[id]; !ok {
			t.Fatalf("pt-BR is missing %s", id)
		}
	}
}
