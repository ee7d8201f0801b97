package i18n

import (
	"errors"
	"fmt"
	"testing"

	"volleyhub/internal/domain"
)

func TestTranslatorFallsBack(t *testing.T) {
	tr := NewTranslator("en")

	if got := tr.T("fr", "discord.button.apply", nil); got != "Postuler" {
		t.Errorf("fr apply = %q", got)
	}
	if got := tr.T("de", "discord.button.apply", nil); got != "Apply" {
		t.Errorf("unsupported locale should use default, got %q", got)
	}
	if got := tr.T("en", "missing.key", nil); got != "missing.key" {
		t.Errorf("missing key = %q", got)
	}
}

func TestTranslatorTemplateData(t *testing.T) {
	tr := NewTranslator("en")
	got := tr.T("en", "discord.organizer.accepted", map[string]any{"UserID": "42"})
	if got != "✅ You accepted <@42>." {
		t.Fatalf("got %q", got)
	}
}

func TestTranslatorError(t *testing.T) {
	tr := NewTranslator("en")

	wrapped := fmt.Errorf("approve: %w", domain.ErrStaleCapacity)
	if got := tr.Error("en", wrapped); got != "The number of open slots changed. Reload and try again." {
		t.Errorf("stale capacity = %q", got)
	}
	if got := tr.Error("fr", domain.ErrEventFull); got != "Il ne reste plus de place." {
		t.Errorf("fr event full = %q", got)
	}
	if got := tr.Error("en", errors.New("db down")); got != "Something went wrong. Please try again." {
		t.Errorf("generic = %q", got)
	}
}

func TestTranslatorMatch(t *testing.T) {
	tr := NewTranslator("en")
	tests := map[string]string{
		"":                        "en",
		"fr-FR,fr;q=0.9,en;q=0.8": "fr",
		"de-DE":                   "en",
		"en-US":                   "en",
	}
	for header, want := range tests {
		if got := tr.Match(header); got != want {
			t.Errorf("Match(%q) = %q, want %q", header, got, want)
		}
	}
}
