package tz

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	for _, name := range []string{"", "UTC", "utc"} {
		loc, err := Load(name)
		if err != nil || loc != time.UTC {
			t.Errorf("Load(%q) = %v, %v", name, loc, err)
		}
	}
	if loc, err := Load("Europe/Paris"); err != nil || loc.String() != "Europe/Paris" {
		t.Errorf("Load(Europe/Paris) = %v, %v", loc, err)
	}
	if _, err := Load("Nowhere/Atlantis"); err == nil {
		t.Error("expected error for unknown zone")
	}
}

func TestLocalDate(t *testing.T) {
	paris, err := Load("Europe/Paris")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	late := time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC)
	if got := LocalDate(late, paris); got != "2024-01-02" {
		t.Fatalf("LocalDate = %s, want 2024-01-02", got)
	}
	if got := LocalDate(late, nil); got != "2024-01-01" {
		t.Fatalf("LocalDate(nil loc) = %s", got)
	}
}
