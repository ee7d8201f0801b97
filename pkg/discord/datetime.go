package discord

import (
	"time"
)

// FormatEventDateTime renders t in loc as DD/MM/YYYY HH:MM.
func FormatEventDateTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format("02/01/2006 15:04")
}

// FormatEventWindow renders a start/end pair, e.g. "01/01/2024 14:00-16:00".
// The end carries its own date when the game runs past midnight.
func FormatEventWindow(start, end time.Time, loc *time.Location) string {
	if start.IsZero() {
		return ""
	}
	if loc == nil {
		loc = time.UTC
	}
	s, e := start.In(loc), end.In(loc)
	if end.IsZero() {
		return s.Format("02/01/2006 15:04")
	}
	if s.YearDay() == e.YearDay() && s.Year() == e.Year() {
		return s.Format("02/01/2006 15:04") + "-" + e.Format("15:04")
	}
	return s.Format("02/01/2006 15:04") + " - " + e.Format("02/01/2006 15:04")
}
