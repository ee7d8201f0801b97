package entities

import (
	"math"
	"slices"
	"time"

	"volleyhub/internal/domain"
)

// Court is the hosting court snapshot stored with an event.
type Court struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Indoor  bool   `json:"indoor"`
	HasAC   bool   `json:"has_ac"`
}

// Event is a court booking open to applications until it is closed.
type Event struct {
	ID              string    `json:"id"`
	Court           Court     `json:"court"`
	CreatorID       string    `json:"creator_id"`
	Date            string    `json:"date"` // YYYY-MM-DD in the event timezone
	StartAt         time.Time `json:"start_at"`
	EndAt           time.Time `json:"end_at"`
	FindNum         int       `json:"find_num"`
	TotalCost       int       `json:"total_cost"`
	AverageCost     int       `json:"average_cost"`
	Friendliness    string    `json:"friendliness"`
	SkillLevel      string    `json:"skill_level"`
	NetHeight       string    `json:"net_height"`
	ACOn            bool      `json:"ac_on"`
	Notes           string    `json:"notes"`
	Status          string    `json:"status"`
	PlayerList      []string  `json:"player_list"`
	ApplicationList []string  `json:"application_list"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (e *Event) IsClosed() bool {
	return e.Status == domain.EventStatusClosed
}

func (e *Event) HasEnded(now time.Time) bool {
	return !e.EndAt.After(now)
}

func (e *Event) IsPlayer(userID string) bool {
	return slices.Contains(e.PlayerList, userID)
}

func (e *Event) IsApplicant(userID string) bool {
	return slices.Contains(e.ApplicationList, userID)
}

// Schedule returns the denormalized scheduling fields copied into ledger and feedback rows.
func (e *Event) Schedule() Schedule {
	return Schedule{
		Date:      e.Date,
		StartAt:   e.StartAt,
		EndAt:     e.EndAt,
		CourtName: e.Court.Name,
	}
}

// Schedule is the event context denormalized onto participation and feedback records.
type Schedule struct {
	Date      string    `json:"date"`
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
	CourtName string    `json:"court_name"`
}

// EventWindow computes the start and end instants of an event from a calendar date
// (YYYY-MM-DD), a wall-clock start time (HH:MM) and a duration in fractional hours.
func EventWindow(date, startTime string, durationHours float64, loc *time.Location) (time.Time, time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	if durationHours <= 0 || durationHours > 24 || math.IsNaN(durationHours) {
		return time.Time{}, time.Time{}, domain.ErrInvalidSchedule
	}
	d, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidSchedule
	}
	t, err := time.Parse("15:04", startTime)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidSchedule
	}
	start := time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, loc)
	ms := math.Round(durationHours * 60 * 60 * 1000)
	end := start.Add(time.Duration(ms) * time.Millisecond)
	return start, end, nil
}

// AverageCost splits totalCost across every open slot plus the confirmed players
// (organizer included) and rounds to the nearest integer.
func AverageCost(totalCost, findNum, playerCount int) int {
	heads := findNum + playerCount
	if heads <= 0 {
		return totalCost
	}
	return int(math.Round(float64(totalCost) / float64(heads)))
}

// InitialPlayers returns [organizer, invited...] with duplicates and the organizer
// removed from invited, preserving the invitation order.
func InitialPlayers(organizerID string, invited []string) []string {
	players := make([]string, 0, len(invited)+1)
	players = append(players, organizerID)
	for _, id := range invited {
		if id == "" || slices.Contains(players, id) {
			continue
		}
		players = append(players, id)
	}
	return players
}
