package entities

import "time"

// FeedbackRecord is the organizer's rating of one player for one event.
// Grade is nil when the stored value was missing or not numeric.
type FeedbackRecord struct {
	EventID      string    `json:"event_id"`
	UserID       string    `json:"user_id"`
	RaterID      string    `json:"rater_id"`
	Schedule     Schedule  `json:"schedule"`
	Friendliness string    `json:"friendliness"`
	SkillLevel   string    `json:"skill_level"`
	Grade        *int      `json:"grade"`
	Note         string    `json:"note"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (f *FeedbackRecord) Key() string {
	return RecordKey(f.EventID, f.UserID)
}

// AverageGrade is the arithmetic mean of every present grade within [0, 100].
// It returns 0 when no record carries a usable grade.
func AverageGrade(records []FeedbackRecord) float64 {
	var sum, n int
	for _, r := range records {
		if r.Grade == nil || *r.Grade < 0 || *r.Grade > 100 {
			continue
		}
		sum += *r.Grade
		n++
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}
