package database

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"volleyhub/internal/domain/entities"
	"volleyhub/internal/infrastructure/database/sqlc_generated"
)

const dateLayout = "2006-01-02"

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func timeToTimestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func dateToPg(s string) (pgtype.Date, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return pgtype.Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return pgtype.Date{Time: d, Valid: true}, nil
}

func pgDateToString(d pgtype.Date) string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(dateLayout)
}

func int4ToGrade(v pgtype.Int4) *int {
	if !v.Valid {
		return nil
	}
	g := int(v.Int32)
	return &g
}

func gradeToInt4(g *int) pgtype.Int4 {
	if g == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: int32(*g), Valid: true}
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

func eventToDomain(e sqlc_generated.Event) entities.Event {
	return entities.Event{
		ID: e.ID,
		Court: entities.Court{
			Name:    e.CourtName,
			Address: e.CourtAddress,
			City:    e.CourtCity,
			Indoor:  e.CourtIndoor,
			HasAC:   e.CourtHasAc,
		},
		CreatorID:       e.CreatorID,
		Date:            pgDateToString(e.EventDate),
		StartAt:         pgtypeTimestamptzToTime(e.StartAt),
		EndAt:           pgtypeTimestamptzToTime(e.EndAt),
		FindNum:         int(e.FindNum),
		TotalCost:       int(e.TotalCost),
		AverageCost:     int(e.AverageCost),
		Friendliness:    e.Friendliness,
		SkillLevel:      e.SkillLevel,
		NetHeight:       e.NetHeight,
		ACOn:            e.AcOn,
		Notes:           e.Notes,
		Status:          e.Status,
		PlayerList:      nonNil(e.PlayerList),
		ApplicationList: nonNil(e.ApplicationList),
		CreatedAt:       pgtypeTimestamptzToTime(e.CreatedAt),
		UpdatedAt:       pgtypeTimestamptzToTime(e.UpdatedAt),
	}
}

func eventsToDomain(rows []sqlc_generated.Event) []entities.Event {
	out := make([]entities.Event, 0, len(rows))
	for _, r := range rows {
		out = append(out, eventToDomain(r))
	}
	return out
}

func scheduleFromRow(date pgtype.Date, start, end pgtype.Timestamptz, court string) entities.Schedule {
	return entities.Schedule{
		Date:      pgDateToString(date),
		StartAt:   pgtypeTimestamptzToTime(start),
		EndAt:     pgtypeTimestamptzToTime(end),
		CourtName: court,
	}
}

func participationToDomain(p sqlc_generated.Participation) entities.ParticipationRecord {
	return entities.ParticipationRecord{
		EventID:   p.EventID,
		UserID:    p.UserID,
		Status:    p.Status,
		Schedule:  scheduleFromRow(p.ScheduleDate, p.StartAt, p.EndAt, p.CourtName),
		CreatedAt: pgtypeTimestamptzToTime(p.CreatedAt),
		UpdatedAt: pgtypeTimestamptzToTime(p.UpdatedAt),
	}
}

func feedbackToDomain(f sqlc_generated.Feedback) entities.FeedbackRecord {
	return entities.FeedbackRecord{
		EventID:      f.EventID,
		UserID:       f.UserID,
		RaterID:      f.RaterID,
		Schedule:     scheduleFromRow(f.ScheduleDate, f.StartAt, f.EndAt, f.CourtName),
		Friendliness: f.Friendliness,
		SkillLevel:   f.SkillLevel,
		Grade:        int4ToGrade(f.Grade),
		Note:         f.Note,
		CreatedAt:    pgtypeTimestamptzToTime(f.CreatedAt),
		UpdatedAt:    pgtypeTimestamptzToTime(f.UpdatedAt),
	}
}
