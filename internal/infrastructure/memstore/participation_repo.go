package memstore

import (
	"context"
	"sort"

	"volleyhub/internal/domain"
	"volleyhub/internal/domain/entities"
	"volleyhub/internal/ports/output"
)

var _ output.ParticipationRepository = (*ParticipationRepository)(nil)

type ParticipationRepository struct {
	s *Store
}

func (r *ParticipationRepository) Upsert(ctx context.Context, record *entities.ParticipationRecord) error {
	var err error
	r.s.locked(ctx, func() {
		if _, ok := r.s.events[record.EventID]; !ok {
			err = domain.ErrEventNotFound
			return
		}
		now := r.s.stamp()
		key := record.Key()
		if prev, ok := r.s.participation[key]; ok {
			record.CreatedAt = prev.CreatedAt
		} else {
			record.CreatedAt = now
		}
		record.UpdatedAt = now
		r.s.participation[key] = *record
	})
	return err
}

func (r *ParticipationRepository) Find(ctx context.Context, eventID, userID string) (*entities.ParticipationRecord, error) {
	var (
		out *entities.ParticipationRecord
		err error
	)
	r.s.locked(ctx, func() {
		rec, ok := r.s.participation[entities.RecordKey(eventID, userID)]
		if !ok {
			err = domain.ErrParticipationNotFound
			return
		}
		out = &rec
	})
	return out, err
}

func (r *ParticipationRepository) ListByUser(ctx context.Context, userID, status string) ([]entities.ParticipationRecord, error) {
	out := []entities.ParticipationRecord{}
	r.s.locked(ctx, func() {
		for _, rec := range r.s.participation {
			if rec.UserID != userID || (status != "" && rec.Status != status) {
				continue
			}
			out = append(out, rec)
		}
	})
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Schedule.StartAt.Equal(out[j].Schedule.StartAt) {
			return out[i].Schedule.StartAt.Before(out[j].Schedule.StartAt)
		}
		return out[i].EventID < out[j].EventID
	})
	return out, nil
}
