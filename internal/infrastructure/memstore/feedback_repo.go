package memstore

import (
	"context"
	"sort"

	"volleyhub/internal/domain"
	"volleyhub/internal/domain/entities"
	"volleyhub/internal/ports/output"
)

var _ output.FeedbackRepository = (*FeedbackRepository)(nil)

type FeedbackRepository struct {
	s *Store
}

func (r *FeedbackRepository) Upsert(ctx context.Context, record *entities.FeedbackRecord) error {
	var err error
	r.s.locked(ctx, func() {
		if _, ok := r.s.events[record.EventID]; !ok {
			err = domain.ErrEventNotFound
			return
		}
		now := r.s.stamp()
		key := record.Key()
		if prev, ok := r.s.feedback[key]; ok {
			record.CreatedAt = prev.CreatedAt
		} else {
			record.CreatedAt = now
		}
		record.UpdatedAt = now
		r.s.feedback[key] = copyFeedback(*record)
	})
	return err
}

func (r *FeedbackRepository) Find(ctx context.Context, eventID, userID string) (*entities.FeedbackRecord, error) {
	var (
		out *entities.FeedbackRecord
		err error
	)
	r.s.locked(ctx, func() {
		rec, ok := r.s.feedback[entities.RecordKey(eventID, userID)]
		if !ok {
			err = domain.ErrFeedbackNotFound
			return
		}
		rec = copyFeedback(rec)
		out = &rec
	})
	return out, err
}

func (r *FeedbackRepository) ListByUser(ctx context.Context, userID string) ([]entities.FeedbackRecord, error) {
	out := []entities.FeedbackRecord{}
	r.s.locked(ctx, func() {
		for _, rec := range r.s.feedback {
			if rec.UserID == userID {
				out = append(out, copyFeedback(rec))
			}
		}
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Schedule.StartAt.After(out[j].Schedule.StartAt)
	})
	return out, nil
}

func copyFeedback(f entities.FeedbackRecord) entities.FeedbackRecord {
	if f.Grade != nil {
		g := *f.Grade
		f.Grade = &g
	}
	return f
}
