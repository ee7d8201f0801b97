package memstore

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"time"

	"volleyhub/internal/domain"
	"volleyhub/internal/domain/entities"
	"volleyhub/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

type EventRepository struct {
	s *Store
}

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	var err error
	r.s.locked(ctx, func() {
		if _, ok := r.s.events[event.ID]; ok {
			err = fmt.Errorf("create event: duplicate id %s", event.ID)
			return
		}
		now := r.s.stamp()
		event.CreatedAt, event.UpdatedAt = now, now
		r.s.events[event.ID] = cloneEvent(*event)
	})
	return err
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*entities.Event, error) {
	var (
		out *entities.Event
		err error
	)
	r.s.locked(ctx, func() {
		e, ok := r.s.events[id]
		if !ok {
			err = domain.ErrEventNotFound
			return
		}
		c := cloneEvent(e)
		out = &c
	})
	return out, err
}

// FindByIDForUpdate needs no extra locking: transactions already serialize.
func (r *EventRepository) FindByIDForUpdate(ctx context.Context, id string) (*entities.Event, error) {
	return r.FindByID(ctx, id)
}

func (r *EventRepository) ListUpcoming(ctx context.Context, now time.Time) ([]entities.Event, error) {
	out := r.filter(ctx, func(e entities.Event) bool { return e.StartAt.After(now) })
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartAt.Before(out[j].StartAt)
	})
	return out, nil
}

func (r *EventRepository) ListEndedByCreator(ctx context.Context, creatorID string, now time.Time) ([]entities.Event, error) {
	out := r.filter(ctx, func(e entities.Event) bool {
		return e.CreatorID == creatorID && !e.EndAt.After(now)
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].EndAt.After(out[j].EndAt) })
	return out, nil
}

func (r *EventRepository) AddApplicant(ctx context.Context, eventID, userID string) (bool, error) {
	return r.mutate(ctx, eventID, func(e *entities.Event) bool {
		if slices.Contains(e.ApplicationList, userID) || slices.Contains(e.PlayerList, userID) {
			return false
		}
		e.ApplicationList = append(e.ApplicationList, userID)
		return true
	})
}

func (r *EventRepository) AcceptApplicant(ctx context.Context, eventID, userID string, expectedFindNum int) (bool, error) {
	return r.mutate(ctx, eventID, func(e *entities.Event) bool {
		if e.FindNum != expectedFindNum || !slices.Contains(e.ApplicationList, userID) {
			return false
		}
		e.ApplicationList = slices.DeleteFunc(e.ApplicationList, func(id string) bool { return id == userID })
		e.PlayerList = append(e.PlayerList, userID)
		e.FindNum--
		return true
	})
}

func (r *EventRepository) RemoveApplicant(ctx context.Context, eventID, userID string) (bool, error) {
	return r.mutate(ctx, eventID, func(e *entities.Event) bool {
		if !slices.Contains(e.ApplicationList, userID) {
			return false
		}
		e.ApplicationList = slices.DeleteFunc(e.ApplicationList, func(id string) bool { return id == userID })
		return true
	})
}

func (r *EventRepository) CloseExpired(ctx context.Context, now time.Time) ([]string, error) {
	var ids []string
	r.s.locked(ctx, func() {
		stamp := r.s.stamp()
		for id, e := range r.s.events {
			if e.Status != domain.EventStatusHold || e.EndAt.After(now) {
				continue
			}
			e.Status = domain.EventStatusClosed
			e.UpdatedAt = stamp
			r.s.events[id] = e
			ids = append(ids, id)
		}
	})
	slices.Sort(ids)
	return ids, nil
}

func (r *EventRepository) filter(ctx context.Context, keep func(entities.Event) bool) []entities.Event {
	out := []entities.Event{}
	r.s.locked(ctx, func() {
		for _, e := range r.s.events {
			if keep(e) {
				out = append(out, cloneEvent(e))
			}
		}
	})
	return out
}

func (r *EventRepository) mutate(ctx context.Context, eventID string, fn func(e *entities.Event) bool) (bool, error) {
	var (
		changed bool
		err     error
	)
	r.s.locked(ctx, func() {
		e, ok := r.s.events[eventID]
		if !ok {
			err = domain.ErrEventNotFound
			return
		}
		e = cloneEvent(e)
		if changed = fn(&e); changed {
			e.UpdatedAt = r.s.stamp()
			r.s.events[eventID] = e
		}
	})
	return changed, err
}
