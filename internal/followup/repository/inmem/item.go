package inmem

import (
	"context"
	"sort"
	"sync"
	"time"

	"meetmate/internal/followup"
	"meetmate/internal/model"
)

// Repository is an in-memory ItemRepository. It backs the triage pipeline in
// tests and single-process deployments; the query surface stays read-only.
type Repository struct {
	mu    sync.RWMutex
	items map[string]followup.ActionItemSnapshot
}

// New creates an empty in-memory repository.
func New() *Repository {
	return &Repository{items: make(map[string]followup.ActionItemSnapshot)}
}

// Put inserts or replaces an item.
func (r *Repository) Put(item followup.ActionItemSnapshot) error {
	if item.ID == "" {
		return followup.ErrEmptyItemID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ID] = item
	return nil
}

// Seed bulk-loads items, replacing any existing entries with the same ID.
func (r *Repository) Seed(items []followup.ActionItemSnapshot) error {
	for _, item := range items {
		if err := r.Put(item); err != nil {
			return err
		}
	}
	return nil
}

// Overdue returns open items whose due date is strictly before now's date.
func (r *Repository) Overdue(ctx context.Context, now time.Time) ([]followup.ActionItemSnapshot, error) {
	today := startOfDay(now)
	return r.filter(func(item followup.ActionItemSnapshot) bool {
		return item.HasDueDate() && startOfDay(item.DueDate).Before(today)
	}), nil
}

// DueWithin returns open items due between now's date and now+days inclusive.
func (r *Repository) DueWithin(ctx context.Context, now time.Time, days int) ([]followup.ActionItemSnapshot, error) {
	today := startOfDay(now)
	limit := today.AddDate(0, 0, days)
	return r.filter(func(item followup.ActionItemSnapshot) bool {
		if !item.HasDueDate() {
			return false
		}
		due := startOfDay(item.DueDate)
		return !due.Before(today) && !due.After(limit)
	}), nil
}

func (r *Repository) filter(keep func(followup.ActionItemSnapshot) bool) []followup.ActionItemSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []followup.ActionItemSnapshot
	for _, item := range r.items {
		if !openStatus(item) {
			continue
		}
		if keep(item) {
			out = append(out, item)
		}
	}
	// Map iteration order is random; callers get a stable order.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].DueDate.Equal(out[j].DueDate) {
			return out[i].DueDate.Before(out[j].DueDate)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func openStatus(item followup.ActionItemSnapshot) bool {
	switch item.Status {
	case model.StatusPending, model.StatusInProgress, model.StatusOverdue:
		return true
	}
	return false
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
