package app

import (
	"context"
	"time"

	"abbed/internal/domain"
)

// MaxListLimit caps how many entries a single list call returns.
const MaxListLimit = 1000

// WeightService encapsulates weight-tracking use cases.
type WeightService struct {
	repo domain.WeightRepository
	now  func() time.Time
}

// NewWeightService creates a WeightService backed by the given repository.
func NewWeightService(repo domain.WeightRepository) *WeightService {
	return &WeightService{repo: repo, now: time.Now}
}

// WeightInput is a weight measurement as submitted by a client. A zero Date
// means now.
type WeightInput struct {
	Value float64
	Unit  string
	Date  time.Time
}

// RecordWeight validates and stores a new weight measurement.
func (s *WeightService) RecordWeight(ctx context.Context, userID int64, in WeightInput) (*domain.WeightEntry, error) {
	kg, date, err := s.normalize(in)
	if err != nil {
		return nil, err
	}
	return s.repo.AddEntry(ctx, userID, kg, date)
}

// UpdateWeight replaces the value and date of an existing entry.
func (s *WeightService) UpdateWeight(ctx context.Context, userID, id int64, in WeightInput) (*domain.WeightEntry, error) {
	kg, date, err := s.normalize(in)
	if err != nil {
		return nil, err
	}
	return s.repo.UpdateEntry(ctx, userID, id, kg, date)
}

// DeleteWeight removes a single entry.
func (s *WeightService) DeleteWeight(ctx context.Context, userID, id int64) error {
	return s.repo.DeleteEntry(ctx, userID, id)
}

// ListRecent returns the most recent weight entries up to limit.
func (s *WeightService) ListRecent(ctx context.Context, userID int64, limit int) ([]domain.WeightEntry, error) {
	if limit <= 0 || limit > MaxListLimit {
		limit = MaxListLimit
	}
	return s.repo.ListEntries(ctx, userID, domain.EntryFilter{Limit: limit})
}

// UndoLast deletes the most recent entry and returns it.
func (s *WeightService) UndoLast(ctx context.Context, userID int64) (bool, *domain.WeightEntry, error) {
	items, err := s.repo.ListEntries(ctx, userID, domain.EntryFilter{Limit: 1})
	if err != nil {
		return false, nil, err
	}
	if len(items) == 0 {
		return false, nil, nil
	}
	if err := s.repo.DeleteEntry(ctx, userID, items[0].ID); err != nil {
		return false, nil, err
	}
	return true, &items[0], nil
}

func (s *WeightService) normalize(in WeightInput) (float64, time.Time, error) {
	if in.Value <= 0 {
		return 0, time.Time{}, invalid("value must be > 0")
	}
	unit := in.Unit
	if unit == "" {
		unit = domain.UnitKg
	}
	if !domain.ValidUnit(unit) {
		return 0, time.Time{}, invalid("unit must be \"kg\" or \"lb\"")
	}

	now := s.now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	if date.After(now.Add(24 * time.Hour)) {
		return 0, time.Time{}, invalid("date must not be in the future")
	}
	return domain.ConvertWeight(in.Value, unit, domain.UnitKg), date, nil
}
