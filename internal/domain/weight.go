package domain

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by repositories when a requested record is missing.
var ErrNotFound = errors.New("not found")

// WeightEntry represents a single weight measurement. Weight is always kg.
type WeightEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Weight    float64   `json:"weight"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Day returns the entry's calendar day in loc as YYYY-MM-DD.
func (e WeightEntry) Day(loc *time.Location) string {
	return e.Date.In(loc).Format(DayLayout)
}

// EntryFilter narrows ListEntries. Zero From/To are open bounds, Limit <= 0
// means no limit.
type EntryFilter struct {
	From  time.Time
	To    time.Time
	Limit int
}

// WeightRepository is the port for weight persistence. ListEntries returns
// entries newest first.
type WeightRepository interface {
	AddEntry(ctx context.Context, userID int64, weightKg float64, date time.Time) (*WeightEntry, error)
	UpdateEntry(ctx context.Context, userID, id int64, weightKg float64, date time.Time) (*WeightEntry, error)
	DeleteEntry(ctx context.Context, userID, id int64) error
	GetEntry(ctx context.Context, userID, id int64) (*WeightEntry, error)
	ListEntries(ctx context.Context, userID int64, f EntryFilter) ([]WeightEntry, error)
}
