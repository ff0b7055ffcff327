package domain

import (
	"context"
	"time"
)

// Profile holds the user-editable scalars the derived metrics read from.
// A nil pointer means the value was never set.
type Profile struct {
	UserID      int64     `json:"userId"`
	Name        string    `json:"name"`
	HeightCm    *float64  `json:"heightCm"`
	StartWeight *float64  `json:"startWeight"`
	GoalWeight  *float64  `json:"goalWeight"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Height returns the height in cm, or 0 when absent.
func (p Profile) Height() float64 { return deref(p.HeightCm) }

// Start returns the start weight in kg, or 0 when absent.
func (p Profile) Start() float64 { return deref(p.StartWeight) }

// Goal returns the goal weight in kg, or 0 when absent.
func (p Profile) Goal() float64 { return deref(p.GoalWeight) }

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// ProfileRepository is the port for profile persistence. GetProfile returns
// ErrNotFound when the user has never saved a profile.
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID int64) (*Profile, error)
	UpsertProfile(ctx context.Context, p Profile) (*Profile, error)
}
