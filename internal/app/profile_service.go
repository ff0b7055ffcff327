package app

import (
	"context"
	"errors"
	"strings"

	"abbed/internal/domain"
)

// ProfileService reads and updates the per-user profile scalars.
type ProfileService struct {
	repo domain.ProfileRepository
}

// NewProfileService creates a ProfileService backed by the given repository.
func NewProfileService(repo domain.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// ProfileInput carries a full profile update. Nil fields clear the value.
type ProfileInput struct {
	Name        string
	HeightCm    *float64
	StartWeight *float64
	GoalWeight  *float64
}

// GetProfile returns the stored profile, or an empty one if the user never
// saved it.
func (s *ProfileService) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	p, err := s.repo.GetProfile(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.Profile{UserID: userID}, nil
	}
	return p, err
}

// UpdateProfile validates and stores the profile.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID int64, in ProfileInput) (*domain.Profile, error) {
	name := strings.TrimSpace(in.Name)
	if len(name) > 100 {
		return nil, invalid("name must be at most 100 characters")
	}
	for _, f := range []struct {
		name string
		v    *float64
	}{
		{"heightCm", in.HeightCm},
		{"startWeight", in.StartWeight},
		{"goalWeight", in.GoalWeight},
	} {
		if f.v != nil && *f.v <= 0 {
			return nil, invalid("%s must be > 0", f.name)
		}
	}

	return s.repo.UpsertProfile(ctx, domain.Profile{
		UserID:      userID,
		Name:        name,
		HeightCm:    in.HeightCm,
		StartWeight: in.StartWeight,
		GoalWeight:  in.GoalWeight,
	})
}
