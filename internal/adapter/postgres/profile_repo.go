package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"abbed/internal/domain"
)

// GetProfile returns the stored profile for userID.
func (d *DB) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	row := d.sql.QueryRowContext(ctx,
		"SELECT user_id, name, height_cm, start_weight_kg, goal_weight_kg, created_at, updated_at FROM profiles WHERE user_id=$1;",
		userID,
	)
	p, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("profile for user %d: %w", userID, domain.ErrNotFound)
	}
	return p, err
}

// UpsertProfile creates or replaces a profile.
func (d *DB) UpsertProfile(ctx context.Context, p domain.Profile) (*domain.Profile, error) {
	now := time.Now().UTC()
	row := d.sql.QueryRowContext(ctx, `
		INSERT INTO profiles (user_id, name, height_cm, start_weight_kg, goal_weight_kg, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			height_cm = EXCLUDED.height_cm,
			start_weight_kg = EXCLUDED.start_weight_kg,
			goal_weight_kg = EXCLUDED.goal_weight_kg,
			updated_at = EXCLUDED.updated_at
		RETURNING user_id, name, height_cm, start_weight_kg, goal_weight_kg, created_at, updated_at;`,
		p.UserID, p.Name, p.HeightCm, p.StartWeight, p.GoalWeight, now,
	)
	return scanProfile(row)
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var (
		p                   domain.Profile
		height, start, goal sql.NullFloat64
	)
	if err := row.Scan(&p.UserID, &p.Name, &height, &start, &goal, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.HeightCm = nullable(height)
	p.StartWeight = nullable(start)
	p.GoalWeight = nullable(goal)
	return &p, nil
}

func nullable(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
