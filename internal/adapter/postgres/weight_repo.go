package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"abbed/internal/domain"
)

const weightColumns = "id, user_id, weight_kg, entry_date, created_at, updated_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWeight(row rowScanner) (*domain.WeightEntry, error) {
	var e domain.WeightEntry
	if err := row.Scan(&e.ID, &e.UserID, &e.Weight, &e.Date, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

// AddEntry inserts a new weight entry.
func (d *DB) AddEntry(ctx context.Context, userID int64, weightKg float64, date time.Time) (*domain.WeightEntry, error) {
	now := time.Now().UTC()
	row := d.sql.QueryRowContext(ctx,
		"INSERT INTO weight_entries(user_id, weight_kg, entry_date, created_at, updated_at) VALUES($1, $2, $3, $4, $4) RETURNING "+weightColumns+";",
		userID, weightKg, date.UTC(), now,
	)
	return scanWeight(row)
}

// UpdateEntry replaces weight and date of an entry owned by userID.
func (d *DB) UpdateEntry(ctx context.Context, userID, id int64, weightKg float64, date time.Time) (*domain.WeightEntry, error) {
	row := d.sql.QueryRowContext(ctx,
		"UPDATE weight_entries SET weight_kg=$1, entry_date=$2, updated_at=$3 WHERE id=$4 AND user_id=$5 RETURNING "+weightColumns+";",
		weightKg, date.UTC(), time.Now().UTC(), id, userID,
	)
	e, err := scanWeight(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("weight entry %d: %w", id, domain.ErrNotFound)
	}
	return e, err
}

// DeleteEntry removes an entry owned by userID.
func (d *DB) DeleteEntry(ctx context.Context, userID, id int64) error {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM weight_entries WHERE id=$1 AND user_id=$2;", id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("weight entry %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// GetEntry returns a single entry owned by userID.
func (d *DB) GetEntry(ctx context.Context, userID, id int64) (*domain.WeightEntry, error) {
	row := d.sql.QueryRowContext(ctx,
		"SELECT "+weightColumns+" FROM weight_entries WHERE id=$1 AND user_id=$2;", id, userID)
	e, err := scanWeight(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("weight entry %d: %w", id, domain.ErrNotFound)
	}
	return e, err
}

// ListEntries returns a user's entries newest first, narrowed by f.
func (d *DB) ListEntries(ctx context.Context, userID int64, f domain.EntryFilter) ([]domain.WeightEntry, error) {
	q, args, err := listEntriesQuery(userID, f)
	if err != nil {
		return nil, err
	}

	rows, err := d.sql.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.WeightEntry
	for rows.Next() {
		e, err := scanWeight(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

func listEntriesQuery(userID int64, f domain.EntryFilter) (string, []any, error) {
	b := psql.Select(weightColumns).
		From("weight_entries").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("entry_date DESC", "id DESC")
	if !f.From.IsZero() {
		b = b.Where(sq.GtOrEq{"entry_date": f.From.UTC()})
	}
	if !f.To.IsZero() {
		b = b.Where(sq.Lt{"entry_date": f.To.UTC()})
	}
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}
	return b.ToSql()
}
