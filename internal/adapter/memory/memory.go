// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"abbed/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu       sync.Mutex
	weights  []domain.WeightEntry
	profiles map[int64]domain.Profile
	users    []*domain.User
	sessions map[string]*domain.Session

	weightIDCounter int64
	userIDCounter   int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		profiles: make(map[int64]domain.Profile),
		sessions: make(map[string]*domain.Session),
	}
}

// Ensure interfaces are met.
var _ domain.WeightRepository = (*DB)(nil)
var _ domain.ProfileRepository = (*DB)(nil)
var _ domain.UserRepository = (*DB)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)

// --- WeightRepository ---

// AddEntry adds a weight entry.
func (db *DB) AddEntry(ctx context.Context, userID int64, weightKg float64, date time.Time) (*domain.WeightEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.weightIDCounter++
	now := time.Now().UTC()
	entry := domain.WeightEntry{
		ID:        db.weightIDCounter,
		UserID:    userID,
		Weight:    weightKg,
		Date:      date.UTC(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	db.weights = append(db.weights, entry)
	return &entry, nil
}

// UpdateEntry replaces weight and date of an entry owned by userID.
func (db *DB) UpdateEntry(ctx context.Context, userID, id int64, weightKg float64, date time.Time) (*domain.WeightEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	i := db.indexOf(userID, id)
	if i < 0 {
		return nil, fmt.Errorf("weight entry %d: %w", id, domain.ErrNotFound)
	}
	db.weights[i].Weight = weightKg
	db.weights[i].Date = date.UTC()
	db.weights[i].UpdatedAt = time.Now().UTC()
	e := db.weights[i]
	return &e, nil
}

// DeleteEntry removes an entry owned by userID.
func (db *DB) DeleteEntry(ctx context.Context, userID, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	i := db.indexOf(userID, id)
	if i < 0 {
		return fmt.Errorf("weight entry %d: %w", id, domain.ErrNotFound)
	}
	db.weights = append(db.weights[:i], db.weights[i+1:]...)
	return nil
}

// GetEntry returns a single entry owned by userID.
func (db *DB) GetEntry(ctx context.Context, userID, id int64) (*domain.WeightEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	i := db.indexOf(userID, id)
	if i < 0 {
		return nil, fmt.Errorf("weight entry %d: %w", id, domain.ErrNotFound)
	}
	e := db.weights[i]
	return &e, nil
}

// ListEntries lists a user's entries, newest first.
func (db *DB) ListEntries(ctx context.Context, userID int64, f domain.EntryFilter) ([]domain.WeightEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.WeightEntry, 0, len(db.weights))
	for _, w := range db.weights {
		if w.UserID != userID {
			continue
		}
		if !f.From.IsZero() && w.Date.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && !w.Date.Before(f.To) {
			continue
		}
		result = append(result, w)
	}

	// sort desc, matching the postgres ORDER BY
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.After(result[j].Date)
		}
		return result[i].ID > result[j].ID
	})

	if f.Limit > 0 && len(result) > f.Limit {
		result = result[:f.Limit]
	}
	return result, nil
}

func (db *DB) indexOf(userID, id int64) int {
	for i, w := range db.weights {
		if w.ID == id && w.UserID == userID {
			return i
		}
	}
	return -1
}

// --- ProfileRepository ---

// GetProfile returns the stored profile for userID.
func (db *DB) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	p, ok := db.profiles[userID]
	if !ok {
		return nil, fmt.Errorf("profile for user %d: %w", userID, domain.ErrNotFound)
	}
	return &p, nil
}

// UpsertProfile creates or replaces a profile.
func (db *DB) UpsertProfile(ctx context.Context, p domain.Profile) (*domain.Profile, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	now := time.Now().UTC()
	if old, ok := db.profiles[p.UserID]; ok {
		p.CreatedAt = old.CreatedAt
	} else {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	db.profiles[p.UserID] = p
	return &p, nil
}

// --- UserRepository ---

// GetByUsername retrieves a user by username.
func (db *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return u, nil
		}
	}
	// Return nil if not found
	return nil, nil
}

// GetByID retrieves a user by ID.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// Create creates a new user.
func (db *DB) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return nil, errors.New("user already exists")
		}
	}

	db.userIDCounter++
	u := &domain.User{
		ID:           db.userIDCounter,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	db.users = append(db.users, u)
	return u, nil
}

// Count returns the total number of users.
func (db *DB) Count(ctx context.Context) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.users), nil
}

// --- SessionRepository ---

// SessionRepo implements session persistence.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo creates a new session repository.
func (db *DB) NewSessionRepo() *SessionRepo {
	return &SessionRepo{db: db}
}

// Create creates a new session.
func (r *SessionRepo) Create(ctx context.Context, userID int64, token, userAgent, ip string, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[token] = &domain.Session{
		Token:     token,
		UserID:    userID,
		UserAgent: userAgent,
		IP:        ip,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

// GetByToken retrieves a session by token.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if s, ok := r.db.sessions[token]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

// Delete deletes a session.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	now := time.Now()
	var n int64
	for k, v := range r.db.sessions {
		if now.After(v.ExpiresAt) {
			delete(r.db.sessions, k)
			n++
		}
	}
	return n, nil
}
