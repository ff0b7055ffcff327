//go:build integration

package postgres

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"abbed/internal/domain"
)

var (
	once      sync.Once
	sharedDSN string
	initErr   error
)

// openTestDB starts one PostgreSQL container per test run and opens a
// migrated DB against it.
func openTestDB(t *testing.T) *DB {
	t.Helper()

	once.Do(func() {
		sharedDSN, initErr = startContainer()
	})
	if initErr != nil {
		t.Fatalf("start postgres: %v", initErr)
	}

	db, err := Open(sharedDSN, Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func startContainer() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "abbed",
				"POSTGRES_PASSWORD": "abbed",
				"POSTGRES_DB":       "abbed",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("mapped port: %w", err)
	}
	return fmt.Sprintf("postgres://abbed:abbed@%s:%s/abbed?sslmode=disable", host, port.Port()), nil
}

func newUser(t *testing.T, db *DB) *domain.User {
	t.Helper()
	u, err := db.Create(context.Background(), fmt.Sprintf("user-%d", time.Now().UnixNano()), "hash")
	require.NoError(t, err)
	return u
}

func TestWeightRepo_Integration(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	u := newUser(t, db)
	other := newUser(t, db)

	day := func(d int) time.Time { return time.Date(2026, 3, d, 12, 0, 0, 0, time.UTC) }

	first, err := db.AddEntry(ctx, u.ID, 80, day(1))
	require.NoError(t, err)
	_, err = db.AddEntry(ctx, u.ID, 79.5, day(2))
	require.NoError(t, err)
	third, err := db.AddEntry(ctx, u.ID, 79, day(3))
	require.NoError(t, err)

	all, err := db.ListEntries(ctx, u.ID, domain.EntryFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, third.ID, all[0].ID)

	window, err := db.ListEntries(ctx, u.ID, domain.EntryFilter{From: day(2), To: day(3)})
	require.NoError(t, err)
	require.Len(t, window, 1)
	assert.InDelta(t, 79.5, window[0].Weight, 1e-9)

	_, err = db.UpdateEntry(ctx, other.ID, first.ID, 70, day(1))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	updated, err := db.UpdateEntry(ctx, u.ID, first.ID, 81, day(1))
	require.NoError(t, err)
	assert.InDelta(t, 81, updated.Weight, 1e-9)

	assert.ErrorIs(t, db.DeleteEntry(ctx, other.ID, third.ID), domain.ErrNotFound)
	require.NoError(t, db.DeleteEntry(ctx, u.ID, third.ID))
	_, err = db.GetEntry(ctx, u.ID, third.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProfileRepo_Integration(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	u := newUser(t, db)

	_, err := db.GetProfile(ctx, u.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	h := 180.0
	p, err := db.UpsertProfile(ctx, domain.Profile{UserID: u.ID, Name: "Sam", HeightCm: &h})
	require.NoError(t, err)
	assert.Equal(t, "Sam", p.Name)
	require.NotNil(t, p.HeightCm)
	assert.Nil(t, p.GoalWeight)

	g := 70.0
	p2, err := db.UpsertProfile(ctx, domain.Profile{UserID: u.ID, Name: "Sam", GoalWeight: &g})
	require.NoError(t, err)
	assert.Nil(t, p2.HeightCm)
	require.NotNil(t, p2.GoalWeight)
	assert.Equal(t, p.CreatedAt.Unix(), p2.CreatedAt.Unix())
}

func TestSessionRepo_Integration(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	u := newUser(t, db)
	repo := NewSessionRepo(db)

	require.NoError(t, repo.Create(ctx, u.ID, "live-"+u.Username, "ua", "10.0.0.1", time.Now().Add(time.Hour)))
	require.NoError(t, repo.Create(ctx, u.ID, "dead-"+u.Username, "ua", "10.0.0.1", time.Now().Add(-time.Hour)))

	s, err := repo.GetByToken(ctx, "live-"+u.Username)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "ua", s.UserAgent)
	assert.Equal(t, "10.0.0.1", s.IP)

	n, err := repo.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, int64(1))

	gone, err := repo.GetByToken(ctx, "dead-"+u.Username)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
