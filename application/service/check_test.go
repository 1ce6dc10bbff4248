package service

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitewise/camcheck/domain/coverage"
	"github.com/sitewise/camcheck/infrastructure/persistence"
	"github.com/sitewise/camcheck/internal/database"
)

func newCheckService(t *testing.T) *Check {
	t.Helper()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := database.NewDatabase(ctx, "sqlite:///"+path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, persistence.AutoMigrate(db))
	return NewCheck(persistence.NewCheckStore(db), slog.Default())
}

func coveredTarget() (coverage.Target, []coverage.Camera) {
	target := coverage.Target{
		Distance: coverage.Range{Min: 0, Max: 20},
		Light:    coverage.Range{Min: 0, Max: 100},
	}
	cameras := []coverage.Camera{
		{ID: "a", Distance: coverage.Range{Min: 0, Max: 10}, Light: coverage.Range{Min: 0, Max: 100}},
		{ID: "b", Distance: coverage.Range{Min: 10, Max: 20}, Light: coverage.Range{Min: 0, Max: 100}},
	}
	return target, cameras
}

func TestCheck_Run_PersistsRecord(t *testing.T) {
	svc := newCheckService(t)
	ctx := context.Background()

	target, cameras := coveredTarget()
	record, err := svc.Run(ctx, target, cameras)
	require.NoError(t, err)

	assert.NotZero(t, record.ID)
	assert.True(t, record.Result.Sufficient)
	assert.Equal(t, "coverage complete", record.Result.Message)

	stored, err := svc.Get(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.Result, stored.Result)
}

func TestCheck_Run_ValidationErrorNotPersisted(t *testing.T) {
	svc := newCheckService(t)
	ctx := context.Background()

	target := coverage.Target{
		Distance: coverage.Range{Min: 20, Max: 1},
		Light:    coverage.Range{Min: 0, Max: 100},
	}
	_, err := svc.Run(ctx, target, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, coverage.ErrValidation))

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "validation failures must not enter history")
}

func TestCheck_Run_InsufficientIsNotAnError(t *testing.T) {
	svc := newCheckService(t)
	ctx := context.Background()

	target := coverage.Target{
		Distance: coverage.Range{Min: 0, Max: 20},
		Light:    coverage.Range{Min: 0, Max: 100},
	}
	record, err := svc.Run(ctx, target, nil)
	require.NoError(t, err, "insufficient coverage is a normal negative result")
	assert.False(t, record.Result.Sufficient)
	assert.Equal(t, "no cameras provided", record.Result.Message)
}

func TestCheck_History(t *testing.T) {
	svc := newCheckService(t)
	ctx := context.Background()

	target, cameras := coveredTarget()
	for range 3 {
		_, err := svc.Run(ctx, target, cameras)
		require.NoError(t, err)
	}

	records, err := svc.History(ctx, 2, 0)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	records, err = svc.History(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestCheck_Delete(t *testing.T) {
	svc := newCheckService(t)
	ctx := context.Background()

	target, cameras := coveredTarget()
	record, err := svc.Run(ctx, target, cameras)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, record.ID))

	_, err = svc.Get(ctx, record.ID)
	assert.True(t, errors.Is(err, database.ErrNotFound))
}
