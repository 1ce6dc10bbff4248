package camcheck

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitewise/camcheck/domain/coverage"
)

func TestClient_RunAndHistory(t *testing.T) {
	client, err := New(WithSQLite(filepath.Join(t.TempDir(), "camcheck.db")))
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	ctx := context.Background()
	target := coverage.Target{
		Distance: coverage.Range{Min: 0, Max: 10},
		Light:    coverage.Range{Min: 0, Max: 100},
	}
	cameras := []coverage.Camera{
		{ID: "cam", Distance: coverage.Range{Min: 0, Max: 10}, Light: coverage.Range{Min: 0, Max: 100}},
	}

	record, err := client.Checks.Run(ctx, target, cameras)
	require.NoError(t, err)
	assert.True(t, record.Result.Sufficient)

	history, err := client.Checks.History(ctx, 10, 0)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestClient_DefaultDatabaseInDataDir(t *testing.T) {
	dir := t.TempDir()
	client, err := New(WithDataDir(dir))
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	_, err = client.Checks.Count(context.Background())
	assert.NoError(t, err)
}

func TestClient_CloseIsIdempotent(t *testing.T) {
	client, err := New(WithSQLite(filepath.Join(t.TempDir(), "camcheck.db")))
	require.NoError(t, err)

	require.NoError(t, client.Close())
	require.NoError(t, client.Close())
}

func TestClient_BadDatabaseURL(t *testing.T) {
	_, err := New(WithDatabaseURL("mysql://nope"))
	assert.Error(t, err)
}
