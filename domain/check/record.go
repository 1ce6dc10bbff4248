// Package check defines stored coverage-check runs.
package check

import (
	"context"
	"time"

	"github.com/sitewise/camcheck/domain/coverage"
	"github.com/sitewise/camcheck/domain/repository"
)

// Record is one persisted coverage check: the inputs as submitted and
// the verdict the checker produced for them.
type Record struct {
	ID        int64
	CreatedAt time.Time
	Target    coverage.Target
	Cameras   []coverage.Camera
	Result    coverage.Result
}

// Store persists check records.
type Store interface {
	// Save inserts a record and returns it with ID and CreatedAt set.
	Save(ctx context.Context, record Record) (Record, error)

	// Find retrieves records matching the given options.
	Find(ctx context.Context, options ...repository.Option) ([]Record, error)

	// Get retrieves a single record by ID.
	Get(ctx context.Context, id int64) (Record, error)

	// Delete removes a record by ID.
	Delete(ctx context.Context, id int64) error

	// Count returns the total number of stored records.
	Count(ctx context.Context) (int64, error)
}
