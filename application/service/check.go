// Package service provides application services around the coverage
// core: orchestration, persistence, and logging. The core itself stays
// pure; everything with a side effect lives here.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sitewise/camcheck/domain/check"
	"github.com/sitewise/camcheck/domain/coverage"
	"github.com/sitewise/camcheck/domain/repository"
)

// Check runs coverage checks and keeps their history.
type Check struct {
	store  check.Store
	logger *slog.Logger
}

// NewCheck creates a Check service.
func NewCheck(store check.Store, logger *slog.Logger) *Check {
	if logger == nil {
		logger = slog.Default()
	}
	return &Check{store: store, logger: logger}
}

// Run validates the inputs, runs the coverage check, and persists the
// outcome. Malformed input returns an error wrapping
// coverage.ErrValidation and is not recorded in history.
func (s *Check) Run(ctx context.Context, target coverage.Target, cameras []coverage.Camera) (check.Record, error) {
	if err := coverage.Validate(target, cameras); err != nil {
		return check.Record{}, err
	}

	result := coverage.Check(target, cameras)

	record, err := s.store.Save(ctx, check.Record{
		Target:  target,
		Cameras: cameras,
		Result:  result,
	})
	if err != nil {
		return check.Record{}, fmt.Errorf("persist check: %w", err)
	}

	s.logger.Info("coverage check complete",
		"check_id", record.ID,
		"sufficient", result.Sufficient,
		"cameras", result.Stats.Cameras,
		"cells", result.Stats.CellsExamined,
		"uncovered", result.Stats.UncoveredCells,
		"percent", result.Stats.CoveragePercent,
	)

	return record, nil
}

// History returns stored checks, newest first.
func (s *Check) History(ctx context.Context, limit, offset int) ([]check.Record, error) {
	options := []repository.Option{repository.OrderByCreatedAtDesc()}
	if limit > 0 {
		options = append(options, repository.WithLimit(limit))
	}
	if offset > 0 {
		options = append(options, repository.WithOffset(offset))
	}
	return s.store.Find(ctx, options...)
}

// Get returns a stored check by ID.
func (s *Check) Get(ctx context.Context, id int64) (check.Record, error) {
	return s.store.Get(ctx, id)
}

// Delete removes a stored check by ID.
func (s *Check) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("check deleted", "check_id", id)
	return nil
}

// Count returns the number of stored checks.
func (s *Check) Count(ctx context.Context) (int64, error) {
	return s.store.Count(ctx)
}
