// Package persistence provides database storage implementations.
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/sitewise/camcheck/domain/check"
	"github.com/sitewise/camcheck/domain/repository"
	"github.com/sitewise/camcheck/internal/database"
)

// CheckModel is the database shape of a check record. Inputs and
// results are stored as JSON documents; the verdict and percentage are
// lifted into columns so history queries can filter on them.
type CheckModel struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	CreatedAt       time.Time `gorm:"index"`
	Sufficient      bool
	Message         string
	CameraCount     int
	CoveragePercent int
	Target          string `gorm:"type:text"`
	Cameras         string `gorm:"type:text"`
	Result          string `gorm:"type:text"`
}

// TableName sets the table name for CheckModel.
func (CheckModel) TableName() string { return "checks" }

// CheckStore persists check records via GORM.
type CheckStore struct {
	repo database.Repository[check.Record, CheckModel]
}

// NewCheckStore creates a CheckStore.
func NewCheckStore(db database.Database) CheckStore {
	return CheckStore{
		repo: database.NewRepository[check.Record, CheckModel](db, checkMapper{}, "check"),
	}
}

// Save inserts a record and returns it with ID and CreatedAt set.
func (s CheckStore) Save(ctx context.Context, record check.Record) (check.Record, error) {
	model := checkMapper{}.ToModel(record)
	if err := s.repo.DB(ctx).Create(&model).Error; err != nil {
		return check.Record{}, fmt.Errorf("save check: %w", err)
	}
	return checkMapper{}.ToDomain(model), nil
}

// Find retrieves records matching the given options.
func (s CheckStore) Find(ctx context.Context, options ...repository.Option) ([]check.Record, error) {
	return s.repo.Find(ctx, options...)
}

// Get retrieves a single record by ID.
func (s CheckStore) Get(ctx context.Context, id int64) (check.Record, error) {
	return s.repo.FindOne(ctx, repository.WithID(id))
}

// Delete removes a record by ID.
func (s CheckStore) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteBy(ctx, repository.WithID(id))
}

// Count returns the total number of stored records.
func (s CheckStore) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// AutoMigrate runs GORM auto migration for all models.
func AutoMigrate(db database.Database) error {
	if err := db.GORM().AutoMigrate(&CheckModel{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
