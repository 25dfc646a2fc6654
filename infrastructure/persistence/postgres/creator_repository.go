package postgres

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"catalog-backend/domain/core/aggregates"
	"catalog-backend/domain/core/valueobjects"
	pkgerrors "catalog-backend/pkg/errors"
	"catalog-backend/pkg/observability"
)

// CreatorRepository is the PostgreSQL ports.CreatorRepository.
type CreatorRepository struct {
	db      *gorm.DB
	metrics repoMetrics
	logger  *zap.Logger
}

// NewCreatorRepository creates a CreatorRepository.
func NewCreatorRepository(db *gorm.DB, collector *observability.Collector, logger *zap.Logger) *CreatorRepository {
	return &CreatorRepository{
		db:      db,
		metrics: repoMetrics{collector: collector, table: "creators"},
		logger:  logger,
	}
}

// GetByID returns (nil, nil) when the creator does not exist.
func (r *CreatorRepository) GetByID(ctx context.Context, id valueobjects.CreatorID) (*aggregates.Creator, error) {
	start := time.Now()
	var record creatorRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id.String()).Error
	r.metrics.observe("get_by_id", start, err)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("CreatorRepository.GetByID", err)
	}
	return record.toAggregate(), nil
}

// GetByIDWithIncludes loads the creator with its owned product rows.
func (r *CreatorRepository) GetByIDWithIncludes(ctx context.Context, id valueobjects.CreatorID) (*aggregates.Creator, error) {
	start := time.Now()
	var record creatorRecord
	err := r.db.WithContext(ctx).
		Preload("Products").
		First(&record, "id = ?", id.String()).Error
	r.metrics.observe("get_by_id_with_includes", start, err)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("CreatorRepository.GetByIDWithIncludes", err)
	}
	return record.toAggregate(), nil
}

// GetByName returns (nil, nil) when no creator carries the name.
func (r *CreatorRepository) GetByName(ctx context.Context, name string) (*aggregates.Creator, error) {
	start := time.Now()
	var record creatorRecord
	err := r.db.WithContext(ctx).First(&record, "name = ?", name).Error
	r.metrics.observe("get_by_name", start, err)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("CreatorRepository.GetByName", err)
	}
	return record.toAggregate(), nil
}

// GetAll lists every creator.
func (r *CreatorRepository) GetAll(ctx context.Context) ([]*aggregates.Creator, error) {
	start := time.Now()
	var records []creatorRecord
	err := r.db.WithContext(ctx).Find(&records).Error
	r.metrics.observe("get_all", start, err)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("CreatorRepository.GetAll", err)
	}
	all := make([]*aggregates.Creator, 0, len(records))
	for _, record := range records {
		all = append(all, record.toAggregate())
	}
	return all, nil
}

// Add inserts a new creator row.
func (r *CreatorRepository) Add(ctx context.Context, creator *aggregates.Creator) error {
	start := time.Now()
	record := newCreatorRecord(creator)
	err := r.db.WithContext(ctx).Create(&record).Error
	r.metrics.observe("add", start, err)
	if err != nil {
		return pkgerrors.NewDatabaseError("CreatorRepository.Add", err)
	}
	r.logger.Debug("creator row inserted", zap.String("creator_id", record.ID))
	return nil
}

// Update saves the current aggregate state over the stored row.
func (r *CreatorRepository) Update(ctx context.Context, creator *aggregates.Creator) error {
	start := time.Now()
	record := newCreatorRecord(creator)
	err := r.db.WithContext(ctx).
		Model(&creatorRecord{ID: record.ID}).
		Select("Name", "Role", "UpdatedAt").
		Updates(record).Error
	r.metrics.observe("update", start, err)
	if err != nil {
		return pkgerrors.NewDatabaseError("CreatorRepository.Update", err)
	}
	return nil
}

// Delete removes the creator row.
func (r *CreatorRepository) Delete(ctx context.Context, id valueobjects.CreatorID) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Delete(&creatorRecord{ID: id.String()}).Error
	r.metrics.observe("delete", start, err)
	if err != nil {
		return pkgerrors.NewDatabaseError("CreatorRepository.Delete", err)
	}
	return nil
}
