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

// CategoryRepository is the PostgreSQL ports.CategoryRepository.
type CategoryRepository struct {
	db      *gorm.DB
	metrics repoMetrics
	logger  *zap.Logger
}

// NewCategoryRepository creates a CategoryRepository.
func NewCategoryRepository(db *gorm.DB, collector *observability.Collector, logger *zap.Logger) *CategoryRepository {
	return &CategoryRepository{
		db:      db,
		metrics: repoMetrics{collector: collector, table: "categories"},
		logger:  logger,
	}
}

// GetByID returns (nil, nil) when the category does not exist.
func (r *CategoryRepository) GetByID(ctx context.Context, id valueobjects.CategoryID) (*aggregates.Category, error) {
	start := time.Now()
	var record categoryRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id.String()).Error
	r.metrics.observe("get_by_id", start, err)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("CategoryRepository.GetByID", err)
	}
	return record.toAggregate(), nil
}

// GetByIDWithIncludes loads the category with its product links.
func (r *CategoryRepository) GetByIDWithIncludes(ctx context.Context, id valueobjects.CategoryID) (*aggregates.Category, error) {
	start := time.Now()
	var record categoryRecord
	err := r.db.WithContext(ctx).
		Preload("ProductCategories").
		First(&record, "id = ?", id.String()).Error
	r.metrics.observe("get_by_id_with_includes", start, err)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("CategoryRepository.GetByIDWithIncludes", err)
	}
	return record.toAggregate(), nil
}

// GetByName returns (nil, nil) when no category carries the name.
func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*aggregates.Category, error) {
	start := time.Now()
	var record categoryRecord
	err := r.db.WithContext(ctx).First(&record, "name = ?", name).Error
	r.metrics.observe("get_by_name", start, err)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("CategoryRepository.GetByName", err)
	}
	return record.toAggregate(), nil
}

// GetAll lists every category.
func (r *CategoryRepository) GetAll(ctx context.Context) ([]*aggregates.Category, error) {
	start := time.Now()
	var records []categoryRecord
	err := r.db.WithContext(ctx).Find(&records).Error
	r.metrics.observe("get_all", start, err)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("CategoryRepository.GetAll", err)
	}
	return categoriesFromRecords(records), nil
}

// GetAllWithIncludes lists every category with product links.
func (r *CategoryRepository) GetAllWithIncludes(ctx context.Context) ([]*aggregates.Category, error) {
	start := time.Now()
	var records []categoryRecord
	err := r.db.WithContext(ctx).Preload("ProductCategories").Find(&records).Error
	r.metrics.observe("get_all_with_includes", start, err)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("CategoryRepository.GetAllWithIncludes", err)
	}
	return categoriesFromRecords(records), nil
}

func categoriesFromRecords(records []categoryRecord) []*aggregates.Category {
	all := make([]*aggregates.Category, 0, len(records))
	for _, record := range records {
		all = append(all, record.toAggregate())
	}
	return all
}

// Add inserts a new category row.
func (r *CategoryRepository) Add(ctx context.Context, category *aggregates.Category) error {
	start := time.Now()
	record := newCategoryRecord(category)
	err := r.db.WithContext(ctx).Create(&record).Error
	r.metrics.observe("add", start, err)
	if err != nil {
		return pkgerrors.NewDatabaseError("CategoryRepository.Add", err)
	}
	r.logger.Debug("category row inserted", zap.String("category_id", record.ID))
	return nil
}

// Update saves the current aggregate state over the stored row.
func (r *CategoryRepository) Update(ctx context.Context, category *aggregates.Category) error {
	start := time.Now()
	record := newCategoryRecord(category)
	err := r.db.WithContext(ctx).
		Model(&categoryRecord{ID: record.ID}).
		Select("Name", "Description", "IconName", "IconURL", "UpdatedAt").
		Updates(record).Error
	r.metrics.observe("update", start, err)
	if err != nil {
		return pkgerrors.NewDatabaseError("CategoryRepository.Update", err)
	}
	return nil
}

// Delete removes the category row; its join rows cascade.
func (r *CategoryRepository) Delete(ctx context.Context, id valueobjects.CategoryID) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Delete(&categoryRecord{ID: id.String()}).Error
	r.metrics.observe("delete", start, err)
	if err != nil {
		return pkgerrors.NewDatabaseError("CategoryRepository.Delete", err)
	}
	return nil
}
