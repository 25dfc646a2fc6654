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

// ProductRepository is the PostgreSQL ports.ProductRepository. Updates run
// in a transaction because the link rows are replaced wholesale to match
// the aggregate's collection.
type ProductRepository struct {
	db      *gorm.DB
	metrics repoMetrics
	logger  *zap.Logger
}

// NewProductRepository creates a ProductRepository.
func NewProductRepository(db *gorm.DB, collector *observability.Collector, logger *zap.Logger) *ProductRepository {
	return &ProductRepository{
		db:      db,
		metrics: repoMetrics{collector: collector, table: "products"},
		logger:  logger,
	}
}

// GetByID returns (nil, nil) when the product does not exist.
func (r *ProductRepository) GetByID(ctx context.Context, id valueobjects.ProductID) (*aggregates.Product, error) {
	start := time.Now()
	var record productRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id.String()).Error
	r.metrics.observe("get_by_id", start, err)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("ProductRepository.GetByID", err)
	}
	return record.toAggregate(), nil
}

// GetByIDWithIncludes loads the product with its category links.
func (r *ProductRepository) GetByIDWithIncludes(ctx context.Context, id valueobjects.ProductID) (*aggregates.Product, error) {
	start := time.Now()
	var record productRecord
	err := r.db.WithContext(ctx).
		Preload("ProductCategories").
		First(&record, "id = ?", id.String()).Error
	r.metrics.observe("get_by_id_with_includes", start, err)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("ProductRepository.GetByIDWithIncludes", err)
	}
	return record.toAggregate(), nil
}

// GetByName returns (nil, nil) when no product carries the name.
func (r *ProductRepository) GetByName(ctx context.Context, name string) (*aggregates.Product, error) {
	start := time.Now()
	var record productRecord
	err := r.db.WithContext(ctx).First(&record, "name = ?", name).Error
	r.metrics.observe("get_by_name", start, err)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("ProductRepository.GetByName", err)
	}
	return record.toAggregate(), nil
}

// GetAll lists every product.
func (r *ProductRepository) GetAll(ctx context.Context) ([]*aggregates.Product, error) {
	start := time.Now()
	var records []productRecord
	err := r.db.WithContext(ctx).Find(&records).Error
	r.metrics.observe("get_all", start, err)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("ProductRepository.GetAll", err)
	}
	return productsFromRecords(records), nil
}

// GetAllWithIncludes lists every product with category links.
func (r *ProductRepository) GetAllWithIncludes(ctx context.Context) ([]*aggregates.Product, error) {
	start := time.Now()
	var records []productRecord
	err := r.db.WithContext(ctx).Preload("ProductCategories").Find(&records).Error
	r.metrics.observe("get_all_with_includes", start, err)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("ProductRepository.GetAllWithIncludes", err)
	}
	return productsFromRecords(records), nil
}

// GetByCreatorID lists the products owned by a creator, links included.
func (r *ProductRepository) GetByCreatorID(ctx context.Context, creatorID valueobjects.CreatorID) ([]*aggregates.Product, error) {
	start := time.Now()
	var records []productRecord
	err := r.db.WithContext(ctx).
		Preload("ProductCategories").
		Where("creator_id = ?", creatorID.String()).
		Find(&records).Error
	r.metrics.observe("get_by_creator_id", start, err)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("ProductRepository.GetByCreatorID", err)
	}
	return productsFromRecords(records), nil
}

func productsFromRecords(records []productRecord) []*aggregates.Product {
	all := make([]*aggregates.Product, 0, len(records))
	for _, record := range records {
		all = append(all, record.toAggregate())
	}
	return all
}

// Add inserts a new product row together with any link rows.
func (r *ProductRepository) Add(ctx context.Context, product *aggregates.Product) error {
	start := time.Now()
	record := newProductRecord(product)
	err := r.db.WithContext(ctx).Create(&record).Error
	r.metrics.observe("add", start, err)
	if err != nil {
		return pkgerrors.NewDatabaseError("ProductRepository.Add", err)
	}
	r.logger.Debug("product row inserted", zap.String("product_id", record.ID))
	return nil
}

// Update saves scalar fields and replaces the link rows so the stored set
// always mirrors the aggregate's collection.
func (r *ProductRepository) Update(ctx context.Context, product *aggregates.Product) error {
	start := time.Now()
	record := newProductRecord(product)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Model(&productRecord{ID: record.ID}).
			Select("Name", "Producer", "PictureName", "PictureURL", "UpdatedAt").
			Updates(record).Error; err != nil {
			return err
		}

		if err := tx.
			Where("product_id = ?", record.ID).
			Delete(&productCategoryRecord{}).Error; err != nil {
			return err
		}
		if len(record.ProductCategories) > 0 {
			if err := tx.Create(&record.ProductCategories).Error; err != nil {
				return err
			}
		}
		return nil
	})
	r.metrics.observe("update", start, err)
	if err != nil {
		return pkgerrors.NewDatabaseError("ProductRepository.Update", err)
	}
	return nil
}

// Delete removes the product row; its link rows cascade.
func (r *ProductRepository) Delete(ctx context.Context, id valueobjects.ProductID) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Delete(&productRecord{ID: id.String()}).Error
	r.metrics.observe("delete", start, err)
	if err != nil {
		return pkgerrors.NewDatabaseError("ProductRepository.Delete", err)
	}
	return nil
}
