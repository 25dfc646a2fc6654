package postgres

import (
	"time"

	"catalog-backend/domain/core/aggregates"
	"catalog-backend/domain/core/entities"
	"catalog-backend/domain/core/valueobjects"
)

// categoryRecord is the relational shape of a Category aggregate.
type categoryRecord struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	Name        string `gorm:"size:30;uniqueIndex;not null"`
	Description string `gorm:"size:4000"`
	IconName    string `gorm:"size:200"`
	IconURL     string `gorm:"size:500"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	ProductCategories []productCategoryRecord `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

func (categoryRecord) TableName() string { return "categories" }

// creatorRecord is the relational shape of a Creator aggregate.
type creatorRecord struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	Name      string `gorm:"size:50;not null"`
	Role      string `gorm:"size:20;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Products []productRecord `gorm:"foreignKey:CreatorID"`
}

func (creatorRecord) TableName() string { return "creators" }

// productRecord is the relational shape of a Product aggregate.
type productRecord struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	CreatorID   string `gorm:"type:uuid;index;not null"`
	Name        string `gorm:"size:30;not null"`
	Producer    string `gorm:"size:50;not null"`
	PictureName string `gorm:"size:200"`
	PictureURL  string `gorm:"size:500"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	ProductCategories []productCategoryRecord `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (productRecord) TableName() string { return "products" }

// productCategoryRecord is the join row behind the ProductCategory entity.
type productCategoryRecord struct {
	ProductID  string `gorm:"primaryKey;type:uuid"`
	CategoryID string `gorm:"primaryKey;type:uuid"`
}

func (productCategoryRecord) TableName() string { return "product_categories" }

func newCategoryRecord(category *aggregates.Category) categoryRecord {
	links := make([]productCategoryRecord, 0, len(category.ProductCategories()))
	for _, link := range category.ProductCategories() {
		links = append(links, productCategoryRecord{
			ProductID:  link.FirstKey().String(),
			CategoryID: link.SecondKey().String(),
		})
	}

	return categoryRecord{
		ID:                category.ID().String(),
		Name:              category.Name(),
		Description:       category.Description(),
		IconName:          category.Icon().Name(),
		IconURL:           category.Icon().URL(),
		CreatedAt:         category.CreatedAt(),
		UpdatedAt:         category.UpdatedAt(),
		ProductCategories: links,
	}
}

func (r categoryRecord) toAggregate() *aggregates.Category {
	var links []entities.ProductCategory
	for _, link := range r.ProductCategories {
		links = append(links, entities.NewProductCategory(
			valueobjects.ReconstituteProductID(link.ProductID),
			valueobjects.ReconstituteCategoryID(link.CategoryID),
		))
	}

	return aggregates.ReconstituteCategory(
		valueobjects.ReconstituteCategoryID(r.ID),
		r.Name,
		r.Description,
		valueobjects.ReconstitutePicture(r.IconName, r.IconURL),
		r.CreatedAt,
		r.UpdatedAt,
		links,
	)
}

func newCreatorRecord(creator *aggregates.Creator) creatorRecord {
	return creatorRecord{
		ID:        creator.ID().String(),
		Name:      creator.Name(),
		Role:      creator.Role().String(),
		CreatedAt: creator.CreatedAt(),
		UpdatedAt: creator.UpdatedAt(),
	}
}

func (r creatorRecord) toAggregate() *aggregates.Creator {
	var products []valueobjects.ProductID
	for _, product := range r.Products {
		products = append(products, valueobjects.ReconstituteProductID(product.ID))
	}

	return aggregates.ReconstituteCreator(
		valueobjects.ReconstituteCreatorID(r.ID),
		r.Name,
		valueobjects.Role(r.Role),
		r.CreatedAt,
		r.UpdatedAt,
		products,
	)
}

func newProductRecord(product *aggregates.Product) productRecord {
	links := make([]productCategoryRecord, 0, len(product.ProductCategories()))
	for _, link := range product.ProductCategories() {
		links = append(links, productCategoryRecord{
			ProductID:  link.FirstKey().String(),
			CategoryID: link.SecondKey().String(),
		})
	}

	return productRecord{
		ID:                product.ID().String(),
		CreatorID:         product.CreatorID().String(),
		Name:              product.Name(),
		Producer:          product.Producer().Name(),
		PictureName:       product.Picture().Name(),
		PictureURL:        product.Picture().URL(),
		CreatedAt:         product.CreatedAt(),
		UpdatedAt:         product.UpdatedAt(),
		ProductCategories: links,
	}
}

func (r productRecord) toAggregate() *aggregates.Product {
	var links []entities.ProductCategory
	for _, link := range r.ProductCategories {
		links = append(links, entities.NewProductCategory(
			valueobjects.ReconstituteProductID(link.ProductID),
			valueobjects.ReconstituteCategoryID(link.CategoryID),
		))
	}

	return aggregates.ReconstituteProduct(
		valueobjects.ReconstituteProductID(r.ID),
		valueobjects.ReconstituteCreatorID(r.CreatorID),
		r.Name,
		valueobjects.ReconstituteProducer(r.Producer),
		valueobjects.ReconstitutePicture(r.PictureName, r.PictureURL),
		r.CreatedAt,
		r.UpdatedAt,
		links,
	)
}
