package aggregates

import (
	"strings"
	"time"

	"catalog-backend/domain/core/entities"
	"catalog-backend/domain/core/valueobjects"
	"catalog-backend/domain/events"
	"catalog-backend/domain/rules"
	pkgerrors "catalog-backend/pkg/errors"
)

// Product is a catalog item owned by a creator. It carries the full set of
// category links for the product, so assignment and deallocation are local
// invariant checks on the aggregate.
type Product struct {
	events.Recorder

	id        valueobjects.ProductID
	creatorID valueobjects.CreatorID
	name      string
	producer  valueobjects.Producer
	picture   valueobjects.Picture
	createdAt time.Time
	updatedAt time.Time

	productCategories []entities.ProductCategory
}

// NewProduct constructs a Product after running the creation rule checks in
// fixed order: product identifier, creator identifier, name (empty, too
// short, too long), producer, then the optional picture. An empty picture
// means "no picture".
func NewProduct(
	id valueobjects.ProductID,
	creatorID valueobjects.CreatorID,
	name string,
	producer valueobjects.Producer,
	picture valueobjects.Picture,
) (*Product, error) {
	if rules.IsProductIDEmpty(id) {
		return nil, pkgerrors.NewInvalidProductID(id.String())
	}
	if rules.IsCreatorIDEmpty(creatorID) {
		return nil, pkgerrors.NewInvalidCreatorID(creatorID.String())
	}
	if err := checkProductName(name); err != nil {
		return nil, err
	}
	if err := checkProducer(producer); err != nil {
		return nil, err
	}
	if !picture.IsEmpty() {
		if err := checkIcon(picture); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	product := &Product{
		id:        id,
		creatorID: creatorID,
		name:      name,
		producer:  producer,
		picture:   picture,
		createdAt: now,
		updatedAt: now,
	}

	product.Record(events.NewProductCreatedEvent(id, creatorID, name, producer, picture))

	return product, nil
}

// ReconstituteProduct rebuilds a Product from storage, bypassing rule
// checks and event recording.
func ReconstituteProduct(
	id valueobjects.ProductID,
	creatorID valueobjects.CreatorID,
	name string,
	producer valueobjects.Producer,
	picture valueobjects.Picture,
	createdAt, updatedAt time.Time,
	productCategories []entities.ProductCategory,
) *Product {
	return &Product{
		id:                id,
		creatorID:         creatorID,
		name:              name,
		producer:          producer,
		picture:           picture,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
		productCategories: productCategories,
	}
}

// ID returns the product identifier.
func (p *Product) ID() valueobjects.ProductID { return p.id }

// CreatorID returns the identifier of the owning creator.
func (p *Product) CreatorID() valueobjects.CreatorID { return p.creatorID }

// Name returns the product name.
func (p *Product) Name() string { return p.name }

// Producer returns the product producer.
func (p *Product) Producer() valueobjects.Producer { return p.producer }

// Picture returns the product picture, EmptyPicture when none was set.
func (p *Product) Picture() valueobjects.Picture { return p.picture }

// CreatedAt returns the construction timestamp.
func (p *Product) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns the timestamp of the last real mutation.
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }

// ProductCategories returns the category links of this product.
func (p *Product) ProductCategories() []entities.ProductCategory {
	return p.productCategories
}

// SetName renames the product. Returns false without any effect when the
// new name equals the current one, ignoring case.
func (p *Product) SetName(name string) (bool, error) {
	if err := checkProductName(name); err != nil {
		return false, err
	}
	if strings.EqualFold(p.name, name) {
		return false, nil
	}

	oldName := p.name
	p.name = name
	p.updatedAt = time.Now()
	p.Record(events.NewProductNameChangedEvent(p.id, oldName, name))

	return true, nil
}

// SetProducer replaces the product producer. Returns false without any
// effect when the new producer equals the current one.
func (p *Product) SetProducer(producer valueobjects.Producer) (bool, error) {
	if err := checkProducer(producer); err != nil {
		return false, err
	}
	if p.producer.Equals(producer) {
		return false, nil
	}

	oldProducer := p.producer
	p.producer = producer
	p.updatedAt = time.Now()
	p.Record(events.NewProductProducerChangedEvent(p.id, oldProducer, producer))

	return true, nil
}

// UploadPicture sets or replaces the product picture. Returns false without
// any effect when the new picture equals the current one.
func (p *Product) UploadPicture(picture valueobjects.Picture) (bool, error) {
	if picture.IsEmpty() {
		return false, pkgerrors.NewPictureNameEmpty()
	}
	if err := checkIcon(picture); err != nil {
		return false, err
	}
	if p.picture.Equals(picture) {
		return false, nil
	}

	p.picture = picture
	p.updatedAt = time.Now()
	p.Record(events.NewProductPictureUploadedEvent(p.id, picture))

	return true, nil
}

// AssignCategory links the product to a category. The link collection holds
// at most one entry per category; a duplicate assignment fails and leaves
// the collection unchanged.
func (p *Product) AssignCategory(categoryID valueobjects.CategoryID) error {
	if rules.IsCategoryIDEmpty(categoryID) {
		return pkgerrors.NewInvalidCategoryID(categoryID.String())
	}

	link := entities.NewProductCategory(p.id, categoryID)
	for _, existing := range p.productCategories {
		if existing.Equals(link) {
			return pkgerrors.NewProductAlreadyAssigned(p.id.String(), categoryID.String())
		}
	}

	p.productCategories = append(p.productCategories, link)
	p.updatedAt = time.Now()
	p.Record(events.NewProductAssignedToCategoryEvent(p.id, categoryID))

	return nil
}

// DeallocateCategory removes a single category link. It fails when the
// product is not assigned to the given category.
func (p *Product) DeallocateCategory(categoryID valueobjects.CategoryID) error {
	if rules.IsCategoryIDEmpty(categoryID) {
		return pkgerrors.NewInvalidCategoryID(categoryID.String())
	}

	link := entities.NewProductCategory(p.id, categoryID)
	for i, existing := range p.productCategories {
		if existing.Equals(link) {
			p.productCategories = append(p.productCategories[:i], p.productCategories[i+1:]...)
			p.updatedAt = time.Now()
			p.Record(events.NewProductDeallocatedFromCategoryEvent(p.id, categoryID))
			return nil
		}
	}

	return pkgerrors.NewProductWithAssignedCategoryNotFound(p.id.String(), categoryID.String())
}

// DeallocateAllCategories removes every category link at once, recording a
// single event that carries the full removed list. It fails when the
// product has no category links.
func (p *Product) DeallocateAllCategories() error {
	if len(p.productCategories) == 0 {
		return pkgerrors.NewProductWithAssignedCategoriesNotFound(p.id.String())
	}

	removed := make([]valueobjects.CategoryID, 0, len(p.productCategories))
	for _, link := range p.productCategories {
		removed = append(removed, link.SecondKey())
	}

	p.productCategories = nil
	p.updatedAt = time.Now()
	p.Record(events.NewProductDeallocatedFromAllCategoriesEvent(p.id, removed))

	return nil
}

// MarkRemoved records the Removed event ahead of deletion.
func (p *Product) MarkRemoved() {
	p.Record(events.NewProductRemovedEvent(p.id, p.name))
}

// UncommittedEvents returns the pending events in raise order. It fails
// when invoked on a nil aggregate.
func (p *Product) UncommittedEvents() ([]events.DomainEvent, error) {
	if p == nil {
		return nil, pkgerrors.NewGetUncommittedEventsFailed()
	}
	return p.Uncommitted(), nil
}

// ClearEvents empties the pending list. It fails when invoked on a nil
// aggregate.
func (p *Product) ClearEvents() error {
	if p == nil {
		return pkgerrors.NewClearEventsFailed()
	}
	p.Clear()
	return nil
}

func checkProductName(name string) error {
	if rules.IsProductNameEmpty(name) {
		return pkgerrors.NewProductNameEmpty()
	}
	if rules.IsProductNameTooShort(name, rules.ProductNameMinLength) {
		return pkgerrors.NewProductNameTooShort(rules.ProductNameMinLength)
	}
	if rules.IsProductNameTooLong(name, rules.ProductNameMaxLength) {
		return pkgerrors.NewProductNameTooLong(rules.ProductNameMaxLength)
	}
	return nil
}

func checkProducer(producer valueobjects.Producer) error {
	if rules.IsProducerEmpty(producer) {
		return pkgerrors.NewProducerEmpty()
	}
	if rules.IsProducerNameTooShort(producer, rules.ProducerNameMinLength) {
		return pkgerrors.NewProducerNameTooShort(rules.ProducerNameMinLength)
	}
	if rules.IsProducerNameTooLong(producer, rules.ProducerNameMaxLength) {
		return pkgerrors.NewProducerNameTooLong(rules.ProducerNameMaxLength)
	}
	return nil
}
