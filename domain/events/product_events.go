package events

import (
	"catalog-backend/domain/core/valueobjects"
)

// ProductCreatedEvent is fired when a new product enters the catalog.
type ProductCreatedEvent struct {
	BaseEvent
	CreatorID   string `json:"creator_id"`
	Name        string `json:"name"`
	Producer    string `json:"producer"`
	PictureName string `json:"picture_name,omitempty"`
	PictureURL  string `json:"picture_url,omitempty"`
}

// NewProductCreatedEvent creates a new ProductCreatedEvent.
func NewProductCreatedEvent(productID valueobjects.ProductID, creatorID valueobjects.CreatorID, name string, producer valueobjects.Producer, picture valueobjects.Picture) *ProductCreatedEvent {
	return &ProductCreatedEvent{
		BaseEvent:   NewBaseEvent(TypeProductCreated, productID.String()),
		CreatorID:   creatorID.String(),
		Name:        name,
		Producer:    producer.Name(),
		PictureName: picture.Name(),
		PictureURL:  picture.URL(),
	}
}

// EventData returns the event-specific data.
func (e *ProductCreatedEvent) EventData() map[string]interface{} {
	return map[string]interface{}{
		"creator_id":   e.CreatorID,
		"name":         e.Name,
		"producer":     e.Producer,
		"picture_name": e.PictureName,
		"picture_url":  e.PictureURL,
	}
}

// ProductNameChangedEvent is fired when a product is renamed.
type ProductNameChangedEvent struct {
	BaseEvent
	OldName string `json:"old_name"`
	NewName string `json:"new_name"`
}

// NewProductNameChangedEvent creates a new ProductNameChangedEvent.
func NewProductNameChangedEvent(productID valueobjects.ProductID, oldName, newName string) *ProductNameChangedEvent {
	return &ProductNameChangedEvent{
		BaseEvent: NewBaseEvent(TypeProductNameChanged, productID.String()),
		OldName:   oldName,
		NewName:   newName,
	}
}

// EventData returns the event-specific data.
func (e *ProductNameChangedEvent) EventData() map[string]interface{} {
	return map[string]interface{}{
		"old_name": e.OldName,
		"new_name": e.NewName,
	}
}

// ProductProducerChangedEvent is fired when a product's producer changes.
type ProductProducerChangedEvent struct {
	BaseEvent
	OldProducer string `json:"old_producer"`
	NewProducer string `json:"new_producer"`
}

// NewProductProducerChangedEvent creates a new ProductProducerChangedEvent.
func NewProductProducerChangedEvent(productID valueobjects.ProductID, oldProducer, newProducer valueobjects.Producer) *ProductProducerChangedEvent {
	return &ProductProducerChangedEvent{
		BaseEvent:   NewBaseEvent(TypeProductProducerChanged, productID.String()),
		OldProducer: oldProducer.Name(),
		NewProducer: newProducer.Name(),
	}
}

// EventData returns the event-specific data.
func (e *ProductProducerChangedEvent) EventData() map[string]interface{} {
	return map[string]interface{}{
		"old_producer": e.OldProducer,
		"new_producer": e.NewProducer,
	}
}

// ProductPictureUploadedEvent is fired when a product picture is set or replaced.
type ProductPictureUploadedEvent struct {
	BaseEvent
	PictureName string `json:"picture_name"`
	PictureURL  string `json:"picture_url"`
}

// NewProductPictureUploadedEvent creates a new ProductPictureUploadedEvent.
func NewProductPictureUploadedEvent(productID valueobjects.ProductID, picture valueobjects.Picture) *ProductPictureUploadedEvent {
	return &ProductPictureUploadedEvent{
		BaseEvent:   NewBaseEvent(TypeProductPictureUploaded, productID.String()),
		PictureName: picture.Name(),
		PictureURL:  picture.URL(),
	}
}

// EventData returns the event-specific data.
func (e *ProductPictureUploadedEvent) EventData() map[string]interface{} {
	return map[string]interface{}{
		"picture_name": e.PictureName,
		"picture_url":  e.PictureURL,
	}
}

// ProductRemovedEvent is fired when a product is deleted from the catalog.
type ProductRemovedEvent struct {
	BaseEvent
	Name string `json:"name"`
}

// NewProductRemovedEvent creates a new ProductRemovedEvent.
func NewProductRemovedEvent(productID valueobjects.ProductID, name string) *ProductRemovedEvent {
	return &ProductRemovedEvent{
		BaseEvent: NewBaseEvent(TypeProductRemoved, productID.String()),
		Name:      name,
	}
}

// EventData returns the event-specific data.
func (e *ProductRemovedEvent) EventData() map[string]interface{} {
	return map[string]interface{}{
		"name": e.Name,
	}
}

// ProductAssignedToCategoryEvent is fired when a product gains a category link.
type ProductAssignedToCategoryEvent struct {
	BaseEvent
	ProductID  string `json:"product_id"`
	CategoryID string `json:"category_id"`
}

// NewProductAssignedToCategoryEvent creates a new ProductAssignedToCategoryEvent.
func NewProductAssignedToCategoryEvent(productID valueobjects.ProductID, categoryID valueobjects.CategoryID) *ProductAssignedToCategoryEvent {
	return &ProductAssignedToCategoryEvent{
		BaseEvent:  NewBaseEvent(TypeProductAssignedToCategory, productID.String()),
		ProductID:  productID.String(),
		CategoryID: categoryID.String(),
	}
}

// EventData returns the event-specific data.
func (e *ProductAssignedToCategoryEvent) EventData() map[string]interface{} {
	return map[string]interface{}{
		"product_id":  e.ProductID,
		"category_id": e.CategoryID,
	}
}

// ProductDeallocatedFromCategoryEvent is fired when a single category link is removed.
type ProductDeallocatedFromCategoryEvent struct {
	BaseEvent
	ProductID  string `json:"product_id"`
	CategoryID string `json:"category_id"`
}

// NewProductDeallocatedFromCategoryEvent creates a new ProductDeallocatedFromCategoryEvent.
func NewProductDeallocatedFromCategoryEvent(productID valueobjects.ProductID, categoryID valueobjects.CategoryID) *ProductDeallocatedFromCategoryEvent {
	return &ProductDeallocatedFromCategoryEvent{
		BaseEvent:  NewBaseEvent(TypeProductDeallocatedFromCategory, productID.String()),
		ProductID:  productID.String(),
		CategoryID: categoryID.String(),
	}
}

// EventData returns the event-specific data.
func (e *ProductDeallocatedFromCategoryEvent) EventData() map[string]interface{} {
	return map[string]interface{}{
		"product_id":  e.ProductID,
		"category_id": e.CategoryID,
	}
}

// ProductDeallocatedFromAllCategoriesEvent is fired when every category link
// of a product is removed at once. It carries the full removed list.
type ProductDeallocatedFromAllCategoriesEvent struct {
	BaseEvent
	ProductID   string   `json:"product_id"`
	CategoryIDs []string `json:"category_ids"`
}

// NewProductDeallocatedFromAllCategoriesEvent creates a new ProductDeallocatedFromAllCategoriesEvent.
func NewProductDeallocatedFromAllCategoriesEvent(productID valueobjects.ProductID, categoryIDs []valueobjects.CategoryID) *ProductDeallocatedFromAllCategoriesEvent {
	ids := make([]string, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		ids = append(ids, id.String())
	}
	return &ProductDeallocatedFromAllCategoriesEvent{
		BaseEvent:   NewBaseEvent(TypeProductDeallocatedFromCategories, productID.String()),
		ProductID:   productID.String(),
		CategoryIDs: ids,
	}
}

// EventData returns the event-specific data.
func (e *ProductDeallocatedFromAllCategoriesEvent) EventData() map[string]interface{} {
	return map[string]interface{}{
		"product_id":   e.ProductID,
		"category_ids": e.CategoryIDs,
	}
}
