// Package entities contains domain entities that are not aggregate roots.
package entities

import (
	"catalog-backend/domain/core/valueobjects"
)

// ProductCategory is the join entity stating "product X is assigned to
// category Y". Its identity is the composite (FirstKey, SecondKey) pair;
// a product's link collection holds at most one entry per pair.
type ProductCategory struct {
	firstKey  valueobjects.ProductID
	secondKey valueobjects.CategoryID
}

// NewProductCategory creates a link between a product and a category.
func NewProductCategory(productID valueobjects.ProductID, categoryID valueobjects.CategoryID) ProductCategory {
	return ProductCategory{
		firstKey:  productID,
		secondKey: categoryID,
	}
}

// FirstKey returns the product side of the composite identity.
func (pc ProductCategory) FirstKey() valueobjects.ProductID {
	return pc.firstKey
}

// SecondKey returns the category side of the composite identity.
func (pc ProductCategory) SecondKey() valueobjects.CategoryID {
	return pc.secondKey
}

// Equals compares two links by their composite identity.
func (pc ProductCategory) Equals(other ProductCategory) bool {
	return pc.firstKey.Equals(other.firstKey) && pc.secondKey.Equals(other.secondKey)
}
