// Package memory provides in-memory repository implementations for unit
// tests and local mode. Every read rehydrates a fresh aggregate from a
// stored snapshot, so no aggregate instance is ever shared between calls.
package memory

import (
	"sync"

	"catalog-backend/domain/core/entities"
	"catalog-backend/domain/core/valueobjects"
)

// Store is the shared in-memory database behind the three repositories.
// Product-category assignments live in one link-row table, mirroring the
// SQL join table: category and creator includes are derived from it the
// same way the Preloads derive them, and a scalar update can never erase
// an assignment it did not load.
type Store struct {
	mu         sync.RWMutex
	categories map[string]categorySnapshot
	creators   map[string]creatorSnapshot
	products   map[string]productSnapshot
	links      []linkRow
}

type linkRow struct {
	productID  valueobjects.ProductID
	categoryID valueobjects.CategoryID
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		categories: make(map[string]categorySnapshot),
		creators:   make(map[string]creatorSnapshot),
		products:   make(map[string]productSnapshot),
	}
}

// The helpers below assume the caller holds the store lock.

func (s *Store) linksByProduct(id valueobjects.ProductID) []entities.ProductCategory {
	var links []entities.ProductCategory
	for _, row := range s.links {
		if row.productID.Equals(id) {
			links = append(links, entities.NewProductCategory(row.productID, row.categoryID))
		}
	}
	return links
}

func (s *Store) linksByCategory(id valueobjects.CategoryID) []entities.ProductCategory {
	var links []entities.ProductCategory
	for _, row := range s.links {
		if row.categoryID.Equals(id) {
			links = append(links, entities.NewProductCategory(row.productID, row.categoryID))
		}
	}
	return links
}

func (s *Store) productIDsByCreator(id valueobjects.CreatorID) []valueobjects.ProductID {
	var owned []valueobjects.ProductID
	for _, snapshot := range s.products {
		if snapshot.creatorID.Equals(id) {
			owned = append(owned, snapshot.id)
		}
	}
	return owned
}

// replaceProductLinks rewrites the link rows of one product from the
// aggregate's collection, like the SQL update transaction does.
func (s *Store) replaceProductLinks(id valueobjects.ProductID, links []entities.ProductCategory) {
	s.deleteLinksByProduct(id)
	for _, link := range links {
		s.links = append(s.links, linkRow{productID: link.FirstKey(), categoryID: link.SecondKey()})
	}
}

func (s *Store) deleteLinksByProduct(id valueobjects.ProductID) {
	kept := s.links[:0]
	for _, row := range s.links {
		if !row.productID.Equals(id) {
			kept = append(kept, row)
		}
	}
	s.links = kept
}

func (s *Store) deleteLinksByCategory(id valueobjects.CategoryID) {
	kept := s.links[:0]
	for _, row := range s.links {
		if !row.categoryID.Equals(id) {
			kept = append(kept, row)
		}
	}
	s.links = kept
}
