package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-backend/domain/core/aggregates"
	"catalog-backend/domain/core/valueobjects"
	"catalog-backend/infrastructure/persistence/memory"
)

func TestCategoryRepository_RoundTrip(t *testing.T) {
	repo := memory.NewCategoryRepository(memory.NewStore())
	ctx := context.Background()

	missing, err := repo.GetByID(ctx, valueobjects.NewCategoryID())
	require.NoError(t, err)
	assert.Nil(t, missing)

	id := valueobjects.NewCategoryID()
	category, err := aggregates.NewCategory(id, "Tools", "", valueobjects.EmptyPicture())
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, category))

	loaded, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "Tools", loaded.Name())
	assert.Equal(t, category.CreatedAt(), loaded.CreatedAt())

	// Loads are rehydrated snapshots: pending events never survive storage.
	pending, err := loaded.UncommittedEvents()
	require.NoError(t, err)
	assert.Empty(t, pending)

	// Mutating a loaded copy does not leak into the store until Update.
	_, err = loaded.SetName("Garden")
	require.NoError(t, err)
	stored, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Tools", stored.Name())

	require.NoError(t, repo.Update(ctx, loaded))
	stored, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Garden", stored.Name())

	byName, err := repo.GetByName(ctx, "Garden")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.True(t, byName.ID().Equals(id))

	require.NoError(t, repo.Delete(ctx, id))
	gone, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestCreatorRepository_RoundTrip(t *testing.T) {
	repo := memory.NewCreatorRepository(memory.NewStore())
	ctx := context.Background()

	id := valueobjects.NewCreatorID()
	creator, err := aggregates.NewCreator(id, "Alice", valueobjects.RoleModerator)
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, creator))

	loaded, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "Alice", loaded.Name())
	assert.Equal(t, valueobjects.RoleModerator, loaded.Role())

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestProductRepository_RoundTrip(t *testing.T) {
	repo := memory.NewProductRepository(memory.NewStore())
	ctx := context.Background()

	producer, err := valueobjects.NewProducer("Acme")
	require.NoError(t, err)
	id := valueobjects.NewProductID()
	creatorID := valueobjects.NewCreatorID()
	product, err := aggregates.NewProduct(id, creatorID, "Hammer", producer, valueobjects.EmptyPicture())
	require.NoError(t, err)

	categoryID := valueobjects.NewCategoryID()
	require.NoError(t, product.AssignCategory(categoryID))
	require.NoError(t, repo.Add(ctx, product))

	// Plain load skips the link collection; the includes load carries it.
	plain, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, plain.ProductCategories())

	withLinks, err := repo.GetByIDWithIncludes(ctx, id)
	require.NoError(t, err)
	require.Len(t, withLinks.ProductCategories(), 1)
	assert.True(t, withLinks.ProductCategories()[0].SecondKey().Equals(categoryID))

	owned, err := repo.GetByCreatorID(ctx, creatorID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.True(t, owned[0].ID().Equals(id))

	require.NoError(t, repo.Delete(ctx, id))
	gone, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestProductRepository_UpdateKeepsLinksOnRename(t *testing.T) {
	repo := memory.NewProductRepository(memory.NewStore())
	ctx := context.Background()

	producer, err := valueobjects.NewProducer("Acme")
	require.NoError(t, err)
	id := valueobjects.NewProductID()
	product, err := aggregates.NewProduct(id, valueobjects.NewCreatorID(), "Hammer", producer, valueobjects.EmptyPicture())
	require.NoError(t, err)
	categoryID := valueobjects.NewCategoryID()
	require.NoError(t, product.AssignCategory(categoryID))
	require.NoError(t, repo.Add(ctx, product))

	loaded, err := repo.GetByIDWithIncludes(ctx, id)
	require.NoError(t, err)
	_, err = loaded.SetName("Sledgehammer")
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, loaded))

	stored, err := repo.GetByIDWithIncludes(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Sledgehammer", stored.Name())
	require.Len(t, stored.ProductCategories(), 1)
	assert.True(t, stored.ProductCategories()[0].SecondKey().Equals(categoryID))
}

func TestCategoryRepository_UpdateKeepsAssignmentRows(t *testing.T) {
	store := memory.NewStore()
	categories := memory.NewCategoryRepository(store)
	products := memory.NewProductRepository(store)
	ctx := context.Background()

	categoryID := valueobjects.NewCategoryID()
	category, err := aggregates.NewCategory(categoryID, "Tools", "", valueobjects.EmptyPicture())
	require.NoError(t, err)
	require.NoError(t, categories.Add(ctx, category))

	producer, err := valueobjects.NewProducer("Acme")
	require.NoError(t, err)
	product, err := aggregates.NewProduct(valueobjects.NewProductID(), valueobjects.NewCreatorID(), "Hammer", producer, valueobjects.EmptyPicture())
	require.NoError(t, err)
	require.NoError(t, product.AssignCategory(categoryID))
	require.NoError(t, products.Add(ctx, product))

	// Category includes derive from the shared link table.
	withLinks, err := categories.GetByIDWithIncludes(ctx, categoryID)
	require.NoError(t, err)
	require.Len(t, withLinks.ProductCategories(), 1)

	// A scalar update through a plain load must not erase the assignment.
	loaded, err := categories.GetByID(ctx, categoryID)
	require.NoError(t, err)
	_, err = loaded.SetName("Hardware")
	require.NoError(t, err)
	require.NoError(t, categories.Update(ctx, loaded))

	stored, err := categories.GetByIDWithIncludes(ctx, categoryID)
	require.NoError(t, err)
	assert.Equal(t, "Hardware", stored.Name())
	require.Len(t, stored.ProductCategories(), 1)
	assert.True(t, stored.ProductCategories()[0].FirstKey().Equals(product.ID()))
}

func TestCreatorRepository_IncludesDeriveFromProducts(t *testing.T) {
	store := memory.NewStore()
	creators := memory.NewCreatorRepository(store)
	products := memory.NewProductRepository(store)
	ctx := context.Background()

	creatorID := valueobjects.NewCreatorID()
	creator, err := aggregates.NewCreator(creatorID, "Alice", valueobjects.RoleUser)
	require.NoError(t, err)
	require.NoError(t, creators.Add(ctx, creator))

	producer, err := valueobjects.NewProducer("Acme")
	require.NoError(t, err)
	product, err := aggregates.NewProduct(valueobjects.NewProductID(), creatorID, "Hammer", producer, valueobjects.EmptyPicture())
	require.NoError(t, err)
	require.NoError(t, products.Add(ctx, product))

	plain, err := creators.GetByID(ctx, creatorID)
	require.NoError(t, err)
	assert.Empty(t, plain.Products())

	withProducts, err := creators.GetByIDWithIncludes(ctx, creatorID)
	require.NoError(t, err)
	require.Len(t, withProducts.Products(), 1)
	assert.True(t, withProducts.Products()[0].Equals(product.ID()))
}
