package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-backend/domain/core/aggregates"
	"catalog-backend/domain/core/valueobjects"
)

func TestCategoryRecordRoundTrip(t *testing.T) {
	icon, err := valueobjects.NewPicture("icon.png", "https://cdn.example.com/icon.png")
	require.NoError(t, err)

	category, err := aggregates.NewCategory(
		valueobjects.NewCategoryID(), "Electronics", "Gadgets and electronic devices", icon)
	require.NoError(t, err)

	productID := valueobjects.NewProductID()

	record := newCategoryRecord(category)
	record.ProductCategories = []productCategoryRecord{
		{ProductID: productID.String(), CategoryID: category.ID().String()},
	}
	loaded := record.toAggregate()

	assert.True(t, loaded.ID().Equals(category.ID()))
	assert.Equal(t, category.Name(), loaded.Name())
	assert.Equal(t, category.Description(), loaded.Description())
	assert.True(t, loaded.Icon().Equals(category.Icon()))
	assert.True(t, loaded.CreatedAt().Equal(category.CreatedAt()))

	require.Len(t, loaded.ProductCategories(), 1)
	assert.True(t, loaded.ProductCategories()[0].FirstKey().Equals(productID))

	// Rehydration must not resurrect pending events.
	pending, err := loaded.UncommittedEvents()
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestCreatorRecordRoundTrip(t *testing.T) {
	creator, err := aggregates.NewCreator(
		valueobjects.NewCreatorID(), "Alice", valueobjects.RoleModerator)
	require.NoError(t, err)

	record := newCreatorRecord(creator)
	record.Products = []productRecord{{ID: valueobjects.NewProductID().String()}}
	loaded := record.toAggregate()

	assert.True(t, loaded.ID().Equals(creator.ID()))
	assert.Equal(t, creator.Name(), loaded.Name())
	assert.Equal(t, valueobjects.RoleModerator, loaded.Role())
	assert.Len(t, loaded.Products(), 1)
}

func TestProductRecordRoundTrip(t *testing.T) {
	producer, err := valueobjects.NewProducer("Acme Corp")
	require.NoError(t, err)
	picture, err := valueobjects.NewPicture("box.png", "https://cdn.example.com/box.png")
	require.NoError(t, err)

	product, err := aggregates.NewProduct(
		valueobjects.NewProductID(), valueobjects.NewCreatorID(),
		"Widget", producer, picture)
	require.NoError(t, err)

	categoryID := valueobjects.NewCategoryID()
	require.NoError(t, product.AssignCategory(categoryID))

	record := newProductRecord(product)
	loaded := record.toAggregate()

	assert.True(t, loaded.ID().Equals(product.ID()))
	assert.True(t, loaded.CreatorID().Equals(product.CreatorID()))
	assert.Equal(t, product.Name(), loaded.Name())
	assert.True(t, loaded.Producer().Equals(producer))
	assert.True(t, loaded.Picture().Equals(picture))

	require.Len(t, loaded.ProductCategories(), 1)
	assert.True(t, loaded.ProductCategories()[0].SecondKey().Equals(categoryID))
}

func TestProductRecordWithoutPicture(t *testing.T) {
	producer, err := valueobjects.NewProducer("Acme Corp")
	require.NoError(t, err)

	product, err := aggregates.NewProduct(
		valueobjects.NewProductID(), valueobjects.NewCreatorID(),
		"Widget", producer, valueobjects.EmptyPicture())
	require.NoError(t, err)

	record := newProductRecord(product)
	assert.Empty(t, record.PictureName)
	assert.Empty(t, record.PictureURL)

	loaded := record.toAggregate()
	assert.True(t, loaded.Picture().IsEmpty())
}
