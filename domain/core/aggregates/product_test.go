package aggregates

import (
	"strings"
	"testing"

	"catalog-backend/domain/core/valueobjects"
	"catalog-backend/domain/events"
	pkgerrors "catalog-backend/pkg/errors"
)

func newTestProduct(t *testing.T) *Product {
	t.Helper()
	producer, err := valueobjects.NewProducer("Acme")
	if err != nil {
		t.Fatalf("NewProducer() error = %v", err)
	}
	product, err := NewProduct(valueobjects.NewProductID(), valueobjects.NewCreatorID(), "Hammer", producer, valueobjects.EmptyPicture())
	if err != nil {
		t.Fatalf("NewProduct() error = %v", err)
	}
	_ = product.ClearEvents()
	return product
}

func TestNewProduct(t *testing.T) {
	producer, _ := valueobjects.NewProducer("Acme")

	tests := []struct {
		name        string
		id          valueobjects.ProductID
		creatorID   valueobjects.CreatorID
		productName string
		producer    valueobjects.Producer
		wantErr     bool
		wantCode    pkgerrors.ErrorCode
	}{
		{
			name:        "valid product",
			id:          valueobjects.NewProductID(),
			creatorID:   valueobjects.NewCreatorID(),
			productName: "Hammer",
			producer:    producer,
		},
		{
			name:        "empty product id",
			id:          valueobjects.EmptyProductID(),
			creatorID:   valueobjects.NewCreatorID(),
			productName: "Hammer",
			producer:    producer,
			wantErr:     true,
			wantCode:    pkgerrors.CodeInvalidProductID,
		},
		{
			name:        "empty creator id",
			id:          valueobjects.NewProductID(),
			creatorID:   valueobjects.EmptyCreatorID(),
			productName: "Hammer",
			producer:    producer,
			wantErr:     true,
			wantCode:    pkgerrors.CodeInvalidCreatorID,
		},
		{
			name:        "empty name",
			id:          valueobjects.NewProductID(),
			creatorID:   valueobjects.NewCreatorID(),
			productName: "",
			producer:    producer,
			wantErr:     true,
			wantCode:    pkgerrors.CodeProductNameEmpty,
		},
		{
			name:        "name too short",
			id:          valueobjects.NewProductID(),
			creatorID:   valueobjects.NewCreatorID(),
			productName: "abc",
			producer:    producer,
			wantErr:     true,
			wantCode:    pkgerrors.CodeProductNameTooShort,
		},
		{
			name:        "name too long",
			id:          valueobjects.NewProductID(),
			creatorID:   valueobjects.NewCreatorID(),
			productName: strings.Repeat("a", 31),
			producer:    producer,
			wantErr:     true,
			wantCode:    pkgerrors.CodeProductNameTooLong,
		},
		{
			name:        "empty producer",
			id:          valueobjects.NewProductID(),
			creatorID:   valueobjects.NewCreatorID(),
			productName: "Hammer",
			producer:    valueobjects.Producer{},
			wantErr:     true,
			wantCode:    pkgerrors.CodeProducerEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := NewProduct(tt.id, tt.creatorID, tt.productName, tt.producer, valueobjects.EmptyPicture())

			if (err != nil) != tt.wantErr {
				t.Fatalf("NewProduct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if product != nil {
					t.Error("NewProduct() returned aggregate alongside error")
				}
				if !pkgerrors.HasCode(err, tt.wantCode) {
					t.Errorf("error code = %v, want %v", pkgerrors.CodeOf(err), tt.wantCode)
				}
				return
			}

			pending, err := product.UncommittedEvents()
			if err != nil {
				t.Fatalf("UncommittedEvents() error = %v", err)
			}
			if len(pending) != 1 {
				t.Fatalf("pending events = %d, want 1", len(pending))
			}
			if _, ok := pending[0].(*events.ProductCreatedEvent); !ok {
				t.Errorf("pending event = %T, want *events.ProductCreatedEvent", pending[0])
			}
		})
	}
}

func TestProduct_SetName(t *testing.T) {
	product := newTestProduct(t)

	changed, err := product.SetName("hammer")
	if err != nil {
		t.Fatalf("SetName() error = %v", err)
	}
	if changed {
		t.Error("SetName() with case-variant of current name reported a change")
	}

	changed, err = product.SetName("Wrench")
	if err != nil {
		t.Fatalf("SetName() error = %v", err)
	}
	if !changed {
		t.Error("SetName() with new name reported no change")
	}
	if product.Name() != "Wrench" {
		t.Errorf("Name() = %v, want Wrench", product.Name())
	}
}

func TestProduct_SetProducer(t *testing.T) {
	product := newTestProduct(t)

	same, _ := valueobjects.NewProducer("Acme")
	changed, err := product.SetProducer(same)
	if err != nil {
		t.Fatalf("SetProducer() error = %v", err)
	}
	if changed {
		t.Error("SetProducer() with same producer reported a change")
	}

	other, _ := valueobjects.NewProducer("Globex")
	changed, err = product.SetProducer(other)
	if err != nil {
		t.Fatalf("SetProducer() error = %v", err)
	}
	if !changed {
		t.Error("SetProducer() with new producer reported no change")
	}

	pending, _ := product.UncommittedEvents()
	if len(pending) != 1 {
		t.Fatalf("pending events = %d, want 1", len(pending))
	}
	if _, ok := pending[0].(*events.ProductProducerChangedEvent); !ok {
		t.Errorf("pending event = %T, want *events.ProductProducerChangedEvent", pending[0])
	}
}

func TestProduct_UploadPicture(t *testing.T) {
	product := newTestProduct(t)

	if _, err := product.UploadPicture(valueobjects.EmptyPicture()); !pkgerrors.HasCode(err, pkgerrors.CodePictureNameEmpty) {
		t.Errorf("error code = %v, want %v", pkgerrors.CodeOf(err), pkgerrors.CodePictureNameEmpty)
	}

	picture, err := valueobjects.NewPicture("hammer.png", "https://cdn.example.com/hammer.png")
	if err != nil {
		t.Fatalf("NewPicture() error = %v", err)
	}

	changed, err := product.UploadPicture(picture)
	if err != nil {
		t.Fatalf("UploadPicture() error = %v", err)
	}
	if !changed {
		t.Error("UploadPicture() with new picture reported no change")
	}

	changed, err = product.UploadPicture(picture)
	if err != nil {
		t.Fatalf("UploadPicture() error = %v", err)
	}
	if changed {
		t.Error("UploadPicture() with same picture reported a change")
	}
}

func TestProduct_AssignCategory(t *testing.T) {
	product := newTestProduct(t)
	categoryID := valueobjects.NewCategoryID()

	if err := product.AssignCategory(categoryID); err != nil {
		t.Fatalf("AssignCategory() error = %v", err)
	}
	if len(product.ProductCategories()) != 1 {
		t.Fatalf("links = %d, want 1", len(product.ProductCategories()))
	}

	err := product.AssignCategory(categoryID)
	if !pkgerrors.HasCode(err, pkgerrors.CodeProductAlreadyAssigned) {
		t.Errorf("error code = %v, want %v", pkgerrors.CodeOf(err), pkgerrors.CodeProductAlreadyAssigned)
	}
	if len(product.ProductCategories()) != 1 {
		t.Errorf("links after duplicate assign = %d, want 1", len(product.ProductCategories()))
	}

	pending, _ := product.UncommittedEvents()
	if len(pending) != 1 {
		t.Errorf("pending events = %d, want 1", len(pending))
	}

	if err := product.AssignCategory(valueobjects.EmptyCategoryID()); !pkgerrors.HasCode(err, pkgerrors.CodeInvalidCategoryID) {
		t.Errorf("error code = %v, want %v", pkgerrors.CodeOf(err), pkgerrors.CodeInvalidCategoryID)
	}
}

func TestProduct_DeallocateCategory(t *testing.T) {
	product := newTestProduct(t)
	categoryID := valueobjects.NewCategoryID()

	err := product.DeallocateCategory(categoryID)
	if !pkgerrors.HasCode(err, pkgerrors.CodeProductWithAssignedCategoryNotFound) {
		t.Errorf("error code = %v, want %v", pkgerrors.CodeOf(err), pkgerrors.CodeProductWithAssignedCategoryNotFound)
	}

	if err := product.AssignCategory(categoryID); err != nil {
		t.Fatalf("AssignCategory() error = %v", err)
	}
	_ = product.ClearEvents()

	if err := product.DeallocateCategory(categoryID); err != nil {
		t.Fatalf("DeallocateCategory() error = %v", err)
	}
	if len(product.ProductCategories()) != 0 {
		t.Errorf("links = %d, want 0", len(product.ProductCategories()))
	}

	pending, _ := product.UncommittedEvents()
	if len(pending) != 1 {
		t.Fatalf("pending events = %d, want 1", len(pending))
	}
	if _, ok := pending[0].(*events.ProductDeallocatedFromCategoryEvent); !ok {
		t.Errorf("pending event = %T, want *events.ProductDeallocatedFromCategoryEvent", pending[0])
	}
}

func TestProduct_DeallocateAllCategories(t *testing.T) {
	product := newTestProduct(t)

	err := product.DeallocateAllCategories()
	if !pkgerrors.HasCode(err, pkgerrors.CodeProductWithAssignedCategoriesNotFound) {
		t.Errorf("error code = %v, want %v", pkgerrors.CodeOf(err), pkgerrors.CodeProductWithAssignedCategoriesNotFound)
	}

	first := valueobjects.NewCategoryID()
	second := valueobjects.NewCategoryID()
	if err := product.AssignCategory(first); err != nil {
		t.Fatalf("AssignCategory() error = %v", err)
	}
	if err := product.AssignCategory(second); err != nil {
		t.Fatalf("AssignCategory() error = %v", err)
	}
	_ = product.ClearEvents()

	if err := product.DeallocateAllCategories(); err != nil {
		t.Fatalf("DeallocateAllCategories() error = %v", err)
	}
	if len(product.ProductCategories()) != 0 {
		t.Errorf("links = %d, want 0", len(product.ProductCategories()))
	}

	pending, _ := product.UncommittedEvents()
	if len(pending) != 1 {
		t.Fatalf("pending events = %d, want 1", len(pending))
	}
	event, ok := pending[0].(*events.ProductDeallocatedFromAllCategoriesEvent)
	if !ok {
		t.Fatalf("pending event = %T, want *events.ProductDeallocatedFromAllCategoriesEvent", pending[0])
	}
	if len(event.CategoryIDs) != 2 {
		t.Fatalf("event category ids = %d, want 2", len(event.CategoryIDs))
	}
	if event.CategoryIDs[0] != first.String() || event.CategoryIDs[1] != second.String() {
		t.Errorf("event category ids = %v, want [%s %s]", event.CategoryIDs, first, second)
	}
}

func TestProduct_NilEventAccessors(t *testing.T) {
	var product *Product

	if _, err := product.UncommittedEvents(); !pkgerrors.HasCode(err, pkgerrors.CodeGetUncommittedEventsFailed) {
		t.Errorf("error code = %v, want %v", pkgerrors.CodeOf(err), pkgerrors.CodeGetUncommittedEventsFailed)
	}
	if err := product.ClearEvents(); !pkgerrors.HasCode(err, pkgerrors.CodeClearEventsFailed) {
		t.Errorf("error code = %v, want %v", pkgerrors.CodeOf(err), pkgerrors.CodeClearEventsFailed)
	}
}
