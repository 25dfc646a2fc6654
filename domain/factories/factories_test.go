package factories

import (
	"context"
	"strings"
	"testing"

	"catalog-backend/domain/core/valueobjects"
	"catalog-backend/domain/events"
	pkgerrors "catalog-backend/pkg/errors"
)

// recordingEmitter captures every emitted event for assertions.
type recordingEmitter struct {
	emitted []events.DomainEvent
	err     error
}

func (r *recordingEmitter) Emit(_ context.Context, event events.DomainEvent) error {
	if r.err != nil {
		return r.err
	}
	r.emitted = append(r.emitted, event)
	return nil
}

func TestCategoryFactory_Create(t *testing.T) {
	emitter := &recordingEmitter{}
	factory := NewCategoryFactory(emitter)
	id := valueobjects.NewCategoryID()

	category, err := factory.Create(context.Background(), id, "Tools")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if category.Name() != "Tools" {
		t.Errorf("Name() = %v, want Tools", category.Name())
	}

	// Created is announced twice: once externally through the emitter and
	// once on the aggregate's pending list.
	if len(emitter.emitted) != 1 {
		t.Fatalf("emitted events = %d, want 1", len(emitter.emitted))
	}
	if emitter.emitted[0].EventType() != events.TypeCategoryCreated {
		t.Errorf("emitted type = %v, want %v", emitter.emitted[0].EventType(), events.TypeCategoryCreated)
	}
	if emitter.emitted[0].AggregateID() != id.String() {
		t.Errorf("emitted aggregate id = %v, want %v", emitter.emitted[0].AggregateID(), id.String())
	}

	pending, err := category.UncommittedEvents()
	if err != nil {
		t.Fatalf("UncommittedEvents() error = %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("pending events = %d, want 1", len(pending))
	}
	if pending[0].EventType() != events.TypeCategoryCreated {
		t.Errorf("pending type = %v, want %v", pending[0].EventType(), events.TypeCategoryCreated)
	}

	// Both channels carry the same recorded event, not two instances with
	// distinct ids.
	if emitter.emitted[0].EventID() != pending[0].EventID() {
		t.Errorf("external event id = %v, want recorded id %v",
			emitter.emitted[0].EventID(), pending[0].EventID())
	}
}

func TestFactories_EmitRecordedCreatedEvent(t *testing.T) {
	emitter := &recordingEmitter{}
	ctx := context.Background()

	creator, err := NewCreatorFactory(emitter).Create(ctx, valueobjects.NewCreatorID(), "Alice")
	if err != nil {
		t.Fatalf("CreatorFactory.Create() error = %v", err)
	}

	producer, err := valueobjects.NewProducer("Acme")
	if err != nil {
		t.Fatalf("NewProducer() error = %v", err)
	}
	product, err := NewProductFactory(emitter).Create(ctx, valueobjects.NewProductID(), creator.ID(), "Hammer", producer)
	if err != nil {
		t.Fatalf("ProductFactory.Create() error = %v", err)
	}

	creatorPending, err := creator.UncommittedEvents()
	if err != nil {
		t.Fatalf("UncommittedEvents() error = %v", err)
	}
	productPending, err := product.UncommittedEvents()
	if err != nil {
		t.Fatalf("UncommittedEvents() error = %v", err)
	}

	if emitter.emitted[0].EventID() != creatorPending[0].EventID() {
		t.Errorf("creator external event id = %v, want recorded id %v",
			emitter.emitted[0].EventID(), creatorPending[0].EventID())
	}
	if emitter.emitted[1].EventID() != productPending[0].EventID() {
		t.Errorf("product external event id = %v, want recorded id %v",
			emitter.emitted[1].EventID(), productPending[0].EventID())
	}
}

func TestCategoryFactory_CreateVariants(t *testing.T) {
	description := strings.Repeat("d", 25)
	icon, err := valueobjects.NewPicture("icon.png", "https://cdn.example.com/icon.png")
	if err != nil {
		t.Fatalf("NewPicture() error = %v", err)
	}

	emitter := &recordingEmitter{}
	factory := NewCategoryFactory(emitter)
	ctx := context.Background()

	withDescription, err := factory.CreateWithDescription(ctx, valueobjects.NewCategoryID(), "Tools", description)
	if err != nil {
		t.Fatalf("CreateWithDescription() error = %v", err)
	}
	if withDescription.Description() != description {
		t.Errorf("Description() = %v, want %v", withDescription.Description(), description)
	}

	withIcon, err := factory.CreateWithIcon(ctx, valueobjects.NewCategoryID(), "Tools", icon)
	if err != nil {
		t.Fatalf("CreateWithIcon() error = %v", err)
	}
	if !withIcon.Icon().Equals(icon) {
		t.Errorf("Icon() = %v, want %v", withIcon.Icon(), icon)
	}

	full, err := factory.CreateFull(ctx, valueobjects.NewCategoryID(), "Tools", description, icon)
	if err != nil {
		t.Fatalf("CreateFull() error = %v", err)
	}
	if full.Description() != description || !full.Icon().Equals(icon) {
		t.Error("CreateFull() did not carry description and icon")
	}

	if len(emitter.emitted) != 3 {
		t.Errorf("emitted events = %d, want 3", len(emitter.emitted))
	}
}

func TestCategoryFactory_NoEmitOnFailure(t *testing.T) {
	emitter := &recordingEmitter{}
	factory := NewCategoryFactory(emitter)

	category, err := factory.Create(context.Background(), valueobjects.NewCategoryID(), "ab")
	if err == nil {
		t.Fatal("Create() with invalid name succeeded")
	}
	if category != nil {
		t.Error("Create() returned aggregate alongside error")
	}
	if len(emitter.emitted) != 0 {
		t.Errorf("emitted events = %d, want 0", len(emitter.emitted))
	}
}

func TestCategoryFactory_EmitterFailure(t *testing.T) {
	emitter := &recordingEmitter{err: pkgerrors.NewEventPublishFailed("queue full")}
	factory := NewCategoryFactory(emitter)

	_, err := factory.Create(context.Background(), valueobjects.NewCategoryID(), "Tools")
	if !pkgerrors.HasCode(err, pkgerrors.CodeEventPublishFailed) {
		t.Errorf("error code = %v, want %v", pkgerrors.CodeOf(err), pkgerrors.CodeEventPublishFailed)
	}
}

func TestCreatorFactory_Create(t *testing.T) {
	emitter := &recordingEmitter{}
	factory := NewCreatorFactory(emitter)
	ctx := context.Background()

	creator, err := factory.Create(ctx, valueobjects.NewCreatorID(), "Alice")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if creator.Role() != valueobjects.RoleUser {
		t.Errorf("Role() = %v, want %v", creator.Role(), valueobjects.RoleUser)
	}

	moderator, err := factory.CreateWithRole(ctx, valueobjects.NewCreatorID(), "Bob", valueobjects.RoleModerator)
	if err != nil {
		t.Fatalf("CreateWithRole() error = %v", err)
	}
	if moderator.Role() != valueobjects.RoleModerator {
		t.Errorf("Role() = %v, want %v", moderator.Role(), valueobjects.RoleModerator)
	}

	if len(emitter.emitted) != 2 {
		t.Errorf("emitted events = %d, want 2", len(emitter.emitted))
	}
}

func TestCreatorFactory_NoEmitOnFailure(t *testing.T) {
	emitter := &recordingEmitter{}
	factory := NewCreatorFactory(emitter)

	if _, err := factory.Create(context.Background(), valueobjects.NewCreatorID(), ""); err == nil {
		t.Fatal("Create() with empty name succeeded")
	}
	if len(emitter.emitted) != 0 {
		t.Errorf("emitted events = %d, want 0", len(emitter.emitted))
	}
}

func TestProductFactory_Create(t *testing.T) {
	producer, err := valueobjects.NewProducer("Acme")
	if err != nil {
		t.Fatalf("NewProducer() error = %v", err)
	}
	picture, err := valueobjects.NewPicture("hammer.png", "https://cdn.example.com/hammer.png")
	if err != nil {
		t.Fatalf("NewPicture() error = %v", err)
	}

	emitter := &recordingEmitter{}
	factory := NewProductFactory(emitter)
	ctx := context.Background()
	creatorID := valueobjects.NewCreatorID()

	product, err := factory.Create(ctx, valueobjects.NewProductID(), creatorID, "Hammer", producer)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !product.CreatorID().Equals(creatorID) {
		t.Errorf("CreatorID() = %v, want %v", product.CreatorID(), creatorID)
	}
	if !product.Picture().IsEmpty() {
		t.Error("Create() produced a picture")
	}

	withPicture, err := factory.CreateWithPicture(ctx, valueobjects.NewProductID(), creatorID, "Wrench", producer, picture)
	if err != nil {
		t.Fatalf("CreateWithPicture() error = %v", err)
	}
	if !withPicture.Picture().Equals(picture) {
		t.Errorf("Picture() = %v, want %v", withPicture.Picture(), picture)
	}

	if len(emitter.emitted) != 2 {
		t.Errorf("emitted events = %d, want 2", len(emitter.emitted))
	}
}

func TestProductFactory_NoEmitOnFailure(t *testing.T) {
	producer, _ := valueobjects.NewProducer("Acme")
	emitter := &recordingEmitter{}
	factory := NewProductFactory(emitter)

	if _, err := factory.Create(context.Background(), valueobjects.NewProductID(), valueobjects.EmptyCreatorID(), "Hammer", producer); err == nil {
		t.Fatal("Create() with empty creator id succeeded")
	}
	if len(emitter.emitted) != 0 {
		t.Errorf("emitted events = %d, want 0", len(emitter.emitted))
	}
}
