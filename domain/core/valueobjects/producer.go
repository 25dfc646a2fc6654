package valueobjects

import (
	"strings"

	pkgerrors "catalog-backend/pkg/errors"
)

// Producer bounds. The rules package re-exports these same values.
const (
	ProducerNameMinLength = 2
	ProducerNameMaxLength = 50
)

// Producer wraps the display name of the party that manufactures a product.
// The zero value stands in for a null reference and never passes validation.
type Producer struct {
	name string
}

// NewProducer creates a validated Producer.
func NewProducer(name string) (Producer, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return Producer{}, pkgerrors.NewProducerEmpty()
	}
	if len(name) < ProducerNameMinLength {
		return Producer{}, pkgerrors.NewProducerNameTooShort(ProducerNameMinLength)
	}
	if len(name) > ProducerNameMaxLength {
		return Producer{}, pkgerrors.NewProducerNameTooLong(ProducerNameMaxLength)
	}

	return Producer{name: name}, nil
}

// ReconstituteProducer rebuilds a Producer from storage without validation.
func ReconstituteProducer(name string) Producer {
	return Producer{name: name}
}

// Name returns the producer display name.
func (p Producer) Name() string {
	return p.name
}

// IsEmpty checks whether the producer is the zero value.
func (p Producer) IsEmpty() bool {
	return p.name == ""
}

// Equals checks if two Producers are equal by value.
func (p Producer) Equals(other Producer) bool {
	return p.name == other.name
}
