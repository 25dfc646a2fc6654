package rules

import (
	"strings"

	"catalog-backend/domain/core/valueobjects"
)

// IsProductIDEmpty is broken when the identifier is the empty sentinel.
func IsProductIDEmpty(id valueobjects.ProductID) bool {
	return id.IsEmpty()
}

// IsProductNameEmpty is broken when the name is blank after trimming.
func IsProductNameEmpty(name string) bool {
	return strings.TrimSpace(name) == ""
}

// IsProductNameTooShort is broken when the name is shorter than minLength.
func IsProductNameTooShort(name string, minLength int) bool {
	return len(name) < minLength
}

// IsProductNameTooLong is broken when the name is longer than maxLength.
func IsProductNameTooLong(name string, maxLength int) bool {
	return len(name) > maxLength
}

// IsProducerEmpty is broken when the producer is the zero value, the Go
// stand-in for a null reference.
func IsProducerEmpty(producer valueobjects.Producer) bool {
	return producer.IsEmpty()
}

// IsProducerNameTooShort is broken when the producer name is shorter than minLength.
func IsProducerNameTooShort(producer valueobjects.Producer, minLength int) bool {
	return len(producer.Name()) < minLength
}

// IsProducerNameTooLong is broken when the producer name is longer than maxLength.
func IsProducerNameTooLong(producer valueobjects.Producer, maxLength int) bool {
	return len(producer.Name()) > maxLength
}

// IsPictureNameTooLong is broken when the picture name exceeds maxLength.
func IsPictureNameTooLong(picture valueobjects.Picture, maxLength int) bool {
	return len(picture.Name()) > maxLength
}

// IsPictureURLTooLong is broken when the picture url exceeds maxLength.
func IsPictureURLTooLong(picture valueobjects.Picture, maxLength int) bool {
	return len(picture.URL()) > maxLength
}
