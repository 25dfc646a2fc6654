// Domain error constructors. Each domain failure has exactly one
// constructor so that every raise site produces the same code and message
// shape; bounds and identifiers are embedded in the message for the API
// layer and for operators reading logs.
package errors

import "fmt"

// Identifier errors

// NewInvalidCategoryID reports an empty or malformed category identifier.
func NewInvalidCategoryID(id string) *DomainError {
	return Validation(CodeInvalidCategoryID, fmt.Sprintf("invalid category id: %q", id)).
		WithResource("category").
		Build()
}

// NewInvalidCreatorID reports an empty or malformed creator identifier.
func NewInvalidCreatorID(id string) *DomainError {
	return Validation(CodeInvalidCreatorID, fmt.Sprintf("invalid creator id: %q", id)).
		WithResource("creator").
		Build()
}

// NewInvalidProductID reports an empty or malformed product identifier.
func NewInvalidProductID(id string) *DomainError {
	return Validation(CodeInvalidProductID, fmt.Sprintf("invalid product id: %q", id)).
		WithResource("product").
		Build()
}

// Category field errors

func NewCategoryNameEmpty() *DomainError {
	return Validation(CodeCategoryNameEmpty, "category name can not be empty").
		WithResource("category").
		Build()
}

func NewCategoryNameTooShort(minLength int) *DomainError {
	return Validation(CodeCategoryNameTooShort,
		fmt.Sprintf("category name can not be shorter than %d characters", minLength)).
		WithResource("category").
		Build()
}

func NewCategoryNameTooLong(maxLength int) *DomainError {
	return Validation(CodeCategoryNameTooLong,
		fmt.Sprintf("category name can not be longer than %d characters", maxLength)).
		WithResource("category").
		Build()
}

func NewCategoryDescriptionEmpty() *DomainError {
	return Validation(CodeCategoryDescriptionEmpty, "category description can not be empty").
		WithResource("category").
		Build()
}

func NewCategoryDescriptionTooShort(minLength int) *DomainError {
	return Validation(CodeCategoryDescriptionTooShort,
		fmt.Sprintf("category description can not be shorter than %d characters", minLength)).
		WithResource("category").
		Build()
}

func NewCategoryDescriptionTooLong(maxLength int) *DomainError {
	return Validation(CodeCategoryDescriptionTooLong,
		fmt.Sprintf("category description can not be longer than %d characters", maxLength)).
		WithResource("category").
		Build()
}

// Creator field errors

func NewCreatorNameEmpty() *DomainError {
	return Validation(CodeCreatorNameEmpty, "creator name can not be empty").
		WithResource("creator").
		Build()
}

func NewCreatorNameTooShort(minLength int) *DomainError {
	return Validation(CodeCreatorNameTooShort,
		fmt.Sprintf("creator name can not be shorter than %d characters", minLength)).
		WithResource("creator").
		Build()
}

func NewCreatorNameTooLong(maxLength int) *DomainError {
	return Validation(CodeCreatorNameTooLong,
		fmt.Sprintf("creator name can not be longer than %d characters", maxLength)).
		WithResource("creator").
		Build()
}

func NewCreatorRoleInvalid(role string) *DomainError {
	return Validation(CodeCreatorRoleInvalid, fmt.Sprintf("creator role %q is not a known role", role)).
		WithResource("creator").
		Build()
}

// Product field errors

func NewProductNameEmpty() *DomainError {
	return Validation(CodeProductNameEmpty, "product name can not be empty").
		WithResource("product").
		Build()
}

func NewProductNameTooShort(minLength int) *DomainError {
	return Validation(CodeProductNameTooShort,
		fmt.Sprintf("product name can not be shorter than %d characters", minLength)).
		WithResource("product").
		Build()
}

func NewProductNameTooLong(maxLength int) *DomainError {
	return Validation(CodeProductNameTooLong,
		fmt.Sprintf("product name can not be longer than %d characters", maxLength)).
		WithResource("product").
		Build()
}

func NewProducerEmpty() *DomainError {
	return Validation(CodeProducerEmpty, "product producer can not be null or empty").
		WithResource("product").
		Build()
}

func NewProducerNameTooShort(minLength int) *DomainError {
	return Validation(CodeProducerNameTooShort,
		fmt.Sprintf("producer name can not be shorter than %d characters", minLength)).
		WithResource("product").
		Build()
}

func NewProducerNameTooLong(maxLength int) *DomainError {
	return Validation(CodeProducerNameTooLong,
		fmt.Sprintf("producer name can not be longer than %d characters", maxLength)).
		WithResource("product").
		Build()
}

// Picture errors

func NewPictureNameEmpty() *DomainError {
	return Validation(CodePictureNameEmpty, "picture name can not be empty").Build()
}

func NewPictureURLEmpty() *DomainError {
	return Validation(CodePictureURLEmpty, "picture url can not be empty").Build()
}

func NewPictureNameTooLong(maxLength int) *DomainError {
	return Validation(CodePictureNameTooLong,
		fmt.Sprintf("picture name can not be longer than %d characters", maxLength)).
		Build()
}

func NewPictureURLTooLong(maxLength int) *DomainError {
	return Validation(CodePictureURLTooLong,
		fmt.Sprintf("picture url can not be longer than %d characters", maxLength)).
		Build()
}

// Not-found errors

func NewCategoryNotFound(id string) *DomainError {
	return NotFound(CodeCategoryNotFound, fmt.Sprintf("category %s not found", id)).
		WithResource("category").
		Build()
}

func NewCreatorNotFound(id string) *DomainError {
	return NotFound(CodeCreatorNotFound, fmt.Sprintf("creator %s not found", id)).
		WithResource("creator").
		Build()
}

func NewProductNotFound(id string) *DomainError {
	return NotFound(CodeProductNotFound, fmt.Sprintf("product %s not found", id)).
		WithResource("product").
		Build()
}

// NewProductWithAssignedCategoryNotFound reports a deallocation against a
// category the product is not assigned to.
func NewProductWithAssignedCategoryNotFound(productID, categoryID string) *DomainError {
	return NotFound(CodeProductWithAssignedCategoryNotFound,
		fmt.Sprintf("product %s has no assignment to category %s", productID, categoryID)).
		WithResource("product").
		Build()
}

// NewProductWithAssignedCategoriesNotFound reports a deallocate-all against a
// product with no category assignments at all.
func NewProductWithAssignedCategoriesNotFound(productID string) *DomainError {
	return NotFound(CodeProductWithAssignedCategoriesNotFound,
		fmt.Sprintf("product %s has no category assignments", productID)).
		WithResource("product").
		Build()
}

// Conflict errors

func NewCategoryAlreadyExists(id string) *DomainError {
	return Conflict(CodeCategoryAlreadyExists, fmt.Sprintf("category %s already exists", id)).
		WithResource("category").
		Build()
}

func NewCreatorAlreadyExists(id string) *DomainError {
	return Conflict(CodeCreatorAlreadyExists, fmt.Sprintf("creator %s already exists", id)).
		WithResource("creator").
		Build()
}

func NewProductAlreadyExists(id string) *DomainError {
	return Conflict(CodeProductAlreadyExists, fmt.Sprintf("product %s already exists", id)).
		WithResource("product").
		Build()
}

func NewProductAlreadyAssigned(productID, categoryID string) *DomainError {
	return Conflict(CodeProductAlreadyAssigned,
		fmt.Sprintf("product %s is already assigned to category %s", productID, categoryID)).
		WithResource("product").
		Build()
}

// Event recorder errors

func NewGetUncommittedEventsFailed() *DomainError {
	return Internal(CodeGetUncommittedEventsFailed,
		"uncommitted domain events requested from a nil entity").
		Build()
}

func NewClearEventsFailed() *DomainError {
	return Internal(CodeClearEventsFailed,
		"domain event clear requested on a nil entity").
		Build()
}
