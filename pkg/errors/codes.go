// Package errors provides standardized error codes for consistent error handling.
package errors

// ErrorCode represents a unique error code for specific error scenarios
type ErrorCode string

// Domain error codes
const (
	// Identifier errors
	CodeInvalidCategoryID ErrorCode = "INVALID_CATEGORY_ID"
	CodeInvalidCreatorID  ErrorCode = "INVALID_CREATOR_ID"
	CodeInvalidProductID  ErrorCode = "INVALID_PRODUCT_ID"

	// Category field errors
	CodeCategoryNameEmpty           ErrorCode = "CATEGORY_NAME_EMPTY"
	CodeCategoryNameTooShort        ErrorCode = "CATEGORY_NAME_TOO_SHORT"
	CodeCategoryNameTooLong         ErrorCode = "CATEGORY_NAME_TOO_LONG"
	CodeCategoryDescriptionEmpty    ErrorCode = "CATEGORY_DESCRIPTION_EMPTY"
	CodeCategoryDescriptionTooShort ErrorCode = "CATEGORY_DESCRIPTION_TOO_SHORT"
	CodeCategoryDescriptionTooLong  ErrorCode = "CATEGORY_DESCRIPTION_TOO_LONG"

	// Creator field errors
	CodeCreatorNameEmpty    ErrorCode = "CREATOR_NAME_EMPTY"
	CodeCreatorNameTooShort ErrorCode = "CREATOR_NAME_TOO_SHORT"
	CodeCreatorNameTooLong  ErrorCode = "CREATOR_NAME_TOO_LONG"
	CodeCreatorRoleInvalid  ErrorCode = "CREATOR_ROLE_INVALID"

	// Product field errors
	CodeProductNameEmpty     ErrorCode = "PRODUCT_NAME_EMPTY"
	CodeProductNameTooShort  ErrorCode = "PRODUCT_NAME_TOO_SHORT"
	CodeProductNameTooLong   ErrorCode = "PRODUCT_NAME_TOO_LONG"
	CodeProducerEmpty        ErrorCode = "PRODUCT_PRODUCER_EMPTY"
	CodeProducerNameTooShort ErrorCode = "PRODUCT_PRODUCER_TOO_SHORT"
	CodeProducerNameTooLong  ErrorCode = "PRODUCT_PRODUCER_TOO_LONG"

	// Picture errors
	CodePictureNameEmpty   ErrorCode = "PICTURE_NAME_EMPTY"
	CodePictureURLEmpty    ErrorCode = "PICTURE_URL_EMPTY"
	CodePictureNameTooLong ErrorCode = "PICTURE_NAME_TOO_LONG"
	CodePictureURLTooLong  ErrorCode = "PICTURE_URL_TOO_LONG"

	// Not-found errors
	CodeCategoryNotFound                      ErrorCode = "CATEGORY_NOT_FOUND"
	CodeCreatorNotFound                       ErrorCode = "CREATOR_NOT_FOUND"
	CodeProductNotFound                       ErrorCode = "PRODUCT_NOT_FOUND"
	CodeProductWithAssignedCategoryNotFound   ErrorCode = "PRODUCT_WITH_ASSIGNED_CATEGORY_NOT_FOUND"
	CodeProductWithAssignedCategoriesNotFound ErrorCode = "PRODUCT_WITH_ASSIGNED_CATEGORIES_NOT_FOUND"

	// Conflict errors
	CodeCategoryAlreadyExists  ErrorCode = "CATEGORY_ALREADY_EXISTS"
	CodeCreatorAlreadyExists   ErrorCode = "CREATOR_ALREADY_EXISTS"
	CodeProductAlreadyExists   ErrorCode = "PRODUCT_ALREADY_EXISTS"
	CodeProductAlreadyAssigned ErrorCode = "PRODUCT_ALREADY_ASSIGNED_TO_CATEGORY"

	// Event recorder errors
	CodeGetUncommittedEventsFailed ErrorCode = "GET_UNCOMMITTED_EVENTS_FAILED"
	CodeClearEventsFailed          ErrorCode = "CLEAR_EVENTS_FAILED"

	// Validation errors
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidInput     ErrorCode = "INVALID_INPUT"

	// Infrastructure errors
	CodeRepositoryError    ErrorCode = "REPOSITORY_ERROR"
	CodeDatabaseError      ErrorCode = "DATABASE_ERROR"
	CodeEventPublishFailed ErrorCode = "EVENT_PUBLISH_FAILED"
	CodeInternalError      ErrorCode = "INTERNAL_ERROR"
	CodeConnectionFailed   ErrorCode = "CONNECTION_FAILED"
)

// HTTPStatusCode returns the appropriate HTTP status code for an error code
func (c ErrorCode) HTTPStatusCode() int {
	switch c {
	// 400 Bad Request
	case CodeInvalidCategoryID, CodeInvalidCreatorID, CodeInvalidProductID,
		CodeCategoryNameEmpty, CodeCategoryNameTooShort, CodeCategoryNameTooLong,
		CodeCategoryDescriptionEmpty, CodeCategoryDescriptionTooShort, CodeCategoryDescriptionTooLong,
		CodeCreatorNameEmpty, CodeCreatorNameTooShort, CodeCreatorNameTooLong, CodeCreatorRoleInvalid,
		CodeProductNameEmpty, CodeProductNameTooShort, CodeProductNameTooLong,
		CodeProducerEmpty, CodeProducerNameTooShort, CodeProducerNameTooLong,
		CodePictureNameEmpty, CodePictureURLEmpty, CodePictureNameTooLong, CodePictureURLTooLong,
		CodeValidationFailed, CodeInvalidInput:
		return 400

	// 404 Not Found
	case CodeCategoryNotFound, CodeCreatorNotFound, CodeProductNotFound,
		CodeProductWithAssignedCategoryNotFound, CodeProductWithAssignedCategoriesNotFound:
		return 404

	// 409 Conflict
	case CodeCategoryAlreadyExists, CodeCreatorAlreadyExists, CodeProductAlreadyExists,
		CodeProductAlreadyAssigned:
		return 409

	// 503 Service Unavailable
	case CodeConnectionFailed:
		return 503

	// 500 Internal Server Error (default)
	default:
		return 500
	}
}

// String returns the string representation of the error code
func (c ErrorCode) String() string {
	return string(c)
}

// IsRetryable returns whether an error with this code should be retried
func (c ErrorCode) IsRetryable() bool {
	switch c {
	case CodeConnectionFailed, CodeEventPublishFailed, CodeDatabaseError:
		return true
	default:
		return false
	}
}

// Severity returns the severity level for the error code
func (c ErrorCode) Severity() ErrorSeverity {
	switch c {
	// Critical - system failures
	case CodeInternalError, CodeDatabaseError:
		return SeverityCritical

	// High - service disruptions
	case CodeConnectionFailed, CodeEventPublishFailed, CodeRepositoryError:
		return SeverityHigh

	// Medium - broken invariants on live entities
	case CodeGetUncommittedEventsFailed, CodeClearEventsFailed,
		CodeProductAlreadyAssigned, CodeCategoryAlreadyExists,
		CodeCreatorAlreadyExists, CodeProductAlreadyExists:
		return SeverityMedium

	// Low - user input errors
	default:
		return SeverityLow
	}
}
