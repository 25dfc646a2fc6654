package errors

import "fmt"

// Infrastructure failure constructors. These wrap causes from repositories,
// event transport and database drivers into the unified error shape.

// NewRepositoryError wraps a storage failure raised by a repository.
func NewRepositoryError(operation string, cause error) *DomainError {
	return Internal(CodeRepositoryError, "repository operation failed").
		WithOperation(operation).
		WithCause(cause).
		Build()
}

// NewDatabaseError wraps a failure raised by the database driver.
func NewDatabaseError(operation string, cause error) *DomainError {
	return Connection(CodeDatabaseError, "database operation failed").
		WithOperation(operation).
		WithCause(cause).
		Build()
}

// NewEventPublishFailed reports that a domain event could not be published.
func NewEventPublishFailed(details string) *DomainError {
	return Connection(CodeEventPublishFailed, "failed to publish domain event").
		WithDetails(details).
		Build()
}

// NewConnectionFailed reports that a downstream dependency is unreachable.
func NewConnectionFailed(target string, cause error) *DomainError {
	return Connection(CodeConnectionFailed, fmt.Sprintf("connection to %s failed", target)).
		WithCause(cause).
		Build()
}
