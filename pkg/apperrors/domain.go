package apperrors

import (
	"net/http"
)

// Factories and predefined variables for common domain errors.

// ErrNotFound converts a repository not-found error (e.g. gorm.ErrRecordNotFound)
// into a 404 AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness violation into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the generic 409 factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation flags an operation the current record state does not allow.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus flags an unrecognized or unusable status value.
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// ErrNotRecordOwner is returned when an actor who is neither the owning
// recruiter nor a station commander/admin tries to mutate a recruit.
// Intentionally generic: no detail about the record leaks to the caller.
var ErrNotRecordOwner = New(
	CodeForbidden,
	"recruit",
	"Not authorized to modify this record",
	http.StatusForbidden,
)

// ErrInsufficientPermissions is returned when a non-admin attempts an admin action.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ErrShipDateRequiresQualified enforces the shipping gate: a ship date may
// only be assigned while the recruit is in the qualified status.
var ErrShipDateRequiresQualified = New(
	CodeInvalidStatus,
	"shipping",
	"Ship date can only be assigned to a qualified recruit",
	http.StatusBadRequest,
)
