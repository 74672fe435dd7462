package apperror

import "net/http"

var (
	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrInvalidID = New(
		CodeInvalidInput,
		"Invalid id",
		http.StatusBadRequest,
	)

	// ErrUnknownBulkAction is returned for a bulk route whose :action is
	// not registered for the entity.
	ErrUnknownBulkAction = New(
		CodeInvalidInput,
		"Unknown bulk action",
		http.StatusBadRequest,
	)
)
