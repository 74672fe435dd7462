package teamerrors

import (
	"net/http"
	"nupo-consult/internal/shared/apperror"
)

var (
	ErrMemberNotFound = apperror.New(
		apperror.CodeNotFound,
		"Team member not found",
		http.StatusNotFound,
	)

	ErrSlugTaken = apperror.New(
		apperror.CodeConflict,
		"A team member with this slug already exists",
		http.StatusConflict,
	)

	ErrInvalidMemberID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid team member id",
		http.StatusBadRequest,
	)

	ErrInvalidPositionType = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown position type",
		http.StatusBadRequest,
	)

	ErrInvalidSlug = apperror.New(
		apperror.CodeInvalidInput,
		"Slug cannot be derived from the given value",
		http.StatusBadRequest,
	)
)
