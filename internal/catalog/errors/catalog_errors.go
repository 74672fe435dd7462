package catalogerrors

import (
	"net/http"
	"nupo-consult/internal/shared/apperror"
)

var (
	ErrServiceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Service not found",
		http.StatusNotFound,
	)

	ErrCategoryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Service category not found",
		http.StatusNotFound,
	)

	ErrServiceSlugTaken = apperror.New(
		apperror.CodeConflict,
		"A service with this slug already exists",
		http.StatusConflict,
	)

	ErrCategorySlugTaken = apperror.New(
		apperror.CodeConflict,
		"A service category with this slug already exists",
		http.StatusConflict,
	)

	ErrInvalidServiceID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid service id",
		http.StatusBadRequest,
	)

	ErrInvalidCategoryID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid category id",
		http.StatusBadRequest,
	)

	ErrUnknownCategory = apperror.New(
		apperror.CodeInvalidInput,
		"Category does not exist",
		http.StatusBadRequest,
	)

	ErrInvalidSlug = apperror.New(
		apperror.CodeInvalidInput,
		"Slug cannot be derived from the given value",
		http.StatusBadRequest,
	)
)
