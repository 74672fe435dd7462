package newserrors

import (
	"net/http"
	"nupo-consult/internal/shared/apperror"
)

var (
	ErrArticleNotFound = apperror.New(
		apperror.CodeNotFound,
		"News article not found",
		http.StatusNotFound,
	)

	ErrSlugTaken = apperror.New(
		apperror.CodeConflict,
		"A news article with this slug already exists",
		http.StatusConflict,
	)

	ErrInvalidArticleID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid article id",
		http.StatusBadRequest,
	)

	ErrInvalidArticleType = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown article type",
		http.StatusBadRequest,
	)

	ErrInvalidAuthorID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid author id",
		http.StatusBadRequest,
	)

	ErrInvalidSlug = apperror.New(
		apperror.CodeInvalidInput,
		"Slug cannot be derived from the given value",
		http.StatusBadRequest,
	)
)
