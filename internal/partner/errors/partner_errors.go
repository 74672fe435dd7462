package partnererrors

import (
	"net/http"
	"nupo-consult/internal/shared/apperror"
)

var (
	ErrPartnerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Partner not found",
		http.StatusNotFound,
	)

	ErrSlugTaken = apperror.New(
		apperror.CodeConflict,
		"A partner with this slug already exists",
		http.StatusConflict,
	)

	ErrInvalidPartnerID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid partner id",
		http.StatusBadRequest,
	)

	ErrInvalidPartnerType = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown partner type",
		http.StatusBadRequest,
	)

	ErrInvalidStartDate = apperror.New(
		apperror.CodeInvalidInput,
		"partnership_start_date must be formatted as YYYY-MM-DD",
		http.StatusBadRequest,
	)

	ErrInvalidSlug = apperror.New(
		apperror.CodeInvalidInput,
		"Slug cannot be derived from the given value",
		http.StatusBadRequest,
	)
)
