package projecterrors

import (
	"net/http"
	"nupo-consult/internal/shared/apperror"
)

var (
	ErrProjectNotFound = apperror.New(
		apperror.CodeNotFound,
		"Project not found",
		http.StatusNotFound,
	)

	ErrSlugTaken = apperror.New(
		apperror.CodeConflict,
		"A project with this slug already exists",
		http.StatusConflict,
	)

	ErrInvalidProjectID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid project id",
		http.StatusBadRequest,
	)

	ErrInvalidProjectType = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown project type",
		http.StatusBadRequest,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown project status",
		http.StatusBadRequest,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Dates must be formatted as YYYY-MM-DD",
		http.StatusBadRequest,
	)

	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"end_date cannot be before start_date",
		http.StatusBadRequest,
	)

	ErrInvalidBudget = apperror.New(
		apperror.CodeInvalidInput,
		"Budget cannot be negative",
		http.StatusBadRequest,
	)

	ErrUnknownServices = apperror.New(
		apperror.CodeInvalidInput,
		"One or more services do not exist",
		http.StatusBadRequest,
	)

	ErrUnknownTeamMembers = apperror.New(
		apperror.CodeInvalidInput,
		"One or more team members do not exist",
		http.StatusBadRequest,
	)

	ErrInvalidSlug = apperror.New(
		apperror.CodeInvalidInput,
		"Slug cannot be derived from the given value",
		http.StatusBadRequest,
	)
)
