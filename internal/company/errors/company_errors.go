package companyerrors

import (
	"net/http"
	"nupo-consult/internal/shared/apperror"
)

const ReasonSingletonDeleteForbidden = "SINGLETON_DELETE_FORBIDDEN"

var (
	ErrProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company profile not found",
		http.StatusNotFound,
	)

	ErrStatsNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company stats not found",
		http.StatusNotFound,
	)

	ErrProfileAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Company profile already exists",
		http.StatusConflict,
	)

	ErrStatsAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Company stats already exist",
		http.StatusConflict,
	)

	ErrSingletonDeleteForbidden = apperror.New(
		apperror.CodeInvalidState,
		"Company singletons cannot be deleted",
		http.StatusMethodNotAllowed,
	).WithDetails(map[string]string{"reason": ReasonSingletonDeleteForbidden})
)
