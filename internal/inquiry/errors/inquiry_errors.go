package inquiryerrors

import (
	"net/http"
	"nupo-consult/internal/shared/apperror"
)

var (
	ErrInquiryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Inquiry not found",
		http.StatusNotFound,
	)

	ErrInvalidInquiryID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid inquiry id",
		http.StatusBadRequest,
	)

	ErrInvalidInquiryType = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown inquiry type",
		http.StatusBadRequest,
	)

	ErrInvalidPriority = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown priority",
		http.StatusBadRequest,
	)

	ErrInvalidServiceID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid service id",
		http.StatusBadRequest,
	)

	ErrUnknownServices = apperror.New(
		apperror.CodeInvalidInput,
		"One or more selected services do not exist",
		http.StatusBadRequest,
	)
)
