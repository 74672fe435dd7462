package newslettererrors

import (
	"net/http"
	"nupo-consult/internal/shared/apperror"
)

var (
	ErrSubscriberNotFound = apperror.New(
		apperror.CodeNotFound,
		"Subscriber not found",
		http.StatusNotFound,
	)

	ErrInvalidSubscriberID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid subscriber id",
		http.StatusBadRequest,
	)

	ErrEmailRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Email is required!",
		http.StatusBadRequest,
	)

	ErrInvalidEmail = apperror.New(
		apperror.CodeInvalidInput,
		"Please enter a valid email address!",
		http.StatusBadRequest,
	)

	ErrMethodNotAllowed = apperror.New(
		apperror.CodeMethodNotAllowed,
		"Invalid request method!",
		http.StatusMethodNotAllowed,
	)
)
