package testimonialerrors

import (
	"net/http"
	"nupo-consult/internal/shared/apperror"
)

var (
	ErrTestimonialNotFound = apperror.New(
		apperror.CodeNotFound,
		"Testimonial not found",
		http.StatusNotFound,
	)

	ErrInvalidTestimonialID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid testimonial id",
		http.StatusBadRequest,
	)

	ErrInvalidRating = apperror.New(
		apperror.CodeInvalidInput,
		"Rating must be between 1 and 5",
		http.StatusBadRequest,
	)

	ErrUnknownProject = apperror.New(
		apperror.CodeInvalidInput,
		"Project does not exist",
		http.StatusBadRequest,
	)

	ErrUnknownService = apperror.New(
		apperror.CodeInvalidInput,
		"Service does not exist",
		http.StatusBadRequest,
	)
)
