package seoerrors

import (
	"net/http"
	"nupo-consult/internal/shared/apperror"
)

var (
	ErrSettingsNotFound = apperror.New(
		apperror.CodeNotFound,
		"SEO settings not found",
		http.StatusNotFound,
	)

	ErrPageTaken = apperror.New(
		apperror.CodeConflict,
		"SEO settings for this page already exist",
		http.StatusConflict,
	)

	ErrInvalidSettingsID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid SEO settings id",
		http.StatusBadRequest,
	)

	ErrInvalidPageName = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown page name",
		http.StatusBadRequest,
	)
)
