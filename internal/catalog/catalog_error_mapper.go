package catalog

import (
	catalogerrors "nupo-consult/internal/catalog/errors"
	"nupo-consult/internal/shared/dberr"
)

func mapServiceError(err error) error {
	switch {
	case err == nil:
		return nil
	case dberr.IsNotFound(err):
		return catalogerrors.ErrServiceNotFound
	case dberr.IsUniqueViolation(err):
		return catalogerrors.ErrServiceSlugTaken
	}
	return err
}

func mapCategoryError(err error) error {
	switch {
	case err == nil:
		return nil
	case dberr.IsNotFound(err):
		return catalogerrors.ErrCategoryNotFound
	case dberr.IsUniqueViolation(err):
		return catalogerrors.ErrCategorySlugTaken
	}
	return err
}
