package seo

import (
	seoerrors "nupo-consult/internal/seo/errors"
	"nupo-consult/internal/shared/dberr"
)

func mapRepositoryError(err error) error {
	switch {
	case err == nil:
		return nil
	case dberr.IsNotFound(err):
		return seoerrors.ErrSettingsNotFound
	case dberr.IsUniqueViolation(err):
		return seoerrors.ErrPageTaken
	}
	return err
}
