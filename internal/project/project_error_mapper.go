package project

import (
	projecterrors "nupo-consult/internal/project/errors"
	"nupo-consult/internal/shared/dberr"
)

func mapRepositoryError(err error) error {
	switch {
	case err == nil:
		return nil
	case dberr.IsNotFound(err):
		return projecterrors.ErrProjectNotFound
	case dberr.IsUniqueViolation(err):
		return projecterrors.ErrSlugTaken
	}
	return err
}
