package team

import (
	"nupo-consult/internal/shared/dberr"
	teamerrors "nupo-consult/internal/team/errors"
)

func mapRepositoryError(err error) error {
	switch {
	case err == nil:
		return nil
	case dberr.IsNotFound(err):
		return teamerrors.ErrMemberNotFound
	case dberr.IsUniqueViolation(err):
		return teamerrors.ErrSlugTaken
	}
	return err
}
