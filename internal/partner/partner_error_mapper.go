package partner

import (
	partnererrors "nupo-consult/internal/partner/errors"
	"nupo-consult/internal/shared/dberr"
)

func mapRepositoryError(err error) error {
	switch {
	case err == nil:
		return nil
	case dberr.IsNotFound(err):
		return partnererrors.ErrPartnerNotFound
	case dberr.IsUniqueViolation(err):
		return partnererrors.ErrSlugTaken
	}
	return err
}
