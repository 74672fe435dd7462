package newsletter

import (
	newslettererrors "nupo-consult/internal/newsletter/errors"
	"nupo-consult/internal/shared/dberr"
)

func mapRepositoryError(err error) error {
	if dberr.IsNotFound(err) {
		return newslettererrors.ErrSubscriberNotFound
	}
	return err
}
