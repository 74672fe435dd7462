package user

import (
	"nupo-consult/internal/shared/dberr"
	usererrors "nupo-consult/internal/user/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if dberr.IsNotFound(err) {
		return usererrors.ErrUserNotFound
	}
	if dberr.IsUniqueViolation(err) {
		return usererrors.ErrUserAlreadyExists
	}
	return err
}
