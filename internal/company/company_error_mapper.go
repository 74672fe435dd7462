package company

import (
	companyerrors "nupo-consult/internal/company/errors"
	"nupo-consult/internal/shared/dberr"
)

func mapProfileError(err error) error {
	if err == nil {
		return nil
	}
	if dberr.IsNotFound(err) {
		return companyerrors.ErrProfileNotFound
	}
	if dberr.IsUniqueViolation(err) {
		return companyerrors.ErrProfileAlreadyExists
	}
	return err
}

func mapStatsError(err error) error {
	if err == nil {
		return nil
	}
	if dberr.IsNotFound(err) {
		return companyerrors.ErrStatsNotFound
	}
	if dberr.IsUniqueViolation(err) {
		return companyerrors.ErrStatsAlreadyExists
	}
	return err
}
