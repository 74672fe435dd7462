package inquiry

import (
	inquiryerrors "nupo-consult/internal/inquiry/errors"
	"nupo-consult/internal/shared/dberr"
)

func mapRepositoryError(err error) error {
	if dberr.IsNotFound(err) {
		return inquiryerrors.ErrInquiryNotFound
	}
	return err
}
