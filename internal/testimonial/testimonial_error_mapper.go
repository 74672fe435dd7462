package testimonial

import (
	"nupo-consult/internal/shared/dberr"
	testimonialerrors "nupo-consult/internal/testimonial/errors"
)

func mapRepositoryError(err error) error {
	if dberr.IsNotFound(err) {
		return testimonialerrors.ErrTestimonialNotFound
	}
	return err
}
