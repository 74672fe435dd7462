package news

import (
	newserrors "nupo-consult/internal/news/errors"
	"nupo-consult/internal/shared/dberr"
)

func mapRepositoryError(err error) error {
	switch {
	case err == nil:
		return nil
	case dberr.IsNotFound(err):
		return newserrors.ErrArticleNotFound
	case dberr.IsUniqueViolation(err):
		return newserrors.ErrSlugTaken
	}
	return err
}
