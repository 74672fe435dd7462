package counter

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Target names a numeric column incremented in place. Table and column
// are identifiers from code, never from user input.
type Target struct {
	Table  string
	Column string
}

var NewsViews = Target{Table: "news_articles", Column: "views_count"}

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	Increment(ctx context.Context, target Target, id uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Increment adds one in a single statement so concurrent readers never
// lose an update, and returns the new value. A missing row returns
// gorm.ErrRecordNotFound.
func (r *repository) Increment(ctx context.Context, target Target, id uuid.UUID) (int64, error) {
	var values []int64

	query := fmt.Sprintf(
		`UPDATE %s SET %s = %s + 1 WHERE id = ? RETURNING %s`,
		target.Table, target.Column, target.Column, target.Column,
	)
	err := r.db.WithContext(ctx).Raw(query, id).Scan(&values).Error
	if err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	return values[0], nil
}
