package counter_test

import (
	"context"
	"sync"
	"testing"

	"nupo-consult/internal/shared/counter"
	"nupo-consult/internal/shared/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type article struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ViewsCount int64     `gorm:"not null;default:0"`
}

func (article) TableName() string { return "news_articles" }

func TestRepository_Increment(t *testing.T) {
	db := testdb.New(t, &article{})
	repo := counter.NewRepository(db)
	ctx := context.Background()

	a := article{ID: uuid.New(), ViewsCount: 41}
	assert.NoError(t, db.Create(&a).Error)

	t.Run("increments by exactly one per call", func(t *testing.T) {
		v, err := repo.Increment(ctx, counter.NewsViews, a.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), v)

		v, err = repo.Increment(ctx, counter.NewsViews, a.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(43), v)
	})

	t.Run("concurrent increments are not lost", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = repo.Increment(ctx, counter.NewsViews, a.ID)
			}()
		}
		wg.Wait()

		var got article
		assert.NoError(t, db.First(&got, "id = ?", a.ID).Error)
		assert.Equal(t, int64(63), got.ViewsCount)
	})

	t.Run("missing row", func(t *testing.T) {
		_, err := repo.Increment(ctx, counter.NewsViews, uuid.New())
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
