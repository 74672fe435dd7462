package testimonial_test

import (
	"context"
	"testing"

	"nupo-consult/internal/shared/testdb"
	"nupo-consult/internal/testimonial"
	testimonialerrors "nupo-consult/internal/testimonial/errors"
	testimonialMock "nupo-consult/internal/testimonial/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (testimonial.Service, *testimonialMock.MockRepository) {
	ctrl := gomock.NewController(t)
	db, _ := testdb.NewMock(t)
	repo := testimonialMock.NewMockRepository(ctrl)
	return testimonial.NewService(db, repo, nil, zap.NewNop()), repo
}

func TestService_CreateValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("rating out of range", func(t *testing.T) {
		svc, _ := setupService(t)
		_, err := svc.Create(ctx, testimonial.TestimonialRequest{ClientName: "A", Content: "c", Rating: 6})
		assert.ErrorIs(t, err, testimonialerrors.ErrInvalidRating)
	})

	t.Run("unknown project", func(t *testing.T) {
		svc, repo := setupService(t)
		pid := uuid.New()
		raw := pid.String()
		repo.EXPECT().ProjectExists(ctx, pid).Return(false, nil)

		_, err := svc.Create(ctx, testimonial.TestimonialRequest{ClientName: "A", Content: "c", ProjectID: &raw})
		assert.ErrorIs(t, err, testimonialerrors.ErrUnknownProject)
	})

	t.Run("rating defaults to five", func(t *testing.T) {
		svc, repo := setupService(t)
		repo.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, tm *testimonial.Testimonial) error {
				assert.Equal(t, 5, tm.Rating)
				return nil
			})

		_, err := svc.Create(ctx, testimonial.TestimonialRequest{ClientName: "A", Content: "c"})
		assert.NoError(t, err)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, repo := setupService(t)
	id := uuid.New()

	repo.EXPECT().Delete(ctx, id).Return(int64(0), nil)
	assert.ErrorIs(t, svc.Delete(ctx, id.String()), testimonialerrors.ErrTestimonialNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, "nope"), testimonialerrors.ErrInvalidTestimonialID)
}

func TestService_GetByIDNotFound(t *testing.T) {
	ctx := context.Background()
	svc, repo := setupService(t)
	id := uuid.New()
	repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetByID(ctx, id.String())
	assert.ErrorIs(t, err, testimonialerrors.ErrTestimonialNotFound)
}
