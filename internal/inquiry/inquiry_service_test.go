package inquiry_test

import (
	"context"
	"errors"
	"testing"

	"nupo-consult/internal/catalog"
	"nupo-consult/internal/inquiry"
	inquiryerrors "nupo-consult/internal/inquiry/errors"
	inquiryMock "nupo-consult/internal/inquiry/mock"
	"nupo-consult/internal/messaging/kafka"
	kafkaMock "nupo-consult/internal/messaging/kafka/mock"
	"nupo-consult/internal/shared/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestService_SubmitValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	db, _ := testdb.NewMock(t)
	svc := inquiry.NewService(db, inquiryMock.NewMockRepository(ctrl), nil, nil, nil, zap.NewNop())
	ctx := context.Background()

	t.Run("unknown type", func(t *testing.T) {
		req := contactRequest()
		req.InquiryType = "spam"
		_, err := svc.Submit(ctx, req)
		assert.ErrorIs(t, err, inquiryerrors.ErrInvalidInquiryType)
	})

	t.Run("malformed service id", func(t *testing.T) {
		req := contactRequest()
		req.ServicesInterested = []string{"not-a-uuid"}
		_, err := svc.Submit(ctx, req)
		assert.ErrorIs(t, err, inquiryerrors.ErrInvalidServiceID)
	})
}

func TestService_SubmitOutboxFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	db, sqlMock := testdb.NewMock(t)
	repo := inquiryMock.NewMockRepository(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)
	notifier := &recordingNotifier{}
	svc := inquiry.NewService(db, repo, outbox, notifier, nil, zap.NewNop())
	ctx := context.Background()

	sid := uuid.New()
	req := contactRequest()
	req.ServicesInterested = []string{sid.String()}

	testdb.ExpectTx(sqlMock, false)
	repo.EXPECT().WithTx(gomock.Any()).Return(repo)
	repo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, i *inquiry.ContactInquiry) error {
			assert.False(t, i.IsResponded)
			i.ID = uuid.New()
			return nil
		})
	repo.EXPECT().FindServices(ctx, []uuid.UUID{sid}).Return([]catalog.Service{{ID: sid, Title: "Design"}}, nil)
	repo.EXPECT().LinkServices(ctx, gomock.Any(), gomock.Len(1)).Return(nil)
	repo.EXPECT().CountServices(ctx, gomock.Any()).Return(int64(1), nil)
	outbox.EXPECT().WithTx(gomock.Any()).Return(outbox)
	outbox.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
			assert.Equal(t, "inquiry.submitted", e.EventType)
			return errors.New("disk full")
		})

	_, err := svc.Submit(ctx, req)

	assert.Error(t, err)
	assert.Empty(t, notifier.events)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestService_SubmitLinkCountMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	db, sqlMock := testdb.NewMock(t)
	repo := inquiryMock.NewMockRepository(ctrl)
	svc := inquiry.NewService(db, repo, nil, nil, nil, zap.NewNop())
	ctx := context.Background()

	ids := []uuid.UUID{uuid.New(), uuid.New()}
	req := contactRequest()
	req.ServicesInterested = []string{ids[0].String(), ids[1].String()}

	testdb.ExpectTx(sqlMock, false)
	repo.EXPECT().WithTx(gomock.Any()).Return(repo)
	repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	repo.EXPECT().FindServices(ctx, ids).Return([]catalog.Service{{ID: ids[0]}, {ID: ids[1]}}, nil)
	repo.EXPECT().LinkServices(ctx, gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().CountServices(ctx, gomock.Any()).Return(int64(1), nil)

	_, err := svc.Submit(ctx, req)

	assert.ErrorIs(t, err, inquiryerrors.ErrUnknownServices)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	db, _ := testdb.NewMock(t)
	repo := inquiryMock.NewMockRepository(ctrl)
	svc := inquiry.NewService(db, repo, nil, nil, nil, zap.NewNop())
	ctx := context.Background()
	id := uuid.New()
	actor := uuid.New()

	t.Run("marks responded by the actor", func(t *testing.T) {
		repo.EXPECT().FindByID(ctx, id).Return(&inquiry.ContactInquiry{ID: id, Priority: inquiry.PriorityMedium}, nil)
		repo.EXPECT().Save(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, i *inquiry.ContactInquiry) error {
				require.NotNil(t, i.RespondedByID)
				assert.Equal(t, actor, *i.RespondedByID)
				assert.NotNil(t, i.ResponseDate)
				assert.Equal(t, inquiry.PriorityUrgent, i.Priority)
				assert.Equal(t, "Called back", i.ResponseNotes)
				return nil
			})

		priority, notes, responded := "urgent", "Called back", true
		res, err := svc.Update(ctx, actor.String(), id.String(), inquiry.UpdateRequest{
			Priority:      &priority,
			ResponseNotes: &notes,
			IsResponded:   &responded,
		})

		require.NoError(t, err)
		assert.True(t, res.IsResponded)
	})

	t.Run("bad priority", func(t *testing.T) {
		repo.EXPECT().FindByID(ctx, id).Return(&inquiry.ContactInquiry{ID: id}, nil)

		priority := "whenever"
		_, err := svc.Update(ctx, actor.String(), id.String(), inquiry.UpdateRequest{Priority: &priority})
		assert.ErrorIs(t, err, inquiryerrors.ErrInvalidPriority)
	})

	t.Run("missing", func(t *testing.T) {
		repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Update(ctx, actor.String(), id.String(), inquiry.UpdateRequest{})
		assert.ErrorIs(t, err, inquiryerrors.ErrInquiryNotFound)
	})
}
