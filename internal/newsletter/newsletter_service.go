package newsletter

import (
	"context"
	"strings"
	"time"

	"nupo-consult/internal/bootstrap"
	"nupo-consult/internal/events"
	"nupo-consult/internal/messaging/kafka"
	"nupo-consult/internal/metrics"
	newslettererrors "nupo-consult/internal/newsletter/errors"
	"nupo-consult/internal/shared/bulk"
	"nupo-consult/internal/shared/contextutil"
	"nupo-consult/internal/shared/dberr"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const aggregateType = "newsletter"

var subscriberActions = bulk.Actions{
	"activate": bulk.Set(map[string]any{"is_active": true, "unsubscribed_date": nil}),
	"deactivate": func(now time.Time, _ string) map[string]any {
		return map[string]any{"is_active": false, "unsubscribed_date": now}
	},
}

//go:generate mockgen -source=newsletter_service.go -destination=mock/newsletter_service_mock.go -package=mock
type Service interface {
	Subscribe(ctx context.Context, req SubscribeRequest) (SubscribeResult, error)

	List(ctx context.Context, filter ListFilter) ([]SubscriberResponse, int64, error)
	GetByID(ctx context.Context, id string) (SubscriberResponse, error)
	Update(ctx context.Context, id string, req UpdateRequest) (SubscriberResponse, error)
	BulkAction(ctx context.Context, action string, actorID string, req bulk.Request) (bulk.Result, error)
}

type service struct {
	db       *gorm.DB
	repo     Repository
	outbox   kafka.OutboxRepository
	bulk     *bulk.Runner
	validate *validator.Validate
	now      func() time.Time
	logger   *zap.Logger
}

// NewService wires the subscription flow. A nil outbox skips the
// newsletter.subscribed event.
func NewService(db *gorm.DB, repo Repository, outbox kafka.OutboxRepository, audit bootstrap.AuditLogger, logger ...*zap.Logger) Service {
	l := zap.L().Named("newsletter.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("newsletter.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		outbox:   outbox,
		bulk:     bulk.NewRunner(db, "newsletter", &Subscriber{}, subscriberActions, audit, l),
		validate: validator.New(),
		now:      time.Now,
		logger:   l,
	}
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, newslettererrors.ErrInvalidSubscriberID
	}
	return id, nil
}

func (s *service) normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", newslettererrors.ErrEmailRequired
	}
	if err := s.validate.Var(email, "email,max=254"); err != nil {
		return "", newslettererrors.ErrInvalidEmail
	}
	return email, nil
}

func (s *service) Subscribe(ctx context.Context, req SubscribeRequest) (SubscribeResult, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	email, err := s.normalizeEmail(req.Email)
	if err != nil {
		return SubscribeResult{}, err
	}
	name := strings.TrimSpace(req.Name)

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return SubscribeResult{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	result, err := s.subscribe(ctx, qtx, email, name)
	if err != nil {
		l.Error("newsletter subscribe failed", zap.Error(err))
		return SubscribeResult{}, err
	}

	if result.Outcome.Success() && s.outbox != nil {
		event := events.NewsletterSubscribedEvent{
			EventType:    events.NewsletterSubscribedType,
			RequestID:    contextutil.GetRequestID(ctx),
			SubscriberID: result.SubscriberID,
			Email:        email,
			Name:         name,
			Outcome:      string(result.Outcome),
			OccurredAt:   s.now().UTC(),
		}
		outboxEvent, err := kafka.NewOutboxEvent(
			event.RequestID,
			aggregateType,
			result.SubscriberID,
			events.NewsletterSubscribedType,
			events.NewsletterSubscribedTopic,
			event,
		)
		if err != nil {
			return SubscribeResult{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
			l.Error("write newsletter outbox event failed", zap.Error(err))
			return SubscribeResult{}, err
		}
	}

	if result.Outcome.Success() {
		if err := tx.Commit().Error; err != nil {
			return SubscribeResult{}, err
		}
	}

	metrics.RecordNewsletterSubscription(string(result.Outcome))
	l.Info("newsletter subscribe", zap.String("outcome", string(result.Outcome)))
	return result, nil
}

func (s *service) subscribe(ctx context.Context, qtx Repository, email, name string) (SubscribeResult, error) {
	existing, err := qtx.FindByEmail(ctx, email)
	switch {
	case err == nil && existing.IsActive:
		return SubscribeResult{Outcome: OutcomeAlreadySubscribed, SubscriberID: existing.ID.String()}, nil
	case err == nil:
		n, err := qtx.Reactivate(ctx, existing.ID, name)
		if err != nil {
			return SubscribeResult{}, err
		}
		if n == 0 {
			return SubscribeResult{Outcome: OutcomeAlreadySubscribed, SubscriberID: existing.ID.String()}, nil
		}
		return SubscribeResult{Outcome: OutcomeReactivated, SubscriberID: existing.ID.String()}, nil
	case !dberr.IsNotFound(err):
		return SubscribeResult{}, err
	}

	sub := &Subscriber{
		Email:          email,
		Name:           name,
		IsActive:       true,
		SubscribedDate: s.now().UTC(),
		Preferences:    datatypes.JSONMap{},
	}
	if err := qtx.Create(ctx, sub); err != nil {
		if dberr.IsUniqueViolation(err) {
			return SubscribeResult{Outcome: OutcomeAlreadySubscribed}, nil
		}
		return SubscribeResult{}, err
	}
	return SubscribeResult{Outcome: OutcomeSubscribed, SubscriberID: sub.ID.String()}, nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]SubscriberResponse, int64, error) {
	rows, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return MapSubscribers(rows), total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (SubscriberResponse, error) {
	sid, err := parseID(id)
	if err != nil {
		return SubscriberResponse{}, err
	}
	sub, err := s.repo.FindByID(ctx, sid)
	if err != nil {
		return SubscriberResponse{}, mapRepositoryError(err)
	}
	return MapSubscriber(*sub), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (SubscriberResponse, error) {
	sid, err := parseID(id)
	if err != nil {
		return SubscriberResponse{}, err
	}
	sub, err := s.repo.FindByID(ctx, sid)
	if err != nil {
		return SubscriberResponse{}, mapRepositoryError(err)
	}

	if req.Name != nil {
		sub.Name = strings.TrimSpace(*req.Name)
	}
	if req.Preferences != nil {
		sub.Preferences = datatypes.JSONMap(req.Preferences)
	}
	if req.IsActive != nil && *req.IsActive != sub.IsActive {
		sub.IsActive = *req.IsActive
		if sub.IsActive {
			sub.UnsubscribedDate = nil
		} else {
			now := s.now().UTC()
			sub.UnsubscribedDate = &now
		}
	}

	if err := s.repo.Save(ctx, sub); err != nil {
		return SubscriberResponse{}, mapRepositoryError(err)
	}
	return MapSubscriber(*sub), nil
}

func (s *service) BulkAction(ctx context.Context, action string, actorID string, req bulk.Request) (bulk.Result, error) {
	return s.bulk.Run(ctx, action, actorID, req)
}
