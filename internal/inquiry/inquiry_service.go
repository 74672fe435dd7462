package inquiry

import (
	"context"
	"strings"
	"time"

	"nupo-consult/internal/bootstrap"
	"nupo-consult/internal/events"
	inquiryerrors "nupo-consult/internal/inquiry/errors"
	"nupo-consult/internal/messaging/kafka"
	"nupo-consult/internal/metrics"
	"nupo-consult/internal/notification"
	"nupo-consult/internal/shared/bulk"
	"nupo-consult/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const aggregateType = "contact_inquiry"

var inquiryActions = bulk.Actions{
	"mark_responded": func(now time.Time, actorID string) map[string]any {
		values := map[string]any{
			"is_responded":    true,
			"response_date":   now,
			"responded_by_id": nil,
		}
		if id, err := uuid.Parse(actorID); err == nil {
			values["responded_by_id"] = id
		}
		return values
	},
	"mark_unresponded": bulk.Set(map[string]any{
		"is_responded":    false,
		"responded_by_id": nil,
		"response_date":   nil,
	}),
	"set_high_priority": bulk.Set(map[string]any{"priority": string(PriorityHigh)}),
}

//go:generate mockgen -source=inquiry_service.go -destination=mock/inquiry_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, req ContactRequest) (Receipt, error)

	List(ctx context.Context, filter ListFilter) ([]InquiryResponse, int64, error)
	GetByID(ctx context.Context, id string) (InquiryResponse, error)
	Update(ctx context.Context, actorID string, id string, req UpdateRequest) (InquiryResponse, error)
	Delete(ctx context.Context, id string) error
	BulkAction(ctx context.Context, action string, actorID string, req bulk.Request) (bulk.Result, error)
}

type service struct {
	db       *gorm.DB
	repo     Repository
	outbox   kafka.OutboxRepository
	notifier notification.InquiryNotifier
	bulk     *bulk.Runner
	now      func() time.Time
	logger   *zap.Logger
}

// NewService wires the contact intake. A nil outbox skips the event and a
// nil notifier skips the direct mail.
func NewService(
	db *gorm.DB,
	repo Repository,
	outbox kafka.OutboxRepository,
	notifier notification.InquiryNotifier,
	audit bootstrap.AuditLogger,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("inquiry.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("inquiry.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		outbox:   outbox,
		notifier: notifier,
		bulk:     bulk.NewRunner(db, "inquiries", &ContactInquiry{}, inquiryActions, audit, l),
		now:      time.Now,
		logger:   l,
	}
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, inquiryerrors.ErrInvalidInquiryID
	}
	return id, nil
}

func parseServiceIDs(raw []string) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]struct{}, len(raw))
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, inquiryerrors.ErrInvalidServiceID
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *service) Submit(ctx context.Context, req ContactRequest) (Receipt, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	inquiryType := InquiryType(strings.TrimSpace(req.InquiryType))
	if inquiryType == "" {
		inquiryType = TypeGeneral
	}
	if !inquiryType.Valid() {
		return Receipt{}, inquiryerrors.ErrInvalidInquiryType
	}
	serviceIDs, err := parseServiceIDs(req.ServicesInterested)
	if err != nil {
		return Receipt{}, err
	}

	in := &ContactInquiry{
		Name:            strings.TrimSpace(req.Name),
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:           strings.TrimSpace(req.Phone),
		Company:         strings.TrimSpace(req.Company),
		InquiryType:     inquiryType,
		Priority:        PriorityMedium,
		Subject:         strings.TrimSpace(req.Subject),
		Message:         req.Message,
		ProjectBudget:   strings.TrimSpace(req.ProjectBudget),
		ProjectTimeline: strings.TrimSpace(req.ProjectTimeline),
		IsResponded:     false,
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return Receipt{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, in); err != nil {
		l.Error("create inquiry failed", zap.Error(err))
		return Receipt{}, err
	}

	services, err := qtx.FindServices(ctx, serviceIDs)
	if err != nil {
		return Receipt{}, err
	}
	if len(services) != len(serviceIDs) {
		return Receipt{}, inquiryerrors.ErrUnknownServices
	}
	if err := qtx.LinkServices(ctx, in, services); err != nil {
		return Receipt{}, err
	}
	if len(serviceIDs) > 0 {
		linked, err := qtx.CountServices(ctx, in.ID)
		if err != nil {
			return Receipt{}, err
		}
		if linked != int64(len(serviceIDs)) {
			return Receipt{}, inquiryerrors.ErrUnknownServices
		}
	}
	in.ServicesInterested = services

	event := s.submittedEvent(ctx, in)
	if s.outbox != nil {
		outboxEvent, err := kafka.NewOutboxEvent(
			event.RequestID,
			aggregateType,
			in.ID.String(),
			events.InquirySubmittedType,
			events.InquirySubmittedTopic,
			event,
		)
		if err != nil {
			return Receipt{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
			l.Error("write inquiry outbox event failed", zap.Error(err))
			return Receipt{}, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return Receipt{}, err
	}

	metrics.RecordContactSubmission(string(inquiryType))
	l.Info("inquiry submitted",
		zap.String("inquiry_id", in.ID.String()),
		zap.String("inquiry_type", string(inquiryType)),
		zap.Int("services", len(services)),
	)

	if s.notifier != nil {
		if err := s.notifier.NotifyInquiry(ctx, event); err != nil {
			l.Warn("inquiry notification failed", zap.String("inquiry_id", in.ID.String()), zap.Error(err))
		}
	}

	return Receipt{ID: in.ID.String()}, nil
}

func (s *service) submittedEvent(ctx context.Context, in *ContactInquiry) events.InquirySubmittedEvent {
	titles := make([]string, 0, len(in.ServicesInterested))
	for _, svc := range in.ServicesInterested {
		titles = append(titles, svc.Title)
	}
	return events.InquirySubmittedEvent{
		EventType:   events.InquirySubmittedType,
		RequestID:   contextutil.GetRequestID(ctx),
		InquiryID:   in.ID.String(),
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Company:     in.Company,
		InquiryType: string(in.InquiryType),
		Subject:     in.Subject,
		Message:     in.Message,
		Services:    titles,
		OccurredAt:  s.now().UTC(),
	}
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]InquiryResponse, int64, error) {
	rows, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return MapInquiries(rows), total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (InquiryResponse, error) {
	iid, err := parseID(id)
	if err != nil {
		return InquiryResponse{}, err
	}
	in, err := s.repo.FindByID(ctx, iid)
	if err != nil {
		return InquiryResponse{}, mapRepositoryError(err)
	}
	return MapInquiry(*in), nil
}

func (s *service) Update(ctx context.Context, actorID string, id string, req UpdateRequest) (InquiryResponse, error) {
	iid, err := parseID(id)
	if err != nil {
		return InquiryResponse{}, err
	}
	in, err := s.repo.FindByID(ctx, iid)
	if err != nil {
		return InquiryResponse{}, mapRepositoryError(err)
	}

	if req.Priority != nil {
		p := Priority(*req.Priority)
		if !p.Valid() {
			return InquiryResponse{}, inquiryerrors.ErrInvalidPriority
		}
		in.Priority = p
	}
	if req.ResponseNotes != nil {
		in.ResponseNotes = *req.ResponseNotes
	}
	if req.IsResponded != nil && *req.IsResponded != in.IsResponded {
		in.IsResponded = *req.IsResponded
		if in.IsResponded {
			now := s.now().UTC()
			in.ResponseDate = &now
			in.RespondedByID = nil
			if uid, err := uuid.Parse(actorID); err == nil {
				in.RespondedByID = &uid
			}
		} else {
			in.ResponseDate = nil
			in.RespondedByID = nil
		}
		in.RespondedBy = nil
	}

	if err := s.repo.Save(ctx, in); err != nil {
		return InquiryResponse{}, mapRepositoryError(err)
	}
	return MapInquiry(*in), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	iid, err := parseID(id)
	if err != nil {
		return err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	n, err := s.repo.WithTx(tx).Delete(ctx, iid)
	if err != nil {
		return err
	}
	if n == 0 {
		return inquiryerrors.ErrInquiryNotFound
	}
	return tx.Commit().Error
}

func (s *service) BulkAction(ctx context.Context, action string, actorID string, req bulk.Request) (bulk.Result, error) {
	return s.bulk.Run(ctx, action, actorID, req)
}
