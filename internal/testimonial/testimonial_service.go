package testimonial

import (
	"context"

	"nupo-consult/internal/bootstrap"
	"nupo-consult/internal/shared/bulk"
	"nupo-consult/internal/shared/contextutil"
	testimonialerrors "nupo-consult/internal/testimonial/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testimonialActions = bulk.Actions{
	"approve":         bulk.Set(map[string]any{"is_approved": true}),
	"unapprove":       bulk.Set(map[string]any{"is_approved": false}),
	"make_featured":   bulk.Set(map[string]any{"is_featured": true}),
	"remove_featured": bulk.Set(map[string]any{"is_featured": false}),
}

//go:generate mockgen -source=testimonial_service.go -destination=mock/testimonial_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, filter ListFilter) ([]TestimonialResponse, int64, error)
	GetByID(ctx context.Context, id string) (TestimonialResponse, error)
	Create(ctx context.Context, req TestimonialRequest) (TestimonialResponse, error)
	Update(ctx context.Context, id string, req TestimonialRequest) (TestimonialResponse, error)
	Delete(ctx context.Context, id string) error
	BulkAction(ctx context.Context, action string, actorID string, req bulk.Request) (bulk.Result, error)

	Featured(ctx context.Context, limit int) ([]TestimonialResponse, error)
}

type service struct {
	repo   Repository
	bulk   *bulk.Runner
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, audit bootstrap.AuditLogger, logger ...*zap.Logger) Service {
	l := zap.L().Named("testimonial.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("testimonial.service")
	}
	return &service{
		repo:   repo,
		bulk:   bulk.NewRunner(db, "testimonials", &Testimonial{}, testimonialActions, audit, l),
		logger: l,
	}
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, testimonialerrors.ErrInvalidTestimonialID
	}
	return id, nil
}

func parseOptionalID(raw *string) *uuid.UUID {
	if raw == nil || *raw == "" {
		return nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil
	}
	return &id
}

func (s *service) apply(ctx context.Context, req TestimonialRequest, t *Testimonial) error {
	rating := req.Rating
	if rating == 0 {
		rating = MaxRating
	}
	if rating < MinRating || rating > MaxRating {
		return testimonialerrors.ErrInvalidRating
	}

	projectID := parseOptionalID(req.ProjectID)
	if projectID != nil {
		ok, err := s.repo.ProjectExists(ctx, *projectID)
		if err != nil {
			return err
		}
		if !ok {
			return testimonialerrors.ErrUnknownProject
		}
	}
	serviceID := parseOptionalID(req.ServiceID)
	if serviceID != nil {
		ok, err := s.repo.ServiceExists(ctx, *serviceID)
		if err != nil {
			return err
		}
		if !ok {
			return testimonialerrors.ErrUnknownService
		}
	}

	t.ClientName = req.ClientName
	t.ClientCompany = req.ClientCompany
	t.ClientPosition = req.ClientPosition
	t.ClientPhoto = req.ClientPhoto
	t.Content = req.Content
	t.Rating = rating
	t.ProjectID = projectID
	t.ServiceID = serviceID
	t.Project = nil
	t.Service = nil
	t.IsFeatured = req.IsFeatured
	t.IsApproved = req.IsApproved
	return nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]TestimonialResponse, int64, error) {
	rows, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return MapTestimonials(rows), total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (TestimonialResponse, error) {
	tid, err := parseID(id)
	if err != nil {
		return TestimonialResponse{}, err
	}
	t, err := s.repo.FindByID(ctx, tid)
	if err != nil {
		return TestimonialResponse{}, mapRepositoryError(err)
	}
	return MapTestimonial(*t), nil
}

func (s *service) Create(ctx context.Context, req TestimonialRequest) (TestimonialResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	t := &Testimonial{}
	if err := s.apply(ctx, req, t); err != nil {
		return TestimonialResponse{}, err
	}
	if err := s.repo.Create(ctx, t); err != nil {
		l.Warn("create testimonial failed", zap.Error(err))
		return TestimonialResponse{}, err
	}

	l.Info("testimonial created", zap.String("testimonial_id", t.ID.String()))
	return MapTestimonial(*t), nil
}

func (s *service) Update(ctx context.Context, id string, req TestimonialRequest) (TestimonialResponse, error) {
	tid, err := parseID(id)
	if err != nil {
		return TestimonialResponse{}, err
	}
	t, err := s.repo.FindByID(ctx, tid)
	if err != nil {
		return TestimonialResponse{}, mapRepositoryError(err)
	}
	if err := s.apply(ctx, req, t); err != nil {
		return TestimonialResponse{}, err
	}
	if err := s.repo.Save(ctx, t); err != nil {
		return TestimonialResponse{}, mapRepositoryError(err)
	}
	return MapTestimonial(*t), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tid, err := parseID(id)
	if err != nil {
		return err
	}
	n, err := s.repo.Delete(ctx, tid)
	if err != nil {
		return err
	}
	if n == 0 {
		return testimonialerrors.ErrTestimonialNotFound
	}
	return nil
}

func (s *service) BulkAction(ctx context.Context, action string, actorID string, req bulk.Request) (bulk.Result, error) {
	return s.bulk.Run(ctx, action, actorID, req)
}

func (s *service) Featured(ctx context.Context, limit int) ([]TestimonialResponse, error) {
	rows, err := s.repo.ListFeatured(ctx, limit)
	if err != nil {
		return nil, err
	}
	return MapTestimonials(rows), nil
}
