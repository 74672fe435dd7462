package rbac

import (
	"context"
	"nupo-consult/internal/domain"
	"sync"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadPolicy(ctx context.Context) error
	SeedDefaults(ctx context.Context) error
	Enforce(req domain.EnforceRequest) (bool, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

// LoadPolicy replaces the in-memory policy with role_permissions, or with
// DefaultPermissions when the table is empty.
func (s *service) LoadPolicy(ctx context.Context) error {
	perms, err := s.repo.ListRolePermissions(ctx)
	if err != nil {
		return err
	}

	source := "database"
	if len(perms) == 0 {
		perms = DefaultPermissions()
		source = "defaults"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()

	for _, g := range roleInheritance {
		if _, err := s.enforcer.AddGroupingPolicy(g[0], g[1]); err != nil {
			return err
		}
	}

	for _, p := range perms {
		if _, err := s.enforcer.AddPolicy(p.Role, p.Resource, p.Action); err != nil {
			return err
		}
	}

	s.logger.Info("rbac policy loaded",
		zap.String("source", source),
		zap.Int("policies", len(perms)),
	)
	return nil
}

// SeedDefaults writes DefaultPermissions when role_permissions is empty so
// operators can edit the matrix in the database afterwards.
func (s *service) SeedDefaults(ctx context.Context) error {
	perms, err := s.repo.ListRolePermissions(ctx)
	if err != nil {
		return err
	}
	if len(perms) > 0 {
		return nil
	}
	return s.repo.CreateRolePermissions(ctx, DefaultPermissions())
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("user_id", req.UserID),
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("user_id", req.UserID),
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)

	return allowed, nil
}
