// Package bulk holds the request/response shapes and the set-based update
// used by every admin bulk action.
package bulk

import (
	"context"
	"net/http"
	"sort"
	"time"

	"nupo-consult/internal/bootstrap"
	"nupo-consult/internal/metrics"
	"nupo-consult/internal/shared/apperror"
	"nupo-consult/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Request struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,uuid"`
}

type Result struct {
	Action   string `json:"action"`
	Affected int64  `json:"affected"`
}

var ErrEmptySelection = apperror.New(
	apperror.CodeInvalidInput,
	"Select at least one row",
	http.StatusBadRequest,
)

// ParseIDs validates and de-duplicates the selection.
func ParseIDs(raw []string) ([]uuid.UUID, error) {
	if len(raw) == 0 {
		return nil, ErrEmptySelection
	}
	seen := make(map[uuid.UUID]struct{}, len(raw))
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, apperror.ErrInvalidID
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

// Update applies values to every row of model whose id is in ids with a
// single UPDATE statement and reports RowsAffected.
func Update(ctx context.Context, db *gorm.DB, model any, ids []uuid.UUID, values map[string]any) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := db.WithContext(ctx).
		Model(model).
		Where("id IN ?", ids).
		Updates(values)
	return res.RowsAffected, res.Error
}

// Values builds the column updates for one action. now and actorID let
// actions stamp timestamps and the acting user.
type Values func(now time.Time, actorID string) map[string]any

// Set returns a Values that ignores the clock and the actor.
func Set(values map[string]any) Values {
	return func(time.Time, string) map[string]any { return values }
}

type Actions map[string]Values

// Names lists the registered action names, sorted.
func (a Actions) Names() []string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Runner executes bulk actions for one entity table inside a transaction.
type Runner struct {
	db      *gorm.DB
	entity  string
	model   any
	actions Actions
	audit   bootstrap.AuditLogger
	now     func() time.Time
	logger  *zap.Logger
}

func NewRunner(db *gorm.DB, entity string, model any, actions Actions, audit bootstrap.AuditLogger, logger ...*zap.Logger) *Runner {
	l := zap.L().Named("bulk")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("bulk")
	}
	return &Runner{
		db:      db,
		entity:  entity,
		model:   model,
		actions: actions,
		audit:   audit,
		now:     time.Now,
		logger:  l,
	}
}

func (r *Runner) Run(ctx context.Context, action, actorID string, req Request) (Result, error) {
	values, ok := r.actions[action]
	if !ok {
		return Result{}, apperror.ErrUnknownBulkAction.WithDetails(map[string]any{"allowed": r.actions.Names()})
	}

	ids, err := ParseIDs(req.IDs)
	if err != nil {
		return Result{}, err
	}

	l := contextutil.GetLogger(ctx, r.logger)

	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return Result{}, tx.Error
	}
	defer tx.Rollback()

	affected, err := Update(ctx, tx, r.model, ids, values(r.now().UTC(), actorID))
	if err != nil {
		l.Error("bulk update failed", zap.String("entity", r.entity), zap.String("action", action), zap.Error(err))
		return Result{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return Result{}, err
	}

	metrics.RecordBulkAction(r.entity, action)
	if r.audit != nil {
		r.audit.Log(ctx, bootstrap.AuditLog{
			Action:  r.entity + "." + action,
			Message: "bulk action applied",
			ActorID: actorID,
			Meta: map[string]any{
				"selected": len(ids),
				"affected": affected,
			},
		})
	}

	return Result{Action: action, Affected: affected}, nil
}
