package bulk_test

import (
	"context"
	"testing"
	"time"

	"nupo-consult/internal/bootstrap"
	"nupo-consult/internal/shared/apperror"
	"nupo-consult/internal/shared/bulk"
	"nupo-consult/internal/shared/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type widget struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	IsFeatured bool
	UpdatedAt  time.Time
}

func TestParseIDs(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	ids, err := bulk.ParseIDs([]string{a.String(), b.String(), a.String()})
	assert.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b}, ids)

	_, err = bulk.ParseIDs(nil)
	assert.ErrorIs(t, err, bulk.ErrEmptySelection)

	_, err = bulk.ParseIDs([]string{"not-a-uuid"})
	assert.ErrorIs(t, err, apperror.ErrInvalidID)
}

func TestUpdate(t *testing.T) {
	db := testdb.New(t, &widget{})
	ctx := context.Background()

	rows := []widget{{ID: uuid.New()}, {ID: uuid.New()}, {ID: uuid.New()}}
	assert.NoError(t, db.Create(&rows).Error)

	affected, err := bulk.Update(ctx, db, &widget{}, []uuid.UUID{rows[0].ID, rows[2].ID}, map[string]any{"is_featured": true})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	var featured int64
	db.Model(&widget{}).Where("is_featured = ?", true).Count(&featured)
	assert.Equal(t, int64(2), featured)

	var untouched widget
	assert.NoError(t, db.First(&untouched, "id = ?", rows[1].ID).Error)
	assert.False(t, untouched.IsFeatured)

	affected, err = bulk.Update(ctx, db, &widget{}, nil, map[string]any{"is_featured": true})
	assert.NoError(t, err)
	assert.Zero(t, affected)
}

type auditRecorder struct {
	entries []bootstrap.AuditLog
}

func (a *auditRecorder) Log(ctx context.Context, entry bootstrap.AuditLog) {
	a.entries = append(a.entries, entry)
}

type stamped struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	IsFeatured bool
	HandledBy  *string
	HandledAt  *time.Time
	UpdatedAt  time.Time
}

func TestRunner_Run(t *testing.T) {
	db := testdb.New(t, &stamped{})
	ctx := context.Background()
	audit := &auditRecorder{}

	rows := []stamped{{ID: uuid.New()}, {ID: uuid.New()}, {ID: uuid.New()}}
	assert.NoError(t, db.Create(&rows).Error)

	actions := bulk.Actions{
		"make_featured": bulk.Set(map[string]any{"is_featured": true}),
		"handle": func(now time.Time, actorID string) map[string]any {
			return map[string]any{"handled_by": actorID, "handled_at": now}
		},
	}
	runner := bulk.NewRunner(db, "widgets", &stamped{}, actions, audit, zap.NewNop())

	t.Run("applies to exactly the selection", func(t *testing.T) {
		res, err := runner.Run(ctx, "handle", "actor-1", bulk.Request{IDs: []string{rows[0].ID.String(), rows[1].ID.String()}})

		assert.NoError(t, err)
		assert.Equal(t, bulk.Result{Action: "handle", Affected: 2}, res)

		var handled []stamped
		db.Where("handled_by = ?", "actor-1").Find(&handled)
		assert.Len(t, handled, 2)
		for _, h := range handled {
			assert.NotNil(t, h.HandledAt)
		}

		assert.Len(t, audit.entries, 1)
		assert.Equal(t, "widgets.handle", audit.entries[0].Action)
		assert.Equal(t, "actor-1", audit.entries[0].ActorID)
	})

	t.Run("unknown action", func(t *testing.T) {
		_, err := runner.Run(ctx, "explode", "actor-1", bulk.Request{IDs: []string{rows[0].ID.String()}})
		assert.ErrorIs(t, err, apperror.ErrUnknownBulkAction)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := runner.Run(ctx, "make_featured", "actor-1", bulk.Request{IDs: []string{"x"}})
		assert.ErrorIs(t, err, apperror.ErrInvalidID)
	})

	t.Run("action names are sorted", func(t *testing.T) {
		assert.Equal(t, []string{"handle", "make_featured"}, actions.Names())
	})
}
