package user_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nupo-consult/internal/user"
	usererrors "nupo-consult/internal/user/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeUserService struct {
	ListFn          func(ctx context.Context, filter user.ListFilter) ([]user.UserResponse, int64, error)
	GetByIDFn       func(ctx context.Context, id string) (user.UserResponse, error)
	CreateFn        func(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error)
	ToggleStatusFn  func(ctx context.Context, actorID, id string, isActive bool) error
	ResetPasswordFn func(ctx context.Context, id, newPassword string) error
}

func (f *fakeUserService) List(ctx context.Context, filter user.ListFilter) ([]user.UserResponse, int64, error) {
	return f.ListFn(ctx, filter)
}
func (f *fakeUserService) GetByID(ctx context.Context, id string) (user.UserResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeUserService) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeUserService) ToggleStatus(ctx context.Context, actorID, id string, isActive bool) error {
	return f.ToggleStatusFn(ctx, actorID, id, isActive)
}
func (f *fakeUserService) ResetPassword(ctx context.Context, id, newPassword string) error {
	return f.ResetPasswordFn(ctx, id, newPassword)
}

func setupHandler(svc user.Service) *user.Handler {
	return user.NewHandler(svc, zap.NewNop())
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestUserHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeUserService{
		ListFn: func(ctx context.Context, filter user.ListFilter) ([]user.UserResponse, int64, error) {
			assert.Equal(t, "staff", filter.Role)
			assert.Equal(t, 2, filter.Page)
			assert.Equal(t, 5, filter.PageSize)
			return []user.UserResponse{{ID: uuid.NewString(), Email: "s@nupo.test", Role: "staff"}}, 6, nil
		},
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/admin/users?role=staff&page=2&page_size=5", nil)

	setupHandler(svc).GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.True(t, env.Ok)
	assert.Equal(t, float64(6), env.Meta["total"])
	assert.Equal(t, float64(2), env.Meta["totalPages"])
}

func TestUserHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("validation error", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/admin/users", strings.NewReader(`{"email":"bad"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		setupHandler(&fakeUserService{}).Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_INPUT", decode(t, w).Error.Code)
	})

	t.Run("conflict", func(t *testing.T) {
		svc := &fakeUserService{
			CreateFn: func(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
				return user.UserResponse{}, usererrors.ErrUserAlreadyExists
			},
		}
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"name":"A","email":"a@nupo.test","password":"12345678","role":"editor"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/admin/users", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		setupHandler(svc).Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "CONFLICT", decode(t, w).Error.Code)
	})
}

func TestUserHandler_ToggleStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	actor := uuid.NewString()
	target := uuid.NewString()
	svc := &fakeUserService{
		ToggleStatusFn: func(ctx context.Context, actorID, id string, isActive bool) error {
			assert.Equal(t, actor, actorID)
			assert.Equal(t, target, id)
			assert.False(t, isActive)
			return nil
		},
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPatch, "/admin/users/"+target+"/status", strings.NewReader(`{"is_active":false}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: target}}
	c.Set("user_id_validated", actor)

	setupHandler(svc).ToggleStatus(c)

	assert.Equal(t, http.StatusNoContent, c.Writer.Status())
}
