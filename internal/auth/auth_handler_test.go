package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nupo-consult/internal/auth"
	autherrors "nupo-consult/internal/auth/errors"
	authMock "nupo-consult/internal/auth/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func setupAuthRouter(svc auth.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := auth.NewHandler(svc, auth.CookieConfig{AccessTTL: 15 * time.Minute, RefreshTTL: time.Hour}, zap.NewNop())

	r := gin.New()
	r.POST("/login", handler.Login)
	r.POST("/refresh", handler.RefreshToken)
	r.POST("/logout", handler.Logout)
	r.GET("/me", func(c *gin.Context) {
		if id := c.GetHeader("X-Test-User"); id != "" {
			c.Set("user_id", id)
		}
		handler.Me(c)
	})
	return r
}

func cookieNames(w *httptest.ResponseRecorder) map[string]*http.Cookie {
	out := map[string]*http.Cookie{}
	for _, ck := range w.Result().Cookies() {
		out[ck.Name] = ck
	}
	return out
}

func TestHandler_Login(t *testing.T) {
	body, _ := json.Marshal(auth.LoginRequest{Email: "test@nupo.test", Password: "password123"})
	pair := auth.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}

	t.Run("Web Client Gets Cookies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := authMock.NewMockService(ctrl)
		svc.EXPECT().
			Login(gomock.Any(), "test@nupo.test", "password123").
			Return(pair, auth.AuthResponse{ID: "user-1", Email: "test@nupo.test"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Client-Type", "WEB")
		w := httptest.NewRecorder()
		setupAuthRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		cookies := cookieNames(w)
		assert.Equal(t, "access-token", cookies["access_token"].Value)
		assert.True(t, cookies["access_token"].HttpOnly)
		assert.Equal(t, "refresh-token", cookies["refresh_token"].Value)
	})

	t.Run("API Client Gets Body Only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := authMock.NewMockService(ctrl)
		svc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(pair, auth.AuthResponse{}, nil)

		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Client-Type", "api")
		w := httptest.NewRecorder()
		setupAuthRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Result().Cookies())
		assert.Contains(t, w.Body.String(), `"access_token":"access-token"`)
	})

	t.Run("Invalid Credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := authMock.NewMockService(ctrl)
		svc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(auth.TokenPair{}, auth.AuthResponse{}, autherrors.ErrInvalidCredentials)

		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		setupAuthRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
	})

	t.Run("Validation Error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"email":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		setupAuthRouter(authMock.NewMockService(ctrl)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_INPUT")
	})
}

func TestHandler_RefreshToken(t *testing.T) {
	t.Run("Web Client Without Cookie", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
		req.Header.Set("X-Client-Type", "web")
		w := httptest.NewRecorder()
		setupAuthRouter(authMock.NewMockService(ctrl)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Web Client With Cookie", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := authMock.NewMockService(ctrl)
		svc.EXPECT().RefreshToken(gomock.Any(), "old-refresh").
			Return(auth.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, auth.AuthResponse{}, nil)

		req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
		req.Header.Set("X-Client-Type", "web")
		req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "old-refresh"})
		w := httptest.NewRecorder()
		setupAuthRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "r2", cookieNames(w)["refresh_token"].Value)
	})

	t.Run("Mobile Client Body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := authMock.NewMockService(ctrl)
		svc.EXPECT().RefreshToken(gomock.Any(), "body-refresh").
			Return(auth.TokenPair{}, auth.AuthResponse{}, autherrors.ErrInvalidRefreshToken)

		req := httptest.NewRequest(http.MethodPost, "/refresh", bytes.NewBufferString(`{"refresh_token":"body-refresh"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Client-Type", "mobile")
		w := httptest.NewRecorder()
		setupAuthRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandler_Me(t *testing.T) {
	t.Run("Missing User", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		w := httptest.NewRecorder()
		setupAuthRouter(authMock.NewMockService(ctrl)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := authMock.NewMockService(ctrl)
		svc.EXPECT().GetMe(gomock.Any(), "user-1").Return(&auth.AuthResponse{ID: "user-1", Role: "editor"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("X-Test-User", "user-1")
		w := httptest.NewRecorder()
		setupAuthRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"role":"editor"`)
	})
}

func TestHandler_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := httptest.NewRecorder()
	setupAuthRouter(authMock.NewMockService(ctrl)).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/logout", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	cookies := cookieNames(w)
	assert.Equal(t, -1, cookies["access_token"].MaxAge)
	assert.Equal(t, -1, cookies["refresh_token"].MaxAge)
}
