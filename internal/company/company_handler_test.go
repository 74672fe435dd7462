package company_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"nupo-consult/internal/company"
	companyerrors "nupo-consult/internal/company/errors"
	companyMock "nupo-consult/internal/company/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func setupHandlerRouter(t *testing.T) (*gin.Engine, *companyMock.MockService) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	mockService := companyMock.NewMockService(ctrl)
	handler := company.NewHandler(mockService, zap.NewNop())

	r := gin.New()
	r.GET("/profile", handler.GetProfile)
	r.POST("/profile", handler.CreateProfile)
	r.DELETE("/profile", handler.RejectDelete)
	r.PUT("/stats", handler.UpdateStats)
	return r, mockService
}

func TestHandler_CreateProfile(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		r, svc := setupHandlerRouter(t)
		svc.EXPECT().CreateProfile(gomock.Any(), company.ProfileRequest{Name: "NUPO Consult"}).
			Return(company.ProfileResponse{ID: "p-1", Name: "NUPO Consult"}, nil)

		body, _ := json.Marshal(company.ProfileRequest{Name: "NUPO Consult"})
		req, _ := http.NewRequest(http.MethodPost, "/profile", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Conflict", func(t *testing.T) {
		r, svc := setupHandlerRouter(t)
		svc.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).
			Return(company.ProfileResponse{}, companyerrors.ErrProfileAlreadyExists)

		req, _ := http.NewRequest(http.MethodPost, "/profile", bytes.NewBufferString(`{"name":"Second"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Invalid URL", func(t *testing.T) {
		r, _ := setupHandlerRouter(t)

		req, _ := http.NewRequest(http.MethodPost, "/profile", bytes.NewBufferString(`{"name":"N","facebook_url":"not a url"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_INPUT")
	})
}

func TestHandler_GetProfile_NotFound(t *testing.T) {
	r, svc := setupHandlerRouter(t)
	svc.EXPECT().GetProfile(gomock.Any()).Return(company.ProfileResponse{}, companyerrors.ErrProfileNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/profile", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_RejectDelete(t *testing.T) {
	r, _ := setupHandlerRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/profile", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	var res map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	errBody := res["error"].(map[string]any)
	assert.Equal(t, "INVALID_STATE", errBody["code"])
	assert.Equal(t, "SINGLETON_DELETE_FORBIDDEN", errBody["details"].(map[string]any)["reason"])
}

func TestHandler_UpdateStats_Validation(t *testing.T) {
	r, _ := setupHandlerRouter(t)

	req, _ := http.NewRequest(http.MethodPut, "/stats", bytes.NewBufferString(`{"years_experience":-1}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
