package testimonial_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"nupo-consult/internal/shared/bulk"
	"nupo-consult/internal/testimonial"
	testimonialMock "nupo-consult/internal/testimonial/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func setupRouter(t *testing.T) (*gin.Engine, *testimonialMock.MockService) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := testimonialMock.NewMockService(ctrl)
	h := testimonial.NewHandler(svc, zap.NewNop())

	r := gin.New()
	r.GET("/testimonials", h.List)
	r.POST("/testimonials", h.Create)
	r.POST("/testimonials/bulk/:action", h.BulkAction)
	return r, svc
}

func TestHandler_ListFilters(t *testing.T) {
	r, svc := setupRouter(t)
	approved := true
	svc.EXPECT().List(gomock.Any(), testimonial.ListFilter{Rating: 5, IsApproved: &approved, Page: 1, PageSize: 20}).
		Return([]testimonial.TestimonialResponse{}, int64(0), nil)

	req, _ := http.NewRequest(http.MethodGet, "/testimonials?rating=5&is_approved=true", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CreateRequiresContent(t *testing.T) {
	r, _ := setupRouter(t)

	req, _ := http.NewRequest(http.MethodPost, "/testimonials", bytes.NewBufferString(`{"client_name":"A"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Content is required")
}

func TestHandler_Bulk(t *testing.T) {
	r, svc := setupRouter(t)
	id := "9b2f4d0e-1c3a-4e5b-8f6a-7d8c9e0f1a2b"
	svc.EXPECT().BulkAction(gomock.Any(), "approve", "", bulk.Request{IDs: []string{id}}).
		Return(bulk.Result{Action: "approve", Affected: 1}, nil)

	req, _ := http.NewRequest(http.MethodPost, "/testimonials/bulk/approve", bytes.NewBufferString(`{"ids":["`+id+`"]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"affected":1`)
}
