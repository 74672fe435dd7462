package partner_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"nupo-consult/internal/partner"
	partnererrors "nupo-consult/internal/partner/errors"
	partnerMock "nupo-consult/internal/partner/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := partnerMock.NewMockService(ctrl)
	h := partner.NewHandler(svc, zap.NewNop())

	r := gin.New()
	r.GET("/partners/:id", h.GetByID)

	svc.EXPECT().GetByID(gomock.Any(), "p-1").Return(partner.PartnerResponse{}, partnererrors.ErrPartnerNotFound)

	req, _ := http.NewRequest(http.MethodGet, "/partners/p-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}
