package project_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"nupo-consult/internal/project"
	projecterrors "nupo-consult/internal/project/errors"
	projectMock "nupo-consult/internal/project/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestHandler_ListAndCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := projectMock.NewMockService(ctrl)
	h := project.NewHandler(svc, zap.NewNop())

	r := gin.New()
	r.GET("/projects", h.List)
	r.POST("/projects", h.Create)

	t.Run("filters", func(t *testing.T) {
		svc.EXPECT().List(gomock.Any(), project.ListFilter{Status: "construction", Page: 1, PageSize: 20}).
			Return(nil, int64(0), nil)

		req, _ := http.NewRequest(http.MethodGet, "/projects?status=construction", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown service ids", func(t *testing.T) {
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(project.ProjectResponse{}, projecterrors.ErrUnknownServices)

		body := `{"name":"N","client":"C","project_type":"commercial","description":"d","location":"L","budget":"250000.00"}`
		req, _ := http.NewRequest(http.MethodPost, "/projects", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "One or more services do not exist")
	})
}
