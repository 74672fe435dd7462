package team_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"nupo-consult/internal/team"
	teamerrors "nupo-consult/internal/team/errors"
	teamMock "nupo-consult/internal/team/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func setupRouter(t *testing.T) (*gin.Engine, *teamMock.MockService) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := teamMock.NewMockService(ctrl)
	h := team.NewHandler(svc, zap.NewNop())

	r := gin.New()
	r.GET("/team", h.List)
	r.PUT("/team/:id", h.Update)
	r.DELETE("/team/:id", h.Delete)
	return r, svc
}

func TestHandler_List(t *testing.T) {
	r, svc := setupRouter(t)
	svc.EXPECT().List(gomock.Any(), team.ListFilter{PositionType: "engineer", Page: 1, PageSize: 20}).
		Return([]team.TeamMemberResponse{{Name: "Alice"}}, int64(1), nil)

	req, _ := http.NewRequest(http.MethodGet, "/team?position_type=engineer", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
}

func TestHandler_Update(t *testing.T) {
	t.Run("bad email", func(t *testing.T) {
		r, _ := setupRouter(t)
		body := `{"name":"A","position":"P","position_type":"ceo","bio":"b","email":"nope"}`
		req, _ := http.NewRequest(http.MethodPut, "/team/x", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		r, svc := setupRouter(t)
		svc.EXPECT().Update(gomock.Any(), "x", gomock.Any()).
			Return(team.TeamMemberResponse{}, teamerrors.ErrMemberNotFound)

		body := `{"name":"A","position":"P","position_type":"ceo","bio":"b"}`
		req, _ := http.NewRequest(http.MethodPut, "/team/x", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_Delete(t *testing.T) {
	r, svc := setupRouter(t)
	svc.EXPECT().Delete(gomock.Any(), "x").Return(nil)

	req, _ := http.NewRequest(http.MethodDelete, "/team/x", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
