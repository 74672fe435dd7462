package site_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"nupo-consult/internal/news"
	newserrors "nupo-consult/internal/news/errors"
	"nupo-consult/internal/project"
	"nupo-consult/internal/site"
	siteMock "nupo-consult/internal/site/mock"
	"nupo-consult/internal/team"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func setupRouter(t *testing.T) (*gin.Engine, *siteMock.MockService) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := siteMock.NewMockService(ctrl)

	r := gin.New()
	site.RegisterRoutes(r.Group(""), site.NewHandler(svc, zap.NewNop()))
	return r, svc
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Projects(t *testing.T) {
	r, svc := setupRouter(t)
	svc.EXPECT().Projects(gomock.Any(), "infrastructure", "completed", 2).
		Return(site.ProjectsPage{Listing: project.Listing{ProjectType: "infrastructure", Status: "completed"}}, nil)

	w := get(r, "/projects?type=infrastructure&status=completed&page=2")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"project_type":"infrastructure"`)
	assert.Contains(t, w.Body.String(), `"company":null`)
}

func TestHandler_News(t *testing.T) {
	t.Run("bad page falls back to 1", func(t *testing.T) {
		r, svc := setupRouter(t)
		svc.EXPECT().News(gomock.Any(), "", 1).Return(site.NewsPage{Listing: news.Listing{}}, nil)

		w := get(r, "/news?page=abc")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown slug is 404", func(t *testing.T) {
		r, svc := setupRouter(t)
		svc.EXPECT().NewsDetail(gomock.Any(), "gone").Return(site.NewsDetailPage{}, newserrors.ErrArticleNotFound)

		w := get(r, "/news/gone")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_Team(t *testing.T) {
	r, svc := setupRouter(t)
	svc.EXPECT().Team(gomock.Any(), 4).
		Return(site.TeamPage{TeamMembers: []team.TeamMemberResponse{{Name: "Bob"}}}, nil)

	w := get(r, "/team?limit=4")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"team_members":[`)
}

func TestHandler_Contact_Error(t *testing.T) {
	r, svc := setupRouter(t)
	svc.EXPECT().Contact(gomock.Any()).Return(site.ContactPage{}, assert.AnError)

	w := get(r, "/contact")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
