package app

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"nupo-consult/internal/newsletter"
	"nupo-consult/internal/shared/config"
	"nupo-consult/internal/shared/testdb"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		App:   config.AppConfig{Name: "NUPO Consult", Env: "test", Port: "0"},
		Redis: config.RedisConfig{CacheTTL: time.Minute},
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: time.Hour,
		},
		Mail:   config.MailConfig{NotifyTo: "info@nupoconsult.com"},
		Limits: config.LimitConfig{PublicWriteRPS: 10, PublicWriteBurst: 10},
	}
}

func setupApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testdb.New(t, Models()...)

	r := gin.New()
	require.NoError(t, registerModules(r, testConfig(), db, nil))
	return r
}

func TestRegisterModules_Routes(t *testing.T) {
	r := setupApp(t)

	cases := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/services", http.StatusOK},
		{http.MethodGet, "/contact", http.StatusOK},
		{http.MethodGet, "/news/missing", http.StatusNotFound},
		{http.MethodGet, "/newsletter/subscribe", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/v1/admin/dashboard", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req, _ := http.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code, w.Body.String())
		})
	}
}

func TestRegisterModules_NewsletterScenario(t *testing.T) {
	r := setupApp(t)

	subscribe := func() string {
		form := url.Values{"email": {"reader@example.com"}}
		req, _ := http.NewRequest(http.MethodPost, "/newsletter/subscribe", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		return w.Body.String()
	}

	assert.Contains(t, subscribe(), newsletter.OutcomeSubscribed.Message())
	assert.Contains(t, subscribe(), newsletter.OutcomeAlreadySubscribed.Message())
}
