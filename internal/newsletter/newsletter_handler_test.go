package newsletter_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"nupo-consult/internal/middleware"
	"nupo-consult/internal/newsletter"
	newslettererrors "nupo-consult/internal/newsletter/errors"
	newsletterMock "nupo-consult/internal/newsletter/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func setupRouter(t *testing.T) (*gin.Engine, *newsletterMock.MockService) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := newsletterMock.NewMockService(ctrl)
	h := newsletter.NewHandler(svc, zap.NewNop())

	r := gin.New()
	newsletter.RegisterPublicRoutes(r.Group(""), h, nil, middleware.RateLimitByIP(100, 100))
	return r, svc
}

func postJSON(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/newsletter/subscribe", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_SubscribeOutcomes(t *testing.T) {
	cases := []struct {
		outcome newsletter.Outcome
		want    string
	}{
		{newsletter.OutcomeSubscribed, `{"success":true,"message":"Successfully subscribed to newsletter!","outcome":"subscribed"}`},
		{newsletter.OutcomeAlreadySubscribed, `{"success":false,"message":"Email already subscribed!","outcome":"already_subscribed"}`},
		{newsletter.OutcomeReactivated, `{"success":true,"message":"Welcome back! Your newsletter subscription has been reactivated.","outcome":"reactivated"}`},
	}
	for _, tc := range cases {
		t.Run(string(tc.outcome), func(t *testing.T) {
			r, svc := setupRouter(t)
			svc.EXPECT().Subscribe(gomock.Any(), newsletter.SubscribeRequest{Email: "a@example.com"}).
				Return(newsletter.SubscribeResult{Outcome: tc.outcome}, nil)

			w := postJSON(r, `{"email":"a@example.com"}`)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tc.want, w.Body.String())
		})
	}
}

func TestHandler_SubscribeForm(t *testing.T) {
	r, svc := setupRouter(t)
	svc.EXPECT().Subscribe(gomock.Any(), newsletter.SubscribeRequest{Email: "b@example.com", Name: "Bea"}).
		Return(newsletter.SubscribeResult{Outcome: newsletter.OutcomeSubscribed}, nil)

	form := url.Values{"email": {"b@example.com"}, "name": {"Bea"}}
	req, _ := http.NewRequest(http.MethodPost, "/newsletter/subscribe", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_SubscribeErrors(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		r, svc := setupRouter(t)
		svc.EXPECT().Subscribe(gomock.Any(), gomock.Any()).Return(newsletter.SubscribeResult{}, newslettererrors.ErrInvalidEmail)

		w := postJSON(r, `{"email":"nope"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"Please enter a valid email address!"}`, w.Body.String())
	})

	t.Run("unexpected", func(t *testing.T) {
		r, svc := setupRouter(t)
		svc.EXPECT().Subscribe(gomock.Any(), gomock.Any()).Return(newsletter.SubscribeResult{}, errors.New("boom"))

		w := postJSON(r, `{"email":"a@example.com"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"An error occurred!"}`, w.Body.String())
	})
}

func TestHandler_SubscribeWrongMethod(t *testing.T) {
	r, _ := setupRouter(t)

	req, _ := http.NewRequest(http.MethodGet, "/newsletter/subscribe", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Invalid request method!"}`, w.Body.String())
}
