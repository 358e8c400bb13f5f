package router

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/clientportal/internal/domain/errors"
	"github.com/polkiloo/clientportal/internal/domain/model"
	"github.com/polkiloo/clientportal/internal/server/http/dto"
	"github.com/polkiloo/clientportal/internal/server/http/handlers"
	testhelpers "github.com/polkiloo/clientportal/internal/test"
)

func newEngine(facade *testhelpers.PortalFacadeStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return Setup(facade, logger)
}

func serve(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	return resp
}

func TestSetupRoutes(t *testing.T) {
	clientID := uuid.New()
	facade := &testhelpers.PortalFacadeStub{
		ParseTokenFn: func(token string) (uuid.UUID, error) {
			if token != "token" {
				return uuid.Nil, errors.New("unexpected token")
			}
			return clientID, nil
		},
		NotificationsFn: func(ctx context.Context, id uuid.UUID) ([]model.Notification, error) {
			return []model.Notification{{ID: 1, ClientID: id, Title: "Payment Received", Type: model.NotificationSuccess}}, nil
		},
	}
	engine := newEngine(facade)

	body, _ := json.Marshal(map[string]string{"email": "user@example.com", "password": "password1"})
	req := httptest.NewRequest(http.MethodPost, "/api/client/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if resp := serve(engine, req); resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for register, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/client/notifications", nil)
	req.Header.Set("Authorization", "Bearer token")
	if resp := serve(engine, req); resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for notifications, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/client/profile", nil)
	if resp := serve(engine, req); resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for anonymous profile, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/client/profile", nil)
	req.AddCookie(&http.Cookie{Name: "portal_token", Value: "token"})
	resp := serve(engine, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for cookie auth, got %d", resp.Code)
	}
	var profile dto.ClientResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &profile); err != nil || profile.ID != clientID {
		t.Fatalf("expected profile of %s, got %+v %v", clientID, profile, err)
	}
}

func TestPublicRoutes(t *testing.T) {
	engine := newEngine(&testhelpers.PortalFacadeStub{
		ExchangeRatesFn: func(ctx context.Context, action string) (model.Rates, error) {
			if action == "bogus" {
				return nil, domainErrors.ErrInvalidRateMode
			}
			return model.FallbackRates(), nil
		},
	})

	cases := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/api/detect-location", "", http.StatusOK},
		{http.MethodGet, "/api/exchange-rates", "", http.StatusOK},
		{http.MethodGet, "/api/exchange-rates?action=bogus", "", http.StatusBadRequest},
		{http.MethodPost, "/api/send-email", `{"to":"a@example.com","subject":"s","html":"h"}`, http.StatusOK},
		{http.MethodPost, "/api/zoho-webhook", `{"event_type":"invoice_created","data":{"invoice_id":"1"}}`, http.StatusOK},
		{http.MethodGet, "/healthz", "", http.StatusOK},
		{http.MethodGet, "/api/unknown", "", http.StatusNotFound},
	}
	for _, tc := range cases {
		var reader io.Reader
		if tc.body != "" {
			reader = strings.NewReader(tc.body)
		}
		req := httptest.NewRequest(tc.method, tc.path, reader)
		if tc.body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		if resp := serve(engine, req); resp.Code != tc.status {
			t.Fatalf("%s %s: expected %d, got %d", tc.method, tc.path, tc.status, resp.Code)
		}
	}
}

func TestOptionsAnswered(t *testing.T) {
	engine := newEngine(&testhelpers.PortalFacadeStub{})
	for _, path := range []string{"/api/exchange-rates", "/api/zoho-webhook", "/api/client/profile", "/api/client/notifications/5/read"} {
		resp := serve(engine, httptest.NewRequest(http.MethodOptions, path, nil))
		if resp.Code != http.StatusOK {
			t.Fatalf("OPTIONS %s: expected 200, got %d", path, resp.Code)
		}
	}
}

func TestMetricsEndpoint(t *testing.T) {
	engine := newEngine(&testhelpers.PortalFacadeStub{})
	_ = serve(engine, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	resp := serve(engine, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for metrics, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "portal_http_requests_total") {
		t.Fatal("expected http request counter in exposition")
	}
}

var _ handlers.PortalFacade = (*testhelpers.PortalFacadeStub)(nil)
