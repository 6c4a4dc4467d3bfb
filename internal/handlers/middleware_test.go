package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"inventory_management/internal/models"
	"inventory_management/internal/service"

	"github.com/gin-gonic/gin"
)

// minimal router wiring only the middleware + a protected endpoint
func newMiddlewareOnlyRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil)
	r.GET("/secure", h.userIdentity, func(c *gin.Context) {
		u := currentUser(c)
		c.JSON(http.StatusOK, gin.H{"ok": true, "username": u.Username})
	})
	return r
}

func TestUserIdentity_Errors(t *testing.T) {
	cases := []struct {
		name       string
		header     string
		resolveErr error
		errMsg     string
	}{
		{name: "missing header", header: "", errMsg: errMissingAuthHeader},
		{name: "invalid scheme", header: "Token abc", errMsg: errBadAuthHeader},
		{name: "bearer without token", header: "Bearer", errMsg: errBadAuthHeader},
		{name: "bearer with blank token", header: "Bearer   ", errMsg: errBadAuthHeader},
		{name: "expired/invalid token", header: "Bearer expired", resolveErr: service.ErrInvalidToken, errMsg: service.ErrInvalidToken.Error()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{resolveErr: tc.resolveErr}
			r := newMiddlewareOnlyRouter(&service.Service{Authorization: auth})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status: got %d, want 401 (body=%s)", w.Code, w.Body.String())
			}
			if got := w.Header().Get("WWW-Authenticate"); got != "Bearer" {
				t.Fatalf("WWW-Authenticate: got %q", got)
			}

			var out struct {
				Error string `json:"error"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if out.Error != tc.errMsg {
				t.Fatalf("error message: got %q, want %q", out.Error, tc.errMsg)
			}
		})
	}
}

func TestUserIdentity_SuccessSetsUserAndProceeds(t *testing.T) {
	auth := &mockAuth{user: &models.User{ID: 123, Username: "bob"}}
	r := newMiddlewareOnlyRouter(&service.Service{Authorization: auth})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "bearer good-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d; body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		OK       bool   `json:"ok"`
		Username string `json:"username"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.OK || resp.Username != "bob" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if auth.lastResolveToken != "good-token" {
		t.Fatalf("ResolveToken got %q, want %q", auth.lastResolveToken, "good-token")
	}
}

func TestUserIdentity_QueryTokenOnlyForWebSocket(t *testing.T) {
	auth := &mockAuth{}
	r := newMiddlewareOnlyRouter(&service.Service{Authorization: auth})

	// plain request: ?token= is ignored
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/secure?token=abc", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for query token on plain request, got %d", w.Code)
	}

	// upgrade request: ?token= is accepted
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure?token=abc", nil)
	req.Header.Set("Connection", "Upgrade")
	req.Header.Set("Upgrade", "websocket")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for websocket query token, got %d", w.Code)
	}
	if auth.lastResolveToken != "abc" {
		t.Fatalf("ResolveToken got %q", auth.lastResolveToken)
	}
}

func TestRequestID(t *testing.T) {
	r := newTestRouter(&service.Service{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Header().Get(requestIDHeader) == "" {
		t.Fatalf("expected a generated request id")
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	r.ServeHTTP(w, req)
	if got := w.Header().Get(requestIDHeader); got != "abc-123" {
		t.Fatalf("expected propagated request id, got %q", got)
	}
}

func TestCORS_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(&service.Service{}, nil, WithAllowedOrigins([]string{"http://localhost:3000"}))
	r := h.InitRoutes()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/products", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("Access-Control-Allow-Origin = %q", got)
	}
}
