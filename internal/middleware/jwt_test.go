package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/marlenko/graveyard-management/internal/utils"
)

const testSecret = "test-secret"

func runJWT(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	handler := JWTAuth(testSecret)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("middleware: %v", err)
	}
	return c, rec
}

func TestJWTAuthSetsStringUserID(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 42, "ADMIN", 5)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	c, rec := runJWT(t, "Bearer "+tok.Token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	// The sub claim decodes from JSON as a number; the context value
	// must still be the string form so key builders can use it.
	uid, ok := c.Get("user_id").(string)
	if !ok {
		t.Fatalf("user_id is %T, want string", c.Get("user_id"))
	}
	if uid != "42" {
		t.Errorf("user_id = %q, want %q", uid, "42")
	}
	if role, _ := c.Get("role").(string); role != "ADMIN" {
		t.Errorf("role = %v, want ADMIN", c.Get("role"))
	}
	if got := currentUserID(c); got != "42" {
		t.Errorf("currentUserID = %q, want %q", got, "42")
	}
}

func TestJWTAuthRejectsBadTokens(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, rec := runJWT(t, tt.header)
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
		})
	}
}

func TestCurrentUserIDFallsBackToAnon(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if got := currentUserID(c); got != "anon" {
		t.Errorf("currentUserID = %q, want anon", got)
	}
}
