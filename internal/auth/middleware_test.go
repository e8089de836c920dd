package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func callMiddleware(t *testing.T, authHeader string) (uuid.UUID, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	var got uuid.UUID
	handler := Middleware(func(c echo.Context) error {
		id, err := GetUserIDFromContext(c)
		if err != nil {
			t.Fatalf("GetUserIDFromContext: %v", err)
		}
		got = id
		return nil
	})
	return got, handler(c)
}

func TestMiddlewareAcceptsIssuedToken(t *testing.T) {
	userID := uuid.New()
	token, err := generateToken(userID)
	if err != nil {
		t.Fatalf("generateToken: %v", err)
	}

	got, err := callMiddleware(t, "Bearer "+token)
	if err != nil {
		t.Fatalf("middleware rejected issued token: %v", err)
	}
	if got != userID {
		t.Errorf("user id = %v, want %v", got, userID)
	}
}

func TestMiddlewareRejectsBadTokens(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc"},
		{"empty token", "Bearer "},
		{"garbage token", "Bearer not.a.jwt"},
	}
	for _, tc := range cases {
		_, err := callMiddleware(t, tc.header)
		httpErr, ok := err.(*echo.HTTPError)
		if !ok {
			t.Errorf("%s: err = %v, want *echo.HTTPError", tc.name, err)
			continue
		}
		if httpErr.Code != http.StatusUnauthorized {
			t.Errorf("%s: code = %d, want 401", tc.name, httpErr.Code)
		}
	}
}
