package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestEnsureSessionSetsCookie(t *testing.T) {
	var gotToken string
	h := EnsureSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = SessionToken(r)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

	if gotToken == "" {
		t.Fatal("expected a session token on the request context")
	}

	cookies := rec.Result().Cookies()
	var found bool
	for _, c := range cookies {
		if c.Name == SessionCookieName {
			found = true
			if c.Value != gotToken {
				t.Errorf("cookie value %q != context token %q", c.Value, gotToken)
			}
			if !c.HttpOnly {
				t.Error("session cookie should be HttpOnly")
			}
		}
	}
	if !found {
		t.Fatal("session cookie not set")
	}
}

func TestEnsureSessionReusesExistingCookie(t *testing.T) {
	var gotToken string
	h := EnsureSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = SessionToken(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "existing-token"})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if gotToken != "existing-token" {
		t.Errorf("token = %q, want existing-token", gotToken)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName {
			t.Error("cookie should not be reset when one exists")
		}
	}
}

func TestSessionTokenWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := SessionToken(req); got != "" {
		t.Errorf("expected empty token, got %q", got)
	}
}
