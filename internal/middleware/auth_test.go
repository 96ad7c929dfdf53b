package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/workflo/workflo-go/internal/crypto"
)

const testSecret = "test-secret"

func runGuard(t *testing.T, token string, setHeader bool) (*httptest.ResponseRecorder, bool, int64) {
	t.Helper()

	var called bool
	var gotUserID int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		gotUserID, _ = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	if setHeader {
		req.Header.Set(AuthHeader, token)
	}

	rec := httptest.NewRecorder()
	TokenAuth(testSecret)(next).ServeHTTP(rec, req)
	return rec, called, gotUserID
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	return body["message"]
}

func TestTokenAuthMissingHeader(t *testing.T) {
	rec, called, _ := runGuard(t, "", false)

	if called {
		t.Error("next handler should not run without a token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if msg := decodeMessage(t, rec); msg != "No token, authorization denied" {
		t.Errorf("message = %q, want %q", msg, "No token, authorization denied")
	}
}

func TestTokenAuthInvalidToken(t *testing.T) {
	rec, called, _ := runGuard(t, "garbage-token", true)

	if called {
		t.Error("next handler should not run with an invalid token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if msg := decodeMessage(t, rec); msg != "Token is not valid" {
		t.Errorf("message = %q, want %q", msg, "Token is not valid")
	}
}

func TestTokenAuthExpiredToken(t *testing.T) {
	token, err := crypto.GenerateToken(7, testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	rec, called, _ := runGuard(t, token, true)

	if called {
		t.Error("next handler should not run with an expired token")
	}
	if msg := decodeMessage(t, rec); msg != "Token is not valid" {
		t.Errorf("message = %q, want %q", msg, "Token is not valid")
	}
}

func TestTokenAuthValidToken(t *testing.T) {
	token, err := crypto.GenerateToken(7, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	rec, called, userID := runGuard(t, token, true)

	if !called {
		t.Fatal("next handler should run with a valid token")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if userID != 7 {
		t.Errorf("context userID = %d, want 7", userID)
	}
}

func TestUserIDFromContextMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := UserIDFromContext(req.Context()); ok {
		t.Error("expected no userID on a bare context")
	}
}
