package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) *AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return NewAuthService("test-hmac", "admin", string(hash))
}

func TestLoginAndParse(t *testing.T) {
	a := newTestService(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"username":"admin","password":"s3cret"}`))
	LoginHandler(a)(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d: %s", rec.Code, rec.Body)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "access_token") {
		t.Fatalf("no token in %s", body)
	}
}

func TestLoginRejectsBadPassword(t *testing.T) {
	a := newTestService(t)
	for _, payload := range []string{
		`{"username":"admin","password":"wrong"}`,
		`{"username":"other","password":"s3cret"}`,
		`not json`,
	} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(payload))
		LoginHandler(a)(rec, req)
		if rec.Code == http.StatusOK {
			t.Errorf("payload %q was accepted", payload)
		}
	}
}

// Parse must return a non-nil error for any token it will not vouch for, so
// callers can rely on err == nil implying non-nil claims.
func TestParseRejectsBadTokens(t *testing.T) {
	a := newTestService(t)
	other := NewAuthService("other-hmac", "admin", "")
	foreign, err := other.IssueJWT("admin")
	if err != nil {
		t.Fatalf("IssueJWT: %v", err)
	}
	for _, tok := range []string{"", "bogus", foreign} {
		c, err := a.Parse(tok)
		if err == nil {
			t.Errorf("Parse(%q): no error", tok)
		}
		if c != nil {
			t.Errorf("Parse(%q): claims returned with an error", tok)
		}
	}
}

func TestJWTMiddleware(t *testing.T) {
	a := newTestService(t)
	tok, err := a.IssueJWT("admin")
	if err != nil {
		t.Fatalf("IssueJWT: %v", err)
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if SubjectFromContext(r.Context()) != "admin" {
			t.Errorf("subject not attached to context")
		}
		w.WriteHeader(http.StatusNoContent)
	})
	mw := JWTMiddleware(a)(next)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/submissions", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	mw.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("valid token rejected: %d", rec.Code)
	}

	for _, header := range []string{"", "Bearer bogus", "Basic abc"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/submissions", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		mw.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, rec.Code)
		}
	}
}
