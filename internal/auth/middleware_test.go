package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var testSecret = []byte("unit-test-secret")

func signToken(t *testing.T, subject string, secret []byte) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString(secret)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func resolveIdentity(t *testing.T, authorization string) Identity {
	t.Helper()
	var captured Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = IdentityFromContext(r.Context())
	})
	handler := Middleware(testSecret)(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)
	return captured
}

func TestMiddleware_ValidToken(t *testing.T) {
	identity := resolveIdentity(t, "Bearer "+signToken(t, "42", testSecret))
	if !identity.Authenticated {
		t.Fatalf("expected authenticated identity")
	}
	if identity.UserID != 42 {
		t.Fatalf("expected user id 42, got %d", identity.UserID)
	}
}

func TestMiddleware_NoHeaderIsAnonymous(t *testing.T) {
	identity := resolveIdentity(t, "")
	if identity.Authenticated {
		t.Fatalf("expected anonymous identity")
	}
}

func TestMiddleware_WrongSecretIsAnonymous(t *testing.T) {
	identity := resolveIdentity(t, "Bearer "+signToken(t, "42", []byte("other-secret")))
	if identity.Authenticated {
		t.Fatalf("expected anonymous identity for token signed with wrong secret")
	}
}

func TestMiddleware_NonNumericSubjectIsAnonymous(t *testing.T) {
	identity := resolveIdentity(t, "Bearer "+signToken(t, "alice", testSecret))
	if identity.Authenticated {
		t.Fatalf("expected anonymous identity for non-numeric subject")
	}
}

func TestMiddleware_GarbageTokenIsAnonymous(t *testing.T) {
	identity := resolveIdentity(t, "Bearer not-a-token")
	if identity.Authenticated {
		t.Fatalf("expected anonymous identity for malformed token")
	}
}

func TestIdentityFromContext_MissingValue(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	identity := IdentityFromContext(req.Context())
	if identity.Authenticated || identity.UserID != 0 {
		t.Fatalf("expected zero identity, got %+v", identity)
	}
}
