package auth

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Middleware resolves the bearer token on each request into an Identity and
// stores it on the request context. Absent or invalid credentials yield the
// anonymous identity rather than an HTTP error; individual operations decide
// whether authentication is required.
func Middleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := identityFromRequest(r, secret)
			next.ServeHTTP(w, r.WithContext(ContextWithIdentity(r.Context(), identity)))
		})
	}
}

func identityFromRequest(r *http.Request, secret []byte) Identity {
	header := r.Header.Get("Authorization")
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return Identity{}
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Identity{}
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return Identity{}
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return Identity{}
	}
	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return Identity{}
	}

	return Identity{Authenticated: true, UserID: userID}
}
