// Package auth authenticates register terminals with HMAC-signed bearer tokens.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MrJamesThe3rd/kasir/internal/checkout"
	"github.com/MrJamesThe3rd/kasir/internal/http/respond"
)

var ErrMissingToken = errors.New("missing bearer token")

type Authenticator struct {
	secret []byte
}

// New returns an Authenticator for secret. An empty secret disables
// authentication and every request passes through untagged.
func New(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}

func (a *Authenticator) Enabled() bool {
	return len(a.secret) > 0
}

// Issue signs a token naming terminal as its subject.
func (a *Authenticator) Issue(terminal string, now time.Time, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   terminal,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("signing terminal token: %w", err)
	}

	return token, nil
}

// Verify parses a token and returns the terminal it was issued to.
func (a *Authenticator) Verify(raw string) (string, error) {
	var claims jwt.RegisteredClaims

	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}

	if claims.Subject == "" {
		return "", errors.New("token has no terminal subject")
	}

	return claims.Subject, nil
}

// Middleware rejects requests without a valid bearer token and tags the
// request context with the terminal.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	if !a.Enabled() {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || raw == "" {
			respond.JSON(w, http.StatusUnauthorized, map[string]string{"error": ErrMissingToken.Error()})
			return
		}

		terminal, err := a.Verify(raw)
		if err != nil {
			respond.JSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			return
		}

		next.ServeHTTP(w, r.WithContext(checkout.WithTerminal(r.Context(), terminal)))
	})
}
