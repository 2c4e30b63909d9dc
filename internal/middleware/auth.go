package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"

	"github.com/SolarGUY14/EasyCeipt/pkg/logger"
)

// TokenVerifier is the slice of the identity provider this middleware
// needs. *auth.Client satisfies it.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type Middleware struct {
	Verifier TokenVerifier
}

func NewMiddleware(verifier TokenVerifier) *Middleware {
	return &Middleware{Verifier: verifier}
}

// context keys
type contextKey string

const (
	UIDKey   contextKey = "uid"
	EmailKey contextKey = "email"
)

// Auth resolves the bearer token to the caller's identity and stores
// uid and email in the request context. Everything downstream scopes
// record access by that email.
func (m *Middleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		header := r.Header.Get("Authorization")
		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			writeUnauthorized(w, "No valid authorization header")
			return
		}

		token, err := m.Verifier.VerifyIDToken(r.Context(), parts[1])
		if err != nil {
			writeUnauthorized(w, "Invalid token: "+err.Error())
			return
		}

		email, _ := token.Claims["email"].(string)
		if email == "" {
			writeUnauthorized(w, "Invalid token: missing email claim")
			return
		}

		ctx := context.WithValue(r.Context(), UIDKey, token.UID)
		ctx = context.WithValue(ctx, EmailKey, email)
		_, ctx = logger.With(ctx, "uid", token.UID, "email", email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UID extracts the caller's uid from context.
func UID(ctx context.Context) string {
	uid, _ := ctx.Value(UIDKey).(string)
	return uid
}

// Email extracts the caller's email, the ownership key for all records.
func Email(ctx context.Context) string {
	email, _ := ctx.Value(EmailKey).(string)
	return email
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{
		"code":    "unauthorized",
		"message": message,
	})
}
