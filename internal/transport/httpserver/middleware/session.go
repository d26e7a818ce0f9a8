package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"family-organizer/internal/domain/session"
)

type SessionReader interface {
	Current(ctx context.Context) (*session.User, bool)
}

type contextKey int

const userKey contextKey = iota

// RequireSession rejects the request unless a family member is signed in and
// puts that member on the request context.
func RequireSession(sessions SessionReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := sessions.Current(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "not_signed_in", "sign in first")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), *user)))
		})
	}
}

func WithUser(ctx context.Context, user session.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func UserFromContext(ctx context.Context) (session.User, bool) {
	user, ok := ctx.Value(userKey).(session.User)
	if !ok || user.ID == "" {
		return session.User{}, false
	}
	return user, true
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorEnvelope{Error: errorBody{Code: code, Message: message}})
}
