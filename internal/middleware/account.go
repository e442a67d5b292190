package middleware

import (
	"context"
	"net/http"
	"strings"
	"unicode"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/JellyBot_Go/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// UserIDKey is the context key for the account a request is scoped to
const UserIDKey contextKey = "user_id"

// Account scopes a route group to the {userID} path parameter. The id is
// checked, stored in the context, and attached to every log line of the request.
func Account(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, URLParamUserID)
		if userID == EmptyUserID {
			http.Error(w, ErrMsgMissingUserID, http.StatusBadRequest)
			return
		}
		if !ValidUserID(userID) {
			logger.FromContext(r.Context()).Warn(LogMsgRejectedUserID, "length", len(userID))
			http.Error(w, ErrMsgInvalidUserID, http.StatusBadRequest)
			return
		}

		ctx := WithUserID(r.Context(), userID)
		ctx = logger.WithUserID(ctx, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ValidUserID reports whether id is a usable account id: bounded length, no
// whitespace or control characters.
func ValidUserID(id string) bool {
	if id == "" || len(id) > MaxUserIDLength {
		return false
	}
	return !strings.ContainsFunc(id, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	})
}

// WithUserID adds user ID to request context
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// GetUserID retrieves user ID from context
func GetUserID(ctx context.Context) string {
	if uid, ok := ctx.Value(UserIDKey).(string); ok {
		return uid
	}
	return EmptyUserID
}
