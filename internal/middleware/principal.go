package middleware

import (
	"context"
	"net/http"
	"strconv"
)

// UserIDHeader carries the caller-resolved numeric user id. This service
// trusts it without re-verification; resolving it is the outer platform's
// job. Absent or malformed values become 0, the unauthenticated sentinel.
const UserIDHeader = "X-User-ID"

type contextKey string

const userIDKey contextKey = "user_id"

func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFrom returns the resolved principal id for the request, 0 when none.
func UserIDFrom(r *http.Request) int64 {
	v, _ := r.Context().Value(userIDKey).(int64)
	return v
}

// Principal copies the caller-resolved user id from the request header into
// the request context for handlers and downstream logging.
func Principal() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := strconv.ParseInt(r.Header.Get(UserIDHeader), 10, 64)
			if err != nil || userID < 0 {
				userID = 0
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}
