package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const REQUEST_ID_HEADER = "X-Request-Id"

type ctxKey int

const (
	requestIDKey ctxKey = iota
	sessionKey
)

// RequestID reuses the caller's X-Request-Id or generates one, and echoes it
// on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(REQUEST_ID_HEADER)
		if rid == "" {
			rid = uuid.NewString()
		}
		w.Header().Set(REQUEST_ID_HEADER, rid)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, rid)))
	})
}

func RequestIDFromContext(ctx context.Context) string {
	rid, _ := ctx.Value(requestIDKey).(string)
	return rid
}
