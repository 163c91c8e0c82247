package middleware

import (
	"context"
	"net/http"
	"strings"

	"rental-server/models"
)

const SESSION_USER_HEADER = "X-Session-User"

// Session resolves the per-request view state from the X-Session-User header.
// A missing or blank header yields an anonymous session.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := models.Session{}
		if user := strings.TrimSpace(r.Header.Get(SESSION_USER_HEADER)); user != "" {
			s = models.Session{LoggedIn: true, User: user}
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey, s)))
	})
}

func SessionFromContext(ctx context.Context) models.Session {
	s, _ := ctx.Value(sessionKey).(models.Session)
	return s
}
