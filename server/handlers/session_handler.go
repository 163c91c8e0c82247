package handlers

import (
	"log"
	"net/http"
	"strings"

	"rental-server/models"
	"rental-server/server/middleware"
)

type SessionHandler struct{}

func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

type LoginRequest struct {
	Name string `json:"name"`
}

type LoginResponse struct {
	Session models.Session `json:"session"`
	Message string         `json:"message"`
}

// GetSession handles GET /v1/session
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, middleware.SessionFromContext(r.Context()))
}

// Login handles POST /v1/session/login. It only acknowledges the request; the
// client sends the returned user in the X-Session-User header afterwards.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		BadRequest(w, r, err.Error())
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		BadRequest(w, r, "name is required")
		return
	}
	log.Printf("[SessionHandler] Login acknowledged for %s", name)
	WriteJSON(w, http.StatusOK, LoginResponse{
		Session: models.Session{LoggedIn: true, User: name},
		Message: "Connexion réussie",
	})
}
