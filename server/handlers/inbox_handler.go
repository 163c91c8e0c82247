package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	services "rental-server/service"
)

type InboxHandler struct {
	inboxService *services.InboxService
}

func NewInboxHandler(inboxService *services.InboxService) *InboxHandler {
	return &InboxHandler{inboxService: inboxService}
}

type SendMessageRequest struct {
	Text string `json:"text"`
}

// ListConversations handles GET /v1/conversations
func (h *InboxHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	conversations, err := h.inboxService.ListConversations()
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, conversations)
}

// GetMessages handles GET /v1/conversations/{id}/messages
func (h *InboxHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.inboxService.Messages(mux.Vars(r)[ID_PATH_VAR])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, messages)
}

// SendMessage handles POST /v1/conversations/{id}/messages
func (h *InboxHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		BadRequest(w, r, err.Error())
		return
	}
	msg, err := h.inboxService.Send(mux.Vars(r)[ID_PATH_VAR], req.Text)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, msg)
}
