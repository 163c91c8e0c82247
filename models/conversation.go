package models

import "time"

// Participant is the other side of a conversation.
type Participant struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// Message is a single inbox message.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	Text           string    `json:"text"`
	Time           time.Time `json:"time"`
	FromMe         bool      `json:"from_me"`
}

// Conversation is an inbox thread about one property.
type Conversation struct {
	ID          string      `json:"id"`
	With        Participant `json:"with"`
	Property    PropertyRef `json:"property"`
	LastMessage Message     `json:"last_message"`
	Unread      bool        `json:"unread"`
}

// Inbox is the seed file layout for conversations and their history.
type Inbox struct {
	Conversations []Conversation `json:"conversations"`
	Messages      []Message      `json:"messages"`
}
