package services

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"rental-server/dao/redis"
	"rental-server/models"
	"rental-server/obs"
)

type InboxService struct {
	inboxDao *redis.RedisInboxDAO
	metrics  *obs.Metrics

	// mu serializes read-modify-write cycles on the stored documents.
	mu    sync.Mutex
	now   func() time.Time
	newID func() string
}

func NewInboxService(inboxDao *redis.RedisInboxDAO, metrics *obs.Metrics) *InboxService {
	return &InboxService{
		inboxDao: inboxDao,
		metrics:  metrics,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Seed replaces the stored inbox with the given conversations and history.
func (is *InboxService) Seed(inbox *models.Inbox) error {
	is.mu.Lock()
	defer is.mu.Unlock()

	byConversation := make(map[string][]models.Message, len(inbox.Conversations))
	for _, m := range inbox.Messages {
		byConversation[m.ConversationID] = append(byConversation[m.ConversationID], m)
	}
	for _, c := range inbox.Conversations {
		history := byConversation[c.ID]
		sort.SliceStable(history, func(i, j int) bool { return history[i].Time.Before(history[j].Time) })
		if history == nil {
			history = []models.Message{}
		}
		if err := is.inboxDao.SetMessages(c.ID, history); err != nil {
			return err
		}
	}
	if err := is.inboxDao.SetConversations(inbox.Conversations); err != nil {
		return err
	}
	log.Printf("[InboxService] Seeded %d conversations", len(inbox.Conversations))
	return nil
}

// ListConversations returns conversations with the most recent activity first.
func (is *InboxService) ListConversations() ([]models.Conversation, error) {
	conversations, err := is.inboxDao.GetConversations()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(conversations, func(i, j int) bool {
		return conversations[i].LastMessage.Time.After(conversations[j].LastMessage.Time)
	})
	return conversations, nil
}

// Messages returns the history of a conversation, oldest first, and marks it read.
func (is *InboxService) Messages(conversationID string) ([]models.Message, error) {
	is.mu.Lock()
	defer is.mu.Unlock()

	conversations, i, err := is.find(conversationID)
	if err != nil {
		return nil, err
	}
	if conversations[i].Unread {
		conversations[i].Unread = false
		if err := is.inboxDao.SetConversations(conversations); err != nil {
			return nil, err
		}
	}
	return is.inboxDao.GetMessages(conversationID)
}

// Send appends a message from the current user to a conversation.
func (is *InboxService) Send(conversationID, text string) (*models.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	is.mu.Lock()
	defer is.mu.Unlock()

	conversations, i, err := is.find(conversationID)
	if err != nil {
		return nil, err
	}
	history, err := is.inboxDao.GetMessages(conversationID)
	if err != nil {
		return nil, err
	}

	msg := models.Message{
		ID:             is.newID(),
		ConversationID: conversationID,
		Text:           text,
		Time:           is.now().UTC(),
		FromMe:         true,
	}
	if err := is.inboxDao.SetMessages(conversationID, append(history, msg)); err != nil {
		return nil, err
	}
	conversations[i].LastMessage = msg
	conversations[i].Unread = false
	if err := is.inboxDao.SetConversations(conversations); err != nil {
		return nil, err
	}
	is.metrics.IncMessagesSent()
	return &msg, nil
}

func (is *InboxService) find(conversationID string) ([]models.Conversation, int, error) {
	conversations, err := is.inboxDao.GetConversations()
	if err != nil {
		return nil, 0, err
	}
	for i, c := range conversations {
		if c.ID == conversationID {
			return conversations, i, nil
		}
	}
	return nil, 0, fmt.Errorf("%w: %s", ErrConversationNotFound, conversationID)
}
