package redis

import (
	"encoding/json"
	"errors"
	"fmt"

	"rental-server/db"
	"rental-server/models"
)

const INBOX_CONVERSATIONS_KEY_V1 = "inbox_conversations_v1"
const INBOX_MESSAGES_KEY_FORMAT_V1 = "inbox_messages_v1:%s"

// RedisInboxDAO stores conversations and their message history as JSON documents.
type RedisInboxDAO struct {
	client db.RedisClient
}

func NewRedisInboxDAO(client db.RedisClient) *RedisInboxDAO {
	return &RedisInboxDAO{client: client}
}

func (dao *RedisInboxDAO) SetConversations(conversations []models.Conversation) error {
	data, err := json.Marshal(conversations)
	if err != nil {
		return fmt.Errorf("failed to marshal conversations: %w", err)
	}
	if err := dao.client.Set(INBOX_CONVERSATIONS_KEY_V1, string(data)); err != nil {
		return fmt.Errorf("failed to set conversations in redis: %w", err)
	}
	return nil
}

// GetConversations returns an empty list when the inbox was never seeded.
func (dao *RedisInboxDAO) GetConversations() ([]models.Conversation, error) {
	str, err := dao.client.Get(INBOX_CONVERSATIONS_KEY_V1)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return []models.Conversation{}, nil
		}
		return nil, fmt.Errorf("failed to get conversations from redis: %w", err)
	}
	var conversations []models.Conversation
	if err := json.Unmarshal([]byte(str), &conversations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conversations JSON: %w", err)
	}
	return conversations, nil
}

func (dao *RedisInboxDAO) SetMessages(conversationID string, messages []models.Message) error {
	data, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("failed to marshal messages for conversation %s: %w", conversationID, err)
	}
	key := fmt.Sprintf(INBOX_MESSAGES_KEY_FORMAT_V1, conversationID)
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set messages in redis: %w", err)
	}
	return nil
}

// GetMessages returns the history oldest first, empty when none is stored.
func (dao *RedisInboxDAO) GetMessages(conversationID string) ([]models.Message, error) {
	key := fmt.Sprintf(INBOX_MESSAGES_KEY_FORMAT_V1, conversationID)
	str, err := dao.client.Get(key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return []models.Message{}, nil
		}
		return nil, fmt.Errorf("failed to get messages from redis: %w", err)
	}
	var messages []models.Message
	if err := json.Unmarshal([]byte(str), &messages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal messages JSON: %w", err)
	}
	return messages, nil
}
