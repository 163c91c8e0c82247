package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-server/dao/redis"
	"rental-server/db"
	"rental-server/models"
	"rental-server/obs"
)

func testInbox() *models.Inbox {
	at := func(m time.Month, d, h int) time.Time { return time.Date(2025, m, d, h, 0, 0, 0, time.UTC) }
	return &models.Inbox{
		Conversations: []models.Conversation{
			{ID: "c1", With: models.Participant{ID: "u1", Name: "Laurent Martin"},
				LastMessage: models.Message{ID: "m2", ConversationID: "c1", Text: "Merci pour votre séjour", Time: at(time.February, 17, 9)}},
			{ID: "c2", With: models.Participant{ID: "u2", Name: "Marie Ngo"}, Unread: true,
				LastMessage: models.Message{ID: "m4", ConversationID: "c2", Text: "Avez-vous besoin d'informations ?", Time: at(time.April, 28, 18)}},
		},
		Messages: []models.Message{
			{ID: "m4", ConversationID: "c2", Text: "Avez-vous besoin d'informations ?", Time: at(time.April, 28, 18)},
			{ID: "m3", ConversationID: "c2", Text: "Bonjour !", Time: at(time.April, 28, 17)},
			{ID: "m2", ConversationID: "c1", Text: "Merci pour votre séjour", Time: at(time.February, 17, 9)},
		},
	}
}

func newTestInboxService(t *testing.T) *InboxService {
	t.Helper()
	is := NewInboxService(redis.NewRedisInboxDAO(db.NewMockRedisClient(context.Background())), obs.NewTestMetrics())
	is.now = func() time.Time { return fixedNow }
	is.newID = func() string { return "m-new" }
	require.NoError(t, is.Seed(testInbox()))
	return is
}

func TestInboxService_ListConversations_LatestFirst(t *testing.T) {
	is := newTestInboxService(t)

	conversations, err := is.ListConversations()

	require.NoError(t, err)
	require.Len(t, conversations, 2)
	assert.Equal(t, "c2", conversations[0].ID)
	assert.True(t, conversations[0].Unread)
}

func TestInboxService_Messages_SortedAndMarkedRead(t *testing.T) {
	is := newTestInboxService(t)

	messages, err := is.Messages("c2")

	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "m3", messages[0].ID)
	assert.Equal(t, "m4", messages[1].ID)

	conversations, _ := is.ListConversations()
	for _, c := range conversations {
		assert.False(t, c.Unread, "conversation %s should be read", c.ID)
	}
}

func TestInboxService_Messages_UnknownConversation(t *testing.T) {
	is := newTestInboxService(t)

	_, err := is.Messages("nope")

	assert.ErrorIs(t, err, ErrConversationNotFound)
}

func TestInboxService_Send(t *testing.T) {
	is := newTestInboxService(t)

	msg, err := is.Send("c1", "  Merci, à bientôt !  ")

	require.NoError(t, err)
	assert.Equal(t, models.Message{ID: "m-new", ConversationID: "c1", Text: "Merci, à bientôt !", Time: fixedNow, FromMe: true}, *msg)

	messages, _ := is.Messages("c1")
	require.Len(t, messages, 2)
	assert.Equal(t, "m-new", messages[1].ID)

	conversations, _ := is.ListConversations()
	assert.Equal(t, "c1", conversations[0].ID, "sending bumps the conversation to the top")
	assert.Equal(t, "Merci, à bientôt !", conversations[0].LastMessage.Text)
}

func TestInboxService_Send_Rejects(t *testing.T) {
	is := newTestInboxService(t)

	_, err := is.Send("c1", "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, err = is.Send("nope", "Bonjour")
	assert.ErrorIs(t, err, ErrConversationNotFound)
}
