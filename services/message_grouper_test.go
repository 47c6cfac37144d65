package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"squadup_server/models"
)

func timeline(senders ...string) []models.Message {
	messages := make([]models.Message, len(senders))
	for i, sender := range senders {
		messages[i] = models.Message{MessageID: string(rune('a' + i)), SenderID: sender}
	}
	return messages
}

func TestGroupBySenderContiguousRuns(t *testing.T) {
	groups := GroupBySender(timeline("alice", "alice", "bob", "alice"))

	require.Len(t, groups, 3)
	assert.Equal(t, "alice", groups[0].SenderID)
	assert.Len(t, groups[0].Messages, 2)
	assert.Equal(t, "bob", groups[1].SenderID)
	assert.Len(t, groups[1].Messages, 1)
	assert.Equal(t, "alice", groups[2].SenderID)
	assert.Len(t, groups[2].Messages, 1)
}

func TestGroupBySenderAlternating(t *testing.T) {
	groups := GroupBySender(timeline("alice", "bob", "alice", "bob"))
	require.Len(t, groups, 4)
	for _, group := range groups {
		assert.Len(t, group.Messages, 1)
	}
}

func TestGroupBySenderSingleRun(t *testing.T) {
	groups := GroupBySender(timeline("alice", "alice", "alice"))
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Messages, 3)
}

func TestGroupBySenderEmpty(t *testing.T) {
	assert.Empty(t, GroupBySender(nil))
	assert.Empty(t, GroupBySender([]models.Message{}))
}

func TestGroupBySenderFlattensBackToInput(t *testing.T) {
	input := timeline("alice", "alice", "bob", "carol", "carol", "alice")

	var flattened []models.Message
	for _, group := range GroupBySender(input) {
		flattened = append(flattened, group.Messages...)
	}
	assert.Equal(t, input, flattened)
}
