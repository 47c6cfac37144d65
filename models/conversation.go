package models

// LastMessage is the denormalized snapshot of the newest message in a
// conversation, kept on the Conversation item for cheap list rendering.
type LastMessage struct {
	Text     string `dynamodbav:"text" json:"text"`
	SenderID string `dynamodbav:"senderId" json:"senderId"`
	SentAt   string `dynamodbav:"sentAt" json:"sentAt"`
}

// Conversation is the two-party chat container. PairKey is the canonical,
// order-independent key for the participant pair; at most one Conversation
// exists per PairKey.
type Conversation struct {
	PairKey        string            `dynamodbav:"pairKey" json:"pairKey"`
	ConversationID string            `dynamodbav:"conversationId" json:"conversationId"`
	ParticipantIDs []string          `dynamodbav:"participantIds" json:"participantIds"`
	InitiatedAt    string            `dynamodbav:"initiatedAt" json:"initiatedAt"`
	InitiatedBy    string            `dynamodbav:"initiatedBy" json:"initiatedBy"`
	LastMessage    *LastMessage      `dynamodbav:"lastMessage,omitempty" json:"lastMessage,omitempty"`
	LastReadAt     map[string]string `dynamodbav:"lastReadAt,omitempty" json:"lastReadAt,omitempty"`
}

// HasParticipant reports whether the given user is one of the two parties.
func (c Conversation) HasParticipant(userID string) bool {
	for _, id := range c.ParticipantIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// OtherParticipant returns the counterpart of the given user, or "" when the
// user is not a participant.
func (c Conversation) OtherParticipant(userID string) string {
	if len(c.ParticipantIDs) != 2 || !c.HasParticipant(userID) {
		return ""
	}
	if c.ParticipantIDs[0] == userID {
		return c.ParticipantIDs[1]
	}
	return c.ParticipantIDs[0]
}

// ConversationsTable is the DynamoDB table name for conversations
const ConversationsTable = "Conversations"
