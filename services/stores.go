package services

import (
	"context"

	"squadup_server/models"
)

// Store contracts consumed by the domain services. Concrete transport lives
// behind these interfaces (DynamoDB and Redis here); tests swap in mocks.

// ProfileStore is the external profile store.
type ProfileStore interface {
	Get(ctx context.Context, userID string) (*models.Profile, error)
	Create(ctx context.Context, profile models.Profile) error
	Update(ctx context.Context, userID string, updates map[string]interface{}) (*models.Profile, error)
	AppendDecision(ctx context.Context, userID, attribute, targetID string) error
	ListCandidates(ctx context.Context, excludingUserID string) ([]models.Profile, error)
}

// ConversationStore is the external conversation store. CreateIfAbsent must
// be backed by a uniqueness guard on the pair key; a plain query-then-insert
// is a correctness bug.
type ConversationStore interface {
	CreateIfAbsent(ctx context.Context, conv models.Conversation) (created bool, err error)
	GetByPairKey(ctx context.Context, pairKey string) (*models.Conversation, error)
	Get(ctx context.Context, conversationID string) (*models.Conversation, error)
	ListForUser(ctx context.Context, userID string) ([]models.Conversation, error)
	UpdateLastMessage(ctx context.Context, pairKey string, snapshot models.LastMessage) error
	UpdateLastReadAt(ctx context.Context, pairKey, userID, readAt string) error
}

// MessageStore is the external message store.
type MessageStore interface {
	Append(ctx context.Context, msg models.Message) error
	List(ctx context.Context, conversationID string) ([]models.Message, error)
	UpdateStatus(ctx context.Context, conversationID, messageID, status string) error
}

// PresenceStore is the external presence store. Get reports found=false for
// users with no (or an expired) record.
type PresenceStore interface {
	Set(ctx context.Context, userID string, online bool) error
	Get(ctx context.Context, userID string) (online bool, found bool, err error)
}

// SimilarityClient scores the semantic similarity of two free-text
// descriptions on a 0-20 scale. Failures are recovered by the caller as a
// contribution of 0.
type SimilarityClient interface {
	Score(ctx context.Context, textA, textB string) (int, error)
}

// Notifier dispatches fire-and-forget notifications. Implementations must
// not block and have no failure to report back.
type Notifier interface {
	MatchCreated(userIDA, userIDB, conversationID string)
	NewMessage(conversationID string, msg models.Message)
}
