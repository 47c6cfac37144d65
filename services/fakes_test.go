package services

import (
	"context"
	"sync"

	"squadup_server/models"
)

// memConversationStore is an in-memory ConversationStore whose CreateIfAbsent
// is atomic, mirroring the store-side uniqueness guard.
type memConversationStore struct {
	mu    sync.Mutex
	byKey map[string]models.Conversation
}

func newMemConversationStore() *memConversationStore {
	return &memConversationStore{byKey: map[string]models.Conversation{}}
}

func (s *memConversationStore) CreateIfAbsent(ctx context.Context, conv models.Conversation) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byKey[conv.PairKey]; exists {
		return false, nil
	}
	s.byKey[conv.PairKey] = conv
	return true, nil
}

func (s *memConversationStore) GetByPairKey(ctx context.Context, pairKey string) (*models.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv, ok := s.byKey[pairKey]
	if !ok {
		return nil, ErrNotFound
	}
	return &conv, nil
}

func (s *memConversationStore) Get(ctx context.Context, conversationID string) (*models.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, conv := range s.byKey {
		if conv.ConversationID == conversationID {
			return &conv, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memConversationStore) ListForUser(ctx context.Context, userID string) ([]models.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var conversations []models.Conversation
	for _, conv := range s.byKey {
		if conv.HasParticipant(userID) {
			conversations = append(conversations, conv)
		}
	}
	return conversations, nil
}

func (s *memConversationStore) UpdateLastMessage(ctx context.Context, pairKey string, snapshot models.LastMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv, ok := s.byKey[pairKey]
	if !ok {
		return ErrNotFound
	}
	conv.LastMessage = &snapshot
	s.byKey[pairKey] = conv
	return nil
}

func (s *memConversationStore) UpdateLastReadAt(ctx context.Context, pairKey, userID, readAt string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv, ok := s.byKey[pairKey]
	if !ok {
		return ErrNotFound
	}
	if conv.LastReadAt == nil {
		conv.LastReadAt = map[string]string{}
	}
	conv.LastReadAt[userID] = readAt
	s.byKey[pairKey] = conv
	return nil
}

func (s *memConversationStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byKey)
}

// memMessageStore is an in-memory MessageStore.
type memMessageStore struct {
	mu       sync.Mutex
	messages map[string][]models.Message
}

func newMemMessageStore() *memMessageStore {
	return &memMessageStore{messages: map[string][]models.Message{}}
}

func (s *memMessageStore) Append(ctx context.Context, msg models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages[msg.ConversationID] = append(s.messages[msg.ConversationID], msg)
	return nil
}

func (s *memMessageStore) List(ctx context.Context, conversationID string) ([]models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Message, len(s.messages[conversationID]))
	copy(out, s.messages[conversationID])
	return out, nil
}

func (s *memMessageStore) UpdateStatus(ctx context.Context, conversationID, messageID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, msg := range s.messages[conversationID] {
		if msg.MessageID == messageID {
			s.messages[conversationID][i].Status = status
			return nil
		}
	}
	return ErrNotFound
}
