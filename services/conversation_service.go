package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"squadup_server/models"

	"github.com/google/uuid"
)

// ConversationService is the registry for two-party conversations. It owns
// the idempotent get-or-create path: the canonical pair key plus the store's
// conditional create guarantee at most one conversation per unordered pair,
// even under concurrent callers arriving from either order.
type ConversationService struct {
	Store ConversationStore
}

// getOrCreateAttempts bounds the read/conditional-create loop.
const getOrCreateAttempts = 3

// CanonicalPairKey derives the order-independent key for a user pair.
func CanonicalPairKey(idA, idB string) string {
	if idA > idB {
		idA, idB = idB, idA
	}
	return idA + "#" + idB
}

// GetOrCreate returns the conversation for the unordered pair {idA, idB},
// creating it when absent. The second return value reports whether this call
// created it.
func (s *ConversationService) GetOrCreate(ctx context.Context, idA, idB string) (*models.Conversation, bool, error) {
	if idA == "" || idB == "" || idA == idB {
		return nil, false, ErrInvalidPair
	}

	pairKey := CanonicalPairKey(idA, idB)

	for attempt := 0; attempt < getOrCreateAttempts; attempt++ {
		existing, err := s.Store.GetByPairKey(ctx, pairKey)
		if err == nil {
			return existing, false, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, false, err
		}

		conv := models.Conversation{
			PairKey:        pairKey,
			ConversationID: uuid.NewString(),
			ParticipantIDs: strings.SplitN(pairKey, "#", 2),
			InitiatedAt:    time.Now().UTC().Format(time.RFC3339Nano),
			InitiatedBy:    idA,
			LastReadAt:     map[string]string{idA: "", idB: ""},
		}

		created, err := s.Store.CreateIfAbsent(ctx, conv)
		if err != nil {
			return nil, false, err
		}
		if created {
			log.Printf("💬 Conversation %s created for pair %s", conv.ConversationID, pairKey)
			return &conv, true, nil
		}
		// A concurrent caller created it between our read and write; re-read.
	}

	return nil, false, fmt.Errorf("failed to resolve conversation for pair %s after %d attempts", pairKey, getOrCreateAttempts)
}

// Get returns a conversation by id, ErrNotFound if absent.
func (s *ConversationService) Get(ctx context.Context, conversationID string) (*models.Conversation, error) {
	return s.Store.Get(ctx, conversationID)
}

// ListForUser returns every conversation the user participates in.
func (s *ConversationService) ListForUser(ctx context.Context, userID string) ([]models.Conversation, error) {
	return s.Store.ListForUser(ctx, userID)
}
