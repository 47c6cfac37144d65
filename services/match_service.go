package services

import (
	"context"
	"fmt"
	"log"

	"squadup_server/models"
)

// MatchService composes the compatibility filter and scoring engine over the
// candidate pool, records swipe decisions, and turns reciprocal likes into
// conversations.
type MatchService struct {
	Profiles      ProfileStore
	Scoring       *ScoringEngine
	Conversations *ConversationService
	Notifier      Notifier
}

// DecisionResult reports the outcome of a recorded decision.
type DecisionResult struct {
	Matched        bool   `json:"matched"`
	ConversationID string `json:"conversationId,omitempty"`
}

// defaultSuggestionLimit caps the deck when the caller does not pass a limit.
const defaultSuggestionLimit = 20

// GetSuggestions returns the ranked candidate deck for a user. Fails with
// ErrIncompleteProfile when the requester cannot be matched at all.
func (s *MatchService) GetSuggestions(ctx context.Context, userID string, limit int) ([]ScoredCandidate, error) {
	requester, err := s.Profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := RequireComplete(*requester); err != nil {
		return nil, err
	}

	candidates, err := s.Profiles.ListCandidates(ctx, userID)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultSuggestionLimit
	}
	return s.Scoring.RankCandidates(ctx, *requester, candidates, limit)
}

// RecordDecision appends a like or dislike and, on a reciprocal like,
// resolves the pair's conversation and dispatches a match notification.
func (s *MatchService) RecordDecision(ctx context.Context, userID, targetID, action string) (*DecisionResult, error) {
	if userID == "" || targetID == "" || userID == targetID {
		return nil, fmt.Errorf("decision requires two distinct users")
	}

	target, err := s.Profiles.Get(ctx, targetID)
	if err != nil {
		return nil, err
	}

	switch action {
	case models.DecisionDislike:
		if err := s.Profiles.AppendDecision(ctx, userID, "disliked", targetID); err != nil {
			return nil, err
		}
		return &DecisionResult{}, nil

	case models.DecisionLike:
		if err := s.Profiles.AppendDecision(ctx, userID, "liked", targetID); err != nil {
			return nil, err
		}
		if !target.HasLiked(userID) {
			return &DecisionResult{}, nil
		}

		// Reciprocal match: resolve the pair's conversation. GetOrCreate is
		// idempotent, so the other side racing the same like is harmless.
		conv, created, err := s.Conversations.GetOrCreate(ctx, userID, targetID)
		if err != nil {
			return nil, fmt.Errorf("failed to establish conversation for match: %w", err)
		}
		if created {
			log.Printf("🎉 Reciprocal match: %s and %s", userID, targetID)
		}
		if s.Notifier != nil {
			s.Notifier.MatchCreated(userID, targetID, conv.ConversationID)
		}
		return &DecisionResult{Matched: true, ConversationID: conv.ConversationID}, nil

	default:
		return nil, fmt.Errorf("invalid action %q", action)
	}
}
