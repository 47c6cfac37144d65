package services

import (
	"context"
	"fmt"

	"squadup_server/models"
	"squadup_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoConversationStore implements ConversationStore against the
// Conversations table, which is keyed by pairKey so the conditional put in
// CreateIfAbsent doubles as the at-most-one-conversation-per-pair guard.
// Lookups by conversationId go through the conversationId-index GSI.
type DynamoConversationStore struct {
	Dynamo *DynamoService
}

const conversationIDIndex = "conversationId-index"

func (s *DynamoConversationStore) CreateIfAbsent(ctx context.Context, conv models.Conversation) (bool, error) {
	return s.Dynamo.PutItemIfAbsent(ctx, models.ConversationsTable, conv, "pairKey")
}

func (s *DynamoConversationStore) GetByPairKey(ctx context.Context, pairKey string) (*models.Conversation, error) {
	key := map[string]types.AttributeValue{
		"pairKey": &types.AttributeValueMemberS{Value: pairKey},
	}

	item, err := s.Dynamo.GetItem(ctx, models.ConversationsTable, key)
	if err != nil {
		return nil, err
	}

	var conv models.Conversation
	if err := attributevalue.UnmarshalMap(item, &conv); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conversation: %w", err)
	}
	return &conv, nil
}

func (s *DynamoConversationStore) Get(ctx context.Context, conversationID string) (*models.Conversation, error) {
	keyCondition := "conversationId = :conversationId"
	expressionValues := map[string]types.AttributeValue{
		":conversationId": &types.AttributeValueMemberS{Value: conversationID},
	}

	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.ConversationsTable, conversationIDIndex, keyCondition, expressionValues, nil, 1)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}

	var conv models.Conversation
	if err := attributevalue.UnmarshalMap(items[0], &conv); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conversation: %w", err)
	}
	return &conv, nil
}

func (s *DynamoConversationStore) ListForUser(ctx context.Context, userID string) ([]models.Conversation, error) {
	var conversations []models.Conversation
	err := s.Dynamo.ScanWithFilter(ctx, models.ConversationsTable, func(item map[string]types.AttributeValue) bool {
		return utils.Contains(utils.ExtractStringList(item, "participantIds"), userID)
	}, nil, &conversations)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return conversations, nil
}

func (s *DynamoConversationStore) UpdateLastMessage(ctx context.Context, pairKey string, snapshot models.LastMessage) error {
	marshaled, err := attributevalue.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal last message snapshot: %w", err)
	}

	_, err = s.Dynamo.UpdateItem(ctx, models.ConversationsTable, "SET lastMessage = :snapshot",
		map[string]types.AttributeValue{"pairKey": &types.AttributeValueMemberS{Value: pairKey}},
		map[string]types.AttributeValue{":snapshot": marshaled}, nil,
	)
	if err != nil {
		return fmt.Errorf("failed to update last message snapshot: %w", err)
	}
	return nil
}

func (s *DynamoConversationStore) UpdateLastReadAt(ctx context.Context, pairKey, userID, readAt string) error {
	_, err := s.Dynamo.UpdateItem(ctx, models.ConversationsTable, "SET lastReadAt.#userId = :readAt",
		map[string]types.AttributeValue{"pairKey": &types.AttributeValueMemberS{Value: pairKey}},
		map[string]types.AttributeValue{":readAt": &types.AttributeValueMemberS{Value: readAt}},
		map[string]string{"#userId": userID},
	)
	if err != nil {
		return fmt.Errorf("failed to update lastReadAt for %s: %w", userID, err)
	}
	return nil
}
