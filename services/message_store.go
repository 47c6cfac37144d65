package services

import (
	"context"
	"fmt"

	"squadup_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoMessageStore implements MessageStore against the Messages table
// (partition key conversationId, sort key messageId).
type DynamoMessageStore struct {
	Dynamo *DynamoService
}

// messageQueryLimit bounds a single timeline read.
const messageQueryLimit = 500

func (s *DynamoMessageStore) Append(ctx context.Context, msg models.Message) error {
	if err := s.Dynamo.PutItem(ctx, models.MessagesTable, msg); err != nil {
		return fmt.Errorf("failed to store message: %w", err)
	}
	return nil
}

func (s *DynamoMessageStore) List(ctx context.Context, conversationID string) ([]models.Message, error) {
	keyCondition := "conversationId = :conversationId"
	expressionValues := map[string]types.AttributeValue{
		":conversationId": &types.AttributeValueMemberS{Value: conversationID},
	}

	items, err := s.Dynamo.QueryItems(ctx, models.MessagesTable, keyCondition, expressionValues, nil, messageQueryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse messages: %w", err)
	}
	return messages, nil
}

func (s *DynamoMessageStore) UpdateStatus(ctx context.Context, conversationID, messageID, status string) error {
	key := map[string]types.AttributeValue{
		"conversationId": &types.AttributeValueMemberS{Value: conversationID},
		"messageId":      &types.AttributeValueMemberS{Value: messageID},
	}

	_, err := s.Dynamo.UpdateItem(ctx, models.MessagesTable, "SET #status = :status", key,
		map[string]types.AttributeValue{":status": &types.AttributeValueMemberS{Value: status}},
		map[string]string{"#status": "status"},
	)
	if err != nil {
		return fmt.Errorf("failed to update status of message %s: %w", messageID, err)
	}
	return nil
}
