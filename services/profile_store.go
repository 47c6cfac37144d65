package services

import (
	"context"
	"fmt"

	"squadup_server/models"
	"squadup_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoProfileStore implements ProfileStore against the UserProfiles table.
type DynamoProfileStore struct {
	Dynamo *DynamoService
}

func (s *DynamoProfileStore) Get(ctx context.Context, userID string) (*models.Profile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := s.Dynamo.GetItem(ctx, models.ProfilesTable, key)
	if err != nil {
		return nil, err
	}

	var profile models.Profile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

func (s *DynamoProfileStore) Create(ctx context.Context, profile models.Profile) error {
	return s.Dynamo.PutItem(ctx, models.ProfilesTable, profile)
}

// Update applies a partial field update and returns the updated profile.
func (s *DynamoProfileStore) Update(ctx context.Context, userID string, updates map[string]interface{}) (*models.Profile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	updateExpression := "SET"
	expressionAttributeValues := make(map[string]types.AttributeValue)
	expressionAttributeNames := make(map[string]string)

	for k, v := range updates {
		marshaled, err := attributevalue.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal update field '%s': %w", k, err)
		}
		placeholder := ":" + k
		attributeName := "#" + k
		updateExpression += " " + attributeName + " = " + placeholder + ","
		expressionAttributeValues[placeholder] = marshaled
		expressionAttributeNames[attributeName] = k
	}
	updateExpression = updateExpression[:len(updateExpression)-1]

	updatedItem, err := s.Dynamo.UpdateItem(ctx, models.ProfilesTable, updateExpression, key, expressionAttributeValues, expressionAttributeNames)
	if err != nil {
		return nil, err
	}

	var updatedProfile models.Profile
	if err := attributevalue.UnmarshalMap(updatedItem, &updatedProfile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated profile: %w", err)
	}
	return &updatedProfile, nil
}

// AppendDecision appends targetID to the user's liked or disliked list.
// Both lists are append-only from the profile's perspective.
func (s *DynamoProfileStore) AppendDecision(ctx context.Context, userID, attribute, targetID string) error {
	updateExpression := fmt.Sprintf("SET %s = list_append(if_not_exists(%s, :empty), :newItem)", attribute, attribute)

	_, err := s.Dynamo.UpdateItem(ctx, models.ProfilesTable, updateExpression,
		map[string]types.AttributeValue{"userId": &types.AttributeValueMemberS{Value: userID}},
		map[string]types.AttributeValue{
			":empty":   &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":newItem": &types.AttributeValueMemberL{Value: []types.AttributeValue{&types.AttributeValueMemberS{Value: targetID}}},
		}, nil,
	)
	if err != nil {
		return fmt.Errorf("failed to append to %s list: %w", attribute, err)
	}
	return nil
}

// ListCandidates scans the profiles table, excluding the requester.
func (s *DynamoProfileStore) ListCandidates(ctx context.Context, excludingUserID string) ([]models.Profile, error) {
	var profiles []models.Profile
	err := s.Dynamo.ScanWithFilter(ctx, models.ProfilesTable, func(item map[string]types.AttributeValue) bool {
		return utils.ExtractString(item, "userId") != excludingUserID
	}, nil, &profiles)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate profiles: %w", err)
	}
	return profiles, nil
}
