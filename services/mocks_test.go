package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"squadup_server/models"
)

type profileStoreMock struct {
	mock.Mock
}

func (m *profileStoreMock) Get(ctx context.Context, userID string) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	var profile *models.Profile
	if v := args.Get(0); v != nil {
		profile = v.(*models.Profile)
	}
	return profile, args.Error(1)
}

func (m *profileStoreMock) Create(ctx context.Context, profile models.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *profileStoreMock) Update(ctx context.Context, userID string, updates map[string]interface{}) (*models.Profile, error) {
	args := m.Called(ctx, userID, updates)
	var profile *models.Profile
	if v := args.Get(0); v != nil {
		profile = v.(*models.Profile)
	}
	return profile, args.Error(1)
}

func (m *profileStoreMock) AppendDecision(ctx context.Context, userID, attribute, targetID string) error {
	args := m.Called(ctx, userID, attribute, targetID)
	return args.Error(0)
}

func (m *profileStoreMock) ListCandidates(ctx context.Context, excludingUserID string) ([]models.Profile, error) {
	args := m.Called(ctx, excludingUserID)
	var profiles []models.Profile
	if v := args.Get(0); v != nil {
		profiles = v.([]models.Profile)
	}
	return profiles, args.Error(1)
}

type conversationStoreMock struct {
	mock.Mock
}

func (m *conversationStoreMock) CreateIfAbsent(ctx context.Context, conv models.Conversation) (bool, error) {
	args := m.Called(ctx, conv)
	return args.Bool(0), args.Error(1)
}

func (m *conversationStoreMock) GetByPairKey(ctx context.Context, pairKey string) (*models.Conversation, error) {
	args := m.Called(ctx, pairKey)
	var conv *models.Conversation
	if v := args.Get(0); v != nil {
		conv = v.(*models.Conversation)
	}
	return conv, args.Error(1)
}

func (m *conversationStoreMock) Get(ctx context.Context, conversationID string) (*models.Conversation, error) {
	args := m.Called(ctx, conversationID)
	var conv *models.Conversation
	if v := args.Get(0); v != nil {
		conv = v.(*models.Conversation)
	}
	return conv, args.Error(1)
}

func (m *conversationStoreMock) ListForUser(ctx context.Context, userID string) ([]models.Conversation, error) {
	args := m.Called(ctx, userID)
	var conversations []models.Conversation
	if v := args.Get(0); v != nil {
		conversations = v.([]models.Conversation)
	}
	return conversations, args.Error(1)
}

func (m *conversationStoreMock) UpdateLastMessage(ctx context.Context, pairKey string, snapshot models.LastMessage) error {
	args := m.Called(ctx, pairKey, snapshot)
	return args.Error(0)
}

func (m *conversationStoreMock) UpdateLastReadAt(ctx context.Context, pairKey, userID, readAt string) error {
	args := m.Called(ctx, pairKey, userID, readAt)
	return args.Error(0)
}

type messageStoreMock struct {
	mock.Mock
}

func (m *messageStoreMock) Append(ctx context.Context, msg models.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *messageStoreMock) List(ctx context.Context, conversationID string) ([]models.Message, error) {
	args := m.Called(ctx, conversationID)
	var messages []models.Message
	if v := args.Get(0); v != nil {
		messages = v.([]models.Message)
	}
	return messages, args.Error(1)
}

func (m *messageStoreMock) UpdateStatus(ctx context.Context, conversationID, messageID, status string) error {
	args := m.Called(ctx, conversationID, messageID, status)
	return args.Error(0)
}

type presenceStoreMock struct {
	mock.Mock
}

func (m *presenceStoreMock) Set(ctx context.Context, userID string, online bool) error {
	args := m.Called(ctx, userID, online)
	return args.Error(0)
}

func (m *presenceStoreMock) Get(ctx context.Context, userID string) (bool, bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Bool(1), args.Error(2)
}

type similarityMock struct {
	mock.Mock
}

func (m *similarityMock) Score(ctx context.Context, textA, textB string) (int, error) {
	args := m.Called(ctx, textA, textB)
	return args.Int(0), args.Error(1)
}

type notifierMock struct {
	mock.Mock
}

func (m *notifierMock) MatchCreated(userIDA, userIDB, conversationID string) {
	m.Called(userIDA, userIDB, conversationID)
}

func (m *notifierMock) NewMessage(conversationID string, msg models.Message) {
	m.Called(conversationID, msg)
}
