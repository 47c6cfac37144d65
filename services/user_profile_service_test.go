package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"squadup_server/models"
)

func TestCreateProfileValidation(t *testing.T) {
	service := &UserProfileService{}

	cases := []models.Profile{
		{},
		{UserID: "alice", Age: -1},
		{UserID: "alice", Gender: models.GenderAny},
		{UserID: "alice", Gender: models.GenderFemale, PreferenceAgeRange: &models.AgeRange{Min: 30, Max: 20}},
	}
	for _, profile := range cases {
		_, err := service.CreateProfile(context.Background(), profile)
		assert.Error(t, err)
	}
}

func TestCreateProfileStoresValidProfile(t *testing.T) {
	store := new(profileStoreMock)
	profile := completeProfile("alice", 25, models.GenderFemale, models.GenderAny, 18, 99)
	store.On("Create", mock.Anything, profile).Return(nil).Once()

	service := &UserProfileService{Profiles: store}
	created, err := service.CreateProfile(context.Background(), profile)
	require.NoError(t, err)
	assert.Equal(t, "alice", created.UserID)
	store.AssertExpectations(t)
}

func TestUpdateProfileRequiresExistingProfile(t *testing.T) {
	store := new(profileStoreMock)
	store.On("Get", mock.Anything, "ghost").Return(nil, ErrNotFound)

	service := &UserProfileService{Profiles: store}
	_, err := service.UpdateProfile(context.Background(), "ghost", map[string]interface{}{"age": 26})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProfileRejectsEmptyPatch(t *testing.T) {
	service := &UserProfileService{}
	_, err := service.UpdateProfile(context.Background(), "alice", nil)
	assert.Error(t, err)
}
