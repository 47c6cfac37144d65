package services

import (
	"context"
	"errors"
	"fmt"

	"squadup_server/models"
)

type UserProfileService struct {
	Profiles ProfileStore
}

// CreateProfile validates and stores a new profile.
func (ups *UserProfileService) CreateProfile(ctx context.Context, profile models.Profile) (*models.Profile, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}
	if err := ups.Profiles.Create(ctx, profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetProfile retrieves a user profile by ID
func (ups *UserProfileService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	return ups.Profiles.Get(ctx, userID)
}

// UpdateProfile applies a partial update to an existing profile.
func (ups *UserProfileService) UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*models.Profile, error) {
	if len(updates) == 0 {
		return nil, errors.New("no fields to update")
	}
	if _, err := ups.Profiles.Get(ctx, userID); err != nil {
		return nil, err
	}
	return ups.Profiles.Update(ctx, userID, updates)
}

func validateProfile(profile models.Profile) error {
	if profile.UserID == "" {
		return errors.New("userId is required")
	}
	if profile.Age < 0 {
		return errors.New("age cannot be negative")
	}
	// "Any" is a preference value, never an actual gender.
	if profile.Gender == models.GenderAny {
		return fmt.Errorf("gender cannot be %q", models.GenderAny)
	}
	if r := profile.PreferenceAgeRange; r != nil && r.Min > r.Max {
		return errors.New("preferenceAgeRange min cannot exceed max")
	}
	return nil
}
