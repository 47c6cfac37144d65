package models

// AgeRange is an inclusive age window used as a matching preference.
type AgeRange struct {
	Min int `dynamodbav:"min" json:"min"`
	Max int `dynamodbav:"max" json:"max"`
}

// Contains reports whether age falls inside the range, bounds included.
func (r AgeRange) Contains(age int) bool {
	return age >= r.Min && age <= r.Max
}

// Profile defines the structure for user profiles
type Profile struct {
	UserID               string    `dynamodbav:"userId" json:"userId"`
	Age                  int       `dynamodbav:"age" json:"age"`
	Gender               string    `dynamodbav:"gender,omitempty" json:"gender,omitempty"`
	PreferenceGender     string    `dynamodbav:"preferenceGender,omitempty" json:"preferenceGender,omitempty"`
	PreferenceAgeRange   *AgeRange `dynamodbav:"preferenceAgeRange,omitempty" json:"preferenceAgeRange,omitempty"`
	Languages            []string  `dynamodbav:"languages,omitempty" json:"languages,omitempty"`
	FavoriteGames        []string  `dynamodbav:"favoriteGames,omitempty" json:"favoriteGames,omitempty"`
	OtherGames           []string  `dynamodbav:"otherGames,omitempty" json:"otherGames,omitempty"`
	PreferenceCategories []string  `dynamodbav:"preferenceCategories,omitempty" json:"preferenceCategories,omitempty"`
	Description          string    `dynamodbav:"description,omitempty" json:"description,omitempty"`
	Liked                []string  `dynamodbav:"liked,omitempty" json:"liked,omitempty"`
	Disliked             []string  `dynamodbav:"disliked,omitempty" json:"disliked,omitempty"`
}

// IsComplete reports whether the profile carries every field matching needs.
// Incomplete profiles are excluded from matching in both directions.
func (p Profile) IsComplete() bool {
	return p.Gender != "" && p.PreferenceGender != "" && p.PreferenceAgeRange != nil
}

// HasLiked reports whether the profile owner already liked the given user.
func (p Profile) HasLiked(userID string) bool {
	for _, id := range p.Liked {
		if id == userID {
			return true
		}
	}
	return false
}

// HasDisliked reports whether the profile owner already dismissed the given user.
func (p Profile) HasDisliked(userID string) bool {
	for _, id := range p.Disliked {
		if id == userID {
			return true
		}
	}
	return false
}

// ProfilesTable is the DynamoDB table name for user profiles
const ProfilesTable = "UserProfiles"
