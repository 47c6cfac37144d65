package services

import "squadup_server/models"

// RequireComplete validates that the requesting profile carries every field
// matching needs. An incomplete requester aborts the whole matching request;
// an incomplete candidate is merely skipped by IsCompatible.
func RequireComplete(p models.Profile) error {
	if !p.IsComplete() {
		return ErrIncompleteProfile
	}
	return nil
}

// IsCompatible decides mutual eligibility of a candidate for a requester.
// The rule set is symmetric in intent: age and gender constraints must hold
// in both directions.
func IsCompatible(requester, candidate models.Profile) bool {
	if candidate.UserID == requester.UserID {
		return false
	}
	if !requester.IsComplete() || !candidate.IsComplete() {
		return false
	}

	// Already decided, or the candidate already rejected the requester.
	if requester.HasLiked(candidate.UserID) || requester.HasDisliked(candidate.UserID) {
		return false
	}
	if candidate.HasDisliked(requester.UserID) {
		return false
	}

	// Mutual age containment, bounds inclusive.
	if !requester.PreferenceAgeRange.Contains(candidate.Age) {
		return false
	}
	if !candidate.PreferenceAgeRange.Contains(requester.Age) {
		return false
	}

	return genderAccepted(requester.PreferenceGender, candidate.Gender) &&
		genderAccepted(candidate.PreferenceGender, requester.Gender)
}

func genderAccepted(preference, gender string) bool {
	return preference == models.GenderAny || preference == gender
}
