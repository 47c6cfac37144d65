package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"squadup_server/models"
)

// A representative pairing: two shared favorite games, one
// shared language, age difference of 3, nothing else in common.
func scoringPair() (models.Profile, models.Profile) {
	requester := completeProfile("alice", 25, models.GenderMale, models.GenderAny, 20, 30)
	requester.FavoriteGames = []string{"Deep Rock Galactic", "Helldivers 2", "Factorio"}
	requester.Languages = []string{"en", "de"}

	candidate := completeProfile("bob", 28, models.GenderFemale, models.GenderAny, 22, 35)
	candidate.FavoriteGames = []string{"Deep Rock Galactic", "Helldivers 2"}
	candidate.Languages = []string{"en"}
	return requester, candidate
}

func TestScoreEndToEndScenario(t *testing.T) {
	engine := &ScoringEngine{}
	requester, candidate := scoringPair()

	// 2x15 favorites + 1x5 language + 3 (age diff 3) = 38
	assert.Equal(t, 38, engine.Score(context.Background(), requester, candidate))
}

func TestScoreReciprocalLike(t *testing.T) {
	engine := &ScoringEngine{}
	requester, candidate := scoringPair()
	candidate.Liked = []string{"alice"}

	assert.Equal(t, 68, engine.Score(context.Background(), requester, candidate))
}

func TestScoreMonotonicity(t *testing.T) {
	engine := &ScoringEngine{}
	requester, candidate := scoringPair()
	base := engine.Score(context.Background(), requester, candidate)

	withGame := candidate
	withGame.FavoriteGames = append([]string{"Factorio"}, candidate.FavoriteGames...)
	assert.Equal(t, base+15, engine.Score(context.Background(), requester, withGame))

	withLanguage := candidate
	withLanguage.Languages = append([]string{"de"}, candidate.Languages...)
	assert.Equal(t, base+5, engine.Score(context.Background(), requester, withLanguage))
}

func TestScoreCategoriesAndCrossGames(t *testing.T) {
	engine := &ScoringEngine{}
	requester := completeProfile("alice", 25, models.GenderMale, models.GenderAny, 20, 30)
	requester.PreferenceCategories = []string{"coop", "fps"}
	requester.FavoriteGames = []string{"Portal 2"}
	requester.OtherGames = []string{"Stardew Valley"}

	candidate := completeProfile("bob", 25, models.GenderFemale, models.GenderAny, 20, 30)
	candidate.PreferenceCategories = []string{"coop"}
	candidate.OtherGames = []string{"Portal 2", "Stardew Valley"}

	// 10 category + 10 shared otherGames + 5 cross (candidate's otherGames
	// hitting requester's favorites) + 5 age tier
	assert.Equal(t, 30, engine.Score(context.Background(), requester, candidate))
}

func TestScoreAgeTiers(t *testing.T) {
	engine := &ScoringEngine{}
	for _, tc := range []struct {
		candidateAge int
		want         int
	}{
		{25, 5}, {27, 5}, {28, 3}, {30, 3}, {31, 0},
	} {
		requester := completeProfile("alice", 25, models.GenderMale, models.GenderAny, 18, 99)
		candidate := completeProfile("bob", tc.candidateAge, models.GenderFemale, models.GenderAny, 18, 99)
		assert.Equal(t, tc.want, engine.Score(context.Background(), requester, candidate), "age %d", tc.candidateAge)
	}
}

func TestScoreSimilarityContribution(t *testing.T) {
	similarity := new(similarityMock)
	engine := &ScoringEngine{Similarity: similarity}

	requester, candidate := scoringPair()
	requester.Description = "chill weekend co-op"
	candidate.Description = "weekend co-op sessions"

	similarity.On("Score", mock.Anything, requester.Description, candidate.Description).Return(12, nil).Once()
	assert.Equal(t, 50, engine.Score(context.Background(), requester, candidate))
	similarity.AssertExpectations(t)
}

func TestScoreSimilarityFailureCountsZero(t *testing.T) {
	similarity := new(similarityMock)
	engine := &ScoringEngine{Similarity: similarity}

	requester, candidate := scoringPair()
	requester.Description = "a"
	candidate.Description = "b"

	similarity.On("Score", mock.Anything, "a", "b").Return(0, assert.AnError).Once()
	assert.Equal(t, 38, engine.Score(context.Background(), requester, candidate))
	similarity.AssertExpectations(t)
}

func TestScoreSkipsSimilarityWithoutDescriptions(t *testing.T) {
	similarity := new(similarityMock)
	engine := &ScoringEngine{Similarity: similarity}

	requester, candidate := scoringPair()
	requester.Description = "only one side"

	assert.Equal(t, 38, engine.Score(context.Background(), requester, candidate))
	similarity.AssertNotCalled(t, "Score")
}

func TestRankCandidatesOrderingAndLimit(t *testing.T) {
	engine := &ScoringEngine{}
	requester := completeProfile("alice", 25, models.GenderFemale, models.GenderAny, 18, 99)
	requester.FavoriteGames = []string{"Portal 2"}

	strong := completeProfile("zoe", 25, models.GenderMale, models.GenderAny, 18, 99)
	strong.FavoriteGames = []string{"Portal 2"}
	weak := completeProfile("bob", 40, models.GenderMale, models.GenderAny, 18, 99)
	incompatible := completeProfile("carol", 25, models.GenderFemale, models.GenderFemale, 18, 99)

	ranked, err := engine.RankCandidates(context.Background(), requester,
		[]models.Profile{weak, incompatible, strong}, 10)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "zoe", ranked[0].Profile.UserID)
	assert.Equal(t, "bob", ranked[1].Profile.UserID)

	limited, err := engine.RankCandidates(context.Background(), requester,
		[]models.Profile{weak, incompatible, strong}, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "zoe", limited[0].Profile.UserID)
}

func TestRankCandidatesStableTieBreak(t *testing.T) {
	engine := &ScoringEngine{}
	requester := completeProfile("alice", 25, models.GenderFemale, models.GenderAny, 18, 99)

	// Identical scores: order falls back to ascending candidate id and must
	// not depend on input order.
	b := completeProfile("bob", 25, models.GenderMale, models.GenderAny, 18, 99)
	c := completeProfile("carol", 25, models.GenderMale, models.GenderAny, 18, 99)
	d := completeProfile("dave", 25, models.GenderMale, models.GenderAny, 18, 99)

	first, err := engine.RankCandidates(context.Background(), requester, []models.Profile{d, b, c}, 0)
	require.NoError(t, err)
	second, err := engine.RankCandidates(context.Background(), requester, []models.Profile{c, d, b}, 0)
	require.NoError(t, err)

	require.Len(t, first, 3)
	assert.Equal(t, first, second)
	assert.Equal(t, "bob", first[0].Profile.UserID)
	assert.Equal(t, "carol", first[1].Profile.UserID)
	assert.Equal(t, "dave", first[2].Profile.UserID)
}

func TestRankCandidatesIncompleteRequester(t *testing.T) {
	engine := &ScoringEngine{}
	incomplete := models.Profile{UserID: "alice", Age: 25}

	_, err := engine.RankCandidates(context.Background(), incomplete, nil, 10)
	assert.ErrorIs(t, err, ErrIncompleteProfile)
}

func TestRankCandidatesSimilarityFailureIsolatedPerCandidate(t *testing.T) {
	similarity := new(similarityMock)
	engine := &ScoringEngine{Similarity: similarity}

	requester := completeProfile("alice", 25, models.GenderFemale, models.GenderAny, 18, 99)
	requester.Description = "desc"

	good := completeProfile("bob", 25, models.GenderMale, models.GenderAny, 18, 99)
	good.Description = "good"
	bad := completeProfile("carol", 25, models.GenderMale, models.GenderAny, 18, 99)
	bad.Description = "bad"

	similarity.On("Score", mock.Anything, "desc", "good").Return(10, nil).Once()
	similarity.On("Score", mock.Anything, "desc", "bad").Return(0, assert.AnError).Once()

	ranked, err := engine.RankCandidates(context.Background(), requester, []models.Profile{good, bad}, 0)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "bob", ranked[0].Profile.UserID)
	assert.Equal(t, ranked[1].Score+10, ranked[0].Score)
	similarity.AssertExpectations(t)
}
