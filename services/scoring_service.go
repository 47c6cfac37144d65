package services

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"squadup_server/models"
	"squadup_server/utils"
)

// Score weights. All terms are independent and summed.
const (
	weightSharedCategory     = 10
	weightSharedLanguage     = 5
	weightSharedFavoriteGame = 15
	weightSharedOtherGame    = 10
	weightCrossGame          = 5 // candidate's otherGames hitting requester's favorites
	weightAgeClose           = 5 // |age diff| <= 2
	weightAgeNear            = 3 // |age diff| <= 5
	weightReciprocalLike     = 30

	similarityMaxScore = 20
)

// ScoringEngine ranks compatible candidates by a weighted additive score.
// The semantic-similarity collaborator is optional; its failure degrades the
// similarity term to 0 and never the candidate or the batch.
type ScoringEngine struct {
	Similarity        SimilarityClient
	SimilarityTimeout time.Duration
}

// ScoredCandidate pairs a candidate profile with its score for the requester.
type ScoredCandidate struct {
	Profile models.Profile `json:"profile"`
	Score   int            `json:"score"`
}

// Score computes the requester->candidate score. Deterministic for a
// deterministic similarity collaborator.
func (e *ScoringEngine) Score(ctx context.Context, requester, candidate models.Profile) int {
	score := weightSharedCategory * utils.CountCommon(requester.PreferenceCategories, candidate.PreferenceCategories)
	score += weightSharedLanguage * utils.CountCommon(requester.Languages, candidate.Languages)
	score += weightSharedFavoriteGame * utils.CountCommon(requester.FavoriteGames, candidate.FavoriteGames)
	score += weightSharedOtherGame * utils.CountCommon(requester.OtherGames, candidate.OtherGames)
	score += weightCrossGame * utils.CountCommon(requester.FavoriteGames, candidate.OtherGames)
	score += ageProximity(requester.Age, candidate.Age)

	if candidate.HasLiked(requester.UserID) {
		score += weightReciprocalLike
	}

	score += e.similarityScore(ctx, requester, candidate)
	return score
}

// similarityScore invokes the external collaborator when both descriptions
// are non-empty. Any error or timeout counts as 0.
func (e *ScoringEngine) similarityScore(ctx context.Context, requester, candidate models.Profile) int {
	if e.Similarity == nil || requester.Description == "" || candidate.Description == "" {
		return 0
	}

	timeout := e.SimilarityTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	similarity, err := e.Similarity.Score(callCtx, requester.Description, candidate.Description)
	if err != nil {
		log.Printf("⚠️ Similarity service degraded for %s/%s, counting 0: %v", requester.UserID, candidate.UserID, err)
		return 0
	}
	return clampSimilarity(similarity)
}

func ageProximity(a, b int) int {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff <= 2:
		return weightAgeClose
	case diff <= 5:
		return weightAgeNear
	default:
		return 0
	}
}

// RankCandidates filters the pool for mutual compatibility, scores the
// survivors concurrently (one goroutine per candidate, failures isolated),
// and returns up to limit candidates ordered by descending score. Ties break
// by ascending candidate id so repeated calls over the same pool agree.
func (e *ScoringEngine) RankCandidates(ctx context.Context, requester models.Profile, candidates []models.Profile, limit int) ([]ScoredCandidate, error) {
	if err := RequireComplete(requester); err != nil {
		return nil, err
	}

	var survivors []models.Profile
	for _, candidate := range candidates {
		if IsCompatible(requester, candidate) {
			survivors = append(survivors, candidate)
		}
	}

	ranked := make([]ScoredCandidate, len(survivors))
	var wg sync.WaitGroup
	for i, candidate := range survivors {
		wg.Add(1)
		go func(i int, candidate models.Profile) {
			defer wg.Done()
			ranked[i] = ScoredCandidate{Profile: candidate, Score: e.Score(ctx, requester, candidate)}
		}(i, candidate)
	}
	wg.Wait()

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Profile.UserID < ranked[j].Profile.UserID
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}
