package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPSimilarityClient calls the external semantic-similarity service over
// HTTP. The client carries its own bounded timeout; callers additionally pass
// a request context so one slow call cannot stall a scoring batch.
type HTTPSimilarityClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPSimilarityClient creates a similarity client for the given base URL.
func NewHTTPSimilarityClient(baseURL string, timeout time.Duration) *HTTPSimilarityClient {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &HTTPSimilarityClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type similarityRequest struct {
	TextA string `json:"textA"`
	TextB string `json:"textB"`
}

type similarityResponse struct {
	Score int `json:"score"`
}

// Score returns the similarity of two descriptions on a 0-20 scale.
func (c *HTTPSimilarityClient) Score(ctx context.Context, textA, textB string) (int, error) {
	payload, err := json.Marshal(similarityRequest{TextA: textA, TextB: textB})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal similarity request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/similarity", bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to build similarity request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("similarity request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("similarity service returned %d: %s", resp.StatusCode, string(body))
	}

	var result similarityResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("failed to decode similarity response: %w", err)
	}

	return clampSimilarity(result.Score), nil
}

func clampSimilarity(score int) int {
	if score < 0 {
		return 0
	}
	if score > similarityMaxScore {
		return similarityMaxScore
	}
	return score
}
