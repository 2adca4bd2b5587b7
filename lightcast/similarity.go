package lightcast

import (
	"context"

	"github.com/lawwu/mcp-lightcast/auth"
)

// SimilarityClient accesses the Lightcast Similarity API, which scores how
// close occupations or skills are to one another. Requires the similarity
// scope; the family tracks the "latest" version line.
type SimilarityClient struct {
	*Client
}

// NewSimilarityClient creates a similarity client sharing the given token
// manager.
func NewSimilarityClient(tm *auth.TokenManager, opts ...Option) *SimilarityClient {
	opts = append([]Option{WithScope(ScopeSimilarity), WithDefaultVersion("latest")}, opts...)
	return &SimilarityClient{NewClient(tm, opts...)}
}

// SimilarityScore is one scored neighbor of the query entity.
type SimilarityScore struct {
	ID    string  `json:"id"`
	Name  string  `json:"name,omitempty"`
	Score float64 `json:"score"`
}

// OccupationSimilarity returns the occupations most similar to the given
// occupation.
func (c *SimilarityClient) OccupationSimilarity(ctx context.Context, occupationID string, limit int, opts ...RequestOption) ([]SimilarityScore, error) {
	body := map[string]any{
		"id":    occupationID,
		"limit": limit,
	}

	var env struct {
		Data []SimilarityScore `json:"data"`
	}
	if err := c.postJSON(ctx, "similarity/versions/{version}/occupation", body, nil, &env, opts...); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// SkillSimilarity returns the skills most similar to the given skill.
func (c *SimilarityClient) SkillSimilarity(ctx context.Context, skillID string, limit int, opts ...RequestOption) ([]SimilarityScore, error) {
	body := map[string]any{
		"id":    skillID,
		"limit": limit,
	}

	var env struct {
		Data []SimilarityScore `json:"data"`
	}
	if err := c.postJSON(ctx, "similarity/versions/{version}/skill", body, nil, &env, opts...); err != nil {
		return nil, err
	}
	return env.Data, nil
}
