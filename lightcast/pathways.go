package lightcast

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/lawwu/mcp-lightcast/auth"
)

// PathwaysClient accesses the Lightcast Career Pathways API. Requires the
// career-pathways scope; the family tracks the "latest" version line.
type PathwaysClient struct {
	*Client
}

// NewPathwaysClient creates a career pathways client sharing the given token
// manager.
func NewPathwaysClient(tm *auth.TokenManager, opts ...Option) *PathwaysClient {
	opts = append([]Option{WithScope(ScopePathways), WithDefaultVersion("latest")}, opts...)
	return &PathwaysClient{NewClient(tm, opts...)}
}

// CareerStep is one occupation along a pathway.
type CareerStep struct {
	OccupationID   string   `json:"occupation_id"`
	Title          string   `json:"title"`
	SOCCode        string   `json:"soc_code,omitempty"`
	Order          int      `json:"order"`
	Probability    *float64 `json:"probability,omitempty"`
	RequiredSkills []string `json:"required_skills,omitempty"`
	DurationMonths *int     `json:"duration_months,omitempty"`
}

// CareerPathway is an ordered route between two occupations.
type CareerPathway struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Steps         []CareerStep `json:"steps"`
	TotalDuration *int         `json:"total_duration,omitempty"`
	Difficulty    *float64     `json:"difficulty,omitempty"`
	SuccessRate   *float64     `json:"success_rate,omitempty"`
}

// SkillGap is one skill separating the worker from the target occupation.
type SkillGap struct {
	SkillID      string  `json:"skill_id"`
	SkillName    string  `json:"skill_name"`
	GapType      string  `json:"gap_type"`
	Importance   float64 `json:"importance"`
	TrainingTime *int    `json:"training_time,omitempty"`
}

// PathwayAnalysis is the full analysis between two occupations.
type PathwayAnalysis struct {
	Pathways            []CareerPathway  `json:"pathways"`
	SkillGaps           []SkillGap       `json:"skill_gaps,omitempty"`
	RecommendedTraining []map[string]any `json:"recommended_training,omitempty"`
}

// AnalyzePathway analyzes routes from one occupation to another, optionally
// including a skill-gap breakdown.
func (c *PathwaysClient) AnalyzePathway(ctx context.Context, fromOccupationID, toOccupationID string, maxSteps int, includeSkills bool, opts ...RequestOption) (*PathwayAnalysis, error) {
	body := map[string]any{
		"from_occupation": fromOccupationID,
		"to_occupation":   toOccupationID,
		"max_steps":       maxSteps,
		"include_skills":  includeSkills,
	}

	var env struct {
		Data PathwayAnalysis `json:"data"`
	}
	if err := c.postJSON(ctx, "pathways/versions/{version}/analyze", body, nil, &env, opts...); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// DiscoverPathways lists potential pathways starting from an occupation.
// pathwayType is advancement, lateral, or transition.
func (c *PathwaysClient) DiscoverPathways(ctx context.Context, occupationID, pathwayType string, limit int, opts ...RequestOption) ([]CareerPathway, error) {
	params := url.Values{}
	params.Set("pathway_type", pathwayType)
	params.Set("limit", strconv.Itoa(limit))

	var env struct {
		Data []CareerPathway `json:"data"`
	}
	path := fmt.Sprintf("pathways/versions/{version}/occupations/%s/discover", url.PathEscape(occupationID))
	if err := c.getJSON(ctx, path, params, &env, opts...); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// GetMetadata returns version and taxonomy metadata for the pathways API.
func (c *PathwaysClient) GetMetadata(ctx context.Context, opts ...RequestOption) (map[string]any, error) {
	var env struct {
		Data map[string]any `json:"data"`
	}
	if err := c.getJSON(ctx, "pathways/versions/{version}", nil, &env, opts...); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// GetSkillTransitionMap returns the detailed skill transition mapping
// between two occupations.
func (c *PathwaysClient) GetSkillTransitionMap(ctx context.Context, fromOccupationID, toOccupationID string, opts ...RequestOption) (map[string]any, error) {
	var env struct {
		Data map[string]any `json:"data"`
	}
	path := fmt.Sprintf("pathways/versions/{version}/skills/transition/%s/%s",
		url.PathEscape(fromOccupationID), url.PathEscape(toOccupationID))
	if err := c.getJSON(ctx, path, nil, &env, opts...); err != nil {
		return nil, err
	}
	return env.Data, nil
}
