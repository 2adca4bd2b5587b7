package lightcast

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/lawwu/mcp-lightcast/auth"
)

// ClassificationClient accesses the Lightcast Classification API, which maps
// free-form concepts and titles onto occupation codes. Requires the
// classification_api scope; the family tracks the "latest" version line.
type ClassificationClient struct {
	*Client
}

// NewClassificationClient creates a classification client sharing the given
// token manager.
func NewClassificationClient(tm *auth.TokenManager, opts ...Option) *ClassificationClient {
	opts = append([]Option{WithScope(ScopeClassification), WithDefaultVersion("latest")}, opts...)
	return &ClassificationClient{NewClient(tm, opts...)}
}

// OccupationMapping is one occupation matched to a concept.
type OccupationMapping struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	SOCCode    string  `json:"soc_code,omitempty"`
	Confidence float64 `json:"confidence"`
	Type       string  `json:"type,omitempty"`
}

// ConceptMapping is the set of occupations matched to one input concept.
type ConceptMapping struct {
	Concept     string              `json:"concept"`
	Occupations []OccupationMapping `json:"occupations"`
}

// JobTitleNormalization is a title normalized to a SOC occupation.
type JobTitleNormalization struct {
	NormalizedTitle string           `json:"normalized_title"`
	SOCCode         string           `json:"soc_code"`
	Confidence      float64          `json:"confidence"`
	Alternatives    []map[string]any `json:"alternatives,omitempty"`
}

// SkillsExtraction is the result of extracting skills from a description.
type SkillsExtraction struct {
	Skills           []map[string]any   `json:"skills"`
	ConfidenceScores map[string]float64 `json:"confidence_scores,omitempty"`
}

// MapConceptsToOccupations maps concepts (job titles, skills, free text) to
// the closest occupations.
func (c *ClassificationClient) MapConceptsToOccupations(ctx context.Context, concepts []string, limit int, confidenceThreshold float64, opts ...RequestOption) ([]ConceptMapping, error) {
	body := map[string]any{
		"concepts":             concepts,
		"limit":                limit,
		"confidence_threshold": confidenceThreshold,
	}

	var env struct {
		Data []ConceptMapping `json:"data"`
	}
	if err := c.postJSON(ctx, "classification/versions/{version}/map", body, nil, &env, opts...); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// NormalizeJobTitle normalizes a raw job title to a standard occupation.
// The title is posted as text/plain.
func (c *ClassificationClient) NormalizeJobTitle(ctx context.Context, title string, opts ...RequestOption) (*JobTitleNormalization, error) {
	var env struct {
		Data JobTitleNormalization `json:"data"`
	}
	if err := c.postJSON(ctx, "classification/versions/{version}/normalize", title, nil, &env, opts...); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// ExtractSkillsFromDescription extracts skills from job description text.
func (c *ClassificationClient) ExtractSkillsFromDescription(ctx context.Context, description string, confidenceThreshold float64, opts ...RequestOption) (*SkillsExtraction, error) {
	body := map[string]any{
		"description":          description,
		"confidence_threshold": confidenceThreshold,
	}

	var env struct {
		Data SkillsExtraction `json:"data"`
	}
	if err := c.postJSON(ctx, "classification/versions/{version}/extract-skills", body, nil, &env, opts...); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// SearchOccupations searches occupations by query. socLevel narrows results
// to one SOC classification level (2-6); zero means all levels.
func (c *ClassificationClient) SearchOccupations(ctx context.Context, query string, limit, socLevel int, opts ...RequestOption) ([]map[string]any, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))
	if socLevel > 0 {
		params.Set("soc_level", strconv.Itoa(socLevel))
	}

	var env struct {
		Data []map[string]any `json:"data"`
	}
	if err := c.getJSON(ctx, "classification/versions/{version}/occupations", params, &env, opts...); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// GetOccupationHierarchy returns the occupation hierarchy for a SOC code.
func (c *ClassificationClient) GetOccupationHierarchy(ctx context.Context, socCode string, opts ...RequestOption) (map[string]any, error) {
	var env struct {
		Data map[string]any `json:"data"`
	}
	path := fmt.Sprintf("classification/versions/{version}/hierarchy/%s", url.PathEscape(socCode))
	if err := c.getJSON(ctx, path, nil, &env, opts...); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// ValidateSOCCode validates a SOC code and returns its details.
func (c *ClassificationClient) ValidateSOCCode(ctx context.Context, socCode string, opts ...RequestOption) (map[string]any, error) {
	var env struct {
		Data map[string]any `json:"data"`
	}
	path := fmt.Sprintf("classification/versions/{version}/soc/%s", url.PathEscape(socCode))
	if err := c.getJSON(ctx, path, nil, &env, opts...); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// GetSOCMetadata returns Standard Occupational Classification metadata.
func (c *ClassificationClient) GetSOCMetadata(ctx context.Context, opts ...RequestOption) (map[string]any, error) {
	var env struct {
		Data map[string]any `json:"data"`
	}
	if err := c.getJSON(ctx, "classification/versions/{version}/soc/meta", nil, &env, opts...); err != nil {
		return nil, err
	}
	return env.Data, nil
}
