package lightcast

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/lawwu/mcp-lightcast/auth"
)

// SkillsClient accesses the Lightcast Skills API (open scope).
type SkillsClient struct {
	*Client
}

// NewSkillsClient creates a skills client sharing the given token manager.
func NewSkillsClient(tm *auth.TokenManager, opts ...Option) *SkillsClient {
	opts = append([]Option{WithScope(ScopeOpen)}, opts...)
	return &SkillsClient{NewClient(tm, opts...)}
}

// Skill is one skill search result.
type Skill struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
}

// SkillDetail is the full record for a single skill.
type SkillDetail struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type,omitempty"`
	Category    string   `json:"category,omitempty"`
	Subcategory string   `json:"subcategory,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	InfoURL     string   `json:"infoUrl,omitempty"`
	Description string   `json:"description,omitempty"`
}

// SkillSearchFilters narrows a skill search. Zero values are omitted.
type SkillSearchFilters struct {
	Limit       int
	Offset      int
	Type        string
	Category    string
	Subcategory string
}

// SearchSkills searches skills by name with optional filters.
func (c *SkillsClient) SearchSkills(ctx context.Context, query string, filters SkillSearchFilters, opts ...RequestOption) ([]Skill, error) {
	params := url.Values{}
	params.Set("q", query)
	if filters.Limit > 0 {
		params.Set("limit", strconv.Itoa(filters.Limit))
	}
	if filters.Offset > 0 {
		params.Set("offset", strconv.Itoa(filters.Offset))
	}
	if filters.Type != "" {
		params.Set("type", filters.Type)
	}
	if filters.Category != "" {
		params.Set("category", filters.Category)
	}
	if filters.Subcategory != "" {
		params.Set("subcategory", filters.Subcategory)
	}

	var env struct {
		Data []Skill `json:"data"`
	}
	if err := c.getJSON(ctx, "skills/versions/{version}", params, &env, opts...); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// GetSkillByID fetches detailed information about one skill.
func (c *SkillsClient) GetSkillByID(ctx context.Context, skillID string, opts ...RequestOption) (*SkillDetail, error) {
	var env struct {
		Data SkillDetail `json:"data"`
	}
	path := fmt.Sprintf("skills/versions/{version}/%s", url.PathEscape(skillID))
	if err := c.getJSON(ctx, path, nil, &env, opts...); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// GetSkillsByIDs fetches detail records for multiple skills in one call.
func (c *SkillsClient) GetSkillsByIDs(ctx context.Context, skillIDs []string, opts ...RequestOption) ([]SkillDetail, error) {
	body := map[string]any{"ids": skillIDs}

	var env struct {
		Data []SkillDetail `json:"data"`
	}
	if err := c.postJSON(ctx, "skills/versions/{version}/retrieve", body, nil, &env, opts...); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// GetRelatedSkills returns skills related to the given skill.
func (c *SkillsClient) GetRelatedSkills(ctx context.Context, skillID string, limit int, opts ...RequestOption) ([]Skill, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))

	var env struct {
		Data []Skill `json:"data"`
	}
	path := fmt.Sprintf("skills/versions/{version}/%s/related", url.PathEscape(skillID))
	if err := c.getJSON(ctx, path, params, &env, opts...); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// GetSkillsMetadata returns metadata about the skills taxonomy.
func (c *SkillsClient) GetSkillsMetadata(ctx context.Context, opts ...RequestOption) (map[string]any, error) {
	var env struct {
		Data map[string]any `json:"data"`
	}
	if err := c.getJSON(ctx, "skills/versions/{version}/meta", nil, &env, opts...); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// GetSkillCategories lists skill categories and subcategories.
func (c *SkillsClient) GetSkillCategories(ctx context.Context, opts ...RequestOption) ([]map[string]any, error) {
	var env struct {
		Data []map[string]any `json:"data"`
	}
	if err := c.getJSON(ctx, "skills/versions/{version}/categories", nil, &env, opts...); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// ExtractSkills extracts skills from free text, keeping matches at or above
// the confidence threshold.
func (c *SkillsClient) ExtractSkills(ctx context.Context, text string, confidenceThreshold float64, opts ...RequestOption) ([]map[string]any, error) {
	body := map[string]any{
		"text":                 text,
		"confidence_threshold": confidenceThreshold,
	}

	var env struct {
		Data []map[string]any `json:"data"`
	}
	if err := c.postJSON(ctx, "skills/versions/{version}/extract", body, nil, &env, opts...); err != nil {
		return nil, err
	}
	return env.Data, nil
}
