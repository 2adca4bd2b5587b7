package lightcast

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/lawwu/mcp-lightcast/auth"
)

// TitlesClient accesses the Lightcast Titles API (open scope).
type TitlesClient struct {
	*Client
}

// NewTitlesClient creates a titles client sharing the given token manager.
func NewTitlesClient(tm *auth.TokenManager, opts ...Option) *TitlesClient {
	opts = append([]Option{WithScope(ScopeOpen)}, opts...)
	return &TitlesClient{NewClient(tm, opts...)}
}

// Title is one title search result.
type Title struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// TitleDetail is the full record for a single title.
type TitleDetail struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Type     string           `json:"type,omitempty"`
	Parent   map[string]any   `json:"parent,omitempty"`
	Children []map[string]any `json:"children,omitempty"`
}

// TitleNormalization is the best title match for a raw title string.
type TitleNormalization struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
	Type       string  `json:"type,omitempty"`
}

// SearchTitles searches titles by name.
func (c *TitlesClient) SearchTitles(ctx context.Context, query string, limit, offset int, opts ...RequestOption) ([]Title, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))

	var env struct {
		Data []Title `json:"data"`
	}
	if err := c.getJSON(ctx, "titles/versions/{version}", params, &env, opts...); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// GetTitleByID fetches detailed information about one title.
func (c *TitlesClient) GetTitleByID(ctx context.Context, titleID string, opts ...RequestOption) (*TitleDetail, error) {
	var env struct {
		Data TitleDetail `json:"data"`
	}
	path := fmt.Sprintf("titles/versions/{version}/%s", url.PathEscape(titleID))
	if err := c.getJSON(ctx, path, nil, &env, opts...); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// NormalizeTitle maps a raw job title string to the best matching Lightcast
// title. The raw title is posted as text/plain, as the endpoint expects.
func (c *TitlesClient) NormalizeTitle(ctx context.Context, rawTitle string, opts ...RequestOption) (*TitleNormalization, error) {
	var env struct {
		Data TitleNormalization `json:"data"`
	}
	if err := c.postJSON(ctx, "titles/versions/{version}/normalize", rawTitle, nil, &env, opts...); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// GetTitleHierarchy returns the hierarchical structure for a title.
func (c *TitlesClient) GetTitleHierarchy(ctx context.Context, titleID string, opts ...RequestOption) (map[string]any, error) {
	var env struct {
		Data map[string]any `json:"data"`
	}
	path := fmt.Sprintf("titles/versions/{version}/%s/hierarchy", url.PathEscape(titleID))
	if err := c.getJSON(ctx, path, nil, &env, opts...); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// GetTitlesMetadata returns metadata about the titles taxonomy.
func (c *TitlesClient) GetTitlesMetadata(ctx context.Context, opts ...RequestOption) (map[string]any, error) {
	var env struct {
		Data map[string]any `json:"data"`
	}
	if err := c.getJSON(ctx, "titles/versions/{version}/meta", nil, &env, opts...); err != nil {
		return nil, err
	}
	return env.Data, nil
}
