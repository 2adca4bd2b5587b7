package lightcast

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/lawwu/mcp-lightcast/auth"
)

// probeTimeout bounds the lightweight status endpoint; a health probe that
// needs the full request timeout is already an answer.
const probeTimeout = 10 * time.Second

// BenchmarkClient accesses the Lightcast Occupation Benchmark API. Requires
// the occupation-benchmark scope; the family tracks the "latest" version
// line.
type BenchmarkClient struct {
	*Client
}

// NewBenchmarkClient creates a benchmark client sharing the given token
// manager.
func NewBenchmarkClient(tm *auth.TokenManager, opts ...Option) *BenchmarkClient {
	opts = append([]Option{WithScope(ScopeBenchmark), WithDefaultVersion("latest")}, opts...)
	return &BenchmarkClient{NewClient(tm, opts...)}
}

// BenchmarkMetric is one named metric inside a benchmark record.
type BenchmarkMetric struct {
	Name       string   `json:"name"`
	Value      any      `json:"value"`
	Percentile *float64 `json:"percentile,omitempty"`
	Group      string   `json:"group,omitempty"`
}

// OccupationBenchmark is the benchmark record for one occupation.
type OccupationBenchmark struct {
	Title         string            `json:"title"`
	SOCCode       string            `json:"soc_code,omitempty"`
	Metrics       []BenchmarkMetric `json:"metrics"`
	BenchmarkDate string            `json:"benchmark_date,omitempty"`
}

// SalaryBenchmark is salary distribution data for one occupation.
type SalaryBenchmark struct {
	OccupationID string         `json:"occupation_id"`
	Region       string         `json:"region,omitempty"`
	SalaryData   map[string]any `json:"salary_data"`
}

// BenchmarkFilters narrows an occupation benchmark request. Zero values are
// omitted.
type BenchmarkFilters struct {
	Metrics    []string
	Region     string
	TimePeriod string
}

// GetDimension returns information about one taxonomy dimension
// (lotocc, soc, onet, lotspecocc).
func (c *BenchmarkClient) GetDimension(ctx context.Context, dimension string, opts ...RequestOption) (map[string]any, error) {
	var env struct {
		Data map[string]any `json:"data"`
	}
	path := fmt.Sprintf("dimensions/%s", url.PathEscape(dimension))
	if err := c.getJSON(ctx, path, nil, &env, opts...); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// GetMetadata returns the API's datasets, dimensions, and taxonomy versions.
func (c *BenchmarkClient) GetMetadata(ctx context.Context, opts ...RequestOption) (map[string]any, error) {
	var env struct {
		Data map[string]any `json:"data"`
	}
	if err := c.getJSON(ctx, "meta", nil, &env, opts...); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// GetStatus probes API health under a shorter timeout than regular calls.
func (c *BenchmarkClient) GetStatus(ctx context.Context, opts ...RequestOption) (map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	var env struct {
		Data map[string]any `json:"data"`
	}
	if err := c.getJSON(ctx, "status", nil, &env, opts...); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// GetOccupationBenchmark returns benchmark data for one occupation.
func (c *BenchmarkClient) GetOccupationBenchmark(ctx context.Context, occupationID string, filters BenchmarkFilters, opts ...RequestOption) (*OccupationBenchmark, error) {
	params := url.Values{}
	if len(filters.Metrics) > 0 {
		params.Set("metrics", strings.Join(filters.Metrics, ","))
	}
	if filters.Region != "" {
		params.Set("region", filters.Region)
	}
	if filters.TimePeriod != "" {
		params.Set("time_period", filters.TimePeriod)
	}

	var env struct {
		Data OccupationBenchmark `json:"data"`
	}
	path := fmt.Sprintf("benchmark/versions/{version}/occupations/%s", url.PathEscape(occupationID))
	if err := c.getJSON(ctx, path, params, &env, opts...); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// GetSalaryBenchmarks returns salary benchmarks for multiple occupations.
func (c *BenchmarkClient) GetSalaryBenchmarks(ctx context.Context, occupationIDs []string, region, experienceLevel string, opts ...RequestOption) ([]SalaryBenchmark, error) {
	body := map[string]any{"occupation_ids": occupationIDs}
	if region != "" {
		body["region"] = region
	}
	if experienceLevel != "" {
		body["experience_level"] = experienceLevel
	}

	var env struct {
		Data []SalaryBenchmark `json:"data"`
	}
	if err := c.postJSON(ctx, "benchmark/versions/{version}/salaries", body, nil, &env, opts...); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// GetSkillDemandBenchmarks returns demand benchmarks for skills, optionally
// filtered to specific skills or occupations.
func (c *BenchmarkClient) GetSkillDemandBenchmarks(ctx context.Context, skillIDs, occupationFilter []string, limit int, opts ...RequestOption) ([]map[string]any, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))

	body := map[string]any{}
	if len(skillIDs) > 0 {
		body["skill_ids"] = skillIDs
	}
	if len(occupationFilter) > 0 {
		body["occupation_filter"] = occupationFilter
	}

	var env struct {
		Data []map[string]any `json:"data"`
	}
	if err := c.postJSON(ctx, "benchmark/versions/{version}/skills/demand", body, params, &env, opts...); err != nil {
		return nil, err
	}
	return env.Data, nil
}
