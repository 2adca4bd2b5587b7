package lightcast

import (
	"context"
	"testing"
)

func TestGetDimension(t *testing.T) {
	fx := newFamilyFixture(t, jsonHandler(200, `{
		"data": {"title": "SOC", "description": "Standard Occupational Classification"}
	}`))

	client := NewBenchmarkClient(fx.tm, fx.opts...)
	defer client.Close()

	dim, err := client.GetDimension(context.Background(), "soc")
	if err != nil {
		t.Fatalf("GetDimension failed: %v", err)
	}

	if dim["title"] != "SOC" {
		t.Errorf("dimension = %v", dim)
	}
	if got := fx.api.last(t).Path; got != "/dimensions/soc" {
		t.Errorf("path = %q, want /dimensions/soc", got)
	}
	if got := fx.tokenSrv.LastScope(); got != ScopeBenchmark {
		t.Errorf("token scope = %q, want %q", got, ScopeBenchmark)
	}
}

func TestGetOccupationBenchmark(t *testing.T) {
	fx := newFamilyFixture(t, jsonHandler(200, `{
		"data": {
			"title": "Data Scientists",
			"soc_code": "15-2051",
			"metrics": [
				{"name": "median_salary", "value": 108020, "percentile": 0.5}
			],
			"benchmark_date": "2023-12"
		}
	}`))

	client := NewBenchmarkClient(fx.tm, fx.opts...)
	defer client.Close()

	benchmark, err := client.GetOccupationBenchmark(context.Background(), "15-2051", BenchmarkFilters{
		Metrics: []string{"median_salary", "demand"},
		Region:  "US",
	})
	if err != nil {
		t.Fatalf("GetOccupationBenchmark failed: %v", err)
	}

	if benchmark.SOCCode != "15-2051" || len(benchmark.Metrics) != 1 {
		t.Errorf("benchmark = %+v", benchmark)
	}
	if benchmark.Metrics[0].Percentile == nil || *benchmark.Metrics[0].Percentile != 0.5 {
		t.Errorf("percentile = %v", benchmark.Metrics[0].Percentile)
	}

	query := fx.api.last(t).Query
	if query.Get("metrics") != "median_salary,demand" {
		t.Errorf("metrics = %q", query.Get("metrics"))
	}
	if query.Get("region") != "US" {
		t.Errorf("region = %q", query.Get("region"))
	}
}

func TestGetStatusProbe(t *testing.T) {
	fx := newFamilyFixture(t, jsonHandler(200, `{"data": {"healthy": true}}`))

	client := NewBenchmarkClient(fx.tm, fx.opts...)
	defer client.Close()

	status, err := client.GetStatus(context.Background())
	if err != nil {
		t.Fatalf("GetStatus failed: %v", err)
	}
	if status["healthy"] != true {
		t.Errorf("status = %v", status)
	}
	if got := fx.api.last(t).Path; got != "/status" {
		t.Errorf("path = %q, want /status", got)
	}
}
