package lightcast_test

import (
	"fmt"

	"github.com/lawwu/mcp-lightcast/auth"
	"github.com/lawwu/mcp-lightcast/lightcast"
)

// Example demonstrates wiring one token manager into several API family
// clients. Each client is bound to the scope its family requires, so they
// can run concurrently without interfering with each other's tokens.
func Example() {
	tm := auth.NewTokenManager(auth.Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		TokenURL:     "https://auth.emsicloud.com/connect/token",
		DefaultScope: "emsi_open",
	})

	titles := lightcast.NewTitlesClient(tm)
	defer titles.Close()

	similarity := lightcast.NewSimilarityClient(tm)
	defer similarity.Close()

	fmt.Println("clients share one token manager")
	// Output: clients share one token manager
}

// ExampleNewClient demonstrates the base gateway with a custom version and
// an hourly request budget.
func ExampleNewClient() {
	tm := auth.NewTokenManager(auth.Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		TokenURL:     "https://auth.emsicloud.com/connect/token",
		DefaultScope: "emsi_open",
	})

	client := lightcast.NewClient(tm,
		lightcast.WithDefaultVersion("2023.4"),
		lightcast.WithRateLimit(1000),
	)
	defer client.Close()

	fmt.Println("gateway configured")
	// Output: gateway configured
}
