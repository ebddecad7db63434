// Command access-doctor runs read-only checks against a live Access
// controller to verify that the client still matches what the controller
// actually returns. The developer API is undocumented beyond a PDF, so this
// is the fastest way to catch response-shape drift after a firmware update.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	unifiaccess "github.com/lexfrei/go-unifi-access"
)

var (
	host    = flag.String("host", os.Getenv("UNIFI_ACCESS_HOST"), "Access controller host (or use UNIFI_ACCESS_HOST env)")
	token   = flag.String("token", os.Getenv("UNIFI_ACCESS_TOKEN"), "Access API token (or use UNIFI_ACCESS_TOKEN env)")
	verbose = flag.Bool("verbose", false, "Verbose output with full JSON responses")
)

type checkResult struct {
	Endpoint   string
	Success    bool
	Error      string
	Count      int
	Duration   time.Duration
	JSONSample string
}

func main() {
	flag.Parse()

	if *host == "" {
		log.Fatal("Controller host is required. Use -host flag or UNIFI_ACCESS_HOST environment variable")
	}
	if *token == "" {
		log.Fatal("API token is required. Use -token flag or UNIFI_ACCESS_TOKEN environment variable")
	}

	fmt.Println("🧪 Checking go-unifi-access against a live controller...")
	fmt.Println("=" + strings.Repeat("=", 60))
	fmt.Println()

	client, err := unifiaccess.New(*host, *token)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	ctx := context.Background()

	results := []checkResult{
		check(ctx, "ListUsers", func(ctx context.Context) (any, int, error) {
			users, err := client.ListUsers(ctx)
			return users, len(users), err
		}),
		check(ctx, "ListAccessPolicies", func(ctx context.Context) (any, int, error) {
			policies, err := client.ListAccessPolicies(ctx)
			return policies, len(policies), err
		}),
		check(ctx, "ListDevices", func(ctx context.Context) (any, int, error) {
			devices, err := client.ListDevices(ctx)
			return devices, len(devices), err
		}),
		check(ctx, "ListDoors", func(ctx context.Context) (any, int, error) {
			doors, err := client.ListDoors(ctx)
			return doors, len(doors), err
		}),
		check(ctx, "ListVisitors", func(ctx context.Context) (any, int, error) {
			visitors, err := client.ListVisitors(ctx)
			return visitors, len(visitors), err
		}),
		check(ctx, "FetchSystemLogs", func(ctx context.Context) (any, int, error) {
			entries, err := client.FetchSystemLogs(ctx, unifiaccess.TopicAll, time.Now().Add(-time.Hour))
			return entries, len(entries), err
		}),
	}

	fmt.Println("📊 Summary")
	fmt.Println("=" + strings.Repeat("=", 60))
	fmt.Println()

	failures := 0
	for _, result := range results {
		status := "✅"
		if !result.Success {
			status = "❌"
			failures++
		}

		fmt.Printf("%s %s (%d items, %v)\n", status, result.Endpoint, result.Count, result.Duration)

		if result.Error != "" {
			fmt.Printf("   Error: %s\n", result.Error)
		}

		if *verbose && result.JSONSample != "" {
			fmt.Printf("   JSON Sample:\n%s\n", result.JSONSample)
		}

		fmt.Println()
	}

	fmt.Println("=" + strings.Repeat("=", 60))
	if failures == 0 {
		fmt.Println("✅ All checks passed.")
	} else {
		fmt.Printf("❌ %d of %d checks failed\n", failures, len(results))
		os.Exit(1)
	}
}

func check(ctx context.Context, endpoint string, fn func(context.Context) (any, int, error)) checkResult {
	fmt.Printf("📡 %s...\n", endpoint)

	start := time.Now()
	result := checkResult{Endpoint: endpoint}

	data, count, err := fn(ctx)
	result.Duration = time.Since(start)

	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Success = true
	result.Count = count

	if *verbose {
		sample, _ := json.MarshalIndent(data, "   ", "  ")
		result.JSONSample = string(sample)
	}

	return result
}
