package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	totalLines     = 64000 // Total number of well-formed log lines per request body
	malformedEvery = 1000  // Every Nth line of the lenient body is replaced with a malformed one
)

var (
	paths   = []string{"/api/login", "/api/logout", "/users/42.json", "/orders?id=7"}
	weights = []int{8, 4, 3, 1} // per cycle of 16 lines
)

// ### End - fixed configs

type reportEntry struct {
	APIName    string  `json:"apiName"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

type report struct {
	TotalCount   int64         `json:"totalCount"`
	SkippedCount int64         `json:"skippedCount"`
	Entries      []reportEntry `json:"entries"`
}

type requestToSend struct {
	index int
	mode  string
	body  []byte
	want  report
}

// main runs the e2e scenario: 001_basic_usage_report
//
// This scenario posts the same deterministic access log to POST /reports many times in
// parallel, in strict and lenient mode, and checks every response against the expected ranking.
//
// What it tests:
//   - Raw log ingestion via POST /reports
//   - API name extraction (query strings and extensions dropped)
//   - Ranking by count descending with percentages
//   - Lenient mode skipping malformed lines and reporting skippedCount
//   - Strict mode rejecting the same body with 400 USG_1000
//   - Independent concurrent requests producing identical reports
//
// Expected results:
//   - strict: login 32000 (50%), logout 16000 (25%), 42 12000 (18.75%), orders 4000 (6.25%)
//   - lenient: 64 lines replaced by garbage are skipped (32 login, 32 orders), the rest ranked the same way
//   - strict with garbage: every request answers 400
func main() {
	// these configs can be changed to run the scenario
	baseURL := getEnv("BASE_URL", "http://localhost:8080") // Base URL of the api-usage server
	rounds := getEnvInt("ROUNDS", 20)                       // Number of times each body is posted
	parallel := getEnvInt("PARALLEL", 4)                    // Number of concurrent requests

	fmt.Println("Starting e2e scenario: 001_basic_usage_report")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("ROUNDS: %d\n", rounds)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("TOTAL_LINES: %d\n", totalLines)
	fmt.Println()

	cleanBody := generateBody(false)
	dirtyBody := generateBody(true)

	requests := make([]requestToSend, 0, rounds*3)
	for i := 0; i < rounds; i++ {
		requests = append(requests,
			requestToSend{index: i, mode: "strict", body: cleanBody, want: expectedReport(false)},
			requestToSend{index: i, mode: "lenient", body: dirtyBody, want: expectedReport(true)},
			requestToSend{index: i, mode: "strict", body: dirtyBody},
		)
	}
	fmt.Printf("Generated %d requests to send\n", len(requests))
	fmt.Println()

	// Create worker pool for parallel requests
	workerChan := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errors []error
	var okRequest int64      // 200 status code
	var invalidRequest int64 // 400 status code

	for _, req := range requests {
		wg.Add(1)
		workerChan <- struct{}{} // Acquire worker slot

		go func(r requestToSend) {
			defer wg.Done()
			defer func() { <-workerChan }() // Release worker slot

			statusCode, err := sendAndVerify(baseURL, r)
			if err != nil {
				mu.Lock()
				errors = append(errors, fmt.Errorf("request %d (%s): %w", r.index, r.mode, err))
				mu.Unlock()
				fmt.Fprintf(os.Stderr, "ERROR: request %d (%s) failed: %v\n", r.index, r.mode, err)
				return
			}

			switch statusCode {
			case http.StatusOK:
				atomic.AddInt64(&okRequest, 1)
			case http.StatusBadRequest:
				atomic.AddInt64(&invalidRequest, 1)
			}
		}(req)
	}

	wg.Wait()

	fmt.Println()
	if len(errors) > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: %d requests failed\n", len(errors))
		os.Exit(1)
	}

	fmt.Println("All requests completed successfully")
	fmt.Println("=== Statistics ===")
	fmt.Printf("OK request: %d\n", atomic.LoadInt64(&okRequest))
	fmt.Printf("Invalid request: %d\n", atomic.LoadInt64(&invalidRequest))
	fmt.Println("Scenario completed successfully")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var intValue int
		if _, err := fmt.Sscanf(value, "%d", &intValue); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// cycleSlots expands paths by weight into one 16-line cycle.
func cycleSlots() []int {
	cycle := make([]int, 0, 16)
	for i := range paths {
		for n := 0; n < weights[i]; n++ {
			cycle = append(cycle, i)
		}
	}
	return cycle
}

func isGarbageLine(i int, withGarbage bool) bool {
	return withGarbage && (i+1)%malformedEvery == 0
}

// generateBody writes totalLines access log lines cycling through paths by weight. With
// withGarbage every malformedEvery-th line is an unquoted request.
func generateBody(withGarbage bool) []byte {
	var sb strings.Builder
	cycle := cycleSlots()

	for i := 0; i < totalLines; i++ {
		second := i % 60
		if isGarbageLine(i, withGarbage) {
			fmt.Fprintf(&sb, "10.0.%d.%d - - [28/Dec/2025:18:03:%02d +0000] GET /garbage HTTP/1.1 200 0\n", i%256, (i/256)%256, second)
			continue
		}
		fmt.Fprintf(&sb, "10.0.%d.%d - - [28/Dec/2025:18:03:%02d +0000] \"GET %s HTTP/1.1\" 200 512\n", i%256, (i/256)%256, second, paths[cycle[i%len(cycle)]])
	}
	return []byte(sb.String())
}

// expectedReport replays the generator. The weights keep the counts distinct, so the
// ranking is the order of apiNames.
func expectedReport(withGarbage bool) report {
	apiNames := []string{"login", "logout", "42", "orders"}
	cycle := cycleSlots()
	counts := make([]int64, len(apiNames))
	var counted, skipped int64
	for i := 0; i < totalLines; i++ {
		if isGarbageLine(i, withGarbage) {
			skipped++
			continue
		}
		counts[cycle[i%len(cycle)]]++
		counted++
	}

	entries := make([]reportEntry, 0, len(apiNames))
	for i, name := range apiNames {
		entries = append(entries, reportEntry{
			APIName:    name,
			Count:      counts[i],
			Percentage: 100 * float64(counts[i]) / float64(counted),
		})
	}
	return report{TotalCount: counted, SkippedCount: skipped, Entries: entries}
}

func sendAndVerify(baseURL string, r requestToSend) (int, error) {
	req, err := http.NewRequest(http.MethodPost, baseURL+"/reports?mode="+r.mode, bytes.NewReader(r.body))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")

	client := &http.Client{
		Timeout: 30 * time.Second,
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}

	// A strict request without an expected report must be rejected with 400.
	if r.want.Entries == nil {
		if resp.StatusCode != http.StatusBadRequest {
			return resp.StatusCode, fmt.Errorf("expected HTTP 400, got %d", resp.StatusCode)
		}
		return resp.StatusCode, nil
	}

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, fmt.Errorf("HTTP %d: %s", resp.StatusCode, body)
	}

	var got report
	if err := json.Unmarshal(body, &got); err != nil {
		return resp.StatusCode, fmt.Errorf("invalid report: %w", err)
	}
	if err := compareReports(r.want, got); err != nil {
		return resp.StatusCode, err
	}
	return resp.StatusCode, nil
}

func compareReports(want, got report) error {
	if want.TotalCount != got.TotalCount || want.SkippedCount != got.SkippedCount {
		return fmt.Errorf("totals: want %d/%d, got %d/%d", want.TotalCount, want.SkippedCount, got.TotalCount, got.SkippedCount)
	}
	if len(want.Entries) != len(got.Entries) {
		return fmt.Errorf("entries: want %d, got %d", len(want.Entries), len(got.Entries))
	}
	for i := range want.Entries {
		w, g := want.Entries[i], got.Entries[i]
		if w.APIName != g.APIName || w.Count != g.Count {
			return fmt.Errorf("entry %d: want %s=%d, got %s=%d", i, w.APIName, w.Count, g.APIName, g.Count)
		}
		if diff := w.Percentage - g.Percentage; diff > 1e-9 || diff < -1e-9 {
			return fmt.Errorf("entry %d: want %.6f%%, got %.6f%%", i, w.Percentage, g.Percentage)
		}
	}
	return nil
}
