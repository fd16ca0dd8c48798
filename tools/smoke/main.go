package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Hits every public endpoint of a running instance and prints the raw
// responses. Manual smoke check, not a test.
func main() {
	base := flag.String("base", "http://localhost:8080", "API base URL")
	user := flag.String("user", "4093752", "osu! user ID to query")
	mode := flag.String("mode", "0", "game mode 0-3")
	flag.Parse()

	client := &http.Client{Timeout: 30 * time.Second}

	requests := []struct {
		method string
		url    string
	}{
		{"GET", fmt.Sprintf("%s/health", *base)},
		{"GET", fmt.Sprintf("%s/stats_history?user=%s&mode=%s", *base, *user, *mode)},
		{"GET", fmt.Sprintf("%s/hiscores?user=%s&mode=%s", *base, *user, *mode)},
		{"GET", fmt.Sprintf("%s/peak?user=%s&mode=%s", *base, *user, *mode)},
		{"GET", fmt.Sprintf("%s/bestplays?mode=%s&limit=5", *base, *mode)},
		{"POST", fmt.Sprintf("%s/update?user=%s&mode=%s", *base, *user, *mode)},
	}

	for _, r := range requests {
		req, err := http.NewRequest(r.method, r.url, nil)
		if err != nil {
			log.Fatalf("Failed to create request: %v", err)
		}

		resp, err := client.Do(req)
		if err != nil {
			log.Fatalf("Failed to send request: %v", err)
		}

		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		resp.Body.Close()

		fmt.Printf("%s %s\n", r.method, r.url)
		fmt.Printf("  Status: %s\n", resp.Status)
		fmt.Printf("  Body: %s\n\n", string(body))
	}
}
