package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

func main() {
	adminSecret := strings.TrimSpace(os.Getenv("ADMIN_SECRET"))
	if adminSecret == "" {
		fmt.Println("Missing ADMIN_SECRET environment variable")
		os.Exit(1)
	}

	base := strings.TrimSpace(os.Getenv("API_BASE"))
	if base == "" {
		base = "http://localhost:8081"
	}

	client := &http.Client{Timeout: 10 * time.Minute}
	failed := false

	for _, path := range []string{"/api/v1/ingest/documents", "/api/v1/ingest/funding"} {
		req, err := http.NewRequest("POST", base+path, nil)
		if err != nil {
			fmt.Printf("Error creating request: %v\n", err)
			os.Exit(1)
		}
		req.Header.Set("X-Admin-Secret", adminSecret)

		resp, err := client.Do(req)
		if err != nil {
			fmt.Printf("Error sending request to %s: %v\n", path, err)
			os.Exit(1)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		fmt.Printf("%s -> %s\n%s\n", path, resp.Status, string(body))
		if resp.StatusCode != http.StatusOK {
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
