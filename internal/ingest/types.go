package ingest

import (
	"context"
	"io"
	"time"
)

// FetchedDocument represents the raw result of a fetch operation.
type FetchedDocument struct {
	URL         string
	StatusCode  int
	ContentType string
	Body        io.ReadCloser
	FetchedAt   time.Time
	Headers     map[string][]string
}

// Fetcher retrieves raw content from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchedDocument, error)
}

// Link is a hyperlink found on a scraped page, with its anchor text.
type Link struct {
	URL  string
	Text string
}

// Page is the parsed form of a fetched HTML page.
type Page struct {
	URL   string
	Title string
	Text  string
	Links []Link
}

// RunResult is the outcome of a full ingestion run. Runs report
// partial failure through Count rather than an error.
type RunResult struct {
	Success bool   `json:"success"`
	Count   int    `json:"count"`
	Message string `json:"message"`
}
