package ingest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"time"

	"github.com/gocolly/colly/v2"
)

// CollyFetcher is an alternative Fetcher built on Colly. It respects
// robots.txt and applies per-domain delays, which suits the slower,
// politeness-sensitive funder sites.
type CollyFetcher struct {
	UserAgent         string
	MaxRetries        int
	RequestTimeout    time.Duration
	DomainDelay       time.Duration
	RetryBaseDelay    time.Duration
	RandomDelayFactor float64
	IgnoreRobotsTxt   bool
	MaxBodySize       int // bytes, 0 = unlimited
	DetectCharset     bool
}

// NewCollyFetcher creates a CollyFetcher with sensible defaults.
func NewCollyFetcher() *CollyFetcher {
	return &CollyFetcher{
		UserAgent:         browserUserAgent,
		MaxRetries:        3,
		RequestTimeout:    30 * time.Second,
		DomainDelay:       1 * time.Second,
		RetryBaseDelay:    1 * time.Second,
		RandomDelayFactor: 0.5,
		MaxBodySize:       10 * 1024 * 1024, // 10MB
		DetectCharset:     true,
	}
}

// CollyFetcherWithConfig creates a CollyFetcher from a FetchConfig.
func CollyFetcherWithConfig(cfg FetchConfig) *CollyFetcher {
	f := NewCollyFetcher()

	if cfg.TimeoutSeconds > 0 {
		f.RequestTimeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	if cfg.RateLimitRPS > 0 {
		f.DomainDelay = time.Duration(float64(time.Second) / cfg.RateLimitRPS)
	}
	if cfg.MaxRetries > 0 {
		f.MaxRetries = cfg.MaxRetries
	}

	return f
}

func (f *CollyFetcher) buildCollector(allowedDomains []string) *colly.Collector {
	opts := []colly.CollectorOption{
		colly.UserAgent(f.UserAgent),
		colly.MaxBodySize(f.MaxBodySize),
		colly.AllowURLRevisit(),
	}

	if len(allowedDomains) > 0 {
		opts = append(opts, colly.AllowedDomains(allowedDomains...))
	}
	if f.DetectCharset {
		opts = append(opts, colly.DetectCharset())
	}
	if f.IgnoreRobotsTxt {
		opts = append(opts, colly.IgnoreRobotsTxt())
	}

	c := colly.NewCollector(opts...)

	c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Parallelism: 2,
		Delay:       f.DomainDelay,
		RandomDelay: time.Duration(float64(f.DomainDelay) * f.RandomDelayFactor),
	})

	c.SetRequestTimeout(f.RequestTimeout)

	c.OnError(func(r *colly.Response, err error) {
		if r.Request.Ctx.GetAny("retries") == nil {
			r.Request.Ctx.Put("retries", 0)
		}
		retries := r.Request.Ctx.GetAny("retries").(int)
		if retries < f.MaxRetries {
			r.Request.Ctx.Put("retries", retries+1)
			log.Printf("[colly] retry %d/%d for %s: %v", retries+1, f.MaxRetries, r.Request.URL, err)
			time.Sleep(time.Duration(retries+1) * f.RetryBaseDelay)
			r.Request.Retry()
		}
	})

	return c
}

// Fetch implements the Fetcher interface. The collector is not async,
// so Visit only returns after every callback (including synchronous
// retries) has finished, and the captured result can be read directly.
func (f *CollyFetcher) Fetch(ctx context.Context, targetURL string) (*FetchedDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parsedURL, err := url.Parse(targetURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	c := f.buildCollector([]string{parsedURL.Hostname()})

	var result *FetchedDocument
	var fetchErr error

	c.OnResponse(func(r *colly.Response) {
		result = &FetchedDocument{
			URL:         r.Request.URL.String(),
			StatusCode:  r.StatusCode,
			ContentType: r.Headers.Get("Content-Type"),
			Body:        io.NopCloser(bytes.NewReader(r.Body)),
			FetchedAt:   time.Now(),
			Headers:     map[string][]string(r.Headers.Clone()),
		}
	})

	// Runs once per failed attempt, after the retrying handler above
	// has unwound. A retry that eventually succeeds leaves both result
	// and fetchErr set, so result is checked first below.
	c.OnError(func(r *colly.Response, err error) {
		fetchErr = fmt.Errorf("fetch failed after %d retries: %w", f.MaxRetries, err)
	})

	// Visit reports the first attempt's error even when a synchronous
	// retry later succeeded, so a captured response wins over it.
	visitErr := c.Visit(targetURL)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if result != nil {
		return result, nil
	}
	if fetchErr != nil {
		return nil, fetchErr
	}
	if visitErr != nil {
		return nil, fmt.Errorf("visit failed: %w", visitErr)
	}
	return nil, fmt.Errorf("no response received for %s", targetURL)
}
