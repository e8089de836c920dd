package ingest

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/co2re/innovation-hub/internal/classify"
	"github.com/co2re/innovation-hub/internal/models"
)

// Store is the persistence surface the pipelines write to.
type Store interface {
	UpsertDocument(ctx context.Context, doc models.Document) error
	UpsertFunding(ctx context.Context, opp models.FundingOpportunity) error
	ListActiveFunding(ctx context.Context) ([]models.FundingOpportunity, error)
	UpdateMatchScore(ctx context.Context, id string, score int) error
	TopFunding(ctx context.Context, limit int) ([]models.FundingOpportunity, error)
}

// Pipeline runs the document and funding ingestion flows. Sleep is
// injectable so tests run without the politeness delays.
type Pipeline struct {
	Store    Store
	Fetcher  Fetcher
	Registry *Registry
	Sleep    func(time.Duration)
}

// NewPipeline creates a pipeline with real delays.
func NewPipeline(store Store, fetcher Fetcher, registry *Registry) *Pipeline {
	if fetcher == nil {
		fetcher = NewRateLimitedFetcher(FetchConfig{
			TimeoutSeconds: 30,
			MaxRetries:     3,
			RateLimitRPS:   2.0,
		})
	}
	return &Pipeline{
		Store:    store,
		Fetcher:  fetcher,
		Registry: registry,
		Sleep:    time.Sleep,
	}
}

func (p *Pipeline) sleep(d time.Duration) {
	if p.Sleep != nil {
		p.Sleep(d)
	}
}

// RunDocuments scrapes CO2RE content, classifies it, and upserts every
// record. Individual failures are logged and skipped so a single bad
// page never aborts the run.
func (p *Pipeline) RunDocuments(ctx context.Context) RunResult {
	log.Printf("[ingest] starting CO2RE document update")

	docs := p.scrapeDocuments(ctx)
	if len(docs) == 0 {
		return RunResult{
			Success: false,
			Count:   0,
			Message: "No documents found during scraping",
		}
	}

	log.Printf("[ingest] applying smart categorization to %d documents", len(docs))

	count := 0
	for _, doc := range docs {
		enhanced := enhanceDocument(doc)
		if err := p.Store.UpsertDocument(ctx, enhanced); err != nil {
			log.Printf("[ingest] failed to store document %s: %v", enhanced.ID, err)
			continue
		}
		count++
	}

	return RunResult{
		Success: true,
		Count:   count,
		Message: fmt.Sprintf("Successfully updated %d documents from CO2RE with smart categorization", count),
	}
}

// enhanceDocument overlays classifier output on a scraped document.
// Category and type are replaced, themes and tags are unioned, and the
// relevance score only ever goes up.
func enhanceDocument(doc models.Document) models.Document {
	c := classify.Categorize(doc.Title, doc.Content, doc.URL)

	doc.Category = c.Category
	doc.Type = c.Type
	doc.Theme = mergeUniqueFold(doc.Theme, c.Themes)
	doc.Tags = mergeUniqueFold(doc.Tags, c.Tags)
	if c.Confidence > doc.RelevanceScore {
		doc.RelevanceScore = c.Confidence
	}

	doc.Title = sanitizeUTF8(doc.Title)
	doc.Content = sanitizeUTF8(doc.Content)
	doc.Excerpt = sanitizeUTF8(doc.Excerpt)

	return doc
}

// RunFunding scrapes the funding portals and the funder registry and
// upserts every opportunity found.
func (p *Pipeline) RunFunding(ctx context.Context) RunResult {
	log.Printf("[ingest] starting funding data update")

	opps := p.scrapeFunding(ctx)
	if len(opps) == 0 {
		return RunResult{
			Success: false,
			Count:   0,
			Message: "No funding opportunities found during scraping",
		}
	}

	count := 0
	for _, opp := range opps {
		if err := p.Store.UpsertFunding(ctx, opp); err != nil {
			log.Printf("[ingest] failed to store opportunity %s: %v", opp.ID, err)
			continue
		}
		count++
	}

	return RunResult{
		Success: true,
		Count:   count,
		Message: fmt.Sprintf("Successfully updated %d funding opportunities", count),
	}
}

// UpdateMatchScores recomputes and persists the match score of every
// active opportunity against the given profile.
func (p *Pipeline) UpdateMatchScores(ctx context.Context, profile models.MatchProfile) error {
	opps, err := p.Store.ListActiveFunding(ctx)
	if err != nil {
		return fmt.Errorf("failed to list funding opportunities: %w", err)
	}

	for _, opp := range opps {
		score := CalculateMatchScore(opp, profile)
		if err := p.Store.UpdateMatchScore(ctx, opp.ID, score); err != nil {
			log.Printf("[ingest] failed to update match score for %s: %v", opp.ID, err)
		}
	}

	return nil
}

// TopMatches refreshes match scores for the profile and returns the
// best-scoring opportunities.
func (p *Pipeline) TopMatches(ctx context.Context, profile models.MatchProfile, limit int) ([]models.FundingOpportunity, error) {
	if limit <= 0 {
		limit = 10
	}
	if err := p.UpdateMatchScores(ctx, profile); err != nil {
		return nil, err
	}
	return p.Store.TopFunding(ctx, limit)
}
