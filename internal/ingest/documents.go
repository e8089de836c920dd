package ingest

import (
	"context"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/co2re/innovation-hub/internal/classify"
	"github.com/co2re/innovation-hub/internal/models"
	"github.com/google/uuid"
)

const (
	sitePageDelay       = 200 * time.Millisecond
	publicationDelay    = 150 * time.Millisecond
	maxPublicationLinks = 20
)

var idCharRe = regexp.MustCompile(`[^a-zA-Z0-9]`)

// DocumentID derives a stable document ID from the last non-empty URL
// path segment. URLs with no usable segment get a random suffix.
func DocumentID(rawURL string) string {
	trimmed := strings.TrimRight(rawURL, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	if trimmed == "" {
		return "co2re_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:9]
	}
	return "co2re_" + idCharRe.ReplaceAllString(trimmed, "_")
}

// scrapeDocuments picks the ingestion path: the WordPress API when it
// responds, comprehensive web scraping otherwise, and the curated
// fallback set when both come back empty.
func (p *Pipeline) scrapeDocuments(ctx context.Context) []models.Document {
	if p.wordPressAvailable(ctx) {
		docs := p.scrapeViaAPI(ctx)
		if len(docs) > 0 {
			return docs
		}
		return FallbackDocuments()
	}

	log.Printf("[ingest] WordPress API not accessible, falling back to web scraping")
	return p.scrapeViaWeb(ctx)
}

// scrapeViaWeb walks the known CO2RE pages and then mines the
// publications page for further documents and PDFs.
func (p *Pipeline) scrapeViaWeb(ctx context.Context) []models.Document {
	var docs []models.Document

	for _, pg := range p.Registry.DocumentPages {
		doc, err := p.scrapePage(ctx, pg.URL, pg.Title, pg.Category)
		if err != nil {
			log.Printf("[ingest] could not scrape %s: %v", pg.URL, err)
		} else {
			docs = append(docs, *doc)
		}
		p.sleep(sitePageDelay)
	}

	pubs := p.scrapePublications(ctx)
	log.Printf("[ingest] found %d additional publications", len(pubs))
	docs = append(docs, pubs...)

	if len(docs) == 0 {
		log.Printf("[ingest] web scraping produced nothing, using curated fallback set")
		return FallbackDocuments()
	}

	return docs
}

// scrapePage fetches a single CO2RE page and builds a document from
// it. An empty title or category is filled from the page itself.
func (p *Pipeline) scrapePage(ctx context.Context, pageURL, title, category string) (*models.Document, error) {
	page, err := FetchPage(ctx, p.Fetcher, pageURL)
	if err != nil {
		return nil, err
	}

	if title == "" {
		title = page.Title
	}
	if title == "" {
		title = "CO2RE Document"
	}

	c := classify.Categorize(title, page.Text, pageURL)
	if category == "" {
		category = c.Category
	}

	return &models.Document{
		ID:             DocumentID(pageURL),
		Title:          title,
		Content:        page.Text,
		Excerpt:        Excerpt(page.Text),
		URL:            pageURL,
		PDFURL:         firstPDFLink(page),
		Category:       category,
		Type:           c.Type,
		Theme:          c.Themes,
		Authors:        extractAuthors(page.Text),
		PublishedDate:  time.Now().UTC(),
		Tags:           c.Tags,
		RelevanceScore: relevanceScore(page.Text, title),
	}, nil
}

// scrapePublications mines the publications overview page for document
// and PDF links. The overview page itself is skipped to avoid loops.
func (p *Pipeline) scrapePublications(ctx context.Context) []models.Document {
	page, err := FetchPage(ctx, p.Fetcher, p.Registry.BaseURL+"/publications/")
	if err != nil {
		log.Printf("[ingest] could not scrape publications page: %v", err)
		return nil
	}

	var candidates []Link
	for _, link := range page.Links {
		if !strings.Contains(link.URL, "co2re.org") ||
			strings.Contains(link.URL, "#") ||
			strings.Contains(link.URL, "mailto:") {
			continue
		}
		if len(link.Text) > 10 || strings.Contains(link.URL, "/publication/") || strings.HasSuffix(link.URL, ".pdf") {
			candidates = append(candidates, link)
			if len(candidates) == maxPublicationLinks {
				break
			}
		}
	}

	var docs []models.Document
	for _, link := range candidates {
		switch {
		case strings.HasSuffix(link.URL, ".pdf"):
			doc, err := p.processPDF(ctx, link.URL, link.Text)
			if err != nil {
				log.Printf("[ingest] skipping PDF %s: %v", link.URL, err)
			} else {
				docs = append(docs, *doc)
			}
		case strings.Contains(link.URL, "/publications/"):
			// The overview page linking to itself.
		default:
			doc, err := p.scrapePage(ctx, link.URL, link.Text, "")
			if err != nil {
				log.Printf("[ingest] skipping %s: %v", link.URL, err)
			} else {
				docs = append(docs, *doc)
			}
		}
		p.sleep(publicationDelay)
	}

	return docs
}

// processPDF downloads a PDF publication and builds a document from
// its extracted text.
func (p *Pipeline) processPDF(ctx context.Context, pdfURL, title string) (*models.Document, error) {
	text, err := FetchPDFText(ctx, p.Fetcher, pdfURL)
	if err != nil {
		return nil, err
	}

	if title == "" {
		title = "CO2RE Publication"
	}

	c := classify.Categorize(title, text, pdfURL)

	return &models.Document{
		ID:             DocumentID(pdfURL),
		Title:          title,
		Content:        text,
		Excerpt:        Excerpt(text),
		URL:            pdfURL,
		PDFURL:         pdfURL,
		Category:       c.Category,
		Type:           models.TypePublication,
		Theme:          c.Themes,
		Authors:        extractAuthors(text),
		PublishedDate:  time.Now().UTC(),
		Tags:           c.Tags,
		RelevanceScore: relevanceScore(text, title),
	}, nil
}
