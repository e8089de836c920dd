package ingest

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/co2re/innovation-hub/internal/models"
	"github.com/google/uuid"
)

const funderDelay = 1000 * time.Millisecond

// scrapeFunding combines the three funding sources: portal headline
// mining, the curated entries, and the funder registry.
func (p *Pipeline) scrapeFunding(ctx context.Context) []models.FundingOpportunity {
	var opps []models.FundingOpportunity

	for _, portal := range p.Registry.FundingPortals {
		portalOpps, err := p.scrapePortal(ctx, portal)
		if err != nil {
			log.Printf("[ingest] could not scrape portal %s: %v", portal.Name, err)
			continue
		}
		opps = append(opps, portalOpps...)
	}

	opps = append(opps, CuratedFunding()...)

	for _, src := range p.Registry.Funders {
		opp, err := p.scrapeFunder(ctx, src)
		if err != nil {
			log.Printf("[ingest] live scrape of %s failed, using curated record: %v", src.Name, err)
			fb := fallbackFunder(src)
			opps = append(opps, fb)
		} else {
			opps = append(opps, *opp)
		}
		p.sleep(funderDelay)
	}

	log.Printf("[ingest] collected %d funding opportunities", len(opps))
	return opps
}

// scrapePortal mines a government portal listing page for headline
// lines that look like funding opportunities. These records are thin
// on purpose; they exist to be reviewed, not matched.
func (p *Pipeline) scrapePortal(ctx context.Context, portal PortalConfig) ([]models.FundingOpportunity, error) {
	doc, err := p.Fetcher.Fetch(ctx, portal.URL)
	if err != nil {
		return nil, err
	}
	defer doc.Body.Close()

	parsed, err := goquery.NewDocumentFromReader(doc.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse portal page: %w", err)
	}

	// Listing pages put opportunity names in links and headings.
	var lines []string
	parsed.Find("a, h2, h3, li").Each(func(_ int, sel *goquery.Selection) {
		if text := cleanText(sel.Text()); text != "" {
			lines = append(lines, text)
		}
	})

	now := time.Now().UTC()
	var opps []models.FundingOpportunity
	for _, line := range extractOpportunityLines(strings.Join(lines, "\n")) {
		opps = append(opps, models.FundingOpportunity{
			ID:           "scraped-" + strings.ReplaceAll(uuid.New().String(), "-", "")[:9],
			Title:        line,
			Organization: portal.Organization,
			Type:         portal.Type,
			Amount:       "TBD",
			Description:  "Scraped opportunity - requires manual review",
			Requirements: []string{"To be determined"},
			FocusAreas:   []string{"Carbon Removal"},
			Stage:        []string{"All stages"},
			Location:     "United Kingdom",
			IsActive:     true,
			LastUpdated:  now,
		})
	}

	return opps, nil
}

// scrapeFunder builds an opportunity from a funder's live site.
func (p *Pipeline) scrapeFunder(ctx context.Context, src FunderConfig) (*models.FundingOpportunity, error) {
	page, err := FetchPage(ctx, p.Fetcher, src.URL)
	if err != nil {
		return nil, err
	}
	content := page.Text

	deadline := "Check website"
	if src.Type == "vc" {
		deadline = "Rolling applications"
	}

	email := ""
	if contact := extractContact(content); strings.Contains(contact, "@") {
		email = contact
	}

	return &models.FundingOpportunity{
		ID:                funderSlug(src.Name),
		Title:             src.Name + " - " + src.Focus,
		Organization:      src.Name,
		Type:              src.Type,
		Amount:            extractFundingAmount(content, src.Name),
		Deadline:          deadline,
		Description:       src.Description,
		Requirements:      extractRequirements(content, src.Type),
		Website:           src.URL,
		ContactEmail:      email,
		FocusAreas:        extractFocusAreas(content, src.Focus),
		Stage:             extractStage(content, src.Type),
		Location:          strings.Join(extractGeography(content, src.Name), ", "),
		RecentInvestments: extractInvestments(content),
		InvestmentThesis:  extractThesis(content),
		MatchScore:        85,
		IsActive:          true,
		LastUpdated:       time.Now().UTC(),
	}, nil
}
