package ingest

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/co2re/innovation-hub/internal/models"
)

// stubFetcher serves canned bodies by URL and fails everything else.
type stubFetcher struct {
	pages map[string]string
}

func (s *stubFetcher) Fetch(_ context.Context, url string) (*FetchedDocument, error) {
	body, ok := s.pages[url]
	if !ok {
		return nil, fmt.Errorf("unreachable: %s", url)
	}
	return &FetchedDocument{
		URL:         url,
		StatusCode:  200,
		ContentType: "text/html",
		Body:        io.NopCloser(strings.NewReader(body)),
		FetchedAt:   time.Now(),
	}, nil
}

type memStore struct {
	docs    map[string]models.Document
	funding map[string]models.FundingOpportunity
}

func newMemStore() *memStore {
	return &memStore{
		docs:    make(map[string]models.Document),
		funding: make(map[string]models.FundingOpportunity),
	}
}

func (m *memStore) UpsertDocument(_ context.Context, doc models.Document) error {
	m.docs[doc.ID] = doc
	return nil
}

func (m *memStore) UpsertFunding(_ context.Context, opp models.FundingOpportunity) error {
	m.funding[opp.ID] = opp
	return nil
}

func (m *memStore) ListActiveFunding(_ context.Context) ([]models.FundingOpportunity, error) {
	var opps []models.FundingOpportunity
	for _, opp := range m.funding {
		if opp.IsActive {
			opps = append(opps, opp)
		}
	}
	return opps, nil
}

func (m *memStore) UpdateMatchScore(_ context.Context, id string, score int) error {
	opp, ok := m.funding[id]
	if !ok {
		return fmt.Errorf("no such opportunity: %s", id)
	}
	opp.MatchScore = score
	m.funding[id] = opp
	return nil
}

func (m *memStore) TopFunding(_ context.Context, limit int) ([]models.FundingOpportunity, error) {
	opps, _ := m.ListActiveFunding(context.Background())
	for i := 0; i < len(opps); i++ {
		for j := i + 1; j < len(opps); j++ {
			if opps[j].MatchScore > opps[i].MatchScore {
				opps[i], opps[j] = opps[j], opps[i]
			}
		}
	}
	if len(opps) > limit {
		opps = opps[:limit]
	}
	return opps, nil
}

func testPipeline(t *testing.T, fetcher Fetcher) (*Pipeline, *memStore) {
	t.Helper()
	reg, err := LoadRegistry("")
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	store := newMemStore()
	p := NewPipeline(store, fetcher, reg)
	p.Sleep = func(time.Duration) {}
	return p, store
}

func TestRunDocumentsFallsBackToCuratedSet(t *testing.T) {
	// Every fetch fails, so both the API and web paths come back empty.
	p, store := testPipeline(t, &stubFetcher{})

	res := p.RunDocuments(context.Background())

	if !res.Success {
		t.Fatalf("expected success, got %+v", res)
	}
	if res.Count != 16 {
		t.Errorf("count = %d, want 16", res.Count)
	}
	want := "Successfully updated 16 documents from CO2RE with smart categorization"
	if res.Message != want {
		t.Errorf("message = %q, want %q", res.Message, want)
	}

	doc, ok := store.docs["co2re_about"]
	if !ok {
		t.Fatalf("expected co2re_about in store, have %d docs", len(store.docs))
	}
	// Curated relevance (95) beats classifier confidence, so it survives
	// the merge.
	if doc.RelevanceScore != 95 {
		t.Errorf("relevance = %d, want 95", doc.RelevanceScore)
	}
}

func TestRunDocumentsNeverLosesCuratedThemes(t *testing.T) {
	p, store := testPipeline(t, &stubFetcher{})
	p.RunDocuments(context.Background())

	doc := store.docs["co2re_biochar"]
	found := false
	for _, theme := range doc.Theme {
		if theme == "Pyrolysis" {
			found = true
		}
	}
	if !found {
		t.Errorf("curated theme Pyrolysis dropped during merge, themes = %v", doc.Theme)
	}
}

func TestRunFundingUsesCuratedFallbacks(t *testing.T) {
	p, store := testPipeline(t, &stubFetcher{})

	res := p.RunFunding(context.Background())

	if !res.Success {
		t.Fatalf("expected success, got %+v", res)
	}
	// 10 curated entries plus one fallback per registry funder.
	want := 10 + len(p.Registry.Funders)
	if res.Count != want {
		t.Errorf("count = %d, want %d", res.Count, want)
	}

	opp, ok := store.funding["counteract-vc-fallback"]
	if !ok {
		t.Fatalf("expected counteract-vc-fallback in store")
	}
	if opp.Amount != "$50M fund" {
		t.Errorf("amount = %q, want $50M fund", opp.Amount)
	}
	if opp.Location != "Global" {
		t.Errorf("location = %q, want Global", opp.Location)
	}
	if opp.Deadline != "Rolling applications" {
		t.Errorf("deadline = %q, want Rolling applications", opp.Deadline)
	}
	if opp.MatchScore != 85 {
		t.Errorf("match score = %d, want 85", opp.MatchScore)
	}

	frontier := store.funding["frontier-climate-fallback"]
	if frontier.Amount != "$925M commitment" {
		t.Errorf("frontier amount = %q, want $925M commitment", frontier.Amount)
	}
}

func TestUpdateMatchScoresWritesEveryOpportunity(t *testing.T) {
	p, store := testPipeline(t, &stubFetcher{})
	p.RunFunding(context.Background())

	profile := models.MatchProfile{
		Stage:                 "Seed",
		FocusAreas:            []string{"carbon removal"},
		PreferredFundingTypes: []string{"grant"},
	}
	if err := p.UpdateMatchScores(context.Background(), profile); err != nil {
		t.Fatalf("UpdateMatchScores: %v", err)
	}

	// Default 85s must be replaced by computed scores everywhere.
	for id, opp := range store.funding {
		want := CalculateMatchScore(opp, profile)
		if opp.MatchScore != want {
			t.Errorf("%s score = %d, want %d", id, opp.MatchScore, want)
		}
	}
}

func TestTopMatchesOrdersByScore(t *testing.T) {
	p, store := testPipeline(t, &stubFetcher{})
	p.RunFunding(context.Background())

	profile := models.MatchProfile{
		Stage:                 "Seed",
		FocusAreas:            []string{"carbon removal"},
		PreferredFundingTypes: []string{"vc"},
	}
	top, err := p.TopMatches(context.Background(), profile, 5)
	if err != nil {
		t.Fatalf("TopMatches: %v", err)
	}
	if len(top) != 5 {
		t.Fatalf("got %d matches, want 5", len(top))
	}
	for i := 1; i < len(top); i++ {
		if top[i].MatchScore > top[i-1].MatchScore {
			t.Errorf("matches out of order at %d: %d > %d", i, top[i].MatchScore, top[i-1].MatchScore)
		}
	}
	_ = store
}

func TestRunDocumentsInjectedSleep(t *testing.T) {
	reg, err := LoadRegistry("")
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	store := newMemStore()
	p := NewPipeline(store, &stubFetcher{}, reg)

	var slept []time.Duration
	p.Sleep = func(d time.Duration) { slept = append(slept, d) }

	p.RunDocuments(context.Background())

	// One politeness delay per configured site page.
	if len(slept) != len(reg.DocumentPages) {
		t.Errorf("sleep calls = %d, want %d", len(slept), len(reg.DocumentPages))
	}
	for _, d := range slept {
		if d != sitePageDelay {
			t.Errorf("sleep = %v, want %v", d, sitePageDelay)
		}
	}
}
