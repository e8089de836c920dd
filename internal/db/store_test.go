package db

import (
	"context"
	"os"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/co2re/innovation-hub/internal/models"
)

func TestEncodeDecodeStrings(t *testing.T) {
	if got := decodeStrings(encodeStrings([]string{"Biochar", "DACCS"})); !slices.Equal(got, []string{"Biochar", "DACCS"}) {
		t.Errorf("round trip = %v", got)
	}
	if got := decodeStrings(encodeStrings(nil)); got == nil || len(got) != 0 {
		t.Errorf("nil slice should encode to empty list, got %v", got)
	}
	if got := decodeStrings([]byte("not json")); len(got) != 0 {
		t.Errorf("bad payload should decode to empty list, got %v", got)
	}
}

func TestDecodeProfile(t *testing.T) {
	profile := models.MatchProfile{
		Stage:                 "Seed",
		FocusAreas:            []string{"Biochar"},
		PreferredFundingTypes: []string{"grant", "vc"},
	}
	got := decodeProfile(encodeProfile(profile))
	if got.Stage != "Seed" || len(got.FocusAreas) != 1 || len(got.PreferredFundingTypes) != 2 {
		t.Errorf("round trip = %+v", got)
	}

	if got := decodeProfile(nil); got.Stage != "" {
		t.Errorf("empty payload should decode to zero profile, got %+v", got)
	}
}

func TestUnionStrings(t *testing.T) {
	got := unionStrings([]string{"Biochar", "Policy"}, []string{"biochar", "DACCS"})
	// Incoming order first, then anything only the stored row had.
	want := []string{"biochar", "DACCS", "Policy"}
	if !slices.Equal(got, want) {
		t.Errorf("union = %v, want %v", got, want)
	}
}

// testStore connects to the database named by DATABASE_URL and applies
// migrations. Tests that need it are skipped when no database is
// reachable.
func testStore(t *testing.T) *Store {
	t.Helper()
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := Connect(ctx)
	if err != nil {
		t.Skipf("database unreachable: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := ApplyMigrations(ctx, pool); err != nil {
		t.Fatalf("ApplyMigrations: %v", err)
	}
	return NewStore(pool)
}

func TestUpsertDocumentMergesThemesAndRelevance(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	id := "test_doc_" + uuid.New().String()[:8]

	first := models.Document{
		ID:             id,
		Title:          "Biochar field trials",
		Content:        "Trial results",
		URL:            "https://co2re.org/research/biochar/",
		Category:       "Technical Research",
		Type:           models.TypeArticle,
		Theme:          []string{"Biochar", "Soil Carbon"},
		Tags:           []string{"biochar"},
		RelevanceScore: 90,
	}
	if err := store.UpsertDocument(ctx, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second := first
	second.Category = "MRV & Monitoring"
	second.Theme = []string{"Monitoring"}
	second.RelevanceScore = 60
	if err := store.UpsertDocument(ctx, second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := store.GetDocument(ctx, id)
	if err != nil {
		t.Fatalf("GetDocument: %v", err)
	}
	if got.Category != "MRV & Monitoring" {
		t.Errorf("category = %q, want replacement", got.Category)
	}
	if got.RelevanceScore != 90 {
		t.Errorf("relevance = %d, want 90 (never decreases)", got.RelevanceScore)
	}
	for _, theme := range []string{"Biochar", "Soil Carbon", "Monitoring"} {
		if !slices.Contains(got.Theme, theme) {
			t.Errorf("theme %q lost in merge, have %v", theme, got.Theme)
		}
	}
}

func TestUpsertFundingReplacesRow(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	id := "test_fund_" + uuid.New().String()[:8]

	opp := models.FundingOpportunity{
		ID:           id,
		Title:        "Carbon Removal Fund",
		Organization: "Test Org",
		Type:         "grant",
		Amount:       "£1M",
		Requirements: []string{"UK registered"},
		FocusAreas:   []string{"Carbon Removal"},
		Stage:        []string{"Seed"},
		Location:     "United Kingdom",
		MatchScore:   85,
		IsActive:     true,
	}
	if err := store.UpsertFunding(ctx, opp); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	opp.Amount = "£2M"
	if err := store.UpsertFunding(ctx, opp); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if err := store.UpdateMatchScore(ctx, id, 40); err != nil {
		t.Fatalf("UpdateMatchScore: %v", err)
	}

	active, err := store.ListActiveFunding(ctx)
	if err != nil {
		t.Fatalf("ListActiveFunding: %v", err)
	}
	for _, got := range active {
		if got.ID != id {
			continue
		}
		if got.Amount != "£2M" {
			t.Errorf("amount = %q, want £2M", got.Amount)
		}
		if got.MatchScore != 40 {
			t.Errorf("match score = %d, want 40", got.MatchScore)
		}
		return
	}
	t.Fatalf("upserted opportunity %s not in active list", id)
}

func TestUserRoundTrip(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	user := models.User{
		ID:           uuid.New(),
		Email:        "Test+" + uuid.New().String()[:8] + "@Example.org",
		PasswordHash: "x",
		Name:         "Test User",
		Profile:      models.MatchProfile{Stage: "Seed"},
		CreatedAt:    time.Now().UTC(),
	}
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	got, err := store.GetUserByEmail(ctx, user.Email)
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if got.ID != user.ID || got.Profile.Stage != "Seed" {
		t.Errorf("round trip = %+v", got)
	}

	newProfile := models.MatchProfile{Stage: "Series A", FocusAreas: []string{"DACCS"}}
	if err := store.UpdateUserProfile(ctx, user.ID, newProfile); err != nil {
		t.Fatalf("UpdateUserProfile: %v", err)
	}
	got, err = store.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if got.Profile.Stage != "Series A" {
		t.Errorf("profile not updated: %+v", got.Profile)
	}
}
