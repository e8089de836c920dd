package ingest

import (
	"slices"
	"strings"
	"testing"

	"github.com/co2re/innovation-hub/internal/models"
)

func TestRelevanceScore(t *testing.T) {
	cases := []struct {
		name    string
		content string
		title   string
		want    int
	}{
		{"bare", "short text", "Hi", 50},
		{"co2re mention", "CO2RE does things", "Hi", 60},
		{"all boosts clamp", strings.Repeat("x", 5001) + " CO2RE research carbon removal policy",
			"A title longer than twenty chars", 100},
		{"long content", strings.Repeat("x", 1001), "Hi", 60},
	}
	for _, tc := range cases {
		if got := relevanceScore(tc.content, tc.title); got != tc.want {
			t.Errorf("%s: relevanceScore = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestExtractAuthors(t *testing.T) {
	cases := []struct {
		content string
		want    string
	}{
		{"Written by: Jane Smith. Rest of text", "Jane Smith"},
		{"Lead author: Prof Bob Jones\nAffiliation: Oxford", "Prof Bob Jones"},
		{"no byline anywhere", "CO2RE Team"},
	}
	for _, tc := range cases {
		got := extractAuthors(tc.content)
		if len(got) != 1 || got[0] != tc.want {
			t.Errorf("extractAuthors(%q) = %v, want [%s]", tc.content, got, tc.want)
		}
	}
}

func TestExtractFundingAmount(t *testing.T) {
	if got := extractFundingAmount("We manage a $350M fund for climate", "Anyone"); got != "$350M" {
		t.Errorf("amount = %q, want $350M", got)
	}
	if got := extractFundingAmount("no figures here", "Counteract VC"); got != "$50M fund" {
		t.Errorf("fallback amount = %q, want $50M fund", got)
	}
	if got := extractFundingAmount("nothing", "Unknown Org"); got != "$10M-$100M" {
		t.Errorf("default vc amount = %q, want $10M-$100M", got)
	}
}

func TestExtractStage(t *testing.T) {
	got := extractStage("we invest at pre-seed and series a", "vc")
	// "pre-seed" contains "seed", so both register.
	want := []string{"Pre-seed", "Seed", "Series A"}
	if !slices.Equal(got, want) {
		t.Errorf("stages = %v, want %v", got, want)
	}

	if got := extractStage("anything", "grant"); !slices.Equal(got, []string{"Various stages"}) {
		t.Errorf("non-vc stages = %v, want [Various stages]", got)
	}

	if got := extractStage("nothing relevant", "vc"); !slices.Equal(got, []string{"Seed", "Series A"}) {
		t.Errorf("default vc stages = %v", got)
	}
}

func TestExtractContact(t *testing.T) {
	if got := extractContact("reach us at hello@fund.vc today"); got != "hello@fund.vc" {
		t.Errorf("contact = %q", got)
	}
	if got := extractContact("no email"); got != "See website for contact details" {
		t.Errorf("contact fallback = %q", got)
	}
}

func TestExtractOpportunityLines(t *testing.T) {
	text := strings.Join([]string{
		"Home",
		"Apply now: Net Zero funding competition for carbon removal startups",
		"short grant",
		"Another grant programme supporting early stage climate innovation in the UK",
		"A third line announcing an investment initiative for novel carbon technologies",
		"A fourth funding line that should be dropped by the cap on extracted lines ok",
	}, "\n")

	lines := extractOpportunityLines(text)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[0], "Net Zero funding competition") {
		t.Errorf("first line = %q", lines[0])
	}
}

func TestCalculateMatchScore(t *testing.T) {
	opp := models.FundingOpportunity{
		Type:       "grant",
		FocusAreas: []string{"Direct Air Capture", "BECCS"},
		Stage:      []string{"Seed", "Series A"},
		Location:   "United Kingdom",
	}
	profile := models.MatchProfile{
		Stage:                 "Seed",
		FocusAreas:            []string{"direct air capture"},
		PreferredFundingTypes: []string{"grant"},
	}

	// 30 stage + 20 focus + 20 location + 15 type.
	if got := CalculateMatchScore(opp, profile); got != 85 {
		t.Errorf("score = %d, want 85", got)
	}
}

func TestCalculateMatchScoreClampedAt100(t *testing.T) {
	opp := models.FundingOpportunity{
		Type:       "vc",
		FocusAreas: []string{"Carbon Removal", "Climate Tech", "DAC Systems"},
		Stage:      []string{"Seed"},
		Location:   "Global",
	}
	profile := models.MatchProfile{
		Stage:                 "Seed",
		FocusAreas:            []string{"carbon", "climate", "dac"},
		PreferredFundingTypes: []string{"vc"},
	}

	// 30 + 60 + 20 + 15 = 125 before the clamp.
	if got := CalculateMatchScore(opp, profile); got != 100 {
		t.Errorf("score = %d, want 100", got)
	}
}

func TestCalculateMatchScoreNoOverlap(t *testing.T) {
	opp := models.FundingOpportunity{
		Type:       "philanthropy",
		FocusAreas: []string{"Ocean CDR"},
		Stage:      []string{"Growth"},
		Location:   "Europe",
	}
	profile := models.MatchProfile{Stage: "Seed"}

	if got := CalculateMatchScore(opp, profile); got != 0 {
		t.Errorf("score = %d, want 0", got)
	}
}
