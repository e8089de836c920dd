package ingest

import (
	"regexp"
	"slices"
	"strings"

	"github.com/co2re/innovation-hub/internal/models"
)

var authorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:Author|By|Written by)[:\s]+([^.\n]+)`),
	regexp.MustCompile(`(?i)(?:Lead author|Principal investigator)[:\s]+([^.\n]+)`),
	regexp.MustCompile(`(?i)(?:Research team|Team)[:\s]+([^.\n]+)`),
}

// extractAuthors looks for author byline patterns in page text.
func extractAuthors(content string) []string {
	for _, pattern := range authorPatterns {
		if m := pattern.FindStringSubmatch(content); m != nil {
			return []string{strings.TrimSpace(m[1])}
		}
	}
	return []string{"CO2RE Team"}
}

// relevanceScore rates content quality from simple signals, starting
// at 50 and capped at 100.
func relevanceScore(content, title string) int {
	score := 50

	if len(content) > 1000 {
		score += 10
	}
	if len(content) > 5000 {
		score += 10
	}
	if len(title) > 20 {
		score += 5
	}
	if strings.Contains(content, "CO2RE") {
		score += 10
	}
	if strings.Contains(content, "research") {
		score += 5
	}
	if strings.Contains(content, "carbon removal") {
		score += 15
	}
	if strings.Contains(content, "policy") {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}

var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$[\d,]+[MBK]?`),
	regexp.MustCompile(`£[\d,]+[MBK]?`),
	regexp.MustCompile(`€[\d,]+[MBK]?`),
	regexp.MustCompile(`(?i)[\d,]+\s*million`),
	regexp.MustCompile(`(?i)[\d,]+\s*billion`),
}

// extractFundingAmount finds the first money figure in scraped funder
// text, falling back to the curated amount table.
func extractFundingAmount(content, orgName string) string {
	for _, pattern := range amountPatterns {
		if m := pattern.FindString(content); m != "" {
			return m
		}
	}
	return mockAmount(orgName, "vc")
}

func extractRequirements(content, funderType string) []string {
	lower := strings.ToLower(content)
	var requirements []string

	if strings.Contains(lower, "early stage") || strings.Contains(lower, "seed") {
		requirements = append(requirements, "Early-stage companies")
	}
	if strings.Contains(lower, "series a") || strings.Contains(lower, "growth") {
		requirements = append(requirements, "Growth-stage companies")
	}
	if strings.Contains(lower, "carbon removal") || strings.Contains(lower, "cdr") {
		requirements = append(requirements, "Carbon removal focus")
	}
	if strings.Contains(lower, "uk") || strings.Contains(lower, "united kingdom") {
		requirements = append(requirements, "UK presence preferred")
	}
	if strings.Contains(lower, "europe") {
		requirements = append(requirements, "European operations")
	}

	if len(requirements) == 0 {
		return mockRequirements(funderType)
	}
	return requirements
}

var focusKeywords = []string{
	"direct air capture", "dac", "biochar", "beccs", "enhanced weathering",
	"ocean carbon removal", "biomass", "afforestation", "reforestation",
	"carbon utilization", "ccus", "mineralization", "soil carbon",
}

func extractFocusAreas(content, defaultFocus string) []string {
	areas := []string{defaultFocus}
	lower := strings.ToLower(content)

	for _, keyword := range focusKeywords {
		if strings.Contains(lower, keyword) {
			areas = appendUnique(areas, strings.ToUpper(keyword[:1])+keyword[1:])
		}
	}

	return areas
}

func extractStage(content, funderType string) []string {
	if funderType != "vc" {
		return []string{"Various stages"}
	}

	lower := strings.ToLower(content)
	var stages []string
	if strings.Contains(lower, "pre-seed") {
		stages = append(stages, "Pre-seed")
	}
	if strings.Contains(lower, "seed") {
		stages = append(stages, "Seed")
	}
	if strings.Contains(lower, "series a") {
		stages = append(stages, "Series A")
	}
	if strings.Contains(lower, "series b") {
		stages = append(stages, "Series B")
	}
	if strings.Contains(lower, "growth") {
		stages = append(stages, "Growth")
	}

	if len(stages) == 0 {
		return []string{"Seed", "Series A"}
	}
	return stages
}

func extractGeography(content, orgName string) []string {
	lower := strings.ToLower(content)
	var geography []string

	if strings.Contains(lower, "uk") || strings.Contains(lower, "united kingdom") ||
		strings.Contains(strings.ToLower(orgName), "uk") {
		geography = append(geography, "United Kingdom")
	}
	if strings.Contains(lower, "europe") {
		geography = append(geography, "Europe")
	}
	if strings.Contains(lower, "global") || strings.Contains(lower, "worldwide") {
		geography = append(geography, "Global")
	}
	if strings.Contains(lower, "us") || strings.Contains(lower, "united states") {
		geography = append(geography, "United States")
	}

	if len(geography) == 0 {
		return mockGeography(orgName)
	}
	return geography
}

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

func extractContact(content string) string {
	if m := emailPattern.FindString(content); m != "" {
		return m
	}
	return "See website for contact details"
}

var (
	investmentKeywords = []string{"portfolio", "investments", "companies", "startups"}
	companyPatterns    = []*regexp.Regexp{
		regexp.MustCompile(`[A-Z][a-z]+\s+[A-Z][a-z]+`),
		regexp.MustCompile(`[A-Z][a-z]+(?:Tech|Labs|Inc|Corp|Ltd)`),
	}
)

// extractInvestments looks for capitalized company names near
// portfolio sections. A crude heuristic, but portfolio pages are
// mostly proper nouns.
func extractInvestments(content string) []string {
	lower := strings.ToLower(content)
	for _, keyword := range investmentKeywords {
		if !strings.Contains(lower, keyword) {
			continue
		}
		for _, pattern := range companyPatterns {
			matches := pattern.FindAllString(content, 3)
			if len(matches) > 0 {
				return matches
			}
		}
	}
	return mockInvestments("")
}

var thesisKeywords = []string{"thesis", "focus", "mission", "vision", "strategy"}

func extractThesis(content string) string {
	for _, keyword := range thesisKeywords {
		pattern := regexp.MustCompile(`(?i)` + keyword + `[^.]*\.`)
		if m := pattern.FindString(content); m != "" {
			return strings.TrimSpace(m)
		}
	}
	return "Focused on climate solutions and carbon removal technologies"
}

var fundingLineKeywords = []string{
	"funding", "grant", "investment", "competition", "prize", "programme", "initiative",
}

// extractOpportunityLines pulls headline-sized lines mentioning
// funding out of portal text. Capped at three to keep noise down.
func extractOpportunityLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		matched := false
		for _, keyword := range fundingLineKeywords {
			if strings.Contains(lower, keyword) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		if len(line) > 20 && len(line) < 200 {
			lines = append(lines, strings.TrimSpace(line))
			if len(lines) == 3 {
				break
			}
		}
	}
	return lines
}

// CalculateMatchScore rates how well an opportunity fits a venture
// profile. Stage match is worth the most, each overlapping focus area
// adds 20, UK or global reach adds 20, preferred type adds 15. Capped
// at 100.
func CalculateMatchScore(opp models.FundingOpportunity, profile models.MatchProfile) int {
	score := 0

	if profile.Stage != "" && slices.Contains(opp.Stage, profile.Stage) {
		score += 30
	}

	for _, area := range opp.FocusAreas {
		for _, userArea := range profile.FocusAreas {
			if strings.Contains(strings.ToLower(area), strings.ToLower(userArea)) {
				score += 20
				break
			}
		}
	}

	if strings.Contains(opp.Location, "United Kingdom") || strings.Contains(opp.Location, "Global") {
		score += 20
	}

	if slices.Contains(profile.PreferredFundingTypes, opp.Type) {
		score += 15
	}

	if score > 100 {
		score = 100
	}
	return score
}
