package classify

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// Result is the outcome of categorizing a single piece of content.
type Result struct {
	Category   string   `json:"category"`
	Confidence int      `json:"confidence"`
	Themes     []string `json:"themes"`
	Tags       []string `json:"tags"`
	Type       string   `json:"type"`
}

// categoryRule scores a category from whole-word keyword hits and
// regex pattern hits. Pattern hits count double.
type categoryRule struct {
	name     string
	keywords []*regexp.Regexp
	patterns []*regexp.Regexp
	weight   float64
}

type themeRule struct {
	name     string
	keywords []string
	patterns []*regexp.Regexp
}

type typeRule struct {
	name     string
	keywords []string
	patterns []*regexp.Regexp
}

type keywordGroup struct {
	name     string
	keywords []string
}

func wordRegexps(words ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(words))
	for _, w := range words {
		out = append(out, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(w)+`\b`))
	}
	return out
}

func patternRegexps(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(`(?i)`+e))
	}
	return out
}

// Rules are held in ordered slices, not maps: on tied scores the first
// registered category wins, and theme/tag output order is stable.
var categoryRules = []categoryRule{
	{
		name: "Policy & Governance",
		keywords: wordRegexps(
			"policy", "governance", "regulation", "regulatory", "government", "legal",
			"framework", "legislation", "compliance", "institutional", "political",
			"public policy", "policy brief", "policy instrument", "governance structure",
		),
		patterns: patternRegexps(
			`policy\s+framework`,
			`regulatory\s+approach`,
			`governance\s+structure`,
			`legal\s+framework`,
			`institutional\s+arrangement`,
		),
		weight: 1.0,
	},
	{
		name: "MRV & Monitoring",
		keywords: wordRegexps(
			"mrv", "monitoring", "verification", "measurement", "reporting",
			"accounting", "quantification", "assessment", "validation", "audit",
			"tracking", "surveillance", "observation", "detection", "analysis",
		),
		patterns: patternRegexps(
			`monitoring[,\s]+reporting[,\s]+verification`,
			`measurement\s+and\s+verification`,
			`carbon\s+accounting`,
			`verification\s+protocol`,
			`monitoring\s+system`,
		),
		weight: 1.0,
	},
	{
		name: "Technical Research",
		keywords: wordRegexps(
			"research", "technology", "technical", "method", "methodology",
			"analysis", "study", "investigation", "experiment", "development",
			"innovation", "engineering", "scientific", "laboratory", "testing",
		),
		patterns: patternRegexps(
			`technical\s+assessment`,
			`research\s+methodology`,
			`experimental\s+design`,
			`technology\s+development`,
			`scientific\s+study`,
		),
		weight: 1.0,
	},
	{
		name: "Decision Support",
		keywords: wordRegexps(
			"decision", "support", "tool", "guidance", "framework", "assessment",
			"evaluation", "comparison", "selection", "criteria", "recommendation",
			"best practice", "guideline", "standard", "protocol",
		),
		patterns: patternRegexps(
			`decision\s+support`,
			`assessment\s+framework`,
			`evaluation\s+criteria`,
			`best\s+practice`,
			`guidance\s+document`,
		),
		weight: 1.0,
	},
}

var technologyThemes = []themeRule{
	{
		name:     "Biochar",
		keywords: []string{"biochar", "pyrolysis", "biomass", "charcoal", "carbonization"},
		patterns: patternRegexps(`biochar\s+production`, `pyrolysis\s+process`),
	},
	{
		name:     "BECCS",
		keywords: []string{"beccs", "bioenergy", "biomass energy", "bio-energy", "ccs"},
		patterns: patternRegexps(`bioenergy\s+with\s+carbon\s+capture`, `beccs\s+system`),
	},
	{
		name:     "Direct Air Capture",
		keywords: []string{"dac", "direct air capture", "ambient air", "air capture", "sorbent"},
		patterns: patternRegexps(`direct\s+air\s+capture`, `dac\s+technology`, `ambient\s+air\s+capture`),
	},
	{
		name:     "Enhanced Weathering",
		keywords: []string{"enhanced weathering", "rock weathering", "mineral weathering", "silicate", "basalt"},
		patterns: patternRegexps(`enhanced\s+rock\s+weathering`, `mineral\s+weathering`),
	},
	{
		name:     "Peatland Restoration",
		keywords: []string{"peatland", "wetland", "bog", "marsh", "restoration", "rewetting"},
		patterns: patternRegexps(`peatland\s+restoration`, `wetland\s+restoration`),
	},
	{
		name:     "Afforestation/Reforestation",
		keywords: []string{"afforestation", "reforestation", "forest", "tree", "woodland", "plantation"},
		patterns: patternRegexps(`afforestation\s+and\s+reforestation`, `forest\s+restoration`),
	},
	{
		name:     "Ocean-based CDR",
		keywords: []string{"ocean", "marine", "seawater", "alkalinity", "blue carbon"},
		patterns: patternRegexps(`ocean\s+alkalinization`, `marine\s+carbon`, `blue\s+carbon`),
	},
	{
		name:     "Soil Carbon",
		keywords: []string{"soil carbon", "soil organic carbon", "agriculture", "farming", "cropland"},
		patterns: patternRegexps(`soil\s+carbon\s+sequestration`, `agricultural\s+carbon`),
	},
}

var crossCuttingThemes = []keywordGroup{
	{"Economics", []string{"economic", "cost", "finance", "financial", "investment", "market"}},
	{"Risk Assessment", []string{"risk", "assessment", "uncertainty", "evaluation", "analysis"}},
	{"Societal Engagement", []string{"social", "public", "community", "stakeholder", "engagement"}},
	{"Sustainability", []string{"sustainable", "sustainability", "environmental", "ecological"}},
	{"Innovation", []string{"innovation", "innovative", "novel", "breakthrough", "emerging"}},
	{"Net Zero", []string{"net zero", "net-zero", "carbon neutral", "carbon neutrality"}},
	{"Climate", []string{"climate", "climate change", "global warming", "greenhouse gas"}},
}

var typeRules = []typeRule{
	{
		name:     "policy-brief",
		keywords: []string{"policy brief", "policy-brief", "briefing", "brief"},
		patterns: patternRegexps(`policy\s+brief`, `briefing\s+paper`),
	},
	{
		name:     "report",
		keywords: []string{"report", "annual report", "summary report", "final report"},
		patterns: patternRegexps(`annual\s+report`, `final\s+report`, `summary\s+report`),
	},
	{
		name:     "workshop",
		keywords: []string{"workshop", "event", "meeting", "conference", "symposium"},
		patterns: patternRegexps(`workshop\s+report`, `event\s+summary`),
	},
	{
		name:     "publication",
		keywords: []string{"publication", "paper", "journal", "article", "study"},
		patterns: patternRegexps(`research\s+paper`, `journal\s+article`, `published\s+study`),
	},
}

var commonTags = []keywordGroup{
	{"carbon-removal", []string{"carbon removal", "cdr", "carbon dioxide removal"}},
	{"ggr", []string{"ggr", "greenhouse gas removal"}},
	{"climate", []string{"climate", "climate change"}},
	{"technology", []string{"technology", "technical", "innovation"}},
	{"research", []string{"research", "study", "analysis"}},
	{"policy", []string{"policy", "governance", "regulation"}},
	{"monitoring", []string{"monitoring", "mrv", "verification"}},
	{"sustainability", []string{"sustainable", "sustainability"}},
	{"net-zero", []string{"net zero", "net-zero", "carbon neutral"}},
	{"uk", []string{"uk", "united kingdom", "britain", "british"}},
}

var techTags = []keywordGroup{
	{"biochar", []string{"biochar", "pyrolysis"}},
	{"beccs", []string{"beccs", "bioenergy"}},
	{"dac", []string{"dac", "direct air capture"}},
	{"weathering", []string{"weathering", "mineral"}},
	{"forestry", []string{"forest", "tree", "afforestation"}},
	{"peatland", []string{"peatland", "wetland"}},
	{"ocean", []string{"ocean", "marine"}},
	{"soil", []string{"soil", "agriculture"}},
}

// Categorize assigns a category, document type, themes and tags to a
// piece of content using keyword and pattern scoring. It never fails
// and always returns non-empty themes and tags.
func Categorize(title, content, url string) Result {
	text := strings.ToLower(fmt.Sprintf("%s %s %s", title, content, url))

	category, confidence := bestCategory(text)

	return Result{
		Category:   category,
		Confidence: confidence,
		Themes:     extractThemes(text),
		Tags:       extractTags(text, title),
		Type:       determineType(text, url),
	}
}

// CategoryScores exposes the raw per-category scores, mostly for
// stats endpoints and tests.
func CategoryScores(title, content, url string) map[string]float64 {
	text := strings.ToLower(fmt.Sprintf("%s %s %s", title, content, url))
	scores := make(map[string]float64, len(categoryRules))
	for _, rule := range categoryRules {
		scores[rule.name] = scoreCategory(rule, text)
	}
	return scores
}

func scoreCategory(rule categoryRule, text string) float64 {
	var score float64
	for _, kw := range rule.keywords {
		if n := len(kw.FindAllString(text, -1)); n > 0 {
			score += float64(n) * rule.weight
		}
	}
	for _, pat := range rule.patterns {
		if n := len(pat.FindAllString(text, -1)); n > 0 {
			score += float64(n) * rule.weight * 2
		}
	}
	return score
}

func bestCategory(text string) (string, int) {
	best := "General"
	var bestScore float64

	for _, rule := range categoryRules {
		score := scoreCategory(rule, text)
		if score > bestScore {
			best = rule.name
			bestScore = score
		}
	}

	// Score-to-confidence conversion assumes ~20 is a saturated score.
	// The floor of 50 is load-bearing: relevance merging downstream
	// takes max(relevance, confidence).
	const maxPossibleScore = 20.0
	confidence := int(math.Round(bestScore / maxPossibleScore * 100))
	if confidence > 100 {
		confidence = 100
	}
	if confidence < 50 {
		confidence = 50
	}

	return best, confidence
}

func extractThemes(text string) []string {
	var themes []string

	for _, rule := range technologyThemes {
		found := false
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				found = true
				break
			}
		}
		if !found {
			for _, pat := range rule.patterns {
				if pat.MatchString(text) {
					found = true
					break
				}
			}
		}
		if found {
			themes = append(themes, rule.name)
		}
	}

	for _, group := range crossCuttingThemes {
		for _, kw := range group.keywords {
			if strings.Contains(text, kw) {
				themes = append(themes, group.name)
				break
			}
		}
	}

	if len(themes) == 0 {
		themes = append(themes, "Carbon Removal")
	}
	if len(themes) > 5 {
		themes = themes[:5]
	}
	return themes
}

func extractTags(text, title string) []string {
	titleLower := strings.ToLower(title)
	var tags []string

	for _, group := range commonTags {
		for _, kw := range group.keywords {
			if strings.Contains(text, kw) || strings.Contains(titleLower, kw) {
				tags = append(tags, group.name)
				break
			}
		}
	}

	for _, group := range techTags {
		for _, kw := range group.keywords {
			if strings.Contains(text, kw) {
				tags = append(tags, group.name)
				break
			}
		}
	}

	if len(tags) == 0 {
		tags = append(tags, "carbon-removal")
	}
	if len(tags) > 8 {
		tags = tags[:8]
	}
	return tags
}

func determineType(text, url string) string {
	// URL hints take precedence over content.
	if url != "" {
		switch {
		case strings.HasSuffix(url, ".pdf"):
			return "publication"
		case strings.Contains(url, "policy-brief"):
			return "policy-brief"
		case strings.Contains(url, "report"):
			return "report"
		case strings.Contains(url, "workshop"), strings.Contains(url, "event"):
			return "workshop"
		}
	}

	for _, rule := range typeRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.name
			}
		}
		for _, pat := range rule.patterns {
			if pat.MatchString(text) {
				return rule.name
			}
		}
	}

	return "article"
}
