package ingest

import (
	"strings"
	"time"

	"github.com/co2re/innovation-hub/internal/models"
)

func isoDate(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Now().UTC()
	}
	return t
}

// funderSlug turns an organization name into a stable ID fragment.
func funderSlug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// mockAmount returns the curated fund size for known organizations.
func mockAmount(orgName, funderType string) string {
	amounts := map[string]string{
		"Counteract VC":                "$50M fund",
		"Carbon Removal Partners":      "$100M+ AUM",
		"Zero Carbon Capital":          "€75M fund",
		"Balderton Capital":            "$3B+ AUM",
		"Oxford Science Enterprises":   "£500M+ AUM",
		"Aster Capital":                "€200M fund",
		"Impact X Capital":             "£100M fund",
		"Breakthrough Energy Ventures": "$2B+ fund",
		"SYSTEMIQ Capital":             "£50M-£500M",
		"Pale Blue Dot":                "€100M fund",
		"Clean Growth Fund":            "£40M fund",
		"Lowercarbon Capital":          "$350M fund",
		"Grantham Foundation":          "$1M-$10M grants",
		"ClimateWorks Foundation":      "$5M-$50M grants",
		"Bezos Earth Fund":             "$10B commitment",
		"Frontier Climate":             "$925M commitment",
		"XPRIZE Carbon Removal":        "$100M prize",
	}

	if amount, ok := amounts[orgName]; ok {
		return amount
	}
	if funderType == "vc" {
		return "$10M-$100M"
	}
	return "$1M-$10M"
}

func mockRequirements(funderType string) []string {
	switch funderType {
	case "vc":
		return []string{"Scalable technology", "Strong team", "Clear market opportunity", "Climate impact"}
	case "philanthropy":
		return []string{"Non-profit or research focus", "Clear climate impact", "Measurable outcomes"}
	default:
		return []string{"Innovation focus", "UK/EU eligibility", "Technical feasibility"}
	}
}

func mockStage(funderType string) []string {
	if funderType == "vc" {
		return []string{"Seed", "Series A", "Series B"}
	}
	return []string{"Research", "Development", "Pilot", "Scale-up"}
}

var (
	ukFocusedFunders = []string{"Clean Growth Fund", "Oxford Science Enterprises", "SYSTEMIQ Capital", "Carbon Trust", "Impact X Capital"}
	euFocusedFunders = []string{"Pale Blue Dot", "Zero Carbon Capital", "Aster Capital"}
	globalFunders    = []string{"Breakthrough Energy Ventures", "Bezos Earth Fund", "ClimateWorks Foundation", "Frontier Climate", "Counteract VC", "Carbon Removal Partners"}
)

func mockGeography(orgName string) []string {
	for _, name := range ukFocusedFunders {
		if name == orgName {
			return []string{"United Kingdom", "Europe"}
		}
	}
	for _, name := range euFocusedFunders {
		if name == orgName {
			return []string{"Europe"}
		}
	}
	for _, name := range globalFunders {
		if name == orgName {
			return []string{"Global"}
		}
	}
	return []string{"United Kingdom", "Europe", "United States"}
}

func mockInvestments(orgName string) []string {
	investments := map[string][]string{
		"Counteract VC":                {"Charm Industrial", "Heirloom Carbon", "Running Tide"},
		"Carbon Removal Partners":      {"Climeworks", "Carbon Engineering", "Orca Carbon"},
		"Zero Carbon Capital":          {"Planetary Technologies", "Carbfix", "Climeworks"},
		"Balderton Capital":            {"Revolut", "Citymapper", "GoCardless"},
		"Oxford Science Enterprises":   {"Oxford PV", "Nexeon", "Ceres Power"},
		"Aster Capital":                {"Sunfire", "Carbios", "Econic Technologies"},
		"Impact X Capital":             {"Zopa", "Monzo", "Starling Bank"},
		"Breakthrough Energy Ventures": {"Climeworks", "Carbon Engineering", "Heirloom Carbon"},
		"SYSTEMIQ Capital":             {"Orca Carbon", "Planetary Technologies"},
		"Pale Blue Dot":                {"Climeworks", "Carbfix", "Planetary Technologies"},
		"Clean Growth Fund":            {"Carbon Clean Solutions", "Econic Technologies"},
		"Lowercarbon Capital":          {"Charm Industrial", "Heirloom Carbon", "Running Tide"},
	}

	if list, ok := investments[orgName]; ok {
		return list
	}
	return []string{"Various climate tech companies"}
}

// fallbackFunder builds the curated record for a registry funder,
// used when live scraping of its site fails.
func fallbackFunder(src FunderConfig) models.FundingOpportunity {
	deadline := "Check website"
	if src.Type == "vc" {
		deadline = "Rolling applications"
	}

	return models.FundingOpportunity{
		ID:                funderSlug(src.Name) + "-fallback",
		Title:             src.Name + " - " + src.Focus,
		Organization:      src.Name,
		Type:              src.Type,
		Amount:            mockAmount(src.Name, src.Type),
		Deadline:          deadline,
		Description:       src.Description,
		Requirements:      mockRequirements(src.Type),
		Website:           src.URL,
		FocusAreas:        []string{src.Focus, "Carbon removal", "Climate tech"},
		Stage:             mockStage(src.Type),
		Location:          strings.Join(mockGeography(src.Name), ", "),
		RecentInvestments: mockInvestments(src.Name),
		InvestmentThesis:  "Focused on " + strings.ToLower(src.Focus) + " and climate solutions",
		MatchScore:        85,
		IsActive:          true,
		LastUpdated:       time.Now().UTC(),
	}
}

// CuratedFunding returns the hand-maintained grant, philanthropy, VC
// and competition entries that every funding run includes.
func CuratedFunding() []models.FundingOpportunity {
	now := time.Now().UTC()

	return []models.FundingOpportunity{
		{
			ID:           "innovate-uk-net-zero",
			Title:        "Net Zero Innovation Portfolio",
			Organization: "Innovate UK",
			Type:         "grant",
			Amount:       "£1M - £5M",
			Deadline:     "2024-03-15",
			Description:  "Supporting breakthrough technologies for net zero, including direct air capture and carbon removal solutions.",
			Requirements: []string{"UK-based company", "Technology readiness level 4-7", "Clear path to commercialization"},
			Website:      "https://www.ukri.org/opportunity/net-zero-innovation-portfolio/",
			FocusAreas:   []string{"Direct Air Capture", "BECCS", "Enhanced Weathering", "Ocean CDR"},
			Stage:        []string{"Series A", "Series B", "Growth"},
			Location:     "United Kingdom",
			IsActive:     true,
			LastUpdated:  now,
		},
		{
			ID:           "ukri-climate-resilience",
			Title:        "UKRI Climate Resilience Programme",
			Organization: "UKRI",
			Type:         "grant",
			Amount:       "£500K - £2M",
			Deadline:     "2024-04-30",
			Description:  "Research and innovation in climate adaptation and carbon removal technologies.",
			Requirements: []string{"Academic-industry collaboration", "UK research institution involvement"},
			Website:      "https://www.ukri.org/what-we-offer/browse-our-areas-of-investment-and-support/climate-resilience/",
			FocusAreas:   []string{"Research & Development", "Pilot Projects", "Technology Validation"},
			Stage:        []string{"Pre-seed", "Seed"},
			Location:     "United Kingdom",
			IsActive:     true,
			LastUpdated:  now,
		},
		{
			ID:           "climateworks-cdr",
			Title:        "ClimateWorks Carbon Removal Initiative",
			Organization: "ClimateWorks Foundation",
			Type:         "philanthropy",
			Amount:       "$100K - $1M",
			Description:  "Supporting early-stage carbon removal technologies and policy development.",
			Requirements: []string{"Scalable technology", "Clear impact measurement", "Cost reduction pathway"},
			Website:      "https://www.climateworks.org/programs/carbon-removal/",
			FocusAreas:   []string{"Direct Air Capture", "Biomass CDR", "Ocean CDR", "Policy Development"},
			Stage:        []string{"Pre-seed", "Seed", "Series A"},
			Location:     "Global (UK eligible)",
			IsActive:     true,
			LastUpdated:  now,
		},
		{
			ID:           "breakthrough-energy",
			Title:        "Breakthrough Energy Ventures",
			Organization: "Breakthrough Energy",
			Type:         "philanthropy",
			Amount:       "$1M - $10M",
			Description:  "Patient capital for breakthrough energy technologies including carbon removal.",
			Requirements: []string{"Breakthrough technology", "Significant climate impact potential", "Strong team"},
			Website:      "https://www.breakthroughenergy.org/investing-in-innovation/breakthrough-energy-ventures",
			FocusAreas:   []string{"Direct Air Capture", "Industrial CDR", "Novel Approaches"},
			Stage:        []string{"Series A", "Series B", "Growth"},
			Location:     "Global (UK eligible)",
			IsActive:     true,
			LastUpdated:  now,
		},
		{
			ID:           "systemiq-capital",
			Title:        "SYSTEMIQ Capital",
			Organization: "SYSTEMIQ",
			Type:         "vc",
			Amount:       "£500K - £5M",
			Description:  "Investing in systems change solutions including carbon removal and circular economy.",
			Requirements: []string{"UK/EU based", "Systems-level impact", "Scalable business model"},
			Website:      "https://www.systemiq.earth/systemiq-capital/",
			ContactEmail: "capital@systemiq.earth",
			FocusAreas:   []string{"Carbon Removal", "Circular Economy", "Nature-based Solutions"},
			Stage:        []string{"Seed", "Series A"},
			Location:     "United Kingdom",
			IsActive:     true,
			LastUpdated:  now,
		},
		{
			ID:           "pale-blue-dot",
			Title:        "Pale Blue Dot",
			Organization: "Pale Blue Dot",
			Type:         "vc",
			Amount:       "£1M - £10M",
			Description:  "Climate tech VC focused on breakthrough technologies including carbon removal.",
			Requirements: []string{"Deep tech", "Climate impact", "Strong IP position"},
			Website:      "https://www.palebluedot.vc/",
			FocusAreas:   []string{"Direct Air Capture", "Industrial Decarbonization", "Energy Storage"},
			Stage:        []string{"Series A", "Series B"},
			Location:     "United Kingdom",
			IsActive:     true,
			LastUpdated:  now,
		},
		{
			ID:           "clean-growth-fund",
			Title:        "Clean Growth Fund",
			Organization: "CCLA Investment Management",
			Type:         "vc",
			Amount:       "£2M - £15M",
			Description:  "Growth capital for clean technology companies including carbon management solutions.",
			Requirements: []string{"Revenue generating", "Clear growth trajectory", "UK operations"},
			Website:      "https://www.ccla.co.uk/our-funds/clean-growth-fund",
			FocusAreas:   []string{"Carbon Management", "Clean Energy", "Resource Efficiency"},
			Stage:        []string{"Series B", "Growth", "Pre-IPO"},
			Location:     "United Kingdom",
			IsActive:     true,
			LastUpdated:  now,
		},
		{
			ID:           "ip-group-cleantech",
			Title:        "IP Group CleanTech",
			Organization: "IP Group",
			Type:         "vc",
			Amount:       "£500K - £5M",
			Description:  "University spinout investor with focus on clean technologies and carbon solutions.",
			Requirements: []string{"University spinout", "Strong IP", "Academic collaboration"},
			Website:      "https://www.ipgroupplc.com/sectors/cleantech",
			FocusAreas:   []string{"University Spinouts", "Deep Tech", "Carbon Technologies"},
			Stage:        []string{"Pre-seed", "Seed", "Series A"},
			Location:     "United Kingdom",
			IsActive:     true,
			LastUpdated:  now,
		},
		{
			ID:           "xprize-carbon-removal",
			Title:        "XPRIZE Carbon Removal",
			Organization: "XPRIZE Foundation",
			Type:         "competition",
			Amount:       "$1M - $50M",
			Deadline:     "2025-04-22",
			Description:  "Global competition to develop carbon removal solutions that scale to gigatonne levels.",
			Requirements: []string{"Demonstrate 1000 tonnes CO2 removal", "Path to gigatonne scale", "Durable storage"},
			Website:      "https://www.xprize.org/prizes/carbonremoval",
			FocusAreas:   []string{"Direct Air Capture", "Ocean CDR", "Biomass CDR", "Mineralization"},
			Stage:        []string{"All stages"},
			Location:     "Global (UK eligible)",
			IsActive:     true,
			LastUpdated:  now,
		},
		{
			ID:           "carbon-trust-innovation",
			Title:        "Carbon Trust Innovation Programme",
			Organization: "Carbon Trust",
			Type:         "grant",
			Amount:       "£50K - £500K",
			Description:  "Supporting early-stage clean technology innovation including carbon removal.",
			Requirements: []string{"UK company", "Novel technology", "Commercial potential"},
			Website:      "https://www.carbontrust.com/what-we-do/accelerating-low-carbon-innovation",
			FocusAreas:   []string{"Early Stage Innovation", "Technology Development", "Market Validation"},
			Stage:        []string{"Pre-seed", "Seed"},
			Location:     "United Kingdom",
			IsActive:     true,
			LastUpdated:  now,
		},
	}
}

// FallbackDocuments is the curated CO2RE document set used when both
// ingestion paths come back empty. URLs are real site pages.
func FallbackDocuments() []models.Document {
	return []models.Document{
		{
			ID:             "co2re_about",
			Title:          "About CO2RE - Carbon Dioxide Removal Research",
			Content:        "CO2RE is a research programme that brings together researchers from across the UK to advance the evidence base for carbon dioxide removal (CDR). The programme focuses on greenhouse gas removal (GGR) technologies and their potential role in achieving net-zero emissions.",
			Excerpt:        "CO2RE brings together UK researchers to advance carbon dioxide removal evidence base.",
			URL:            "https://co2re.org/about/",
			Category:       "General",
			Type:           models.TypeArticle,
			Theme:          []string{"Carbon Removal", "Research"},
			Authors:        []string{"CO2RE Team"},
			PublishedDate:  isoDate("2024-01-15T00:00:00Z"),
			Tags:           []string{"about", "research", "carbon-removal", "ggr"},
			RelevanceScore: 95,
		},
		{
			ID:             "co2re_research",
			Title:          "CO2RE Research Programme Overview",
			Content:        "The CO2RE research programme focuses on advancing understanding of carbon dioxide removal technologies and their implementation. Research themes include policy and governance, societal engagement, MRV, and synthesis across different GGR approaches.",
			Excerpt:        "Overview of CO2RE research programme focusing on CDR technologies and implementation.",
			URL:            "https://co2re.org/research/",
			Category:       "Technical Research",
			Type:           models.TypeArticle,
			Theme:          []string{"Research", "Technology", "GGR"},
			Authors:        []string{"CO2RE Research Team"},
			PublishedDate:  isoDate("2024-02-01T00:00:00Z"),
			Tags:           []string{"research", "technology", "programme", "ggr"},
			RelevanceScore: 92,
		},
		{
			ID:             "co2re_policy_governance",
			Title:          "Policy & Governance for Carbon Removal",
			Content:        "Research into policy frameworks, governance structures, and regulatory approaches for carbon dioxide removal technologies. Includes analysis of policy instruments, institutional arrangements, and governance challenges.",
			Excerpt:        "Research into policy frameworks and governance structures for CDR technologies.",
			URL:            "https://co2re.org/research/policy-governance/",
			Category:       "Policy & Governance",
			Type:           models.TypeArticle,
			Theme:          []string{"Policy & Governance", "Regulation"},
			Authors:        []string{"CO2RE Policy Team"},
			PublishedDate:  isoDate("2024-01-20T00:00:00Z"),
			Tags:           []string{"policy", "governance", "regulation", "framework"},
			RelevanceScore: 88,
		},
		{
			ID:             "co2re_mrv",
			Title:          "MRV for Carbon Removal Technologies",
			Content:        "Monitoring, Reporting, and Verification (MRV) approaches for carbon dioxide removal. Research covers measurement methodologies, verification protocols, and reporting standards for different GGR technologies.",
			Excerpt:        "MRV approaches and methodologies for carbon dioxide removal technologies.",
			URL:            "https://co2re.org/research/mrv/",
			Category:       "MRV & Monitoring",
			Type:           models.TypeArticle,
			Theme:          []string{"MRV", "Monitoring", "Verification"},
			Authors:        []string{"CO2RE MRV Team"},
			PublishedDate:  isoDate("2024-01-25T00:00:00Z"),
			Tags:           []string{"mrv", "monitoring", "verification", "measurement"},
			RelevanceScore: 90,
		},
		{
			ID:             "co2re_societal_engagement",
			Title:          "Societal Engagement in Carbon Removal",
			Content:        "Research into public perceptions, social acceptance, and community engagement with carbon removal technologies. Includes stakeholder analysis and participatory research approaches.",
			Excerpt:        "Research into public perceptions and social acceptance of carbon removal technologies.",
			URL:            "https://co2re.org/research/societal-engagement/",
			Category:       "Technical Research",
			Type:           models.TypeArticle,
			Theme:          []string{"Societal Engagement", "Public Perception"},
			Authors:        []string{"CO2RE Social Research Team"},
			PublishedDate:  isoDate("2024-02-05T00:00:00Z"),
			Tags:           []string{"social", "engagement", "public", "stakeholder"},
			RelevanceScore: 85,
		},
		{
			ID:             "co2re_biochar",
			Title:          "Biochar for Carbon Removal",
			Content:        "Research into biochar production, application, and carbon sequestration potential. Covers feedstock selection, pyrolysis processes, soil application, and long-term carbon storage verification.",
			Excerpt:        "Research into biochar production and carbon sequestration potential.",
			URL:            "https://co2re.org/research/biochar/",
			Category:       "Technical Research",
			Type:           models.TypeArticle,
			Theme:          []string{"Biochar", "Pyrolysis", "Soil Carbon"},
			Authors:        []string{"CO2RE Biochar Team"},
			PublishedDate:  isoDate("2024-01-30T00:00:00Z"),
			Tags:           []string{"biochar", "pyrolysis", "soil", "sequestration"},
			RelevanceScore: 93,
		},
		{
			ID:             "co2re_beccs",
			Title:          "BECCS - Bioenergy with Carbon Capture and Storage",
			Content:        "Research into bioenergy with carbon capture and storage (BECCS) systems. Covers biomass feedstocks, energy conversion technologies, carbon capture processes, and storage solutions.",
			Excerpt:        "Research into BECCS systems and bioenergy with carbon capture technologies.",
			URL:            "https://co2re.org/research/beccs/",
			Category:       "Technical Research",
			Type:           models.TypeArticle,
			Theme:          []string{"BECCS", "Bioenergy", "Carbon Capture"},
			Authors:        []string{"CO2RE BECCS Team"},
			PublishedDate:  isoDate("2024-02-10T00:00:00Z"),
			Tags:           []string{"beccs", "bioenergy", "capture", "storage"},
			RelevanceScore: 91,
		},
		{
			ID:             "co2re_dac",
			Title:          "Direct Air Capture Technologies",
			Content:        "Research into direct air capture (DAC) technologies for removing CO2 from ambient air. Covers sorbent materials, process design, energy requirements, and system integration.",
			Excerpt:        "Research into direct air capture technologies and CO2 removal from ambient air.",
			URL:            "https://co2re.org/research/direct-air-capture/",
			Category:       "Technical Research",
			Type:           models.TypeArticle,
			Theme:          []string{"Direct Air Capture", "DAC", "Sorbents"},
			Authors:        []string{"CO2RE DAC Team"},
			PublishedDate:  isoDate("2024-02-15T00:00:00Z"),
			Tags:           []string{"dac", "direct-air-capture", "sorbent", "ambient"},
			RelevanceScore: 89,
		},
		{
			ID:             "co2re_enhanced_weathering",
			Title:          "Enhanced Rock Weathering for Carbon Removal",
			Content:        "Research into enhanced rock weathering as a carbon removal approach. Covers mineral selection, application methods, weathering rates, and environmental impacts.",
			Excerpt:        "Research into enhanced rock weathering for carbon dioxide removal.",
			URL:            "https://co2re.org/research/enhanced-rock-weathering/",
			Category:       "Technical Research",
			Type:           models.TypeArticle,
			Theme:          []string{"Enhanced Weathering", "Minerals", "Geochemistry"},
			Authors:        []string{"CO2RE Weathering Team"},
			PublishedDate:  isoDate("2024-02-20T00:00:00Z"),
			Tags:           []string{"weathering", "minerals", "geochemistry", "rocks"},
			RelevanceScore: 87,
		},
		{
			ID:             "co2re_peatland",
			Title:          "Peatland Restoration for Carbon Storage",
			Content:        "Research into peatland restoration and management for carbon sequestration. Covers restoration techniques, carbon dynamics, biodiversity impacts, and monitoring approaches.",
			Excerpt:        "Research into peatland restoration and carbon sequestration potential.",
			URL:            "https://co2re.org/research/peatland-restoration/",
			Category:       "Technical Research",
			Type:           models.TypeArticle,
			Theme:          []string{"Peatland Restoration", "Wetlands", "Ecosystem"},
			Authors:        []string{"CO2RE Peatland Team"},
			PublishedDate:  isoDate("2024-02-25T00:00:00Z"),
			Tags:           []string{"peatland", "restoration", "wetland", "ecosystem"},
			RelevanceScore: 86,
		},
		{
			ID:             "co2re_afforestation",
			Title:          "Afforestation and Reforestation for Carbon Removal",
			Content:        "Research into afforestation and reforestation approaches for carbon sequestration. Covers species selection, planting strategies, growth monitoring, and long-term carbon storage.",
			Excerpt:        "Research into afforestation and reforestation for carbon sequestration.",
			URL:            "https://co2re.org/research/afforestation-reforestation/",
			Category:       "Technical Research",
			Type:           models.TypeArticle,
			Theme:          []string{"Afforestation/Reforestation", "Forestry", "Trees"},
			Authors:        []string{"CO2RE Forestry Team"},
			PublishedDate:  isoDate("2024-03-01T00:00:00Z"),
			Tags:           []string{"afforestation", "reforestation", "forestry", "trees"},
			RelevanceScore: 84,
		},
		{
			ID:             "co2re_publications",
			Title:          "CO2RE Publications and Resources",
			Content:        "Access to CO2RE publications, reports, and research outputs covering various aspects of carbon dioxide removal. Includes policy briefs, technical reports, and academic publications.",
			Excerpt:        "Access to CO2RE publications and research outputs on carbon dioxide removal.",
			URL:            "https://co2re.org/publications/",
			Category:       "General",
			Type:           models.TypeArticle,
			Theme:          []string{"Publications", "Resources"},
			Authors:        []string{"CO2RE Team"},
			PublishedDate:  isoDate("2024-01-20T00:00:00Z"),
			Tags:           []string{"publications", "resources", "reports", "briefs"},
			RelevanceScore: 88,
		},
		{
			ID:             "co2re_synthesis",
			Title:          "Synthesis Research Across GGR Technologies",
			Content:        "Cross-cutting synthesis research comparing different greenhouse gas removal technologies. Includes comparative assessments, integration studies, and portfolio approaches.",
			Excerpt:        "Synthesis research comparing and integrating different GGR technologies.",
			URL:            "https://co2re.org/research/synthesis/",
			Category:       "Technical Research",
			Type:           models.TypeArticle,
			Theme:          []string{"Synthesis", "Comparative Analysis", "Integration"},
			Authors:        []string{"CO2RE Synthesis Team"},
			PublishedDate:  isoDate("2024-03-05T00:00:00Z"),
			Tags:           []string{"synthesis", "comparison", "integration", "portfolio"},
			RelevanceScore: 92,
		},
		{
			ID:             "co2re_news",
			Title:          "CO2RE News and Updates",
			Content:        "Latest news, updates, and announcements from the CO2RE research programme. Includes research highlights, event announcements, and programme developments.",
			Excerpt:        "Latest news and updates from the CO2RE research programme.",
			URL:            "https://co2re.org/news/",
			Category:       "General",
			Type:           models.TypeArticle,
			Theme:          []string{"News", "Updates"},
			Authors:        []string{"CO2RE Communications Team"},
			PublishedDate:  isoDate("2024-03-10T00:00:00Z"),
			Tags:           []string{"news", "updates", "announcements", "highlights"},
			RelevanceScore: 75,
		},
		{
			ID:             "co2re_events",
			Title:          "CO2RE Events and Workshops",
			Content:        "Information about CO2RE events, workshops, conferences, and training opportunities. Includes past and upcoming events related to carbon removal research.",
			Excerpt:        "Information about CO2RE events, workshops, and training opportunities.",
			URL:            "https://co2re.org/events/",
			Category:       "General",
			Type:           models.TypeWorkshop,
			Theme:          []string{"Events", "Workshops", "Training"},
			Authors:        []string{"CO2RE Events Team"},
			PublishedDate:  isoDate("2024-03-15T00:00:00Z"),
			Tags:           []string{"events", "workshops", "conferences", "training"},
			RelevanceScore: 78,
		},
		{
			ID:             "co2re_people",
			Title:          "CO2RE Research Team and Network",
			Content:        "Information about the CO2RE research team, principal investigators, and research network. Includes researcher profiles and institutional affiliations.",
			Excerpt:        "Information about the CO2RE research team and network.",
			URL:            "https://co2re.org/people/",
			Category:       "General",
			Type:           models.TypeArticle,
			Theme:          []string{"Research Team", "Network"},
			Authors:        []string{"CO2RE Team"},
			PublishedDate:  isoDate("2024-03-20T00:00:00Z"),
			Tags:           []string{"people", "team", "researchers", "network"},
			RelevanceScore: 80,
		},
	}
}
