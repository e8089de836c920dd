package models

import "time"

// FundingOpportunity is a grant, VC fund, philanthropy programme or
// competition relevant to carbon removal ventures.
type FundingOpportunity struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Organization      string    `json:"organization"`
	Type              string    `json:"type"` // grant, vc, philanthropy, competition
	Amount            string    `json:"amount"`
	Deadline          string    `json:"deadline,omitempty"`
	Description       string    `json:"description"`
	Requirements      []string  `json:"requirements"`
	Website           string    `json:"website"`
	ContactEmail      string    `json:"contact_email,omitempty"`
	FocusAreas        []string  `json:"focus_areas"`
	Stage             []string  `json:"stage"`
	Location          string    `json:"location"`
	RecentInvestments []string  `json:"recent_investments,omitempty"`
	InvestmentThesis  string    `json:"investment_thesis,omitempty"`
	MatchScore        int       `json:"match_score"`
	IsActive          bool      `json:"is_active"`
	LastUpdated       time.Time `json:"last_updated"`
	CreatedAt         time.Time `json:"created_at"`
}

// MatchProfile describes a venture looking for funding. Scores are
// computed against it by the match scorer.
type MatchProfile struct {
	Stage                 string   `json:"stage"`
	FocusAreas            []string `json:"focus_areas"`
	PreferredFundingTypes []string `json:"preferred_funding_types"`
}
