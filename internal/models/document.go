package models

import "time"

// Document is a single piece of CO2RE content: a scraped web page, a
// WordPress post, or an extracted PDF publication.
type Document struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Excerpt        string    `json:"excerpt"`
	URL            string    `json:"url"`
	PDFURL         string    `json:"pdf_url,omitempty"`
	Category       string    `json:"category"`
	Type           string    `json:"type"`
	Theme          []string  `json:"theme"`
	Authors        []string  `json:"authors"`
	PublishedDate  time.Time `json:"published_date"`
	Tags           []string  `json:"tags"`
	RelevanceScore int       `json:"relevance_score"`
	DownloadCount  int       `json:"download_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Document types produced by the classifier and the pipelines.
const (
	TypePublication = "publication"
	TypePolicyBrief = "policy-brief"
	TypeReport      = "report"
	TypeArticle     = "article"
	TypeWorkshop    = "workshop"
)
