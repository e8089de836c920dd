package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/co2re/innovation-hub/internal/classify"
	"github.com/co2re/innovation-hub/internal/models"
)

const (
	wpPerPage   = 50
	wpMaxPages  = 10
	wpPageDelay = 100 * time.Millisecond
)

type wpRendered struct {
	Rendered string `json:"rendered"`
}

type wpTerm struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type wpAuthor struct {
	Name string `json:"name"`
}

// wpEmbedded carries the taxonomy and author records requested via
// _embed. wp:term index 0 holds categories, index 1 holds tags.
type wpEmbedded struct {
	Author []wpAuthor `json:"author"`
	Terms  [][]wpTerm `json:"wp:term"`
}

type wpPost struct {
	ID       int        `json:"id"`
	Date     string     `json:"date"`
	Link     string     `json:"link"`
	Title    wpRendered `json:"title"`
	Content  wpRendered `json:"content"`
	Excerpt  wpRendered `json:"excerpt"`
	Embedded wpEmbedded `json:"_embedded"`
}

// wordPressAvailable probes the WordPress REST API with a minimal
// request. Any failure means the web scraping path is used instead.
func (p *Pipeline) wordPressAvailable(ctx context.Context) bool {
	probeURL := fmt.Sprintf("%s/posts?per_page=1", p.Registry.APIBase)
	doc, err := p.Fetcher.Fetch(ctx, probeURL)
	if err != nil {
		return false
	}
	doc.Body.Close()
	return doc.StatusCode == http.StatusOK
}

// scrapeViaAPI pages through the WordPress posts endpoint. Paging
// stops on the first error, empty page, or the hard page cap.
func (p *Pipeline) scrapeViaAPI(ctx context.Context) []models.Document {
	log.Printf("[ingest] WordPress API accessible, scraping posts")

	var docs []models.Document

	for page := 1; page <= wpMaxPages; page++ {
		pagedURL := fmt.Sprintf("%s/posts?per_page=%d&page=%d&_embed=true", p.Registry.APIBase, wpPerPage, page)

		doc, err := p.Fetcher.Fetch(ctx, pagedURL)
		if err != nil {
			log.Printf("[ingest] WP page %d fetch failed: %v", page, err)
			break
		}

		body, err := io.ReadAll(doc.Body)
		doc.Body.Close()
		if err != nil {
			log.Printf("[ingest] WP page %d read failed: %v", page, err)
			break
		}

		var posts []wpPost
		if err := json.Unmarshal(body, &posts); err != nil {
			// A non-array response is usually an error object past the
			// last page.
			break
		}
		if len(posts) == 0 {
			break
		}

		for _, post := range posts {
			docs = append(docs, documentFromPost(post))
		}

		p.sleep(wpPageDelay)
	}

	log.Printf("[ingest] scraped %d documents via WordPress API", len(docs))
	return docs
}

// documentFromPost maps a WordPress post onto a document. Taxonomy
// terms take precedence; the classifier fills whatever is missing.
func documentFromPost(post wpPost) models.Document {
	title := HTMLToText(post.Title.Rendered)
	if title == "" {
		title = "Untitled"
	}

	content := HTMLToText(post.Content.Rendered)
	if content == "" {
		content = HTMLToText(post.Excerpt.Rendered)
	}

	excerpt := HTMLToText(post.Excerpt.Rendered)
	if excerpt == "" {
		excerpt = Excerpt(content)
	}

	id := DocumentID(post.Link)
	if post.ID != 0 {
		id = strconv.Itoa(post.ID)
	}

	c := classify.Categorize(title, content, post.Link)

	category := categoryFromTerms(post.Embedded.Terms)
	if category == "" {
		category = c.Category
	}

	themes := themesFromTerms(post.Embedded.Terms)
	if len(themes) == 0 {
		themes = c.Themes
	}

	tags := tagsFromTerms(post.Embedded.Terms)
	if len(tags) == 0 {
		tags = c.Tags
	}

	return models.Document{
		ID:             id,
		Title:          title,
		Content:        content,
		Excerpt:        excerpt,
		URL:            post.Link,
		Category:       category,
		Type:           models.TypeArticle,
		Theme:          themes,
		Authors:        authorsFromPost(post),
		PublishedDate:  parseWPDate(post.Date),
		Tags:           tags,
		RelevanceScore: relevanceScore(content, title),
	}
}

// categoryFromTerms maps the first WordPress category name onto a hub
// category, or returns "" if nothing matches.
func categoryFromTerms(terms [][]wpTerm) string {
	if len(terms) == 0 || len(terms[0]) == 0 {
		return ""
	}
	name := terms[0][0].Name
	switch {
	case strings.Contains(name, "Policy"):
		return "Policy & Governance"
	case strings.Contains(name, "MRV"):
		return "MRV & Monitoring"
	case strings.Contains(name, "Research"):
		return "Technical Research"
	}
	return ""
}

func themesFromTerms(terms [][]wpTerm) []string {
	if len(terms) < 2 || len(terms[1]) == 0 {
		return nil
	}
	var themes []string
	for _, t := range terms[1] {
		themes = append(themes, t.Name)
		if len(themes) == 3 {
			break
		}
	}
	return themes
}

func tagsFromTerms(terms [][]wpTerm) []string {
	if len(terms) < 2 || len(terms[1]) == 0 {
		return nil
	}
	var tags []string
	for _, t := range terms[1] {
		tags = append(tags, t.Slug)
		if len(tags) == 5 {
			break
		}
	}
	return tags
}

func authorsFromPost(post wpPost) []string {
	if len(post.Embedded.Author) > 0 && post.Embedded.Author[0].Name != "" {
		return []string{post.Embedded.Author[0].Name}
	}
	return []string{"CO2RE Team"}
}

func parseWPDate(dateStr string) time.Time {
	// WordPress REST API default date format: YYYY-MM-DDTHH:MM:SS
	t, err := time.Parse("2006-01-02T15:04:05", dateStr)
	if err != nil {
		return time.Now().UTC()
	}
	return t
}
