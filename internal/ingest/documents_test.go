package ingest

import (
	"context"
	"strings"
	"testing"
)

func TestDocumentID(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://co2re.org/research/biochar/", "co2re_biochar"},
		{"https://co2re.org/about/", "co2re_about"},
		{"https://co2re.org/wp-content/uploads/My-Report_v2.pdf", "co2re_My_Report_v2_pdf"},
	}
	for _, tc := range cases {
		if got := DocumentID(tc.url); got != tc.want {
			t.Errorf("DocumentID(%s) = %q, want %q", tc.url, got, tc.want)
		}
	}
}

func TestDocumentIDRandomFallback(t *testing.T) {
	got := DocumentID("")
	if !strings.HasPrefix(got, "co2re_") || len(got) <= len("co2re_") {
		t.Errorf("DocumentID(\"\") = %q, want random co2re_ id", got)
	}
}

func TestScrapeViaWebBuildsDocumentFromPage(t *testing.T) {
	html := `<html><head><title>Biochar Research | CO2RE</title></head><body>
		<nav>Menu stuff</nav>
		<p>CO2RE research into biochar production and carbon removal policy in the UK.</p>
		<p>Author: Dr Alice Smith. More text follows.</p>
		<a href="/wp-content/uploads/biochar-brief.pdf">Download the brief</a>
	</body></html>`

	fetcher := &stubFetcher{pages: map[string]string{
		"https://co2re.org/research/biochar/": html,
	}}
	p, _ := testPipeline(t, fetcher)

	docs := p.scrapeViaWeb(context.Background())
	if len(docs) != 1 {
		t.Fatalf("got %d docs, want 1", len(docs))
	}

	doc := docs[0]
	if doc.ID != "co2re_biochar" {
		t.Errorf("id = %q, want co2re_biochar", doc.ID)
	}
	// Title and category come from the page registry, not the HTML.
	if doc.Title != "Biochar Research" {
		t.Errorf("title = %q, want Biochar Research", doc.Title)
	}
	if doc.Category != "Technical Research" {
		t.Errorf("category = %q, want Technical Research", doc.Category)
	}
	if doc.PDFURL != "https://co2re.org/wp-content/uploads/biochar-brief.pdf" {
		t.Errorf("pdf url = %q", doc.PDFURL)
	}
	if len(doc.Authors) != 1 || doc.Authors[0] != "Dr Alice Smith" {
		t.Errorf("authors = %v, want [Dr Alice Smith]", doc.Authors)
	}
	if strings.Contains(doc.Content, "Menu stuff") {
		t.Errorf("navigation text leaked into content: %q", doc.Content)
	}
}

func TestScrapeDocumentsUsesWordPressWhenAvailable(t *testing.T) {
	post := `[{
		"id": 123,
		"date": "2024-05-01T10:00:00",
		"link": "https://co2re.org/2024/05/biochar-update/",
		"title": {"rendered": "Biochar <b>Update</b>"},
		"content": {"rendered": "<p>New biochar research on carbon removal policy.</p>"},
		"excerpt": {"rendered": "<p>Short summary.</p>"},
		"_embedded": {
			"author": [{"name": "Jane Doe"}],
			"wp:term": [
				[{"name": "Research News", "slug": "research-news"}],
				[{"name": "Biochar", "slug": "biochar"}]
			]
		}
	}]`

	fetcher := &stubFetcher{pages: map[string]string{
		"https://co2re.org/wp-json/wp/v2/posts?per_page=1":                "[]",
		"https://co2re.org/wp-json/wp/v2/posts?per_page=50&page=1&_embed=true": post,
		"https://co2re.org/wp-json/wp/v2/posts?per_page=50&page=2&_embed=true": "[]",
	}}
	p, _ := testPipeline(t, fetcher)

	docs := p.scrapeDocuments(context.Background())
	if len(docs) != 1 {
		t.Fatalf("got %d docs, want 1", len(docs))
	}

	doc := docs[0]
	if doc.ID != "123" {
		t.Errorf("id = %q, want 123", doc.ID)
	}
	if doc.Title != "Biochar Update" {
		t.Errorf("title = %q, want Biochar Update", doc.Title)
	}
	if doc.Category != "Technical Research" {
		t.Errorf("category = %q, want Technical Research (from wp:term)", doc.Category)
	}
	if len(doc.Authors) != 1 || doc.Authors[0] != "Jane Doe" {
		t.Errorf("authors = %v, want [Jane Doe]", doc.Authors)
	}
	if len(doc.Theme) != 1 || doc.Theme[0] != "Biochar" {
		t.Errorf("themes = %v, want [Biochar]", doc.Theme)
	}
	if doc.PublishedDate.Year() != 2024 || doc.PublishedDate.Month() != 5 {
		t.Errorf("published date = %v, want May 2024", doc.PublishedDate)
	}
}

func TestParsePageResolvesRelativeLinks(t *testing.T) {
	html := `<html><body><a href="/publication/report-one/">A long publication title</a></body></html>`
	page, err := ParsePage("https://co2re.org/publications/", strings.NewReader(html))
	if err != nil {
		t.Fatalf("ParsePage: %v", err)
	}
	if len(page.Links) != 1 {
		t.Fatalf("got %d links, want 1", len(page.Links))
	}
	if page.Links[0].URL != "https://co2re.org/publication/report-one/" {
		t.Errorf("link = %q", page.Links[0].URL)
	}
}
