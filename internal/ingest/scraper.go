package ingest

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParsePage extracts the title, readable text, and outbound links from
// an HTML page. Link URLs are resolved against the page URL.
func ParsePage(pageURL string, r io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid page URL: %w", err)
	}

	page := &Page{
		URL:   pageURL,
		Title: cleanText(doc.Find("title").First().Text()),
	}

	// Navigation and boilerplate drown out the content text.
	doc.Find("script, style, nav, header, footer").Remove()
	page.Text = cleanText(doc.Find("body").Text())
	if page.Text == "" {
		page.Text = cleanText(doc.Text())
	}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || href == "" {
			return
		}
		resolved, err := base.Parse(href)
		if err != nil {
			return
		}
		if resolved.Scheme != "http" && resolved.Scheme != "https" {
			// Keep mailto: and javascript: links out but preserve the
			// raw href so downstream filters can reject them by name.
			page.Links = append(page.Links, Link{URL: href, Text: cleanText(sel.Text())})
			return
		}
		page.Links = append(page.Links, Link{URL: resolved.String(), Text: cleanText(sel.Text())})
	})

	return page, nil
}

// FetchPage fetches a URL and parses it as HTML.
func FetchPage(ctx context.Context, f Fetcher, pageURL string) (*Page, error) {
	doc, err := f.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	defer doc.Body.Close()

	return ParsePage(pageURL, doc.Body)
}

// firstPDFLink returns the first CO2RE-hosted PDF link on a page.
func firstPDFLink(page *Page) string {
	for _, link := range page.Links {
		if strings.HasSuffix(link.URL, ".pdf") && strings.Contains(link.URL, "co2re.org") {
			return link.URL
		}
	}
	return ""
}
