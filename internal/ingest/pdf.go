package ingest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	rpdf "rsc.io/pdf"
)

// extractPDFText pulls the text layer out of a PDF. The parser panics
// on malformed files, so the panic is converted into an error here.
func extractPDFText(content []byte) (text string, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("pdf parser panic: %v", recovered)
			text = ""
		}
	}()

	reader, err := rpdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	for pageIndex := 1; pageIndex <= reader.NumPage(); pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		for _, fragment := range page.Content().Text {
			builder.WriteString(fragment.S)
			builder.WriteString(" ")
		}
		builder.WriteString("\n")
	}

	return builder.String(), nil
}

// FetchPDFText downloads a PDF and returns its extracted text.
func FetchPDFText(ctx context.Context, f Fetcher, pdfURL string) (string, error) {
	doc, err := f.Fetch(ctx, pdfURL)
	if err != nil {
		return "", err
	}
	defer doc.Body.Close()

	content, err := io.ReadAll(doc.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read PDF body: %w", err)
	}

	text, err := extractPDFText(content)
	if err != nil {
		return "", err
	}

	return cleanText(sanitizeUTF8(text)), nil
}
