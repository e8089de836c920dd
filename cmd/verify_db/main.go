package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/co2re/innovation-hub/internal/db"
)

func main() {
	ctx := context.Background()
	pool, err := db.Connect(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	rows, err := pool.Query(ctx, `
		SELECT id, title, category, type, relevance_score, updated_at
		FROM documents
		ORDER BY relevance_score DESC, updated_at DESC
		LIMIT 20
	`)
	if err != nil {
		log.Fatal(err)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Documents")
	t.AppendHeader(table.Row{"ID", "Title", "Category", "Type", "Relevance", "Updated"})
	for rows.Next() {
		var id, title, category, docType string
		var relevance int
		var updatedAt time.Time
		if err := rows.Scan(&id, &title, &category, &docType, &relevance, &updatedAt); err != nil {
			log.Printf("Scan error: %v", err)
			continue
		}
		if len(title) > 45 {
			title = title[:42] + "..."
		}
		t.AppendRow(table.Row{id, title, category, docType, relevance, updatedAt.Format("2006-01-02")})
	}
	rows.Close()
	t.Render()

	rows, err = pool.Query(ctx, `
		SELECT id, organization, type, amount, match_score, last_updated
		FROM funding_opportunities
		WHERE is_active = true
		ORDER BY match_score DESC, last_updated DESC
		LIMIT 20
	`)
	if err != nil {
		log.Fatal(err)
	}

	f := table.NewWriter()
	f.SetOutputMirror(os.Stdout)
	f.SetTitle("Funding Opportunities")
	f.AppendHeader(table.Row{"ID", "Organization", "Type", "Amount", "Score", "Updated"})
	for rows.Next() {
		var id, org, fundingType, amount string
		var score int
		var lastUpdated time.Time
		if err := rows.Scan(&id, &org, &fundingType, &amount, &score, &lastUpdated); err != nil {
			log.Printf("Scan error: %v", err)
			continue
		}
		f.AppendRow(table.Row{id, org, fundingType, amount, score, lastUpdated.Format("2006-01-02")})
	}
	rows.Close()
	f.Render()
}
