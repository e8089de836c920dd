package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/co2re/innovation-hub/internal/models"
)

var ErrNotFound = errors.New("not found")

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// DocumentListParams filters ListDocuments. Zero values mean "no filter".
type DocumentListParams struct {
	Query    string
	Category string
	Type     string
	Theme    string
	Limit    int
}

type FundingListParams struct {
	Type  string
	Limit int
}

const documentCols = `id, title, content, excerpt, url, pdf_url, category, type,
	theme, authors, published_date, tags, relevance_score, download_count,
	created_at, updated_at`

const fundingCols = `id, title, organization, type, amount, deadline, description,
	requirements, website, contact_email, focus_areas, stage, location,
	recent_investments, investment_thesis, match_score, is_active, last_updated, created_at`

func scanDocument(scan func(dest ...any) error) (models.Document, error) {
	var d models.Document
	var pdfURL *string
	var publishedDate *time.Time
	var themeRaw, authorsRaw, tagsRaw []byte

	err := scan(
		&d.ID, &d.Title, &d.Content, &d.Excerpt, &d.URL, &pdfURL, &d.Category, &d.Type,
		&themeRaw, &authorsRaw, &publishedDate, &tagsRaw, &d.RelevanceScore, &d.DownloadCount,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return d, err
	}

	if pdfURL != nil {
		d.PDFURL = *pdfURL
	}
	if publishedDate != nil {
		d.PublishedDate = *publishedDate
	}
	d.Theme = decodeStrings(themeRaw)
	d.Authors = decodeStrings(authorsRaw)
	d.Tags = decodeStrings(tagsRaw)

	return d, nil
}

func scanFunding(scan func(dest ...any) error) (models.FundingOpportunity, error) {
	var o models.FundingOpportunity
	var deadline, contactEmail, thesis *string
	var requirementsRaw, focusRaw, stageRaw, investmentsRaw []byte

	err := scan(
		&o.ID, &o.Title, &o.Organization, &o.Type, &o.Amount, &deadline, &o.Description,
		&requirementsRaw, &o.Website, &contactEmail, &focusRaw, &stageRaw, &o.Location,
		&investmentsRaw, &thesis, &o.MatchScore, &o.IsActive, &o.LastUpdated, &o.CreatedAt,
	)
	if err != nil {
		return o, err
	}

	if deadline != nil {
		o.Deadline = *deadline
	}
	if contactEmail != nil {
		o.ContactEmail = *contactEmail
	}
	if thesis != nil {
		o.InvestmentThesis = *thesis
	}
	o.Requirements = decodeStrings(requirementsRaw)
	o.FocusAreas = decodeStrings(focusRaw)
	o.Stage = decodeStrings(stageRaw)
	o.RecentInvestments = decodeStrings(investmentsRaw)

	return o, nil
}

func (s *Store) ListDocuments(ctx context.Context, params DocumentListParams) ([]models.Document, error) {
	where := "WHERE 1=1"
	var args []any
	argIdx := 1

	if params.Query != "" {
		where += fmt.Sprintf(" AND (title ILIKE '%%' || $%d || '%%' OR content ILIKE '%%' || $%d || '%%')", argIdx, argIdx)
		args = append(args, params.Query)
		argIdx++
	}
	if params.Category != "" {
		where += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, params.Category)
		argIdx++
	}
	if params.Type != "" {
		where += fmt.Sprintf(" AND type = $%d", argIdx)
		args = append(args, params.Type)
		argIdx++
	}
	if params.Theme != "" {
		where += fmt.Sprintf(" AND theme::text ILIKE '%%' || $%d || '%%'", argIdx)
		args = append(args, params.Theme)
		argIdx++
	}

	limit := params.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	sql := fmt.Sprintf("SELECT %s FROM documents %s ORDER BY relevance_score DESC, updated_at DESC LIMIT $%d",
		documentCols, where, argIdx)
	args = append(args, limit)

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	docs := []models.Document{}
	for rows.Next() {
		d, err := scanDocument(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func (s *Store) GetDocument(ctx context.Context, id string) (*models.Document, error) {
	sql := fmt.Sprintf("SELECT %s FROM documents WHERE id = $1", documentCols)
	d, err := scanDocument(s.pool.QueryRow(ctx, sql, id).Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// UpsertDocument merges an incoming document with any stored version of
// the same id. Category and type take the incoming values; themes and
// tags accumulate as a set; the relevance score never decreases.
func (s *Store) UpsertDocument(ctx context.Context, doc models.Document) error {
	existing, err := s.GetDocument(ctx, doc.ID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("lookup before upsert: %w", err)
	}

	if existing != nil {
		doc.Theme = unionStrings(existing.Theme, doc.Theme)
		doc.Tags = unionStrings(existing.Tags, doc.Tags)
		if existing.RelevanceScore > doc.RelevanceScore {
			doc.RelevanceScore = existing.RelevanceScore
		}
		doc.DownloadCount = existing.DownloadCount
		doc.CreatedAt = existing.CreatedAt
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}

	var pdfURL *string
	if doc.PDFURL != "" {
		pdfURL = &doc.PDFURL
	}
	var publishedDate *time.Time
	if !doc.PublishedDate.IsZero() {
		publishedDate = &doc.PublishedDate
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO documents (id, title, content, excerpt, url, pdf_url, category, type,
			theme, authors, published_date, tags, relevance_score, download_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW())
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			content = EXCLUDED.content,
			excerpt = EXCLUDED.excerpt,
			url = EXCLUDED.url,
			pdf_url = EXCLUDED.pdf_url,
			category = EXCLUDED.category,
			type = EXCLUDED.type,
			theme = EXCLUDED.theme,
			authors = EXCLUDED.authors,
			published_date = EXCLUDED.published_date,
			tags = EXCLUDED.tags,
			relevance_score = EXCLUDED.relevance_score,
			updated_at = NOW()
	`, doc.ID, doc.Title, doc.Content, doc.Excerpt, doc.URL, pdfURL, doc.Category, doc.Type,
		encodeStrings(doc.Theme), encodeStrings(doc.Authors), publishedDate, encodeStrings(doc.Tags),
		doc.RelevanceScore, doc.DownloadCount, doc.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert document %s: %w", doc.ID, err)
	}
	return nil
}

func (s *Store) IncrementDownloadCount(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, "UPDATE documents SET download_count = download_count + 1 WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

type DocumentStats struct {
	Total       int            `json:"total"`
	ByCategory  map[string]int `json:"by_category"`
	ByType      map[string]int `json:"by_type"`
	RecentCount int            `json:"recent_count"`
}

func (s *Store) DocumentStats(ctx context.Context) (*DocumentStats, error) {
	stats := &DocumentStats{
		ByCategory: map[string]int{},
		ByType:     map[string]int{},
	}

	if err := s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM documents").Scan(&stats.Total); err != nil {
		return nil, fmt.Errorf("count documents: %w", err)
	}

	rows, err := s.pool.Query(ctx, "SELECT category, COUNT(*) FROM documents GROUP BY category")
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err == nil {
			stats.ByCategory[category] = count
		}
	}
	rows.Close()

	rows, err = s.pool.Query(ctx, "SELECT type, COUNT(*) FROM documents GROUP BY type")
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var docType string
		var count int
		if err := rows.Scan(&docType, &count); err == nil {
			stats.ByType[docType] = count
		}
	}
	rows.Close()

	err = s.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM documents WHERE updated_at >= NOW() - INTERVAL '1 month'").
		Scan(&stats.RecentCount)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *Store) ListFunding(ctx context.Context, params FundingListParams) ([]models.FundingOpportunity, error) {
	where := "WHERE is_active = true"
	var args []any
	argIdx := 1

	if params.Type != "" {
		where += fmt.Sprintf(" AND type = $%d", argIdx)
		args = append(args, params.Type)
		argIdx++
	}

	limit := params.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	sql := fmt.Sprintf("SELECT %s FROM funding_opportunities %s ORDER BY last_updated DESC LIMIT $%d",
		fundingCols, where, argIdx)
	args = append(args, limit)

	return s.queryFunding(ctx, sql, args...)
}

func (s *Store) ListActiveFunding(ctx context.Context) ([]models.FundingOpportunity, error) {
	sql := fmt.Sprintf("SELECT %s FROM funding_opportunities WHERE is_active = true", fundingCols)
	return s.queryFunding(ctx, sql)
}

func (s *Store) TopFunding(ctx context.Context, limit int) ([]models.FundingOpportunity, error) {
	if limit <= 0 {
		limit = 10
	}
	sql := fmt.Sprintf(
		"SELECT %s FROM funding_opportunities WHERE is_active = true ORDER BY match_score DESC, last_updated DESC LIMIT $1",
		fundingCols)
	return s.queryFunding(ctx, sql, limit)
}

func (s *Store) queryFunding(ctx context.Context, sql string, args ...any) ([]models.FundingOpportunity, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	opps := []models.FundingOpportunity{}
	for rows.Next() {
		o, err := scanFunding(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		opps = append(opps, o)
	}
	return opps, rows.Err()
}

func (s *Store) UpsertFunding(ctx context.Context, opp models.FundingOpportunity) error {
	var deadline, contactEmail, thesis *string
	if opp.Deadline != "" {
		deadline = &opp.Deadline
	}
	if opp.ContactEmail != "" {
		contactEmail = &opp.ContactEmail
	}
	if opp.InvestmentThesis != "" {
		thesis = &opp.InvestmentThesis
	}
	if opp.LastUpdated.IsZero() {
		opp.LastUpdated = time.Now().UTC()
	}
	if opp.CreatedAt.IsZero() {
		opp.CreatedAt = time.Now().UTC()
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO funding_opportunities (id, title, organization, type, amount, deadline,
			description, requirements, website, contact_email, focus_areas, stage, location,
			recent_investments, investment_thesis, match_score, is_active, last_updated, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			organization = EXCLUDED.organization,
			type = EXCLUDED.type,
			amount = EXCLUDED.amount,
			deadline = EXCLUDED.deadline,
			description = EXCLUDED.description,
			requirements = EXCLUDED.requirements,
			website = EXCLUDED.website,
			contact_email = EXCLUDED.contact_email,
			focus_areas = EXCLUDED.focus_areas,
			stage = EXCLUDED.stage,
			location = EXCLUDED.location,
			recent_investments = EXCLUDED.recent_investments,
			investment_thesis = EXCLUDED.investment_thesis,
			match_score = EXCLUDED.match_score,
			is_active = EXCLUDED.is_active,
			last_updated = EXCLUDED.last_updated
	`, opp.ID, opp.Title, opp.Organization, opp.Type, opp.Amount, deadline,
		opp.Description, encodeStrings(opp.Requirements), opp.Website, contactEmail,
		encodeStrings(opp.FocusAreas), encodeStrings(opp.Stage), opp.Location,
		encodeStrings(opp.RecentInvestments), thesis, opp.MatchScore, opp.IsActive,
		opp.LastUpdated, opp.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert funding %s: %w", opp.ID, err)
	}
	return nil
}

func (s *Store) UpdateMatchScore(ctx context.Context, id string, score int) error {
	tag, err := s.pool.Exec(ctx,
		"UPDATE funding_opportunities SET match_score = $1, last_updated = NOW() WHERE id = $2",
		score, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

type FundingStats struct {
	Total       int            `json:"total"`
	ByType      map[string]int `json:"by_type"`
	LastUpdated *time.Time     `json:"last_updated,omitempty"`
}

func (s *Store) FundingStats(ctx context.Context) (*FundingStats, error) {
	stats := &FundingStats{ByType: map[string]int{}}

	if err := s.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM funding_opportunities WHERE is_active = true").Scan(&stats.Total); err != nil {
		return nil, fmt.Errorf("count funding: %w", err)
	}

	rows, err := s.pool.Query(ctx,
		"SELECT type, COUNT(*) FROM funding_opportunities WHERE is_active = true GROUP BY type")
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var fundingType string
		var count int
		if err := rows.Scan(&fundingType, &count); err == nil {
			stats.ByType[fundingType] = count
		}
	}
	rows.Close()

	var last *time.Time
	if err := s.pool.QueryRow(ctx,
		"SELECT MAX(last_updated) FROM funding_opportunities").Scan(&last); err == nil {
		stats.LastUpdated = last
	}

	return stats, nil
}

func (s *Store) CreateUser(ctx context.Context, user models.User) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, name, profile, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, user.ID, strings.ToLower(user.Email), user.PasswordHash, user.Name,
		encodeProfile(user.Profile), user.CreatedAt)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser(ctx, "SELECT id, email, password_hash, name, profile, created_at FROM users WHERE email = $1",
		strings.ToLower(email))
}

func (s *Store) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.getUser(ctx, "SELECT id, email, password_hash, name, profile, created_at FROM users WHERE id = $1", id)
}

func (s *Store) getUser(ctx context.Context, sql string, arg any) (*models.User, error) {
	var u models.User
	var profileRaw []byte
	err := s.pool.QueryRow(ctx, sql, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &profileRaw, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	u.Profile = decodeProfile(profileRaw)
	return &u, nil
}

func (s *Store) UpdateUserProfile(ctx context.Context, id uuid.UUID, profile models.MatchProfile) error {
	tag, err := s.pool.Exec(ctx, "UPDATE users SET profile = $1 WHERE id = $2", encodeProfile(profile), id)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func encodeStrings(values []string) []byte {
	if values == nil {
		values = []string{}
	}
	raw, _ := json.Marshal(values)
	return raw
}

func decodeStrings(raw []byte) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return []string{}
	}
	return values
}

func encodeProfile(profile models.MatchProfile) []byte {
	raw, _ := json.Marshal(profile)
	return raw
}

func decodeProfile(raw []byte) models.MatchProfile {
	var profile models.MatchProfile
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &profile)
	}
	return profile
}

func unionStrings(existing, incoming []string) []string {
	merged := make([]string, 0, len(existing)+len(incoming))
	seen := make(map[string]bool)
	for _, list := range [][]string{incoming, existing} {
		for _, value := range list {
			key := strings.ToLower(strings.TrimSpace(value))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, strings.TrimSpace(value))
		}
	}
	return merged
}
