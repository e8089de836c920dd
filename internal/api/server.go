package api

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/co2re/innovation-hub/internal/auth"
	"github.com/co2re/innovation-hub/internal/db"
	"github.com/co2re/innovation-hub/internal/ingest"
	"github.com/co2re/innovation-hub/internal/models"
)

type Server struct {
	Store       *db.Store
	AuthService *auth.Service
	Pipeline    *ingest.Pipeline
	Echo        *echo.Echo
}

var (
	adminSecretOnce    sync.Once
	adminSecretRuntime string
	adminSecretErr     error
)

func NewServer(pool *pgxpool.Pool, pipeline *ingest.Pipeline) *Server {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// CORS: allow frontend origins from env or default to localhost
	allowedOrigins := []string{"http://localhost:4200"}
	if extra := os.Getenv("CORS_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				allowedOrigins = append(allowedOrigins, o)
			}
		}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "X-Admin-Secret"},
	}))

	store := db.NewStore(pool)

	s := &Server{
		Store:       store,
		AuthService: auth.NewService(store),
		Pipeline:    pipeline,
		Echo:        e,
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	s.Echo.GET("/health", s.handleHealth)
	api := s.Echo.Group("/api/v1")

	api.GET("/documents", s.handleListDocuments)
	api.GET("/documents/stats", s.handleDocumentStats)
	api.GET("/documents/:id", s.handleGetDocument)
	api.POST("/documents/:id/download", s.handleDocumentDownload)

	api.GET("/funding", s.handleListFunding)
	api.GET("/funding/stats", s.handleFundingStats)
	api.POST("/funding/top-matches", s.handleTopMatches)

	// Auth Routes
	api.POST("/auth/signup", s.handleSignup)
	api.POST("/auth/login", s.handleLogin)

	// Protected Routes (profile driven matching)
	user := api.Group("")
	user.Use(auth.Middleware)
	user.GET("/profile", s.handleGetProfile)
	user.PUT("/profile", s.handleUpdateProfile)
	user.GET("/funding/matches", s.handleMyMatches)

	// Admin Routes (ingestion triggers)
	admin := api.Group("")
	admin.Use(s.adminMiddleware)
	admin.POST("/ingest/documents", s.handleIngestDocuments)
	admin.POST("/ingest/funding", s.handleIngestFunding)
	admin.POST("/funding/match-scores", s.handleUpdateMatchScores)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (s *Server) handleListDocuments(c echo.Context) error {
	params := db.DocumentListParams{
		Query:    c.QueryParam("q"),
		Category: c.QueryParam("category"),
		Type:     c.QueryParam("type"),
		Theme:    c.QueryParam("theme"),
	}
	if l, err := strconv.Atoi(c.QueryParam("limit")); err == nil && l > 0 {
		params.Limit = l
	}

	docs, err := s.Store.ListDocuments(c.Request().Context(), params)
	if err != nil {
		c.Logger().Errorf("Failed to list documents: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"documents": docs,
		"count":     len(docs),
	})
}

func (s *Server) handleGetDocument(c echo.Context) error {
	doc, err := s.Store.GetDocument(c.Request().Context(), c.Param("id"))
	if errors.Is(err, db.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, doc)
}

func (s *Server) handleDocumentDownload(c echo.Context) error {
	id := c.Param("id")
	if err := s.Store.IncrementDownloadCount(c.Request().Context(), id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "recorded"})
}

func (s *Server) handleDocumentStats(c echo.Context) error {
	stats, err := s.Store.DocumentStats(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, stats)
}

func (s *Server) handleListFunding(c echo.Context) error {
	params := db.FundingListParams{Type: c.QueryParam("type")}
	if l, err := strconv.Atoi(c.QueryParam("limit")); err == nil && l > 0 {
		params.Limit = l
	}

	opps, err := s.Store.ListFunding(c.Request().Context(), params)
	if err != nil {
		c.Logger().Errorf("Failed to list funding: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"opportunities": opps,
		"count":         len(opps),
	})
}

func (s *Server) handleFundingStats(c echo.Context) error {
	stats, err := s.Store.FundingStats(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, stats)
}

// handleTopMatches scores all active opportunities against a profile
// sent in the request body and returns the best matches. Open to
// anonymous users so the dashboard works without an account.
func (s *Server) handleTopMatches(c echo.Context) error {
	var profile models.MatchProfile
	if err := c.Bind(&profile); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	limit := 10
	if l, err := strconv.Atoi(c.QueryParam("limit")); err == nil && l > 0 && l <= 50 {
		limit = l
	}

	matches, err := s.Pipeline.TopMatches(c.Request().Context(), profile, limit)
	if err != nil {
		c.Logger().Errorf("Failed to compute matches: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"matches": matches,
		"count":   len(matches),
	})
}

func (s *Server) handleSignup(c echo.Context) error {
	var req auth.SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	resp, err := s.AuthService.Signup(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrUserExists) {
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		if errors.Is(err, auth.ErrInvalidCreds) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Email and password are required"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, resp)
}

func (s *Server) handleLogin(c echo.Context) error {
	var req auth.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	resp, err := s.AuthService.Login(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCreds) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleGetProfile(c echo.Context) error {
	userID, err := auth.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	user, err := s.AuthService.GetProfile(c.Request().Context(), userID)
	if errors.Is(err, db.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, user)
}

func (s *Server) handleUpdateProfile(c echo.Context) error {
	userID, err := auth.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	var profile models.MatchProfile
	if err := c.Bind(&profile); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	if err := s.AuthService.UpdateProfile(c.Request().Context(), userID, profile); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, profile)
}

// handleMyMatches scores opportunities against the logged-in user's
// stored profile.
func (s *Server) handleMyMatches(c echo.Context) error {
	userID, err := auth.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	user, err := s.AuthService.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	limit := 10
	if l, err := strconv.Atoi(c.QueryParam("limit")); err == nil && l > 0 && l <= 50 {
		limit = l
	}

	matches, err := s.Pipeline.TopMatches(c.Request().Context(), user.Profile, limit)
	if err != nil {
		c.Logger().Errorf("Failed to compute matches: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"matches": matches,
		"count":   len(matches),
	})
}

func (s *Server) handleIngestDocuments(c echo.Context) error {
	result := s.Pipeline.RunDocuments(c.Request().Context())
	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadGateway
	}
	return c.JSON(status, result)
}

func (s *Server) handleIngestFunding(c echo.Context) error {
	result := s.Pipeline.RunFunding(c.Request().Context())
	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadGateway
	}
	return c.JSON(status, result)
}

func (s *Server) handleUpdateMatchScores(c echo.Context) error {
	var profile models.MatchProfile
	if err := c.Bind(&profile); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	if err := s.Pipeline.UpdateMatchScores(c.Request().Context(), profile); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Match scores updated"})
}

func (s *Server) Start(port string) error {
	return s.Echo.Start(":" + port)
}

func (s *Server) adminMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		secret, err := adminSecret()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Server admin configuration error"})
		}

		// Check X-Admin-Secret header or Bearer token
		authHeader := c.Request().Header.Get("Authorization")
		adminHeader := c.Request().Header.Get("X-Admin-Secret")

		if adminHeader == secret {
			return next(c)
		}
		if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
			if authHeader[7:] == secret {
				return next(c)
			}
		}

		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized admin access"})
	}
}

func adminSecret() (string, error) {
	adminSecretOnce.Do(func() {
		secret := strings.TrimSpace(os.Getenv("ADMIN_SECRET"))
		if secret != "" {
			adminSecretRuntime = secret
			return
		}

		buf := make([]byte, 48)
		if _, err := rand.Read(buf); err != nil {
			adminSecretErr = fmt.Errorf("failed to generate ADMIN_SECRET fallback: %w", err)
			return
		}

		adminSecretRuntime = base64.RawURLEncoding.EncodeToString(buf)
		log.Print("ADMIN_SECRET is not set; using ephemeral in-memory fallback secret")
	})

	if adminSecretErr != nil {
		return "", adminSecretErr
	}
	if adminSecretRuntime == "" {
		return "", fmt.Errorf("admin secret unavailable")
	}

	return adminSecretRuntime, nil
}
