package ingest

import (
	"embed"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed config/sources.yaml
var sourcesYAML embed.FS

// Registry holds the configuration for everything the pipelines scrape:
// the CO2RE site pages, the funding portals, and the funder registry.
type Registry struct {
	BaseURL        string         `yaml:"base_url"`
	APIBase        string         `yaml:"api_base"`
	DocumentPages  []PageConfig   `yaml:"document_pages"`
	FundingPortals []PortalConfig `yaml:"funding_portals"`
	Funders        []FunderConfig `yaml:"funders"`
}

// FetchConfig defines HTTP fetching configuration.
type FetchConfig struct {
	TimeoutSeconds int     `yaml:"timeout_seconds,omitempty"` // Default: 30
	MaxRetries     int     `yaml:"max_retries,omitempty"`     // Default: 3
	RateLimitRPS   float64 `yaml:"rate_limit_rps,omitempty"`  // Requests per second, default: 1.0
	ProxyURL       string  `yaml:"proxy_url,omitempty"`
	AcceptLanguage string  `yaml:"accept_language,omitempty"`
}

// PageConfig is a known CO2RE page to scrape, with its display title
// and the category to assign when scraping succeeds.
type PageConfig struct {
	URL      string `yaml:"url"`
	Title    string `yaml:"title"`
	Category string `yaml:"category"`
}

// PortalConfig is a government or institutional funding portal whose
// listing pages are mined for opportunity headlines.
type PortalConfig struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Organization string `yaml:"organization"`
	URL          string `yaml:"url"`
	Type         string `yaml:"type"`
}

// FunderConfig is a single entry in the carbon removal funder registry.
type FunderConfig struct {
	Name        string `yaml:"name"`
	URL         string `yaml:"url"`
	Type        string `yaml:"type"` // vc, philanthropy, grant, competition
	Focus       string `yaml:"focus"`
	Description string `yaml:"description"`
}

// LoadRegistry reads the embedded sources.yaml and returns a Registry.
// The path parameter is a filesystem fallback for local development.
func LoadRegistry(path string) (*Registry, error) {
	data, err := sourcesYAML.ReadFile("config/sources.yaml")
	if err != nil {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, err
		}
	}

	// Expand environment variables within the YAML content (e.g. ${CO2RE_BASE_URL})
	expanded := os.ExpandEnv(string(data))

	var reg Registry
	if err := yaml.Unmarshal([]byte(expanded), &reg); err != nil {
		return nil, err
	}

	return &reg, nil
}
