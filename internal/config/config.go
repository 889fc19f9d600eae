package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/abelbrown/docketwatch/internal/feeds"
)

// Config is the persistent application configuration
type Config struct {
	// News feeds to poll; empty means the built-in defaults
	Feeds []feeds.SourceConfig `json:"feeds,omitempty"`

	// How many days back a dated article may be and still count
	LookbackDays int `json:"lookback_days"`

	// Optional YAML file of curated docket enrichments
	KnownCasesFile string `json:"known_cases_file,omitempty"`

	// CourtListener docket IDs to summarize on every run
	DocketIDs []int64 `json:"docket_ids,omitempty"`

	// Per-request timeout for feed and article fetches, in seconds
	FetchTimeoutSeconds int `json:"fetch_timeout_seconds"`

	CourtListener CourtListenerConfig `json:"courtlistener"`
	Report        ReportConfig        `json:"report"`
}

// CourtListenerConfig holds docket-API settings
type CourtListenerConfig struct {
	BaseURL        string `json:"base_url,omitempty"`
	Token          string `json:"token,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// ReportConfig holds report rendering preferences
type ReportConfig struct {
	Verbose bool `json:"verbose"` // include the risk-scale legend
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		LookbackDays:        3,
		FetchTimeoutSeconds: 15,
		CourtListener: CourtListenerConfig{
			TimeoutSeconds: 20,
		},
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".docketwatch", "config.json")
}

// Load reads config from path, or from the default location when path is
// empty. A missing or unreadable file yields defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			cfg.AutoPopulateFromEnv()
			return cfg, nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), nil
	}
	cfg.AutoPopulateFromEnv()

	return cfg, nil
}

// Save writes config to disk
func (c *Config) Save() error {
	path := ConfigPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600) // Restrictive permissions for the API token
}

// AutoPopulateFromEnv fills in the API token from the environment.
// An explicit token in the config file wins.
func (c *Config) AutoPopulateFromEnv() {
	if c.CourtListener.Token != "" {
		return
	}
	if tok := os.Getenv("COURTLISTENER_TOKEN"); tok != "" {
		c.CourtListener.Token = tok
	}
}

// LoadKeysFromFile loads the token from a shell script (like keys.sh)
func (c *Config) LoadKeysFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	// Simple parser for export KEY=value lines
	for _, line := range splitLines(string(data)) {
		if len(line) < 8 {
			continue
		}
		if line[:7] == "export " {
			line = line[7:]
		}
		parts := splitFirst(line, '=')
		if len(parts) != 2 {
			continue
		}
		if parts[0] == "COURTLISTENER_TOKEN" {
			c.CourtListener.Token = parts[1]
		}
	}

	return nil
}

// Helpers

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func splitFirst(s string, sep byte) []string {
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			return []string{s[:i], s[i+1:]}
		}
	}
	return []string{s}
}
