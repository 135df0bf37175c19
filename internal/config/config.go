package config

// Config holds runtime settings for the vitrine CLI.
//
// Fields:
//   - FragmentBaseURL: base URL the page fragments are served from; the
//     controller requests <base>/pages/<name>.html.
//   - DatabasePath: path of the local SQLite store standing in for browser
//     local storage.
type Config struct {
	FragmentBaseURL string
	DatabasePath    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.FragmentBaseURL = "http://127.0.0.1:8080"
	c.DatabasePath = "vitrine.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
