package app

import (
	"os"
	"path/filepath"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the complete client configuration, loadable from environment
// variables (STOREFRONT_ prefix), flags, or YAML config files.
type Config struct {
	APIBaseURL string        `default:"http://localhost:3000" usage:"Storefront API base URL" flag:"api-base-url"`
	Timeout    time.Duration `default:"15s" usage:"Request timeout"`
	DataDir    string        `usage:"Directory for persisted local state (default: user config dir)" flag:"data-dir"`
	UserAgent  string        `default:"marketfy-storefront/1.0" usage:"User-Agent for outgoing requests" flag:"user-agent"`
}

// LoadConfig loads configuration from environment variables, YAML config
// files, and applies platform defaults.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "STOREFRONT",
		Files:     []string{"config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.applyDefaults()

	if cfg.APIBaseURL == "" {
		return nil, errors.New("API base URL is required: set STOREFRONT_API_BASE_URL")
	}
	return &cfg, nil
}

// applyDefaults fills the storage directory from the platform's user config
// dir when none is given, falling back to the working directory.
func (c *Config) applyDefaults() {
	if c.DataDir != "" {
		return
	}
	if dir, err := os.UserConfigDir(); err == nil {
		c.DataDir = filepath.Join(dir, "marketfy")
		return
	}
	c.DataDir = ".marketfy"
}
