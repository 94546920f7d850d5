package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the client-side configuration. Everything has a default; a
// config file is optional.
type Config struct {
	// APIBaseURL is the backend root, including the /api prefix.
	APIBaseURL string `mapstructure:"api_base_url"`

	// LogFile receives diagnostic logs. The TUI owns the terminal, so
	// nothing is ever logged to stdout/stderr.
	LogFile string `mapstructure:"log_file"`

	// Dir is the resolved config directory (not read from the file).
	Dir string `mapstructure:"-"`
}

const defaultAPIBaseURL = "http://localhost:8000/api"

// Dir resolves the config directory. CAREOPS_CONFIG_DIR overrides the
// default ~/.careops (keeps tests away from the real home directory).
func Dir() (string, error) {
	if v := strings.TrimSpace(os.Getenv("CAREOPS_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".careops"), nil
}

// Load reads <dir>/config.yaml, layering env overrides (CAREOPS_API_BASE_URL,
// CAREOPS_LOG_FILE) over file values over defaults. A missing file is fine.
func Load() (Config, error) {
	dir, err := Dir()
	if err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetConfigFile(filepath.Join(dir, "config.yaml"))
	v.SetConfigType("yaml")
	v.SetDefault("api_base_url", defaultAPIBaseURL)
	v.SetDefault("log_file", filepath.Join(dir, "careops.log"))
	v.SetEnvPrefix("CAREOPS")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return Config{}, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Dir = dir

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	base := strings.TrimSpace(cfg.APIBaseURL)
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("api_base_url must include scheme and host (e.g. https://api.example.com/api)")
	}
	return nil
}
