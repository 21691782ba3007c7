// Package config loads the settings of a scrape run.
//
// Values are layered from lowest to highest precedence: built-in defaults, an optional
// config file, a .env file in the working directory, AU_COURSES_* environment variables
// and finally command-line flags bound from cobra.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pfrederiksen/au-courses/internal/orchestrator"
	"github.com/pfrederiksen/au-courses/internal/scraper"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. AU_COURSES_CONCURRENCY
const EnvPrefix = "AU_COURSES"

// Keys shared by flags, environment variables and config files
const (
	KeyCalendarURL      = "calendar-url"
	KeyCampus           = "campus"
	KeyUserAgent        = "user-agent"
	KeyTimeout          = "timeout"
	KeyConcurrency      = "concurrency"
	KeyCacheDir         = "cache-dir"
	KeyAcceptErrorPages = "accept-error-pages"
	KeyPartial          = "partial"
	KeyPretty           = "pretty"
	KeyCSV              = "csv"
	KeyMetricsFile      = "metrics-file"
	KeyLogLevel         = "log-level"
	KeyLogFormat        = "log-format"
)

// Config holds every setting of a run
type Config struct {
	CalendarURL      string
	Campuses         []string
	UserAgent        string
	Timeout          time.Duration
	Concurrency      int
	CacheDir         string
	AcceptErrorPages bool
	Partial          bool
	Pretty           bool
	CSVPath          string
	MetricsFile      string
	Log              LogConfig
}

// LogConfig selects log verbosity and encoding
type LogConfig struct {
	Level  string
	Format string
}

// ScraperOptions converts the config into scraper options
func (c *Config) ScraperOptions() scraper.Options {
	return scraper.Options{
		URL:              c.CalendarURL,
		UserAgent:        c.UserAgent,
		Timeout:          c.Timeout,
		CacheDir:         c.CacheDir,
		AcceptErrorPages: c.AcceptErrorPages,
	}
}

// OrchestratorOptions converts the config into orchestrator options
func (c *Config) OrchestratorOptions() orchestrator.Options {
	policy := orchestrator.FailFast
	if c.Partial {
		policy = orchestrator.Partial
	}
	return orchestrator.Options{
		Campuses:       c.Campuses,
		Concurrency:    c.Concurrency,
		RequestTimeout: c.Timeout,
		Policy:         policy,
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyCalendarURL, scraper.CalendarURL)
	v.SetDefault(KeyCampus, orchestrator.DefaultCampuses)
	v.SetDefault(KeyUserAgent, scraper.UserAgent)
	v.SetDefault(KeyTimeout, scraper.Timeout.String())
	v.SetDefault(KeyConcurrency, orchestrator.DefaultConcurrency)
	v.SetDefault(KeyCacheDir, "")
	v.SetDefault(KeyAcceptErrorPages, false)
	v.SetDefault(KeyPartial, false)
	v.SetDefault(KeyPretty, false)
	v.SetDefault(KeyCSV, "")
	v.SetDefault(KeyMetricsFile, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "json")
}

// Load builds a Config. configFile may be empty; flags may be nil.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("binding flags: %w", err)
		}
	}

	timeout, err := parseDuration(v.GetString(KeyTimeout))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		CalendarURL:      v.GetString(KeyCalendarURL),
		Campuses:         normalizeCampuses(v.GetStringSlice(KeyCampus)),
		UserAgent:        v.GetString(KeyUserAgent),
		Timeout:          timeout,
		Concurrency:      v.GetInt(KeyConcurrency),
		CacheDir:         v.GetString(KeyCacheDir),
		AcceptErrorPages: v.GetBool(KeyAcceptErrorPages),
		Partial:          v.GetBool(KeyPartial),
		Pretty:           v.GetBool(KeyPretty),
		CSVPath:          v.GetString(KeyCSV),
		MetricsFile:      v.GetString(KeyMetricsFile),
		Log: LogConfig{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings a run cannot start with
func (c *Config) Validate() error {
	if c.CalendarURL == "" {
		return fmt.Errorf("%s must not be empty", KeyCalendarURL)
	}
	if len(c.Campuses) == 0 {
		return fmt.Errorf("at least one %s is required", KeyCampus)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("%s must be at least 1, got %d", KeyConcurrency, c.Concurrency)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%s must be positive, got %s", KeyTimeout, c.Timeout)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid %s: %s (must be 'json' or 'console')", KeyLogFormat, c.Log.Format)
	}
	return nil
}

// normalizeCampuses upper-cases campus codes, splits comma lists and drops blanks and
// duplicates while keeping order
func normalizeCampuses(values []string) []string {
	seen := make(map[string]bool)
	campuses := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			code := strings.ToUpper(strings.TrimSpace(part))
			if code == "" || seen[code] {
				continue
			}
			seen[code] = true
			campuses = append(campuses, code)
		}
	}
	return campuses
}

func parseDuration(value string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", KeyTimeout, value, err)
	}
	return d, nil
}
