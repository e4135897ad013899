package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Browser BrowserConfig
	Scraper ScraperConfig
	Logging LoggingConfig
}

type BrowserConfig struct {
	Headless       bool
	Timeout        time.Duration
	ViewportWidth  int
	ViewportHeight int
	UserAgent      string
	AcceptLanguage string
	Locale         string
}

type ScraperConfig struct {
	BaseURL            string
	ResultLimit        int
	NavigationTimeout  time.Duration
	ResultWaitTimeout  time.Duration
	ActionTimeout      time.Duration
	FieldTimeout       time.Duration
	PopupProbeTimeout  time.Duration
	FileChooserTimeout time.Duration
	TextSettleTimeout  time.Duration
	ImageSettleTimeout time.Duration
	PollInterval       time.Duration
	RateLimitMin       time.Duration
	RateLimitMax       time.Duration
	ScreenshotDir      string
}

type LoggingConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	cfg := &Config{
		Browser: BrowserConfig{
			Headless:       getBoolOrDefault("BROWSER_HEADLESS", true),
			Timeout:        getDurationOrDefault("BROWSER_TIMEOUT", 30*time.Second),
			ViewportWidth:  getIntOrDefault("BROWSER_VIEWPORT_WIDTH", 1920),
			ViewportHeight: getIntOrDefault("BROWSER_VIEWPORT_HEIGHT", 1080),
			UserAgent:      getEnvOrDefault("BROWSER_USER_AGENT", defaultUserAgent),
			AcceptLanguage: getEnvOrDefault("BROWSER_ACCEPT_LANGUAGE", "en-US,en;q=0.9"),
			Locale:         getEnvOrDefault("BROWSER_LOCALE", "en-US"),
		},
		Scraper: ScraperConfig{
			BaseURL:            getEnvOrDefault("SCRAPER_BASE_URL", "https://www.alibaba.com"),
			ResultLimit:        getIntOrDefault("SCRAPER_RESULT_LIMIT", 5),
			NavigationTimeout:  getDurationOrDefault("SCRAPER_NAVIGATION_TIMEOUT", 30*time.Second),
			ResultWaitTimeout:  getDurationOrDefault("SCRAPER_RESULT_WAIT_TIMEOUT", 15*time.Second),
			ActionTimeout:      getDurationOrDefault("SCRAPER_ACTION_TIMEOUT", 7*time.Second),
			FieldTimeout:       getDurationOrDefault("SCRAPER_FIELD_TIMEOUT", 3*time.Second),
			PopupProbeTimeout:  getDurationOrDefault("SCRAPER_POPUP_PROBE_TIMEOUT", 2*time.Second),
			FileChooserTimeout: getDurationOrDefault("SCRAPER_FILE_CHOOSER_TIMEOUT", 10*time.Second),
			TextSettleTimeout:  getDurationOrDefault("SCRAPER_TEXT_SETTLE_TIMEOUT", 5*time.Second),
			ImageSettleTimeout: getDurationOrDefault("SCRAPER_IMAGE_SETTLE_TIMEOUT", 10*time.Second),
			PollInterval:       getDurationOrDefault("SCRAPER_POLL_INTERVAL", 250*time.Millisecond),
			RateLimitMin:       getDurationOrDefault("SCRAPER_RATE_LIMIT_MIN", 1*time.Second),
			RateLimitMax:       getDurationOrDefault("SCRAPER_RATE_LIMIT_MAX", 3*time.Second),
			ScreenshotDir:      getEnvOrDefault("SCRAPER_SCREENSHOT_DIR", "."),
		},
		Logging: LoggingConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
		},
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.Scraper.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("SCRAPER_BASE_URL must be an absolute URL, got %q", c.Scraper.BaseURL)
	}

	if c.Scraper.ResultLimit < 1 {
		return fmt.Errorf("SCRAPER_RESULT_LIMIT must be at least 1")
	}

	if c.Scraper.RateLimitMin > c.Scraper.RateLimitMax {
		return fmt.Errorf("SCRAPER_RATE_LIMIT_MIN cannot be greater than SCRAPER_RATE_LIMIT_MAX")
	}

	if c.Scraper.PollInterval <= 0 {
		return fmt.Errorf("SCRAPER_POLL_INTERVAL must be positive")
	}

	return nil
}

// Origin returns the scheme://host of the configured site root, used to
// absolutize root-relative product links.
func (c *ScraperConfig) Origin() string {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return c.BaseURL
	}
	return u.Scheme + "://" + u.Host
}

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
