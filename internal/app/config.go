package app

import (
    "errors"
    "net/url"
    "strings"
    "time"
)

// Config holds runtime configuration for one scrape run.
type Config struct {
    // URL is the article to fetch. Required.
    URL string
    // OutputPath overrides the derived results path when set.
    OutputPath string
    // ResultsDir is where derived output paths land. Defaults to "results".
    ResultsDir string

    // Fetch behavior. Zero values fall back to the fetch package defaults
    // (30s timeout, 3 attempts, 1s backoff base).
    Headers     map[string]string
    Timeout     time.Duration
    MaxAttempts int
    Backoff     time.Duration

    Verbose bool
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
    raw := strings.TrimSpace(cfg.URL)
    if raw == "" {
        return errors.New("config: article URL is required")
    }
    u, err := url.Parse(raw)
    if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
        return errors.New("config: article URL must be http or https")
    }
    if cfg.MaxAttempts < 0 {
        return errors.New("config: negative attempt count is not allowed")
    }
    if cfg.Timeout < 0 || cfg.Backoff < 0 {
        return errors.New("config: negative durations are not allowed")
    }
    return nil
}
