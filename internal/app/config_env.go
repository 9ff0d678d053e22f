package app

import (
    "os"
    "strconv"
    "strings"
    "time"
)

// ApplyEnvToConfig populates unset fields of cfg from GOREVIEWS_* environment
// variables. Explicit cfg values (flags) take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
    if cfg == nil {
        return
    }

    if cfg.OutputPath == "" {
        cfg.OutputPath = os.Getenv("GOREVIEWS_OUTPUT")
    }
    if cfg.ResultsDir == "" || cfg.ResultsDir == defaultResultsDir {
        if v := os.Getenv("GOREVIEWS_RESULTS_DIR"); v != "" {
            cfg.ResultsDir = v
        }
    }

    if cfg.Timeout == 0 || cfg.Timeout == 30*time.Second {
        if s := os.Getenv("GOREVIEWS_TIMEOUT"); s != "" {
            if d, err := time.ParseDuration(s); err == nil {
                cfg.Timeout = d
            }
        }
    }
    if cfg.MaxAttempts == 0 || cfg.MaxAttempts == 3 {
        if s := os.Getenv("GOREVIEWS_ATTEMPTS"); s != "" {
            if n, err := strconv.Atoi(s); err == nil && n > 0 {
                cfg.MaxAttempts = n
            }
        }
    }
    if cfg.Backoff == 0 || cfg.Backoff == time.Second {
        if s := os.Getenv("GOREVIEWS_BACKOFF"); s != "" {
            if d, err := time.ParseDuration(s); err == nil {
                cfg.Backoff = d
            }
        }
    }

    if !cfg.Verbose {
        if s := strings.ToLower(strings.TrimSpace(os.Getenv("GOREVIEWS_VERBOSE"))); s != "" {
            if s == "1" || s == "true" || s == "yes" || s == "on" {
                cfg.Verbose = true
            }
        }
    }
}
