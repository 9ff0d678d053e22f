package app

import (
    "encoding/json"
    "fmt"
    "os"
    "path/filepath"
    "time"

    yaml "gopkg.in/yaml.v3"
)

// FileConfig is the single-file configuration schema. Durations are strings
// in time.ParseDuration form ("30s", "1.5s") so the same schema round-trips
// through YAML and JSON.
type FileConfig struct {
    Output  string `yaml:"output" json:"output"`
    Results string `yaml:"results" json:"results"`

    Fetch struct {
        Timeout  string            `yaml:"timeout" json:"timeout"`
        Attempts int               `yaml:"attempts" json:"attempts"`
        Backoff  string            `yaml:"backoff" json:"backoff"`
        Headers  map[string]string `yaml:"headers" json:"headers"`
    } `yaml:"fetch" json:"fetch"`

    Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
    var fc FileConfig
    b, err := os.ReadFile(path)
    if err != nil {
        return fc, err
    }
    switch ext := filepath.Ext(path); ext {
    case ".yaml", ".yml":
        if err := yaml.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse yaml: %w", err)
        }
    case ".json":
        if err := json.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse json: %w", err)
        }
    default:
        // Try YAML then JSON
        if err := yaml.Unmarshal(b, &fc); err != nil {
            if jerr := json.Unmarshal(b, &fc); jerr != nil {
                return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
            }
        }
    }
    return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// still at their defaults. Flags and env should already have been applied;
// this lets file config supply defaults without overriding explicit values.
func ApplyFileConfig(cfg *Config, fc FileConfig) error {
    if cfg == nil {
        return nil
    }

    if cfg.OutputPath == "" && fc.Output != "" {
        cfg.OutputPath = fc.Output
    }
    if (cfg.ResultsDir == "" || cfg.ResultsDir == defaultResultsDir) && fc.Results != "" {
        cfg.ResultsDir = fc.Results
    }

    if (cfg.Timeout == 0 || cfg.Timeout == 30*time.Second) && fc.Fetch.Timeout != "" {
        d, err := time.ParseDuration(fc.Fetch.Timeout)
        if err != nil {
            return fmt.Errorf("config: fetch.timeout: %w", err)
        }
        cfg.Timeout = d
    }
    if (cfg.MaxAttempts == 0 || cfg.MaxAttempts == 3) && fc.Fetch.Attempts > 0 {
        cfg.MaxAttempts = fc.Fetch.Attempts
    }
    if (cfg.Backoff == 0 || cfg.Backoff == time.Second) && fc.Fetch.Backoff != "" {
        d, err := time.ParseDuration(fc.Fetch.Backoff)
        if err != nil {
            return fmt.Errorf("config: fetch.backoff: %w", err)
        }
        cfg.Backoff = d
    }
    // Header keys set explicitly (flags/env) win over file-supplied ones.
    if len(fc.Fetch.Headers) > 0 {
        if cfg.Headers == nil {
            cfg.Headers = make(map[string]string, len(fc.Fetch.Headers))
        }
        for k, v := range fc.Fetch.Headers {
            if _, ok := cfg.Headers[k]; !ok {
                cfg.Headers[k] = v
            }
        }
    }

    if !cfg.Verbose && fc.Verbose {
        cfg.Verbose = true
    }
    return nil
}
