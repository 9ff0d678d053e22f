package main

import (
    "context"
    "flag"
    "fmt"
    "os"
    "strings"
    "time"

    "github.com/rs/zerolog"
    "github.com/rs/zerolog/log"

    "github.com/hyperifyio/goreviews/internal/app"
)

// Build information populated via -ldflags at build time.
var (
    buildVersion = "0.0.0-dev"
    buildCommit  = "unknown"
)

// headerFlags collects repeatable -header "Key: Value" flags.
type headerFlags map[string]string

func (h headerFlags) String() string {
    parts := make([]string, 0, len(h))
    for k, v := range h {
        parts = append(parts, k+": "+v)
    }
    return strings.Join(parts, "; ")
}

func (h headerFlags) Set(v string) error {
    key, val, ok := strings.Cut(v, ":")
    key = strings.TrimSpace(key)
    if !ok || key == "" {
        return fmt.Errorf("header %q must be of the form \"Key: Value\"", v)
    }
    h[key] = strings.TrimSpace(val)
    return nil
}

func main() {
    // Logging setup
    zerolog.TimeFieldFormat = time.RFC3339
    log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

    headers := headerFlags{}
    var (
        outputPath  string
        configPath  string
        envPath     string
        resultsDir  string
        timeout     time.Duration
        attempts    int
        backoff     time.Duration
        verbose     bool
        showVersion bool
    )

    flag.StringVar(&outputPath, "output", "", "Output CSV path (default: <results.dir>/<slug>_<timestamp>.csv)")
    flag.StringVar(&outputPath, "o", "", "Shorthand for -output")
    flag.StringVar(&configPath, "config", "", "Path to YAML or JSON config file")
    flag.StringVar(&envPath, "env", "", "Optional dotenv file loaded before reading the environment")
    flag.StringVar(&resultsDir, "results.dir", "results", "Directory for derived output paths")
    flag.DurationVar(&timeout, "fetch.timeout", 30*time.Second, "Per-attempt HTTP timeout")
    flag.IntVar(&attempts, "fetch.attempts", 3, "Maximum fetch attempts, including the first")
    flag.DurationVar(&backoff, "fetch.backoff", time.Second, "Backoff base; attempt n waits n times this before retrying")
    flag.Var(headers, "header", "Extra request header as \"Key: Value\"; repeatable, overrides defaults")
    flag.BoolVar(&verbose, "v", false, "Verbose logging")
    flag.BoolVar(&showVersion, "version", false, "Print version and exit")
    flag.Usage = func() {
        fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <article-url>\n\nScrapes lawyer service reviews from an article into CSV.\n\nFlags:\n", os.Args[0])
        flag.PrintDefaults()
    }
    flag.Parse()

    if showVersion {
        fmt.Printf("goreviews %s (%s)\n", buildVersion, buildCommit)
        return
    }
    if flag.NArg() != 1 {
        flag.Usage()
        os.Exit(2)
    }

    if envPath != "" {
        if err := app.LoadEnvFiles(envPath); err != nil {
            log.Error().Err(err).Str("path", envPath).Msg("load env file")
            os.Exit(1)
        }
    }

    cfg := app.Config{
        URL:         flag.Arg(0),
        OutputPath:  outputPath,
        ResultsDir:  resultsDir,
        Headers:     headers,
        Timeout:     timeout,
        MaxAttempts: attempts,
        Backoff:     backoff,
        Verbose:     verbose,
    }

    // Precedence: flags > environment > config file > defaults.
    app.ApplyEnvToConfig(&cfg)
    if configPath != "" {
        fc, err := app.LoadConfigFile(configPath)
        if err != nil {
            log.Error().Err(err).Str("path", configPath).Msg("load config file")
            os.Exit(1)
        }
        if err := app.ApplyFileConfig(&cfg, fc); err != nil {
            log.Error().Err(err).Msg("apply config file")
            os.Exit(1)
        }
    }

    if cfg.Verbose {
        zerolog.SetGlobalLevel(zerolog.DebugLevel)
    } else {
        zerolog.SetGlobalLevel(zerolog.InfoLevel)
    }

    sum, err := run(cfg)
    if err != nil {
        log.Error().Err(err).Msg("run failed")
        os.Exit(1)
    }
    fmt.Printf("Extracted %d services\n", sum.Count)
    fmt.Printf("Saved CSV to: %s\n", sum.OutputPath)
}

func run(cfg app.Config) (app.Summary, error) {
    a, err := app.New(cfg)
    if err != nil {
        return app.Summary{}, fmt.Errorf("init app: %w", err)
    }
    return a.Run(context.Background())
}
