package app

import (
    "context"
    "fmt"
    "time"

    "github.com/rs/zerolog/log"

    "github.com/hyperifyio/goreviews/internal/extract"
    "github.com/hyperifyio/goreviews/internal/fetch"
    "github.com/hyperifyio/goreviews/internal/report"
)

// Summary reports what a completed run produced.
type Summary struct {
    Count      int
    OutputPath string
}

// retriever abstracts the minimal fetch method so tests can stub transport.
type retriever interface {
    Get(ctx context.Context, url string) (string, error)
}

type App struct {
    cfg     Config
    fetcher retriever
}

func New(cfg Config) (*App, error) {
    if err := ValidateConfig(cfg); err != nil {
        return nil, err
    }
    return &App{
        cfg: cfg,
        fetcher: &fetch.Client{
            Headers:     cfg.Headers,
            MaxAttempts: cfg.MaxAttempts,
            Timeout:     cfg.Timeout,
            Backoff:     cfg.Backoff,
        },
    }, nil
}

// Run fetches the article, extracts review records from its heading layout,
// and writes the CSV. A fetch failure propagates before any output file is
// created, so there is never a partial CSV.
func (a *App) Run(ctx context.Context) (Summary, error) {
    body, err := a.fetcher.Get(ctx, a.cfg.URL)
    if err != nil {
        return Summary{}, err
    }
    log.Debug().Int("bytes", len(body)).Str("url", a.cfg.URL).Msg("fetched article")

    reviews, err := extract.Reviews(a.cfg.URL, body)
    if err != nil {
        return Summary{}, fmt.Errorf("extract reviews: %w", err)
    }

    out := a.cfg.OutputPath
    if out == "" {
        out = deriveOutputPath(a.cfg, time.Now())
    }
    if err := report.WriteCSV(out, reviews); err != nil {
        return Summary{}, err
    }

    log.Info().Int("count", len(reviews)).Str("out", out).Msg("wrote csv")
    return Summary{Count: len(reviews), OutputPath: out}, nil
}
