package app

import (
    "context"
    "encoding/csv"
    "errors"
    "net/http"
    "net/http/httptest"
    "os"
    "path/filepath"
    "testing"
    "time"

    "github.com/hyperifyio/goreviews/internal/fetch"
)

const articleHTML = `<!doctype html>
<html><body>
  <h1>Best Lead Generation Services</h1>
  <h2>Acme Review for Lawyers</h2>
  <p>Good service</p>
  <h3>How It Works</h3>
  <p>Step one</p>
  <h3>Pricing</h3>
  <p>From $49</p>
  <h2>Further Reading</h2>
  <p>not a review</p>
</body></html>`

func TestRun_WritesCSV(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.Header().Set("Content-Type", "text/html; charset=utf-8")
        _, _ = w.Write([]byte(articleHTML))
    }))
    defer srv.Close()

    out := filepath.Join(t.TempDir(), "out.csv")
    a, err := New(Config{URL: srv.URL + "/best-services", OutputPath: out, MaxAttempts: 1})
    if err != nil {
        t.Fatalf("init app: %v", err)
    }
    sum, err := a.Run(context.Background())
    if err != nil {
        t.Fatalf("run error: %v", err)
    }
    if sum.Count != 1 || sum.OutputPath != out {
        t.Fatalf("unexpected summary: %+v", sum)
    }

    f, err := os.Open(out)
    if err != nil {
        t.Fatalf("open output: %v", err)
    }
    defer f.Close()
    rows, err := csv.NewReader(f).ReadAll()
    if err != nil {
        t.Fatalf("read csv: %v", err)
    }
    if len(rows) != 2 {
        t.Fatalf("expected header + 1 row, got %d", len(rows))
    }
    row := rows[1]
    if row[0] != "Acme" || row[2] != srv.URL+"/best-services" {
        t.Fatalf("unexpected row: %v", row)
    }
    if row[3] != "Good service" || row[4] != "Step one" || row[6] != "From $49" {
        t.Fatalf("unexpected field content: %v", row)
    }
    if row[5] != "" {
        t.Fatalf("expected empty practice_areas, got %q", row[5])
    }
}

func TestRun_FetchFailureLeavesNoOutput(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(500)
    }))
    defer srv.Close()

    out := filepath.Join(t.TempDir(), "out.csv")
    a, err := New(Config{URL: srv.URL, OutputPath: out, MaxAttempts: 2, Backoff: time.Millisecond})
    if err != nil {
        t.Fatalf("init app: %v", err)
    }
    _, err = a.Run(context.Background())
    var fe *fetch.Error
    if !errors.As(err, &fe) {
        t.Fatalf("expected fetch error, got %v", err)
    }
    if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
        t.Fatalf("expected no output file after fetch failure")
    }
}

func TestRun_DerivesOutputPathUnderResultsDir(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.Header().Set("Content-Type", "text/html")
        _, _ = w.Write([]byte(articleHTML))
    }))
    defer srv.Close()

    results := filepath.Join(t.TempDir(), "results")
    a, err := New(Config{URL: srv.URL + "/top-picks/", ResultsDir: results, MaxAttempts: 1})
    if err != nil {
        t.Fatalf("init app: %v", err)
    }
    sum, err := a.Run(context.Background())
    if err != nil {
        t.Fatalf("run error: %v", err)
    }
    if filepath.Dir(sum.OutputPath) != results {
        t.Fatalf("expected output under %s, got %s", results, sum.OutputPath)
    }
    if _, err := os.Stat(sum.OutputPath); err != nil {
        t.Fatalf("expected derived output file: %v", err)
    }
}

func TestNew_RejectsBadURL(t *testing.T) {
    if _, err := New(Config{URL: ""}); err == nil {
        t.Fatalf("expected error for missing URL")
    }
    if _, err := New(Config{URL: "ftp://example.com/x"}); err == nil {
        t.Fatalf("expected error for non-http scheme")
    }
}
