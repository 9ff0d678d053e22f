// Package report serializes extracted reviews into the delimited output file.
package report

import (
    "encoding/csv"
    "fmt"
    "os"
    "path/filepath"

    "github.com/hyperifyio/goreviews/internal/extract"
)

// Columns is the fixed CSV header, in output order.
var Columns = []string{
    "service_name",
    "heading",
    "url",
    "summary",
    "how_it_works",
    "practice_areas",
    "pricing",
}

// WriteCSV writes reviews to path as CSV with a header row, creating the
// parent directory on demand. Zero reviews still produce a header-only file.
// Multi-line field values are quoted by the encoder.
func WriteCSV(path string, reviews []extract.ServiceReview) error {
    if dir := filepath.Dir(path); dir != "." {
        if err := os.MkdirAll(dir, 0o755); err != nil {
            return fmt.Errorf("create output dir: %w", err)
        }
    }

    f, err := os.Create(path)
    if err != nil {
        return fmt.Errorf("create output: %w", err)
    }

    w := csv.NewWriter(f)
    writeErr := w.Write(Columns)
    for _, r := range reviews {
        if writeErr != nil {
            break
        }
        writeErr = w.Write([]string{
            r.ServiceName,
            r.Heading,
            r.URL,
            r.Summary,
            r.HowItWorks,
            r.PracticeAreas,
            r.Pricing,
        })
    }
    w.Flush()
    if writeErr == nil {
        writeErr = w.Error()
    }

    if err := f.Close(); err != nil && writeErr == nil {
        writeErr = err
    }
    if writeErr != nil {
        return fmt.Errorf("write csv %s: %w", path, writeErr)
    }
    return nil
}
