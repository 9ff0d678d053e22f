package app

import (
    "fmt"
    "net/url"
    "path/filepath"
    "regexp"
    "strings"
    "time"
)

const defaultResultsDir = "results"

// deriveOutputPath returns the default CSV path for a run: the slugified last
// path segment of the article URL plus a timestamp, under the results
// directory.
func deriveOutputPath(cfg Config, now time.Time) string {
    root := strings.TrimSpace(cfg.ResultsDir)
    if root == "" {
        root = defaultResultsDir
    }
    name := fmt.Sprintf("%s_%s.csv", slugify(lastPathSegment(cfg.URL)), now.Format("20060102_150405"))
    return filepath.Join(root, name)
}

// lastPathSegment returns the final segment of the URL path, ignoring any
// trailing slash. The host never counts as a segment; unparseable input is
// treated as a bare path.
func lastPathSegment(raw string) string {
    path := raw
    if u, err := url.Parse(raw); err == nil && u.Host != "" {
        path = u.Path
    }
    path = strings.TrimRight(path, "/")
    if i := strings.LastIndexByte(path, '/'); i >= 0 {
        path = path[i+1:]
    }
    return path
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(s string) string {
    s = strings.ToLower(strings.TrimSpace(s))
    s = nonSlugChars.ReplaceAllString(s, "-")
    s = strings.Trim(s, "-")
    if s == "" {
        s = "output"
    }
    return s
}
