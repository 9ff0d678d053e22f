package extract

import "strings"

// bucket identifies which output field a section node feeds.
type bucket int

const (
    bucketSummary bucket = iota
    bucketHowItWorks
    bucketPracticeAreas
    bucketPricing
    // bucketDiscarded accumulates content under sub-headings the record
    // schema does not know about. It is never read back, but keeps such
    // content from bleeding into the named buckets.
    bucketDiscarded

    numBuckets
)

// headingRule pairs a sub-heading predicate with its target bucket. Rules are
// evaluated in order; the first match wins.
type headingRule struct {
    match  func(title string) bool
    target bucket
}

func containsAll(subs ...string) func(string) bool {
    return func(title string) bool {
        for _, sub := range subs {
            if !strings.Contains(title, sub) {
                return false
            }
        }
        return true
    }
}

func containsAny(subs ...string) func(string) bool {
    return func(title string) bool {
        for _, sub := range subs {
            if strings.Contains(title, sub) {
                return true
            }
        }
        return false
    }
}

var headingRules = []headingRule{
    {containsAll("how", "work"), bucketHowItWorks},
    {containsAll("practice", "area"), bucketPracticeAreas},
    {containsAny("pricing", "price"), bucketPricing},
}

// classifyHeading resolves a sub-heading title to the bucket it opens.
// Matching is case-insensitive over substrings; unknown titles open the
// discarded bucket.
func classifyHeading(title string) bucket {
    title = strings.ToLower(title)
    for _, r := range headingRules {
        if r.match(title) {
            return r.target
        }
    }
    return bucketDiscarded
}
