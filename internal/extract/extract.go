package extract

import (
    "fmt"
    "regexp"
    "strings"

    "github.com/PuerkitoBio/goquery"
    "golang.org/x/net/html"
)

// ServiceReview is one review section extracted from an article. All fields
// are always present; a bucket with no qualifying content yields "".
type ServiceReview struct {
    ServiceName   string
    Heading       string
    URL           string
    Summary       string
    HowItWorks    string
    PracticeAreas string
    Pricing       string
}

// serviceHeadingRe matches headings like "Acme Review for Lawyers" and
// captures the service name prefix.
var serviceHeadingRe = regexp.MustCompile(`(?i)^(.+?)\s+Review\s+for\s+Lawyers\s*$`)

// Reviews parses htmlBody and returns one ServiceReview per h2 whose text
// matches the review heading pattern, in document order. Headings that do not
// match are skipped. The result is a pure function of the inputs.
func Reviews(sourceURL string, htmlBody string) ([]ServiceReview, error) {
    doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlBody))
    if err != nil {
        return nil, fmt.Errorf("parse html: %w", err)
    }

    var reviews []ServiceReview
    doc.Find("h2").Each(func(_ int, h *goquery.Selection) {
        heading := CleanText(flatten(h.Nodes...))
        m := serviceHeadingRe.FindStringSubmatch(heading)
        if m == nil {
            return
        }

        // Section body: every following sibling up to, and excluding, the
        // next h2.
        buckets := partition(h.NextUntil("h2"))

        reviews = append(reviews, ServiceReview{
            ServiceName:   strings.TrimSpace(m[1]),
            Heading:       heading,
            URL:           sourceURL,
            Summary:       sectionText(buckets[bucketSummary]),
            HowItWorks:    sectionText(buckets[bucketHowItWorks]),
            PracticeAreas: sectionText(buckets[bucketPracticeAreas]),
            Pricing:       sectionText(buckets[bucketPricing]),
        })
    })
    return reviews, nil
}

// partition splits a section's sibling nodes into buckets. The cursor starts
// at summary; each h3 contributes no text of its own and instead reclassifies
// the cursor for subsequent nodes. A stray h2 ends the scan.
func partition(section *goquery.Selection) [numBuckets][]*html.Node {
    var buckets [numBuckets][]*html.Node
    current := bucketSummary
    stopped := false
    section.Each(func(_ int, s *goquery.Selection) {
        if stopped {
            return
        }
        switch goquery.NodeName(s) {
        case "h3":
            current = classifyHeading(CleanText(flatten(s.Nodes...)))
        case "h2":
            stopped = true
        default:
            buckets[current] = append(buckets[current], s.Nodes...)
        }
    })
    return buckets
}

// sectionText derives a bucket's text from its paragraph and list-item
// members. Other node kinds (containers, images) carry no text for output.
// Surviving lines are joined with a single newline.
func sectionText(nodes []*html.Node) string {
    var lines []string
    for _, n := range nodes {
        if n.Type != html.ElementNode {
            continue
        }
        switch strings.ToLower(n.Data) {
        case "p", "li":
        default:
            continue
        }
        if t := CleanText(flatten(n)); t != "" {
            lines = append(lines, t)
        }
    }
    return strings.Join(lines, "\n")
}

// flatten concatenates the text nodes under each node, separated by single
// spaces so "foo<b>bar</b>" does not fuse into "foobar". CleanText collapses
// any surplus spacing afterwards.
func flatten(nodes ...*html.Node) string {
    var b strings.Builder
    var walk func(*html.Node)
    walk = func(n *html.Node) {
        if n == nil {
            return
        }
        if n.Type == html.TextNode {
            if b.Len() > 0 {
                b.WriteByte(' ')
            }
            b.WriteString(n.Data)
            return
        }
        for c := n.FirstChild; c != nil; c = c.NextSibling {
            walk(c)
        }
    }
    for _, n := range nodes {
        walk(n)
    }
    return b.String()
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// CleanText collapses internal whitespace runs to single spaces and trims.
func CleanText(s string) string {
    return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}
