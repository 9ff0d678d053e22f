package extract

import "testing"

func TestClassifyHeading(t *testing.T) {
    cases := []struct {
        title string
        want  bucket
    }{
        {"How It Works", bucketHowItWorks},
        {"how does it work?", bucketHowItWorks},
        {"Practice Areas", bucketPracticeAreas},
        {"Supported practice area coverage", bucketPracticeAreas},
        {"Pricing", bucketPricing},
        {"Price Breakdown", bucketPricing},
        {"PRICING AND PLANS", bucketPricing},
        {"Customer Support", bucketDiscarded},
        {"", bucketDiscarded},
        // Rule order: how+work outranks a later pricing mention.
        {"How pricing works", bucketHowItWorks},
    }
    for _, c := range cases {
        if got := classifyHeading(c.title); got != c.want {
            t.Fatalf("classifyHeading(%q) = %d, want %d", c.title, got, c.want)
        }
    }
}
