package fetch

import (
    "bytes"
    "context"
    "fmt"
    "io"
    "sync"
    "time"

    "github.com/go-resty/resty/v2"
    "golang.org/x/net/html/charset"
)

// Documented defaults for the retriever contract.
const (
    DefaultTimeout     = 30 * time.Second
    DefaultMaxAttempts = 3
    DefaultBackoff     = 1 * time.Second
)

// DefaultHeaders is the fixed browser identity sent with every request.
// Caller-supplied headers override these on key collision.
var DefaultHeaders = map[string]string{
    "User-Agent":      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
    "Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
    "Accept-Language": "en-US,en;q=0.9",
}

// Error reports an exhausted fetch. It names the URL and attempt count and
// wraps the last underlying cause.
type Error struct {
    URL      string
    Attempts int
    Err      error
}

func (e *Error) Error() string {
    return fmt.Sprintf("failed to fetch %s after %d attempts: %v", e.URL, e.Attempts, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Client fetches a single document over HTTP with bounded retries and linear
// backoff between attempts.
type Client struct {
    // Headers are merged over DefaultHeaders and win per key.
    Headers map[string]string
    // MaxAttempts includes the initial attempt. Minimum 1.
    MaxAttempts int
    // Timeout bounds each attempt, not the whole sequence.
    Timeout time.Duration
    // Backoff is the base wait; attempt n sleeps Backoff*n before attempt n+1.
    Backoff time.Duration

    // Sleep is swapped by tests to observe backoff without waiting.
    Sleep func(time.Duration)

    http     *resty.Client
    httpOnce sync.Once
}

func (c *Client) client() *resty.Client {
    c.httpOnce.Do(func() {
        timeout := c.Timeout
        if timeout <= 0 {
            timeout = DefaultTimeout
        }
        c.http = resty.New().SetTimeout(timeout)
    })
    return c.http
}

// Get retrieves url and returns the response body decoded to UTF-8. An
// attempt fails on any transport error or a final status outside 2xx/3xx
// (redirects are followed, so 3xx resolves to the final response). After the
// last failed attempt it returns *Error wrapping the last cause.
func (c *Client) Get(ctx context.Context, url string) (string, error) {
    attempts := c.MaxAttempts
    if attempts <= 0 {
        attempts = DefaultMaxAttempts
    }
    backoff := c.Backoff
    if backoff <= 0 {
        backoff = DefaultBackoff
    }
    sleep := c.Sleep
    if sleep == nil {
        sleep = time.Sleep
    }
    headers := mergeHeaders(c.Headers)

    var lastErr error
    for attempt := 1; attempt <= attempts; attempt++ {
        res, err := c.client().R().SetContext(ctx).SetHeaders(headers).Get(url)
        switch {
        case err != nil:
            lastErr = err
        case res.IsError():
            lastErr = fmt.Errorf("unexpected status: %s", res.Status())
        default:
            return decodeBody(res.Body(), res.Header().Get("Content-Type"))
        }
        if attempt < attempts {
            sleep(backoff * time.Duration(attempt))
        }
    }
    return "", &Error{URL: url, Attempts: attempts, Err: lastErr}
}

func mergeHeaders(overrides map[string]string) map[string]string {
    merged := make(map[string]string, len(DefaultHeaders)+len(overrides))
    for k, v := range DefaultHeaders {
        merged[k] = v
    }
    for k, v := range overrides {
        merged[k] = v
    }
    return merged
}

// decodeBody converts the body to UTF-8 using the charset declared in the
// Content-Type header or sniffed from the document. Unknown charsets fall
// back to the raw bytes rather than failing the fetch.
func decodeBody(body []byte, contentType string) (string, error) {
    r, err := charset.NewReader(bytes.NewReader(body), contentType)
    if err != nil {
        return string(body), nil
    }
    decoded, err := io.ReadAll(r)
    if err != nil {
        return "", fmt.Errorf("decode body: %w", err)
    }
    return string(decoded), nil
}
