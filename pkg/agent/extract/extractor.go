package extract

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"math-agent-be/pkg/agent/evidence"
)

const (
	fetchTimeout    = 10 * time.Second
	userAgent       = "Mozilla/5.0 (compatible; math-agent/1.0)"
	cacheExpiration = 30 * time.Minute
	cacheCleanup    = 10 * time.Minute
)

// ContentExtractor fetches pages and reduces them to plain text suitable
// for prompting. Extractions are memoized per URL so repeated questions
// hitting the same sources don't refetch.
type ContentExtractor struct {
	MaxChars int
	MinChars int
	client   *http.Client
	memo     *cache.Cache
}

func NewContentExtractor(maxChars, minChars int) *ContentExtractor {
	if maxChars <= 0 {
		maxChars = 4000
	}
	if minChars <= 0 {
		minChars = 100
	}
	return &ContentExtractor{
		MaxChars: maxChars,
		MinChars: minChars,
		client:   &http.Client{Timeout: fetchTimeout},
		memo:     cache.New(cacheExpiration, cacheCleanup),
	}
}

// FromResults extracts text from the top ranked results, up to limit
// URLs, and joins the extractions into a single evidence block capped at
// MaxChars. Short pages stay in; only fetch failures and empty pages are
// dropped.
func (e *ContentExtractor) FromResults(ctx context.Context, results []evidence.WebResult, limit int) string {
	var sections []string
	for _, result := range results {
		if len(sections) >= limit {
			break
		}
		content, err := e.FromURL(ctx, result.URL)
		if err != nil || content == "" {
			continue
		}
		sections = append(sections, fmt.Sprintf("Source: %s\n%s", result.URL, content))
	}

	combined := strings.Join(sections, "\n\n---\n\n")
	if len(combined) > e.MaxChars {
		combined = combined[:e.MaxChars] + "... [content truncated]"
	}
	return combined
}

// FromURL fetches a single page and returns its visible text. The bundle
// cap is FromResults' concern; per page only the response size is bounded.
func (e *ContentExtractor) FromURL(ctx context.Context, url string) (string, error) {
	if cached, found := e.memo.Get(url); found {
		return cached.(string), nil
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	res, err := e.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: status %d", url, res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, 2<<20))
	if err != nil {
		return "", err
	}

	// Primary pass isolates the main content block. Anything under
	// MinChars is treated as a failed extraction and the whole visible
	// text is used instead.
	text, err := MainContentFromHTML(string(body))
	if err != nil || len(text) < e.MinChars {
		text, err = TextFromHTML(string(body))
		if err != nil {
			return "", err
		}
	}

	e.memo.Set(url, text, cache.DefaultExpiration)
	return text, nil
}
