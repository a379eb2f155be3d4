package extract

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"math-agent-be/pkg/agent/evidence"
)

func TestTextFromHTMLStripsChrome(t *testing.T) {
	page := `<html><head><title>t</title><script>var x = 1;</script></head>
	<body><nav>Home | About</nav><p>The  quadratic   formula</p><footer>copyright</footer></body></html>`

	text, err := TextFromHTML(page)

	require.NoError(t, err)
	assert.Contains(t, text, "The quadratic formula")
	assert.NotContains(t, text, "var x")
	assert.NotContains(t, text, "Home | About")
	assert.NotContains(t, text, "copyright")
}

func TestMainContentFromHTMLPrefersArticle(t *testing.T) {
	page := `<html><body>
	<div>` + strings.Repeat("sidebar links ", 30) + `</div>
	<article><p>` + strings.Repeat("solving the integral ", 25) + `</p></article>
	</body></html>`

	text, err := MainContentFromHTML(page)

	require.NoError(t, err)
	assert.Contains(t, text, "solving the integral")
	assert.NotContains(t, text, "sidebar links")
}

func TestMainContentFromHTMLEmptyWithoutBlocks(t *testing.T) {
	text, err := MainContentFromHTML("<html><body><p>just a paragraph</p></body></html>")

	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", CollapseWhitespace("  a\n\n b\t\tc  "))
}

func TestFromURLKeepsFullPageText(t *testing.T) {
	long := strings.Repeat("x", 5000)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>" + long + "</p></body></html>"))
	}))
	defer server.Close()

	extractor := NewContentExtractor(4000, 100)
	text, err := extractor.FromURL(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, long, text)
}

func TestFromResultsCapsCombinedBundle(t *testing.T) {
	// two pages that each fit under the cap alone but not together
	page := func(marker string) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html><body><p>" + marker + strings.Repeat("y", 3700) + "</p></body></html>"))
		}))
	}
	first := page("first")
	defer first.Close()
	second := page("second")
	defer second.Close()

	extractor := NewContentExtractor(4000, 100)
	content := extractor.FromResults(context.Background(), []evidence.WebResult{
		{URL: first.URL},
		{URL: second.URL},
	}, 2)

	assert.Len(t, content, 4000+len("... [content truncated]"))
	assert.True(t, strings.HasSuffix(content, "... [content truncated]"))
	assert.Contains(t, content, "first")
}

func TestFromURLMemoizes(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte("<html><body><p>" + strings.Repeat("content ", 50) + "</p></body></html>"))
	}))
	defer server.Close()

	extractor := NewContentExtractor(4000, 100)

	first, err := extractor.FromURL(context.Background(), server.URL)
	require.NoError(t, err)
	second, err := extractor.FromURL(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestFromResultsKeepsShortPages(t *testing.T) {
	// a page well under the primary-pass minimum still counts as evidence
	thin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>x = 7</p></body></html>"))
	}))
	defer thin.Close()

	rich := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>" + strings.Repeat("useful derivation steps ", 20) + "</p></body></html>"))
	}))
	defer rich.Close()

	extractor := NewContentExtractor(4000, 100)
	content := extractor.FromResults(context.Background(), []evidence.WebResult{
		{URL: thin.URL},
		{URL: rich.URL},
	}, 2)

	assert.Contains(t, content, "x = 7")
	assert.Contains(t, content, "useful derivation steps")
	assert.Contains(t, content, "Source: "+thin.URL)
}

func TestFromResultsSkipsUnreachablePages(t *testing.T) {
	rich := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>" + strings.Repeat("useful derivation steps ", 20) + "</p></body></html>"))
	}))
	defer rich.Close()

	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer dead.Close()

	extractor := NewContentExtractor(4000, 100)
	content := extractor.FromResults(context.Background(), []evidence.WebResult{
		{URL: dead.URL},
		{URL: rich.URL},
	}, 2)

	assert.Contains(t, content, "useful derivation steps")
	assert.NotContains(t, content, "Source: "+dead.URL)
}

func TestFromResultsHonorsLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>" + strings.Repeat("page body text ", 20) + "</p></body></html>"))
	}))
	defer server.Close()

	extractor := NewContentExtractor(4000, 100)
	content := extractor.FromResults(context.Background(), []evidence.WebResult{
		{URL: server.URL + "/a"},
		{URL: server.URL + "/b"},
		{URL: server.URL + "/c"},
	}, 2)

	assert.Equal(t, 2, strings.Count(content, "Source: "))
}
