package extract

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Elements whose text is boilerplate rather than page content.
var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"nav":      true,
	"header":   true,
	"footer":   true,
	"aside":    true,
	"form":     true,
	"iframe":   true,
}

// Elements that typically wrap the main article body.
var contentElements = map[string]bool{
	"article": true,
	"main":    true,
	"section": true,
	"div":     true,
}

var whitespacePattern = regexp.MustCompile(`\s+`)

// MainContentFromHTML extracts the text of the densest content block in
// the document (article/main first, then the largest section or div).
// Returns "" when the document has no block worth isolating; callers
// fall back to TextFromHTML.
func MainContentFromHTML(raw string) (string, error) {
	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return "", err
	}

	var best *html.Node
	bestLen := 0
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skippedElements[n.Data] {
			return
		}
		if n.Type == html.ElementNode && contentElements[n.Data] {
			length := visibleTextLen(n)
			// Prefer semantic wrappers over generic ones of equal size.
			if n.Data == "article" || n.Data == "main" {
				length *= 2
			}
			if length > bestLen {
				best, bestLen = n, length
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	if best == nil {
		return "", nil
	}
	return CollapseWhitespace(collectText(best)), nil
}

func visibleTextLen(n *html.Node) int {
	return len(collectText(n))
}

func collectText(root *html.Node) string {
	var builder strings.Builder
	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		if n.Type == html.ElementNode && skippedElements[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			builder.WriteString(n.Data)
			builder.WriteString(" ")
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			traverse(child)
		}
	}
	traverse(root)
	return builder.String()
}

// TextFromHTML parses an HTML document and returns its visible text with
// whitespace collapsed. Navigation, script and other chrome elements are
// skipped entirely.
func TextFromHTML(raw string) (string, error) {
	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return "", err
	}
	return CollapseWhitespace(collectText(doc)), nil
}

// CollapseWhitespace folds runs of whitespace into single spaces and
// trims the ends.
func CollapseWhitespace(text string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}
