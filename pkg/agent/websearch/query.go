package websearch

import (
	"fmt"
	"regexp"
	"strings"
)

var leadingVerbPattern = regexp.MustCompile(`^(solve|calculate|find|determine|what is|how to|evaluate|simplify)\s+`)

// BuildQuery turns a raw question into a search query framed for math
// content. Leading instruction verbs are stripped so the query centers
// on the actual problem.
func BuildQuery(question string) string {
	q := strings.ToLower(strings.TrimSpace(question))
	q = leadingVerbPattern.ReplaceAllString(q, "")
	return fmt.Sprintf("math problem %s solution", q)
}
