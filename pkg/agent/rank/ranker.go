package rank

import (
	"sort"
	"strings"

	"math-agent-be/pkg/agent/evidence"
)

// Domains whose content is consistently reliable for math questions.
var preferredDomains = []string{
	"khanacademy.org",
	"mathsisfun.com",
	"purplemath.com",
	"mathworld.wolfram.com",
	"math.stackexchange.com",
	"brilliant.org",
	"en.wikipedia.org",
	"desmos.com",
	"wolframalpha.com",
	"symbolab.com",
	"mathpages.com",
	"mathjax.org",
	"mathcenter.com",
	"mathisfun.com",
	".edu",
}

var mathKeywords = []string{
	"formula",
	"equation",
	"solution",
	"solve",
	"calculation",
	"math",
	"problem",
	"answer",
}

const (
	domainBoost  = 1.5
	titleBoost   = 1.2
	snippetBoost = 1.1
)

// Rank scores search results by source quality and keyword relevance and
// returns them ordered best first. Ties keep the search engine's order.
func Rank(results []evidence.WebResult) []evidence.WebResult {
	ranked := make([]evidence.WebResult, len(results))
	copy(ranked, results)

	for i := range ranked {
		ranked[i].Score = score(ranked[i])
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Score > ranked[b].Score
	})

	return ranked
}

func score(result evidence.WebResult) float64 {
	// boosts multiply the provider's own score when it carries one
	s := result.Score
	if s == 0 {
		s = 1.0
	}

	url := strings.ToLower(result.URL)
	for _, domain := range preferredDomains {
		if strings.Contains(url, domain) {
			s *= domainBoost
			break
		}
	}

	title := strings.ToLower(result.Title)
	for _, keyword := range mathKeywords {
		if strings.Contains(title, keyword) {
			s *= titleBoost
			break
		}
	}

	snippet := strings.ToLower(result.Snippet)
	for _, keyword := range mathKeywords {
		if strings.Contains(snippet, keyword) {
			s *= snippetBoost
			break
		}
	}

	return s
}
