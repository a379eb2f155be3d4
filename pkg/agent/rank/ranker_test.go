package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"math-agent-be/pkg/agent/evidence"
)

func TestRankPrefersTrustedDomains(t *testing.T) {
	results := []evidence.WebResult{
		{Title: "Quadratic intro", URL: "https://randomblog.example.com/quadratics", Snippet: "some notes"},
		{Title: "Quadratic intro", URL: "https://mathworld.wolfram.com/QuadraticEquation.html", Snippet: "some notes"},
	}

	ranked := Rank(results)

	assert.Equal(t, "https://mathworld.wolfram.com/QuadraticEquation.html", ranked[0].URL)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
}

func TestRankKeywordBoosts(t *testing.T) {
	results := []evidence.WebResult{
		{Title: "A page about triangles", URL: "https://example.com/a", Snippet: "nothing relevant"},
		{Title: "How to solve this equation", URL: "https://example.com/b", Snippet: "full solution included"},
	}

	ranked := Rank(results)

	assert.Equal(t, "https://example.com/b", ranked[0].URL)
	// title and snippet boosts compound multiplicatively
	assert.InDelta(t, 1.2*1.1, ranked[0].Score, 1e-9)
	assert.InDelta(t, 1.0, ranked[1].Score, 1e-9)
}

func TestRankEduDomain(t *testing.T) {
	results := []evidence.WebResult{
		{Title: "Lecture notes", URL: "https://ocw.mit.edu/calculus", Snippet: "lecture notes"},
	}

	ranked := Rank(results)

	assert.InDelta(t, 1.5, ranked[0].Score, 1e-9)
}

func TestRankMultipliesProviderScore(t *testing.T) {
	results := []evidence.WebResult{
		{Title: "plain page", URL: "https://example.com/a", Snippet: "", Score: 3.0},
		{Title: "solve it", URL: "https://example.com/b", Snippet: ""},
	}

	ranked := Rank(results)

	// a provider score seeds the boosts instead of the 1.0 default
	assert.Equal(t, "https://example.com/a", ranked[0].URL)
	assert.InDelta(t, 3.0, ranked[0].Score, 1e-9)
	assert.InDelta(t, 1.2, ranked[1].Score, 1e-9)
}

func TestRankStableForTies(t *testing.T) {
	results := []evidence.WebResult{
		{Title: "first", URL: "https://example.com/1", Snippet: ""},
		{Title: "second", URL: "https://example.com/2", Snippet: ""},
		{Title: "third", URL: "https://example.com/3", Snippet: ""},
	}

	ranked := Rank(results)

	assert.Equal(t, "https://example.com/1", ranked[0].URL)
	assert.Equal(t, "https://example.com/2", ranked[1].URL)
	assert.Equal(t, "https://example.com/3", ranked[2].URL)
}

func TestRankDoesNotMutateInput(t *testing.T) {
	results := []evidence.WebResult{
		{Title: "solve", URL: "https://khanacademy.org/x", Snippet: "answer"},
	}

	Rank(results)

	assert.Zero(t, results[0].Score)
}
