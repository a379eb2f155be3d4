package websearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildQueryStripsLeadingVerb(t *testing.T) {
	cases := []struct {
		name     string
		question string
		expected string
	}{
		{
			name:     "solve prefix",
			question: "Solve 2x + 3 = 7",
			expected: "math problem 2x + 3 = 7 solution",
		},
		{
			name:     "what is prefix",
			question: "What is the derivative of x^2",
			expected: "math problem the derivative of x^2 solution",
		},
		{
			name:     "no prefix",
			question: "the integral of sin(x)",
			expected: "math problem the integral of sin(x) solution",
		},
		{
			name:     "calculate prefix with extra whitespace",
			question: "  Calculate 15% of 80  ",
			expected: "math problem 15% of 80 solution",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, BuildQuery(tc.question))
		})
	}
}

func TestBuildQueryOnlyStripsLeadingOccurrence(t *testing.T) {
	// a verb in the middle of the question is part of the problem statement
	result := BuildQuery("prove that x solve y")
	assert.Equal(t, "math problem prove that x solve y solution", result)
}
