package gateway

import (
	"context"
	"regexp"
	"strings"

	"math-agent-be/pkg/llm"
)

// Keywords that mark a question as math-related.
var mathKeywords = []string{
	"math", "algebra", "geometry", "calculus", "trigonometry", "equation", "formula",
	"solve", "simplify", "factor", "expand", "derivative", "integral", "function",
	"graph", "polynomial", "matrix", "vector", "number", "set", "probability",
	"statistics", "mean", "median", "mode", "standard deviation", "variance",
	"theorem", "axiom", "proof", "angle", "triangle", "circle", "square",
	"rectangle", "polygon", "expression", "variable", "constant", "coefficient",
	"exponent", "logarithm", "base", "root", "square root", "cube root",
	"percentage", "ratio", "proportion", "limit", "sequence", "series", "summation",
	"factorial", "combination", "permutation", "binomial", "value", "divide", "multiply",
	"addition", "subtraction", "multiplication", "division", "fraction", "decimal",
}

var prohibitedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(sex|porn|explicit|nsfw|xxx)\b`),
	regexp.MustCompile(`(?i)\b(hack|exploit|steal|illegal)\b`),
	regexp.MustCompile(`(?i)\bhow\s+to\s+(make|create|build)\s+(bomb|explosive|weapon)`),
	regexp.MustCompile(`(?i)\bpersonal\s+(information|data|address|phone|email)\b`),
	regexp.MustCompile(`(?i)\bpassword\b`),
	regexp.MustCompile(`(?i)\bcredit\s+card\b`),
	regexp.MustCompile(`(?i)\bsocial\s+security\b`),
}

var (
	mathSymbolsPattern = regexp.MustCompile(`[\+\-\*\/\^\=\<\>\(\)\[\]\{\}\.\d]`)
	wordPattern        = regexp.MustCompile(`\b\w+\b`)
)

// Gateway guards both ends of the pipeline: questions must look like
// mathematics on the way in, answers must be free of prohibited content
// on the way out. An optional lightweight LLM classifier handles the
// ambiguous middle ground.
type Gateway struct {
	classifier llm.LLMProvider
	keywordRes []*regexp.Regexp
}

// NewGateway builds a gateway. classifier may be nil, in which case
// ambiguous inputs are rejected instead of classified.
func NewGateway(classifier llm.LLMProvider) *Gateway {
	keywordRes := make([]*regexp.Regexp, 0, len(mathKeywords))
	for _, keyword := range mathKeywords {
		keywordRes = append(keywordRes, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(keyword)+`\b`))
	}
	return &Gateway{
		classifier: classifier,
		keywordRes: keywordRes,
	}
}

// ValidateInput reports whether a question is an acceptable math query.
func (g *Gateway) ValidateInput(ctx context.Context, input string) bool {
	if strings.TrimSpace(input) == "" {
		return false
	}

	for _, pattern := range prohibitedPatterns {
		if pattern.MatchString(input) {
			return false
		}
	}

	if len(wordPattern.FindAllString(strings.ToLower(input), -1)) == 0 {
		return false
	}

	hasMathSymbols := mathSymbolsPattern.MatchString(input)
	keywordCount := 0
	for _, re := range g.keywordRes {
		if re.MatchString(input) {
			keywordCount++
		}
	}

	if hasMathSymbols || keywordCount > 0 {
		return true
	}

	if g.classifier != nil {
		return g.classify(ctx, input)
	}

	return false
}

// ValidateOutput reports whether a generated solution is safe to return.
func (g *Gateway) ValidateOutput(steps []string) bool {
	joined := strings.Join(steps, " ")
	for _, pattern := range prohibitedPatterns {
		if pattern.MatchString(joined) {
			return false
		}
	}
	return true
}

func (g *Gateway) classify(ctx context.Context, input string) bool {
	prompt := `Classify the following query as either 'MATH' or 'NOT_MATH'.
The query should only be classified as 'MATH' if it's directly related to
mathematical concepts, problems, or education.

Query: ` + input + `

Classification:`

	response, err := g.classifier.Generate(ctx, prompt, llm.WithTemperature(0.0), llm.WithMaxTokens(100))
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToUpper(response), "MATH") &&
		!strings.Contains(strings.ToUpper(response), "NOT_MATH")
}
