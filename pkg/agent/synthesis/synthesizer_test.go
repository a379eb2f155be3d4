package synthesis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"math-agent-be/pkg/agent/evidence"
	"math-agent-be/pkg/llm"
)

type stubProvider struct {
	lastHistory []llm.Message
	response    string
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	s.lastHistory = history
	return s.response, nil
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return s.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

func (s *stubProvider) ModelName() string { return "stub-model" }

func TestIndicatesInsufficiency(t *testing.T) {
	cases := []struct {
		text     string
		expected bool
	}{
		{"Step 1: Add two to both sides", false},
		{"Unfortunately I cannot provide a complete solution here.", true},
		{"I DON'T HAVE ENOUGH INFORMATION to continue.", true},
		{"There is not enough context in the sources.", true},
		{"The final answer is 42.", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, IndicatesInsufficiency(tc.text), tc.text)
	}
}

func TestFromKBIncludesScoredEntries(t *testing.T) {
	provider := &stubProvider{response: "Step 1: done"}
	synthesizer := NewSynthesizer(provider)

	_, err := synthesizer.FromKB(context.Background(), "solve x+1=2", []evidence.KBCandidate{
		{Question: "solve x+2=3", Answer: "subtract 2 from both sides", Similarity: 0.91},
	})

	require.NoError(t, err)
	require.Len(t, provider.lastHistory, 2)
	assert.Equal(t, "system", provider.lastHistory[0].Role)
	assert.Contains(t, provider.lastHistory[1].Content, "relevance: 0.91")
	assert.Contains(t, provider.lastHistory[1].Content, "subtract 2 from both sides")
	assert.Contains(t, provider.lastHistory[1].Content, "solve x+1=2")
}

func TestFromWebIncludesContent(t *testing.T) {
	provider := &stubProvider{response: "Step 1: done"}
	synthesizer := NewSynthesizer(provider)

	_, err := synthesizer.FromWeb(context.Background(), "what is 2+2", "Source: x\ntwo plus two equals four")

	require.NoError(t, err)
	require.Len(t, provider.lastHistory, 2)
	assert.Contains(t, provider.lastHistory[1].Content, "two plus two equals four")
	assert.Contains(t, provider.lastHistory[0].Content, "Do NOT make up or hallucinate")
}

func TestEncouragementQuotesQuestion(t *testing.T) {
	provider := &stubProvider{response: "Keep trying!"}
	synthesizer := NewSynthesizer(provider)

	text, err := synthesizer.Encouragement(context.Background(), "prove the Riemann hypothesis")

	require.NoError(t, err)
	assert.Equal(t, "Keep trying!", text)
	assert.Contains(t, provider.lastHistory[1].Content, `"prove the Riemann hypothesis"`)
}
