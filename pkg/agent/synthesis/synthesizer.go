package synthesis

import (
	"context"
	"strings"

	"math-agent-be/internal/constant"
	"math-agent-be/pkg/agent/evidence"
	"math-agent-be/pkg/llm"
)

// Phrases the model uses when the provided evidence was not enough to
// solve the problem. Matched case-insensitively against the synthesis
// output.
var insufficiencyPhrases = []string{
	"cannot provide a complete solution",
	"don't have enough information",
	"insufficient information",
	"not enough context",
	"cannot solve this problem",
	"unable to provide a solution",
}

// IndicatesInsufficiency reports whether a synthesized answer admits it
// could not solve the problem from the evidence it was given.
func IndicatesInsufficiency(text string) bool {
	lowered := strings.ToLower(text)
	for _, phrase := range insufficiencyPhrases {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}
	return false
}

// Synthesizer turns retrieved evidence into a step-by-step solution via
// an LLM. It produces raw solution text only; structuring into steps and
// outcome tagging is the caller's concern.
type Synthesizer struct {
	provider llm.LLMProvider
}

func NewSynthesizer(provider llm.LLMProvider) *Synthesizer {
	return &Synthesizer{provider: provider}
}

func (s *Synthesizer) ModelName() string {
	return s.provider.ModelName()
}

// FromKB synthesizes a solution grounded on knowledge base candidates.
func (s *Synthesizer) FromKB(ctx context.Context, question string, candidates []evidence.KBCandidate) (string, error) {
	return s.provider.Chat(ctx, []llm.Message{
		{Role: constant.ChatMessageRoleSystem, Content: kbSystemPrompt},
		{Role: constant.ChatMessageRoleUser, Content: buildKBUserPrompt(question, candidates)},
	}, llm.WithTemperature(0.2))
}

// FromWeb synthesizes a solution grounded on extracted web content. The
// prompt instructs the model to self-report when the content is not
// sufficient instead of inventing an answer.
func (s *Synthesizer) FromWeb(ctx context.Context, question, webContent string) (string, error) {
	return s.provider.Chat(ctx, []llm.Message{
		{Role: constant.ChatMessageRoleSystem, Content: webSystemPrompt},
		{Role: constant.ChatMessageRoleUser, Content: buildWebUserPrompt(question, webContent)},
	}, llm.WithTemperature(0.2))
}

// Encouragement asks the model for an honest "cannot answer" response
// with general guidance for the student.
func (s *Synthesizer) Encouragement(ctx context.Context, question string) (string, error) {
	return s.provider.Chat(ctx, []llm.Message{
		{Role: constant.ChatMessageRoleSystem, Content: encouragementSystemPrompt},
		{Role: constant.ChatMessageRoleUser, Content: buildEncouragementUserPrompt(question)},
	}, llm.WithTemperature(0.2))
}
