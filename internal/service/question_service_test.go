package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"math-agent-be/internal/constant"
	"math-agent-be/internal/dto"
	"math-agent-be/internal/pkg/logger"
	"math-agent-be/internal/pkg/serverutils"
	"math-agent-be/pkg/agent/router"

	"github.com/google/uuid"
)

type fakeRouter struct {
	answer *router.Answer
	calls  int
}

func (f *fakeRouter) Route(ctx context.Context, question string) *router.Answer {
	f.calls++
	return f.answer
}

type fakeGate struct {
	acceptInput  bool
	acceptOutput bool
}

func (f *fakeGate) ValidateInput(ctx context.Context, input string) bool { return f.acceptInput }
func (f *fakeGate) ValidateOutput(steps []string) bool                   { return f.acceptOutput }

func TestAskRejectsNonMathInput(t *testing.T) {
	svc := NewQuestionService(&fakeRouter{}, &fakeGate{acceptInput: false}, nil, nil, logger.Noop())

	_, err := svc.Ask(context.Background(), &dto.AskQuestionRequest{Question: "tell me a joke"})

	require.Error(t, err)
	appErr, ok := err.(*serverutils.AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Code)
}

func TestAskReturnsRoutedAnswer(t *testing.T) {
	answer := &router.Answer{
		InteractionId: uuid.New(),
		Question:      "solve 2x = 4",
		Steps:         []string{"Divide both sides by 2", "x = 2"},
		Source:        constant.SourceKnowledgeBase,
		Outcome:       router.OutcomeKBHit,
	}
	svc := NewQuestionService(&fakeRouter{answer: answer}, &fakeGate{acceptInput: true, acceptOutput: true}, nil, nil, logger.Noop())

	res, err := svc.Ask(context.Background(), &dto.AskQuestionRequest{Question: "solve 2x = 4"})

	require.NoError(t, err)
	assert.Equal(t, answer.InteractionId, res.InteractionId)
	assert.Equal(t, constant.SourceKnowledgeBase, res.Source)
	assert.Equal(t, []string{"Divide both sides by 2", "x = 2"}, res.Solution)
}

func TestAskRejectsUnsafeOutput(t *testing.T) {
	answer := &router.Answer{
		InteractionId: uuid.New(),
		Steps:         []string{"something inappropriate"},
		Source:        constant.SourceWebSearch,
	}
	svc := NewQuestionService(&fakeRouter{answer: answer}, &fakeGate{acceptInput: true, acceptOutput: false}, nil, nil, logger.Noop())

	_, err := svc.Ask(context.Background(), &dto.AskQuestionRequest{Question: "solve 2x = 4"})

	require.Error(t, err)
	appErr, ok := err.(*serverutils.AppError)
	require.True(t, ok)
	assert.Equal(t, 422, appErr.Code)
}
