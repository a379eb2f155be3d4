package router

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"math-agent-be/internal/constant"
	"math-agent-be/internal/pkg/logger"
	"math-agent-be/pkg/agent/evidence"
)

type fakeKB struct {
	candidates []evidence.KBCandidate
	goodMatch  bool
	err        error
	panics     bool
}

func (f *fakeKB) Search(ctx context.Context, question string) ([]evidence.KBCandidate, bool, error) {
	if f.panics {
		panic("kb store corrupted")
	}
	return f.candidates, f.goodMatch, f.err
}

type fakeWeb struct {
	results   []evidence.WebResult
	err       error
	lastQuery string
}

func (f *fakeWeb) Search(ctx context.Context, query string, limit int) ([]evidence.WebResult, error) {
	f.lastQuery = query
	return f.results, f.err
}

type fakeExtractor struct {
	content string
}

func (f *fakeExtractor) FromResults(ctx context.Context, results []evidence.WebResult, limit int) string {
	return f.content
}

type fakeSynth struct {
	kbText        string
	webText       string
	encouragement string
	kbErr         error
	webErr        error
	encErr        error
}

func (f *fakeSynth) FromKB(ctx context.Context, question string, candidates []evidence.KBCandidate) (string, error) {
	return f.kbText, f.kbErr
}

func (f *fakeSynth) FromWeb(ctx context.Context, question, webContent string) (string, error) {
	return f.webText, f.webErr
}

func (f *fakeSynth) Encouragement(ctx context.Context, question string) (string, error) {
	return f.encouragement, f.encErr
}

func (f *fakeSynth) ModelName() string { return "fake-model" }

type fakeRecorder struct {
	records []*InteractionRecord
}

func (f *fakeRecorder) Record(record *InteractionRecord) {
	f.records = append(f.records, record)
}

func newTestRouter(kb *fakeKB, web *fakeWeb, extractor *fakeExtractor, synth *fakeSynth, recorder *fakeRecorder) *Router {
	return NewRouter(kb, web, extractor, synth, recorder, logger.Noop(), 5, 2)
}

func TestRouteKBHit(t *testing.T) {
	kb := &fakeKB{
		candidates: []evidence.KBCandidate{{Answer: "subtract 3 then divide by 2", Similarity: 0.85}},
		goodMatch:  true,
	}
	synth := &fakeSynth{kbText: "Step 1: Subtract 3 from both sides\nStep 2: Divide both sides by 2"}
	recorder := &fakeRecorder{}
	r := newTestRouter(kb, &fakeWeb{}, &fakeExtractor{}, synth, recorder)

	answer := r.Route(context.Background(), "solve 2x + 3 = 7")

	assert.Equal(t, constant.SourceKnowledgeBase, answer.Source)
	assert.Equal(t, OutcomeKBHit, answer.Outcome)
	assert.Equal(t, []string{"Subtract 3 from both sides", "Divide both sides by 2"}, answer.Steps)

	require.Len(t, recorder.records, 1)
	assert.Equal(t, "solve 2x + 3 = 7", recorder.records[0].KbQuery)
	assert.Contains(t, recorder.records[0].ContextUsed, "subtract 3 then divide by 2")
	assert.Equal(t, "fake-model", recorder.records[0].LlmModel)
}

func TestRouteWebSynthOnKBMiss(t *testing.T) {
	kb := &fakeKB{
		candidates: []evidence.KBCandidate{{Answer: "unrelated", Similarity: 0.40}},
		goodMatch:  false,
	}
	web := &fakeWeb{results: []evidence.WebResult{
		{Title: "a", URL: "https://example.com/a"},
		{Title: "b", URL: "https://khanacademy.org/b"},
		{Title: "c", URL: "https://example.com/c"},
	}}
	synth := &fakeSynth{webText: "Step 1: Square both sides\nStep 2: Check the roots"}
	recorder := &fakeRecorder{}
	r := newTestRouter(kb, web, &fakeExtractor{content: "extracted evidence"}, synth, recorder)

	answer := r.Route(context.Background(), "solve sqrt(x) = 4")

	assert.Equal(t, constant.SourceWebSearch, answer.Source)
	assert.Equal(t, OutcomeWebSynth, answer.Outcome)
	assert.Equal(t, []string{"Square both sides", "Check the roots"}, answer.Steps)
	assert.Equal(t, "math problem sqrt(x) = 4 solution", web.lastQuery)

	require.Len(t, recorder.records, 1)
	record := recorder.records[0]
	assert.Len(t, record.WebSearchResults, 2)
	// the ranker puts the preferred domain first
	assert.Equal(t, "https://khanacademy.org/b", record.WebSearchResults[0].URL)
	assert.Equal(t, "extracted evidence", record.ContextUsed)
}

func TestRouteCannotAnswerWhenWebEmpty(t *testing.T) {
	kb := &fakeKB{}
	synth := &fakeSynth{encouragement: "This looks like an algebra problem, try isolating the variable."}
	recorder := &fakeRecorder{}
	r := newTestRouter(kb, &fakeWeb{}, &fakeExtractor{}, synth, recorder)

	answer := r.Route(context.Background(), "solve the unsolvable")

	assert.Equal(t, constant.SourceWebSearchFailed, answer.Source)
	assert.Equal(t, OutcomeCannotAnswer, answer.Outcome)
	require.Len(t, answer.Steps, 1)
	assert.Equal(t, "This looks like an algebra problem, try isolating the variable.", answer.Steps[0])
}

func TestRouteCannotAnswerFallsBackToCannedApology(t *testing.T) {
	synth := &fakeSynth{encErr: errors.New("model down")}
	r := newTestRouter(&fakeKB{}, &fakeWeb{}, &fakeExtractor{}, synth, &fakeRecorder{})

	answer := r.Route(context.Background(), "solve something")

	require.Len(t, answer.Steps, 1)
	assert.Equal(t, constant.ApologySynthesisFailure, answer.Steps[0])
	assert.Equal(t, constant.SourceWebSearchFailed, answer.Source)
}

func TestRouteCannotAnswerWhenExtractionEmpty(t *testing.T) {
	web := &fakeWeb{results: []evidence.WebResult{{Title: "a", URL: "https://example.com/a"}}}
	synth := &fakeSynth{encouragement: "encouraging words"}
	recorder := &fakeRecorder{}
	r := newTestRouter(&fakeKB{}, web, &fakeExtractor{content: ""}, synth, recorder)

	answer := r.Route(context.Background(), "integrate e^x^2")

	assert.Equal(t, constant.SourceWebSearchFailed, answer.Source)
	assert.Equal(t, OutcomeCannotAnswer, answer.Outcome)
	// raw search results are still recorded for provenance
	require.Len(t, recorder.records, 1)
	assert.Len(t, recorder.records[0].WebSearchResults, 1)
}

func TestRouteInsufficiencyOverride(t *testing.T) {
	web := &fakeWeb{results: []evidence.WebResult{{Title: "a", URL: "https://example.com/a"}}}
	synth := &fakeSynth{webText: "Step 1: Some partial work. However I don't have enough information to finish."}
	r := newTestRouter(&fakeKB{}, web, &fakeExtractor{content: "thin evidence"}, synth, &fakeRecorder{})

	answer := r.Route(context.Background(), "solve x")

	assert.Equal(t, constant.SourceWebSearchFailed, answer.Source)
	assert.Equal(t, OutcomeWebFailed, answer.Outcome)
	assert.Equal(t, []string{constant.ApologyInsufficientEvidence}, answer.Steps)
}

func TestRouteWebSynthesisFailure(t *testing.T) {
	web := &fakeWeb{results: []evidence.WebResult{{Title: "a", URL: "https://example.com/a"}}}
	synth := &fakeSynth{webErr: errors.New("timeout")}
	r := newTestRouter(&fakeKB{}, web, &fakeExtractor{content: "evidence"}, synth, &fakeRecorder{})

	answer := r.Route(context.Background(), "solve x")

	assert.Equal(t, constant.SourceWebSearchFailed, answer.Source)
	assert.Equal(t, []string{constant.ApologySynthesisFailure}, answer.Steps)
}

func TestRouteKBErrorFallsBackToWeb(t *testing.T) {
	kb := &fakeKB{err: errors.New("vector store unavailable")}
	web := &fakeWeb{results: []evidence.WebResult{{Title: "a", URL: "https://example.com/a"}}}
	synth := &fakeSynth{webText: "Step 1: done"}
	r := newTestRouter(kb, web, &fakeExtractor{content: "evidence"}, synth, &fakeRecorder{})

	answer := r.Route(context.Background(), "solve x")

	assert.Equal(t, constant.SourceWebSearch, answer.Source)
}

func TestRouteNeverPanics(t *testing.T) {
	kb := &fakeKB{panics: true}
	recorder := &fakeRecorder{}
	r := newTestRouter(kb, &fakeWeb{}, &fakeExtractor{}, &fakeSynth{}, recorder)

	answer := r.Route(context.Background(), "solve x")

	assert.Equal(t, constant.SourceError, answer.Source)
	assert.Equal(t, OutcomeError, answer.Outcome)
	assert.Equal(t, []string{constant.ApologyInternalError}, answer.Steps)
	require.Len(t, recorder.records, 1)
}
