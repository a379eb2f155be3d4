package router

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"math-agent-be/internal/constant"
	"math-agent-be/internal/pkg/logger"
	"math-agent-be/pkg/agent/evidence"
	"math-agent-be/pkg/agent/rank"
	stepparse "math-agent-be/pkg/agent/steps"
	"math-agent-be/pkg/agent/synthesis"
	"math-agent-be/pkg/agent/websearch"
)

// Outcome tags the terminal stage a request ended in. Every Route call
// finishes in exactly one of these.
type Outcome string

const (
	OutcomeKBHit        Outcome = "KB_HIT"
	OutcomeWebSynth     Outcome = "WEB_SYNTH"
	OutcomeWebFailed    Outcome = "WEB_FAILED"
	OutcomeCannotAnswer Outcome = "CANNOT_ANSWER"
	OutcomeError        Outcome = "ERROR"
)

// Answer is the externally visible result of routing one question.
type Answer struct {
	InteractionId uuid.UUID
	Question      string
	Steps         []string
	Source        string
	Outcome       Outcome
}

// InteractionRecord is the Answer plus the evidence trail, handed to the
// recorder for persistence.
type InteractionRecord struct {
	Answer
	KbQuery          string
	WebSearchQuery   string
	WebSearchResults []evidence.WebResult
	ContextUsed      string
	LlmModel         string
}

// KBSearcher retrieves scored knowledge base candidates and reports
// whether any of them cleared the similarity threshold.
type KBSearcher interface {
	Search(ctx context.Context, question string) ([]evidence.KBCandidate, bool, error)
}

// Extractor reduces ranked search results to a single evidence blob.
type Extractor interface {
	FromResults(ctx context.Context, results []evidence.WebResult, limit int) string
}

// Synthesizer produces solution prose for each evidence mode.
type Synthesizer interface {
	FromKB(ctx context.Context, question string, candidates []evidence.KBCandidate) (string, error)
	FromWeb(ctx context.Context, question, webContent string) (string, error)
	Encouragement(ctx context.Context, question string) (string, error)
	ModelName() string
}

// Recorder persists an interaction record. Implementations must be
// fire-and-forget; Route never waits on or fails because of them.
type Recorder interface {
	Record(record *InteractionRecord)
}

const contextSnapshotLimit = 1000

// Router decides which evidence source answers a question and packages
// the synthesized result with provenance.
type Router struct {
	kb              KBSearcher
	web             websearch.SearchClient
	extractor       Extractor
	synth           Synthesizer
	recorder        Recorder
	log             logger.ILogger
	webResultLimit  int
	webExtractLimit int
}

func NewRouter(
	kb KBSearcher,
	web websearch.SearchClient,
	extractor Extractor,
	synth Synthesizer,
	recorder Recorder,
	log logger.ILogger,
	webResultLimit int,
	webExtractLimit int,
) *Router {
	if webResultLimit <= 0 {
		webResultLimit = 5
	}
	if webExtractLimit <= 0 {
		webExtractLimit = 2
	}
	return &Router{
		kb:              kb,
		web:             web,
		extractor:       extractor,
		synth:           synth,
		recorder:        recorder,
		log:             log,
		webResultLimit:  webResultLimit,
		webExtractLimit: webExtractLimit,
	}
}

// Route processes one question through the pipeline. It never returns an
// error: every failure degrades to a well-formed Answer whose Source tag
// describes what happened.
func (r *Router) Route(ctx context.Context, question string) (answer *Answer) {
	interactionId := uuid.New()

	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("router", "panic while routing question", map[string]interface{}{
				"interaction_id": interactionId.String(),
				"panic":          fmt.Sprintf("%v", rec),
			})
			record := r.errorRecord(interactionId, question)
			r.record(record)
			answer = &record.Answer
		}
	}()

	record := r.runStates(ctx, interactionId, question)
	r.record(record)
	return &record.Answer
}

// runStates walks the per-request state machine. Each helper returns a
// complete terminal record so every path is exhaustive on its own.
func (r *Router) runStates(ctx context.Context, interactionId uuid.UUID, question string) *InteractionRecord {
	// KB_LOOKUP
	candidates, foundGoodMatch, err := r.kb.Search(ctx, question)
	if err != nil {
		// provider errors count as a miss, fallback continues
		r.log.Warn("router", "kb search failed, falling back to web", map[string]interface{}{
			"interaction_id": interactionId.String(),
			"error":          err.Error(),
		})
		candidates, foundGoodMatch = nil, false
	}

	if foundGoodMatch && len(candidates) > 0 {
		return r.kbHit(ctx, interactionId, question, candidates)
	}

	// WEB_SEARCH
	query := websearch.BuildQuery(question)
	results, err := r.web.Search(ctx, query, r.webResultLimit)
	if err != nil {
		r.log.Warn("router", "web search failed", map[string]interface{}{
			"interaction_id": interactionId.String(),
			"error":          err.Error(),
		})
		results = nil
	}
	if len(results) == 0 {
		return r.cannotAnswer(ctx, interactionId, question, query, nil)
	}

	// WEB_RANK
	ranked := rank.Rank(results)
	content := r.extractor.FromResults(ctx, ranked, r.webExtractLimit)
	snapshot := topResults(ranked, r.webExtractLimit)
	if content == "" {
		return r.cannotAnswer(ctx, interactionId, question, query, snapshot)
	}

	// WEB_SYNTH
	return r.webSynth(ctx, interactionId, question, query, snapshot, content)
}

func (r *Router) kbHit(ctx context.Context, interactionId uuid.UUID, question string, candidates []evidence.KBCandidate) *InteractionRecord {
	contextUsed := joinCandidates(candidates)

	text, err := r.synth.FromKB(ctx, question, candidates)
	if err != nil {
		r.log.Error("router", "kb synthesis failed", map[string]interface{}{
			"interaction_id": interactionId.String(),
			"error":          err.Error(),
		})
		return &InteractionRecord{
			Answer: Answer{
				InteractionId: interactionId,
				Question:      question,
				Steps:         []string{constant.ApologySynthesisFailure},
				Source:        constant.SourceWebSearchFailed,
				Outcome:       OutcomeWebFailed,
			},
			KbQuery:     question,
			ContextUsed: truncate(contextUsed, contextSnapshotLimit),
			LlmModel:    r.synth.ModelName(),
		}
	}

	return &InteractionRecord{
		Answer: Answer{
			InteractionId: interactionId,
			Question:      question,
			Steps:         stepparse.Extract(text),
			Source:        constant.SourceKnowledgeBase,
			Outcome:       OutcomeKBHit,
		},
		KbQuery:     question,
		ContextUsed: truncate(contextUsed, contextSnapshotLimit),
		LlmModel:    r.synth.ModelName(),
	}
}

func (r *Router) webSynth(
	ctx context.Context,
	interactionId uuid.UUID,
	question string,
	query string,
	snapshot []evidence.WebResult,
	content string,
) *InteractionRecord {
	record := &InteractionRecord{
		Answer: Answer{
			InteractionId: interactionId,
			Question:      question,
		},
		WebSearchQuery:   query,
		WebSearchResults: snapshot,
		ContextUsed:      truncate(content, contextSnapshotLimit),
		LlmModel:         r.synth.ModelName(),
	}

	text, err := r.synth.FromWeb(ctx, question, content)
	if err != nil {
		r.log.Error("router", "web synthesis failed", map[string]interface{}{
			"interaction_id": interactionId.String(),
			"error":          err.Error(),
		})
		record.Steps = []string{constant.ApologySynthesisFailure}
		record.Source = constant.SourceWebSearchFailed
		record.Outcome = OutcomeWebFailed
		return record
	}

	if synthesis.IndicatesInsufficiency(text) {
		// keep the original prose in the log only, the user gets the apology
		r.log.Info("router", "synthesis self-reported insufficient evidence", map[string]interface{}{
			"interaction_id": interactionId.String(),
			"prose":          truncate(text, contextSnapshotLimit),
		})
		record.Steps = []string{constant.ApologyInsufficientEvidence}
		record.Source = constant.SourceWebSearchFailed
		record.Outcome = OutcomeWebFailed
		return record
	}

	record.Steps = stepparse.Extract(text)
	record.Source = constant.SourceWebSearch
	record.Outcome = OutcomeWebSynth
	return record
}

func (r *Router) cannotAnswer(
	ctx context.Context,
	interactionId uuid.UUID,
	question string,
	query string,
	snapshot []evidence.WebResult,
) *InteractionRecord {
	step := constant.ApologySynthesisFailure
	if text, err := r.synth.Encouragement(ctx, question); err == nil && strings.TrimSpace(text) != "" {
		step = strings.TrimSpace(text)
	} else if err != nil {
		r.log.Warn("router", "encouragement synthesis failed, using canned apology", map[string]interface{}{
			"interaction_id": interactionId.String(),
			"error":          err.Error(),
		})
	}

	return &InteractionRecord{
		Answer: Answer{
			InteractionId: interactionId,
			Question:      question,
			Steps:         []string{step},
			Source:        constant.SourceWebSearchFailed,
			Outcome:       OutcomeCannotAnswer,
		},
		WebSearchQuery:   query,
		WebSearchResults: snapshot,
		LlmModel:         r.synth.ModelName(),
	}
}

func (r *Router) errorRecord(interactionId uuid.UUID, question string) *InteractionRecord {
	return &InteractionRecord{
		Answer: Answer{
			InteractionId: interactionId,
			Question:      question,
			Steps:         []string{constant.ApologyInternalError},
			Source:        constant.SourceError,
			Outcome:       OutcomeError,
		},
	}
}

func (r *Router) record(record *InteractionRecord) {
	if r.recorder == nil {
		return
	}
	r.recorder.Record(record)
}

func joinCandidates(candidates []evidence.KBCandidate) string {
	texts := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		texts = append(texts, candidate.Answer)
	}
	return strings.Join(texts, "\n\n")
}

func topResults(ranked []evidence.WebResult, limit int) []evidence.WebResult {
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]evidence.WebResult, len(ranked))
	copy(out, ranked)
	return out
}

func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit]
}
