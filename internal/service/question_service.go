package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"math-agent-be/internal/constant"
	"math-agent-be/internal/dto"
	"math-agent-be/internal/pkg/logger"
	"math-agent-be/internal/pkg/serverutils"
	"math-agent-be/internal/repository/specification"
	"math-agent-be/internal/repository/unitofwork"
	"math-agent-be/pkg/agent/router"
)

const solutionCacheTTL = 1 * time.Hour

// QuestionRouter is the routing pipeline entrypoint.
type QuestionRouter interface {
	Route(ctx context.Context, question string) *router.Answer
}

// AnswerGate validates questions on the way in and solutions on the way
// out.
type AnswerGate interface {
	ValidateInput(ctx context.Context, input string) bool
	ValidateOutput(steps []string) bool
}

type IQuestionService interface {
	Ask(ctx context.Context, req *dto.AskQuestionRequest) (*dto.AskQuestionResponse, error)
	GetInteraction(ctx context.Context, id uuid.UUID) (*dto.GetInteractionResponse, error)
}

type questionService struct {
	router     QuestionRouter
	gate       AnswerGate
	cache      *redis.Client
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewQuestionService(
	questionRouter QuestionRouter,
	gate AnswerGate,
	cache *redis.Client,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IQuestionService {
	return &questionService{
		router:     questionRouter,
		gate:       gate,
		cache:      cache,
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *questionService) Ask(ctx context.Context, req *dto.AskQuestionRequest) (*dto.AskQuestionResponse, error) {
	question := strings.TrimSpace(req.Question)

	if !s.gate.ValidateInput(ctx, question) {
		return nil, serverutils.NewAppError(fiber.StatusBadRequest, "Please enter a valid math question.")
	}

	if cached := s.cachedAnswer(ctx, question); cached != nil {
		return cached, nil
	}

	answer := s.router.Route(ctx, question)

	if !s.gate.ValidateOutput(answer.Steps) {
		return nil, serverutils.NewAppError(fiber.StatusUnprocessableEntity, "An issue occurred with the generated solution. Please try a different question.")
	}

	res := &dto.AskQuestionResponse{
		InteractionId: answer.InteractionId,
		Question:      answer.Question,
		Solution:      answer.Steps,
		Source:        answer.Source,
	}

	// only answers backed by actual evidence are worth caching
	if answer.Source == constant.SourceKnowledgeBase || answer.Source == constant.SourceWebSearch {
		s.storeCachedAnswer(ctx, question, res)
	}

	return res, nil
}

func (s *questionService) GetInteraction(ctx context.Context, id uuid.UUID) (*dto.GetInteractionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	interaction, err := uow.InteractionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if interaction == nil {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "interaction not found")
	}

	feedback, err := uow.FeedbackRepository().FindAll(ctx, specification.ByInteractionID{InteractionID: id})
	if err != nil {
		return nil, err
	}

	res := &dto.GetInteractionResponse{
		Id:        interaction.Id,
		Question:  interaction.Question,
		Solution:  interaction.Solution,
		Source:    interaction.Source,
		LlmModel:  interaction.LlmModel,
		CreatedAt: interaction.CreatedAt,
	}
	for _, snapshot := range interaction.WebSearchResults {
		res.WebSearchResults = append(res.WebSearchResults, dto.WebResultDTO{
			Title:   snapshot.Title,
			URL:     snapshot.URL,
			Snippet: snapshot.Snippet,
			Score:   snapshot.Score,
		})
	}
	for _, f := range feedback {
		res.Feedback = append(res.Feedback, dto.InteractionFeedback{
			Id:           f.Id,
			FeedbackType: f.FeedbackType,
			Notes:        f.Notes,
			CreatedAt:    f.CreatedAt,
		})
	}

	return res, nil
}

func (s *questionService) cachedAnswer(ctx context.Context, question string) *dto.AskQuestionResponse {
	if s.cache == nil {
		return nil
	}

	raw, err := s.cache.Get(ctx, solutionCacheKey(question)).Result()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("QuestionService", "solution cache read failed", map[string]interface{}{"error": err.Error()})
		}
		return nil
	}

	var res dto.AskQuestionResponse
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return nil
	}
	return &res
}

func (s *questionService) storeCachedAnswer(ctx context.Context, question string, res *dto.AskQuestionResponse) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(res)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, solutionCacheKey(question), raw, solutionCacheTTL).Err(); err != nil {
		s.logger.Warn("QuestionService", "solution cache write failed", map[string]interface{}{"error": err.Error()})
	}
}

func solutionCacheKey(question string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(question)))
	return "solution:" + hex.EncodeToString(sum[:])
}
