package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"math-agent-be/internal/constant"
	"math-agent-be/internal/dto"
	"math-agent-be/internal/entity"
	"math-agent-be/internal/pkg/logger"
	"math-agent-be/internal/pkg/serverutils"
	"math-agent-be/internal/repository/specification"
	"math-agent-be/internal/repository/unitofwork"
	"math-agent-be/pkg/events"
	pktNats "math-agent-be/pkg/nats"
)

var feedbackTypes = []string{"helpful", "needs_improvement", "incorrect", "detailed"}

type IFeedbackService interface {
	Submit(ctx context.Context, req *dto.SubmitFeedbackRequest) (*dto.SubmitFeedbackResponse, error)
	SubmitDetailed(ctx context.Context, req *dto.SubmitDetailedFeedbackRequest) (*dto.SubmitFeedbackResponse, error)
	Analyze(ctx context.Context) (*dto.FeedbackAnalysisResponse, error)
}

type feedbackService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	logDir         string
	logger         logger.ILogger
}

func NewFeedbackService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	logDir string,
	log logger.ILogger,
) IFeedbackService {
	return &feedbackService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logDir:         logDir,
		logger:         log,
	}
}

func (s *feedbackService) Submit(ctx context.Context, req *dto.SubmitFeedbackRequest) (*dto.SubmitFeedbackResponse, error) {
	return s.store(ctx, req.InteractionId, req.FeedbackType, req.Notes)
}

func (s *feedbackService) SubmitDetailed(ctx context.Context, req *dto.SubmitDetailedFeedbackRequest) (*dto.SubmitFeedbackResponse, error) {
	return s.store(ctx, req.InteractionId, "detailed", req.FeedbackText)
}

func (s *feedbackService) store(ctx context.Context, interactionId uuid.UUID, feedbackType, notes string) (*dto.SubmitFeedbackResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	interaction, err := uow.InteractionRepository().FindOne(ctx, specification.ByID{ID: interactionId})
	if err != nil {
		return nil, err
	}
	if interaction == nil {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "interaction not found")
	}

	feedback := &entity.Feedback{
		Id:            uuid.New(),
		InteractionId: interactionId,
		FeedbackType:  feedbackType,
		Notes:         notes,
		CreatedAt:     time.Now(),
	}

	if err := uow.FeedbackRepository().Create(ctx, feedback); err != nil {
		return nil, err
	}

	// side channels are best effort, the stored row is the record of truth
	s.logFeedbackToFile(feedback)
	s.publishEvent(ctx, feedback)

	s.logger.Info("FeedbackService", "feedback submitted", map[string]interface{}{
		"interaction_id": interactionId.String(),
		"feedback_type":  feedbackType,
	})

	return &dto.SubmitFeedbackResponse{Id: feedback.Id}, nil
}

func (s *feedbackService) Analyze(ctx context.Context) (*dto.FeedbackAnalysisResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	feedbackCounts := make(map[string]int64, len(feedbackTypes))
	var totalFeedback int64
	for _, feedbackType := range feedbackTypes {
		count, err := uow.FeedbackRepository().Count(ctx, specification.ByFeedbackType{FeedbackType: feedbackType})
		if err != nil {
			return nil, err
		}
		feedbackCounts[feedbackType] = count
		totalFeedback += count
	}

	sourceCounts, err := uow.InteractionRepository().CountBySource(ctx)
	if err != nil {
		return nil, err
	}
	sourceDistribution := make(map[string]int64, len(sourceCounts))
	for _, sc := range sourceCounts {
		sourceDistribution[sc.Source] = sc.Count
	}

	totalInteractions, err := uow.InteractionRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	successRate := 0.0
	if totalFeedback > 0 {
		successRate = float64(feedbackCounts["helpful"]) / float64(totalFeedback) * 100
	}

	return &dto.FeedbackAnalysisResponse{
		FeedbackCounts:     feedbackCounts,
		SourceDistribution: sourceDistribution,
		SuccessRate:        successRate,
		TotalInteractions:  totalInteractions,
		TotalFeedback:      totalFeedback,
	}, nil
}

// logFeedbackToFile drops a JSON snapshot per feedback entry, giving an
// audit trail that survives database resets.
func (s *feedbackService) logFeedbackToFile(feedback *entity.Feedback) {
	if s.logDir == "" {
		return
	}

	if err := os.MkdirAll(s.logDir, 0o755); err != nil {
		s.logger.Warn("FeedbackService", "failed to create feedback log dir", map[string]interface{}{"error": err.Error()})
		return
	}

	payload, err := json.MarshalIndent(map[string]interface{}{
		"interaction_id": feedback.InteractionId.String(),
		"feedback_type":  feedback.FeedbackType,
		"notes":          feedback.Notes,
		"timestamp":      feedback.CreatedAt.UTC().Format(time.RFC3339),
	}, "", "  ")
	if err != nil {
		return
	}

	filename := fmt.Sprintf("%s_%s_%s.json",
		feedback.InteractionId.String(),
		feedback.FeedbackType,
		feedback.CreatedAt.UTC().Format("20060102_150405"),
	)

	if err := os.WriteFile(filepath.Join(s.logDir, filename), payload, 0o644); err != nil {
		s.logger.Warn("FeedbackService", "failed to write feedback log file", map[string]interface{}{"error": err.Error()})
	}
}

func (s *feedbackService) publishEvent(ctx context.Context, feedback *entity.Feedback) {
	if s.eventPublisher == nil {
		return
	}

	evt := events.BaseEvent{
		Type: constant.FeedbackEventType,
		Data: map[string]interface{}{
			"feedback_id":    feedback.Id.String(),
			"interaction_id": feedback.InteractionId.String(),
			"feedback_type":  feedback.FeedbackType,
		},
		OccurredAt: time.Now(),
	}

	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("FeedbackService", "failed to publish feedback event", map[string]interface{}{"error": err.Error()})
	}
}
