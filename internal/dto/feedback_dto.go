package dto

import (
	"github.com/google/uuid"
)

type SubmitFeedbackRequest struct {
	InteractionId uuid.UUID `json:"interaction_id" validate:"required"`
	FeedbackType  string    `json:"feedback_type" validate:"required,oneof=helpful needs_improvement incorrect"`
	Notes         string    `json:"notes,omitempty"`
}

type SubmitDetailedFeedbackRequest struct {
	InteractionId uuid.UUID `json:"interaction_id" validate:"required"`
	FeedbackText  string    `json:"feedback_text" validate:"required"`
}

type SubmitFeedbackResponse struct {
	Id uuid.UUID `json:"id"`
}

type FeedbackAnalysisResponse struct {
	FeedbackCounts     map[string]int64 `json:"feedback_counts"`
	SourceDistribution map[string]int64 `json:"source_distribution"`
	SuccessRate        float64          `json:"success_rate"`
	TotalInteractions  int64            `json:"total_interactions"`
	TotalFeedback      int64            `json:"total_feedback"`
}
