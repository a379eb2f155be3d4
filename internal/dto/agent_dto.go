package dto

import (
	"time"

	"github.com/google/uuid"
)

type AskQuestionRequest struct {
	Question string `json:"question" validate:"required"`
}

type AskQuestionResponse struct {
	InteractionId uuid.UUID `json:"interaction_id"`
	Question      string    `json:"question"`
	Solution      []string  `json:"solution"`
	Source        string    `json:"source"`
}

type GetInteractionResponse struct {
	Id               uuid.UUID             `json:"id"`
	Question         string                `json:"question"`
	Solution         []string              `json:"solution"`
	Source           string                `json:"source"`
	WebSearchResults []WebResultDTO        `json:"web_search_results,omitempty"`
	LlmModel         string                `json:"llm_model,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
	Feedback         []InteractionFeedback `json:"feedback,omitempty"`
}

type WebResultDTO struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Snippet string  `json:"snippet,omitempty"`
	Score   float64 `json:"score,omitempty"`
}

type InteractionFeedback struct {
	Id           uuid.UUID `json:"id"`
	FeedbackType string    `json:"feedback_type"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
