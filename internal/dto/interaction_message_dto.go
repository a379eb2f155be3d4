package dto

import (
	"github.com/google/uuid"

	"math-agent-be/internal/entity"
)

// RecordInteractionMessage travels over the in-process bus from the
// routing pipeline to the persistence consumer.
type RecordInteractionMessage struct {
	InteractionId    uuid.UUID                  `json:"interaction_id"`
	Question         string                     `json:"question"`
	Solution         []string                   `json:"solution"`
	Source           string                     `json:"source"`
	KbQuery          string                     `json:"kb_query,omitempty"`
	WebSearchQuery   string                     `json:"web_search_query,omitempty"`
	WebSearchResults []entity.WebResultSnapshot `json:"web_search_results,omitempty"`
	ContextUsed      string                     `json:"context_used,omitempty"`
	LlmModel         string                     `json:"llm_model,omitempty"`
}
