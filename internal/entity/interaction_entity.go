package entity

import (
	"time"

	"github.com/google/uuid"
)

// Interaction is one answered question with its provenance snapshot.
// Created once per routed request, never mutated afterwards.
type Interaction struct {
	Id               uuid.UUID
	Question         string
	Solution         []string
	Source           string
	KbQuery          string
	WebSearchQuery   string
	WebSearchResults []WebResultSnapshot
	ContextUsed      string
	LlmModel         string
	CreatedAt        time.Time
}

// WebResultSnapshot is the raw search result kept for provenance.
type WebResultSnapshot struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Snippet string  `json:"snippet"`
	Score   float64 `json:"score"`
}
