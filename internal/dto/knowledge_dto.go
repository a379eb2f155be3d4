package dto

import (
	"time"

	"github.com/google/uuid"
)

type AddKnowledgeRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
	Topic    string `json:"topic,omitempty"`
	Kind     string `json:"kind,omitempty"`
}

type AddKnowledgeResponse struct {
	Id uuid.UUID `json:"id"`
}

type SearchKnowledgeResponse struct {
	Document   string  `json:"document"`
	Similarity float64 `json:"similarity"`
}

type KnowledgeEntryResponse struct {
	Id        uuid.UUID `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Topic     string    `json:"topic,omitempty"`
	Kind      string    `json:"kind,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
