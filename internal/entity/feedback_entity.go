package entity

import (
	"time"

	"github.com/google/uuid"
)

type Feedback struct {
	Id            uuid.UUID
	InteractionId uuid.UUID
	FeedbackType  string // "helpful", "needs_improvement", "incorrect", "detailed"
	Notes         string
	CreatedAt     time.Time
}
