package model

import (
	"time"

	"github.com/google/uuid"
)

type Feedback struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	InteractionId uuid.UUID `gorm:"type:uuid;not null;index"`
	FeedbackType  string    `gorm:"type:varchar(32);not null;index"`
	Notes         string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index"`
}

func (Feedback) TableName() string {
	return "feedback"
}
