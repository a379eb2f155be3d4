package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByInteractionID struct {
	InteractionID uuid.UUID
}

func (s ByInteractionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("interaction_id = ?", s.InteractionID)
}

type ByFeedbackType struct {
	FeedbackType string
}

func (s ByFeedbackType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("feedback_type = ?", s.FeedbackType)
}

type ByTopic struct {
	Topic string
}

func (s ByTopic) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("topic = ?", s.Topic)
}

type BySource struct {
	Source string
}

func (s BySource) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("source = ?", s.Source)
}
