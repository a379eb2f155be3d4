package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Interaction struct {
	Id               uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Question         string         `gorm:"type:text;not null"`
	Solution         datatypes.JSON `gorm:"type:jsonb"` // solution steps as JSON array
	Source           string         `gorm:"type:varchar(32);not null;index"`
	KbQuery          string         `gorm:"type:text"`
	WebSearchQuery   string         `gorm:"type:text"`
	WebSearchResults datatypes.JSON `gorm:"type:jsonb"`
	ContextUsed      string         `gorm:"type:text"`
	LlmModel         string         `gorm:"type:varchar(64)"`
	CreatedAt        time.Time      `gorm:"autoCreateTime;index"`
}

func (Interaction) TableName() string {
	return "interactions"
}
