package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type KnowledgeEntry struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Question  string         `gorm:"type:text;not null"`
	Answer    string         `gorm:"type:text"`
	Topic     string         `gorm:"type:varchar(64);index"`
	Kind      string         `gorm:"type:varchar(64)"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (KnowledgeEntry) TableName() string {
	return "knowledge_entries"
}
