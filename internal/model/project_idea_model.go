package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ProjectIdea struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Kind       string         `gorm:"type:varchar(16);not null"`
	Content    string         `gorm:"type:text;not null"`
	BasePostId string         `gorm:"type:varchar(32);not null;index"`
	Interests  datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
}

func (ProjectIdea) TableName() string {
	return "project_ideas"
}
