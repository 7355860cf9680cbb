package model

import (
	"time"

	"github.com/google/uuid"
)

type Plan struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	IdeaId    uuid.UUID `gorm:"type:uuid;not null;index"`
	OwnerId   string    `gorm:"type:varchar(128);not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Plan) TableName() string {
	return "plans"
}

// PlanVersion rows are append-only; the composite unique index enforces the
// one-row-per-index invariant at the database level.
type PlanVersion struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	PlanId             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_plan_version,priority:1"`
	VersionIndex       int       `gorm:"not null;uniqueIndex:idx_plan_version,priority:2"`
	Content            string    `gorm:"type:text;not null"`
	CreatedFrom        string    `gorm:"type:varchar(32);not null"`
	FeedbackText       string    `gorm:"type:text"`
	ParentVersionIndex *int
	CreatedAt          time.Time `gorm:"autoCreateTime"`
}

func (PlanVersion) TableName() string {
	return "plan_versions"
}
