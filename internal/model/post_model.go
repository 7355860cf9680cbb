package model

import (
	"time"

	"gorm.io/datatypes"
)

type Post struct {
	Id           string `gorm:"type:varchar(32);primaryKey"` // source platform post id
	Title        string `gorm:"type:text;not null"`
	Content      string `gorm:"type:text"`
	Url          string `gorm:"type:text"`
	Author       string `gorm:"type:varchar(128)"`
	Subreddit    string `gorm:"type:varchar(64);index"`
	Score        int
	CommentCount int
	CreatedAt    time.Time `gorm:"index"`
	IngestedAt   time.Time `gorm:"autoCreateTime"`

	Category             string         `gorm:"type:varchar(64);index"`
	SkillLevel           string         `gorm:"type:varchar(32);index"`
	EstimatedEffortHours int            `gorm:"index"`
	Technologies         datatypes.JSON `gorm:"type:jsonb"`
	MetadataExtracted    bool           `gorm:"default:false"`
}

func (Post) TableName() string {
	return "posts"
}
