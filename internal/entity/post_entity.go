package entity

import (
	"time"
)

// Post is an ingested community item. The id is the source platform's post
// id, so re-ingesting the same post upserts instead of duplicating. A post is
// never mutated after metadata extraction completes.
type Post struct {
	Id           string
	Title        string
	Content      string
	Url          string
	Author       string
	Subreddit    string
	Score        int
	CommentCount int
	CreatedAt    time.Time
	IngestedAt   time.Time

	Metadata          PostMetadata
	MetadataExtracted bool
}

// PostMetadata is derived once by the extraction step at ingestion time.
type PostMetadata struct {
	Category             string
	SkillLevel           string
	EstimatedEffortHours int
	Technologies         []string
}
