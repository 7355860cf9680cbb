package dto

type RefreshRequest struct {
	Subreddits []string `json:"subreddits" validate:"omitempty,max=10,dive,min=1"`
}

type RefreshResponse struct {
	Fetched    int               `json:"fetched"`
	Stored     int               `json:"stored"`
	Subreddits []string          `json:"subreddits"`
	Failures   map[string]string `json:"failures,omitempty"`
}

// EmbedPostMessage is the payload of one embedding job on the pipeline.
type EmbedPostMessage struct {
	PostId string `json:"post_id"`
}
