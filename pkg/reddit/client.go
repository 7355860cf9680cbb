package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"project-finder-be/internal/entity"
	"project-finder-be/internal/pkg/apperrors"

	"golang.org/x/time/rate"
)

// Client reads public subreddit listings. All requests share one rate
// limiter so parallel fetches stay inside the API budget.
type Client struct {
	baseURL   string
	userAgent string
	limiter   *rate.Limiter
	client    *http.Client
}

func NewClient(userAgent string, requestsPerMinute int) *Client {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 60
	}
	return &Client{
		baseURL:   "https://www.reddit.com",
		userAgent: userAgent,
		limiter:   rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), 1),
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

type listingResponse struct {
	Data struct {
		Children []struct {
			Data listingPost `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type listingPost struct {
	Id          string  `json:"id"`
	Title       string  `json:"title"`
	SelfText    string  `json:"selftext"`
	Permalink   string  `json:"permalink"`
	Author      string  `json:"author"`
	Subreddit   string  `json:"subreddit"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
	CreatedUTC  float64 `json:"created_utc"`
}

// FetchHot returns up to limit posts from a subreddit's hot listing.
func (c *Client) FetchHot(ctx context.Context, subreddit string, limit int) ([]*entity.Post, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/r/%s/hot.json?limit=%d", c.baseURL, subreddit, limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, apperrors.Unavailable("reddit request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Unavailable("failed to read reddit response", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.Unavailable(fmt.Sprintf("reddit returned status %d", resp.StatusCode), nil)
	}

	return parseListing(body, time.Now())
}

// parseListing decodes one listing page into posts. Kept separate from
// the transport so decoding is testable with canned payloads.
func parseListing(body []byte, ingestedAt time.Time) ([]*entity.Post, error) {
	var listing listingResponse
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, apperrors.Transformation("failed to decode reddit listing", err)
	}

	posts := make([]*entity.Post, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		p := child.Data
		if p.Id == "" {
			continue
		}
		posts = append(posts, &entity.Post{
			Id:           p.Id,
			Title:        p.Title,
			Content:      p.SelfText,
			Url:          "https://www.reddit.com" + p.Permalink,
			Author:       p.Author,
			Subreddit:    p.Subreddit,
			Score:        p.Score,
			CommentCount: p.NumComments,
			CreatedAt:    time.Unix(int64(p.CreatedUTC), 0).UTC(),
			IngestedAt:   ingestedAt,
		})
	}
	return posts, nil
}
