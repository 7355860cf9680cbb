package reddit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"project-finder-be/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleListing = `{
  "data": {
    "children": [
      {"data": {"id": "p1", "title": "First", "selftext": "body", "permalink": "/r/test/p1", "author": "alice", "subreddit": "test", "score": 42, "num_comments": 7, "created_utc": 1700000000}},
      {"data": {"id": "p2", "title": "Second", "selftext": "", "permalink": "/r/test/p2", "author": "bob", "subreddit": "test", "score": 1, "num_comments": 0, "created_utc": 1700000100}},
      {"data": {"id": "", "title": "no id, skipped"}}
    ]
  }
}`

func TestParseListing(t *testing.T) {
	ingestedAt := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	posts, err := parseListing([]byte(sampleListing), ingestedAt)
	require.NoError(t, err)
	require.Len(t, posts, 2)

	first := posts[0]
	assert.Equal(t, "p1", first.Id)
	assert.Equal(t, "First", first.Title)
	assert.Equal(t, "body", first.Content)
	assert.Equal(t, "https://www.reddit.com/r/test/p1", first.Url)
	assert.Equal(t, "alice", first.Author)
	assert.Equal(t, "test", first.Subreddit)
	assert.Equal(t, 42, first.Score)
	assert.Equal(t, 7, first.CommentCount)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), first.CreatedAt)
	assert.Equal(t, ingestedAt, first.IngestedAt)
}

func TestParseListingRejectsMalformedPayload(t *testing.T) {
	_, err := parseListing([]byte("<html>rate limited</html>"), time.Now())
	assert.True(t, apperrors.IsKind(err, apperrors.KindTransformation))
}

func TestFetchHotSetsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(sampleListing))
	}))
	defer srv.Close()

	client := NewClient("project-finder-test/1.0", 600)
	client.baseURL = srv.URL

	posts, err := client.FetchHot(context.Background(), "test", 50)
	require.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.Equal(t, "project-finder-test/1.0", gotUA)
}

func TestFetchHotNon200IsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient("ua", 600)
	client.baseURL = srv.URL

	_, err := client.FetchHot(context.Background(), "test", 50)
	assert.True(t, apperrors.IsKind(err, apperrors.KindUnavailable))
}
