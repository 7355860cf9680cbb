package service

import (
	"testing"

	"project-finder-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestProcessPosts(t *testing.T) {
	posts := []*entity.Post{
		{Id: "keep1", Title: "A real post", Content: "with content"},
		{Id: "keep2", Title: "Link post", Content: ""},
		{Id: "drop1", Title: "", Content: "no title"},
		{Id: "drop2", Title: "Deleted", Content: "[deleted]"},
		{Id: "drop3", Title: "Removed", Content: " [removed] "},
	}

	kept := ProcessPosts(posts)

	ids := make([]string, len(kept))
	for i, p := range kept {
		ids[i] = p.Id
	}
	assert.Equal(t, []string{"keep1", "keep2"}, ids)
}

func TestProcessPostsEmptyInput(t *testing.T) {
	assert.Empty(t, ProcessPosts(nil))
}
