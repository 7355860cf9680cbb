package recommend

import (
	"context"
	"errors"
	"strings"
	"testing"

	"project-finder-be/internal/entity"
	"project-finder-be/internal/pkg/apperrors"
	"project-finder-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLLM returns canned responses in order and records every prompt.
type fakeLLM struct {
	responses []string
	err       error
	calls     int
	prompts   []string
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.calls++
	for _, msg := range history {
		if msg.Role == "user" {
			f.prompts = append(f.prompts, msg.Content)
		}
	}
	if f.err != nil {
		return "", f.err
	}
	idx := f.calls - 1
	if idx >= len(f.responses) {
		idx = len(f.responses) - 1
	}
	return f.responses[idx], nil
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func testPost() *entity.Post {
	return &entity.Post{
		Id:      "abc123",
		Title:   "I built a habit tracker over the weekend",
		Content: "Used a spreadsheet first, then wrote a small web app.",
	}
}

func TestTransformProducesIdeaWithLineage(t *testing.T) {
	fake := &fakeLLM{responses: []string{"Habit Garden\n\nA playful habit tracker."}}
	transformer := NewTransformer(fake)

	idea, err := transformer.Transform(context.Background(), testPost(), []string{"Web Dev", "web dev", " AI "})
	require.NoError(t, err)

	assert.Equal(t, entity.IdeaKindTransformed, idea.Kind)
	assert.Equal(t, "abc123", idea.BasePostId)
	assert.Equal(t, "Habit Garden\n\nA playful habit tracker.", idea.Content)
	assert.Equal(t, []string{"ai", "web dev"}, idea.Interests)
	assert.Equal(t, 1, fake.calls)
}

func TestTransformRetriesOnceOnEmptyResponse(t *testing.T) {
	fake := &fakeLLM{responses: []string{"   ", "A concrete idea."}}
	transformer := NewTransformer(fake)

	idea, err := transformer.Transform(context.Background(), testPost(), nil)
	require.NoError(t, err)

	assert.Equal(t, "A concrete idea.", idea.Content)
	assert.Equal(t, 2, fake.calls)
}

func TestTransformFailsAfterSecondBadResponse(t *testing.T) {
	fake := &fakeLLM{responses: []string{"", ""}}
	transformer := NewTransformer(fake)

	_, err := transformer.Transform(context.Background(), testPost(), nil)
	assert.True(t, apperrors.IsKind(err, apperrors.KindTransformation))
	assert.Equal(t, 2, fake.calls)
}

func TestTransformRejectsOversizedResponse(t *testing.T) {
	oversized := strings.Repeat("x", maxIdeaRunes+1)
	fake := &fakeLLM{responses: []string{oversized, oversized}}
	transformer := NewTransformer(fake)

	_, err := transformer.Transform(context.Background(), testPost(), nil)
	assert.True(t, apperrors.IsKind(err, apperrors.KindTransformation))
}

func TestTransformTransportFailureIsUnavailable(t *testing.T) {
	fake := &fakeLLM{err: errors.New("connection refused")}
	transformer := NewTransformer(fake)

	_, err := transformer.Transform(context.Background(), testPost(), nil)
	assert.True(t, apperrors.IsKind(err, apperrors.KindUnavailable))
}

func TestBuildTransformPromptIsDeterministic(t *testing.T) {
	post := testPost()
	interests := NormalizeInterests([]string{"games", "ai"})

	first := BuildTransformPrompt(post, interests)
	assert.Equal(t, first, BuildTransformPrompt(post, interests))
	assert.Contains(t, first, "ai, games")
}

func TestBuildTransformPromptTruncatesLongContent(t *testing.T) {
	post := testPost()
	post.Content = strings.Repeat("verbose ", 2000)

	prompt := BuildTransformPrompt(post, nil)
	assert.Less(t, len([]rune(prompt)), maxPostExcerptRunes+500)
}

func TestNormalizeInterests(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil stays empty", nil, []string{}},
		{"dedupes case-insensitively", []string{"Go", "go", "GO"}, []string{"go"}},
		{"drops blanks", []string{" ", "", "rust"}, []string{"rust"}},
		{"sorted output", []string{"web", "ai", "cli"}, []string{"ai", "cli", "web"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeInterests(tt.in))
		})
	}
}

func TestDirectWrapsPostContent(t *testing.T) {
	idea := Direct(testPost(), []string{"web"})

	assert.Equal(t, entity.IdeaKindDirect, idea.Kind)
	assert.Equal(t, "abc123", idea.BasePostId)
	assert.Contains(t, idea.Content, "habit tracker")
}
