package recommend

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"project-finder-be/internal/entity"
	"project-finder-be/internal/pkg/apperrors"
	"project-finder-be/pkg/llm"

	"github.com/google/uuid"
)

const (
	// maxPostExcerptRunes bounds how much of a post feeds the prompt so
	// token usage stays predictable for long posts.
	maxPostExcerptRunes = 2000

	// maxIdeaRunes bounds an accepted model response.
	maxIdeaRunes = 4000

	transformTimeout = 45 * time.Second
)

const transformSystemPrompt = `You turn online discussion posts into concrete, buildable side-project ideas.
Respond with the project idea only: a short title line, a one-paragraph pitch, and a feature list.
Do not mention the source post or that you are a language model.`

// Transformer derives novel project ideas from posts through a model
// backend, preserving lineage back to the base post.
type Transformer struct {
	llm llm.LLMProvider
}

func NewTransformer(provider llm.LLMProvider) *Transformer {
	return &Transformer{llm: provider}
}

// NormalizeInterests lowercases, trims, dedupes and sorts interests so the
// same profile always produces the same prompt.
func NormalizeInterests(interests []string) []string {
	seen := make(map[string]bool, len(interests))
	normalized := make([]string, 0, len(interests))
	for _, interest := range interests {
		cleaned := strings.ToLower(strings.TrimSpace(interest))
		if cleaned == "" || seen[cleaned] {
			continue
		}
		seen[cleaned] = true
		normalized = append(normalized, cleaned)
	}
	sort.Strings(normalized)
	return normalized
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}

// BuildTransformPrompt assembles the user prompt for one transformation.
// Interests must already be normalized; the prompt is deterministic for
// the same post and interest set.
func BuildTransformPrompt(post *entity.Post, interests []string) string {
	var b strings.Builder
	b.WriteString("Source post title: ")
	b.WriteString(post.Title)
	b.WriteString("\n\nSource post content:\n")
	b.WriteString(truncateRunes(post.Content, maxPostExcerptRunes))
	b.WriteString("\n\n")
	if len(interests) > 0 {
		b.WriteString("Tailor the idea to these interests: ")
		b.WriteString(strings.Join(interests, ", "))
		b.WriteString(".\n")
	}
	b.WriteString("Propose one original project idea inspired by this post.")
	return b.String()
}

// Transform asks the model for a novel idea derived from the post. A
// transport failure surfaces as unavailable; a response that is empty or
// oversized is retried once with a stricter instruction and then rejected
// as a transformation failure.
func (t *Transformer) Transform(ctx context.Context, post *entity.Post, interests []string) (*entity.ProjectIdea, error) {
	if post == nil {
		return nil, apperrors.Validation("transform requires a base post")
	}

	ctx, cancel := context.WithTimeout(ctx, transformTimeout)
	defer cancel()

	normalized := NormalizeInterests(interests)
	prompt := BuildTransformPrompt(post, normalized)

	content, err := t.generateOnce(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if !acceptableIdea(content) {
		strict := prompt + fmt.Sprintf("\nKeep the answer under %d characters and do not return an empty response.", maxIdeaRunes)
		content, err = t.generateOnce(ctx, strict)
		if err != nil {
			return nil, err
		}
		if !acceptableIdea(content) {
			return nil, apperrors.Transformation("model returned an unusable idea", nil)
		}
	}

	return &entity.ProjectIdea{
		Id:         uuid.New(),
		Kind:       entity.IdeaKindTransformed,
		Content:    strings.TrimSpace(content),
		BasePostId: post.Id,
		Interests:  normalized,
		CreatedAt:  time.Now(),
	}, nil
}

func (t *Transformer) generateOnce(ctx context.Context, prompt string) (string, error) {
	history := []llm.Message{
		{Role: "system", Content: transformSystemPrompt},
		{Role: "user", Content: prompt},
	}
	content, err := t.llm.Chat(ctx, history, llm.WithTemperature(0.8))
	if err != nil {
		if apperrors.KindOf(err) != "" {
			return "", err
		}
		return "", apperrors.Unavailable("model request failed", err)
	}
	return content, nil
}

func acceptableIdea(content string) bool {
	trimmed := strings.TrimSpace(content)
	return trimmed != "" && utf8.RuneCountInString(trimmed) <= maxIdeaRunes
}

// Direct wraps a post's own content as an idea without invoking a model.
func Direct(post *entity.Post, interests []string) *entity.ProjectIdea {
	return &entity.ProjectIdea{
		Id:         uuid.New(),
		Kind:       entity.IdeaKindDirect,
		Content:    strings.TrimSpace(post.Title + "\n\n" + post.Content),
		BasePostId: post.Id,
		Interests:  NormalizeInterests(interests),
		CreatedAt:  time.Now(),
	}
}
