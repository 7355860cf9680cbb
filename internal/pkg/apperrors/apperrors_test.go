package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindHelpers(t *testing.T) {
	err := NotFound("post %s not found", "abc")

	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(err, KindValidation))
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestKindSurvivesWrapping(t *testing.T) {
	inner := Unavailable("store down", errors.New("dial tcp: refused"))
	wrapped := fmt.Errorf("search failed: %w", inner)

	assert.True(t, IsKind(wrapped, KindUnavailable))
	assert.Equal(t, KindUnavailable, KindOf(wrapped))
}

func TestKindOfUntypedError(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
	assert.False(t, IsKind(errors.New("plain"), KindValidation))
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("timeout")
	err := Unavailable("embedding failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "embedding failed")
	assert.Contains(t, err.Error(), "timeout")
}
