package plan

import (
	"testing"
	"time"

	"project-finder-be/internal/entity"
	"project-finder-be/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreatesInitialVersion(t *testing.T) {
	ideaId := uuid.New()
	now := time.Now()

	p, err := New(ideaId, "session-1", "v0 content", now)
	require.NoError(t, err)

	assert.Equal(t, ideaId, p.IdeaId)
	assert.Equal(t, "session-1", p.OwnerId)
	require.Len(t, p.Versions, 1)

	v0 := p.Versions[0]
	assert.Equal(t, 0, v0.VersionIndex)
	assert.Equal(t, "v0 content", v0.Content)
	assert.Equal(t, entity.PlanOriginInitial, v0.CreatedFrom)
	assert.Empty(t, v0.FeedbackText)
	assert.Nil(t, v0.ParentVersionIndex)
}

func TestNewRejectsEmptyContent(t *testing.T) {
	_, err := New(uuid.New(), "session-1", "   ", time.Now())
	assert.True(t, apperrors.IsKind(err, apperrors.KindTransformation))
}

func TestAppendKeepsIndexesContiguous(t *testing.T) {
	now := time.Now()
	p, err := New(uuid.New(), "session-1", "v0", now)
	require.NoError(t, err)

	v1, err := Append(p, "add auth", "v1", now.Add(time.Minute))
	require.NoError(t, err)
	v2, err := Append(p, "add tests", "v2", now.Add(2*time.Minute))
	require.NoError(t, err)

	require.Len(t, p.Versions, 3)
	assert.Equal(t, 1, v1.VersionIndex)
	assert.Equal(t, 2, v2.VersionIndex)

	for i, v := range p.Versions {
		assert.Equal(t, i, v.VersionIndex)
	}
}

func TestAppendRecordsLineage(t *testing.T) {
	now := time.Now()
	p, err := New(uuid.New(), "session-1", "v0", now)
	require.NoError(t, err)

	v1, err := Append(p, "tighten scope", "v1", now)
	require.NoError(t, err)

	assert.Equal(t, entity.PlanOriginFeedback, v1.CreatedFrom)
	assert.Equal(t, "tighten scope", v1.FeedbackText)
	require.NotNil(t, v1.ParentVersionIndex)
	assert.Equal(t, 0, *v1.ParentVersionIndex)
}

func TestAppendRejectsIdenticalRevision(t *testing.T) {
	now := time.Now()
	p, err := New(uuid.New(), "session-1", "same content", now)
	require.NoError(t, err)

	_, err = Append(p, "please improve", "same content", now)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNoProgress))

	// Nothing was recorded.
	assert.Len(t, p.Versions, 1)
}

func TestAppendRejectsEmptyRevision(t *testing.T) {
	now := time.Now()
	p, err := New(uuid.New(), "session-1", "v0", now)
	require.NoError(t, err)

	_, err = Append(p, "feedback", "  \n ", now)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNoProgress))
	assert.Len(t, p.Versions, 1)
}

func TestAppendEarlierVersionsAreUntouched(t *testing.T) {
	now := time.Now()
	p, err := New(uuid.New(), "session-1", "v0", now)
	require.NoError(t, err)

	_, err = Append(p, "f1", "v1", now)
	require.NoError(t, err)
	_, err = Append(p, "f2", "v2", now)
	require.NoError(t, err)

	assert.Equal(t, "v0", p.Versions[0].Content)
	assert.Equal(t, "v1", p.Versions[1].Content)
}

func TestLatest(t *testing.T) {
	assert.Nil(t, Latest(nil))
	assert.Nil(t, Latest(&entity.Plan{}))

	now := time.Now()
	p, err := New(uuid.New(), "session-1", "v0", now)
	require.NoError(t, err)
	_, err = Append(p, "f", "v1", now)
	require.NoError(t, err)

	assert.Equal(t, "v1", Latest(p).Content)
}
