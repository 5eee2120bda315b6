package change_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertexdoc/objdoc/change"
	"github.com/vertexdoc/objdoc/object"
)

func TestStepOrdering(t *testing.T) {
	pool := object.NewPool()
	owner := newOwner(pool)

	var a, b int32
	step := change.NewStep()
	require.True(t, step.Empty())

	step.Add(change.NewInt32Change(owner, &a))
	step.Add(change.NewInt32Change(owner, &b))

	assert.Equal(t, 2, step.Count())
	assert.False(t, step.Empty())

	oldest := step.Oldest()
	require.Len(t, oldest, 2)

	newest := step.Newest()
	require.Len(t, newest, 2)
	assert.Same(t, oldest[0], newest[1])
	assert.Same(t, oldest[1], newest[0])
}

func TestStepReleaseReleasesOwnerPerChange(t *testing.T) {
	pool := object.NewPool()
	owner := object.New(pool)

	var a, b int32
	step := change.NewStep()
	owner.Retain() // the manager retains the owner once per recorded change
	step.Add(change.NewInt32Change(owner, &a))
	owner.Retain()
	step.Add(change.NewInt32Change(owner, &b))

	require.EqualValues(t, 3, owner.RefCount())
	step.Release()
	assert.EqualValues(t, 1, owner.RefCount())
}

func TestStepReleaseReleasesJournalHeldReferences(t *testing.T) {
	pool := object.NewPool()
	owner := object.New(pool)
	child := object.New(pool)

	// Mirrors undo.Manager.RegisterRelease: the marker starts out owning
	// the one retained unit on the journal's behalf.
	child.Retain()
	marker := change.NewReleaseMarker(owner, child)
	child.Release()
	require.EqualValues(t, 1, child.RefCount())

	step := change.NewStep()
	step.Add(marker)

	// Discarding the step while the marker is still Journal-owned must
	// give that unit back; nothing else holds it.
	step.Release()
	assert.EqualValues(t, 0, child.RefCount())
}

func TestStepReleaseLeavesLiveOwnedReferenceAlone(t *testing.T) {
	pool := object.NewPool()
	owner := object.New(pool)
	child := object.New(pool)

	owner.Retain() // the manager retains the owner once per recorded change
	child.Retain()
	marker := change.NewRetainMarker(owner, child)
	child.Release()
	require.EqualValues(t, 1, child.RefCount())

	step := change.NewStep()
	step.Add(marker)

	// The marker is Live-owned: the field itself owns this unit, so
	// discarding the step must not release it.
	step.Release()
	assert.EqualValues(t, 1, child.RefCount())
}
