package object_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertexdoc/objdoc/object"
)

func TestRetainReleaseBalance(t *testing.T) {
	pool := object.NewPool()
	o := object.New(pool)
	require.EqualValues(t, 1, o.RefCount())

	o.Retain()
	o.Retain()
	require.EqualValues(t, 3, o.RefCount())

	o.Release()
	o.Release()
	assert.EqualValues(t, 1, o.RefCount())
}

func TestReleaseToZeroInvokesDestroy(t *testing.T) {
	pool := object.NewPool()
	o := object.New(pool)
	destroyed := false
	o.SetDestroyFunc(func() { destroyed = true })

	o.Release()
	assert.True(t, destroyed)
	assert.EqualValues(t, 0, o.RefCount())
}

func TestAutoreleaseDefersExactlyOneRelease(t *testing.T) {
	pool := object.NewPool()
	o := object.New(pool)
	o.Retain() // refcount 2, so draining one release leaves it alive

	o.Autorelease()
	require.Equal(t, 1, pool.Len())

	pool.Drain()
	assert.EqualValues(t, 1, o.RefCount())
	assert.Equal(t, 0, pool.Len())
}

func TestHighBitIndependentOfCount(t *testing.T) {
	pool := object.NewPool()
	o := object.New(pool)
	o.Retain()
	o.Retain()

	o.SetHighBit(true)
	assert.True(t, o.HighBit())
	assert.EqualValues(t, 3, o.RefCount())

	o.SetHighBit(false)
	assert.False(t, o.HighBit())
	assert.EqualValues(t, 3, o.RefCount())
}

func TestEqualsDefaultsToIdentity(t *testing.T) {
	pool := object.NewPool()
	a := object.New(pool)
	b := object.New(pool)

	assert.True(t, a.Equals(a))
	assert.False(t, a.Equals(b))
}

func TestReleaseWithoutPoolIsNoop(t *testing.T) {
	var o object.ManagedObject
	assert.NotPanics(t, func() { o.Release() })
}
