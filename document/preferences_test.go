package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertexdoc/objdoc/document"
)

func TestOrderedPreferencesGetMissingKey(t *testing.T) {
	p := document.NewOrderedPreferences()
	_, ok := p.Get("units")
	assert.False(t, ok)
}

func TestOrderedPreferencesPreservesInsertionOrder(t *testing.T) {
	p := document.NewOrderedPreferences()
	p.Set("units", "mm")
	p.Set("scale", "1:1")
	p.Set("author", "anon")

	require.Equal(t, []string{"units", "scale", "author"}, p.Keys())
	assert.Equal(t, 3, p.Len())

	v, ok := p.Get("scale")
	require.True(t, ok)
	assert.Equal(t, "1:1", v)
}

func TestOrderedPreferencesSetExistingKeyKeepsPosition(t *testing.T) {
	p := document.NewOrderedPreferences()
	p.Set("a", "1")
	p.Set("b", "2")
	p.Set("a", "3")

	assert.Equal(t, []string{"a", "b"}, p.Keys())
	v, _ := p.Get("a")
	assert.Equal(t, "3", v)
}
