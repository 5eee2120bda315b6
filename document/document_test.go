package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertexdoc/objdoc/document"
	"github.com/vertexdoc/objdoc/object"
)

type fakeFile struct{ path string }

func (f fakeFile) Path() string { return f.path }

// fakeHooks lets each test script exactly what Save/Load/Init should do,
// standing in for a concrete document type's overrides.
type fakeHooks struct {
	saveOK, loadOK bool
	initStatus     document.Status
	initPrefsSeen  document.Preferences
}

func (h *fakeHooks) SaveDocument() bool { return h.saveOK }
func (h *fakeHooks) LoadDocument() bool { return h.loadOK }
func (h *fakeHooks) InitNewDocument(prefs document.Preferences) document.Status {
	h.initPrefsSeen = prefs
	return h.initStatus
}

func TestNewDocumentStartsWithActiveUndoManager(t *testing.T) {
	pool := object.NewPool()
	hooks := &fakeHooks{}
	doc := document.New(pool, hooks)

	require.True(t, doc.HasUndoManager())
	require.NotNil(t, doc.UndoManager())
	assert.True(t, doc.UndoManager().IsActive())
}

func TestSetUndoManagerFalseClearsHistory(t *testing.T) {
	pool := object.NewPool()
	doc := document.New(pool, &fakeHooks{})

	x := int32(0)
	doc.UndoManager().RecordInt32(doc, &x)
	x = 1
	doc.CloseUndoStep()
	require.Equal(t, 1, doc.UndoManager().UndoCount())

	doc.SetUndoManager(false)
	assert.False(t, doc.HasUndoManager())
	assert.Nil(t, doc.UndoManager())
}

func TestSetUndoManagerTrueIsNoopWhenAlreadyPresent(t *testing.T) {
	pool := object.NewPool()
	doc := document.New(pool, &fakeHooks{})
	first := doc.UndoManager()

	doc.SetUndoManager(true)
	assert.Same(t, first, doc.UndoManager())
}

func TestRecordingMarksDocumentChanged(t *testing.T) {
	pool := object.NewPool()
	doc := document.New(pool, &fakeHooks{})
	require.False(t, doc.IsChanged())

	x := int32(0)
	doc.UndoManager().RecordInt32(doc, &x)
	assert.True(t, doc.IsChanged())
}

func TestSaveClearsChangedOnSuccess(t *testing.T) {
	pool := object.NewPool()
	hooks := &fakeHooks{saveOK: true}
	doc := document.New(pool, hooks)
	doc.SetFile(fakeFile{path: "/tmp/doc.bin"})

	x := int32(0)
	doc.UndoManager().RecordInt32(doc, &x)
	require.True(t, doc.IsChanged())

	require.NoError(t, doc.Save())
	assert.False(t, doc.IsChanged())
}

func TestSaveLeavesChangedOnFailure(t *testing.T) {
	pool := object.NewPool()
	hooks := &fakeHooks{saveOK: false}
	doc := document.New(pool, hooks)

	x := int32(0)
	doc.UndoManager().RecordInt32(doc, &x)

	require.Error(t, doc.Save())
	assert.True(t, doc.IsChanged())
}

func TestLoadPropagatesHookFailure(t *testing.T) {
	pool := object.NewPool()
	doc := document.New(pool, &fakeHooks{loadOK: false})
	assert.Error(t, doc.Load())
}

func TestInitNewDocumentPassesPreferencesThroughAndWrapsFailure(t *testing.T) {
	pool := object.NewPool()
	hooks := &fakeHooks{initStatus: document.NotAllowed}
	doc := document.New(pool, hooks)

	prefs := document.NewOrderedPreferences()
	prefs.Set("units", "mm")

	err := doc.InitNewDocument(prefs)
	require.Error(t, err)
	assert.Same(t, prefs, hooks.initPrefsSeen)
	assert.Contains(t, err.Error(), "not allowed")
}

func TestInitNewDocumentOkReturnsNoError(t *testing.T) {
	pool := object.NewPool()
	doc := document.New(pool, &fakeHooks{initStatus: document.Ok})
	assert.NoError(t, doc.InitNewDocument(document.NewOrderedPreferences()))
}

func TestRegenerateRoundTrip(t *testing.T) {
	pool := object.NewPool()
	doc := document.New(pool, &fakeHooks{})
	assert.False(t, doc.ShouldRegenerate())

	doc.Regenerate()
	assert.True(t, doc.ShouldRegenerate())

	doc.RegenerationDone()
	assert.False(t, doc.ShouldRegenerate())
}
