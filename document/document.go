// Package document binds one undo.Manager, one dirty flag, one
// regenerate flag, and a file handle into the "model" role a
// document-based application expects. Load, Save, and InitNewDocument
// are abstract hooks a concrete document type supplies, while
// CloseUndoStep/SetUndoManager/Regenerate are shared machinery this
// type implements once for every document.
package document

import (
	"github.com/pkg/errors"

	"github.com/vertexdoc/objdoc/internal/olog"
	"github.com/vertexdoc/objdoc/object"
	"github.com/vertexdoc/objdoc/undo"
)

// File is the minimal collaborator a Document needs for its file
// handle: the full path/stream abstraction lives elsewhere; Document
// itself only touches the path, used for logging and for Hooks to open
// their own streams against.
type File interface {
	Path() string
}

// Hooks is the abstract half of Document: a concrete document type
// embeds *Document and supplies these.
type Hooks interface {
	SaveDocument() bool
	LoadDocument() bool
	InitNewDocument(prefs Preferences) Status
}

// Document is the shared, concrete half: undo/redo bookkeeping, the
// changed and regenerate flags, and the file handle. It carries no
// locking of its own, the same single-document-thread assumption
// undo.Manager makes.
type Document struct {
	object.ManagedObject

	hooks Hooks

	undoManager *undo.Manager
	pool        *object.AutoreleasePool

	file       File
	changed    bool
	regenerate bool
}

// New returns a Document bound to pool, with undo tracking enabled by
// default: the manager starts active so that even InitNewDocument/
// LoadDocument's own mutations are captured as the document's first
// undo step.
func New(pool *object.AutoreleasePool, hooks Hooks) *Document {
	d := &Document{
		ManagedObject: *object.New(pool),
		hooks:         hooks,
		pool:          pool,
	}
	d.SetUndoManager(true)
	return d
}

// CloseUndoStep closes whatever undo step is currently accumulating
// changes, making it a discrete, user-visible unit on the undo stack.
// Safe to call with no undo manager or nothing open.
func (d *Document) CloseUndoStep() {
	if d.undoManager != nil {
		d.undoManager.CloseStep()
	}
}

// UndoManager returns the document's undo manager, or nil if
// SetUndoManager(false) was called.
func (d *Document) UndoManager() *undo.Manager { return d.undoManager }

// HasUndoManager reports whether this document currently has an undo
// manager attached.
func (d *Document) HasUndoManager() bool { return d.undoManager != nil }

// SetUndoManager turns undo tracking on or off. Turning it on when a
// manager already exists is a no-op; turning it off discards the
// existing manager's history outright. Re-enabling later starts with an
// empty journal, not the discarded one.
func (d *Document) SetUndoManager(status bool) {
	switch {
	case status && d.undoManager == nil:
		d.undoManager = undo.New()
		d.undoManager.SetDocument(d)
		d.undoManager.SetActive(true)
	case !status && d.undoManager != nil:
		d.undoManager.ClearStacks()
		d.undoManager = nil
	}
}

// IsChanged reports whether the document has unsaved edits.
func (d *Document) IsChanged() bool { return d.changed }

// SetChanged implements undo.Document: the undo manager calls this
// whenever it opens a new step, and Save calls it with false once the
// SaveDocument hook succeeds.
func (d *Document) SetChanged(status bool) { d.changed = status }

// SetFile attaches a file handle to this document.
func (d *Document) SetFile(f File) { d.file = f }

// File returns the document's current file handle, or nil if none has
// been set.
func (d *Document) File() File { return d.file }

// Regenerate marks the document's visual representation stale. Views
// observing ShouldRegenerate should refresh on their next pass.
func (d *Document) Regenerate() { d.regenerate = true }

// RegenerationDone clears the regenerate flag; a view calls this after
// it has refreshed.
func (d *Document) RegenerationDone() { d.regenerate = false }

// ShouldRegenerate reports whether the visual representation needs
// refreshing.
func (d *Document) ShouldRegenerate() bool { return d.regenerate }

// Save calls the concrete document's SaveDocument hook and, on success,
// clears the changed flag. The undo stacks are left alone: history
// survives a save.
func (d *Document) Save() error {
	if d.hooks == nil {
		return errors.New("document: no hooks attached")
	}
	if !d.hooks.SaveDocument() {
		olog.Logger.Warn().Str("path", pathOf(d.file)).Msg("document: save hook reported failure")
		return errors.Errorf("document: save failed for %q", pathOf(d.file))
	}
	d.SetChanged(false)
	return nil
}

// Load calls the concrete document's LoadDocument hook. Load and
// InitNewDocument are mutually exclusive for a given document instance;
// this package does not enforce that, it is the embedder's
// responsibility.
func (d *Document) Load() error {
	if d.hooks == nil {
		return errors.New("document: no hooks attached")
	}
	if !d.hooks.LoadDocument() {
		return errors.Errorf("document: load failed for %q", pathOf(d.file))
	}
	return nil
}

// InitNewDocument calls the concrete document's InitNewDocument hook,
// wrapping a non-Ok result with call-site context.
func (d *Document) InitNewDocument(prefs Preferences) error {
	if d.hooks == nil {
		return errors.New("document: no hooks attached")
	}
	status := d.hooks.InitNewDocument(prefs)
	if status != Ok {
		return errors.Wrapf(statusError(status), "document: init new document %q", pathOf(d.file))
	}
	return nil
}

func statusError(s Status) error {
	return errors.Errorf("status %s", s)
}

func pathOf(f File) string {
	if f == nil {
		return ""
	}
	return f.Path()
}
