// Package undo implements the journal that records every primitive
// mutation to document state as a reversible Step and composes those
// primitive edits into atomic, user-visible steps.
//
// A Manager is owned by exactly one document thread and performs no
// internal locking. Concurrency-safety for objects that outlive a
// single mutation is the job of object.AutoreleasePool's mutex, not of
// this package.
package undo

import (
	"github.com/vertexdoc/objdoc/change"
	"github.com/vertexdoc/objdoc/internal/olog"
	"github.com/vertexdoc/objdoc/object"
)

// Document is the minimal back-reference a Manager needs into its owning
// document. It is an interface (rather than importing package document
// directly) so that document can in turn hold a *Manager without an
// import cycle.
type Document interface {
	SetChanged(bool)
}

// Manager owns the undo and redo stacks plus the currently-open step. A
// Manager must be used from a single goroutine — the "document thread" —
// for the lifetime of the document it journals; this is a type-level
// invariant, not merely a convention.
type Manager struct {
	_ noCopy

	document Document
	active   bool
	undoing  bool
	open     bool

	undoStack []*change.Step
	redoStack []*change.Step
	current   *change.Step
}

// noCopy causes `go vet` to flag accidental copies of a Manager, the Go
// stand-in for the "not shareable across threads" invariant.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// New returns a Manager with no document attached and undo tracking
// disabled; callers must SetActive(true) explicitly.
func New() *Manager {
	return &Manager{}
}

// SetDocument associates this manager with a document so that recording
// a change also marks the document dirty.
func (m *Manager) SetDocument(doc Document) { m.document = doc }

// Document returns the document this manager journals for, or nil if none
// has been attached.
func (m *Manager) Document() Document { return m.document }

// SetActive turns recording on or off. While inactive, every Record*
// call and RegisterRelease/RegisterRetain is a silent no-op.
func (m *Manager) SetActive(status bool) { m.active = status }

// IsActive reports whether recording is currently enabled.
func (m *Manager) IsActive() bool { return m.active }

// UndoCount returns the number of steps on the undo stack.
func (m *Manager) UndoCount() int { return len(m.undoStack) }

// RedoCount returns the number of steps on the redo stack.
func (m *Manager) RedoCount() int { return len(m.redoStack) }

// ensureOpenStep returns the currently accumulating step, opening a new
// one — and clearing the redo stack, since recording invalidates whatever
// future it encoded — if none is open yet.
func (m *Manager) ensureOpenStep() *change.Step {
	if m.current == nil {
		m.current = change.NewStep()
		m.open = true
		m.clearRedoStackLocked()
		if m.document != nil {
			m.document.SetChanged(true)
		}
	}
	return m.current
}

// shouldRecord centralizes the no-op preconditions every Record* method
// shares: recording only happens while active and outside of an
// undo/redo replay.
func (m *Manager) shouldRecord() bool {
	if !m.active {
		olog.Logger.Debug().Msg("undo: record skipped, manager inactive")
		return false
	}
	if m.undoing {
		olog.Logger.Debug().Msg("undo: record skipped, inside undo/redo")
		return false
	}
	return true
}

func (m *Manager) record(c change.Change) {
	step := m.ensureOpenStep()
	step.Add(c)
}

// RegisterRelease brackets the caller's drop of its live-graph reference
// to obj. It is net-zero on obj's count: it retains obj, records a
// release marker, and releases obj again, so the unit the live field
// held passes to the journal instead of being given back. The caller
// does not call Release itself; this method is the whole handoff.
func (m *Manager) RegisterRelease(owner object.Managed, obj object.Managed) {
	if !m.shouldRecord() || obj == nil {
		return
	}
	owner.Retain()
	obj.Retain()
	m.record(change.NewReleaseMarker(owner, obj))
	obj.Release()
}

// RegisterRetain brackets the attachment of obj to the live graph: like
// RegisterRelease it is net-zero on obj's count — the reference the live
// field now holds is the one tracked unit, and the marker records which
// side owns it so that undo can hand that unit to the journal instead of
// calling Release.
func (m *Manager) RegisterRetain(owner object.Managed, obj object.Managed) {
	if !m.shouldRecord() || obj == nil {
		return
	}
	owner.Retain()
	obj.Retain()
	m.record(change.NewRetainMarker(owner, obj))
	obj.Release()
}

// RecordRegenerationMarker appends a regenerate-marker change without
// snapshotting any field, so that undo and redo both refresh editable's
// view.
func (m *Manager) RecordRegenerationMarker(owner object.Managed, editable change.Editable) {
	if !m.shouldRecord() || editable == nil {
		return
	}
	owner.Retain()
	m.record(change.NewRegenerateMarker(owner, editable))
}

// CloseStep seals the step currently accumulating changes: if it holds
// any changes it is pushed onto the undo stack, otherwise it is
// discarded unpushed. Either way `current` is cleared and `open` is
// lowered, re-enabling Undo/Redo.
func (m *Manager) CloseStep() {
	step := m.current
	m.current = nil
	m.open = false
	if step == nil {
		return
	}
	if step.Empty() {
		step.Release()
		return
	}
	m.undoStack = append(m.undoStack, step)
}

// Undo reverses the most recently closed step and moves it to the redo
// stack. It returns false without effect if a step is currently open or
// there is nothing to undo.
func (m *Manager) Undo() bool {
	if m.open {
		olog.Logger.Debug().Msg("undo: Undo refused, a step is still open")
		return false
	}
	if len(m.undoStack) == 0 {
		return false
	}

	n := len(m.undoStack)
	step := m.undoStack[n-1]
	m.undoStack = m.undoStack[:n-1]

	m.undoing = true
	for _, c := range step.Newest() {
		c.Swap()
	}
	m.undoing = false

	m.redoStack = append(m.redoStack, step)
	return true
}

// Redo replays the most recently undone step and moves it back to the
// undo stack. It returns false without effect if a step is currently
// open or there is nothing to redo.
func (m *Manager) Redo() bool {
	if m.open {
		olog.Logger.Debug().Msg("undo: Redo refused, a step is still open")
		return false
	}
	if len(m.redoStack) == 0 {
		return false
	}

	n := len(m.redoStack)
	step := m.redoStack[n-1]
	m.redoStack = m.redoStack[:n-1]

	m.undoing = true
	for _, c := range step.Oldest() {
		c.Swap()
	}
	m.undoing = false

	m.undoStack = append(m.undoStack, step)
	return true
}

// ClearUndoStack destroys every step on the undo stack, releasing
// whatever object references those steps still held.
func (m *Manager) ClearUndoStack() {
	for _, step := range m.undoStack {
		step.Release()
	}
	m.undoStack = nil
}

// ClearRedoStack destroys every step on the redo stack, synchronously:
// objects "deleted" via undo and reachable only through the redo stack
// become genuinely unreachable here, not lazily at the next pool drain.
func (m *Manager) ClearRedoStack() {
	m.clearRedoStackLocked()
}

func (m *Manager) clearRedoStackLocked() {
	for _, step := range m.redoStack {
		step.Release()
	}
	m.redoStack = nil
}

// ClearStacks destroys both stacks.
func (m *Manager) ClearStacks() {
	m.ClearUndoStack()
	m.ClearRedoStack()
}
