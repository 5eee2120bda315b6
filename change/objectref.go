package change

import "github.com/vertexdoc/objdoc/object"

// Ownership names which side holds a journal-tracked object reference:
// the live document graph, or the journal alone. Rather than inferring
// that from register/release call order, every release/retain marker
// carries one of these explicitly.
type Ownership int

const (
	// Live means the object this change points at is (at this moment)
	// reachable through the ordinary document graph, not only the
	// journal.
	Live Ownership = iota
	// Journal means the object is reachable only because a Step still
	// holds it; the live graph released its reference when the object
	// was "deleted".
	Journal
)

// Editable is the minimal collaborator interface a regenerate marker
// targets. Domain view objects implement it; the core never does
// anything with the flag beyond setting it.
type Editable interface {
	SetShouldRegenerate(bool)
}

// ObjectRefChange is the undo variant whose target slot holds a
// ManagedObject handle rather than a scalar. On construction it snapshots
// the prior handle; it never retains or releases anything on its own —
// RegisterRelease/RegisterRetain (see the undo package) are the caller's
// explicit bracket around the field assignment.
type ObjectRefChange struct {
	baseChange
	target *object.Managed
	saved  object.Managed
}

func NewObjectRefChange(owner object.Managed, target *object.Managed) *ObjectRefChange {
	return &ObjectRefChange{baseChange{owner}, target, *target}
}

func (c *ObjectRefChange) Swap() { *c.target, c.saved = c.saved, *c.target }

// RegenerateMarker targets an Editable; Swap always sets its regenerate
// flag, both on undo and on redo, so that a view invalidated by either
// direction of history travel is refreshed on the next frame. It carries
// no saved data.
type RegenerateMarker struct {
	baseChange
	target Editable
}

func NewRegenerateMarker(owner object.Managed, target Editable) *RegenerateMarker {
	return &RegenerateMarker{baseChange{owner}, target}
}

func (c *RegenerateMarker) Swap() { c.target.SetShouldRegenerate(true) }

// ReleaseMarker is the subtle half of the object-lifetime bracket: it
// pairs with an ObjectRefChange to say "this object left the live graph
// as part of this step". undo.Manager.RegisterRelease is net-zero on the
// object's count (it retains, records this marker, and releases again)
// and the caller does not call Release itself, so the unit the live
// field held survives the drop; that one unit of refcount is then owned
// by whichever side — the live field, or the journal — Ownership
// currently names. Swap never
// calls Retain or Release itself: undo/redo only moves the field back
// and forth (ObjectRefChange's job), relabeling who owns that unit.
// Step.Release, discarding the step for good, is what actually gives the
// unit back if the journal still holds it.
type ReleaseMarker struct {
	baseChange
	obj       object.Managed
	ownership Ownership
}

// NewReleaseMarker records that obj has just left the live graph; the
// marker starts in Journal ownership, the side that now holds the
// retained unit until undo hands it back to the field.
func NewReleaseMarker(owner object.Managed, obj object.Managed) *ReleaseMarker {
	return &ReleaseMarker{baseChange{owner}, obj, Journal}
}

func (c *ReleaseMarker) Swap() {
	switch c.ownership {
	case Journal:
		c.ownership = Live
	case Live:
		c.ownership = Journal
	}
}

// Ownership reports which side currently holds the reference this marker
// tracks.
func (c *ReleaseMarker) Ownership() Ownership { return c.ownership }

// RetainMarker is ReleaseMarker's symmetric partner, used when an object
// is newly attached to the live graph. undo.Manager.RegisterRetain is
// net-zero on the object's count: the reference the live field holds is
// the one tracked unit, and this marker records which side currently
// owns it. Swap only relabels Ownership, exactly like ReleaseMarker.
type RetainMarker struct {
	baseChange
	obj       object.Managed
	ownership Ownership
}

// NewRetainMarker records that obj has just been attached to the live
// graph; the marker starts in Live ownership, the side that holds the
// tracked unit until undo hands it to the journal.
func NewRetainMarker(owner object.Managed, obj object.Managed) *RetainMarker {
	return &RetainMarker{baseChange{owner}, obj, Live}
}

func (c *RetainMarker) Swap() {
	switch c.ownership {
	case Live:
		c.ownership = Journal
	case Journal:
		c.ownership = Live
	}
}

// Ownership reports which side currently holds the reference this marker
// tracks.
func (c *RetainMarker) Ownership() Ownership { return c.ownership }

// journalHeld is implemented by the variants that can end up owning a
// reference solely on the journal's behalf (the release/retain markers).
// Step.Release uses it to release anything still held this way when a
// step is discarded, instead of leaking it.
type journalHeld interface {
	heldByJournal() (object.Managed, bool)
}

func (c *ReleaseMarker) heldByJournal() (object.Managed, bool) {
	return c.obj, c.ownership == Journal
}

func (c *RetainMarker) heldByJournal() (object.Managed, bool) {
	return c.obj, c.ownership == Journal
}
