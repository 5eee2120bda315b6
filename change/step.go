package change

// Step is one atomic, user-visible undo step: an ordered sequence of
// Changes in insertion order. A slice keeps the oldest-to-newest order,
// and Oldest/Newest cover both traversal directions the undo manager
// needs.
type Step struct {
	changes []Change
}

// NewStep returns an empty step ready to accumulate changes.
func NewStep() *Step {
	return &Step{}
}

// Add appends change to the newest end of the step.
func (s *Step) Add(c Change) {
	s.changes = append(s.changes, c)
}

// Count returns the number of changes recorded in this step.
func (s *Step) Count() int {
	return len(s.changes)
}

// Empty reports whether the step has no changes, so CloseStep can
// destroy it without pushing an empty step onto the undo stack.
func (s *Step) Empty() bool {
	return len(s.changes) == 0
}

// Oldest returns the step's changes oldest-first, the order redo replays
// them in.
func (s *Step) Oldest() []Change {
	return s.changes
}

// Newest returns the step's changes newest-first, the order undo replays
// them in.
func (s *Step) Newest() []Change {
	reversed := make([]Change, len(s.changes))
	for i, c := range s.changes {
		reversed[len(s.changes)-1-i] = c
	}
	return reversed
}

// Release is the step's teardown: it releases any
// object reference still held solely by the journal (see journalHeld) and
// drops the step's own hold on every change's owner.
func (s *Step) Release() {
	for _, c := range s.changes {
		if jh, ok := c.(journalHeld); ok {
			if obj, held := jh.heldByJournal(); held {
				obj.Release()
			}
		}
		if owner := c.Owner(); owner != nil {
			owner.Release()
		}
	}
	s.changes = nil
}
