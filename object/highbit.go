package object

// highBitMask isolates the one marker bit domain code may stash on top of
// the reference count. The core never reads or writes it except through
// HighBit/SetHighBit, and never lets it leak into the count arithmetic.
const highBitMask = int32(-1 << 31)

// HighBit returns the current value of the caller-owned marker bit.
func (o *ManagedObject) HighBit() bool {
	return o.refCount&highBitMask != 0
}

// SetHighBit sets or clears the caller-owned marker bit without disturbing
// RefCount. The bit shares a word with the count, so the write runs under
// the pool's mutex like the count arithmetic does.
func (o *ManagedObject) SetHighBit(status bool) {
	if o.pool != nil {
		o.pool.Mutex().Lock()
		defer o.pool.Mutex().Unlock()
	}
	if status {
		o.refCount |= highBitMask
	} else {
		o.refCount &^= highBitMask
	}
}

// Equatable is implemented by domain types that want value equality
// instead of the identity-only default. The core never calls this itself;
// it exists purely so collaborators like String can override it.
type Equatable interface {
	Equals(other any) bool
}

// Equals reports identity equality by default. Embedding types override it
// for value semantics; the core (undo/document) never relies on this.
func (o *ManagedObject) Equals(other any) bool {
	if mo, ok := other.(*ManagedObject); ok {
		return mo == o
	}
	return false
}
