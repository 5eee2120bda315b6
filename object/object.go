package object

// ManagedObject is the base every heap entity participating in ownership
// and undo embeds. It carries an intrinsic reference count plus one
// caller-owned marker bit that the core never inspects (see highbit.go).
//
// retain/release/autorelease all run under the owning pool's mutex so
// that a background thread may safely hand a handle to the document
// thread and release it later, even though the document's mutation and
// undo machinery itself performs no locking (see the undo package).
type ManagedObject struct {
	refCount int32
	pool     *AutoreleasePool

	// destroy, if set, is invoked exactly once when the reference count
	// reaches zero, before the object is otherwise considered gone.
	// Embedding types that own other ManagedObjects can set this to
	// release what they hold; no type in this module installs one.
	destroy func()
}

// New constructs a ManagedObject with an initial reference count of one,
// bound to pool. The canonical pattern: the constructor's caller owns the
// returned handle and must Release it when done.
func New(pool *AutoreleasePool) *ManagedObject {
	return &ManagedObject{refCount: 1, pool: pool}
}

// SetDestroyFunc installs the callback run once when the object's
// reference count reaches zero. It must be called before the object is
// shared with any other code.
func (o *ManagedObject) SetDestroyFunc(fn func()) {
	o.destroy = fn
}

// Retain increments the reference count under the pool's mutex and
// returns the same handle so callers can chain construction.
//
// Calling Retain on an object whose count has already reached zero is a
// programming defect; the core does not guard against it.
func (o *ManagedObject) Retain() Managed {
	o.pool.Mutex().Lock()
	o.refCount++
	o.pool.Mutex().Unlock()
	return o
}

// Release decrements the reference count under the pool's mutex; if the
// count reaches zero it invokes the destroy callback, if any. It is a
// silent no-op when the object has no pool (e.g. a zero-value
// ManagedObject that was never properly constructed).
func (o *ManagedObject) Release() {
	if o.pool == nil {
		return
	}
	mu := o.pool.Mutex()
	mu.Lock()
	o.refCount--
	count := o.RefCount()
	mu.Unlock()

	if count == 0 && o.destroy != nil {
		o.destroy()
	}
}

// Autorelease enqueues the object into its pool for release at the next
// Drain and returns the same handle. It does not change the reference
// count.
func (o *ManagedObject) Autorelease() Managed {
	o.pool.Add(o)
	return o
}

// RefCount returns the low 31 bits of the internal counter — the part
// that is an actual count, excluding the caller-owned high bit.
func (o *ManagedObject) RefCount() int32 {
	return o.refCount &^ highBitMask
}
