// Package object implements the reference-counted object model that
// underpins every document built on top of this library: a base type
// every heap entity embeds (ManagedObject) and the deferred-release
// queue that serializes reference-count arithmetic across threads
// (AutoreleasePool).
package object

import "sync"

// Managed is implemented by any type embedding ManagedObject. The undo
// journal and the pool only ever talk to objects through this interface.
type Managed interface {
	Retain() Managed
	Release()
	Autorelease() Managed
	RefCount() int32
}

// AutoreleasePool is a deferred-release queue guarded by a single mutex.
// That same mutex also guards every retain/release/high-bit update on any
// ManagedObject constructed against this pool — a deliberate coupling so
// that reference-count arithmetic is serialized across all objects that
// share a pool, not just pool membership.
//
// A pool is an explicit value, not a mutable package-level global: the
// application root constructs one (see System) and threads it through to
// anything that needs to mint ManagedObjects.
type AutoreleasePool struct {
	mu    sync.Mutex
	queue []Managed
}

// NewPool returns an empty, ready-to-use pool.
func NewPool() *AutoreleasePool {
	return &AutoreleasePool{}
}

// Mutex exposes the pool's internal lock so ManagedObject can serialize its
// own counter updates through it.
func (p *AutoreleasePool) Mutex() *sync.Mutex {
	return &p.mu
}

// Add enqueues o for release at the next Drain. It does not touch o's
// reference count.
func (p *AutoreleasePool) Add(o Managed) {
	p.mu.Lock()
	p.queue = append(p.queue, o)
	p.mu.Unlock()
}

// Drain releases exactly one reference per object currently queued, in the
// FIFO order Add enqueued them, then empties the queue. Releases performed
// during Drain may themselves enqueue further objects (e.g. a destructor
// autoreleasing a child); those are not visited by this Drain, only by
// the next one.
func (p *AutoreleasePool) Drain() {
	p.mu.Lock()
	pending := p.queue
	p.queue = nil
	p.mu.Unlock()

	for _, o := range pending {
		o.Release()
	}
}

// Len reports the number of objects currently queued for release. Mostly
// useful for tests and diagnostics.
func (p *AutoreleasePool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}
