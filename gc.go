package garnet

import (
	"sync"

	"github.com/chazu/garnet/rbsys"
)

// GCRegistry is the set of Go-held addresses the collector treats as
// roots. Registered values are marked movable and rewritten in place
// after compaction.
type GCRegistry struct {
	mu    sync.Mutex
	addrs map[*Value]struct{}
}

func newGCRegistry() *GCRegistry {
	return &GCRegistry{addrs: make(map[*Value]struct{})}
}

// Register makes *p a root until Unregister.
func (g *GCRegistry) Register(p *Value) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addrs[p] = struct{}{}
}

// Unregister removes a root. Unknown addresses are ignored.
func (g *GCRegistry) Unregister(p *Value) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.addrs, p)
}

// Len returns the number of registered roots.
func (g *GCRegistry) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.addrs)
}

// EachRoot implements rbsys.RootSet.
func (g *GCRegistry) EachRoot(fn func(*rbsys.VALUE)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for p := range g.addrs {
		fn((*rbsys.VALUE)(p))
	}
}

// GCRegistry returns the runtime's root registry.
func (r *Ruby) GCRegistry() *GCRegistry { return r.registry }

// BoxValue holds a value on the Go heap and keeps it alive until Close.
// Compaction updates the boxed value; always read it back with Get.
type BoxValue struct {
	r *Ruby
	v *Value
}

// NewBox roots v.
func (r *Ruby) NewBox(v ReprValue) *BoxValue {
	p := new(Value)
	*p = v.AsValue()
	r.registry.Register(p)
	return &BoxValue{r: r, v: p}
}

// Get returns the current handle.
func (b *BoxValue) Get() Value { return *b.v }

// AsValue returns the current handle.
func (b *BoxValue) AsValue() Value { return *b.v }

// Set replaces the boxed value.
func (b *BoxValue) Set(v ReprValue) { *b.v = v.AsValue() }

// Close unregisters the box. The value may be collected afterwards.
func (b *BoxValue) Close() error {
	b.r.registry.Unregister(b.v)
	return nil
}

// Leak keeps v alive, and in place, for the life of the runtime.
func (r *Ruby) Leak(v ReprValue) { r.vm.GCRegisterMarkObject(v.AsValue().raw()) }

// GCStats summarizes the heap after a collection.
type GCStats = rbsys.Stats

// GCStart runs a full collection. Only rooted values survive it.
func (r *Ruby) GCStart() GCStats {
	st := r.vm.GC()
	r.log.Debugf("gc: live=%d freed=%d zombies=%d roots=%d", st.Live, st.Freed, st.Zombies, r.registry.Len())
	return st
}

// GCCompact collects and then moves unpinned objects. Values held only in
// Go variables are stale afterwards.
func (r *Ruby) GCCompact() GCStats {
	st := r.vm.Compact()
	r.log.Debugf("gc compact: live=%d moved=%d", st.Live, st.Moved)
	return st
}

// GCStat returns the statistics of the last collection.
func (r *Ruby) GCStat() GCStats { return r.vm.GCStats() }

// GCLocation returns the address v moved to during compaction. It is
// meaningful only inside a Compact callback.
func (r *Ruby) GCLocation(v Value) Value { return Value(r.vm.GCLocation(v.raw())) }
