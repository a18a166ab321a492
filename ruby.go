package garnet

import (
	"reflect"

	"github.com/google/uuid"
	"github.com/tliron/commonlog"

	"github.com/chazu/garnet/config"
	"github.com/chazu/garnet/rbsys"
)

// Ruby is a handle on one runtime. Every operation that can allocate,
// dispatch or raise goes through it.
//
// A Ruby is not safe for concurrent use. All calls must come from the
// goroutine that owns it; see Worker.
type Ruby struct {
	vm    *rbsys.VM
	id    uuid.UUID
	debug bool

	handles    handleTable
	trampoline func(uintptr) rbsys.VALUE
	unconsumed *State

	registry *GCRegistry
	types    map[reflect.Type]*boundType

	mGarnet   rbsys.VALUE
	cGoObject rbsys.VALUE

	log       commonlog.Logger
	methodLog commonlog.Logger
}

// Option configures New.
type Option func(*settings)

type settings struct {
	heapSlots int
	debug     bool
}

// WithConfig applies the [runtime] section of a garnet.toml file.
func WithConfig(c *config.Config) Option {
	return func(s *settings) {
		if c == nil {
			return
		}
		if c.Runtime.HeapSlots > 0 {
			s.heapSlots = c.Runtime.HeapSlots
		}
		s.debug = s.debug || c.Runtime.DebugAssertions
	}
}

// WithDebugAssertions turns liveness checks on heap dereferences on or
// off. They are on by default in builds tagged garnet_debug.
func WithDebugAssertions(on bool) Option {
	return func(s *settings) { s.debug = on }
}

// WithHeapSlots sets the initial heap arena capacity.
func WithHeapSlots(n int) Option {
	return func(s *settings) { s.heapSlots = n }
}

// New starts a runtime.
func New(opts ...Option) *Ruby {
	s := settings{heapSlots: rbsys.DefaultHeapSlots, debug: debugAssertions}
	for _, o := range opts {
		o(&s)
	}

	r := &Ruby{
		vm:        rbsys.New(rbsys.Options{HeapSlots: s.heapSlots}),
		id:        uuid.New(),
		debug:     s.debug,
		types:     make(map[reflect.Type]*boundType),
		log:       commonlog.GetLogger("garnet"),
		methodLog: commonlog.GetLogger("garnet.method"),
	}
	r.handles.init()
	r.trampoline = r.callParked
	r.registry = newGCRegistry()
	r.vm.AddRootSet(r.registry)
	r.initGoObject()

	r.log.Infof("runtime %s started (heap_slots=%d, debug_assertions=%t)", r.id, s.heapSlots, r.debug)
	return r
}

// Close runs pending free functions and drops the heap. The runtime must
// not be used afterwards.
func (r *Ruby) Close() {
	if r.unconsumed != nil {
		r.log.Warningf("runtime %s closed with an unconsumed %s state", r.id, r.unconsumed.tag)
		r.unconsumed = nil
	}
	r.vm.Close()
	r.log.Infof("runtime %s closed", r.id)
}

// ID identifies this runtime instance.
func (r *Ruby) ID() uuid.UUID { return r.id }

// VM exposes the raw runtime surface.
func (r *Ruby) VM() *rbsys.VM { return r.vm }

// DebugAssertions reports whether liveness checks are enabled.
func (r *Ruby) DebugAssertions() bool { return r.debug }
