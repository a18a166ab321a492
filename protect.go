package garnet

import (
	"fmt"

	"github.com/chazu/garnet/rbsys"
)

// Tag is the completion code of a protected call.
type Tag = rbsys.Tag

// Completion codes
const (
	TagReturn = rbsys.TagReturn
	TagBreak  = rbsys.TagBreak
	TagNext   = rbsys.TagNext
	TagRetry  = rbsys.TagRetry
	TagRedo   = rbsys.TagRedo
	TagRaise  = rbsys.TagRaise
	TagThrow  = rbsys.TagThrow
	TagFatal  = rbsys.TagFatal
)

// handleTable parks closures while the runtime runs them. A handle is the
// one data word rbsys.Protect passes back to the trampoline; nothing else
// turns a closure into a word.
type handleTable struct {
	next   uintptr
	parked map[uintptr]func() Value
}

func (h *handleTable) init() {
	h.parked = make(map[uintptr]func() Value)
}

func (h *handleTable) park(fn func() Value) uintptr {
	h.next++
	h.parked[h.next] = fn
	return h.next
}

func (h *handleTable) take(id uintptr) func() Value {
	fn, ok := h.parked[id]
	if !ok {
		panic(fmt.Sprintf("garnet: no parked closure for handle %d", id))
	}
	return fn
}

func (h *handleTable) drop(id uintptr) {
	delete(h.parked, id)
}

func (r *Ruby) callParked(id uintptr) rbsys.VALUE {
	return r.handles.take(id)().raw()
}

// Protect calls fn and captures any raise, break, throw or other
// non-local exit that escapes it.
//
// On a normal return the error is nil. Otherwise the error is a *State.
// For a raise the runtime's pending exception slot stays set until the
// State is consumed; any other exit is carried by the State itself. Go
// panics that are not runtime unwinds pass through.
func (r *Ruby) Protect(fn func() Value) (Value, error) {
	r.releaseUnconsumed()
	id := r.handles.park(fn)
	defer r.handles.drop(id)

	v, tag := r.vm.Protect(r.trampoline, id)
	if tag == rbsys.TagNone {
		return Value(v), nil
	}
	st := &State{r: r, tag: tag}
	if st.IsException() {
		exc := r.vm.ErrInfo()
		st.desc = r.vm.ObjClassName(exc) + ": " + r.vm.ExcMessage(exc)
		r.unconsumed = st
	} else {
		st.jump = r.vm.TakeJump()
		st.desc = "non-local exit (" + tag.String() + ")"
	}
	return Nil, st
}

// protect is Protect with the exception already taken out of the slot:
// a raise comes back as an exception *Error, any other exit as a jump
// *Error that still has to be resumed.
func (r *Ruby) protect(fn func() Value) (Value, error) {
	v, err := r.Protect(fn)
	if err == nil {
		return v, nil
	}
	st := err.(*State)
	if exc, ok := st.Exception(); ok {
		return Nil, r.exceptionError(exc)
	}
	return Nil, jumpError(st)
}

func (r *Ruby) releaseUnconsumed() {
	st := r.unconsumed
	if st == nil {
		return
	}
	r.unconsumed = nil
	if st.consumed {
		return
	}
	r.methodLog.Warningf("releasing unconsumed %s state: %s", st.tag, st.desc)
	st.Release()
}

// ErrInfo returns the pending exception, or nil.
func (r *Ruby) ErrInfo() Value { return Value(r.vm.ErrInfo()) }

// ---------------------------------------------------------------------------
// State
// ---------------------------------------------------------------------------

// State is the outcome of a protected call that did not return normally.
//
// It must be consumed exactly once, by Exception, Resume or Release. An
// unconsumed exception State is released, with a warning, when the next
// Protect starts. Break, throw and the other jumps live in the State and
// stay resumable until consumed.
type State struct {
	r        *Ruby
	tag      rbsys.Tag
	desc     string
	jump     *rbsys.Jump
	consumed bool
}

func (s *State) Error() string { return s.desc }

// Tag returns the completion code.
func (s *State) Tag() Tag { return s.tag }

// IsException reports whether the state carries an exception in the
// pending slot.
func (s *State) IsException() bool {
	return s.tag == rbsys.TagRaise || s.tag == rbsys.TagFatal
}

// Exception takes the pending exception out of the slot, leaving it
// empty. It reports false for non-exception states, which stay pending.
func (s *State) Exception() (Exception, bool) {
	if !s.IsException() || s.consumed {
		return Exception{}, false
	}
	exc := s.r.vm.ErrInfo()
	s.r.vm.SetErrInfo(rbsys.Qnil)
	s.consume()
	return Exception{NonZeroValue{Value(exc)}}, true
}

// Resume continues the unwind the state captured. It never returns.
//
// The caller must still be inside the runtime call that was active when
// the state was captured. Resuming a consumed state raises a fatal error.
func (s *State) Resume() {
	vm := s.r.vm
	if s.consumed {
		vm.Bug("resume of a consumed %s state", s.tag)
	}
	s.consume()
	if !s.IsException() {
		vm.ResumeJump(s.jump)
	}
	if vm.ErrInfo() == rbsys.Qnil {
		vm.Bug("resume of a %s state with an empty exception slot", s.tag)
	}
	vm.JumpTag(s.tag)
}

// Release clears the pending slot without raising. Use it for a state
// that will not be resumed or inspected.
func (s *State) Release() {
	if s.consumed {
		return
	}
	if s.IsException() {
		s.r.vm.SetErrInfo(rbsys.Qnil)
	}
	s.jump = nil
	s.consume()
}

func (s *State) consume() {
	s.consumed = true
	if s.r.unconsumed == s {
		s.r.unconsumed = nil
	}
}
