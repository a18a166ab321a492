package rbsys

import "fmt"

// Jump is the panic payload of a non-local exit: raise, break, throw and
// fatal errors. Only the VM that created it recovers it.
type Jump struct {
	Tag   Tag
	Value VALUE

	tagv   VALUE
	target VALUE
	vm     *VM
}

func (j *Jump) Error() string {
	if j.Tag == TagRaise || j.Tag == TagFatal {
		if j.vm != nil && j.vm.errinfo != Qnil {
			return fmt.Sprintf("rbsys: %s: %s", j.vm.ObjClassName(j.vm.errinfo), j.vm.ExcMessage(j.vm.errinfo))
		}
	}
	return "rbsys: non-local exit (" + j.Tag.String() + ")"
}

// Owner reports whether j was raised by vm.
func (j *Jump) Owner(vm *VM) bool { return j.vm == vm }

// ---------------------------------------------------------------------------
// Protected execution
// ---------------------------------------------------------------------------

// Protect calls fn(data) and captures any non-local exit. A zero tag means
// fn returned normally. On a raise the exception stays in the errinfo
// slot until the caller clears it; other jumps are kept for JumpTag.
func (vm *VM) Protect(fn func(data uintptr) VALUE, data uintptr) (result VALUE, tag Tag) {
	frames, blocks, catches := len(vm.frames), len(vm.blocks), len(vm.catches)
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		j, ok := p.(*Jump)
		if !ok || j.vm != vm {
			panic(p)
		}
		vm.frames = vm.frames[:frames]
		vm.blocks = vm.blocks[:blocks]
		vm.catches = vm.catches[:catches]
		if j.Tag != TagRaise && j.Tag != TagFatal {
			vm.pending = j
		}
		result, tag = Qnil, j.Tag
	}()
	return fn(data), TagNone
}

// JumpTag resumes a jump captured by Protect. It never returns.
func (vm *VM) JumpTag(tag Tag) {
	switch tag {
	case TagNone:
		panic("rbsys: JumpTag with no tag")
	case TagRaise, TagFatal:
		if vm.errinfo == Qnil {
			panic("rbsys: JumpTag(" + tag.String() + ") with an empty errinfo slot")
		}
		panic(&Jump{Tag: tag, vm: vm})
	}
	j := vm.pending
	if j == nil || j.Tag != tag {
		panic("rbsys: JumpTag(" + tag.String() + ") with no pending jump")
	}
	vm.pending = nil
	panic(j)
}

// ErrInfo returns the pending exception, or nil.
func (vm *VM) ErrInfo() VALUE { return vm.errinfo }

// SetErrInfo sets the pending exception slot. Passing nil clears it.
func (vm *VM) SetErrInfo(v VALUE) {
	vm.errinfo = v
	if v == Qnil {
		vm.pending = nil
	}
}

// TakeJump removes the captured non-raise jump and returns it, or nil.
// The caller owns it from then on and resumes it with ResumeJump.
func (vm *VM) TakeJump() *Jump {
	j := vm.pending
	vm.pending = nil
	return j
}

// ResumeJump continues a jump returned by TakeJump. It never returns.
func (vm *VM) ResumeJump(j *Jump) {
	if j == nil || j.vm != vm {
		vm.Bug("resume of a foreign or missing jump")
	}
	panic(j)
}

// PendingJump reports the tag of a captured non-raise jump, if any.
func (vm *VM) PendingJump() Tag {
	if vm.pending == nil {
		return TagNone
	}
	return vm.pending.Tag
}

// ---------------------------------------------------------------------------
// Raising
// ---------------------------------------------------------------------------

// Raise raises exc. It never returns.
func (vm *VM) Raise(exc VALUE) {
	if !vm.ObjIsKindOf(exc, vm.EException) {
		exc = vm.ExcNew(vm.ETypeError, "exception class/object expected")
	}
	if vm.IvarGet(exc, vm.Intern(ivarBacktrace)) == Qnil && !vm.FrozenP(exc) {
		vm.IvarSet(exc, vm.Intern(ivarBacktrace), vm.backtrace())
	}
	vm.errinfo = exc
	tag := TagRaise
	if vm.ObjIsKindOf(exc, vm.EFatal) {
		tag = TagFatal
	}
	panic(&Jump{Tag: tag, vm: vm})
}

// Raisef raises a new exception of class klass. It never returns.
func (vm *VM) Raisef(klass VALUE, format string, args ...any) {
	vm.Raise(vm.ExcNew(klass, fmt.Sprintf(format, args...)))
}

// Bug raises the fatal error class, which StandardError rescues do not
// catch.
func (vm *VM) Bug(format string, args ...any) {
	vm.Raisef(vm.EFatal, format, args...)
}

func (vm *VM) backtrace() VALUE {
	lines := make([]VALUE, 0, len(vm.frames))
	for i := len(vm.frames) - 1; i >= 0; i-- {
		f := vm.frames[i]
		lines = append(lines, vm.StrNew(fmt.Sprintf("%s#%s", vm.ClassName(vm.RealClass(f.Owner)), vm.IDName(f.Mid))))
	}
	return vm.AryNewFrom(lines...)
}

// Rescue calls body and, if it raises an exception that is a kind of one
// of classes (StandardError when none are given), calls rescue with it.
func (vm *VM) Rescue(body func() VALUE, rescue func(exc VALUE) VALUE, classes ...VALUE) VALUE {
	if len(classes) == 0 {
		classes = []VALUE{vm.EStandardError}
	}
	var result VALUE
	var tag Tag
	func() {
		frames, blocks, catches := len(vm.frames), len(vm.blocks), len(vm.catches)
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			j, ok := p.(*Jump)
			if !ok || j.vm != vm || j.Tag != TagRaise {
				panic(p)
			}
			vm.frames = vm.frames[:frames]
			vm.blocks = vm.blocks[:blocks]
			vm.catches = vm.catches[:catches]
			tag = j.Tag
		}()
		result = body()
	}()
	if tag == TagNone {
		return result
	}
	exc := vm.errinfo
	for _, c := range classes {
		if vm.ObjIsKindOf(exc, c) {
			vm.errinfo = Qnil
			return rescue(exc)
		}
	}
	vm.JumpTag(TagRaise)
	return Qnil
}

// Ensure calls body, then ensure, even when body exits non-locally.
func (vm *VM) Ensure(body func() VALUE, ensure func()) VALUE {
	defer ensure()
	return body()
}

// ---------------------------------------------------------------------------
// catch / throw
// ---------------------------------------------------------------------------

// Catch calls fn with tag and returns either its result or the value
// thrown to tag.
func (vm *VM) Catch(tag VALUE, fn func(tag VALUE) VALUE) (result VALUE) {
	n := len(vm.catches)
	vm.catches = append(vm.catches, tag)
	frames, blocks := len(vm.frames), len(vm.blocks)
	defer func() {
		vm.catches = vm.catches[:n]
		p := recover()
		if p == nil {
			return
		}
		j, ok := p.(*Jump)
		if !ok || j.vm != vm || j.Tag != TagThrow || j.tagv != tag {
			panic(p)
		}
		vm.frames = vm.frames[:frames]
		vm.blocks = vm.blocks[:blocks]
		result = j.Value
	}()
	return fn(tag)
}

// Throw transfers control to the innermost Catch for tag. Without one it
// raises UncaughtThrowError.
func (vm *VM) Throw(tag, value VALUE) {
	for i := len(vm.catches) - 1; i >= 0; i-- {
		if vm.catches[i] == tag {
			panic(&Jump{Tag: TagThrow, Value: value, tagv: tag, vm: vm})
		}
	}
	exc := vm.ExcNew(vm.EUncaughtThrowError, "uncaught throw "+vm.Inspect(tag))
	vm.IvarSet(exc, vm.Intern("tag"), tag)
	vm.IvarSet(exc, vm.Intern("value"), value)
	vm.Raise(exc)
}
