package rbsys

// RootSet is an external provider of GC roots. EachRoot calls fn with the
// address of every VALUE it holds; the collector marks them and, after
// compaction, rewrites them in place.
type RootSet interface {
	EachRoot(fn func(*VALUE))
}

// Stats summarizes the heap after a collection.
type Stats struct {
	Count   int
	Slots   int
	Live    int
	Free    int
	Zombies int
	Moved   int
	Freed   int
	Memsize int
}

type gcPhase int

const (
	phaseIdle gcPhase = iota
	phaseMark
	phaseCompact
)

type gcState struct {
	phase gcPhase
	stack []VALUE
	count int
	last  Stats
}

// ---------------------------------------------------------------------------
// Root registration
// ---------------------------------------------------------------------------

// GCRegisterAddress makes *addr a root. The VALUE stored there may change
// at any time; compaction rewrites it.
func (vm *VM) GCRegisterAddress(addr *VALUE) {
	vm.addresses[addr] = struct{}{}
}

// GCUnregisterAddress removes a root added by GCRegisterAddress.
func (vm *VM) GCUnregisterAddress(addr *VALUE) {
	delete(vm.addresses, addr)
}

// GCRegisterMarkObject keeps v alive, and in place, for the life of the VM.
func (vm *VM) GCRegisterMarkObject(v VALUE) {
	if !SpecialConstP(v) {
		vm.markObjects = append(vm.markObjects, v)
	}
}

// AddRootSet registers an external root provider.
func (vm *VM) AddRootSet(rs RootSet) {
	vm.rootSets = append(vm.rootSets, rs)
}

// DefineVariable creates a global variable backed by *addr, which also
// becomes a root.
func (vm *VM) DefineVariable(name string, addr *VALUE) {
	vm.globals[vm.Intern(name)] = addr
	vm.GCRegisterAddress(addr)
}

// GvGet reads a global variable, or nil.
func (vm *VM) GvGet(name string) VALUE {
	id, ok := vm.CheckID(name)
	if !ok {
		return Qnil
	}
	if p, ok := vm.globals[id]; ok {
		return *p
	}
	return Qnil
}

// GvSet writes a global variable, creating it when needed.
func (vm *VM) GvSet(name string, v VALUE) VALUE {
	id := vm.Intern(name)
	p, ok := vm.globals[id]
	if !ok {
		p = new(VALUE)
		vm.DefineVariable(name, p)
	}
	*p = v
	return v
}

// ---------------------------------------------------------------------------
// Marking
// ---------------------------------------------------------------------------

// GCMark marks v and pins it so compaction will not move it. Valid only
// from a Mark callback.
func (vm *VM) GCMark(v VALUE) {
	if vm.gc.phase == phaseMark {
		vm.mark(v, true)
	}
}

// GCMarkMovable marks v without pinning it. The owner must update its
// reference from a Compact callback.
func (vm *VM) GCMarkMovable(v VALUE) {
	if vm.gc.phase == phaseMark {
		vm.mark(v, false)
	}
}

// GCLocation returns the new address of v after compaction. Outside a
// Compact callback it returns v unchanged.
func (vm *VM) GCLocation(v VALUE) VALUE {
	if vm.gc.phase != phaseCompact {
		return v
	}
	return vm.location(v)
}

func (vm *VM) location(v VALUE) VALUE {
	if m, ok := vm.slot(v).(*RMoved); ok {
		return m.Dest
	}
	return v
}

func (vm *VM) mark(v VALUE, pin bool) {
	obj := vm.slot(v)
	if obj == nil {
		return
	}
	b := obj.basic()
	switch b.Type() {
	case TZombie, TMoved, TNone:
		return
	}
	if pin {
		b.Flags |= FlPinned
	}
	if b.Flags&FlMark != 0 {
		return
	}
	b.Flags |= FlMark
	vm.gc.stack = append(vm.gc.stack, v)
}

func (vm *VM) markChildren(v VALUE) {
	switch o := vm.slot(v).(type) {
	case *RObject:
		for _, x := range o.Ivars {
			vm.mark(x, false)
		}
	case *RArray:
		for _, x := range o.Elems {
			vm.mark(x, false)
		}
	case *RHash:
		for _, e := range o.entries {
			if !e.deleted {
				vm.mark(e.key, false)
				vm.mark(e.val, false)
			}
		}
		vm.mark(o.Default, false)
		vm.mark(o.DefaultProc, false)
	case *RStruct:
		for _, x := range o.Fields {
			vm.mark(x, false)
		}
	case *RMatch:
		vm.mark(o.Regexp, false)
		vm.mark(o.Str, false)
	case *RComplex:
		vm.mark(o.Real, false)
		vm.mark(o.Imag, false)
	case *RRational:
		vm.mark(o.Num, false)
		vm.mark(o.Den, false)
	case *RClass:
		vm.mark(o.Super, true)
		vm.mark(o.attached, true)
		for _, m := range o.Includes {
			vm.mark(m, true)
		}
		for _, x := range o.Consts {
			vm.mark(x, false)
		}
		for _, x := range o.Ivars {
			vm.mark(x, false)
		}
	case *RTypedData:
		if o.Type != nil && o.Type.Mark != nil {
			o.Type.Mark(o.Data)
		}
	}
	if obj := vm.slot(v); obj != nil {
		vm.mark(obj.basic().Klass, true)
	}
}

func (vm *VM) markRoots() {
	for _, c := range vm.classes {
		vm.mark(c, true)
	}
	for _, v := range vm.markObjects {
		vm.mark(v, true)
	}
	for _, f := range vm.frames {
		vm.mark(f.Self, true)
		vm.mark(f.Block, true)
		for _, a := range f.Args {
			vm.mark(a, true)
		}
	}
	for _, b := range vm.blocks {
		vm.mark(b, true)
	}
	for _, c := range vm.catches {
		vm.mark(c, true)
	}
	vm.mark(vm.errinfo, true)
	vm.mark(vm.backref, false)
	if vm.pending != nil {
		vm.mark(vm.pending.Value, true)
		vm.mark(vm.pending.tagv, true)
		vm.mark(vm.pending.target, true)
	}
	for addr := range vm.addresses {
		vm.mark(*addr, false)
	}
	for _, rs := range vm.rootSets {
		rs.EachRoot(func(p *VALUE) { vm.mark(*p, false) })
	}
}

func (vm *VM) markAll() {
	for _, obj := range vm.slots {
		if obj != nil {
			obj.basic().Flags &^= FlMark | FlPinned
		}
	}
	vm.gc.phase = phaseMark
	defer func() { vm.gc.phase = phaseIdle }()
	vm.markRoots()
	for len(vm.gc.stack) > 0 {
		v := vm.gc.stack[len(vm.gc.stack)-1]
		vm.gc.stack = vm.gc.stack[:len(vm.gc.stack)-1]
		vm.markChildren(v)
	}
}

// ---------------------------------------------------------------------------
// Sweeping
// ---------------------------------------------------------------------------

func (vm *VM) sweep() (freed int) {
	vm.free = vm.free[:0]
	for i, obj := range vm.slots {
		if obj == nil {
			continue
		}
		b := obj.basic()
		switch b.Type() {
		case TMoved:
			vm.slots[i] = nil
			continue
		case TZombie:
			td := obj.(*RTypedData)
			td.Type.Free(td.Data)
			vm.slots[i] = nil
			freed++
			continue
		}
		if b.Flags&FlMark != 0 {
			continue
		}
		if td, ok := obj.(*RTypedData); ok && td.Type != nil && td.Type.Free != nil {
			if !td.Type.FreeImmediately {
				// deferred to the next sweep
				b.Flags = b.Flags&^uint64(TMask) | uint64(TZombie)
				continue
			}
			td.Type.Free(td.Data)
		}
		vm.slots[i] = nil
		freed++
	}
	for i := len(vm.slots) - 1; i >= 0; i-- {
		if vm.slots[i] == nil {
			vm.free = append(vm.free, i)
		}
	}
	return freed
}

// ---------------------------------------------------------------------------
// Compaction
// ---------------------------------------------------------------------------

func (vm *VM) movable(obj Object) bool {
	if obj == nil {
		return false
	}
	b := obj.basic()
	if b.Flags&(FlPinned|FlMark) != FlMark {
		return false
	}
	switch b.Type() {
	case TClass, TModule, TZombie, TMoved, TNone:
		return false
	}
	return true
}

func (vm *VM) compactMove() (moved int) {
	free, scan := 0, len(vm.slots)-1
	for {
		for free < scan && vm.slots[free] != nil {
			free++
		}
		for scan > free && !vm.movable(vm.slots[scan]) {
			scan--
		}
		if free >= scan {
			break
		}
		vm.slots[free] = vm.slots[scan]
		vm.slots[scan] = &RMoved{RBasic: header(TMoved, 0), Dest: slotAddr(free)}
		moved++
	}
	return moved
}

func (vm *VM) updateRefs() {
	vm.gc.phase = phaseCompact
	defer func() { vm.gc.phase = phaseIdle }()
	loc := vm.location

	for _, obj := range vm.slots {
		switch o := obj.(type) {
		case *RObject:
			for i, x := range o.Ivars {
				o.Ivars[i] = loc(x)
			}
		case *RArray:
			for i, x := range o.Elems {
				o.Elems[i] = loc(x)
			}
		case *RHash:
			for i := range o.entries {
				e := &o.entries[i]
				e.key, e.val = loc(e.key), loc(e.val)
			}
			o.Default, o.DefaultProc = loc(o.Default), loc(o.DefaultProc)
		case *RStruct:
			for i, x := range o.Fields {
				o.Fields[i] = loc(x)
			}
		case *RMatch:
			o.Regexp, o.Str = loc(o.Regexp), loc(o.Str)
		case *RComplex:
			o.Real, o.Imag = loc(o.Real), loc(o.Imag)
		case *RRational:
			o.Num, o.Den = loc(o.Num), loc(o.Den)
		case *RClass:
			for k, x := range o.Consts {
				o.Consts[k] = loc(x)
			}
			for k, x := range o.Ivars {
				o.Ivars[k] = loc(x)
			}
		case *RTypedData:
			if o.Type != nil && o.Type.Compact != nil && o.RBasic.Type() != TZombie {
				o.Type.Compact(o.Data)
			}
		}
	}

	for addr := range vm.addresses {
		*addr = loc(*addr)
	}
	for _, rs := range vm.rootSets {
		rs.EachRoot(func(p *VALUE) { *p = loc(*p) })
	}
	vm.backref = loc(vm.backref)

	// identity hashes follow addresses
	for _, obj := range vm.slots {
		if h, ok := obj.(*RHash); ok {
			h.rehash(vm.HashOf)
		}
	}
}

// ---------------------------------------------------------------------------
// Entry points
// ---------------------------------------------------------------------------

// GC runs a full mark and sweep. It is a safepoint: VALUEs held only on Go
// stacks, and not in a frame or a registered root, may be freed.
func (vm *VM) GC() Stats {
	vm.markAll()
	freed := vm.sweep()
	return vm.finish(freed, 0)
}

// Compact runs a full collection, then moves every unpinned object to the
// lowest free slots and rewrites references to it. Old slots hold T_MOVED
// forwarding headers until the next sweep.
func (vm *VM) Compact() Stats {
	vm.markAll()
	freed := vm.sweep()
	moved := vm.compactMove()
	vm.updateRefs()
	vm.free = vm.free[:0]
	for i := len(vm.slots) - 1; i >= 0; i-- {
		if vm.slots[i] == nil {
			vm.free = append(vm.free, i)
		}
	}
	return vm.finish(freed, moved)
}

func (vm *VM) finish(freed, moved int) Stats {
	vm.gc.count++
	s := Stats{Count: vm.gc.count, Slots: len(vm.slots), Freed: freed, Moved: moved}
	for i, obj := range vm.slots {
		if obj == nil {
			s.Free++
			continue
		}
		switch obj.basic().Type() {
		case TZombie:
			s.Zombies++
		case TMoved:
		default:
			s.Live++
			s.Memsize += vm.MemsizeOf(slotAddr(i))
		}
	}
	vm.gc.last = s
	vm.log.Debugf("gc #%d: live=%d freed=%d zombies=%d moved=%d slots=%d",
		s.Count, s.Live, s.Freed, s.Zombies, s.Moved, s.Slots)
	return s
}

// GCStats returns the statistics of the last collection.
func (vm *VM) GCStats() Stats { return vm.gc.last }

func (vm *VM) initGCMethods() {
	g := vm.MGC
	vm.defs(g, "start", 0, FixedFunc(func(VALUE, []VALUE) VALUE {
		vm.GC()
		return Qnil
	}))
	vm.defs(g, "compact", 0, FixedFunc(func(VALUE, []VALUE) VALUE {
		vm.Compact()
		return Qnil
	}))
	vm.defs(g, "count", 0, FixedFunc(func(VALUE, []VALUE) VALUE {
		return Long2Fix(int64(vm.gc.count))
	}))
	vm.defs(g, "stat", 0, FixedFunc(func(VALUE, []VALUE) VALUE {
		s := vm.gc.last
		h := vm.HashNew()
		for _, kv := range []struct {
			k string
			v int
		}{
			{"count", s.Count}, {"heap_slots", s.Slots}, {"heap_live_slots", s.Live},
			{"heap_free_slots", s.Free}, {"zombies", s.Zombies}, {"moved", s.Moved},
			{"freed", s.Freed}, {"memsize", s.Memsize},
		} {
			vm.HashAset(h, vm.SymbolNew(kv.k), Long2Fix(int64(kv.v)))
		}
		return h
	}))
}
