package rbsys

// DataType describes host data wrapped in a T_DATA object. Every callback
// is optional and is invoked only by the collector.
type DataType struct {
	Name string

	// Mark reports the VALUEs held by data, with GCMark or GCMarkMovable.
	Mark func(data any)
	// Free releases data once its object is unreachable.
	Free func(data any)
	// Size reports the memory held by data, in bytes.
	Size func(data any) int
	// Compact updates movable VALUEs held by data, using GCLocation.
	Compact func(data any)

	// Parent makes this type acceptable wherever Parent is expected.
	Parent *DataType

	// FreeImmediately runs Free during the sweep instead of leaving a
	// zombie for the next collection.
	FreeImmediately bool
}

// IsA reports whether t is dt or inherits from it.
func (t *DataType) IsA(dt *DataType) bool {
	for ; t != nil; t = t.Parent {
		if t == dt {
			return true
		}
	}
	return false
}

// TypedDataWrap allocates a T_DATA object of class klass wrapping data.
func (vm *VM) TypedDataWrap(klass VALUE, data any, dt *DataType) VALUE {
	return vm.newObject(&RTypedData{RBasic: header(TData, klass), Type: dt, Data: data})
}

// TypedDataP reports whether v is a T_DATA object.
func (vm *VM) TypedDataP(v VALUE) bool {
	return !SpecialConstP(v) && vm.BuiltinType(v) == TData
}

// CheckTypedData returns the data of v when v wraps dt or a descendant.
func (vm *VM) CheckTypedData(v VALUE, dt *DataType) (any, bool) {
	if !vm.TypedDataP(v) {
		return nil, false
	}
	td := vm.RTypedData(v)
	if !td.Type.IsA(dt) {
		return nil, false
	}
	return td.Data, true
}

// GetTypedData is CheckTypedData that raises TypeError on a mismatch.
func (vm *VM) GetTypedData(v VALUE, dt *DataType) any {
	data, ok := vm.CheckTypedData(v, dt)
	if !ok {
		actual := vm.ObjClassName(v)
		if vm.TypedDataP(v) {
			actual = vm.RTypedData(v).Type.Name
		}
		vm.Raisef(vm.ETypeError, "wrong argument type %s (expected %s)", actual, dt.Name)
	}
	return data
}

// MemsizeOf reports the size callback of a typed data object, or 0.
func (vm *VM) MemsizeOf(v VALUE) int {
	if !vm.TypedDataP(v) {
		return 0
	}
	td := vm.RTypedData(v)
	if td.Type == nil || td.Type.Size == nil {
		return 0
	}
	return td.Type.Size(td.Data)
}

// ---------------------------------------------------------------------------
// Proc
// ---------------------------------------------------------------------------

var procType = &DataType{Name: "proc", FreeImmediately: true}

type procData struct {
	fn BlockFunc
}

// ProcNew wraps fn as a Proc.
func (vm *VM) ProcNew(fn BlockFunc) VALUE {
	return vm.TypedDataWrap(vm.CProc, &procData{fn: fn}, procType)
}

// ProcP reports whether v is a Proc.
func (vm *VM) ProcP(v VALUE) bool {
	_, ok := vm.CheckTypedData(v, procType)
	return ok
}

// ProcCall invokes a Proc. IterBreakValue inside the body unwinds to the
// call that received the Proc as its block.
func (vm *VM) ProcCall(proc VALUE, args ...VALUE) VALUE {
	p := vm.GetTypedData(proc, procType).(*procData)
	n := len(vm.blocks)
	vm.blocks = append(vm.blocks, proc)
	defer func() { vm.blocks = vm.blocks[:n] }()
	return p.fn(args)
}

func (vm *VM) initProcMethods() {
	c := vm.CProc
	vm.defv(c, "call", func(argc int, argv []VALUE, self VALUE) VALUE { return vm.ProcCall(self, argv...) })
	vm.defv(c, "yield", func(argc int, argv []VALUE, self VALUE) VALUE { return vm.ProcCall(self, argv...) })
	vm.def(c, "to_proc", 0, func(self VALUE, _ []VALUE) VALUE { return self })
	vm.defs(c, "new", 0, FixedFunc(func(self VALUE, _ []VALUE) VALUE {
		blk := vm.BlockProc()
		if blk == Qnil {
			vm.Raisef(vm.EArgError, "tried to create Proc object without a block")
		}
		return blk
	}))
}
