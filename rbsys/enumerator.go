package rbsys

type enumData struct {
	vm   *VM
	recv VALUE
	meth ID
	args []VALUE
}

var enumeratorType = &DataType{
	Name: "enumerator",
	Mark: func(data any) {
		e := data.(*enumData)
		e.vm.GCMarkMovable(e.recv)
		for _, a := range e.args {
			e.vm.GCMarkMovable(a)
		}
	},
	Compact: func(data any) {
		e := data.(*enumData)
		e.recv = e.vm.GCLocation(e.recv)
		for i, a := range e.args {
			e.args[i] = e.vm.GCLocation(a)
		}
	},
	Size: func(data any) int {
		e := data.(*enumData)
		return 32 + 8*len(e.args)
	},
	FreeImmediately: true,
}

// Enumeratorize returns an Enumerator that calls recv.meth(*args) with
// the block it is iterated with.
func (vm *VM) Enumeratorize(recv VALUE, meth ID, args []VALUE) VALUE {
	e := &enumData{vm: vm, recv: recv, meth: meth, args: append([]VALUE(nil), args...)}
	return vm.TypedDataWrap(vm.CEnumerator, e, enumeratorType)
}

// EnumeratorP reports whether v is an Enumerator.
func (vm *VM) EnumeratorP(v VALUE) bool {
	_, ok := vm.CheckTypedData(v, enumeratorType)
	return ok
}

// EnumEach iterates an Enumerator, calling fn with each yielded value.
// Multiple yielded values arrive packed in an Array.
func (vm *VM) EnumEach(enum VALUE, fn func(v VALUE)) {
	e := vm.GetTypedData(enum, enumeratorType).(*enumData)
	vm.BlockCall(e.recv, e.meth, e.args, func(args []VALUE) VALUE {
		fn(packArgs(vm, args))
		return Qnil
	})
}

func packArgs(vm *VM, args []VALUE) VALUE {
	switch len(args) {
	case 0:
		return Qnil
	case 1:
		return args[0]
	}
	return vm.AryNewFrom(args...)
}

// EnumToA collects every value an Enumerable yields from each.
func (vm *VM) EnumToA(obj VALUE) VALUE {
	out := vm.AryNew(0)
	vm.BlockCall(obj, vm.Intern("each"), nil, func(args []VALUE) VALUE {
		vm.AryPush(out, packArgs(vm, args))
		return Qnil
	})
	return out
}

func (vm *VM) initEnumeratorMethods() {
	c := vm.CEnumerator
	vm.def(c, "each", 0, func(self VALUE, _ []VALUE) VALUE {
		if !vm.BlockGivenP() {
			return self
		}
		e := vm.GetTypedData(self, enumeratorType).(*enumData)
		return vm.FuncallWithBlock(e.recv, e.meth, e.args, vm.BlockProc())
	})
	vm.def(c, "size", 0, func(self VALUE, _ []VALUE) VALUE { return Qnil })
	vm.def(c, "inspect", 0, func(self VALUE, _ []VALUE) VALUE {
		e := vm.GetTypedData(self, enumeratorType).(*enumData)
		return vm.StrNew("#<Enumerator: " + vm.Inspect(e.recv) + ":" + vm.IDName(e.meth) + ">")
	})
	vm.def(c, "next", 0, func(self VALUE, _ []VALUE) VALUE {
		// no fibers: next materializes the sequence and is only useful for
		// taking the first value
		a := vm.EnumToA(self)
		if vm.AryLen(a) == 0 {
			vm.Raisef(vm.EStopIteration, "iteration reached an end")
		}
		return vm.AryEntry(a, 0)
	})

	en := vm.MEnumerable
	vm.def(en, "to_a", 0, func(self VALUE, _ []VALUE) VALUE { return vm.EnumToA(self) })
	vm.def(en, "entries", 0, func(self VALUE, _ []VALUE) VALUE { return vm.EnumToA(self) })
	vm.def(en, "map", 0, func(self VALUE, _ []VALUE) VALUE {
		if !vm.BlockGivenP() {
			return vm.Enumeratorize(self, vm.Intern("map"), nil)
		}
		blk := vm.BlockProc()
		out := vm.AryNew(0)
		vm.BlockCall(self, vm.Intern("each"), nil, func(args []VALUE) VALUE {
			vm.AryPush(out, vm.ProcCall(blk, args...))
			return Qnil
		})
		return out
	})
	vm.def(en, "first", 0, func(self VALUE, _ []VALUE) VALUE {
		first := Qnil
		vm.BlockCall(self, vm.Intern("each"), nil, func(args []VALUE) VALUE {
			first = packArgs(vm, args)
			vm.IterBreakValue(Qnil)
			return Qnil
		})
		return first
	})
	vm.def(en, "include?", 1, func(self VALUE, argv []VALUE) VALUE {
		found := Qfalse
		vm.BlockCall(self, vm.Intern("each"), nil, func(args []VALUE) VALUE {
			if vm.EqualP(packArgs(vm, args), argv[0]) {
				found = Qtrue
				vm.IterBreakValue(Qnil)
			}
			return Qnil
		})
		return found
	})
}
