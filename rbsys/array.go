package rbsys

import "strings"

// AryMaxSize bounds the index AryStore will pad an Array out to.
const AryMaxSize = 1 << 26

// AryNew allocates an empty Array with room for capa elements.
func (vm *VM) AryNew(capa int) VALUE {
	return vm.newObject(&RArray{RBasic: header(TArray, vm.CArray), Elems: make([]VALUE, 0, capa)})
}

// AryNewFrom allocates an Array holding a copy of elems.
func (vm *VM) AryNewFrom(elems ...VALUE) VALUE {
	return vm.newObject(&RArray{RBasic: header(TArray, vm.CArray), Elems: append([]VALUE(nil), elems...)})
}

// AryPush appends v.
func (vm *VM) AryPush(ary, v VALUE) VALUE {
	vm.CheckFrozen(ary)
	a := vm.RArray(ary)
	a.Elems = append(a.Elems, v)
	return ary
}

// AryPop removes and returns the last element, or nil.
func (vm *VM) AryPop(ary VALUE) VALUE {
	vm.CheckFrozen(ary)
	a := vm.RArray(ary)
	if len(a.Elems) == 0 {
		return Qnil
	}
	v := a.Elems[len(a.Elems)-1]
	a.Elems = a.Elems[:len(a.Elems)-1]
	return v
}

// AryShift removes and returns the first element, or nil.
func (vm *VM) AryShift(ary VALUE) VALUE {
	vm.CheckFrozen(ary)
	a := vm.RArray(ary)
	if len(a.Elems) == 0 {
		return Qnil
	}
	v := a.Elems[0]
	a.Elems = append(a.Elems[:0:0], a.Elems[1:]...)
	return v
}

// AryUnshift prepends v.
func (vm *VM) AryUnshift(ary, v VALUE) VALUE {
	vm.CheckFrozen(ary)
	a := vm.RArray(ary)
	a.Elems = append([]VALUE{v}, a.Elems...)
	return ary
}

// AryCat appends elems.
func (vm *VM) AryCat(ary VALUE, elems []VALUE) VALUE {
	vm.CheckFrozen(ary)
	a := vm.RArray(ary)
	a.Elems = append(a.Elems, elems...)
	return ary
}

// AryEntry returns the element at i, counting from the end when i is
// negative, or nil when out of range.
func (vm *VM) AryEntry(ary VALUE, i int) VALUE {
	elems := vm.RArray(ary).Elems
	if i < 0 {
		i += len(elems)
	}
	if i < 0 || i >= len(elems) {
		return Qnil
	}
	return elems[i]
}

// AryStore sets the element at i, padding with nil. A negative index
// before the start raises IndexError.
func (vm *VM) AryStore(ary VALUE, i int, v VALUE) {
	vm.CheckFrozen(ary)
	a := vm.RArray(ary)
	if i < 0 {
		i += len(a.Elems)
		if i < 0 {
			vm.Raisef(vm.EIndexError, "index %d too small for array; minimum: -%d", i-len(a.Elems), len(a.Elems))
		}
	}
	if i >= AryMaxSize {
		vm.Raisef(vm.EIndexError, "index %d too big", i)
	}
	for len(a.Elems) <= i {
		a.Elems = append(a.Elems, Qnil)
	}
	a.Elems[i] = v
}

// AryLen returns the number of elements.
func (vm *VM) AryLen(ary VALUE) int {
	return len(vm.RArray(ary).Elems)
}

// AryDup copies an Array.
func (vm *VM) AryDup(ary VALUE) VALUE {
	return vm.AryNewFrom(vm.RArray(ary).Elems...)
}

// AryJoin joins the to_s of every element.
func (vm *VM) AryJoin(ary VALUE, sep string) string {
	elems := vm.RArray(ary).Elems
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = vm.AsString(e)
	}
	return strings.Join(parts, sep)
}

func (vm *VM) aryInspect(ary VALUE) string {
	elems := vm.RArray(ary).Elems
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = vm.Inspect(e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (vm *VM) initArrayMethods() {
	c := vm.CArray
	vm.def(c, "to_a", 0, func(self VALUE, _ []VALUE) VALUE { return self })
	vm.def(c, "to_ary", 0, func(self VALUE, _ []VALUE) VALUE { return self })
	vm.def(c, "inspect", 0, func(self VALUE, _ []VALUE) VALUE { return vm.StrNew(vm.aryInspect(self)) })
	vm.def(c, "to_s", 0, func(self VALUE, _ []VALUE) VALUE { return vm.StrNew(vm.aryInspect(self)) })
	vm.def(c, "size", 0, func(self VALUE, _ []VALUE) VALUE { return Long2Fix(int64(vm.AryLen(self))) })
	vm.def(c, "length", 0, func(self VALUE, _ []VALUE) VALUE { return Long2Fix(int64(vm.AryLen(self))) })
	vm.def(c, "empty?", 0, func(self VALUE, _ []VALUE) VALUE { return boolValue(vm.AryLen(self) == 0) })
	vm.def(c, "first", 0, func(self VALUE, _ []VALUE) VALUE { return vm.AryEntry(self, 0) })
	vm.def(c, "last", 0, func(self VALUE, _ []VALUE) VALUE { return vm.AryEntry(self, -1) })
	vm.def(c, "[]", 1, func(self VALUE, argv []VALUE) VALUE {
		return vm.AryEntry(self, int(vm.Num2Long(argv[0])))
	})
	vm.def(c, "[]=", 2, func(self VALUE, argv []VALUE) VALUE {
		vm.AryStore(self, int(vm.Num2Long(argv[0])), argv[1])
		return argv[1]
	})
	vm.defv(c, "push", func(argc int, argv []VALUE, self VALUE) VALUE { return vm.AryCat(self, argv) })
	vm.def(c, "<<", 1, func(self VALUE, argv []VALUE) VALUE { return vm.AryPush(self, argv[0]) })
	vm.def(c, "pop", 0, func(self VALUE, _ []VALUE) VALUE { return vm.AryPop(self) })
	vm.def(c, "shift", 0, func(self VALUE, _ []VALUE) VALUE { return vm.AryShift(self) })
	vm.def(c, "unshift", 1, func(self VALUE, argv []VALUE) VALUE { return vm.AryUnshift(self, argv[0]) })
	vm.def(c, "concat", 1, func(self VALUE, argv []VALUE) VALUE {
		o := vm.ConvertType(argv[0], TArray, "Array", "to_ary")
		return vm.AryCat(self, vm.RArray(o).Elems)
	})
	vm.def(c, "dup", 0, func(self VALUE, _ []VALUE) VALUE { return vm.AryDup(self) })
	vm.defv(c, "join", func(argc int, argv []VALUE, self VALUE) VALUE {
		vm.checkArity(argc, 0, 1)
		sep := ""
		if argc == 1 {
			sep = vm.AsString(vm.StringValue(argv[0]))
		}
		return vm.StrNew(vm.AryJoin(self, sep))
	})
	vm.def(c, "==", 1, func(self VALUE, argv []VALUE) VALUE {
		o := argv[0]
		if vm.typeOf(o) != TArray {
			return Qfalse
		}
		x, y := vm.RArray(self).Elems, vm.RArray(o).Elems
		if len(x) != len(y) {
			return Qfalse
		}
		for i := range x {
			if !vm.EqualP(x[i], y[i]) {
				return Qfalse
			}
		}
		return Qtrue
	})
	vm.def(c, "eql?", 1, func(self VALUE, argv []VALUE) VALUE { return boolValue(vm.EqlP(self, argv[0])) })
	vm.def(c, "hash", 0, func(self VALUE, _ []VALUE) VALUE { return Long2Fix(int64(vm.HashOf(self) >> 2)) })
	vm.def(c, "include?", 1, func(self VALUE, argv []VALUE) VALUE {
		for _, e := range vm.RArray(self).Elems {
			if vm.EqualP(e, argv[0]) {
				return Qtrue
			}
		}
		return Qfalse
	})
	vm.def(c, "each", 0, func(self VALUE, _ []VALUE) VALUE {
		if !vm.BlockGivenP() {
			return vm.Enumeratorize(self, vm.Intern("each"), nil)
		}
		// the array may grow or shrink while yielding
		for i := 0; i < vm.AryLen(self); i++ {
			vm.Yield(vm.RArray(self).Elems[i])
		}
		return self
	})
	vm.def(c, "map", 0, func(self VALUE, _ []VALUE) VALUE {
		if !vm.BlockGivenP() {
			return vm.Enumeratorize(self, vm.Intern("map"), nil)
		}
		out := vm.AryNew(vm.AryLen(self))
		for i := 0; i < vm.AryLen(self); i++ {
			vm.AryPush(out, vm.Yield(vm.RArray(self).Elems[i]))
		}
		return out
	})
	vm.def(c, "map!", 0, func(self VALUE, _ []VALUE) VALUE {
		if !vm.BlockGivenP() {
			return vm.Enumeratorize(self, vm.Intern("map!"), nil)
		}
		vm.CheckFrozen(self)
		for i := 0; i < vm.AryLen(self); i++ {
			vm.AryStore(self, i, vm.Yield(vm.RArray(self).Elems[i]))
		}
		return self
	})

	vm.defv(vm.MKernel, "Array", func(argc int, argv []VALUE, self VALUE) VALUE {
		vm.checkArity(argc, 1, 1)
		if argv[0] == Qnil {
			return vm.AryNew(0)
		}
		if a := vm.CheckConvertType(argv[0], TArray, "Array", "to_ary"); a != Qnil {
			return a
		}
		if a := vm.CheckConvertType(argv[0], TArray, "Array", "to_a"); a != Qnil {
			return a
		}
		return vm.AryNewFrom(argv[0])
	})
}
