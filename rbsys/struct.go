package rbsys

import (
	"fmt"
	"strings"
)

// StructDefine creates a Struct subclass with the given members. A
// non-empty name defines the class as Struct::<name>.
func (vm *VM) StructDefine(name string, members ...string) VALUE {
	if len(members) == 0 {
		vm.Raisef(vm.EArgError, "wrong number of arguments (given 0, expected 1+)")
	}
	var klass VALUE
	if name == "" {
		klass = vm.ClassNew(vm.CStruct)
	} else {
		klass = vm.DefineClassUnder(vm.CStruct, name, vm.CStruct)
	}
	return vm.structSetup(klass, members)
}

// StructDefineUnder creates a Struct subclass named name inside outer.
func (vm *VM) StructDefineUnder(outer VALUE, name string, members ...string) VALUE {
	klass := vm.DefineClassUnder(outer, name, vm.CStruct)
	return vm.structSetup(klass, members)
}

func (vm *VM) structSetup(klass VALUE, members []string) VALUE {
	c := vm.RClass(klass)
	seen := make(map[string]bool, len(members))
	for _, m := range members {
		if seen[m] {
			vm.Raisef(vm.EArgError, "duplicate member: %s", m)
		}
		seen[m] = true
		c.members = append(c.members, vm.Intern(m))
	}
	n := len(members)
	vm.DefineAlloc(klass, func(k VALUE) VALUE {
		fields := make([]VALUE, n)
		for i := range fields {
			fields[i] = Qnil
		}
		return vm.newObject(&RStruct{RBasic: header(TStruct, k), Fields: fields})
	})
	for i, m := range members {
		i := i
		vm.def(klass, m, 0, func(self VALUE, _ []VALUE) VALUE { return vm.StructAref(self, i) })
		vm.def(klass, m+"=", 1, func(self VALUE, argv []VALUE) VALUE {
			vm.StructAset(self, i, argv[0])
			return argv[0]
		})
	}
	return klass
}

// StructMembers returns the member names of a Struct instance's class.
func (vm *VM) StructMembers(v VALUE) []string {
	for k := vm.ObjClass(v); k != 0; k = vm.RClass(k).Super {
		if ms := vm.RClass(k).members; ms != nil {
			out := make([]string, len(ms))
			for i, id := range ms {
				out[i] = vm.IDName(id)
			}
			return out
		}
	}
	return nil
}

// StructAref returns field i.
func (vm *VM) StructAref(v VALUE, i int) VALUE {
	f := vm.RStruct(v).Fields
	if i < 0 || i >= len(f) {
		vm.Raisef(vm.EIndexError, "offset %d too large for struct(size:%d)", i, len(f))
	}
	return f[i]
}

// StructAset sets field i.
func (vm *VM) StructAset(v VALUE, i int, x VALUE) {
	vm.CheckFrozen(v)
	f := vm.RStruct(v).Fields
	if i < 0 || i >= len(f) {
		vm.Raisef(vm.EIndexError, "offset %d too large for struct(size:%d)", i, len(f))
	}
	f[i] = x
}

// StructSize returns the number of fields.
func (vm *VM) StructSize(v VALUE) int {
	return len(vm.RStruct(v).Fields)
}

// StructGetter returns the field named name.
func (vm *VM) StructGetter(v VALUE, name string) VALUE {
	for i, m := range vm.StructMembers(v) {
		if m == name {
			return vm.StructAref(v, i)
		}
	}
	exc := vm.ExcNew(vm.ENameError, fmt.Sprintf("no member '%s' in struct", name))
	vm.Raise(exc)
	return Qnil
}

func (vm *VM) initStructMethods() {
	c := vm.CStruct
	vm.defs(c, "new", ArityCArgs, CArgsFunc(func(argc int, argv []VALUE, self VALUE) VALUE {
		if self != vm.CStruct {
			obj := vm.ObjAlloc(self)
			vm.FuncallWithBlock(obj, vm.Intern("initialize"), argv, vm.BlockProc())
			return obj
		}
		vm.checkArity(argc, 1, -1)
		name := ""
		if vm.typeOf(argv[0]) == TString {
			name, argv = vm.AsString(argv[0]), argv[1:]
		}
		members := make([]string, len(argv))
		for i, m := range argv {
			if vm.typeOf(m) != TSymbol {
				vm.Raisef(vm.ETypeError, "%s is not a symbol", vm.Inspect(m))
			}
			members[i] = vm.SymbolName(m)
		}
		return vm.StructDefine(name, members...)
	}))
	vm.defv(c, "initialize", func(argc int, argv []VALUE, self VALUE) VALUE {
		f := vm.RStruct(self).Fields
		if argc > len(f) {
			vm.Raisef(vm.EArgError, "struct size differs")
		}
		copy(f, argv)
		return Qnil
	})
	vm.def(c, "members", 0, func(self VALUE, _ []VALUE) VALUE {
		ms := vm.StructMembers(self)
		out := vm.AryNew(len(ms))
		for _, m := range ms {
			vm.AryPush(out, vm.SymbolNew(m))
		}
		return out
	})
	vm.def(c, "to_a", 0, func(self VALUE, _ []VALUE) VALUE { return vm.AryNewFrom(vm.RStruct(self).Fields...) })
	vm.def(c, "size", 0, func(self VALUE, _ []VALUE) VALUE { return Long2Fix(int64(vm.StructSize(self))) })
	vm.def(c, "[]", 1, func(self VALUE, argv []VALUE) VALUE {
		k := argv[0]
		if vm.typeOf(k) == TSymbol || vm.typeOf(k) == TString {
			return vm.StructGetter(self, vm.AsString(k))
		}
		return vm.StructAref(self, int(vm.Num2Long(k)))
	})
	vm.def(c, "==", 1, func(self VALUE, argv []VALUE) VALUE {
		o := argv[0]
		if vm.ObjClass(self) != vm.ObjClass(o) {
			return Qfalse
		}
		a, b := vm.RStruct(self).Fields, vm.RStruct(o).Fields
		for i := range a {
			if !vm.EqualP(a[i], b[i]) {
				return Qfalse
			}
		}
		return Qtrue
	})
	vm.def(c, "inspect", 0, func(self VALUE, _ []VALUE) VALUE {
		var b strings.Builder
		b.WriteString("#<struct ")
		if n := vm.RClass(vm.ObjClass(self)).Name; n != "" {
			b.WriteString(n)
			b.WriteByte(' ')
		}
		for i, m := range vm.StructMembers(self) {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(m)
			b.WriteByte('=')
			b.WriteString(vm.Inspect(vm.StructAref(self, i)))
		}
		b.WriteByte('>')
		return vm.StrNew(b.String())
	})
}
