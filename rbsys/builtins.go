package rbsys

import (
	"fmt"
	"strings"
)

func (vm *VM) initBuiltins() {
	vm.initKernelMethods()
	vm.initModuleMethods()
	vm.initSpecialMethods()
	vm.initComparableMethods()
	vm.initExceptionMethods()
	vm.initNumericMethods()
	vm.initStringMethods()
	vm.initArrayMethods()
	vm.initHashMethods()
	vm.initStructMethods()
	vm.initRegexpMethods()
	vm.initProcMethods()
	vm.initEnumeratorMethods()
	vm.initGCMethods()
}

// anyToS is the default to_s: #<ClassName:0x...>.
func (vm *VM) anyToS(v VALUE) string {
	return fmt.Sprintf("#<%s:%#016x>", vm.ObjClassName(v), uint64(v))
}

func (vm *VM) objInspect(v VALUE) string {
	ids := vm.IvarNames(v)
	var parts []string
	for _, id := range ids {
		name := vm.IDName(id)
		if !strings.HasPrefix(name, "@") {
			continue
		}
		parts = append(parts, name+"="+vm.Inspect(vm.IvarGet(v, id)))
	}
	if len(parts) == 0 {
		return vm.anyToS(v)
	}
	return fmt.Sprintf("#<%s:%#016x %s>", vm.ObjClassName(v), uint64(v), strings.Join(parts, ", "))
}

// ObjDup copies v the way Kernel#dup does: a shallow copy of the same class.
func (vm *VM) ObjDup(v VALUE) VALUE {
	if SpecialConstP(v) {
		return v
	}
	switch o := vm.slot(v).(type) {
	case *RObject:
		c := &RObject{RBasic: header(TObject, vm.ObjClass(v))}
		c.ivarID = append([]ID(nil), o.ivarID...)
		c.Ivars = append([]VALUE(nil), o.Ivars...)
		return vm.newObject(c)
	case *RString:
		return vm.StrDup(v)
	case *RArray:
		return vm.newObject(&RArray{RBasic: header(TArray, vm.ObjClass(v)), Elems: append([]VALUE(nil), o.Elems...)})
	case *RStruct:
		return vm.newObject(&RStruct{RBasic: header(TStruct, vm.ObjClass(v)), Fields: append([]VALUE(nil), o.Fields...)})
	case *RHash:
		return vm.Send(v, "dup")
	case *RFloat, *RBignum, *RRational, *RComplex, *RRegexp:
		return v
	}
	vm.Raisef(vm.ETypeError, "can't dup %s", vm.ObjClassName(v))
	return Qnil
}

func (vm *VM) initKernelMethods() {
	k := vm.MKernel
	vm.def(k, "to_s", 0, func(self VALUE, _ []VALUE) VALUE { return vm.StrNew(vm.anyToS(self)) })
	vm.def(k, "inspect", 0, func(self VALUE, _ []VALUE) VALUE { return vm.StrNew(vm.objInspect(self)) })
	vm.def(k, "==", 1, func(self VALUE, argv []VALUE) VALUE { return boolValue(self == argv[0]) })
	vm.def(k, "!=", 1, func(self VALUE, argv []VALUE) VALUE { return boolValue(!vm.EqualP(self, argv[0])) })
	vm.def(k, "equal?", 1, func(self VALUE, argv []VALUE) VALUE { return boolValue(self == argv[0]) })
	vm.def(k, "eql?", 1, func(self VALUE, argv []VALUE) VALUE { return boolValue(self == argv[0]) })
	vm.def(k, "!", 0, func(self VALUE, _ []VALUE) VALUE { return boolValue(!Test(self)) })
	vm.def(k, "hash", 0, func(self VALUE, _ []VALUE) VALUE { return vm.identityHash(self) })
	vm.def(k, "object_id", 0, func(self VALUE, _ []VALUE) VALUE { return vm.Uint2Inum(uint64(self)) })
	vm.def(k, "class", 0, func(self VALUE, _ []VALUE) VALUE { return vm.ObjClass(self) })
	vm.def(k, "singleton_class", 0, func(self VALUE, _ []VALUE) VALUE { return vm.SingletonClass(self) })
	vm.def(k, "frozen?", 0, func(self VALUE, _ []VALUE) VALUE { return boolValue(vm.FrozenP(self)) })
	vm.def(k, "freeze", 0, func(self VALUE, _ []VALUE) VALUE { return vm.Freeze(self) })
	vm.def(k, "nil?", 0, func(self VALUE, _ []VALUE) VALUE { return boolValue(self == Qnil) })
	vm.def(k, "dup", 0, func(self VALUE, _ []VALUE) VALUE { return vm.ObjDup(self) })
	vm.def(k, "itself", 0, func(self VALUE, _ []VALUE) VALUE { return self })
	vm.def(k, "is_a?", 1, func(self VALUE, argv []VALUE) VALUE { return boolValue(vm.ObjIsKindOf(self, argv[0])) })
	vm.def(k, "kind_of?", 1, func(self VALUE, argv []VALUE) VALUE { return boolValue(vm.ObjIsKindOf(self, argv[0])) })
	vm.def(k, "instance_of?", 1, func(self VALUE, argv []VALUE) VALUE {
		return boolValue(vm.ObjIsInstanceOf(self, argv[0]))
	})
	vm.defv(k, "respond_to?", func(argc int, argv []VALUE, self VALUE) VALUE {
		vm.checkArity(argc, 1, 2)
		name := vm.AsString(argv[0])
		id, ok := vm.CheckID(name)
		return boolValue(ok && vm.RespondTo(self, id))
	})
	vm.defv(k, "send", func(argc int, argv []VALUE, self VALUE) VALUE {
		vm.checkArity(argc, 1, -1)
		return vm.FuncallWithBlock(self, vm.Intern(vm.AsString(argv[0])), argv[1:], vm.BlockProc())
	})
	vm.def(k, "instance_variable_get", 1, func(self VALUE, argv []VALUE) VALUE {
		return vm.IvarGet(self, vm.Intern(vm.AsString(argv[0])))
	})
	vm.def(k, "instance_variable_set", 2, func(self VALUE, argv []VALUE) VALUE {
		return vm.IvarSet(self, vm.Intern(vm.AsString(argv[0])), argv[1])
	})
	vm.def(k, "instance_variables", 0, func(self VALUE, _ []VALUE) VALUE {
		out := vm.AryNew(0)
		for _, id := range vm.IvarNames(self) {
			if strings.HasPrefix(vm.IDName(id), "@") {
				vm.AryPush(out, ID2Sym(id))
			}
		}
		return out
	})
	vm.defv(k, "raise", func(argc int, argv []VALUE, self VALUE) VALUE {
		vm.checkArity(argc, 0, 2)
		switch {
		case argc == 0:
			if vm.errinfo != Qnil {
				vm.Raise(vm.errinfo)
			}
			vm.Raisef(vm.ERuntimeError, "unhandled exception")
		case vm.typeOf(argv[0]) == TString:
			vm.Raise(vm.ExcNew(vm.ERuntimeError, vm.AsString(argv[0])))
		}
		if !vm.RespondTo(argv[0], vm.Intern("exception")) {
			vm.Raisef(vm.ETypeError, "exception class/object expected")
		}
		exc := vm.Funcall(argv[0], vm.Intern("exception"), argv[1:]...)
		vm.Raise(exc)
		return Qnil
	})
	vm.defv(k, "throw", func(argc int, argv []VALUE, self VALUE) VALUE {
		vm.checkArity(argc, 1, 2)
		val := Qnil
		if argc == 2 {
			val = argv[1]
		}
		vm.Throw(argv[0], val)
		return Qnil
	})
	vm.defv(k, "catch", func(argc int, argv []VALUE, self VALUE) VALUE {
		vm.checkArity(argc, 0, 1)
		var tag VALUE
		if argc == 1 {
			tag = argv[0]
		} else {
			tag = vm.objAlloc(vm.CObject)
		}
		blk := vm.BlockProc()
		if blk == Qnil {
			vm.Raisef(vm.ELocalJumpError, "no block given (yield)")
		}
		return vm.Catch(tag, func(tag VALUE) VALUE { return vm.ProcCall(blk, tag) })
	})
	vm.def(k, "block_given?", 0, func(self VALUE, _ []VALUE) VALUE {
		// the caller's frame, not block_given?'s own
		if n := len(vm.frames); n >= 2 {
			return boolValue(vm.frames[n-2].Block != Qnil)
		}
		return Qfalse
	})
	vm.def(k, "initialize", 0, func(VALUE, []VALUE) VALUE { return Qnil })
	vm.defv(k, "enum_for", func(argc int, argv []VALUE, self VALUE) VALUE {
		meth := vm.Intern("each")
		if argc > 0 {
			meth, argv = vm.Intern(vm.AsString(argv[0])), argv[1:]
		}
		return vm.Enumeratorize(self, meth, argv)
	})
	vm.defv(k, "String", func(argc int, argv []VALUE, self VALUE) VALUE {
		vm.checkArity(argc, 1, 1)
		if s := vm.CheckConvertType(argv[0], TString, "String", "to_str"); s != Qnil {
			return s
		}
		return vm.ObjAsString(argv[0])
	})
	vm.defv(k, "Integer", func(argc int, argv []VALUE, self VALUE) VALUE {
		vm.checkArity(argc, 1, 1)
		if vm.IntegerP(argv[0]) {
			return argv[0]
		}
		return vm.Int2Inum(vm.Num2Long(argv[0]))
	})
	vm.defv(k, "Float", func(argc int, argv []VALUE, self VALUE) VALUE {
		vm.checkArity(argc, 1, 1)
		return vm.FloatNew(vm.Num2Dbl(argv[0]))
	})
}

func (vm *VM) initModuleMethods() {
	m := vm.CModule
	vm.def(m, "name", 0, func(self VALUE, _ []VALUE) VALUE {
		if n := vm.RClass(self).Name; n != "" {
			return vm.StrNew(n)
		}
		return Qnil
	})
	vm.def(m, "to_s", 0, func(self VALUE, _ []VALUE) VALUE { return vm.StrNew(vm.ClassName(self)) })
	vm.def(m, "inspect", 0, func(self VALUE, _ []VALUE) VALUE { return vm.StrNew(vm.ClassName(self)) })
	vm.def(m, "===", 1, func(self VALUE, argv []VALUE) VALUE { return boolValue(vm.ObjIsKindOf(argv[0], self)) })
	vm.def(m, "ancestors", 0, func(self VALUE, _ []VALUE) VALUE {
		var out []VALUE
		for _, a := range vm.Ancestors(self) {
			if vm.Flags(a)&FlSingleton == 0 {
				out = append(out, a)
			}
		}
		return vm.AryNewFrom(out...)
	})
	vm.def(m, "include", 1, func(self VALUE, argv []VALUE) VALUE {
		vm.IncludeModule(self, argv[0])
		return self
	})
	vm.def(m, "const_get", 1, func(self VALUE, argv []VALUE) VALUE {
		return vm.ConstGet(self, vm.AsString(argv[0]))
	})
	vm.def(m, "const_set", 2, func(self VALUE, argv []VALUE) VALUE {
		vm.ConstSet(self, vm.AsString(argv[0]), argv[1])
		return argv[1]
	})
	vm.defv(m, "method_defined?", func(argc int, argv []VALUE, self VALUE) VALUE {
		vm.checkArity(argc, 1, 2)
		id, ok := vm.CheckID(vm.AsString(argv[0]))
		return boolValue(ok && vm.searchMethod(self, id) != nil)
	})
	vm.def(m, "instance_methods", 0, func(self VALUE, _ []VALUE) VALUE {
		out := vm.AryNew(0)
		for id := range vm.RClass(self).Methods {
			vm.AryPush(out, ID2Sym(id))
		}
		return out
	})
	vm.def(m, "==", 1, func(self VALUE, argv []VALUE) VALUE { return boolValue(self == argv[0]) })
	vm.def(m, "hash", 0, func(self VALUE, _ []VALUE) VALUE { return vm.identityHash(self) })

	c := vm.CClass
	vm.defv(c, "new", func(argc int, argv []VALUE, self VALUE) VALUE {
		obj := vm.ObjAlloc(self)
		vm.FuncallWithBlock(obj, vm.Intern("initialize"), argv, vm.BlockProc())
		return obj
	})
	vm.def(c, "allocate", 0, func(self VALUE, _ []VALUE) VALUE { return vm.ObjAlloc(self) })
	vm.def(c, "superclass", 0, func(self VALUE, _ []VALUE) VALUE {
		if s := vm.Superclass(self); s != 0 {
			return s
		}
		return Qnil
	})
}

func (vm *VM) initSpecialMethods() {
	vm.def(vm.CNilClass, "to_s", 0, func(VALUE, []VALUE) VALUE { return vm.StrNew("") })
	vm.def(vm.CNilClass, "to_a", 0, func(VALUE, []VALUE) VALUE { return vm.AryNew(0) })
	vm.def(vm.CNilClass, "to_h", 0, func(VALUE, []VALUE) VALUE { return vm.HashNew() })
	vm.def(vm.CNilClass, "inspect", 0, func(VALUE, []VALUE) VALUE { return vm.StrNew("nil") })
	vm.def(vm.CTrueClass, "to_s", 0, func(VALUE, []VALUE) VALUE { return vm.StrNew("true") })
	vm.def(vm.CTrueClass, "inspect", 0, func(VALUE, []VALUE) VALUE { return vm.StrNew("true") })
	vm.def(vm.CFalseClass, "to_s", 0, func(VALUE, []VALUE) VALUE { return vm.StrNew("false") })
	vm.def(vm.CFalseClass, "inspect", 0, func(VALUE, []VALUE) VALUE { return vm.StrNew("false") })
	vm.def(vm.CTrueClass, "&", 1, func(_ VALUE, argv []VALUE) VALUE { return boolValue(Test(argv[0])) })
	vm.def(vm.CFalseClass, "&", 1, func(VALUE, []VALUE) VALUE { return Qfalse })
}

func (vm *VM) initComparableMethods() {
	c := vm.MComparable
	cmp := func(self, other VALUE) int {
		r := vm.Send(self, "<=>", other)
		if r == Qnil {
			vm.Raisef(vm.EArgError, "comparison of %s with %s failed", vm.ObjClassName(self), vm.Inspect(other))
		}
		return int(vm.Num2Long(r))
	}
	vm.def(c, "==", 1, func(self VALUE, argv []VALUE) VALUE {
		if self == argv[0] {
			return Qtrue
		}
		r := vm.Send(self, "<=>", argv[0])
		return boolValue(r != Qnil && vm.Num2Long(r) == 0)
	})
	vm.def(c, "<", 1, func(self VALUE, argv []VALUE) VALUE { return boolValue(cmp(self, argv[0]) < 0) })
	vm.def(c, "<=", 1, func(self VALUE, argv []VALUE) VALUE { return boolValue(cmp(self, argv[0]) <= 0) })
	vm.def(c, ">", 1, func(self VALUE, argv []VALUE) VALUE { return boolValue(cmp(self, argv[0]) > 0) })
	vm.def(c, ">=", 1, func(self VALUE, argv []VALUE) VALUE { return boolValue(cmp(self, argv[0]) >= 0) })
	vm.def(c, "between?", 2, func(self VALUE, argv []VALUE) VALUE {
		return boolValue(cmp(self, argv[0]) >= 0 && cmp(self, argv[1]) <= 0)
	})
}
