package rbsys

import "fmt"

// Hidden instance variables of exceptions. They carry no '@' so they are
// not visible as ordinary instance variables.
const (
	ivarMessage   = "mesg"
	ivarBacktrace = "bt"
)

func (vm *VM) initExceptions() {
	vm.EException = vm.DefineClass("Exception", vm.CObject)
	vm.EScriptError = vm.DefineClass("ScriptError", vm.EException)
	vm.ENotImpError = vm.DefineClass("NotImplementedError", vm.EScriptError)
	vm.EStandardError = vm.DefineClass("StandardError", vm.EException)
	vm.EArgError = vm.DefineClass("ArgumentError", vm.EStandardError)
	vm.EUncaughtThrowError = vm.DefineClass("UncaughtThrowError", vm.EArgError)
	vm.EIndexError = vm.DefineClass("IndexError", vm.EStandardError)
	vm.EKeyError = vm.DefineClass("KeyError", vm.EIndexError)
	vm.EStopIteration = vm.DefineClass("StopIteration", vm.EIndexError)
	vm.ERangeError = vm.DefineClass("RangeError", vm.EStandardError)
	vm.EFloatDomainError = vm.DefineClass("FloatDomainError", vm.ERangeError)
	vm.ETypeError = vm.DefineClass("TypeError", vm.EStandardError)
	vm.ENameError = vm.DefineClass("NameError", vm.EStandardError)
	vm.ENoMethodError = vm.DefineClass("NoMethodError", vm.ENameError)
	vm.ERuntimeError = vm.DefineClass("RuntimeError", vm.EStandardError)
	vm.EFrozenError = vm.DefineClass("FrozenError", vm.ERuntimeError)
	vm.ELocalJumpError = vm.DefineClass("LocalJumpError", vm.EStandardError)
	vm.EZeroDivError = vm.DefineClass("ZeroDivisionError", vm.EStandardError)
	vm.ERegexpError = vm.DefineClass("RegexpError", vm.EStandardError)
	vm.EFatal = vm.DefineClass("fatal", vm.EException)
}

// ExcNew creates an exception of class klass with message msg.
func (vm *VM) ExcNew(klass VALUE, msg string) VALUE {
	exc := vm.ObjAlloc(klass)
	vm.IvarSet(exc, vm.Intern(ivarMessage), vm.StrNew(msg))
	return exc
}

// ExcMessage returns the message of an exception, falling back to its
// class name.
func (vm *VM) ExcMessage(exc VALUE) string {
	m := vm.IvarGet(exc, vm.Intern(ivarMessage))
	if m == Qnil {
		return vm.ObjClassName(exc)
	}
	if vm.BuiltinType(m) == TString {
		return string(vm.RString(m).Bytes)
	}
	return vm.Inspect(m)
}

// ExcBacktrace returns the backtrace Array of exc, or nil if it was never
// raised.
func (vm *VM) ExcBacktrace(exc VALUE) VALUE {
	return vm.IvarGet(exc, vm.Intern(ivarBacktrace))
}

func (vm *VM) initExceptionMethods() {
	e := vm.EException
	vm.defv(e, "initialize", func(argc int, argv []VALUE, self VALUE) VALUE {
		vm.checkArity(argc, 0, 1)
		if argc == 1 {
			vm.IvarSet(self, vm.Intern(ivarMessage), argv[0])
		}
		return Qnil
	})
	vm.defv(vm.SingletonClass(e), "exception", func(argc int, argv []VALUE, self VALUE) VALUE {
		return vm.FuncallWithBlock(self, vm.Intern("new"), argv, Qnil)
	})
	vm.defv(e, "exception", func(argc int, argv []VALUE, self VALUE) VALUE {
		vm.checkArity(argc, 0, 1)
		if argc == 0 {
			return self
		}
		exc := vm.ObjAlloc(vm.ObjClass(self))
		vm.IvarSet(exc, vm.Intern(ivarMessage), argv[0])
		return exc
	})
	vm.def(e, "message", 0, func(self VALUE, _ []VALUE) VALUE {
		return vm.Send(self, "to_s")
	})
	vm.def(e, "to_s", 0, func(self VALUE, _ []VALUE) VALUE {
		return vm.StrNew(vm.ExcMessage(self))
	})
	vm.def(e, "inspect", 0, func(self VALUE, _ []VALUE) VALUE {
		cls := vm.ObjClassName(self)
		msg := vm.AsString(vm.Send(self, "to_s"))
		if msg == "" || msg == cls {
			return vm.StrNew(cls)
		}
		return vm.StrNew(fmt.Sprintf("#<%s: %s>", cls, msg))
	})
	vm.def(e, "backtrace", 0, func(self VALUE, _ []VALUE) VALUE {
		return vm.ExcBacktrace(self)
	})
	vm.def(e, "full_message", 0, func(self VALUE, _ []VALUE) VALUE {
		return vm.StrNew(fmt.Sprintf("%s (%s)", vm.ExcMessage(self), vm.ObjClassName(self)))
	})
	vm.def(e, "==", 1, func(self VALUE, argv []VALUE) VALUE {
		o := argv[0]
		if self == o {
			return Qtrue
		}
		if vm.ObjClass(self) != vm.ObjClass(o) {
			return Qfalse
		}
		return boolValue(vm.ExcMessage(self) == vm.ExcMessage(o))
	})

	for _, name := range []string{"receiver", "key"} {
		id := vm.Intern(name)
		vm.def(vm.EKeyError, name, 0, func(self VALUE, _ []VALUE) VALUE {
			return vm.IvarGet(self, id)
		})
	}
	for _, name := range []string{"receiver", "name"} {
		id := vm.Intern(name)
		vm.def(vm.ENameError, name, 0, func(self VALUE, _ []VALUE) VALUE {
			return vm.IvarGet(self, id)
		})
	}
	recvID := vm.Intern("receiver")
	vm.def(vm.EFrozenError, "receiver", 0, func(self VALUE, _ []VALUE) VALUE {
		return vm.IvarGet(self, recvID)
	})
	for _, name := range []string{"tag", "value"} {
		id := vm.Intern(name)
		vm.def(vm.EUncaughtThrowError, name, 0, func(self VALUE, _ []VALUE) VALUE {
			return vm.IvarGet(self, id)
		})
	}
	resultID := vm.Intern("result")
	vm.def(vm.EStopIteration, "result", 0, func(self VALUE, _ []VALUE) VALUE {
		return vm.IvarGet(self, resultID)
	})
}

func (vm *VM) checkArity(argc, min, max int) {
	if argc >= min && (max < 0 || argc <= max) {
		return
	}
	switch {
	case min == max:
		vm.Raisef(vm.EArgError, "wrong number of arguments (given %d, expected %d)", argc, min)
	case max < 0:
		vm.Raisef(vm.EArgError, "wrong number of arguments (given %d, expected %d+)", argc, min)
	default:
		vm.Raisef(vm.EArgError, "wrong number of arguments (given %d, expected %d..%d)", argc, min, max)
	}
}

// CheckArity raises ArgumentError unless min <= argc <= max. A negative
// max means no upper bound.
func (vm *VM) CheckArity(argc, min, max int) {
	vm.checkArity(argc, min, max)
}

func boolValue(b bool) VALUE {
	if b {
		return Qtrue
	}
	return Qfalse
}

// BoolValue encodes a Go bool.
func BoolValue(b bool) VALUE { return boolValue(b) }
