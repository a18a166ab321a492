package garnet

import (
	"github.com/chazu/garnet/rbsys"
)

// Exception is an instance of Exception or a subclass.
type Exception struct{ NonZeroValue }

// ExceptionFromValue reports whether v is an exception.
func ExceptionFromValue(r *Ruby, v Value) (Exception, bool) {
	if v.IsImmediate() || r.headerType(v) != rbsys.TObject || !r.vm.ObjIsKindOf(v.raw(), r.vm.EException) {
		return Exception{}, false
	}
	return Exception{NonZeroValue{v}}, true
}

// Message returns the exception's message.
func (e Exception) Message(r *Ruby) string { return r.vm.ExcMessage(e.raw()) }

// ClassName returns the name of the exception's class.
func (e Exception) ClassName(r *Ruby) string { return r.vm.ObjClassName(e.raw()) }

// Backtrace returns the frames the exception was raised through, innermost
// first. It is nil for an exception that was never raised.
func (e Exception) Backtrace(r *Ruby) []string {
	bt := r.vm.ExcBacktrace(e.raw())
	if bt == rbsys.Qnil {
		return nil
	}
	n := r.vm.AryLen(bt)
	out := make([]string, 0, n)
	for i := range n {
		out = append(out, r.vm.AsString(r.vm.AryEntry(bt, i)))
	}
	return out
}

// ExceptionClass returns the class of e.
func (e Exception) ExceptionClass(r *Ruby) ExceptionClass {
	return ExceptionClass{RClass{NonZeroValue{Value(r.vm.ObjClass(e.raw()))}}}
}

// ExceptionClass is Exception or one of its subclasses.
type ExceptionClass struct{ RClass }

// ExceptionClassFromValue reports whether v is an exception class.
func ExceptionClassFromValue(r *Ruby, v Value) (ExceptionClass, bool) {
	if r.headerType(v) != rbsys.TClass || !r.vm.ClassInherits(v.raw(), r.vm.EException) {
		return ExceptionClass{}, false
	}
	return ExceptionClass{RClass{NonZeroValue{v}}}, true
}

// New creates an exception of class c with message msg. It is not raised.
func (c ExceptionClass) New(r *Ruby, msg string) Exception {
	return Exception{NonZeroValue{Value(r.vm.ExcNew(c.raw(), msg))}}
}

func (r *Ruby) excClass(v rbsys.VALUE) ExceptionClass {
	return ExceptionClass{RClass{NonZeroValue{Value(v)}}}
}

// Exception returns the root of the exception hierarchy.
func (r *Ruby) Exception() ExceptionClass { return r.excClass(r.vm.EException) }

// StandardError returns the StandardError class.
func (r *Ruby) StandardError() ExceptionClass { return r.excClass(r.vm.EStandardError) }

// ArgumentError returns the ArgumentError class.
func (r *Ruby) ArgumentError() ExceptionClass { return r.excClass(r.vm.EArgError) }

// TypeError returns the TypeError class.
func (r *Ruby) TypeError() ExceptionClass { return r.excClass(r.vm.ETypeError) }

// RangeError returns the RangeError class.
func (r *Ruby) RangeError() ExceptionClass { return r.excClass(r.vm.ERangeError) }

// FloatDomainError returns the FloatDomainError class.
func (r *Ruby) FloatDomainError() ExceptionClass { return r.excClass(r.vm.EFloatDomainError) }

// FrozenError returns the FrozenError class.
func (r *Ruby) FrozenError() ExceptionClass { return r.excClass(r.vm.EFrozenError) }

// RuntimeError returns the RuntimeError class.
func (r *Ruby) RuntimeError() ExceptionClass { return r.excClass(r.vm.ERuntimeError) }

// IndexError returns the IndexError class.
func (r *Ruby) IndexError() ExceptionClass { return r.excClass(r.vm.EIndexError) }

// KeyError returns the KeyError class.
func (r *Ruby) KeyError() ExceptionClass { return r.excClass(r.vm.EKeyError) }

// StopIteration returns the StopIteration class.
func (r *Ruby) StopIteration() ExceptionClass { return r.excClass(r.vm.EStopIteration) }

// NameError returns the NameError class.
func (r *Ruby) NameError() ExceptionClass { return r.excClass(r.vm.ENameError) }

// NoMethodError returns the NoMethodError class.
func (r *Ruby) NoMethodError() ExceptionClass { return r.excClass(r.vm.ENoMethodError) }

// LocalJumpError returns the LocalJumpError class.
func (r *Ruby) LocalJumpError() ExceptionClass { return r.excClass(r.vm.ELocalJumpError) }

// Fatal returns the class raised for bugs in native code. It is not a
// StandardError, so ordinary rescue clauses do not catch it.
func (r *Ruby) Fatal() ExceptionClass { return r.excClass(r.vm.EFatal) }
