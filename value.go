package garnet

import (
	"fmt"

	"github.com/chazu/garnet/rbsys"
)

// Value is the runtime's universal object handle: one machine word.
//
// Equality of two Values with == or Equal is bit equality of the handles.
// Two distinct handles may refer to objects the runtime considers equal;
// use Ruby.Equal or Ruby.Eql for that.
type Value rbsys.VALUE

// Immediate constants
const (
	False Value = Value(rbsys.Qfalse)
	Nil   Value = Value(rbsys.Qnil)
	True  Value = Value(rbsys.Qtrue)
	Undef Value = Value(rbsys.Qundef)
)

// ReprValue is implemented by Value and every wrapper type.
type ReprValue interface {
	AsValue() Value
}

// AsValue returns v.
func (v Value) AsValue() Value { return v }

func (v Value) raw() rbsys.VALUE { return rbsys.VALUE(v) }

// Raw returns the underlying word.
func (v Value) Raw() rbsys.VALUE { return rbsys.VALUE(v) }

// IsImmediate reports whether v encodes its value in the word itself.
// false and nil count as immediates. No memory is read.
func (v Value) IsImmediate() bool { return rbsys.SpecialConstP(v.raw()) }

// Equal reports bit equality of the handles.
func (v Value) Equal(w Value) bool { return v == w }

// IsNil reports whether v is nil.
func (v Value) IsNil() bool { return v == Nil }

// IsUndef reports whether v is the undefined marker.
func (v Value) IsUndef() bool { return v == Undef }

// ToBool is Ruby truthiness: everything except nil and false.
func (v Value) ToBool() bool { return rbsys.Test(v.raw()) }

func (v Value) String() string {
	switch v {
	case False:
		return "false"
	case Nil:
		return "nil"
	case True:
		return "true"
	case Undef:
		return "undef"
	}
	switch {
	case rbsys.FixnumP(v.raw()):
		return fmt.Sprintf("%d", rbsys.Fix2Long(v.raw()))
	case rbsys.FlonumP(v.raw()):
		return fmt.Sprintf("%g", rbsys.Flonum2Dbl(v.raw()))
	case rbsys.StaticSymP(v.raw()):
		return fmt.Sprintf("symbol#%d", rbsys.Sym2ID(v.raw()))
	}
	return fmt.Sprintf("value@%#x", uint64(v))
}

func valuesOf(argv []rbsys.VALUE) []Value {
	out := make([]Value, len(argv))
	for i, a := range argv {
		out[i] = Value(a)
	}
	return out
}

func rawValues(vs []Value) []rbsys.VALUE {
	out := make([]rbsys.VALUE, len(vs))
	for i, v := range vs {
		out[i] = v.raw()
	}
	return out
}

// ---------------------------------------------------------------------------
// Classification
// ---------------------------------------------------------------------------

// Classify returns the type tag of v. Immediates are resolved from the bit
// pattern in a fixed order; references read only the header flags.
func (r *Ruby) Classify(v Value) rbsys.ValueType {
	w := v.raw()
	switch {
	case w == rbsys.Qfalse:
		return rbsys.TFalse
	case w == rbsys.Qnil:
		return rbsys.TNil
	case w == rbsys.Qtrue:
		return rbsys.TTrue
	case w == rbsys.Qundef:
		return rbsys.TUndef
	case rbsys.FixnumP(w):
		return rbsys.TFixnum
	case rbsys.StaticSymP(w):
		return rbsys.TSymbol
	case rbsys.FlonumP(w):
		return rbsys.TFloat
	case rbsys.ImmediateP(w):
		panic(fmt.Sprintf("garnet: unclassifiable immediate %#x", uint64(w)))
	}
	if r.debug {
		r.DebugAssertValue(v)
	}
	return r.vm.BuiltinType(w)
}

func (r *Ruby) headerType(v Value) rbsys.ValueType {
	if v.IsImmediate() {
		return rbsys.TNone
	}
	if r.debug {
		r.DebugAssertValue(v)
	}
	return r.vm.BuiltinType(v.raw())
}

// DebugAssertValue panics if v refers to a freed, zombie or moved slot.
//
// The check is best effort. A slot that has been freed and reused by a
// new object passes.
func (r *Ruby) DebugAssertValue(v Value) {
	if v.IsImmediate() {
		return
	}
	switch t := r.vm.BuiltinType(v.raw()); t {
	case rbsys.TNone, rbsys.TZombie, rbsys.TMoved:
		panic(fmt.Sprintf("garnet: %#x is a dead reference (%s)", uint64(v), t))
	}
}

// ---------------------------------------------------------------------------
// Generic operations
// ---------------------------------------------------------------------------

// Class returns the class of v, skipping singleton classes.
func (v Value) Class(r *Ruby) RClass {
	return RClass{NonZeroValue{Value(r.vm.ObjClass(v.raw()))}}
}

// ClassName returns the name of v's class.
func (v Value) ClassName(r *Ruby) string {
	return r.vm.ObjClassName(v.raw())
}

// IsKindOf reports whether v's class is c or inherits from it.
func (v Value) IsKindOf(r *Ruby, c ReprValue) bool {
	return r.vm.ObjIsKindOf(v.raw(), c.AsValue().raw())
}

// IsFrozen reports whether v is frozen. Immediates always are.
func (v Value) IsFrozen(r *Ruby) bool { return r.vm.FrozenP(v.raw()) }

// Freeze freezes v and returns it.
func (v Value) Freeze(r *Ruby) Value { return Value(r.vm.Freeze(v.raw())) }

// CheckFrozen returns a FrozenError if v is frozen.
func (v Value) CheckFrozen(r *Ruby) error {
	if !v.IsFrozen(r) {
		return nil
	}
	exc := r.vm.FrozenErrorNew(v.raw())
	return r.exceptionError(Exception{NonZeroValue{Value(exc)}})
}

// RespondTo reports whether v has a method called name.
func (v Value) RespondTo(r *Ruby, name string) bool {
	return r.vm.RespondTo(v.raw(), r.vm.Intern(name))
}

// Funcall calls method name on v. Arguments are converted with IntoValue.
func (v Value) Funcall(r *Ruby, name string, args ...any) (Value, error) {
	argv := r.intoValues(args)
	return r.protect(func() Value {
		return Value(r.vm.Send(v.raw(), name, rawValues(argv)...))
	})
}

// Funcall calls method name on recv and converts the result to T.
func Funcall[T any](r *Ruby, recv ReprValue, name string, args ...any) (T, error) {
	res, err := recv.AsValue().Funcall(r, name, args...)
	if err != nil {
		var zero T
		return zero, err
	}
	return TryConvert[T](r, res)
}

// ToS returns the result of v.to_s.
func (v Value) ToS(r *Ruby) (string, error) {
	s, err := v.Funcall(r, "to_s")
	if err != nil {
		return "", err
	}
	return TryConvert[string](r, s)
}

// Inspect returns v.inspect. Errors from a broken inspect fall back to
// the default #<Class:0x...> form.
func (v Value) Inspect(r *Ruby) string {
	var s string
	_, err := r.protect(func() Value {
		s = r.vm.Inspect(v.raw())
		return Nil
	})
	if err != nil {
		return fmt.Sprintf("#<%s:%#x>", v.ClassName(r), uint64(v))
	}
	return s
}

// Equal is v == w as the runtime defines it.
func (r *Ruby) Equal(v, w ReprValue) (bool, error) {
	var eq bool
	_, err := r.protect(func() Value {
		eq = r.vm.EqualP(v.AsValue().raw(), w.AsValue().raw())
		return Nil
	})
	return eq, err
}

// Eql is v.eql?(w), the relation Hash keys use.
func (r *Ruby) Eql(v, w ReprValue) (bool, error) {
	var eq bool
	_, err := r.protect(func() Value {
		eq = r.vm.EqlP(v.AsValue().raw(), w.AsValue().raw())
		return Nil
	})
	return eq, err
}

// Hash returns the hash code the runtime uses for v as a Hash key.
func (r *Ruby) Hash(v ReprValue) (uint64, error) {
	var h uint64
	_, err := r.protect(func() Value {
		h = r.vm.HashOf(v.AsValue().raw())
		return Nil
	})
	return h, err
}
