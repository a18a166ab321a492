package garnet

import (
	"fmt"

	"github.com/chazu/garnet/rbsys"
)

// RModule is a module, or a class used as a namespace.
type RModule struct{ NonZeroValue }

// RClass is a class.
type RClass struct{ NonZeroValue }

// RModuleFromValue reports whether v is a module or class.
func RModuleFromValue(r *Ruby, v Value) (RModule, bool) {
	switch r.headerType(v) {
	case rbsys.TModule, rbsys.TClass:
		return RModule{NonZeroValue{v}}, true
	}
	return RModule{}, false
}

// RClassFromValue reports whether v is a class.
func RClassFromValue(r *Ruby, v Value) (RClass, bool) {
	if r.headerType(v) != rbsys.TClass {
		return RClass{}, false
	}
	return RClass{NonZeroValue{v}}, true
}

// Object returns the Object class, the root namespace.
func (r *Ruby) Object() RClass { return RClass{NonZeroValue{Value(r.vm.CObject)}} }

// AsModule returns c as a namespace.
func (c RClass) AsModule() RModule { return RModule{c.NonZeroValue} }

// Name returns the fully qualified name.
func (m RModule) Name(r *Ruby) string { return r.vm.ClassName(m.raw()) }

// Name returns the fully qualified name, or "" for an anonymous class.
func (c RClass) Name(r *Ruby) string { return r.vm.ClassName(c.raw()) }

// DefineClass defines or reopens a top-level class. A zero super means
// Object.
func (r *Ruby) DefineClass(name string, super RClass) (RClass, error) {
	return r.Object().AsModule().DefineClass(r, name, super)
}

// DefineModule defines or reopens a top-level module.
func (r *Ruby) DefineModule(name string) (RModule, error) {
	return r.Object().AsModule().DefineModule(r, name)
}

// DefineClass defines or reopens a class nested in m.
func (m RModule) DefineClass(r *Ruby, name string, super RClass) (RClass, error) {
	v, err := r.protect(func() Value {
		return Value(r.vm.DefineClassUnder(m.raw(), name, super.raw()))
	})
	if err != nil {
		return RClass{}, err
	}
	return RClass{NonZeroValue{v}}, nil
}

// DefineModule defines or reopens a module nested in m.
func (m RModule) DefineModule(r *Ruby, name string) (RModule, error) {
	v, err := r.protect(func() Value {
		return Value(r.vm.DefineModuleUnder(m.raw(), name))
	})
	if err != nil {
		return RModule{}, err
	}
	return RModule{NonZeroValue{v}}, nil
}

// DefineMethod adds an instance method.
func (m RModule) DefineMethod(r *Ruby, name string, meth *Method) error {
	if err := r.vm.DefineMethod(m.raw(), name, meth.bind(r), meth.arity); err != nil {
		return fmt.Errorf("define %s#%s: %w", m.Name(r), name, err)
	}
	return nil
}

// DefineSingletonMethod adds a method to m's singleton class.
func (m RModule) DefineSingletonMethod(r *Ruby, name string, meth *Method) error {
	if err := r.vm.DefineSingletonMethod(m.raw(), name, meth.bind(r), meth.arity); err != nil {
		return fmt.Errorf("define %s.%s: %w", m.Name(r), name, err)
	}
	return nil
}

// DefineModuleFunction adds a method callable both as m.name and, once m
// is included, as a private instance method.
func (m RModule) DefineModuleFunction(r *Ruby, name string, meth *Method) error {
	if err := r.vm.DefineModuleFunction(m.raw(), name, meth.bind(r), meth.arity); err != nil {
		return fmt.Errorf("define %s.%s: %w", m.Name(r), name, err)
	}
	return nil
}

// DefineMethod adds an instance method.
func (c RClass) DefineMethod(r *Ruby, name string, meth *Method) error {
	return c.AsModule().DefineMethod(r, name, meth)
}

// DefineSingletonMethod adds a class method.
func (c RClass) DefineSingletonMethod(r *Ruby, name string, meth *Method) error {
	return c.AsModule().DefineSingletonMethod(r, name, meth)
}

// DefineGlobalFunction adds a method callable from anywhere.
func (r *Ruby) DefineGlobalFunction(name string, meth *Method) error {
	if err := r.vm.DefineGlobalFunction(name, meth.bind(r), meth.arity); err != nil {
		return fmt.Errorf("define global %s: %w", name, err)
	}
	return nil
}

// ConstGet looks name up in m and its ancestors. A missing constant is a
// NameError.
func (m RModule) ConstGet(r *Ruby, name string) (Value, error) {
	return r.protect(func() Value {
		return Value(r.vm.ConstGet(m.raw(), name))
	})
}

// ConstSet binds name in m.
func (m RModule) ConstSet(r *Ruby, name string, v any) {
	r.vm.ConstSet(m.raw(), name, r.IntoValue(v).raw())
}

// Include appends mod to m's ancestors.
func (m RModule) Include(r *Ruby, mod RModule) error {
	_, err := r.protect(func() Value {
		r.vm.IncludeModule(m.raw(), mod.raw())
		return Nil
	})
	return err
}

// Superclass returns the superclass, or false for BasicObject.
func (c RClass) Superclass(r *Ruby) (RClass, bool) {
	s := r.vm.Superclass(c.raw())
	if s == rbsys.Qnil || s == 0 {
		return RClass{}, false
	}
	return RClass{NonZeroValue{Value(s)}}, true
}

// New calls c.new(*args).
func (c RClass) New(r *Ruby, args ...any) (Value, error) {
	return c.Funcall(r, "new", args...)
}

// Inherits reports whether c is other or a subclass of it.
func (c RClass) Inherits(r *Ruby, other RModule) bool {
	return r.vm.ClassInherits(c.raw(), other.raw())
}

// UndefAlloc removes the default allocator, so c.new raises until an
// allocator is defined again.
func (c RClass) UndefAlloc(r *Ruby) { r.vm.UndefAlloc(c.raw()) }

// ---------------------------------------------------------------------------
// Globals and frames
// ---------------------------------------------------------------------------

// DefineVariable binds global variable name to *p. *p becomes a GC root
// and is updated in place by compaction.
func (r *Ruby) DefineVariable(name string, p *Value) {
	r.vm.DefineVariable(name, (*rbsys.VALUE)(p))
}

// GlobalGet reads a global variable.
func (r *Ruby) GlobalGet(name string) Value { return Value(r.vm.GvGet(name)) }

// GlobalSet writes a global variable.
func (r *Ruby) GlobalSet(name string, v any) Value {
	return Value(r.vm.GvSet(name, r.IntoValue(v).raw()))
}

// CurrentReceiver returns self of the innermost native method call.
func (r *Ruby) CurrentReceiver() (Value, error) {
	return r.protect(func() Value {
		return Value(r.vm.CurrentReceiver())
	})
}

// CallSuper calls the next implementation of the current method with args
// and the current block.
func (r *Ruby) CallSuper(args ...any) (Value, error) {
	argv := r.intoValues(args)
	return r.protect(func() Value {
		return Value(r.vm.CallSuper(rawValues(argv)...))
	})
}
