package garnet

import (
	"github.com/chazu/garnet/rbsys"
)

// Proc is a callable block.
type Proc struct{ NonZeroValue }

// ProcFromValue reports whether v is a Proc.
func ProcFromValue(r *Ruby, v Value) (Proc, bool) {
	if !r.vm.ProcP(v.raw()) {
		return Proc{}, false
	}
	return Proc{NonZeroValue{v}}, true
}

// NewProc wraps fn as a Proc. fn runs behind the same firewall as native
// methods: its error is raised and a panic becomes a fatal exception.
func (r *Ruby) NewProc(fn func(args []Value) (Value, error)) Proc {
	p := r.vm.ProcNew(func(argv []rbsys.VALUE) rbsys.VALUE {
		return r.guard(func() (Value, error) { return fn(valuesOf(argv)) })
	})
	return Proc{NonZeroValue{Value(p)}}
}

// Call invokes p with args.
func (p Proc) Call(r *Ruby, args ...any) (Value, error) {
	argv := r.intoValues(args)
	return r.protect(func() Value {
		return Value(r.vm.ProcCall(p.raw(), rawValues(argv)...))
	})
}

// BlockGiven reports whether the innermost native method was passed a
// block.
func (r *Ruby) BlockGiven() bool { return r.vm.BlockGivenP() }

// BlockProc returns the block of the innermost native method.
func (r *Ruby) BlockProc() (Proc, bool) {
	b := r.vm.BlockProc()
	if b == rbsys.Qnil {
		return Proc{}, false
	}
	return Proc{NonZeroValue{Value(b)}}, true
}

// Yield passes x to the current block. With no block it is a
// LocalJumpError. A break out of the block comes back as a jump error
// which must be returned so the runtime can resume it.
func (r *Ruby) Yield(x any) (Value, error) {
	v := r.IntoValue(x)
	return r.protect(func() Value {
		return Value(r.vm.Yield(v.raw()))
	})
}

// YieldValues passes each of xs as a separate block argument.
func (r *Ruby) YieldValues(xs ...any) (Value, error) {
	argv := r.intoValues(xs)
	return r.protect(func() Value {
		return Value(r.vm.Yield(rawValues(argv)...))
	})
}

// YieldSplat passes the elements of a as separate block arguments.
func (r *Ruby) YieldSplat(a RArray) (Value, error) {
	return r.protect(func() Value {
		return Value(r.vm.YieldSplat(a.raw()))
	})
}

// BlockCall calls method name on v with a block whose body is fn.
func (v Value) BlockCall(r *Ruby, name string, args []any, fn func(args []Value) (Value, error)) (Value, error) {
	argv := r.intoValues(args)
	blk := r.NewProc(fn)
	return r.protect(func() Value {
		return Value(r.vm.FuncallWithBlock(v.raw(), r.vm.Intern(name), rawValues(argv), blk.raw()))
	})
}

// FuncallBlock calls method name on v passing blk as its block.
func (v Value) FuncallBlock(r *Ruby, name string, args []any, blk Proc) (Value, error) {
	argv := r.intoValues(args)
	return r.protect(func() Value {
		return Value(r.vm.FuncallWithBlock(v.raw(), r.vm.Intern(name), rawValues(argv), blk.raw()))
	})
}

// Break returns an error that, returned from a block body, ends the
// method that yielded to the block, making it return x.
func (r *Ruby) Break(x any) error {
	v := r.IntoValue(x)
	_, err := r.protect(func() Value {
		r.vm.IterBreakValue(v.raw())
		return Nil
	})
	return err
}
