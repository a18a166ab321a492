package rbsys

import "fmt"

// FixedFunc implements a method of fixed arity 0..16. The runtime checks
// len(argv) against the declared arity before calling it.
type FixedFunc func(self VALUE, argv []VALUE) VALUE

// CArgsFunc implements a method of arity -1: count plus argument vector.
type CArgsFunc func(argc int, argv []VALUE, self VALUE) VALUE

// AryFunc implements a method of arity -2: the arguments arrive as one
// Array.
type AryFunc func(self, args VALUE) VALUE

// BlockFunc is the body of a block or Proc.
type BlockFunc func(args []VALUE) VALUE

// Method is an entry in a class's method table.
type Method struct {
	Name  ID
	Owner VALUE
	Arity int
	fn    any
}

// Frame is one active method call. Frames are GC roots; every value in a
// frame is pinned for the duration of a collection.
type Frame struct {
	Self  VALUE
	Mid   ID
	Owner VALUE
	Args  []VALUE
	Block VALUE
}

// ---------------------------------------------------------------------------
// Method definition
// ---------------------------------------------------------------------------

// DefineMethod adds a native method to klass. fn must be a FixedFunc for
// arity 0..16, a CArgsFunc for -1 or an AryFunc for -2.
func (vm *VM) DefineMethod(klass VALUE, name string, fn any, arity int) error {
	switch t := vm.BuiltinType(klass); t {
	case TClass, TModule:
	default:
		return fmt.Errorf("rbsys: cannot define method %q on %s", name, t)
	}
	switch {
	case arity >= 0 && arity <= MaxArity:
		if _, ok := fn.(FixedFunc); !ok {
			return fmt.Errorf("rbsys: method %q: arity %d requires a FixedFunc, got %T", name, arity, fn)
		}
	case arity == ArityCArgs:
		if _, ok := fn.(CArgsFunc); !ok {
			return fmt.Errorf("rbsys: method %q: arity -1 requires a CArgsFunc, got %T", name, fn)
		}
	case arity == ArityAry:
		if _, ok := fn.(AryFunc); !ok {
			return fmt.Errorf("rbsys: method %q: arity -2 requires an AryFunc, got %T", name, fn)
		}
	default:
		return fmt.Errorf("rbsys: method %q: arity %d out of range (-2..%d)", name, arity, MaxArity)
	}
	id := vm.Intern(name)
	vm.RClass(klass).Methods[id] = &Method{Name: id, Owner: klass, Arity: arity, fn: fn}
	return nil
}

// DefineSingletonMethod defines a method on the singleton class of obj.
func (vm *VM) DefineSingletonMethod(obj VALUE, name string, fn any, arity int) error {
	return vm.DefineMethod(vm.SingletonClass(obj), name, fn, arity)
}

// DefineModuleFunction defines name both as an instance method of module
// and as a singleton method on the module itself.
func (vm *VM) DefineModuleFunction(module VALUE, name string, fn any, arity int) error {
	if err := vm.DefineMethod(module, name, fn, arity); err != nil {
		return err
	}
	return vm.DefineSingletonMethod(module, name, fn, arity)
}

// DefineGlobalFunction defines a module function on Kernel.
func (vm *VM) DefineGlobalFunction(name string, fn any, arity int) error {
	return vm.DefineModuleFunction(vm.MKernel, name, fn, arity)
}

// UndefMethod removes name from klass's own method table.
func (vm *VM) UndefMethod(klass VALUE, name string) {
	if id, ok := vm.CheckID(name); ok {
		delete(vm.RClass(klass).Methods, id)
	}
}

// definers for builtins, which never have a shape error
func (vm *VM) def(klass VALUE, name string, arity int, fn FixedFunc) {
	if err := vm.DefineMethod(klass, name, fn, arity); err != nil {
		panic(err)
	}
}

func (vm *VM) defv(klass VALUE, name string, fn CArgsFunc) {
	if err := vm.DefineMethod(klass, name, fn, ArityCArgs); err != nil {
		panic(err)
	}
}

func (vm *VM) defs(obj VALUE, name string, arity int, fn any) {
	if err := vm.DefineSingletonMethod(obj, name, fn, arity); err != nil {
		panic(err)
	}
}

// ---------------------------------------------------------------------------
// Method lookup
// ---------------------------------------------------------------------------

func (vm *VM) searchMethod(klass VALUE, mid ID) *Method {
	for _, a := range vm.Ancestors(klass) {
		if m, ok := vm.RClass(a).Methods[mid]; ok {
			return m
		}
	}
	return nil
}

func (vm *VM) searchSuper(klass, owner VALUE, mid ID) *Method {
	found := false
	for _, a := range vm.Ancestors(klass) {
		if !found {
			found = a == owner
			continue
		}
		if m, ok := vm.RClass(a).Methods[mid]; ok {
			return m
		}
	}
	return nil
}

// RespondTo reports whether v has a method named mid.
func (vm *VM) RespondTo(v VALUE, mid ID) bool {
	klass := vm.ClassOf(v)
	if klass == 0 {
		return false
	}
	return vm.searchMethod(klass, mid) != nil
}

// MethodArity returns the arity of v's method mid, or false if there is
// none.
func (vm *VM) MethodArity(v VALUE, mid ID) (int, bool) {
	klass := vm.ClassOf(v)
	if klass == 0 {
		return 0, false
	}
	m := vm.searchMethod(klass, mid)
	if m == nil {
		return 0, false
	}
	return m.Arity, true
}

// ---------------------------------------------------------------------------
// Calls
// ---------------------------------------------------------------------------

// Funcall calls method mid on recv.
func (vm *VM) Funcall(recv VALUE, mid ID, args ...VALUE) VALUE {
	return vm.FuncallWithBlock(recv, mid, args, Qnil)
}

// Send is Funcall with a method name.
func (vm *VM) Send(recv VALUE, name string, args ...VALUE) VALUE {
	return vm.FuncallWithBlock(recv, vm.Intern(name), args, Qnil)
}

// FuncallWithBlock calls mid on recv, passing block (a Proc or nil). A
// break out of block ends this call with the break value.
func (vm *VM) FuncallWithBlock(recv VALUE, mid ID, args []VALUE, block VALUE) (result VALUE) {
	klass := vm.ClassOf(recv)
	if klass == 0 {
		vm.Raisef(vm.EFatal, "method call on undef")
	}
	m := vm.searchMethod(klass, mid)
	if m == nil {
		vm.raiseNoMethod(recv, mid)
	}
	if block != Qnil {
		defer func() {
			if p := recover(); p != nil {
				j, ok := p.(*Jump)
				if !ok || j.vm != vm || j.Tag != TagBreak || j.target != block {
					panic(p)
				}
				result = j.Value
			}
		}()
	}
	return vm.invoke(m, recv, args, block)
}

func (vm *VM) invoke(m *Method, self VALUE, args []VALUE, block VALUE) VALUE {
	depth := len(vm.frames)
	vm.frames = append(vm.frames, &Frame{Self: self, Mid: m.Name, Owner: m.Owner, Args: args, Block: block})
	defer func() { vm.frames = vm.frames[:depth] }()

	switch fn := m.fn.(type) {
	case FixedFunc:
		if len(args) != m.Arity {
			vm.Raisef(vm.EArgError, "wrong number of arguments (given %d, expected %d)", len(args), m.Arity)
		}
		return fn(self, args)
	case CArgsFunc:
		return fn(len(args), args, self)
	case AryFunc:
		return fn(self, vm.AryNewFrom(args...))
	}
	panic(fmt.Sprintf("rbsys: bad method entry for %s", vm.IDName(m.Name)))
}

func (vm *VM) raiseNoMethod(recv VALUE, mid ID) {
	var desc string
	switch recv {
	case Qnil:
		desc = "nil"
	case Qtrue:
		desc = "true"
	case Qfalse:
		desc = "false"
	default:
		desc = "an instance of " + vm.ObjClassName(recv)
		if t := vm.BuiltinType(recv); t == TClass || t == TModule {
			desc = vm.ClassName(recv) + ":" + vm.ObjClassName(recv)
		}
	}
	exc := vm.ExcNew(vm.ENoMethodError, fmt.Sprintf("undefined method `%s' for %s", vm.IDName(mid), desc))
	vm.IvarSet(exc, vm.Intern("name"), ID2Sym(mid))
	vm.IvarSet(exc, vm.Intern("receiver"), recv)
	vm.Raise(exc)
}

// CallSuper calls the next implementation of the current method, with the
// current receiver and block.
func (vm *VM) CallSuper(args ...VALUE) VALUE {
	f := vm.currentFrame()
	if f == nil {
		vm.Raisef(vm.ERuntimeError, "super called outside of method")
	}
	m := vm.searchSuper(vm.ClassOf(f.Self), f.Owner, f.Mid)
	if m == nil {
		exc := vm.ExcNew(vm.ENoMethodError, fmt.Sprintf("super: no superclass method `%s' for %s",
			vm.IDName(f.Mid), vm.Inspect(f.Self)))
		vm.Raise(exc)
	}
	return vm.invoke(m, f.Self, args, f.Block)
}

func (vm *VM) currentFrame() *Frame {
	if len(vm.frames) == 0 {
		return nil
	}
	return vm.frames[len(vm.frames)-1]
}

// CurrentFrame returns the innermost method frame, or nil at top level.
func (vm *VM) CurrentFrame() *Frame {
	return vm.currentFrame()
}

// CurrentReceiver returns self of the innermost method frame. It raises
// RuntimeError at top level.
func (vm *VM) CurrentReceiver() VALUE {
	f := vm.currentFrame()
	if f == nil {
		vm.Raisef(vm.ERuntimeError, "no current receiver outside of a method call")
	}
	return f.Self
}

// ---------------------------------------------------------------------------
// Blocks
// ---------------------------------------------------------------------------

// BlockGivenP reports whether the innermost method was passed a block.
func (vm *VM) BlockGivenP() bool {
	f := vm.currentFrame()
	return f != nil && f.Block != Qnil
}

// BlockProc returns the block of the innermost method, or nil.
func (vm *VM) BlockProc() VALUE {
	if f := vm.currentFrame(); f != nil {
		return f.Block
	}
	return Qnil
}

// Yield passes args to the block of the innermost method. It raises
// LocalJumpError when no block was given.
func (vm *VM) Yield(args ...VALUE) VALUE {
	f := vm.currentFrame()
	if f == nil || f.Block == Qnil {
		vm.Raisef(vm.ELocalJumpError, "no block given (yield)")
	}
	return vm.ProcCall(f.Block, args...)
}

// YieldSplat yields the elements of an Array as separate block arguments.
func (vm *VM) YieldSplat(ary VALUE) VALUE {
	return vm.Yield(vm.RArray(ary).Elems...)
}

// IterBreakValue ends the method that yielded to the running block,
// making it return v.
func (vm *VM) IterBreakValue(v VALUE) {
	if len(vm.blocks) == 0 {
		vm.Raisef(vm.ELocalJumpError, "break from proc-closure")
	}
	panic(&Jump{Tag: TagBreak, Value: v, target: vm.blocks[len(vm.blocks)-1], vm: vm})
}

// BlockCall calls mid on recv with a block whose body is fn.
func (vm *VM) BlockCall(recv VALUE, mid ID, args []VALUE, fn BlockFunc) VALUE {
	return vm.FuncallWithBlock(recv, mid, args, vm.ProcNew(fn))
}
