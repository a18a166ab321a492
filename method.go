package garnet

//go:generate go run ./cmd/genarity -o method_arity.go

import (
	"fmt"
	"reflect"

	"github.com/chazu/garnet/rbsys"
)

// Method is a Go function adapted to the runtime's native calling
// convention. Build one with NewMethod, NewFunction, MethodN, FunctionN,
// MethodCArgs or MethodAryArgs, then register it on a module or class.
//
// Every call converts self and then the arguments left to right, stopping
// at the first failure. Panics in the function become fatal exceptions;
// errors are raised; unwinds from the runtime pass through.
type Method struct {
	arity int
	bind  func(r *Ruby) any
}

// Arity returns the declared arity: 0..16, -1 for MethodCArgs or -2 for
// MethodAryArgs.
func (m *Method) Arity() int { return m.arity }

var errorType = reflect.TypeFor[error]()

// NewMethod adapts fn, a func(self S, a1 A1, ..., an An) with arity n
// arguments after self. fn may return nothing, a value, an error, or a
// value and an error. A parameter count that does not match arity is an
// error here, not at call time.
func NewMethod(fn any, arity int) (*Method, error) {
	return newReflectMethod(fn, arity, true)
}

// NewFunction is NewMethod for functions that ignore self.
func NewFunction(fn any, arity int) (*Method, error) {
	return newReflectMethod(fn, arity, false)
}

func newReflectMethod(fn any, arity int, withSelf bool) (*Method, error) {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func || fv.IsNil() {
		return nil, fmt.Errorf("garnet: method must be a non-nil func, got %T", fn)
	}
	ft := fv.Type()
	if ft.IsVariadic() {
		return nil, fmt.Errorf("garnet: variadic %s is not supported; use MethodCArgs", ft)
	}
	if arity < 0 || arity > rbsys.MaxArity {
		return nil, fmt.Errorf("garnet: arity %d out of range 0..%d", arity, rbsys.MaxArity)
	}
	params := arity
	if withSelf {
		params++
	}
	if ft.NumIn() != params {
		return nil, fmt.Errorf("garnet: arity %d does not match %s", arity, ft)
	}
	switch ft.NumOut() {
	case 0, 1:
	case 2:
		if ft.Out(1) != errorType {
			return nil, fmt.Errorf("garnet: second result of %s must be error", ft)
		}
	default:
		return nil, fmt.Errorf("garnet: %s returns too many values", ft)
	}

	return &Method{arity: arity, bind: func(r *Ruby) any {
		return rbsys.FixedFunc(func(self rbsys.VALUE, argv []rbsys.VALUE) rbsys.VALUE {
			return r.guard(func() (Value, error) {
				in := make([]reflect.Value, 0, params)
				if withSelf {
					sv, err := r.convertSelfType(Value(self), ft.In(0))
					if err != nil {
						return Nil, err
					}
					in = append(in, sv)
				}
				off := len(in)
				for i, a := range argv {
					t := ft.In(off + i)
					av, err := r.convert(Value(a), t)
					if err != nil {
						return Nil, r.argumentError(err, i+1, t, Value(a))
					}
					in = append(in, av)
				}
				return r.returnResults(fv.Call(in))
			})
		})
	}}, nil
}

func (r *Ruby) returnResults(out []reflect.Value) (Value, error) {
	if n := len(out); n > 0 && out[n-1].Type() == errorType {
		if err, _ := out[n-1].Interface().(error); err != nil {
			return Nil, err
		}
		out = out[:n-1]
	}
	if len(out) == 0 {
		return Nil, nil
	}
	return r.returnValue(out[0].Interface())
}

// MethodCArgs adapts a method taking any number of arguments.
func MethodCArgs[S, R any](fn func(self S, args []Value) (R, error)) *Method {
	return &Method{arity: rbsys.ArityCArgs, bind: func(r *Ruby) any {
		return rbsys.CArgsFunc(func(argc int, argv []rbsys.VALUE, self rbsys.VALUE) rbsys.VALUE {
			return r.guard(func() (Value, error) {
				s, err := convertSelf[S](r, self)
				if err != nil {
					return Nil, err
				}
				res, err := fn(s, valuesOf(argv[:argc]))
				if err != nil {
					return Nil, err
				}
				return r.returnValue(res)
			})
		})
	}}
}

// FunctionCArgs is MethodCArgs for functions that ignore self.
func FunctionCArgs[R any](fn func(args []Value) (R, error)) *Method {
	return MethodCArgs(func(_ Value, args []Value) (R, error) { return fn(args) })
}

// MethodAryArgs adapts a method whose arguments arrive as one Array,
// converted to A.
func MethodAryArgs[S, A, R any](fn func(self S, args A) (R, error)) *Method {
	return &Method{arity: rbsys.ArityAry, bind: func(r *Ruby) any {
		return rbsys.AryFunc(func(self, args rbsys.VALUE) rbsys.VALUE {
			return r.guard(func() (Value, error) {
				s, err := convertSelf[S](r, self)
				if err != nil {
					return Nil, err
				}
				a, err := TryConvert[A](r, Value(args))
				if err != nil {
					return Nil, r.argumentError(err, 1, reflect.TypeFor[A](), Value(args))
				}
				res, err := fn(s, a)
				if err != nil {
					return Nil, err
				}
				return r.returnValue(res)
			})
		})
	}}
}

// guard runs the body of a native method. It is the panic firewall: a Go
// panic becomes a fatal exception, an error is raised, and a runtime
// unwind owned by this runtime continues.
func (r *Ruby) guard(fn func() (Value, error)) rbsys.VALUE {
	v, err := r.firewall(fn)
	if err != nil {
		r.Raise(err)
	}
	return v.raw()
}

func (r *Ruby) firewall(fn func() (Value, error)) (v Value, err error) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if j, ok := p.(*rbsys.Jump); ok && j.Owner(r.vm) {
			panic(p)
		}
		r.methodLog.Errorf("panic in native callable: %v", p)
		v, err = Nil, bugErrorf("panic in native callable: %v", p)
	}()
	return fn()
}

func convertSelf[S any](r *Ruby, self rbsys.VALUE) (S, error) {
	s, err := TryConvert[S](r, Value(self))
	if err != nil {
		return s, r.selfError(err, reflect.TypeFor[S](), Value(self))
	}
	return s, nil
}

func (r *Ruby) convertSelfType(self Value, t reflect.Type) (reflect.Value, error) {
	sv, err := r.convert(self, t)
	if err != nil {
		return sv, r.selfError(err, t, self)
	}
	return sv, nil
}

func (r *Ruby) selfError(err error, t reflect.Type, v Value) error {
	if e, ok := err.(*Error); ok && e.sentinel == ErrConversion {
		return typeErrorf("self: expected %s, got %s", t, r.implicitName(v))
	}
	return err
}

func convertArg[A any](r *Ruby, argv []rbsys.VALUE, i int) (A, error) {
	v := Value(argv[i])
	a, err := TryConvert[A](r, v)
	if err != nil {
		return a, r.argumentError(err, i+1, reflect.TypeFor[A](), v)
	}
	return a, nil
}
