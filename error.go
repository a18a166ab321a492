package garnet

import (
	"errors"
	"fmt"

	"github.com/chazu/garnet/rbsys"
)

// Sentinels matched by errors.Is on an *Error.
var (
	// ErrConversion matches TypeError: a value could not be converted.
	ErrConversion = errors.New("conversion failed")
	// ErrRange matches RangeError: a number does not fit the target.
	ErrRange = errors.New("out of range")
	// ErrFrozen matches FrozenError.
	ErrFrozen = errors.New("frozen")
	// ErrArgument matches ArgumentError.
	ErrArgument = errors.New("bad argument")
	// ErrJump matches a captured break, throw or other non-raise exit.
	ErrJump = errors.New("non-local exit")
	// ErrBug matches the fatal class raised for panics in native methods.
	ErrBug = errors.New("bug in native code")
	// ErrWorkerStopped is returned by Worker.Do after Stop.
	ErrWorkerStopped = errors.New("garnet: worker stopped")
)

// Error is everything that can be raised into the runtime: a captured
// jump, an exception class with a message, or a concrete exception.
type Error struct {
	state *State
	exc   Exception

	class     func(*Ruby) ExceptionClass
	className string
	msg       string
	sentinel  error
}

func newError(class func(*Ruby) ExceptionClass, sentinel error, className, msg string) *Error {
	return &Error{class: class, className: className, msg: msg, sentinel: sentinel}
}

func typeErrorf(format string, args ...any) *Error {
	return newError((*Ruby).TypeError, ErrConversion, "TypeError", fmt.Sprintf(format, args...))
}

func rangeErrorf(format string, args ...any) *Error {
	return newError((*Ruby).RangeError, ErrRange, "RangeError", fmt.Sprintf(format, args...))
}

func argumentErrorf(format string, args ...any) *Error {
	return newError((*Ruby).ArgumentError, ErrArgument, "ArgumentError", fmt.Sprintf(format, args...))
}

func bugErrorf(format string, args ...any) *Error {
	return newError((*Ruby).Fatal, ErrBug, "fatal", fmt.Sprintf(format, args...))
}

// NewError returns an error that raises a new exception of class with
// message msg.
func (r *Ruby) NewError(class ExceptionClass, msg string) *Error {
	c := class
	return &Error{
		class:     func(*Ruby) ExceptionClass { return c },
		className: r.vm.ClassName(class.raw()),
		msg:       msg,
		sentinel:  r.sentinelFor(class.AsValue()),
	}
}

// exceptionError wraps a concrete exception.
func (r *Ruby) exceptionError(exc Exception) *Error {
	return &Error{
		exc:       exc,
		className: exc.ClassName(r),
		msg:       r.vm.ExcMessage(exc.raw()),
		sentinel:  r.sentinelFor(exc.AsValue()),
	}
}

// jumpError wraps a captured non-raise state.
func jumpError(st *State) *Error {
	return &Error{state: st, sentinel: ErrJump}
}

func (r *Ruby) sentinelFor(v Value) error {
	isClass := r.vm.BuiltinType(v.raw()) == rbsys.TClass
	// subclasses before their parents
	for _, s := range []struct {
		class rbsys.VALUE
		err   error
	}{
		{r.vm.EFrozenError, ErrFrozen},
		{r.vm.ETypeError, ErrConversion},
		{r.vm.ERangeError, ErrRange},
		{r.vm.EArgError, ErrArgument},
		{r.vm.EFatal, ErrBug},
	} {
		if isClass && r.vm.ClassInherits(v.raw(), s.class) || !isClass && r.vm.ObjIsKindOf(v.raw(), s.class) {
			return s.err
		}
	}
	return nil
}

func (e *Error) Error() string {
	if e.state != nil {
		return e.state.Error()
	}
	return e.className + ": " + e.msg
}

// Is matches the sentinel for the error's exception class.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.sentinel
}

// Unwrap returns the captured *State of a jump error.
func (e *Error) Unwrap() error {
	if e.state == nil {
		return nil
	}
	return e.state
}

// Message returns the exception message, without the class name.
func (e *Error) Message() string {
	if e.state != nil {
		return e.state.Error()
	}
	return e.msg
}

// ClassName returns the name of the exception class, or "" for a jump.
func (e *Error) ClassName() string { return e.className }

// Exception returns the exception e raises. A jump error has none.
func (e *Error) Exception(r *Ruby) (Exception, bool) {
	switch {
	case e.state != nil:
		return Exception{}, false
	case !e.exc.IsZero():
		return e.exc, true
	}
	exc := r.vm.ExcNew(e.class(r).raw(), e.msg)
	e.exc = Exception{NonZeroValue{Value(exc)}}
	return e.exc, true
}

// Raise raises err into the runtime. It never returns.
//
// A *State or jump error is resumed. Any error that is not an *Error is
// raised as RuntimeError with its message.
func (r *Ruby) Raise(err error) {
	var st *State
	var e *Error
	switch {
	case err == nil:
		panic("garnet: Raise(nil)")
	case errors.As(err, &e):
		if e.state != nil {
			e.state.Resume()
		}
		exc, _ := e.Exception(r)
		r.vm.Raise(exc.raw())
	case errors.As(err, &st):
		st.Resume()
	}
	r.vm.Raise(r.vm.ExcNew(r.vm.ERuntimeError, err.Error()))
}
