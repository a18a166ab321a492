package garnet

import (
	"iter"

	"github.com/chazu/garnet/rbsys"
)

// Enumerator is a deferred call of a block-taking method.
type Enumerator struct{ NonZeroValue }

// EnumeratorFromValue reports whether v is an Enumerator.
func EnumeratorFromValue(r *Ruby, v Value) (Enumerator, bool) {
	if !r.vm.EnumeratorP(v.raw()) {
		return Enumerator{}, false
	}
	return Enumerator{NonZeroValue{v}}, true
}

// Enumeratorize returns an Enumerator that calls v.method(*args) with the
// block it is iterated with.
func (v Value) Enumeratorize(r *Ruby, method string, args ...any) Enumerator {
	argv := r.intoValues(args)
	e := r.vm.Enumeratorize(v.raw(), r.vm.Intern(method), rawValues(argv))
	return Enumerator{NonZeroValue{Value(e)}}
}

// Each iterates the enumerator. Several values yielded at once arrive
// packed in an Array. An exception ends the iteration with one final
// (Nil, err) pair. Stopping the loop early breaks out of the underlying
// method.
func (e Enumerator) Each(r *Ruby) iter.Seq2[Value, error] {
	return func(yield func(Value, error) bool) {
		_, err := r.protect(func() Value {
			r.vm.EnumEach(e.raw(), func(x rbsys.VALUE) {
				if !yield(Value(x), nil) {
					r.vm.IterBreakValue(rbsys.Qnil)
				}
			})
			return Nil
		})
		if err != nil {
			yield(Nil, err)
		}
	}
}

// ToArray collects every value the enumerator yields.
func (e Enumerator) ToArray(r *Ruby) (RArray, error) {
	a, err := r.protect(func() Value {
		return Value(r.vm.EnumToA(e.raw()))
	})
	if err != nil {
		return RArray{}, err
	}
	return RArray{NonZeroValue{a}}, nil
}
