package garnet

import (
	"github.com/chazu/garnet/rbsys"
)

// RArray is a growable vector of values. Mutators fail on a frozen Array.
type RArray struct{ NonZeroValue }

// RArrayFromValue reports whether v is an Array.
func RArrayFromValue(r *Ruby, v Value) (RArray, bool) {
	if r.headerType(v) != rbsys.TArray {
		return RArray{}, false
	}
	return RArray{NonZeroValue{v}}, true
}

// NewArray allocates an empty Array.
func (r *Ruby) NewArray() RArray {
	return RArray{NonZeroValue{Value(r.vm.AryNew(0))}}
}

// ArrayFromValues allocates an Array holding vs.
func (r *Ruby) ArrayFromValues(vs ...Value) RArray {
	return RArray{NonZeroValue{Value(r.vm.AryNewFrom(rawValues(vs)...))}}
}

// ArrayFromSlice converts every element with IntoValue.
func ArrayFromSlice[T any](r *Ruby, xs []T) RArray {
	ary := r.vm.AryNew(len(xs))
	for _, x := range xs {
		r.vm.AryPush(ary, r.IntoValue(x).raw())
	}
	return RArray{NonZeroValue{Value(ary)}}
}

func (r *Ruby) toRArray(v Value) (RArray, error) {
	a, err := r.implicit(v, rbsys.TArray, "Array", "to_ary")
	if err != nil {
		return RArray{}, err
	}
	return RArray{NonZeroValue{a}}, nil
}

// Len returns the number of elements.
func (a RArray) Len(r *Ruby) int { return r.vm.AryLen(a.raw()) }

// IsEmpty reports whether a has no elements.
func (a RArray) IsEmpty(r *Ruby) bool { return a.Len(r) == 0 }

func (a RArray) mutate(r *Ruby, fn func() Value) (Value, error) {
	return r.protect(fn)
}

// Push appends x.
func (a RArray) Push(r *Ruby, x any) error {
	v := r.IntoValue(x)
	_, err := a.mutate(r, func() Value {
		r.vm.AryPush(a.raw(), v.raw())
		return Nil
	})
	return err
}

// Pop removes and returns the last element, or nil when empty.
func (a RArray) Pop(r *Ruby) (Value, error) {
	return a.mutate(r, func() Value { return Value(r.vm.AryPop(a.raw())) })
}

// Shift removes and returns the first element, or nil when empty.
func (a RArray) Shift(r *Ruby) (Value, error) {
	return a.mutate(r, func() Value { return Value(r.vm.AryShift(a.raw())) })
}

// Unshift prepends x.
func (a RArray) Unshift(r *Ruby, x any) error {
	v := r.IntoValue(x)
	_, err := a.mutate(r, func() Value {
		r.vm.AryUnshift(a.raw(), v.raw())
		return Nil
	})
	return err
}

// Cat appends every element of xs.
func (a RArray) Cat(r *Ruby, xs ...any) error {
	vs := r.intoValues(xs)
	_, err := a.mutate(r, func() Value {
		r.vm.AryCat(a.raw(), rawValues(vs))
		return Nil
	})
	return err
}

// Entry returns the element at i, counting from the end when i is
// negative, or nil when out of range.
func (a RArray) Entry(r *Ruby, i int) Value { return Value(r.vm.AryEntry(a.raw(), i)) }

// Store sets the element at i, padding with nil.
func (a RArray) Store(r *Ruby, i int, x any) error {
	v := r.IntoValue(x)
	_, err := a.mutate(r, func() Value {
		r.vm.AryStore(a.raw(), i, v.raw())
		return Nil
	})
	return err
}

// Slice returns a copy of the elements. The copy is not rooted.
func (a RArray) Slice(r *Ruby) []Value {
	return valuesOf(r.vm.RArray(a.raw()).Elems)
}

// Dup returns a shallow copy.
func (a RArray) Dup(r *Ruby) RArray {
	return RArray{NonZeroValue{Value(r.vm.AryDup(a.raw()))}}
}

// Join joins the to_s of every element with sep.
func (a RArray) Join(r *Ruby, sep string) (string, error) {
	var s string
	_, err := r.protect(func() Value {
		s = r.vm.AryJoin(a.raw(), sep)
		return Nil
	})
	return s, err
}

// Each returns an Enumerator over the elements.
func (a RArray) Each(r *Ruby) Enumerator { return a.Enumeratorize(r, "each") }

// ToSlice converts every element to T.
func ToSlice[T any](r *Ruby, a RArray) ([]T, error) {
	elems := a.Slice(r)
	out := make([]T, len(elems))
	for i, e := range elems {
		x, err := TryConvert[T](r, e)
		if err != nil {
			return nil, err
		}
		out[i] = x
	}
	return out, nil
}

// ToArrayN is ToSlice for an Array that must have exactly n elements.
func ToArrayN[T any](r *Ruby, a RArray, n int) ([]T, error) {
	if l := a.Len(r); l != n {
		return nil, typeErrorf("expected Array of length %d, got %d", n, l)
	}
	return ToSlice[T](r, a)
}
