package garnet

import (
	"iter"
)

// yielder is a method result that talks to the caller's block instead of
// being returned as a value.
type yielder interface {
	yieldTo(r *Ruby) (Value, error)
}

// returnValue encodes a native method's result.
func (r *Ruby) returnValue(x any) (Value, error) {
	if y, ok := x.(yielder); ok {
		return y.yieldTo(r)
	}
	return r.IntoValue(x), nil
}

// Yield is a method result that yields each element of a sequence to the
// block, then returns nil. Built with YieldEnum it returns an Enumerator
// instead, for calls made without a block.
type Yield[T any] struct {
	seq  iter.Seq[T]
	enum Enumerator
}

// YieldIter yields every element of seq.
func YieldIter[T any](seq iter.Seq[T]) Yield[T] { return Yield[T]{seq: seq} }

// YieldEnum returns e.
func YieldEnum[T any](e Enumerator) Yield[T] { return Yield[T]{enum: e} }

func (y Yield[T]) yieldTo(r *Ruby) (Value, error) {
	if !y.enum.IsZero() {
		return y.enum.Value, nil
	}
	if y.seq == nil {
		return Nil, nil
	}
	for x := range y.seq {
		if _, err := r.Yield(x); err != nil {
			return Nil, err
		}
	}
	return Nil, nil
}

// YieldValues is Yield for sequences of several block arguments at once.
type YieldValues struct {
	seq  iter.Seq[[]any]
	enum Enumerator
}

// YieldValuesIter yields every element of seq as separate arguments.
func YieldValuesIter(seq iter.Seq[[]any]) YieldValues { return YieldValues{seq: seq} }

// YieldValuesEnum returns e.
func YieldValuesEnum(e Enumerator) YieldValues { return YieldValues{enum: e} }

func (y YieldValues) yieldTo(r *Ruby) (Value, error) {
	if !y.enum.IsZero() {
		return y.enum.Value, nil
	}
	if y.seq == nil {
		return Nil, nil
	}
	for xs := range y.seq {
		if _, err := r.YieldValues(xs...); err != nil {
			return Nil, err
		}
	}
	return Nil, nil
}

// YieldSplat is Yield for sequences of Arrays splatted into block
// arguments.
type YieldSplat struct {
	seq  iter.Seq[RArray]
	enum Enumerator
}

// YieldSplatIter yields the elements of every Array in seq as separate
// arguments.
func YieldSplatIter(seq iter.Seq[RArray]) YieldSplat { return YieldSplat{seq: seq} }

// YieldSplatEnum returns e.
func YieldSplatEnum(e Enumerator) YieldSplat { return YieldSplat{enum: e} }

func (y YieldSplat) yieldTo(r *Ruby) (Value, error) {
	if !y.enum.IsZero() {
		return y.enum.Value, nil
	}
	if y.seq == nil {
		return Nil, nil
	}
	for a := range y.seq {
		if _, err := r.YieldSplat(a); err != nil {
			return Nil, err
		}
	}
	return Nil, nil
}
