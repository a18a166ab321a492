package garnet

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestProcCall(t *testing.T) {
	r := newRuby(t)
	p := r.NewProc(func(args []Value) (Value, error) {
		total := 0
		for _, a := range args {
			n, err := TryConvert[int](r, a)
			if err != nil {
				return Nil, err
			}
			total += n
		}
		return r.IntoValue(total), nil
	})
	if _, ok := ProcFromValue(r, p.AsValue()); !ok {
		t.Fatal("ProcFromValue(NewProc) ok = false")
	}
	v, err := p.Call(r, 1, 2, 3)
	if err != nil || v != r.IntoValue(6) {
		t.Errorf("Call(1, 2, 3) = %v, %v, want 6", v, err)
	}
	_, err = p.Call(r, "x")
	if !errors.Is(err, ErrConversion) {
		t.Errorf("Call(\"x\") error = %v, want ErrConversion", err)
	}
}

// defineEachUpTo defines Seq#each_upto(n), which yields 0...n with a block
// and returns an Enumerator without one.
func defineEachUpTo(t *testing.T, r *Ruby) Value {
	t.Helper()
	c := defineClass(t, r, "Seq")
	defineMethod(t, r, c, "each_upto", Method1(func(self Value, n int) (Yield[int], error) {
		if !r.BlockGiven() {
			return YieldEnum[int](self.Enumeratorize(r, "each_upto", n)), nil
		}
		return YieldIter(func(yield func(int) bool) {
			for i := range n {
				if !yield(i) {
					return
				}
			}
		}), nil
	}))
	obj, err := c.New(r)
	if err != nil {
		t.Fatal(err)
	}
	return obj
}

func TestYieldToBlock(t *testing.T) {
	r := newRuby(t)
	seq := defineEachUpTo(t, r)

	var got []int
	v, err := seq.BlockCall(r, "each_upto", []any{4}, func(args []Value) (Value, error) {
		n, err := TryConvert[int](r, args[0])
		got = append(got, n)
		return Nil, err
	})
	if err != nil {
		t.Fatal(err)
	}
	if !v.IsNil() {
		t.Errorf("each_upto returned %v, want nil", v)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3}, got); diff != "" {
		t.Errorf("yielded values mismatch (-want +got):\n%s", diff)
	}
}

func TestBreakFromBlock(t *testing.T) {
	r := newRuby(t)
	seq := defineEachUpTo(t, r)

	var seen []int
	v, err := seq.BlockCall(r, "each_upto", []any{10}, func(args []Value) (Value, error) {
		n, _ := TryConvert[int](r, args[0])
		seen = append(seen, n)
		if n == 2 {
			return Nil, r.Break("stopped")
		}
		return Nil, nil
	})
	if err != nil {
		t.Fatalf("BlockCall error = %v", err)
	}
	if s, _ := TryConvert[string](r, v); s != "stopped" {
		t.Errorf("break value = %v, want \"stopped\"", v.Inspect(r))
	}
	if diff := cmp.Diff([]int{0, 1, 2}, seen); diff != "" {
		t.Errorf("values seen before break (-want +got):\n%s", diff)
	}
	if !r.ErrInfo().IsNil() {
		t.Errorf("ErrInfo() = %v after break, want nil", r.ErrInfo())
	}
}

func TestBreakSurvivesLaterCalls(t *testing.T) {
	r := newRuby(t)
	c := defineClass(t, r, "Relay")
	defineMethod(t, r, c, "relay", Method0(func(self Value) (Value, error) {
		_, err := r.Yield(1)
		self.Inspect(r)
		if _, cerr := TryConvert[string](r, r.NewString("between").AsValue()); cerr != nil {
			return Nil, cerr
		}
		return Nil, err
	}))
	obj, err := c.New(r)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		block func(args []Value) (Value, error)
	}{
		{"break returned directly", func([]Value) (Value, error) {
			return Nil, r.Break("stopped")
		}},
		{"break held across a call", func(args []Value) (Value, error) {
			berr := r.Break("stopped")
			args[0].Inspect(r)
			return Nil, berr
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := obj.BlockCall(r, "relay", nil, tt.block)
			if err != nil {
				t.Fatalf("BlockCall error = %v", err)
			}
			if s, _ := TryConvert[string](r, v); s != "stopped" {
				t.Errorf("break value = %s, want \"stopped\"", v.Inspect(r))
			}
		})
	}
}

func TestResumeConsumedJumpIsFatal(t *testing.T) {
	r := newRuby(t)
	c := defineClass(t, r, "Dropper")
	defineMethod(t, r, c, "drop", Method0(func(Value) (Value, error) {
		_, err := r.Yield(1)
		var st *State
		if errors.As(err, &st) {
			st.Release()
		}
		return Nil, err
	}))
	obj, err := c.New(r)
	if err != nil {
		t.Fatal(err)
	}
	_, err = obj.BlockCall(r, "drop", nil, func([]Value) (Value, error) {
		return Nil, r.Break("lost")
	})
	if !errors.Is(err, ErrBug) {
		t.Fatalf("error = %v, want ErrBug", err)
	}
	wantErrContains(t, err, "resume of a consumed break state")
}

func TestBlockErrorPropagates(t *testing.T) {
	r := newRuby(t)
	seq := defineEachUpTo(t, r)

	calls := 0
	_, err := seq.BlockCall(r, "each_upto", []any{5}, func(args []Value) (Value, error) {
		calls++
		return Nil, r.NewError(r.ArgumentError(), "bad element")
	})
	if !errors.Is(err, ErrArgument) {
		t.Fatalf("error = %v, want ErrArgument", err)
	}
	if calls != 1 {
		t.Errorf("block ran %d times, want 1", calls)
	}
}

func TestYieldWithoutBlock(t *testing.T) {
	r := newRuby(t)
	c := defineClass(t, r, "Eager")
	defineMethod(t, r, c, "run", Method0(func(Value) (Value, error) {
		return r.Yield(1)
	}))
	obj, _ := c.New(r)
	_, err := obj.Funcall(r, "run")
	wantErrContains(t, err, "LocalJumpError: no block given (yield)")
}

func TestYieldValuesAndSplat(t *testing.T) {
	r := newRuby(t)
	c := defineClass(t, r, "Pairs")
	defineMethod(t, r, c, "each_pair", Method0(func(Value) (YieldValues, error) {
		return YieldValuesIter(func(yield func([]any) bool) {
			_ = yield([]any{"a", 1}) && yield([]any{"b", 2})
		}), nil
	}))
	defineMethod(t, r, c, "splat", Method0(func(Value) (Value, error) {
		return r.YieldSplat(ArrayFromSlice(r, []int{7, 8}))
	}))
	obj, _ := c.New(r)

	var keys []string
	_, err := obj.BlockCall(r, "each_pair", nil, func(args []Value) (Value, error) {
		if len(args) != 2 {
			return Nil, r.NewError(r.ArgumentError(), "want two block args")
		}
		k, err := TryConvert[string](r, args[0])
		keys = append(keys, k)
		return Nil, err
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, keys); diff != "" {
		t.Errorf("each_pair keys mismatch (-want +got):\n%s", diff)
	}

	v, err := obj.BlockCall(r, "splat", nil, func(args []Value) (Value, error) {
		return r.IntoValue(len(args)), nil
	})
	if err != nil || v != r.IntoValue(2) {
		t.Errorf("splat block saw %v args, err %v; want 2", v, err)
	}
}

func TestEnumeratorEach(t *testing.T) {
	r := newRuby(t)
	seq := defineEachUpTo(t, r)

	v, err := seq.Funcall(r, "each_upto", 5)
	if err != nil {
		t.Fatal(err)
	}
	e, ok := EnumeratorFromValue(r, v)
	if !ok {
		t.Fatalf("each_upto without a block = %s, want an Enumerator", v.Inspect(r))
	}

	var all []int
	for x, err := range e.Each(r) {
		if err != nil {
			t.Fatal(err)
		}
		n, _ := TryConvert[int](r, x)
		all = append(all, n)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3, 4}, all); diff != "" {
		t.Errorf("Each mismatch (-want +got):\n%s", diff)
	}

	var first []int
	for x, err := range e.Each(r) {
		if err != nil {
			t.Fatal(err)
		}
		n, _ := TryConvert[int](r, x)
		first = append(first, n)
		if len(first) == 2 {
			break
		}
	}
	if diff := cmp.Diff([]int{0, 1}, first); diff != "" {
		t.Errorf("Each with break mismatch (-want +got):\n%s", diff)
	}
	if !r.ErrInfo().IsNil() {
		t.Errorf("ErrInfo() = %v after an early stop, want nil", r.ErrInfo())
	}

	a, err := e.ToArray(r)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ToSlice[int](r, a)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3, 4}, got); diff != "" {
		t.Errorf("ToArray mismatch (-want +got):\n%s", diff)
	}
}

func TestEnumeratorError(t *testing.T) {
	r := newRuby(t)
	c := defineClass(t, r, "Flaky")
	defineMethod(t, r, c, "each", Method0(func(Value) (Value, error) {
		if _, err := r.Yield(1); err != nil {
			return Nil, err
		}
		return Nil, r.NewError(r.IndexError(), "ran out")
	}))
	obj, _ := c.New(r)

	var xs []Value
	var errs []error
	for x, err := range obj.Enumeratorize(r, "each").Each(r) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		xs = append(xs, x)
	}
	if len(xs) != 1 || xs[0] != r.IntoValue(1) {
		t.Errorf("values before the error = %v, want [1]", xs)
	}
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	wantErrContains(t, errs[0], "IndexError: ran out")
}

func TestArrayEach(t *testing.T) {
	r := newRuby(t)
	a := ArrayFromSlice(r, []string{"x", "y", "z"})
	var got []string
	for v, err := range a.Each(r).Each(r) {
		if err != nil {
			t.Fatal(err)
		}
		s, _ := TryConvert[string](r, v)
		got = append(got, s)
	}
	if !slices.Equal(got, []string{"x", "y", "z"}) {
		t.Errorf("Array#each = %v", got)
	}
}
