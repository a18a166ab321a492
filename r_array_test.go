package garnet

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestArrayMutation(t *testing.T) {
	r := newRuby(t)
	a := r.NewArray()
	if !a.IsEmpty(r) {
		t.Fatal("NewArray() is not empty")
	}
	for _, x := range []any{1, "two", 3.0} {
		if err := a.Push(r, x); err != nil {
			t.Fatal(err)
		}
	}
	if err := a.Unshift(r, 0); err != nil {
		t.Fatal(err)
	}
	if err := a.Cat(r, nil, true); err != nil {
		t.Fatal(err)
	}
	if got := a.Inspect(r); got != `[0, 1, "two", 3.0, nil, true]` {
		t.Errorf("Inspect() = %s", got)
	}

	if v, err := a.Pop(r); err != nil || v != True {
		t.Errorf("Pop() = %v, %v, want true", v, err)
	}
	if v, err := a.Shift(r); err != nil || v != r.IntoValue(0) {
		t.Errorf("Shift() = %v, %v, want 0", v, err)
	}
	if got := a.Entry(r, -2); got.Inspect(r) != "3.0" {
		t.Errorf("Entry(-2) = %s, want 3.0", got.Inspect(r))
	}
	if got := a.Entry(r, 10); !got.IsNil() {
		t.Errorf("Entry(10) = %v, want nil", got)
	}

	if err := a.Store(r, 6, "end"); err != nil {
		t.Fatal(err)
	}
	if got := a.Len(r); got != 7 {
		t.Errorf("Len() after Store(6) = %d, want 7", got)
	}
	err := a.Store(r, -20, 1)
	wantErrContains(t, err, "IndexError: index -20 too small for array")

	err = a.Store(r, 1<<40, "far")
	wantErrContains(t, err, "IndexError: index 1099511627776 too big")
	if got := a.Len(r); got != 7 {
		t.Errorf("Len() after a rejected Store = %d, want 7", got)
	}
}

func TestArrayJoinAndDup(t *testing.T) {
	r := newRuby(t)
	a := ArrayFromSlice(r, []any{"a", 1, r.NewSymbol("b")})
	s, err := a.Join(r, "-")
	if err != nil || s != "a-1-b" {
		t.Errorf("Join(-) = %q, %v, want a-1-b", s, err)
	}

	d := a.Dup(r)
	d.Push(r, "extra")
	if a.Len(r) != 3 || d.Len(r) != 4 {
		t.Errorf("Dup shares storage: len(a) = %d, len(dup) = %d", a.Len(r), d.Len(r))
	}
	vs := r.ArrayFromValues(r.IntoValue(1), Nil)
	if got := vs.Inspect(r); got != "[1, nil]" {
		t.Errorf("ArrayFromValues Inspect() = %s", got)
	}
}

func TestArrayFrozen(t *testing.T) {
	r := newRuby(t)
	a := ArrayFromSlice(r, []int{1})
	a.Freeze(r)
	tests := []struct {
		name string
		op   func() error
	}{
		{"Push", func() error { return a.Push(r, 2) }},
		{"Pop", func() error { _, err := a.Pop(r); return err }},
		{"Store", func() error { return a.Store(r, 0, 2) }},
		{"Cat", func() error { return a.Cat(r, 2, 3) }},
	}
	for _, tt := range tests {
		if err := tt.op(); !errors.Is(err, ErrFrozen) {
			t.Errorf("%s on a frozen Array error = %v, want ErrFrozen", tt.name, err)
		}
	}
}

func TestToArrayN(t *testing.T) {
	r := newRuby(t)
	a := ArrayFromSlice(r, []string{"x", "y"})
	got, err := ToArrayN[string](r, a, 2)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"x", "y"}, got); diff != "" {
		t.Errorf("ToArrayN mismatch (-want +got):\n%s", diff)
	}
	_, err = ToArrayN[string](r, a, 3)
	if !errors.Is(err, ErrConversion) {
		t.Fatalf("ToArrayN(3) error = %v, want ErrConversion", err)
	}
	wantErrContains(t, err, "expected Array of length 3, got 2")
}
