package garnet

import (
	"errors"
	"testing"

	"github.com/chazu/garnet/rbsys"
)

func TestClassifyImmediates(t *testing.T) {
	r := newRuby(t)
	tests := []struct {
		name string
		v    Value
		want rbsys.ValueType
	}{
		{"false", False, rbsys.TFalse},
		{"nil", Nil, rbsys.TNil},
		{"true", True, rbsys.TTrue},
		{"undef", Undef, rbsys.TUndef},
		{"fixnum", r.IntoValue(42), rbsys.TFixnum},
		{"symbol", r.NewSymbol("sym").AsValue(), rbsys.TSymbol},
		{"flonum", r.IntoValue(1.5), rbsys.TFloat},
		{"string", r.NewString("s").AsValue(), rbsys.TString},
		{"array", r.NewArray().AsValue(), rbsys.TArray},
		{"hash", r.NewHash().AsValue(), rbsys.THash},
	}
	for _, tt := range tests {
		if got := r.Classify(tt.v); got != tt.want {
			t.Errorf("Classify(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestImmediateValues(t *testing.T) {
	r := newRuby(t)
	tests := []struct {
		v         Value
		immediate bool
		truthy    bool
	}{
		{False, true, false},
		{Nil, true, false},
		{True, true, true},
		{r.IntoValue(0), true, true},
		{r.NewSymbol("a").AsValue(), true, true},
		{r.NewString("").AsValue(), false, true},
	}
	for _, tt := range tests {
		if got := tt.v.IsImmediate(); got != tt.immediate {
			t.Errorf("%v.IsImmediate() = %v, want %v", tt.v, got, tt.immediate)
		}
		if got := tt.v.ToBool(); got != tt.truthy {
			t.Errorf("%v.ToBool() = %v, want %v", tt.v, got, tt.truthy)
		}
	}
}

func TestFromValueMismatch(t *testing.T) {
	r := newRuby(t)
	one := r.IntoValue(1)
	str := r.NewString("x").AsValue()
	hash := r.NewHash().AsValue()

	if _, ok := RStringFromValue(r, one); ok {
		t.Error("RStringFromValue(1) ok = true, want false")
	}
	if _, ok := FixnumFromValue(str); ok {
		t.Error("FixnumFromValue(\"x\") ok = true, want false")
	}
	if _, ok := RArrayFromValue(r, hash); ok {
		t.Error("RArrayFromValue({}) ok = true, want false")
	}
	if _, ok := QNilFromValue(False); ok {
		t.Error("QNilFromValue(false) ok = true, want false")
	}
	if _, ok := ExceptionFromValue(r, str); ok {
		t.Error("ExceptionFromValue(\"x\") ok = true, want false")
	}
	if _, ok := RHashFromValue(r, hash); !ok {
		t.Error("RHashFromValue({}) ok = false, want true")
	}
}

func TestSymbols(t *testing.T) {
	r := newRuby(t)
	a := r.NewSymbol("name")
	b := SymbolFromID(r.Intern("name"))
	if a != b {
		t.Errorf("NewSymbol and SymbolFromID differ: %v != %v", a, b)
	}
	if got := a.Name(r); got != "name" {
		t.Errorf("Name() = %q, want %q", got, "name")
	}
	if got := a.ID().Name(r); got != "name" {
		t.Errorf("ID().Name() = %q, want %q", got, "name")
	}
}

func TestFlonum(t *testing.T) {
	r := newRuby(t)
	tests := []struct {
		f  float64
		ok bool
	}{
		{1.5, true},
		{-2.25, true},
		{1e50, true},
		{1e100, false},
		{1e-300, false},
	}
	for _, tt := range tests {
		fl, heap, ok := r.FlonumFromF64(tt.f)
		if ok != tt.ok {
			t.Errorf("FlonumFromF64(%v) ok = %v, want %v", tt.f, ok, tt.ok)
			continue
		}
		if ok {
			if got := fl.ToF64(); got != tt.f {
				t.Errorf("FlonumFromF64(%v).ToF64() = %v", tt.f, got)
			}
			continue
		}
		if got := heap.ToF64(r); got != tt.f {
			t.Errorf("FlonumFromF64(%v) heap value = %v", tt.f, got)
		}
		if _, ok := FloatFromValue(r, heap.AsValue()); !ok {
			t.Errorf("FloatFromValue(heap %v) ok = false", tt.f)
		}
	}
}

func TestEqualityAndHash(t *testing.T) {
	r := newRuby(t)
	a, b := r.NewString("same"), r.NewString("same")
	if a.AsValue().Equal(b.AsValue()) {
		t.Fatal("two new strings share a handle")
	}
	eq, err := r.Equal(a, b)
	if err != nil || !eq {
		t.Errorf("Equal(\"same\", \"same\") = %v, %v, want true", eq, err)
	}
	eql, err := r.Eql(r.IntoValue(1), r.IntoValue(1.0))
	if err != nil || eql {
		t.Errorf("Eql(1, 1.0) = %v, %v, want false", eql, err)
	}
	ha, _ := r.Hash(a)
	hb, _ := r.Hash(b)
	if ha != hb {
		t.Errorf("Hash differs for equal strings: %d != %d", ha, hb)
	}
}

func TestFreeze(t *testing.T) {
	r := newRuby(t)
	s := r.NewString("ice")
	if s.IsFrozen(r) {
		t.Fatal("new string is frozen")
	}
	s.Freeze(r)
	if err := s.CheckFrozen(r); !errors.Is(err, ErrFrozen) {
		t.Errorf("CheckFrozen() = %v, want ErrFrozen", err)
	}
	err := s.Append(r, "berg")
	if !errors.Is(err, ErrFrozen) {
		t.Fatalf("Append on frozen string = %v, want ErrFrozen", err)
	}
	wantErrContains(t, err, "can't modify frozen String")
}

func TestFuncallAndInspect(t *testing.T) {
	r := newRuby(t)
	a := ArrayFromSlice(r, []int{1, 2, 3})

	n, err := Funcall[int](r, a, "size")
	if err != nil || n != 3 {
		t.Errorf("Funcall[int](size) = %d, %v, want 3", n, err)
	}
	if got := a.Inspect(r); got != "[1, 2, 3]" {
		t.Errorf("Inspect() = %q, want %q", got, "[1, 2, 3]")
	}
	s, err := r.IntoValue(7).ToS(r)
	if err != nil || s != "7" {
		t.Errorf("ToS() = %q, %v, want \"7\"", s, err)
	}
	if !a.RespondTo(r, "each") {
		t.Error("Array does not respond to each")
	}

	_, err = a.Funcall(r, "no_such_method")
	wantErrContains(t, err, "undefined method `no_such_method'")
	if got := a.ClassName(r); got != "Array" {
		t.Errorf("ClassName() = %q, want Array", got)
	}
}
