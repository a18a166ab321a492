package garnet

import (
	"errors"
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestTryConvertPointer(t *testing.T) {
	r := newRuby(t)

	p, err := TryConvert[*int64](r, Nil)
	if err != nil || p != nil {
		t.Errorf("TryConvert[*int64](nil) = %v, %v, want nil", p, err)
	}
	p, err = TryConvert[*int64](r, r.IntoValue(42))
	if err != nil {
		t.Fatalf("TryConvert[*int64](42) error = %v", err)
	}
	if p == nil || *p != 42 {
		t.Errorf("TryConvert[*int64](42) = %v, want pointer to 42", p)
	}
}

func TestTryConvertScalars(t *testing.T) {
	r := newRuby(t)

	if got, err := TryConvert[string](r, r.NewString("hi").AsValue()); err != nil || got != "hi" {
		t.Errorf("TryConvert[string](\"hi\") = %q, %v", got, err)
	}
	if got, err := TryConvert[bool](r, Nil); err != nil || got {
		t.Errorf("TryConvert[bool](nil) = %v, %v, want false", got, err)
	}
	if got, err := TryConvert[bool](r, r.IntoValue(0)); err != nil || !got {
		t.Errorf("TryConvert[bool](0) = %v, %v, want true", got, err)
	}
	if got, err := TryConvert[float64](r, r.IntoValue(3)); err != nil || got != 3 {
		t.Errorf("TryConvert[float64](3) = %v, %v, want 3", got, err)
	}
	if got, err := TryConvert[float32](r, r.IntoValue(0.5)); err != nil || got != 0.5 {
		t.Errorf("TryConvert[float32](0.5) = %v, %v, want 0.5", got, err)
	}
	if got, err := TryConvert[[]byte](r, r.NewString("ab").AsValue()); err != nil || string(got) != "ab" {
		t.Errorf("TryConvert[[]byte](\"ab\") = %q, %v", got, err)
	}
	if got, err := TryConvert[time.Duration](r, r.IntoValue(1.5)); err != nil || got != 1500*time.Millisecond {
		t.Errorf("TryConvert[time.Duration](1.5) = %v, %v, want 1.5s", got, err)
	}
}

func TestTryConvertFloatToInteger(t *testing.T) {
	r := newRuby(t)
	tests := []struct {
		in   float64
		want int64
	}{
		{1.5, 1},
		{1.9999, 1},
		{-2.7, -2},
		{-0.5, 0},
		{4611686018427387904.0, 4611686018427387904},
	}
	for _, tt := range tests {
		got, err := TryConvert[int64](r, r.IntoValue(tt.in))
		if err != nil || got != tt.want {
			t.Errorf("TryConvert[int64](%v) = %d, %v, want %d", tt.in, got, err, tt.want)
		}
	}
	if got, err := TryConvert[int8](r, r.IntoValue(-7.9)); err != nil || got != -7 {
		t.Errorf("TryConvert[int8](-7.9) = %d, %v, want -7", got, err)
	}
	for _, f := range []float64{1e20, math.Inf(1), math.NaN()} {
		if _, err := TryConvert[int](r, r.IntoValue(f)); !errors.Is(err, ErrRange) {
			t.Errorf("TryConvert[int](%v) error = %v, want ErrRange", f, err)
		}
	}
}

func TestTryConvertErrors(t *testing.T) {
	r := newRuby(t)
	tests := []struct {
		name    string
		conv    func() error
		want    error
		message string
	}{
		{
			"string from nil",
			func() error { _, err := TryConvert[string](r, Nil); return err },
			ErrConversion, "no implicit conversion of nil into String",
		},
		{
			"int from string",
			func() error { _, err := TryConvert[int](r, r.NewString("1").AsValue()); return err },
			ErrConversion, "no implicit conversion",
		},
		{
			"int8 overflow",
			func() error { _, err := TryConvert[int8](r, r.IntoValue(200)); return err },
			ErrRange, "integer 200 too big to convert into 'int8'",
		},
		{
			"int16 underflow",
			func() error { _, err := TryConvert[int16](r, r.IntoValue(-40000)); return err },
			ErrRange, "integer -40000 too small to convert into 'int16'",
		},
		{
			"fixed array length",
			func() error { _, err := TryConvert[[2]int](r, ArrayFromSlice(r, []int{1}).AsValue()); return err },
			ErrConversion, "expected Array of length 2, got 1",
		},
		{
			"wrapper mismatch",
			func() error { _, err := TryConvert[RHash](r, r.IntoValue(true)); return err },
			ErrConversion, "no implicit conversion of true into Hash",
		},
		{
			"fixnum from bignum",
			func() error { _, err := TryConvert[Fixnum](r, r.IntoValue(uint64(1<<63))); return err },
			ErrConversion, "into Fixnum",
		},
	}
	for _, tt := range tests {
		err := tt.conv()
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: error = %v, want %v", tt.name, err, tt.want)
			continue
		}
		wantErrContains(t, err, tt.message)
	}
}

func TestTryConvertContainers(t *testing.T) {
	r := newRuby(t)

	ints, err := TryConvert[[]int](r, ArrayFromSlice(r, []int{3, 1, 2}).AsValue())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{3, 1, 2}, ints); diff != "" {
		t.Errorf("TryConvert[[]int] mismatch (-want +got):\n%s", diff)
	}

	arr, err := TryConvert[[3]string](r, ArrayFromSlice(r, []string{"a", "b", "c"}).AsValue())
	if err != nil {
		t.Fatal(err)
	}
	if arr != [3]string{"a", "b", "c"} {
		t.Errorf("TryConvert[[3]string] = %v", arr)
	}

	want := map[string]int{"one": 1, "two": 2}
	m, err := TryConvert[map[string]int](r, HashFromMap(r, want).AsValue())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("TryConvert[map[string]int] mismatch (-want +got):\n%s", diff)
	}

	nested, err := TryConvert[[][]int](r, r.IntoValue([][]int{{1}, {2, 3}}))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([][]int{{1}, {2, 3}}, nested); diff != "" {
		t.Errorf("TryConvert[[][]int] mismatch (-want +got):\n%s", diff)
	}
}

func TestTryConvertWrappers(t *testing.T) {
	r := newRuby(t)
	s := r.NewString("w")

	got, err := TryConvert[RString](r, s.AsValue())
	if err != nil || got != s {
		t.Errorf("TryConvert[RString] = %v, %v, want %v", got, err, s)
	}
	v, err := TryConvert[Value](r, Undef)
	if err != nil || v != Undef {
		t.Errorf("TryConvert[Value](undef) = %v, %v", v, err)
	}
	sym, err := TryConvert[StaticSymbol](r, r.NewSymbol("k").AsValue())
	if err != nil || sym.Name(r) != "k" {
		t.Errorf("TryConvert[StaticSymbol] = %v, %v", sym, err)
	}
	if _, err := TryConvert[Integer](r, r.IntoValue(1.5)); !errors.Is(err, ErrConversion) {
		t.Errorf("TryConvert[Integer](1.5) error = %v, want ErrConversion", err)
	}
}

func TestIntoValueConversions(t *testing.T) {
	r := newRuby(t)
	huge, _ := new(big.Int).SetString("99999999999999999999999", 10)

	tests := []struct {
		name    string
		in      any
		inspect string
	}{
		{"nil", nil, "nil"},
		{"bool", true, "true"},
		{"int", -3, "-3"},
		{"string", "q", `"q"`},
		{"float", 2.5, "2.5"},
		{"big", huge, "99999999999999999999999"},
		{"rat", big.NewRat(1, 3), "(1/3)"},
		{"slice", []string{"a", "b"}, `["a", "b"]`},
		{"nil slice", []int(nil), "nil"},
		{"map", map[string]int{"b": 2, "a": 1}, `{"a" => 1, "b" => 2}`},
		{"pointer", func() *int { n := 5; return &n }(), "5"},
		{"nil pointer", (*int)(nil), "nil"},
	}
	for _, tt := range tests {
		if got := r.IntoValue(tt.in).Inspect(r); got != tt.inspect {
			t.Errorf("IntoValue(%s).Inspect() = %s, want %s", tt.name, got, tt.inspect)
		}
	}
}

type opaque struct{ n int }

func (o opaque) String() string { return "opaque" }

func TestGoObject(t *testing.T) {
	r := newRuby(t)
	v := r.IntoValue(opaque{n: 9})
	if got := v.ClassName(r); got != "Garnet::GoObject" {
		t.Fatalf("ClassName() = %q, want Garnet::GoObject", got)
	}
	payload, ok := r.GoObjectPayload(v)
	if !ok {
		t.Fatal("GoObjectPayload ok = false")
	}
	if got := payload.(opaque).n; got != 9 {
		t.Errorf("payload n = %d, want 9", got)
	}
	if got := v.Inspect(r); got != "#<Garnet::GoObject garnet.opaque>" {
		t.Errorf("Inspect() = %q", got)
	}
	if s, err := v.ToS(r); err != nil || s != "opaque" {
		t.Errorf("ToS() = %q, %v, want opaque", s, err)
	}

	back, err := TryConvert[opaque](r, v)
	if err != nil || back.n != 9 {
		t.Errorf("TryConvert[opaque] = %v, %v", back, err)
	}
	if _, err := r.Object().New(r); err != nil {
		t.Fatalf("Object.new error = %v", err)
	}
	c, _ := r.Object().AsModule().ConstGet(r, "Garnet")
	m, _ := RModuleFromValue(r, c)
	g, err := m.ConstGet(r, "GoObject")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.Funcall(r, "new"); err == nil {
		t.Error("Garnet::GoObject.new succeeded, want an allocator error")
	}
}
