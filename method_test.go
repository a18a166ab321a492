package garnet

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func defineClass(t *testing.T, r *Ruby, name string) RClass {
	t.Helper()
	c, err := r.DefineClass(name, RClass{})
	if err != nil {
		t.Fatalf("DefineClass(%s) error = %v", name, err)
	}
	return c
}

func defineMethod(t *testing.T, r *Ruby, c RClass, name string, m *Method) {
	t.Helper()
	if err := c.DefineMethod(r, name, m); err != nil {
		t.Fatalf("DefineMethod(%s) error = %v", name, err)
	}
}

func TestMethodArgumentsFailFast(t *testing.T) {
	r := newRuby(t)
	c := defineClass(t, r, "Adder")
	called := false
	defineMethod(t, r, c, "add", Method2(func(_ Value, a, b int) (int, error) {
		called = true
		return a + b, nil
	}))
	obj, _ := c.New(r)

	sum, err := Funcall[int](r, obj, "add", 2, 3)
	if err != nil || sum != 5 {
		t.Fatalf("add(2, 3) = %d, %v, want 5", sum, err)
	}

	called = false
	_, err = obj.Funcall(r, "add", "x", 3)
	if !errors.Is(err, ErrConversion) {
		t.Fatalf("add(\"x\", 3) error = %v, want ErrConversion", err)
	}
	if called {
		t.Error("function ran after its first argument failed to convert")
	}
	wantErrContains(t, err, "argument 1")
	if !strings.HasPrefix(err.Error(), "TypeError: ") {
		t.Errorf("error = %q, want a TypeError", err)
	}

	_, err = obj.Funcall(r, "add", 1, "y")
	wantErrContains(t, err, "argument 2: expected int, got String")
	if called {
		t.Error("function ran after its second argument failed to convert")
	}

	_, err = obj.Funcall(r, "add", 1)
	if !errors.Is(err, ErrArgument) {
		t.Errorf("add(1) error = %v, want ErrArgument", err)
	}
}

func TestMethodRangeErrorKeepsMessage(t *testing.T) {
	r := newRuby(t)
	c := defineClass(t, r, "Byter")
	defineMethod(t, r, c, "byte", Method1(func(_ Value, b uint8) (uint8, error) { return b, nil }))
	obj, _ := c.New(r)

	_, err := obj.Funcall(r, "byte", -1)
	if !errors.Is(err, ErrRange) {
		t.Fatalf("byte(-1) error = %v, want ErrRange", err)
	}
	wantErrContains(t, err, "can't convert negative integer to unsigned")
}

func TestPanicFirewall(t *testing.T) {
	r := newRuby(t)
	c := defineClass(t, r, "Bomb")
	defineMethod(t, r, c, "explode", Method0(func(Value) (Value, error) {
		panic("kaboom")
	}))
	obj, _ := c.New(r)

	_, err := obj.Funcall(r, "explode")
	if !errors.Is(err, ErrBug) {
		t.Fatalf("explode error = %v, want ErrBug", err)
	}
	var e *Error
	errors.As(err, &e)
	if e.ClassName() != "fatal" {
		t.Errorf("ClassName() = %q, want fatal", e.ClassName())
	}
	wantErrContains(t, err, "panic in native callable: kaboom")

	v, err := r.Protect(func() Value { return r.IntoValue(1) })
	if err != nil || v != r.IntoValue(1) {
		t.Errorf("Protect after a firewalled panic = %v, %v", v, err)
	}
	if !r.ErrInfo().IsNil() {
		t.Errorf("ErrInfo() = %v, want nil", r.ErrInfo())
	}
}

func TestMethodErrorIsRaised(t *testing.T) {
	r := newRuby(t)
	c := defineClass(t, r, "Failer")
	defineMethod(t, r, c, "fail_with", Method1(func(_ Value, msg string) (Value, error) {
		return Nil, fmt.Errorf("wrapped: %s", msg)
	}))
	defineMethod(t, r, c, "fail_typed", Method0(func(Value) (Value, error) {
		return Nil, r.NewError(r.KeyError(), "missing")
	}))
	obj, _ := c.New(r)

	_, err := obj.Funcall(r, "fail_with", "oops")
	wantErrContains(t, err, "RuntimeError: wrapped: oops")

	_, err = obj.Funcall(r, "fail_typed")
	wantErrContains(t, err, "KeyError: missing")
}

func TestSelfConversion(t *testing.T) {
	r := newRuby(t)
	c := defineClass(t, r, "Shouter")
	defineMethod(t, r, c, "len", Method0(func(self RString) (int, error) {
		return self.Len(r), nil
	}))
	obj, _ := c.New(r)

	_, err := obj.Funcall(r, "len")
	if !errors.Is(err, ErrConversion) {
		t.Fatalf("len error = %v, want ErrConversion", err)
	}
	wantErrContains(t, err, "self: expected garnet.RString, got Shouter")
}

func TestNewMethodReflect(t *testing.T) {
	r := newRuby(t)

	tests := []struct {
		name  string
		fn    any
		arity int
		self  bool
		want  string
	}{
		{"not a func", 42, 0, true, "must be a non-nil func"},
		{"variadic", func(Value, ...int) {}, 1, true, "variadic"},
		{"wrong arity", func(Value, int) {}, 2, true, "does not match"},
		{"bad second result", func() (int, int) { return 0, 0 }, 0, false, "must be error"},
		{"arity too big", func() {}, 17, false, "out of range"},
	}
	for _, tt := range tests {
		var err error
		if tt.self {
			_, err = NewMethod(tt.fn, tt.arity)
		} else {
			_, err = NewFunction(tt.fn, tt.arity)
		}
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: error = %v, want it to contain %q", tt.name, err, tt.want)
		}
	}

	c := defineClass(t, r, "Joiner")
	join, err := NewMethod(func(_ Value, sep string, parts []string) string {
		return strings.Join(parts, sep)
	}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if join.Arity() != 2 {
		t.Errorf("Arity() = %d, want 2", join.Arity())
	}
	defineMethod(t, r, c, "join", join)

	noResult, err := NewFunction(func() {}, 0)
	if err != nil {
		t.Fatal(err)
	}
	defineMethod(t, r, c, "nothing", noResult)

	obj, _ := c.New(r)
	got, err := Funcall[string](r, obj, "join", "-", []string{"a", "b"})
	if err != nil || got != "a-b" {
		t.Errorf("join = %q, %v, want a-b", got, err)
	}
	v, err := obj.Funcall(r, "nothing")
	if err != nil || !v.IsNil() {
		t.Errorf("nothing = %v, %v, want nil", v, err)
	}
	_, err = obj.Funcall(r, "join", 1, []string{})
	wantErrContains(t, err, "argument 1: expected string, got Integer")
}

func TestVariadicMethods(t *testing.T) {
	r := newRuby(t)
	c := defineClass(t, r, "Counter")
	defineMethod(t, r, c, "count", MethodCArgs(func(_ Value, args []Value) (int, error) {
		return len(args), nil
	}))
	defineMethod(t, r, c, "sum", MethodAryArgs(func(_ Value, args []int) (int, error) {
		total := 0
		for _, n := range args {
			total += n
		}
		return total, nil
	}))
	obj, _ := c.New(r)

	for _, n := range []int{0, 1, 5} {
		args := make([]any, n)
		for i := range args {
			args[i] = i
		}
		got, err := Funcall[int](r, obj, "count", args...)
		if err != nil || got != n {
			t.Errorf("count with %d args = %d, %v", n, got, err)
		}
	}

	got, err := Funcall[int](r, obj, "sum", 1, 2, 3)
	if err != nil || got != 6 {
		t.Errorf("sum(1, 2, 3) = %d, %v, want 6", got, err)
	}
	_, err = obj.Funcall(r, "sum", 1, "two")
	if !errors.Is(err, ErrConversion) {
		t.Errorf("sum(1, \"two\") error = %v, want ErrConversion", err)
	}
}

func TestSingletonAndGlobalFunctions(t *testing.T) {
	r := newRuby(t)
	c := defineClass(t, r, "Factory")
	err := c.DefineSingletonMethod(r, "build", Function1(func(n int) ([]int, error) {
		out := make([]int, n)
		for i := range out {
			out[i] = i * i
		}
		return out, nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	squares, err := Funcall[[]int](r, c, "build", 4)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{0, 1, 4, 9}, squares); diff != "" {
		t.Errorf("Factory.build(4) mismatch (-want +got):\n%s", diff)
	}

	if err := r.DefineGlobalFunction("double", Function1(func(n int) (int, error) { return 2 * n, nil })); err != nil {
		t.Fatal(err)
	}
	got, err := Funcall[int](r, r.IntoValue("anything"), "double", 21)
	if err != nil || got != 42 {
		t.Errorf("double(21) = %d, %v, want 42", got, err)
	}

	m, err := r.DefineModule("Util")
	if err != nil {
		t.Fatal(err)
	}
	if err := m.DefineModuleFunction(r, "twice", Function1(func(s string) (string, error) { return s + s, nil })); err != nil {
		t.Fatal(err)
	}
	s, err := Funcall[string](r, m, "twice", "ab")
	if err != nil || s != "abab" {
		t.Errorf("Util.twice(\"ab\") = %q, %v", s, err)
	}
}

func TestCallSuperAndReceiver(t *testing.T) {
	r := newRuby(t)
	base := defineClass(t, r, "Base")
	defineMethod(t, r, base, "greet", Method1(func(_ Value, name string) (string, error) {
		return "hello " + name, nil
	}))
	derived, err := r.DefineClass("Derived", base)
	if err != nil {
		t.Fatal(err)
	}
	defineMethod(t, r, derived, "greet", Method1(func(self Value, name string) (string, error) {
		recv, err := r.CurrentReceiver()
		if err != nil {
			return "", err
		}
		if recv != self {
			return "", errors.New("CurrentReceiver is not self")
		}
		sup, err := r.CallSuper(name)
		if err != nil {
			return "", err
		}
		s, err := TryConvert[string](r, sup)
		return s + "!", err
	}))
	if !derived.Inherits(r, base.AsModule()) {
		t.Error("Derived does not inherit Base")
	}
	if sup, ok := derived.Superclass(r); !ok || sup != base {
		t.Errorf("Superclass() = %v, %v, want Base", sup, ok)
	}

	obj, _ := derived.New(r)
	got, err := Funcall[string](r, obj, "greet", "bob")
	if err != nil || got != "hello bob!" {
		t.Errorf("greet = %q, %v, want %q", got, err, "hello bob!")
	}

	if _, err := r.CurrentReceiver(); err == nil {
		t.Error("CurrentReceiver at top level succeeded")
	}
}

func TestConstantsAndGlobals(t *testing.T) {
	r := newRuby(t)
	m, _ := r.DefineModule("Settings")
	m.ConstSet(r, "LIMIT", 10)
	v, err := m.ConstGet(r, "LIMIT")
	if err != nil || v != r.IntoValue(10) {
		t.Errorf("ConstGet(LIMIT) = %v, %v, want 10", v, err)
	}
	_, err = m.ConstGet(r, "MISSING")
	wantErrContains(t, err, "NameError")

	var counter Value = r.IntoValue(1)
	r.DefineVariable("$counter", &counter)
	if got := r.GlobalGet("$counter"); got != r.IntoValue(1) {
		t.Errorf("GlobalGet($counter) = %v, want 1", got)
	}
	r.GlobalSet("$counter", 2)
	if counter != r.IntoValue(2) {
		t.Errorf("bound variable = %v after GlobalSet, want 2", counter)
	}
	if got := r.GlobalGet("$undefined"); !got.IsNil() {
		t.Errorf("GlobalGet($undefined) = %v, want nil", got)
	}
}

func TestStructAndObject(t *testing.T) {
	r := newRuby(t)
	c, err := r.DefineStruct("Pair", "left", "right")
	if err != nil {
		t.Fatal(err)
	}
	v, err := c.New(r, 1, "two")
	if err != nil {
		t.Fatal(err)
	}
	s, ok := RStructFromValue(r, v)
	if !ok {
		t.Fatalf("RStructFromValue(%s) ok = false", v.Inspect(r))
	}
	if diff := cmp.Diff([]string{"left", "right"}, s.Members(r)); diff != "" {
		t.Errorf("Members() mismatch (-want +got):\n%s", diff)
	}
	if err := s.Setter(r, "left", 5); err != nil {
		t.Fatal(err)
	}
	left, err := s.Getter(r, "left")
	if err != nil || left != r.IntoValue(5) {
		t.Errorf("Getter(left) = %v, %v, want 5", left, err)
	}
	err = s.Setter(r, "middle", 0)
	wantErrContains(t, err, "no member 'middle' in struct")

	obj, _ := r.Object().New(r)
	o, ok := RObjectFromValue(r, obj)
	if !ok {
		t.Fatal("RObjectFromValue(Object.new) ok = false")
	}
	if err := o.IvarSet(r, "@x", "y"); err != nil {
		t.Fatal(err)
	}
	if got, _ := TryConvert[string](r, o.IvarGet(r, "@x")); got != "y" {
		t.Errorf("IvarGet(@x) = %q, want y", got)
	}
}
