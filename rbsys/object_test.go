package rbsys

import (
	"math/big"
	"testing"
)

func TestInt2Inum(t *testing.T) {
	vm := New(Options{})
	defer vm.Close()

	tests := []struct {
		n    int64
		want ValueType
	}{
		{0, TFixnum},
		{FixnumMax, TFixnum},
		{FixnumMin, TFixnum},
		{FixnumMax + 1, TBignum},
		{FixnumMin - 1, TBignum},
	}
	for _, tt := range tests {
		v := vm.Int2Inum(tt.n)
		if got := vm.TypeOf(v); got != tt.want {
			t.Errorf("TypeOf(Int2Inum(%d)) = %v, want %v", tt.n, got, tt.want)
		}
		if got := vm.Num2Long(v); got != tt.n {
			t.Errorf("Num2Long(Int2Inum(%d)) = %d", tt.n, got)
		}
	}
	if got := vm.TypeOf(vm.Uint2Inum(1 << 63)); got != TBignum {
		t.Errorf("TypeOf(Uint2Inum(1<<63)) = %v, want %v", got, TBignum)
	}
}

func TestNum2LongErrors(t *testing.T) {
	vm := New(Options{})
	defer vm.Close()

	huge := new(big.Int).Lsh(big.NewInt(1), 80)
	tests := []struct {
		name  string
		v     VALUE
		class VALUE
		msg   string
	}{
		{"nil", Qnil, vm.ETypeError, "no implicit conversion from nil to integer"},
		{"bignum", vm.BignumNew(huge), vm.ERangeError, "bignum too big to convert into `long'"},
		{"float", vm.FloatNew(1e30), vm.ERangeError, "float 1.0e+30 out of range of integer"},
		{"string", vm.StrNew("1"), vm.ETypeError, "no implicit conversion of String into Integer"},
	}
	for _, tt := range tests {
		_, tag := vm.Protect(func(uintptr) VALUE { return Long2Fix(vm.Num2Long(tt.v)) }, 0)
		if tag != TagRaise {
			t.Errorf("%s: tag = %v, want %v", tt.name, tag, TagRaise)
			continue
		}
		exc := vm.ErrInfo()
		vm.SetErrInfo(Qnil)
		if !vm.ObjIsKindOf(exc, tt.class) {
			t.Errorf("%s: class = %s", tt.name, vm.ObjClassName(exc))
		}
		if msg := vm.ExcMessage(exc); msg != tt.msg {
			t.Errorf("%s: message = %q, want %q", tt.name, msg, tt.msg)
		}
	}
}

func TestFloatNew(t *testing.T) {
	vm := New(Options{})
	defer vm.Close()

	for _, d := range []float64{0, 1.5, 1e-300, 1e300} {
		v := vm.FloatNew(d)
		if got := vm.TypeOf(v); got != TFloat {
			t.Errorf("TypeOf(FloatNew(%v)) = %v", d, got)
		}
		if got := vm.Num2Dbl(v); got != d {
			t.Errorf("Num2Dbl(FloatNew(%v)) = %v", d, got)
		}
	}
	if FlonumP(vm.FloatNewInHeap(1.5)) {
		t.Error("FloatNewInHeap returned an immediate")
	}
}

func TestStruct(t *testing.T) {
	vm := New(Options{})
	defer vm.Close()

	point := vm.StructDefine("Point", "x", "y")
	p := vm.Send(point, "new", Long2Fix(1), Long2Fix(2))

	if got := vm.StructGetter(p, "y"); got != Long2Fix(2) {
		t.Errorf("p.y = %s, want 2", vm.Inspect(got))
	}
	vm.Send(p, "x=", Long2Fix(5))
	if got := vm.StructAref(p, 0); got != Long2Fix(5) {
		t.Errorf("p[0] = %s, want 5", vm.Inspect(got))
	}
	if got := vm.Inspect(p); got != "#<struct Struct::Point x=5, y=2>" {
		t.Errorf("inspect = %q", got)
	}

	_, tag := vm.Protect(func(uintptr) VALUE { return vm.StructGetter(p, "z") }, 0)
	if tag != TagRaise || vm.ExcMessage(vm.ErrInfo()) != "no member 'z' in struct" {
		t.Errorf("StructGetter(z): tag = %v", tag)
	}
	vm.SetErrInfo(Qnil)
}

func TestRegexpMatch(t *testing.T) {
	vm := New(Options{})
	defer vm.Close()

	re := vm.RegNew(`(\w+)@(\w+)`, 0)
	m := vm.RegMatch(re, vm.StrNew("mail: ruby@example now"))
	if m == Qnil {
		t.Fatal("no match")
	}
	if vm.Backref() != m {
		t.Error("Backref is not the last match")
	}
	tests := []struct {
		n    int
		want string
	}{
		{0, "ruby@example"},
		{1, "ruby"},
		{2, "example"},
	}
	for _, tt := range tests {
		if got := vm.AsString(vm.MatchNth(m, tt.n)); got != tt.want {
			t.Errorf("MatchNth(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
	if vm.MatchNth(m, 3) != Qnil {
		t.Error("MatchNth past the last group is not nil")
	}
	if got := vm.AsString(vm.MatchPre(m)); got != "mail: " {
		t.Errorf("MatchPre = %q", got)
	}
	if got := vm.MatchBegin(m, 1); got != 6 {
		t.Errorf("MatchBegin(1) = %d, want 6", got)
	}

	if vm.RegMatch(re, vm.StrNew("nothing here")) != Qnil {
		t.Error("unexpected match")
	}
	if vm.Backref() != Qnil {
		t.Error("failed match left Backref set")
	}
}

func TestRegexpOptions(t *testing.T) {
	vm := New(Options{})
	defer vm.Close()

	tests := []struct {
		src  string
		opts int
		str  string
		want int
	}{
		{"abc", 0, "xABC", -1},
		{"abc", RegIgnoreCase, "xABC", 1},
		{"a.c", 0, "a\nc", -1},
		{"a.c", RegMultiline, "a\nc", 0},
		{"a b c # comment", RegExtended, "abc", 0},
		{"^b", 0, "a\nb", 2},
	}
	for _, tt := range tests {
		re := vm.RegNew(tt.src, tt.opts)
		if got := vm.RegSearch(re, vm.StrNew(tt.str)); got != tt.want {
			t.Errorf("RegSearch(/%s/%d, %q) = %d, want %d", tt.src, tt.opts, tt.str, got, tt.want)
		}
	}

	_, tag := vm.Protect(func(uintptr) VALUE { return vm.RegNew("(", 0) }, 0)
	if tag != TagRaise || !vm.ObjIsKindOf(vm.ErrInfo(), vm.ERegexpError) {
		t.Errorf("RegNew(\"(\") tag = %v", tag)
	}
	vm.SetErrInfo(Qnil)
}

func TestClassHierarchy(t *testing.T) {
	vm := New(Options{})
	defer vm.Close()

	mod := vm.DefineModule("Greeting")
	base := vm.DefineClass("Base", vm.CObject)
	sub := vm.DefineClass("Sub", base)
	vm.IncludeModule(base, mod)

	obj := vm.ObjAlloc(sub)
	tests := []struct {
		klass VALUE
		want  bool
	}{
		{sub, true},
		{base, true},
		{mod, true},
		{vm.CObject, true},
		{vm.CString, false},
	}
	for _, tt := range tests {
		if got := vm.ObjIsKindOf(obj, tt.klass); got != tt.want {
			t.Errorf("ObjIsKindOf(obj, %s) = %v, want %v", vm.ClassName(tt.klass), got, tt.want)
		}
	}
	if vm.DefineClass("Sub", base) != sub {
		t.Error("reopening Sub returned a new class")
	}
	_, tag := vm.Protect(func(uintptr) VALUE { return vm.DefineClass("Sub", vm.CString) }, 0)
	if tag != TagRaise || !vm.ObjIsKindOf(vm.ErrInfo(), vm.ETypeError) {
		t.Errorf("superclass mismatch tag = %v", tag)
	}
	vm.SetErrInfo(Qnil)

	if err := vm.DefineSingletonMethod(base, "make", FixedFunc(func(self VALUE, _ []VALUE) VALUE {
		return vm.ObjAlloc(self)
	}), 0); err != nil {
		t.Fatal(err)
	}
	made := vm.Send(sub, "make")
	if !vm.ObjIsInstanceOf(made, sub) {
		t.Errorf("Sub.make returned a %s, want Sub", vm.ObjClassName(made))
	}
}
