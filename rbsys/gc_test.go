package rbsys

import "testing"

type sliceRoots []VALUE

func (s sliceRoots) EachRoot(fn func(*VALUE)) {
	for i := range s {
		fn(&s[i])
	}
}

func TestGCFreesUnreachable(t *testing.T) {
	vm := New(Options{})
	defer vm.Close()

	garbage := vm.StrNew("garbage")
	var kept VALUE = vm.StrNew("kept")
	vm.GCRegisterAddress(&kept)
	defer vm.GCUnregisterAddress(&kept)

	s := vm.GC()
	if s.Freed == 0 {
		t.Error("GC freed nothing")
	}
	if vm.BuiltinType(garbage) != TNone {
		t.Errorf("unreachable string type = %v, want %v", vm.BuiltinType(garbage), TNone)
	}
	if got := vm.AsString(kept); got != "kept" {
		t.Errorf("rooted string = %q, want %q", got, "kept")
	}
}

func TestGCMarksChildren(t *testing.T) {
	vm := New(Options{})
	defer vm.Close()

	child := vm.StrNew("child")
	var ary VALUE = vm.AryNewFrom(child)
	vm.GCRegisterAddress(&ary)
	defer vm.GCUnregisterAddress(&ary)

	vm.GC()
	if vm.BuiltinType(child) != TString {
		t.Errorf("array element type = %v, want %v", vm.BuiltinType(child), TString)
	}
}

func TestGCDeferredFree(t *testing.T) {
	vm := New(Options{})
	defer vm.Close()

	freed := 0
	dt := &DataType{Name: "deferred", Free: func(any) { freed++ }}
	obj := vm.TypedDataWrap(vm.CData, new(int), dt)

	vm.GC()
	if freed != 0 {
		t.Fatalf("Free ran during the first sweep")
	}
	if vm.BuiltinType(obj) != TZombie {
		t.Errorf("after first GC type = %v, want %v", vm.BuiltinType(obj), TZombie)
	}
	if s := vm.GCStats(); s.Zombies != 1 {
		t.Errorf("Zombies = %d, want 1", s.Zombies)
	}

	vm.GC()
	if freed != 1 {
		t.Errorf("Free ran %d times, want 1", freed)
	}
	if vm.BuiltinType(obj) != TNone {
		t.Errorf("after second GC type = %v, want %v", vm.BuiltinType(obj), TNone)
	}
}

func TestGCFreeImmediately(t *testing.T) {
	vm := New(Options{})
	defer vm.Close()

	freed := 0
	dt := &DataType{Name: "eager", Free: func(any) { freed++ }, FreeImmediately: true}
	vm.TypedDataWrap(vm.CData, new(int), dt)

	vm.GC()
	if freed != 1 {
		t.Errorf("Free ran %d times, want 1", freed)
	}
}

func TestCloseRunsFree(t *testing.T) {
	vm := New(Options{})
	freed := 0
	dt := &DataType{Name: "closing", Free: func(any) { freed++ }}
	var v VALUE = vm.TypedDataWrap(vm.CData, new(int), dt)
	vm.GCRegisterAddress(&v)
	vm.Close()
	if freed != 1 {
		t.Errorf("Free ran %d times on Close, want 1", freed)
	}
}

func TestCompactMovesAndForwards(t *testing.T) {
	vm := New(Options{})
	defer vm.Close()

	for i := 0; i < 8; i++ {
		vm.StrNew("filler")
	}
	var str VALUE = vm.StrNew("moving")
	vm.GCRegisterAddress(&str)
	defer vm.GCUnregisterAddress(&str)
	before := str

	s := vm.Compact()
	if s.Moved == 0 {
		t.Fatal("Compact moved nothing")
	}
	if str == before {
		t.Fatal("registered address was not rewritten")
	}
	if got := vm.AsString(str); got != "moving" {
		t.Errorf("moved string = %q, want %q", got, "moving")
	}
	if vm.BuiltinType(before) != TMoved {
		t.Errorf("old slot type = %v, want %v", vm.BuiltinType(before), TMoved)
	}

	vm.GC()
	if vm.BuiltinType(before) != TNone {
		t.Errorf("old slot type after GC = %v, want %v", vm.BuiltinType(before), TNone)
	}
}

func TestCompactLeavesPinned(t *testing.T) {
	vm := New(Options{})
	defer vm.Close()

	for i := 0; i < 8; i++ {
		vm.StrNew("filler")
	}
	pinned := vm.StrNew("pinned")
	vm.GCRegisterMarkObject(pinned)

	vm.Compact()
	if got := vm.AsString(pinned); got != "pinned" {
		t.Errorf("pinned string = %q, want %q", got, "pinned")
	}
}

func TestCompactUpdatesRootSetsAndChildren(t *testing.T) {
	vm := New(Options{})
	defer vm.Close()

	for i := 0; i < 8; i++ {
		vm.StrNew("filler")
	}
	inner := vm.StrNew("inner")
	roots := sliceRoots{vm.AryNewFrom(inner)}
	vm.AddRootSet(roots)

	vm.Compact()
	if got := vm.AsString(vm.AryEntry(roots[0], 0)); got != "inner" {
		t.Errorf("array element after compaction = %q, want %q", got, "inner")
	}
}

func TestCompactRehashesIdentityKeys(t *testing.T) {
	vm := New(Options{})
	defer vm.Close()

	for i := 0; i < 8; i++ {
		vm.StrNew("filler")
	}
	roots := sliceRoots{vm.ObjAlloc(vm.CObject), vm.HashNew()}
	vm.AddRootSet(roots)
	vm.HashAset(roots[1], roots[0], Long2Fix(1))

	vm.Compact()
	if got := vm.HashLookup(roots[1], roots[0]); got != Long2Fix(1) {
		t.Errorf("lookup after compaction = %s, want 1", vm.Inspect(got))
	}
}

func TestTypedDataCompactCallback(t *testing.T) {
	vm := New(Options{})
	defer vm.Close()

	type holder struct{ ref VALUE }
	dt := &DataType{
		Name:    "holder",
		Mark:    func(d any) { vm.GCMarkMovable(d.(*holder).ref) },
		Compact: func(d any) { h := d.(*holder); h.ref = vm.GCLocation(h.ref) },
	}
	for i := 0; i < 8; i++ {
		vm.StrNew("filler")
	}
	h := &holder{ref: vm.StrNew("held")}
	var obj VALUE = vm.TypedDataWrap(vm.CData, h, dt)
	vm.GCRegisterAddress(&obj)
	defer vm.GCUnregisterAddress(&obj)

	vm.Compact()
	if got := vm.AsString(h.ref); got != "held" {
		t.Errorf("held string = %q, want %q", got, "held")
	}
}

func TestGlobalVariables(t *testing.T) {
	vm := New(Options{})
	defer vm.Close()

	if vm.GvGet("$missing") != Qnil {
		t.Error("missing global is not nil")
	}
	vm.GvSet("$answer", vm.StrNew("42"))
	vm.GC()
	if got := vm.AsString(vm.GvGet("$answer")); got != "42" {
		t.Errorf("$answer = %q, want %q", got, "42")
	}
}
