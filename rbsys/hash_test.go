package rbsys

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func hashKeyNames(vm *VM, h VALUE) []string {
	var out []string
	for _, k := range vm.HashKeys(h) {
		out = append(out, vm.Inspect(k))
	}
	return out
}

func TestHashInsertionOrder(t *testing.T) {
	vm := New(Options{})
	defer vm.Close()

	h := vm.HashNew()
	for _, k := range []string{"c", "a", "b"} {
		vm.HashAset(h, vm.SymbolNew(k), Long2Fix(1))
	}
	vm.HashAset(h, vm.SymbolNew("a"), Long2Fix(2))

	want := []string{":c", ":a", ":b"}
	if diff := cmp.Diff(want, hashKeyNames(vm, h)); diff != "" {
		t.Errorf("HashKeys mismatch (-want +got):\n%s", diff)
	}
	if got := vm.HashLookup(h, vm.SymbolNew("a")); got != Long2Fix(2) {
		t.Errorf("h[:a] = %s, want 2", vm.Inspect(got))
	}
	if n := vm.HashSize(h); n != 3 {
		t.Errorf("HashSize = %d, want 3", n)
	}
}

func TestHashDelete(t *testing.T) {
	vm := New(Options{})
	defer vm.Close()

	h := vm.HashNew()
	for i := int64(0); i < 20; i++ {
		vm.HashAset(h, Long2Fix(i), Long2Fix(i*i))
	}
	for i := int64(0); i < 20; i += 2 {
		if got := vm.HashDelete(h, Long2Fix(i)); got != Long2Fix(i*i) {
			t.Errorf("HashDelete(%d) = %s", i, vm.Inspect(got))
		}
	}
	if got := vm.HashDelete(h, Long2Fix(0)); got != Qundef {
		t.Errorf("HashDelete(missing) = %#x, want undef", uint64(got))
	}
	if n := vm.HashSize(h); n != 10 {
		t.Errorf("HashSize = %d, want 10", n)
	}
	keys := vm.HashKeys(h)
	for i, k := range keys {
		if want := int64(2*i + 1); Fix2Long(k) != want {
			t.Errorf("key %d = %d, want %d", i, Fix2Long(k), want)
		}
	}
}

func TestHashForeachDelete(t *testing.T) {
	vm := New(Options{})
	defer vm.Close()

	h := vm.HashNew()
	for i := int64(1); i <= 5; i++ {
		vm.HashAset(h, Long2Fix(i), Qtrue)
	}
	vm.HashForeach(h, func(k, _ VALUE) ForeachResult {
		if Fix2Long(k)%2 == 0 {
			return STDelete
		}
		return STContinue
	})
	want := []string{"1", "3", "5"}
	if diff := cmp.Diff(want, hashKeyNames(vm, h)); diff != "" {
		t.Errorf("keys after delete (-want +got):\n%s", diff)
	}

	visited := 0
	vm.HashForeach(h, func(VALUE, VALUE) ForeachResult {
		visited++
		return STStop
	})
	if visited != 1 {
		t.Errorf("STStop visited %d entries, want 1", visited)
	}
}

func TestHashAddDuringIteration(t *testing.T) {
	vm := New(Options{})
	defer vm.Close()

	h := vm.HashNew()
	vm.HashAset(h, Long2Fix(1), Qnil)
	_, tag := vm.Protect(func(uintptr) VALUE {
		vm.HashForeach(h, func(VALUE, VALUE) ForeachResult {
			vm.HashAset(h, Long2Fix(2), Qnil)
			return STContinue
		})
		return Qnil
	}, 0)
	if tag != TagRaise {
		t.Fatalf("tag = %v, want %v", tag, TagRaise)
	}
	if msg := vm.ExcMessage(vm.ErrInfo()); msg != "can't add a new key into hash during iteration" {
		t.Errorf("message = %q", msg)
	}
	vm.SetErrInfo(Qnil)
}

func TestHashStringKeys(t *testing.T) {
	vm := New(Options{})
	defer vm.Close()

	h := vm.HashNew()
	key := vm.StrNew("name")
	vm.HashAset(h, key, Long2Fix(1))

	stored := vm.HashKeys(h)[0]
	if stored == key {
		t.Error("unfrozen String key was not copied")
	}
	if !vm.FrozenP(stored) {
		t.Error("stored String key is not frozen")
	}
	if got := vm.HashLookup(h, vm.StrNew("name")); got != Long2Fix(1) {
		t.Errorf("lookup by equal string = %s, want 1", vm.Inspect(got))
	}
}

func TestHashEqlSemantics(t *testing.T) {
	vm := New(Options{})
	defer vm.Close()

	h := vm.HashNew()
	vm.HashAset(h, Long2Fix(1), vm.StrNew("int"))
	vm.HashAset(h, vm.FloatNew(1.0), vm.StrNew("float"))
	if n := vm.HashSize(h); n != 2 {
		t.Errorf("1 and 1.0 share a key: size = %d", n)
	}
}

func TestHashDefaults(t *testing.T) {
	vm := New(Options{})
	defer vm.Close()

	h := vm.HashNew()
	vm.HashSetDefault(h, Long2Fix(0))
	if got := vm.HashAref(h, vm.SymbolNew("x")); got != Long2Fix(0) {
		t.Errorf("HashAref(missing) = %s, want 0", vm.Inspect(got))
	}
	if got := vm.HashLookup(h, vm.SymbolNew("x")); got != Qnil {
		t.Errorf("HashLookup(missing) = %s, want nil", vm.Inspect(got))
	}

	_, tag := vm.Protect(func(uintptr) VALUE { return vm.HashFetch(h, vm.SymbolNew("x")) }, 0)
	if tag != TagRaise {
		t.Fatalf("HashFetch(missing) tag = %v", tag)
	}
	exc := vm.ErrInfo()
	vm.SetErrInfo(Qnil)
	if !vm.ObjIsKindOf(exc, vm.EKeyError) {
		t.Errorf("class = %s, want KeyError", vm.ObjClassName(exc))
	}
	if msg := vm.ExcMessage(exc); msg != "key not found: :x" {
		t.Errorf("message = %q", msg)
	}
}

func TestHashFrozen(t *testing.T) {
	vm := New(Options{})
	defer vm.Close()

	h := vm.Freeze(vm.HashNew())
	_, tag := vm.Protect(func(uintptr) VALUE { return vm.HashAset(h, Qnil, Qnil) }, 0)
	if tag != TagRaise || !vm.ObjIsKindOf(vm.ErrInfo(), vm.EFrozenError) {
		t.Errorf("HashAset on frozen hash: tag = %v", tag)
	}
	vm.SetErrInfo(Qnil)
}
