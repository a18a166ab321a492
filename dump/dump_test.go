package dump

import (
	"errors"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/chazu/garnet"
)

func newRuby(t *testing.T) *garnet.Ruby {
	t.Helper()
	r := garnet.New(garnet.WithDebugAssertions(true))
	t.Cleanup(r.Close)
	return r
}

func TestDumpLoad(t *testing.T) {
	r := newRuby(t)
	huge, _ := new(big.Int).SetString("-123456789012345678901234567890", 10)
	q, err := r.NewRational(2, 6)
	if err != nil {
		t.Fatal(err)
	}

	h := r.NewHash()
	h.Aset(r, "name", "garnet")
	h.Aset(r, r.NewSymbol("sizes"), []int{1, 2, 3})
	h.Aset(r, 7, map[string]float64{"pi": 3.14159})
	h.Aset(r, "big", huge)
	h.Aset(r, "ratio", q)
	h.Aset(r, "flags", []any{nil, true, false, 1e300})

	data, err := Dump(r, h)
	if err != nil {
		t.Fatal(err)
	}

	other := newRuby(t)
	v, err := Load(other, data)
	if err != nil {
		t.Fatal(err)
	}
	want := h.Inspect(r)
	if got := v.Inspect(other); got != want {
		t.Errorf("Load(Dump(h)).Inspect() =\n%s\nwant\n%s", got, want)
	}

	s, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if s.Runtime != r.ID() {
		t.Errorf("snapshot runtime = %s, want %s", s.Runtime, r.ID())
	}
}

func TestDumpIsDeterministic(t *testing.T) {
	r := newRuby(t)
	v := r.IntoValue(map[string]int{"b": 2, "a": 1, "c": 3})
	first, err := Dump(r, v)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Dump(r, v)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("two dumps differ (-first +second):\n%s", diff)
	}
}

func TestDumpPreservesFrozen(t *testing.T) {
	r := newRuby(t)
	a := garnet.ArrayFromSlice(r, []string{"x"})
	a.Freeze(r)
	data, err := Dump(r, a)
	if err != nil {
		t.Fatal(err)
	}
	v, err := Load(r, data)
	if err != nil {
		t.Fatal(err)
	}
	if !v.IsFrozen(r) {
		t.Error("loaded Array is not frozen")
	}
	b, _ := garnet.RArrayFromValue(r, v)
	if b.Entry(r, 0).IsFrozen(r) {
		t.Error("loaded element is frozen, want it mutable like the original")
	}
}

func TestDumpRejects(t *testing.T) {
	r := newRuby(t)

	cyclic := r.NewArray()
	cyclic.Push(r, cyclic)
	if _, err := Dump(r, cyclic); !errors.Is(err, ErrCycle) {
		t.Errorf("Dump(cyclic) error = %v, want ErrCycle", err)
	}

	shared := garnet.ArrayFromSlice(r, []int{1})
	pair := r.ArrayFromValues(shared.AsValue(), shared.AsValue())
	if _, err := Dump(r, pair); err != nil {
		t.Errorf("Dump(shared, non-cyclic) error = %v", err)
	}

	obj, err := r.Object().New(r)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Dump(r, obj); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Dump(Object.new) error = %v, want ErrUnsupported", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	r := newRuby(t)
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"not cbor", []byte{0xff, 0x00}},
		{"wrong version", mustMarshal(t, Snapshot{Version: 99})},
		{"odd hash", mustMarshal(t, Snapshot{Version: Version, Root: Node{Kind: KindHash, Elems: []Node{{Kind: KindNil}}}})},
		{"empty big", mustMarshal(t, Snapshot{Version: Version, Root: Node{Kind: KindBig}})},
		{"unknown kind", mustMarshal(t, Snapshot{Version: Version, Root: Node{Kind: 200}})},
	}
	for _, tt := range tests {
		if _, err := Load(r, tt.data); !errors.Is(err, ErrFormat) {
			t.Errorf("Load(%s) error = %v, want ErrFormat", tt.name, err)
		}
	}
}

func mustMarshal(t *testing.T, s Snapshot) []byte {
	t.Helper()
	data, err := encMode.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	return data
}
