package garnet

import (
	"strings"
	"testing"
)

func TestBoxSurvivesCollection(t *testing.T) {
	r := newRuby(t)
	box := r.NewBox(r.NewString("boxed"))
	defer box.Close()
	if got := r.GCRegistry().Len(); got != 1 {
		t.Fatalf("GCRegistry().Len() = %d, want 1", got)
	}

	// unrooted garbage for the collector
	for range 50 {
		r.NewString("garbage")
	}
	st := r.GCCompact()
	if st.Freed == 0 {
		t.Errorf("GCCompact freed nothing: %+v", st)
	}
	if s, err := TryConvert[string](r, box.Get()); err != nil || s != "boxed" {
		t.Errorf("boxed value after compaction = %q, %v", s, err)
	}
	if r.GCStat().Count != st.Count {
		t.Errorf("GCStat().Count = %d, want %d", r.GCStat().Count, st.Count)
	}
}

func TestUnrootedValueIsCollected(t *testing.T) {
	r := newRuby(t)
	v := r.NewString("short lived").AsValue()
	box := r.NewBox(v)
	r.GCStart()
	if got := box.Get().Inspect(r); got != `"short lived"` {
		t.Fatalf("boxed Inspect() = %s", got)
	}

	box.Close()
	if got := r.GCRegistry().Len(); got != 0 {
		t.Fatalf("GCRegistry().Len() after Close = %d, want 0", got)
	}
	r.GCStart()
	defer func() {
		p := recover()
		msg, _ := p.(string)
		if !strings.Contains(msg, "dead reference") {
			t.Errorf("recovered %v, want a dead reference panic", p)
		}
	}()
	r.DebugAssertValue(v)
	t.Error("DebugAssertValue accepted a collected value")
}

func TestLeakPins(t *testing.T) {
	r := newRuby(t)
	a := ArrayFromSlice(r, []int{1, 2, 3})
	r.Leak(a)
	for range 20 {
		r.NewString("filler")
	}
	r.GCCompact()
	got, err := ToSlice[int](r, a)
	if err != nil {
		t.Fatalf("leaked array after compaction: %v", err)
	}
	if len(got) != 3 || got[2] != 3 {
		t.Errorf("leaked array = %v, want [1 2 3]", got)
	}
}

func TestBoxSet(t *testing.T) {
	r := newRuby(t)
	box := r.NewBox(Nil)
	defer box.Close()
	box.Set(r.NewString("later"))
	r.GCStart()
	if s, err := TryConvert[string](r, box.AsValue()); err != nil || s != "later" {
		t.Errorf("box after Set = %q, %v", s, err)
	}
}
