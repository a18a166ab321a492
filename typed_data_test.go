package garnet

import (
	"errors"
	"fmt"
	"testing"
)

type point struct {
	DataTypeDefaults
	X, Y int
}

func (p *point) Hash() uint64         { return uint64(p.X*31 + p.Y) }
func (p *point) Eql(o *point) bool    { return p.X == o.X && p.Y == o.Y }
func (p *point) Inspect() string      { return fmt.Sprintf("#<Point %d,%d>", p.X, p.Y) }
func (p *point) Dup() *point          { return &point{X: p.X, Y: p.Y} }
func (p *point) Size() int            { return 16 }
func (p *point) Cmp(o *point) int     { return (p.X*p.X + p.Y*p.Y) - (o.X*o.X + o.Y*o.Y) }

func definePoint(t *testing.T, r *Ruby) RClass {
	t.Helper()
	c, err := DefineDataClass(r, r.Object().AsModule(), "Point", NewDataType[point]("point", WithSize()))
	if err != nil {
		t.Fatalf("DefineDataClass(Point) error = %v", err)
	}
	err = c.DefineSingletonMethod(r, "new", Function2(func(x, y int) (*point, error) {
		return &point{X: x, Y: y}, nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	defineMethod(t, r, c, "x", Method0(func(p *point) (int, error) { return p.X, nil }))
	return c
}

func TestTypedDataRoundTrip(t *testing.T) {
	r := newRuby(t)
	c := definePoint(t, r)

	v, err := c.New(r, 3, 4)
	if err != nil {
		t.Fatal(err)
	}
	if got := v.ClassName(r); got != "Point" {
		t.Errorf("ClassName() = %q, want Point", got)
	}
	p, err := TryConvert[*point](r, v)
	if err != nil {
		t.Fatal(err)
	}
	if p.X != 3 || p.Y != 4 {
		t.Errorf("unwrapped point = %+v, want 3,4", *p)
	}
	x, err := Funcall[int](r, v, "x")
	if err != nil || x != 3 {
		t.Errorf("x = %d, %v, want 3", x, err)
	}

	d, ok := RTypedDataFromValue(r, v)
	if !ok {
		t.Fatal("RTypedDataFromValue ok = false")
	}
	if got := d.DataTypeName(r); got != "point" {
		t.Errorf("DataTypeName() = %q, want point", got)
	}
	if got := d.Memsize(r); got != 16 {
		t.Errorf("Memsize() = %d, want 16", got)
	}
}

func TestTypedDataHooks(t *testing.T) {
	r := newRuby(t)
	c := definePoint(t, r)
	a, _ := c.New(r, 1, 2)
	b, _ := c.New(r, 1, 2)
	far, _ := c.New(r, 10, 10)

	if got := a.Inspect(r); got != "#<Point 1,2>" {
		t.Errorf("Inspect() = %q", got)
	}
	eql, err := r.Eql(a, b)
	if err != nil || !eql {
		t.Errorf("Eql(a, b) = %v, %v, want true", eql, err)
	}
	eq, err := r.Equal(a, far)
	if err != nil || eq {
		t.Errorf("Equal(a, far) = %v, %v, want false", eq, err)
	}
	ha, _ := r.Hash(a)
	hb, _ := r.Hash(b)
	if ha != hb {
		t.Errorf("Hash(a) = %d, Hash(b) = %d, want equal", ha, hb)
	}

	less, err := Funcall[bool](r, a, "<", far)
	if err != nil || !less {
		t.Errorf("a < far = %v, %v, want true", less, err)
	}
	cmpNil, err := a.Funcall(r, "<=>", "not a point")
	if err != nil || !cmpNil.IsNil() {
		t.Errorf("a <=> string = %v, %v, want nil", cmpNil, err)
	}

	h := r.NewHash()
	if err := h.Aset(r, a, "first"); err != nil {
		t.Fatal(err)
	}
	got, ok := h.Get(r, b)
	if s, _ := TryConvert[string](r, got); !ok || s != "first" {
		t.Errorf("hash lookup by equal point = %v, %v", got, ok)
	}

	dup, err := a.Funcall(r, "dup")
	if err != nil {
		t.Fatal(err)
	}
	if dup == a {
		t.Error("dup returned the same object")
	}
	dp, _ := TryConvert[*point](r, dup)
	ap, _ := TryConvert[*point](r, a)
	if dp == ap || dp.X != ap.X {
		t.Errorf("dup data = %p %+v, original %p %+v", dp, dp, ap, ap)
	}
}

func TestTypedDataWrongClass(t *testing.T) {
	r := newRuby(t)
	definePoint(t, r)
	_, err := TryConvert[*point](r, r.NewString("s").AsValue())
	if !errors.Is(err, ErrConversion) {
		t.Fatalf("TryConvert[*point](string) error = %v, want ErrConversion", err)
	}
	wantErrContains(t, err, "no implicit conversion of String into point")

	p, err := TryConvert[*point](r, Nil)
	if err != nil || p != nil {
		t.Errorf("TryConvert[*point](nil) = %v, %v, want nil", p, err)
	}
}

func TestWrapAndObj(t *testing.T) {
	r := newRuby(t)
	if _, err := Wrap(r, &point{}); err == nil {
		t.Error("Wrap before DefineDataClass succeeded")
	}
	definePoint(t, r)

	o, err := Wrap(r, &point{X: 7})
	if err != nil {
		t.Fatal(err)
	}
	if o.Get().X != 7 {
		t.Errorf("Get().X = %d, want 7", o.Get().X)
	}
	back, err := TryConvert[Obj[point]](r, o.AsValue())
	if err != nil {
		t.Fatal(err)
	}
	if back.Get() != o.Get() {
		t.Error("Obj round trip returned different data")
	}
	if _, err := TryConvert[Obj[point]](r, r.IntoValue(1)); !errors.Is(err, ErrConversion) {
		t.Errorf("TryConvert[Obj[point]](1) error = %v, want ErrConversion", err)
	}

	v := r.IntoValue(&point{X: 1, Y: 1})
	if got := v.ClassName(r); got != "Point" {
		t.Errorf("IntoValue(*point) class = %q, want Point", got)
	}
	v = r.IntoValue(point{X: 2})
	if p, err := TryConvert[*point](r, v); err != nil || p.X != 2 {
		t.Errorf("IntoValue(point) round trip = %v, %v", p, err)
	}

	if _, err := DefineDataClass(r, r.Object().AsModule(), "Point2", NewDataType[point]("point")); err == nil {
		t.Error("binding *point twice succeeded")
	}
}

type holder struct {
	DataTypeDefaults
	held  Value
	freed *bool
}

func (h *holder) Mark(m Marker)       { m.MarkMovable(h.held) }
func (h *holder) Compact(c Compactor) { h.held = c.Location(h.held) }
func (h *holder) Free()               { *h.freed = true }

func TestTypedDataMarkCompactFree(t *testing.T) {
	r := newRuby(t)
	_, err := DefineDataClass(r, r.Object().AsModule(), "Holder",
		NewDataType[holder]("holder", WithMark(), WithCompact(), WithFreeImmediately()))
	if err != nil {
		t.Fatal(err)
	}

	freed := false
	h := &holder{held: r.NewString("kept alive").AsValue(), freed: &freed}
	o, err := Wrap(r, h)
	if err != nil {
		t.Fatal(err)
	}
	box := r.NewBox(o)

	r.GCStart()
	r.GCCompact()
	if got, err := TryConvert[string](r, h.held); err != nil || got != "kept alive" {
		t.Errorf("held string after compaction = %q, %v", got, err)
	}
	if freed {
		t.Fatal("rooted holder was freed")
	}

	box.Close()
	r.GCStart()
	if !freed {
		t.Error("unrooted holder was not freed")
	}
}

func TestDataTypeMissingCallback(t *testing.T) {
	r := newRuby(t)
	type bare struct{}
	_, err := DefineDataClass(r, r.Object().AsModule(), "Bare", NewDataType[bare]("bare", WithMark()))
	if err == nil {
		t.Fatal("WithMark on a type without Mark succeeded")
	}
	wantErrContains(t, err, "has no Mark(Marker) method")
}
