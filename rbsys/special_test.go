package rbsys

import (
	"math"
	"testing"
)

func TestSpecialConstants(t *testing.T) {
	tests := []struct {
		name    string
		v       VALUE
		special bool
		truthy  bool
	}{
		{"false", Qfalse, true, false},
		{"nil", Qnil, true, false},
		{"true", Qtrue, true, true},
		{"undef", Qundef, true, true},
		{"fixnum", Long2Fix(7), true, true},
		{"symbol", ID2Sym(42), true, true},
		{"heap", slotAddr(0), false, true},
		{"heap high", slotAddr(1 << 20), false, true},
	}
	for _, tt := range tests {
		if got := SpecialConstP(tt.v); got != tt.special {
			t.Errorf("SpecialConstP(%s) = %v, want %v", tt.name, got, tt.special)
		}
		if got := Test(tt.v); got != tt.truthy {
			t.Errorf("Test(%s) = %v, want %v", tt.name, got, tt.truthy)
		}
	}
}

func TestFixnumRoundTrip(t *testing.T) {
	tests := []int64{0, 1, -1, 42, -42, FixnumMax, FixnumMin, 1 << 40, -(1 << 40)}
	for _, n := range tests {
		if !FixableP(n) {
			t.Fatalf("FixableP(%d) = false", n)
		}
		v := Long2Fix(n)
		if !FixnumP(v) {
			t.Errorf("FixnumP(Long2Fix(%d)) = false", n)
		}
		if got := Fix2Long(v); got != n {
			t.Errorf("Fix2Long(Long2Fix(%d)) = %d", n, got)
		}
	}
}

func TestFixableBounds(t *testing.T) {
	if FixnumMax != math.MaxInt>>1 {
		t.Errorf("FixnumMax = %d, want %d", FixnumMax, math.MaxInt>>1)
	}
	if FixableP(FixnumMax + 1) {
		t.Errorf("FixableP(%d) = true", FixnumMax+1)
	}
	if FixableP(FixnumMin - 1) {
		t.Errorf("FixableP(%d) = true", FixnumMin-1)
	}
	if PosFixableP(uint64(FixnumMax) + 1) {
		t.Errorf("PosFixableP(%d) = true", uint64(FixnumMax)+1)
	}
}

func TestFlonum(t *testing.T) {
	if !UseFlonum {
		t.Skip("flonum needs a 64-bit word")
	}
	tests := []struct {
		d  float64
		ok bool
	}{
		{0.0, true},
		{1.5, true},
		{-2.25, true},
		{3.14159, true},
		{1e50, true},
		{1e100, false},
		{math.Float64frombits(0x3000000000000000), false},
		{math.Float64frombits(0x3000000000000001), true},
		{1e-300, false},
		{math.Inf(1), false},
		{math.NaN(), false},
		{math.Copysign(0, -1), false},
	}
	for _, tt := range tests {
		v, ok := Dbl2Flonum(tt.d)
		if ok != tt.ok {
			t.Errorf("Dbl2Flonum(%v) ok = %v, want %v", tt.d, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if !FlonumP(v) {
			t.Errorf("FlonumP(Dbl2Flonum(%v)) = false", tt.d)
		}
		if FixnumP(v) || StaticSymP(v) {
			t.Errorf("Dbl2Flonum(%v) = %#x overlaps another immediate", tt.d, uint64(v))
		}
		if got := Flonum2Dbl(v); got != tt.d {
			t.Errorf("Flonum2Dbl(Dbl2Flonum(%v)) = %v", tt.d, got)
		}
	}
}

func TestSymbolEncoding(t *testing.T) {
	for _, id := range []ID{1, 2, 1000, 1 << 30} {
		v := ID2Sym(id)
		if !StaticSymP(v) {
			t.Errorf("StaticSymP(ID2Sym(%d)) = false", id)
		}
		if FixnumP(v) || FlonumP(v) {
			t.Errorf("ID2Sym(%d) overlaps a numeric immediate", id)
		}
		if got := Sym2ID(v); got != id {
			t.Errorf("Sym2ID(ID2Sym(%d)) = %d", id, got)
		}
	}
	if StaticSymP(Qtrue) || StaticSymP(Qundef) {
		t.Error("StaticSymP accepts true or undef")
	}
}

func TestSlotAddresses(t *testing.T) {
	for _, i := range []int{0, 1, 7, 1023} {
		v := slotAddr(i)
		if v == Qfalse || v == Qnil || v&0xf != 0 {
			t.Errorf("slotAddr(%d) = %#x is not a 16-aligned non-special word", i, uint64(v))
		}
		if got := slotIndex(v); got != i {
			t.Errorf("slotIndex(slotAddr(%d)) = %d", i, got)
		}
	}
}
