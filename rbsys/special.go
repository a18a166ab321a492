package rbsys

import (
	"math"
	"math/bits"
)

// ---------------------------------------------------------------------------
// Immediate predicates
// ---------------------------------------------------------------------------

// SpecialConstP reports whether v is an immediate. Immediates never point
// into the heap.
func SpecialConstP(v VALUE) bool {
	return v&ImmediateMask != 0 || v&^Qnil == 0
}

// ImmediateP reports whether any of the low immediate bits are set.
// false and nil are special constants but not "immediate" in this sense.
func ImmediateP(v VALUE) bool {
	return v&ImmediateMask != 0
}

// FixnumP reports whether v encodes a small integer.
func FixnumP(v VALUE) bool {
	return v&FixnumFlag != 0
}

// FlonumP reports whether v encodes an immediate float.
func FlonumP(v VALUE) bool {
	return UseFlonum && v&FlonumMask == FlonumFlag
}

// StaticSymP reports whether v encodes an interned symbol.
func StaticSymP(v VALUE) bool {
	return v&0xff == SymbolFlag
}

// NilP reports whether v is nil.
func NilP(v VALUE) bool { return v == Qnil }

// Test is Ruby truthiness: everything except nil and false.
func Test(v VALUE) bool {
	return v&^Qnil != 0
}

// ---------------------------------------------------------------------------
// Fixnum encoding
// ---------------------------------------------------------------------------

// FixableP reports whether n fits in a fixnum.
func FixableP(n int64) bool {
	return n >= FixnumMin && n <= FixnumMax
}

// PosFixableP reports whether the unsigned n fits in a fixnum.
func PosFixableP(n uint64) bool {
	return n <= uint64(FixnumMax)
}

// Long2Fix encodes n without a range check. Callers must check FixableP.
func Long2Fix(n int64) VALUE {
	return VALUE(uint64(n)<<1 | uint64(FixnumFlag))
}

// Fix2Long decodes a fixnum. The arithmetic shift restores the sign.
func Fix2Long(v VALUE) int64 {
	return int64(v) >> 1
}

// ---------------------------------------------------------------------------
// Flonum encoding
// ---------------------------------------------------------------------------

// Dbl2Flonum encodes d as an immediate float. It reports false when the
// exponent lies outside the window the rotated encoding can hold; callers
// then allocate a heap float.
func Dbl2Flonum(d float64) (VALUE, bool) {
	if !UseFlonum {
		return 0, false
	}
	t := math.Float64bits(d)
	b := (t >> 60) & 7
	if t != 0x3000000000000000 && (b-3)&^1 == 0 {
		v := VALUE(bits.RotateLeft64(t, 3)&^1 | uint64(FlonumFlag))
		if Flonum2Dbl(v) != d {
			return 0, false
		}
		return v, true
	}
	if t == 0 {
		return flonumZero, true
	}
	return 0, false
}

// Flonum2Dbl decodes an immediate float.
func Flonum2Dbl(v VALUE) float64 {
	if v == flonumZero {
		return 0.0
	}
	b63 := uint64(v) >> 63
	t := (2 - b63) | (uint64(v) &^ uint64(FlonumMask))
	return math.Float64frombits(bits.RotateLeft64(t, -3))
}

// ---------------------------------------------------------------------------
// Symbol encoding
// ---------------------------------------------------------------------------

// ID2Sym encodes an interned name as a static symbol.
func ID2Sym(id ID) VALUE {
	return VALUE(uint64(id)<<SpecialShift) | SymbolFlag
}

// Sym2ID decodes a static symbol.
func Sym2ID(v VALUE) ID {
	return ID(uint64(v) >> SpecialShift)
}

// ---------------------------------------------------------------------------
// Heap addresses
// ---------------------------------------------------------------------------

const slotShift = 4

func slotAddr(i int) VALUE {
	return VALUE(uint64(i+1) << slotShift)
}

func slotIndex(v VALUE) int {
	return int(uint64(v)>>slotShift) - 1
}
