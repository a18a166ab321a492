package garnet

import (
	"math"
	"math/big"

	"github.com/chazu/garnet/rbsys"
)

// Fixnum range, one bit narrower than the platform word.
const (
	FixnumMax = rbsys.FixnumMax
	FixnumMin = rbsys.FixnumMin
)

// Fixnum is an immediate small integer.
type Fixnum struct{ NonZeroValue }

// FixnumFromValue reports whether v is a fixnum.
func FixnumFromValue(v Value) (Fixnum, bool) {
	if !rbsys.FixnumP(v.raw()) {
		return Fixnum{}, false
	}
	return Fixnum{NonZeroValue{v}}, true
}

// FixnumFromI64 encodes n as a Fixnum when it fits. Otherwise ok is false
// and the returned RBignum holds n. The value is never truncated.
func (r *Ruby) FixnumFromI64(n int64) (f Fixnum, big RBignum, ok bool) {
	if rbsys.FixableP(n) {
		return Fixnum{NonZeroValue{Value(rbsys.Long2Fix(n))}}, RBignum{}, true
	}
	return Fixnum{}, RBignum{NonZeroValue{Value(r.vm.Int2Inum(n))}}, false
}

// FixnumFromU64 is FixnumFromI64 for unsigned values.
func (r *Ruby) FixnumFromU64(n uint64) (f Fixnum, big RBignum, ok bool) {
	if rbsys.PosFixableP(n) {
		return Fixnum{NonZeroValue{Value(rbsys.Long2Fix(int64(n)))}}, RBignum{}, true
	}
	return Fixnum{}, RBignum{NonZeroValue{Value(r.vm.Uint2Inum(n))}}, false
}

// ToInt64 returns the value. It always fits.
func (f Fixnum) ToInt64() int64 { return rbsys.Fix2Long(f.raw()) }

// ToInt returns the value as an int.
func (f Fixnum) ToInt() (int, error) {
	return narrowSigned[int](f.ToInt64(), math.MinInt, math.MaxInt, "int")
}

// ToInt8 returns the value if it fits in an int8.
func (f Fixnum) ToInt8() (int8, error) {
	return narrowSigned[int8](f.ToInt64(), math.MinInt8, math.MaxInt8, "int8")
}

// ToInt16 returns the value if it fits in an int16.
func (f Fixnum) ToInt16() (int16, error) {
	return narrowSigned[int16](f.ToInt64(), math.MinInt16, math.MaxInt16, "int16")
}

// ToInt32 returns the value if it fits in an int32.
func (f Fixnum) ToInt32() (int32, error) {
	return narrowSigned[int32](f.ToInt64(), math.MinInt32, math.MaxInt32, "int32")
}

// ToUint returns the value as a uint.
func (f Fixnum) ToUint() (uint, error) {
	return narrowUnsigned[uint](f.ToInt64(), math.MaxUint, "uint")
}

// ToUint8 returns the value if it is non-negative and fits in a uint8.
func (f Fixnum) ToUint8() (uint8, error) {
	return narrowUnsigned[uint8](f.ToInt64(), math.MaxUint8, "uint8")
}

// ToUint16 returns the value if it is non-negative and fits in a uint16.
func (f Fixnum) ToUint16() (uint16, error) {
	return narrowUnsigned[uint16](f.ToInt64(), math.MaxUint16, "uint16")
}

// ToUint32 returns the value if it is non-negative and fits in a uint32.
func (f Fixnum) ToUint32() (uint32, error) {
	return narrowUnsigned[uint32](f.ToInt64(), math.MaxUint32, "uint32")
}

// ToUint64 returns the value if it is non-negative.
func (f Fixnum) ToUint64() (uint64, error) {
	return narrowUnsigned[uint64](f.ToInt64(), math.MaxUint64, "uint64")
}

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// narrowSigned checks n against the target type's own limits.
func narrowSigned[T signed](n, min, max int64, name string) (T, error) {
	if n > max {
		return 0, rangeErrorf("integer %d too big to convert into '%s'", n, name)
	}
	if n < min {
		return 0, rangeErrorf("integer %d too small to convert into '%s'", n, name)
	}
	return T(n), nil
}

func narrowUnsigned[T unsigned](n int64, max uint64, name string) (T, error) {
	if n < 0 {
		return 0, rangeErrorf("can't convert negative integer to unsigned")
	}
	if uint64(n) > max {
		return 0, rangeErrorf("integer %d too big to convert into '%s'", n, name)
	}
	return T(n), nil
}

// ---------------------------------------------------------------------------
// Integer
// ---------------------------------------------------------------------------

// Integer is a Fixnum or an RBignum.
type Integer struct{ NonZeroValue }

// IntegerFromValue reports whether v is an Integer.
func (r *Ruby) IntegerFromValue(v Value) (Integer, bool) {
	if rbsys.FixnumP(v.raw()) || r.headerType(v) == rbsys.TBignum {
		return Integer{NonZeroValue{v}}, true
	}
	return Integer{}, false
}

// IntegerFromI64 returns n as an Integer, a Fixnum when it fits.
func (r *Ruby) IntegerFromI64(n int64) Integer {
	return Integer{NonZeroValue{Value(r.vm.Int2Inum(n))}}
}

// IntegerFromU64 returns n as an Integer, a Fixnum when it fits.
func (r *Ruby) IntegerFromU64(n uint64) Integer {
	return Integer{NonZeroValue{Value(r.vm.Uint2Inum(n))}}
}

// IntegerFromBig returns b as an Integer, a Fixnum when it fits.
func (r *Ruby) IntegerFromBig(b *big.Int) Integer {
	return Integer{NonZeroValue{Value(r.vm.BigNorm(b))}}
}

// Fixnum returns i as a Fixnum if it is one.
func (i Integer) Fixnum() (Fixnum, bool) { return FixnumFromValue(i.Value) }

// Big returns the value as a new big.Int.
func (i Integer) Big(r *Ruby) *big.Int { return r.vm.BigValue(i.raw()) }

// ToInt64 returns the value if it fits in an int64.
func (i Integer) ToInt64(r *Ruby) (int64, error) {
	if f, ok := i.Fixnum(); ok {
		return f.ToInt64(), nil
	}
	return RBignum{i.NonZeroValue}.ToInt64(r)
}

// ToUint64 returns the value if it is non-negative and fits in a uint64.
func (i Integer) ToUint64(r *Ruby) (uint64, error) {
	if f, ok := i.Fixnum(); ok {
		return f.ToUint64()
	}
	return RBignum{i.NonZeroValue}.ToUint64(r)
}

// ---------------------------------------------------------------------------
// Conversions shared with TryConvert
// ---------------------------------------------------------------------------

// toInt64 converts any Integer-like value. Floats truncate; other objects
// go through to_int.
func (r *Ruby) toInt64(v Value) (int64, error) {
	if f, ok := FixnumFromValue(v); ok {
		return f.ToInt64(), nil
	}
	if r.headerType(v) == rbsys.TBignum {
		return RBignum{NonZeroValue{v}}.ToInt64(r)
	}
	var n int64
	_, err := r.protect(func() Value {
		n = r.vm.Num2Long(v.raw())
		return Nil
	})
	return n, err
}

func (r *Ruby) toUint64(v Value) (uint64, error) {
	if f, ok := FixnumFromValue(v); ok {
		return f.ToUint64()
	}
	if r.headerType(v) == rbsys.TBignum {
		return RBignum{NonZeroValue{v}}.ToUint64(r)
	}
	n, err := r.toInt64(v)
	if err != nil {
		return 0, err
	}
	return narrowUnsigned[uint64](n, math.MaxUint64, "uint64")
}
