package garnet

import (
	"math"
	"math/big"

	"github.com/chazu/garnet/rbsys"
)

// RBignum is an integer outside the fixnum range.
type RBignum struct{ NonZeroValue }

// RBignumFromValue reports whether v is a bignum.
func RBignumFromValue(r *Ruby, v Value) (RBignum, bool) {
	if r.headerType(v) != rbsys.TBignum {
		return RBignum{}, false
	}
	return RBignum{NonZeroValue{v}}, true
}

// RBignumFromI64 returns n as a Fixnum when it fits, otherwise as a new
// bignum.
func (r *Ruby) RBignumFromI64(n int64) Integer { return r.IntegerFromI64(n) }

// RBignumFromU64 returns n as a Fixnum when it fits, otherwise as a new
// bignum.
func (r *Ruby) RBignumFromU64(n uint64) Integer { return r.IntegerFromU64(n) }

func (b RBignum) big(r *Ruby) *big.Int { return r.vm.RBignum(b.raw()).Value }

// BigInt returns a copy of the value.
func (b RBignum) BigInt(r *Ruby) *big.Int { return new(big.Int).Set(b.big(r)) }

// IsPositive reports whether b > 0.
func (b RBignum) IsPositive(r *Ruby) bool { return b.big(r).Sign() > 0 }

// IsNegative reports whether b < 0.
func (b RBignum) IsNegative(r *Ruby) bool { return b.big(r).Sign() < 0 }

// ToInt64 returns the value if it fits in an int64.
func (b RBignum) ToInt64(r *Ruby) (int64, error) {
	n := b.big(r)
	if !n.IsInt64() {
		return 0, bigRangeError(n, "int64")
	}
	return n.Int64(), nil
}

// ToUint64 returns the value if it is non-negative and fits in a uint64.
func (b RBignum) ToUint64(r *Ruby) (uint64, error) {
	n := b.big(r)
	if n.Sign() < 0 {
		return 0, rangeErrorf("can't convert negative integer to unsigned")
	}
	if !n.IsUint64() {
		return 0, bigRangeError(n, "uint64")
	}
	return n.Uint64(), nil
}

// ToInt32 returns the value if it fits in an int32. A bignum never does
// on 64-bit words.
func (b RBignum) ToInt32(r *Ruby) (int32, error) {
	n, err := b.ToInt64(r)
	if err != nil {
		return 0, err
	}
	return narrowSigned[int32](n, math.MinInt32, math.MaxInt32, "int32")
}

// ToUint32 returns the value if it is non-negative and fits in a uint32.
func (b RBignum) ToUint32(r *Ruby) (uint32, error) {
	n, err := b.ToUint64(r)
	if err != nil {
		return 0, err
	}
	if n > math.MaxUint32 {
		return 0, rangeErrorf("integer %d too big to convert into '%s'", n, "uint32")
	}
	return uint32(n), nil
}

func bigRangeError(n *big.Int, name string) *Error {
	if n.Sign() < 0 {
		return rangeErrorf("integer %s too small to convert into '%s'", n, name)
	}
	return rangeErrorf("integer %s too big to convert into '%s'", n, name)
}
