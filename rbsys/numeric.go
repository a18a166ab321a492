package rbsys

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// ---------------------------------------------------------------------------
// Integers
// ---------------------------------------------------------------------------

// Int2Inum encodes n as a fixnum, or as a bignum when it does not fit.
func (vm *VM) Int2Inum(n int64) VALUE {
	if FixableP(n) {
		return Long2Fix(n)
	}
	return vm.bignumNew(big.NewInt(n))
}

// Uint2Inum encodes n as a fixnum, or as a bignum when it does not fit.
func (vm *VM) Uint2Inum(n uint64) VALUE {
	if PosFixableP(n) {
		return Long2Fix(int64(n))
	}
	return vm.bignumNew(new(big.Int).SetUint64(n))
}

// BigNorm returns the fixnum for b when it fits, otherwise a new bignum.
// b is copied.
func (vm *VM) BigNorm(b *big.Int) VALUE {
	if b.IsInt64() && FixableP(b.Int64()) {
		return Long2Fix(b.Int64())
	}
	return vm.bignumNew(new(big.Int).Set(b))
}

// BignumNew always allocates a heap bignum, even for small values.
func (vm *VM) BignumNew(b *big.Int) VALUE {
	return vm.bignumNew(new(big.Int).Set(b))
}

func (vm *VM) bignumNew(b *big.Int) VALUE {
	v := vm.newObject(&RBignum{RBasic: header(TBignum, vm.CInteger), Value: b})
	return vm.Freeze(v)
}

// IntegerP reports whether v is a fixnum or bignum.
func (vm *VM) IntegerP(v VALUE) bool {
	return FixnumP(v) || vm.BuiltinType(v) == TBignum
}

// BigValue returns v as a big.Int. v must be an Integer.
func (vm *VM) BigValue(v VALUE) *big.Int {
	if FixnumP(v) {
		return big.NewInt(Fix2Long(v))
	}
	return new(big.Int).Set(vm.RBignum(v).Value)
}

// Num2Long converts a numeric value to int64, raising TypeError or
// RangeError.
func (vm *VM) Num2Long(v VALUE) int64 {
	for {
		switch {
		case FixnumP(v):
			return Fix2Long(v)
		case v == Qnil:
			vm.Raisef(vm.ETypeError, "no implicit conversion from nil to integer")
		case v == Qtrue || v == Qfalse:
			vm.Raisef(vm.ETypeError, "no implicit conversion of %s into Integer", vm.Inspect(v))
		}
		switch vm.typeOf(v) {
		case TFloat:
			d := vm.FloatValue(v)
			if d < 9223372036854775808.0 && d >= -9223372036854775808.0 && !math.IsNaN(d) {
				return int64(d)
			}
			vm.Raisef(vm.ERangeError, "float %s out of range of integer", formatFloat(d))
		case TBignum:
			b := vm.RBignum(v).Value
			if b.IsInt64() {
				return b.Int64()
			}
			vm.Raisef(vm.ERangeError, "bignum too big to convert into `long'")
		}
		v = vm.toInteger(v)
	}
}

// Num2ULL converts to uint64. Negative values that fit in int64 wrap, as
// the C API does.
func (vm *VM) Num2ULL(v VALUE) uint64 {
	if vm.typeOf(v) == TBignum {
		b := vm.RBignum(v).Value
		if b.IsUint64() {
			return b.Uint64()
		}
		if b.IsInt64() {
			return uint64(b.Int64())
		}
		vm.Raisef(vm.ERangeError, "bignum out of range of unsigned long long")
	}
	return uint64(vm.Num2Long(v))
}

// Num2Dbl converts an Integer, Float or Rational to float64.
func (vm *VM) Num2Dbl(v VALUE) float64 {
	switch {
	case FixnumP(v):
		return float64(Fix2Long(v))
	case FlonumP(v):
		return Flonum2Dbl(v)
	case v == Qnil || v == Qtrue || v == Qfalse:
		vm.Raisef(vm.ETypeError, "can't convert %s into Float", vm.Inspect(v))
	}
	switch vm.BuiltinType(v) {
	case TFloat:
		return vm.RFloat(v).Value
	case TBignum:
		f, _ := new(big.Float).SetInt(vm.RBignum(v).Value).Float64()
		return f
	case TRational:
		f, _ := vm.RationalValue(v).Float64()
		return f
	case TString:
		vm.Raisef(vm.ETypeError, "no implicit conversion to float from string")
	}
	if !vm.RespondTo(v, vm.Intern("to_f")) {
		vm.Raisef(vm.ETypeError, "can't convert %s into Float", vm.ObjClassName(v))
	}
	f := vm.Send(v, "to_f")
	if vm.typeOf(f) != TFloat {
		vm.Raisef(vm.ETypeError, "can't convert %s to Float (%s#to_f gives %s)",
			vm.ObjClassName(v), vm.ObjClassName(v), vm.ObjClassName(f))
	}
	return vm.FloatValue(f)
}

// typeOf folds immediates into their type tags.
func (vm *VM) typeOf(v VALUE) ValueType {
	switch {
	case v == Qfalse:
		return TFalse
	case v == Qnil:
		return TNil
	case v == Qtrue:
		return TTrue
	case v == Qundef:
		return TUndef
	case FixnumP(v):
		return TFixnum
	case StaticSymP(v):
		return TSymbol
	case FlonumP(v):
		return TFloat
	}
	return vm.BuiltinType(v)
}

// TypeOf returns the type tag of any value, immediate or heap.
func (vm *VM) TypeOf(v VALUE) ValueType { return vm.typeOf(v) }

// ---------------------------------------------------------------------------
// Floats
// ---------------------------------------------------------------------------

// FloatNew encodes d as a flonum when possible, otherwise allocates.
func (vm *VM) FloatNew(d float64) VALUE {
	if v, ok := Dbl2Flonum(d); ok {
		return v
	}
	return vm.FloatNewInHeap(d)
}

// FloatNewInHeap always allocates a heap float.
func (vm *VM) FloatNewInHeap(d float64) VALUE {
	v := vm.newObject(&RFloat{RBasic: header(TFloat, vm.CFloat), Value: d})
	return vm.Freeze(v)
}

// FloatValue decodes a Float, immediate or heap.
func (vm *VM) FloatValue(v VALUE) float64 {
	if FlonumP(v) {
		return Flonum2Dbl(v)
	}
	return vm.RFloat(v).Value
}

func formatFloat(d float64) string {
	switch {
	case math.IsInf(d, 1):
		return "Infinity"
	case math.IsInf(d, -1):
		return "-Infinity"
	case math.IsNaN(d):
		return "NaN"
	}
	if d == 0 {
		if math.Signbit(d) {
			return "-0.0"
		}
		return "0.0"
	}
	if exp := math.Floor(math.Log10(math.Abs(d))); exp < -4 || exp >= 16 {
		s := strconv.FormatFloat(d, 'e', -1, 64)
		mant, rest, _ := strings.Cut(s, "e")
		if !strings.Contains(mant, ".") {
			mant += ".0"
		}
		return mant + "e" + rest
	}
	s := strconv.FormatFloat(d, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FloatRationalize returns the simplest Rational within the float's
// precision.
func (vm *VM) FloatRationalize(d float64) VALUE {
	if math.IsInf(d, 0) || math.IsNaN(d) {
		vm.Raisef(vm.EFloatDomainError, "%s", formatFloat(d))
	}
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(d, 'g', -1, 64))
	if !ok {
		r = new(big.Rat).SetFloat64(d)
	}
	return vm.RationalFromRat(r)
}

// ---------------------------------------------------------------------------
// Rational and Complex
// ---------------------------------------------------------------------------

// RationalNew builds num/den, normalized. Both must be Integers.
func (vm *VM) RationalNew(num, den VALUE) VALUE {
	if !vm.IntegerP(num) || !vm.IntegerP(den) {
		vm.Raisef(vm.ETypeError, "not an integer")
	}
	d := vm.BigValue(den)
	if d.Sign() == 0 {
		vm.Raisef(vm.EZeroDivError, "divided by 0")
	}
	return vm.RationalFromRat(new(big.Rat).SetFrac(vm.BigValue(num), d))
}

// RationalFromRat converts a big.Rat.
func (vm *VM) RationalFromRat(r *big.Rat) VALUE {
	v := vm.newObject(&RRational{
		RBasic: header(TRational, vm.CRational),
		Num:    vm.BigNorm(r.Num()),
		Den:    vm.BigNorm(r.Denom()),
	})
	return vm.Freeze(v)
}

// RationalValue returns a Rational as a big.Rat.
func (vm *VM) RationalValue(v VALUE) *big.Rat {
	r := vm.RRational(v)
	return new(big.Rat).SetFrac(vm.BigValue(r.Num), vm.BigValue(r.Den))
}

// ComplexNew builds real+imag*i. Parts must be real numbers.
func (vm *VM) ComplexNew(real, imag VALUE) VALUE {
	for _, p := range []VALUE{real, imag} {
		switch vm.typeOf(p) {
		case TFixnum, TBignum, TFloat, TRational:
		default:
			vm.Raisef(vm.ETypeError, "not a real")
		}
	}
	v := vm.newObject(&RComplex{RBasic: header(TComplex, vm.CComplex), Real: real, Imag: imag})
	return vm.Freeze(v)
}

// NumToS formats any numeric value the way Integer#to_s and Float#to_s do.
func (vm *VM) NumToS(v VALUE) string {
	switch vm.typeOf(v) {
	case TFixnum:
		return strconv.FormatInt(Fix2Long(v), 10)
	case TBignum:
		return vm.RBignum(v).Value.String()
	case TFloat:
		return formatFloat(vm.FloatValue(v))
	case TRational:
		r := vm.RRational(v)
		return vm.NumToS(r.Num) + "/" + vm.NumToS(r.Den)
	case TComplex:
		c := vm.RComplex(v)
		im := vm.NumToS(c.Imag)
		sign := "+"
		if len(im) > 0 && im[0] == '-' {
			sign, im = "-", im[1:]
		}
		return vm.NumToS(c.Real) + sign + im + "i"
	}
	return vm.AsString(vm.Send(v, "to_s"))
}

// numCmp compares two real numbers. ok is false for incomparable values.
func (vm *VM) numCmp(a, b VALUE) (int, bool) {
	ta, tb := vm.typeOf(a), vm.typeOf(b)
	isInt := func(t ValueType) bool { return t == TFixnum || t == TBignum }
	switch {
	case isInt(ta) && isInt(tb):
		if ta == TFixnum && tb == TFixnum {
			x, y := Fix2Long(a), Fix2Long(b)
			switch {
			case x < y:
				return -1, true
			case x > y:
				return 1, true
			}
			return 0, true
		}
		return vm.BigValue(a).Cmp(vm.BigValue(b)), true
	case (isInt(ta) || ta == TRational) && (isInt(tb) || tb == TRational):
		return vm.toRat(a).Cmp(vm.toRat(b)), true
	case (isInt(ta) || ta == TFloat || ta == TRational) && (isInt(tb) || tb == TFloat || tb == TRational):
		x, y := vm.Num2Dbl(a), vm.Num2Dbl(b)
		switch {
		case math.IsNaN(x) || math.IsNaN(y):
			return 0, false
		case x < y:
			return -1, true
		case x > y:
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func (vm *VM) toRat(v VALUE) *big.Rat {
	if vm.typeOf(v) == TRational {
		return vm.RationalValue(v)
	}
	return new(big.Rat).SetInt(vm.BigValue(v))
}

func (vm *VM) initNumericMethods() {
	for _, c := range []VALUE{vm.CInteger, vm.CFloat, vm.CRational, vm.CComplex} {
		vm.def(c, "to_s", 0, func(self VALUE, _ []VALUE) VALUE { return vm.StrNew(vm.NumToS(self)) })
		vm.def(c, "inspect", 0, func(self VALUE, _ []VALUE) VALUE {
			if vm.typeOf(self) == TRational || vm.typeOf(self) == TComplex {
				return vm.StrNew("(" + vm.NumToS(self) + ")")
			}
			return vm.StrNew(vm.NumToS(self))
		})
		vm.def(c, "hash", 0, func(self VALUE, _ []VALUE) VALUE { return vm.Int2Inum(int64(vm.HashOf(self) >> 2)) })
		vm.def(c, "eql?", 1, func(self VALUE, argv []VALUE) VALUE { return boolValue(vm.EqlP(self, argv[0])) })
	}
	for _, c := range []VALUE{vm.CInteger, vm.CFloat, vm.CRational} {
		vm.def(c, "==", 1, func(self VALUE, argv []VALUE) VALUE {
			n, ok := vm.numCmp(self, argv[0])
			return boolValue(ok && n == 0)
		})
		vm.def(c, "<=>", 1, func(self VALUE, argv []VALUE) VALUE {
			n, ok := vm.numCmp(self, argv[0])
			if !ok {
				return Qnil
			}
			return Long2Fix(int64(n))
		})
		vm.def(c, "to_f", 0, func(self VALUE, _ []VALUE) VALUE { return vm.FloatNew(vm.Num2Dbl(self)) })
		vm.def(c, "zero?", 0, func(self VALUE, _ []VALUE) VALUE {
			n, ok := vm.numCmp(self, Long2Fix(0))
			return boolValue(ok && n == 0)
		})
		vm.def(c, "negative?", 0, func(self VALUE, _ []VALUE) VALUE {
			n, ok := vm.numCmp(self, Long2Fix(0))
			return boolValue(ok && n < 0)
		})
		vm.def(c, "positive?", 0, func(self VALUE, _ []VALUE) VALUE {
			n, ok := vm.numCmp(self, Long2Fix(0))
			return boolValue(ok && n > 0)
		})
	}

	vm.def(vm.CInteger, "to_i", 0, func(self VALUE, _ []VALUE) VALUE { return self })
	vm.def(vm.CInteger, "to_int", 0, func(self VALUE, _ []VALUE) VALUE { return self })
	vm.def(vm.CInteger, "+", 1, func(self VALUE, argv []VALUE) VALUE {
		o := argv[0]
		switch {
		case FixnumP(self) && FixnumP(o):
			return vm.Int2Inum(Fix2Long(self) + Fix2Long(o))
		case vm.IntegerP(o):
			return vm.BigNorm(new(big.Int).Add(vm.BigValue(self), vm.BigValue(o)))
		case vm.typeOf(o) == TFloat:
			return vm.FloatNew(vm.Num2Dbl(self) + vm.FloatValue(o))
		}
		vm.Raisef(vm.ETypeError, "%s can't be coerced into Integer", vm.ObjClassName(o))
		return Qnil
	})
	vm.def(vm.CInteger, "-@", 0, func(self VALUE, _ []VALUE) VALUE {
		return vm.BigNorm(new(big.Int).Neg(vm.BigValue(self)))
	})

	vm.def(vm.CFloat, "to_i", 0, func(self VALUE, _ []VALUE) VALUE {
		d := vm.FloatValue(self)
		if math.IsInf(d, 0) || math.IsNaN(d) {
			vm.Raisef(vm.EFloatDomainError, "%s", formatFloat(d))
		}
		b, _ := big.NewFloat(math.Trunc(d)).Int(nil)
		return vm.BigNorm(b)
	})
	vm.defv(vm.CFloat, "rationalize", func(argc int, argv []VALUE, self VALUE) VALUE {
		vm.checkArity(argc, 0, 1)
		return vm.FloatRationalize(vm.FloatValue(self))
	})
	vm.def(vm.CFloat, "nan?", 0, func(self VALUE, _ []VALUE) VALUE {
		return boolValue(math.IsNaN(vm.FloatValue(self)))
	})

	vm.def(vm.CRational, "numerator", 0, func(self VALUE, _ []VALUE) VALUE { return vm.RRational(self).Num })
	vm.def(vm.CRational, "denominator", 0, func(self VALUE, _ []VALUE) VALUE { return vm.RRational(self).Den })
	vm.def(vm.CInteger, "numerator", 0, func(self VALUE, _ []VALUE) VALUE { return self })
	vm.def(vm.CInteger, "denominator", 0, func(self VALUE, _ []VALUE) VALUE { return Long2Fix(1) })

	vm.def(vm.CComplex, "real", 0, func(self VALUE, _ []VALUE) VALUE { return vm.RComplex(self).Real })
	vm.def(vm.CComplex, "imaginary", 0, func(self VALUE, _ []VALUE) VALUE { return vm.RComplex(self).Imag })
	vm.def(vm.CComplex, "==", 1, func(self VALUE, argv []VALUE) VALUE {
		if vm.typeOf(argv[0]) != TComplex {
			return Qfalse
		}
		a, b := vm.RComplex(self), vm.RComplex(argv[0])
		return boolValue(vm.EqualP(a.Real, b.Real) && vm.EqualP(a.Imag, b.Imag))
	})

	vm.defv(vm.MKernel, "Rational", func(argc int, argv []VALUE, self VALUE) VALUE {
		vm.checkArity(argc, 1, 2)
		den := Long2Fix(1)
		if argc == 2 {
			den = argv[1]
		}
		return vm.RationalNew(argv[0], den)
	})
	vm.defv(vm.MKernel, "Complex", func(argc int, argv []VALUE, self VALUE) VALUE {
		vm.checkArity(argc, 1, 2)
		im := Long2Fix(0)
		if argc == 2 {
			im = argv[1]
		}
		return vm.ComplexNew(argv[0], im)
	})
}
