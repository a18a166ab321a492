package garnet

import (
	"math/big"

	"github.com/chazu/garnet/rbsys"
)

// RRational is a normalized fraction of two Integers.
type RRational struct{ NonZeroValue }

// RRationalFromValue reports whether v is a Rational.
func RRationalFromValue(r *Ruby, v Value) (RRational, bool) {
	if r.headerType(v) != rbsys.TRational {
		return RRational{}, false
	}
	return RRational{NonZeroValue{v}}, true
}

// NewRational builds num/den. Both must convert to Integers; a zero
// denominator is a ZeroDivisionError.
func (r *Ruby) NewRational(num, den any) (RRational, error) {
	n, d := r.IntoValue(num), r.IntoValue(den)
	v, err := r.protect(func() Value {
		return Value(r.vm.RationalNew(n.raw(), d.raw()))
	})
	if err != nil {
		return RRational{}, err
	}
	return RRational{NonZeroValue{v}}, nil
}

// RationalFromRat converts a big.Rat.
func (r *Ruby) RationalFromRat(q *big.Rat) RRational {
	return RRational{NonZeroValue{Value(r.vm.RationalFromRat(q))}}
}

// Numerator returns the numerator.
func (q RRational) Numerator(r *Ruby) Integer {
	return Integer{NonZeroValue{Value(r.vm.RRational(q.raw()).Num)}}
}

// Denominator returns the denominator. It is always positive.
func (q RRational) Denominator(r *Ruby) Integer {
	return Integer{NonZeroValue{Value(r.vm.RRational(q.raw()).Den)}}
}

// Rat returns the value as a new big.Rat.
func (q RRational) Rat(r *Ruby) *big.Rat { return r.vm.RationalValue(q.raw()) }

// RComplex is a complex number with real parts of any numeric kind.
type RComplex struct{ NonZeroValue }

// RComplexFromValue reports whether v is a Complex.
func RComplexFromValue(r *Ruby, v Value) (RComplex, bool) {
	if r.headerType(v) != rbsys.TComplex {
		return RComplex{}, false
	}
	return RComplex{NonZeroValue{v}}, true
}

// NewComplex builds re+im*i. Both parts must be real numbers.
func (r *Ruby) NewComplex(re, im any) (RComplex, error) {
	a, b := r.IntoValue(re), r.IntoValue(im)
	v, err := r.protect(func() Value {
		return Value(r.vm.ComplexNew(a.raw(), b.raw()))
	})
	if err != nil {
		return RComplex{}, err
	}
	return RComplex{NonZeroValue{v}}, nil
}

// Real returns the real part.
func (c RComplex) Real(r *Ruby) Value { return Value(r.vm.RComplex(c.raw()).Real) }

// Imag returns the imaginary part.
func (c RComplex) Imag(r *Ruby) Value { return Value(r.vm.RComplex(c.raw()).Imag) }

// Complex128 converts both parts to float64.
func (c RComplex) Complex128(r *Ruby) (complex128, error) {
	re, err := r.toF64(c.Real(r))
	if err != nil {
		return 0, err
	}
	im, err := r.toF64(c.Imag(r))
	if err != nil {
		return 0, err
	}
	return complex(re, im), nil
}
