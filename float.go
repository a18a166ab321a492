package garnet

import (
	"github.com/chazu/garnet/rbsys"
)

// Flonum is an immediate float. Only 64-bit words have flonums.
type Flonum struct{ NonZeroValue }

// FlonumFromValue reports whether v is a flonum.
func FlonumFromValue(v Value) (Flonum, bool) {
	if !rbsys.FlonumP(v.raw()) {
		return Flonum{}, false
	}
	return Flonum{NonZeroValue{v}}, true
}

// FlonumFromF64 encodes f as a Flonum when the encoding round-trips
// exactly. Otherwise ok is false and the returned RFloat holds f.
func (r *Ruby) FlonumFromF64(f float64) (fl Flonum, heap RFloat, ok bool) {
	if v, ok := rbsys.Dbl2Flonum(f); ok {
		return Flonum{NonZeroValue{Value(v)}}, RFloat{}, true
	}
	return Flonum{}, RFloat{NonZeroValue{Value(r.vm.FloatNewInHeap(f))}}, false
}

// ToF64 returns the value.
func (f Flonum) ToF64() float64 { return rbsys.Flonum2Dbl(f.raw()) }

// RFloat is a float that did not fit the immediate encoding.
type RFloat struct{ NonZeroValue }

// RFloatFromValue reports whether v is a heap float.
func RFloatFromValue(r *Ruby, v Value) (RFloat, bool) {
	if r.headerType(v) != rbsys.TFloat {
		return RFloat{}, false
	}
	return RFloat{NonZeroValue{v}}, true
}

// ToF64 returns the value.
func (f RFloat) ToF64(r *Ruby) float64 { return r.vm.RFloat(f.raw()).Value }

// Float is a Flonum or an RFloat.
type Float struct{ NonZeroValue }

// FloatFromValue reports whether v is a Float of either kind.
func FloatFromValue(r *Ruby, v Value) (Float, bool) {
	if rbsys.FlonumP(v.raw()) || r.headerType(v) == rbsys.TFloat {
		return Float{NonZeroValue{v}}, true
	}
	return Float{}, false
}

// NewFloat returns f as a Float, immediate when it can be.
func (r *Ruby) NewFloat(f float64) Float {
	return Float{NonZeroValue{Value(r.vm.FloatNew(f))}}
}

// ToF64 returns the value.
func (f Float) ToF64(r *Ruby) float64 { return r.vm.FloatValue(f.raw()) }

// Rationalize returns the simplest Rational that rounds to f. Infinity and
// NaN are FloatDomainErrors.
func (f Float) Rationalize(r *Ruby) (RRational, error) {
	v, err := r.protect(func() Value {
		return Value(r.vm.FloatRationalize(f.ToF64(r)))
	})
	if err != nil {
		return RRational{}, err
	}
	return RRational{NonZeroValue{v}}, nil
}

// toF64 accepts Integer, Float and Rational values, and objects with
// to_f. nil and String are TypeErrors.
func (r *Ruby) toF64(v Value) (float64, error) {
	if fl, ok := FlonumFromValue(v); ok {
		return fl.ToF64(), nil
	}
	var d float64
	_, err := r.protect(func() Value {
		d = r.vm.Num2Dbl(v.raw())
		return Nil
	})
	return d, err
}
