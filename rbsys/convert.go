package rbsys

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/zeebo/xxh3"
)

// implicitName is how conversion errors describe a value: the literal for
// nil, true and false, the class name otherwise.
func (vm *VM) implicitName(v VALUE) string {
	switch v {
	case Qnil:
		return "nil"
	case Qtrue:
		return "true"
	case Qfalse:
		return "false"
	}
	return vm.ObjClassName(v)
}

// CheckConvertType returns v if its type is t, otherwise the result of the
// implicit conversion method when v responds to it, otherwise nil. A
// conversion method returning the wrong type raises TypeError.
func (vm *VM) CheckConvertType(v VALUE, t ValueType, tname, method string) VALUE {
	if vm.typeOf(v) == t {
		return v
	}
	mid := vm.Intern(method)
	if !vm.RespondTo(v, mid) {
		return Qnil
	}
	r := vm.Funcall(v, mid)
	if r == Qnil {
		return Qnil
	}
	if vm.typeOf(r) != t {
		vm.Raisef(vm.ETypeError, "can't convert %s to %s (%s#%s gives %s)",
			vm.ObjClassName(v), tname, vm.ObjClassName(v), method, vm.ObjClassName(r))
	}
	return r
}

// ConvertType is CheckConvertType that raises TypeError instead of
// returning nil.
func (vm *VM) ConvertType(v VALUE, t ValueType, tname, method string) VALUE {
	r := vm.CheckConvertType(v, t, tname, method)
	if r == Qnil {
		vm.Raisef(vm.ETypeError, "no implicit conversion of %s into %s", vm.implicitName(v), tname)
	}
	return r
}

func (vm *VM) toInteger(v VALUE) VALUE {
	mid := vm.Intern("to_int")
	if !vm.RespondTo(v, mid) {
		vm.Raisef(vm.ETypeError, "no implicit conversion of %s into Integer", vm.implicitName(v))
	}
	r := vm.Funcall(v, mid)
	if !vm.IntegerP(r) {
		vm.Raisef(vm.ETypeError, "can't convert %s to Integer (%s#to_int gives %s)",
			vm.ObjClassName(v), vm.ObjClassName(v), vm.ObjClassName(r))
	}
	return r
}

// StringValue converts v to a String with to_str.
func (vm *VM) StringValue(v VALUE) VALUE {
	return vm.ConvertType(v, TString, "String", "to_str")
}

// ObjAsString calls to_s, falling back to the default inspect form when
// to_s does not return a String.
func (vm *VM) ObjAsString(v VALUE) VALUE {
	if vm.typeOf(v) == TString {
		return v
	}
	s := vm.Send(v, "to_s")
	if vm.typeOf(s) != TString {
		return vm.StrNew(vm.anyToS(v))
	}
	return s
}

// AsString returns the Go string of v's to_s.
func (vm *VM) AsString(v VALUE) string {
	return string(vm.RString(vm.ObjAsString(v)).Bytes)
}

// Inspect returns the Go string of v's inspect.
func (vm *VM) Inspect(v VALUE) string {
	if v == Qundef {
		return "undef"
	}
	s := vm.Send(v, "inspect")
	if vm.typeOf(s) != TString {
		return vm.anyToS(v)
	}
	return string(vm.RString(s).Bytes)
}

// ---------------------------------------------------------------------------
// Equality and hashing
// ---------------------------------------------------------------------------

// EqualP is ==.
func (vm *VM) EqualP(a, b VALUE) bool {
	if a == b {
		return true
	}
	return Test(vm.Send(a, "==", b))
}

// EqlP is eql?, the relation Hash keys use. Numeric types never compare
// equal across classes.
func (vm *VM) EqlP(a, b VALUE) bool {
	if a == b {
		return true
	}
	ta, tb := vm.typeOf(a), vm.typeOf(b)
	switch ta {
	case TFixnum, TSymbol, TNil, TTrue, TFalse:
		return false
	case TBignum:
		return tb == TBignum && vm.RBignum(a).Value.Cmp(vm.RBignum(b).Value) == 0
	case TFloat:
		return tb == TFloat && vm.FloatValue(a) == vm.FloatValue(b)
	case TString:
		return tb == TString && bytes.Equal(vm.RString(a).Bytes, vm.RString(b).Bytes)
	case TRational:
		return tb == TRational && vm.RationalValue(a).Cmp(vm.RationalValue(b)) == 0
	case TComplex:
		if tb != TComplex {
			return false
		}
		x, y := vm.RComplex(a), vm.RComplex(b)
		return vm.EqlP(x.Real, y.Real) && vm.EqlP(x.Imag, y.Imag)
	case TArray:
		if tb != TArray {
			return false
		}
		x, y := vm.RArray(a).Elems, vm.RArray(b).Elems
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if !vm.EqlP(x[i], y[i]) {
				return false
			}
		}
		return true
	}
	return Test(vm.Send(a, "eql?", b))
}

// HashOf returns the hash code used for Hash keys. Identity-hashed objects
// hash by address, so compaction rehashes every Hash.
func (vm *VM) HashOf(v VALUE) uint64 {
	var buf [9]byte
	word := func(tag byte, x uint64) uint64 {
		buf[0] = tag
		binary.LittleEndian.PutUint64(buf[1:], x)
		return xxh3.Hash(buf[:])
	}
	switch t := vm.typeOf(v); t {
	case TFixnum, TSymbol, TNil, TTrue, TFalse:
		return word(byte(t), uint64(v))
	case TFloat:
		d := vm.FloatValue(v)
		if d == 0 {
			d = 0
		}
		return word(byte(t), math.Float64bits(d))
	case TBignum:
		b := vm.RBignum(v).Value
		return xxh3.Hash(append([]byte{byte(t), byte(b.Sign() + 1)}, b.Bytes()...))
	case TString:
		return xxh3.Hash(vm.RString(v).Bytes)
	case TRational:
		r := vm.RRational(v)
		return vm.HashOf(r.Num)*31 ^ vm.HashOf(r.Den)
	case TComplex:
		c := vm.RComplex(v)
		return vm.HashOf(c.Real)*31 ^ vm.HashOf(c.Imag) ^ 0x9e3779b97f4a7c15
	case TArray:
		h := uint64(len(vm.RArray(v).Elems))
		for _, e := range vm.RArray(v).Elems {
			h = h*31 ^ vm.HashOf(e)
		}
		return word(byte(t), h)
	case TObject, TData, TStruct, THash, TRegexp, TMatch, TClass, TModule:
		r := vm.Send(v, "hash")
		if FixnumP(r) {
			return word(byte(TObject), uint64(Fix2Long(r)))
		}
		return vm.HashOf(r)
	}
	return word(0, uint64(v))
}

// identityHash is Kernel#hash.
func (vm *VM) identityHash(v VALUE) VALUE {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	return Long2Fix(int64(xxh3.Hash(buf[:]) >> 2))
}
