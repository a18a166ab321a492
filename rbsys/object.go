package rbsys

import (
	"math/big"
	"regexp"
)

// Object is anything that can live in a heap slot. Every object starts
// with an RBasic header.
type Object interface {
	basic() *RBasic
}

// RBasic is the common object header: type tag plus flag bits, and the
// object's class.
type RBasic struct {
	Flags uint64
	Klass VALUE
}

func (b *RBasic) basic() *RBasic { return b }

// Type returns the builtin type tag stored in the flags.
func (b *RBasic) Type() ValueType {
	return ValueType(b.Flags & uint64(TMask))
}

func header(t ValueType, klass VALUE) RBasic {
	return RBasic{Flags: uint64(t), Klass: klass}
}

// RObject is a plain instance with instance variables.
type RObject struct {
	RBasic
	Ivars  []VALUE
	ivarID []ID
}

func (o *RObject) ivarIndex(id ID) int {
	for i, k := range o.ivarID {
		if k == id {
			return i
		}
	}
	return -1
}

// RString holds a byte string. Encodings are not modelled.
type RString struct {
	RBasic
	Bytes []byte
}

// RArray is a growable vector of values.
type RArray struct {
	RBasic
	Elems []VALUE
}

// RFloat is a float that did not fit the immediate encoding.
type RFloat struct {
	RBasic
	Value float64
}

// RBignum is an integer outside the fixnum range.
type RBignum struct {
	RBasic
	Value *big.Int
}

// RStruct is an instance of a Struct-generated class.
type RStruct struct {
	RBasic
	Fields []VALUE
}

// RRegexp is a compiled pattern.
type RRegexp struct {
	RBasic
	Source  string
	Options int
	re      *regexp.Regexp
}

// RMatch is the result of a successful regexp match.
type RMatch struct {
	RBasic
	Regexp  VALUE
	Str     VALUE
	Offsets []int
}

// RComplex is a complex number with Integer, Rational or Float parts.
type RComplex struct {
	RBasic
	Real VALUE
	Imag VALUE
}

// RRational is a normalized fraction of two Integers.
type RRational struct {
	RBasic
	Num VALUE
	Den VALUE
}

// RTypedData wraps host data described by a DataType.
type RTypedData struct {
	RBasic
	Type *DataType
	Data any
}

// RMoved is left behind in a slot whose object was relocated by
// compaction. It is reclaimed by the next sweep.
type RMoved struct {
	RBasic
	Dest VALUE
}

// Method visibility is not modelled; every method is public.
type methodTable map[ID]*Method

// RClass is a class, module, singleton class or metaclass.
type RClass struct {
	RBasic
	Name     string
	Super    VALUE
	Includes []VALUE
	Methods  methodTable
	Consts   map[ID]VALUE
	Ivars    map[ID]VALUE
	Alloc    func(klass VALUE) VALUE
	attached VALUE
	members  []ID
	isModule bool
	noAlloc  bool
}
