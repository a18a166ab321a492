package rbsys

import (
	"math"
	"math/bits"
)

// VALUE is the runtime's universal object handle.
//
// A VALUE is a single word whose bit pattern alone says whether it is an
// immediate (nil, true, false, undef, fixnum, static symbol, flonum) or a
// reference to a heap slot.
//
// Encoding scheme (low bits):
//   - Qfalse:  0x00
//   - Qnil:    0x08
//   - Qtrue:   0x14
//   - Qundef:  0x34
//   - Fixnum:  xxxx xxx1  (n<<1 | 1)
//   - Flonum:  xxxx xx10  (64-bit words only)
//   - Symbol:  xxxx 1100  (id<<8 | 0x0c)
//   - Heap:    xxxx 0000  (16-aligned slot address, never 0 or 8)
type VALUE uint64

// ID is an interned method, constant or symbol name.
type ID uint64

// Special constants
const (
	Qfalse VALUE = 0x00
	Qnil   VALUE = 0x08
	Qtrue  VALUE = 0x14
	Qundef VALUE = 0x34

	ImmediateMask VALUE = 0x07
	FixnumFlag    VALUE = 0x01
	FlonumMask    VALUE = 0x03
	FlonumFlag    VALUE = 0x02
	SymbolFlag    VALUE = 0x0c
	SpecialShift        = 8

	flonumZero VALUE = 0x8000000000000002
)

// UseFlonum reports whether floats can be encoded as immediates. Only
// 64-bit words have room for the rotated exponent.
const UseFlonum = bits.UintSize == 64

// Fixnum range is one bit narrower than the platform word, signed.
const (
	FixnumMax int64 = math.MaxInt >> 1
	FixnumMin int64 = math.MinInt >> 1
)

// ValueType is the builtin type tag stored in the low bits of a heap
// object's flags, or derived from an immediate's bit pattern.
type ValueType uint32

const (
	TNone     ValueType = 0x00
	TObject   ValueType = 0x01
	TClass    ValueType = 0x02
	TModule   ValueType = 0x03
	TFloat    ValueType = 0x04
	TString   ValueType = 0x05
	TRegexp   ValueType = 0x06
	TArray    ValueType = 0x07
	THash     ValueType = 0x08
	TStruct   ValueType = 0x09
	TBignum   ValueType = 0x0a
	TFile     ValueType = 0x0b
	TData     ValueType = 0x0c
	TMatch    ValueType = 0x0d
	TComplex  ValueType = 0x0e
	TRational ValueType = 0x0f
	TNil      ValueType = 0x11
	TTrue     ValueType = 0x12
	TFalse    ValueType = 0x13
	TSymbol   ValueType = 0x14
	TFixnum   ValueType = 0x15
	TUndef    ValueType = 0x16
	TIMemo    ValueType = 0x1a
	TNode     ValueType = 0x1b
	TIClass   ValueType = 0x1c
	TZombie   ValueType = 0x1d
	TMoved    ValueType = 0x1e

	TMask ValueType = 0x1f
)

var typeNames = map[ValueType]string{
	TNone:     "T_NONE",
	TObject:   "T_OBJECT",
	TClass:    "T_CLASS",
	TModule:   "T_MODULE",
	TFloat:    "T_FLOAT",
	TString:   "T_STRING",
	TRegexp:   "T_REGEXP",
	TArray:    "T_ARRAY",
	THash:     "T_HASH",
	TStruct:   "T_STRUCT",
	TBignum:   "T_BIGNUM",
	TFile:     "T_FILE",
	TData:     "T_DATA",
	TMatch:    "T_MATCH",
	TComplex:  "T_COMPLEX",
	TRational: "T_RATIONAL",
	TNil:      "T_NIL",
	TTrue:     "T_TRUE",
	TFalse:    "T_FALSE",
	TSymbol:   "T_SYMBOL",
	TFixnum:   "T_FIXNUM",
	TUndef:    "T_UNDEF",
	TIMemo:    "T_IMEMO",
	TNode:     "T_NODE",
	TIClass:   "T_ICLASS",
	TZombie:   "T_ZOMBIE",
	TMoved:    "T_MOVED",
}

func (t ValueType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "T_UNKNOWN"
}

// Object flags above the type tag.
const (
	FlFreeze    uint64 = 1 << 11
	FlMark      uint64 = 1 << 12
	FlPinned    uint64 = 1 << 13
	FlSingleton uint64 = 1 << 14
)

// Tag is the completion code of a protected call. Zero means the call
// returned normally.
type Tag int

const (
	TagNone   Tag = 0x0
	TagReturn Tag = 0x1
	TagBreak  Tag = 0x2
	TagNext   Tag = 0x3
	TagRetry  Tag = 0x4
	TagRedo   Tag = 0x5
	TagRaise  Tag = 0x6
	TagThrow  Tag = 0x7
	TagFatal  Tag = 0x8
)

func (t Tag) String() string {
	switch t {
	case TagNone:
		return "none"
	case TagReturn:
		return "return"
	case TagBreak:
		return "break"
	case TagNext:
		return "next"
	case TagRetry:
		return "retry"
	case TagRedo:
		return "redo"
	case TagRaise:
		return "raise"
	case TagThrow:
		return "throw"
	case TagFatal:
		return "fatal"
	}
	return "unknown"
}

// Method arity codes for the variadic native shapes.
const (
	ArityCArgs = -1
	ArityAry   = -2
	MaxArity   = 16
)
