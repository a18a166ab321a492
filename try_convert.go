package garnet

import (
	"errors"
	"math/big"
	"reflect"
	"time"

	"github.com/chazu/garnet/rbsys"
)

// TryConverter is implemented by pointer receivers of Go types that decode
// themselves from a Value. It takes precedence over the built-in rules.
type TryConverter interface {
	TryConvertValue(r *Ruby, v Value) error
}

// TryConvert converts v to T.
//
// Integers of every width go through the fixnum extractors, bignums through
// big.Int bounds. Floats accept Integer, Float and Rational. bool is
// truthiness. string uses to_str. Slices, arrays and maps accept Arrays and
// Hashes, falling back to to_ary and to_hash. A nil Value converts to a nil
// pointer; any other value to a pointer to its conversion. Pointers to
// types bound with DefineDataClass return the wrapped data.
func TryConvert[T any](r *Ruby, v Value) (T, error) {
	var out T
	switch p := any(&out).(type) {
	case *Value:
		*p = v
		return out, nil
	case TryConverter:
		err := p.TryConvertValue(r, v)
		return out, err
	}
	rv, err := r.convert(v, reflect.TypeFor[T]())
	if err != nil {
		return out, err
	}
	reflect.ValueOf(&out).Elem().Set(rv)
	return out, nil
}

var (
	valueType        = reflect.TypeFor[Value]()
	tryConverterType = reflect.TypeFor[TryConverter]()
	bigIntType       = reflect.TypeFor[*big.Int]()
	bigRatType       = reflect.TypeFor[*big.Rat]()
	durationType     = reflect.TypeFor[time.Duration]()
)

type wrapperConv struct {
	target string
	from   func(r *Ruby, v Value) (any, bool)
}

func wrapper[T any](target string, from func(r *Ruby, v Value) (T, bool)) wrapperConv {
	return wrapperConv{target: target, from: func(r *Ruby, v Value) (any, bool) { return from(r, v) }}
}

func immediate[T any](from func(v Value) (T, bool)) func(*Ruby, Value) (T, bool) {
	return func(_ *Ruby, v Value) (T, bool) { return from(v) }
}

// wrappers maps every wrapper type to its checked constructor. Containers
// are handled separately so they can use implicit conversion.
var wrappers = map[reflect.Type]wrapperConv{
	reflect.TypeFor[QNil]():           wrapper("nil", immediate(QNilFromValue)),
	reflect.TypeFor[QTrue]():          wrapper("true", immediate(QTrueFromValue)),
	reflect.TypeFor[QFalse]():         wrapper("false", immediate(QFalseFromValue)),
	reflect.TypeFor[QUndef]():         wrapper("undef", immediate(QUndefFromValue)),
	reflect.TypeFor[Fixnum]():         wrapper("Fixnum", immediate(FixnumFromValue)),
	reflect.TypeFor[Flonum]():         wrapper("Flonum", immediate(FlonumFromValue)),
	reflect.TypeFor[StaticSymbol]():   wrapper("Symbol", immediate(StaticSymbolFromValue)),
	reflect.TypeFor[Integer]():        wrapper("Integer", (*Ruby).integerFromValue),
	reflect.TypeFor[RBignum]():        wrapper("Bignum", RBignumFromValue),
	reflect.TypeFor[RFloat]():         wrapper("Float", RFloatFromValue),
	reflect.TypeFor[Float]():          wrapper("Float", FloatFromValue),
	reflect.TypeFor[RStruct]():        wrapper("Struct", RStructFromValue),
	reflect.TypeFor[RComplex]():       wrapper("Complex", RComplexFromValue),
	reflect.TypeFor[RRational]():      wrapper("Rational", RRationalFromValue),
	reflect.TypeFor[RRegexp]():        wrapper("Regexp", RRegexpFromValue),
	reflect.TypeFor[RMatch]():         wrapper("MatchData", RMatchFromValue),
	reflect.TypeFor[RObject]():        wrapper("Object", RObjectFromValue),
	reflect.TypeFor[RTypedData]():     wrapper("Data", RTypedDataFromValue),
	reflect.TypeFor[RModule]():        wrapper("Module", RModuleFromValue),
	reflect.TypeFor[RClass]():         wrapper("Class", RClassFromValue),
	reflect.TypeFor[Exception]():      wrapper("Exception", ExceptionFromValue),
	reflect.TypeFor[ExceptionClass](): wrapper("Class", ExceptionClassFromValue),
	reflect.TypeFor[Proc]():           wrapper("Proc", ProcFromValue),
	reflect.TypeFor[Enumerator]():     wrapper("Enumerator", EnumeratorFromValue),
}

func (r *Ruby) integerFromValue(v Value) (Integer, bool) { return r.IntegerFromValue(v) }

func (r *Ruby) noImplicit(v Value, target string) *Error {
	return typeErrorf("no implicit conversion of %s into %s", r.implicitName(v), target)
}

// convert is the reflective core of TryConvert.
func (r *Ruby) convert(v Value, t reflect.Type) (reflect.Value, error) {
	if t == valueType {
		return reflect.ValueOf(v), nil
	}
	if t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(tryConverterType) {
		p := reflect.New(t)
		if err := p.Interface().(TryConverter).TryConvertValue(r, v); err != nil {
			return reflect.Value{}, err
		}
		return p.Elem(), nil
	}
	if w, ok := wrappers[t]; ok {
		x, ok := w.from(r, v)
		if !ok {
			return reflect.Value{}, r.noImplicit(v, w.target)
		}
		return reflect.ValueOf(x), nil
	}

	switch t {
	case reflect.TypeFor[RString]():
		s, err := r.toRString(v)
		return reflect.ValueOf(s), err
	case reflect.TypeFor[RArray]():
		a, err := r.toRArray(v)
		return reflect.ValueOf(a), err
	case reflect.TypeFor[RHash]():
		h, err := r.toRHash(v)
		return reflect.ValueOf(h), err
	case bigIntType:
		if v.IsNil() {
			return reflect.Zero(t), nil
		}
		i, ok := r.IntegerFromValue(v)
		if !ok {
			return reflect.Value{}, r.noImplicit(v, "Integer")
		}
		return reflect.ValueOf(i.Big(r)), nil
	case bigRatType:
		return r.convertRat(v)
	case durationType:
		f, err := r.toF64(v)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(time.Duration(f * float64(time.Second))), nil
	}
	if bt, ok := r.types[t]; ok {
		if v.IsNil() {
			return reflect.Zero(t), nil
		}
		data, ok := r.vm.CheckTypedData(v.raw(), bt.dt)
		if !ok {
			return reflect.Value{}, r.noImplicit(v, bt.dt.Name)
		}
		return reflect.ValueOf(data), nil
	}

	switch t.Kind() {
	case reflect.Bool:
		return reflect.ValueOf(v.ToBool()).Convert(t), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := r.toInt64(v)
		if err != nil {
			return reflect.Value{}, err
		}
		out := reflect.New(t).Elem()
		if out.OverflowInt(n) {
			if n < 0 {
				return reflect.Value{}, rangeErrorf("integer %d too small to convert into '%s'", n, t)
			}
			return reflect.Value{}, rangeErrorf("integer %d too big to convert into '%s'", n, t)
		}
		out.SetInt(n)
		return out, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := r.toUint64(v)
		if err != nil {
			return reflect.Value{}, err
		}
		out := reflect.New(t).Elem()
		if out.OverflowUint(n) {
			return reflect.Value{}, rangeErrorf("integer %d too big to convert into '%s'", n, t)
		}
		out.SetUint(n)
		return out, nil
	case reflect.Float32, reflect.Float64:
		f, err := r.toF64(v)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(f).Convert(t), nil
	case reflect.Complex64, reflect.Complex128:
		c, err := r.toComplex(v)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(c).Convert(t), nil
	case reflect.String:
		s, err := r.toRString(v)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(s.string(r)).Convert(t), nil
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			s, err := r.toRString(v)
			if err != nil {
				return reflect.Value{}, err
			}
			return reflect.ValueOf(s.Bytes(r)).Convert(t), nil
		}
		a, err := r.toRArray(v)
		if err != nil {
			return reflect.Value{}, err
		}
		elems := a.Slice(r)
		out := reflect.MakeSlice(t, len(elems), len(elems))
		for i, e := range elems {
			ev, err := r.convert(e, t.Elem())
			if err != nil {
				return reflect.Value{}, err
			}
			out.Index(i).Set(ev)
		}
		return out, nil
	case reflect.Array:
		a, err := r.toRArray(v)
		if err != nil {
			return reflect.Value{}, err
		}
		elems := a.Slice(r)
		if len(elems) != t.Len() {
			return reflect.Value{}, typeErrorf("expected Array of length %d, got %d", t.Len(), len(elems))
		}
		out := reflect.New(t).Elem()
		for i, e := range elems {
			ev, err := r.convert(e, t.Elem())
			if err != nil {
				return reflect.Value{}, err
			}
			out.Index(i).Set(ev)
		}
		return out, nil
	case reflect.Map:
		h, err := r.toRHash(v)
		if err != nil {
			return reflect.Value{}, err
		}
		out := reflect.MakeMapWithSize(t, h.Len(r))
		for _, kv := range h.pairs(r) {
			kr, err := r.convert(kv[0], t.Key())
			if err != nil {
				return reflect.Value{}, err
			}
			vr, err := r.convert(kv[1], t.Elem())
			if err != nil {
				return reflect.Value{}, err
			}
			out.SetMapIndex(kr, vr)
		}
		return out, nil
	case reflect.Pointer:
		if v.IsNil() {
			return reflect.Zero(t), nil
		}
		if p, ok := r.GoObjectPayload(v); ok && reflect.TypeOf(p) == t {
			return reflect.ValueOf(p), nil
		}
		ev, err := r.convert(v, t.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		p := reflect.New(t.Elem())
		p.Elem().Set(ev)
		return p, nil
	case reflect.Interface:
		if p, ok := r.GoObjectPayload(v); ok && p != nil && reflect.TypeOf(p).Implements(t) {
			return reflect.ValueOf(p).Convert(t), nil
		}
		if valueType.Implements(t) {
			return reflect.ValueOf(v).Convert(t), nil
		}
	case reflect.Struct:
		if p, ok := r.GoObjectPayload(v); ok && reflect.TypeOf(p) == t {
			return reflect.ValueOf(p), nil
		}
	}
	return reflect.Value{}, r.noImplicit(v, t.String())
}

func (r *Ruby) convertRat(v Value) (reflect.Value, error) {
	if v.IsNil() {
		return reflect.Zero(bigRatType), nil
	}
	if q, ok := RRationalFromValue(r, v); ok {
		return reflect.ValueOf(q.Rat(r)), nil
	}
	if i, ok := r.IntegerFromValue(v); ok {
		return reflect.ValueOf(new(big.Rat).SetInt(i.Big(r))), nil
	}
	if f, ok := FloatFromValue(r, v); ok {
		q, err := f.Rationalize(r)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(q.Rat(r)), nil
	}
	return reflect.Value{}, r.noImplicit(v, "Rational")
}

func (r *Ruby) toComplex(v Value) (complex128, error) {
	if c, ok := RComplexFromValue(r, v); ok {
		return c.Complex128(r)
	}
	f, err := r.toF64(v)
	if err != nil {
		return 0, err
	}
	return complex(f, 0), nil
}

// implicit runs one of the runtime's implicit conversions (to_str, to_ary,
// to_hash) inside a protected call.
func (r *Ruby) implicit(v Value, t rbsys.ValueType, target, method string) (Value, error) {
	if r.Classify(v) == t {
		return v, nil
	}
	return r.protect(func() Value {
		return Value(r.vm.ConvertType(v.raw(), t, target, method))
	})
}

// argumentError rewrites a conversion failure of a method argument to name
// its position. Range errors keep their own message.
func (r *Ruby) argumentError(err error, pos int, t reflect.Type, v Value) error {
	if !errors.Is(err, ErrConversion) {
		return err
	}
	return typeErrorf("argument %d: expected %s, got %s", pos, t, r.implicitName(v))
}
