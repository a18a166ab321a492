package garnet

import (
	"cmp"
	"fmt"
	"math/big"
	"reflect"
	"slices"
	"time"

	"github.com/chazu/garnet/rbsys"
)

// IntoValue is implemented by Go types that know their runtime encoding.
type IntoValue interface {
	IntoValue(r *Ruby) Value
}

// IntoValue converts a Go value. It never fails: values with no natural
// encoding become opaque Garnet::GoObject instances.
//
//   - nil and nil pointers, slices and maps become nil
//   - bool becomes true or false
//   - integers of every width become Integers, bignums when they do not fit
//   - floats become Floats, immediate when the encoding allows
//   - string and []byte become Strings
//   - *big.Int, *big.Rat and complex numbers become Integer, Rational and
//     Complex
//   - time.Duration becomes Float seconds
//   - slices and arrays become Arrays, maps become Hashes
//   - pointers to types bound with DefineDataClass are wrapped
func (r *Ruby) IntoValue(x any) Value {
	switch x := x.(type) {
	case nil:
		return Nil
	case Value:
		return x
	case IntoValue:
		return x.IntoValue(r)
	case ReprValue:
		return x.AsValue()
	case bool:
		return BoolValue(x)
	case int:
		return Value(r.vm.Int2Inum(int64(x)))
	case int8:
		return Value(rbsys.Long2Fix(int64(x)))
	case int16:
		return Value(rbsys.Long2Fix(int64(x)))
	case int32:
		return Value(rbsys.Long2Fix(int64(x)))
	case int64:
		return Value(r.vm.Int2Inum(x))
	case uint:
		return Value(r.vm.Uint2Inum(uint64(x)))
	case uint8:
		return Value(rbsys.Long2Fix(int64(x)))
	case uint16:
		return Value(rbsys.Long2Fix(int64(x)))
	case uint32:
		return Value(r.vm.Uint2Inum(uint64(x)))
	case uint64:
		return Value(r.vm.Uint2Inum(x))
	case uintptr:
		return Value(r.vm.Uint2Inum(uint64(x)))
	case float32:
		return Value(r.vm.FloatNew(float64(x)))
	case float64:
		return Value(r.vm.FloatNew(x))
	case string:
		return Value(r.vm.StrNew(x))
	case []byte:
		if x == nil {
			return Nil
		}
		return Value(r.vm.StrNewBytes(x))
	case *big.Int:
		if x == nil {
			return Nil
		}
		return Value(r.vm.BigNorm(x))
	case *big.Rat:
		if x == nil {
			return Nil
		}
		return Value(r.vm.RationalFromRat(x))
	case complex128:
		return Value(r.vm.ComplexNew(r.vm.FloatNew(real(x)), r.vm.FloatNew(imag(x))))
	case complex64:
		return r.IntoValue(complex128(x))
	case time.Duration:
		return Value(r.vm.FloatNew(x.Seconds()))
	case []Value:
		return Value(r.vm.AryNewFrom(rawValues(x)...))
	}
	return r.intoReflect(reflect.ValueOf(x))
}

func (r *Ruby) intoValues(args []any) []Value {
	out := make([]Value, len(args))
	for i, a := range args {
		out[i] = r.IntoValue(a)
	}
	return out
}

func (r *Ruby) intoReflect(rv reflect.Value) Value {
	t := rv.Type()
	if bt, ok := r.types[t]; ok {
		if rv.IsNil() {
			return Nil
		}
		return Value(r.vm.TypedDataWrap(bt.class, rv.Interface(), bt.dt))
	}
	if bt, ok := r.types[reflect.PointerTo(t)]; ok {
		p := reflect.New(t)
		p.Elem().Set(rv)
		return Value(r.vm.TypedDataWrap(bt.class, p.Interface(), bt.dt))
	}

	switch t.Kind() {
	case reflect.Bool:
		return BoolValue(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Value(r.vm.Int2Inum(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Value(r.vm.Uint2Inum(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return Value(r.vm.FloatNew(rv.Float()))
	case reflect.Complex64, reflect.Complex128:
		return r.IntoValue(rv.Complex())
	case reflect.String:
		return Value(r.vm.StrNew(rv.String()))
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Nil
		}
		if t.Kind() == reflect.Interface || t.Elem().Kind() != reflect.Struct {
			return r.IntoValue(rv.Elem().Interface())
		}
	case reflect.Slice:
		if rv.IsNil() {
			return Nil
		}
		if t.Elem().Kind() == reflect.Uint8 {
			return Value(r.vm.StrNewBytes(rv.Bytes()))
		}
		return r.intoArray(rv)
	case reflect.Array:
		return r.intoArray(rv)
	case reflect.Map:
		if rv.IsNil() {
			return Nil
		}
		return r.intoHash(rv)
	}
	return r.wrapGoObject(rv.Interface())
}

func (r *Ruby) intoArray(rv reflect.Value) Value {
	ary := r.vm.AryNew(rv.Len())
	for i := range rv.Len() {
		r.vm.AryPush(ary, r.IntoValue(rv.Index(i).Interface()).raw())
	}
	return Value(ary)
}

// intoHash inserts keys in sorted order when the key type is ordered, so
// the resulting Hash iterates deterministically.
func (r *Ruby) intoHash(rv reflect.Value) Value {
	keys := rv.MapKeys()
	switch rv.Type().Key().Kind() {
	case reflect.String:
		slices.SortFunc(keys, func(a, b reflect.Value) int { return cmp.Compare(a.String(), b.String()) })
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		slices.SortFunc(keys, func(a, b reflect.Value) int { return cmp.Compare(a.Int(), b.Int()) })
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		slices.SortFunc(keys, func(a, b reflect.Value) int { return cmp.Compare(a.Uint(), b.Uint()) })
	case reflect.Float32, reflect.Float64:
		slices.SortFunc(keys, func(a, b reflect.Value) int { return cmp.Compare(a.Float(), b.Float()) })
	}
	h := r.vm.HashNew()
	for _, k := range keys {
		key := r.IntoValue(k.Interface())
		val := r.IntoValue(rv.MapIndex(k).Interface())
		r.vm.HashAset(h, key.raw(), val.raw())
	}
	return Value(h)
}

// implicitName is how conversion errors name a value: the literal for nil,
// true and false, the class name otherwise.
func (r *Ruby) implicitName(v Value) string {
	switch v {
	case Nil:
		return "nil"
	case True:
		return "true"
	case False:
		return "false"
	}
	return v.ClassName(r)
}

// ---------------------------------------------------------------------------
// Garnet::GoObject
// ---------------------------------------------------------------------------

type goObject struct {
	payload any
}

var goObjectType = &rbsys.DataType{
	Name:            "Garnet::GoObject",
	FreeImmediately: true,
}

func (r *Ruby) initGoObject() {
	r.mGarnet = r.vm.DefineModule("Garnet")
	r.cGoObject = r.vm.DefineClassUnder(r.mGarnet, "GoObject", r.vm.CObject)
	r.vm.UndefAlloc(r.cGoObject)

	inspect := rbsys.FixedFunc(func(self rbsys.VALUE, _ []rbsys.VALUE) rbsys.VALUE {
		g := r.vm.GetTypedData(self, goObjectType).(*goObject)
		return r.vm.StrNew(fmt.Sprintf("#<Garnet::GoObject %T>", g.payload))
	})
	toS := rbsys.FixedFunc(func(self rbsys.VALUE, _ []rbsys.VALUE) rbsys.VALUE {
		g := r.vm.GetTypedData(self, goObjectType).(*goObject)
		if s, ok := g.payload.(fmt.Stringer); ok {
			return r.vm.StrNew(s.String())
		}
		return r.vm.StrNew(fmt.Sprintf("%v", g.payload))
	})
	for name, fn := range map[string]rbsys.FixedFunc{"inspect": inspect, "to_s": toS} {
		if err := r.vm.DefineMethod(r.cGoObject, name, fn, 0); err != nil {
			panic(err)
		}
	}
}

func (r *Ruby) wrapGoObject(x any) Value {
	return Value(r.vm.TypedDataWrap(r.cGoObject, &goObject{payload: x}, goObjectType))
}

// GoObjectPayload returns the Go value behind a Garnet::GoObject.
func (r *Ruby) GoObjectPayload(v Value) (any, bool) {
	if v.IsImmediate() {
		return nil, false
	}
	data, ok := r.vm.CheckTypedData(v.raw(), goObjectType)
	if !ok {
		return nil, false
	}
	return data.(*goObject).payload, true
}
