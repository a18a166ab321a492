package garnet

import (
	"fmt"
	"reflect"

	"github.com/chazu/garnet/rbsys"
)

// Marker is handed to a typed object's Mark callback to report the values
// it holds.
type Marker struct{ r *Ruby }

// Mark keeps v alive and pins it in place.
func (m Marker) Mark(v ReprValue) { m.r.vm.GCMark(v.AsValue().raw()) }

// MarkMovable keeps v alive but lets compaction move it. The owner must
// update its copy in Compact.
func (m Marker) MarkMovable(v ReprValue) { m.r.vm.GCMarkMovable(v.AsValue().raw()) }

// Compactor is handed to a typed object's Compact callback.
type Compactor struct{ r *Ruby }

// Location returns where v lives after compaction.
func (c Compactor) Location(v Value) Value { return Value(c.r.vm.GCLocation(v.raw())) }

// DataTypeFunctions are the collector callbacks of a typed data type. A
// type implements the ones it needs; DataTypeDefaults supplies no-ops.
type DataTypeFunctions interface {
	Free()
	Mark(m Marker)
	Size() int
	Compact(c Compactor)
}

// DataTypeDefaults can be embedded to implement DataTypeFunctions with
// no-ops.
type DataTypeDefaults struct{}

func (DataTypeDefaults) Free()             {}
func (DataTypeDefaults) Mark(Marker)       {}
func (DataTypeDefaults) Size() int         { return 0 }
func (DataTypeDefaults) Compact(Compactor) {}

// DataType describes how objects wrapping *T behave under the collector.
type DataType[T any] struct {
	name            string
	mark            bool
	size            bool
	compact         bool
	freeImmediately bool
}

// DataTypeOption configures NewDataType.
type DataTypeOption func(*dataTypeOptions)

type dataTypeOptions struct {
	mark, size, compact, freeImmediately bool
}

// WithMark calls T's Mark method during collections.
func WithMark() DataTypeOption { return func(o *dataTypeOptions) { o.mark = true } }

// WithSize reports T's Size method as the object's memory size.
func WithSize() DataTypeOption { return func(o *dataTypeOptions) { o.size = true } }

// WithCompact calls T's Compact method after compaction.
func WithCompact() DataTypeOption { return func(o *dataTypeOptions) { o.compact = true } }

// WithFreeImmediately runs Free during the sweep that finds the object
// dead rather than at the next one.
func WithFreeImmediately() DataTypeOption {
	return func(o *dataTypeOptions) { o.freeImmediately = true }
}

// NewDataType describes T. The enabled callbacks must be implemented by
// *T; see DataTypeFunctions.
func NewDataType[T any](name string, opts ...DataTypeOption) *DataType[T] {
	var o dataTypeOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &DataType[T]{
		name:            name,
		mark:            o.mark,
		size:            o.size,
		compact:         o.compact,
		freeImmediately: o.freeImmediately,
	}
}

// Name returns the type name used in error messages.
func (dt *DataType[T]) Name() string { return dt.name }

// boundType is a Go pointer type registered with a class.
type boundType struct {
	class rbsys.VALUE
	dt    *rbsys.DataType
}

func (dt *DataType[T]) raw(r *Ruby) (*rbsys.DataType, error) {
	raw := &rbsys.DataType{Name: dt.name, FreeImmediately: dt.freeImmediately}
	var zero *T
	if _, ok := any(zero).(interface{ Free() }); ok {
		raw.Free = func(data any) { any(data.(*T)).(interface{ Free() }).Free() }
	}
	if dt.mark {
		if _, ok := any(zero).(interface{ Mark(Marker) }); !ok {
			return nil, fmt.Errorf("garnet: data type %s: *%s has no Mark(Marker) method", dt.name, typeName[T]())
		}
		raw.Mark = func(data any) { any(data.(*T)).(interface{ Mark(Marker) }).Mark(Marker{r}) }
	}
	if dt.size {
		if _, ok := any(zero).(interface{ Size() int }); !ok {
			return nil, fmt.Errorf("garnet: data type %s: *%s has no Size() int method", dt.name, typeName[T]())
		}
		raw.Size = func(data any) int { return any(data.(*T)).(interface{ Size() int }).Size() }
	}
	if dt.compact {
		if _, ok := any(zero).(interface{ Compact(Compactor) }); !ok {
			return nil, fmt.Errorf("garnet: data type %s: *%s has no Compact(Compactor) method", dt.name, typeName[T]())
		}
		raw.Compact = func(data any) { any(data.(*T)).(interface{ Compact(Compactor) }).Compact(Compactor{r}) }
	}
	return raw, nil
}

func typeName[T any]() string { return reflect.TypeFor[T]().String() }

// DefineDataClass defines class name under m for objects wrapping *T and
// registers the binding: IntoValue wraps *T and T, TryConvert unwraps
// *T, and Wrap and Obj become usable for T.
//
// The class has no allocator; instances come only from Go. If *T
// implements any of Hash() uint64, Eql(*T) bool, Cmp(*T) int,
// Inspect() string or Dup() *T, the matching methods (hash, eql? and ==,
// <=> with Comparable, inspect, dup and clone) are defined as well.
func DefineDataClass[T any](r *Ruby, m RModule, name string, dt *DataType[T]) (RClass, error) {
	key := reflect.TypeFor[*T]()
	if _, ok := r.types[key]; ok {
		return RClass{}, fmt.Errorf("garnet: %s is already bound to a class", key)
	}
	raw, err := dt.raw(r)
	if err != nil {
		return RClass{}, err
	}
	c, err := m.DefineClass(r, name, RClass{})
	if err != nil {
		return RClass{}, err
	}
	c.UndefAlloc(r)
	r.types[key] = &boundType{class: c.raw(), dt: raw}
	if err := defineDataHooks[T](r, c); err != nil {
		return RClass{}, err
	}
	r.log.Debugf("bound %s to %s", key, c.Name(r))
	return c, nil
}

func defineDataHooks[T any](r *Ruby, c RClass) error {
	var zero *T
	type def struct {
		name string
		meth *Method
	}
	var defs []def
	if _, ok := any(zero).(interface{ Hash() uint64 }); ok {
		defs = append(defs, def{"hash", Method0(func(self *T) (uint64, error) {
			return any(self).(interface{ Hash() uint64 }).Hash() >> 2, nil
		})})
	}
	if _, ok := any(zero).(interface{ Eql(*T) bool }); ok {
		eql := Method1(func(self *T, other Value) (bool, error) {
			o, ok := TryConvertData[T](r, other)
			if !ok {
				return false, nil
			}
			return any(self).(interface{ Eql(*T) bool }).Eql(o), nil
		})
		defs = append(defs, def{"eql?", eql}, def{"==", eql})
	}
	if _, ok := any(zero).(interface{ Cmp(*T) int }); ok {
		defs = append(defs, def{"<=>", Method1(func(self *T, other Value) (Value, error) {
			o, ok := TryConvertData[T](r, other)
			if !ok {
				return Nil, nil
			}
			return r.IntoValue(any(self).(interface{ Cmp(*T) int }).Cmp(o)), nil
		})})
		if err := c.AsModule().Include(r, RModule{NonZeroValue{Value(r.vm.MComparable)}}); err != nil {
			return err
		}
	}
	if _, ok := any(zero).(interface{ Inspect() string }); ok {
		defs = append(defs, def{"inspect", Method0(func(self *T) (string, error) {
			return any(self).(interface{ Inspect() string }).Inspect(), nil
		})})
	}
	if _, ok := any(zero).(interface{ Dup() *T }); ok {
		dup := Method0(func(self *T) (*T, error) {
			return any(self).(interface{ Dup() *T }).Dup(), nil
		})
		defs = append(defs, def{"dup", dup}, def{"clone", dup})
	}
	for _, d := range defs {
		if err := c.DefineMethod(r, d.name, d.meth); err != nil {
			return err
		}
	}
	return nil
}

// RTypedData is an object wrapping Go data.
type RTypedData struct{ NonZeroValue }

// RTypedDataFromValue reports whether v wraps Go data.
func RTypedDataFromValue(r *Ruby, v Value) (RTypedData, bool) {
	if r.headerType(v) != rbsys.TData {
		return RTypedData{}, false
	}
	return RTypedData{NonZeroValue{v}}, true
}

// DataTypeName returns the name of the wrapped data's type.
func (d RTypedData) DataTypeName(r *Ruby) string {
	if t := r.vm.RTypedData(d.raw()).Type; t != nil {
		return t.Name
	}
	return ""
}

// Memsize reports the wrapped data's size callback, or 0.
func (d RTypedData) Memsize(r *Ruby) int { return r.vm.MemsizeOf(d.raw()) }

// Wrap creates an object of T's bound class holding data.
func Wrap[T any](r *Ruby, data *T) (Obj[T], error) {
	bt, ok := r.types[reflect.TypeFor[*T]()]
	if !ok {
		return Obj[T]{}, fmt.Errorf("garnet: no class bound for *%s", typeName[T]())
	}
	if data == nil {
		return Obj[T]{}, fmt.Errorf("garnet: Wrap of nil *%s", typeName[T]())
	}
	v := r.vm.TypedDataWrap(bt.class, data, bt.dt)
	return Obj[T]{RTypedData{NonZeroValue{Value(v)}}, data}, nil
}

// TryConvertData returns the *T wrapped by v, if v is an instance of T's
// bound class or a subclass.
func TryConvertData[T any](r *Ruby, v Value) (*T, bool) {
	bt, ok := r.types[reflect.TypeFor[*T]()]
	if !ok || v.IsImmediate() {
		return nil, false
	}
	data, ok := r.vm.CheckTypedData(v.raw(), bt.dt)
	if !ok {
		return nil, false
	}
	return data.(*T), true
}

// Obj is a typed handle on an object wrapping *T.
type Obj[T any] struct {
	RTypedData
	data *T
}

// Get returns the wrapped data.
func (o Obj[T]) Get() *T { return o.data }

// TryConvertValue implements TryConverter.
func (o *Obj[T]) TryConvertValue(r *Ruby, v Value) error {
	data, ok := TryConvertData[T](r, v)
	if !ok {
		name := typeName[T]()
		if bt, bound := r.types[reflect.TypeFor[*T]()]; bound {
			name = bt.dt.Name
		}
		return r.noImplicit(v, name)
	}
	*o = Obj[T]{RTypedData{NonZeroValue{v}}, data}
	return nil
}
