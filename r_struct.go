package garnet

import (
	"slices"

	"github.com/chazu/garnet/rbsys"
)

// RStruct is an instance of a Struct-generated class.
type RStruct struct{ NonZeroValue }

// RStructFromValue reports whether v is a Struct instance.
func RStructFromValue(r *Ruby, v Value) (RStruct, bool) {
	if r.headerType(v) != rbsys.TStruct {
		return RStruct{}, false
	}
	return RStruct{NonZeroValue{v}}, true
}

// DefineStruct creates a Struct subclass with the given members. A
// non-empty name defines it as Struct::<name>.
func (r *Ruby) DefineStruct(name string, members ...string) (RClass, error) {
	v, err := r.protect(func() Value {
		return Value(r.vm.StructDefine(name, members...))
	})
	if err != nil {
		return RClass{}, err
	}
	return RClass{NonZeroValue{v}}, nil
}

// Members returns the member names in definition order.
func (s RStruct) Members(r *Ruby) []string { return r.vm.StructMembers(s.raw()) }

// Size returns the number of members.
func (s RStruct) Size(r *Ruby) int { return r.vm.StructSize(s.raw()) }

// Getter returns the member called name. An unknown member is a NameError.
func (s RStruct) Getter(r *Ruby, name string) (Value, error) {
	return r.protect(func() Value {
		return Value(r.vm.StructGetter(s.raw(), name))
	})
}

// Setter sets the member called name.
func (s RStruct) Setter(r *Ruby, name string, x any) error {
	i := slices.Index(s.Members(r), name)
	if i < 0 {
		return newError((*Ruby).NameError, nil, "NameError", "no member '"+name+"' in struct")
	}
	v := r.IntoValue(x)
	_, err := r.protect(func() Value {
		r.vm.StructAset(s.raw(), i, v.raw())
		return Nil
	})
	return err
}

// Aref returns member i. An out of range index is an IndexError.
func (s RStruct) Aref(r *Ruby, i int) (Value, error) {
	return r.protect(func() Value {
		return Value(r.vm.StructAref(s.raw(), i))
	})
}
