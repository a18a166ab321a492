package garnet

import (
	"github.com/chazu/garnet/rbsys"
)

// RObject is a plain instance with instance variables.
type RObject struct{ NonZeroValue }

// RObjectFromValue reports whether v is a plain object.
func RObjectFromValue(r *Ruby, v Value) (RObject, bool) {
	if r.headerType(v) != rbsys.TObject {
		return RObject{}, false
	}
	return RObject{NonZeroValue{v}}, true
}

// IvarGet reads instance variable name, e.g. "@x". Unset is nil.
func (o RObject) IvarGet(r *Ruby, name string) Value {
	return Value(r.vm.IvarGet(o.raw(), r.vm.Intern(name)))
}

// IvarSet writes instance variable name.
func (o RObject) IvarSet(r *Ruby, name string, x any) error {
	v := r.IntoValue(x)
	_, err := r.protect(func() Value {
		return Value(r.vm.IvarSet(o.raw(), r.vm.Intern(name), v.raw()))
	})
	return err
}
