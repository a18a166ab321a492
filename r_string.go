package garnet

import (
	"github.com/chazu/garnet/rbsys"
)

// RString is a byte string. Encodings are not modelled.
type RString struct{ NonZeroValue }

// RStringFromValue reports whether v is a String.
func RStringFromValue(r *Ruby, v Value) (RString, bool) {
	if r.headerType(v) != rbsys.TString {
		return RString{}, false
	}
	return RString{NonZeroValue{v}}, true
}

// NewString allocates a String holding a copy of s.
func (r *Ruby) NewString(s string) RString {
	return RString{NonZeroValue{Value(r.vm.StrNew(s))}}
}

// NewStringBytes allocates a String holding a copy of b.
func (r *Ruby) NewStringBytes(b []byte) RString {
	return RString{NonZeroValue{Value(r.vm.StrNewBytes(b))}}
}

func (r *Ruby) toRString(v Value) (RString, error) {
	s, err := r.implicit(v, rbsys.TString, "String", "to_str")
	if err != nil {
		return RString{}, err
	}
	return RString{NonZeroValue{s}}, nil
}

func (s RString) string(r *Ruby) string { return string(r.vm.RString(s.raw()).Bytes) }

// ToString returns the contents as a Go string.
func (s RString) ToString(r *Ruby) string { return s.string(r) }

// Bytes returns a copy of the contents.
func (s RString) Bytes(r *Ruby) []byte {
	return append([]byte(nil), r.vm.RString(s.raw()).Bytes...)
}

// Len returns the length in bytes.
func (s RString) Len(r *Ruby) int { return len(r.vm.RString(s.raw()).Bytes) }

// Append adds str to the end. A frozen String is a FrozenError.
func (s RString) Append(r *Ruby, str string) error {
	_, err := r.protect(func() Value {
		r.vm.StrCat(s.raw(), []byte(str))
		return Nil
	})
	return err
}
