package garnet

import (
	"github.com/chazu/garnet/rbsys"
)

// RHash is an insertion-ordered hash table keyed by eql?.
type RHash struct{ NonZeroValue }

// ForEach tells Foreach what to do after a callback.
type ForEach int

// Foreach continuations
const (
	Continue ForEach = ForEach(rbsys.STContinue)
	Stop     ForEach = ForEach(rbsys.STStop)
	Delete   ForEach = ForEach(rbsys.STDelete)
)

// RHashFromValue reports whether v is a Hash.
func RHashFromValue(r *Ruby, v Value) (RHash, bool) {
	if r.headerType(v) != rbsys.THash {
		return RHash{}, false
	}
	return RHash{NonZeroValue{v}}, true
}

// NewHash allocates an empty Hash.
func (r *Ruby) NewHash() RHash {
	return RHash{NonZeroValue{Value(r.vm.HashNew())}}
}

// HashFromMap converts every key and value with IntoValue.
func HashFromMap[K comparable, V any](r *Ruby, m map[K]V) RHash {
	if m == nil {
		return r.NewHash()
	}
	return RHash{NonZeroValue{r.IntoValue(m)}}
}

func (r *Ruby) toRHash(v Value) (RHash, error) {
	h, err := r.implicit(v, rbsys.THash, "Hash", "to_hash")
	if err != nil {
		return RHash{}, err
	}
	return RHash{NonZeroValue{h}}, nil
}

// Len returns the number of entries.
func (h RHash) Len(r *Ruby) int { return r.vm.HashSize(h.raw()) }

// Aset stores val under key. String keys are copied and frozen.
func (h RHash) Aset(r *Ruby, key, val any) error {
	k, v := r.IntoValue(key), r.IntoValue(val)
	_, err := r.protect(func() Value {
		r.vm.HashAset(h.raw(), k.raw(), v.raw())
		return Nil
	})
	return err
}

// Aref returns the value for key, or the Hash's default.
func (h RHash) Aref(r *Ruby, key any) (Value, error) {
	k := r.IntoValue(key)
	return r.protect(func() Value {
		return Value(r.vm.HashAref(h.raw(), k.raw()))
	})
}

// Lookup returns the value for key, or nil. The default is ignored.
func (h RHash) Lookup(r *Ruby, key any) (Value, error) {
	k := r.IntoValue(key)
	return r.protect(func() Value {
		return Value(r.vm.HashLookup(h.raw(), k.raw()))
	})
}

// Get returns the value for key and whether it was present.
func (h RHash) Get(r *Ruby, key any) (Value, bool) {
	k := r.IntoValue(key)
	v, err := r.protect(func() Value {
		return Value(r.vm.HashLookup2(h.raw(), k.raw(), rbsys.Qundef))
	})
	if err != nil || v == Undef {
		return Nil, false
	}
	return v, true
}

// Fetch returns the value for key. A missing key is a KeyError.
func (h RHash) Fetch(r *Ruby, key any) (Value, error) {
	k := r.IntoValue(key)
	return r.protect(func() Value {
		return Value(r.vm.HashFetch(h.raw(), k.raw()))
	})
}

// Delete removes key, returning its value and whether it was present.
func (h RHash) Delete(r *Ruby, key any) (Value, bool, error) {
	k := r.IntoValue(key)
	v, err := r.protect(func() Value {
		return Value(r.vm.HashDelete(h.raw(), k.raw()))
	})
	if err != nil {
		return Nil, false, err
	}
	if v == Undef {
		return Nil, false, nil
	}
	return v, true, nil
}

// SetDefault sets the value Aref returns for missing keys.
func (h RHash) SetDefault(r *Ruby, def any) {
	r.vm.HashSetDefault(h.raw(), r.IntoValue(def).raw())
}

// Foreach calls fn for every entry in insertion order. An error from fn
// stops the iteration and is returned. Adding keys from fn is a
// RuntimeError.
func (h RHash) Foreach(r *Ruby, fn func(key, val Value) (ForEach, error)) error {
	var ferr error
	_, err := r.protect(func() Value {
		r.vm.HashForeach(h.raw(), func(k, v rbsys.VALUE) rbsys.ForeachResult {
			next, err := fn(Value(k), Value(v))
			if err != nil {
				ferr = err
				return rbsys.STStop
			}
			return rbsys.ForeachResult(next)
		})
		return Nil
	})
	if ferr != nil {
		return ferr
	}
	return err
}

func (h RHash) pairs(r *Ruby) [][2]Value {
	out := make([][2]Value, 0, h.Len(r))
	r.vm.HashForeach(h.raw(), func(k, v rbsys.VALUE) rbsys.ForeachResult {
		out = append(out, [2]Value{Value(k), Value(v)})
		return rbsys.STContinue
	})
	return out
}

// ToPairs returns the entries in insertion order.
func (h RHash) ToPairs(r *Ruby) [][2]Value { return h.pairs(r) }

// Keys returns the keys in insertion order.
func (h RHash) Keys(r *Ruby) []Value { return valuesOf(r.vm.HashKeys(h.raw())) }

// ToMap converts every key to K and every value to V.
func ToMap[K comparable, V any](r *Ruby, h RHash) (map[K]V, error) {
	out := make(map[K]V, h.Len(r))
	for _, kv := range h.pairs(r) {
		k, err := TryConvert[K](r, kv[0])
		if err != nil {
			return nil, err
		}
		v, err := TryConvert[V](r, kv[1])
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}
