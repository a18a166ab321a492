package rbsys

import "strings"

// ForeachResult tells HashForeach what to do after a callback.
type ForeachResult int

const (
	// STContinue moves to the next entry.
	STContinue ForeachResult = iota
	// STStop ends the iteration.
	STStop
	// STDelete removes the current entry and continues.
	STDelete
)

type hashEntry struct {
	key, val VALUE
	hash     uint64
	deleted  bool
}

// RHash is an insertion-ordered hash table.
type RHash struct {
	RBasic
	Default     VALUE
	DefaultProc VALUE

	entries []hashEntry
	index   map[uint64][]int
	live    int
	iter    int
}

func newRHash(klass VALUE) *RHash {
	return &RHash{
		RBasic:      header(THash, klass),
		Default:     Qnil,
		DefaultProc: Qnil,
		index:       make(map[uint64][]int),
	}
}

// Len returns the number of live entries.
func (h *RHash) Len() int { return h.live }

// HashNew allocates an empty Hash.
func (vm *VM) HashNew() VALUE {
	return vm.newObject(newRHash(vm.CHash))
}

func (vm *VM) hashFind(h *RHash, key VALUE, code uint64) int {
	for _, i := range h.index[code] {
		e := &h.entries[i]
		if !e.deleted && vm.EqlP(e.key, key) {
			return i
		}
	}
	return -1
}

// HashAset stores key => val. Unfrozen String keys are copied and frozen.
func (vm *VM) HashAset(hash, key, val VALUE) VALUE {
	vm.CheckFrozen(hash)
	h := vm.RHash(hash)
	code := vm.HashOf(key)
	if i := vm.hashFind(h, key, code); i >= 0 {
		h.entries[i].val = val
		return val
	}
	if h.iter > 0 {
		vm.Raisef(vm.ERuntimeError, "can't add a new key into hash during iteration")
	}
	if vm.typeOf(key) == TString && !vm.FrozenP(key) {
		key = vm.Freeze(vm.StrNewBytes(vm.RString(key).Bytes))
	}
	h.index[code] = append(h.index[code], len(h.entries))
	h.entries = append(h.entries, hashEntry{key: key, val: val, hash: code})
	h.live++
	return val
}

// HashLookup2 returns the value for key, or def when missing.
func (vm *VM) HashLookup2(hash, key, def VALUE) VALUE {
	h := vm.RHash(hash)
	if i := vm.hashFind(h, key, vm.HashOf(key)); i >= 0 {
		return h.entries[i].val
	}
	return def
}

// HashLookup returns the value for key, or nil when missing. It ignores
// the Hash's default.
func (vm *VM) HashLookup(hash, key VALUE) VALUE {
	return vm.HashLookup2(hash, key, Qnil)
}

// HashAref returns the value for key, or the Hash's default.
func (vm *VM) HashAref(hash, key VALUE) VALUE {
	v := vm.HashLookup2(hash, key, Qundef)
	if v != Qundef {
		return v
	}
	h := vm.RHash(hash)
	if h.DefaultProc != Qnil {
		return vm.ProcCall(h.DefaultProc, hash, key)
	}
	return h.Default
}

// HashFetch returns the value for key or raises KeyError.
func (vm *VM) HashFetch(hash, key VALUE) VALUE {
	v := vm.HashLookup2(hash, key, Qundef)
	if v == Qundef {
		exc := vm.ExcNew(vm.EKeyError, "key not found: "+vm.Inspect(key))
		vm.IvarSet(exc, vm.Intern("receiver"), hash)
		vm.IvarSet(exc, vm.Intern("key"), key)
		vm.Raise(exc)
	}
	return v
}

// HashDelete removes key and returns its value, or Qundef when missing.
func (vm *VM) HashDelete(hash, key VALUE) VALUE {
	vm.CheckFrozen(hash)
	h := vm.RHash(hash)
	i := vm.hashFind(h, key, vm.HashOf(key))
	if i < 0 {
		return Qundef
	}
	v := h.entries[i].val
	h.removeAt(i)
	return v
}

func (h *RHash) removeAt(i int) {
	e := &h.entries[i]
	idx := h.index[e.hash]
	for j, k := range idx {
		if k == i {
			idx = append(idx[:j:j], idx[j+1:]...)
			break
		}
	}
	if len(idx) == 0 {
		delete(h.index, e.hash)
	} else {
		h.index[e.hash] = idx
	}
	e.deleted = true
	e.key, e.val = Qnil, Qnil
	h.live--
}

// HashForeach calls fn for every entry in insertion order. Adding keys
// from fn raises RuntimeError.
func (vm *VM) HashForeach(hash VALUE, fn func(key, val VALUE) ForeachResult) {
	h := vm.RHash(hash)
	h.iter++
	defer func() { h.iter-- }()
	for i := 0; i < len(h.entries); i++ {
		e := h.entries[i]
		if e.deleted {
			continue
		}
		switch fn(e.key, e.val) {
		case STStop:
			return
		case STDelete:
			vm.CheckFrozen(hash)
			h.removeAt(i)
		}
	}
	vm.compactEntries(h)
}

func (vm *VM) compactEntries(h *RHash) {
	if h.iter > 1 || len(h.entries) < 16 || h.live*2 > len(h.entries) {
		return
	}
	h.rehash(func(k VALUE) uint64 { return vm.HashOf(k) })
}

// rehash rebuilds the entry list and index, recomputing every hash code.
func (h *RHash) rehash(hashOf func(VALUE) uint64) {
	entries := make([]hashEntry, 0, h.live)
	h.index = make(map[uint64][]int, h.live)
	for _, e := range h.entries {
		if e.deleted {
			continue
		}
		e.hash = hashOf(e.key)
		h.index[e.hash] = append(h.index[e.hash], len(entries))
		entries = append(entries, e)
	}
	h.entries = entries
}

// HashSize returns the number of entries.
func (vm *VM) HashSize(hash VALUE) int {
	return vm.RHash(hash).live
}

// HashKeys returns the keys in insertion order.
func (vm *VM) HashKeys(hash VALUE) []VALUE {
	h := vm.RHash(hash)
	out := make([]VALUE, 0, h.live)
	for _, e := range h.entries {
		if !e.deleted {
			out = append(out, e.key)
		}
	}
	return out
}

// HashClear removes every entry.
func (vm *VM) HashClear(hash VALUE) {
	vm.CheckFrozen(hash)
	h := vm.RHash(hash)
	if h.iter > 0 {
		for i := range h.entries {
			if !h.entries[i].deleted {
				h.removeAt(i)
			}
		}
		return
	}
	h.entries = nil
	h.index = make(map[uint64][]int)
	h.live = 0
}

// HashSetDefault sets the value HashAref returns for missing keys.
func (vm *VM) HashSetDefault(hash, def VALUE) {
	vm.CheckFrozen(hash)
	vm.RHash(hash).Default = def
}

func (vm *VM) hashInspect(hash VALUE) string {
	var parts []string
	vm.HashForeach(hash, func(k, v VALUE) ForeachResult {
		parts = append(parts, vm.Inspect(k)+" => "+vm.Inspect(v))
		return STContinue
	})
	return "{" + strings.Join(parts, ", ") + "}"
}

func (vm *VM) initHashMethods() {
	c := vm.CHash
	vm.def(c, "to_hash", 0, func(self VALUE, _ []VALUE) VALUE { return self })
	vm.def(c, "to_h", 0, func(self VALUE, _ []VALUE) VALUE { return self })
	vm.def(c, "inspect", 0, func(self VALUE, _ []VALUE) VALUE { return vm.StrNew(vm.hashInspect(self)) })
	vm.def(c, "to_s", 0, func(self VALUE, _ []VALUE) VALUE { return vm.StrNew(vm.hashInspect(self)) })
	vm.def(c, "[]", 1, func(self VALUE, argv []VALUE) VALUE { return vm.HashAref(self, argv[0]) })
	vm.def(c, "[]=", 2, func(self VALUE, argv []VALUE) VALUE { return vm.HashAset(self, argv[0], argv[1]) })
	vm.def(c, "store", 2, func(self VALUE, argv []VALUE) VALUE { return vm.HashAset(self, argv[0], argv[1]) })
	vm.defv(c, "fetch", func(argc int, argv []VALUE, self VALUE) VALUE {
		vm.checkArity(argc, 1, 2)
		if argc == 2 {
			return vm.HashLookup2(self, argv[0], argv[1])
		}
		return vm.HashFetch(self, argv[0])
	})
	vm.def(c, "key?", 1, func(self VALUE, argv []VALUE) VALUE {
		return boolValue(vm.HashLookup2(self, argv[0], Qundef) != Qundef)
	})
	vm.def(c, "delete", 1, func(self VALUE, argv []VALUE) VALUE {
		v := vm.HashDelete(self, argv[0])
		if v == Qundef {
			return Qnil
		}
		return v
	})
	vm.def(c, "size", 0, func(self VALUE, _ []VALUE) VALUE { return Long2Fix(int64(vm.HashSize(self))) })
	vm.def(c, "length", 0, func(self VALUE, _ []VALUE) VALUE { return Long2Fix(int64(vm.HashSize(self))) })
	vm.def(c, "empty?", 0, func(self VALUE, _ []VALUE) VALUE { return boolValue(vm.HashSize(self) == 0) })
	vm.def(c, "keys", 0, func(self VALUE, _ []VALUE) VALUE { return vm.AryNewFrom(vm.HashKeys(self)...) })
	vm.def(c, "values", 0, func(self VALUE, _ []VALUE) VALUE {
		out := vm.AryNew(vm.HashSize(self))
		vm.HashForeach(self, func(_, v VALUE) ForeachResult {
			vm.AryPush(out, v)
			return STContinue
		})
		return out
	})
	vm.def(c, "clear", 0, func(self VALUE, _ []VALUE) VALUE {
		vm.HashClear(self)
		return self
	})
	vm.def(c, "default", 0, func(self VALUE, _ []VALUE) VALUE { return vm.RHash(self).Default })
	vm.def(c, "default=", 1, func(self VALUE, argv []VALUE) VALUE {
		vm.HashSetDefault(self, argv[0])
		return argv[0]
	})
	each := func(name string) {
		vm.def(c, name, 0, func(self VALUE, _ []VALUE) VALUE {
			if !vm.BlockGivenP() {
				return vm.Enumeratorize(self, vm.Intern(name), nil)
			}
			vm.HashForeach(self, func(k, v VALUE) ForeachResult {
				vm.Yield(vm.AryNewFrom(k, v))
				return STContinue
			})
			return self
		})
	}
	each("each")
	each("each_pair")
	vm.def(c, "==", 1, func(self VALUE, argv []VALUE) VALUE {
		o := argv[0]
		if vm.typeOf(o) != THash || vm.HashSize(self) != vm.HashSize(o) {
			return Qfalse
		}
		eq := true
		vm.HashForeach(self, func(k, v VALUE) ForeachResult {
			w := vm.HashLookup2(o, k, Qundef)
			if w == Qundef || !vm.EqualP(v, w) {
				eq = false
				return STStop
			}
			return STContinue
		})
		return boolValue(eq)
	})
	vm.def(c, "dup", 0, func(self VALUE, _ []VALUE) VALUE {
		out := vm.HashNew()
		vm.HashForeach(self, func(k, v VALUE) ForeachResult {
			vm.HashAset(out, k, v)
			return STContinue
		})
		vm.RHash(out).Default = vm.RHash(self).Default
		return out
	})
}
