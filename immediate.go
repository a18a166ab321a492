package garnet

import "github.com/chazu/garnet/rbsys"

// QFalse is the false immediate.
type QFalse struct{ Value }

// QNil is the nil immediate.
type QNil struct{ NonZeroValue }

// QTrue is the true immediate.
type QTrue struct{ NonZeroValue }

// QUndef is the marker for an absent value. It is never visible to
// methods.
type QUndef struct{ NonZeroValue }

// QFalseFromValue reports whether v is false.
func QFalseFromValue(v Value) (QFalse, bool) {
	if v != False {
		return QFalse{}, false
	}
	return QFalse{v}, true
}

// QNilFromValue reports whether v is nil.
func QNilFromValue(v Value) (QNil, bool) {
	if v != Nil {
		return QNil{}, false
	}
	return QNil{NonZeroValue{v}}, true
}

// QTrueFromValue reports whether v is true.
func QTrueFromValue(v Value) (QTrue, bool) {
	if v != True {
		return QTrue{}, false
	}
	return QTrue{NonZeroValue{v}}, true
}

// QUndefFromValue reports whether v is undef.
func QUndefFromValue(v Value) (QUndef, bool) {
	if v != Undef {
		return QUndef{}, false
	}
	return QUndef{NonZeroValue{v}}, true
}

// ---------------------------------------------------------------------------
// Symbols
// ---------------------------------------------------------------------------

// ID is an interned name.
type ID rbsys.ID

// Intern returns the ID for name, creating it if needed.
func (r *Ruby) Intern(name string) ID { return ID(r.vm.Intern(name)) }

// Name returns the string an ID was interned from.
func (id ID) Name(r *Ruby) string { return r.vm.IDName(rbsys.ID(id)) }

// StaticSymbol is an immediate symbol.
type StaticSymbol struct{ NonZeroValue }

// StaticSymbolFromValue reports whether v is a static symbol.
func StaticSymbolFromValue(v Value) (StaticSymbol, bool) {
	if !rbsys.StaticSymP(v.raw()) {
		return StaticSymbol{}, false
	}
	return StaticSymbol{NonZeroValue{v}}, true
}

// NewSymbol interns name and returns its symbol.
func (r *Ruby) NewSymbol(name string) StaticSymbol {
	return StaticSymbol{NonZeroValue{Value(r.vm.SymbolNew(name))}}
}

// SymbolFromID returns the symbol for id.
func SymbolFromID(id ID) StaticSymbol {
	return StaticSymbol{NonZeroValue{Value(rbsys.ID2Sym(rbsys.ID(id)))}}
}

// ID returns the interned name behind s.
func (s StaticSymbol) ID() ID { return ID(rbsys.Sym2ID(s.raw())) }

// Name returns the symbol's name.
func (s StaticSymbol) Name(r *Ruby) string { return s.ID().Name(r) }

// ---------------------------------------------------------------------------
// Booleans
// ---------------------------------------------------------------------------

// BoolValue returns true or false.
func BoolValue(b bool) Value {
	if b {
		return True
	}
	return False
}
