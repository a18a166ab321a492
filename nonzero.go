package garnet

// NonZeroValue is a Value whose word is never zero, the encoding of false.
// Every heap wrapper and every immediate other than false embeds one, so
// the zero NonZeroValue can mark an absent wrapper.
type NonZeroValue struct {
	Value
}

// NewNonZeroValue returns v as a NonZeroValue, or false if v is false.
func NewNonZeroValue(v Value) (NonZeroValue, bool) {
	if v == False {
		return NonZeroValue{}, false
	}
	return NonZeroValue{v}, true
}

// IsZero reports whether n is the zero NonZeroValue, i.e. unset.
func (n NonZeroValue) IsZero() bool { return n.Value == False }
