package garnet

import (
	"github.com/chazu/garnet/rbsys"
)

// Opts are Regexp option bits.
type Opts int

// Regexp options
const (
	IgnoreCase Opts = rbsys.RegIgnoreCase
	Extended   Opts = rbsys.RegExtended
	Multiline  Opts = rbsys.RegMultiline
)

// RRegexp is a compiled pattern.
type RRegexp struct{ NonZeroValue }

// RRegexpFromValue reports whether v is a Regexp.
func RRegexpFromValue(r *Ruby, v Value) (RRegexp, bool) {
	if r.headerType(v) != rbsys.TRegexp {
		return RRegexp{}, false
	}
	return RRegexp{NonZeroValue{v}}, true
}

// NewRegexp compiles pattern. A bad pattern is a RegexpError.
func (r *Ruby) NewRegexp(pattern string, opts Opts) (RRegexp, error) {
	v, err := r.protect(func() Value {
		return Value(r.vm.RegNew(pattern, int(opts)))
	})
	if err != nil {
		return RRegexp{}, err
	}
	return RRegexp{NonZeroValue{v}}, nil
}

// Source returns the pattern text.
func (re RRegexp) Source(r *Ruby) string { return r.vm.RRegexp(re.raw()).Source }

// Options returns the option bits.
func (re RRegexp) Options(r *Ruby) Opts { return Opts(r.vm.RRegexp(re.raw()).Options) }

// Match returns the byte offset of the first match in str. str is
// converted with to_str.
func (re RRegexp) Match(r *Ruby, str any) (int, bool, error) {
	s := r.IntoValue(str)
	var at int
	_, err := r.protect(func() Value {
		at = r.vm.RegSearch(re.raw(), s.raw())
		return Nil
	})
	if err != nil {
		return 0, false, err
	}
	return at, at >= 0, nil
}

// MatchData matches str and returns the match, if any.
func (re RRegexp) MatchData(r *Ruby, str any) (RMatch, bool, error) {
	s := r.IntoValue(str)
	m, err := r.protect(func() Value {
		return Value(r.vm.RegMatch(re.raw(), s.raw()))
	})
	if err != nil || m == Nil {
		return RMatch{}, false, err
	}
	return RMatch{NonZeroValue{m}}, true, nil
}

// Backref returns the last successful match of this runtime.
func (r *Ruby) Backref() (RMatch, bool) {
	m := Value(r.vm.Backref())
	if m == Nil {
		return RMatch{}, false
	}
	return RMatch{NonZeroValue{m}}, true
}

// RMatch is the result of a successful match.
type RMatch struct{ NonZeroValue }

// RMatchFromValue reports whether v is MatchData.
func RMatchFromValue(r *Ruby, v Value) (RMatch, bool) {
	if r.headerType(v) != rbsys.TMatch {
		return RMatch{}, false
	}
	return RMatch{NonZeroValue{v}}, true
}

// Nth returns group n, counting from the end when n is negative. ok is
// false for a group that did not participate.
func (m RMatch) Nth(r *Ruby, n int) (string, bool) {
	v := r.vm.MatchNth(m.raw(), n)
	if v == rbsys.Qnil {
		return "", false
	}
	return string(r.vm.RString(v).Bytes), true
}

// Pre returns the text before the match.
func (m RMatch) Pre(r *Ruby) string { return string(r.vm.RString(r.vm.MatchPre(m.raw())).Bytes) }

// Post returns the text after the match.
func (m RMatch) Post(r *Ruby) string { return string(r.vm.RString(r.vm.MatchPost(m.raw())).Bytes) }

// Begin returns the start offset of group n, or -1 when it did not
// participate. An out of range group is an IndexError.
func (m RMatch) Begin(r *Ruby, n int) (int, error) {
	var at int
	_, err := r.protect(func() Value {
		at = r.vm.MatchBegin(m.raw(), n)
		return Nil
	})
	return at, err
}

// End returns the end offset of group n.
func (m RMatch) End(r *Ruby, n int) (int, error) {
	var at int
	_, err := r.protect(func() Value {
		at = r.vm.MatchEnd(m.raw(), n)
		return Nil
	})
	return at, err
}
