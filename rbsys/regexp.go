package rbsys

import (
	"regexp"
	"strings"
)

// Regexp option bits.
const (
	RegIgnoreCase = 1
	RegExtended   = 2
	RegMultiline  = 4
)

// compilePattern translates option bits into Go syntax. Ruby's ^ and $
// always match at line boundaries; its "multiline" lets . match newline.
func compilePattern(src string, opts int) (*regexp.Regexp, error) {
	flags := "m"
	if opts&RegIgnoreCase != 0 {
		flags += "i"
	}
	if opts&RegMultiline != 0 {
		flags += "s"
	}
	if opts&RegExtended != 0 {
		src = stripExtended(src)
	}
	return regexp.Compile("(?" + flags + ")" + src)
}

// stripExtended removes unescaped whitespace and # comments outside
// character classes.
func stripExtended(src string) string {
	var b strings.Builder
	inClass, escaped, comment := false, false, false
	for _, r := range src {
		switch {
		case comment:
			if r == '\n' {
				comment = false
			}
			continue
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case inClass:
			if r == ']' {
				inClass = false
			}
		case r == '[':
			inClass = true
		case r == '#':
			comment = true
			continue
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// RegNew compiles src. An invalid pattern raises RegexpError.
func (vm *VM) RegNew(src string, opts int) VALUE {
	re, err := compilePattern(src, opts)
	if err != nil {
		vm.Raisef(vm.ERegexpError, "%s: /%s/", err.Error(), src)
	}
	v := vm.newObject(&RRegexp{RBasic: header(TRegexp, vm.CRegexp), Source: src, Options: opts, re: re})
	return vm.Freeze(v)
}

// RegMatch matches str against re, returning MatchData or nil. The result
// is also stored as the last match.
func (vm *VM) RegMatch(re, str VALUE) VALUE {
	str = vm.StringValue(str)
	r := vm.RRegexp(re)
	b := vm.RString(str).Bytes
	loc := r.re.FindSubmatchIndex(b)
	if loc == nil {
		vm.backref = Qnil
		return Qnil
	}
	frozen := vm.Freeze(vm.StrNewBytes(b))
	m := vm.newObject(&RMatch{RBasic: header(TMatch, vm.CMatch), Regexp: re, Str: frozen, Offsets: loc})
	vm.backref = m
	return m
}

// RegSearch returns the byte offset of the first match, or -1.
func (vm *VM) RegSearch(re, str VALUE) int {
	m := vm.RegMatch(re, str)
	if m == Qnil {
		return -1
	}
	return vm.RMatch(m).Offsets[0]
}

// Backref returns the last successful match, or nil.
func (vm *VM) Backref() VALUE { return vm.backref }

// MatchNth returns group n of a match, or nil for an unmatched or
// out-of-range group.
func (vm *VM) MatchNth(m VALUE, n int) VALUE {
	md := vm.RMatch(m)
	groups := len(md.Offsets) / 2
	if n < 0 {
		n += groups
	}
	if n < 0 || n >= groups || md.Offsets[2*n] < 0 {
		return Qnil
	}
	b := vm.RString(md.Str).Bytes
	return vm.StrNewBytes(b[md.Offsets[2*n]:md.Offsets[2*n+1]])
}

// MatchBegin returns the start offset of group n, or -1.
func (vm *VM) MatchBegin(m VALUE, n int) int {
	md := vm.RMatch(m)
	if n < 0 || 2*n >= len(md.Offsets) {
		vm.Raisef(vm.EIndexError, "index %d out of matches", n)
	}
	return md.Offsets[2*n]
}

// MatchEnd returns the end offset of group n, or -1.
func (vm *VM) MatchEnd(m VALUE, n int) int {
	md := vm.RMatch(m)
	if n < 0 || 2*n >= len(md.Offsets) {
		vm.Raisef(vm.EIndexError, "index %d out of matches", n)
	}
	return md.Offsets[2*n+1]
}

// MatchPre returns the part of the string before the match.
func (vm *VM) MatchPre(m VALUE) VALUE {
	md := vm.RMatch(m)
	return vm.StrNewBytes(vm.RString(md.Str).Bytes[:md.Offsets[0]])
}

// MatchPost returns the part of the string after the match.
func (vm *VM) MatchPost(m VALUE) VALUE {
	md := vm.RMatch(m)
	return vm.StrNewBytes(vm.RString(md.Str).Bytes[md.Offsets[1]:])
}

func regInspect(r *RRegexp) string {
	s := "/" + strings.ReplaceAll(r.Source, "/", `\/`) + "/"
	if r.Options&RegMultiline != 0 {
		s += "m"
	}
	if r.Options&RegIgnoreCase != 0 {
		s += "i"
	}
	if r.Options&RegExtended != 0 {
		s += "x"
	}
	return s
}

func (vm *VM) initRegexpMethods() {
	c := vm.CRegexp
	vm.defs(c, "new", ArityCArgs, CArgsFunc(func(argc int, argv []VALUE, self VALUE) VALUE {
		vm.checkArity(argc, 1, 2)
		opts := 0
		if argc == 2 {
			switch o := argv[1]; {
			case FixnumP(o):
				opts = int(Fix2Long(o))
			case Test(o):
				opts = RegIgnoreCase
			}
		}
		if vm.typeOf(argv[0]) == TRegexp {
			r := vm.RRegexp(argv[0])
			return vm.RegNew(r.Source, r.Options)
		}
		return vm.RegNew(vm.AsString(vm.StringValue(argv[0])), opts)
	}))
	vm.def(c, "match", 1, func(self VALUE, argv []VALUE) VALUE {
		if argv[0] == Qnil {
			vm.backref = Qnil
			return Qnil
		}
		return vm.RegMatch(self, argv[0])
	})
	vm.def(c, "=~", 1, func(self VALUE, argv []VALUE) VALUE {
		if argv[0] == Qnil {
			return Qnil
		}
		if i := vm.RegSearch(self, argv[0]); i >= 0 {
			return Long2Fix(int64(i))
		}
		return Qnil
	})
	vm.def(c, "match?", 1, func(self VALUE, argv []VALUE) VALUE {
		if argv[0] == Qnil {
			return Qfalse
		}
		s := vm.StringValue(argv[0])
		return boolValue(vm.RRegexp(self).re.Match(vm.RString(s).Bytes))
	})
	vm.def(c, "source", 0, func(self VALUE, _ []VALUE) VALUE { return vm.StrNew(vm.RRegexp(self).Source) })
	vm.def(c, "options", 0, func(self VALUE, _ []VALUE) VALUE { return Long2Fix(int64(vm.RRegexp(self).Options)) })
	vm.def(c, "inspect", 0, func(self VALUE, _ []VALUE) VALUE { return vm.StrNew(regInspect(vm.RRegexp(self))) })
	vm.def(c, "to_s", 0, func(self VALUE, _ []VALUE) VALUE { return vm.StrNew(regInspect(vm.RRegexp(self))) })
	vm.def(c, "==", 1, func(self VALUE, argv []VALUE) VALUE {
		if vm.typeOf(argv[0]) != TRegexp {
			return Qfalse
		}
		a, b := vm.RRegexp(self), vm.RRegexp(argv[0])
		return boolValue(a.Source == b.Source && a.Options == b.Options)
	})
	vm.ConstSet(c, "IGNORECASE", Long2Fix(RegIgnoreCase))
	vm.ConstSet(c, "EXTENDED", Long2Fix(RegExtended))
	vm.ConstSet(c, "MULTILINE", Long2Fix(RegMultiline))

	m := vm.CMatch
	vm.def(m, "[]", 1, func(self VALUE, argv []VALUE) VALUE { return vm.MatchNth(self, int(vm.Num2Long(argv[0]))) })
	vm.def(m, "pre_match", 0, func(self VALUE, _ []VALUE) VALUE { return vm.MatchPre(self) })
	vm.def(m, "post_match", 0, func(self VALUE, _ []VALUE) VALUE { return vm.MatchPost(self) })
	vm.def(m, "begin", 1, func(self VALUE, argv []VALUE) VALUE {
		if i := vm.MatchBegin(self, int(vm.Num2Long(argv[0]))); i >= 0 {
			return Long2Fix(int64(i))
		}
		return Qnil
	})
	vm.def(m, "end", 1, func(self VALUE, argv []VALUE) VALUE {
		if i := vm.MatchEnd(self, int(vm.Num2Long(argv[0]))); i >= 0 {
			return Long2Fix(int64(i))
		}
		return Qnil
	})
	vm.def(m, "size", 0, func(self VALUE, _ []VALUE) VALUE { return Long2Fix(int64(len(vm.RMatch(self).Offsets) / 2)) })
	vm.def(m, "to_a", 0, func(self VALUE, _ []VALUE) VALUE {
		n := len(vm.RMatch(self).Offsets) / 2
		out := vm.AryNew(n)
		for i := 0; i < n; i++ {
			vm.AryPush(out, vm.MatchNth(self, i))
		}
		return out
	})
	vm.def(m, "to_s", 0, func(self VALUE, _ []VALUE) VALUE { return vm.MatchNth(self, 0) })
	vm.def(m, "regexp", 0, func(self VALUE, _ []VALUE) VALUE { return vm.RMatch(self).Regexp })
	vm.def(m, "string", 0, func(self VALUE, _ []VALUE) VALUE { return vm.RMatch(self).Str })
	vm.def(m, "inspect", 0, func(self VALUE, _ []VALUE) VALUE {
		return vm.StrNew("#<MatchData " + StrInspect(vm.RString(vm.MatchNth(self, 0)).Bytes) + ">")
	})
}
