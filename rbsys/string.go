package rbsys

import (
	"bytes"
	"strconv"
	"strings"
)

// StrNew allocates a String holding a copy of s.
func (vm *VM) StrNew(s string) VALUE {
	return vm.newObject(&RString{RBasic: header(TString, vm.CString), Bytes: []byte(s)})
}

// StrNewBytes allocates a String holding a copy of b.
func (vm *VM) StrNewBytes(b []byte) VALUE {
	return vm.newObject(&RString{RBasic: header(TString, vm.CString), Bytes: append([]byte(nil), b...)})
}

// StrCat appends s to str.
func (vm *VM) StrCat(str VALUE, s []byte) VALUE {
	vm.CheckFrozen(str)
	r := vm.RString(str)
	r.Bytes = append(r.Bytes, s...)
	return str
}

// StrDup copies a String, keeping its class.
func (vm *VM) StrDup(str VALUE) VALUE {
	r := vm.RString(str)
	return vm.newObject(&RString{RBasic: header(TString, vm.ObjClass(str)), Bytes: append([]byte(nil), r.Bytes...)})
}

// StrInspect quotes s the way String#inspect does.
func StrInspect(s []byte) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range string(s) {
		switch r {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\x1b':
			b.WriteString(`\e`)
		default:
			if r < 0x20 || r == 0x7f {
				b.WriteString(`\x`)
				b.WriteString(strings.ToUpper(strconv.FormatInt(int64(r), 16)))
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func symInspect(name string) string {
	simple := name != ""
	for i, r := range name {
		ok := r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r > 0x7f ||
			(i > 0 && r >= '0' && r <= '9') || (i == len(name)-1 && (r == '?' || r == '!' || r == '='))
		if !ok {
			simple = false
			break
		}
	}
	switch name {
	case "+", "-", "*", "/", "%", "==", "<=>", "<", "<=", ">", ">=", "[]", "[]=", "<<", "!", "=~", "-@", "+@", "**":
		simple = true
	}
	if simple {
		return ":" + name
	}
	return ":" + StrInspect([]byte(name))
}

func (vm *VM) initStringMethods() {
	c := vm.CString
	vm.defv(c, "initialize", func(argc int, argv []VALUE, self VALUE) VALUE {
		vm.checkArity(argc, 0, 1)
		if argc == 1 {
			src := vm.StringValue(argv[0])
			vm.RString(self).Bytes = append([]byte(nil), vm.RString(src).Bytes...)
		}
		return Qnil
	})
	vm.def(c, "to_s", 0, func(self VALUE, _ []VALUE) VALUE { return self })
	vm.def(c, "to_str", 0, func(self VALUE, _ []VALUE) VALUE { return self })
	vm.def(c, "inspect", 0, func(self VALUE, _ []VALUE) VALUE {
		return vm.StrNew(StrInspect(vm.RString(self).Bytes))
	})
	vm.def(c, "to_sym", 0, func(self VALUE, _ []VALUE) VALUE {
		return vm.SymbolNew(string(vm.RString(self).Bytes))
	})
	vm.def(c, "length", 0, func(self VALUE, _ []VALUE) VALUE {
		return Long2Fix(int64(len([]rune(string(vm.RString(self).Bytes)))))
	})
	vm.def(c, "bytesize", 0, func(self VALUE, _ []VALUE) VALUE {
		return Long2Fix(int64(len(vm.RString(self).Bytes)))
	})
	vm.def(c, "==", 1, func(self VALUE, argv []VALUE) VALUE {
		o := argv[0]
		if vm.typeOf(o) != TString {
			return Qfalse
		}
		return boolValue(bytes.Equal(vm.RString(self).Bytes, vm.RString(o).Bytes))
	})
	vm.def(c, "eql?", 1, func(self VALUE, argv []VALUE) VALUE { return boolValue(vm.EqlP(self, argv[0])) })
	vm.def(c, "hash", 0, func(self VALUE, _ []VALUE) VALUE { return Long2Fix(int64(vm.HashOf(self) >> 2)) })
	vm.def(c, "<=>", 1, func(self VALUE, argv []VALUE) VALUE {
		if vm.typeOf(argv[0]) != TString {
			return Qnil
		}
		return Long2Fix(int64(bytes.Compare(vm.RString(self).Bytes, vm.RString(argv[0]).Bytes)))
	})
	vm.def(c, "+", 1, func(self VALUE, argv []VALUE) VALUE {
		o := vm.StringValue(argv[0])
		b := append(append([]byte(nil), vm.RString(self).Bytes...), vm.RString(o).Bytes...)
		return vm.StrNewBytes(b)
	})
	vm.def(c, "<<", 1, func(self VALUE, argv []VALUE) VALUE {
		o := vm.StringValue(argv[0])
		return vm.StrCat(self, vm.RString(o).Bytes)
	})
	vm.def(c, "upcase", 0, func(self VALUE, _ []VALUE) VALUE {
		return vm.StrNewBytes(bytes.ToUpper(vm.RString(self).Bytes))
	})
	vm.def(c, "dup", 0, func(self VALUE, _ []VALUE) VALUE { return vm.StrDup(self) })

	s := vm.CSymbol
	vm.def(s, "to_s", 0, func(self VALUE, _ []VALUE) VALUE { return vm.StrNew(vm.SymbolName(self)) })
	vm.def(s, "name", 0, func(self VALUE, _ []VALUE) VALUE {
		return vm.Freeze(vm.StrNew(vm.SymbolName(self)))
	})
	vm.def(s, "to_sym", 0, func(self VALUE, _ []VALUE) VALUE { return self })
	vm.def(s, "inspect", 0, func(self VALUE, _ []VALUE) VALUE { return vm.StrNew(symInspect(vm.SymbolName(self))) })
	vm.def(s, "to_proc", 0, func(self VALUE, _ []VALUE) VALUE {
		mid := Sym2ID(self)
		return vm.ProcNew(func(args []VALUE) VALUE {
			if len(args) == 0 {
				vm.Raisef(vm.EArgError, "no receiver given")
			}
			return vm.Funcall(args[0], mid, args[1:]...)
		})
	})
}
