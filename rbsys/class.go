package rbsys

import (
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------------
// Class construction
// ---------------------------------------------------------------------------

func (vm *VM) allocClass(klass, super VALUE, name string, module bool) VALUE {
	c := &RClass{
		RBasic:   header(TClass, klass),
		Name:     name,
		Super:    super,
		Methods:  make(methodTable),
		Consts:   make(map[ID]VALUE),
		Ivars:    make(map[ID]VALUE),
		isModule: module,
	}
	if module {
		c.Flags = uint64(TModule)
	}
	v := vm.newObject(c)
	vm.classes = append(vm.classes, v)
	return v
}

// makeMetaclass gives class v its own singleton class, chained to the
// metaclass of its superclass so that class methods are inherited.
func (vm *VM) makeMetaclass(v VALUE) VALUE {
	c := vm.RClass(v)
	super := vm.CClass
	if c.Super != 0 {
		super = vm.metaclassOf(c.Super)
	}
	meta := vm.allocClass(vm.CClass, super, "", false)
	m := vm.RClass(meta)
	m.Flags |= FlSingleton
	m.attached = v
	c.Klass = meta
	return meta
}

func (vm *VM) metaclassOf(v VALUE) VALUE {
	c := vm.RClass(v)
	if c.Klass != 0 && vm.Flags(c.Klass)&FlSingleton != 0 {
		return c.Klass
	}
	return vm.makeMetaclass(v)
}

func (vm *VM) initClasses() {
	vm.CBasicObject = vm.allocClass(0, 0, "BasicObject", false)
	vm.CObject = vm.allocClass(0, vm.CBasicObject, "Object", false)
	vm.CModule = vm.allocClass(0, vm.CObject, "Module", false)
	vm.CClass = vm.allocClass(0, vm.CModule, "Class", false)
	for _, c := range []VALUE{vm.CBasicObject, vm.CObject, vm.CModule, vm.CClass} {
		vm.RClass(c).Klass = vm.CClass
	}
	for _, c := range []VALUE{vm.CBasicObject, vm.CObject, vm.CModule, vm.CClass} {
		vm.makeMetaclass(c)
		vm.setConst(vm.CObject, vm.Intern(vm.RClass(c).Name), c)
	}
	vm.RClass(vm.CBasicObject).Alloc = vm.objAlloc
	vm.RClass(vm.CClass).noAlloc = true
	vm.RClass(vm.CModule).noAlloc = true

	vm.MKernel = vm.DefineModule("Kernel")
	vm.IncludeModule(vm.CObject, vm.MKernel)
	vm.MComparable = vm.DefineModule("Comparable")
	vm.MEnumerable = vm.DefineModule("Enumerable")
	vm.MGC = vm.DefineModule("GC")

	vm.CNilClass = vm.DefineClass("NilClass", vm.CObject)
	vm.CTrueClass = vm.DefineClass("TrueClass", vm.CObject)
	vm.CFalseClass = vm.DefineClass("FalseClass", vm.CObject)
	vm.CNumeric = vm.DefineClass("Numeric", vm.CObject)
	vm.IncludeModule(vm.CNumeric, vm.MComparable)
	vm.CInteger = vm.DefineClass("Integer", vm.CNumeric)
	vm.CFloat = vm.DefineClass("Float", vm.CNumeric)
	vm.CComplex = vm.DefineClass("Complex", vm.CNumeric)
	vm.CRational = vm.DefineClass("Rational", vm.CNumeric)
	vm.CString = vm.DefineClass("String", vm.CObject)
	vm.IncludeModule(vm.CString, vm.MComparable)
	vm.CSymbol = vm.DefineClass("Symbol", vm.CObject)
	vm.CArray = vm.DefineClass("Array", vm.CObject)
	vm.IncludeModule(vm.CArray, vm.MEnumerable)
	vm.CHash = vm.DefineClass("Hash", vm.CObject)
	vm.IncludeModule(vm.CHash, vm.MEnumerable)
	vm.CStruct = vm.DefineClass("Struct", vm.CObject)
	vm.IncludeModule(vm.CStruct, vm.MEnumerable)
	vm.CRegexp = vm.DefineClass("Regexp", vm.CObject)
	vm.CMatch = vm.DefineClass("MatchData", vm.CObject)
	vm.CProc = vm.DefineClass("Proc", vm.CObject)
	vm.CEnumerator = vm.DefineClass("Enumerator", vm.CObject)
	vm.IncludeModule(vm.CEnumerator, vm.MEnumerable)
	vm.CData = vm.DefineClass("Data", vm.CObject)

	for _, c := range []VALUE{
		vm.CNilClass, vm.CTrueClass, vm.CFalseClass, vm.CNumeric, vm.CInteger,
		vm.CFloat, vm.CComplex, vm.CRational, vm.CSymbol, vm.CMatch,
		vm.CProc, vm.CEnumerator, vm.CData,
	} {
		vm.UndefAlloc(c)
	}
	vm.RClass(vm.CString).Alloc = func(klass VALUE) VALUE {
		return vm.newObject(&RString{RBasic: header(TString, klass)})
	}
	vm.RClass(vm.CArray).Alloc = func(klass VALUE) VALUE {
		return vm.newObject(&RArray{RBasic: header(TArray, klass)})
	}
	vm.RClass(vm.CHash).Alloc = func(klass VALUE) VALUE {
		return vm.newObject(newRHash(klass))
	}
	vm.RClass(vm.CRegexp).noAlloc = true
}

func (vm *VM) objAlloc(klass VALUE) VALUE {
	return vm.newObject(&RObject{RBasic: header(TObject, klass)})
}

// DefineClass defines (or reopens) a top-level class.
func (vm *VM) DefineClass(name string, super VALUE) VALUE {
	return vm.DefineClassUnder(vm.CObject, name, super)
}

// DefineClassUnder defines (or reopens) a class nested in outer. Reopening
// with a different superclass raises TypeError.
func (vm *VM) DefineClassUnder(outer VALUE, name string, super VALUE) VALUE {
	id := vm.Intern(name)
	if existing, ok := vm.RClass(outer).Consts[id]; ok {
		if vm.BuiltinType(existing) != TClass {
			vm.Raisef(vm.ETypeError, "%s is not a class", name)
		}
		if super != 0 && vm.Superclass(existing) != super {
			vm.Raisef(vm.ETypeError, "superclass mismatch for class %s", name)
		}
		return existing
	}
	if super == 0 {
		super = vm.CObject
	}
	if vm.Flags(super)&FlSingleton != 0 {
		vm.Raisef(vm.ETypeError, "can't make subclass of singleton class")
	}
	if super == vm.CClass {
		vm.Raisef(vm.ETypeError, "can't make subclass of Class")
	}
	c := vm.allocClass(vm.CClass, super, vm.qualify(outer, name), false)
	vm.makeMetaclass(c)
	vm.setConst(outer, id, c)
	return c
}

// ClassNew creates an anonymous class.
func (vm *VM) ClassNew(super VALUE) VALUE {
	c := vm.allocClass(vm.CClass, super, "", false)
	vm.makeMetaclass(c)
	return c
}

// DefineModule defines (or reopens) a top-level module.
func (vm *VM) DefineModule(name string) VALUE {
	return vm.DefineModuleUnder(vm.CObject, name)
}

// DefineModuleUnder defines (or reopens) a module nested in outer.
func (vm *VM) DefineModuleUnder(outer VALUE, name string) VALUE {
	id := vm.Intern(name)
	if existing, ok := vm.RClass(outer).Consts[id]; ok {
		if vm.BuiltinType(existing) != TModule {
			vm.Raisef(vm.ETypeError, "%s is not a module", name)
		}
		return existing
	}
	m := vm.allocClass(vm.CModule, 0, vm.qualify(outer, name), true)
	vm.setConst(outer, id, m)
	return m
}

func (vm *VM) qualify(outer VALUE, name string) string {
	if outer == vm.CObject {
		return name
	}
	return vm.ClassName(outer) + "::" + name
}

// IncludeModule appends module to klass's include list.
func (vm *VM) IncludeModule(klass, module VALUE) {
	if vm.BuiltinType(module) != TModule {
		vm.Raisef(vm.ETypeError, "wrong argument type %s (expected Module)", vm.ObjClassName(module))
	}
	c := vm.RClass(klass)
	for _, m := range c.Includes {
		if m == module {
			return
		}
	}
	c.Includes = append(c.Includes, module)
}

// UndefAlloc removes the allocator of klass so Class#new raises.
func (vm *VM) UndefAlloc(klass VALUE) {
	c := vm.RClass(klass)
	c.Alloc = nil
	c.noAlloc = true
}

// DefineAlloc installs an allocator for klass and its subclasses.
func (vm *VM) DefineAlloc(klass VALUE, fn func(klass VALUE) VALUE) {
	c := vm.RClass(klass)
	c.Alloc = fn
	c.noAlloc = false
}

func (vm *VM) allocatorOf(klass VALUE) func(VALUE) VALUE {
	for c := klass; c != 0; c = vm.RClass(c).Super {
		rc := vm.RClass(c)
		if rc.noAlloc {
			return nil
		}
		if rc.Alloc != nil {
			return rc.Alloc
		}
	}
	return nil
}

// ObjAlloc allocates an uninitialized instance of klass.
func (vm *VM) ObjAlloc(klass VALUE) VALUE {
	if vm.Flags(klass)&FlSingleton != 0 {
		vm.Raisef(vm.ETypeError, "can't create instance of singleton class")
	}
	alloc := vm.allocatorOf(klass)
	if alloc == nil {
		vm.Raisef(vm.ETypeError, "allocator undefined for %s", vm.ClassName(klass))
	}
	return alloc(klass)
}

// ---------------------------------------------------------------------------
// Class queries
// ---------------------------------------------------------------------------

// ClassOf returns the class used for method lookup, which may be a
// singleton class.
func (vm *VM) ClassOf(v VALUE) VALUE {
	switch {
	case v == Qfalse:
		return vm.CFalseClass
	case v == Qnil:
		return vm.CNilClass
	case v == Qtrue:
		return vm.CTrueClass
	case v == Qundef:
		return 0
	case FixnumP(v):
		return vm.CInteger
	case StaticSymP(v):
		return vm.CSymbol
	case FlonumP(v):
		return vm.CFloat
	}
	obj := vm.slot(v)
	if obj == nil {
		return 0
	}
	return obj.basic().Klass
}

// RealClass skips singleton classes.
func (vm *VM) RealClass(klass VALUE) VALUE {
	for klass != 0 && vm.Flags(klass)&FlSingleton != 0 {
		klass = vm.RClass(klass).Super
	}
	return klass
}

// ObjClass returns the non-singleton class of v.
func (vm *VM) ObjClass(v VALUE) VALUE {
	return vm.RealClass(vm.ClassOf(v))
}

// Superclass returns the next non-singleton class in the chain, or 0.
func (vm *VM) Superclass(klass VALUE) VALUE {
	return vm.RealClass(vm.RClass(klass).Super)
}

// ClassName returns the qualified name of a class or module, or an
// inspect-style placeholder for anonymous ones.
func (vm *VM) ClassName(klass VALUE) string {
	if klass == 0 {
		return "undef"
	}
	c := vm.RClass(klass)
	if c.Name != "" {
		return c.Name
	}
	if c.Flags&FlSingleton != 0 {
		return fmt.Sprintf("#<Class:%s>", vm.Inspect(c.attached))
	}
	return fmt.Sprintf("#<Class:%#016x>", uint64(klass))
}

// ObjClassName returns the class name of v.
func (vm *VM) ObjClassName(v VALUE) string {
	return vm.ClassName(vm.ObjClass(v))
}

// SetClassPath names an anonymous class.
func (vm *VM) SetClassPath(klass VALUE, name string) {
	c := vm.RClass(klass)
	if c.Name == "" {
		c.Name = name
	}
}

// Ancestors returns the method resolution order of klass.
func (vm *VM) Ancestors(klass VALUE) []VALUE {
	var out []VALUE
	seen := make(map[VALUE]bool)
	var addModule func(m VALUE)
	addModule = func(m VALUE) {
		if seen[m] {
			return
		}
		seen[m] = true
		out = append(out, m)
		inc := vm.RClass(m).Includes
		for i := len(inc) - 1; i >= 0; i-- {
			addModule(inc[i])
		}
	}
	for c := klass; c != 0; c = vm.RClass(c).Super {
		addModule(c)
	}
	return out
}

// ObjIsKindOf reports whether klass is among v's ancestors.
func (vm *VM) ObjIsKindOf(v, klass VALUE) bool {
	return vm.ClassInherits(vm.ClassOf(v), klass)
}

// ObjIsInstanceOf reports whether v's real class is exactly klass.
func (vm *VM) ObjIsInstanceOf(v, klass VALUE) bool {
	return vm.ObjClass(v) == klass
}

// ClassInherits reports whether mod is an ancestor of (or equal to) klass.
func (vm *VM) ClassInherits(klass, mod VALUE) bool {
	if klass == 0 {
		return false
	}
	for _, a := range vm.Ancestors(klass) {
		if a == mod {
			return true
		}
	}
	return false
}

// SingletonClass returns the singleton class of v, creating it on first
// use. Immediates other than nil, true and false cannot have one.
func (vm *VM) SingletonClass(v VALUE) VALUE {
	switch v {
	case Qnil:
		return vm.CNilClass
	case Qtrue:
		return vm.CTrueClass
	case Qfalse:
		return vm.CFalseClass
	}
	if SpecialConstP(v) {
		vm.Raisef(vm.ETypeError, "can't define singleton")
	}
	switch vm.BuiltinType(v) {
	case TClass:
		return vm.metaclassOf(v)
	case TModule:
		c := vm.RClass(v)
		if vm.Flags(c.Klass)&FlSingleton != 0 {
			return c.Klass
		}
	}
	b := vm.Basic(v)
	if vm.Flags(b.Klass)&FlSingleton != 0 && vm.RClass(b.Klass).attached == v {
		return b.Klass
	}
	s := vm.allocClass(vm.CClass, b.Klass, "", false)
	sc := vm.RClass(s)
	sc.Flags |= FlSingleton
	sc.attached = v
	b.Klass = s
	return s
}

// ---------------------------------------------------------------------------
// Constants and instance variables
// ---------------------------------------------------------------------------

func (vm *VM) setConst(klass VALUE, id ID, v VALUE) {
	vm.RClass(klass).Consts[id] = v
	if vm.BuiltinType(v) == TClass || vm.BuiltinType(v) == TModule {
		vm.SetClassPath(v, vm.qualify(klass, vm.IDName(id)))
	}
}

// ConstSet defines a constant in klass.
func (vm *VM) ConstSet(klass VALUE, name string, v VALUE) {
	vm.setConst(klass, vm.Intern(name), v)
}

// ConstGet looks a constant up in klass and its ancestors, then in
// Object. It raises NameError when the constant is missing.
func (vm *VM) ConstGet(klass VALUE, name string) VALUE {
	if v, ok := vm.ConstLookup(klass, name); ok {
		return v
	}
	vm.Raisef(vm.ENameError, "uninitialized constant %s", vm.qualify(klass, name))
	return Qnil
}

// ConstLookup is ConstGet without the NameError. Names may be paths such
// as "Garnet::GoObject".
func (vm *VM) ConstLookup(klass VALUE, name string) (VALUE, bool) {
	parts := strings.Split(name, "::")
	cur := klass
	for i, part := range parts {
		id, ok := vm.CheckID(part)
		if !ok {
			return Qnil, false
		}
		v, ok := vm.constIn(cur, id, i == 0)
		if !ok {
			return Qnil, false
		}
		cur = v
	}
	return cur, true
}

func (vm *VM) constIn(klass VALUE, id ID, fallback bool) (VALUE, bool) {
	for _, a := range vm.Ancestors(klass) {
		if v, ok := vm.RClass(a).Consts[id]; ok {
			return v, true
		}
	}
	if fallback {
		if v, ok := vm.RClass(vm.CObject).Consts[id]; ok {
			return v, true
		}
	}
	return Qnil, false
}

// IvarGet reads an instance variable, returning nil when unset.
func (vm *VM) IvarGet(obj VALUE, id ID) VALUE {
	if SpecialConstP(obj) {
		return Qnil
	}
	switch o := vm.slot(obj).(type) {
	case *RObject:
		if i := o.ivarIndex(id); i >= 0 {
			return o.Ivars[i]
		}
	case *RClass:
		if v, ok := o.Ivars[id]; ok {
			return v
		}
	}
	return Qnil
}

// IvarSet writes an instance variable. Only plain objects and classes
// carry instance variables.
func (vm *VM) IvarSet(obj VALUE, id ID, v VALUE) VALUE {
	vm.CheckFrozen(obj)
	switch o := vm.slot(obj).(type) {
	case *RObject:
		if i := o.ivarIndex(id); i >= 0 {
			o.Ivars[i] = v
			return v
		}
		o.ivarID = append(o.ivarID, id)
		o.Ivars = append(o.Ivars, v)
	case *RClass:
		o.Ivars[id] = v
	default:
		vm.Raisef(vm.ERuntimeError, "can't set instance variable on %s", vm.ObjClassName(obj))
	}
	return v
}

// IvarNames lists the instance variables of a plain object in
// definition order.
func (vm *VM) IvarNames(obj VALUE) []ID {
	if o, ok := vm.slot(obj).(*RObject); ok {
		return append([]ID(nil), o.ivarID...)
	}
	return nil
}
