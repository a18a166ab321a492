package rbsys

import (
	"fmt"

	"github.com/tliron/commonlog"
)

// DefaultHeapSlots is the initial arena capacity.
const DefaultHeapSlots = 1024

// Options configures a new VM.
type Options struct {
	// HeapSlots is the initial arena capacity. The arena grows on demand.
	HeapSlots int
}

// VM is a single object space: heap arena, class tree, method tables,
// control frames and the pending exception slot.
//
// A VM is not safe for concurrent use. Every call must come from the
// goroutine that owns it.
type VM struct {
	slots []Object
	free  []int

	symbols *symbolTable

	frames  []*Frame
	blocks  []VALUE
	catches []VALUE

	errinfo VALUE
	pending *Jump
	backref VALUE

	globals     map[ID]*VALUE
	addresses   map[*VALUE]struct{}
	rootSets    []RootSet
	markObjects []VALUE
	classes     []VALUE

	gc  gcState
	log commonlog.Logger

	closed bool

	// Builtin classes and modules
	CBasicObject VALUE
	CObject      VALUE
	CModule      VALUE
	CClass       VALUE
	MKernel      VALUE
	MComparable  VALUE
	MEnumerable  VALUE
	MGC          VALUE
	CNilClass    VALUE
	CTrueClass   VALUE
	CFalseClass  VALUE
	CNumeric     VALUE
	CInteger     VALUE
	CFloat       VALUE
	CString      VALUE
	CSymbol      VALUE
	CArray       VALUE
	CHash        VALUE
	CStruct      VALUE
	CRegexp      VALUE
	CMatch       VALUE
	CComplex     VALUE
	CRational    VALUE
	CProc        VALUE
	CEnumerator  VALUE
	CData        VALUE

	// Builtin exception classes
	EException          VALUE
	EScriptError        VALUE
	ENotImpError        VALUE
	EStandardError      VALUE
	EArgError           VALUE
	EUncaughtThrowError VALUE
	EIndexError         VALUE
	EKeyError           VALUE
	EStopIteration      VALUE
	ERangeError         VALUE
	EFloatDomainError   VALUE
	ETypeError          VALUE
	ENameError          VALUE
	ENoMethodError      VALUE
	ERuntimeError       VALUE
	EFrozenError        VALUE
	ELocalJumpError     VALUE
	EZeroDivError       VALUE
	ERegexpError        VALUE
	EFatal              VALUE
}

// New creates a VM with its builtin class tree and methods installed.
func New(opts Options) *VM {
	n := opts.HeapSlots
	if n <= 0 {
		n = DefaultHeapSlots
	}
	vm := &VM{
		slots:     make([]Object, 0, n),
		symbols:   newSymbolTable(),
		errinfo:   Qnil,
		backref:   Qnil,
		globals:   make(map[ID]*VALUE),
		addresses: make(map[*VALUE]struct{}),
		log:       commonlog.GetLogger("garnet.gc"),
	}
	vm.initClasses()
	vm.initExceptions()
	vm.initBuiltins()
	return vm
}

// Close runs every pending free function and drops the heap. The VM must
// not be used afterwards.
func (vm *VM) Close() {
	if vm.closed {
		return
	}
	vm.closed = true
	for i, obj := range vm.slots {
		if td, ok := obj.(*RTypedData); ok && td.Type != nil && td.Type.Free != nil {
			td.Type.Free(td.Data)
		}
		vm.slots[i] = nil
	}
	vm.slots = nil
	vm.free = nil
}

// ---------------------------------------------------------------------------
// Heap arena
// ---------------------------------------------------------------------------

func (vm *VM) newObject(obj Object) VALUE {
	if vm.closed {
		panic("rbsys: allocation on a closed VM")
	}
	if n := len(vm.free); n > 0 {
		i := vm.free[n-1]
		vm.free = vm.free[:n-1]
		vm.slots[i] = obj
		return slotAddr(i)
	}
	vm.slots = append(vm.slots, obj)
	return slotAddr(len(vm.slots) - 1)
}

func (vm *VM) slot(v VALUE) Object {
	if SpecialConstP(v) || v&(1<<slotShift-1) != 0 {
		return nil
	}
	i := slotIndex(v)
	if i < 0 || i >= len(vm.slots) {
		return nil
	}
	return vm.slots[i]
}

// Flags reads the header flags of a heap reference. It returns 0, the
// T_NONE tag, for a free slot or an address outside the arena. Nothing
// past the header is read.
func (vm *VM) Flags(v VALUE) uint64 {
	obj := vm.slot(v)
	if obj == nil {
		return 0
	}
	return obj.basic().Flags
}

// BuiltinType returns the header type tag of a heap reference.
func (vm *VM) BuiltinType(v VALUE) ValueType {
	return ValueType(vm.Flags(v) & uint64(TMask))
}

// Basic returns the header of a live heap reference.
func (vm *VM) Basic(v VALUE) *RBasic {
	obj := vm.slot(v)
	if obj == nil {
		panic(fmt.Sprintf("rbsys: %#x is not a live object", uint64(v)))
	}
	return obj.basic()
}

func as[T Object](vm *VM, v VALUE, t ValueType) T {
	obj := vm.slot(v)
	if obj == nil {
		panic(fmt.Sprintf("rbsys: %#x is not a live object", uint64(v)))
	}
	if got := obj.basic().Type(); got != t {
		panic(fmt.Sprintf("rbsys: expected %s, got %s", t, got))
	}
	return obj.(T)
}

// RObject returns the object behind a T_OBJECT reference. It panics on any
// other type; callers check the tag first.
func (vm *VM) RObject(v VALUE) *RObject { return as[*RObject](vm, v, TObject) }

func (vm *VM) RString(v VALUE) *RString       { return as[*RString](vm, v, TString) }
func (vm *VM) RArray(v VALUE) *RArray         { return as[*RArray](vm, v, TArray) }
func (vm *VM) RHash(v VALUE) *RHash           { return as[*RHash](vm, v, THash) }
func (vm *VM) RFloat(v VALUE) *RFloat         { return as[*RFloat](vm, v, TFloat) }
func (vm *VM) RBignum(v VALUE) *RBignum       { return as[*RBignum](vm, v, TBignum) }
func (vm *VM) RStruct(v VALUE) *RStruct       { return as[*RStruct](vm, v, TStruct) }
func (vm *VM) RRegexp(v VALUE) *RRegexp       { return as[*RRegexp](vm, v, TRegexp) }
func (vm *VM) RMatch(v VALUE) *RMatch         { return as[*RMatch](vm, v, TMatch) }
func (vm *VM) RComplex(v VALUE) *RComplex     { return as[*RComplex](vm, v, TComplex) }
func (vm *VM) RRational(v VALUE) *RRational   { return as[*RRational](vm, v, TRational) }
func (vm *VM) RTypedData(v VALUE) *RTypedData { return as[*RTypedData](vm, v, TData) }

// RClass returns the class or module behind v.
func (vm *VM) RClass(v VALUE) *RClass {
	obj := vm.slot(v)
	if c, ok := obj.(*RClass); ok {
		return c
	}
	panic(fmt.Sprintf("rbsys: %#x is not a class or module", uint64(v)))
}

// ---------------------------------------------------------------------------
// Frozen state
// ---------------------------------------------------------------------------

// FrozenP reports whether v is frozen. Immediates are always frozen.
func (vm *VM) FrozenP(v VALUE) bool {
	if SpecialConstP(v) {
		return true
	}
	return vm.Flags(v)&FlFreeze != 0
}

// Freeze marks v as frozen and returns it.
func (vm *VM) Freeze(v VALUE) VALUE {
	if !SpecialConstP(v) {
		vm.Basic(v).Flags |= FlFreeze
	}
	return v
}

// CheckFrozen raises FrozenError if v is frozen.
func (vm *VM) CheckFrozen(v VALUE) {
	if vm.FrozenP(v) {
		vm.Raise(vm.FrozenErrorNew(v))
	}
}

// FrozenErrorNew builds the FrozenError raised for a mutation of v.
func (vm *VM) FrozenErrorNew(v VALUE) VALUE {
	msg := fmt.Sprintf("can't modify frozen %s: %s", vm.ObjClassName(v), vm.Inspect(v))
	exc := vm.ExcNew(vm.EFrozenError, msg)
	vm.IvarSet(exc, vm.Intern("receiver"), v)
	return exc
}
