package rbsys

import "sync"

// symbolTable interns names. IDs start at 1 so that the zero ID is never a
// valid name.
type symbolTable struct {
	mu    sync.RWMutex
	ids   map[string]ID
	names []string
}

func newSymbolTable() *symbolTable {
	return &symbolTable{
		ids:   make(map[string]ID),
		names: []string{""},
	}
}

func (st *symbolTable) intern(name string) ID {
	st.mu.RLock()
	id, ok := st.ids[name]
	st.mu.RUnlock()
	if ok {
		return id
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if id, ok := st.ids[name]; ok {
		return id
	}
	id = ID(len(st.names))
	st.names = append(st.names, name)
	st.ids[name] = id
	return id
}

func (st *symbolTable) lookup(name string) (ID, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	id, ok := st.ids[name]
	return id, ok
}

func (st *symbolTable) name(id ID) (string, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	if id == 0 || int(id) >= len(st.names) {
		return "", false
	}
	return st.names[id], true
}

// Intern returns the ID for name, creating it if needed.
func (vm *VM) Intern(name string) ID {
	return vm.symbols.intern(name)
}

// CheckID returns the ID for name only if it has already been interned.
func (vm *VM) CheckID(name string) (ID, bool) {
	return vm.symbols.lookup(name)
}

// IDName returns the name of id, or "" for an unknown ID.
func (vm *VM) IDName(id ID) string {
	name, _ := vm.symbols.name(id)
	return name
}

// ValidID reports whether id was produced by Intern.
func (vm *VM) ValidID(id ID) bool {
	_, ok := vm.symbols.name(id)
	return ok
}

// SymbolNew interns name and returns it as a static symbol.
func (vm *VM) SymbolNew(name string) VALUE {
	return ID2Sym(vm.Intern(name))
}

// SymbolName returns the name of a static symbol.
func (vm *VM) SymbolName(v VALUE) string {
	return vm.IDName(Sym2ID(v))
}
