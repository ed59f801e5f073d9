package main

// Symbol describes one declared variable. The language has a single
// type, so Type is always "int".
type Symbol struct {
	Name string
	Type string
}

// SymbolTable maps declared names to their symbols and records
// first-declaration order for report display. One table exists per
// compilation; it is never shared across compilations.
type SymbolTable struct {
	symbols map[string]Symbol
	order   []string
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]Symbol)}
}

// Declare inserts a new symbol. It reports false if the name is already
// declared; the table is unchanged in that case.
func (st *SymbolTable) Declare(name string) bool {
	if _, exists := st.symbols[name]; exists {
		return false
	}
	st.symbols[name] = Symbol{Name: name, Type: "int"}
	st.order = append(st.order, name)
	return true
}

// Lookup returns the symbol for name, if declared.
func (st *SymbolTable) Lookup(name string) (Symbol, bool) {
	sym, ok := st.symbols[name]
	return sym, ok
}

// Names returns the declared names in first-declaration order.
func (st *SymbolTable) Names() []string {
	return st.order
}

func (st *SymbolTable) Len() int {
	return len(st.symbols)
}
