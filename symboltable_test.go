package main

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestNewSymbolTable(t *testing.T) {
	st := NewSymbolTable()
	be.True(t, st != nil)
	be.Equal(t, st.Len(), 0)
	be.Equal(t, len(st.Names()), 0)
}

func TestDeclare(t *testing.T) {
	st := NewSymbolTable()

	ok := st.Declare("x")
	be.True(t, ok)
	be.Equal(t, st.Len(), 1)

	sym, found := st.Lookup("x")
	be.True(t, found)
	be.Equal(t, sym.Name, "x")
	be.Equal(t, sym.Type, "int")
}

func TestDeclareDuplicate(t *testing.T) {
	st := NewSymbolTable()

	be.True(t, st.Declare("x"))
	be.True(t, !st.Declare("x"))

	// A rejected declaration leaves the table unchanged.
	be.Equal(t, st.Len(), 1)
	be.Equal(t, len(st.Names()), 1)
}

func TestLookupUndeclared(t *testing.T) {
	st := NewSymbolTable()

	_, found := st.Lookup("missing")
	be.True(t, !found)
}

func TestDeclarationOrder(t *testing.T) {
	st := NewSymbolTable()

	st.Declare("c")
	st.Declare("a")
	st.Declare("b")

	be.Equal(t, st.Names(), []string{"c", "a", "b"})
}

func TestDeclarationOrderSurvivesDuplicates(t *testing.T) {
	st := NewSymbolTable()

	st.Declare("a")
	st.Declare("b")
	st.Declare("a")

	be.Equal(t, st.Names(), []string{"a", "b"})
}
