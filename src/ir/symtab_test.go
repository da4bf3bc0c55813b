package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSymbolTableShadowing verifies the chaining contract: insert never
// deletes, find returns the most recent match, and a nested scope's
// declaration shadows an outer one without destroying it.
func TestSymbolTableShadowing(t *testing.T) {
	st := NewSymbolTable[*Symbol]()

	outer := &Symbol{Name: "x", Register: NewRegister("x", 32)}
	st.Insert("x", outer)

	got, ok := st.Find("x")
	require.True(t, ok)
	assert.Same(t, outer, got)

	inner := &Symbol{Name: "x", Register: NewRegister("x.1", 32)}
	st.Insert("x", inner)

	got, ok = st.Find("x")
	require.True(t, ok)
	assert.Same(t, inner, got, "Find must return the most recently inserted entry")

	st.Remove("x")
	got, ok = st.Find("x")
	require.True(t, ok)
	assert.Same(t, outer, got, "Remove must unshadow the prior entry")
}

// TestSymbolTableFindMissing verifies Find's zero-value, false-ok contract for
// an absent name.
func TestSymbolTableFindMissing(t *testing.T) {
	st := NewSymbolTable[*Symbol]()
	got, ok := st.Find("nope")
	assert.False(t, ok)
	assert.Nil(t, got)
}

// TestSymbolTableClear verifies Clear wipes every chain, including shadowed
// entries.
func TestSymbolTableClear(t *testing.T) {
	st := NewSymbolTable[*Symbol]()
	st.Insert("x", &Symbol{Name: "x"})
	st.Insert("x", &Symbol{Name: "x"})
	st.Insert("y", &Symbol{Name: "y"})

	st.Clear()

	_, ok := st.Find("x")
	assert.False(t, ok)
	_, ok = st.Find("y")
	assert.False(t, ok)
}

// TestFunctionSymbolTableArity verifies the generic SymbolTable instantiates
// cleanly over FunctionSymbol, used by the generator's global table to check
// call arity.
func TestFunctionSymbolTableArity(t *testing.T) {
	gt := NewSymbolTable[*FunctionSymbol]()
	gt.Insert("add", &FunctionSymbol{
		Symbol:         Symbol{Name: "add", Register: NewGlobalRegister("add", 32)},
		ParameterCount: 2,
	})

	fn, ok := gt.Find("add")
	require.True(t, ok)
	assert.Equal(t, 2, fn.ParameterCount)
	assert.Equal(t, "@add", fn.Register.String())
}
