package depm

import (
	"bytes"
	"testing"

	"atomc/types"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var intT = types.NewScalar(types.TBInt)

func TestFindPrefersMostRecent(t *testing.T) {
	st := NewSymbolTable()
	global := st.Add(NewVar("x", MemGlobal, intT, 0, nil))
	local := st.Add(NewVar("x", MemLocal, types.NewScalar(types.TBDouble), 1, nil))

	sym, ok := st.Find("x")
	require.True(t, ok)
	assert.True(t, sym == local)

	st.Truncate(1)

	sym, ok = st.Find("x")
	require.True(t, ok)
	assert.True(t, sym == global)

	_, ok = st.Find("y")
	assert.False(t, ok)
}

func TestFindIsMutable(t *testing.T) {
	st := NewSymbolTable()
	st.Add(NewVar("x", MemGlobal, intT, 0, nil))

	sym, _ := st.Find("x")
	sym.Depth = 4

	again, _ := st.Find("x")
	assert.Equal(t, 4, again.Depth)
}

func TestTruncate(t *testing.T) {
	st := NewSymbolTable()
	for _, name := range []string{"a", "b", "c"} {
		st.Add(NewVar(name, MemGlobal, intT, 0, nil))
	}

	st.Truncate(5)
	assert.Equal(t, 3, st.Len())

	st.Truncate(1)
	assert.Equal(t, 1, st.Len())
	assert.Equal(t, "a", st.At(0).Name)

	st.Truncate(-2)
	assert.Equal(t, 0, st.Len())
}

func TestDeleteSymbolsAfterUsesIdentity(t *testing.T) {
	st := NewSymbolTable()
	first := st.Add(NewVar("f", MemGlobal, intT, 0, nil))
	marker := st.Add(NewFunc("f", ClassFunc, intT, nil))
	st.Add(NewVar("x", MemArg, intT, 1, nil))
	st.Add(NewVar("f", MemLocal, intT, 1, nil))

	require.True(t, st.DeleteSymbolsAfter(marker))
	assert.Equal(t, 2, st.Len())
	assert.True(t, st.At(1) == marker)
	assert.True(t, st.At(0) == first)

	assert.False(t, st.DeleteSymbolsAfter(NewVar("ghost", MemGlobal, intT, 0, nil)))
	assert.Equal(t, 2, st.Len())
}

func TestBuiltins(t *testing.T) {
	st := NewSymbolTable()
	AddBuiltins(st)

	require.Equal(t, BuiltinCount(), st.Len())

	testData := []struct {
		name    string
		retType string
		args    []string
	}{
		{"put_s", "void", []string{"char[]"}},
		{"get_s", "void", []string{"char[]"}},
		{"put_i", "void", []string{"int"}},
		{"get_i", "int", nil},
		{"put_d", "void", []string{"double"}},
		{"get_d", "double", nil},
		{"put_c", "void", []string{"char"}},
		{"get_c", "char", nil},
	}

	for _, data := range testData {
		sym, ok := st.Find(data.name)
		require.True(t, ok, data.name)

		assert.Equal(t, ClassExtFunc, sym.Class, data.name)
		assert.True(t, sym.IsFunc(), data.name)
		assert.Equal(t, data.retType, sym.Type.Repr(), data.name)
		require.Equal(t, len(data.args), sym.Args.Len(), data.name)

		for i, arg := range data.args {
			assert.Equal(t, arg, sym.Args.At(i).Type.Repr(), data.name)
		}
	}
}

func TestStructSymbol(t *testing.T) {
	p := NewStruct("P", nil)
	p.Members.Add(NewVar("x", MemGlobal, intT, 0, nil))

	assert.Equal(t, "struct P", p.Type.Repr())
	assert.True(t, StructOf(p.Type) == p)
	assert.Nil(t, StructOf(intT))
	assert.False(t, p.IsFunc())
}

func TestView(t *testing.T) {
	st := NewSymbolTable()
	p := st.Add(NewStruct("P", nil))
	p.Members.Add(NewVar("x", MemGlobal, intT, 0, nil))
	f := st.Add(NewFunc("f", ClassFunc, intT, nil))
	f.Args.Add(NewVar("a", MemArg, types.NewArray(p.Type, types.Unsized), 1, nil))

	expected := []SymbolView{
		{
			Name:  "P",
			Class: "struct",
			Type:  "struct P",
			Args:  nil,
			Members: []SymbolView{
				{Name: "x", Class: "var", Memory: "global", Type: "int"},
			},
		},
		{
			Name:  "f",
			Class: "func",
			Type:  "int",
			Args: []SymbolView{
				{Name: "a", Class: "var", Memory: "arg", Type: "struct P[]", Depth: 1},
			},
		},
	}

	actual := View(st)
	assert.Equal(t, expected, actual, pretty.Diff(expected, actual))
	assert.Contains(t, DebugString(st), "struct P[]")
}

func TestDump(t *testing.T) {
	st := NewSymbolTable()
	AddBuiltins(st)
	st.Add(NewVar("counter", MemGlobal, intT, 0, nil))

	buff := &bytes.Buffer{}
	require.NoError(t, Dump(buff, st, false))
	assert.Contains(t, buff.String(), "counter")
	assert.NotContains(t, buff.String(), "put_s")

	buff.Reset()
	require.NoError(t, Dump(buff, st, true))
	assert.Contains(t, buff.String(), "put_s")
	assert.Contains(t, buff.String(), "(char[] s)")
}
