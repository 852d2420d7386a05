package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testStruct struct {
	name string
}

func (ts *testStruct) StructName() string {
	return ts.name
}

func TestRepr(t *testing.T) {
	p := &testStruct{name: "P"}

	testData := []struct {
		typ  Type
		repr string
	}{
		{NewScalar(TBInt), "int"},
		{NewScalar(TBDouble), "double"},
		{NewScalar(TBVoid), "void"},
		{NewArray(NewScalar(TBChar), Unsized), "char[]"},
		{NewArray(NewScalar(TBInt), 5), "int[5]"},
		{NewStruct(p), "struct P"},
		{NewArray(NewStruct(p), 3), "struct P[3]"},
	}

	for _, data := range testData {
		assert.Equal(t, data.repr, data.typ.Repr())
	}
}

func TestArrayElem(t *testing.T) {
	arr := NewArray(NewScalar(TBInt), 5)

	assert.True(t, arr.IsArray())
	assert.False(t, arr.IsNumeric())
	assert.False(t, arr.Elem().IsArray())
	assert.True(t, arr.Elem().Equals(NewScalar(TBInt)))
	assert.True(t, NewArray(NewScalar(TBInt), Unsized).IsArray())
}

func TestNumericCastsAreMutual(t *testing.T) {
	numeric := []TypeBase{TBInt, TBDouble, TBChar}

	for _, src := range numeric {
		for _, dest := range numeric {
			assert.Nil(t, Cast(NewScalar(dest), NewScalar(src)), "%s -> %s", src.Repr(), dest.Repr())
		}
	}
}

func TestStructCastsAreNominal(t *testing.T) {
	a := &testStruct{name: "A"}
	b := &testStruct{name: "A"}

	assert.Nil(t, Cast(NewStruct(a), NewStruct(a)))

	err := Cast(NewStruct(a), NewStruct(b))
	if assert.NotNil(t, err) {
		assert.Equal(t, IncompatibleStruct, err.(*CastError).Kind)
		assert.Equal(t, "a structure cannot be converted to another one", err.Error())
	}

	err = Cast(NewScalar(TBInt), NewStruct(a))
	if assert.NotNil(t, err) {
		assert.Equal(t, IncompatibleTypes, err.(*CastError).Kind)
	}
}

func TestArrayCasts(t *testing.T) {
	p := &testStruct{name: "P"}

	testData := []struct {
		dest, src Type
		kind      CastErrorKind
		ok        bool
	}{
		{NewArray(NewScalar(TBInt), Unsized), NewArray(NewScalar(TBInt), 5), 0, true},
		{NewArray(NewScalar(TBInt), 5), NewArray(NewScalar(TBInt), 3), 0, true},
		{NewArray(NewStruct(p), Unsized), NewArray(NewStruct(p), 2), 0, true},
		{NewScalar(TBInt), NewArray(NewScalar(TBInt), 5), ArrayMismatch, false},
		{NewArray(NewScalar(TBInt), Unsized), NewScalar(TBInt), ArrayMismatch, false},
		{NewArray(NewScalar(TBInt), Unsized), NewArray(NewScalar(TBChar), Unsized), ElemMismatch, false},
	}

	for i, data := range testData {
		err := Cast(data.dest, data.src)
		if data.ok {
			assert.Nil(t, err, "case %d", i)
		} else if assert.NotNil(t, err, "case %d", i) {
			assert.Equal(t, data.kind, err.(*CastError).Kind, "case %d", i)
		}
	}
}

func TestVoidNeverCasts(t *testing.T) {
	void := NewScalar(TBVoid)

	for _, other := range []Type{NewScalar(TBInt), void} {
		err := Cast(other, void)
		if assert.NotNil(t, err) {
			assert.Equal(t, VoidValue, err.(*CastError).Kind)
		}

		assert.NotNil(t, Cast(void, other))
	}
}

func TestPromote(t *testing.T) {
	char, integer, double := NewScalar(TBChar), NewScalar(TBInt), NewScalar(TBDouble)

	assert.Equal(t, TBInt, Promote(char, integer).Base)
	assert.Equal(t, TBInt, Promote(integer, char).Base)
	assert.Equal(t, TBDouble, Promote(integer, double).Base)
	assert.Equal(t, TBChar, Promote(char, char).Base)
	assert.False(t, Promote(double, char).IsArray())
}
