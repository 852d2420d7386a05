package sem

import (
	"testing"

	"atomc/depm"
	"atomc/report"
	"atomc/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	span       = &report.TextSpan{StartLine: 1, StartCol: 1, EndLine: 1, EndCol: 2}
	intType    = types.NewScalar(types.TBInt)
	doubleType = types.NewScalar(types.TBDouble)
	charType   = types.NewScalar(types.TBChar)
)

func lval(t types.Type) *RetVal {
	return &RetVal{Type: t, IsLVal: true}
}

func assertErrorMessage(t *testing.T, err error, msg string) {
	t.Helper()

	require.NotNil(t, err)
	cerr, ok := report.AsCompileError(err)
	require.True(t, ok)
	assert.Equal(t, msg, cerr.Message)
}

func TestLiterals(t *testing.T) {
	testData := []struct {
		rv   *RetVal
		repr string
		kind CtKind
	}{
		{IntLit(7), "int", CtInt},
		{DoubleLit(1.5), "double", CtDouble},
		{CharLit('a'), "char", CtChar},
		{StringLit("hi"), "char[]", CtString},
	}

	for _, data := range testData {
		assert.Equal(t, data.repr, data.rv.Type.Repr())
		assert.True(t, data.rv.IsCtVal)
		assert.False(t, data.rv.IsLVal)
		assert.Equal(t, data.kind, data.rv.CtVal.Kind)
	}

	assert.Equal(t, "hi", StringLit("hi").CtVal.Str)
	assert.Equal(t, int64(7), IntLit(7).CtVal.Int)
}

func TestVarRef(t *testing.T) {
	rv, err := VarRef(depm.NewVar("x", depm.MemGlobal, intType, 0, nil), span)
	require.Nil(t, err)
	assert.True(t, rv.IsLVal)
	assert.False(t, rv.IsCtVal)

	_, err = VarRef(depm.NewFunc("f", depm.ClassFunc, intType, nil), span)
	assertErrorMessage(t, err, "a function can only be called: `f`")

	_, err = VarRef(depm.NewStruct("P", nil), span)
	assertErrorMessage(t, err, "`P` is a structure, not a value")
}

func TestCall(t *testing.T) {
	fn := depm.NewFunc("f", depm.ClassFunc, doubleType, nil)
	fn.Args.Add(depm.NewVar("a", depm.MemArg, intType, 1, nil))
	fn.Args.Add(depm.NewVar("s", depm.MemArg, types.NewArray(charType, types.Unsized), 1, nil))

	spans := []*report.TextSpan{span, span, span}

	rv, err := Call(fn, []*RetVal{CharLit('c'), StringLit("x")}, spans, span)
	require.Nil(t, err)
	assert.Equal(t, "double", rv.Type.Repr())
	assert.False(t, rv.IsLVal)
	assert.False(t, rv.IsCtVal)

	_, err = Call(fn, []*RetVal{IntLit(1)}, spans, span)
	assertErrorMessage(t, err, "too few arguments in call to `f`")

	_, err = Call(fn, []*RetVal{IntLit(1), StringLit("x"), IntLit(2)}, spans, span)
	assertErrorMessage(t, err, "too many arguments in call to `f`")

	_, err = Call(fn, []*RetVal{IntLit(1), IntLit(2)}, spans, span)
	assertErrorMessage(t, err, "invalid argument 2 in call to `f`: a scalar cannot be converted to an array")

	assert.NotNil(t, CheckCallee(depm.NewVar("x", depm.MemGlobal, intType, 0, nil), span))
	assert.Nil(t, CheckCallee(fn, span))
}

func TestIndexAndMember(t *testing.T) {
	p := depm.NewStruct("P", nil)
	p.Members.Add(depm.NewVar("x", depm.MemGlobal, intType, 0, nil))

	arr := lval(types.NewArray(p.Type, 5))

	elem, err := Index(arr, IntLit(0), span)
	require.Nil(t, err)
	assert.True(t, elem.IsLVal)
	assert.Equal(t, "struct P", elem.Type.Repr())

	field, err := Member(elem, "x", span)
	require.Nil(t, err)
	assert.True(t, field.IsLVal)
	assert.Equal(t, "int", field.Type.Repr())

	_, err = Member(elem, "y", span)
	assertErrorMessage(t, err, "struct P does not have a member y")

	_, err = Member(arr, "x", span)
	assertErrorMessage(t, err, "a field can only be selected from a struct")

	_, err = Index(lval(intType), IntLit(0), span)
	assertErrorMessage(t, err, "only an array can be indexed")

	_, err = Index(arr, elem, span)
	assert.NotNil(t, err)

	_, err = Index(arr, DoubleLit(1.0), span)
	assert.Nil(t, err)
}

func TestAssign(t *testing.T) {
	rv, err := Assign(lval(intType), DoubleLit(2.5), span)
	require.Nil(t, err)
	assert.False(t, rv.IsLVal)
	assert.False(t, rv.IsCtVal)
	assert.Equal(t, "int", rv.Type.Repr())

	_, err = Assign(IntLit(1), IntLit(2), span)
	assertErrorMessage(t, err, "cannot assign to a non-lvalue")

	_, err = Assign(lval(types.NewArray(intType, 3)), lval(types.NewArray(intType, 3)), span)
	assertErrorMessage(t, err, "arrays cannot be assigned")

	a, b := depm.NewStruct("A", nil), depm.NewStruct("B", nil)
	_, err = Assign(lval(a.Type), lval(a.Type), span)
	assert.Nil(t, err)

	_, err = Assign(lval(a.Type), lval(b.Type), span)
	assertErrorMessage(t, err, "invalid assignment: a structure cannot be converted to another one")
}

func TestOperators(t *testing.T) {
	rv, err := Binary(OpAdd, IntLit(1), DoubleLit(2), span)
	require.Nil(t, err)
	assert.Equal(t, "double", rv.Type.Repr())
	assert.False(t, rv.IsCtVal)

	rv, err = Binary(OpMul, CharLit('a'), CharLit('b'), span)
	require.Nil(t, err)
	assert.Equal(t, "char", rv.Type.Repr())

	for _, op := range []Op{OpLt, OpLtEq, OpGt, OpGtEq, OpEq, OpNotEq, OpAnd, OpOr} {
		rv, err = Binary(op, DoubleLit(1), CharLit('x'), span)
		require.Nil(t, err, op.String())
		assert.Equal(t, "int", rv.Type.Repr(), op.String())
	}

	_, err = Binary(OpEq, StringLit("a"), StringLit("a"), span)
	assertErrorMessage(t, err, "operator `==` cannot be applied to an array")

	p := depm.NewStruct("P", nil)
	_, err = Binary(OpAdd, IntLit(1), lval(p.Type), span)
	assertErrorMessage(t, err, "operator `+` cannot be applied to a structure")

	rv, err = Unary(OpNot, DoubleLit(0), span)
	require.Nil(t, err)
	assert.Equal(t, "int", rv.Type.Repr())

	rv, err = Unary(OpNeg, IntLit(3), span)
	require.Nil(t, err)
	assert.Equal(t, "int", rv.Type.Repr())
	assert.False(t, rv.IsCtVal)

	_, err = Unary(OpNeg, &RetVal{Type: types.NewScalar(types.TBVoid)}, span)
	assertErrorMessage(t, err, "operator `-` cannot be applied to a void value")
}

func TestExplicitCast(t *testing.T) {
	rv, err := ExplicitCast(intType, DoubleLit(3.75), span)
	require.Nil(t, err)
	assert.True(t, rv.IsCtVal)
	assert.Equal(t, CtInt, rv.CtVal.Kind)
	assert.Equal(t, int64(3), rv.CtVal.Int)
	assert.False(t, rv.IsLVal)

	rv, err = ExplicitCast(charType, lval(intType), span)
	require.Nil(t, err)
	assert.False(t, rv.IsCtVal)

	p := depm.NewStruct("P", nil)
	_, err = ExplicitCast(intType, lval(p.Type), span)
	assertErrorMessage(t, err, "cannot convert a struct")

	_, err = ExplicitCast(intType, StringLit("x"), span)
	assertErrorMessage(t, err, "invalid cast: an array can be converted only to another array")
}

func TestCondition(t *testing.T) {
	assert.Nil(t, Condition(lval(doubleType), span))
	assert.NotNil(t, Condition(lval(types.NewArray(intType, 2)), span))
	assert.NotNil(t, Condition(lval(depm.NewStruct("P", nil).Type), span))
	assert.NotNil(t, Condition(&RetVal{Type: types.NewScalar(types.TBVoid)}, span))
}

func TestReturnValue(t *testing.T) {
	voidFn := depm.NewFunc("v", depm.ClassFunc, types.NewScalar(types.TBVoid), nil)
	assertErrorMessage(t, ReturnValue(voidFn, IntLit(1), span), "a void function cannot return a value")

	intFn := depm.NewFunc("f", depm.ClassFunc, intType, nil)
	assert.Nil(t, ReturnValue(intFn, CharLit('a'), span))
	assert.NotNil(t, ReturnValue(intFn, StringLit("a"), span))
}

func TestArraySize(t *testing.T) {
	n, err := ArraySize(IntLit(5), span)
	require.Nil(t, err)
	assert.Equal(t, 5, n)

	_, err = ArraySize(lval(intType), span)
	assertErrorMessage(t, err, "array size is not a constant")

	_, err = ArraySize(DoubleLit(2), span)
	assertErrorMessage(t, err, "array size is not an integer")

	_, err = ArraySize(IntLit(0), span)
	assertErrorMessage(t, err, "array size must be positive")

	cast, err := ExplicitCast(intType, DoubleLit(4), span)
	require.Nil(t, err)
	n, err = ArraySize(cast, span)
	require.Nil(t, err)
	assert.Equal(t, 4, n)
}
