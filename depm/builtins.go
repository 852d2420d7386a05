package depm

import "atomc/types"

// builtinParam is a parameter of a built-in function.
type builtinParam struct {
	name string
	typ  types.Type
}

// builtin describes a function provided by the runtime.
type builtin struct {
	name    string
	retType types.Type
	params  []builtinParam
}

var (
	intType    = types.NewScalar(types.TBInt)
	doubleType = types.NewScalar(types.TBDouble)
	charType   = types.NewScalar(types.TBChar)
	voidType   = types.NewScalar(types.TBVoid)
	stringType = types.NewArray(charType, types.Unsized)
)

// builtins is the list of functions every unit may call without declaring.
var builtins = []builtin{
	{"put_s", voidType, []builtinParam{{"s", stringType}}},
	{"get_s", voidType, []builtinParam{{"s", stringType}}},
	{"put_i", voidType, []builtinParam{{"i", intType}}},
	{"get_i", intType, nil},
	{"put_d", voidType, []builtinParam{{"d", doubleType}}},
	{"get_d", doubleType, nil},
	{"put_c", voidType, []builtinParam{{"c", charType}}},
	{"get_c", charType, nil},
}

// AddBuiltins registers the runtime's external functions in the table.
func AddBuiltins(st *SymbolTable) {
	for _, b := range builtins {
		fn := st.Add(NewFunc(b.name, ClassExtFunc, b.retType, nil))

		for _, param := range b.params {
			fn.Args.Add(NewVar(param.name, MemArg, param.typ, 1, nil))
		}
	}
}

// BuiltinCount returns the number of built-in functions.
func BuiltinCount() int {
	return len(builtins)
}
