package syntax

import (
	"atomc/depm"
	"atomc/sem"
	"atomc/types"
)

// Unit parses a whole translation unit.  The runtime's built-in functions are
// registered before the first declaration is parsed.  Unit must only be called
// once per parser.  It returns true if the whole token stream was accepted; if
// it was not, the returned error describes the first problem found.
//
// unit = {decl_struct | decl_func | decl_var} EOF
func (p *Parser) Unit() (bool, error) {
	depm.AddBuiltins(p.symbols)

	for {
		if ok, err := p.declStruct(); err != nil {
			return false, err
		} else if ok {
			continue
		}

		if ok, err := p.declFunc(); err != nil {
			return false, err
		} else if ok {
			continue
		}

		if ok, err := p.declVar(); err != nil {
			return false, err
		} else if ok {
			continue
		}

		break
	}

	if !p.got(TOK_EOF) {
		return false, p.reject()
	}

	return true, nil
}

// -----------------------------------------------------------------------------

// decl_struct = 'struct' ID '{' {decl_var} '}' ';'
func (p *Parser) declStruct() (bool, error) {
	if !p.got(TOK_STRUCT) {
		return false, nil
	}

	// `struct ID` may also begin a variable or function declaration.
	m := p.mark()
	p.next()

	if !p.got(TOK_IDENT) {
		p.rewind(m)
		return false, nil
	}

	nameTok := p.tok()
	p.next()

	if !p.got(TOK_LBRACE) {
		p.rewind(m)
		return false, nil
	}

	p.next()

	if _, ok := p.symbols.Find(nameTok.Value); ok {
		return false, p.errorOn(nameTok, "symbol redefinition: `%s`", nameTok.Value)
	}

	// The struct is registered before its body so that its members can refer
	// to it and to every struct declared before it.
	structSym := p.symbols.Add(depm.NewStruct(nameTok.Value, nameTok.Span))

	p.pushContext(declContext{structSym: structSym})

	for {
		ok, err := p.declVar()
		if err != nil {
			return false, err
		} else if !ok {
			break
		}
	}

	if err := p.assertAndNext(TOK_RBRACE); err != nil {
		return false, err
	}

	if err := p.assertAndNext(TOK_SEMI); err != nil {
		return false, err
	}

	p.popContext()
	return true, nil
}

// decl_var = type_base ID [array_decl] {',' ID [array_decl]} ';'
func (p *Parser) declVar() (bool, error) {
	baseType, ok, err := p.typeBase()
	if err != nil || !ok {
		return false, err
	}

	for {
		if err := p.assert(TOK_IDENT); err != nil {
			return false, err
		}

		nameTok := p.tok()
		p.next()

		varType := baseType
		if p.got(TOK_LBRACKET) {
			n, err := p.arrayDecl()
			if err != nil {
				return false, err
			}

			if n == types.Unsized {
				return false, p.errorOn(nameTok, "a vector variable must have a specified dimension")
			}

			varType = types.NewArray(baseType, n)
		}

		if err := p.addVar(nameTok, varType); err != nil {
			return false, err
		}

		if !p.got(TOK_COMMA) {
			break
		}

		p.next()
	}

	if err := p.assertAndNext(TOK_SEMI); err != nil {
		return false, err
	}

	return true, nil
}

// addVar declares a variable according to the enclosing declaration: as a
// member of the struct being declared, as a local of the function being
// declared, or as a global.
func (p *Parser) addVar(nameTok *Token, typ types.Type) error {
	name := nameTok.Value

	if structSym := p.currentStruct(); structSym != nil {
		if _, ok := structSym.Members.Find(name); ok {
			return p.errorOn(nameTok, "symbol redefinition: `%s`", name)
		}

		structSym.Members.Add(depm.NewVar(name, depm.MemGlobal, typ, p.depth, nameTok.Span))
	} else if p.currentFunc() != nil {
		// Locals may shadow declarations from enclosing scopes but not those
		// from their own scope.
		if sym, ok := p.symbols.Find(name); ok && sym.Depth == p.depth {
			return p.errorOn(nameTok, "symbol redefinition: `%s`", name)
		}

		p.symbols.Add(depm.NewVar(name, depm.MemLocal, typ, p.depth, nameTok.Span))
	} else {
		if _, ok := p.symbols.Find(name); ok {
			return p.errorOn(nameTok, "symbol redefinition: `%s`", name)
		}

		p.symbols.Add(depm.NewVar(name, depm.MemGlobal, typ, p.depth, nameTok.Span))
	}

	return nil
}

// -----------------------------------------------------------------------------

// decl_func = (type_base ['*'] | 'void') ID '(' [func_arg {',' func_arg}] ')'
//             stm_compound
func (p *Parser) declFunc() (bool, error) {
	m := p.mark()

	var retType types.Type
	if p.got(TOK_VOID) {
		retType = types.NewScalar(types.TBVoid)
		p.next()
	} else {
		baseType, ok, err := p.typeBase()
		if err != nil || !ok {
			return false, err
		}

		retType = baseType
		if p.got(TOK_STAR) {
			p.next()
			retType = types.NewArray(baseType, types.Unsized)
		}
	}

	if !p.got(TOK_IDENT) {
		p.rewind(m)
		return false, nil
	}

	nameTok := p.tok()
	p.next()

	if !p.got(TOK_LPAREN) {
		p.rewind(m)
		return false, nil
	}

	p.next()

	if _, ok := p.symbols.Find(nameTok.Value); ok {
		return false, p.errorOn(nameTok, "symbol redefinition: `%s`", nameTok.Value)
	}

	// The function is registered before its parameters and body so that it
	// can call itself.
	fn := p.symbols.Add(depm.NewFunc(nameTok.Value, depm.ClassFunc, retType, nameTok.Span))

	p.pushContext(declContext{funcSym: fn})
	p.depth++

	ok, err := p.funcArg(fn)
	if err != nil {
		return false, err
	}

	for ok && p.got(TOK_COMMA) {
		p.next()

		if ok, err = p.funcArg(fn); err != nil {
			return false, err
		} else if !ok {
			return false, p.reject()
		}
	}

	if err := p.assertAndNext(TOK_RPAREN); err != nil {
		return false, err
	}

	p.depth--

	if ok, err := p.stmCompound(); err != nil {
		return false, err
	} else if !ok {
		return false, p.assert(TOK_LBRACE)
	}

	// Discard the parameters and any locals still in the table.
	p.symbols.DeleteSymbolsAfter(fn)
	p.popContext()

	return true, nil
}

// func_arg = type_base ID [array_decl]
func (p *Parser) funcArg(fn *depm.Symbol) (bool, error) {
	typ, ok, err := p.typeBase()
	if err != nil || !ok {
		return false, err
	}

	if err := p.assert(TOK_IDENT); err != nil {
		return false, err
	}

	nameTok := p.tok()
	p.next()

	if p.got(TOK_LBRACKET) {
		n, err := p.arrayDecl()
		if err != nil {
			return false, err
		}

		typ = types.NewArray(typ, n)
	}

	if _, ok := fn.Args.Find(nameTok.Value); ok {
		return false, p.errorOn(nameTok, "symbol redefinition: `%s`", nameTok.Value)
	}

	p.symbols.Add(depm.NewVar(nameTok.Value, depm.MemArg, typ, p.depth, nameTok.Span))
	fn.Args.Add(depm.NewVar(nameTok.Value, depm.MemArg, typ, p.depth, nameTok.Span))

	return true, nil
}

// -----------------------------------------------------------------------------

// type_base = 'int' | 'double' | 'char' | 'struct' ID
func (p *Parser) typeBase() (types.Type, bool, error) {
	switch p.tok().Kind {
	case TOK_INT:
		p.next()
		return types.NewScalar(types.TBInt), true, nil
	case TOK_DOUBLE:
		p.next()
		return types.NewScalar(types.TBDouble), true, nil
	case TOK_CHAR:
		p.next()
		return types.NewScalar(types.TBChar), true, nil
	case TOK_STRUCT:
		p.next()

		if err := p.assert(TOK_IDENT); err != nil {
			return types.Type{}, false, err
		}

		nameTok := p.tok()
		p.next()

		sym, ok := p.symbols.Find(nameTok.Value)
		if !ok || sym.Class != depm.ClassStruct {
			return types.Type{}, false, p.errorOn(nameTok, "undefined structure %s", nameTok.Value)
		}

		return sym.Type, true, nil
	}

	return types.Type{}, false, nil
}

// array_decl = '[' [expr] ']'
//
// The parser must be positioned on the opening bracket.  The number of
// elements is returned: types.Unsized if no size is given.
func (p *Parser) arrayDecl() (int, error) {
	p.next()

	if p.got(TOK_RBRACKET) {
		p.next()
		return types.Unsized, nil
	}

	sizeTok := p.tok()
	size, ok, err := p.expr()
	if err != nil {
		return 0, err
	} else if !ok {
		return 0, p.reject()
	}

	n, err := sem.ArraySize(size, sizeTok.Span)
	if err != nil {
		return 0, err
	}

	if err := p.assertAndNext(TOK_RBRACKET); err != nil {
		return 0, err
	}

	return n, nil
}

// type_name = type_base [array_decl]
func (p *Parser) typeName() (types.Type, bool, error) {
	typ, ok, err := p.typeBase()
	if err != nil || !ok {
		return typ, ok, err
	}

	if p.got(TOK_LBRACKET) {
		n, err := p.arrayDecl()
		if err != nil {
			return types.Type{}, false, err
		}

		typ = types.NewArray(typ, n)
	}

	return typ, true, nil
}
