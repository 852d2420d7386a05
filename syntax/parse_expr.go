package syntax

import (
	"strconv"
	"unicode/utf8"

	"atomc/depm"
	"atomc/report"
	"atomc/sem"
	"atomc/util"
)

// NOTE: Every expression production returns the synthesized attributes of the
// expression it parsed.  The binary precedence levels are parsed iteratively
// and are left associative.

// expr = expr_assign
func (p *Parser) expr() (*sem.RetVal, bool, error) {
	return p.exprAssign()
}

// expr_assign = expr_unary '=' expr_assign | expr_or
func (p *Parser) exprAssign() (*sem.RetVal, bool, error) {
	m := p.mark()

	dst, ok, err := p.exprUnary()
	if err != nil {
		return nil, false, err
	}

	if ok && p.got(TOK_ASSIGN) {
		assignTok := p.tok()
		p.next()

		src, ok, err := p.exprAssign()
		if err != nil {
			return nil, false, err
		} else if !ok {
			return nil, false, p.reject()
		}

		rv, err := sem.Assign(dst, src, assignTok.Span)
		if err != nil {
			return nil, false, err
		}

		return rv, true, nil
	}

	// Not an assignment: reparse the same tokens as a logical or.
	p.rewind(m)
	return p.exprOr()
}

// binaryOps maps binary operator tokens to their operators.
var binaryOps = map[int]sem.Op{
	TOK_LOR:   sem.OpOr,
	TOK_LAND:  sem.OpAnd,
	TOK_EQ:    sem.OpEq,
	TOK_NEQ:   sem.OpNotEq,
	TOK_LT:    sem.OpLt,
	TOK_LTEQ:  sem.OpLtEq,
	TOK_GT:    sem.OpGt,
	TOK_GTEQ:  sem.OpGtEq,
	TOK_PLUS:  sem.OpAdd,
	TOK_MINUS: sem.OpSub,
	TOK_STAR:  sem.OpMul,
	TOK_DIV:   sem.OpDiv,
}

// exprBinary parses a single precedence level of binary operators:
//
// operand {op operand}
func (p *Parser) exprBinary(operand func() (*sem.RetVal, bool, error), opKinds ...int) (*sem.RetVal, bool, error) {
	lhs, ok, err := operand()
	if err != nil || !ok {
		return nil, false, err
	}

	for p.gotOneOf(opKinds...) {
		opTok := p.tok()
		p.next()

		rhs, ok, err := operand()
		if err != nil {
			return nil, false, err
		} else if !ok {
			return nil, false, p.reject()
		}

		if lhs, err = sem.Binary(binaryOps[opTok.Kind], lhs, rhs, opTok.Span); err != nil {
			return nil, false, err
		}
	}

	return lhs, true, nil
}

// expr_or = expr_and {'||' expr_and}
func (p *Parser) exprOr() (*sem.RetVal, bool, error) {
	return p.exprBinary(p.exprAnd, TOK_LOR)
}

// expr_and = expr_eq {'&&' expr_eq}
func (p *Parser) exprAnd() (*sem.RetVal, bool, error) {
	return p.exprBinary(p.exprEq, TOK_LAND)
}

// expr_eq = expr_rel {('==' | '!=') expr_rel}
func (p *Parser) exprEq() (*sem.RetVal, bool, error) {
	return p.exprBinary(p.exprRel, TOK_EQ, TOK_NEQ)
}

// expr_rel = expr_add {('<' | '<=' | '>' | '>=') expr_add}
func (p *Parser) exprRel() (*sem.RetVal, bool, error) {
	return p.exprBinary(p.exprAdd, TOK_LT, TOK_LTEQ, TOK_GT, TOK_GTEQ)
}

// expr_add = expr_mul {('+' | '-') expr_mul}
func (p *Parser) exprAdd() (*sem.RetVal, bool, error) {
	return p.exprBinary(p.exprMul, TOK_PLUS, TOK_MINUS)
}

// expr_mul = expr_cast {('*' | '/') expr_cast}
func (p *Parser) exprMul() (*sem.RetVal, bool, error) {
	return p.exprBinary(p.exprCast, TOK_STAR, TOK_DIV)
}

// -----------------------------------------------------------------------------

// expr_cast = '(' type_name ')' expr_cast | expr_unary
func (p *Parser) exprCast() (*sem.RetVal, bool, error) {
	if p.got(TOK_LPAREN) {
		m := p.mark()
		lparenTok := p.tok()
		p.next()

		// The target type is a local value: it cannot be disturbed by any
		// types parsed inside the operand.
		to, ok, err := p.typeName()
		if err != nil {
			return nil, false, err
		}

		if ok {
			if err := p.assertAndNext(TOK_RPAREN); err != nil {
				return nil, false, err
			}

			operand, ok, err := p.exprCast()
			if err != nil {
				return nil, false, err
			} else if !ok {
				return nil, false, p.reject()
			}

			rv, err := sem.ExplicitCast(to, operand, lparenTok.Span)
			if err != nil {
				return nil, false, err
			}

			return rv, true, nil
		}

		// A parenthesized expression, not a cast.
		p.rewind(m)
	}

	return p.exprUnary()
}

// expr_unary = ('-' | '!') expr_unary | expr_postfix
func (p *Parser) exprUnary() (*sem.RetVal, bool, error) {
	if !p.gotOneOf(TOK_MINUS, TOK_NOT) {
		return p.exprPostfix()
	}

	opTok := p.tok()
	p.next()

	operand, ok, err := p.exprUnary()
	if err != nil {
		return nil, false, err
	} else if !ok {
		return nil, false, p.reject()
	}

	op := sem.OpNeg
	if opTok.Kind == TOK_NOT {
		op = sem.OpNot
	}

	rv, err := sem.Unary(op, operand, opTok.Span)
	if err != nil {
		return nil, false, err
	}

	return rv, true, nil
}

// expr_postfix = expr_primary {'[' expr ']' | '.' ID}
func (p *Parser) exprPostfix() (*sem.RetVal, bool, error) {
	base, ok, err := p.exprPrimary()
	if err != nil || !ok {
		return nil, false, err
	}

	for {
		switch p.tok().Kind {
		case TOK_LBRACKET:
			lbracketTok := p.tok()
			p.next()

			index, ok, err := p.expr()
			if err != nil {
				return nil, false, err
			} else if !ok {
				return nil, false, p.reject()
			}

			if err := p.assertAndNext(TOK_RBRACKET); err != nil {
				return nil, false, err
			}

			if base, err = sem.Index(base, index, lbracketTok.Span); err != nil {
				return nil, false, err
			}
		case TOK_DOT:
			p.next()

			if err := p.assert(TOK_IDENT); err != nil {
				return nil, false, err
			}

			nameTok := p.tok()
			p.next()

			if base, err = sem.Member(base, nameTok.Value, nameTok.Span); err != nil {
				return nil, false, err
			}
		default:
			return base, true, nil
		}
	}
}

// expr_primary = ID ['(' [expr {',' expr}] ')']
//              | INTLIT | REALLIT | CHARLIT | STRINGLIT
//              | '(' expr ')'
func (p *Parser) exprPrimary() (*sem.RetVal, bool, error) {
	tok := p.tok()

	switch tok.Kind {
	case TOK_IDENT:
		p.next()

		sym, ok := p.symbols.Find(tok.Value)
		if !ok {
			return nil, false, p.errorOn(tok, "undefined symbol: `%s`", tok.Value)
		}

		if p.got(TOK_LPAREN) {
			return p.exprCall(sym, tok)
		}

		rv, err := sem.VarRef(sym, tok.Span)
		if err != nil {
			return nil, false, err
		}

		return rv, true, nil
	case TOK_INTLIT:
		p.next()

		// Base 0 accepts the `0x` and leading `0` prefixes the lexer allows.
		v, err := strconv.ParseInt(tok.Value, 0, 64)
		if err != nil {
			return nil, false, p.errorOn(tok, "integer constant out of range: %s", tok.Value)
		}

		return sem.IntLit(v), true, nil
	case TOK_REALLIT:
		p.next()

		v, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, false, p.errorOn(tok, "real constant out of range: %s", tok.Value)
		}

		return sem.DoubleLit(v), true, nil
	case TOK_CHARLIT:
		p.next()

		c, _ := utf8.DecodeRuneInString(tok.Value)
		return sem.CharLit(byte(c)), true, nil
	case TOK_STRINGLIT:
		p.next()
		return sem.StringLit(tok.Value), true, nil
	case TOK_LPAREN:
		m := p.mark()
		p.next()

		rv, ok, err := p.expr()
		if err != nil {
			return nil, false, err
		} else if !ok {
			p.rewind(m)
			return nil, false, nil
		}

		if err := p.assertAndNext(TOK_RPAREN); err != nil {
			return nil, false, err
		}

		return rv, true, nil
	}

	return nil, false, nil
}

// exprCall parses the argument list of a call to fn.  The parser must be
// positioned on the opening parenthesis.
//
// '(' [expr {',' expr}] ')'
func (p *Parser) exprCall(fn *depm.Symbol, nameTok *Token) (*sem.RetVal, bool, error) {
	if err := sem.CheckCallee(fn, nameTok.Span); err != nil {
		return nil, false, err
	}

	p.next()

	var args []*sem.RetVal
	var argTokens []*Token
	if !p.got(TOK_RPAREN) {
		for {
			argTok := p.tok()
			arg, ok, err := p.expr()
			if err != nil {
				return nil, false, err
			} else if !ok {
				return nil, false, p.reject()
			}

			args = append(args, arg)
			argTokens = append(argTokens, argTok)

			if !p.got(TOK_COMMA) {
				break
			}

			p.next()
		}
	}

	closeTok := p.tok()
	if err := p.assertAndNext(TOK_RPAREN); err != nil {
		return nil, false, err
	}

	argSpans := util.Map(argTokens, func(tok *Token) *report.TextSpan {
		return tok.Span
	})

	rv, err := sem.Call(fn, args, argSpans, closeTok.Span)
	if err != nil {
		return nil, false, err
	}

	return rv, true, nil
}
