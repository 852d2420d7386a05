package syntax

import (
	"atomc/sem"
)

// stm = stm_compound
//     | 'if' '(' expr ')' stm ['else' stm]
//     | 'while' '(' expr ')' stm
//     | 'for' '(' [expr] ';' [expr] ';' [expr] ')' stm
//     | 'break' ';'
//     | 'return' [expr] ';'
//     | [expr] ';'
func (p *Parser) stm() (bool, error) {
	switch p.tok().Kind {
	case TOK_LBRACE:
		return p.stmCompound()
	case TOK_IF:
		return p.stmIf()
	case TOK_WHILE:
		return p.stmWhile()
	case TOK_FOR:
		return p.stmFor()
	case TOK_BREAK:
		return p.stmBreak()
	case TOK_RETURN:
		return p.stmReturn()
	}

	return p.stmExpr()
}

// stm_compound = '{' {decl_var | stm} '}'
func (p *Parser) stmCompound() (bool, error) {
	if !p.got(TOK_LBRACE) {
		return false, nil
	}

	p.next()

	scopeStart := p.symbols.Len()
	p.depth++

	for {
		if ok, err := p.declVar(); err != nil {
			return false, err
		} else if ok {
			continue
		}

		if ok, err := p.stm(); err != nil {
			return false, err
		} else if ok {
			continue
		}

		break
	}

	if err := p.assertAndNext(TOK_RBRACE); err != nil {
		return false, err
	}

	p.symbols.Truncate(scopeStart)
	p.depth--

	return true, nil
}

// 'if' '(' expr ')' stm ['else' stm]
func (p *Parser) stmIf() (bool, error) {
	p.next()

	if err := p.condition(); err != nil {
		return false, err
	}

	if err := p.body(); err != nil {
		return false, err
	}

	if p.got(TOK_ELSE) {
		p.next()

		if err := p.body(); err != nil {
			return false, err
		}
	}

	return true, nil
}

// 'while' '(' expr ')' stm
func (p *Parser) stmWhile() (bool, error) {
	p.next()

	if err := p.condition(); err != nil {
		return false, err
	}

	p.loopDepth++
	defer func() { p.loopDepth-- }()

	return true, p.body()
}

// 'for' '(' [expr] ';' [expr] ';' [expr] ')' stm
func (p *Parser) stmFor() (bool, error) {
	p.next()

	if err := p.assertAndNext(TOK_LPAREN); err != nil {
		return false, err
	}

	if _, _, err := p.expr(); err != nil {
		return false, err
	}

	if err := p.assertAndNext(TOK_SEMI); err != nil {
		return false, err
	}

	condTok := p.tok()
	if cond, ok, err := p.expr(); err != nil {
		return false, err
	} else if ok {
		if err := sem.Condition(cond, condTok.Span); err != nil {
			return false, err
		}
	}

	if err := p.assertAndNext(TOK_SEMI); err != nil {
		return false, err
	}

	if _, _, err := p.expr(); err != nil {
		return false, err
	}

	if err := p.assertAndNext(TOK_RPAREN); err != nil {
		return false, err
	}

	p.loopDepth++
	defer func() { p.loopDepth-- }()

	return true, p.body()
}

// 'break' ';'
func (p *Parser) stmBreak() (bool, error) {
	if p.loopDepth == 0 {
		p.warnOn(p.tok(), "break statement outside of a loop")
	}

	p.next()

	return true, p.assertAndNext(TOK_SEMI)
}

// 'return' [expr] ';'
func (p *Parser) stmReturn() (bool, error) {
	retTok := p.tok()
	p.next()

	fn := p.currentFunc()

	valTok := p.tok()
	val, ok, err := p.expr()
	if err != nil {
		return false, err
	}

	if ok {
		if fn != nil {
			if err := sem.ReturnValue(fn, val, valTok.Span); err != nil {
				return false, err
			}
		}
	} else if fn != nil && !fn.Type.IsVoid() {
		p.warnOn(retTok, "missing return value in function `%s`", fn.Name)
	}

	return true, p.assertAndNext(TOK_SEMI)
}

// [expr] ';'
func (p *Parser) stmExpr() (bool, error) {
	if p.got(TOK_SEMI) {
		p.next()
		return true, nil
	}

	m := p.mark()
	if _, ok, err := p.expr(); err != nil {
		return false, err
	} else if !ok {
		p.rewind(m)
		return false, nil
	}

	return true, p.assertAndNext(TOK_SEMI)
}

// -----------------------------------------------------------------------------

// condition parses the parenthesized controlling expression of an if or while.
func (p *Parser) condition() error {
	if err := p.assertAndNext(TOK_LPAREN); err != nil {
		return err
	}

	condTok := p.tok()
	cond, ok, err := p.expr()
	if err != nil {
		return err
	} else if !ok {
		return p.reject()
	}

	if err := sem.Condition(cond, condTok.Span); err != nil {
		return err
	}

	return p.assertAndNext(TOK_RPAREN)
}

// body parses the statement controlled by an if, else, while, or for.
func (p *Parser) body() error {
	if ok, err := p.stm(); err != nil {
		return err
	} else if !ok {
		return p.reject()
	}

	return nil
}
