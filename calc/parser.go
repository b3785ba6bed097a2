package calc

import "strconv"

// The expression grammar is deliberately small: literals, arithmetic,
// list/dict literals, and calls to catalogue names. There is no attribute
// access, no assignment, and no way to reference anything outside the
// catalogue, which closes the code-execution escape class by construction.
//
//	expr    := term (('+'|'-') term)*
//	term    := unary (('*'|'/'|'//'|'%') unary)*
//	unary   := ('-'|'+') unary | power
//	power   := primary (('**'|'^') unary)?
//	primary := NUMBER | STRING | 'True' | 'False' | 'None'
//	         | IDENT ['(' args ')'] | '(' expr ')'
//	         | '[' exprs ']' | '{' pairs '}'

type node interface{}

type numberNode float64

type stringNode string

type boolNode bool

type noneNode struct{}

type nameNode string

type unaryNode struct {
	op      string
	operand node
}

type binaryNode struct {
	op          string
	left, right node
}

type callNode struct {
	name string
	args []node
}

type listNode struct {
	elems []node
}

type dictNode struct {
	keys   []node
	values []node
}

type parser struct {
	lex *lexer
	tok token
}

func parse(input string) (node, error) {
	p := &parser{lex: newLexer(input)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, errGeneral("unexpected %q at position %d", p.tok.text, p.tok.pos)
	}
	return n, nil
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) acceptOp(ops ...string) (string, bool) {
	if p.tok.kind != tokOp {
		return "", false
	}
	for _, op := range ops {
		if p.tok.text == op {
			return op, true
		}
	}
	return "", false
}

func (p *parser) expectOp(op string) error {
	if _, ok := p.acceptOp(op); !ok {
		return errGeneral("expected %q at position %d", op, p.tok.pos)
	}
	return p.advance()
}

func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.acceptOp("+", "-")
		if !ok {
			return left, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
}

func (p *parser) parseTerm() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.acceptOp("*", "/", "//", "%")
		if !ok {
			return left, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
}

func (p *parser) parseUnary() (node, error) {
	if op, ok := p.acceptOp("-", "+"); ok {
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return unaryNode{op: op, operand: operand}, nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	// right-associative; '^' is an alias for '**'
	if _, ok := p.acceptOp("**", "^"); ok {
		if err := p.advance(); err != nil {
			return nil, err
		}
		exp, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return binaryNode{op: "**", left: base, right: exp}, nil
	}
	return base, nil
}

func (p *parser) parsePrimary() (node, error) {
	switch p.tok.kind {
	case tokNumber:
		f, err := strconv.ParseFloat(p.tok.text, 64)
		if err != nil {
			return nil, errGeneral("invalid number %q", p.tok.text)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return numberNode(f), nil

	case tokString:
		s := p.tok.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		return stringNode(s), nil

	case tokIdent:
		name := p.tok.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		switch name {
		case "True":
			return boolNode(true), nil
		case "False":
			return boolNode(false), nil
		case "None":
			return noneNode{}, nil
		}
		if _, ok := p.acceptOp("("); ok {
			return p.parseCall(name)
		}
		return nameNode(name), nil

	case tokOp:
		switch p.tok.text {
		case "(":
			if err := p.advance(); err != nil {
				return nil, err
			}
			inner, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.expectOp(")"); err != nil {
				return nil, err
			}
			return inner, nil
		case "[":
			return p.parseList()
		case "{":
			return p.parseDict()
		}
	}

	return nil, errGeneral("unexpected %q at position %d", p.tok.text, p.tok.pos)
}

func (p *parser) parseCall(name string) (node, error) {
	if err := p.advance(); err != nil { // consume '('
		return nil, err
	}
	var args []node
	if _, ok := p.acceptOp(")"); !ok {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if _, ok := p.acceptOp(","); ok {
				if err := p.advance(); err != nil {
					return nil, err
				}
				continue
			}
			break
		}
	}
	if err := p.expectOp(")"); err != nil {
		return nil, err
	}
	return callNode{name: name, args: args}, nil
}

func (p *parser) parseList() (node, error) {
	if err := p.advance(); err != nil { // consume '['
		return nil, err
	}
	var elems []node
	if _, ok := p.acceptOp("]"); !ok {
		for {
			elem, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
			if _, ok := p.acceptOp(","); ok {
				if err := p.advance(); err != nil {
					return nil, err
				}
				continue
			}
			break
		}
	}
	if err := p.expectOp("]"); err != nil {
		return nil, err
	}
	return listNode{elems: elems}, nil
}

func (p *parser) parseDict() (node, error) {
	if err := p.advance(); err != nil { // consume '{'
		return nil, err
	}
	var keys, values []node
	if _, ok := p.acceptOp("}"); !ok {
		for {
			key, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.expectOp(":"); err != nil {
				return nil, err
			}
			value, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			keys = append(keys, key)
			values = append(values, value)
			if _, ok := p.acceptOp(","); ok {
				if err := p.advance(); err != nil {
					return nil, err
				}
				continue
			}
			break
		}
	}
	if err := p.expectOp("}"); err != nil {
		return nil, err
	}
	return dictNode{keys: keys, values: values}, nil
}
