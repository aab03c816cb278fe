package parser

import (
	"symcalc/internal/ast"
	"symcalc/internal/diag"
	"symcalc/internal/source"
	"symcalc/internal/token"
)

// parseComparison := addExpr ( cmpOp addExpr )*
func (p *Parser) parseComparison() (ast.Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.peek().Kind.IsComparison() {
		op := p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseAdditive := mulExpr ( ('+' | '-') mulExpr )*
func (p *Parser) parseAdditive() (ast.Node, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.at(token.Plus, token.Minus) {
		op := p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseMultiplicative := powExpr ( implicitFactor | ('*' | '/') powExpr )*
//
// An implicit factor is attempted after every operand unless the next token
// is '+' or '-'. A failed attempt that consumed no tokens means "no factor";
// one that consumed tokens is a real syntax error.
func (p *Parser) parseMultiplicative() (ast.Node, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.at(token.Star, token.Slash):
			op := p.advance()
			right, err := p.parsePower()
			if err != nil {
				return nil, err
			}
			left = &ast.Binary{Op: op, Left: left, Right: right}

		case p.at(token.Plus, token.Minus):
			return left, nil

		default:
			mark := p.pos
			right, err := p.parsePower()
			if err != nil {
				if p.pos == mark {
					return left, nil
				}
				return nil, err
			}
			op := token.Token{Kind: token.Star, Span: source.Between(left.Span(), right.Span())}
			left = &ast.Binary{Op: op, Left: left, Right: right, Implicit: true}
		}
	}
}

// parsePower := call ( '^' call )*   (левоассоциативно)
func (p *Parser) parsePower() (ast.Node, error) {
	left, err := p.parseCall()
	if err != nil {
		return nil, err
	}
	for p.at(token.Caret) {
		op := p.advance()
		right, err := p.parseCall()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseAtom := number | identifier | ('+' | '-') call | '(' addExpr ')'
// Unlike the plain atom grammar, the operand of a sign is a call, so -sqrt[4] parses.
func (p *Parser) parseAtom() (ast.Node, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.Number:
		p.advance()
		return &ast.Number{Tok: tok}, nil

	case token.Ident:
		p.advance()
		return &ast.Variable{Tok: tok}, nil

	case token.Plus, token.Minus:
		p.advance()
		operand, err := p.parseCall()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: tok, Operand: operand}, nil

	case token.LParen:
		p.advance()
		inner, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectClosing(token.RParen, diag.SynExpectRParen); err != nil {
			return nil, err
		}
		return inner, nil

	default:
		return nil, p.errorf(diag.SynExpectExpression, "expected number, identifier, '+', '-' or '(', found %s", describe(tok))
	}
}
