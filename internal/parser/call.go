package parser

import (
	"symcalc/internal/ast"
	"symcalc/internal/diag"
	"symcalc/internal/token"
)

// parseCall := atom [ (':' addExpr)* '[' ( addExpr (',' addExpr)* )? ']' ]
// The call suffix is only considered when the atom is an identifier token;
// a parenthesized variable such as (x) is never a callee.
func (p *Parser) parseCall() (ast.Node, error) {
	first := p.peek()
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	callee, ok := atom.(*ast.Variable)
	if !ok || first.Kind != token.Ident || !p.at(token.Colon, token.LBracket) {
		return atom, nil
	}

	var params []ast.Node
	for p.at(token.Colon) {
		p.advance()
		param, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
	}

	if !p.at(token.LBracket) {
		return nil, p.errorf(diag.SynExpectCallArgs, "expected '[' to start the argument list of '%s', found %s", callee.Name(), describe(p.peek()))
	}
	p.advance()

	var args []ast.Node
	if !p.at(token.RBracket) {
		for {
			arg, err := p.parseAdditive()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}

	closing, err := p.expectClosing(token.RBracket, diag.SynExpectRBracket)
	if err != nil {
		return nil, err
	}
	return &ast.Call{
		Callee: callee.Tok,
		Params: params,
		Args:   args,
		Sp:     callee.Span().Extend(closing.Span),
	}, nil
}
