package parser

import (
	"fmt"

	"symcalc/internal/ast"
	"symcalc/internal/diag"
	"symcalc/internal/token"
)

type Options struct {
	// Reporter получает копию синтаксической ошибки; может быть nil.
	Reporter diag.Reporter
}

// Parser хранит состояние парсера на одну строку ввода.
// One token of lookahead; the first error aborts parsing.
type Parser struct {
	tokens []token.Token
	pos    int
	opts   Options
}

// Parse builds a syntax tree from a token sequence ending in EOF.
func Parse(tokens []token.Token) (ast.Node, error) {
	return ParseWithOptions(tokens, Options{})
}

// ParseWithOptions is Parse with a reporter attached.
func ParseWithOptions(tokens []token.Token, opts Options) (ast.Node, error) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		panic(fmt.Errorf("parser: token stream must end with EOF"))
	}
	p := Parser{tokens: tokens, opts: opts}
	n, err := p.parseStatement()
	if err != nil {
		if d, ok := diag.FromError(err); ok {
			diag.Emit(p.opts.Reporter, d)
		}
		return nil, err
	}
	return n, nil
}

// parseStatement := comparison EOF
func (p *Parser) parseStatement() (ast.Node, error) {
	n, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	if !p.at(token.EOF) {
		return nil, p.errorf(diag.SynUnexpectedToken, "expected operator or end of input, found %s", describe(p.peek()))
	}
	return n, nil
}
