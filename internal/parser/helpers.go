package parser

import (
	"fmt"

	"symcalc/internal/diag"
	"symcalc/internal/fix"
	"symcalc/internal/token"
)

func (p *Parser) peek() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) at(kinds ...token.Kind) bool {
	return p.peek().Is(kinds...)
}

// advance съедает текущий токен; EOF никогда не съедается
func (p *Parser) advance() token.Token {
	tok := p.tokens[p.pos]
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

// expect ожидает конкретный токен, иначе синтаксическая ошибка
func (p *Parser) expect(k token.Kind, code diag.Code) (token.Token, error) {
	if p.at(k) {
		return p.advance(), nil
	}
	return token.Token{}, p.errorf(code, "expected %s, found %s", k.Label(), describe(p.peek()))
}

// expectClosing is expect for ')' and ']'; the error suggests inserting the
// missing bracket right after the previous token.
func (p *Parser) expectClosing(k token.Kind, code diag.Code) (token.Token, error) {
	tok, err := p.expect(k, code)
	if err == nil {
		return tok, nil
	}
	if d, ok := diag.FromError(err); ok && p.pos > 0 {
		at := p.tokens[p.pos-1].Span.End
		d.WithFix(fix.CloseBracket(at, k.Symbol()))
	}
	return tok, err
}

// errorf reports at the span of the current (unexpected) token.
func (p *Parser) errorf(code diag.Code, format string, args ...any) error {
	return diag.Errorf(code, p.peek().Span, format, args...)
}

func describe(tok token.Token) string {
	switch tok.Kind {
	case token.Number:
		return "number " + tok.Payload()
	case token.Ident:
		return fmt.Sprintf("identifier '%s'", tok.Name)
	default:
		return tok.Kind.Label()
	}
}
