package lexer

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"symcalc/internal/diag"
	"symcalc/internal/fix"
	"symcalc/internal/source"
	"symcalc/internal/token"
)

type Lexer struct {
	cursor Cursor
	opts   Options
}

func New(text string, opts Options) *Lexer {
	return &Lexer{
		cursor: NewCursor(text),
		opts:   opts,
	}
}

// Tokenize lexes the whole text. The result always ends with a single EOF
// token; the first unknown character aborts with a LexUnknownChar diagnostic.
func Tokenize(text string) ([]token.Token, error) {
	return New(text, Options{}).All()
}

// All collects tokens up to and including EOF.
func (lx *Lexer) All() ([]token.Token, error) {
	tokens := make([]token.Token, 0, len(lx.cursor.Text)/2+1)
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

// Next возвращает следующий **значимый** токен.
// Whitespace и EOL пропускаются; после EOF всегда возвращает EOF.
func (lx *Lexer) Next() (token.Token, error) {
	for !lx.cursor.EOF() {
		kind, n, ok := Match(lx.cursor.Rest())
		if !ok {
			return token.Token{}, lx.unknownChar()
		}
		start := lx.cursor.Mark()
		text := lx.cursor.Bump(n)
		if kind.IsStructural() {
			continue
		}
		return lx.makeToken(kind, text, lx.cursor.SpanFrom(start)), nil
	}
	return token.Token{Kind: token.EOF, Span: source.Point(lx.cursor.Pos)}, nil
}

// Pos is the current cursor position.
func (lx *Lexer) Pos() source.Position {
	return lx.cursor.Pos
}

func (lx *Lexer) makeToken(kind token.Kind, text string, sp source.Span) token.Token {
	tok := token.Token{Kind: kind, Span: sp}
	switch kind {
	case token.Number:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			// шаблон Number допускает только то, что ParseFloat понимает
			panic(fmt.Errorf("number pattern accepted %q: %w", text, err))
		}
		tok.Number = v
	case token.Ident:
		tok.Name = text
	}
	return tok
}

func (lx *Lexer) unknownChar() error {
	rest := lx.cursor.Rest()
	_, size := utf8.DecodeRuneInString(rest)
	ch := rest[:size]
	pos := lx.cursor.Pos
	sp := source.NewSpan(pos, pos.Advance(ch))
	d := diag.Errorf(diag.LexUnknownChar, sp, "'%s' is not a valid character", ch)
	if op, ok := fix.Lookalike(ch); ok {
		d.WithNote(sp, fmt.Sprintf("'%s' looks like the operator '%s'", ch, op))
	}
	for _, f := range fix.ForUnknownChar(sp, ch) {
		d.WithFix(f)
	}
	diag.Emit(lx.opts.Reporter, d)
	return d
}
