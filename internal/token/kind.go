package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Number is a decimal literal: 12, 12., 12.5, .5
	Number Kind = iota
	// Ident is a name: [a-zA-Z_][a-zA-Z0-9_]*
	Ident

	Plus      // +
	Minus     // -
	Star      // *
	Slash     // /
	Caret     // ^
	Gt        // >
	Lt        // <
	GtEq      // >=
	LtEq      // <=
	Eq        // =
	BangEq    // !=
	Pipe      // |
	Bang      // !
	Comma     // ,
	Colon     // :
	Semicolon // ;
	Tick      // '
	LBrace    // {
	RBrace    // }
	LBracket  // [
	RBracket  // ]
	LParen    // (
	RParen    // )

	// Whitespace is skipped by the lexer.
	Whitespace
	// EOL is a line end; skipped by the lexer.
	EOL
	// EOF marks the end of the input. Never matched, only synthesized.
	EOF

	kindCount
)

type kindInfo struct {
	name    string
	label   string // как показывать в сообщениях об ошибках
	pattern string // пусто: вид не распознаётся лексером
	symbol  string
}

func punct(name, symbol, pattern string) kindInfo {
	return kindInfo{name: name, label: "'" + symbol + "'", pattern: pattern, symbol: symbol}
}

var kinds = [kindCount]kindInfo{
	Number:     {name: "Number", label: "number", pattern: `[0-9]+\.?([0-9]+)?|\.[0-9]+`},
	Ident:      {name: "Ident", label: "identifier", pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	Plus:       punct("Plus", "+", `\+`),
	Minus:      punct("Minus", "-", `-`),
	Star:       punct("Star", "*", `\*`),
	Slash:      punct("Slash", "/", `/`),
	Caret:      punct("Caret", "^", `\^`),
	Gt:         punct("Gt", ">", `>`),
	Lt:         punct("Lt", "<", `<`),
	GtEq:       punct("GtEq", ">=", `>=`),
	LtEq:       punct("LtEq", "<=", `<=`),
	Eq:         punct("Eq", "=", `=`),
	BangEq:     punct("BangEq", "!=", `!=`),
	Pipe:       punct("Pipe", "|", `\|`),
	Bang:       punct("Bang", "!", `!`),
	Comma:      punct("Comma", ",", `,`),
	Colon:      punct("Colon", ":", `:`),
	Semicolon:  punct("Semicolon", ";", `;`),
	Tick:       punct("Tick", "'", `'`),
	LBrace:     punct("LBrace", "{", `\{`),
	RBrace:     punct("RBrace", "}", `\}`),
	LBracket:   punct("LBracket", "[", `\[`),
	RBracket:   punct("RBracket", "]", `\]`),
	LParen:     punct("LParen", "(", `\(`),
	RParen:     punct("RParen", ")", `\)`),
	Whitespace: {name: "Whitespace", label: "whitespace", pattern: `[\t\f\v\r ]+`},
	EOL:        {name: "EOL", label: "end of line", pattern: `\n`},
	EOF:        {name: "EOF", label: "end of input"},
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

func (k Kind) String() string {
	if k >= kindCount {
		return "Unknown"
	}
	return kinds[k].name
}

// Label is the user-facing name used in diagnostics ("number", "'+'").
func (k Kind) Label() string {
	if k >= kindCount {
		return "unknown token"
	}
	return kinds[k].label
}

// Symbol is the literal spelling of punctuation kinds, "" for the rest.
func (k Kind) Symbol() string {
	if k >= kindCount {
		return ""
	}
	return kinds[k].symbol
}

// Pattern returns the regular expression recognizing k, or "" when k can
// only be synthesized.
func (k Kind) Pattern() string {
	if k >= kindCount {
		return ""
	}
	return kinds[k].pattern
}

// IsStructural reports whether k is matched only to advance the position
// (or synthesized) and never appears as a regular token.
func (k Kind) IsStructural() bool {
	switch k {
	case Whitespace, EOL, EOF:
		return true
	default:
		return false
	}
}

// IsComparison reports whether k is one of the six relational operators.
func (k Kind) IsComparison() bool {
	switch k {
	case Eq, BangEq, Gt, Lt, GtEq, LtEq:
		return true
	default:
		return false
	}
}
