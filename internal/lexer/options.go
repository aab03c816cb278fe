package lexer

import (
	"symcalc/internal/diag"
)

type Options struct {
	// Reporter получает копию ошибки лексера; может быть nil.
	Reporter diag.Reporter
}
