package diagfmt

import (
	"fmt"
	"io"

	"symcalc/internal/token"
)

type TokenOutput struct {
	Kind string       `json:"kind"`
	Text string       `json:"text,omitempty"`
	Span LocationJSON `json:"span"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%3d: %-10s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if tok.HasPayload() {
			fmt.Fprintf(w, " %q", tok.Payload())
		}
		fmt.Fprintf(w, " at %s\n", tok.Span)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Payload(),
			Span: makeLocation(tok.Span, true),
		})
		if tok.Kind == token.EOF {
			break
		}
	}
	return encode(w, output)
}
