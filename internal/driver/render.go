package driver

import (
	"bytes"
	"fmt"
	"io"

	"symcalc/internal/diag"
	"symcalc/internal/diagfmt"
	"symcalc/internal/expr"
)

// Format is the output format of rendered results.
type Format uint8

const (
	FormatPretty Format = iota
	FormatJSON
	// FormatTree draws the syntax tree top-down and the simplified
	// expression as an outline; diagnostics render as pretty.
	FormatTree
)

// ParseFormat converts "pretty" | "json" | "tree" to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "pretty":
		return FormatPretty, nil
	case "json":
		return FormatJSON, nil
	case "tree":
		return FormatTree, nil
	default:
		return FormatPretty, fmt.Errorf("invalid format: %q (expected: pretty|json|tree)", s)
	}
}

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatTree:
		return "tree"
	default:
		return "pretty"
	}
}

type RenderOptions struct {
	Format Format
	Color  bool
	// ShowInfo prints info diagnostics (unsupported simplifications, timings)
	// after a successful result.
	ShowInfo bool
}

type simplifyOutput struct {
	Input      string                   `json:"input"`
	Result     string                   `json:"result"`
	Lowered    diagfmt.ExprOutput       `json:"lowered"`
	Simplified diagfmt.ExprOutput       `json:"simplified"`
	Info       []diagfmt.DiagnosticJSON `json:"info,omitempty"`
}

// Render writes the selected stage's output, or the diagnostics when a stage
// failed.
func Render(w io.Writer, r *Result, opts RenderOptions) error {
	if r.Failed() {
		return renderDiagnostics(w, r, opts, diag.SevError)
	}

	switch opts.Format {
	case FormatJSON:
		switch r.Stage {
		case StageTokens:
			return diagfmt.FormatTokensJSON(w, r.Tokens)
		case StageAST:
			return diagfmt.FormatASTJSON(w, r.Tree)
		default:
			out := simplifyOutput{
				Input:      r.Input,
				Result:     expr.Format(r.Simplified),
				Lowered:    diagfmt.BuildExprOutput(r.Expr),
				Simplified: diagfmt.BuildExprOutput(r.Simplified),
			}
			if opts.ShowInfo {
				out.Info = diagfmt.BuildDiagnosticsOutput(r.Bag, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true}).Diagnostics
			}
			return encodeJSON(w, out)
		}

	default:
		var err error
		switch r.Stage {
		case StageTokens:
			err = diagfmt.FormatTokensPretty(w, r.Tokens)
		case StageAST:
			if opts.Format == FormatTree {
				err = diagfmt.FormatASTDiagram(w, r.Tree)
			} else {
				err = diagfmt.FormatASTPretty(w, r.Tree)
			}
		default:
			if opts.Format == FormatTree {
				err = diagfmt.FormatExprPretty(w, r.Simplified)
			}
			if err == nil {
				_, err = fmt.Fprintln(w, expr.Format(r.Simplified))
			}
		}
		if err != nil || !opts.ShowInfo || r.Bag.Len() == 0 {
			return err
		}
		return renderDiagnostics(w, r, opts, diag.SevInfo)
	}
}

func renderDiagnostics(w io.Writer, r *Result, opts RenderOptions, minSev diag.Severity) error {
	bag := r.Bag.Filter(minSev)
	if opts.Format == FormatJSON {
		return diagfmt.JSON(w, bag, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true})
	}
	diagfmt.Pretty(w, bag, r.Input, diagfmt.PrettyOpts{Color: opts.Color, ShowNotes: true})
	return nil
}

// RenderString is Render into a string.
func RenderString(r *Result, opts RenderOptions) (string, error) {
	var buf bytes.Buffer
	err := Render(&buf, r, opts)
	return buf.String(), err
}
