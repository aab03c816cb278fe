package driver

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/text/unicode/norm"

	"symcalc/internal/ast"
	"symcalc/internal/diag"
	"symcalc/internal/expr"
	"symcalc/internal/lexer"
	"symcalc/internal/observ"
	"symcalc/internal/parser"
	"symcalc/internal/source"
	"symcalc/internal/token"
	"symcalc/internal/trace"
)

type Options struct {
	Stage          Stage
	UnaryPlus      expr.UnaryPlus
	MaxDiagnostics int
	// Timings adds an ObsTimings info diagnostic with per-stage durations.
	Timings bool
}

// Result holds every artefact produced for one input line. Fields past the
// failing stage are zero.
type Result struct {
	Input      string // after normalization
	Stage      Stage
	Tokens     []token.Token
	Tree       ast.Node
	Expr       expr.Expr
	Simplified expr.Expr
	Bag        *diag.Bag
	Timings    observ.Report
	// Err is the first stage error; it is also in Bag.
	Err error
}

// Failed reports whether a stage returned an error.
func (r *Result) Failed() bool { return r.Err != nil }

// Output returns the value of the selected stage: tokens, tree or simplified
// expression.
func (r *Result) Output() any {
	switch r.Stage {
	case StageTokens:
		return r.Tokens
	case StageAST:
		return r.Tree
	default:
		return r.Simplified
	}
}

// normalizeLine strips a BOM, folds CRLF and applies NFC so that composed and
// decomposed spellings of the same character lex identically.
func normalizeLine(line string) string {
	line, _ = source.NormalizeInput(line)
	return norm.NFC.String(line)
}

// Run pushes one line through lexing, parsing and lowering, and simplifies it
// when the simplify stage is selected. Lowering runs for every stage so that
// call errors surface whichever output is shown.
func Run(ctx context.Context, line string, opts Options) *Result {
	res := &Result{
		Input: normalizeLine(line),
		Stage: opts.Stage,
		Bag:   diag.NewBag(opts.MaxDiagnostics),
	}
	reporter := diag.BagReporter{Bag: res.Bag}
	timer := observ.NewTimer()
	tracer := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx)

	stage := func(name string, fn func() (string, error)) error {
		span := trace.Begin(tracer, trace.ScopeStage, name, parent)
		idx := timer.Begin(name)
		detail, err := fn()
		if err != nil {
			detail = "failed"
			if d, ok := diag.FromError(err); ok {
				trace.Failure(tracer, trace.ScopeStage, name, d.Code.ID()+": "+d.Message, span.ID())
			}
		}
		timer.End(idx, detail)
		span.End(detail)
		return err
	}

	defer func() {
		res.Timings = timer.Report()
		if opts.Timings {
			res.Bag.Add(res.Timings.Diagnostic(lineSpan(res.Input)))
		}
	}()

	if res.Err = stage("lex", func() (string, error) {
		var err error
		res.Tokens, err = lexer.New(res.Input, lexer.Options{Reporter: reporter}).All()
		return strconv.Itoa(len(res.Tokens)) + " tokens", err
	}); res.Err != nil {
		return res
	}

	if res.Err = stage("parse", func() (string, error) {
		var err error
		res.Tree, err = parser.ParseWithOptions(res.Tokens, parser.Options{Reporter: reporter})
		return "", err
	}); res.Err != nil {
		return res
	}

	if res.Err = stage("lower", func() (string, error) {
		var err error
		res.Expr, err = expr.Lower(res.Tree, expr.LowerOptions{UnaryPlus: opts.UnaryPlus, Reporter: reporter})
		return expr.KindName(res.Expr), err
	}); res.Err != nil {
		return res
	}

	if opts.Stage != StageSimplify {
		return res
	}

	_ = stage("simplify", func() (string, error) {
		res.Simplified = expr.Simplify(res.Expr)
		for _, u := range expr.FindUnsupported(res.Simplified) {
			res.Bag.Add(*diag.New(diag.SevInfo, diag.SimUnsupported, lineSpan(res.Input),
				fmt.Sprintf("%s is left unsimplified: %s", expr.KindName(u), expr.Format(u))))
		}
		return expr.KindName(res.Simplified), nil
	})
	return res
}

func lineSpan(text string) source.Span {
	return source.NewSpan(source.Start(), source.Start().Advance(text))
}
