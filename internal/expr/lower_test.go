package expr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"symcalc/internal/diag"
	"symcalc/internal/expr"
	"symcalc/internal/lexer"
	"symcalc/internal/parser"
)

func lower(t *testing.T, src string, opts expr.LowerOptions) (expr.Expr, error) {
	t.Helper()
	toks, err := lexer.Tokenize(src)
	require.NoError(t, err)
	n, err := parser.Parse(toks)
	require.NoError(t, err)
	return expr.Lower(n, opts)
}

func TestLower(t *testing.T) {
	tests := []struct {
		src  string
		want expr.Expr
	}{
		{"12", i(12)},
		{"12.", i(12)},
		{"12.0000001", i(12)},
		{"12.5", d(12.5)},
		{".5", d(0.5)},
		{"x", v("x")},
		{"-x", expr.Neg(v("x"))},
		{"+x", expr.Neg(v("x"))},
		{"1 + x", expr.Add(i(1), v("x"))},
		{"1 - x", expr.Sub(i(1), v("x"))},
		{"2x", expr.Mul(i(2), v("x"))},
		{"2 * x", expr.Mul(i(2), v("x"))},
		{"1 / 2", expr.Div(i(1), i(2))},
		{"x ^ 2", expr.Pow(v("x"), i(2))},
		{"sqrt[9]", expr.Rt(i(2), i(9))},
		{"cbrt[x]", expr.Rt(i(3), v("x"))},
		{"root:4[16]", expr.Rt(i(4), i(16))},
		{"a = b", expr.Cmp(expr.Equals, v("a"), v("b"))},
		{"a != b", expr.Cmp(expr.NotEquals, v("a"), v("b"))},
		{"a > b", expr.Cmp(expr.Greater, v("a"), v("b"))},
		{"a < b", expr.Cmp(expr.Less, v("a"), v("b"))},
		{"a >= b", expr.Cmp(expr.GreaterEq, v("a"), v("b"))},
		{"a <= b", expr.Cmp(expr.LessEq, v("a"), v("b"))},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := lower(t, tt.src, expr.LowerOptions{})
			require.NoError(t, err)
			assertExpr(t, tt.want, got)
		})
	}
}

func TestLowerUnaryPlusIdentity(t *testing.T) {
	got, err := lower(t, "+x - -y", expr.LowerOptions{UnaryPlus: expr.UnaryPlusIdentity})
	require.NoError(t, err)
	assertExpr(t, expr.Sub(v("x"), expr.Neg(v("y"))), got)
}

func TestParseUnaryPlus(t *testing.T) {
	u, err := expr.ParseUnaryPlus("identity")
	require.NoError(t, err)
	assert.Equal(t, expr.UnaryPlusIdentity, u)
	u, err = expr.ParseUnaryPlus("")
	require.NoError(t, err)
	assert.Equal(t, expr.UnaryPlusNegate, u)
	_, err = expr.ParseUnaryPlus("drop")
	require.Error(t, err)
}

func TestLowerCallErrors(t *testing.T) {
	tests := []struct {
		src  string
		code diag.Code
		msg  string
	}{
		{"sqrt[4, 5]", diag.LowInvalidCall, "'sqrt' expects 1 argument, got 2"},
		{"sqrt[]", diag.LowInvalidCall, "'sqrt' expects 1 argument, got 0"},
		{"cbrt:2[8]", diag.LowInvalidCall, "'cbrt' expects 0 parameters, got 1"},
		{"root[8]", diag.LowInvalidCall, "'root' expects 1 parameter, got 0"},
		{"root:2:3[8]", diag.LowInvalidCall, "'root' expects 1 parameter, got 2"},
		{"1 + 2sqrt[1, 2]", diag.LowInvalidCall, "'sqrt' expects 1 argument, got 2"},
		{"f[x]", diag.LowUnknownFunction, "unknown function 'f'"},
		{"sqrt[g[1]]", diag.LowUnknownFunction, "unknown function 'g'"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			bag := diag.NewBag(0)
			_, err := lower(t, tt.src, expr.LowerOptions{Reporter: diag.BagReporter{Bag: bag}})
			require.Error(t, err)
			var d *diag.Diagnostic
			require.True(t, errors.As(err, &d))
			assert.Equal(t, tt.code, d.Code)
			assert.Equal(t, tt.msg, d.Message)
			assert.Equal(t, 1, bag.Len())
		})
	}
}

func TestLowerInvalidCallSpan(t *testing.T) {
	_, err := lower(t, "1 + sqrt[4,5]", expr.LowerOptions{})
	d, ok := diag.FromError(err)
	require.True(t, ok)
	assert.Equal(t, "1:5-1:14", d.Primary.String())
}

func TestPipelineProperties(t *testing.T) {
	got, err := lower(t, "2x", expr.LowerOptions{})
	require.NoError(t, err)
	assertExpr(t, expr.Mul(i(2), v("x")), expr.Simplify(got))

	got, err = lower(t, "2 + 3", expr.LowerOptions{})
	require.NoError(t, err)
	assertExpr(t, i(5), expr.Simplify(got))

	got, err = lower(t, "1/3 + 1/6", expr.LowerOptions{})
	require.NoError(t, err)
	assertExpr(t, expr.Div(i(1), i(2)), expr.Simplify(got))
}
