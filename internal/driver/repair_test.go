package driver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"symcalc/internal/diag"
	"symcalc/internal/driver"
	"symcalc/internal/expr"
)

func TestRepair(t *testing.T) {
	tests := []struct {
		src    string
		line   string
		result string
		fixes  []string
	}{
		{"1 + 2", "1 + 2", "3", nil},
		{"(1 + 2", "(1 + 2)", "3", []string{"insert ')'"}},
		{"2 +@ 3", "2 + 3", "5", []string{"remove '@'"}},
		{"((1 @+ 2", "((1 + 2))", "3", []string{"remove '@'", "insert ')'", "insert ')'"}},
		{"sqrt[4", "sqrt[4]", "²√4", []string{"insert ']'"}},
		{"2 × 3 − 1", "2 * 3 - 1", "5", []string{"replace '×' with '*'", "replace '−' with '-'"}},
		{"2·x", "2*x", "2x", []string{"replace '·' with '*'"}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			res, err := driver.Repair(context.Background(), tt.src, driver.Options{}, 0)
			require.NoError(t, err)
			require.False(t, res.Result.Failed(), "%v", res.Result.Err)
			assert.Equal(t, tt.line, res.Line)
			assert.Equal(t, tt.result, expr.Format(res.Result.Simplified))

			var titles []string
			for _, a := range res.Applied {
				titles = append(titles, a.Title)
			}
			assert.Equal(t, tt.fixes, titles)
			assert.Equal(t, len(tt.fixes) > 0, res.Changed())
		})
	}
}

func TestRepairGivesUp(t *testing.T) {
	res, err := driver.Repair(context.Background(), "1 +", driver.Options{}, 0)
	require.NoError(t, err)
	require.True(t, res.Result.Failed())
	d, ok := diag.FromError(res.Result.Err)
	require.True(t, ok)
	assert.Equal(t, diag.SynExpectExpression, d.Code)
	assert.False(t, res.Changed())

	res, err = driver.Repair(context.Background(), "1 @ @ @", driver.Options{}, 2)
	require.NoError(t, err)
	assert.True(t, res.Result.Failed())
	assert.Len(t, res.Applied, 2)
}
