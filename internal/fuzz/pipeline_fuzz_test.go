package fuzztests

import (
	"context"
	"testing"
	"time"

	"symcalc/internal/diag"
	"symcalc/internal/driver"
	"symcalc/internal/testkit"
)

// pipelineTimeout is the maximum time allowed for one line. If a line takes
// longer, it indicates a potential infinite loop in the parser.
const pipelineTimeout = 5 * time.Second

// FuzzPipeline runs a line through every stage and checks the span and
// fixpoint invariants of whatever it produces.
func FuzzPipeline(f *testing.F) {
	addCorpusSeeds(f)

	f.Fuzz(func(t *testing.T, input string) {
		input = clampInput(input)

		done := make(chan *driver.Result, 1)
		go func() {
			done <- driver.Run(context.Background(), input, driver.Options{})
		}()

		var res *driver.Result
		select {
		case res = <-done:
		case <-time.After(pipelineTimeout):
			t.Fatalf("pipeline hung on %q", input)
		}

		if res.Failed() {
			if _, ok := diag.FromError(res.Err); !ok {
				t.Fatalf("stage error is not a diagnostic: %v", res.Err)
			}
			if !res.Bag.HasErrors() {
				t.Fatalf("stage error %v missing from the bag", res.Err)
			}
			return
		}
		if err := testkit.CheckSpanInvariants(res.Tree, res.Input); err != nil {
			t.Fatalf("%q: %v", input, err)
		}
		if err := testkit.CheckSimplifyFixpoint(res.Expr); err != nil {
			t.Fatalf("%q: %v", input, err)
		}
	})
}
