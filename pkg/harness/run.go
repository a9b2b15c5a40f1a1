package harness

import (
	"fmt"

	"github.com/vic/lazylam/pkg/lambda"
)

// Run evaluates every case of suite with its own evaluator and reports the
// outcome to r. It returns the evaluation stats summed over all cases.
func Run(suite *Suite, r *Reporter) lambda.Stats {
	var total lambda.Stats
	for _, c := range suite.Cases {
		ev := lambda.New(lambda.Options{MaxSteps: suite.MaxSteps, Memoize: suite.Memoize})
		runCase(ev, c, r)
		total = total.Add(ev.Stats())
	}
	return total
}

func runCase(ev *lambda.Evaluator, c Case, r *Reporter) {
	term, err := Build(c.Expr)
	if err != nil {
		r.Fail(c.Label, fmt.Errorf("build: %w", err))
		return
	}

	switch c.Decode {
	case DecodeInt:
		n, err := ev.ToInt(term)
		if err != nil {
			r.Fail(c.Label, err)
			return
		}
		r.Assert(c.Label, n, c.Want)
	case DecodeBool:
		b, err := ev.ToBool(term)
		if err != nil {
			r.Fail(c.Label, err)
			return
		}
		r.Assert(c.Label, b, c.Want)
	default:
		r.Fail(c.Label, fmt.Errorf("unknown decode %q", c.Decode))
	}
}
