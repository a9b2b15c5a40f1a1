// Package harness runs labelled decoding checks against Church-encoded terms
// and reports actual versus expected values.
package harness

import (
	"fmt"
	"io"
)

// Reporter prints one line per check: successes to Out, mismatches and
// errors to Err. It never aborts on a failure.
type Reporter struct {
	Out io.Writer
	Err io.Writer

	Passed int
	Failed int
}

func NewReporter(out, errOut io.Writer) *Reporter {
	return &Reporter{Out: out, Err: errOut}
}

// Assert compares actual with expected and reports the outcome.
func (r *Reporter) Assert(label string, actual, expected any) bool {
	if actual == expected {
		r.Passed++
		fmt.Fprintf(r.Out, "%s => %v\n", label, actual)
		return true
	}
	r.Failed++
	fmt.Fprintf(r.Err, "%s => %v ; expected: %v\n", label, actual, expected)
	return false
}

func (r *Reporter) AssertTrue(label string, actual bool) bool {
	return r.Assert(label, actual, true)
}

func (r *Reporter) AssertFalse(label string, actual bool) bool {
	return r.Assert(label, actual, false)
}

// Fail records a check that could not produce a value.
func (r *Reporter) Fail(label string, err error) {
	r.Failed++
	fmt.Fprintf(r.Err, "%s => error: %v\n", label, err)
}

// Ok reports whether every check so far passed.
func (r *Reporter) Ok() bool {
	return r.Failed == 0
}
