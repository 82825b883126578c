package tally

import (
	"fmt"
	"io"
)

// Report is the outcome of one accumulator pass and its classification.
type Report struct {
	From   int
	To     int
	Result int
	Sign   Sign
}

func Compute(lo, hi int) Report {
	result := Accumulate(lo, hi)

	return Report{
		From:   lo,
		To:     hi,
		Result: result,
		Sign:   Classify(result),
	}
}

// Default is the report over [Lower, Upper).
func Default() Report {
	return Compute(Lower, Upper)
}

// Lines returns the two output lines without trailing newlines.
func (r Report) Lines() []string {
	return []string{
		fmt.Sprintf("Result: %d", r.Result),
		r.Sign.String(),
	}
}

// WriteTo writes the result line followed by the sign line.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	var total int64

	for _, line := range r.Lines() {
		n, err := fmt.Fprintln(w, line)
		total += int64(n)

		if err != nil {
			return total, err
		}
	}

	return total, nil
}
