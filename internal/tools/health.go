package tools

import (
	"fmt"

	"tally/internal/tally"
)

// HealthCheck verifies that the accumulator loop agrees with its closed form
// over the default range.
func HealthCheck() error {
	got := tally.Accumulate(tally.Lower, tally.Upper)
	want := tally.ClosedForm(tally.Lower, tally.Upper)

	if got != want {
		return fmt.Errorf("accumulator mismatch over [%d, %d): loop=%d closed=%d", tally.Lower, tally.Upper, got, want)
	}

	return nil
}
