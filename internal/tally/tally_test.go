package tally_test

import (
	"bytes"
	"fmt"
	"testing"

	"tally/internal/tally"

	"github.com/google/go-cmp/cmp"
)

func TestAccumulateMatchesClosedForm(t *testing.T) {
	t.Parallel()

	for lo := -25; lo <= 25; lo++ {
		for hi := -25; hi <= 125; hi++ {
			got := tally.Accumulate(lo, hi)
			want := tally.ClosedForm(lo, hi)

			if got != want {
				t.Fatalf("Accumulate(%d, %d) = %d, closed form gives %d", lo, hi, got, want)
			}
		}
	}
}

func TestAccumulateDefaultRange(t *testing.T) {
	t.Parallel()

	// fifty (even, odd) pairs, each contributing -1
	evens, odds := 0, 0
	for i := 0; i < 100; i += 2 {
		evens += i
		odds += i + 1
	}

	want := evens - odds
	if want != -50 {
		t.Fatalf("reference sum = %d, expected -50", want)
	}

	if got := tally.Accumulate(tally.Lower, tally.Upper); got != want {
		t.Errorf("Accumulate(%d, %d) = %d, want %d", tally.Lower, tally.Upper, got, want)
	}
}

func TestAccumulateEmptyRange(t *testing.T) {
	t.Parallel()

	for _, r := range [][2]int{{0, 0}, {5, 5}, {10, 3}, {-1, -4}} {
		if got := tally.Accumulate(r[0], r[1]); got != 0 {
			t.Errorf("Accumulate(%d, %d) = %d, want 0", r[0], r[1], got)
		}
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int
		want tally.Sign
	}{
		{in: 1, want: tally.Positive},
		{in: 2450, want: tally.Positive},
		{in: -1, want: tally.Negative},
		{in: -50, want: tally.Negative},
		{in: 0, want: tally.Zero},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.in), func(t *testing.T) {
			t.Parallel()

			if got := tally.Classify(tt.in); got != tt.want {
				t.Errorf("Classify(%d) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSignString(t *testing.T) {
	t.Parallel()

	got := []string{tally.Positive.String(), tally.Negative.String(), tally.Zero.String()}
	want := []string{"Positive", "Negative", "Zero"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sign labels mismatch (-want +got):\n%s", diff)
	}
}

func TestFactorial(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want int
	}{
		{n: 0, want: 1},
		{n: 1, want: 1},
		{n: 5, want: 120},
		{n: 10, want: 3628800},
		{n: -3, want: 1},
		{n: tally.MaxFactorialInput, want: 2432902008176640000},
	}

	for _, tt := range tests {
		if got := tally.Factorial(tt.n); got != tt.want {
			t.Errorf("Factorial(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestFactorialMatchesProduct(t *testing.T) {
	t.Parallel()

	product := 1
	for n := 1; n <= tally.MaxFactorialInput; n++ {
		product *= n

		if got := tally.Factorial(n); got != product {
			t.Errorf("Factorial(%d) = %d, want %d", n, got, product)
		}
	}
}

func TestDefaultReport(t *testing.T) {
	t.Parallel()

	want := tally.Report{
		From:   0,
		To:     100,
		Result: tally.ClosedForm(0, 100),
		Sign:   tally.Negative,
	}

	if diff := cmp.Diff(want, tally.Default()); diff != "" {
		t.Errorf("Default() mismatch (-want +got):\n%s", diff)
	}
}

func TestReportWriteTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		report tally.Report
		want   string
	}{
		{name: "default", report: tally.Default(), want: "Result: -50\nNegative\n"},
		{name: "positive", report: tally.Compute(0, 101), want: "Result: 50\nPositive\n"},
		{name: "zero", report: tally.Compute(0, 0), want: "Result: 0\nZero\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			n, err := tt.report.WriteTo(&buf)
			if err != nil {
				t.Fatalf("WriteTo error: %v", err)
			}

			if n != int64(len(tt.want)) {
				t.Errorf("WriteTo wrote %d bytes, want %d", n, len(tt.want))
			}

			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReportDeterministic(t *testing.T) {
	t.Parallel()

	var first, second bytes.Buffer

	if _, err := tally.Default().WriteTo(&first); err != nil {
		t.Fatal(err)
	}

	if _, err := tally.Default().WriteTo(&second); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Errorf("outputs differ: %q vs %q", first.String(), second.String())
	}
}
