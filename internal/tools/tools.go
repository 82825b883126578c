package tools

import (
	"context"
	"errors"
	"fmt"

	"tally/internal/tally"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MaxSpan bounds the number of counters a single accumulate call may visit.
const MaxSpan = 1 << 24

var (
	ErrSpanTooLarge      = errors.New("range too large")
	ErrFactorialOverflow = errors.New("factorial overflows int64")
)

func Accumulate(ctx context.Context, req *mcp.CallToolRequest, input AccumulateInput) (
	*mcp.CallToolResult,
	AccumulateOutput,
	error,
) {
	from, to := resolveRange(input.From, input.To)
	out := AccumulateOutput{From: from, To: to}

	start := logStart("accumulate", map[string]int{"from": from, "to": to})

	if shouldStop(ctx) {
		return fail(out, ctx.Err())
	}

	err := checkSpan(from, to)
	if err != nil {
		logError("accumulate", err, "invalid range")

		return fail(out, err)
	}

	out.Result = accumulateWithCache(from, to)

	logEnd("accumulate", start, spanOf(from, to))

	return nil, out, nil
}

func Classify(ctx context.Context, req *mcp.CallToolRequest, input ClassifyInput) (
	*mcp.CallToolResult,
	ClassifyOutput,
	error,
) {
	start := logStart("classify", map[string]int{"value": input.Value})

	out := ClassifyOutput{
		Value: input.Value,
		Sign:  tally.Classify(input.Value).String(),
	}

	logEnd("classify", start, 1)

	return nil, out, nil
}

func Factorial(ctx context.Context, req *mcp.CallToolRequest, input FactorialInput) (
	*mcp.CallToolResult,
	FactorialOutput,
	error,
) {
	out := FactorialOutput{N: input.N}

	start := logStart("factorial", map[string]int{"n": input.N})

	if input.N > tally.MaxFactorialInput {
		err := fmt.Errorf("n=%d exceeds %d: %w", input.N, tally.MaxFactorialInput, ErrFactorialOverflow)
		logError("factorial", err, "invalid input")

		return fail(out, err)
	}

	out.Value = tally.Factorial(input.N)

	logEnd("factorial", start, 1)

	return nil, out, nil
}

func Report(ctx context.Context, req *mcp.CallToolRequest, input ReportInput) (
	*mcp.CallToolResult,
	ReportOutput,
	error,
) {
	from, to := resolveRange(input.From, input.To)
	out := ReportOutput{From: from, To: to, Lines: []string{}}

	start := logStart("report", map[string]int{"from": from, "to": to})

	if shouldStop(ctx) {
		return fail(out, ctx.Err())
	}

	err := checkSpan(from, to)
	if err != nil {
		logError("report", err, "invalid range")

		return fail(out, err)
	}

	result := accumulateWithCache(from, to)
	r := tally.Report{
		From:   from,
		To:     to,
		Result: result,
		Sign:   tally.Classify(result),
	}

	out.Result = r.Result
	out.Sign = r.Sign.String()
	out.Lines = r.Lines()

	logEnd("report", start, len(out.Lines))

	return nil, out, nil
}

func resolveRange(from, to *int) (int, int) {
	lo, hi := tally.Lower, tally.Upper

	if from != nil {
		lo = *from
	}

	if to != nil {
		hi = *to
	}

	return lo, hi
}

func spanOf(from, to int) int {
	if to <= from {
		return 0
	}

	return to - from
}

func checkSpan(from, to int) error {
	// compare in uint64 so extreme bounds cannot wrap
	if to > from && uint64(to-from) > MaxSpan {
		return fmt.Errorf("[%d, %d) spans more than %d values: %w", from, to, MaxSpan, ErrSpanTooLarge)
	}

	return nil
}

func shouldStop(ctx context.Context) bool {
	return ctx.Err() != nil
}

func fail[T any](out T, err error) (*mcp.CallToolResult, T, error) {
	return nil, out, err
}
