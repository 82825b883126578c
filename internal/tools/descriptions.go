package tools

// Centralized tool descriptions for the tally MCP server.

// AccumulateDesc describes the accumulate tool.
const AccumulateDesc = `
Parity-alternating sum over [from, to): even values are added, odd values subtracted.
Example: accumulate { "from": 0, "to": 100 }
`

// ClassifyDesc describes the classify tool.
const ClassifyDesc = `
Classify an integer as Positive, Negative or Zero.
Example: classify { "value": -50 }
`

// FactorialDesc describes the factorial tool.
const FactorialDesc = `
Recursive n!; any n <= 1 (including negatives) yields 1. Rejects n > 20.
Example: factorial { "n": 10 }
`

// ReportDesc describes the report tool.
const ReportDesc = `
Accumulate and classify in one call; returns the two lines the CLI prints.
Example: report {}
`

const ServerInstructions = `
You are Tally, a small arithmetic service.

Capabilities
- Compute the parity-alternating running total over a range (default [0, 100))
- Classify a total by sign
- Compute factorials up to 20!

Usage
- Call "report" with no arguments to reproduce the CLI output
`
