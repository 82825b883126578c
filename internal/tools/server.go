package tools

import (
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds the MCP server with every tally tool registered.
func NewServer(version string) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "tally",
			Title:   "Tally",
			Version: version,
		},
		&mcp.ServerOptions{
			Instructions: strings.TrimSpace(ServerInstructions),
		},
	)

	mcp.AddTool[AccumulateInput, AccumulateOutput](server, &mcp.Tool{
		Name:  "accumulate",
		Title: "Accumulate",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint: true,
		},
		Description: strings.TrimSpace(AccumulateDesc),
	}, Accumulate)

	mcp.AddTool[ClassifyInput, ClassifyOutput](server, &mcp.Tool{
		Name:  "classify",
		Title: "Classify",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint: true,
		},
		Description: strings.TrimSpace(ClassifyDesc),
	}, Classify)

	mcp.AddTool[FactorialInput, FactorialOutput](server, &mcp.Tool{
		Name:  "factorial",
		Title: "Factorial",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint: true,
		},
		Description: strings.TrimSpace(FactorialDesc),
	}, Factorial)

	mcp.AddTool[ReportInput, ReportOutput](server, &mcp.Tool{
		Name:  "report",
		Title: "Report",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint: true,
		},
		Description: strings.TrimSpace(ReportDesc),
	}, Report)

	return server
}
