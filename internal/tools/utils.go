package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// getArgument returns the raw argument value, or nil when it was not supplied
func getArgument(req mcp.CallToolRequest, name string) any {
	return req.GetArguments()[name]
}
