package tools

import (
	"encoding/json"
	"fmt"

	"github.com/averycrespi/template-mcp/internal/results"
	"github.com/mark3labs/mcp-go/mcp"
)

// encodeResult renders a ToolResult as indented JSON text content. Error
// results are flagged so clients can branch without parsing the body.
func encodeResult(result results.ToolResult, extra ...mcp.Content) *mcp.CallToolResult {
	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err))
	}

	content := []mcp.Content{mcp.NewTextContent(string(jsonBytes))}
	content = append(content, extra...)

	return &mcp.CallToolResult{
		Content: content,
		IsError: result.ResultStatus() == results.StatusError,
	}
}
