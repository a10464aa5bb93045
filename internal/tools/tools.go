package tools

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names, registered exactly as the tool function names
const (
	ToolMultiplyNumbers          = "multiply_numbers"
	ToolWhimsify                 = "whimsify"
	ToolGenerateCodeReviewPrompt = "generate_code_review_prompt"
	ToolGetRedHatLogo            = "get_redhat_logo"
)

// Tool is implemented by every template tool
type Tool interface {
	GetTool() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// invocationLogger tags every line of a single tool call with a fresh id
func invocationLogger(logger *slog.Logger, toolName string) *slog.Logger {
	return logger.With("tool", toolName, "invocation_id", uuid.NewString())
}

// readOnlyAnnotations marks a tool as a pure, repeatable lookup
func readOnlyAnnotations(title string) []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithTitleAnnotation(title),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	}
}
