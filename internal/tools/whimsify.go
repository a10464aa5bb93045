package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/averycrespi/template-mcp/internal/results"
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	whimsifyOperation     = "whimsify"
	whimsifyFailedMessage = "Failed to perform whimsification"
)

// WhimsifyTool computes (x+1)(y+1)
type WhimsifyTool struct {
	logger *slog.Logger
}

// NewWhimsifyTool creates a new whimsify tool
func NewWhimsifyTool(logger *slog.Logger) *WhimsifyTool {
	return &WhimsifyTool{logger: logger}
}

// GetTool returns the MCP tool definition
func (t *WhimsifyTool) GetTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Apply a whimsical transformation to two numbers using the formula (x+1)(y+1). " +
			"Examples: whimsify(4, 9) = 50, whimsify(0, 0) = 1, whimsify(-1, 10) = 0"),
		mcp.WithNumber("x", mcp.Required(), mcp.Description("First number to whimsify")),
		mcp.WithNumber("y", mcp.Required(), mcp.Description("Second number to whimsify")),
	}
	return mcp.NewTool(ToolWhimsify, append(opts, readOnlyAnnotations("Whimsify Numbers")...)...)
}

// Handle processes the tool request
func (t *WhimsifyTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := invocationLogger(t.logger, ToolWhimsify)
	return encodeResult(whimsify(logger, getArgument(req, "x"), getArgument(req, "y"))), nil
}

// Whimsify validates both operands and returns (x+1)(y+1)
func (t *WhimsifyTool) Whimsify(x, y any) results.ToolResult {
	return whimsify(t.logger, x, y)
}

func whimsify(logger *slog.Logger, rawX, rawY any) results.ToolResult {
	x, err := ParseNumber("x", rawX)
	if err != nil {
		return whimsifyFailure(logger, err)
	}
	y, err := ParseNumber("y", rawY)
	if err != nil {
		return whimsifyFailure(logger, err)
	}

	result := (x + 1) * (y + 1)
	if err := checkFinite(result); err != nil {
		return whimsifyFailure(logger, err)
	}

	logger.Info("Whimsify tool called",
		"operation", whimsifyOperation,
		"expression", fmt.Sprintf("(%s+1)(%s+1) = %s", x, y, result),
		"result", float64(result))

	return results.WhimsifyResult{
		Status:    results.StatusSuccess,
		Operation: whimsifyOperation,
		X:         float64(x),
		Y:         float64(y),
		Result:    float64(result),
		Message:   fmt.Sprintf("Successfully whimsified %s and %s", x, y),
	}
}

func whimsifyFailure(logger *slog.Logger, err error) results.ToolResult {
	logger.Error("Error in whimsify tool", "error", err)
	return results.NewErrorResult("", err.Error(), whimsifyFailedMessage)
}
