package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/averycrespi/template-mcp/internal/results"
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	multiplyOperation     = "multiplication"
	multiplyFailedMessage = "Failed to perform multiplication"
)

// MultiplyTool multiplies two numbers
type MultiplyTool struct {
	logger *slog.Logger
}

// NewMultiplyTool creates a new multiply tool
func NewMultiplyTool(logger *slog.Logger) *MultiplyTool {
	return &MultiplyTool{logger: logger}
}

// GetTool returns the MCP tool definition
func (t *MultiplyTool) GetTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Multiply two numbers and return the product. Accepts integers or floats."),
		mcp.WithNumber("a", mcp.Required(), mcp.Description("First number to multiply")),
		mcp.WithNumber("b", mcp.Required(), mcp.Description("Second number to multiply")),
	}
	return mcp.NewTool(ToolMultiplyNumbers, append(opts, readOnlyAnnotations("Multiply Numbers")...)...)
}

// Handle processes the tool request
func (t *MultiplyTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := invocationLogger(t.logger, ToolMultiplyNumbers)
	return encodeResult(multiply(logger, getArgument(req, "a"), getArgument(req, "b"))), nil
}

// Multiply validates both operands and returns their product
func (t *MultiplyTool) Multiply(a, b any) results.ToolResult {
	return multiply(t.logger, a, b)
}

func multiply(logger *slog.Logger, rawA, rawB any) results.ToolResult {
	a, err := ParseNumber("a", rawA)
	if err != nil {
		return multiplyFailure(logger, err)
	}
	b, err := ParseNumber("b", rawB)
	if err != nil {
		return multiplyFailure(logger, err)
	}

	product := a * b
	if err := checkFinite(product); err != nil {
		return multiplyFailure(logger, err)
	}

	logger.Info("Multiply tool called",
		"operation", multiplyOperation,
		"expression", fmt.Sprintf("%s * %s = %s", a, b, product),
		"result", float64(product))

	return results.MultiplyResult{
		Status:    results.StatusSuccess,
		Operation: multiplyOperation,
		A:         float64(a),
		B:         float64(b),
		Result:    float64(product),
		Message:   fmt.Sprintf("Successfully multiplied %s and %s", a, b),
	}
}

func multiplyFailure(logger *slog.Logger, err error) results.ToolResult {
	logger.Error("Error in multiply tool", "error", err)
	return results.NewErrorResult("", err.Error(), multiplyFailedMessage)
}
