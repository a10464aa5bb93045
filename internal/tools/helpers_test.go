package tools

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/averycrespi/template-mcp/internal/logging"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"
)

// newCaptureLogger returns a logger whose text output is collected in the buffer
func newCaptureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), &buf
}

func newRequest(arguments map[string]any) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = arguments
	return request
}

// decodeText unmarshals the first text content of a tool result
func decodeText(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()
	require.NotEmpty(t, result.Content)

	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "first content should be text, got %T", result.Content[0])

	var fields map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &fields))
	return fields
}

func discardLogger() *slog.Logger {
	return logging.Discard()
}
