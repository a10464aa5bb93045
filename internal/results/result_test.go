package results

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultStatus(t *testing.T) {
	tests := []struct {
		name     string
		result   ToolResult
		expected Status
	}{
		{
			name:     "Multiply success",
			result:   MultiplyResult{Status: StatusSuccess},
			expected: StatusSuccess,
		},
		{
			name:     "Whimsify success",
			result:   WhimsifyResult{Status: StatusSuccess},
			expected: StatusSuccess,
		},
		{
			name:     "Code review success",
			result:   CodeReviewResult{Status: StatusSuccess},
			expected: StatusSuccess,
		},
		{
			name:     "Logo success",
			result:   LogoResult{Status: StatusSuccess},
			expected: StatusSuccess,
		},
		{
			name:     "Error result is always an error",
			result:   ErrorResult{},
			expected: StatusError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.result.ResultStatus())
		})
	}
}

func TestErrorResultShape(t *testing.T) {
	data, err := json.Marshal(NewErrorResult("", "bad input", "Failed to perform multiplication"))
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	assert.Equal(t, map[string]any{
		"status":  "error",
		"error":   "bad input",
		"message": "Failed to perform multiplication",
	}, fields)
}

func TestErrorResultWithOperation(t *testing.T) {
	data, err := json.Marshal(NewErrorResult("get_redhat_logo", "file_not_found", "Could not find logo file"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"operation":"get_redhat_logo"`)
}

func TestLogoResultOmitsUnknownDimensions(t *testing.T) {
	data, err := json.Marshal(LogoResult{Status: StatusSuccess, Data: "AA==", SizeBytes: 1})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "width")
	assert.NotContains(t, string(data), "height")
	assert.Contains(t, string(data), `"size_bytes":1`)
}
