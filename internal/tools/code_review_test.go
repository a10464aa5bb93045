package tools

import (
	"context"
	"testing"

	"github.com/averycrespi/template-mcp/internal/results"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCodeReviewPrompt(t *testing.T) {
	tool := NewCodeReviewTool(discardLogger())

	result, ok := tool.GenerateCodeReviewPrompt("x=1", "python").(results.CodeReviewResult)
	require.True(t, ok)
	assert.Equal(t, results.StatusSuccess, result.Status)
	assert.Equal(t, "code_review_prompt", result.Operation)
	assert.Equal(t, "python", result.Language)
	assert.Contains(t, result.Prompt, "x=1")
	assert.Contains(t, result.Prompt, "```python")
}

func TestGenerateCodeReviewPrompt_DefaultLanguage(t *testing.T) {
	result, ok := NewCodeReviewTool(discardLogger()).GenerateCodeReviewPrompt("def f(): pass", nil).(results.CodeReviewResult)
	require.True(t, ok)
	assert.Equal(t, "python", result.Language)
	assert.Contains(t, result.Prompt, "def f(): pass")
	assert.Contains(t, result.Prompt, "```python\n")
}

func TestGenerateCodeReviewPrompt_ContentStructure(t *testing.T) {
	code := "func main() {}"
	result := NewCodeReviewTool(discardLogger()).GenerateCodeReviewPrompt(code, "go").(results.CodeReviewResult)

	expected := "Please review the following go code:\n\n" +
		"```go\nfunc main() {}\n```\n\n" +
		"Focus on:\n" +
		"- Code quality and readability\n" +
		"- Potential bugs or issues\n" +
		"- Best practices\n" +
		"- Performance considerations\n"
	assert.Equal(t, expected, result.Prompt)
	assert.Equal(t, "Generated code review prompt for go code", result.Message)
}

func TestGenerateCodeReviewPrompt_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		code     any
		language any
		expected string
	}{
		{name: "Empty code", code: "", language: "python", expected: "Code must be a non-empty string"},
		{name: "Missing code", code: nil, language: "python", expected: "Code must be a non-empty string"},
		{name: "Non-string code", code: 42.0, language: "python", expected: "Code must be a non-empty string"},
		{name: "Empty language", code: "def test(): pass", language: "", expected: "Language must be a non-empty string"},
		{name: "Non-string language", code: "def test(): pass", language: []any{"go"}, expected: "Language must be a non-empty string"},
	}

	tool := NewCodeReviewTool(discardLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := tool.GenerateCodeReviewPrompt(tt.code, tt.language).(results.ErrorResult)
			require.True(t, ok)
			assert.Equal(t, results.StatusError, result.Status)
			assert.Equal(t, tt.expected, result.Error)
			assert.Equal(t, "Failed to generate code review prompt", result.Message)
		})
	}
}

func TestGenerateCodeReviewPrompt_Idempotent(t *testing.T) {
	tool := NewCodeReviewTool(discardLogger())
	assert.Equal(t, tool.GenerateCodeReviewPrompt("x=1", "python"), tool.GenerateCodeReviewPrompt("x=1", "python"))
}

func TestCodeReviewTool_Handle(t *testing.T) {
	tool := NewCodeReviewTool(discardLogger())

	tests := []struct {
		name      string
		arguments map[string]any
		isError   bool
		language  string
	}{
		{
			name:      "Explicit language",
			arguments: map[string]any{"code": "fn main() {}", "language": "rust"},
			language:  "rust",
		},
		{
			name:      "Omitted language",
			arguments: map[string]any{"code": "x=1"},
			language:  "python",
		},
		{
			name:      "Missing code",
			arguments: map[string]any{},
			isError:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tool.Handle(context.Background(), newRequest(tt.arguments))
			require.NoError(t, err)
			assert.Equal(t, tt.isError, result.IsError)

			fields := decodeText(t, result)
			if tt.isError {
				assert.Equal(t, "error", fields["status"])
				return
			}
			assert.Equal(t, tt.language, fields["language"])
			assert.Contains(t, fields["prompt"], "```"+tt.language)
		})
	}
}
