package tools

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/averycrespi/template-mcp/internal/results"
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	codeReviewOperation     = "code_review_prompt"
	codeReviewFailedMessage = "Failed to generate code review prompt"
	defaultReviewLanguage   = "python"

	errCodeRequired     = "Code must be a non-empty string"
	errLanguageRequired = "Language must be a non-empty string"
)

var reviewChecklist = []string{
	"Code quality and readability",
	"Potential bugs or issues",
	"Best practices",
	"Performance considerations",
}

// CodeReviewTool turns a code snippet into a review prompt
type CodeReviewTool struct {
	logger *slog.Logger
}

// NewCodeReviewTool creates a new code review prompt tool
func NewCodeReviewTool(logger *slog.Logger) *CodeReviewTool {
	return &CodeReviewTool{logger: logger}
}

// GetTool returns the MCP tool definition
func (t *CodeReviewTool) GetTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Generate a structured code review prompt for the given code snippet"),
		mcp.WithString("code", mcp.Required(), mcp.Description("Code to review")),
		mcp.WithString("language",
			mcp.DefaultString(defaultReviewLanguage),
			mcp.Description("Programming language of the code, used to label the fenced block"),
		),
	}
	return mcp.NewTool(ToolGenerateCodeReviewPrompt, append(opts, readOnlyAnnotations("Generate Code Review Prompt")...)...)
}

// Handle processes the tool request
func (t *CodeReviewTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := invocationLogger(t.logger, ToolGenerateCodeReviewPrompt)
	return encodeResult(generateCodeReviewPrompt(logger, getArgument(req, "code"), getArgument(req, "language"))), nil
}

// GenerateCodeReviewPrompt builds the review prompt. A nil language selects
// the default; any other non-string or empty language is rejected.
func (t *CodeReviewTool) GenerateCodeReviewPrompt(code, language any) results.ToolResult {
	return generateCodeReviewPrompt(t.logger, code, language)
}

func generateCodeReviewPrompt(logger *slog.Logger, rawCode, rawLanguage any) results.ToolResult {
	code, ok := rawCode.(string)
	if !ok || code == "" {
		return codeReviewFailure(logger, errCodeRequired)
	}

	language := defaultReviewLanguage
	if rawLanguage != nil {
		language, ok = rawLanguage.(string)
		if !ok || language == "" {
			return codeReviewFailure(logger, errLanguageRequired)
		}
	}

	prompt := buildReviewPrompt(code, language)

	logger.Info("Code review prompt generated",
		"operation", codeReviewOperation,
		"language", language,
		"code_length", len(code))

	return results.CodeReviewResult{
		Status:    results.StatusSuccess,
		Operation: codeReviewOperation,
		Language:  language,
		Prompt:    prompt,
		Message:   fmt.Sprintf("Generated code review prompt for %s code", language),
	}
}

func buildReviewPrompt(code, language string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Please review the following %s code:\n\n", language)
	fmt.Fprintf(&b, "```%s\n%s\n```\n\n", language, code)
	b.WriteString("Focus on:\n")
	for _, item := range reviewChecklist {
		fmt.Fprintf(&b, "- %s\n", item)
	}
	return b.String()
}

func codeReviewFailure(logger *slog.Logger, reason string) results.ToolResult {
	logger.Error("Error in code review prompt tool", "error", reason)
	return results.NewErrorResult("", reason, codeReviewFailedMessage)
}
