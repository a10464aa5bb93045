package results

// Status discriminates the success and error shapes of a ToolResult
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// ToolResult is the structured value every tool returns. It is implemented by
// exactly one success type per tool and by ErrorResult.
type ToolResult interface {
	ResultStatus() Status
}

// ErrorResult represents a failed tool invocation
type ErrorResult struct {
	Status    Status `json:"status"`
	Operation string `json:"operation,omitempty"`
	Error     string `json:"error"`
	Message   string `json:"message"`
}

func (r ErrorResult) ResultStatus() Status { return StatusError }

// NewErrorResult builds an ErrorResult with the status already set
func NewErrorResult(operation, errText, message string) ErrorResult {
	return ErrorResult{
		Status:    StatusError,
		Operation: operation,
		Error:     errText,
		Message:   message,
	}
}
