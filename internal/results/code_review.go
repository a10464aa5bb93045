package results

// CodeReviewResult represents the result of the generate_code_review_prompt tool
type CodeReviewResult struct {
	Status    Status `json:"status"`
	Operation string `json:"operation"`
	Language  string `json:"language"`
	Prompt    string `json:"prompt"`
	Message   string `json:"message"`
}

func (r CodeReviewResult) ResultStatus() Status { return r.Status }
