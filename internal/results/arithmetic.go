package results

// MultiplyResult represents the result of the multiply_numbers tool
type MultiplyResult struct {
	Status    Status  `json:"status"`
	Operation string  `json:"operation"`
	A         float64 `json:"a"`
	B         float64 `json:"b"`
	Result    float64 `json:"result"`
	Message   string  `json:"message"`
}

func (r MultiplyResult) ResultStatus() Status { return r.Status }

// WhimsifyResult represents the result of the whimsify tool
type WhimsifyResult struct {
	Status    Status  `json:"status"`
	Operation string  `json:"operation"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Result    float64 `json:"result"`
	Message   string  `json:"message"`
}

func (r WhimsifyResult) ResultStatus() Status { return r.Status }
