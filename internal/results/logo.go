package results

// LogoResult represents the result of the get_redhat_logo tool
type LogoResult struct {
	Status      Status `json:"status"`
	Operation   string `json:"operation"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MimeType    string `json:"mimeType"`
	Data        string `json:"data"`
	SizeBytes   int    `json:"size_bytes"`
	// Width and Height are only set when the asset decodes as an image
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
}

func (r LogoResult) ResultStatus() Status { return r.Status }
