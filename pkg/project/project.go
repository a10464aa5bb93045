package project

const (
	Name    = "template-mcp"
	Version = "0.1.0"
)
