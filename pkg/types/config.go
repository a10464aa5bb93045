package types

// Transport names accepted by the server
const (
	TransportStdio          = "stdio"
	TransportSSE            = "sse"
	TransportStreamableHTTP = "streamable-http"
)

// Config represents the configuration for the template-mcp server
type Config struct {
	Transport string `yaml:"transport,omitempty"`
	Host      string `yaml:"host,omitempty"`
	Port      int    `yaml:"port,omitempty"`
	LogLevel  string `yaml:"log_level,omitempty"`
	LogFormat string `yaml:"log_format,omitempty"`
	// AssetsDir overrides the embedded asset root when set
	AssetsDir string `yaml:"assets_dir,omitempty"`
}
