package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/averycrespi/template-mcp/assets"
	"github.com/averycrespi/template-mcp/internal/tools"
	"github.com/averycrespi/template-mcp/pkg/project"
	"github.com/averycrespi/template-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/server"
)

const shutdownTimeout = 5 * time.Second

var _ types.Server = &TemplateServer{}

// TemplateServer represents the template MCP server
type TemplateServer struct {
	mcpServer *server.MCPServer
	config    *types.Config
	logger    *slog.Logger
}

// NewTemplateServer creates the MCP server and registers every tool. The tool
// table is fixed once this returns.
func NewTemplateServer(config *types.Config, logger *slog.Logger) (*TemplateServer, error) {
	mcpServer := server.NewMCPServer(project.Name, project.Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithLogging(),
	)

	assetFS, assetRoot := resolveAssets(config)
	registry := []tools.Tool{
		tools.NewMultiplyTool(logger),
		tools.NewCodeReviewTool(logger),
		tools.NewLogoTool(logger, assetFS, assetRoot, assets.LogoFile),
		tools.NewWhimsifyTool(logger),
	}

	if err := registerTools(mcpServer, registry); err != nil {
		logger.Error("Failed to initialize Template MCP Server", "error", err)
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	logger.Info("Template MCP Server initialized successfully", "tools", len(registry))

	return &TemplateServer{
		mcpServer: mcpServer,
		config:    config,
		logger:    logger,
	}, nil
}

// registerTools binds each tool to its name, rejecting empty or duplicate names
func registerTools(mcpServer *server.MCPServer, registry []tools.Tool) error {
	seen := make(map[string]bool, len(registry))
	serverTools := make([]server.ServerTool, 0, len(registry))

	for _, t := range registry {
		tool := t.GetTool()
		if tool.Name == "" {
			return errors.New("tool has an empty name")
		}
		if seen[tool.Name] {
			return fmt.Errorf("duplicate tool name: %s", tool.Name)
		}
		seen[tool.Name] = true

		serverTools = append(serverTools, server.ServerTool{Tool: tool, Handler: t.Handle})
	}

	mcpServer.AddTools(serverTools...)
	return nil
}

// resolveAssets returns the configured asset directory, or the embedded assets
func resolveAssets(config *types.Config) (fs.FS, string) {
	if config.AssetsDir != "" {
		return os.DirFS(config.AssetsDir), config.AssetsDir
	}
	return assets.FS, "assets"
}

// MCPServer returns the underlying MCP server
func (s *TemplateServer) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// Serve runs the configured transport until ctx is cancelled
func (s *TemplateServer) Serve(ctx context.Context) error {
	s.logger.Info("Starting Template MCP server",
		"transport", s.config.Transport,
		"host", s.config.Host,
		"port", s.config.Port)

	addr := net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))

	switch s.config.Transport {
	case types.TransportStdio:
		return s.serveStdio(ctx)
	case types.TransportSSE:
		sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL("http://"+addr))
		return s.serveHTTP(ctx, addr, sseServer)
	case types.TransportStreamableHTTP:
		return s.serveHTTP(ctx, addr, server.NewStreamableHTTPServer(s.mcpServer))
	default:
		return fmt.Errorf("unsupported transport %q", s.config.Transport)
	}
}

func (s *TemplateServer) serveStdio(ctx context.Context) error {
	stdioServer := server.NewStdioServer(s.mcpServer)
	stdioServer.SetErrorLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelError))

	if err := stdioServer.Listen(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}
	return nil
}

// httpTransport is satisfied by the SSE and streamable HTTP servers
type httpTransport interface {
	Start(addr string) error
	Shutdown(ctx context.Context) error
}

func (s *TemplateServer) serveHTTP(ctx context.Context, addr string, transport httpTransport) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- transport.Start(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve MCP server: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("Shutting down Template MCP server", "transport", s.config.Transport)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := transport.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown MCP server: %w", err)
		}
		return nil
	}
}
