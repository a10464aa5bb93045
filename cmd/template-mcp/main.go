package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/averycrespi/template-mcp/internal/config"
	"github.com/averycrespi/template-mcp/internal/logging"
	"github.com/averycrespi/template-mcp/internal/server"
	"github.com/averycrespi/template-mcp/pkg/project"
	"github.com/averycrespi/template-mcp/pkg/types"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// serveOptions holds command line overrides for the loaded config
type serveOptions struct {
	configPath string
	transport  string
	host       string
	port       int
	logLevel   string
	logFormat  string
	assetsDir  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &serveOptions{}

	rootCmd := &cobra.Command{
		Use:           project.Name,
		Short:         "Template MCP server exposing example tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
	bindServeFlags(rootCmd.PersistentFlags(), opts)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve the MCP tools (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", project.Name, project.Version)
		},
	})

	return rootCmd
}

func bindServeFlags(flags *pflag.FlagSet, opts *serveOptions) {
	flags.StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	flags.StringVar(&opts.transport, "transport", types.TransportStdio, "Transport (stdio, sse, streamable-http)")
	flags.StringVar(&opts.host, "host", "127.0.0.1", "Host to listen on for HTTP transports")
	flags.IntVar(&opts.port, "port", 8080, "Port to listen on for HTTP transports")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "text", "Log format (text, json)")
	flags.StringVar(&opts.assetsDir, "assets-dir", "", "Directory holding the logo asset (defaults to the embedded copy)")
}

// loadConfig layers explicitly set flags over the file and environment config
func loadConfig(flags *pflag.FlagSet, opts *serveOptions) (*types.Config, error) {
	cfg, err := config.LoadUnvalidated(opts.configPath)
	if err != nil {
		return nil, err
	}

	if flags.Changed("transport") {
		cfg.Transport = opts.transport
	}
	if flags.Changed("host") {
		cfg.Host = opts.host
	}
	if flags.Changed("port") {
		cfg.Port = opts.port
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = opts.logFormat
	}
	if flags.Changed("assets-dir") {
		cfg.AssetsDir = opts.assetsDir
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, opts *serveOptions) error {
	cfg, err := loadConfig(cmd.Flags(), opts)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Invalid configuration: %v\n", err)
		return err
	}

	// stdout carries the MCP protocol on stdio, so logs always go to stderr
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	mcpServer, err := server.NewTemplateServer(cfg, logger)
	if err != nil {
		logger.Error("Failed to create server", "error", err)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcpServer.Serve(ctx); err != nil {
		logger.Error("Server error", "error", err)
		return err
	}

	logger.Info("Server stopped")
	return nil
}
