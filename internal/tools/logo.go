package tools

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/averycrespi/template-mcp/internal/results"
	"github.com/disintegration/imaging"
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	logoOperation   = "get_redhat_logo"
	logoName        = "Red Hat Logo"
	logoDescription = "Red Hat logo as base64 encoded PNG"
	logoMimeType    = "image/png"
)

// Error tags returned by the logo tool
const (
	LogoErrFileNotFound     = "file_not_found"
	LogoErrPermissionDenied = "permission_denied"
	LogoErrReadFailed       = "read_failed"
)

// LogoTool serves the bundled logo image from an asset root
type LogoTool struct {
	logger   *slog.Logger
	assets   fs.FS
	root     string
	fileName string
}

// NewLogoTool creates a new logo tool reading fileName from assets. root is
// only used to describe the file location in messages.
func NewLogoTool(logger *slog.Logger, assets fs.FS, root, fileName string) *LogoTool {
	return &LogoTool{
		logger:   logger,
		assets:   assets,
		root:     root,
		fileName: fileName,
	}
}

// GetTool returns the MCP tool definition
func (t *LogoTool) GetTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Return the Red Hat logo as a base64 encoded PNG image"),
	}
	return mcp.NewTool(ToolGetRedHatLogo, append(opts, readOnlyAnnotations("Get Red Hat Logo")...)...)
}

// Handle processes the tool request
func (t *LogoTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := invocationLogger(t.logger, ToolGetRedHatLogo)
	result := t.getLogo(logger)

	if logo, ok := result.(results.LogoResult); ok {
		return encodeResult(result, mcp.NewImageContent(logo.Data, logo.MimeType)), nil
	}
	return encodeResult(result), nil
}

// GetLogo reads the logo and returns it base64 encoded
func (t *LogoTool) GetLogo() results.ToolResult {
	return t.getLogo(t.logger)
}

func (t *LogoTool) getLogo(logger *slog.Logger) results.ToolResult {
	location := filepath.Join(t.root, t.fileName)

	data, err := readAsset(t.assets, t.fileName)
	if err != nil {
		logger.Error("Error reading logo file", "path", location, "error", err)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return results.NewErrorResult(logoOperation, LogoErrFileNotFound,
				fmt.Sprintf("Could not find logo file: %s", location))
		case errors.Is(err, fs.ErrPermission):
			return results.NewErrorResult(logoOperation, LogoErrPermissionDenied,
				fmt.Sprintf("Permission denied reading logo file: %s", location))
		default:
			return results.NewErrorResult(logoOperation, LogoErrReadFailed,
				fmt.Sprintf("Failed to read logo file: %s", location))
		}
	}

	result := results.LogoResult{
		Status:      results.StatusSuccess,
		Operation:   logoOperation,
		Name:        logoName,
		Description: logoDescription,
		MimeType:    logoMimeType,
		Data:        base64.StdEncoding.EncodeToString(data),
		SizeBytes:   len(data),
	}

	if img, err := imaging.Decode(bytes.NewReader(data)); err == nil {
		result.Width = img.Bounds().Dx()
		result.Height = img.Bounds().Dy()
	} else {
		logger.Debug("Logo file is not a decodable image", "path", location, "error", err)
	}

	logger.Info("Logo tool called", "operation", logoOperation, "path", location, "size_bytes", result.SizeBytes)

	return result
}

// readAsset reads a file in full, releasing the handle on every path
func readAsset(assets fs.FS, name string) ([]byte, error) {
	f, err := assets.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}
