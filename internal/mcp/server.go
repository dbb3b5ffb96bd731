// Package mcp exposes window enumeration, screenshot capture, and
// keyboard input as MCP tools.
package mcp

import (
	"context"
	"log"
	"net/http"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/winshot/internal/audit"
	"github.com/1broseidon/winshot/internal/capture"
	"github.com/1broseidon/winshot/internal/config"
	"github.com/1broseidon/winshot/internal/keyboard"
	"github.com/1broseidon/winshot/internal/platform"
	"github.com/1broseidon/winshot/internal/storage"
	"github.com/1broseidon/winshot/internal/window"
)

const (
	ServerName    = "winshot"
	ServerVersion = "0.1.0"
)

// Server is the MCP server for desktop window automation.
type Server struct {
	mcpServer *mcpsdk.Server
	config    *config.Config
	directory *window.Directory
	pipeline  *capture.Pipeline
	synth     *keyboard.Synthesizer
	store     *storage.Store
	logger    *audit.Logger
}

// NewServer creates an MCP server over the given platform backend.
func NewServer(cfg *config.Config, backend platform.Backend) (*Server, error) {
	store, err := storage.NewStore(cfg.Screenshots.Dir, cfg.Screenshots.URLPrefix)
	if err != nil {
		return nil, err
	}

	var logger *audit.Logger
	if cfg.Logging.Enabled {
		logger, err = audit.NewLogger(audit.LogConfig{
			Enabled:   cfg.Logging.Enabled,
			Level:     audit.ParseLogLevel(cfg.Logging.Level),
			FilePath:  cfg.Logging.File,
			MaxSizeMB: cfg.Logging.MaxSizeMB,
			MaxFiles:  cfg.Logging.MaxFiles,
		})
		if err != nil {
			log.Printf("Warning: failed to initialize action logger: %v", err)
			logger = nil
		}
	}

	dir := window.NewDirectory(backend)
	s := &Server{
		config:    cfg,
		directory: dir,
		pipeline:  capture.NewPipeline(backend, dir),
		synth:     keyboard.NewSynthesizer(backend, cfg.KeyDelay()),
		store:     store,
		logger:    logger,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s, nil
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

// Close releases server resources.
func (s *Server) Close() error {
	if s == nil || s.logger == nil {
		return nil
	}
	return s.logger.Close()
}

// Directory exposes the window directory for health checks.
func (s *Server) Directory() *window.Directory { return s.directory }

// Store exposes the screenshot store for static file serving.
func (s *Server) Store() *storage.Store { return s.store }

// SSEHandler returns an HTTP handler speaking MCP over SSE. Every
// session shares the one server instance.
func (s *Server) SSEHandler() http.Handler {
	return mcpsdk.NewSSEHandler(func(r *http.Request) *mcpsdk.Server {
		return s.mcpServer
	}, nil)
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List all visible windows in front-to-back order. Returns window ID, title, owning application, and bounds for each. Windows without a title are omitted.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "find_window",
		Description: "Find a window by title substring (case-insensitive). By default the owning application name is searched too, with an exact application-name match taking precedence over substring matches. Returns the window ID of the frontmost match.",
	}, s.handleFindWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "capture_window_screenshot",
		Description: "Capture a screenshot of a single window, even when partially covered. The window is identified by numeric ID or by title/application substring. The PNG is saved server-side and its URL returned; set max_width/max_height to downscale.",
	}, s.handleCaptureWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "capture_display_screenshot",
		Description: "Capture a full display by index (0 is the main display). The PNG is saved server-side and its URL returned; set max_width/max_height to downscale.",
	}, s.handleCaptureDisplay)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "send_key",
		Description: "Press a single key with optional modifiers (command, shift, control, option). The event goes to whatever window currently holds input focus. Key names are case-insensitive: letters, digits, return, tab, space, delete, escape, arrow keys, function keys.",
	}, s.handleSendKey)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "type_text",
		Description: "Type a text string character by character into the focused window, holding shift for uppercase letters. delay is the pause between characters in seconds (default 0.1).",
	}, s.handleTypeText)
}
