// Package mcpserver exposes the colour converter and the settings stack as
// MCP tools over stdio or SSE.
package mcpserver

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"rgbhsl/internal/config"
	"rgbhsl/internal/session"
	"rgbhsl/pkg/logging"
)

const subsystem = "MCPServer"

// Server wraps an MCP server bound to one session.
type Server struct {
	session *session.Session
	config  config.ServerConfig
	mcp     *server.MCPServer
}

// New creates a server and registers every tool.
func New(s *session.Session, cfg config.ServerConfig, version string) *Server {
	if version == "" {
		version = "dev"
	}
	srv := &Server{
		session: s,
		config:  cfg,
		mcp: server.NewMCPServer(
			"rgbhsl",
			version,
			server.WithToolCapabilities(true),
		),
	}
	srv.mcp.AddTools(srv.Tools()...)
	return srv
}

// MCPServer returns the underlying MCP server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// Serve runs the configured transport until ctx is done or the transport fails.
func (s *Server) Serve(ctx context.Context) error {
	switch s.config.Transport {
	case config.TransportStdio, "":
		return s.serveStdio(ctx)
	case config.TransportSSE:
		return s.serveSSE(ctx)
	default:
		return fmt.Errorf("unsupported transport %q", s.config.Transport)
	}
}

func (s *Server) serveStdio(ctx context.Context) error {
	logging.Info(subsystem, "Serving MCP over stdio")
	stdio := server.NewStdioServer(s.mcp)
	if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		return fmt.Errorf("stdio server: %w", err)
	}
	return nil
}

func (s *Server) serveSSE(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	baseURL := fmt.Sprintf("http://%s", addr)
	sseServer := server.NewSSEServer(
		s.mcp,
		server.WithBaseURL(baseURL),
		server.WithSSEEndpoint("/sse"),
		server.WithMessageEndpoint("/message"),
		server.WithKeepAlive(true),
		server.WithKeepAliveInterval(30*time.Second),
	)

	logging.Info(subsystem, "Starting MCP server on %s", addr)
	errCh := make(chan error, 1)
	go func() {
		if err := sseServer.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logging.Error(subsystem, err, "SSE server error")
			return fmt.Errorf("sse server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Info(subsystem, "Stopping MCP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sseServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(subsystem, err, "Error shutting down SSE server")
		return err
	}
	return nil
}
