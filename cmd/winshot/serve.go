package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/1broseidon/winshot/internal/config"
	"github.com/1broseidon/winshot/internal/mcp"
	"github.com/1broseidon/winshot/internal/platform"
	"github.com/1broseidon/winshot/internal/web"
)

func runServe(args []string) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	host := fs.String("host", "", "Bind address (default: from config)")
	port := fs.Int("port", 0, "Port (default: from config)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winshot serve [--host HOST] [--port PORT]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Start the HTTP server: MCP over SSE at /, GET /health, and")
		fmt.Fprintln(os.Stderr, "captured screenshots under the configured URL prefix.")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	backend, err := platform.New()
	if err != nil {
		log.Fatalf("Failed to open platform backend: %v", err)
	}
	defer backend.Close()

	server, err := mcp.NewServer(cfg, backend)
	if err != nil {
		log.Fatalf("Failed to create MCP server: %v", err)
	}
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	if err := web.NewServer(addr, server).ListenAndServe(ctx); err != nil {
		log.Fatalf("HTTP server error: %v", err)
	}
	return 0
}
