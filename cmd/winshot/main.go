package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "serve":
		os.Exit(runServe(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "windows":
		os.Exit(runWindows(os.Args[2:]))
	case "capture":
		os.Exit(runCapture(os.Args[2:]))
	case "key":
		os.Exit(runKey(os.Args[2:]))
	case "type":
		os.Exit(runType(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "init":
		os.Exit(runInit(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: winshot <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  serve               Start the HTTP server (MCP over SSE + screenshots)")
	fmt.Fprintln(w, "  mcp serve           Start the MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  windows list        List visible windows")
	fmt.Fprintln(w, "  windows find        Find a window by title or application")
	fmt.Fprintln(w, "  capture             Capture a window or display screenshot")
	fmt.Fprintln(w, "  key                 Press a key with optional modifiers")
	fmt.Fprintln(w, "  type                Type text into the focused window")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print configuration")
	fmt.Fprintln(w, "  init                Create a config file interactively")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'winshot <command> --help' for command-specific options.")
}
