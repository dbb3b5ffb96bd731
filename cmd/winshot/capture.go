package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/1broseidon/winshot/internal/capture"
	"github.com/1broseidon/winshot/internal/config"
	"github.com/1broseidon/winshot/internal/platform"
	"github.com/1broseidon/winshot/internal/window"
)

func runCapture(args []string) int {
	fs := flag.NewFlagSet("capture", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	out := fs.String("o", "", "Output file (default: screenshot.png)")
	display := fs.Int("display", -1, "Capture a full display by index instead of a window")
	maxWidth := fs.Int("max-width", 0, "Downscale so width does not exceed this many pixels")
	maxHeight := fs.Int("max-height", 0, "Downscale so height does not exceed this many pixels")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winshot capture [options] <window>")
		fmt.Fprintln(os.Stderr, "       winshot capture [options] --display N")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "The window is identified by numeric ID or by a title/application")
		fmt.Fprintln(os.Stderr, "substring, as with 'winshot windows find'.")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	captureDisplay := *display >= 0
	if captureDisplay == (fs.NArg() == 1) {
		fs.Usage()
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	backend, err := platform.New()
	if err != nil {
		log.Fatalf("Failed to open platform backend: %v", err)
	}
	defer backend.Close()

	dir := window.NewDirectory(backend)
	pipeline := capture.NewPipeline(backend, dir)
	opts := capture.Options{MaxWidth: *maxWidth, MaxHeight: *maxHeight}

	var png []byte
	if captureDisplay {
		png, err = pipeline.CaptureDisplay(*display, opts)
	} else {
		var id uint32
		id, err = dir.Resolve(fs.Arg(0), cfg.SearchInOwner())
		if err != nil {
			fmt.Fprintf(os.Stderr, "No window matching %q\n", fs.Arg(0))
			return 1
		}
		png, err = pipeline.CaptureWindow(id, opts)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Capture failed: %v\n", err)
		return 1
	}

	path := *out
	if path == "" {
		path = "screenshot.png"
	}
	if err := os.WriteFile(path, png, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", path, err)
		return 1
	}
	fmt.Println(path)
	return 0
}
