package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/1broseidon/winshot/internal/config"
	"github.com/1broseidon/winshot/internal/keyboard"
	"github.com/1broseidon/winshot/internal/platform"
)

func openSynthesizer(cfg *config.Config) (*keyboard.Synthesizer, platform.Backend) {
	backend, err := platform.New()
	if err != nil {
		log.Fatalf("Failed to open platform backend: %v", err)
	}
	return keyboard.NewSynthesizer(backend, cfg.KeyDelay()), backend
}

func runKey(args []string) int {
	fs := flag.NewFlagSet("key", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	modifiers := fs.String("modifiers", "", "Comma-separated modifiers: command, shift, control, option")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winshot key [--modifiers MODS] <key>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Press one key in the focused window. Examples:")
		fmt.Fprintln(os.Stderr, "  winshot key return")
		fmt.Fprintln(os.Stderr, "  winshot key --modifiers command,shift s")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	synth, backend := openSynthesizer(cfg)
	defer backend.Close()

	var mods []string
	for _, m := range strings.Split(*modifiers, ",") {
		if m = strings.TrimSpace(m); m != "" {
			mods = append(mods, m)
		}
	}

	if err := synth.SendKey(fs.Arg(0), mods); err != nil {
		if errors.Is(err, keyboard.ErrUnknownKey) {
			fmt.Fprintf(os.Stderr, "Unknown key %q. Known keys: %s\n",
				fs.Arg(0), strings.Join(keyboard.KnownKeys(), ", "))
		} else {
			fmt.Fprintf(os.Stderr, "Failed to send key: %v\n", err)
		}
		return 1
	}
	return 0
}

func runType(args []string) int {
	fs := flag.NewFlagSet("type", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	delayMS := fs.Int("delay", -1, "Pause between characters in milliseconds (default: from config)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winshot type [--delay MS] <text>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Type text into the focused window, one character at a time.")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	synth, backend := openSynthesizer(cfg)
	defer backend.Close()

	delay := cfg.CharDelay()
	if *delayMS >= 0 {
		delay = time.Duration(*delayMS) * time.Millisecond
	}

	if err := synth.TypeText(context.Background(), fs.Arg(0), delay); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to type text: %v\n", err)
		return 1
	}
	return 0
}
