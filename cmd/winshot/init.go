package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/1broseidon/winshot/internal/config"
)

var initTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

func runInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("path", "", "Config file path (default: ~/.config/winshot/config.yaml)")
	force := fs.Bool("force", false, "Overwrite an existing config file")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winshot init [--path PATH] [--force]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Create a config file interactively.")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "init requires an interactive terminal; write the config file directly instead")
		return 1
	}

	target := *path
	if target == "" {
		var err error
		target, err = config.DefaultConfigPath()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	if _, err := os.Stat(target); err == nil && !*force {
		fmt.Fprintf(os.Stderr, "%s already exists; use --force to overwrite\n", target)
		return 1
	}

	cfg := config.DefaultConfig()
	fmt.Println(initTitleStyle.Render("winshot configuration"))

	host := cfg.Server.Host
	port := strconv.Itoa(cfg.Server.Port)
	dir := cfg.Screenshots.Dir
	charDelay := strconv.Itoa(cfg.Typing.CharDelayMS)
	logging := cfg.Logging.Enabled

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Bind address").
				Description("Host the HTTP server listens on").
				Value(&host),

			huh.NewInput().
				Title("Port").
				Description("Port the HTTP server listens on").
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 1 || n > 65535 {
						return fmt.Errorf("must be a port number between 1 and 65535")
					}
					return nil
				}).
				Value(&port),

			huh.NewInput().
				Title("Screenshots directory").
				Description("Where captured PNGs are written").
				Value(&dir),

			huh.NewInput().
				Title("Typing delay (ms)").
				Description("Pause between characters when typing text").
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 0 {
						return fmt.Errorf("must be a non-negative integer")
					}
					return nil
				}).
				Value(&charDelay),

			huh.NewConfirm().
				Title("Enable action logging?").
				Description("Record tool invocations to a rotating log file").
				Value(&logging),
		),
	)

	if err := form.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	cfg.Server.Host = host
	cfg.Server.Port, _ = strconv.Atoi(port)
	cfg.Screenshots.Dir = dir
	cfg.Typing.CharDelayMS, _ = strconv.Atoi(charDelay)
	cfg.Logging.Enabled = logging

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := cfg.Save(target); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	fmt.Printf("Wrote %s\n", target)
	return 0
}
