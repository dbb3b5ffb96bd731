package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/1broseidon/winshot/internal/config"
	"github.com/1broseidon/winshot/internal/platform"
	"github.com/1broseidon/winshot/internal/window"
)

func printWindowsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: winshot windows <command>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  list    List visible windows front-to-back")
	fmt.Fprintln(w, "  find    Find a window by title or application substring")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'winshot windows <command> --help' for command-specific options.")
}

func runWindows(args []string) int {
	if len(args) == 0 {
		printWindowsUsage(os.Stderr)
		return 2
	}

	switch args[0] {
	case "list":
		return runWindowsList(args[1:])
	case "find":
		return runWindowsFind(args[1:])
	case "help", "-h", "--help":
		printWindowsUsage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown windows command: %s\n\n", args[0])
		printWindowsUsage(os.Stderr)
		return 2
	}
}

func openDirectory() (*window.Directory, platform.Backend) {
	backend, err := platform.New()
	if err != nil {
		log.Fatalf("Failed to open platform backend: %v", err)
	}
	return window.NewDirectory(backend), backend
}

func runWindowsList(args []string) int {
	fs := flag.NewFlagSet("windows list", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	asJSON := fs.Bool("json", false, "Output as JSON")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winshot windows list [--json]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	dir, backend := openDirectory()
	defer backend.Close()

	records, err := dir.ListChecked()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to list windows: %v\n", err)
		return 1
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	if len(records) == 0 {
		fmt.Println("No windows found.")
		return 0
	}
	for _, r := range records {
		fmt.Printf("%10d  %-24s  %s\n", r.ID, r.Owner, r.Name)
	}
	return 0
}

func runWindowsFind(args []string) int {
	fs := flag.NewFlagSet("windows find", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	asJSON := fs.Bool("json", false, "Output as JSON")
	ownerSearch := fs.Bool("owner-search", true, "Also match against owning application names")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winshot windows find [--json] [--owner-search=false] <title>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	// Config only supplies the default; the flag wins when set.
	searchOwner := *ownerSearch
	if cfg, err := config.Load(); err == nil && !flagWasSet(fs, "owner-search") {
		searchOwner = cfg.SearchInOwner()
	}

	dir, backend := openDirectory()
	defer backend.Close()

	id, err := dir.Resolve(fs.Arg(0), searchOwner)
	if err != nil {
		fmt.Fprintf(os.Stderr, "No window matching %q\n", fs.Arg(0))
		return 1
	}

	if *asJSON {
		out := map[string]any{"window_id": id}
		if rec, ok := dir.Find(id); ok {
			out["name"] = rec.Name
			out["owner"] = rec.Owner
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	fmt.Println(id)
	return 0
}

func flagWasSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
