package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"rsc.io/getopt"

	"github.com/1broseidon/swmctrl/internal/config"
	"github.com/1broseidon/swmctrl/internal/platform"
	"github.com/1broseidon/swmctrl/internal/render"
	"github.com/1broseidon/swmctrl/internal/x11"
)

// openBackendFn connects to the window manager. Replaced in tests.
var openBackendFn = openLinuxBackend

func openLinuxBackend(cfg *config.Config, logger *slog.Logger) (platform.Backend, func(), error) {
	backend, err := platform.NewLinuxBackendFromDisplay(cfg.Display, logger)
	if err != nil {
		return nil, nil, err
	}
	return backend, backend.Disconnect, nil
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "mcp" {
		os.Exit(runMCP(os.Args[2:]))
	}
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: swmctrl [OPTION]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -l, --list                List windows")
	fmt.Fprintln(w, "  -L, --list-json           List windows in JSON format")
	fmt.Fprintln(w, "  -a, --activate-pid PID    Activate the window owned by PID")
	fmt.Fprintln(w, "  -A, --activate-win WIN    Activate window WIN (decimal or 0x hex)")
	fmt.Fprintln(w, "  -n, --no-switch-desktop   Do not switch to the window's desktop first")
	fmt.Fprintln(w, "  -c, --config PATH         Config file (default ~/.config/swmctrl/config.yaml)")
	fmt.Fprintln(w, "  -v, --verbose             Debug logging on stderr")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  mcp serve                 Start the MCP server (stdio transport)")
}

type options struct {
	list            bool
	listJSON        bool
	activatePID     string
	activateWin     string
	noSwitchDesktop bool
	configPath      string
	verbose         bool
	help            bool
}

func newFlagSet() (*getopt.FlagSet, *options) {
	opts := &options{}
	fs := getopt.NewFlagSet("swmctrl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	fs.BoolVar(&opts.list, "list", false, "list windows")
	fs.BoolVar(&opts.listJSON, "list-json", false, "list windows in JSON format")
	fs.StringVar(&opts.activatePID, "activate-pid", "", "activate the window owned by PID")
	fs.StringVar(&opts.activateWin, "activate-win", "", "activate window WIN")
	fs.BoolVar(&opts.noSwitchDesktop, "no-switch-desktop", false, "do not switch desktop before activating")
	fs.StringVar(&opts.configPath, "config", "", "config file")
	fs.BoolVar(&opts.verbose, "verbose", false, "debug logging")
	fs.BoolVar(&opts.help, "help", false, "show help")

	fs.Alias("l", "list")
	fs.Alias("L", "list-json")
	fs.Alias("a", "activate-pid")
	fs.Alias("A", "activate-win")
	fs.Alias("n", "no-switch-desktop")
	fs.Alias("c", "config")
	fs.Alias("v", "verbose")
	fs.Alias("h", "help")
	return fs, opts
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printMainUsage(stdout)
		return 0
	}

	fs, opts := newFlagSet()
	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(stderr, err)
		fmt.Fprintln(stderr, "")
		printMainUsage(stderr)
		return 2
	}
	if opts.help {
		printMainUsage(stdout)
		return 0
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(stderr, "unexpected argument: %s\n\n", fs.Arg(0))
		printMainUsage(stderr)
		return 2
	}
	if n := opts.commandCount(); n != 1 {
		if n > 1 {
			fmt.Fprintln(stderr, "only one of --list, --list-json, --activate-pid, --activate-win may be given")
			fmt.Fprintln(stderr, "")
		}
		printMainUsage(stderr)
		return 2
	}

	var (
		pid int
		win platform.WindowID
	)
	if opts.activatePID != "" {
		v, err := strconv.ParseUint(opts.activatePID, 10, 32)
		if err != nil || v == 0 {
			fmt.Fprintf(stderr, "invalid process id: %q\n", opts.activatePID)
			return 2
		}
		pid = int(v)
	}
	if opts.activateWin != "" {
		v, err := strconv.ParseUint(opts.activateWin, 0, 32)
		if err != nil || v == 0 {
			fmt.Fprintf(stderr, "invalid window id: %q\n", opts.activateWin)
			return 2
		}
		win = platform.WindowID(v)
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return 1
	}
	logger := newLogger(stderr, cfg, opts.verbose)
	switchDesktop := cfg.SwitchDesktop && !opts.noSwitchDesktop

	backend, closeBackend, err := openBackendFn(cfg, logger)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to connect to display: %v\n", err)
		return 1
	}
	defer closeBackend()

	switch {
	case opts.list:
		return runList(backend, cfg, cfg.Output == config.OutputJSON, stdout, stderr)
	case opts.listJSON:
		return runList(backend, cfg, true, stdout, stderr)
	case opts.activateWin != "":
		if err := backend.ActivateWindow(win, switchDesktop); err != nil {
			fmt.Fprintf(stderr, "Failed to activate window: %v\n", err)
			return 1
		}
		logger.Info("activated window", "window", win, "switch_desktop", switchDesktop)
		return 0
	default:
		w, err := backend.ActivateByPID(pid, switchDesktop)
		if err != nil {
			if errors.Is(err, x11.ErrNotFound) {
				fmt.Fprintf(stderr, "Failed to activate window: no window with process id %d\n", pid)
			} else {
				fmt.Fprintf(stderr, "Failed to activate window: %v\n", err)
			}
			return 1
		}
		logger.Info("activated window", "window", w.ID, "pid", w.PID, "title", w.Title)
		return 0
	}
}

func (o *options) commandCount() int {
	n := 0
	for _, set := range []bool{o.list, o.listJSON, o.activatePID != "", o.activateWin != ""} {
		if set {
			n++
		}
	}
	return n
}

func runList(backend platform.Backend, cfg *config.Config, asJSON bool, stdout, stderr io.Writer) int {
	windows, err := backend.ListWindows()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to list windows: %v\n", err)
		return 1
	}

	if asJSON {
		err = render.JSON(stdout, windows)
	} else {
		opts := render.TextOptions{}
		if f, ok := stdout.(*os.File); ok && cfg.TruncateTitles {
			opts.Width = render.TerminalWidth(f)
		}
		err = render.Text(stdout, windows, opts)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Failed to write output: %v\n", err)
		return 1
	}
	return 0
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}

func newLogger(w io.Writer, cfg *config.Config, verbose bool) *slog.Logger {
	level := cfg.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
