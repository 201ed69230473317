package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"rsc.io/getopt"

	"github.com/1broseidon/swmctrl/internal/mcp"
)

func printMCPUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: swmctrl mcp <command>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  serve    Start the MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'swmctrl mcp <command> --help' for command-specific options.")
}

func runMCP(args []string) int {
	if len(args) == 0 {
		printMCPUsage(os.Stderr)
		return 2
	}

	switch args[0] {
	case "serve":
		return runMCPServe(args[1:])
	case "help", "-h", "--help":
		printMCPUsage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown mcp command: %s\n\n", args[0])
		printMCPUsage(os.Stderr)
		return 2
	}
}

func printMCPServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: swmctrl mcp serve [-c PATH] [-v]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Start the MCP server on stdio. Designed to be invoked by MCP clients.")
	fmt.Fprintln(w, "Tools: list_windows, activate_window, activate_pid.")
}

func runMCPServe(args []string) int {
	var (
		configPath string
		verbose    bool
		help       bool
	)
	fs := getopt.NewFlagSet("mcp serve", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&configPath, "config", "", "config file")
	fs.BoolVar(&verbose, "verbose", false, "debug logging")
	fs.BoolVar(&help, "help", false, "show help")
	fs.Alias("c", "config")
	fs.Alias("v", "verbose")
	fs.Alias("h", "help")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		printMCPServeUsage(os.Stderr)
		return 2
	}
	if help {
		printMCPServeUsage(os.Stdout)
		return 0
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "mcp serve takes no arguments")
		printMCPServeUsage(os.Stderr)
		return 2
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// stdout carries the MCP protocol; logs go to stderr.
	logger := newLogger(os.Stderr, cfg, verbose)

	backend, closeBackend, err := openBackendFn(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to connect to display: %v", err)
	}
	defer closeBackend()

	server := mcp.NewServer(backend, cfg.SwitchDesktop)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := server.Run(ctx); err != nil {
		log.Printf("MCP server error: %v", err)
		return 1
	}
	return 0
}
