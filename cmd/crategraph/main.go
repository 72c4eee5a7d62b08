// Package main provides the crategraph binary entry point.
// Crategraph converts rustdoc JSON API descriptions into RDF triples
// describing crates, modules, types, members and their relationships.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/crategraph/config"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "crategraph"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type flags struct {
	output       string
	format       string
	baseIRI      string
	crateDir     bool
	watch        bool
	excludeImpls bool
	excludeAttrs bool
	noErrorTypes bool
	noDerives    bool
	logLevel     string
	jsonLogs     bool
	quiet        bool
	verbose      bool
}

func rootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "crategraph [input]",
		Short: "Convert rustdoc JSON to RDF triples",
		Long: `Crategraph walks a rustdoc JSON API description and emits an RDF
graph of its crates, modules, types, members and relationships.

The input is a rustdoc JSON file, a glob pattern matching several JSON
files, or (with --crate) a crate directory to document with a nightly
toolchain first. Output is N-Triples or Turtle, to a file or stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogger(&f)
			cfg, err := resolveConfig(&f, logger)
			if err != nil {
				return err
			}
			if f.watch {
				return runWatch(cmd.Context(), logger, cfg, &f, args[0])
			}
			return runExtract(cmd.Context(), logger, cfg, &f, args[0])
		},
	}

	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output file path (default: stdout; a directory in batch mode)")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "Output format: ntriples or turtle (default: turtle)")
	cmd.Flags().StringVar(&f.baseIRI, "base-uri", "", "Base URI for minted node IRIs")
	cmd.Flags().BoolVar(&f.crateDir, "crate", false, "Treat input as a crate directory and run rustdoc first")
	cmd.Flags().BoolVar(&f.watch, "watch", false, "Watch the input file and re-extract on change")
	cmd.Flags().BoolVar(&f.excludeImpls, "exclude-impls", false, "Skip the impl block pass")
	cmd.Flags().BoolVar(&f.excludeAttrs, "exclude-attributes", false, "Skip attribute-derived facts")
	cmd.Flags().BoolVar(&f.noErrorTypes, "no-error-types", false, "Skip error type edges for Result returns")
	cmd.Flags().BoolVar(&f.noDerives, "no-derives", false, "Skip derive literals on structs and enums")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&f.jsonLogs, "json", false, "Emit logs as JSON")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "Only log errors")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Log at debug level")

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

// setupLogger configures the process-wide logger. Quiet and verbose win
// over --log-level.
func setupLogger(f *flags) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(f.logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if f.verbose {
		level = slog.LevelDebug
	}
	if f.quiet {
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if f.jsonLogs {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// resolveConfig layers the config files and applies command-line flags on
// top.
func resolveConfig(f *flags, logger *slog.Logger) (*config.Config, error) {
	cfg, err := config.NewLoader(logger).Load()
	if err != nil {
		return nil, err
	}

	if f.baseIRI != "" {
		cfg.Extract.BaseIRI = f.baseIRI
	}
	if f.format != "" {
		cfg.Output.Format = f.format
	}
	if f.output != "" {
		cfg.Output.Path = f.output
	}

	off := false
	if f.excludeImpls {
		cfg.Extract.Impls = &off
	}
	if f.excludeAttrs {
		cfg.Extract.Attributes = &off
	}
	if f.noErrorTypes {
		cfg.Extract.ErrorTypes = &off
	}
	if f.noDerives {
		cfg.Extract.Derives = &off
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
