package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"

	"github.com/c360studio/crategraph/config"
	"github.com/c360studio/crategraph/emit"
	"github.com/c360studio/crategraph/extract"
	"github.com/c360studio/crategraph/rustdoc"
)

// runExtract resolves the input to one or more rustdoc documents and
// extracts each of them. A glob pattern selects batch mode, where output
// must be a directory and each document gets its own file.
func runExtract(ctx context.Context, logger *slog.Logger, cfg *config.Config, f *flags, input string) error {
	runID := uuid.NewString()
	logger = logger.With("run_id", runID)

	format, err := emit.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	if f.crateDir {
		crate, err := rustdoc.LoadCrate(ctx, logger, input)
		if err != nil {
			return err
		}
		return extractOne(logger, cfg, format, crate, cfg.Output.Path)
	}

	inputs, err := resolveInputs(input)
	if err != nil {
		return err
	}

	if len(inputs) == 1 {
		crate, err := rustdoc.LoadFile(inputs[0])
		if err != nil {
			return err
		}
		return extractOne(logger, cfg, format, crate, cfg.Output.Path)
	}

	// Batch mode.
	if cfg.Output.Path == "" {
		return fmt.Errorf("batch extraction of %d files needs --output to name a directory", len(inputs))
	}
	if err := os.MkdirAll(cfg.Output.Path, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, path := range inputs {
		crate, err := rustdoc.LoadFile(path)
		if err != nil {
			logger.Error("skipping document", "path", path, "error", err)
			continue
		}
		outPath := filepath.Join(cfg.Output.Path, outputName(path, format))
		if err := extractOne(logger, cfg, format, crate, outPath); err != nil {
			return err
		}
	}
	return nil
}

// resolveInputs expands a glob pattern into matching files. A plain path
// passes through untouched so missing-file errors stay precise.
func resolveInputs(input string) ([]string, error) {
	if !strings.ContainsAny(input, "*?[{") {
		return []string{input}, nil
	}
	matches, err := doublestar.FilepathGlob(input)
	if err != nil {
		return nil, fmt.Errorf("bad input pattern %q: %w", input, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match %q", input)
	}
	return matches, nil
}

// outputName derives a batch output filename from the input path.
func outputName(inputPath string, format emit.Format) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	if format == emit.FormatNTriples {
		return base + ".nt"
	}
	return base + ".ttl"
}

// extractOne runs a single extraction to the given destination (stdout
// when empty) and logs a summary.
func extractOne(logger *slog.Logger, cfg *config.Config, format emit.Format, crate *rustdoc.Crate, outPath string) error {
	start := time.Now()

	out := os.Stdout
	if outPath != "" {
		file, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	sink, err := emit.NewSink(format, out)
	if err != nil {
		return err
	}

	extractor := extract.New(sink, crate, extractOptions(cfg), logger)
	extractor.Extract()
	if err := sink.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	logger.Info(fmt.Sprintf("Extracted %d triples from %s v%s",
		sink.TripleCount(), extractor.CrateName(), extractor.CrateVersion()),
		"format", string(format),
		"output", outOrStdout(outPath),
		"duration", time.Since(start).Round(time.Millisecond).String(),
	)
	return nil
}

func outOrStdout(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}

// extractOptions maps the resolved configuration onto extractor options.
func extractOptions(cfg *config.Config) extract.Options {
	opts := extract.DefaultOptions()
	opts.BaseIRI = cfg.Extract.BaseIRI
	if cfg.Extract.Impls != nil {
		opts.IncludeImpls = *cfg.Extract.Impls
	}
	if cfg.Extract.Attributes != nil {
		opts.IncludeAttributes = *cfg.Extract.Attributes
	}
	if cfg.Extract.ErrorTypes != nil {
		opts.ExtractErrorTypes = *cfg.Extract.ErrorTypes
	}
	if cfg.Extract.Derives != nil {
		opts.ExtractDerives = *cfg.Extract.Derives
	}
	return opts
}
