// Package main provides the CLI entrypoint for staging-generator.
//
// staging-generator is a schema-driven codegen tool that:
//   - Parses Go packages (go/types via x/tools) to describe records
//   - Reads a human-reviewed YAML config selecting records and options
//   - Generates a staging type per record, one fallible slot per field
//   - Generates a TryConvert that aggregates every failure in stable order
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"staging-generator/internal/analyze"
	"staging-generator/internal/config"
	"staging-generator/internal/gen"
)

func main() {
	configPath := flag.String("config", "staging.yaml", "path to the staging config file")
	dryRun := flag.Bool("dry-run", false, "print generated files instead of writing them")
	noComments := flag.Bool("no-comments", false, "omit doc comments from generated code")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger, *configPath, *dryRun, *noComments); err != nil {
		logger.Error("generation failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, configPath string, dryRun, noComments bool) error {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return err
	}

	logger.Debug("config loaded",
		"packages", len(cfg.Packages), "records", len(cfg.Records))

	graph, err := analyze.NewAnalyzer().LoadPackages(cfg.Packages...)
	if err != nil {
		return err
	}

	specs, diags := config.Resolve(cfg, graph)
	for _, w := range diags.Warnings {
		logger.Warn(w.Message, "code", w.Code, "record", w.Record)
	}

	if err := diags.Error(); err != nil {
		return err
	}

	genCfg := gen.DefaultGeneratorConfig()
	genCfg.GenerateComments = !noComments

	files, err := gen.NewGenerator(genCfg).Generate(specs)
	if err != nil {
		return err
	}

	if dryRun {
		for _, f := range files {
			fmt.Printf("--- %s\n%s", filepath.Join(f.Dir, f.Filename), f.Content)
		}

		return nil
	}

	if err := gen.WriteFiles(files); err != nil {
		return err
	}

	for _, f := range files {
		logger.Info("wrote", "file", filepath.Join(f.Dir, f.Filename))
	}

	return nil
}
