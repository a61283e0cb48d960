package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vsinha/reflow/pkg/infrastructure/config"
	"github.com/vsinha/reflow/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		bomFile       = flag.String("bom", "", "Path to BOM CSV file")
		materialsFile = flag.String("materials", "", "Path to material library JSON file")
		limitsFile    = flag.String("limits", "", "Path to limits catalog JSON file")
		material      = flag.String("material", "", "Material name to plan for")
		legacyLimits  = flag.Bool("legacy-limits", false, "Treat the limits catalog as the legacy type-keyed model")
		configFile    = flag.String("config", "", "Path to YAML run config (optional)")
		outputDir     = flag.String("output", "", "Output directory for report files (optional)")
		format        = flag.String("format", "", "Output format: text, json, html")
		verbose       = flag.Bool("verbose", false, "Enable verbose output")
		help          = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	cmd := commands.NewReflowCommand(commands.Config{
		ConfigFile: *configFile,
		Run: config.RunConfig{
			BOMFile:       *bomFile,
			MaterialsFile: *materialsFile,
			LimitsFile:    *limitsFile,
			Material:      *material,
			LegacyLimits:  *legacyLimits,
			OutputDir:     *outputDir,
			Format:        *format,
			Verbose:       *verbose,
		},
		Help: *help,
	}, logger)

	if err := cmd.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	return cfg.Build()
}
