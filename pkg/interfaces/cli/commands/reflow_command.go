package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/vsinha/reflow/pkg/application/services/orchestration"
	"github.com/vsinha/reflow/pkg/domain/entities"
	"github.com/vsinha/reflow/pkg/domain/services"
	"github.com/vsinha/reflow/pkg/infrastructure/config"
	"github.com/vsinha/reflow/pkg/infrastructure/events"
	"github.com/vsinha/reflow/pkg/infrastructure/repositories/catalog"
	"github.com/vsinha/reflow/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/reflow/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/reflow/pkg/interfaces/cli/output"
)

// Config holds configuration for the reflow command. ConfigFile, when set,
// supplies defaults that the remaining flag values override.
type Config struct {
	ConfigFile string
	Run        config.RunConfig
	Help       bool
}

// ReflowCommand handles the main pipeline execution logic
type ReflowCommand struct {
	config Config
	logger *zap.Logger
}

// NewReflowCommand creates a new reflow command with the given configuration
func NewReflowCommand(cfg Config, logger *zap.Logger) *ReflowCommand {
	return &ReflowCommand{
		config: cfg,
		logger: logger,
	}
}

// Execute runs the reflow command
func (c *ReflowCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	run, err := c.resolveRunConfig()
	if err != nil {
		return err
	}
	if err := validateRunConfig(run); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	// Load BOM
	csvLoader := csv.NewLoader()
	components, skipped, err := csvLoader.LoadComponents(run.BOMFile)
	if err != nil {
		return fmt.Errorf("error loading BOM: %w", err)
	}
	for _, msg := range skipped {
		c.logger.Warn("skipped BOM row", zap.String("reason", msg))
	}
	c.logger.Info("BOM loaded",
		zap.Int("components", len(components)),
		zap.Int("skipped", len(skipped)),
	)

	// Load material library
	catalogLoader := catalog.NewLoader()
	materials, err := catalogLoader.LoadMaterials(run.MaterialsFile)
	if err != nil {
		return fmt.Errorf("error loading material library: %w", err)
	}
	materialRepo := memory.NewMaterialRepository(len(materials))
	if err := materialRepo.LoadMaterials(materials); err != nil {
		return fmt.Errorf("failed to load materials into repository: %w", err)
	}

	// Load limits catalog (current MPN-keyed or legacy type-keyed)
	var limits []entities.Limit
	model := entities.PartKeyed
	if run.LegacyLimits {
		model = entities.TypeKeyed
		limits, err = catalogLoader.LoadTypeLimits(run.LimitsFile)
	} else {
		limits, err = catalogLoader.LoadComponentLimits(run.LimitsFile)
	}
	if err != nil {
		return fmt.Errorf("error loading limits catalog: %w", err)
	}
	limitRepo := memory.NewLimitRepository(model, len(limits))
	if err := limitRepo.LoadLimits(limits); err != nil {
		return fmt.Errorf("failed to load limits into repository: %w", err)
	}
	c.logger.Info("limits catalog loaded",
		zap.Int("entries", len(limits)),
		zap.String("model", model.String()),
	)

	orchestrator := orchestration.NewReflowOrchestrator(
		services.NewPlanner(),
		services.NewVerifier(),
		limitRepo,
		materialRepo,
		events.NewInMemoryRunLog(),
		c.logger,
	)

	result, err := orchestrator.Run(ctx, components, skipped, run.Material)
	if err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}

	return output.Generate(result, output.Config{
		Format:    run.Format,
		OutputDir: run.OutputDir,
		Verbose:   run.Verbose,
	})
}

// resolveRunConfig overlays flag values onto the optional config file
func (c *ReflowCommand) resolveRunConfig() (*config.RunConfig, error) {
	if c.config.ConfigFile == "" {
		run := c.config.Run
		return &run, nil
	}
	fileConfig, err := config.Load(c.config.ConfigFile)
	if err != nil {
		return nil, err
	}
	return fileConfig.Merge(c.config.Run), nil
}

func validateRunConfig(run *config.RunConfig) error {
	if run.BOMFile == "" {
		return fmt.Errorf("BOM file is required (-bom)")
	}
	if run.MaterialsFile == "" {
		return fmt.Errorf("material library file is required (-materials)")
	}
	if run.LimitsFile == "" {
		return fmt.Errorf("limits catalog file is required (-limits)")
	}
	if run.Material == "" {
		return fmt.Errorf("material name is required (-material)")
	}
	if run.Format == "" {
		run.Format = "text"
	}
	return nil
}

func (c *ReflowCommand) showHelp() {
	fmt.Println(`reflow - PCB reflow profile planner and verifier

Synthesizes a time-temperature reflow schedule for a board from its BOM,
a solder material profile, and a thermal limits catalog, then verifies it
against the most sensitive component.

Usage:
  reflow -bom board.csv -materials materials.json -limits limits.json -material SAC305 [options]

Options:
  -bom string        Path to BOM CSV file (designator,mpn,package,qty[,thermal_mass,component_type])
  -materials string  Path to material library JSON file
  -limits string     Path to limits catalog JSON file
  -material string   Material name to plan for (e.g. SAC305)
  -legacy-limits     Treat the limits catalog as the legacy type-keyed model
  -config string     Path to YAML run config supplying defaults for the above
  -output string     Output directory for report files (optional)
  -format string     Output format: text, json, html (default "text")
  -verbose           Enable verbose output
  -help              Show this help message`)
}
