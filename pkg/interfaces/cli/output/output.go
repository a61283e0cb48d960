package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vsinha/reflow/pkg/application/dto"
	"github.com/vsinha/reflow/pkg/domain/entities"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
}

// Generate creates output in the specified format
func Generate(result *dto.RunResult, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(result, config)
	case "json":
		return generateJSONOutput(result, config)
	case "html":
		return generateHTMLOutput(result, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(result *dto.RunResult, config Config) error {
	var b strings.Builder

	status := "PASSED"
	if !result.Validation.Passed {
		status = "FAILED"
	}

	fmt.Fprintf(&b, "Reflow Profile Summary\n")
	fmt.Fprintf(&b, "======================\n\n")
	fmt.Fprintf(&b, "Material: %s (%s)\n", result.Material.Name, result.Material.Alloy)
	fmt.Fprintf(&b, "Profile: %s\n", result.Profile.ID)
	fmt.Fprintf(&b, "Components: %d (%d matched, %.0f%% coverage)\n",
		len(result.Components), len(result.Limits), result.Coverage*100)
	fmt.Fprintf(&b, "Peak Temperature: %.1f°C\n", float64(result.Profile.PeakTemp))
	fmt.Fprintf(&b, "Time Above Liquidus: %ds\n", result.Profile.TimeAboveLiquidus)
	fmt.Fprintf(&b, "Total Duration: %ds\n", result.Profile.TotalDuration)
	fmt.Fprintf(&b, "Verification: %s (%d violations, %d warnings)\n\n",
		status, len(result.Validation.Violations), len(result.Validation.Warnings))

	fmt.Fprintf(&b, "Phases:\n")
	fmt.Fprintf(&b, "%-14s %-18s %-20s %-10s\n", "Phase", "Window", "Temperature", "Rate")
	fmt.Fprintf(&b, "%-14s %-18s %-20s %-10s\n",
		"--------------", "------------------", "--------------------", "----------")
	for _, phase := range result.Profile.Phases {
		fmt.Fprintf(&b, "%-14s %-18s %-20s %-10s\n",
			phase.Kind,
			fmt.Sprintf("%ds - %ds (%ds)", phase.StartTime, phase.EndTime, phase.Duration()),
			fmt.Sprintf("%.1f°C → %.1f°C", float64(phase.StartTemp), float64(phase.EndTemp)),
			fmt.Sprintf("%.2f°C/s", phase.RampRate()))
	}
	b.WriteString("\n")

	if len(result.Validation.Violations) > 0 {
		fmt.Fprintf(&b, "Violations:\n")
		for _, v := range result.Validation.Violations {
			fmt.Fprintf(&b, "  ✗ %s\n", v)
		}
		b.WriteString("\n")
	}
	if len(result.Validation.Warnings) > 0 {
		fmt.Fprintf(&b, "Warnings:\n")
		for _, w := range result.Validation.Warnings {
			fmt.Fprintf(&b, "  ⚠ %s\n", w)
		}
		b.WriteString("\n")
	}
	if config.Verbose && len(result.SkippedRows) > 0 {
		fmt.Fprintf(&b, "Skipped BOM rows:\n")
		for _, s := range result.SkippedRows {
			fmt.Fprintf(&b, "  %s\n", s)
		}
		b.WriteString("\n")
	}

	fmt.Print(b.String())

	if config.OutputDir != "" {
		if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		filename := filepath.Join(config.OutputDir, "reflow_report.txt")
		if err := os.WriteFile(filename, []byte(b.String()), 0644); err != nil {
			return fmt.Errorf("failed to write text report: %w", err)
		}
		if config.Verbose {
			fmt.Printf("Report saved to: %s\n", filename)
		}
	}

	return nil
}

// jsonPhase is the serialized form of one profile phase
type jsonPhase struct {
	Phase     string  `json:"phase"`
	StartS    int     `json:"start_time_s"`
	EndS      int     `json:"end_time_s"`
	StartC    float64 `json:"start_temp_c"`
	EndC      float64 `json:"end_temp_c"`
	RateCPerS float64 `json:"ramp_rate_c_per_s"`
}

// jsonResult is the serialized form of a pipeline run
type jsonResult struct {
	RunID             string      `json:"run_id"`
	Material          string      `json:"material"`
	ProfileID         string      `json:"profile_id"`
	Coverage          float64     `json:"coverage"`
	PeakTempC         float64     `json:"peak_temp_c"`
	TimeAboveLiquidus int         `json:"time_above_liquidus_s"`
	TotalDurationS    int         `json:"total_duration_s"`
	MaxRampRateCPerS  float64     `json:"max_ramp_rate_c_per_s"`
	Phases            []jsonPhase `json:"phases"`
	Passed            bool        `json:"passed"`
	Violations        []string    `json:"violations"`
	Warnings          []string    `json:"warnings"`
}

// generateJSONOutput creates JSON output
func generateJSONOutput(result *dto.RunResult, config Config) error {
	out := jsonResult{
		RunID:             result.RunID,
		Material:          result.Material.Name,
		ProfileID:         result.Profile.ID,
		Coverage:          result.Coverage,
		PeakTempC:         float64(result.Profile.PeakTemp),
		TimeAboveLiquidus: result.Profile.TimeAboveLiquidus,
		TotalDurationS:    result.Profile.TotalDuration,
		MaxRampRateCPerS:  result.Validation.Metrics.MaxObservedRampRate,
		Phases:            make([]jsonPhase, 0, len(result.Profile.Phases)),
		Passed:            result.Validation.Passed,
		Violations:        result.Validation.Violations,
		Warnings:          result.Validation.Warnings,
	}
	for _, phase := range result.Profile.Phases {
		out.Phases = append(out.Phases, jsonPhase{
			Phase:     phase.Kind.String(),
			StartS:    phase.StartTime,
			EndS:      phase.EndTime,
			StartC:    float64(phase.StartTemp),
			EndC:      float64(phase.EndTemp),
			RateCPerS: phase.RampRate(),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if config.OutputDir == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	filename := filepath.Join(config.OutputDir, "reflow_report.json")
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}
	if config.Verbose {
		fmt.Printf("Report saved to: %s\n", filename)
	}
	return nil
}

// chartSeries returns the ordered piecewise-linear data series of a profile:
// the (start_time, start_temp), (end_time, end_temp) pairs across phases
func chartSeries(profile *entities.ReflowProfile) [][2]float64 {
	series := make([][2]float64, 0, len(profile.Phases)*2)
	for _, phase := range profile.Phases {
		series = append(series,
			[2]float64{float64(phase.StartTime), float64(phase.StartTemp)},
			[2]float64{float64(phase.EndTime), float64(phase.EndTemp)})
	}
	return series
}
