package output

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/vsinha/reflow/pkg/application/dto"
	"github.com/vsinha/reflow/pkg/domain/entities"
)

//go:embed templates/*.html
var templateFS embed.FS

// Chart geometry
const (
	chartWidth   = 900
	chartHeight  = 420
	marginLeft   = 60
	marginRight  = 30
	marginTop    = 30
	marginBottom = 45
)

var phaseFills = map[entities.PhaseKind]string{
	entities.Preheat:    "#fde9c8",
	entities.Soak:       "#fcd9a8",
	entities.RampToPeak: "#f8b88b",
	entities.Reflow:     "#f1948a",
	entities.Cooling:    "#aed6f1",
}

// phaseBand is a shaded region of the chart covering one phase
type phaseBand struct {
	X, Y, W, H float64
	Fill       string
	Label      string
	LabelX     float64
}

// axisTick is one labeled tick mark on a chart axis
type axisTick struct {
	Pos   float64
	Label string
}

// phaseRow is one line of the phase table
type phaseRow struct {
	Kind   string
	Window string
	Temps  string
	Rate   string
}

// reportData holds everything the HTML template renders
type reportData struct {
	StatusText  string
	StatusClass string
	Material    string
	Alloy       string
	ProfileID   string
	RunID       string

	PeakTemp      string
	TAL           int
	TotalDuration int
	Coverage      string
	MaxRampRate   string

	ChartWidth  int
	ChartHeight int
	PlotBottom  float64
	PlotLeft    float64
	Polyline    string
	PhaseBands  []phaseBand
	LiquidusY   float64
	LiquidusLbl string
	XTicks      []axisTick
	YTicks      []axisTick

	Phases      []phaseRow
	Violations  []string
	Warnings    []string
	GeneratedAt string
}

// generateHTMLOutput renders the phase-shaded chart and report to
// reflow_report.html in the output directory
func generateHTMLOutput(result *dto.RunResult, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("html output requires an output directory")
	}

	tmpl, err := template.ParseFS(templateFS, "templates/report.html")
	if err != nil {
		return fmt.Errorf("failed to parse report template: %w", err)
	}

	data := buildReportData(result)

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render report template: %w", err)
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	filename := filepath.Join(config.OutputDir, "reflow_report.html")
	if err := os.WriteFile(filename, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write HTML report: %w", err)
	}
	if config.Verbose {
		fmt.Printf("Report saved to: %s\n", filename)
	}
	return nil
}

func buildReportData(result *dto.RunResult) reportData {
	profile := result.Profile
	material := result.Material

	plotW := float64(chartWidth - marginLeft - marginRight)
	plotH := float64(chartHeight - marginTop - marginBottom)

	tempMax := float64(profile.PeakTemp) + 20
	totalT := float64(profile.TotalDuration)
	if totalT < 1 {
		totalT = 1
	}

	xAt := func(t float64) float64 { return marginLeft + t/totalT*plotW }
	yAt := func(c float64) float64 { return marginTop + plotH - c/tempMax*plotH }

	polyline := ""
	for _, pt := range chartSeries(profile) {
		polyline += fmt.Sprintf("%.1f,%.1f ", xAt(pt[0]), yAt(pt[1]))
	}

	bands := make([]phaseBand, 0, len(profile.Phases))
	xTicks := make([]axisTick, 0, len(profile.Phases)+1)
	xTicks = append(xTicks, axisTick{Pos: xAt(0), Label: "0s"})
	for _, phase := range profile.Phases {
		x := xAt(float64(phase.StartTime))
		w := xAt(float64(phase.EndTime)) - x
		bands = append(bands, phaseBand{
			X:      x,
			Y:      marginTop,
			W:      w,
			H:      plotH,
			Fill:   phaseFills[phase.Kind],
			Label:  phase.Kind.String(),
			LabelX: x + w/2,
		})
		xTicks = append(xTicks, axisTick{
			Pos:   xAt(float64(phase.EndTime)),
			Label: fmt.Sprintf("%ds", phase.EndTime),
		})
	}

	yTicks := make([]axisTick, 0)
	for c := 50.0; c < tempMax; c += 50 {
		yTicks = append(yTicks, axisTick{Pos: yAt(c), Label: fmt.Sprintf("%.0f°C", c)})
	}

	status, class := "PASSED", "passed"
	if !result.Validation.Passed {
		status, class = "FAILED", "failed"
	}

	phases := make([]phaseRow, 0, len(profile.Phases))
	for _, phase := range profile.Phases {
		phases = append(phases, phaseRow{
			Kind:   phase.Kind.String(),
			Window: fmt.Sprintf("%ds - %ds (%ds)", phase.StartTime, phase.EndTime, phase.Duration()),
			Temps:  fmt.Sprintf("%.1f°C → %.1f°C", float64(phase.StartTemp), float64(phase.EndTemp)),
			Rate:   fmt.Sprintf("%.2f°C/s", phase.RampRate()),
		})
	}

	return reportData{
		StatusText:  status,
		StatusClass: class,
		Material:    material.Name,
		Alloy:       material.Alloy,
		ProfileID:   profile.ID,
		RunID:       result.RunID,

		PeakTemp:      fmt.Sprintf("%.1f°C", float64(profile.PeakTemp)),
		TAL:           profile.TimeAboveLiquidus,
		TotalDuration: profile.TotalDuration,
		Coverage:      fmt.Sprintf("%.0f%%", result.Coverage*100),
		MaxRampRate:   fmt.Sprintf("%.2f°C/s", result.Validation.Metrics.MaxObservedRampRate),

		ChartWidth:  chartWidth,
		ChartHeight: chartHeight,
		PlotBottom:  marginTop + plotH,
		PlotLeft:    marginLeft,
		Polyline:    polyline,
		PhaseBands:  bands,
		LiquidusY:   yAt(float64(material.LiquidusTemp)),
		LiquidusLbl: fmt.Sprintf("Liquidus (%.0f°C)", float64(material.LiquidusTemp)),
		XTicks:      xTicks,
		YTicks:      yTicks,

		Phases:      phases,
		Violations:  result.Validation.Violations,
		Warnings:    result.Validation.Warnings,
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05"),
	}
}
