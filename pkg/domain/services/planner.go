package services

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vsinha/reflow/pkg/domain/entities"
)

// PlannerConfig holds the tunable synthesis constants. These are fixed
// process parameters, not values the Planner searches over.
type PlannerConfig struct {
	// AmbientTemp is the board temperature at the start of the schedule
	AmbientTemp entities.Celsius
	// PreheatRate is the heating rate applied during preheat in °C/s
	PreheatRate float64
	// PeakRampRate is the heating rate applied during ramp-to-peak in °C/s
	PeakRampRate float64
	// SafetyMargin is subtracted from the most restrictive component
	// ceiling before clamping into the material's recommended range
	SafetyMargin entities.Celsius
	// ReflowDrop is the deliberate temperature drop across the reflow
	// hold before handing off to cooling
	ReflowDrop entities.Celsius
	// CoolingExit is the temperature at which the schedule ends
	CoolingExit entities.Celsius
}

// DefaultPlannerConfig returns the production synthesis constants
func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{
		AmbientTemp:  25,
		PreheatRate:  1.5,
		PeakRampRate: 2.5,
		SafetyMargin: 5,
		ReflowDrop:   5,
		CoolingExit:  100,
	}
}

// Planner synthesizes reflow profiles from a material profile and the
// matched component limits. It holds no mutable state across invocations.
type Planner struct {
	config PlannerConfig
}

// NewPlanner creates a planner with the default synthesis constants
func NewPlanner() *Planner {
	return NewPlannerWithConfig(DefaultPlannerConfig())
}

// NewPlannerWithConfig creates a planner with custom synthesis constants
func NewPlannerWithConfig(config PlannerConfig) *Planner {
	return &Planner{config: config}
}

// Synthesize derives a peak temperature and builds the five-phase schedule.
// The peak honors the most restrictive component ceiling minus the safety
// margin, then clamps into the material's recommended range: component
// safety dominates, but the result never leaves the paste's workable window
// even when that costs margin against a very conservative limit. With no
// limits the recommended-range midpoint is used.
func (p *Planner) Synthesize(material *entities.MaterialProfile, limits []entities.Limit) (*entities.ReflowProfile, error) {
	if material == nil {
		return nil, fmt.Errorf("missing material profile")
	}

	peak := p.derivePeak(material, limits)

	phases := make([]entities.Phase, 0, 5)
	current := 0

	preheatDur := rampSeconds(material.PreheatTarget-p.config.AmbientTemp, p.config.PreheatRate)
	preheat, err := entities.NewPhase(entities.Preheat, current, current+preheatDur, p.config.AmbientTemp, material.PreheatTarget)
	if err != nil {
		return nil, fmt.Errorf("failed to build preheat phase: %w", err)
	}
	phases = append(phases, preheat)
	current += preheatDur

	soakTarget := material.SoakRange.Midpoint()
	soakDur := material.SoakDuration.Midpoint()
	soak, err := entities.NewPhase(entities.Soak, current, current+soakDur, material.PreheatTarget, soakTarget)
	if err != nil {
		return nil, fmt.Errorf("failed to build soak phase: %w", err)
	}
	phases = append(phases, soak)
	current += soakDur

	rampDur := rampSeconds(peak-soakTarget, p.config.PeakRampRate)
	ramp, err := entities.NewPhase(entities.RampToPeak, current, current+rampDur, soakTarget, peak)
	if err != nil {
		return nil, fmt.Errorf("failed to build ramp-to-peak phase: %w", err)
	}
	phases = append(phases, ramp)
	current += rampDur

	// The reflow hold is the portion of the schedule deliberately held
	// above liquidus; its duration is reported as the profile's TAL.
	reflowDur := material.TimeAboveLiquidus.Midpoint()
	reflow, err := entities.NewPhase(entities.Reflow, current, current+reflowDur, peak, peak-p.config.ReflowDrop)
	if err != nil {
		return nil, fmt.Errorf("failed to build reflow phase: %w", err)
	}
	phases = append(phases, reflow)
	current += reflowDur

	coolStart := reflow.EndTemp
	coolDur := rampSeconds(coolStart-p.config.CoolingExit, material.CoolingRate.Midpoint())
	cooling, err := entities.NewPhase(entities.Cooling, current, current+coolDur, coolStart, p.config.CoolingExit)
	if err != nil {
		return nil, fmt.Errorf("failed to build cooling phase: %w", err)
	}
	phases = append(phases, cooling)

	return entities.NewReflowProfile(profileID(material), phases, peak, reflowDur)
}

// derivePeak picks the peak temperature: restrictive component limit first,
// then clamp to the material's recommended range
func (p *Planner) derivePeak(material *entities.MaterialProfile, limits []entities.Limit) entities.Celsius {
	if len(limits) == 0 {
		return material.RecommendedPeak.Midpoint()
	}

	mostRestrictive := limits[0].TemperatureCeiling()
	for _, l := range limits[1:] {
		if l.TemperatureCeiling() < mostRestrictive {
			mostRestrictive = l.TemperatureCeiling()
		}
	}

	safePeak := mostRestrictive - p.config.SafetyMargin
	if safePeak < material.RecommendedPeak.Min {
		return material.RecommendedPeak.Min
	}
	if safePeak > material.RecommendedPeak.Max {
		return material.RecommendedPeak.Max
	}
	return safePeak
}

// rampSeconds divides a temperature span by a rate and truncates to whole
// seconds. The division goes through decimal so truncation is exact rather
// than subject to float drift.
func rampSeconds(span entities.Celsius, rate float64) int {
	if span < 0 {
		span = -span
	}
	return int(decimal.NewFromFloat(float64(span)).
		Div(decimal.NewFromFloat(rate)).
		IntPart())
}

// profileID derives a stable identifier from the material name so repeated
// synthesis of the same inputs is bit-identical
func profileID(material *entities.MaterialProfile) string {
	slug := strings.ToLower(strings.ReplaceAll(material.Name, " ", "-"))
	return slug + "-v1"
}
