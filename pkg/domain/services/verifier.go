package services

import (
	"fmt"

	"github.com/vsinha/reflow/pkg/domain/entities"
)

// Legacy-mode proximity thresholds. A ramp rate above 95% of its bound, or
// a TAL within 10% of either end of its window, warns before the hard limit
// is reached.
const (
	rampProximity = 0.95
	talProximity  = 0.1
)

// Verifier checks a synthesized profile against component limits and the
// material's constraints. It never mutates its inputs.
type Verifier struct{}

// NewVerifier creates a new verifier
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Verify runs all constraint checks and assembles the verdict. Check order
// fixes message ordering: peak temperature, ramp rates, time above liquidus,
// soak duration. Peak and TAL breaches are fatal; ramp and soak excursions
// under the part-keyed model are advisory only — brief rate excursions are
// tolerated in practice. Legacy type-keyed limits instead treat ramp
// breaches as fatal and add proximity warnings near every bound.
func (v *Verifier) Verify(profile *entities.ReflowProfile, limits []entities.Limit, material *entities.MaterialProfile) *entities.ValidationResult {
	violations := make([]string, 0)
	warnings := make([]string, 0)

	// Check 1: peak temperature against every component ceiling
	for _, limit := range limits {
		if profile.PeakTemp > limit.TemperatureCeiling() {
			violations = append(violations, fmt.Sprintf(
				"Peak %.1f°C exceeds %s max %.1f°C",
				float64(profile.PeakTemp), limit.Key(), float64(limit.TemperatureCeiling())))
		}
	}

	// Check 2: per-phase ramp rates
	for _, phase := range profile.Phases {
		rate := phase.RampRate()
		for _, limit := range limits {
			switch limit.Model() {
			case entities.PartKeyed:
				if rate > limit.RampBounds().Up {
					warnings = append(warnings, fmt.Sprintf(
						"%s: %.2f°C/s exceeds %s max %.2f°C/s",
						phase.Kind, rate, limit.Key(), limit.RampBounds().Up))
				}
			case entities.TypeKeyed:
				violation, warning := checkLegacyRamp(phase, rate, limit)
				if violation != "" {
					violations = append(violations, violation)
				}
				if warning != "" {
					warnings = append(warnings, warning)
				}
			}
		}
	}

	// Check 3: time above liquidus. The material enforces only a floor;
	// the missing upper-bound check is intentional for the part-keyed
	// model. Legacy limits enforce their own window at both ends.
	tal := profile.TimeAboveLiquidus
	if tal < material.TimeAboveLiquidus.Min {
		violations = append(violations, fmt.Sprintf(
			"TAL %ds below minimum %ds", tal, material.TimeAboveLiquidus.Min))
	}
	for _, limit := range limits {
		if limit.Model() != entities.TypeKeyed {
			continue
		}
		window, hasMax := limit.LiquidusWindow()
		switch {
		case tal < window.Min:
			violations = append(violations, fmt.Sprintf(
				"TAL %ds below %s minimum %ds", tal, limit.Key(), window.Min))
		case hasMax && tal > window.Max:
			violations = append(violations, fmt.Sprintf(
				"TAL %ds exceeds %s maximum %ds", tal, limit.Key(), window.Max))
		case float64(tal) < float64(window.Min)*(1+talProximity):
			warnings = append(warnings, fmt.Sprintf(
				"TAL %ds is close to %s minimum %ds", tal, limit.Key(), window.Min))
		case hasMax && float64(tal) > float64(window.Max)*(1-talProximity):
			warnings = append(warnings, fmt.Sprintf(
				"TAL %ds is close to %s maximum %ds", tal, limit.Key(), window.Max))
		}
	}

	// Check 4: soak duration against the least demanding part-keyed floor
	if soak, ok := profile.PhaseByKind(entities.Soak); ok {
		if minSoak, found := minSoakFloor(limits); found && soak.Duration() < minSoak {
			warnings = append(warnings, fmt.Sprintf(
				"Soak duration %ds may be too short (min %ds)", soak.Duration(), minSoak))
		}
	}

	return &entities.ValidationResult{
		Passed:     len(violations) == 0,
		Violations: violations,
		Warnings:   warnings,
		Metrics: entities.Metrics{
			PeakTemp:            profile.PeakTemp,
			TimeAboveLiquidus:   tal,
			TotalDuration:       profile.TotalDuration,
			MaxObservedRampRate: profile.MaxRampRate(),
		},
	}
}

// checkLegacyRamp applies the asymmetric heating/cooling bounds of a
// type-keyed limit to one phase. Breaches are fatal; observations within
// the proximity band of the bound warn.
func checkLegacyRamp(phase entities.Phase, rate float64, limit entities.Limit) (violation, warning string) {
	bound := limit.RampBounds().Up
	direction := "ramp up"
	if phase.Kind == entities.Cooling {
		bound = limit.RampBounds().Down
		direction = "cool down"
	}

	if rate > bound {
		return fmt.Sprintf("%s: %s rate %.2f°C/s exceeds %s limit %.2f°C/s",
			phase.Kind, direction, rate, limit.Key(), bound), ""
	}
	if rate > bound*rampProximity {
		return "", fmt.Sprintf("%s: %s rate %.2f°C/s is close to %s limit %.2f°C/s",
			phase.Kind, direction, rate, limit.Key(), bound)
	}
	return "", ""
}

// minSoakFloor returns the smallest soak floor carried by any limit
func minSoakFloor(limits []entities.Limit) (int, bool) {
	min := 0
	found := false
	for _, limit := range limits {
		floor, ok := limit.SoakFloor()
		if !ok {
			continue
		}
		if !found || floor < min {
			min = floor
			found = true
		}
	}
	return min, found
}
