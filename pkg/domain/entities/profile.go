package entities

import "fmt"

// ReflowProfile is the complete synthesized time-temperature schedule
type ReflowProfile struct {
	ID                string
	Phases            []Phase
	PeakTemp          Celsius
	TimeAboveLiquidus int
	TotalDuration     int
}

// NewReflowProfile creates a validated ReflowProfile. The profile must carry
// exactly five contiguous phases; the single permitted temperature
// discontinuity is the deliberate 5°C reflow-to-cooling handoff.
func NewReflowProfile(id string, phases []Phase, peakTemp Celsius, timeAboveLiquidus int) (*ReflowProfile, error) {
	if id == "" {
		return nil, fmt.Errorf("profile ID cannot be empty")
	}
	if len(phases) != 5 {
		return nil, fmt.Errorf("profile requires exactly 5 phases, got %d", len(phases))
	}
	for i := 1; i < len(phases); i++ {
		if phases[i].StartTime != phases[i-1].EndTime {
			return nil, fmt.Errorf("phase %s starts at %ds but %s ends at %ds",
				phases[i].Kind, phases[i].StartTime, phases[i-1].Kind, phases[i-1].EndTime)
		}
	}

	total := 0
	for _, p := range phases {
		total += p.Duration()
	}

	return &ReflowProfile{
		ID:                id,
		Phases:            phases,
		PeakTemp:          peakTemp,
		TimeAboveLiquidus: timeAboveLiquidus,
		TotalDuration:     total,
	}, nil
}

// PhaseByKind returns the first phase of the given kind, or false when the
// profile carries none
func (p *ReflowProfile) PhaseByKind(kind PhaseKind) (Phase, bool) {
	for _, phase := range p.Phases {
		if phase.Kind == kind {
			return phase, true
		}
	}
	return Phase{}, false
}

// TemperatureAt linearly interpolates the profile temperature at time t.
// Times beyond the last phase return the final temperature.
func (p *ReflowProfile) TemperatureAt(t int) Celsius {
	for _, phase := range p.Phases {
		if phase.StartTime <= t && t <= phase.EndTime {
			d := phase.Duration()
			if d < 1 {
				d = 1
			}
			progress := float64(t-phase.StartTime) / float64(d)
			return phase.StartTemp + Celsius(progress*float64(phase.EndTemp-phase.StartTemp))
		}
	}
	return p.Phases[len(p.Phases)-1].EndTemp
}

// MaxRampRate returns the largest sign-free ramp rate observed across all
// phases
func (p *ReflowProfile) MaxRampRate() float64 {
	var max float64
	for _, phase := range p.Phases {
		if r := phase.RampRate(); r > max {
			max = r
		}
	}
	return max
}
