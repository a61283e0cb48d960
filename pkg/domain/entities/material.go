package entities

import "fmt"

// Celsius represents a temperature in degrees Celsius
type Celsius float64

// TempRange represents an inclusive temperature window
type TempRange struct {
	Min Celsius
	Max Celsius
}

// Midpoint returns the center of the temperature window
func (r TempRange) Midpoint() Celsius {
	return (r.Min + r.Max) / 2
}

// Contains reports whether t lies within the window (inclusive)
func (r TempRange) Contains(t Celsius) bool {
	return t >= r.Min && t <= r.Max
}

// DurationRange represents an inclusive duration window in seconds
type DurationRange struct {
	Min int
	Max int
}

// Midpoint returns the center of the duration window, truncated to whole seconds
func (r DurationRange) Midpoint() int {
	return (r.Min + r.Max) / 2
}

// RateRange represents an inclusive ramp-rate window in °C/s
type RateRange struct {
	Min float64
	Max float64
}

// Midpoint returns the center of the rate window
func (r RateRange) Midpoint() float64 {
	return (r.Min + r.Max) / 2
}

// MaterialProfile holds the thermal specifications of a solder paste
type MaterialProfile struct {
	Name              string
	Alloy             string
	LiquidusTemp      Celsius
	RecommendedPeak   TempRange
	PreheatTarget     Celsius
	SoakRange         TempRange
	SoakDuration      DurationRange
	TimeAboveLiquidus DurationRange
	MaxRampRate       float64
	CoolingRate       RateRange
}

// NewMaterialProfile creates a validated MaterialProfile
func NewMaterialProfile(
	name, alloy string,
	liquidusTemp Celsius,
	recommendedPeak TempRange,
	preheatTarget Celsius,
	soakRange TempRange,
	soakDuration DurationRange,
	timeAboveLiquidus DurationRange,
	maxRampRate float64,
	coolingRate RateRange,
) (*MaterialProfile, error) {
	if name == "" {
		return nil, fmt.Errorf("material name cannot be empty")
	}
	if liquidusTemp <= 0 {
		return nil, fmt.Errorf("liquidus temperature must be positive, got %.1f", float64(liquidusTemp))
	}
	if recommendedPeak.Min > recommendedPeak.Max {
		return nil, fmt.Errorf("recommended peak range inverted: %.1f > %.1f",
			float64(recommendedPeak.Min), float64(recommendedPeak.Max))
	}
	if soakRange.Min > soakRange.Max {
		return nil, fmt.Errorf("soak temperature range inverted: %.1f > %.1f",
			float64(soakRange.Min), float64(soakRange.Max))
	}
	if soakDuration.Min > soakDuration.Max {
		return nil, fmt.Errorf("soak duration range inverted: %d > %d",
			soakDuration.Min, soakDuration.Max)
	}
	if timeAboveLiquidus.Min > timeAboveLiquidus.Max {
		return nil, fmt.Errorf("time above liquidus range inverted: %d > %d",
			timeAboveLiquidus.Min, timeAboveLiquidus.Max)
	}
	if coolingRate.Min > coolingRate.Max {
		return nil, fmt.Errorf("cooling rate range inverted: %.2f > %.2f",
			coolingRate.Min, coolingRate.Max)
	}
	if maxRampRate <= 0 {
		return nil, fmt.Errorf("max ramp rate must be positive, got %.2f", maxRampRate)
	}

	return &MaterialProfile{
		Name:              name,
		Alloy:             alloy,
		LiquidusTemp:      liquidusTemp,
		RecommendedPeak:   recommendedPeak,
		PreheatTarget:     preheatTarget,
		SoakRange:         soakRange,
		SoakDuration:      soakDuration,
		TimeAboveLiquidus: timeAboveLiquidus,
		MaxRampRate:       maxRampRate,
		CoolingRate:       coolingRate,
	}, nil
}
