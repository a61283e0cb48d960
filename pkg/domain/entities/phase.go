package entities

import (
	"fmt"
	"math"
)

// PhaseKind identifies a segment of the reflow schedule
type PhaseKind int

const (
	Preheat PhaseKind = iota
	Soak
	RampToPeak
	Reflow
	Cooling
)

// String method for PhaseKind enum
func (k PhaseKind) String() string {
	switch k {
	case Preheat:
		return "preheat"
	case Soak:
		return "soak"
	case RampToPeak:
		return "ramp_to_peak"
	case Reflow:
		return "reflow"
	case Cooling:
		return "cooling"
	default:
		return "unknown"
	}
}

// Phase represents one timed segment of a reflow profile
type Phase struct {
	Kind      PhaseKind
	StartTime int
	EndTime   int
	StartTemp Celsius
	EndTemp   Celsius
}

// NewPhase creates a validated Phase
func NewPhase(kind PhaseKind, startTime, endTime int, startTemp, endTemp Celsius) (Phase, error) {
	if endTime < startTime {
		return Phase{}, fmt.Errorf("%s phase ends at %ds before it starts at %ds", kind, endTime, startTime)
	}
	return Phase{
		Kind:      kind,
		StartTime: startTime,
		EndTime:   endTime,
		StartTemp: startTemp,
		EndTemp:   endTemp,
	}, nil
}

// Duration returns the phase length in whole seconds
func (p Phase) Duration() int {
	return p.EndTime - p.StartTime
}

// RampRate returns the sign-free rate of temperature change in °C/s.
// Direction is implied by the phase kind: cooling phases cool, everything
// else heats.
func (p Phase) RampRate() float64 {
	d := p.Duration()
	if d < 1 {
		d = 1
	}
	return math.Abs(float64(p.EndTemp-p.StartTemp)) / float64(d)
}
