package entities

import "fmt"

// LimitModel tags which generation of the limits catalog a limit came from
type LimitModel int

const (
	// PartKeyed limits come from the current catalog, keyed by MPN
	PartKeyed LimitModel = iota
	// TypeKeyed limits come from the legacy catalog, keyed by component type
	TypeKeyed
)

// String method for LimitModel enum
func (m LimitModel) String() string {
	switch m {
	case PartKeyed:
		return "PartKeyed"
	case TypeKeyed:
		return "TypeKeyed"
	default:
		return "Unknown"
	}
}

// RampBounds carries directional ramp-rate ceilings in °C/s. Part-keyed
// limits are symmetric, so Up == Down for that variant.
type RampBounds struct {
	Up   float64
	Down float64
}

// Limit is the capability surface shared by both limit generations. The
// Verifier dispatches on Model rather than probing for optional fields.
type Limit interface {
	Model() LimitModel
	Key() string
	TemperatureCeiling() Celsius
	RampBounds() RampBounds
	// LiquidusWindow returns the bounds this limit places on time above
	// liquidus. hasMax is false for part-keyed limits, which only carry
	// a floor.
	LiquidusWindow() (window DurationRange, hasMax bool)
	// SoakFloor returns the minimum soak duration in seconds; ok is
	// false when the variant carries no soak constraint.
	SoakFloor() (seconds int, ok bool)
}

// ComponentLimit holds the thermal constraints for a single part number
type ComponentLimit struct {
	MPN                  MPN
	MaxTemp              Celsius
	MaxRampRate          float64
	MinSoakTime          int
	MinTimeAboveLiquidus int
	Notes                string
}

// Verify interface compliance
var _ Limit = (*ComponentLimit)(nil)

// NewComponentLimit creates a validated part-number-keyed limit
func NewComponentLimit(mpn MPN, maxTemp Celsius, maxRampRate float64, minSoakTime, minTAL int, notes string) (*ComponentLimit, error) {
	if mpn == "" {
		return nil, fmt.Errorf("MPN cannot be empty")
	}
	if maxTemp < 200 || maxTemp > 300 {
		return nil, fmt.Errorf("max temperature %.1f°C outside allowed band [200, 300]", float64(maxTemp))
	}
	if maxRampRate < 0.5 || maxRampRate > 5.0 {
		return nil, fmt.Errorf("max ramp rate %.2f°C/s outside allowed band [0.5, 5.0]", maxRampRate)
	}
	if minSoakTime < 30 || minSoakTime > 180 {
		return nil, fmt.Errorf("min soak time %ds outside allowed band [30, 180]", minSoakTime)
	}
	if minTAL < 30 || minTAL > 120 {
		return nil, fmt.Errorf("min time above liquidus %ds outside allowed band [30, 120]", minTAL)
	}

	return &ComponentLimit{
		MPN:                  mpn,
		MaxTemp:              maxTemp,
		MaxRampRate:          maxRampRate,
		MinSoakTime:          minSoakTime,
		MinTimeAboveLiquidus: minTAL,
		Notes:                notes,
	}, nil
}

func (l *ComponentLimit) Model() LimitModel            { return PartKeyed }
func (l *ComponentLimit) Key() string                  { return string(l.MPN) }
func (l *ComponentLimit) TemperatureCeiling() Celsius  { return l.MaxTemp }
func (l *ComponentLimit) RampBounds() RampBounds       { return RampBounds{Up: l.MaxRampRate, Down: l.MaxRampRate} }

func (l *ComponentLimit) LiquidusWindow() (DurationRange, bool) {
	return DurationRange{Min: l.MinTimeAboveLiquidus}, false
}

func (l *ComponentLimit) SoakFloor() (int, bool) { return l.MinSoakTime, true }

// TypeLimit holds the legacy thermal constraints for a component type,
// with asymmetric heating/cooling bounds and a bounded liquidus window
type TypeLimit struct {
	ComponentType     string
	MaxTemp           Celsius
	MaxRampUp         float64
	MaxRampDown       float64
	TimeAboveLiquidus DurationRange
}

// Verify interface compliance
var _ Limit = (*TypeLimit)(nil)

// NewTypeLimit creates a validated type-keyed limit
func NewTypeLimit(componentType string, maxTemp Celsius, maxRampUp, maxRampDown float64, tal DurationRange) (*TypeLimit, error) {
	if componentType == "" {
		return nil, fmt.Errorf("component type cannot be empty")
	}
	if maxTemp <= 0 {
		return nil, fmt.Errorf("max temperature must be positive, got %.1f", float64(maxTemp))
	}
	if maxRampUp <= 0 {
		return nil, fmt.Errorf("max ramp up must be positive, got %.2f", maxRampUp)
	}
	if maxRampDown <= 0 {
		return nil, fmt.Errorf("max ramp down must be positive, got %.2f", maxRampDown)
	}
	if tal.Min > tal.Max {
		return nil, fmt.Errorf("time above liquidus range inverted: %d > %d", tal.Min, tal.Max)
	}

	return &TypeLimit{
		ComponentType:     componentType,
		MaxTemp:           maxTemp,
		MaxRampUp:         maxRampUp,
		MaxRampDown:       maxRampDown,
		TimeAboveLiquidus: tal,
	}, nil
}

func (l *TypeLimit) Model() LimitModel           { return TypeKeyed }
func (l *TypeLimit) Key() string                 { return l.ComponentType }
func (l *TypeLimit) TemperatureCeiling() Celsius { return l.MaxTemp }
func (l *TypeLimit) RampBounds() RampBounds      { return RampBounds{Up: l.MaxRampUp, Down: l.MaxRampDown} }

func (l *TypeLimit) LiquidusWindow() (DurationRange, bool) {
	return l.TimeAboveLiquidus, true
}

func (l *TypeLimit) SoakFloor() (int, bool) { return 0, false }
