package entities

import "fmt"

// MPN represents a manufacturer part number, the key used to match a
// board component against the limits catalog
type MPN string

// ThermalMass classifies how much heat a component body absorbs
type ThermalMass int

const (
	LowMass ThermalMass = iota
	MediumMass
	HighMass
)

// String method for ThermalMass enum
func (m ThermalMass) String() string {
	switch m {
	case LowMass:
		return "low"
	case MediumMass:
		return "medium"
	case HighMass:
		return "high"
	default:
		return "unknown"
	}
}

// ParseThermalMass converts a BOM cell value into a ThermalMass
func ParseThermalMass(s string) (ThermalMass, error) {
	switch s {
	case "low":
		return LowMass, nil
	case "medium", "":
		return MediumMass, nil
	case "high":
		return HighMass, nil
	default:
		return MediumMass, fmt.Errorf("unknown thermal mass %q", s)
	}
}

// Component represents a single BOM line item
type Component struct {
	Designator    string
	MPN           MPN
	Package       string
	Qty           int
	ThermalMass   ThermalMass
	ComponentType string
}

// NewComponent creates a validated Component
func NewComponent(designator string, mpn MPN, pkg string, qty int, mass ThermalMass, componentType string) (*Component, error) {
	if designator == "" {
		return nil, fmt.Errorf("designator cannot be empty")
	}
	if mpn == "" {
		return nil, fmt.Errorf("MPN cannot be empty")
	}
	if qty < 1 {
		return nil, fmt.Errorf("quantity must be at least 1, got %d", qty)
	}
	if componentType == "" {
		componentType = "Unknown"
	}

	return &Component{
		Designator:    designator,
		MPN:           mpn,
		Package:       pkg,
		Qty:           qty,
		ThermalMass:   mass,
		ComponentType: componentType,
	}, nil
}
