package services

import (
	"testing"

	"github.com/vsinha/reflow/pkg/domain/entities"
)

// testMaterial returns a SAC305-like profile used across the service tests
func testMaterial(t *testing.T) *entities.MaterialProfile {
	t.Helper()
	material, err := entities.NewMaterialProfile(
		"SAC305", "Sn96.5/Ag3.0/Cu0.5",
		217,
		entities.TempRange{Min: 235, Max: 250},
		150,
		entities.TempRange{Min: 150, Max: 180},
		entities.DurationRange{Min: 60, Max: 90},
		entities.DurationRange{Min: 45, Max: 90},
		3.0,
		entities.RateRange{Min: 2.0, Max: 4.0},
	)
	if err != nil {
		t.Fatalf("failed to build test material: %v", err)
	}
	return material
}

func testLimit(t *testing.T, mpn string, maxTemp entities.Celsius, maxRamp float64, minSoak, minTAL int) entities.Limit {
	t.Helper()
	limit, err := entities.NewComponentLimit(entities.MPN(mpn), maxTemp, maxRamp, minSoak, minTAL, "")
	if err != nil {
		t.Fatalf("failed to build test limit %s: %v", mpn, err)
	}
	return limit
}

func testTypeLimit(t *testing.T, componentType string, maxTemp entities.Celsius, up, down float64, tal entities.DurationRange) entities.Limit {
	t.Helper()
	limit, err := entities.NewTypeLimit(componentType, maxTemp, up, down, tal)
	if err != nil {
		t.Fatalf("failed to build test type limit %s: %v", componentType, err)
	}
	return limit
}

// testPhases builds a contiguous five-phase schedule for verifier tests.
// The ramp-to-peak phase runs at exactly 3.0°C/s.
func testPhases(t *testing.T) []entities.Phase {
	t.Helper()
	specs := []struct {
		kind       entities.PhaseKind
		start, end int
		from, to   entities.Celsius
	}{
		{entities.Preheat, 0, 100, 25, 150},
		{entities.Soak, 100, 175, 150, 165},
		{entities.RampToPeak, 175, 200, 165, 240},
		{entities.Reflow, 200, 267, 240, 235},
		{entities.Cooling, 267, 335, 235, 100},
	}
	phases := make([]entities.Phase, 0, len(specs))
	for _, s := range specs {
		phase, err := entities.NewPhase(s.kind, s.start, s.end, s.from, s.to)
		if err != nil {
			t.Fatalf("failed to build %s phase: %v", s.kind, err)
		}
		phases = append(phases, phase)
	}
	return phases
}

func testProfile(t *testing.T) *entities.ReflowProfile {
	t.Helper()
	profile, err := entities.NewReflowProfile("test-v1", testPhases(t), 240, 67)
	if err != nil {
		t.Fatalf("failed to build test profile: %v", err)
	}
	return profile
}
