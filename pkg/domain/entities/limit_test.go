package entities

import "testing"

func TestComponentLimit_Validation(t *testing.T) {
	limit, err := NewComponentLimit("STM32F405", 250, 3.0, 60, 45, "BGA, sensitive die")
	if err != nil {
		t.Fatalf("Expected valid limit creation to succeed: %v", err)
	}
	if limit.Key() != "STM32F405" {
		t.Errorf("Expected key STM32F405, got %s", limit.Key())
	}

	testCases := []struct {
		name     string
		mpn      MPN
		maxTemp  Celsius
		maxRamp  float64
		minSoak  int
		minTAL   int
	}{
		{"empty MPN", "", 250, 3.0, 60, 45},
		{"max temp too low", "X", 190, 3.0, 60, 45},
		{"max temp too high", "X", 310, 3.0, 60, 45},
		{"ramp rate too low", "X", 250, 0.2, 60, 45},
		{"ramp rate too high", "X", 250, 6.0, 60, 45},
		{"soak time too low", "X", 250, 3.0, 20, 45},
		{"soak time too high", "X", 250, 3.0, 200, 45},
		{"TAL too low", "X", 250, 3.0, 60, 20},
		{"TAL too high", "X", 250, 3.0, 60, 150},
	}

	for _, tc := range testCases {
		if _, err := NewComponentLimit(tc.mpn, tc.maxTemp, tc.maxRamp, tc.minSoak, tc.minTAL, ""); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestComponentLimit_CapabilitySurface(t *testing.T) {
	limit, err := NewComponentLimit("STM32F405", 250, 3.0, 60, 45, "")
	if err != nil {
		t.Fatalf("failed to build limit: %v", err)
	}

	if limit.Model() != PartKeyed {
		t.Errorf("Expected PartKeyed model, got %s", limit.Model())
	}
	if limit.TemperatureCeiling() != 250 {
		t.Errorf("Expected ceiling 250°C, got %.1f", float64(limit.TemperatureCeiling()))
	}
	bounds := limit.RampBounds()
	if bounds.Up != 3.0 || bounds.Down != 3.0 {
		t.Errorf("Part-keyed ramp bounds must be symmetric, got up=%.1f down=%.1f", bounds.Up, bounds.Down)
	}
	window, hasMax := limit.LiquidusWindow()
	if window.Min != 45 || hasMax {
		t.Errorf("Part-keyed TAL carries only a floor, got min=%d hasMax=%v", window.Min, hasMax)
	}
	soak, ok := limit.SoakFloor()
	if !ok || soak != 60 {
		t.Errorf("Expected soak floor 60s, got %d (ok=%v)", soak, ok)
	}
}

func TestTypeLimit_CapabilitySurface(t *testing.T) {
	limit, err := NewTypeLimit("IC", 245, 2.0, 4.0, DurationRange{Min: 40, Max: 90})
	if err != nil {
		t.Fatalf("failed to build limit: %v", err)
	}

	if limit.Model() != TypeKeyed {
		t.Errorf("Expected TypeKeyed model, got %s", limit.Model())
	}
	if limit.Key() != "IC" {
		t.Errorf("Expected key IC, got %s", limit.Key())
	}
	bounds := limit.RampBounds()
	if bounds.Up != 2.0 || bounds.Down != 4.0 {
		t.Errorf("Expected asymmetric bounds up=2.0 down=4.0, got up=%.1f down=%.1f", bounds.Up, bounds.Down)
	}
	window, hasMax := limit.LiquidusWindow()
	if window.Min != 40 || window.Max != 90 || !hasMax {
		t.Errorf("Type-keyed TAL carries both bounds, got %+v hasMax=%v", window, hasMax)
	}
	if _, ok := limit.SoakFloor(); ok {
		t.Error("Type-keyed limits carry no soak constraint")
	}
}

func TestTypeLimit_Validation(t *testing.T) {
	if _, err := NewTypeLimit("", 245, 2.0, 4.0, DurationRange{Min: 40, Max: 90}); err == nil {
		t.Error("Expected error for empty component type")
	}
	if _, err := NewTypeLimit("IC", 245, 2.0, 4.0, DurationRange{Min: 90, Max: 40}); err == nil {
		t.Error("Expected error for inverted TAL range")
	}
}
