package entities

import "testing"

func validMaterialArgs() (string, string, Celsius, TempRange, Celsius, TempRange, DurationRange, DurationRange, float64, RateRange) {
	return "SAC305", "Sn96.5/Ag3.0/Cu0.5",
		217,
		TempRange{Min: 235, Max: 250},
		150,
		TempRange{Min: 150, Max: 180},
		DurationRange{Min: 60, Max: 90},
		DurationRange{Min: 45, Max: 90},
		3.0,
		RateRange{Min: 2.0, Max: 4.0}
}

func TestMaterialProfile_Validation(t *testing.T) {
	name, alloy, liquidus, peak, preheat, soak, soakDur, tal, ramp, cooling := validMaterialArgs()

	material, err := NewMaterialProfile(name, alloy, liquidus, peak, preheat, soak, soakDur, tal, ramp, cooling)
	if err != nil {
		t.Fatalf("Expected valid material creation to succeed: %v", err)
	}
	if material.Name != "SAC305" {
		t.Errorf("Expected name SAC305, got %s", material.Name)
	}

	testCases := []struct {
		name   string
		mutate func() error
	}{
		{"empty name", func() error {
			_, err := NewMaterialProfile("", alloy, liquidus, peak, preheat, soak, soakDur, tal, ramp, cooling)
			return err
		}},
		{"zero liquidus", func() error {
			_, err := NewMaterialProfile(name, alloy, 0, peak, preheat, soak, soakDur, tal, ramp, cooling)
			return err
		}},
		{"inverted peak range", func() error {
			_, err := NewMaterialProfile(name, alloy, liquidus, TempRange{Min: 250, Max: 235}, preheat, soak, soakDur, tal, ramp, cooling)
			return err
		}},
		{"inverted soak range", func() error {
			_, err := NewMaterialProfile(name, alloy, liquidus, peak, preheat, TempRange{Min: 180, Max: 150}, soakDur, tal, ramp, cooling)
			return err
		}},
		{"inverted soak duration", func() error {
			_, err := NewMaterialProfile(name, alloy, liquidus, peak, preheat, soak, DurationRange{Min: 90, Max: 60}, tal, ramp, cooling)
			return err
		}},
		{"inverted TAL range", func() error {
			_, err := NewMaterialProfile(name, alloy, liquidus, peak, preheat, soak, soakDur, DurationRange{Min: 90, Max: 45}, ramp, cooling)
			return err
		}},
		{"inverted cooling range", func() error {
			_, err := NewMaterialProfile(name, alloy, liquidus, peak, preheat, soak, soakDur, tal, ramp, RateRange{Min: 4.0, Max: 2.0})
			return err
		}},
		{"non-positive ramp rate", func() error {
			_, err := NewMaterialProfile(name, alloy, liquidus, peak, preheat, soak, soakDur, tal, 0, cooling)
			return err
		}},
	}

	for _, tc := range testCases {
		if err := tc.mutate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestRangeMidpoints(t *testing.T) {
	if got := (TempRange{Min: 235, Max: 250}).Midpoint(); got != 242.5 {
		t.Errorf("Expected temperature midpoint 242.5, got %.1f", float64(got))
	}
	if got := (DurationRange{Min: 45, Max: 90}).Midpoint(); got != 67 {
		t.Errorf("Expected duration midpoint truncated to 67, got %d", got)
	}
	if got := (RateRange{Min: 2.0, Max: 4.0}).Midpoint(); got != 3.0 {
		t.Errorf("Expected rate midpoint 3.0, got %.1f", got)
	}
}
