package entities

import "testing"

func TestPhase_Derived(t *testing.T) {
	phase, err := NewPhase(RampToPeak, 100, 130, 170, 245)
	if err != nil {
		t.Fatalf("Expected valid phase creation to succeed: %v", err)
	}
	if phase.Duration() != 30 {
		t.Errorf("Expected duration 30s, got %ds", phase.Duration())
	}
	if phase.RampRate() != 2.5 {
		t.Errorf("Expected ramp rate 2.50°C/s, got %.2f°C/s", phase.RampRate())
	}
}

func TestPhase_RampRateIsSignFree(t *testing.T) {
	cooling, err := NewPhase(Cooling, 250, 300, 240, 100)
	if err != nil {
		t.Fatalf("Expected valid phase creation to succeed: %v", err)
	}
	if cooling.RampRate() != 2.8 {
		t.Errorf("Expected sign-free rate 2.80°C/s, got %.2f°C/s", cooling.RampRate())
	}
}

func TestPhase_ZeroDurationRampRate(t *testing.T) {
	phase, err := NewPhase(Soak, 50, 50, 150, 153)
	if err != nil {
		t.Fatalf("Expected valid phase creation to succeed: %v", err)
	}
	// Duration clamps to 1s in the rate computation
	if phase.RampRate() != 3.0 {
		t.Errorf("Expected rate 3.00°C/s for zero-duration phase, got %.2f°C/s", phase.RampRate())
	}
}

func TestPhase_InvalidTimes(t *testing.T) {
	if _, err := NewPhase(Preheat, 100, 50, 25, 150); err == nil {
		t.Error("Expected error for phase ending before it starts")
	}
}

func TestPhaseKind_String(t *testing.T) {
	testCases := []struct {
		kind PhaseKind
		want string
	}{
		{Preheat, "preheat"},
		{Soak, "soak"},
		{RampToPeak, "ramp_to_peak"},
		{Reflow, "reflow"},
		{Cooling, "cooling"},
	}
	for _, tc := range testCases {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("Expected %s, got %s", tc.want, got)
		}
	}
}
