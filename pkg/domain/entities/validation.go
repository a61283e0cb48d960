package entities

// Metrics summarizes the measurable outcomes of a verification run
type Metrics struct {
	PeakTemp            Celsius
	TimeAboveLiquidus   int
	TotalDuration       int
	MaxObservedRampRate float64
}

// ValidationResult is the Verifier's verdict on a profile. Violations are
// fatal; warnings are advisory and never affect Passed.
type ValidationResult struct {
	Passed     bool
	Violations []string
	Warnings   []string
	Metrics    Metrics
}
