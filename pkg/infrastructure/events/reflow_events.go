package events

import (
	"github.com/vsinha/reflow/pkg/domain/entities"
)

const (
	BOMParsedEvent           = "bom.parsed"
	LimitsMatchedEvent       = "limits.matched"
	ProfileSynthesizedEvent  = "profile.synthesized"
	ValidationCompletedEvent = "validation.completed"
)

type BOMParsed struct {
	Components int `json:"components"`
	Skipped    int `json:"skipped"`
}

type LimitsMatched struct {
	Matched  int     `json:"matched"`
	Total    int     `json:"total"`
	Coverage float64 `json:"coverage"`
}

type ProfileSynthesized struct {
	ProfileID     string           `json:"profile_id"`
	PeakTemp      entities.Celsius `json:"peak_temp_c"`
	TotalDuration int              `json:"total_duration_s"`
}

type ValidationCompleted struct {
	Passed     bool `json:"passed"`
	Violations int  `json:"violations"`
	Warnings   int  `json:"warnings"`
}
