package dto

import (
	"time"

	"github.com/vsinha/reflow/pkg/domain/entities"
)

// RunResult contains the complete output of one pipeline run
type RunResult struct {
	RunID       string
	Components  []*entities.Component
	SkippedRows []string
	Limits      []entities.Limit
	Coverage    float64
	Material    *entities.MaterialProfile
	Profile     *entities.ReflowProfile
	Validation  *entities.ValidationResult
	Elapsed     time.Duration
}
