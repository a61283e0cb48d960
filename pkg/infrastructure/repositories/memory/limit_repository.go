package memory

import (
	"fmt"

	"github.com/vsinha/reflow/pkg/domain/entities"
	"github.com/vsinha/reflow/pkg/domain/repositories"
)

// LimitRepository provides in-memory storage for one generation of the
// limits catalog. The model decides which component field is used as the
// lookup key: MPN for the current catalog, component type for the legacy
// one.
type LimitRepository struct {
	model  entities.LimitModel
	limits map[string]entities.Limit
}

// NewLimitRepository creates a new in-memory limit repository for the given
// catalog generation
func NewLimitRepository(model entities.LimitModel, expectedLimits int) *LimitRepository {
	return &LimitRepository{
		model:  model,
		limits: make(map[string]entities.Limit, expectedLimits),
	}
}

// Verify interface compliance
var _ repositories.LimitRepository = (*LimitRepository)(nil)

// LoadLimits loads limit records into the repository
func (r *LimitRepository) LoadLimits(limits []entities.Limit) error {
	for _, limit := range limits {
		if limit.Model() != r.model {
			return fmt.Errorf("limit %s has model %s, repository holds %s",
				limit.Key(), limit.Model(), r.model)
		}
		r.limits[limit.Key()] = limit
	}
	return nil
}

// AddLimit adds a single limit record
func (r *LimitRepository) AddLimit(limit entities.Limit) error {
	return r.LoadLimits([]entities.Limit{limit})
}

// GetLimit returns the limit record for a catalog key
func (r *LimitRepository) GetLimit(key string) (entities.Limit, error) {
	limit, exists := r.limits[key]
	if !exists {
		return nil, fmt.Errorf("limit not found: %s", key)
	}
	return limit, nil
}

// MatchComponents looks up each BOM component against the catalog.
// Components without an entry are silently excluded; they contribute no
// constraint.
func (r *LimitRepository) MatchComponents(components []*entities.Component) ([]entities.Limit, int, error) {
	limits := make([]entities.Limit, 0, len(components))
	matched := 0

	for _, comp := range components {
		key := string(comp.MPN)
		if r.model == entities.TypeKeyed {
			key = comp.ComponentType
		}
		if limit, exists := r.limits[key]; exists {
			limits = append(limits, limit)
			matched++
		}
	}

	return limits, matched, nil
}
