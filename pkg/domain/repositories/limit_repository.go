package repositories

import "github.com/vsinha/reflow/pkg/domain/entities"

// LimitRepository provides keyed access to the thermal limits catalog
type LimitRepository interface {
	// GetLimit returns the limit record for a catalog key (MPN for the
	// current catalog, component type for the legacy one)
	GetLimit(key string) (entities.Limit, error)

	// MatchComponents looks up every BOM component and returns the limits
	// for those with a catalog entry. Components without an entry
	// contribute no constraint. Matched reports how many components found
	// a record, for coverage reporting.
	MatchComponents(components []*entities.Component) (limits []entities.Limit, matched int, err error)

	LoadLimits(limits []entities.Limit) error
}
