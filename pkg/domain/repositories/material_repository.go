package repositories

import "github.com/vsinha/reflow/pkg/domain/entities"

// MaterialRepository provides access to solder material profiles by name
type MaterialRepository interface {
	GetMaterial(name string) (*entities.MaterialProfile, error)
	GetAllMaterials() ([]*entities.MaterialProfile, error)
	LoadMaterials(materials []*entities.MaterialProfile) error
}
