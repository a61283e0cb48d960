package memory

import (
	"fmt"

	"github.com/vsinha/reflow/pkg/domain/entities"
	"github.com/vsinha/reflow/pkg/domain/repositories"
)

// MaterialRepository provides in-memory storage for solder material profiles
type MaterialRepository struct {
	materials    []entities.MaterialProfile
	materialsMap map[string]int
}

// NewMaterialRepository creates a new in-memory material repository
func NewMaterialRepository(expectedMaterials int) *MaterialRepository {
	return &MaterialRepository{
		materials:    make([]entities.MaterialProfile, 0, expectedMaterials),
		materialsMap: make(map[string]int, expectedMaterials),
	}
}

// Verify interface compliance
var _ repositories.MaterialRepository = (*MaterialRepository)(nil)

// LoadMaterials loads material profiles into the repository
func (r *MaterialRepository) LoadMaterials(materials []*entities.MaterialProfile) error {
	for _, m := range materials {
		r.AddMaterial(*m)
	}
	return nil
}

// AddMaterial adds a material profile to the repository
func (r *MaterialRepository) AddMaterial(material entities.MaterialProfile) {
	r.materialsMap[material.Name] = len(r.materials)
	r.materials = append(r.materials, material)
}

// GetMaterial returns the material profile for a name
func (r *MaterialRepository) GetMaterial(name string) (*entities.MaterialProfile, error) {
	index, exists := r.materialsMap[name]
	if !exists {
		return nil, fmt.Errorf("material not found: %s", name)
	}
	return &r.materials[index], nil
}

// GetAllMaterials returns all material profiles
func (r *MaterialRepository) GetAllMaterials() ([]*entities.MaterialProfile, error) {
	var materials []*entities.MaterialProfile
	for i := range r.materials {
		materials = append(materials, &r.materials[i])
	}
	return materials, nil
}
