package memory

import (
	"testing"

	"github.com/vsinha/reflow/pkg/domain/entities"
)

func testMaterial(t *testing.T, name string) *entities.MaterialProfile {
	t.Helper()
	material, err := entities.NewMaterialProfile(
		name, "Sn96.5/Ag3.0/Cu0.5",
		217,
		entities.TempRange{Min: 235, Max: 250},
		150,
		entities.TempRange{Min: 150, Max: 180},
		entities.DurationRange{Min: 60, Max: 90},
		entities.DurationRange{Min: 45, Max: 90},
		3.0,
		entities.RateRange{Min: 2.0, Max: 4.0},
	)
	if err != nil {
		t.Fatalf("failed to build material: %v", err)
	}
	return material
}

func TestMaterialRepository_GetMaterial(t *testing.T) {
	repo := NewMaterialRepository(2)
	if err := repo.LoadMaterials([]*entities.MaterialProfile{
		testMaterial(t, "SAC305"),
		testMaterial(t, "Sn63Pb37"),
	}); err != nil {
		t.Fatalf("LoadMaterials failed: %v", err)
	}

	material, err := repo.GetMaterial("SAC305")
	if err != nil {
		t.Fatalf("GetMaterial failed: %v", err)
	}
	if material.Name != "SAC305" {
		t.Errorf("Expected SAC305, got %s", material.Name)
	}

	if _, err := repo.GetMaterial("UNKNOWN"); err == nil {
		t.Error("Expected error for unknown material")
	}
}

func TestMaterialRepository_GetAllMaterials(t *testing.T) {
	repo := NewMaterialRepository(2)
	repo.AddMaterial(*testMaterial(t, "SAC305"))
	repo.AddMaterial(*testMaterial(t, "Sn63Pb37"))

	materials, err := repo.GetAllMaterials()
	if err != nil {
		t.Fatalf("GetAllMaterials failed: %v", err)
	}
	if len(materials) != 2 {
		t.Errorf("Expected 2 materials, got %d", len(materials))
	}
}
