package memory

import (
	"testing"

	"github.com/vsinha/reflow/pkg/domain/entities"
)

func testComponentLimit(t *testing.T, mpn entities.MPN) entities.Limit {
	t.Helper()
	limit, err := entities.NewComponentLimit(mpn, 250, 3.0, 60, 45, "")
	if err != nil {
		t.Fatalf("failed to build limit: %v", err)
	}
	return limit
}

func testTypeLimit(t *testing.T, componentType string) entities.Limit {
	t.Helper()
	limit, err := entities.NewTypeLimit(componentType, 245, 2.0, 4.0, entities.DurationRange{Min: 40, Max: 90})
	if err != nil {
		t.Fatalf("failed to build limit: %v", err)
	}
	return limit
}

func testComponent(t *testing.T, designator string, mpn entities.MPN, componentType string) *entities.Component {
	t.Helper()
	comp, err := entities.NewComponent(designator, mpn, "0603", 1, entities.MediumMass, componentType)
	if err != nil {
		t.Fatalf("failed to build component: %v", err)
	}
	return comp
}

func TestLimitRepository_GetLimit(t *testing.T) {
	repo := NewLimitRepository(entities.PartKeyed, 2)
	if err := repo.AddLimit(testComponentLimit(t, "STM32F405")); err != nil {
		t.Fatalf("AddLimit failed: %v", err)
	}

	limit, err := repo.GetLimit("STM32F405")
	if err != nil {
		t.Fatalf("GetLimit failed: %v", err)
	}
	if limit.Key() != "STM32F405" {
		t.Errorf("Expected key STM32F405, got %s", limit.Key())
	}

	if _, err := repo.GetLimit("MISSING"); err == nil {
		t.Error("Expected error for unknown key")
	}
}

func TestLimitRepository_RejectsModelMismatch(t *testing.T) {
	repo := NewLimitRepository(entities.PartKeyed, 1)
	if err := repo.AddLimit(testTypeLimit(t, "IC")); err == nil {
		t.Error("Expected error loading a type-keyed limit into a part-keyed repository")
	}
}

func TestLimitRepository_MatchComponents_PartKeyed(t *testing.T) {
	repo := NewLimitRepository(entities.PartKeyed, 2)
	if err := repo.LoadLimits([]entities.Limit{
		testComponentLimit(t, "STM32F405"),
		testComponentLimit(t, "GRM188R61A"),
	}); err != nil {
		t.Fatalf("LoadLimits failed: %v", err)
	}

	components := []*entities.Component{
		testComponent(t, "U1", "STM32F405", "IC"),
		testComponent(t, "C1", "GRM188R61A", "capacitor"),
		testComponent(t, "R1", "RC0402FR", "resistor"), // no catalog entry
	}

	limits, matched, err := repo.MatchComponents(components)
	if err != nil {
		t.Fatalf("MatchComponents failed: %v", err)
	}
	if matched != 2 {
		t.Errorf("Expected 2 matched components, got %d", matched)
	}
	if len(limits) != 2 {
		t.Errorf("Expected 2 limits, got %d", len(limits))
	}
}

func TestLimitRepository_MatchComponents_TypeKeyed(t *testing.T) {
	repo := NewLimitRepository(entities.TypeKeyed, 1)
	if err := repo.AddLimit(testTypeLimit(t, "IC")); err != nil {
		t.Fatalf("AddLimit failed: %v", err)
	}

	components := []*entities.Component{
		testComponent(t, "U1", "STM32F405", "IC"),
		testComponent(t, "U2", "TPS62130", "IC"),
		testComponent(t, "C1", "GRM188R61A", "capacitor"),
	}

	limits, matched, err := repo.MatchComponents(components)
	if err != nil {
		t.Fatalf("MatchComponents failed: %v", err)
	}
	if matched != 2 {
		t.Errorf("Expected 2 matched components, got %d", matched)
	}
	if len(limits) != 2 {
		t.Errorf("Expected a limit per matched component, got %d", len(limits))
	}
	if limits[0].Key() != "IC" {
		t.Errorf("Expected type key IC, got %s", limits[0].Key())
	}
}
