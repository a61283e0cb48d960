package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vsinha/reflow/pkg/domain/entities"
)

// Loader handles loading BOM data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadComponents loads BOM components from a CSV file. Required columns:
// designator, mpn, package, qty. Optional columns: thermal_mass (defaults
// to medium), component_type (defaults to Unknown). Malformed rows are
// skipped, not fatal; each skip is reported in the returned messages.
func (l *Loader) LoadComponents(filename string) ([]*entities.Component, []string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open BOM file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read BOM CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, nil, fmt.Errorf("BOM CSV must have header and at least one data row")
	}

	columns, err := mapColumns(records[0])
	if err != nil {
		return nil, nil, fmt.Errorf("BOM CSV header: %w", err)
	}

	components := make([]*entities.Component, 0, len(records)-1)
	skipped := make([]string, 0)

	for i, record := range records[1:] {
		comp, err := parseComponent(record, columns)
		if err != nil {
			skipped = append(skipped, fmt.Sprintf("BOM CSV row %d skipped: %v", i+2, err))
			continue
		}
		components = append(components, comp)
	}

	return components, skipped, nil
}

// columnIndex maps the BOM column names to their positions in the header
type columnIndex struct {
	designator    int
	mpn           int
	pkg           int
	qty           int
	thermalMass   int // -1 when absent
	componentType int // -1 when absent
}

func mapColumns(header []string) (columnIndex, error) {
	columns := columnIndex{
		designator:    -1,
		mpn:           -1,
		pkg:           -1,
		qty:           -1,
		thermalMass:   -1,
		componentType: -1,
	}

	for i, name := range header {
		switch strings.TrimSpace(strings.ToLower(name)) {
		case "designator":
			columns.designator = i
		case "mpn":
			columns.mpn = i
		case "package":
			columns.pkg = i
		case "qty":
			columns.qty = i
		case "thermal_mass":
			columns.thermalMass = i
		case "component_type":
			columns.componentType = i
		}
	}

	required := map[string]int{
		"designator": columns.designator,
		"mpn":        columns.mpn,
		"package":    columns.pkg,
		"qty":        columns.qty,
	}
	for name, index := range required {
		if index < 0 {
			return columnIndex{}, fmt.Errorf("missing required column %q, got: %v", name, header)
		}
	}

	return columns, nil
}

func parseComponent(record []string, columns columnIndex) (*entities.Component, error) {
	field := func(index int) string {
		if index < 0 || index >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[index])
	}

	qty, err := strconv.Atoi(field(columns.qty))
	if err != nil {
		return nil, fmt.Errorf("invalid qty %q: %w", field(columns.qty), err)
	}

	mass, err := entities.ParseThermalMass(field(columns.thermalMass))
	if err != nil {
		return nil, err
	}

	return entities.NewComponent(
		field(columns.designator),
		entities.MPN(field(columns.mpn)),
		field(columns.pkg),
		qty,
		mass,
		field(columns.componentType),
	)
}
