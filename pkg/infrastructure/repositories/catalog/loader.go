package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/vsinha/reflow/pkg/domain/entities"
)

// Loader handles loading the limits catalog and the material library from
// JSON files
type Loader struct{}

// NewLoader creates a new catalog loader
func NewLoader() *Loader {
	return &Loader{}
}

// componentLimitRecord is the JSON shape of one current-catalog entry
type componentLimitRecord struct {
	MaxTempC              float64 `json:"max_temp_c"`
	MaxRampRateCPerS      float64 `json:"max_ramp_rate_c_per_s"`
	MinSoakTimeS          int     `json:"min_soak_time_s"`
	MinTimeAboveLiquidusS int     `json:"min_time_above_liquidus_s"`
	Notes                 string  `json:"notes"`
}

// typeLimitRecord is the JSON shape of one legacy-catalog entry
type typeLimitRecord struct {
	MaxTempC           float64 `json:"max_temp_c"`
	MaxRampUpCPerS     float64 `json:"max_ramp_up_c_per_s"`
	MaxRampDownCPerS   float64 `json:"max_ramp_down_c_per_s"`
	TimeAboveLiquidusS [2]int  `json:"time_above_liquidus_s"`
}

// materialRecord is the JSON shape of one material library entry
type materialRecord struct {
	Alloy              string     `json:"alloy"`
	LiquidusTempC      float64    `json:"liquidus_temp_c"`
	RecommendedPeakC   [2]float64 `json:"recommended_peak_c"`
	PreheatTargetC     float64    `json:"preheat_target_c"`
	SoakRangeC         [2]float64 `json:"soak_range_c"`
	SoakDurationS      [2]int     `json:"soak_duration_s"`
	TimeAboveLiquidusS [2]int     `json:"time_above_liquidus_s"`
	MaxRampRateCPerS   float64    `json:"max_ramp_rate_c_per_s"`
	CoolingRateCPerS   [2]float64 `json:"cooling_rate_c_per_s"`
}

// LoadComponentLimits loads the current MPN-keyed limits catalog
func (l *Loader) LoadComponentLimits(filename string) ([]entities.Limit, error) {
	var records map[string]componentLimitRecord
	if err := readJSON(filename, &records); err != nil {
		return nil, fmt.Errorf("failed to load limits catalog: %w", err)
	}

	limits := make([]entities.Limit, 0, len(records))
	for _, mpn := range sortedKeys(records) {
		rec := records[mpn]
		limit, err := entities.NewComponentLimit(
			entities.MPN(mpn),
			entities.Celsius(rec.MaxTempC),
			rec.MaxRampRateCPerS,
			rec.MinSoakTimeS,
			rec.MinTimeAboveLiquidusS,
			rec.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("limits catalog entry %s: %w", mpn, err)
		}
		limits = append(limits, limit)
	}
	return limits, nil
}

// LoadTypeLimits loads the legacy type-keyed limits catalog
func (l *Loader) LoadTypeLimits(filename string) ([]entities.Limit, error) {
	var records map[string]typeLimitRecord
	if err := readJSON(filename, &records); err != nil {
		return nil, fmt.Errorf("failed to load legacy limits catalog: %w", err)
	}

	limits := make([]entities.Limit, 0, len(records))
	for _, componentType := range sortedKeys(records) {
		rec := records[componentType]
		limit, err := entities.NewTypeLimit(
			componentType,
			entities.Celsius(rec.MaxTempC),
			rec.MaxRampUpCPerS,
			rec.MaxRampDownCPerS,
			entities.DurationRange{Min: rec.TimeAboveLiquidusS[0], Max: rec.TimeAboveLiquidusS[1]},
		)
		if err != nil {
			return nil, fmt.Errorf("legacy limits catalog entry %s: %w", componentType, err)
		}
		limits = append(limits, limit)
	}
	return limits, nil
}

// LoadMaterials loads the material library, keyed by material name
func (l *Loader) LoadMaterials(filename string) ([]*entities.MaterialProfile, error) {
	var records map[string]materialRecord
	if err := readJSON(filename, &records); err != nil {
		return nil, fmt.Errorf("failed to load material library: %w", err)
	}

	materials := make([]*entities.MaterialProfile, 0, len(records))
	for _, name := range sortedKeys(records) {
		rec := records[name]
		material, err := entities.NewMaterialProfile(
			name,
			rec.Alloy,
			entities.Celsius(rec.LiquidusTempC),
			entities.TempRange{Min: entities.Celsius(rec.RecommendedPeakC[0]), Max: entities.Celsius(rec.RecommendedPeakC[1])},
			entities.Celsius(rec.PreheatTargetC),
			entities.TempRange{Min: entities.Celsius(rec.SoakRangeC[0]), Max: entities.Celsius(rec.SoakRangeC[1])},
			entities.DurationRange{Min: rec.SoakDurationS[0], Max: rec.SoakDurationS[1]},
			entities.DurationRange{Min: rec.TimeAboveLiquidusS[0], Max: rec.TimeAboveLiquidusS[1]},
			rec.MaxRampRateCPerS,
			entities.RateRange{Min: rec.CoolingRateCPerS[0], Max: rec.CoolingRateCPerS[1]},
		)
		if err != nil {
			return nil, fmt.Errorf("material library entry %s: %w", name, err)
		}
		materials = append(materials, material)
	}
	return materials, nil
}

func readJSON(filename string, v interface{}) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", filename, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
