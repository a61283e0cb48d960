// Example of using the reflow library directly, without the CLI or any
// catalog files on disk.
package main

import (
	"fmt"
	"log"

	"github.com/vsinha/reflow/pkg/domain/entities"
	"github.com/vsinha/reflow/pkg/domain/services"
)

func main() {
	material, err := entities.NewMaterialProfile(
		"SAC305", "Sn96.5/Ag3.0/Cu0.5",
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
		log.Fatalf("failed to build material: %v", err)
	}

	mcu, err := entities.NewComponentLimit("STM32F405", 250, 3.0, 60, 45, "BGA, sensitive die")
	if err != nil {
		log.Fatalf("failed to build limit: %v", err)
	}
	thermistor, err := entities.NewComponentLimit("EPCOS-B57861", 240, 2.0, 80, 40, "glass bead")
	if err != nil {
		log.Fatalf("failed to build limit: %v", err)
	}
	limits := []entities.Limit{mcu, thermistor}

	profile, err := services.NewPlanner().Synthesize(material, limits)
	if err != nil {
		log.Fatalf("failed to synthesize profile: %v", err)
	}

	fmt.Printf("Profile %s: peak %.1f°C, TAL %ds, total %ds\n",
		profile.ID, float64(profile.PeakTemp), profile.TimeAboveLiquidus, profile.TotalDuration)
	for _, phase := range profile.Phases {
		fmt.Printf("  %-12s %4ds  %5.1f°C -> %5.1f°C  (%.2f°C/s)\n",
			phase.Kind, phase.Duration(), float64(phase.StartTemp), float64(phase.EndTemp), phase.RampRate())
	}

	result := services.NewVerifier().Verify(profile, limits, material)
	fmt.Printf("\nVerification passed: %v\n", result.Passed)
	for _, v := range result.Violations {
		fmt.Printf("  violation: %s\n", v)
	}
	for _, w := range result.Warnings {
		fmt.Printf("  warning:   %s\n", w)
	}
}
