package wbs

import (
	"fmt"
	"math"
	"os"
)

func (cfg *Config) newInstance(minW, maxW float64, length int) *Instance {
	inst := &Instance{
		Length:        length,
		MinWeight:     minW,
		MaxWeight:     maxW,
		Discrete:      cfg.Discrete,
		NoZero:        cfg.NoZero,
		PosPercentage: cfg.PosPercentage,
	}
	if math.IsNaN(cfg.PosPercentage) {
		inst.Weights = sampleWeights(minW, maxW, length, cfg.Discrete, cfg.NoZero)
	} else {
		inst.Weights = sampleWithRatio(minW, maxW, length, cfg.PosPercentage, cfg.Discrete)
	}
	inst.deriveOptimum()
	return inst
}

// Generate sweeps the cartesian product of the configured weight ranges and
// gene lengths and writes NumInstances instances per combination into
// cfg.OutputDir, in the formats selected by cfg.Format. The directory is
// created if missing. Note that a range admitting only zero weights together
// with NoZero never terminates.
func Generate(cfg *Config) error {
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("error while creating output directory: %v", err)
	}

	useOverview := cfg.Format == OverviewOnly || cfg.Format == Both
	useSingle := cfg.Format == PerInstanceOnly || cfg.Format == Both

	for _, minW := range cfg.MinWeights {
		for _, maxW := range cfg.MaxWeights {
			for _, length := range cfg.GeneLengths {
				if err := cfg.generateCell(minW, maxW, length, useOverview, useSingle); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// generateCell produces all instances of one (minW, maxW, length)
// combination, keeping the cell's overview file open across them.
func (cfg *Config) generateCell(minW, maxW float64, length int, useOverview, useSingle bool) error {
	var overview *os.File
	if useOverview {
		path := overviewPath(cfg.OutputDir, length, minW, maxW, cfg.Discrete)
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("error while creating overview file %v: %v", path, err)
		}
		overview = f
		defer overview.Close()
	}

	for i := 0; i < cfg.NumInstances; i++ {
		inst := cfg.newInstance(minW, maxW, length)

		if useSingle {
			if _, err := inst.writeCSV(cfg.OutputDir); err != nil {
				return fmt.Errorf("error while writing instance file: %v", err)
			}
		}
		if useOverview {
			if err := inst.appendOverview(overview); err != nil {
				return fmt.Errorf("error while writing overview file: %v", err)
			}
		}

		fmt.Printf("Generated WBS(%d) in [%s,%s]\n", length, formatNumber(minW), formatNumber(maxW))
	}
	return nil
}
