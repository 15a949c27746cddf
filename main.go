// main.go
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/wellsight/datagen/config"
	"github.com/wellsight/datagen/generator"
	"github.com/wellsight/datagen/report"
)

func main() {
	log.Println("Starting wells dashboard dataset generation...")

	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	absDir, err := filepath.Abs(cfg.OutputDir)
	if err != nil {
		absDir = cfg.OutputDir
	}
	log.Printf("Generating data files in: %s", absDir)

	if err := generator.EnsureOutputDir(cfg.OutputDir); err != nil {
		log.Fatalf("Error preparing output directory: %v", err)
	}

	wells, err := generator.GenerateWellsCompletion(cfg.OutputDir, cfg.Seed)
	if err != nil {
		log.Fatalf("Error generating wells completion data: %v", err)
	}

	production, err := generator.GenerateProductionData(cfg.OutputDir)
	if err != nil {
		log.Fatalf("Error generating production data: %v", err)
	}

	summary, err := generator.GenerateProductionSummary(cfg.OutputDir)
	if err != nil {
		log.Fatalf("Error generating production summary data: %v", err)
	}

	sites, err := generator.GenerateGeographicData(cfg.OutputDir)
	if err != nil {
		log.Fatalf("Error generating geographic data: %v", err)
	}

	log.Printf("Data generation complete. Files saved in: %s", absDir)

	fmt.Println("\nDataset summaries:")
	report.Describe(os.Stdout, "Wells Completion Data", report.WellsCompletionColumns(wells))
	report.Describe(os.Stdout, "Production Data", report.ProductionColumns(production))
	report.Describe(os.Stdout, "Production Summary", report.SummaryColumns(summary))
	report.Describe(os.Stdout, "Geographic Data", report.GeographicColumns(sites))
}
