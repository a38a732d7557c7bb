package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/mikey/resume-screener/internal/core"
	"github.com/mikey/resume-screener/internal/di"
	"go.uber.org/zap"
)

var (
	jobDescription     = flag.String("job-description", "", "Job description text to screen candidates against")
	jobDescriptionFile = flag.String("job-description-file", "", "Path to a file containing the job description (overrides -job-description)")
	outputFile         = flag.String("output", "", "Write candidate records to this file (stdout if not specified)")
)

func main() {
	flag.Parse()

	// Build the dependency injection container
	container, err := di.BuildContainer()
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	// Run the application
	if err := container.Invoke(run); err != nil {
		fmt.Printf("Application error: %v\n", err)
		os.Exit(1)
	}
}

// run is the main application function that gets all dependencies injected
func run(
	logger *zap.Logger,
	service *core.ScreeningService,
	generator core.TextGenerator,
	cache core.NarrativeCache,
) error {
	defer logger.Sync()

	jd, err := resolveJobDescription()
	if err != nil {
		logger.Error("Failed to read job description", zap.Error(err))
		return err
	}
	if jd == "" {
		return fmt.Errorf("a job description is required (use -job-description or -job-description-file)")
	}

	ctx := context.Background()
	records, err := service.ScreenInbox(ctx, jd)
	if err != nil {
		logger.Error("Screening run failed", zap.Error(err))
		return err
	}

	logger.Info("Screening run complete", zap.Int("candidates", len(records)))

	if err := writeRecords(records); err != nil {
		logger.Error("Failed to write candidate records", zap.Error(err))
		return err
	}

	// Close any resources that need closing
	if closer, ok := generator.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Error("Failed to close text generator", zap.Error(err))
		}
	}

	// Stop the cache if needed
	if stopper, ok := cache.(interface{ Stop() }); ok {
		stopper.Stop()
	}

	return nil
}

func resolveJobDescription() (string, error) {
	if *jobDescriptionFile != "" {
		data, err := os.ReadFile(*jobDescriptionFile)
		if err != nil {
			return "", fmt.Errorf("failed to read job description file: %w", err)
		}
		return string(data), nil
	}
	return *jobDescription, nil
}

func writeRecords(records []core.CandidateRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal candidate records: %w", err)
	}

	if *outputFile == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(*outputFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
