package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/observability"
)

var compareCmd = &cobra.Command{
	Use:   "compare [resume files...]",
	Short: "Rank multiple candidates against one job description",
	Long:  "Extract and score several resume documents against the same job description, printing them best match first.",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runCompare,
}

var (
	compareJobFile       string
	compareRequiredYears int
	compareVerbose       bool
)

func init() {
	compareCmd.Flags().StringVarP(&compareJobFile, "job", "j", "", "Path to the job description text file (required unless set in the config file)")
	compareCmd.Flags().IntVar(&compareRequiredYears, "required-years", -1, "Years of experience the role requires (-1 infers from the job text)")
	compareCmd.Flags().BoolVarP(&compareVerbose, "verbose", "v", false, "Print a formatted ranking instead of raw JSON")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	a, cfg, err := newAnalyzer()
	if err != nil {
		return fmt.Errorf("failed to create analyzer: %w", err)
	}

	jobFile := compareJobFile
	if jobFile == "" {
		jobFile = cfg.Job
	}
	if jobFile == "" {
		return fmt.Errorf("a job description is required: pass --job or set \"job\" in the config file")
	}

	resumes := make(map[string]string, len(args))
	for _, path := range args {
		text, err := ingestion.ExtractFile(path)
		if err != nil {
			return fmt.Errorf("failed to extract %s: %w", path, err)
		}
		resumes[path] = text
	}

	jobData, err := os.ReadFile(jobFile)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	var requiredYears *int
	if compareRequiredYears >= 0 {
		requiredYears = &compareRequiredYears
	}

	ranked, err := a.CompareCandidates(cmd.Context(), resumes, string(jobData), requiredYears)
	if err != nil {
		return fmt.Errorf("failed to rank candidates: %w", err)
	}

	if compareVerbose || cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintRankedCandidates(ranked)
		return nil
	}

	jsonBytes, err := json.MarshalIndent(ranked, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
	return nil
}
