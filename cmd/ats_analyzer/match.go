package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/observability"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match a resume against a job description",
	Long:  "Score a resume against a job description, blending text similarity, skill coverage, and experience fit.",
	RunE:  runMatch,
}

var (
	matchResumeFile    string
	matchJobFile       string
	matchRequiredYears int
	matchVerbose       bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchResumeFile, "resume", "r", "", "Path to the resume document (required unless set in the config file)")
	matchCmd.Flags().StringVarP(&matchJobFile, "job", "j", "", "Path to the job description text file (required unless set in the config file)")
	matchCmd.Flags().IntVar(&matchRequiredYears, "required-years", -1, "Years of experience the role requires (-1 infers from the job text)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a formatted report instead of raw JSON")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	a, cfg, err := newAnalyzer()
	if err != nil {
		return fmt.Errorf("failed to create analyzer: %w", err)
	}

	resumeFile := matchResumeFile
	if resumeFile == "" {
		resumeFile = cfg.Resume
	}
	jobFile := matchJobFile
	if jobFile == "" {
		jobFile = cfg.Job
	}
	if resumeFile == "" || jobFile == "" {
		return fmt.Errorf("a resume and a job description are required: pass --resume and --job or set them in the config file")
	}

	resumeText, err := ingestion.ExtractFile(resumeFile)
	if err != nil {
		return fmt.Errorf("failed to extract resume text: %w", err)
	}

	jobData, err := os.ReadFile(jobFile)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	var requiredYears *int
	if matchRequiredYears >= 0 {
		requiredYears = &matchRequiredYears
	}

	result := a.MatchJob(resumeText, string(jobData), requiredYears)

	if matchVerbose || cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintJobMatch(&result)
		return nil
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
	return nil
}
