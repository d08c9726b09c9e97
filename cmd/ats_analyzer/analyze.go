package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume for ATS compatibility",
	Long:  "Analyze a resume document (.pdf, .docx, or .txt) for ATS compatibility, producing section scores, extracted skills, and recommendations.",
	RunE:  runAnalyze,
}

var (
	analyzeResumeFile string
	analyzeKeywords   string
	analyzeOutputFile string
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResumeFile, "resume", "r", "", "Path to the resume document (required unless set in the config file)")
	analyzeCmd.Flags().StringVarP(&analyzeKeywords, "keywords", "k", "", "Comma-separated required keywords from the job posting")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to write the analysis JSON (defaults to stdout)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a formatted report instead of raw JSON")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	a, cfg, err := newAnalyzer()
	if err != nil {
		return fmt.Errorf("failed to create analyzer: %w", err)
	}

	resumeFile := analyzeResumeFile
	if resumeFile == "" {
		resumeFile = cfg.Resume
	}
	if resumeFile == "" {
		return fmt.Errorf("a resume file is required: pass --resume or set \"resume\" in the config file")
	}

	text, err := ingestion.ExtractFile(resumeFile)
	if err != nil {
		return fmt.Errorf("failed to extract resume text: %w", err)
	}

	analysis := a.AnalyzeText(text, splitKeywords(analyzeKeywords))
	analysis.Filename = resumeFile

	if analyzeVerbose || cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintAnalysis(&analysis)
		return nil
	}

	jsonBytes, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if analyzeOutputFile != "" {
		if err := os.WriteFile(analyzeOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Analysis written to %s\n", analyzeOutputFile)
		return nil
	}

	_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
	return nil
}

// splitKeywords parses a comma-separated keyword flag, dropping blanks.
func splitKeywords(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	keywords := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}
	return keywords
}
