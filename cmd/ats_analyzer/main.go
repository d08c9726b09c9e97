// Package main provides the entry point for the ATS resume analyzer CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/ats"
	"github.com/jonathan/resume-analyzer/internal/catalog"
	"github.com/jonathan/resume-analyzer/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "ats_analyzer",
	Short: "ATS Resume Analyzer",
	Long:  "ATS Resume Analyzer scores resumes for applicant tracking system compatibility, matches them against job descriptions, and ranks candidates via CLI or REST API.",
}

var (
	configPath  string
	catalogPath string
	skillTarget int
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON config file")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Path to the skill catalog CSV (default data/skills.csv)")
	rootCmd.PersistentFlags().IntVar(&skillTarget, "skill-target", 0, "Skill count at which the skills score saturates (0 uses the default)")
}

// loadSettings resolves the effective configuration. Flags win over the
// config file, the file wins over the SKILL_CATALOG environment variable,
// and built-in defaults fill whatever is left.
func loadSettings() (config.Config, error) {
	settings := config.Config{
		Catalog:     catalogPath,
		SkillTarget: skillTarget,
	}

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		if err := fileCfg.Validate(); err != nil {
			return config.Config{}, err
		}
		settings = settings.MergeWithDefaults(*fileCfg)
	}

	if settings.Catalog == "" {
		settings.Catalog = os.Getenv("SKILL_CATALOG")
	}

	return settings.MergeWithDefaults(config.Config{
		Catalog: "data/skills.csv",
		Port:    8080,
	}), nil
}

// newAnalyzer loads the effective settings and builds the analyzer shared
// by all commands.
func newAnalyzer() (*analyzer.Analyzer, config.Config, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, config.Config{}, err
	}

	cat, err := catalog.Load(settings.Catalog)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("failed to load skill catalog: %w", err)
	}

	var opts []ats.Option
	if settings.SkillTarget > 0 {
		opts = append(opts, ats.WithSkillTarget(settings.SkillTarget))
	}

	a, err := analyzer.New(cat, opts...)
	if err != nil {
		return nil, config.Config{}, err
	}
	return a, settings, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
