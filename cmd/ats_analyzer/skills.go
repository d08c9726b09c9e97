package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List the skill catalog",
	RunE:  runSkills,
}

var skillsCategory string

func init() {
	skillsCmd.Flags().StringVarP(&skillsCategory, "category", "c", "", "Only list skills in this category")
	rootCmd.AddCommand(skillsCmd)
}

func runSkills(_ *cobra.Command, _ []string) error {
	a, _, err := newAnalyzer()
	if err != nil {
		return fmt.Errorf("failed to create analyzer: %w", err)
	}
	cat := a.Catalog()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	if skillsCategory != "" {
		names := cat.CategorySkills(skillsCategory)
		if len(names) == 0 {
			return fmt.Errorf("no skills in category %q", skillsCategory)
		}
		for _, name := range names {
			_, _ = fmt.Fprintf(w, "%s\n", name)
		}
		return nil
	}

	_, _ = fmt.Fprintln(w, "SKILL\tCATEGORY\tWEIGHT")
	records := cat.Records()
	sort.SliceStable(records, func(i, j int) bool { return records[i].Weight > records[j].Weight })
	for _, record := range records {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%.2f\n", record.Name, record.Category, record.Weight)
	}
	return nil
}
