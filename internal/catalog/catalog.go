// Package catalog loads the static skill catalog and exposes read-only lookups.
//
// The catalog is loaded once at process start and never mutated afterward, so
// it is safe for unbounded concurrent readers without locking.
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Catalog is an insertion-ordered, read-only mapping of normalized skill
// name to its record. Iteration order matters: skill extraction results are
// reported in catalog order for deterministic output.
type Catalog struct {
	keys    []string                     // Normalized keys in file order
	records map[string]types.SkillRecord // key -> record (Name keeps the display form)
}

// Key normalizes a skill name into a catalog lookup key: lowercased with
// runs of whitespace collapsed to single spaces.
func Key(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// Load reads a skill catalog from a CSV file with columns skill, category, weight.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open skill catalog %s: %w", path, err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load skill catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse reads CSV catalog data from r. The first row must be a header naming
// the skill, category and weight columns in any order. Malformed rows fail
// the load; the catalog is never partially populated on error.
func Parse(r io.Reader) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog header: %w", err)
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"skill", "category", "weight"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("catalog header missing %q column", required)
		}
	}

	c := &Catalog{records: make(map[string]types.SkillRecord)}

	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("catalog row %d: %w", line, err)
		}

		name := strings.TrimSpace(row[cols["skill"]])
		category := strings.TrimSpace(row[cols["category"]])
		if name == "" {
			return nil, fmt.Errorf("catalog row %d: empty skill name", line)
		}

		weight, err := strconv.ParseFloat(strings.TrimSpace(row[cols["weight"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("catalog row %d: invalid weight for %q: %w", line, name, err)
		}
		if weight < 0 || weight > 1 {
			return nil, fmt.Errorf("catalog row %d: weight for %q must be in [0,1], got %v", line, name, weight)
		}

		key := Key(name)
		if _, exists := c.records[key]; exists {
			return nil, fmt.Errorf("catalog row %d: duplicate skill %q", line, name)
		}

		c.keys = append(c.keys, key)
		c.records[key] = types.SkillRecord{
			Name:     name,
			Category: category,
			Weight:   weight,
		}
	}

	return c, nil
}

// Len returns the number of skills in the catalog.
func (c *Catalog) Len() int {
	return len(c.keys)
}

// Keys returns the normalized catalog keys in insertion order.
// The returned slice must not be modified.
func (c *Catalog) Keys() []string {
	return c.keys
}

// Lookup returns the record for a skill name (normalized before lookup).
func (c *Catalog) Lookup(name string) (types.SkillRecord, bool) {
	rec, ok := c.records[Key(name)]
	return rec, ok
}

// Records returns all catalog records in insertion order.
func (c *Catalog) Records() []types.SkillRecord {
	out := make([]types.SkillRecord, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.records[k])
	}
	return out
}

// Categories returns category name -> skill count over the whole catalog.
func (c *Catalog) Categories() map[string]int {
	counts := make(map[string]int)
	for _, k := range c.keys {
		counts[c.records[k].Category]++
	}
	return counts
}

// CategorySkills returns the normalized keys of all skills in a category,
// in catalog order.
func (c *Catalog) CategorySkills(category string) []string {
	var out []string
	for _, k := range c.keys {
		if c.records[k].Category == category {
			out = append(out, k)
		}
	}
	return out
}
