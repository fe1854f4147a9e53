// Package report serializes the outcome of a conversion run: one
// tabular record per attempted file plus an aggregate run summary.
package report

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/robyngit/convert-metacatui-es6/internal/models"
)

// Record is one row of the conversion record file. Every attempted
// file gets a row, converted or not, so the operator can judge which
// files need manual follow-up.
type Record struct {
	Path                string
	Category            string
	Theme               string
	NumDependencies     int
	NumParameters       int
	Dependencies        []string
	Parameters          []string
	IgnoredDependencies []string
	IgnoredParameters   []string
	Errors              []string
	ExportName          string
}

// FromResult builds the record for one conversion result. Paths are
// recorded relative to root when possible.
func FromResult(root string, result models.ConversionResult) Record {
	path := result.Path
	if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
		path = filepath.ToSlash(rel)
	}
	return Record{
		Path:                path,
		Category:            result.Category,
		Theme:               result.Theme,
		NumDependencies:     len(result.DependencyPaths),
		NumParameters:       len(result.ParameterNames),
		Dependencies:        result.DependencyPaths,
		Parameters:          result.ParameterNames,
		IgnoredDependencies: result.IgnoredDependencies,
		IgnoredParameters:   result.IgnoredParameters,
		Errors:              result.Errors,
		ExportName:          result.ExportName,
	}
}

// Clean reports whether the file converted without diagnostics.
func (r Record) Clean() bool {
	return len(r.Errors) == 0
}

// Summary aggregates a whole run for the operator.
type Summary struct {
	RunID      string         `yaml:"run_id"`
	StartedAt  time.Time      `yaml:"started_at"`
	FinishedAt time.Time      `yaml:"finished_at"`
	TotalFiles int            `yaml:"total_files"`
	Converted  int            `yaml:"converted"`
	WithErrors int            `yaml:"with_errors"`
	ByCategory map[string]int `yaml:"by_category"`
	ByTheme    map[string]int `yaml:"by_theme,omitempty"`
}

// NewSummary aggregates records into a run summary with a fresh run id.
func NewSummary(records []Record, started, finished time.Time) Summary {
	summary := Summary{
		RunID:      uuid.NewString(),
		StartedAt:  started,
		FinishedAt: finished,
		TotalFiles: len(records),
		ByCategory: make(map[string]int),
		ByTheme:    make(map[string]int),
	}
	for _, record := range records {
		summary.ByCategory[record.Category]++
		if record.Theme != "" {
			summary.ByTheme[record.Theme]++
		}
		if record.Clean() {
			summary.Converted++
		} else {
			summary.WithErrors++
		}
	}
	return summary
}
