package report

import (
	"os"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"github.com/robyngit/convert-metacatui-es6/internal/utils"
)

// recordHeader is the column order of the record file.
var recordHeader = table.Row{
	"path", "category", "theme",
	"num_dependencies", "num_parameters",
	"dependencies", "parameters",
	"ignored_dependencies", "ignored_parameters",
	"errors", "export_name",
}

// WriteCSV persists every record as one CSV row at path.
func WriteCSV(path string, records []Record) error {
	tw := table.NewWriter()
	// The record file is machine-read; keep header names as written.
	tw.Style().Format.Header = text.FormatDefault
	tw.AppendHeader(recordHeader)
	for _, record := range records {
		tw.AppendRow(table.Row{
			record.Path,
			record.Category,
			record.Theme,
			record.NumDependencies,
			record.NumParameters,
			joinCell(record.Dependencies),
			joinCell(record.Parameters),
			joinCell(record.IgnoredDependencies),
			joinCell(record.IgnoredParameters),
			joinCell(record.Errors),
			record.ExportName,
		})
	}

	if err := os.WriteFile(path, []byte(tw.RenderCSV()+"\n"), 0644); err != nil {
		return utils.WrapWriteError("record file "+path, err)
	}
	return nil
}

// RenderSummaryTable renders a per-category console table: total
// files, cleanly converted, and files carrying diagnostics.
func RenderSummaryTable(records []Record) string {
	totals := make(map[string]int)
	clean := make(map[string]int)
	for _, record := range records {
		totals[record.Category]++
		if record.Clean() {
			clean[record.Category]++
		}
	}

	categories := make([]string, 0, len(totals))
	for category := range totals {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"category", "files", "converted", "with diagnostics"})
	for _, category := range categories {
		tw.AppendRow(table.Row{
			category,
			totals[category],
			clean[category],
			totals[category] - clean[category],
		})
	}
	tw.AppendFooter(table.Row{"total", len(records), countClean(records), len(records) - countClean(records)})
	return tw.Render()
}

// WriteSummary persists the run summary as YAML at path.
func WriteSummary(path string, summary Summary) error {
	data, err := yaml.Marshal(summary)
	if err != nil {
		return utils.WrapWriteError("run summary", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return utils.WrapWriteError("run summary "+path, err)
	}
	return nil
}

func countClean(records []Record) int {
	n := 0
	for _, record := range records {
		if record.Clean() {
			n++
		}
	}
	return n
}

// joinCell flattens a list value into one CSV cell.
func joinCell(values []string) string {
	return strings.Join(values, "; ")
}
