// Package cli coordinates a whole conversion run: snapshotting the
// source tree, discovering files, converting each one, writing results
// back, and producing the record file and run summary.
package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robyngit/convert-metacatui-es6/internal/config"
	"github.com/robyngit/convert-metacatui-es6/internal/convert"
	"github.com/robyngit/convert-metacatui-es6/internal/discover"
	"github.com/robyngit/convert-metacatui-es6/internal/report"
	"github.com/robyngit/convert-metacatui-es6/internal/snapshot"
	"github.com/robyngit/convert-metacatui-es6/internal/utils"
)

// Runner executes a conversion run end to end.
type Runner struct {
	cfg       *config.Config
	diags     *utils.DiagnosticSystem
	converter *convert.Converter
}

// NewRunner creates a runner for the given configuration. diags may be
// nil, in which case engine diagnostics are discarded.
func NewRunner(cfg *config.Config, diags *utils.DiagnosticSystem) *Runner {
	if diags == nil {
		diags = utils.NewQuietDiagnostics()
	}
	return &Runner{
		cfg:       cfg,
		diags:     diags,
		converter: convert.NewConverter(newDiagnosticSink(diags)),
	}
}

// Run performs the conversion and returns the aggregated run summary.
// Per-file conversion problems never abort the run; they surface in
// the record file and the returned summary. Only I/O and setup
// failures produce an error.
func (r *Runner) Run(ctx context.Context) (*report.Summary, error) {
	started := time.Now()

	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}

	output, err := filepath.Abs(r.cfg.Output)
	if err != nil {
		return nil, utils.WrapProcessError("output path "+r.cfg.Output, err)
	}

	r.diags.Section("Converting AMD modules to ES modules")
	r.diags.Info("Mirroring %s into %s", r.cfg.Source, output)
	if err := snapshot.Mirror(r.cfg.Source, output); err != nil {
		return nil, err
	}
	if r.cfg.Snapshot.Git {
		r.diags.Info("Committing pre-conversion baseline")
		if err := snapshot.InitRepo(ctx, output); err != nil {
			return nil, err
		}
	}

	scanner := discover.NewScanner(discover.Options{
		Ignore:       r.cfg.Discovery.ExtraIgnore,
		SkipVendored: r.cfg.Discovery.SkipVendored,
	})
	units, err := scanner.Scan(output)
	if err != nil {
		return nil, err
	}
	r.diags.Info("Found %d files to convert", len(units))

	records := make([]report.Record, 0, len(units))
	var changes []snapshot.Change
	for _, unit := range units {
		result := r.converter.Convert(unit)

		if err := os.WriteFile(unit.Path, []byte(result.NewText), 0644); err != nil {
			return nil, utils.WrapWriteError(unit.Path, err)
		}

		record := report.FromResult(output, result)
		records = append(records, record)

		if result.NewText != unit.RawText {
			changes = append(changes, snapshot.Change{
				Path:   record.Path,
				Before: unit.RawText,
				After:  result.NewText,
			})
		}

		if record.Clean() {
			r.diags.FileItem(record.Path)
		} else {
			r.diags.FileProblem(record.Path + ": " + strings.Join(record.Errors, "; "))
		}
	}

	if err := report.WriteCSV(r.cfg.Report.RecordPath, records); err != nil {
		return nil, err
	}
	summary := report.NewSummary(records, started, time.Now())
	if err := report.WriteSummary(r.cfg.Report.SummaryPath, summary); err != nil {
		return nil, err
	}
	if r.cfg.Report.Patches {
		if err := snapshot.WritePatches(r.cfg.Report.PatchDir, changes); err != nil {
			return nil, err
		}
	}

	r.diags.Section(report.RenderSummaryTable(records))
	r.diags.Summary("Conversion finished", map[string]interface{}{
		"run":         summary.RunID,
		"files":       summary.TotalFiles,
		"converted":   summary.Converted,
		"with errors": summary.WithErrors,
		"duration":    time.Since(started).Round(time.Millisecond),
	})

	return &summary, nil
}
