// Package convert implements the AMD-to-ES-module conversion engine:
// it locates the define() dependency-injection header and the trailing
// export expression in a source file, maps dependency paths to bound
// parameter names, and re-emits equivalent import/export statements
// while preserving the untouched module body verbatim.
package convert

import (
	"strings"

	"github.com/robyngit/convert-metacatui-es6/internal/models"
)

// Diagnostic strings recorded in ConversionResult.Errors. Each starts
// with a stable code so reports can be filtered without string parsing.
const (
	DiagHeaderNotFound         = "HeaderNotFound: no define statement found"
	DiagFooterNotFound         = "FooterNotFound: no return statement found"
	DiagImportSynthesisFailure = "ImportSynthesisFailure"
	DiagExportSynthesisFailure = "ExportSynthesisFailure"
)

// Converter sequences the conversion stages for one file. Conversions
// are pure functions of the source text; a single Converter can be
// reused across files in any order.
type Converter struct {
	headers *HeaderExtractor
	footers *FooterExtractor
	imports *ImportSynthesizer
}

// NewConverter builds a converter that reports matching diagnostics to
// sink. A nil sink discards them.
func NewConverter(sink Sink) *Converter {
	if sink == nil {
		sink = NopSink{}
	}
	return &Converter{
		headers: NewHeaderExtractor(sink),
		footers: NewFooterExtractor(),
		imports: NewImportSynthesizer(sink),
	}
}

// Convert runs the full pipeline over one source unit. Every stage
// failure is recorded as a diagnostic and the remaining stages keep
// going, so a result is produced for every input, however malformed.
func (c *Converter) Convert(unit models.SourceUnit) models.ConversionResult {
	result := models.ConversionResult{
		Path:     unit.Path,
		Category: unit.Category,
		Theme:    unit.Theme,
	}
	text := unit.RawText

	if header := c.headers.Find(text); header == nil {
		result.Errors = append(result.Errors, DiagHeaderNotFound)
	} else {
		result.DependencyPaths = header.DependencyPaths
		result.ParameterNames = header.ParameterNames

		imports := c.imports.Synthesize(header.DependencyPaths, header.ParameterNames)
		result.IgnoredDependencies = imports.IgnoredDependencies
		result.IgnoredParameters = imports.IgnoredParameters

		text = strings.Replace(text, header.FullSpan, "", 1)
		text = imports.Text() + text
	}

	footer, rewritten := c.footers.Find(text)
	if footer == nil {
		result.Errors = append(result.Errors, DiagFooterNotFound)
	} else {
		text = rewritten
		if footer.FullSpan != "" {
			text = strings.Replace(text, footer.FullSpan, "", 1)
		}
		export, err := SynthesizeExport(footer.ExportName)
		if err != nil {
			result.Errors = append(result.Errors, DiagExportSynthesisFailure+": "+err.Error())
		} else {
			result.ExportName = footer.ExportName
			text += export
		}
	}

	result.NewText = text
	return result
}
