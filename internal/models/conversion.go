package models

// SourceUnit represents one input file handed to the conversion engine.
// Identity is the path; the raw text is immutable once read.
type SourceUnit struct {
	Path     string // path the converted text is written back to
	Category string // discovery category (view, model, collection, ...)
	Theme    string // theme name derived from the path, empty when none
	RawText  string // original file contents
}

// HeaderMatch describes a located define() dependency-injection header.
type HeaderMatch struct {
	FullSpan        string   // exact substring of the source, removable by string replacement
	DependencyPaths []string // quoted module paths, in declaration order
	ParameterNames  []string // callback parameter names, in declaration order
}

// FooterMatch describes the located export expression at the wrapper's tail.
// FullSpan is empty when the export name was recovered through the
// class-name rewrite, in which case the tail was already consumed by the
// rewrite and there is nothing left to strip.
type FooterMatch struct {
	FullSpan   string
	ExportName string
}

// ImportStatement pairs one dependency path with the parameter bound to it.
type ImportStatement struct {
	ParameterName string
	ImportPath    string // loader-plugin prefix already stripped
}

// ConversionResult is produced exactly once per SourceUnit, even when
// every stage of the conversion failed. Downstream reporting records
// every attempted file, so a result is never discarded.
type ConversionResult struct {
	Path                string
	Category            string
	Theme               string
	NewText             string
	ExportName          string
	DependencyPaths     []string
	ParameterNames      []string
	IgnoredDependencies []string
	IgnoredParameters   []string
	Errors              []string
}

// Converted reports whether both the header and footer stages succeeded.
func (r *ConversionResult) Converted() bool {
	return len(r.Errors) == 0
}
