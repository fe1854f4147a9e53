package convert

import (
	"fmt"
	"path"
	"strings"

	"github.com/robyngit/convert-metacatui-es6/internal/models"
)

// textPluginPrefix marks a dependency as a non-script text asset loaded
// through the RequireJS text plugin.
const textPluginPrefix = "text!"

// textAssetExtensions is the set of extensions treated as text assets.
var textAssetExtensions = map[string]struct{}{
	".js":   {},
	".html": {},
	".css":  {},
	".json": {},
	".txt":  {},
}

// ImportSet holds the synthesized import statements for one file plus
// the dependencies and parameters that could not be paired.
type ImportSet struct {
	Statements          []models.ImportStatement
	IgnoredDependencies []string
	IgnoredParameters   []string
}

// Text renders the statements as one import line per pair, in the
// original dependency order.
func (s *ImportSet) Text() string {
	var b strings.Builder
	for _, stmt := range s.Statements {
		fmt.Fprintf(&b, "import %s from '%s';\n", stmt.ParameterName, stmt.ImportPath)
	}
	return b.String()
}

// ImportSynthesizer pairs dependency paths with parameter names
// positionally and emits import statements for the matched pairs.
type ImportSynthesizer struct {
	sink Sink
}

// NewImportSynthesizer returns a synthesizer reporting pairing
// anomalies to sink.
func NewImportSynthesizer(sink Sink) *ImportSynthesizer {
	if sink == nil {
		sink = NopSink{}
	}
	return &ImportSynthesizer{sink: sink}
}

// Synthesize walks both sequences up to the longer length. Indices
// where one side is exhausted produce no statement; the leftover value
// is recorded on its own ignored list instead. A mismatched file still
// yields a correct import for every matched pair.
func (s *ImportSynthesizer) Synthesize(dependencies, parameters []string) ImportSet {
	if len(dependencies) != len(parameters) {
		s.sink.Warnf("number of dependencies and parameters do not match: %d vs %d",
			len(dependencies), len(parameters))
	}

	var set ImportSet
	length := max(len(dependencies), len(parameters))
	for i := 0; i < length; i++ {
		switch {
		case i >= len(dependencies):
			s.sink.Warnf("parameter %s has no dependency", parameters[i])
			set.IgnoredParameters = append(set.IgnoredParameters, parameters[i])
		case i >= len(parameters):
			s.sink.Warnf("dependency %s has no parameter", dependencies[i])
			set.IgnoredDependencies = append(set.IgnoredDependencies, dependencies[i])
		default:
			set.Statements = append(set.Statements, models.ImportStatement{
				ParameterName: parameters[i],
				ImportPath:    cleanImportPath(dependencies[i]),
			})
		}
	}
	return set
}

// cleanImportPath strips the loader-plugin prefix from text-asset
// dependencies. Paths without a recognized text extension pass through
// untouched, prefix included.
func cleanImportPath(dep string) string {
	if _, ok := textAssetExtensions[path.Ext(dep)]; ok {
		dep = strings.TrimPrefix(dep, textPluginPrefix)
	}
	return dep
}
