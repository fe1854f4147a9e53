package cli

import (
	"github.com/robyngit/convert-metacatui-es6/internal/convert"
	"github.com/robyngit/convert-metacatui-es6/internal/utils"
)

// diagnosticSink routes engine diagnostics into the diagnostic system,
// so stripped spans show up in verbose runs and pairing anomalies as
// warnings.
type diagnosticSink struct {
	diags *utils.DiagnosticSystem
}

func newDiagnosticSink(diags *utils.DiagnosticSystem) convert.Sink {
	if diags == nil {
		return convert.NopSink{}
	}
	return diagnosticSink{diags: diags}
}

func (s diagnosticSink) Removed(kind convert.RemovalKind, span string) {
	s.diags.Verbose("removing %s: %q", kind, span)
}

func (s diagnosticSink) Warnf(format string, args ...any) {
	s.diags.Warn(format, args...)
}
