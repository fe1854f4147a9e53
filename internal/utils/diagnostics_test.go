package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnosticSystem_LevelGating(t *testing.T) {
	tests := []struct {
		name     string
		level    DiagnosticLevel
		emit     func(d *DiagnosticSystem)
		expected bool
	}{
		{"error shown when quiet", DiagnosticError, func(d *DiagnosticSystem) { d.Error("boom") }, true},
		{"info hidden when quiet", DiagnosticError, func(d *DiagnosticSystem) { d.Info("hello") }, false},
		{"warn shown at info", DiagnosticInfo, func(d *DiagnosticSystem) { d.Warn("careful") }, true},
		{"verbose hidden at info", DiagnosticInfo, func(d *DiagnosticSystem) { d.Verbose("detail") }, false},
		{"verbose shown when verbose", DiagnosticVerbose, func(d *DiagnosticSystem) { d.Verbose("detail") }, true},
		{"debug hidden when verbose", DiagnosticVerbose, func(d *DiagnosticSystem) { d.Debug("trace") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			d := NewDiagnosticSystem(tt.level)
			d.SetOutput(&buf)

			tt.emit(d)
			assert.Equal(t, tt.expected, buf.Len() > 0)
		})
	}
}

func TestDiagnosticSystem_MessageFormat(t *testing.T) {
	var buf bytes.Buffer
	d := NewDiagnosticSystem(DiagnosticInfo)
	d.useColors = false
	d.SetOutput(&buf)

	d.Info("converted %d files", 3)
	assert.Equal(t, "[INFO] converted 3 files\n", buf.String())
}

func TestDiagnosticSystem_Summary(t *testing.T) {
	var buf bytes.Buffer
	d := NewDiagnosticSystem(DiagnosticInfo)
	d.SetOutput(&buf)

	d.Summary("Conversion finished", map[string]interface{}{"files": 12})
	assert.Contains(t, buf.String(), "Conversion finished")
	assert.Contains(t, buf.String(), "files: 12")
}
