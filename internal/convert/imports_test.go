package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportSynthesizer_Synthesize(t *testing.T) {
	tests := []struct {
		name         string
		dependencies []string
		parameters   []string
		wantText     string
		wantIgnDeps  []string
		wantIgnParam []string
	}{
		{
			name:         "ordering follows dependency order",
			dependencies: []string{"../A.js", "./B.js"},
			parameters:   []string{"A", "B"},
			wantText:     "import A from '../A.js';\nimport B from './B.js';\n",
		},
		{
			name:         "text prefix dropped from asset path only",
			dependencies: []string{"text!templates/main.html", "jquery"},
			parameters:   []string{"MainTemplate", "$"},
			wantText:     "import MainTemplate from 'templates/main.html';\nimport $ from 'jquery';\n",
		},
		{
			name:         "prefix kept when extension is not a text asset",
			dependencies: []string{"text!shaders/main.glsl"},
			parameters:   []string{"Shader"},
			wantText:     "import Shader from 'text!shaders/main.glsl';\n",
		},
		{
			name:         "unmatched parameter is ignored",
			dependencies: []string{"./A.js"},
			parameters:   []string{"A", "B"},
			wantText:     "import A from './A.js';\n",
			wantIgnParam: []string{"B"},
		},
		{
			name:         "unmatched dependency is ignored",
			dependencies: []string{"./A.js", "./B.js", "./C.js"},
			parameters:   []string{"A"},
			wantText:     "import A from './A.js';\n",
			wantIgnDeps:  []string{"./B.js", "./C.js"},
		},
		{
			name:         "empty input",
			dependencies: nil,
			parameters:   nil,
			wantText:     "",
		},
	}

	synthesizer := NewImportSynthesizer(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := synthesizer.Synthesize(tt.dependencies, tt.parameters)

			assert.Equal(t, tt.wantText, set.Text())
			assert.Equal(t, tt.wantIgnDeps, set.IgnoredDependencies)
			assert.Equal(t, tt.wantIgnParam, set.IgnoredParameters)
		})
	}
}

func TestImportSynthesizer_WarnsOnMismatch(t *testing.T) {
	sink := &RecordingSink{}
	synthesizer := NewImportSynthesizer(sink)

	set := synthesizer.Synthesize([]string{"./A.js"}, []string{"A", "B"})

	require.Len(t, set.Statements, 1)
	require.Len(t, sink.Warnings, 2)
	assert.Contains(t, sink.Warnings[0], "do not match")
	assert.Contains(t, sink.Warnings[1], "parameter B has no dependency")
}
