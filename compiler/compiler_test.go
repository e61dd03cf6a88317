package compiler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// goldenScenarios names every fixture under testdata/ with a matching
// <name>_golden directory of expected generated files.
var goldenScenarios = []string{"scenario1", "scenario2", "scenario3", "scenario6"}

func TestCompile_MatchesGoldenOutput(t *testing.T) {
	for _, name := range goldenScenarios {
		name := name
		t.Run(name, func(t *testing.T) {
			outDir := t.TempDir()
			inputFile := filepath.Join("testdata", name+".xml")

			err := Compile(inputFile, outDir, "")
			require.NoError(t, err)

			goldenDir := filepath.Join("testdata", name+"_golden")
			entries, err := os.ReadDir(goldenDir)
			require.NoError(t, err)

			for _, entry := range entries {
				want, err := os.ReadFile(filepath.Join(goldenDir, entry.Name()))
				require.NoError(t, err)
				got, err := os.ReadFile(filepath.Join(outDir, entry.Name()))
				require.NoError(t, err)
				assert.Equal(t, string(want), string(got), "mismatch in %s", entry.Name())
			}
		})
	}
}

func TestCompile_MaxFunctionTruncatesBeforeWrite(t *testing.T) {
	for _, stage := range []string{"source_reader", "scanner", "parser", "semantic_analyzer", "inter_code_gen", "code_gen"} {
		stage := stage
		t.Run(stage, func(t *testing.T) {
			outDir := t.TempDir()
			inputFile := filepath.Join("testdata", "scenario1.xml")

			err := Compile(inputFile, outDir, stage)
			require.NoError(t, err)

			entries, err := os.ReadDir(outDir)
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}

func TestCompile_SemanticErrorLeavesNoOutput(t *testing.T) {
	outDir := t.TempDir()
	inputFile := filepath.Join("testdata", "declaration_under_declaration.xml")
	require.NoError(t, os.WriteFile(inputFile, []byte(`<root><a x="1"><b y="2"/></a></root>`), 0o644))
	defer os.Remove(inputFile)

	err := Compile(inputFile, outDir, "")
	require.Error(t, err)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestIsStageName(t *testing.T) {
	assert.True(t, IsStageName("scanner"))
	assert.True(t, IsStageName("code_gen"))
	assert.False(t, IsStageName("not_a_stage"))
}
