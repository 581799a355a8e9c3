package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRunEndToEnd(t *testing.T) {
	t.Chdir(t.TempDir())

	writeFile(t, sourceCSVPath,
		"English,Chinese,Level,Unit\n"+
			"run,to, move, quickly,Basic,3\n"+
			"walk,走,Basic,1\n")
	writeFile(t, ecdictCSVPath,
		"word,translation,pos\n"+
			"run,跑,v\n"+
			"jog,慢跑,v\n")

	require.NoError(t, run())

	csvOut, err := os.ReadFile(outputCSVPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(csvOut), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "English,Chinese,Level,Unit,ecdict_zh,ecdict_pos", lines[0])
	// The ragged Chinese cell is recombined, then the dictionary columns
	// are appended.
	assert.Equal(t, `run,"to, move, quickly",Basic,3,跑,v`, lines[1])
	assert.Equal(t, "walk,走,Basic,1,,", lines[2])

	jsonOut, err := os.ReadFile(outputJSONPath)
	require.NoError(t, err)
	assert.JSONEq(t, `{"run":{"zh":"跑","pos":"v"}}`, string(jsonOut))
}

func TestRunMissingInputs(t *testing.T) {
	t.Chdir(t.TempDir())

	err := run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing source CSV")

	writeFile(t, sourceCSVPath, "English\nrun\n")
	err = run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing ECDICT CSV")

	// Nothing was written before the failures.
	_, statErr := os.Stat(outputCSVPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunConfigurationErrors(t *testing.T) {
	t.Chdir(t.TempDir())

	writeFile(t, ecdictCSVPath, "word,translation,pos\n")

	writeFile(t, sourceCSVPath, "\n  ,  \n")
	err := run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no header row")

	writeFile(t, sourceCSVPath, "Word,Meaning\nrun,跑\n")
	err = run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no "English" column`)
}
