package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"groovylang/internal/model"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand 执行根命令并返回 stdout 内容。
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	rootCmd := newRootCmd("test")
	var out bytes.Buffer
	var errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func writeFixtureFile(t *testing.T, path string, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)

	assert.Equal(t, "groovylang version test\n", out)
}

func TestVersionCommand_IgnoresSettingsFile(t *testing.T) {
	out, err := runCommand(t, "version", "--settings", filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "groovylang version test\n", out)
}

func TestLanguageCommand_Defaults(t *testing.T) {
	out, err := runCommand(t, "language")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "language_default", []byte(out))
}

func TestLanguageCommand_SuffixFlag(t *testing.T) {
	out, err := runCommand(t, "language", "--suffix", "gvy, groovy")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "language_suffix_flag", []byte(out))
}

func TestSuffixesCommand_Defaults(t *testing.T) {
	out, err := runCommand(t, "suffixes")
	require.NoError(t, err)

	assert.Equal(t, ".groovy\n", out)
}

func TestSuffixesCommand_BlankFlagFallsBackToDefault(t *testing.T) {
	out, err := runCommand(t, "suffixes", "--suffix", " ")
	require.NoError(t, err)

	assert.Equal(t, ".groovy\n", out)
}

func TestSuffixesCommand_QuotesAreKeptVerbatim(t *testing.T) {
	out, err := runCommand(t, "suffixes", "--suffix", "\"gvy", "--suffix", "g\"vy,groovy")
	require.NoError(t, err)

	assert.Equal(t, ".\"gvy\n.g\"vy\n.groovy\n", out)
}

func TestSuffixesCommand_SettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	writeFixtureFile(t, path, "sonar.groovy.file.suffixes:\n  - gvy\n  - \" .groovy \"\n  - gvy\n")

	out, err := runCommand(t, "suffixes", "grvy", "--settings", path)
	require.NoError(t, err)

	assert.Equal(t, ".gvy\n.groovy\n.gvy\n", out)
}

func TestSuffixesCommand_FlagOverridesSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	writeFixtureFile(t, path, "sonar.groovy.file.suffixes: gvy\n")

	out, err := runCommand(t, "suffixes", "--settings", path, "--suffix", "gsh")
	require.NoError(t, err)

	assert.Equal(t, ".gsh\n", out)
}

func TestSuffixesCommand_UnknownLanguage(t *testing.T) {
	_, err := runCommand(t, "suffixes", "java")

	require.EqualError(t, err, "unknown language key: java")
}

func TestRootCommand_MissingSettingsFile(t *testing.T) {
	_, err := runCommand(t, "suffixes", "--settings", filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRootCommand_RejectsLogFormat(t *testing.T) {
	_, err := runCommand(t, "language", "--log-format", "xml")

	require.EqualError(t, err, "unsupported log format, allowed values: text, json")
}

func TestClassifyCommand_JSON(t *testing.T) {
	projectDir := t.TempDir()
	writeFixtureFile(t, filepath.Join(projectDir, "src", "App.groovy"), "class App {}")
	writeFixtureFile(t, filepath.Join(projectDir, "src", "Tool.gvy"), "x = 1")
	writeFixtureFile(t, filepath.Join(projectDir, "build", "Gen.groovy"), "class Gen {}")

	outputPath := filepath.Join(t.TempDir(), "out", "result.json")
	_, err := runCommand(t,
		"classify", projectDir,
		"--suffix", "groovy,gvy",
		"--exclude", "build/**",
		"--format", "json",
		"--output", outputPath,
		"--workers", "2",
	)
	require.NoError(t, err)

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	var result model.ClassifyResult
	require.NoError(t, json.Unmarshal(content, &result))

	require.Len(t, result.Files, 2)
	assert.Equal(t, "src/App.groovy", result.Files[0].Path)
	assert.Equal(t, "src/Tool.gvy", result.Files[1].Path)
	assert.Equal(t, int64(1), result.Total.Excluded)
	require.Len(t, result.Languages, 1)
	assert.Equal(t, []string{".groovy", ".gvy"}, result.Languages[0].Suffixes)
}

func TestClassifyCommand_Table(t *testing.T) {
	projectDir := t.TempDir()
	writeFixtureFile(t, filepath.Join(projectDir, "App.groovy"), "class App {}")

	out, err := runCommand(t, "classify", projectDir)
	require.NoError(t, err)

	assert.Contains(t, out, "App.groovy")
	assert.Contains(t, out, "grvy")
}

func TestClassifyCommand_FlagValidation(t *testing.T) {
	dir := t.TempDir()

	_, err := runCommand(t, "classify", dir, "--format", "xml")
	require.EqualError(t, err, "unsupported format, allowed values: table, json")

	_, err = runCommand(t, "classify", dir, "--workers", "0")
	require.EqualError(t, err, "workers must be greater than 0")

	_, err = runCommand(t, "classify", dir, "--exclude", "src/[a-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid exclude pattern")
}
