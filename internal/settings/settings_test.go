package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const suffixesKey = "sonar.groovy.file.suffixes"

func writeSettingsFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ScalarIsSplitOnComma(t *testing.T) {
	path := writeSettingsFile(t, "sonar.groovy.file.suffixes: \"groovy, gvy,\"\n")

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"groovy", " gvy", ""}, s.StringArray(suffixesKey))
}

func TestLoad_SequenceKeepsItems(t *testing.T) {
	path := writeSettingsFile(t, "sonar.groovy.file.suffixes:\n  - .groovy\n  - \" gvy \"\n")

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{".groovy", " gvy "}, s.StringArray(suffixesKey))
}

func TestLoad_NullValue(t *testing.T) {
	path := writeSettingsFile(t, "sonar.groovy.file.suffixes:\n")

	s, err := Load(path)
	require.NoError(t, err)

	assert.Nil(t, s.StringArray(suffixesKey))
	assert.Equal(t, []string{suffixesKey}, s.Keys())
}

func TestLoad_EmptyFile(t *testing.T) {
	s, err := Load(writeSettingsFile(t, ""))
	require.NoError(t, err)

	assert.Empty(t, s.Keys())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestParse_RejectsNonMappingDocument(t *testing.T) {
	_, err := Parse([]byte("- groovy\n- gvy\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a mapping")
}

func TestParse_RejectsNestedValues(t *testing.T) {
	_, err := Parse([]byte("sonar.groovy.file.suffixes:\n  nested: true\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), suffixesKey)
}

func TestSettings_SetAndCopy(t *testing.T) {
	s := New()
	s.Set(suffixesKey, "groovy", "gvy")

	values := s.StringArray(suffixesKey)
	values[0] = "changed"

	assert.Equal(t, []string{"groovy", "gvy"}, s.StringArray(suffixesKey))
	assert.Nil(t, s.StringArray("unknown"))
}

func TestSettings_NilReceiver(t *testing.T) {
	var s *Settings

	assert.Nil(t, s.StringArray(suffixesKey))
}
