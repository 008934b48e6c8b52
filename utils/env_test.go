package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := `
# converter settings
WORDMCP_TEST_SOFFICE = /usr/bin/soffice
WORDMCP_TEST_QUOTED="quoted value"

WORDMCP_TEST_SINGLE='single'
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	t.Setenv("WORDMCP_TEST_SOFFICE", "")
	t.Setenv("WORDMCP_TEST_QUOTED", "")
	t.Setenv("WORDMCP_TEST_SINGLE", "")

	require.NoError(t, LoadEnvFile(path))

	assert.Equal(t, "/usr/bin/soffice", os.Getenv("WORDMCP_TEST_SOFFICE"))
	assert.Equal(t, "quoted value", os.Getenv("WORDMCP_TEST_QUOTED"))
	assert.Equal(t, "single", os.Getenv("WORDMCP_TEST_SINGLE"))
}

func TestLoadEnvFileMissing(t *testing.T) {
	err := LoadEnvFile(filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, err)
}

func TestLoadEnvFileMalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("NOT_A_PAIR\n"), 0644))

	err := LoadEnvFile(path)
	assert.ErrorContains(t, err, "invalid env line format")
}
