// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package envfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".env", "RD_TEST_LEVEL=debug\n# comment\nRD_TEST_ADDR=\":9090\"\nRD_TEST_KEPT=file\n")

	t.Setenv("RD_TEST_KEPT", "env")
	// Registers cleanup for variables Load sets.
	t.Setenv("RD_TEST_LEVEL", "")
	t.Setenv("RD_TEST_ADDR", "")
	require.NoError(t, os.Unsetenv("RD_TEST_LEVEL"))
	require.NoError(t, os.Unsetenv("RD_TEST_ADDR"))

	applied, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"RD_TEST_ADDR", "RD_TEST_LEVEL"}, applied)
	assert.Equal(t, "debug", os.Getenv("RD_TEST_LEVEL"))
	assert.Equal(t, ":9090", os.Getenv("RD_TEST_ADDR"))
	assert.Equal(t, "env", os.Getenv("RD_TEST_KEPT"))
}

func TestLoadMissingFile(t *testing.T) {
	applied, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	require.NoError(t, err)
	assert.Empty(t, applied)
}

func TestLoadDirectoryIsError(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}
