package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitEnvironmentVariables(t *testing.T) {
	t.Run("loads the development file", func(t *testing.T) {
		projectsDir := t.TempDir()
		envDir := filepath.Join(projectsDir, "optionshq", "src")
		require.NoError(t, os.MkdirAll(envDir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(envDir, DEV_ENV_FILENAME), []byte("OPTIONSHQ_TEST_VALUE=from-file\n"), 0644))

		t.Setenv("ENV", "")
		t.Setenv("GO_ENV", "")
		t.Setenv("PROJECTS_DIR", projectsDir)
		t.Setenv("OPTIONSHQ_TEST_VALUE", "")
		os.Unsetenv("OPTIONSHQ_TEST_VALUE")

		require.NoError(t, InitEnvironmentVariables())

		value, err := GetEnv("OPTIONSHQ_TEST_VALUE")
		require.NoError(t, err)
		assert.Equal(t, "from-file", value)
	})

	t.Run("requires PROJECTS_DIR outside production", func(t *testing.T) {
		t.Setenv("ENV", "")
		t.Setenv("PROJECTS_DIR", "")

		assert.Error(t, InitEnvironmentVariables())
	})

	t.Run("production skips the file", func(t *testing.T) {
		t.Setenv("ENV", "production")
		t.Setenv("PROJECTS_DIR", "")

		assert.NoError(t, InitEnvironmentVariables())
	})
}

func TestGetEnv(t *testing.T) {
	t.Setenv("OPTIONSHQ_PRESENT", "1")
	t.Setenv("OPTIONSHQ_EMPTY", "")

	value, err := GetEnv("OPTIONSHQ_PRESENT")
	require.NoError(t, err)
	assert.Equal(t, "1", value)

	_, err = GetEnv("OPTIONSHQ_EMPTY")
	assert.Error(t, err)

	assert.Equal(t, "fallback", GetEnvOrDefault("OPTIONSHQ_EMPTY", "fallback"))
}
