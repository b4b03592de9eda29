package pathutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUseDir(t *testing.T) {
	dir := t.TempDir()

	UseDir(dir)

	assert.Equal(t, filepath.Join(dir, "config.yml"), ConfigFilePath())
	assert.Equal(t, filepath.Join(dir, "studytimer.db"), DBFilePath())
	assert.Equal(t, filepath.Join(dir, "log", "studytimer.log"), LogFilePath())
	assert.Equal(t, "studytimer", Dir())
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv(envName, "dev")

	dir := t.TempDir()

	UseDir(dir)

	assert.Equal(t, filepath.Join(dir, "config_dev.yml"), ConfigFilePath())
	assert.Equal(t, filepath.Join(dir, "studytimer_dev.db"), DBFilePath())
	assert.Equal(t, filepath.Join(dir, "log", "studytimer_dev.log"), LogFilePath())
}
