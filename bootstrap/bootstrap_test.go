package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/galaplate/creational/config"
	"github.com/galaplate/creational/logger"
	"github.com/galaplate/creational/merch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestInitInstallsDefaultBrand(t *testing.T) {
	t.Cleanup(func() {
		config.ResetGlobal()
		logger.SetOutput(nil)
		require.NoError(t, merch.Initialize(merch.Endava))
	})

	logsDir := filepath.Join(t.TempDir(), "logs")
	dir := writeConfig(t, map[string]string{
		"app.yaml":   "name: creational\nlog:\n  level: debug\n  dir: " + logsDir + "\n",
		"merch.yaml": "default_brand: harman\n",
	})

	require.NoError(t, Init(func(c *AppConfig) {
		c.EnvFile = ""
		c.ConfigPath = dir
	}))

	assert.Equal(t, merch.Harman, merch.Global().DefaultBrand())
	assert.Equal(t, "creational", config.ConfigString("app.name"))
	assert.FileExists(t, filepath.Join(logsDir, "app.log"))
}

func TestInitRejectsUnknownDefaultBrand(t *testing.T) {
	t.Cleanup(config.ResetGlobal)

	dir := writeConfig(t, map[string]string{
		"merch.yaml": "default_brand: acme\n",
	})

	err := Init(func(c *AppConfig) {
		c.EnvFile = ""
		c.ConfigPath = dir
		c.LogToFile = false
	})
	assert.ErrorIs(t, err, merch.ErrUnknownBrand)
}

func TestInitMissingConfigDirectory(t *testing.T) {
	err := Init(func(c *AppConfig) {
		c.EnvFile = ""
		c.ConfigPath = filepath.Join(t.TempDir(), "missing")
		c.LogToFile = false
	})
	assert.ErrorContains(t, err, "config directory does not exist")
}
