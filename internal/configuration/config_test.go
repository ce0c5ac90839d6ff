package configuration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	config, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), config)
	assert.Equal(t, time.Duration(0), config.CommandSettings.Timeout)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration error")
}

func TestLoad_ReadsFileAndFillsGaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
scanner:
  project_dirs: ["./web", "./admin"]
commands:
  npm: /usr/local/bin/npm
  timeout: 30s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"./web", "./admin"}, config.ScannerSettings.ProjectDirs)
	assert.Equal(t, "/usr/local/bin/npm", config.CommandSettings.Npm)
	assert.Equal(t, "next", config.CommandSettings.Next)
	assert.Equal(t, 30*time.Second, config.CommandSettings.Timeout)
	assert.Equal(t, uint32(5), config.CommandSettings.FailureThreshold)
	assert.Equal(t, "./export", config.ExportSettings.Directory)
}

func TestLoad_MalformedYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scanner: [unclosed"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error unmarshalling configuration")
}
