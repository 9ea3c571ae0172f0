package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Helper function to create a temporary config file
func createTempConfigFile(t *testing.T, dir string, content RgbhslConfig) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	tempFilePath := filepath.Join(dir, configFileName)
	data, err := yaml.Marshal(&content)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(tempFilePath, data, 0644))
	return tempFilePath
}

// mockPaths points both config layers into tempDir and restores them on cleanup.
func mockPaths(t *testing.T, tempDir string) {
	t.Helper()
	originalUser := getUserConfigPath
	originalProject := getProjectConfigPath
	t.Cleanup(func() {
		getUserConfigPath = originalUser
		getProjectConfigPath = originalProject
	})

	getUserConfigPath = func() (string, error) {
		return filepath.Join(tempDir, userConfigDir, configFileName), nil
	}
	getProjectConfigPath = func() (string, error) {
		return filepath.Join(tempDir, projectConfigDir, configFileName), nil
	}
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	mockPaths(t, t.TempDir())

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loaded)
	assert.Equal(t, uint8(255), loaded.Tester.DefaultBrightness)
	assert.Equal(t, HueUnitSextant, loaded.Tester.HueUnit)
}

func TestLoadConfig_UserOverride(t *testing.T) {
	tempDir := t.TempDir()
	mockPaths(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, userConfigDir), RgbhslConfig{
		GlobalSettings: GlobalSettings{LogLevel: "debug"},
		Tester:         TesterConfig{DefaultBrightness: 128, HueUnit: HueUnitDegrees},
	})

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", loaded.GlobalSettings.LogLevel)
	assert.Equal(t, uint8(128), loaded.Tester.DefaultBrightness)
	assert.Equal(t, HueUnitDegrees, loaded.Tester.HueUnit)
	assert.Equal(t, 4, loaded.Tester.Precision, "unset precision keeps the default")
	assert.Equal(t, TransportStdio, loaded.Server.Transport)
}

func TestLoadConfig_ProjectOverridesUser(t *testing.T) {
	tempDir := t.TempDir()
	mockPaths(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, userConfigDir), RgbhslConfig{
		Tester: TesterConfig{DefaultBrightness: 128, Precision: 2},
		Server: ServerConfig{Port: 9000},
	})
	createTempConfigFile(t, filepath.Join(tempDir, projectConfigDir), RgbhslConfig{
		Tester: TesterConfig{DefaultBrightness: 64},
		Server: ServerConfig{Transport: TransportSSE},
	})

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, uint8(64), loaded.Tester.DefaultBrightness)
	assert.Equal(t, 2, loaded.Tester.Precision)
	assert.Equal(t, TransportSSE, loaded.Server.Transport)
	assert.Equal(t, 9000, loaded.Server.Port)
	assert.Equal(t, "localhost", loaded.Server.Host)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	tempDir := t.TempDir()
	mockPaths(t, tempDir)

	dir := filepath.Join(tempDir, projectConfigDir)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("tester: [unclosed"), 0644))

	_, err := LoadConfig()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "error loading project config")
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tempDir := t.TempDir()
	mockPaths(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, projectConfigDir), RgbhslConfig{
		Tester: TesterConfig{HueUnit: "radians"},
	})

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "tester.hueUnit")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RgbhslConfig)
		wantErr string
	}{
		{"defaults", func(*RgbhslConfig) {}, ""},
		{"precision too high", func(c *RgbhslConfig) { c.Tester.Precision = 9 }, "tester.precision"},
		{"unknown transport", func(c *RgbhslConfig) { c.Server.Transport = "grpc" }, "server.transport"},
		{"port out of range", func(c *RgbhslConfig) { c.Server.Port = 70000 }, "server.port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := GetDefaultConfig()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestGetUserConfigDir(t *testing.T) {
	original := osUserHomeDir
	defer func() { osUserHomeDir = original }()
	osUserHomeDir = func() (string, error) { return "/home/test", nil }

	dir, err := GetUserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/test", ".config", "rgbhsl"), dir)
}

func TestLoadConfigFromPath(t *testing.T) {
	path := createTempConfigFile(t, t.TempDir(), RgbhslConfig{
		Tester: TesterConfig{HueUnit: HueUnitDegrees},
	})

	cfg, err := LoadConfigFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, HueUnitDegrees, cfg.Tester.HueUnit)
	assert.Equal(t, uint8(255), cfg.Tester.DefaultBrightness, "unset values keep defaults")
	assert.Equal(t, TransportStdio, cfg.Server.Transport)
}

func TestLoadConfigFromPath_Missing(t *testing.T) {
	_, err := LoadConfigFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "error loading config from")
}
