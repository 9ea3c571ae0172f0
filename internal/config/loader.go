package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/rgbhsl"
	projectConfigDir = ".rgbhsl"
	configFileName   = "config.yaml"
)

// LoadConfig loads the rgbhsl configuration by layering default, user, and project settings.
func LoadConfig() (RgbhslConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else {
		config, err = overlayFromFile(config, userConfigPath)
		if err != nil {
			return RgbhslConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else {
		config, err = overlayFromFile(config, projectConfigPath)
		if err != nil {
			return RgbhslConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
	}

	if err := config.Validate(); err != nil {
		return RgbhslConfig{}, err
	}
	return config, nil
}

// LoadConfigFromPath loads the defaults overlaid with a single file. Unlike
// the layered lookup, the file must exist.
func LoadConfigFromPath(path string) (RgbhslConfig, error) {
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return RgbhslConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	config := mergeConfigs(GetDefaultConfig(), overlay)
	if err := config.Validate(); err != nil {
		return RgbhslConfig{}, err
	}
	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

func overlayFromFile(base RgbhslConfig, path string) (RgbhslConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return base, err
	}
	return mergeConfigs(base, overlay), nil
}

// loadConfigFromFile loads an RgbhslConfig from a YAML file.
func loadConfigFromFile(filePath string) (RgbhslConfig, error) {
	var config RgbhslConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return RgbhslConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return RgbhslConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config.
func mergeConfigs(base, overlay RgbhslConfig) RgbhslConfig {
	merged := base

	if overlay.GlobalSettings.LogLevel != "" {
		merged.GlobalSettings.LogLevel = overlay.GlobalSettings.LogLevel
	}

	if overlay.Tester.DefaultBrightness != 0 {
		merged.Tester.DefaultBrightness = overlay.Tester.DefaultBrightness
	}
	if overlay.Tester.HueUnit != "" {
		merged.Tester.HueUnit = overlay.Tester.HueUnit
	}
	if overlay.Tester.Precision != 0 {
		merged.Tester.Precision = overlay.Tester.Precision
	}

	if overlay.Server.Transport != "" {
		merged.Server.Transport = overlay.Server.Transport
	}
	if overlay.Server.Host != "" {
		merged.Server.Host = overlay.Server.Host
	}
	if overlay.Server.Port != 0 {
		merged.Server.Port = overlay.Server.Port
	}

	return merged
}

// Validate reports the first invalid setting.
func (c RgbhslConfig) Validate() error {
	switch c.Tester.HueUnit {
	case HueUnitSextant, HueUnitDegrees:
	default:
		return fmt.Errorf("invalid tester.hueUnit %q (want %q or %q)", c.Tester.HueUnit, HueUnitSextant, HueUnitDegrees)
	}
	if c.Tester.Precision < 0 || c.Tester.Precision > 8 {
		return fmt.Errorf("invalid tester.precision %d (want 0-8)", c.Tester.Precision)
	}
	switch c.Server.Transport {
	case TransportStdio, TransportSSE:
	default:
		return fmt.Errorf("invalid server.transport %q (want %q or %q)", c.Server.Transport, TransportStdio, TransportSSE)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}
	return nil
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
