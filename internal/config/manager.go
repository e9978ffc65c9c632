package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manager loads and saves the YAML configuration file
type Manager struct {
	configFilePath string
}

// NewManager creates a Manager for the file at path
func NewManager(path string) *Manager {
	return &Manager{configFilePath: path}
}

// Path returns the configuration file path
func (cm *Manager) Path() string {
	return cm.configFilePath
}

// LoadConfig loads the existing configuration or creates and loads default config if not found
func (cm *Manager) LoadConfig() (Config, error) {
	defaultConfig := Default()

	if cm.configFilePath == "" {
		return defaultConfig, fmt.Errorf("config file path not set")
	}

	configFile, err := os.ReadFile(cm.configFilePath)
	if os.IsNotExist(err) || (err == nil && len(configFile) == 0) {
		if err := cm.SaveConfig(defaultConfig); err != nil {
			return Config{}, fmt.Errorf("failed to save default config: %w", err)
		}
		return defaultConfig, nil
	}
	if err != nil {
		return defaultConfig, fmt.Errorf("failed to read config file: %w", err)
	}

	// unset keys keep their defaults
	cfg := defaultConfig
	if err := yaml.Unmarshal(configFile, &cfg); err != nil {
		return defaultConfig, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to disk
func (cm *Manager) SaveConfig(cfg Config) error {
	if cm.configFilePath == "" {
		return fmt.Errorf("config file path not set")
	}

	yamlData, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(cm.configFilePath, yamlData, 0644)
}
