package pubspec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the manifest file every package carries at its root.
const FileName = "pubspec.yaml"

// Pubspec represents the fields of pubspec.yaml that warren inspects
type Pubspec struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description,omitempty"`
	Version     string          `yaml:"version,omitempty"`
	Flutter     *FlutterSection `yaml:"flutter,omitempty"`
}

// FlutterSection holds the flutter block of the manifest
type FlutterSection struct {
	Plugin *PluginSection `yaml:"plugin,omitempty"`
}

// PluginSection declares the plugin's platform support
type PluginSection struct {
	Platforms  map[string]PlatformDetails `yaml:"platforms,omitempty"`
	Implements string                     `yaml:"implements,omitempty"` // Set by platform packages of a federated plugin
}

// PlatformDetails carries per-platform plugin registration data.
// warren only cares about which platform keys are present; the fields
// are parsed so that valid manifests round-trip without loss.
type PlatformDetails struct {
	Package     string `yaml:"package,omitempty"`
	PluginClass string `yaml:"pluginClass,omitempty"`
	FileName    string `yaml:"fileName,omitempty"`
}

// IsPlugin reports whether the manifest declares a flutter plugin section
func (p *Pubspec) IsPlugin() bool {
	return p.Flutter != nil && p.Flutter.Plugin != nil
}

// Platforms returns the declared platform map, or nil when the package
// is not a plugin or declares no platforms
func (p *Pubspec) Platforms() map[string]PlatformDetails {
	if !p.IsPlugin() {
		return nil
	}
	return p.Flutter.Plugin.Platforms
}

// Load reads and parses the pubspec.yaml at the specified path
func Load(path string) (*Pubspec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pubspec: %w", err)
	}

	var spec Pubspec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse pubspec: %w", err)
	}

	// Required: name
	if spec.Name == "" {
		return nil, fmt.Errorf("invalid pubspec: name is required")
	}

	return &spec, nil
}
