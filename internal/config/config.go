package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultInstruments is the fixed instrument vocabulary recognized in
// sample filenames, in manifest order.
var DefaultInstruments = []string{"kick", "snare", "hihat", "clap", "crash", "open", "rim", "bell"}

// DefaultExtension is the required sample file extension. The suffix
// match is exact and case-sensitive: "KICK.WAV" does not qualify.
const DefaultExtension = ".wav"

// Config is the in-memory representation of ~/.cratedig/cratedig.yaml.
type Config struct {
	SamplesRoot  string   `yaml:"samples_root"`
	ManifestPath string   `yaml:"manifest_path"`
	BaseURL      string   `yaml:"base_url,omitempty"`
	Instruments  []string `yaml:"instruments,omitempty"`
	Extension    string   `yaml:"extension,omitempty"`
}

// CratedigDir returns the absolute path to ~/.cratedig/.
func CratedigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".cratedig"), nil
}

// ConfigPath returns the absolute path to ~/.cratedig/cratedig.yaml.
func ConfigPath() (string, error) {
	dir, err := CratedigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cratedig.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// DefaultConfig returns the default Config written on first cratedig init.
func DefaultConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return &Config{
		SamplesRoot:  filepath.Join(home, "cratedig", "samples"),
		ManifestPath: filepath.Join(home, "cratedig", "soundkits.json"),
		Instruments:  append([]string(nil), DefaultInstruments...),
		Extension:    DefaultExtension,
	}, nil
}

// Load reads and parses ~/.cratedig/cratedig.yaml.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	// Expand ~ in paths at load time.
	cfg.SamplesRoot, err = ExpandPath(cfg.SamplesRoot)
	if err != nil {
		return nil, err
	}
	cfg.ManifestPath, err = ExpandPath(cfg.ManifestPath)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Save marshals cfg and writes it to ~/.cratedig/cratedig.yaml.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if len(c.Instruments) == 0 {
		c.Instruments = append([]string(nil), DefaultInstruments...)
	}
	if c.Extension == "" {
		c.Extension = DefaultExtension
	}
}
