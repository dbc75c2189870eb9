package config

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Config is the optional scan configuration. A missing configuration file
// is not an error; the zero value scans with the built-in rule tables and
// the default directory exclusions.
type Config struct {
	IgnoreRules []string `json:"ignore_rules,omitempty" yaml:"ignore_rules" jsonschema:"description=IDs of rules that the scan skips"`
	ExcludeDirs []string `json:"exclude_dirs,omitempty" yaml:"exclude_dirs" jsonschema:"description=Directory names excluded from the scan in addition to the defaults"`
}

// IgnoresRule reports whether the rule ID is listed in ignore_rules.
func (c *Config) IgnoresRule(id string) bool {
	for _, r := range c.IgnoreRules {
		if r == id {
			return true
		}
	}
	return false
}

func (c *Config) validate() error {
	for _, d := range c.ExcludeDirs {
		if d == "" || strings.ContainsRune(d, '/') {
			return fmt.Errorf("exclude_dirs must be plain directory names: %q", d)
		}
	}
	return nil
}

func getConfigPath(fs afero.Fs) (string, error) {
	for _, path := range []string{".kubedep.yaml", ".github/kubedep.yaml", ".kubedep.yml", ".github/kubedep.yml"} {
		f, err := afero.Exists(fs, path)
		if err != nil {
			return "", fmt.Errorf("check if %s exists: %w", path, err)
		}
		if f {
			return path, nil
		}
	}
	return "", nil
}

type Finder struct {
	fs afero.Fs
}

func NewFinder(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

func (f *Finder) Find(configFilePath string) (string, error) {
	if configFilePath != "" {
		return configFilePath, nil
	}
	p, err := getConfigPath(f.fs)
	if err != nil {
		return "", err
	}
	return p, nil
}

type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

func (r *Reader) Read(cfg *Config, configFilePath string) error {
	if configFilePath == "" {
		return nil
	}
	f, err := r.fs.Open(configFilePath)
	if err != nil {
		return fmt.Errorf("open a configuration file: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("decode a configuration file as YAML: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return fmt.Errorf("validate the configuration: %w", err)
	}
	return nil
}
