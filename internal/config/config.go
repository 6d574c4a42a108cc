// Package config loads the optional gnb.yaml project file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file gnb looks for in the working directory.
const DefaultFile = "gnb.yaml"

// Config holds per-project build settings. Command-line flags override
// config values, which override the built-in defaults.
type Config struct {
	// SourceDir is the Go source tree of the library (dev builds).
	SourceDir string `yaml:"source_dir"`
	// PrebuiltDir holds per-triple prebuilt artifacts; when
	// PrebuiltDir/<triple>/ exists the build is a verbatim copy.
	PrebuiltDir string `yaml:"prebuilt_dir"`
	// OutDir overrides the per-target workspace output directory.
	OutDir string `yaml:"out_dir"`

	// Targets are the triples built when the command line names none.
	Targets []string `yaml:"targets"`

	// Envs is an explicit environment override in GNB_GO_ENVS format.
	Envs string `yaml:"envs"`
	// StrictEnvs rejects malformed Envs entries instead of dropping them.
	StrictEnvs bool `yaml:"strict_envs"`

	// Bindgen is the header-to-bindings generator command; the generated
	// header path is appended as its final argument. Empty skips binding
	// generation.
	Bindgen string `yaml:"bindgen"`
}

// Default returns the configuration used when no gnb.yaml exists.
func Default() *Config {
	return &Config{
		SourceDir:   "go",
		PrebuiltDir: "prebuilt",
	}
}

// Load reads the config at path, or the defaults when the file does not
// exist. An empty path means DefaultFile.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
