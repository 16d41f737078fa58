package cmd

import (
	"errors"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// Config holds the optional htmlscan.yaml settings. Every field falls back
// to a built-in default when unset, so a missing file is not an error.
type Config struct {
	// Addr is the default listen address for the serve command.
	Addr string `yaml:"addr"`
	// MaxInputBytes caps a single document's size in serve mode.
	MaxInputBytes int64 `yaml:"max_input_bytes"`
	// Filter is the default batch filter expression.
	Filter string `yaml:"filter"`
	// Format is the default batch report format (text or xml).
	Format string `yaml:"format"`
}

// LoadConfig reads htmlscan.yaml from dir, returning a zero Config when the
// file does not exist.
func LoadConfig(dir string) (Config, error) {
	var result Config

	data, err := os.ReadFile(path.Join(dir, "htmlscan.yaml"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return result, nil
		}
		return result, err
	}
	if err := yaml.Unmarshal(data, &result); err != nil {
		return result, err
	}
	return result, nil
}
