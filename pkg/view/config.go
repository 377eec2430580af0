package view

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config describes where templates live and how rendered views default.
type Config struct {
	// Root is the views directory on disk. Ignored when the engine is built
	// from an fs.FS.
	Root string `json:"root" yaml:"root"`

	// Extension is the template file extension the engine appends, dot
	// included. Defaults to ".tpl".
	Extension string `json:"extension" yaml:"extension"`

	// DefaultFormat is used when neither the render call nor the controller
	// names a format. Defaults to "html".
	DefaultFormat string `json:"defaultFormat" yaml:"defaultFormat"`

	// Globals are seeded into every template's context.
	Globals map[string]any `json:"globals" yaml:"globals"`
}

// DefaultConfig returns the conventional view configuration.
func DefaultConfig() Config {
	return Config{
		Extension:     ".tpl",
		DefaultFormat: "html",
	}
}

// Normalize fills defaults and cleans up user-supplied values.
func (c Config) Normalize() Config {
	c.Root = strings.TrimSpace(c.Root)
	c.Extension = strings.TrimSpace(c.Extension)
	if c.Extension == "" {
		c.Extension = ".tpl"
	}
	if !strings.HasPrefix(c.Extension, ".") {
		c.Extension = "." + c.Extension
	}
	c.DefaultFormat = strings.TrimSpace(c.DefaultFormat)
	if c.DefaultFormat == "" {
		c.DefaultFormat = "html"
	}
	return c
}

// LoadConfig reads a JSON or YAML view configuration from fsys.
func LoadConfig(fsys fs.FS, name string) (Config, error) {
	if fsys == nil {
		return Config{}, fmt.Errorf("view: filesystem is required")
	}
	if !isConfigFile(name) {
		return Config{}, fmt.Errorf("view: config %s: unsupported extension", name)
	}

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Config{}, fmt.Errorf("view: read config %s: %w", name, err)
	}

	cfg, err := parseConfig(data, name)
	if err != nil {
		return Config{}, err
	}
	return cfg.Normalize(), nil
}

func parseConfig(data []byte, source string) (Config, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Config{}, fmt.Errorf("view: config %s is empty", source)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err == nil {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err == nil {
		return cfg, nil
	}
	return Config{}, fmt.Errorf("view: parse %s: invalid JSON or YAML", source)
}

func isConfigFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
