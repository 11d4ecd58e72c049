package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable Load falls back to when no path
// is given.
const EnvVar = "WUMPUS_CONFIG"

// Load reads the config file at path, or at $WUMPUS_CONFIG when path is
// empty. With neither set it returns an empty Config.
func Load(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return New(nil), nil
	}
	return FromFile(path)
}

// FromFile reads a .yaml, .yml or .json file. ${VAR} references in the file
// are expanded from the environment before parsing.
func FromFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	raw = []byte(os.ExpandEnv(string(raw)))

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return FromJSON(raw)
	case ".yaml", ".yml":
		return FromYAML(raw)
	}
	return Config{}, fmt.Errorf("unsupported config file extension: %s", ext)
}

// FromYAML parses a YAML document. An empty document is an empty Config.
func FromYAML(data []byte) (Config, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	return New(doc), nil
}

// FromJSON parses a JSON object.
func FromJSON(data []byte) (Config, error) {
	var doc map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return Config{}, fmt.Errorf("parse json: %w", err)
	}
	return New(doc), nil
}

// Decode copies the document into out, a pointer to a struct tagged with
// `yaml:"..."`.
//
//	var journal struct {
//	    Path string `yaml:"path"`
//	}
//	err := cfg.Sub("journal").Decode(&journal)
func (c Config) Decode(out any) error {
	if out == nil {
		return errors.New("decode config: nil target")
	}
	raw, err := yaml.Marshal(c.data)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}
