package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lox/teammaker/internal/fileutil"
)

// Format identifies a configuration file format
type Format string

const (
	FormatJSON Format = "json"
	FormatHCL  Format = "hcl"
	FormatTOML Format = "toml"
)

// FormatFor picks the format from a file extension, defaulting to JSON
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return FormatHCL
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// Load reads and validates the configuration at path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	switch FormatFor(path) {
	case FormatHCL:
		return LoadHCL(data, path)
	case FormatTOML:
		return LoadTOML(bytes.NewReader(data))
	default:
		return LoadJSON(bytes.NewReader(data))
	}
}

// LoadJSON decodes and validates a JSON configuration. Unknown fields are
// rejected so typos do not silently fall back to defaults.
func LoadJSON(r io.Reader) (*Config, error) {
	var cfg Config
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse JSON config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadTOML decodes and validates a TOML configuration
func LoadTOML(r io.Reader) (*Config, error) {
	var cfg Config
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("failed to parse TOML config: unknown keys %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes cfg to path atomically in the format implied by the extension
func Save(cfg *Config, path string) error {
	switch FormatFor(path) {
	case FormatHCL:
		return fileutil.WriteFileAtomic(path, EncodeHCL(cfg), 0o644)
	case FormatTOML:
		return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
			return toml.NewEncoder(w).Encode(cfg)
		})
	default:
		return fileutil.WriteJSONAtomic(path, cfg, 0o644)
	}
}
