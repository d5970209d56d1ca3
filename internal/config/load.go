package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/hashui/internal/errors"
)

// Format is a configuration file format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "HASHUI"

// FileNames are the configuration file names searched by Load, in order.
var FileNames = []string{"hashui.yaml", "hashui.yml", "hashui.json"}

// Load reads the first configuration file found in dir. Without a file it
// returns the defaults. Environment overrides are applied either way and
// the result is validated.
func Load(dir string) (*Config, error) {
	if path, ok := Find(dir); ok {
		return LoadFile(path)
	}
	cfg := New()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads configuration from path. The format follows the file
// extension.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.CodeConfigParse).
			WithDetailf("cannot read %s", path).
			Wrap(err)
	}

	cfg, err := Parse(data, FormatOf(path))
	if err != nil {
		return nil, err
	}
	cfg.configPath = path

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes data in the given format and fills defaults. It does not
// apply environment overrides or validate.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := &Config{}
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, cfg)
	default:
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.New(errors.CodeConfigParse).
			WithDetailf("invalid %s", format).
			Wrap(err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// FormatOf returns the format implied by a file name.
func FormatOf(path string) Format {
	if filepath.Ext(path) == ".json" {
		return FormatJSON
	}
	return FormatYAML
}

// Find returns the first configuration file present in dir.
func Find(dir string) (string, bool) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// SaveTo writes the configuration to path in the format its extension
// implies.
func (c *Config) SaveTo(path string) error {
	var (
		data []byte
		err  error
	)
	if FormatOf(path) == FormatJSON {
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	} else {
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return errors.New(errors.CodeConfigParse).Wrap(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.New(errors.CodeConfigParse).Wrap(err)
	}
	c.configPath = path
	return nil
}

// applyEnv overrides fields from HASHUI_* variables.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"NAME":                &c.Name,
		"ROOT_SELECTOR":       &c.RootSelector,
		"DEFAULT_ROUTE":       &c.DefaultRoute,
		"LOG_LEVEL":           &c.Log.Level,
		"LOG_FORMAT":          &c.Log.Format,
		"INSPECTOR_ADDR":      &c.Inspector.Addr,
		"METRICS_NAMESPACE":   &c.Metrics.Namespace,
		"TRACING_TRACER_NAME": &c.Tracing.TracerName,
	}
	for key, field := range strs {
		if v, ok := lookup(EnvPrefix + "_" + key); ok && v != "" {
			*field = v
		}
	}

	if v, ok := lookup(EnvPrefix + "_INSPECTOR_ENABLED"); ok && v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return errors.New(errors.CodeInvalidConfig).
				WithDetailf("%s_INSPECTOR_ENABLED=%q is not a boolean", EnvPrefix, v)
		}
		c.Inspector.Enabled = enabled
	}
	return nil
}
