// Package sweep runs hyperparameter sweeps for a training command. A
// sweep combines a base experiment configuration with a sweep definition;
// every run populates a temporary config file with the run's parameters
// and hands it to the training subprocess.
package sweep

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is a nested experiment configuration as loaded from YAML.
type Config map[string]any

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if c == nil {
		c = Config{}
	}
	return c, nil
}

// Insert sets a dotted key like "model.encoder.lr", creating intermediate
// maps as needed. Returns true when an existing value was overridden.
func (c Config) Insert(key string, value any) (bool, error) {
	parts := strings.Split(key, ".")
	ptr := map[string]any(c)
	for _, piece := range parts[:len(parts)-1] {
		next, ok := ptr[piece]
		if !ok {
			m := map[string]any{}
			ptr[piece] = m
			ptr = m
			continue
		}
		m, ok := next.(map[string]any)
		if !ok {
			return false, fmt.Errorf("key %s: segment %s is not a mapping", key, piece)
		}
		ptr = m
	}

	last := parts[len(parts)-1]
	_, overridden := ptr[last]
	ptr[last] = value
	return overridden, nil
}

// Clone returns a deep copy of the configuration, so one run's overrides
// never leak into the next.
func (c Config) Clone() Config {
	return Config(cloneMap(c))
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

// WriteFile marshals the configuration as YAML to path.
func (c Config) WriteFile(path string) error {
	data, err := yaml.Marshal(map[string]any(c))
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
